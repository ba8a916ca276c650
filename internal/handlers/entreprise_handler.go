package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fingertrack/internal/models"
	"fingertrack/internal/services"
)

type EntrepriseHandler struct {
	entreprises services.EntrepriseService
}

func NewEntrepriseHandler(entreprises services.EntrepriseService) *EntrepriseHandler {
	return &EntrepriseHandler{entreprises: entreprises}
}

// @Summary      Create a company
// @Tags         Entreprises
// @Accept       json
// @Produce      json
// @Param        entreprise  body      models.Entreprise  true  "Company"
// @Success      201         {object}  models.Entreprise
// @Failure      409         {object}  map[string]string
// @Security     BearerAuth
// @Router       /entreprises [post]
func (h *EntrepriseHandler) Create(c *gin.Context) {
	var entreprise models.Entreprise
	if err := c.ShouldBindJSON(&entreprise); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.entreprises.Create(&entreprise)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EntrepriseHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	entreprise, err := h.entreprises.GetByID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, entreprise)
}

func (h *EntrepriseHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	entreprises, err := h.entreprises.List(limit, offset)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, entreprises)
}

func (h *EntrepriseHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if !sameCompany(c, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	var entreprise models.Entreprise
	if err := c.ShouldBindJSON(&entreprise); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entreprise.ID = id
	if err := h.entreprises.Update(&entreprise); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Company updated"})
}

func (h *EntrepriseHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if !sameCompany(c, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	if err := h.entreprises.Delete(id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Company deleted"})
}
