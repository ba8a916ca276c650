package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fingertrack/internal/models"
	"fingertrack/internal/services"
)

type PosteHandler struct {
	postes services.PosteService
}

func NewPosteHandler(postes services.PosteService) *PosteHandler {
	return &PosteHandler{postes: postes}
}

func (h *PosteHandler) Create(c *gin.Context) {
	var poste models.Poste
	if err := c.ShouldBindJSON(&poste); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ident, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid identity in context"})
		return
	}
	poste.IDEntreprise = ident.CompanyID
	created, err := h.postes.Create(&poste)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *PosteHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	poste, err := h.postes.GetByID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if poste == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "position not found"})
		return
	}
	c.JSON(http.StatusOK, poste)
}

func (h *PosteHandler) List(c *gin.Context) {
	ident, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid identity in context"})
		return
	}
	limit, offset := pagination(c)
	postes, err := h.postes.ListByEntreprise(ident.CompanyID, limit, offset)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, postes)
}

func (h *PosteHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var poste models.Poste
	if err := c.ShouldBindJSON(&poste); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	poste.ID = id
	if err := h.postes.Update(&poste); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Position updated"})
}

func (h *PosteHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.postes.Delete(id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Position deleted"})
}
