package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fingertrack/internal/models"
	"fingertrack/internal/services"
)

type CongeHandler struct {
	conges services.CongeService
}

func NewCongeHandler(conges services.CongeService) *CongeHandler {
	return &CongeHandler{conges: conges}
}

// @Summary      Request a leave
// @Tags         Conges
// @Accept       json
// @Produce      json
// @Param        conge  body      models.Conge  true  "Leave request"
// @Success      201    {object}  models.Conge
// @Failure      404    {object}  map[string]string
// @Security     BearerAuth
// @Router       /conges [post]
func (h *CongeHandler) Create(c *gin.Context) {
	var conge models.Conge
	if err := c.ShouldBindJSON(&conge); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if conge.DateFin.Before(conge.DateDebut) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date_fin before date_debut"})
		return
	}
	created, err := h.conges.Create(&conge)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CongeHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	conge, err := h.conges.GetByID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, conge)
}

// ListByEmploye is mounted under /employes/:id/conges.
func (h *CongeHandler) ListByEmploye(c *gin.Context) {
	idEmploye, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	conges, err := h.conges.ListByEmploye(idEmploye)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, conges)
}

func (h *CongeHandler) ListByEntreprise(c *gin.Context) {
	ident, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid identity in context"})
		return
	}
	conges, err := h.conges.ListByEntreprise(ident.CompanyID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, conges)
}

func (h *CongeHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var conge models.Conge
	if err := c.ShouldBindJSON(&conge); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	conge.ID = id
	if err := h.conges.Update(&conge); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Leave request updated"})
}

// @Summary      Approve a leave request
// @Tags         Conges
// @Produce      json
// @Param        id  path      string  true  "Leave ID"
// @Success      200 {object}  map[string]string
// @Failure      404 {object}  map[string]string
// @Security     BearerAuth
// @Router       /conges/{id}/approve [post]
func (h *CongeHandler) Approve(c *gin.Context) {
	h.setStatut(c, true)
}

func (h *CongeHandler) Reject(c *gin.Context) {
	h.setStatut(c, false)
}

func (h *CongeHandler) setStatut(c *gin.Context, approve bool) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	ident, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid identity in context"})
		return
	}

	var err error
	if approve {
		err = h.conges.Approve(id, ident.UserID)
	} else {
		err = h.conges.Reject(id, ident.UserID)
	}
	if err != nil {
		abortWithError(c, err)
		return
	}
	statut := models.CongeStatutApprouve
	if !approve {
		statut = models.CongeStatutRefuse
	}
	c.JSON(http.StatusOK, gin.H{"message": "Leave request " + statut})
}

func (h *CongeHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.conges.Delete(id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Leave request deleted"})
}
