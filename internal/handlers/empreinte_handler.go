package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fingertrack/internal/models"
	"fingertrack/internal/services"
)

type EmpreinteHandler struct {
	empreintes services.EmpreinteService
}

func NewEmpreinteHandler(empreintes services.EmpreinteService) *EmpreinteHandler {
	return &EmpreinteHandler{empreintes: empreintes}
}

type createEmpreinteRequest struct {
	IDEmploye           string `json:"idEmploye" binding:"required,uuid"`
	DonneesBiometriques []byte `json:"donneesBiometriques" binding:"required"`
}

// @Summary      Register an additional fingerprint
// @Tags         Empreintes
// @Accept       json
// @Produce      json
// @Param        empreinte  body      handlers.createEmpreinteRequest  true  "Fingerprint"
// @Success      201        {object}  models.Empreinte
// @Failure      404        {object}  map[string]string
// @Security     BearerAuth
// @Router       /empreintes [post]
func (h *EmpreinteHandler) Create(c *gin.Context) {
	var req createEmpreinteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	idEmploye, err := uuid.Parse(req.IDEmploye)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid idEmploye"})
		return
	}
	empreinte := &models.Empreinte{
		IDEmploye:           idEmploye,
		DonneesBiometriques: req.DonneesBiometriques,
	}
	created, err := h.empreintes.Create(empreinte)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EmpreinteHandler) ListByEmploye(c *gin.Context) {
	idEmploye, ok := parseUUIDParam(c, "employeId")
	if !ok {
		return
	}
	empreintes, err := h.empreintes.ListByEmploye(idEmploye)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, empreintes)
}

func (h *EmpreinteHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.empreintes.Delete(id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fingerprint deleted"})
}
