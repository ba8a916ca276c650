package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fingertrack/internal/models"
	"fingertrack/internal/services"
)

type GroupeHandler struct {
	groupes services.GroupeService
}

func NewGroupeHandler(groupes services.GroupeService) *GroupeHandler {
	return &GroupeHandler{groupes: groupes}
}

// @Summary      Create a group
// @Tags         Groupes
// @Accept       json
// @Produce      json
// @Param        groupe  body      models.Groupe  true  "Group"
// @Success      201     {object}  models.Groupe
// @Security     BearerAuth
// @Router       /groupes [post]
func (h *GroupeHandler) Create(c *gin.Context) {
	var groupe models.Groupe
	if err := c.ShouldBindJSON(&groupe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ident, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid identity in context"})
		return
	}
	groupe.IDEntreprise = ident.CompanyID
	created, err := h.groupes.Create(&groupe)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *GroupeHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	groupe, err := h.groupes.GetByID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, groupe)
}

func (h *GroupeHandler) List(c *gin.Context) {
	ident, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid identity in context"})
		return
	}
	groupes, err := h.groupes.ListByEntreprise(ident.CompanyID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, groupes)
}

func (h *GroupeHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	existing, err := h.groupes.GetByID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if !sameCompany(c, existing.IDEntreprise) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	var groupe models.Groupe
	if err := c.ShouldBindJSON(&groupe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	groupe.ID = id
	groupe.IDEntreprise = existing.IDEntreprise
	if err := h.groupes.Update(&groupe); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Group updated"})
}

func (h *GroupeHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	existing, err := h.groupes.GetByID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if !sameCompany(c, existing.IDEntreprise) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	if err := h.groupes.Delete(id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Group deleted"})
}

// @Summary      Add a schedule configuration to a group
// @Tags         Groupes
// @Accept       json
// @Produce      json
// @Param        id      path      string                       true  "Group ID"
// @Param        config  body      models.ConfigurationHoraire  true  "Schedule"
// @Success      201     {object}  models.ConfigurationHoraire
// @Security     BearerAuth
// @Router       /groupes/{id}/configurations [post]
func (h *GroupeHandler) AddConfiguration(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var config models.ConfigurationHoraire
	if err := c.ShouldBindJSON(&config); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.groupes.AddConfiguration(id, &config)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *GroupeHandler) ListConfigurations(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	configs, err := h.groupes.ListConfigurations(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, configs)
}

func (h *GroupeHandler) UpdateConfiguration(c *gin.Context) {
	configID, ok := parseUUIDParam(c, "configId")
	if !ok {
		return
	}
	var config models.ConfigurationHoraire
	if err := c.ShouldBindJSON(&config); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	config.ID = configID
	if err := h.groupes.UpdateConfiguration(&config); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Configuration updated"})
}

func (h *GroupeHandler) DeleteConfiguration(c *gin.Context) {
	configID, ok := parseUUIDParam(c, "configId")
	if !ok {
		return
	}
	if err := h.groupes.DeleteConfiguration(configID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Configuration deleted"})
}
