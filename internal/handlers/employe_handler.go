package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fingertrack/internal/models"
	"fingertrack/internal/services"
)

type EmployeHandler struct {
	employes services.EmployeService
}

func NewEmployeHandler(employes services.EmployeService) *EmployeHandler {
	return &EmployeHandler{employes: employes}
}

type createEmployeRequest struct {
	Nom          string     `json:"nom" binding:"required"`
	Prenom       string     `json:"prenom" binding:"required"`
	Email        string     `json:"email" binding:"required,email"`
	Password     string     `json:"password,omitempty"`
	Role         string     `json:"role,omitempty"`
	EmployeeID   string     `json:"employeeId" binding:"required"`
	PhoneNumber  *string    `json:"phone_number,omitempty"`
	IDGroupe     *uuid.UUID `json:"idGroupe,omitempty"`
	IDPoste      *uuid.UUID `json:"idPoste,omitempty"`
	IDEntreprise *uuid.UUID `json:"idEntreprise,omitempty"`
}

type validateFingerprintRequest struct {
	IDEmploye           uuid.UUID `json:"idEmploye" binding:"required"`
	DonneesBiometriques []byte    `json:"donneesBiometriques" binding:"required"`
}

// @Summary      Create an employee
// @Tags         Employes
// @Accept       json
// @Produce      json
// @Param        employe  body      handlers.createEmployeRequest  true  "Employee"
// @Success      201      {object}  models.Employe
// @Failure      409      {object}  map[string]string
// @Security     BearerAuth
// @Router       /employes [post]
func (h *EmployeHandler) Create(c *gin.Context) {
	var req createEmployeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ident, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid identity in context"})
		return
	}

	// Employees always land in the caller's company.
	idEntreprise := ident.CompanyID
	if req.IDEntreprise != nil && ident.Role == models.RoleAdmin {
		idEntreprise = *req.IDEntreprise
	}

	employe := &models.Employe{
		Nom:          req.Nom,
		Prenom:       req.Prenom,
		Email:        req.Email,
		Role:         req.Role,
		EmployeeID:   req.EmployeeID,
		PhoneNumber:  req.PhoneNumber,
		IDEntreprise: idEntreprise,
		IDGroupe:     req.IDGroupe,
		IDPoste:      req.IDPoste,
	}
	created, err := h.employes.Create(employe, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary      Get an employee
// @Tags         Employes
// @Produce      json
// @Param        id  path      string  true  "Employee ID"
// @Success      200 {object}  models.Employe
// @Failure      404 {object}  map[string]string
// @Security     BearerAuth
// @Router       /employes/{id} [get]
func (h *EmployeHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	employe, err := h.employes.GetByID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if !sameCompany(c, employe.IDEntreprise) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	c.JSON(http.StatusOK, employe)
}

// @Summary      List employees of the caller's company
// @Tags         Employes
// @Produce      json
// @Param        limit   query     int  false  "Page size"
// @Param        offset  query     int  false  "Offset"
// @Success      200     {array}   models.Employe
// @Security     BearerAuth
// @Router       /employes [get]
func (h *EmployeHandler) List(c *gin.Context) {
	ident, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid identity in context"})
		return
	}
	limit, offset := pagination(c)
	employes, err := h.employes.ListByEntreprise(ident.CompanyID, limit, offset)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, employes)
}

func (h *EmployeHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	existing, err := h.employes.GetByID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if !sameCompany(c, existing.IDEntreprise) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	var employe models.Employe
	if err := c.ShouldBindJSON(&employe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	employe.ID = id
	employe.IDEntreprise = existing.IDEntreprise
	employe.PasswordHash = existing.PasswordHash
	if err := h.employes.Update(&employe); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee updated"})
}

func (h *EmployeHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	existing, err := h.employes.GetByID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if !sameCompany(c, existing.IDEntreprise) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	if err := h.employes.Delete(id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}

// @Summary      Validate an employee fingerprint
// @Description  Stores the biometric sample and closes the onboarding workflow
// @Tags         Employes
// @Accept       json
// @Produce      json
// @Param        payload  body      handlers.validateFingerprintRequest  true  "Fingerprint"
// @Success      201      {object}  models.Empreinte
// @Failure      404      {object}  map[string]string
// @Security     BearerAuth
// @Router       /employes/validate-fingerprint [post]
func (h *EmployeHandler) ValidateFingerprint(c *gin.Context) {
	var req validateFingerprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	empreinte, err := h.employes.ValidateFingerprint(req.IDEmploye, req.DonneesBiometriques)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, empreinte)
}

// @Summary      Pending fingerprint notifications
// @Description  Derived from employees of the company that still lack a fingerprint
// @Tags         Notifications
// @Produce      json
// @Success      200  {array}  models.Notification
// @Security     BearerAuth
// @Router       /notif [get]
func (h *EmployeHandler) PendingNotifications(c *gin.Context) {
	ident, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid identity in context"})
		return
	}
	notifications, err := h.employes.PendingFingerprintNotifications(ident.CompanyID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func sameCompany(c *gin.Context, idEntreprise uuid.UUID) bool {
	ident, ok := currentIdentity(c)
	if !ok {
		return false
	}
	return ident.CompanyID == idEntreprise
}

func pagination(c *gin.Context) (limit, offset int) {
	limit = 50
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 200 {
		limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v >= 0 {
		offset = v
	}
	return
}
