package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fingertrack/internal/models"
	"fingertrack/internal/services"
)

type RegistrationHandler struct {
	registration services.RegistrationService
}

func NewRegistrationHandler(registration services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registration: registration}
}

type verifyEmailRequest struct {
	UserEmail string `json:"userEmail" binding:"required,email"`
	Code      string `json:"code" binding:"required"`
}

type companyInfoRequest struct {
	UserEmail string             `json:"userEmail" binding:"required,email"`
	Info      models.CompanyInfo `json:"companyInfo" binding:"required"`
}

type verifyCompanyRequest struct {
	UserEmail   string `json:"userEmail" binding:"required,email"`
	CompanyCode string `json:"companyCode" binding:"required"`
}

// @Summary      Start registration with personal info
// @Description  Stores the first step and emails a verification code
// @Tags         Registration
// @Accept       json
// @Produce      json
// @Param        info  body      models.PersonalInfo  true  "Personal info"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /register/personal-info [post]
func (h *RegistrationHandler) SubmitPersonalInfo(c *gin.Context) {
	var info models.PersonalInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		log.Printf("[register][personal-info] bad request: bind json failed: err=%v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expiresAt, err := h.registration.SubmitPersonalInfo(&info)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Verification code sent",
		"expires_at": expiresAt.Format(time.RFC3339),
	})
}

// @Summary      Verify the user email
// @Tags         Registration
// @Accept       json
// @Produce      json
// @Param        payload  body      handlers.verifyEmailRequest  true  "Email and code"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /register/verify-email [post]
func (h *RegistrationHandler) VerifyUserEmail(c *gin.Context) {
	var req verifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expiresAt, err := h.registration.VerifyUserEmail(req.UserEmail, req.Code)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Email verified",
		"expires_at": expiresAt.Format(time.RFC3339),
	})
}

// @Summary      Submit company info (admin path)
// @Tags         Registration
// @Accept       json
// @Produce      json
// @Param        payload  body      handlers.companyInfoRequest  true  "Company info"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]string
// @Failure      429      {object}  map[string]string
// @Router       /register/company-info [post]
func (h *RegistrationHandler) SubmitCompanyInfo(c *gin.Context) {
	var req companyInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expiresAt, err := h.registration.SubmitCompanyInfo(req.UserEmail, &req.Info)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Company verification code sent",
		"expires_at": expiresAt.Format(time.RFC3339),
	})
}

// @Summary      Verify the company contact email
// @Tags         Registration
// @Accept       json
// @Produce      json
// @Param        payload  body      handlers.verifyCompanyRequest  true  "User email and company code"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]string
// @Router       /register/verify-company [post]
func (h *RegistrationHandler) VerifyCompanyEmail(c *gin.Context) {
	var req verifyCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expiresAt, err := h.registration.VerifyCompanyEmail(req.UserEmail, req.CompanyCode)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Company email verified",
		"role":       models.RoleAdmin,
		"expires_at": expiresAt.Format(time.RFC3339),
	})
}

// @Summary      Finalize registration
// @Description  Creates the employee (and, for admins, the company), then waits for a fingerprint
// @Tags         Registration
// @Accept       json
// @Produce      json
// @Param        payload  body      models.FinalRegistrationData  true  "Final data"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Failure      409      {object}  map[string]string
// @Router       /register/complete [post]
func (h *RegistrationHandler) CompleteRegistration(c *gin.Context) {
	var data models.FinalRegistrationData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employe, err := h.registration.CompleteRegistration(&data)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration complete, awaiting fingerprint validation",
		"employe": employe,
		"step":    models.StepFingerprintValidation,
	})
}

// @Summary      Resume a pending registration
// @Tags         Registration
// @Produce      json
// @Param        email  query     string  true  "User email"
// @Success      200    {object}  services.RegistrationState
// @Failure      404    {object}  map[string]string
// @Router       /register/state [get]
func (h *RegistrationHandler) PendingState(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter required"})
		return
	}

	state, err := h.registration.PendingState(email)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}
