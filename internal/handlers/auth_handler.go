package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"fingertrack/internal/models"
	"fingertrack/internal/services"
)

type AuthHandler struct {
	authService    services.AuthService
	employeService services.EmployeService
}

func NewAuthHandler(authService services.AuthService, employeService services.EmployeService) *AuthHandler {
	return &AuthHandler{authService: authService, employeService: employeService}
}

// @Summary      Log in
// @Description  Authenticates an employee and returns an access token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        login  body      models.LoginRequest  true  "Credentials"
// @Success      200    {object}  services.LoginResult
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	start := time.Now()

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[auth][login] bad request: bind json failed: err=%v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	email := strings.TrimSpace(req.Email)
	log.Printf("[auth][login] attempt email=%q", email)

	result, err := h.authService.Authenticate(email, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}

	log.Printf("[auth][login] success user=%s took=%s",
		result.Employe.ID, time.Since(start).Truncate(time.Millisecond))
	c.JSON(http.StatusOK, result)
}

// @Summary      Revoke a session
// @Tags         Auth
// @Produce      json
// @Param        id  path      string  true  "Session ID"
// @Success      200 {object}  map[string]string
// @Failure      403 {object}  map[string]string
// @Failure      404 {object}  map[string]string
// @Security     BearerAuth
// @Router       /sessions/{id} [delete]
func (h *AuthHandler) RevokeSession(c *gin.Context) {
	sessionID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	ident, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid identity in context"})
		return
	}

	current, err := h.employeService.GetByID(ident.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if err := h.authService.RevokeSession(sessionID, current); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session revoked"})
}
