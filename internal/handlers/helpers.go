package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fingertrack/internal/services"
)

func getStringFromCtx(c *gin.Context, key string) string {
	v, ok := c.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// identity is what AuthMiddleware put into the request context.
type identity struct {
	UserID    uuid.UUID
	Email     string
	Role      string
	CompanyID uuid.UUID
}

func currentIdentity(c *gin.Context) (identity, bool) {
	var ident identity
	userID, err := uuid.Parse(getStringFromCtx(c, "user_id"))
	if err != nil {
		return ident, false
	}
	companyID, err := uuid.Parse(getStringFromCtx(c, "company_id"))
	if err != nil {
		return ident, false
	}
	ident.UserID = userID
	ident.Email = getStringFromCtx(c, "email")
	ident.Role = getStringFromCtx(c, "role")
	ident.CompanyID = companyID
	return ident, true
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

// statusFor maps service sentinels onto HTTP statuses; anything unknown is
// a 500.
func statusFor(err error) int {
	switch err {
	case services.ErrEmailTaken,
		services.ErrEmployeeCodeTaken,
		services.ErrEntrepriseTaken:
		return http.StatusConflict
	case services.ErrCodeAlreadySent:
		return http.StatusTooManyRequests
	case services.ErrCodeNotFound,
		services.ErrCodeMismatch,
		services.ErrEmailNotVerified,
		services.ErrCompanyInfoMissing,
		services.ErrCompanyInfoRequired,
		services.ErrGroupeRequired,
		services.ErrFingerprintNotPending:
		return http.StatusBadRequest
	case services.ErrPendingNotFound,
		services.ErrGroupeNotFound,
		services.ErrEmployeNotFound,
		services.ErrEntrepriseNotFound,
		services.ErrSessionNotFound,
		services.ErrCongeNotFound:
		return http.StatusNotFound
	case services.ErrInvalidCredentials:
		return http.StatusUnauthorized
	case services.ErrForbidden:
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

func abortWithError(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	c.JSON(status, gin.H{"error": msg})
}
