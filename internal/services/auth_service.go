package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"fingertrack/internal/middleware"
	"fingertrack/internal/models"
	"fingertrack/internal/repositories"
)

type LoginResult struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	Employe     *models.Employe `json:"employe"`
	Session     *models.Session `json:"session"`
}

type AuthService interface {
	HashPassword(plain string) (string, error)
	Authenticate(email, password string) (*LoginResult, error)
	RevokeSession(sessionID uuid.UUID, current *models.Employe) error
	SweepSessions() (int64, error)
}

type authService struct {
	employes repositories.EmployeRepository
	sessions repositories.SessionRepository
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(employes repositories.EmployeRepository, sessions repositories.SessionRepository, secret string, tokenTTL time.Duration) AuthService {
	return &authService{
		employes: employes,
		sessions: sessions,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

func (s *authService) HashPassword(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

func (s *authService) Authenticate(email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	emp, err := s.employes.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		log.Printf("[auth][login] user not found email=%q", email)
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(strings.TrimSpace(password))); err != nil {
		log.Printf("[auth][login] bcrypt mismatch email=%q", email)
		return nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	claims := &middleware.Claims{
		UserID:    emp.ID.String(),
		Email:     emp.Email,
		Role:      emp.Role,
		CompanyID: emp.IDEntreprise.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	session := &models.Session{
		IDEmploye:      emp.ID,
		AccessToken:    tokenString,
		DateExpiration: expiresAt,
	}
	if err := s.sessions.Create(session); err != nil {
		return nil, err
	}

	log.Printf("[auth][login] success user=%s role=%s company=%s", emp.ID, emp.Role, emp.IDEntreprise)
	return &LoginResult{
		AccessToken: tokenString,
		TokenType:   "bearer",
		Employe:     emp,
		Session:     session,
	}, nil
}

// RevokeSession deactivates one session. An employee may revoke their own,
// admins anyone's.
func (s *authService) RevokeSession(sessionID uuid.UUID, current *models.Employe) error {
	session, err := s.sessions.GetByID(sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrSessionNotFound
	}
	if session.IDEmploye != current.ID && current.Role != models.RoleAdmin {
		return ErrForbidden
	}
	return s.sessions.Revoke(sessionID)
}

func (s *authService) SweepSessions() (int64, error) {
	return s.sessions.SweepExpired()
}
