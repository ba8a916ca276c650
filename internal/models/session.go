package models

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	ID             uuid.UUID `json:"idSession"`
	IDEmploye      uuid.UUID `json:"idEmploye"`
	AccessToken    string    `json:"-"`
	TokenType      string    `json:"token_type"`
	DateCreation   time.Time `json:"date_creation"`
	DateExpiration time.Time `json:"date_expiration"`
	IsActive       bool      `json:"is_active"`
}
