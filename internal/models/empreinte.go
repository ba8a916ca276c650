package models

import (
	"time"

	"github.com/google/uuid"
)

type Empreinte struct {
	ID                  uuid.UUID `json:"idEmpreinte"`
	IDEmploye           uuid.UUID `json:"idEmploye"`
	DonneesBiometriques []byte    `json:"-"` // raw template, never serialized
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
