package models

import (
	"time"

	"github.com/google/uuid"
)

// Poste is a named job role scoped to one company. Resolved or created on
// the fly during registration finalization.
type Poste struct {
	ID           uuid.UUID `json:"idPoste"`
	Nom          string    `json:"nom"`
	Description  *string   `json:"description,omitempty"`
	IDEntreprise uuid.UUID `json:"idEntreprise"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
