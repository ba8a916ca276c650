package models

import (
	"time"

	"github.com/google/uuid"
)

type Entreprise struct {
	ID           uuid.UUID `json:"idEntreprise"`
	Nom          string    `json:"nom"`
	Adresse      *string   `json:"adresse,omitempty"`
	ContactEmail *string   `json:"contact_email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
