package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	CongeTypePaye     = "paye"
	CongeTypeSansSold = "sans_solde"
	CongeTypeMaladie  = "maladie"

	CongeStatutEnAttente = "en_attente"
	CongeStatutApprouve  = "approuve"
	CongeStatutRefuse    = "refuse"
)

type Conge struct {
	ID          uuid.UUID  `json:"idConge"`
	IDEmploye   uuid.UUID  `json:"idEmploye"`
	TypeConge   string     `json:"type_conge"`
	DateDebut   time.Time  `json:"date_debut"`
	DateFin     time.Time  `json:"date_fin"`
	Statut      string     `json:"statut"`
	Commentaire *string    `json:"commentaire,omitempty"`
	ApprouvePar *uuid.UUID `json:"approuve_par,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
