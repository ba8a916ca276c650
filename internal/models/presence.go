package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PresenceCheckIn  = "CHECK_IN"
	PresenceCheckOut = "CHECK_OUT"

	PresenceStatutValide = "valide"
	PresenceStatutRetard = "retard"

	PresenceMethodeFingerprint = "fingerprint"
	PresenceMethodeManuel      = "manuel"
)

type Presence struct {
	ID                     uuid.UUID  `json:"idPresence"`
	IDEmploye              uuid.UUID  `json:"idEmploye"`
	Type                   string     `json:"type"`
	Timestamp              time.Time  `json:"timestamp"`
	Methode                string     `json:"methode"`
	AppareilID             *string    `json:"appareil_id,omitempty"`
	Statut                 string     `json:"statut"`
	Notes                  *string    `json:"notes,omitempty"`
	IDConfigurationHoraire *uuid.UUID `json:"idConfigurationHoraire,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
}
