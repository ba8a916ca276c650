package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification is ephemeral: produced for the fan-out channel, never stored.
// The pull endpoint rebuilds the pending set from employees lacking a
// fingerprint instead of replaying past events.
type Notification struct {
	ID           uuid.UUID  `json:"id"`
	IDEmploye    uuid.UUID  `json:"idEmploye"`
	EmployeeName string     `json:"employeeName,omitempty"`
	Department   string     `json:"department,omitempty"`
	Message      string     `json:"message,omitempty"`
	IDEntreprise uuid.UUID  `json:"idEntreprise"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}
