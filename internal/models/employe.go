package models

import (
	"time"

	"github.com/google/uuid"
)

// Role values carried on Employe.Role and inside JWT claims.
const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

type Employe struct {
	ID           uuid.UUID  `json:"idEmploye"`
	Nom          string     `json:"nom"`
	Prenom       string     `json:"prenom"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // не отдаём наружу
	Role         string     `json:"role"`
	EmployeeID   string     `json:"employeeId"`
	PhoneNumber  *string    `json:"phone_number,omitempty"`
	IDEntreprise uuid.UUID  `json:"idEntreprise"`
	IDGroupe     *uuid.UUID `json:"idGroupe,omitempty"`
	IDPoste      *uuid.UUID `json:"idPoste,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// DisplayName is what notification payloads show ("Prenom Nom").
func (e *Employe) DisplayName() string {
	return e.Prenom + " " + e.Nom
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
