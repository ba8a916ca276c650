package models

import (
	"time"

	"github.com/google/uuid"
)

// Shift types a group schedule configuration can carry.
const (
	ShiftMatin         = "matin"
	ShiftApresMidi     = "apres-midi"
	ShiftNuit          = "nuit"
	ShiftPersonnaliser = "personnaliser"
)

type Groupe struct {
	ID           uuid.UUID `json:"idGroupe"`
	Nom          string    `json:"nom"`
	IDEntreprise uuid.UUID `json:"idEntreprise"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ConfigurationHoraire is the shift schedule attached to a group: entry and
// exit windows are stored as "HH:MM" strings, the lateness threshold in
// minutes.
type ConfigurationHoraire struct {
	ID                  uuid.UUID `json:"idConfigurationHoraire"`
	IDGroupe            uuid.UUID `json:"idGroupe"`
	TypeHoraire         string    `json:"type_horaire"`
	HeureDebutEntree    string    `json:"heure_debut_entree"`
	HeureFinEntree      string    `json:"heure_fin_entree"`
	HeureDebutSortie    string    `json:"heure_debut_sortie"`
	HeureFinSortie      string    `json:"heure_fin_sortie"`
	SeuilRetard         int       `json:"seuil_retard"`
	JoursCongesAnnuels  int       `json:"jours_conges_annuels"`
	HeuresSupAutorisees bool      `json:"heures_supplementaires_autorisees"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
