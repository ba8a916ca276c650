package services

import (
	"time"

	"github.com/google/uuid"

	"fingertrack/internal/models"
	"fingertrack/internal/repositories"
)

type PresenceService interface {
	Record(presence *models.Presence) (*models.Presence, error)
	GetByID(id uuid.UUID) (*models.Presence, error)
	ListByEmploye(idEmploye uuid.UUID, from, to *time.Time) ([]*models.Presence, error)
	ListByEntreprise(idEntreprise uuid.UUID, from, to *time.Time) ([]*models.Presence, error)
	Delete(id uuid.UUID) error
}

type presenceService struct {
	presences repositories.PresenceRepository
	employes  repositories.EmployeRepository
}

func NewPresenceService(presences repositories.PresenceRepository, employes repositories.EmployeRepository) PresenceService {
	return &presenceService{presences: presences, employes: employes}
}

// Record stores a check-in or check-out event. The timestamp defaults to now
// when the device did not supply one.
func (s *presenceService) Record(presence *models.Presence) (*models.Presence, error) {
	employe, err := s.employes.GetByID(presence.IDEmploye)
	if err != nil {
		return nil, err
	}
	if employe == nil {
		return nil, ErrEmployeNotFound
	}
	if presence.Statut == "" {
		presence.Statut = models.PresenceStatutValide
	}
	if presence.Methode == "" {
		presence.Methode = models.PresenceMethodeFingerprint
	}
	if err := s.presences.Create(presence); err != nil {
		return nil, err
	}
	return presence, nil
}

func (s *presenceService) GetByID(id uuid.UUID) (*models.Presence, error) {
	return s.presences.GetByID(id)
}

func (s *presenceService) ListByEmploye(idEmploye uuid.UUID, from, to *time.Time) ([]*models.Presence, error) {
	return s.presences.ListByEmploye(idEmploye, from, to)
}

func (s *presenceService) ListByEntreprise(idEntreprise uuid.UUID, from, to *time.Time) ([]*models.Presence, error) {
	return s.presences.ListByEntreprise(idEntreprise, from, to)
}

func (s *presenceService) Delete(id uuid.UUID) error {
	return s.presences.Delete(id)
}
