package services

import (
	"errors"
	"log"

	"github.com/google/uuid"

	"fingertrack/internal/models"
	"fingertrack/internal/repositories"
)

var ErrCongeNotFound = errors.New("leave request not found")

type CongeService interface {
	Create(conge *models.Conge) (*models.Conge, error)
	GetByID(id uuid.UUID) (*models.Conge, error)
	ListByEmploye(idEmploye uuid.UUID) ([]*models.Conge, error)
	ListByEntreprise(idEntreprise uuid.UUID) ([]*models.Conge, error)
	Update(conge *models.Conge) error
	Approve(id, approvedBy uuid.UUID) error
	Reject(id, approvedBy uuid.UUID) error
	Delete(id uuid.UUID) error
}

type congeService struct {
	conges   repositories.CongeRepository
	employes repositories.EmployeRepository
}

func NewCongeService(conges repositories.CongeRepository, employes repositories.EmployeRepository) CongeService {
	return &congeService{conges: conges, employes: employes}
}

func (s *congeService) Create(conge *models.Conge) (*models.Conge, error) {
	employe, err := s.employes.GetByID(conge.IDEmploye)
	if err != nil {
		return nil, err
	}
	if employe == nil {
		return nil, ErrEmployeNotFound
	}
	if conge.Statut == "" {
		conge.Statut = models.CongeStatutEnAttente
	}
	if err := s.conges.Create(conge); err != nil {
		return nil, err
	}
	return conge, nil
}

func (s *congeService) GetByID(id uuid.UUID) (*models.Conge, error) {
	conge, err := s.conges.GetByID(id)
	if err != nil {
		return nil, err
	}
	if conge == nil {
		return nil, ErrCongeNotFound
	}
	return conge, nil
}

func (s *congeService) ListByEmploye(idEmploye uuid.UUID) ([]*models.Conge, error) {
	return s.conges.ListByEmploye(idEmploye)
}

func (s *congeService) ListByEntreprise(idEntreprise uuid.UUID) ([]*models.Conge, error) {
	return s.conges.ListByEntreprise(idEntreprise)
}

func (s *congeService) Update(conge *models.Conge) error {
	existing, err := s.conges.GetByID(conge.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCongeNotFound
	}
	return s.conges.Update(conge)
}

func (s *congeService) Approve(id, approvedBy uuid.UUID) error {
	return s.setStatut(id, models.CongeStatutApprouve, approvedBy)
}

func (s *congeService) Reject(id, approvedBy uuid.UUID) error {
	return s.setStatut(id, models.CongeStatutRefuse, approvedBy)
}

func (s *congeService) setStatut(id uuid.UUID, statut string, approvedBy uuid.UUID) error {
	existing, err := s.conges.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCongeNotFound
	}
	if err := s.conges.UpdateStatut(id, statut, approvedBy); err != nil {
		return err
	}
	log.Printf("[conge][statut] id=%s statut=%s by=%s", id, statut, approvedBy)
	return nil
}

func (s *congeService) Delete(id uuid.UUID) error {
	existing, err := s.conges.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCongeNotFound
	}
	return s.conges.Delete(id)
}
