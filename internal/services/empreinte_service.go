package services

import (
	"github.com/google/uuid"

	"fingertrack/internal/models"
	"fingertrack/internal/repositories"
)

type EmpreinteService interface {
	Create(empreinte *models.Empreinte) (*models.Empreinte, error)
	ListByEmploye(idEmploye uuid.UUID) ([]*models.Empreinte, error)
	Delete(id uuid.UUID) error
}

type empreinteService struct {
	empreintes repositories.EmpreinteRepository
	employes   repositories.EmployeRepository
}

func NewEmpreinteService(empreintes repositories.EmpreinteRepository, employes repositories.EmployeRepository) EmpreinteService {
	return &empreinteService{empreintes: empreintes, employes: employes}
}

func (s *empreinteService) Create(empreinte *models.Empreinte) (*models.Empreinte, error) {
	employe, err := s.employes.GetByID(empreinte.IDEmploye)
	if err != nil {
		return nil, err
	}
	if employe == nil {
		return nil, ErrEmployeNotFound
	}
	if err := s.empreintes.Create(empreinte); err != nil {
		return nil, err
	}
	return empreinte, nil
}

func (s *empreinteService) ListByEmploye(idEmploye uuid.UUID) ([]*models.Empreinte, error) {
	return s.empreintes.ListByEmploye(idEmploye)
}

func (s *empreinteService) Delete(id uuid.UUID) error {
	return s.empreintes.Delete(id)
}
