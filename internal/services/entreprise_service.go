package services

import (
	"github.com/google/uuid"

	"fingertrack/internal/models"
	"fingertrack/internal/repositories"
)

type EntrepriseService interface {
	Create(entreprise *models.Entreprise) (*models.Entreprise, error)
	GetByID(id uuid.UUID) (*models.Entreprise, error)
	Update(entreprise *models.Entreprise) error
	Delete(id uuid.UUID) error
	List(limit, offset int) ([]*models.Entreprise, error)
}

type entrepriseService struct {
	entreprises repositories.EntrepriseRepository
}

func NewEntrepriseService(entreprises repositories.EntrepriseRepository) EntrepriseService {
	return &entrepriseService{entreprises: entreprises}
}

func (s *entrepriseService) Create(entreprise *models.Entreprise) (*models.Entreprise, error) {
	existing, err := s.entreprises.GetByName(entreprise.Nom)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEntrepriseTaken
	}
	if err := s.entreprises.Create(entreprise); err != nil {
		return nil, err
	}
	return entreprise, nil
}

func (s *entrepriseService) GetByID(id uuid.UUID) (*models.Entreprise, error) {
	entreprise, err := s.entreprises.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entreprise == nil {
		return nil, ErrEntrepriseNotFound
	}
	return entreprise, nil
}

func (s *entrepriseService) Update(entreprise *models.Entreprise) error {
	existing, err := s.entreprises.GetByID(entreprise.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrEntrepriseNotFound
	}
	return s.entreprises.Update(entreprise)
}

func (s *entrepriseService) Delete(id uuid.UUID) error {
	existing, err := s.entreprises.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrEntrepriseNotFound
	}
	return s.entreprises.Delete(id)
}

func (s *entrepriseService) List(limit, offset int) ([]*models.Entreprise, error) {
	return s.entreprises.List(limit, offset)
}
