package services

import (
	"github.com/google/uuid"

	"fingertrack/internal/models"
	"fingertrack/internal/repositories"
)

type PosteService interface {
	Create(poste *models.Poste) (*models.Poste, error)
	GetByID(id uuid.UUID) (*models.Poste, error)
	ListByEntreprise(idEntreprise uuid.UUID, limit, offset int) ([]*models.Poste, error)
	Update(poste *models.Poste) error
	Delete(id uuid.UUID) error
}

type posteService struct {
	postes repositories.PosteRepository
}

func NewPosteService(postes repositories.PosteRepository) PosteService {
	return &posteService{postes: postes}
}

// Create reuses an existing position with the same name inside the company
// instead of duplicating it.
func (s *posteService) Create(poste *models.Poste) (*models.Poste, error) {
	existing, err := s.postes.GetByNameAndEntreprise(poste.Nom, poste.IDEntreprise)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	if err := s.postes.Create(poste); err != nil {
		return nil, err
	}
	return poste, nil
}

func (s *posteService) GetByID(id uuid.UUID) (*models.Poste, error) {
	return s.postes.GetByID(id)
}

func (s *posteService) ListByEntreprise(idEntreprise uuid.UUID, limit, offset int) ([]*models.Poste, error) {
	return s.postes.ListByEntreprise(idEntreprise, limit, offset)
}

func (s *posteService) Update(poste *models.Poste) error {
	return s.postes.Update(poste)
}

func (s *posteService) Delete(id uuid.UUID) error {
	return s.postes.Delete(id)
}
