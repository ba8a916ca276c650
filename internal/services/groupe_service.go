package services

import (
	"github.com/google/uuid"

	"fingertrack/internal/models"
	"fingertrack/internal/repositories"
)

// GroupeService covers groups and their schedule configurations.
type GroupeService interface {
	Create(groupe *models.Groupe) (*models.Groupe, error)
	GetByID(id uuid.UUID) (*models.Groupe, error)
	ListByEntreprise(idEntreprise uuid.UUID) ([]*models.Groupe, error)
	Update(groupe *models.Groupe) error
	Delete(id uuid.UUID) error

	AddConfiguration(idGroupe uuid.UUID, c *models.ConfigurationHoraire) (*models.ConfigurationHoraire, error)
	ListConfigurations(idGroupe uuid.UUID) ([]*models.ConfigurationHoraire, error)
	UpdateConfiguration(c *models.ConfigurationHoraire) error
	DeleteConfiguration(id uuid.UUID) error
}

type groupeService struct {
	groupes repositories.GroupeRepository
}

func NewGroupeService(groupes repositories.GroupeRepository) GroupeService {
	return &groupeService{groupes: groupes}
}

func (s *groupeService) Create(groupe *models.Groupe) (*models.Groupe, error) {
	if err := s.groupes.Create(groupe); err != nil {
		return nil, err
	}
	return groupe, nil
}

func (s *groupeService) GetByID(id uuid.UUID) (*models.Groupe, error) {
	groupe, err := s.groupes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if groupe == nil {
		return nil, ErrGroupeNotFound
	}
	return groupe, nil
}

func (s *groupeService) ListByEntreprise(idEntreprise uuid.UUID) ([]*models.Groupe, error) {
	return s.groupes.ListByEntreprise(idEntreprise)
}

func (s *groupeService) Update(groupe *models.Groupe) error {
	existing, err := s.groupes.GetByID(groupe.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrGroupeNotFound
	}
	return s.groupes.Update(groupe)
}

func (s *groupeService) Delete(id uuid.UUID) error {
	existing, err := s.groupes.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrGroupeNotFound
	}
	return s.groupes.Delete(id)
}

func (s *groupeService) AddConfiguration(idGroupe uuid.UUID, c *models.ConfigurationHoraire) (*models.ConfigurationHoraire, error) {
	groupe, err := s.groupes.GetByID(idGroupe)
	if err != nil {
		return nil, err
	}
	if groupe == nil {
		return nil, ErrGroupeNotFound
	}
	c.IDGroupe = idGroupe
	if err := s.groupes.CreateConfiguration(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *groupeService) ListConfigurations(idGroupe uuid.UUID) ([]*models.ConfigurationHoraire, error) {
	return s.groupes.ListConfigurations(idGroupe)
}

func (s *groupeService) UpdateConfiguration(c *models.ConfigurationHoraire) error {
	return s.groupes.UpdateConfiguration(c)
}

func (s *groupeService) DeleteConfiguration(id uuid.UUID) error {
	return s.groupes.DeleteConfiguration(id)
}
