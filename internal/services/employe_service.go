package services

import (
	"log"
	"time"

	"github.com/google/uuid"

	"fingertrack/internal/models"
	"fingertrack/internal/repositories"
	"fingertrack/internal/utils"
)

const EventFingerprintValidated = "FINGERPRINT_VALIDATED"

type EmployeService interface {
	Create(employe *models.Employe, password string) (*models.Employe, error)
	GetByID(id uuid.UUID) (*models.Employe, error)
	Update(employe *models.Employe) error
	Delete(id uuid.UUID) error
	ListByEntreprise(idEntreprise uuid.UUID, limit, offset int) ([]*models.Employe, error)

	// PendingFingerprintNotifications derives the notification feed from
	// employees that still lack a fingerprint. Nothing is read from an
	// event log.
	PendingFingerprintNotifications(idEntreprise uuid.UUID) ([]*models.Notification, error)

	// ValidateFingerprint stores the first biometric sample for the
	// employee and closes their onboarding workflow.
	ValidateFingerprint(idEmploye uuid.UUID, donnees []byte) (*models.Empreinte, error)
}

type employeService struct {
	employes     repositories.EmployeRepository
	empreintes   repositories.EmpreinteRepository
	registration RegistrationService
	auth         AuthService
	emails       EmailService
	publisher    Publisher
}

func NewEmployeService(
	employes repositories.EmployeRepository,
	empreintes repositories.EmpreinteRepository,
	registration RegistrationService,
	auth AuthService,
	emails EmailService,
	publisher Publisher,
) EmployeService {
	return &employeService{
		employes:     employes,
		empreintes:   empreintes,
		registration: registration,
		auth:         auth,
		emails:       emails,
		publisher:    publisher,
	}
}

// Create is the direct admin path, bypassing self-registration. A generated
// password is mailed when none is given.
func (s *employeService) Create(employe *models.Employe, password string) (*models.Employe, error) {
	if existing, err := s.employes.GetByEmail(employe.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrEmailTaken
	}
	if existing, err := s.employes.GetByEmployeeID(employe.EmployeeID); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrEmployeeCodeTaken
	}

	generated := false
	if password == "" {
		var err error
		password, err = utils.NewTempPassword(12)
		if err != nil {
			return nil, err
		}
		generated = true
	}
	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	employe.PasswordHash = hash
	if employe.Role == "" {
		employe.Role = models.RoleEmployee
	}

	if err := s.employes.Create(employe); err != nil {
		return nil, err
	}
	if generated {
		if err := s.emails.SendWelcomeEmail(employe.Email, password); err != nil {
			log.Printf("[employe][create] welcome email failed email=%q err=%v", employe.Email, err)
		}
	}

	now := time.Now().UTC()
	s.publisher.Publish(employe.IDEntreprise.String(), EventEmployeCreated, models.Notification{
		ID:           uuid.New(),
		IDEmploye:    employe.ID,
		EmployeeName: employe.DisplayName(),
		Message:      "Awaiting fingerprint validation.",
		IDEntreprise: employe.IDEntreprise,
		CreatedAt:    &now,
	})
	return employe, nil
}

func (s *employeService) GetByID(id uuid.UUID) (*models.Employe, error) {
	employe, err := s.employes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employe == nil {
		return nil, ErrEmployeNotFound
	}
	return employe, nil
}

func (s *employeService) Update(employe *models.Employe) error {
	existing, err := s.employes.GetByID(employe.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrEmployeNotFound
	}
	return s.employes.Update(employe)
}

func (s *employeService) Delete(id uuid.UUID) error {
	existing, err := s.employes.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrEmployeNotFound
	}
	return s.employes.Delete(id)
}

func (s *employeService) ListByEntreprise(idEntreprise uuid.UUID, limit, offset int) ([]*models.Employe, error) {
	return s.employes.ListByEntreprise(idEntreprise, limit, offset)
}

func (s *employeService) PendingFingerprintNotifications(idEntreprise uuid.UUID) ([]*models.Notification, error) {
	rows, err := s.employes.ListWithoutFingerprint(idEntreprise)
	if err != nil {
		return nil, err
	}
	notifications := make([]*models.Notification, 0, len(rows))
	for _, row := range rows {
		department := row.GroupeName
		if department == "" {
			department = "N/A"
		}
		created := row.Employe.CreatedAt
		notifications = append(notifications, &models.Notification{
			ID:           uuid.New(),
			IDEmploye:    row.Employe.ID,
			EmployeeName: row.Employe.DisplayName(),
			Department:   department,
			Message:      "En attente de validation d'empreinte",
			IDEntreprise: idEntreprise,
			CreatedAt:    &created,
		})
	}
	return notifications, nil
}

func (s *employeService) ValidateFingerprint(idEmploye uuid.UUID, donnees []byte) (*models.Empreinte, error) {
	employe, err := s.employes.GetByID(idEmploye)
	if err != nil {
		return nil, err
	}
	if employe == nil {
		return nil, ErrEmployeNotFound
	}

	empreinte := &models.Empreinte{
		IDEmploye:           idEmploye,
		DonneesBiometriques: donnees,
	}
	if err := s.empreintes.Create(empreinte); err != nil {
		return nil, err
	}

	// Employees created directly by an admin have no pending workflow;
	// that is not an error here.
	if err := s.registration.CompleteFingerprintValidation(employe.Email); err != nil &&
		err != ErrPendingNotFound && err != ErrFingerprintNotPending {
		return nil, err
	}

	now := time.Now().UTC()
	s.publisher.Publish(employe.IDEntreprise.String(), EventFingerprintValidated, models.Notification{
		ID:           uuid.New(),
		IDEmploye:    employe.ID,
		EmployeeName: employe.DisplayName(),
		Message:      "Empreinte validée",
		IDEntreprise: employe.IDEntreprise,
		CreatedAt:    &now,
	})
	log.Printf("[employe][fingerprint] validated employe=%s", idEmploye)
	return empreinte, nil
}
