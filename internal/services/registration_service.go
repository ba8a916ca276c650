package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"fingertrack/internal/models"
	"fingertrack/internal/repositories"
	"fingertrack/internal/utils"
)

// Publisher pushes an event to every live subscriber of a company channel.
// Satisfied by realtime.Broadcaster.
type Publisher interface {
	Publish(companyID, event string, data interface{})
}

const (
	EventEmployeCreated = "EMPLOYE_CREATED"

	// Code sizes in random bytes (hex-encoded, so twice as many chars).
	userCodeBytes    = 3
	companyCodeBytes = 2

	// The pending record is the long-lived workflow container; codes are the
	// short-lived per-step proofs.
	pendingTTL     = 24 * time.Hour
	fingerprintTTL = 24 * time.Hour
)

// Verification codes live in one store keyed by identifier. User and
// company emails get separate namespaces so a user whose address doubles as
// the company contact cannot collide.
func userCodeKey(email string) string    { return "user:" + strings.ToLower(strings.TrimSpace(email)) }
func companyCodeKey(email string) string { return "company:" + strings.ToLower(strings.TrimSpace(email)) }

// RegistrationState is the resume payload: which step the client should
// re-enter plus everything it already submitted.
type RegistrationState struct {
	Step         string               `json:"step"`
	UserEmail    string               `json:"user_email"`
	PersonalInfo *models.PersonalInfo `json:"personal_info,omitempty"`
	CompanyInfo  *models.CompanyInfo  `json:"company_info,omitempty"`
	Role         *string              `json:"role,omitempty"`
	ExpiresAt    time.Time            `json:"expires_at"`
}

// RegistrationService drives the multi-step signup workflow:
// personal info -> user email verification -> (company info -> company
// verification, admin path only) -> finalization -> fingerprint validation.
// Every step persists enough state for a disconnected client to resume.
type RegistrationService interface {
	SubmitPersonalInfo(info *models.PersonalInfo) (time.Time, error)
	VerifyUserEmail(email, code string) (time.Time, error)
	SubmitCompanyInfo(userEmail string, info *models.CompanyInfo) (time.Time, error)
	VerifyCompanyEmail(userEmail, companyCode string) (time.Time, error)
	CompleteRegistration(data *models.FinalRegistrationData) (*models.Employe, error)
	CompleteFingerprintValidation(userEmail string) error
	PendingState(userEmail string) (*RegistrationState, error)
	SweepExpired() error
}

type registrationService struct {
	codes       repositories.VerificationCodeRepository
	pending     repositories.PendingRegistrationRepository
	employes    repositories.EmployeRepository
	groupes     repositories.GroupeRepository
	entreprises repositories.EntrepriseRepository
	postes      repositories.PosteRepository
	emails      EmailService
	auth        AuthService
	publisher   Publisher
	codeTTL     time.Duration
}

func NewRegistrationService(
	codes repositories.VerificationCodeRepository,
	pending repositories.PendingRegistrationRepository,
	employes repositories.EmployeRepository,
	groupes repositories.GroupeRepository,
	entreprises repositories.EntrepriseRepository,
	postes repositories.PosteRepository,
	emails EmailService,
	auth AuthService,
	publisher Publisher,
	codeTTL time.Duration,
) RegistrationService {
	if codeTTL <= 0 {
		codeTTL = 4 * time.Minute
	}
	return &registrationService{
		codes:       codes,
		pending:     pending,
		employes:    employes,
		groupes:     groupes,
		entreprises: entreprises,
		postes:      postes,
		emails:      emails,
		auth:        auth,
		publisher:   publisher,
		codeTTL:     codeTTL,
	}
}

// SubmitPersonalInfo opens (or restarts) a registration. Rejected when the
// email or employee id already belongs to a durable employee, or while a
// live code is still out for this email.
func (s *registrationService) SubmitPersonalInfo(info *models.PersonalInfo) (time.Time, error) {
	email := strings.ToLower(strings.TrimSpace(info.UserEmail))
	info.UserEmail = email

	if existing, err := s.employes.GetByEmail(email); err != nil {
		return time.Time{}, err
	} else if existing != nil {
		return time.Time{}, ErrEmailTaken
	}
	if existing, err := s.employes.GetByEmployeeID(info.EmployeeID); err != nil {
		return time.Time{}, err
	} else if existing != nil {
		return time.Time{}, ErrEmployeeCodeTaken
	}

	if code, err := s.codes.Get(userCodeKey(email)); err != nil {
		return time.Time{}, err
	} else if code != "" {
		return time.Time{}, ErrCodeAlreadySent
	}

	code, err := utils.NewVerificationCode(userCodeBytes)
	if err != nil {
		return time.Time{}, fmt.Errorf("generate code: %w", err)
	}
	codeExpiry := time.Now().UTC().Add(s.codeTTL)
	if err := s.codes.Set(userCodeKey(email), code, s.codeTTL); err != nil {
		return time.Time{}, err
	}

	info.Status = models.StatusAwaitingEmailVerification
	if err := s.pending.Upsert(email, info, time.Now().UTC().Add(pendingTTL)); err != nil {
		return time.Time{}, err
	}

	// Send failure is surfaced without rolling anything back: between the
	// code write and the email there is an accepted window where a stored
	// code was never delivered. The caller retries after code expiry.
	if err := s.emails.SendVerificationCode(email, code, int(s.codeTTL.Minutes())); err != nil {
		log.Printf("[register][personal-info] email send failed email=%q err=%v", email, err)
		return time.Time{}, fmt.Errorf("send verification email: %w", err)
	}

	log.Printf("[register][personal-info] code sent email=%q expires=%s", email, codeExpiry.Format(time.RFC3339))
	return codeExpiry, nil
}

// VerifyUserEmail consumes the user code. A mismatch keeps both the code and
// the pending record untouched (no attempt counter: guessing is bounded only
// by the code TTL).
func (s *registrationService) VerifyUserEmail(email, code string) (time.Time, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	stored, err := s.codes.Get(userCodeKey(email))
	if err != nil {
		return time.Time{}, err
	}
	if stored == "" {
		return time.Time{}, ErrCodeNotFound
	}
	if stored != code {
		return time.Time{}, ErrCodeMismatch
	}

	pending, err := s.pending.Get(email)
	if err != nil {
		return time.Time{}, err
	}
	if pending == nil || pending.PersonalInfo == nil {
		return time.Time{}, ErrPendingNotFound
	}

	if err := s.codes.Delete(userCodeKey(email)); err != nil {
		return time.Time{}, err
	}
	info := *pending.PersonalInfo
	info.Status = models.StatusEmailVerified
	if err := s.pending.UpdatePersonalInfo(email, &info); err != nil {
		return time.Time{}, err
	}

	log.Printf("[register][verify-user] OK email=%q", email)
	return pending.ExpiresAt, nil
}

// SubmitCompanyInfo starts the admin path. The company contact email gets
// its own code, independent of the user one.
func (s *registrationService) SubmitCompanyInfo(userEmail string, info *models.CompanyInfo) (time.Time, error) {
	userEmail = strings.ToLower(strings.TrimSpace(userEmail))

	pending, err := s.pending.Get(userEmail)
	if err != nil {
		return time.Time{}, err
	}
	if pending == nil {
		return time.Time{}, ErrPendingNotFound
	}
	if pending.Status() != models.StatusEmailVerified {
		return time.Time{}, ErrEmailNotVerified
	}

	contact := strings.ToLower(strings.TrimSpace(info.CompanyContactEmail))
	info.CompanyContactEmail = contact

	if code, err := s.codes.Get(companyCodeKey(contact)); err != nil {
		return time.Time{}, err
	} else if code != "" {
		return time.Time{}, ErrCodeAlreadySent
	}

	if err := s.pending.UpdateCompanyInfo(userEmail, info); err != nil {
		return time.Time{}, err
	}

	code, err := utils.NewVerificationCode(companyCodeBytes)
	if err != nil {
		return time.Time{}, fmt.Errorf("generate code: %w", err)
	}
	codeExpiry := time.Now().UTC().Add(s.codeTTL)
	if err := s.codes.Set(companyCodeKey(contact), code, s.codeTTL); err != nil {
		return time.Time{}, err
	}
	if err := s.emails.SendVerificationCode(contact, code, int(s.codeTTL.Minutes())); err != nil {
		log.Printf("[register][company-info] email send failed contact=%q err=%v", contact, err)
		return time.Time{}, fmt.Errorf("send verification email: %w", err)
	}

	log.Printf("[register][company-info] code sent contact=%q for user=%q", contact, userEmail)
	return codeExpiry, nil
}

// VerifyCompanyEmail validates against the contact email stored in the
// pending record and promotes the registrant to the admin role.
func (s *registrationService) VerifyCompanyEmail(userEmail, companyCode string) (time.Time, error) {
	userEmail = strings.ToLower(strings.TrimSpace(userEmail))

	pending, err := s.pending.Get(userEmail)
	if err != nil {
		return time.Time{}, err
	}
	if pending == nil || pending.CompanyInfo == nil {
		return time.Time{}, ErrCompanyInfoMissing
	}

	contact := pending.CompanyInfo.CompanyContactEmail
	stored, err := s.codes.Get(companyCodeKey(contact))
	if err != nil {
		return time.Time{}, err
	}
	if stored == "" {
		return time.Time{}, ErrCodeNotFound
	}
	if stored != companyCode {
		return time.Time{}, ErrCodeMismatch
	}

	if err := s.codes.Delete(companyCodeKey(contact)); err != nil {
		return time.Time{}, err
	}
	if err := s.pending.UpdateRole(userEmail, models.RoleAdmin); err != nil {
		return time.Time{}, err
	}

	log.Printf("[register][verify-company] OK user=%q contact=%q", userEmail, contact)
	return pending.ExpiresAt, nil
}

// CompleteRegistration persists the durable entities. Admins create their
// company (position after it, since positions are company-scoped);
// employees join an existing company through their group. The pending row
// is then replaced with a fingerprint marker and EMPLOYE_CREATED pushed to
// the company channel.
func (s *registrationService) CompleteRegistration(data *models.FinalRegistrationData) (*models.Employe, error) {
	email := strings.ToLower(strings.TrimSpace(data.UserEmail))

	pending, err := s.pending.Get(email)
	if err != nil {
		return nil, err
	}
	if pending == nil {
		return nil, ErrPendingNotFound
	}
	if pending.Status() != models.StatusEmailVerified {
		return nil, ErrEmailNotVerified
	}

	role := models.RoleEmployee
	if pending.RoleAssigned != nil && *pending.RoleAssigned == models.RoleAdmin {
		role = models.RoleAdmin
	}

	var (
		idEntreprise uuid.UUID
		idGroupe     *uuid.UUID
		idPoste      *uuid.UUID
		groupeName   string
	)

	if role == models.RoleAdmin {
		if data.CompanyName == "" || data.CompanyContactEmail == "" {
			return nil, ErrCompanyInfoRequired
		}
		if existing, err := s.entreprises.GetByName(data.CompanyName); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, ErrEntrepriseTaken
		}
		contact := strings.ToLower(data.CompanyContactEmail)
		entreprise := &models.Entreprise{
			Nom:          data.CompanyName,
			ContactEmail: &contact,
		}
		if data.Adresse != "" {
			entreprise.Adresse = &data.Adresse
		}
		if err := s.entreprises.Create(entreprise); err != nil {
			return nil, err
		}
		idEntreprise = entreprise.ID
	} else {
		if data.IDGroupe == nil {
			return nil, ErrGroupeRequired
		}
		groupe, err := s.groupes.GetByID(*data.IDGroupe)
		if err != nil {
			return nil, err
		}
		if groupe == nil {
			return nil, ErrGroupeNotFound
		}
		idEntreprise = groupe.IDEntreprise
		idGroupe = &groupe.ID
		groupeName = groupe.Nom
	}

	if data.Position != "" {
		poste, err := s.resolvePoste(data.Position, idEntreprise)
		if err != nil {
			return nil, err
		}
		idPoste = &poste.ID
	}

	password := data.Password
	generated := false
	if password == "" {
		password, err = utils.NewTempPassword(12)
		if err != nil {
			return nil, fmt.Errorf("generate temp password: %w", err)
		}
		generated = true
	}
	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	employe := &models.Employe{
		Nom:          data.LastName,
		Prenom:       data.FirstName,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		EmployeeID:   data.EmployeeID,
		IDEntreprise: idEntreprise,
		IDGroupe:     idGroupe,
		IDPoste:      idPoste,
	}
	if data.PhoneNumber != "" {
		employe.PhoneNumber = &data.PhoneNumber
	}
	if err := s.employes.Create(employe); err != nil {
		return nil, err
	}

	if generated {
		if err := s.emails.SendWelcomeEmail(email, password); err != nil {
			// warn but do not fail creation
			log.Printf("[register][complete] welcome email failed email=%q err=%v", email, err)
		}
	}

	if err := s.pending.Delete(email); err != nil {
		return nil, err
	}
	marker := &models.PersonalInfo{
		UserEmail: email,
		Status:    models.StatusPendingFingerprint,
	}
	if err := s.pending.Upsert(email, marker, time.Now().UTC().Add(fingerprintTTL)); err != nil {
		return nil, err
	}

	if groupeName == "" {
		groupeName = "N/A"
	}
	now := time.Now().UTC()
	s.publisher.Publish(idEntreprise.String(), EventEmployeCreated, models.Notification{
		ID:           uuid.New(),
		IDEmploye:    employe.ID,
		EmployeeName: employe.DisplayName(),
		Department:   groupeName,
		Message:      "Awaiting fingerprint validation.",
		IDEntreprise: idEntreprise,
		CreatedAt:    &now,
	})

	log.Printf("[register][complete] employe created id=%s email=%q role=%s company=%s",
		employe.ID, email, role, idEntreprise)
	return employe, nil
}

func (s *registrationService) resolvePoste(nom string, idEntreprise uuid.UUID) (*models.Poste, error) {
	poste, err := s.postes.GetByNameAndEntreprise(nom, idEntreprise)
	if err != nil {
		return nil, err
	}
	if poste != nil {
		return poste, nil
	}
	poste = &models.Poste{Nom: nom, IDEntreprise: idEntreprise}
	if err := s.postes.Create(poste); err != nil {
		return nil, err
	}
	return poste, nil
}

// CompleteFingerprintValidation closes the workflow once a fingerprint
// landed for the employee.
func (s *registrationService) CompleteFingerprintValidation(userEmail string) error {
	email := strings.ToLower(strings.TrimSpace(userEmail))

	pending, err := s.pending.Get(email)
	if err != nil {
		return err
	}
	if pending == nil {
		return ErrPendingNotFound
	}
	if pending.Status() != models.StatusPendingFingerprint {
		return ErrFingerprintNotPending
	}
	if err := s.pending.Delete(email); err != nil {
		return err
	}
	log.Printf("[register][fingerprint] validated email=%q", email)
	return nil
}

// PendingState lets a disconnected client resynchronize without redoing
// completed steps.
func (s *registrationService) PendingState(userEmail string) (*RegistrationState, error) {
	email := strings.ToLower(strings.TrimSpace(userEmail))

	pending, err := s.pending.Get(email)
	if err != nil {
		return nil, err
	}
	if pending == nil {
		return nil, ErrPendingNotFound
	}
	return &RegistrationState{
		Step:         pending.Step(),
		UserEmail:    email,
		PersonalInfo: pending.PersonalInfo,
		CompanyInfo:  pending.CompanyInfo,
		Role:         pending.RoleAssigned,
		ExpiresAt:    pending.ExpiresAt,
	}, nil
}

// SweepExpired bulk-removes expired codes and pending registrations. Run at
// startup and on the maintenance ticker.
func (s *registrationService) SweepExpired() error {
	codes, err := s.codes.SweepExpired()
	if err != nil {
		return err
	}
	pendings, err := s.pending.SweepExpired()
	if err != nil {
		return err
	}
	log.Printf("[register][sweep] removed codes=%d pendings=%d", codes, pendings)
	return nil
}
