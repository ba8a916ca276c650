package services

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"fingertrack/internal/models"
	"fingertrack/internal/repositories"
)

type fakeEmpreinteRepo struct {
	byEmploye map[uuid.UUID][]*models.Empreinte
}

func newFakeEmpreinteRepo() *fakeEmpreinteRepo {
	return &fakeEmpreinteRepo{byEmploye: map[uuid.UUID][]*models.Empreinte{}}
}

func (r *fakeEmpreinteRepo) Create(e *models.Empreinte) error {
	e.ID = uuid.New()
	r.byEmploye[e.IDEmploye] = append(r.byEmploye[e.IDEmploye], e)
	return nil
}

func (r *fakeEmpreinteRepo) GetByID(id uuid.UUID) (*models.Empreinte, error) { return nil, nil }

func (r *fakeEmpreinteRepo) ListByEmploye(idEmploye uuid.UUID) ([]*models.Empreinte, error) {
	return r.byEmploye[idEmploye], nil
}

func (r *fakeEmpreinteRepo) CountByEmploye(idEmploye uuid.UUID) (int, error) {
	return len(r.byEmploye[idEmploye]), nil
}

func (r *fakeEmpreinteRepo) Delete(id uuid.UUID) error { return nil }

type employeFixture struct {
	*registrationFixture
	empreintes *fakeEmpreinteRepo
	svc        EmployeService
}

func newEmployeFixture() *employeFixture {
	base := newRegistrationFixture()
	empreintes := newFakeEmpreinteRepo()
	return &employeFixture{
		registrationFixture: base,
		empreintes:          empreintes,
		svc: NewEmployeService(
			base.employes, empreintes, base.svc, fakeAuthService{}, base.emails, base.publisher,
		),
	}
}

func TestValidateFingerprintClosesOnboarding(t *testing.T) {
	f := newEmployeFixture()
	email := "worker@example.com"

	// Run a registration up to the fingerprint marker.
	entreprise := &models.Entreprise{Nom: "Globex"}
	if err := f.entreprises.Create(entreprise); err != nil {
		t.Fatal(err)
	}
	groupe := &models.Groupe{Nom: "Maintenance", IDEntreprise: entreprise.ID}
	if err := f.groupes.Create(groupe); err != nil {
		t.Fatal(err)
	}
	if _, err := f.registrationFixture.svc.SubmitPersonalInfo(personalInfo(email)); err != nil {
		t.Fatal(err)
	}
	f.verifyEmail(t, email)
	employe, err := f.registrationFixture.svc.CompleteRegistration(&models.FinalRegistrationData{
		UserEmail:  email,
		FirstName:  "Moussa",
		LastName:   "Traoré",
		EmployeeID: "EMP-042",
		IDGroupe:   &groupe.ID,
	})
	if err != nil {
		t.Fatal(err)
	}

	empreinte, err := f.svc.ValidateFingerprint(employe.ID, []byte{0x01, 0x02})
	if err != nil {
		t.Fatalf("ValidateFingerprint: %v", err)
	}
	if empreinte.IDEmploye != employe.ID {
		t.Fatal("fingerprint not attached to employee")
	}

	// Pending workflow is gone.
	if _, err := f.registrationFixture.svc.PendingState(email); err != ErrPendingNotFound {
		t.Fatalf("pending state err = %v, want ErrPendingNotFound", err)
	}

	// One EMPLOYE_CREATED from finalization, one FINGERPRINT_VALIDATED now.
	last := f.publisher.events[len(f.publisher.events)-1]
	if last.event != EventFingerprintValidated {
		t.Fatalf("last event = %q, want %q", last.event, EventFingerprintValidated)
	}
}

func TestValidateFingerprintWithoutWorkflow(t *testing.T) {
	f := newEmployeFixture()

	// Directly created employees have no pending registration; validation
	// still stores the fingerprint.
	employe := &models.Employe{Email: "direct@example.com", EmployeeID: "EMP-9", IDEntreprise: uuid.New()}
	if err := f.employes.Create(employe); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.ValidateFingerprint(employe.ID, []byte{0xff}); err != nil {
		t.Fatalf("ValidateFingerprint: %v", err)
	}
	if n, _ := f.empreintes.CountByEmploye(employe.ID); n != 1 {
		t.Fatalf("fingerprints = %d, want 1", n)
	}
}

func TestValidateFingerprintUnknownEmployee(t *testing.T) {
	f := newEmployeFixture()
	if _, err := f.svc.ValidateFingerprint(uuid.New(), []byte{0x01}); err != ErrEmployeNotFound {
		t.Fatalf("err = %v, want ErrEmployeNotFound", err)
	}
}

func TestPendingFingerprintNotifications(t *testing.T) {
	f := newEmployeFixture()
	idEntreprise := uuid.New()

	f.employes.withoutFingerprint = []*repositories.EmployeWithGroupe{
		{
			Employe: models.Employe{
				ID:           uuid.New(),
				Nom:          "Diallo",
				Prenom:       "Awa",
				IDEntreprise: idEntreprise,
				CreatedAt:    time.Now(),
			},
			GroupeName: "Maintenance",
		},
		{
			Employe: models.Employe{
				ID:           uuid.New(),
				Nom:          "Traoré",
				Prenom:       "Moussa",
				IDEntreprise: idEntreprise,
				CreatedAt:    time.Now(),
			},
		},
	}

	notifications, err := f.svc.PendingFingerprintNotifications(idEntreprise)
	if err != nil {
		t.Fatal(err)
	}
	if len(notifications) != 2 {
		t.Fatalf("notifications = %d, want 2", len(notifications))
	}
	if notifications[0].EmployeeName != "Awa Diallo" || notifications[0].Department != "Maintenance" {
		t.Fatalf("first notification = %+v", notifications[0])
	}
	// Employees without a group still get a placeholder department.
	if notifications[1].Department != "N/A" {
		t.Fatalf("department = %q, want N/A", notifications[1].Department)
	}

	// Another company sees nothing.
	other, err := f.svc.PendingFingerprintNotifications(uuid.New())
	if err != nil {
		t.Fatal(err)
	}
	if len(other) != 0 {
		t.Fatal("notifications leaked across companies")
	}
}

func TestCreateEmployeDirect(t *testing.T) {
	f := newEmployeFixture()
	idEntreprise := uuid.New()

	created, err := f.svc.Create(&models.Employe{
		Nom:          "Diallo",
		Prenom:       "Awa",
		Email:        "awa@example.com",
		EmployeeID:   "EMP-7",
		IDEntreprise: idEntreprise,
	}, "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Role != models.RoleEmployee {
		t.Fatalf("role = %q, want employee default", created.Role)
	}
	if created.PasswordHash == "" {
		t.Fatal("no password hash set")
	}
	// Generated password was mailed.
	if len(f.emails.welcome) != 1 {
		t.Fatalf("welcome emails = %d, want 1", len(f.emails.welcome))
	}
	// Creation event reached the company channel.
	last := f.publisher.events[len(f.publisher.events)-1]
	if last.event != EventEmployeCreated || last.companyID != idEntreprise.String() {
		t.Fatalf("last event = %+v", last)
	}

	// Duplicate email rejected.
	if _, err := f.svc.Create(&models.Employe{
		Email: "awa@example.com", EmployeeID: "EMP-8", IDEntreprise: idEntreprise,
	}, ""); err != ErrEmailTaken {
		t.Fatalf("duplicate err = %v, want ErrEmailTaken", err)
	}
}
