package services

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"fingertrack/internal/models"
	"fingertrack/internal/repositories"
)

// ---- in-memory fakes ----

type storedCode struct {
	code      string
	expiresAt time.Time
}

type fakeCodeRepo struct {
	codes map[string]storedCode
}

func newFakeCodeRepo() *fakeCodeRepo {
	return &fakeCodeRepo{codes: map[string]storedCode{}}
}

func (r *fakeCodeRepo) Set(identifier, code string, ttl time.Duration) error {
	r.codes[identifier] = storedCode{code: code, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (r *fakeCodeRepo) Get(identifier string) (string, error) {
	sc, ok := r.codes[identifier]
	if !ok || time.Now().After(sc.expiresAt) {
		return "", nil
	}
	return sc.code, nil
}

func (r *fakeCodeRepo) Delete(identifier string) error {
	delete(r.codes, identifier)
	return nil
}

func (r *fakeCodeRepo) SweepExpired() (int64, error) {
	var n int64
	for k, sc := range r.codes {
		if time.Now().After(sc.expiresAt) {
			delete(r.codes, k)
			n++
		}
	}
	return n, nil
}

// expire force-ages a code so resubmission tests need no real sleeping.
func (r *fakeCodeRepo) expire(identifier string) {
	if sc, ok := r.codes[identifier]; ok {
		sc.expiresAt = time.Now().Add(-time.Minute)
		r.codes[identifier] = sc
	}
}

type fakePendingRepo struct {
	rows map[string]*models.PendingRegistration
}

func newFakePendingRepo() *fakePendingRepo {
	return &fakePendingRepo{rows: map[string]*models.PendingRegistration{}}
}

func (r *fakePendingRepo) Upsert(userEmail string, info *models.PersonalInfo, expiresAt time.Time) error {
	copied := *info
	r.rows[userEmail] = &models.PendingRegistration{
		ID:           uuid.New(),
		UserEmail:    userEmail,
		PersonalInfo: &copied,
		CreatedAt:    time.Now(),
		ExpiresAt:    expiresAt,
	}
	return nil
}

func (r *fakePendingRepo) Get(userEmail string) (*models.PendingRegistration, error) {
	row, ok := r.rows[userEmail]
	if !ok || time.Now().After(row.ExpiresAt) {
		return nil, nil
	}
	copied := *row
	return &copied, nil
}

func (r *fakePendingRepo) UpdatePersonalInfo(userEmail string, info *models.PersonalInfo) error {
	row, ok := r.rows[userEmail]
	if !ok {
		return repositories.ErrPendingNotFound
	}
	copied := *info
	row.PersonalInfo = &copied
	return nil
}

func (r *fakePendingRepo) UpdateCompanyInfo(userEmail string, info *models.CompanyInfo) error {
	row, ok := r.rows[userEmail]
	if !ok {
		return repositories.ErrPendingNotFound
	}
	copied := *info
	row.CompanyInfo = &copied
	return nil
}

func (r *fakePendingRepo) UpdateRole(userEmail, role string) error {
	row, ok := r.rows[userEmail]
	if !ok {
		return repositories.ErrPendingNotFound
	}
	row.RoleAssigned = &role
	return nil
}

func (r *fakePendingRepo) Delete(userEmail string) error {
	delete(r.rows, userEmail)
	return nil
}

func (r *fakePendingRepo) SweepExpired() (int64, error) {
	var n int64
	for k, row := range r.rows {
		if time.Now().After(row.ExpiresAt) {
			delete(r.rows, k)
			n++
		}
	}
	return n, nil
}

type fakeEmployeRepo struct {
	byID map[uuid.UUID]*models.Employe

	// employees reported as lacking a fingerprint
	withoutFingerprint []*repositories.EmployeWithGroupe
}

func newFakeEmployeRepo() *fakeEmployeRepo {
	return &fakeEmployeRepo{byID: map[uuid.UUID]*models.Employe{}}
}

func (r *fakeEmployeRepo) Create(e *models.Employe) error {
	e.ID = uuid.New()
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	r.byID[e.ID] = e
	return nil
}

func (r *fakeEmployeRepo) GetByID(id uuid.UUID) (*models.Employe, error) {
	return r.byID[id], nil
}

func (r *fakeEmployeRepo) GetByEmail(email string) (*models.Employe, error) {
	email = strings.ToLower(email)
	for _, e := range r.byID {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeRepo) GetByEmployeeID(employeeID string) (*models.Employe, error) {
	for _, e := range r.byID {
		if e.EmployeeID == employeeID {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeRepo) Update(e *models.Employe) error {
	r.byID[e.ID] = e
	return nil
}

func (r *fakeEmployeRepo) Delete(id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeEmployeRepo) ListByEntreprise(idEntreprise uuid.UUID, limit, offset int) ([]*models.Employe, error) {
	var out []*models.Employe
	for _, e := range r.byID {
		if e.IDEntreprise == idEntreprise {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEmployeRepo) ListWithoutFingerprint(idEntreprise uuid.UUID) ([]*repositories.EmployeWithGroupe, error) {
	var out []*repositories.EmployeWithGroupe
	for _, row := range r.withoutFingerprint {
		if row.Employe.IDEntreprise == idEntreprise {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeGroupeRepo struct {
	byID map[uuid.UUID]*models.Groupe
}

func newFakeGroupeRepo() *fakeGroupeRepo {
	return &fakeGroupeRepo{byID: map[uuid.UUID]*models.Groupe{}}
}

func (r *fakeGroupeRepo) Create(g *models.Groupe) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	r.byID[g.ID] = g
	return nil
}

func (r *fakeGroupeRepo) GetByID(id uuid.UUID) (*models.Groupe, error) { return r.byID[id], nil }

func (r *fakeGroupeRepo) ListByEntreprise(idEntreprise uuid.UUID) ([]*models.Groupe, error) {
	return nil, nil
}
func (r *fakeGroupeRepo) Update(g *models.Groupe) error { return nil }
func (r *fakeGroupeRepo) Delete(id uuid.UUID) error     { return nil }
func (r *fakeGroupeRepo) CreateConfiguration(c *models.ConfigurationHoraire) error {
	return nil
}
func (r *fakeGroupeRepo) ListConfigurations(idGroupe uuid.UUID) ([]*models.ConfigurationHoraire, error) {
	return nil, nil
}
func (r *fakeGroupeRepo) UpdateConfiguration(c *models.ConfigurationHoraire) error { return nil }
func (r *fakeGroupeRepo) DeleteConfiguration(id uuid.UUID) error                   { return nil }

type fakeEntrepriseRepo struct {
	byID map[uuid.UUID]*models.Entreprise
}

func newFakeEntrepriseRepo() *fakeEntrepriseRepo {
	return &fakeEntrepriseRepo{byID: map[uuid.UUID]*models.Entreprise{}}
}

func (r *fakeEntrepriseRepo) Create(e *models.Entreprise) error {
	e.ID = uuid.New()
	r.byID[e.ID] = e
	return nil
}

func (r *fakeEntrepriseRepo) GetByID(id uuid.UUID) (*models.Entreprise, error) {
	return r.byID[id], nil
}

func (r *fakeEntrepriseRepo) GetByName(nom string) (*models.Entreprise, error) {
	for _, e := range r.byID {
		if e.Nom == nom {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeEntrepriseRepo) Update(e *models.Entreprise) error { return nil }
func (r *fakeEntrepriseRepo) Delete(id uuid.UUID) error         { return nil }
func (r *fakeEntrepriseRepo) List(limit, offset int) ([]*models.Entreprise, error) {
	return nil, nil
}

type fakePosteRepo struct {
	byID map[uuid.UUID]*models.Poste
}

func newFakePosteRepo() *fakePosteRepo {
	return &fakePosteRepo{byID: map[uuid.UUID]*models.Poste{}}
}

func (r *fakePosteRepo) Create(p *models.Poste) error {
	p.ID = uuid.New()
	r.byID[p.ID] = p
	return nil
}

func (r *fakePosteRepo) GetByID(id uuid.UUID) (*models.Poste, error) { return r.byID[id], nil }

func (r *fakePosteRepo) GetByNameAndEntreprise(nom string, idEntreprise uuid.UUID) (*models.Poste, error) {
	for _, p := range r.byID {
		if p.Nom == nom && p.IDEntreprise == idEntreprise {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePosteRepo) ListByEntreprise(idEntreprise uuid.UUID, limit, offset int) ([]*models.Poste, error) {
	return nil, nil
}
func (r *fakePosteRepo) Update(p *models.Poste) error { return nil }
func (r *fakePosteRepo) Delete(id uuid.UUID) error    { return nil }

type sentEmail struct {
	to   string
	code string
}

type fakeEmailService struct {
	sent    []sentEmail
	welcome []string
}

func (s *fakeEmailService) SendVerificationCode(email, code string, ttlMinutes int) error {
	s.sent = append(s.sent, sentEmail{to: email, code: code})
	return nil
}

func (s *fakeEmailService) SendWelcomeEmail(email, tempPassword string) error {
	s.welcome = append(s.welcome, email)
	return nil
}

func (s *fakeEmailService) lastCodeFor(email string) string {
	for i := len(s.sent) - 1; i >= 0; i-- {
		if s.sent[i].to == email {
			return s.sent[i].code
		}
	}
	return ""
}

type fakeAuthService struct{}

func (fakeAuthService) HashPassword(plain string) (string, error) { return "hashed:" + plain, nil }
func (fakeAuthService) Authenticate(email, password string) (*LoginResult, error) {
	return nil, ErrInvalidCredentials
}
func (fakeAuthService) RevokeSession(sessionID uuid.UUID, current *models.Employe) error {
	return nil
}
func (fakeAuthService) SweepSessions() (int64, error) { return 0, nil }

type publishedEvent struct {
	companyID string
	event     string
	data      interface{}
}

type fakePublisher struct {
	events []publishedEvent
}

func (p *fakePublisher) Publish(companyID, event string, data interface{}) {
	p.events = append(p.events, publishedEvent{companyID: companyID, event: event, data: data})
}

// ---- fixture ----

type registrationFixture struct {
	codes       *fakeCodeRepo
	pending     *fakePendingRepo
	employes    *fakeEmployeRepo
	groupes     *fakeGroupeRepo
	entreprises *fakeEntrepriseRepo
	postes      *fakePosteRepo
	emails      *fakeEmailService
	publisher   *fakePublisher
	svc         RegistrationService
}

func newRegistrationFixture() *registrationFixture {
	f := &registrationFixture{
		codes:       newFakeCodeRepo(),
		pending:     newFakePendingRepo(),
		employes:    newFakeEmployeRepo(),
		groupes:     newFakeGroupeRepo(),
		entreprises: newFakeEntrepriseRepo(),
		postes:      newFakePosteRepo(),
		emails:      &fakeEmailService{},
		publisher:   &fakePublisher{},
	}
	f.svc = NewRegistrationService(
		f.codes, f.pending, f.employes, f.groupes, f.entreprises, f.postes,
		f.emails, fakeAuthService{}, f.publisher, 4*time.Minute,
	)
	return f
}

func personalInfo(email string) *models.PersonalInfo {
	return &models.PersonalInfo{
		UserEmail:  email,
		FirstName:  "Awa",
		LastName:   "Diallo",
		EmployeeID: "EMP-" + email[:3],
		Position:   "Technicien",
	}
}

func (f *registrationFixture) verifyEmail(t *testing.T, email string) {
	t.Helper()
	code := f.emails.lastCodeFor(email)
	if code == "" {
		t.Fatalf("no verification code sent to %s", email)
	}
	if _, err := f.svc.VerifyUserEmail(email, code); err != nil {
		t.Fatalf("VerifyUserEmail: %v", err)
	}
}

// ---- tests ----

func TestSubmitPersonalInfoRateLimit(t *testing.T) {
	f := newRegistrationFixture()
	email := "worker@example.com"

	if _, err := f.svc.SubmitPersonalInfo(personalInfo(email)); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := f.svc.SubmitPersonalInfo(personalInfo(email)); err != ErrCodeAlreadySent {
		t.Fatalf("second submit err = %v, want ErrCodeAlreadySent", err)
	}

	// After the code expires resubmission works again.
	f.codes.expire("user:" + email)
	if _, err := f.svc.SubmitPersonalInfo(personalInfo(email)); err != nil {
		t.Fatalf("resubmit after expiry: %v", err)
	}
	if len(f.emails.sent) != 2 {
		t.Fatalf("sent %d emails, want 2", len(f.emails.sent))
	}
}

func TestSubmitPersonalInfoConflicts(t *testing.T) {
	f := newRegistrationFixture()

	existing := &models.Employe{Email: "taken@example.com", EmployeeID: "EMP-1"}
	if err := f.employes.Create(existing); err != nil {
		t.Fatal(err)
	}

	info := personalInfo("taken@example.com")
	if _, err := f.svc.SubmitPersonalInfo(info); err != ErrEmailTaken {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}

	info = personalInfo("new@example.com")
	info.EmployeeID = "EMP-1"
	if _, err := f.svc.SubmitPersonalInfo(info); err != ErrEmployeeCodeTaken {
		t.Fatalf("err = %v, want ErrEmployeeCodeTaken", err)
	}
}

func TestVerifyUserEmail(t *testing.T) {
	f := newRegistrationFixture()
	email := "worker@example.com"

	if _, err := f.svc.VerifyUserEmail(email, "abc123"); err != ErrCodeNotFound {
		t.Fatalf("verify without code err = %v, want ErrCodeNotFound", err)
	}

	if _, err := f.svc.SubmitPersonalInfo(personalInfo(email)); err != nil {
		t.Fatal(err)
	}
	code := f.emails.lastCodeFor(email)
	if len(code) != 6 {
		t.Fatalf("user code %q should be 6 hex chars", code)
	}

	// Wrong code leaves both the code and the pending state untouched.
	if _, err := f.svc.VerifyUserEmail(email, "zzzzzz"); err != ErrCodeMismatch {
		t.Fatalf("wrong code err = %v, want ErrCodeMismatch", err)
	}
	state, err := f.svc.PendingState(email)
	if err != nil {
		t.Fatal(err)
	}
	if state.Step != models.StepPersonalInfo {
		t.Fatalf("step after failed verify = %q, want %q", state.Step, models.StepPersonalInfo)
	}

	if _, err := f.svc.VerifyUserEmail(email, code); err != nil {
		t.Fatalf("correct code: %v", err)
	}
	state, err = f.svc.PendingState(email)
	if err != nil {
		t.Fatal(err)
	}
	if state.Step != models.StepCompanyInfo {
		t.Fatalf("step after verify = %q, want %q", state.Step, models.StepCompanyInfo)
	}

	// The code is consumed; replay fails.
	if _, err := f.svc.VerifyUserEmail(email, code); err != ErrCodeNotFound {
		t.Fatalf("replay err = %v, want ErrCodeNotFound", err)
	}
}

func TestCompanyInfoRequiresVerifiedEmail(t *testing.T) {
	f := newRegistrationFixture()
	email := "founder@example.com"

	if _, err := f.svc.SubmitPersonalInfo(personalInfo(email)); err != nil {
		t.Fatal(err)
	}
	companyInfo := &models.CompanyInfo{
		CompanyName:         "Acme",
		CompanyContactEmail: "contact@acme.test",
	}
	if _, err := f.svc.SubmitCompanyInfo(email, companyInfo); err != ErrEmailNotVerified {
		t.Fatalf("err = %v, want ErrEmailNotVerified", err)
	}
}

func TestAdminRegistrationEndToEnd(t *testing.T) {
	f := newRegistrationFixture()
	email := "founder@example.com"

	if _, err := f.svc.SubmitPersonalInfo(personalInfo(email)); err != nil {
		t.Fatal(err)
	}
	f.verifyEmail(t, email)

	companyInfo := &models.CompanyInfo{
		CompanyName:         "Acme",
		CompanyContactEmail: "contact@acme.test",
		Adresse:             "12 rue des Lilas",
	}
	if _, err := f.svc.SubmitCompanyInfo(email, companyInfo); err != nil {
		t.Fatalf("SubmitCompanyInfo: %v", err)
	}

	companyCode := f.emails.lastCodeFor("contact@acme.test")
	if len(companyCode) != 4 {
		t.Fatalf("company code %q should be 4 hex chars", companyCode)
	}
	if _, err := f.svc.VerifyCompanyEmail(email, "zzzz"); err != ErrCodeMismatch {
		t.Fatalf("wrong company code err = %v, want ErrCodeMismatch", err)
	}
	if _, err := f.svc.VerifyCompanyEmail(email, companyCode); err != nil {
		t.Fatalf("VerifyCompanyEmail: %v", err)
	}

	state, err := f.svc.PendingState(email)
	if err != nil {
		t.Fatal(err)
	}
	if state.Step != models.StepFinal {
		t.Fatalf("step = %q, want %q", state.Step, models.StepFinal)
	}
	if state.Role == nil || *state.Role != models.RoleAdmin {
		t.Fatalf("role = %v, want admin", state.Role)
	}

	employe, err := f.svc.CompleteRegistration(&models.FinalRegistrationData{
		UserEmail:           email,
		FirstName:           "Awa",
		LastName:            "Diallo",
		EmployeeID:          "EMP-001",
		Position:            "Directrice",
		Password:            "s3cret",
		CompanyName:         "Acme",
		CompanyContactEmail: "contact@acme.test",
		Adresse:             "12 rue des Lilas",
	})
	if err != nil {
		t.Fatalf("CompleteRegistration: %v", err)
	}
	if employe.Role != models.RoleAdmin {
		t.Fatalf("role = %q, want admin", employe.Role)
	}
	if employe.IDPoste == nil {
		t.Fatal("position was not created")
	}
	entreprise, err := f.entreprises.GetByName("Acme")
	if err != nil || entreprise == nil {
		t.Fatalf("company not created: %v", err)
	}
	if employe.IDEntreprise != entreprise.ID {
		t.Fatal("employee not attached to new company")
	}

	// Fan-out carried the created employee to the company channel.
	if len(f.publisher.events) != 1 {
		t.Fatalf("published %d events, want 1", len(f.publisher.events))
	}
	ev := f.publisher.events[0]
	if ev.event != EventEmployeCreated || ev.companyID != entreprise.ID.String() {
		t.Fatalf("event = %+v", ev)
	}

	// Pending replaced by the fingerprint marker.
	state, err = f.svc.PendingState(email)
	if err != nil {
		t.Fatal(err)
	}
	if state.Step != models.StepFingerprintValidation {
		t.Fatalf("step = %q, want %q", state.Step, models.StepFingerprintValidation)
	}

	if err := f.svc.CompleteFingerprintValidation(email); err != nil {
		t.Fatalf("CompleteFingerprintValidation: %v", err)
	}
	if _, err := f.svc.PendingState(email); err != ErrPendingNotFound {
		t.Fatalf("state after fingerprint err = %v, want ErrPendingNotFound", err)
	}
}

func TestEmployeeRegistrationViaGroup(t *testing.T) {
	f := newRegistrationFixture()
	email := "worker@example.com"

	entreprise := &models.Entreprise{Nom: "Globex"}
	if err := f.entreprises.Create(entreprise); err != nil {
		t.Fatal(err)
	}
	groupe := &models.Groupe{Nom: "Maintenance", IDEntreprise: entreprise.ID}
	if err := f.groupes.Create(groupe); err != nil {
		t.Fatal(err)
	}

	if _, err := f.svc.SubmitPersonalInfo(personalInfo(email)); err != nil {
		t.Fatal(err)
	}
	f.verifyEmail(t, email)

	final := &models.FinalRegistrationData{
		UserEmail:  email,
		FirstName:  "Moussa",
		LastName:   "Traoré",
		EmployeeID: "EMP-042",
		Position:   "Technicien",
	}
	if _, err := f.svc.CompleteRegistration(final); err != ErrGroupeRequired {
		t.Fatalf("without group err = %v, want ErrGroupeRequired", err)
	}

	unknown := uuid.New()
	final.IDGroupe = &unknown
	if _, err := f.svc.CompleteRegistration(final); err != ErrGroupeNotFound {
		t.Fatalf("unknown group err = %v, want ErrGroupeNotFound", err)
	}

	final.IDGroupe = &groupe.ID
	employe, err := f.svc.CompleteRegistration(final)
	if err != nil {
		t.Fatalf("CompleteRegistration: %v", err)
	}
	if employe.Role != models.RoleEmployee {
		t.Fatalf("role = %q, want employee", employe.Role)
	}
	if employe.IDEntreprise != entreprise.ID {
		t.Fatal("company not derived from group")
	}
	if employe.IDGroupe == nil || *employe.IDGroupe != groupe.ID {
		t.Fatal("group not attached")
	}
	// No password supplied: a generated one was mailed.
	if len(f.emails.welcome) != 1 || f.emails.welcome[0] != email {
		t.Fatalf("welcome emails = %v", f.emails.welcome)
	}
}

func TestCompleteRegistrationDuplicateCompany(t *testing.T) {
	f := newRegistrationFixture()
	email := "founder@example.com"

	if err := f.entreprises.Create(&models.Entreprise{Nom: "Acme"}); err != nil {
		t.Fatal(err)
	}

	if _, err := f.svc.SubmitPersonalInfo(personalInfo(email)); err != nil {
		t.Fatal(err)
	}
	f.verifyEmail(t, email)
	if _, err := f.svc.SubmitCompanyInfo(email, &models.CompanyInfo{
		CompanyName:         "Acme",
		CompanyContactEmail: "contact@acme.test",
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.VerifyCompanyEmail(email, f.emails.lastCodeFor("contact@acme.test")); err != nil {
		t.Fatal(err)
	}

	_, err := f.svc.CompleteRegistration(&models.FinalRegistrationData{
		UserEmail:           email,
		FirstName:           "Awa",
		LastName:            "Diallo",
		EmployeeID:          "EMP-001",
		CompanyName:         "Acme",
		CompanyContactEmail: "contact@acme.test",
	})
	if err != ErrEntrepriseTaken {
		t.Fatalf("err = %v, want ErrEntrepriseTaken", err)
	}
}

func TestCompleteFingerprintValidationGuards(t *testing.T) {
	f := newRegistrationFixture()
	email := "worker@example.com"

	if err := f.svc.CompleteFingerprintValidation(email); err != ErrPendingNotFound {
		t.Fatalf("no pending err = %v, want ErrPendingNotFound", err)
	}

	if _, err := f.svc.SubmitPersonalInfo(personalInfo(email)); err != nil {
		t.Fatal(err)
	}
	if err := f.svc.CompleteFingerprintValidation(email); err != ErrFingerprintNotPending {
		t.Fatalf("wrong state err = %v, want ErrFingerprintNotPending", err)
	}
}

// blindCodeRepo never reports a live code on Get, reproducing the window
// where two submitters both pass the rate-limit check before either code
// write lands.
type blindCodeRepo struct {
	*fakeCodeRepo
}

func (r *blindCodeRepo) Get(identifier string) (string, error) { return "", nil }

func TestInterleavedSubmitsLastWriteWins(t *testing.T) {
	f := newRegistrationFixture()
	f.svc = NewRegistrationService(
		&blindCodeRepo{f.codes}, f.pending, f.employes, f.groupes, f.entreprises, f.postes,
		f.emails, fakeAuthService{}, f.publisher, 4*time.Minute,
	)
	email := "worker@example.com"

	first := personalInfo(email)
	second := personalInfo(email)
	second.FirstName = "Binta"

	// Both interleaved submitters succeed; neither sees the other's code.
	if _, err := f.svc.SubmitPersonalInfo(first); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := f.svc.SubmitPersonalInfo(second); err != nil {
		t.Fatalf("second submit: %v", err)
	}

	// Exactly one pending record remains, holding the later submission.
	if len(f.pending.rows) != 1 {
		t.Fatalf("pending rows = %d, want 1", len(f.pending.rows))
	}
	row, err := f.pending.Get(email)
	if err != nil || row == nil {
		t.Fatalf("pending row missing: %v", err)
	}
	if row.PersonalInfo.FirstName != "Binta" {
		t.Fatalf("first name = %q, want the later submission", row.PersonalInfo.FirstName)
	}
	if len(f.emails.sent) != 2 {
		t.Fatalf("sent %d emails, want 2", len(f.emails.sent))
	}
}

func TestEmailsAreCaseInsensitive(t *testing.T) {
	f := newRegistrationFixture()

	if _, err := f.svc.SubmitPersonalInfo(personalInfo("Worker@Example.COM")); err != nil {
		t.Fatal(err)
	}
	code := f.emails.lastCodeFor("worker@example.com")
	if code == "" {
		t.Fatal("code not keyed by lowercased email")
	}
	if _, err := f.svc.VerifyUserEmail("WORKER@example.com", code); err != nil {
		t.Fatalf("mixed-case verify: %v", err)
	}
}
