package services

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"fingertrack/internal/models"
)

type fakeSessionRepo struct {
	byID    map[uuid.UUID]*models.Session
	revoked []uuid.UUID
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{byID: map[uuid.UUID]*models.Session{}}
}

func (r *fakeSessionRepo) Create(s *models.Session) error {
	s.ID = uuid.New()
	s.IsActive = true
	r.byID[s.ID] = s
	return nil
}

func (r *fakeSessionRepo) GetByID(id uuid.UUID) (*models.Session, error) {
	return r.byID[id], nil
}

func (r *fakeSessionRepo) ListByEmploye(idEmploye uuid.UUID) ([]*models.Session, error) {
	return nil, nil
}

func (r *fakeSessionRepo) Revoke(id uuid.UUID) error {
	r.revoked = append(r.revoked, id)
	return nil
}

func (r *fakeSessionRepo) SweepExpired() (int64, error) { return 0, nil }

func TestRevokeSession(t *testing.T) {
	employes := newFakeEmployeRepo()
	sessions := newFakeSessionRepo()
	svc := NewAuthService(employes, sessions, "test-secret", time.Hour)

	owner := &models.Employe{Email: "owner@example.com", Role: models.RoleEmployee}
	if err := employes.Create(owner); err != nil {
		t.Fatal(err)
	}
	session := &models.Session{IDEmploye: owner.ID, DateExpiration: time.Now().Add(time.Hour)}
	if err := sessions.Create(session); err != nil {
		t.Fatal(err)
	}

	// Unknown session ids get their own sentinel, not an employee lookup
	// failure.
	if err := svc.RevokeSession(uuid.New(), owner); err != ErrSessionNotFound {
		t.Fatalf("unknown session err = %v, want ErrSessionNotFound", err)
	}

	// A different non-admin employee cannot revoke it.
	stranger := &models.Employe{Email: "other@example.com", Role: models.RoleEmployee}
	if err := employes.Create(stranger); err != nil {
		t.Fatal(err)
	}
	if err := svc.RevokeSession(session.ID, stranger); err != ErrForbidden {
		t.Fatalf("stranger revoke err = %v, want ErrForbidden", err)
	}

	// The owner can.
	if err := svc.RevokeSession(session.ID, owner); err != nil {
		t.Fatalf("owner revoke: %v", err)
	}
	// So can an admin.
	admin := &models.Employe{Email: "admin@example.com", Role: models.RoleAdmin}
	if err := employes.Create(admin); err != nil {
		t.Fatal(err)
	}
	if err := svc.RevokeSession(session.ID, admin); err != nil {
		t.Fatalf("admin revoke: %v", err)
	}
	if len(sessions.revoked) != 2 {
		t.Fatalf("revoked %d sessions, want 2", len(sessions.revoked))
	}
}
