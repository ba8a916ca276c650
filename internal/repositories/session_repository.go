package repositories

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"fingertrack/internal/models"
)

type SessionRepository interface {
	Create(s *models.Session) error
	GetByID(id uuid.UUID) (*models.Session, error)
	ListByEmploye(idEmploye uuid.UUID) ([]*models.Session, error)
	Revoke(id uuid.UUID) error
	SweepExpired() (int64, error)
}

type sessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) SessionRepository {
	return &sessionRepository{DB: db}
}

func (r *sessionRepository) Create(s *models.Session) error {
	const q = `
		INSERT INTO session (id_session, id_employe, access_token, token_type,
		                     date_creation, date_expiration, is_active)
		VALUES ($1, $2, $3, $4, NOW(), $5, TRUE)
		RETURNING date_creation
	`
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.TokenType == "" {
		s.TokenType = "bearer"
	}
	if err := r.DB.QueryRow(q, s.ID, s.IDEmploye, s.AccessToken, s.TokenType, s.DateExpiration).Scan(&s.DateCreation); err != nil {
		return fmt.Errorf("session create: %w", err)
	}
	s.IsActive = true
	return nil
}

func (r *sessionRepository) GetByID(id uuid.UUID) (*models.Session, error) {
	const q = `
		SELECT id_session, id_employe, access_token, token_type, date_creation, date_expiration, is_active
		FROM session WHERE id_session = $1
	`
	var s models.Session
	if err := r.DB.QueryRow(q, id).Scan(
		&s.ID, &s.IDEmploye, &s.AccessToken, &s.TokenType, &s.DateCreation, &s.DateExpiration, &s.IsActive,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("session get: %w", err)
	}
	return &s, nil
}

func (r *sessionRepository) ListByEmploye(idEmploye uuid.UUID) ([]*models.Session, error) {
	const q = `
		SELECT id_session, id_employe, access_token, token_type, date_creation, date_expiration, is_active
		FROM session WHERE id_employe = $1 ORDER BY date_creation DESC
	`
	rows, err := r.DB.Query(q, idEmploye)
	if err != nil {
		return nil, fmt.Errorf("session list: %w", err)
	}
	defer rows.Close()

	var out []*models.Session
	for rows.Next() {
		var s models.Session
		if err := rows.Scan(
			&s.ID, &s.IDEmploye, &s.AccessToken, &s.TokenType, &s.DateCreation, &s.DateExpiration, &s.IsActive,
		); err != nil {
			return nil, fmt.Errorf("session scan: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

func (r *sessionRepository) Revoke(id uuid.UUID) error {
	if _, err := r.DB.Exec(`UPDATE session SET is_active = FALSE WHERE id_session = $1`, id); err != nil {
		return fmt.Errorf("session revoke: %w", err)
	}
	return nil
}

func (r *sessionRepository) SweepExpired() (int64, error) {
	res, err := r.DB.Exec(`DELETE FROM session WHERE date_expiration <= NOW()`)
	if err != nil {
		return 0, fmt.Errorf("session sweep: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
