package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fingertrack/internal/models"
)

type PresenceRepository interface {
	Create(p *models.Presence) error
	GetByID(id uuid.UUID) (*models.Presence, error)
	ListByEmploye(idEmploye uuid.UUID, from, to *time.Time) ([]*models.Presence, error)
	ListByEntreprise(idEntreprise uuid.UUID, from, to *time.Time) ([]*models.Presence, error)
	Delete(id uuid.UUID) error
}

const presenceColumns = `
	id_presence, id_employe, type, timestamp, methode, appareil_id, statut,
	notes, id_configuration_horaire, created_at`

type presenceRepository struct {
	DB *sql.DB
}

func NewPresenceRepository(db *sql.DB) PresenceRepository {
	return &presenceRepository{DB: db}
}

func (r *presenceRepository) Create(p *models.Presence) error {
	const q = `
		INSERT INTO presence (id_presence, id_employe, type, timestamp, methode, appareil_id,
		                      statut, notes, id_configuration_horaire, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING created_at
	`
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Timestamp.IsZero() {
		p.Timestamp = time.Now().UTC()
	}
	if err := r.DB.QueryRow(q,
		p.ID, p.IDEmploye, p.Type, p.Timestamp, p.Methode, p.AppareilID,
		p.Statut, p.Notes, p.IDConfigurationHoraire,
	).Scan(&p.CreatedAt); err != nil {
		return fmt.Errorf("presence create: %w", err)
	}
	return nil
}

func (r *presenceRepository) GetByID(id uuid.UUID) (*models.Presence, error) {
	q := `SELECT ` + presenceColumns + ` FROM presence WHERE id_presence = $1`
	var p models.Presence
	if err := r.DB.QueryRow(q, id).Scan(
		&p.ID, &p.IDEmploye, &p.Type, &p.Timestamp, &p.Methode, &p.AppareilID,
		&p.Statut, &p.Notes, &p.IDConfigurationHoraire, &p.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("presence get: %w", err)
	}
	return &p, nil
}

func (r *presenceRepository) ListByEmploye(idEmploye uuid.UUID, from, to *time.Time) ([]*models.Presence, error) {
	q := `SELECT ` + presenceColumns + `
		FROM presence
		WHERE id_employe = $1
		  AND ($2::timestamptz IS NULL OR timestamp >= $2)
		  AND ($3::timestamptz IS NULL OR timestamp <= $3)
		ORDER BY timestamp`
	return r.list(q, idEmploye, from, to)
}

func (r *presenceRepository) ListByEntreprise(idEntreprise uuid.UUID, from, to *time.Time) ([]*models.Presence, error) {
	q := `SELECT p.id_presence, p.id_employe, p.type, p.timestamp, p.methode, p.appareil_id,
	             p.statut, p.notes, p.id_configuration_horaire, p.created_at
		FROM presence p
		JOIN employe e ON e.id_employe = p.id_employe
		WHERE e.id_entreprise = $1
		  AND ($2::timestamptz IS NULL OR p.timestamp >= $2)
		  AND ($3::timestamptz IS NULL OR p.timestamp <= $3)
		ORDER BY p.timestamp`
	return r.list(q, idEntreprise, from, to)
}

func (r *presenceRepository) list(q string, id uuid.UUID, from, to *time.Time) ([]*models.Presence, error) {
	rows, err := r.DB.Query(q, id, from, to)
	if err != nil {
		return nil, fmt.Errorf("presence list: %w", err)
	}
	defer rows.Close()

	var out []*models.Presence
	for rows.Next() {
		var p models.Presence
		if err := rows.Scan(
			&p.ID, &p.IDEmploye, &p.Type, &p.Timestamp, &p.Methode, &p.AppareilID,
			&p.Statut, &p.Notes, &p.IDConfigurationHoraire, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("presence scan: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (r *presenceRepository) Delete(id uuid.UUID) error {
	if _, err := r.DB.Exec(`DELETE FROM presence WHERE id_presence = $1`, id); err != nil {
		return fmt.Errorf("presence delete: %w", err)
	}
	return nil
}
