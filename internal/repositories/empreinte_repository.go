package repositories

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"fingertrack/internal/models"
)

type EmpreinteRepository interface {
	Create(e *models.Empreinte) error
	GetByID(id uuid.UUID) (*models.Empreinte, error)
	ListByEmploye(idEmploye uuid.UUID) ([]*models.Empreinte, error)
	CountByEmploye(idEmploye uuid.UUID) (int, error)
	Delete(id uuid.UUID) error
}

type empreinteRepository struct {
	DB *sql.DB
}

func NewEmpreinteRepository(db *sql.DB) EmpreinteRepository {
	return &empreinteRepository{DB: db}
}

func (r *empreinteRepository) Create(e *models.Empreinte) error {
	const q = `
		INSERT INTO empreinte (id_empreinte, id_employe, donnees_biometriques, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if err := r.DB.QueryRow(q, e.ID, e.IDEmploye, e.DonneesBiometriques).Scan(&e.CreatedAt, &e.UpdatedAt); err != nil {
		return fmt.Errorf("empreinte create: %w", err)
	}
	return nil
}

func (r *empreinteRepository) GetByID(id uuid.UUID) (*models.Empreinte, error) {
	const q = `
		SELECT id_empreinte, id_employe, donnees_biometriques, created_at, updated_at
		FROM empreinte WHERE id_empreinte = $1
	`
	var e models.Empreinte
	if err := r.DB.QueryRow(q, id).Scan(&e.ID, &e.IDEmploye, &e.DonneesBiometriques, &e.CreatedAt, &e.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("empreinte get: %w", err)
	}
	return &e, nil
}

func (r *empreinteRepository) ListByEmploye(idEmploye uuid.UUID) ([]*models.Empreinte, error) {
	const q = `
		SELECT id_empreinte, id_employe, donnees_biometriques, created_at, updated_at
		FROM empreinte WHERE id_employe = $1 ORDER BY created_at
	`
	rows, err := r.DB.Query(q, idEmploye)
	if err != nil {
		return nil, fmt.Errorf("empreinte list: %w", err)
	}
	defer rows.Close()

	var out []*models.Empreinte
	for rows.Next() {
		var e models.Empreinte
		if err := rows.Scan(&e.ID, &e.IDEmploye, &e.DonneesBiometriques, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("empreinte scan: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

func (r *empreinteRepository) CountByEmploye(idEmploye uuid.UUID) (int, error) {
	var n int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM empreinte WHERE id_employe = $1`, idEmploye).Scan(&n); err != nil {
		return 0, fmt.Errorf("empreinte count: %w", err)
	}
	return n, nil
}

func (r *empreinteRepository) Delete(id uuid.UUID) error {
	if _, err := r.DB.Exec(`DELETE FROM empreinte WHERE id_empreinte = $1`, id); err != nil {
		return fmt.Errorf("empreinte delete: %w", err)
	}
	return nil
}
