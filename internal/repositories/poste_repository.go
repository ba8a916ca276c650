package repositories

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"fingertrack/internal/models"
)

type PosteRepository interface {
	Create(p *models.Poste) error
	GetByID(id uuid.UUID) (*models.Poste, error)
	// GetByNameAndEntreprise backs the resolve-or-create step of
	// registration finalization: positions are unique per (name, company).
	GetByNameAndEntreprise(nom string, idEntreprise uuid.UUID) (*models.Poste, error)
	ListByEntreprise(idEntreprise uuid.UUID, limit, offset int) ([]*models.Poste, error)
	Update(p *models.Poste) error
	Delete(id uuid.UUID) error
}

type posteRepository struct {
	DB *sql.DB
}

func NewPosteRepository(db *sql.DB) PosteRepository {
	return &posteRepository{DB: db}
}

func (r *posteRepository) Create(p *models.Poste) error {
	const q = `
		INSERT INTO poste (id_poste, nom, description, id_entreprise, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if err := r.DB.QueryRow(q, p.ID, p.Nom, p.Description, p.IDEntreprise).Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		return fmt.Errorf("poste create: %w", err)
	}
	return nil
}

func (r *posteRepository) GetByID(id uuid.UUID) (*models.Poste, error) {
	const q = `SELECT id_poste, nom, description, id_entreprise, created_at, updated_at FROM poste WHERE id_poste = $1`
	return r.scanOne(r.DB.QueryRow(q, id))
}

func (r *posteRepository) GetByNameAndEntreprise(nom string, idEntreprise uuid.UUID) (*models.Poste, error) {
	const q = `
		SELECT id_poste, nom, description, id_entreprise, created_at, updated_at
		FROM poste WHERE nom = $1 AND id_entreprise = $2
	`
	return r.scanOne(r.DB.QueryRow(q, nom, idEntreprise))
}

func (r *posteRepository) scanOne(row *sql.Row) (*models.Poste, error) {
	var p models.Poste
	if err := row.Scan(&p.ID, &p.Nom, &p.Description, &p.IDEntreprise, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("poste get: %w", err)
	}
	return &p, nil
}

func (r *posteRepository) ListByEntreprise(idEntreprise uuid.UUID, limit, offset int) ([]*models.Poste, error) {
	const q = `
		SELECT id_poste, nom, description, id_entreprise, created_at, updated_at
		FROM poste WHERE id_entreprise = $1 ORDER BY nom LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.Query(q, idEntreprise, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("poste list: %w", err)
	}
	defer rows.Close()

	var out []*models.Poste
	for rows.Next() {
		var p models.Poste
		if err := rows.Scan(&p.ID, &p.Nom, &p.Description, &p.IDEntreprise, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("poste scan: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (r *posteRepository) Update(p *models.Poste) error {
	const q = `UPDATE poste SET nom = $1, description = $2, updated_at = NOW() WHERE id_poste = $3`
	if _, err := r.DB.Exec(q, p.Nom, p.Description, p.ID); err != nil {
		return fmt.Errorf("poste update: %w", err)
	}
	return nil
}

func (r *posteRepository) Delete(id uuid.UUID) error {
	if _, err := r.DB.Exec(`DELETE FROM poste WHERE id_poste = $1`, id); err != nil {
		return fmt.Errorf("poste delete: %w", err)
	}
	return nil
}
