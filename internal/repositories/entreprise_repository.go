package repositories

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"fingertrack/internal/models"
)

type EntrepriseRepository interface {
	Create(e *models.Entreprise) error
	GetByID(id uuid.UUID) (*models.Entreprise, error)
	GetByName(nom string) (*models.Entreprise, error)
	Update(e *models.Entreprise) error
	Delete(id uuid.UUID) error
	List(limit, offset int) ([]*models.Entreprise, error)
}

type entrepriseRepository struct {
	DB *sql.DB
}

func NewEntrepriseRepository(db *sql.DB) EntrepriseRepository {
	return &entrepriseRepository{DB: db}
}

func (r *entrepriseRepository) Create(e *models.Entreprise) error {
	const q = `
		INSERT INTO entreprise (id_entreprise, nom, adresse, contact_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if err := r.DB.QueryRow(q, e.ID, e.Nom, e.Adresse, e.ContactEmail).Scan(&e.CreatedAt, &e.UpdatedAt); err != nil {
		return fmt.Errorf("entreprise create: %w", err)
	}
	return nil
}

func (r *entrepriseRepository) GetByID(id uuid.UUID) (*models.Entreprise, error) {
	return r.getOne(`WHERE id_entreprise = $1`, id)
}

func (r *entrepriseRepository) GetByName(nom string) (*models.Entreprise, error) {
	return r.getOne(`WHERE nom = $1`, nom)
}

func (r *entrepriseRepository) getOne(where string, arg interface{}) (*models.Entreprise, error) {
	q := `SELECT id_entreprise, nom, adresse, contact_email, created_at, updated_at FROM entreprise ` + where
	var e models.Entreprise
	if err := r.DB.QueryRow(q, arg).Scan(&e.ID, &e.Nom, &e.Adresse, &e.ContactEmail, &e.CreatedAt, &e.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("entreprise get: %w", err)
	}
	return &e, nil
}

func (r *entrepriseRepository) Update(e *models.Entreprise) error {
	const q = `
		UPDATE entreprise SET nom = $1, adresse = $2, contact_email = $3, updated_at = NOW()
		WHERE id_entreprise = $4
	`
	if _, err := r.DB.Exec(q, e.Nom, e.Adresse, e.ContactEmail, e.ID); err != nil {
		return fmt.Errorf("entreprise update: %w", err)
	}
	return nil
}

func (r *entrepriseRepository) Delete(id uuid.UUID) error {
	if _, err := r.DB.Exec(`DELETE FROM entreprise WHERE id_entreprise = $1`, id); err != nil {
		return fmt.Errorf("entreprise delete: %w", err)
	}
	return nil
}

func (r *entrepriseRepository) List(limit, offset int) ([]*models.Entreprise, error) {
	const q = `
		SELECT id_entreprise, nom, adresse, contact_email, created_at, updated_at
		FROM entreprise ORDER BY created_at LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.Query(q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("entreprise list: %w", err)
	}
	defer rows.Close()

	var out []*models.Entreprise
	for rows.Next() {
		var e models.Entreprise
		if err := rows.Scan(&e.ID, &e.Nom, &e.Adresse, &e.ContactEmail, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("entreprise scan: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}
