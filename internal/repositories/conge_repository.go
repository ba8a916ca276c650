package repositories

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"fingertrack/internal/models"
)

type CongeRepository interface {
	Create(c *models.Conge) error
	GetByID(id uuid.UUID) (*models.Conge, error)
	ListByEmploye(idEmploye uuid.UUID) ([]*models.Conge, error)
	ListByEntreprise(idEntreprise uuid.UUID) ([]*models.Conge, error)
	Update(c *models.Conge) error
	UpdateStatut(id uuid.UUID, statut string, approuvePar uuid.UUID) error
	Delete(id uuid.UUID) error
}

const congeColumns = `
	id_conge, id_employe, type_conge, date_debut, date_fin, statut,
	commentaire, approuve_par, created_at, updated_at`

type congeRepository struct {
	DB *sql.DB
}

func NewCongeRepository(db *sql.DB) CongeRepository {
	return &congeRepository{DB: db}
}

func (r *congeRepository) Create(c *models.Conge) error {
	const q = `
		INSERT INTO conge (id_conge, id_employe, type_conge, date_debut, date_fin, statut,
		                   commentaire, approuve_par, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Statut == "" {
		c.Statut = models.CongeStatutEnAttente
	}
	if err := r.DB.QueryRow(q,
		c.ID, c.IDEmploye, c.TypeConge, c.DateDebut, c.DateFin, c.Statut,
		c.Commentaire, c.ApprouvePar,
	).Scan(&c.CreatedAt, &c.UpdatedAt); err != nil {
		return fmt.Errorf("conge create: %w", err)
	}
	return nil
}

func (r *congeRepository) GetByID(id uuid.UUID) (*models.Conge, error) {
	q := `SELECT ` + congeColumns + ` FROM conge WHERE id_conge = $1`
	var c models.Conge
	if err := r.DB.QueryRow(q, id).Scan(
		&c.ID, &c.IDEmploye, &c.TypeConge, &c.DateDebut, &c.DateFin, &c.Statut,
		&c.Commentaire, &c.ApprouvePar, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("conge get: %w", err)
	}
	return &c, nil
}

func (r *congeRepository) ListByEmploye(idEmploye uuid.UUID) ([]*models.Conge, error) {
	q := `SELECT ` + congeColumns + ` FROM conge WHERE id_employe = $1 ORDER BY date_debut DESC`
	return r.list(q, idEmploye)
}

func (r *congeRepository) ListByEntreprise(idEntreprise uuid.UUID) ([]*models.Conge, error) {
	q := `SELECT c.id_conge, c.id_employe, c.type_conge, c.date_debut, c.date_fin, c.statut,
	             c.commentaire, c.approuve_par, c.created_at, c.updated_at
		FROM conge c
		JOIN employe e ON e.id_employe = c.id_employe
		WHERE e.id_entreprise = $1
		ORDER BY c.date_debut DESC`
	return r.list(q, idEntreprise)
}

func (r *congeRepository) list(q string, id uuid.UUID) ([]*models.Conge, error) {
	rows, err := r.DB.Query(q, id)
	if err != nil {
		return nil, fmt.Errorf("conge list: %w", err)
	}
	defer rows.Close()

	var out []*models.Conge
	for rows.Next() {
		var c models.Conge
		if err := rows.Scan(
			&c.ID, &c.IDEmploye, &c.TypeConge, &c.DateDebut, &c.DateFin, &c.Statut,
			&c.Commentaire, &c.ApprouvePar, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("conge scan: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (r *congeRepository) Update(c *models.Conge) error {
	const q = `
		UPDATE conge
		SET type_conge = $1, date_debut = $2, date_fin = $3, commentaire = $4, updated_at = NOW()
		WHERE id_conge = $5
	`
	if _, err := r.DB.Exec(q, c.TypeConge, c.DateDebut, c.DateFin, c.Commentaire, c.ID); err != nil {
		return fmt.Errorf("conge update: %w", err)
	}
	return nil
}

func (r *congeRepository) UpdateStatut(id uuid.UUID, statut string, approuvePar uuid.UUID) error {
	const q = `UPDATE conge SET statut = $1, approuve_par = $2, updated_at = NOW() WHERE id_conge = $3`
	if _, err := r.DB.Exec(q, statut, approuvePar, id); err != nil {
		return fmt.Errorf("conge update statut: %w", err)
	}
	return nil
}

func (r *congeRepository) Delete(id uuid.UUID) error {
	if _, err := r.DB.Exec(`DELETE FROM conge WHERE id_conge = $1`, id); err != nil {
		return fmt.Errorf("conge delete: %w", err)
	}
	return nil
}
