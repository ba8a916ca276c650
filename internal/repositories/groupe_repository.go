package repositories

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"fingertrack/internal/models"
)

type GroupeRepository interface {
	Create(g *models.Groupe) error
	GetByID(id uuid.UUID) (*models.Groupe, error)
	ListByEntreprise(idEntreprise uuid.UUID) ([]*models.Groupe, error)
	Update(g *models.Groupe) error
	Delete(id uuid.UUID) error

	CreateConfiguration(c *models.ConfigurationHoraire) error
	ListConfigurations(idGroupe uuid.UUID) ([]*models.ConfigurationHoraire, error)
	UpdateConfiguration(c *models.ConfigurationHoraire) error
	DeleteConfiguration(id uuid.UUID) error
}

type groupeRepository struct {
	DB *sql.DB
}

func NewGroupeRepository(db *sql.DB) GroupeRepository {
	return &groupeRepository{DB: db}
}

func (r *groupeRepository) Create(g *models.Groupe) error {
	const q = `
		INSERT INTO groupe (id_groupe, nom, id_entreprise, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if err := r.DB.QueryRow(q, g.ID, g.Nom, g.IDEntreprise).Scan(&g.CreatedAt, &g.UpdatedAt); err != nil {
		return fmt.Errorf("groupe create: %w", err)
	}
	return nil
}

func (r *groupeRepository) GetByID(id uuid.UUID) (*models.Groupe, error) {
	const q = `SELECT id_groupe, nom, id_entreprise, created_at, updated_at FROM groupe WHERE id_groupe = $1`
	var g models.Groupe
	if err := r.DB.QueryRow(q, id).Scan(&g.ID, &g.Nom, &g.IDEntreprise, &g.CreatedAt, &g.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("groupe get: %w", err)
	}
	return &g, nil
}

func (r *groupeRepository) ListByEntreprise(idEntreprise uuid.UUID) ([]*models.Groupe, error) {
	const q = `
		SELECT id_groupe, nom, id_entreprise, created_at, updated_at
		FROM groupe WHERE id_entreprise = $1 ORDER BY nom
	`
	rows, err := r.DB.Query(q, idEntreprise)
	if err != nil {
		return nil, fmt.Errorf("groupe list: %w", err)
	}
	defer rows.Close()

	var out []*models.Groupe
	for rows.Next() {
		var g models.Groupe
		if err := rows.Scan(&g.ID, &g.Nom, &g.IDEntreprise, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("groupe scan: %w", err)
		}
		out = append(out, &g)
	}
	return out, rows.Err()
}

func (r *groupeRepository) Update(g *models.Groupe) error {
	if _, err := r.DB.Exec(`UPDATE groupe SET nom = $1, updated_at = NOW() WHERE id_groupe = $2`, g.Nom, g.ID); err != nil {
		return fmt.Errorf("groupe update: %w", err)
	}
	return nil
}

func (r *groupeRepository) Delete(id uuid.UUID) error {
	if _, err := r.DB.Exec(`DELETE FROM groupe WHERE id_groupe = $1`, id); err != nil {
		return fmt.Errorf("groupe delete: %w", err)
	}
	return nil
}

const configColumns = `
	id_configuration_horaire, id_groupe, type_horaire,
	heure_debut_entree, heure_fin_entree, heure_debut_sortie, heure_fin_sortie,
	seuil_retard, jours_conges_annuels, heures_supplementaires_autorisees,
	created_at, updated_at`

func (r *groupeRepository) CreateConfiguration(c *models.ConfigurationHoraire) error {
	const q = `
		INSERT INTO configuration_horaire (
			id_configuration_horaire, id_groupe, type_horaire,
			heure_debut_entree, heure_fin_entree, heure_debut_sortie, heure_fin_sortie,
			seuil_retard, jours_conges_annuels, heures_supplementaires_autorisees,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if err := r.DB.QueryRow(q,
		c.ID, c.IDGroupe, c.TypeHoraire,
		c.HeureDebutEntree, c.HeureFinEntree, c.HeureDebutSortie, c.HeureFinSortie,
		c.SeuilRetard, c.JoursCongesAnnuels, c.HeuresSupAutorisees,
	).Scan(&c.CreatedAt, &c.UpdatedAt); err != nil {
		return fmt.Errorf("configuration_horaire create: %w", err)
	}
	return nil
}

func (r *groupeRepository) ListConfigurations(idGroupe uuid.UUID) ([]*models.ConfigurationHoraire, error) {
	q := `SELECT ` + configColumns + ` FROM configuration_horaire WHERE id_groupe = $1 ORDER BY created_at`
	rows, err := r.DB.Query(q, idGroupe)
	if err != nil {
		return nil, fmt.Errorf("configuration_horaire list: %w", err)
	}
	defer rows.Close()

	var out []*models.ConfigurationHoraire
	for rows.Next() {
		var c models.ConfigurationHoraire
		if err := rows.Scan(
			&c.ID, &c.IDGroupe, &c.TypeHoraire,
			&c.HeureDebutEntree, &c.HeureFinEntree, &c.HeureDebutSortie, &c.HeureFinSortie,
			&c.SeuilRetard, &c.JoursCongesAnnuels, &c.HeuresSupAutorisees,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("configuration_horaire scan: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (r *groupeRepository) UpdateConfiguration(c *models.ConfigurationHoraire) error {
	const q = `
		UPDATE configuration_horaire
		SET type_horaire = $1, heure_debut_entree = $2, heure_fin_entree = $3,
		    heure_debut_sortie = $4, heure_fin_sortie = $5, seuil_retard = $6,
		    jours_conges_annuels = $7, heures_supplementaires_autorisees = $8, updated_at = NOW()
		WHERE id_configuration_horaire = $9
	`
	if _, err := r.DB.Exec(q,
		c.TypeHoraire, c.HeureDebutEntree, c.HeureFinEntree,
		c.HeureDebutSortie, c.HeureFinSortie, c.SeuilRetard,
		c.JoursCongesAnnuels, c.HeuresSupAutorisees, c.ID,
	); err != nil {
		return fmt.Errorf("configuration_horaire update: %w", err)
	}
	return nil
}

func (r *groupeRepository) DeleteConfiguration(id uuid.UUID) error {
	if _, err := r.DB.Exec(`DELETE FROM configuration_horaire WHERE id_configuration_horaire = $1`, id); err != nil {
		return fmt.Errorf("configuration_horaire delete: %w", err)
	}
	return nil
}
