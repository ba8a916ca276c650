package repositories

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"fingertrack/internal/models"
)

type EmployeRepository interface {
	Create(e *models.Employe) error
	GetByID(id uuid.UUID) (*models.Employe, error)
	GetByEmail(email string) (*models.Employe, error)
	GetByEmployeeID(employeeID string) (*models.Employe, error)
	Update(e *models.Employe) error
	Delete(id uuid.UUID) error
	ListByEntreprise(idEntreprise uuid.UUID, limit, offset int) ([]*models.Employe, error)
	// ListWithoutFingerprint returns the employees of a company that have no
	// enrolled fingerprint, with their group name (or "" when ungrouped).
	ListWithoutFingerprint(idEntreprise uuid.UUID) ([]*EmployeWithGroupe, error)
}

type EmployeWithGroupe struct {
	Employe    models.Employe
	GroupeName string
}

const employeColumns = `
	id_employe, nom, prenom, email, mot_de_passe, role, employee_id,
	phone_number, id_entreprise, id_groupe, id_poste, created_at, updated_at`

type employeRepository struct {
	DB *sql.DB
}

func NewEmployeRepository(db *sql.DB) EmployeRepository {
	return &employeRepository{DB: db}
}

func (r *employeRepository) Create(e *models.Employe) error {
	const q = `
		INSERT INTO employe (id_employe, nom, prenom, email, mot_de_passe, role, employee_id,
		                     phone_number, id_entreprise, id_groupe, id_poste, created_at, updated_at)
		VALUES ($1, $2, $3, LOWER($4), $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if err := r.DB.QueryRow(q,
		e.ID, e.Nom, e.Prenom, e.Email, e.PasswordHash, e.Role, e.EmployeeID,
		e.PhoneNumber, e.IDEntreprise, e.IDGroupe, e.IDPoste,
	).Scan(&e.CreatedAt, &e.UpdatedAt); err != nil {
		return fmt.Errorf("employe create: %w", err)
	}
	return nil
}

func (r *employeRepository) GetByID(id uuid.UUID) (*models.Employe, error) {
	return r.getOne(`WHERE id_employe = $1`, id)
}

func (r *employeRepository) GetByEmail(email string) (*models.Employe, error) {
	return r.getOne(`WHERE email = LOWER($1)`, email)
}

func (r *employeRepository) GetByEmployeeID(employeeID string) (*models.Employe, error) {
	return r.getOne(`WHERE employee_id = $1`, employeeID)
}

func (r *employeRepository) getOne(where string, arg interface{}) (*models.Employe, error) {
	q := `SELECT ` + employeColumns + ` FROM employe ` + where
	var e models.Employe
	if err := r.scanEmploye(r.DB.QueryRow(q, arg), &e); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("employe get: %w", err)
	}
	return &e, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *employeRepository) scanEmploye(row rowScanner, e *models.Employe) error {
	return row.Scan(
		&e.ID, &e.Nom, &e.Prenom, &e.Email, &e.PasswordHash, &e.Role, &e.EmployeeID,
		&e.PhoneNumber, &e.IDEntreprise, &e.IDGroupe, &e.IDPoste, &e.CreatedAt, &e.UpdatedAt,
	)
}

func (r *employeRepository) Update(e *models.Employe) error {
	const q = `
		UPDATE employe
		SET nom = $1, prenom = $2, email = LOWER($3), mot_de_passe = $4, role = $5,
		    employee_id = $6, phone_number = $7, id_groupe = $8, id_poste = $9, updated_at = NOW()
		WHERE id_employe = $10
	`
	if _, err := r.DB.Exec(q,
		e.Nom, e.Prenom, e.Email, e.PasswordHash, e.Role,
		e.EmployeeID, e.PhoneNumber, e.IDGroupe, e.IDPoste, e.ID,
	); err != nil {
		return fmt.Errorf("employe update: %w", err)
	}
	return nil
}

func (r *employeRepository) Delete(id uuid.UUID) error {
	if _, err := r.DB.Exec(`DELETE FROM employe WHERE id_employe = $1`, id); err != nil {
		return fmt.Errorf("employe delete: %w", err)
	}
	return nil
}

func (r *employeRepository) ListByEntreprise(idEntreprise uuid.UUID, limit, offset int) ([]*models.Employe, error) {
	q := `SELECT ` + employeColumns + `
		FROM employe
		WHERE id_entreprise = $1
		ORDER BY created_at
		LIMIT $2 OFFSET $3`
	rows, err := r.DB.Query(q, idEntreprise, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("employe list: %w", err)
	}
	defer rows.Close()

	var employes []*models.Employe
	for rows.Next() {
		var e models.Employe
		if err := r.scanEmploye(rows, &e); err != nil {
			return nil, fmt.Errorf("employe scan: %w", err)
		}
		employes = append(employes, &e)
	}
	return employes, rows.Err()
}

func (r *employeRepository) ListWithoutFingerprint(idEntreprise uuid.UUID) ([]*EmployeWithGroupe, error) {
	q := `SELECT e.id_employe, e.nom, e.prenom, e.email, e.mot_de_passe, e.role, e.employee_id,
		       e.phone_number, e.id_entreprise, e.id_groupe, e.id_poste, e.created_at, e.updated_at,
		       COALESCE(g.nom, '')
		FROM employe e
		LEFT JOIN groupe g ON g.id_groupe = e.id_groupe
		WHERE e.id_entreprise = $1
		  AND NOT EXISTS (SELECT 1 FROM empreinte emp WHERE emp.id_employe = e.id_employe)
		ORDER BY e.created_at`
	rows, err := r.DB.Query(q, idEntreprise)
	if err != nil {
		return nil, fmt.Errorf("employe list without fingerprint: %w", err)
	}
	defer rows.Close()

	var out []*EmployeWithGroupe
	for rows.Next() {
		var rec EmployeWithGroupe
		e := &rec.Employe
		if err := rows.Scan(
			&e.ID, &e.Nom, &e.Prenom, &e.Email, &e.PasswordHash, &e.Role, &e.EmployeeID,
			&e.PhoneNumber, &e.IDEntreprise, &e.IDGroupe, &e.IDPoste, &e.CreatedAt, &e.UpdatedAt,
			&rec.GroupeName,
		); err != nil {
			return nil, fmt.Errorf("employe scan without fingerprint: %w", err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}
