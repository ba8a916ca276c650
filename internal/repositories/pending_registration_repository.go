package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"fingertrack/internal/models"
)

var ErrPendingNotFound = fmt.Errorf("pending registration not found")

// PendingRegistrationRepository stages one in-progress signup per user
// email. Personal and company payloads are stored as JSON so intermediate
// steps can mutate them independently. Expired rows behave as absent on
// read and are only physically removed by SweepExpired.
type PendingRegistrationRepository interface {
	Upsert(userEmail string, info *models.PersonalInfo, expiresAt time.Time) error
	Get(userEmail string) (*models.PendingRegistration, error)
	UpdatePersonalInfo(userEmail string, info *models.PersonalInfo) error
	UpdateCompanyInfo(userEmail string, info *models.CompanyInfo) error
	UpdateRole(userEmail, role string) error
	Delete(userEmail string) error
	SweepExpired() (int64, error)
}

type pendingRegistrationRepository struct {
	DB *sql.DB
}

func NewPendingRegistrationRepository(db *sql.DB) PendingRegistrationRepository {
	return &pendingRegistrationRepository{DB: db}
}

func (r *pendingRegistrationRepository) Upsert(userEmail string, info *models.PersonalInfo, expiresAt time.Time) error {
	raw, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("pending_registration marshal: %w", err)
	}
	const q = `
		INSERT INTO pending_registration (id, user_email, personal_info_json, created_at, expires_at)
		VALUES ($1, $2, $3, NOW(), $4)
		ON CONFLICT (user_email)
		DO UPDATE SET personal_info_json = EXCLUDED.personal_info_json,
		              company_info_json  = NULL,
		              role_assigned      = NULL,
		              expires_at         = EXCLUDED.expires_at
	`
	if _, err := r.DB.Exec(q, uuid.New(), strings.ToLower(userEmail), raw, expiresAt); err != nil {
		return fmt.Errorf("pending_registration upsert: %w", err)
	}
	return nil
}

// Get treats an expired row as absent without deleting it.
func (r *pendingRegistrationRepository) Get(userEmail string) (*models.PendingRegistration, error) {
	const q = `
		SELECT id, user_email, personal_info_json, company_info_json, role_assigned, created_at, expires_at
		FROM pending_registration
		WHERE user_email = $1 AND expires_at > NOW()
	`
	row := r.DB.QueryRow(q, strings.ToLower(userEmail))

	var (
		p            models.PendingRegistration
		personalRaw  []byte
		companyRaw   []byte
		roleAssigned sql.NullString
	)
	if err := row.Scan(&p.ID, &p.UserEmail, &personalRaw, &companyRaw, &roleAssigned, &p.CreatedAt, &p.ExpiresAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("pending_registration get: %w", err)
	}
	if len(personalRaw) > 0 {
		p.PersonalInfo = &models.PersonalInfo{}
		if err := json.Unmarshal(personalRaw, p.PersonalInfo); err != nil {
			return nil, fmt.Errorf("pending_registration personal_info decode: %w", err)
		}
	}
	if len(companyRaw) > 0 {
		p.CompanyInfo = &models.CompanyInfo{}
		if err := json.Unmarshal(companyRaw, p.CompanyInfo); err != nil {
			return nil, fmt.Errorf("pending_registration company_info decode: %w", err)
		}
	}
	if roleAssigned.Valid {
		p.RoleAssigned = &roleAssigned.String
	}
	return &p, nil
}

func (r *pendingRegistrationRepository) UpdatePersonalInfo(userEmail string, info *models.PersonalInfo) error {
	raw, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("pending_registration marshal: %w", err)
	}
	return r.updateColumn(userEmail, "personal_info_json", raw)
}

func (r *pendingRegistrationRepository) UpdateCompanyInfo(userEmail string, info *models.CompanyInfo) error {
	raw, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("pending_registration marshal: %w", err)
	}
	return r.updateColumn(userEmail, "company_info_json", raw)
}

func (r *pendingRegistrationRepository) UpdateRole(userEmail, role string) error {
	return r.updateColumn(userEmail, "role_assigned", role)
}

func (r *pendingRegistrationRepository) updateColumn(userEmail, column string, value interface{}) error {
	q := fmt.Sprintf(`UPDATE pending_registration SET %s = $1 WHERE user_email = $2`, column)
	res, err := r.DB.Exec(q, value, strings.ToLower(userEmail))
	if err != nil {
		return fmt.Errorf("pending_registration update %s: %w", column, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPendingNotFound
	}
	return nil
}

func (r *pendingRegistrationRepository) Delete(userEmail string) error {
	if _, err := r.DB.Exec(`DELETE FROM pending_registration WHERE user_email = $1`, strings.ToLower(userEmail)); err != nil {
		return fmt.Errorf("pending_registration delete: %w", err)
	}
	return nil
}

func (r *pendingRegistrationRepository) SweepExpired() (int64, error) {
	res, err := r.DB.Exec(`DELETE FROM pending_registration WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, fmt.Errorf("pending_registration sweep: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
