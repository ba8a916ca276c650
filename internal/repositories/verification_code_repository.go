package repositories

import (
	"database/sql"
	"fmt"
	"time"
)

// VerificationCodeRepository holds short-lived one-time codes keyed by a
// namespaced identifier ("user:<email>" / "company:<email>"). One active
// code per identifier; setting again overwrites. Expiry is passive: Get
// filters on expires_at, rows linger until SweepExpired runs.
type VerificationCodeRepository interface {
	Set(identifier, code string, ttl time.Duration) error
	Get(identifier string) (string, error)
	Delete(identifier string) error
	SweepExpired() (int64, error)
}

type verificationCodeRepository struct {
	DB *sql.DB
}

func NewVerificationCodeRepository(db *sql.DB) VerificationCodeRepository {
	return &verificationCodeRepository{DB: db}
}

func (r *verificationCodeRepository) Set(identifier, code string, ttl time.Duration) error {
	const q = `
		INSERT INTO verification_code (identifier, code, created_at, expires_at)
		VALUES ($1, $2, NOW(), $3)
		ON CONFLICT (identifier)
		DO UPDATE SET code = EXCLUDED.code, expires_at = EXCLUDED.expires_at
	`
	expiresAt := time.Now().UTC().Add(ttl)
	if _, err := r.DB.Exec(q, identifier, code, expiresAt); err != nil {
		return fmt.Errorf("verification_code set: %w", err)
	}
	return nil
}

// Get returns "" when there is no live code. The expired row is left in
// place; only SweepExpired removes it.
func (r *verificationCodeRepository) Get(identifier string) (string, error) {
	const q = `
		SELECT code FROM verification_code
		WHERE identifier = $1 AND expires_at > NOW()
	`
	var code string
	if err := r.DB.QueryRow(q, identifier).Scan(&code); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("verification_code get: %w", err)
	}
	return code, nil
}

func (r *verificationCodeRepository) Delete(identifier string) error {
	if _, err := r.DB.Exec(`DELETE FROM verification_code WHERE identifier = $1`, identifier); err != nil {
		return fmt.Errorf("verification_code delete: %w", err)
	}
	return nil
}

func (r *verificationCodeRepository) SweepExpired() (int64, error) {
	res, err := r.DB.Exec(`DELETE FROM verification_code WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, fmt.Errorf("verification_code sweep: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
