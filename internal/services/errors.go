package services

import "errors"

// Workflow and lookup failures surfaced verbatim to handlers, which map
// them onto HTTP statuses. Anything not listed here comes back wrapped and
// turns into a generic 500.
var (
	ErrEmailTaken            = errors.New("email already registered")
	ErrEmployeeCodeTaken     = errors.New("employee id already registered")
	ErrCodeAlreadySent       = errors.New("a verification code was already sent, please wait")
	ErrCodeNotFound          = errors.New("verification code not found or expired")
	ErrCodeMismatch          = errors.New("incorrect verification code")
	ErrEmailNotVerified      = errors.New("email not verified")
	ErrPendingNotFound       = errors.New("no registration in progress")
	ErrCompanyInfoMissing    = errors.New("company info missing")
	ErrCompanyInfoRequired   = errors.New("company info required for admin registration")
	ErrGroupeRequired        = errors.New("group required for non-admin employees")
	ErrGroupeNotFound        = errors.New("group not found")
	ErrEmployeNotFound       = errors.New("employee not found")
	ErrEntrepriseNotFound    = errors.New("company not found")
	ErrEntrepriseTaken       = errors.New("company name already registered")
	ErrFingerprintNotPending = errors.New("no fingerprint validation pending")
	ErrSessionNotFound       = errors.New("session not found")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrForbidden             = errors.New("operation not allowed for this role")
)
