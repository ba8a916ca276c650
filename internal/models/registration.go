package models

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationStatus tags the progress of a pending registration. It lives
// inside PersonalInfo so the whole workflow state survives in one row.
type RegistrationStatus string

const (
	StatusAwaitingEmailVerification RegistrationStatus = "awaiting_email_verification"
	StatusEmailVerified             RegistrationStatus = "email_verified"
	StatusPendingFingerprint        RegistrationStatus = "pending_fingerprint_validation"
)

// Step labels returned by the resume endpoint.
const (
	StepPersonalInfo          = "personal_info"
	StepCompanyInfo           = "company_info"
	StepVerifyCompany         = "verify_company"
	StepFinal                 = "final"
	StepFingerprintValidation = "fingerprint_validation"
)

// PersonalInfo is the first-step payload, kept verbatim (as JSON) inside the
// pending registration until finalization.
type PersonalInfo struct {
	UserEmail   string             `json:"userEmail" binding:"required,email"`
	FirstName   string             `json:"firstName" binding:"required"`
	LastName    string             `json:"lastName" binding:"required"`
	EmployeeID  string             `json:"employeeId" binding:"required"`
	Position    string             `json:"position,omitempty"`
	PhoneNumber string             `json:"phoneNumber,omitempty"`
	Password    string             `json:"password,omitempty"`
	Status      RegistrationStatus `json:"status,omitempty"`
}

type CompanyInfo struct {
	CompanyName         string `json:"companyName" binding:"required"`
	CompanyContactEmail string `json:"companyContactEmail" binding:"required,email"`
	Adresse             string `json:"adresse,omitempty"`
}

// FinalRegistrationData is the last-step payload. The admin path carries the
// company fields, the employee path carries IDGroupe.
type FinalRegistrationData struct {
	UserEmail           string     `json:"userEmail" binding:"required,email"`
	FirstName           string     `json:"firstName" binding:"required"`
	LastName            string     `json:"lastName" binding:"required"`
	EmployeeID          string     `json:"employeeId" binding:"required"`
	Position            string     `json:"position,omitempty"`
	PhoneNumber         string     `json:"phoneNumber,omitempty"`
	Password            string     `json:"password,omitempty"`
	IDGroupe            *uuid.UUID `json:"idGroupe,omitempty"`
	CompanyName         string     `json:"companyName,omitempty"`
	CompanyContactEmail string     `json:"companyContactEmail,omitempty"`
	Adresse             string     `json:"adresse,omitempty"`
}

// PendingRegistration is the staging record driving the multi-step signup.
// At most one exists per user email; it is replaced by a short-lived
// fingerprint marker on finalization and deleted once a fingerprint lands.
type PendingRegistration struct {
	ID           uuid.UUID     `json:"id"`
	UserEmail    string        `json:"user_email"`
	PersonalInfo *PersonalInfo `json:"personal_info,omitempty"`
	CompanyInfo  *CompanyInfo  `json:"company_info,omitempty"`
	RoleAssigned *string       `json:"role,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	ExpiresAt    time.Time     `json:"expires_at"`
}

// Status returns the state tag, empty when no personal info was stored yet.
func (p *PendingRegistration) Status() RegistrationStatus {
	if p.PersonalInfo == nil {
		return ""
	}
	return p.PersonalInfo.Status
}

// Step derives the resume label. Priority order is fixed: the fingerprint
// marker wins over everything, then the admin "final" state, then presence
// of company info, then a verified email.
func (p *PendingRegistration) Step() string {
	if p.Status() == StatusPendingFingerprint {
		return StepFingerprintValidation
	}
	if p.RoleAssigned != nil && *p.RoleAssigned == RoleAdmin {
		return StepFinal
	}
	if p.CompanyInfo != nil {
		return StepVerifyCompany
	}
	if p.Status() == StatusEmailVerified {
		return StepCompanyInfo
	}
	return StepPersonalInfo
}
