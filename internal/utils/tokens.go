package utils

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
)

// NewVerificationCode returns a lowercase hex code of 2*nBytes characters.
// The user-email step uses 3 bytes (6 chars), the company step 2 bytes.
func NewVerificationCode(nBytes int) (string, error) {
	if nBytes <= 0 {
		nBytes = 3
	}
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// NewTempPassword returns a URL-safe random password handed to employees
// registered without one.
func NewTempPassword(nBytes int) (string, error) {
	if nBytes <= 0 {
		nBytes = 12
	}
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
