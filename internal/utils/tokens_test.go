package utils

import (
	"encoding/hex"
	"testing"
)

func TestNewVerificationCode(t *testing.T) {
	tests := []struct {
		nBytes  int
		wantLen int
	}{
		{3, 6}, // user email code
		{2, 4}, // company email code
		{0, 6}, // default
	}
	for _, test := range tests {
		code, err := NewVerificationCode(test.nBytes)
		if err != nil {
			t.Fatalf("NewVerificationCode(%d): %v", test.nBytes, err)
		}
		if len(code) != test.wantLen {
			t.Errorf("NewVerificationCode(%d) len = %d, want %d", test.nBytes, len(code), test.wantLen)
		}
		if _, err := hex.DecodeString(code); err != nil {
			t.Errorf("code %q is not hex", code)
		}
	}
}

func TestNewVerificationCodeVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 32; i++ {
		code, err := NewVerificationCode(3)
		if err != nil {
			t.Fatal(err)
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Fatal("codes do not vary")
	}
}

func TestNewTempPassword(t *testing.T) {
	pw, err := NewTempPassword(12)
	if err != nil {
		t.Fatal(err)
	}
	if len(pw) < 12 {
		t.Fatalf("temp password too short: %q", pw)
	}
	other, err := NewTempPassword(12)
	if err != nil {
		t.Fatal(err)
	}
	if pw == other {
		t.Fatal("temp passwords repeat")
	}
}
