package models

import "testing"

func TestPendingRegistrationStep(t *testing.T) {
	admin := RoleAdmin

	tests := []struct {
		name string
		p    PendingRegistration
		want string
	}{
		{
			name: "fresh submission",
			p: PendingRegistration{
				PersonalInfo: &PersonalInfo{Status: StatusAwaitingEmailVerification},
			},
			want: StepPersonalInfo,
		},
		{
			name: "email verified",
			p: PendingRegistration{
				PersonalInfo: &PersonalInfo{Status: StatusEmailVerified},
			},
			want: StepCompanyInfo,
		},
		{
			name: "company info awaiting verification",
			p: PendingRegistration{
				PersonalInfo: &PersonalInfo{Status: StatusEmailVerified},
				CompanyInfo:  &CompanyInfo{CompanyName: "Acme"},
			},
			want: StepVerifyCompany,
		},
		{
			name: "admin role assigned",
			p: PendingRegistration{
				PersonalInfo: &PersonalInfo{Status: StatusEmailVerified},
				CompanyInfo:  &CompanyInfo{CompanyName: "Acme"},
				RoleAssigned: &admin,
			},
			want: StepFinal,
		},
		{
			name: "fingerprint marker wins over everything",
			p: PendingRegistration{
				PersonalInfo: &PersonalInfo{Status: StatusPendingFingerprint},
				CompanyInfo:  &CompanyInfo{CompanyName: "Acme"},
				RoleAssigned: &admin,
			},
			want: StepFingerprintValidation,
		},
		{
			name: "no personal info",
			p:    PendingRegistration{},
			want: StepPersonalInfo,
		},
	}
	for _, test := range tests {
		if got := test.p.Step(); got != test.want {
			t.Errorf("%s: step = %q, want %q", test.name, got, test.want)
		}
	}
}
