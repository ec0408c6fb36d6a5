package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validForm() SignupForm {
	return SignupForm{
		FirstName:       "Ada",
		LastName:        "Obi",
		Email:           "ada@example.com",
		Password:        "Sup3rSecret!",
		ConfirmPassword: "Sup3rSecret!",
		AgreeTerms:      true,
	}
}

func TestValidateSignup_Valid(t *testing.T) {
	assert.NoError(t, ValidateSignup(validForm(), nil))
}

func TestValidateSignup_RejectsEachRuleIndividually(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SignupForm)
		wantErr string
	}{
		{
			name:    "missing first name",
			mutate:  func(f *SignupForm) { f.FirstName = "" },
			wantErr: ErrNameRequired.Error(),
		},
		{
			name:    "missing last name",
			mutate:  func(f *SignupForm) { f.LastName = "" },
			wantErr: ErrNameRequired.Error(),
		},
		{
			name:    "missing email",
			mutate:  func(f *SignupForm) { f.Email = "" },
			wantErr: ErrEmailRequired.Error(),
		},
		{
			name:    "missing password",
			mutate:  func(f *SignupForm) { f.Password = "" },
			wantErr: ErrPasswordRequired.Error(),
		},
		{
			name:    "passwords do not match",
			mutate:  func(f *SignupForm) { f.ConfirmPassword = "different" },
			wantErr: ErrPasswordMismatch.Error(),
		},
		{
			name: "password too short",
			mutate: func(f *SignupForm) {
				f.Password = "Ab1!"
				f.ConfirmPassword = "Ab1!"
			},
			wantErr: "Password should be at least 8 characters long",
		},
		{
			name:    "terms not agreed",
			mutate:  func(f *SignupForm) { f.AgreeTerms = false },
			wantErr: ErrTermsNotAgreed.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)
			err := ValidateSignup(form, nil)
			assert.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestValidateSignup_RuleOrder(t *testing.T) {
	// Everything is wrong at once; the name rule must win.
	form := SignupForm{}
	err := ValidateSignup(form, nil)
	assert.Equal(t, ErrNameRequired, err)
}

func TestValidateLogin(t *testing.T) {
	assert.NoError(t, ValidateLogin("a@b.c", "pw"))
	assert.Equal(t, ErrLoginIncomplete, ValidateLogin("", "pw"))
	assert.Equal(t, ErrLoginIncomplete, ValidateLogin("a@b.c", ""))
}

func TestValidateResetEmail(t *testing.T) {
	assert.NoError(t, ValidateResetEmail("a@b.c"))
	assert.Equal(t, ErrEmailRequired, ValidateResetEmail(""))
}
