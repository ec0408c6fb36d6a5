package validation

import (
	"errors"
	"fmt"
)

// Validation failures carry the exact message shown on the form.
var (
	ErrNameRequired     = errors.New("Please enter your first and last name")
	ErrEmailRequired    = errors.New("Please enter your email address")
	ErrPasswordRequired = errors.New("Please enter a password")
	ErrPasswordMismatch = errors.New("Passwords do not match")
	ErrTermsNotAgreed   = errors.New("You must agree to the Terms of Service and Privacy Policy")
	ErrLoginIncomplete  = errors.New("Please enter both email and password")
)

// SignupForm holds the raw field values of the signup form.
type SignupForm struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	AgreeTerms      bool
}

// ValidateSignup checks the signup form against the policy. Rules are checked
// in order and the first failure wins; a nil return permits submission.
// No email format validation happens here, the identity provider owns that.
func ValidateSignup(form SignupForm, policy *Policy) error {
	if policy == nil {
		policy = DefaultPolicy()
	}

	if form.FirstName == "" || form.LastName == "" {
		return ErrNameRequired
	}
	if form.Email == "" {
		return ErrEmailRequired
	}
	if form.Password == "" {
		return ErrPasswordRequired
	}
	if policy.RequireConfirm && form.Password != form.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if len(form.Password) < policy.MinLength {
		return fmt.Errorf("Password should be at least %d characters long", policy.MinLength)
	}
	if policy.RequireAgreeTerms && !form.AgreeTerms {
		return ErrTermsNotAgreed
	}

	return nil
}

// ValidateLogin checks that both login fields are filled in.
func ValidateLogin(email, password string) error {
	if email == "" || password == "" {
		return ErrLoginIncomplete
	}
	return nil
}

// ValidateResetEmail checks the reset form's single field.
func ValidateResetEmail(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	return nil
}
