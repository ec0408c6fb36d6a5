package validation

// Policy defines the requirements checked before a signup is submitted.
type Policy struct {
	MinLength         int
	RequireConfirm    bool
	RequireAgreeTerms bool
}

// DefaultPolicy returns the policy the signup form ships with.
func DefaultPolicy() *Policy {
	return &Policy{
		MinLength:         8,
		RequireConfirm:    true,
		RequireAgreeTerms: true,
	}
}
