package join

import "errors"

var (
	// ErrNoActiveRequest is returned when an operation needs a live join
	// request and none is open.
	ErrNoActiveRequest = errors.New("no active join request")

	// ErrFormIncomplete is returned when verification starts before the
	// form fields are all filled in.
	ErrFormIncomplete = errors.New("full name, role and email are required")

	// ErrInvalidRole is returned for a role outside the allowed set.
	ErrInvalidRole = errors.New("role must be student or employee")

	// ErrNotVerifying is returned when a code operation happens outside
	// the verifying stage.
	ErrNotVerifying = errors.New("join request is not awaiting verification")

	// ErrInvalidCode is returned when the entered code fails verification.
	ErrInvalidCode = errors.New("verification code is incorrect")

	// ErrCodeIncomplete is returned when not all six digits are entered.
	ErrCodeIncomplete = errors.New("enter all six digits of the verification code")
)
