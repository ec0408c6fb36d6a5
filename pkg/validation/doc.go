// Package validation provides the pure, stateless credential checks run
// before any identity provider call is made.
//
// ValidateSignup applies the form rules in order (first failure wins) and
// returns an error carrying the message shown to the user. Score and
// Classify derive the password strength indicator shown while typing.
package validation
