// Package session implements the credential session state machine: local
// form validation, submission lifecycle tracking per form, and mapping of
// identity provider failures to user-facing messages.
package session
