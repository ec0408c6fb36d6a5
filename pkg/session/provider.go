package session

import (
	"context"

	"github.com/google/uuid"
)

// ProviderUser is the identity record an IdentityProvider returns after a
// successful sign-in or account creation.
type ProviderUser struct {
	UserID uuid.UUID
	Email  string
}

// AuthState describes the authenticated user as seen by the provider.
// A nil AuthState means no user is signed in.
type AuthState struct {
	UserID        uuid.UUID `json:"user_id"`
	Email         string    `json:"email"`
	DisplayName   string    `json:"display_name"`
	EmailVerified bool      `json:"email_verified"`
}

// IdentityProvider is the credential backend the session service drives.
// Implementations report failures as idmerr errors so the service can map
// them to user-facing messages.
type IdentityProvider interface {
	// CreateAccount registers a new account with the given credentials.
	CreateAccount(ctx context.Context, email, password string) (ProviderUser, error)

	// SignIn authenticates the given credentials.
	SignIn(ctx context.Context, email, password string) (ProviderUser, error)

	// SignOut terminates the provider-side session, if any.
	SignOut(ctx context.Context) error

	// SendPasswordReset delivers a password reset notice to the given email.
	SendPasswordReset(ctx context.Context, email string) error

	// UpdateDisplayName sets the display name on the provider identity.
	UpdateDisplayName(ctx context.Context, userID uuid.UUID, displayName string) error

	// OnAuthStateChanged registers a callback invoked whenever the
	// provider-side auth state changes, including changes the application
	// did not initiate. It returns an unsubscribe function.
	OnAuthStateChanged(fn func(*AuthState)) func()
}
