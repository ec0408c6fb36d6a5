package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when no profile exists for a user id
var ErrProfileNotFound = errors.New("profile not found")

// ProviderEmail marks profiles created through the email/password flow.
const ProviderEmail = "email"

// Profile is the document-store record written once on signup, keyed by the
// identity provider's user id.
type Profile struct {
	UserID      uuid.UUID `json:"user_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	LastLogin   time.Time `json:"last_login"`
	Provider    string    `json:"provider"`
}

// Store defines the document-store contract for profile records
type Store interface {
	// WriteProfile creates or replaces the profile record for a user
	WriteProfile(ctx context.Context, p Profile) error
	// ReadProfile retrieves the profile record for a user
	ReadProfile(ctx context.Context, userID uuid.UUID) (Profile, error)
	// TouchLastLogin updates the last_login field of an existing profile
	TouchLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}
