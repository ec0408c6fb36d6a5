package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purevote/purevote/pkg/profile"
	"github.com/purevote/purevote/pkg/session"
	"github.com/purevote/purevote/pkg/validation"
)

// countingStore wraps the in-memory profile store to count writes.
type countingStore struct {
	*profile.InMemoryStore
	writes int
}

func (s *countingStore) WriteProfile(ctx context.Context, p profile.Profile) error {
	s.writes++
	return s.InMemoryStore.WriteProfile(ctx, p)
}

func setupSessionWithProvider(t *testing.T) (*session.Service, *InMemoryProvider, *countingStore) {
	t.Helper()
	provider := NewInMemoryProvider()
	profiles := &countingStore{InMemoryStore: profile.NewInMemoryStore()}
	svc := session.NewService(provider, profiles)
	svc.Start()
	t.Cleanup(svc.Close)
	return svc, provider, profiles
}

func signupForm(email string) validation.SignupForm {
	return validation.SignupForm{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           email,
		Password:        "secret123",
		ConfirmPassword: "secret123",
		AgreeTerms:      true,
	}
}

func TestSessionSignupThroughProvider(t *testing.T) {
	svc, _, profiles := setupSessionWithProvider(t)
	ctx := context.Background()

	st := svc.SubmitSignup(ctx, signupForm("ada@example.com"))
	require.Equal(t, session.PhaseSucceeded, st.Phase)
	assert.Equal(t, "Account created successfully!", st.Message)
	assert.Equal(t, session.StateAuthenticated, svc.State())

	auth := svc.Session()
	require.NotNil(t, auth)
	assert.Equal(t, "Ada Lovelace", auth.DisplayName)

	// Exactly one profile write, with the email provider marker.
	assert.Equal(t, 1, profiles.writes)
	p, err := profiles.ReadProfile(ctx, auth.UserID)
	require.NoError(t, err)
	assert.Equal(t, profile.ProviderEmail, p.Provider)
	assert.Equal(t, "Ada Lovelace", p.DisplayName)
}

func TestSessionLoginThroughProvider(t *testing.T) {
	svc, provider, profiles := setupSessionWithProvider(t)
	ctx := context.Background()

	user, err := provider.CreateAccount(ctx, "ada@example.com", "secret123")
	require.NoError(t, err)
	require.NoError(t, provider.UpdateDisplayName(ctx, user.UserID, "Ada Lovelace"))
	require.NoError(t, profiles.WriteProfile(ctx, profile.Profile{
		UserID:      user.UserID,
		DisplayName: "Ada Lovelace",
		Email:       "ada@example.com",
		CreatedAt:   time.Now(),
		Provider:    profile.ProviderEmail,
	}))
	require.NoError(t, svc.SignOut(ctx))

	st := svc.SubmitLogin(ctx, "ada@example.com", "secret123")
	require.Equal(t, session.PhaseSucceeded, st.Phase)
	assert.Equal(t, "Welcome back, ada@example.com!", st.Message)
	assert.Equal(t, session.StateAuthenticated, svc.State())

	// The form settles, so further submissions are not blocked.
	st = svc.SubmitLogin(ctx, "ada@example.com", "secret123")
	assert.Equal(t, session.PhaseSucceeded, st.Phase)

	p, err := profiles.ReadProfile(ctx, user.UserID)
	require.NoError(t, err)
	assert.False(t, p.LastLogin.IsZero())
}

func TestSessionLoginFailureThroughProvider(t *testing.T) {
	svc, provider, _ := setupSessionWithProvider(t)
	ctx := context.Background()

	_, err := provider.CreateAccount(ctx, "ada@example.com", "secret123")
	require.NoError(t, err)
	require.NoError(t, svc.SignOut(ctx))

	st := svc.SubmitLogin(ctx, "ada@example.com", "wrong-password")
	assert.Equal(t, session.PhaseFailed, st.Phase)
	assert.Equal(t, "Incorrect password", st.Message)
	assert.Nil(t, svc.Session())
}

func TestSessionForcedInvalidationThroughProvider(t *testing.T) {
	svc, provider, _ := setupSessionWithProvider(t)
	ctx := context.Background()

	st := svc.SubmitSignup(ctx, signupForm("ada@example.com"))
	require.Equal(t, session.PhaseSucceeded, st.Phase)

	provider.InvalidateSession()
	assert.Equal(t, session.StateAnonymous, svc.State())
	assert.Nil(t, svc.Session())
}
