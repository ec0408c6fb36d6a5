package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purevote/purevote/pkg/idmerr"
	"github.com/purevote/purevote/pkg/profile"
	"github.com/purevote/purevote/pkg/validation"
)

type mockProvider struct {
	mu        sync.Mutex
	signIn    func(ctx context.Context, email, password string) (ProviderUser, error)
	create    func(ctx context.Context, email, password string) (ProviderUser, error)
	reset     func(ctx context.Context, email string) error
	listeners []func(*AuthState)

	displayNames map[uuid.UUID]string
	signOutCount int
}

func newMockProvider() *mockProvider {
	return &mockProvider{displayNames: map[uuid.UUID]string{}}
}

func (m *mockProvider) SignIn(ctx context.Context, email, password string) (ProviderUser, error) {
	if m.signIn != nil {
		return m.signIn(ctx, email, password)
	}
	return ProviderUser{UserID: uuid.New(), Email: email}, nil
}

func (m *mockProvider) CreateAccount(ctx context.Context, email, password string) (ProviderUser, error) {
	if m.create != nil {
		return m.create(ctx, email, password)
	}
	return ProviderUser{UserID: uuid.New(), Email: email}, nil
}

func (m *mockProvider) SignOut(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.signOutCount++
	return nil
}

func (m *mockProvider) SendPasswordReset(ctx context.Context, email string) error {
	if m.reset != nil {
		return m.reset(ctx, email)
	}
	return nil
}

func (m *mockProvider) UpdateDisplayName(ctx context.Context, userID uuid.UUID, displayName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.displayNames[userID] = displayName
	return nil
}

func (m *mockProvider) OnAuthStateChanged(fn func(*AuthState)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
	return func() {}
}

func (m *mockProvider) emitAuthState(auth *AuthState) {
	m.mu.Lock()
	listeners := append([]func(*AuthState){}, m.listeners...)
	m.mu.Unlock()
	for _, fn := range listeners {
		fn(auth)
	}
}

func setupService(t *testing.T, opts ...Option) (*Service, *mockProvider, profile.Store) {
	t.Helper()
	provider := newMockProvider()
	profiles := profile.NewInMemoryStore()
	svc := NewService(provider, profiles, opts...)
	svc.Start()
	t.Cleanup(svc.Close)
	return svc, provider, profiles
}

func TestSubmitLoginValidation(t *testing.T) {
	svc, _, _ := setupService(t)

	st := svc.SubmitLogin(context.Background(), "", "secret123")
	assert.Equal(t, PhaseFailed, st.Phase)
	assert.Equal(t, "Please enter both email and password", st.Message)
	assert.Equal(t, StateAnonymous, svc.State())
}

func TestSubmitLoginSuccess(t *testing.T) {
	svc, provider, profiles := setupService(t)
	userID := uuid.New()
	provider.signIn = func(ctx context.Context, email, password string) (ProviderUser, error) {
		return ProviderUser{UserID: userID, Email: email}, nil
	}
	require.NoError(t, profiles.WriteProfile(context.Background(), profile.Profile{
		UserID:      userID,
		DisplayName: "Ada Lovelace",
		Email:       "ada@example.com",
		Provider:    profile.ProviderEmail,
	}))

	st := svc.SubmitLogin(context.Background(), "ada@example.com", "secret123")
	assert.Equal(t, PhaseSucceeded, st.Phase)
	assert.Equal(t, "Welcome back, ada@example.com!", st.Message)
	assert.Equal(t, StateAuthenticated, svc.State())

	auth := svc.Session()
	require.NotNil(t, auth)
	assert.Equal(t, userID, auth.UserID)
	assert.Equal(t, "Ada Lovelace", auth.DisplayName)

	p, err := profiles.ReadProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.False(t, p.LastLogin.IsZero())
}

func TestSubmitLoginFailureMessages(t *testing.T) {
	tests := []struct {
		name    string
		code    idmerr.ErrorCode
		message string
	}{
		{"wrong password", idmerr.ErrCodeWrongPassword, "Incorrect password"},
		{"unknown user", idmerr.ErrCodeUserNotFound, "No account with this email exists"},
		{"disabled account", idmerr.ErrCodeUserDisabled, "This account has been disabled"},
		{"bad email", idmerr.ErrCodeInvalidEmail, "Invalid email address format"},
		{"backend down", idmerr.ErrCodeInternal, "Failed to sign in. Please try again."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, provider, _ := setupService(t)
			provider.signIn = func(ctx context.Context, email, password string) (ProviderUser, error) {
				return ProviderUser{}, idmerr.New(tt.code, "provider failure")
			}

			st := svc.SubmitLogin(context.Background(), "ada@example.com", "secret123")
			assert.Equal(t, PhaseFailed, st.Phase)
			assert.Equal(t, tt.message, st.Message)
			assert.Equal(t, StateAuthFailed, svc.State())
			assert.Nil(t, svc.Session())
		})
	}
}

func TestSubmitSignupWritesProfileOnce(t *testing.T) {
	svc, provider, profiles := setupService(t)
	userID := uuid.New()
	provider.create = func(ctx context.Context, email, password string) (ProviderUser, error) {
		return ProviderUser{UserID: userID, Email: email}, nil
	}

	st := svc.SubmitSignup(context.Background(), validation.SignupForm{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		AgreeTerms:      true,
	})
	assert.Equal(t, PhaseSucceeded, st.Phase)
	assert.Equal(t, "Account created successfully!", st.Message)
	assert.Equal(t, StateAuthenticated, svc.State())

	p, err := profiles.ReadProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", p.DisplayName)
	assert.Equal(t, profile.ProviderEmail, p.Provider)
	assert.Equal(t, "Ada Lovelace", provider.displayNames[userID])
}

func TestSubmitSignupValidationOrder(t *testing.T) {
	svc, _, _ := setupService(t)

	st := svc.SubmitSignup(context.Background(), validation.SignupForm{
		Email:    "ada@example.com",
		Password: "short",
	})
	assert.Equal(t, PhaseFailed, st.Phase)
	assert.Equal(t, "Please enter your first and last name", st.Message)
}

func TestSubmitSignupDuplicateEmail(t *testing.T) {
	svc, provider, _ := setupService(t)
	provider.create = func(ctx context.Context, email, password string) (ProviderUser, error) {
		return ProviderUser{}, idmerr.New(idmerr.ErrCodeEmailAlreadyInUse, "duplicate")
	}

	st := svc.SubmitSignup(context.Background(), validation.SignupForm{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		AgreeTerms:      true,
	})
	assert.Equal(t, PhaseFailed, st.Phase)
	assert.Equal(t, "An account with this email already exists", st.Message)
}

func TestSubmitPasswordReset(t *testing.T) {
	svc, provider, _ := setupService(t)

	st := svc.SubmitPasswordReset(context.Background(), "ada@example.com")
	assert.Equal(t, PhaseSucceeded, st.Phase)
	assert.Equal(t, "Password reset email sent. Check your inbox.", st.Message)
	// Reset never changes the session state.
	assert.Equal(t, StateAnonymous, svc.State())

	provider.reset = func(ctx context.Context, email string) error {
		return idmerr.New(idmerr.ErrCodeUserNotFound, "no such user")
	}
	st = svc.SubmitPasswordReset(context.Background(), "ghost@example.com")
	assert.Equal(t, PhaseFailed, st.Phase)
	assert.Equal(t, "No account found with this email", st.Message)
}

func TestDemoMode(t *testing.T) {
	svc, provider, _ := setupService(t, WithDemoMode(true))
	provider.signIn = func(ctx context.Context, email, password string) (ProviderUser, error) {
		t.Fatal("provider must not be called in demo mode")
		return ProviderUser{}, nil
	}

	st := svc.SubmitLogin(context.Background(), "ada@example.com", "secret123")
	assert.Equal(t, PhaseSucceeded, st.Phase)
	assert.Equal(t, "Demo mode: Would sign in with ada@example.com", st.Message)

	st = svc.SubmitPasswordReset(context.Background(), "ada@example.com")
	assert.Equal(t, "Demo mode: Would send password reset to ada@example.com", st.Message)

	st = svc.SubmitSignup(context.Background(), validation.SignupForm{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		AgreeTerms:      true,
	})
	assert.Equal(t, "Demo mode: Would create account for ada@example.com", st.Message)

	// Demo confirmations never authenticate.
	assert.Equal(t, StateAnonymous, svc.State())
	assert.Nil(t, svc.Session())
}

func TestSignOutRunsHooks(t *testing.T) {
	svc, _, _ := setupService(t)
	hookRuns := 0
	svc.RegisterSignOutHook(func() { hookRuns++ })

	st := svc.SubmitLogin(context.Background(), "ada@example.com", "secret123")
	require.Equal(t, PhaseSucceeded, st.Phase)

	require.NoError(t, svc.SignOut(context.Background()))
	assert.Equal(t, 1, hookRuns)
}

func TestPendingGuard(t *testing.T) {
	svc, provider, _ := setupService(t)
	release := make(chan struct{})
	provider.signIn = func(ctx context.Context, email, password string) (ProviderUser, error) {
		<-release
		return ProviderUser{UserID: uuid.New(), Email: email}, nil
	}

	done := make(chan RequestStatus, 1)
	go func() {
		done <- svc.SubmitLogin(context.Background(), "ada@example.com", "secret123")
	}()

	require.Eventually(t, func() bool {
		return svc.Status(FormLogin).Phase == PhasePending
	}, time.Second, 5*time.Millisecond)

	// A second submission while one is in flight is refused.
	st := svc.SubmitLogin(context.Background(), "ada@example.com", "secret123")
	assert.Equal(t, PhasePending, st.Phase)

	close(release)
	st = <-done
	assert.Equal(t, PhaseSucceeded, st.Phase)
}

func TestSignOutDiscardsInFlightResponse(t *testing.T) {
	svc, provider, _ := setupService(t)
	release := make(chan struct{})
	provider.signIn = func(ctx context.Context, email, password string) (ProviderUser, error) {
		<-release
		return ProviderUser{UserID: uuid.New(), Email: email}, nil
	}

	done := make(chan RequestStatus, 1)
	go func() {
		done <- svc.SubmitLogin(context.Background(), "ada@example.com", "secret123")
	}()
	require.Eventually(t, func() bool {
		return svc.Status(FormLogin).Phase == PhasePending
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, svc.SignOut(context.Background()))
	close(release)
	<-done

	// The stale success must not resurrect the session.
	assert.Equal(t, StateAnonymous, svc.State())
	assert.Nil(t, svc.Session())
	assert.Equal(t, PhaseIdle, svc.Status(FormLogin).Phase)
}

func TestProviderForcedSignOut(t *testing.T) {
	svc, provider, _ := setupService(t)

	st := svc.SubmitLogin(context.Background(), "ada@example.com", "secret123")
	require.Equal(t, PhaseSucceeded, st.Phase)
	require.Equal(t, StateAuthenticated, svc.State())

	provider.emitAuthState(nil)
	assert.Equal(t, StateAnonymous, svc.State())
	assert.Nil(t, svc.Session())
}

func TestSubmitLoginWithSynchronousAuthPush(t *testing.T) {
	svc, provider, _ := setupService(t)
	userID := uuid.New()
	provider.signIn = func(ctx context.Context, email, password string) (ProviderUser, error) {
		// Push the signed-in state from inside the call, the way a
		// provider with its own auth-state stream does.
		provider.emitAuthState(&AuthState{UserID: userID, Email: email})
		return ProviderUser{UserID: userID, Email: email}, nil
	}

	st := svc.SubmitLogin(context.Background(), "ada@example.com", "secret123")
	assert.Equal(t, PhaseSucceeded, st.Phase)
	assert.Equal(t, "Welcome back, ada@example.com!", st.Message)
	assert.Equal(t, StateAuthenticated, svc.State())

	// The form settles, so a new submission is not blocked.
	assert.Equal(t, PhaseSucceeded, svc.Status(FormLogin).Phase)
	st = svc.SubmitLogin(context.Background(), "ada@example.com", "secret123")
	assert.Equal(t, PhaseSucceeded, st.Phase)
}

func TestSubmitSignupWithSynchronousAuthPush(t *testing.T) {
	svc, provider, profiles := setupService(t)
	userID := uuid.New()
	provider.create = func(ctx context.Context, email, password string) (ProviderUser, error) {
		provider.emitAuthState(&AuthState{UserID: userID, Email: email})
		return ProviderUser{UserID: userID, Email: email}, nil
	}

	st := svc.SubmitSignup(context.Background(), validation.SignupForm{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		AgreeTerms:      true,
	})
	assert.Equal(t, PhaseSucceeded, st.Phase)
	assert.Equal(t, "Account created successfully!", st.Message)

	// The push caused by the submit must not suppress the profile write.
	p, err := profiles.ReadProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, profile.ProviderEmail, p.Provider)
	assert.Equal(t, "Ada Lovelace", p.DisplayName)
}

func TestProviderPushedAuthState(t *testing.T) {
	svc, provider, _ := setupService(t)
	userID := uuid.New()

	provider.emitAuthState(&AuthState{UserID: userID, Email: "ada@example.com", DisplayName: "Ada"})
	assert.Equal(t, StateAuthenticated, svc.State())
	auth := svc.Session()
	require.NotNil(t, auth)
	assert.Equal(t, userID, auth.UserID)
}
