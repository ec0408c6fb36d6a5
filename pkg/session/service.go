package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"github.com/purevote/purevote/pkg/profile"
	"github.com/purevote/purevote/pkg/validation"
)

// Service is the session state machine. It validates form input locally,
// drives the identity provider, and maps provider failures to the messages
// shown on the login, signup and reset forms.
//
// All public methods are safe for concurrent use. The provider is never
// called while the internal lock is held, so a slow backend cannot block
// readers of State and Status.
type Service struct {
	provider IdentityProvider
	profiles profile.Store
	policy   *validation.Policy
	demoMode bool
	now      func() time.Time

	mu          sync.Mutex
	state       State
	current     *AuthState
	statuses    map[Form]RequestStatus
	generation  uint64
	unsubscribe func()

	hookMu       sync.Mutex
	signOutHooks []func()
}

// Option customizes a session Service.
type Option func(*Service)

// WithDemoMode makes submissions short-circuit with demo confirmations
// instead of contacting the identity provider.
func WithDemoMode(enabled bool) Option {
	return func(s *Service) {
		s.demoMode = enabled
	}
}

// WithPolicy overrides the signup validation policy.
func WithPolicy(policy *validation.Policy) Option {
	return func(s *Service) {
		s.policy = policy
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a session Service on top of the given provider and
// profile store.
func NewService(provider IdentityProvider, profiles profile.Store, opts ...Option) *Service {
	s := &Service{
		provider: provider,
		profiles: profiles,
		policy:   validation.DefaultPolicy(),
		now:      time.Now,
		state:    StateAnonymous,
		statuses: map[Form]RequestStatus{
			FormLogin:  {Phase: PhaseIdle},
			FormSignup: {Phase: PhaseIdle},
			FormReset:  {Phase: PhaseIdle},
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start subscribes to provider auth state changes. Provider-initiated
// changes, such as a session invalidated server-side, force the local
// state to match. Call Close to unsubscribe.
//
// Providers may push the authenticated state synchronously from within
// SignIn or CreateAccount, so only a forced sign-out (nil push) bumps the
// generation; a signed-in push must not invalidate the submission that
// caused it.
func (s *Service) Start() {
	s.unsubscribe = s.provider.OnAuthStateChanged(func(auth *AuthState) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if auth == nil {
			s.generation++
			s.state = StateAnonymous
			s.current = nil
			return
		}
		copied := *auth
		s.state = StateAuthenticated
		s.current = &copied
	})
}

// Close unsubscribes from provider auth state changes.
func (s *Service) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// State returns the current session lifecycle state.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Session returns a copy of the authenticated user, or nil when anonymous.
func (s *Service) Session() *AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

// Status returns the most recent submission outcome for the given form.
func (s *Service) Status(form Form) RequestStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statuses[form]
}

// SubmitLogin validates and submits the login form. The returned status is
// the final outcome of this submission; a duplicate submission while one is
// already pending returns the pending status untouched.
func (s *Service) SubmitLogin(ctx context.Context, email, password string) RequestStatus {
	if err := validation.ValidateLogin(email, password); err != nil {
		return s.setStatus(FormLogin, RequestStatus{Phase: PhaseFailed, Message: err.Error()})
	}

	if s.demoMode {
		return s.setStatus(FormLogin, RequestStatus{Phase: PhaseSucceeded, Message: demoSignInMessage(email)})
	}

	gen, st, ok := s.begin(FormLogin, true)
	if !ok {
		return st
	}

	user, err := s.provider.SignIn(ctx, email, password)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		// Signed out or provider state changed while in flight, drop it.
		return s.statuses[FormLogin]
	}
	if err != nil {
		slog.Error("sign in failed", "email", email, "err", err)
		s.state = StateAuthFailed
		s.statuses[FormLogin] = RequestStatus{Phase: PhaseFailed, Message: messageFor(signInMessages, fallbackSignIn, err)}
		return s.statuses[FormLogin]
	}

	s.state = StateAuthenticated
	s.current = &AuthState{UserID: user.UserID, Email: user.Email}
	if p, perr := s.profiles.ReadProfile(ctx, user.UserID); perr == nil {
		s.current.DisplayName = p.DisplayName
	}
	if terr := s.profiles.TouchLastLogin(ctx, user.UserID, s.now()); terr != nil {
		slog.Warn("failed to update last login", "userID", user.UserID, "err", terr)
	}
	s.statuses[FormLogin] = RequestStatus{Phase: PhaseSucceeded, Message: welcomeMessage(user.Email)}
	return s.statuses[FormLogin]
}

// SubmitSignup validates and submits the signup form. On success the
// provider identity gets its display name set and a profile record is
// written exactly once.
func (s *Service) SubmitSignup(ctx context.Context, form validation.SignupForm) RequestStatus {
	if err := validation.ValidateSignup(form, s.policy); err != nil {
		return s.setStatus(FormSignup, RequestStatus{Phase: PhaseFailed, Message: err.Error()})
	}

	if s.demoMode {
		return s.setStatus(FormSignup, RequestStatus{Phase: PhaseSucceeded, Message: demoSignUpMessage(form.Email)})
	}

	gen, st, ok := s.begin(FormSignup, true)
	if !ok {
		return st
	}

	displayName := strings.TrimSpace(form.FirstName + " " + form.LastName)
	user, err := s.provider.CreateAccount(ctx, form.Email, form.Password)
	if err == nil {
		if nerr := s.provider.UpdateDisplayName(ctx, user.UserID, displayName); nerr != nil {
			slog.Warn("failed to set display name", "userID", user.UserID, "err", nerr)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		return s.statuses[FormSignup]
	}
	if err != nil {
		slog.Error("account creation failed", "email", form.Email, "err", err)
		s.state = StateAuthFailed
		s.statuses[FormSignup] = RequestStatus{Phase: PhaseFailed, Message: messageFor(signUpMessages, fallbackSignUp, err)}
		return s.statuses[FormSignup]
	}

	now := s.now()
	if perr := s.profiles.WriteProfile(ctx, profile.Profile{
		UserID:      user.UserID,
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		DisplayName: displayName,
		Email:       form.Email,
		CreatedAt:   now,
		LastLogin:   now,
		Provider:    profile.ProviderEmail,
	}); perr != nil {
		slog.Error("failed to write profile", "userID", user.UserID, "err", perr)
	}

	s.state = StateAuthenticated
	s.current = &AuthState{UserID: user.UserID, Email: user.Email, DisplayName: displayName}
	s.statuses[FormSignup] = RequestStatus{Phase: PhaseSucceeded, Message: "Account created successfully!"}
	return s.statuses[FormSignup]
}

// SubmitPasswordReset validates and submits the reset form.
func (s *Service) SubmitPasswordReset(ctx context.Context, email string) RequestStatus {
	if err := validation.ValidateResetEmail(email); err != nil {
		return s.setStatus(FormReset, RequestStatus{Phase: PhaseFailed, Message: err.Error()})
	}

	if s.demoMode {
		return s.setStatus(FormReset, RequestStatus{Phase: PhaseSucceeded, Message: demoResetMessage(email)})
	}

	gen, st, ok := s.begin(FormReset, false)
	if !ok {
		return st
	}

	err := s.provider.SendPasswordReset(ctx, email)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		return s.statuses[FormReset]
	}
	if err != nil {
		slog.Error("password reset failed", "email", email, "err", err)
		s.statuses[FormReset] = RequestStatus{Phase: PhaseFailed, Message: messageFor(resetMessages, fallbackReset, err)}
		return s.statuses[FormReset]
	}
	s.statuses[FormReset] = RequestStatus{Phase: PhaseSucceeded, Message: "Password reset email sent. Check your inbox."}
	return s.statuses[FormReset]
}

// RegisterSignOutHook adds a callback run on every sign-out, used to tear
// down per-user sub-state such as the wallet connection or an open join
// request.
func (s *Service) RegisterSignOutHook(fn func()) {
	s.hookMu.Lock()
	defer s.hookMu.Unlock()
	s.signOutHooks = append(s.signOutHooks, fn)
}

// SignOut terminates the session. Any submission still in flight is
// invalidated and its response discarded when it lands. Registered
// sign-out hooks run after the local state is cleared.
func (s *Service) SignOut(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	s.state = StateAnonymous
	s.current = nil
	for form := range s.statuses {
		s.statuses[form] = RequestStatus{Phase: PhaseIdle}
	}
	s.mu.Unlock()

	s.hookMu.Lock()
	hooks := append([]func(){}, s.signOutHooks...)
	s.hookMu.Unlock()
	for _, fn := range hooks {
		fn()
	}

	if err := s.provider.SignOut(ctx); err != nil {
		slog.Error("provider sign out failed", "err", err)
		return err
	}
	return nil
}

// begin marks a form pending and captures the generation, refusing the
// submission when one is already pending. authTransition also moves the
// session state to AuthPending.
func (s *Service) begin(form Form, authTransition bool) (uint64, RequestStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.statuses[form].Phase == PhasePending {
		return 0, s.statuses[form], false
	}
	s.statuses[form] = RequestStatus{Phase: PhasePending}
	if authTransition {
		s.state = StateAuthPending
	}
	return s.generation, s.statuses[form], true
}

func (s *Service) setStatus(form Form, st RequestStatus) RequestStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[form] = st
	return st
}
