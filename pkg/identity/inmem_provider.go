package identity

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"

	"github.com/purevote/purevote/pkg/idmerr"
	"github.com/purevote/purevote/pkg/notification"
	"github.com/purevote/purevote/pkg/session"
)

// minPasswordLength is the provider-side weak password cutoff. It is
// deliberately looser than the signup form policy, matching hosted
// credential backends that enforce their own minimum.
const minPasswordLength = 6

type account struct {
	userID       uuid.UUID
	email        string
	passwordHash []byte
	displayName  string
	disabled     bool
}

// InMemoryProvider is a credential backend backed by process memory. It
// implements session.IdentityProvider with the same failure taxonomy a
// hosted provider reports, so the session layer maps messages identically
// in tests, demos and production.
type InMemoryProvider struct {
	mu        sync.Mutex
	accounts  map[string]*account
	byID      map[uuid.UUID]string
	listeners map[int]func(*session.AuthState)
	nextSub   int

	notifier     *notification.NotificationManager
	resetBaseURL string
}

// ProviderOption customizes an InMemoryProvider.
type ProviderOption func(*InMemoryProvider)

// WithNotificationManager wires the notification manager used to deliver
// password reset notices. Without it resets succeed silently.
func WithNotificationManager(nm *notification.NotificationManager) ProviderOption {
	return func(p *InMemoryProvider) {
		p.notifier = nm
	}
}

// WithResetBaseURL sets the base URL embedded in password reset links.
func WithResetBaseURL(baseURL string) ProviderOption {
	return func(p *InMemoryProvider) {
		p.resetBaseURL = baseURL
	}
}

// NewInMemoryProvider creates an empty in-memory credential backend.
func NewInMemoryProvider(opts ...ProviderOption) *InMemoryProvider {
	p := &InMemoryProvider{
		accounts:     map[string]*account{},
		byID:         map[uuid.UUID]string{},
		listeners:    map[int]func(*session.AuthState){},
		resetBaseURL: "https://purevote.example.com/reset",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// CreateAccount registers a new account and signs it in.
func (p *InMemoryProvider) CreateAccount(ctx context.Context, email, password string) (session.ProviderUser, error) {
	if !validEmailShape(email) {
		return session.ProviderUser{}, idmerr.New(idmerr.ErrCodeInvalidEmail, "malformed email address")
	}
	if len(password) < minPasswordLength {
		return session.ProviderUser{}, idmerr.New(idmerr.ErrCodeWeakPassword, "password below provider minimum")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return session.ProviderUser{}, idmerr.Wrap(err, idmerr.ErrCodeInternal, "failed to hash password")
	}

	key := normalizeEmail(email)

	p.mu.Lock()
	if _, exists := p.accounts[key]; exists {
		p.mu.Unlock()
		return session.ProviderUser{}, idmerr.New(idmerr.ErrCodeEmailAlreadyInUse, "account already exists")
	}
	acct := &account{
		userID:       uuid.New(),
		email:        email,
		passwordHash: hash,
	}
	p.accounts[key] = acct
	p.byID[acct.userID] = key
	user := session.ProviderUser{UserID: acct.userID, Email: acct.email}
	p.mu.Unlock()

	p.notifyAuthState(&session.AuthState{UserID: user.UserID, Email: user.Email})
	return user, nil
}

// SignIn authenticates the given credentials.
func (p *InMemoryProvider) SignIn(ctx context.Context, email, password string) (session.ProviderUser, error) {
	if !validEmailShape(email) {
		return session.ProviderUser{}, idmerr.New(idmerr.ErrCodeInvalidEmail, "malformed email address")
	}

	p.mu.Lock()
	acct, exists := p.accounts[normalizeEmail(email)]
	if !exists {
		p.mu.Unlock()
		return session.ProviderUser{}, idmerr.New(idmerr.ErrCodeUserNotFound, "no account for email")
	}
	if acct.disabled {
		p.mu.Unlock()
		return session.ProviderUser{}, idmerr.New(idmerr.ErrCodeUserDisabled, "account disabled")
	}
	hash := acct.passwordHash
	user := session.ProviderUser{UserID: acct.userID, Email: acct.email}
	displayName := acct.displayName
	p.mu.Unlock()

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return session.ProviderUser{}, idmerr.Wrap(err, idmerr.ErrCodeWrongPassword, "password mismatch")
	}

	p.notifyAuthState(&session.AuthState{UserID: user.UserID, Email: user.Email, DisplayName: displayName})
	return user, nil
}

// SignOut clears the provider-side session.
func (p *InMemoryProvider) SignOut(ctx context.Context) error {
	p.notifyAuthState(nil)
	return nil
}

// SendPasswordReset delivers a password reset notice to the account's email.
func (p *InMemoryProvider) SendPasswordReset(ctx context.Context, email string) error {
	if !validEmailShape(email) {
		return idmerr.New(idmerr.ErrCodeInvalidEmail, "malformed email address")
	}

	p.mu.Lock()
	acct, exists := p.accounts[normalizeEmail(email)]
	p.mu.Unlock()
	if !exists {
		return idmerr.New(idmerr.ErrCodeUserNotFound, "no account for email")
	}

	if p.notifier == nil {
		slog.Warn("no notification manager configured, skipping reset email", "email", acct.email)
		return nil
	}

	resetLink := fmt.Sprintf("%s?token=%s", p.resetBaseURL, uuid.New().String())
	err := p.notifier.Send(notification.PasswordResetNotice, notification.NotificationData{
		To: acct.email,
		Data: map[string]string{
			"Email":     acct.email,
			"ResetLink": resetLink,
		},
	})
	if err != nil {
		return idmerr.Wrap(err, idmerr.ErrCodeInternal, "failed to send reset email")
	}
	return nil
}

// UpdateDisplayName sets the display name on the provider identity.
func (p *InMemoryProvider) UpdateDisplayName(ctx context.Context, userID uuid.UUID, displayName string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	key, exists := p.byID[userID]
	if !exists {
		return idmerr.New(idmerr.ErrCodeUserNotFound, "no account for user id")
	}
	p.accounts[key].displayName = displayName
	return nil
}

// OnAuthStateChanged registers an auth state listener and returns its
// unsubscribe function.
func (p *InMemoryProvider) OnAuthStateChanged(fn func(*session.AuthState)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.nextSub
	p.nextSub++
	p.listeners[id] = fn
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.listeners, id)
	}
}

// DisableAccount marks an account disabled so further sign-ins fail.
func (p *InMemoryProvider) DisableAccount(email string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	acct, exists := p.accounts[normalizeEmail(email)]
	if !exists {
		return idmerr.New(idmerr.ErrCodeUserNotFound, "no account for email")
	}
	acct.disabled = true
	return nil
}

// InvalidateSession simulates a provider-initiated sign-out, for example a
// revoked token, and pushes the change to all listeners.
func (p *InMemoryProvider) InvalidateSession() {
	p.notifyAuthState(nil)
}

func (p *InMemoryProvider) notifyAuthState(auth *session.AuthState) {
	p.mu.Lock()
	listeners := make([]func(*session.AuthState), 0, len(p.listeners))
	for _, fn := range p.listeners {
		listeners = append(listeners, fn)
	}
	p.mu.Unlock()

	for _, fn := range listeners {
		fn(auth)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmailShape(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}
