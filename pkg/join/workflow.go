package join

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/exp/slog"

	"github.com/purevote/purevote/pkg/notification"
	"github.com/purevote/purevote/pkg/orgs"
)

// CodeLength is the number of digits in a verification code.
const CodeLength = 6

// codeExpiryMinutes is shown in the verification email. It matches the
// passcode period.
const codeExpiryMinutes = totpPeriod / 60

// Success copy shown after a completed join.
const (
	MsgJoinSuccessTitle = "Successfully Joined!"
	MsgJoinSuccessText  = "You now have access to all active elections."
)

// Stage is the join request lifecycle stage.
type Stage string

const (
	StageForm      Stage = "form"
	StageVerifying Stage = "verifying"
	StageVerified  Stage = "verified"
)

// Role is the member role within the organization.
type Role string

const (
	RoleStudent  Role = "student"
	RoleEmployee Role = "employee"
)

// Request is a snapshot of the live join request.
type Request struct {
	OrgID    string             `json:"org_id"`
	OrgName  string             `json:"org_name"`
	FullName string             `json:"full_name"`
	Role     Role               `json:"role"`
	Email    string             `json:"email"`
	Stage    Stage              `json:"stage"`
	Code     [CodeLength]string `json:"code"`
}

type liveRequest struct {
	Request
	totpSecret string
}

// Workflow drives the organization join flow: form entry, email
// verification, and completion. At most one join request is live at a time;
// opening a new one abandons the previous request, mirroring a user closing
// one join dialog and opening another.
type Workflow struct {
	orgService *orgs.Service
	notifier   *notification.NotificationManager
	verifier   CodeVerifier
	reload     func()

	mu      sync.Mutex
	current *liveRequest
}

// WorkflowOption customizes a join Workflow.
type WorkflowOption func(*Workflow)

// WithVerifier overrides the code verifier.
func WithVerifier(v CodeVerifier) WorkflowOption {
	return func(w *Workflow) {
		w.verifier = v
	}
}

// WithReloadFunc sets the callback invoked exactly once after a completed
// join, so the caller can refresh whatever depends on membership.
func WithReloadFunc(fn func()) WorkflowOption {
	return func(w *Workflow) {
		w.reload = fn
	}
}

// NewWorkflow creates a join Workflow.
func NewWorkflow(orgService *orgs.Service, notifier *notification.NotificationManager, opts ...WorkflowOption) *Workflow {
	w := &Workflow{
		orgService: orgService,
		notifier:   notifier,
		verifier:   TotpVerifier{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Open starts a join request for the given organization, abandoning any
// request already open.
func (w *Workflow) Open(ctx context.Context, orgID string) (Request, error) {
	org, err := w.orgService.Get(ctx, orgID)
	if err != nil {
		return Request{}, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.current = &liveRequest{Request: Request{
		OrgID:   org.ID,
		OrgName: org.Name,
		Stage:   StageForm,
	}}
	return w.current.Request, nil
}

// Current returns a snapshot of the live request.
func (w *Workflow) Current() (Request, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.current == nil {
		return Request{}, ErrNoActiveRequest
	}
	return w.current.Request, nil
}

// UpdateForm sets the form fields of the live request.
func (w *Workflow) UpdateForm(fullName string, role Role, email string) (Request, error) {
	if role != "" && role != RoleStudent && role != RoleEmployee {
		return Request{}, ErrInvalidRole
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.current == nil {
		return Request{}, ErrNoActiveRequest
	}
	if w.current.Stage != StageForm {
		return Request{}, ErrNotVerifying
	}
	w.current.FullName = fullName
	w.current.Role = role
	w.current.Email = email
	return w.current.Request, nil
}

// Verify moves the request to the verifying stage and sends the
// verification code to the entered email.
func (w *Workflow) Verify(ctx context.Context) (Request, error) {
	w.mu.Lock()
	if w.current == nil {
		w.mu.Unlock()
		return Request{}, ErrNoActiveRequest
	}
	if w.current.FullName == "" || w.current.Role == "" || w.current.Email == "" {
		w.mu.Unlock()
		return Request{}, ErrFormIncomplete
	}

	secret, err := generateTotpSecret(w.current.Email)
	if err != nil {
		w.mu.Unlock()
		return Request{}, err
	}
	name := w.current.FullName
	orgName := w.current.OrgName
	email := w.current.Email
	w.mu.Unlock()

	// The stage advances only once the code is on its way. A delivery
	// failure leaves the request on the form stage so the user can retry.
	if err := w.sendCode(secret, name, orgName, email); err != nil {
		return Request{}, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.current == nil || w.current.Email != email {
		return Request{}, ErrNoActiveRequest
	}
	w.current.totpSecret = secret
	w.current.Stage = StageVerifying
	w.current.Code = [CodeLength]string{}
	return w.current.Request, nil
}

// Resend sends a fresh code for the live verification, reusing the secret
// so a code already in flight stays valid within its window.
func (w *Workflow) Resend(ctx context.Context) error {
	w.mu.Lock()
	if w.current == nil {
		w.mu.Unlock()
		return ErrNoActiveRequest
	}
	if w.current.Stage != StageVerifying {
		w.mu.Unlock()
		return ErrNotVerifying
	}
	secret := w.current.totpSecret
	name := w.current.FullName
	orgName := w.current.OrgName
	email := w.current.Email
	w.mu.Unlock()

	return w.sendCode(secret, name, orgName, email)
}

// SetCodeDigit records one digit of the code being entered.
func (w *Workflow) SetCodeDigit(index int, value string) (Request, error) {
	if index < 0 || index >= CodeLength {
		return Request{}, ErrNotVerifying
	}
	if r := []rune(value); len(r) > 1 {
		value = string(r[0])
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.current == nil {
		return Request{}, ErrNoActiveRequest
	}
	if w.current.Stage != StageVerifying {
		return Request{}, ErrNotVerifying
	}
	w.current.Code[index] = value
	return w.current.Request, nil
}

// Confirm checks the entered code. On success the request is verified, the
// organization's member count is bumped, and the reload callback fires
// exactly once.
func (w *Workflow) Confirm(ctx context.Context) (Request, error) {
	w.mu.Lock()
	if w.current == nil {
		w.mu.Unlock()
		return Request{}, ErrNoActiveRequest
	}
	if w.current.Stage != StageVerifying {
		w.mu.Unlock()
		return Request{}, ErrNotVerifying
	}
	code := strings.Join(w.current.Code[:], "")
	secret := w.current.totpSecret
	orgID := w.current.OrgID
	w.mu.Unlock()

	if len(code) != CodeLength {
		return Request{}, ErrCodeIncomplete
	}

	valid, err := w.verifier.Verify(secret, code)
	if err != nil {
		return Request{}, err
	}
	if !valid {
		return Request{}, ErrInvalidCode
	}

	w.mu.Lock()
	if w.current == nil || w.current.Stage != StageVerifying || w.current.OrgID != orgID {
		w.mu.Unlock()
		return Request{}, ErrNoActiveRequest
	}
	w.current.Stage = StageVerified
	req := w.current.Request
	w.mu.Unlock()

	if err := w.orgService.MemberJoined(ctx, orgID); err != nil {
		slog.Warn("join completed but member count not updated", "orgID", orgID, "err", err)
	}
	if w.reload != nil {
		w.reload()
	}
	return req, nil
}

// Cancel abandons the live request.
func (w *Workflow) Cancel() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.current = nil
}

func (w *Workflow) sendCode(secret, name, orgName, email string) error {
	passcode, err := generatePasscode(secret)
	if err != nil {
		return err
	}
	err = w.notifier.Send(notification.VerificationCodeNotice, notification.NotificationData{
		To: email,
		Data: map[string]string{
			"Name":          name,
			"Organization":  orgName,
			"Code":          passcode,
			"ExpiryMinutes": strconv.Itoa(codeExpiryMinutes),
		},
	})
	if err != nil {
		slog.Error("failed to send verification code", "email", email, "err", err)
		return err
	}
	return nil
}
