package session

// State is the session lifecycle state.
type State string

const (
	StateAnonymous     State = "anonymous"
	StateAuthPending   State = "auth_pending"
	StateAuthenticated State = "authenticated"
	StateAuthFailed    State = "auth_failed"
)

// Form identifies which credential form a request status belongs to.
type Form string

const (
	FormLogin  Form = "login"
	FormSignup Form = "signup"
	FormReset  Form = "reset"
)

// Phase is the lifecycle phase of a single form submission.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhasePending   Phase = "pending"
	PhaseSucceeded Phase = "succeeded"
	PhaseFailed    Phase = "failed"
)

// RequestStatus is the outcome of the most recent submission of a form.
// Message is user-facing text, a success confirmation or an error.
type RequestStatus struct {
	Phase   Phase  `json:"phase"`
	Message string `json:"message,omitempty"`
}
