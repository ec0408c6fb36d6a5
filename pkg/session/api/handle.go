package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"golang.org/x/exp/slog"

	"github.com/purevote/purevote/pkg/session"
	"github.com/purevote/purevote/pkg/token"
	"github.com/purevote/purevote/pkg/validation"
)

type Handle struct {
	sessionService *session.Service
	tokenService   *token.Service
	cookieSetter   *token.CookieSetter
}

func NewHandle(sessionService *session.Service, tokenService *token.Service, cookieSetter *token.CookieSetter) *Handle {
	return &Handle{
		sessionService: sessionService,
		tokenService:   tokenService,
		cookieSetter:   cookieSetter,
	}
}

// LoginRequest is the login form payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the signup form payload.
type SignupRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	AgreeTerms      bool   `json:"agree_terms"`
}

// PasswordResetRequest is the reset form payload.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// SubmitResponse reports the outcome of a form submission.
type SubmitResponse struct {
	Status  session.Phase      `json:"status"`
	Message string             `json:"message,omitempty"`
	User    *session.AuthState `json:"user,omitempty"`
}

// StatusResponse reports the session state and the authenticated user.
type StatusResponse struct {
	State session.State      `json:"state"`
	User  *session.AuthState `json:"user,omitempty"`
}

// Login handles the login form submission and issues the session cookie on
// success.
func (h *Handle) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		slog.Error("Unable to parse login request", "err", err)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, SubmitResponse{Status: session.PhaseFailed, Message: "Invalid request body"})
		return
	}

	st := h.sessionService.SubmitLogin(r.Context(), req.Email, req.Password)
	resp := SubmitResponse{Status: st.Phase, Message: st.Message}
	if st.Phase == session.PhaseSucceeded {
		resp.User = h.sessionService.Session()
		h.issueCookie(w, resp.User)
		render.Status(r, http.StatusOK)
	} else {
		render.Status(r, http.StatusUnauthorized)
	}
	render.JSON(w, r, resp)
}

// Signup handles the signup form submission.
func (h *Handle) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		slog.Error("Unable to parse signup request", "err", err)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, SubmitResponse{Status: session.PhaseFailed, Message: "Invalid request body"})
		return
	}

	st := h.sessionService.SubmitSignup(r.Context(), validation.SignupForm{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		AgreeTerms:      req.AgreeTerms,
	})
	resp := SubmitResponse{Status: st.Phase, Message: st.Message}
	if st.Phase == session.PhaseSucceeded {
		resp.User = h.sessionService.Session()
		h.issueCookie(w, resp.User)
		render.Status(r, http.StatusCreated)
	} else {
		render.Status(r, http.StatusBadRequest)
	}
	render.JSON(w, r, resp)
}

// PasswordReset handles the reset form submission.
func (h *Handle) PasswordReset(w http.ResponseWriter, r *http.Request) {
	var req PasswordResetRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		slog.Error("Unable to parse password reset request", "err", err)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, SubmitResponse{Status: session.PhaseFailed, Message: "Invalid request body"})
		return
	}

	st := h.sessionService.SubmitPasswordReset(r.Context(), req.Email)
	if st.Phase == session.PhaseSucceeded {
		render.Status(r, http.StatusOK)
	} else {
		render.Status(r, http.StatusBadRequest)
	}
	render.JSON(w, r, SubmitResponse{Status: st.Phase, Message: st.Message})
}

// Logout terminates the session and clears the cookie.
func (h *Handle) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionService.SignOut(r.Context()); err != nil {
		slog.Error("Failed to sign out", "err", err)
	}
	h.cookieSetter.ClearCookie(w)
	render.Status(r, http.StatusOK)
	render.JSON(w, r, StatusResponse{State: h.sessionService.State()})
}

// Status reports the current session state and user.
func (h *Handle) Status(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, StatusResponse{
		State: h.sessionService.State(),
		User:  h.sessionService.Session(),
	})
}

func (h *Handle) issueCookie(w http.ResponseWriter, user *session.AuthState) {
	if user == nil {
		return
	}
	tokenStr, expiry, err := h.tokenService.GenerateToken(user.UserID, user.Email, user.DisplayName)
	if err != nil {
		slog.Error("Failed to generate session token", "err", err)
		return
	}
	h.cookieSetter.SetCookie(w, tokenStr, expiry)
}

// Handler returns a http.Handler for the session API
func Handler(h *Handle) http.Handler {
	r := chi.NewRouter()

	r.Post("/login", h.Login)
	r.Post("/signup", h.Signup)
	r.Post("/password-reset", h.PasswordReset)
	r.Post("/logout", h.Logout)
	r.Get("/status", h.Status)

	return r
}
