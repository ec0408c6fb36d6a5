package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"golang.org/x/exp/slog"

	"github.com/purevote/purevote/pkg/join"
	"github.com/purevote/purevote/pkg/orgs"
)

type Handle struct {
	workflow *join.Workflow
}

func NewHandle(workflow *join.Workflow) *Handle {
	return &Handle{workflow: workflow}
}

// OpenRequest starts a join request for an organization.
type OpenRequest struct {
	OrgID string `json:"org_id"`
}

// FormRequest carries the join form fields.
type FormRequest struct {
	FullName string    `json:"full_name"`
	Role     join.Role `json:"role"`
	Email    string    `json:"email"`
}

// CodeDigitRequest records one digit of the verification code.
type CodeDigitRequest struct {
	Index int    `json:"index"`
	Value string `json:"value"`
}

// ConfirmResponse reports a completed join.
type ConfirmResponse struct {
	Request join.Request `json:"request"`
	Title   string       `json:"title"`
	Message string       `json:"message"`
}

// ErrorResponse carries an error message.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Open starts a join request.
func (h *Handle) Open(w http.ResponseWriter, r *http.Request) {
	var req OpenRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	request, err := h.workflow.Open(r.Context(), req.OrgID)
	if err != nil {
		if errors.Is(err, orgs.ErrOrgNotFound) {
			renderError(w, r, http.StatusNotFound, "Organization not found")
			return
		}
		slog.Error("failed to open join request", "orgID", req.OrgID, "err", err)
		renderError(w, r, http.StatusInternalServerError, "Failed to open join request")
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, request)
}

// UpdateForm sets the join form fields.
func (h *Handle) UpdateForm(w http.ResponseWriter, r *http.Request) {
	var req FormRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	request, err := h.workflow.UpdateForm(req.FullName, req.Role, req.Email)
	if err != nil {
		renderWorkflowError(w, r, err)
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, request)
}

// Verify sends the verification code and moves to the verifying stage.
func (h *Handle) Verify(w http.ResponseWriter, r *http.Request) {
	request, err := h.workflow.Verify(r.Context())
	if err != nil {
		renderWorkflowError(w, r, err)
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, request)
}

// SetCodeDigit records one entered digit.
func (h *Handle) SetCodeDigit(w http.ResponseWriter, r *http.Request) {
	var req CodeDigitRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	request, err := h.workflow.SetCodeDigit(req.Index, req.Value)
	if err != nil {
		renderWorkflowError(w, r, err)
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, request)
}

// Resend sends a fresh verification code.
func (h *Handle) Resend(w http.ResponseWriter, r *http.Request) {
	if err := h.workflow.Resend(r.Context()); err != nil {
		renderWorkflowError(w, r, err)
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]string{"status": "sent"})
}

// Confirm checks the entered code and completes the join.
func (h *Handle) Confirm(w http.ResponseWriter, r *http.Request) {
	request, err := h.workflow.Confirm(r.Context())
	if err != nil {
		renderWorkflowError(w, r, err)
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, ConfirmResponse{
		Request: request,
		Title:   join.MsgJoinSuccessTitle,
		Message: join.MsgJoinSuccessText,
	})
}

// Cancel abandons the live join request.
func (h *Handle) Cancel(w http.ResponseWriter, r *http.Request) {
	h.workflow.Cancel()
	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]string{"status": "cancelled"})
}

// Current returns the live join request.
func (h *Handle) Current(w http.ResponseWriter, r *http.Request) {
	request, err := h.workflow.Current()
	if err != nil {
		renderWorkflowError(w, r, err)
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, request)
}

func renderWorkflowError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, join.ErrNoActiveRequest):
		renderError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, join.ErrInvalidCode),
		errors.Is(err, join.ErrCodeIncomplete),
		errors.Is(err, join.ErrFormIncomplete),
		errors.Is(err, join.ErrInvalidRole):
		renderError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, join.ErrNotVerifying):
		renderError(w, r, http.StatusConflict, err.Error())
	default:
		slog.Error("join workflow failure", "err", err)
		renderError(w, r, http.StatusInternalServerError, "Join request failed")
	}
}

func renderError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{Status: "error", Message: message})
}

// Handler returns a http.Handler for the join workflow API
func Handler(h *Handle) http.Handler {
	r := chi.NewRouter()

	r.Post("/open", h.Open)
	r.Get("/current", h.Current)
	r.Put("/form", h.UpdateForm)
	r.Post("/verify", h.Verify)
	r.Post("/code", h.SetCodeDigit)
	r.Post("/resend", h.Resend)
	r.Post("/confirm", h.Confirm)
	r.Post("/cancel", h.Cancel)

	return r
}
