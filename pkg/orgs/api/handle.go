package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"golang.org/x/exp/slog"

	"github.com/purevote/purevote/pkg/orgs"
)

type Handle struct {
	orgService *orgs.Service
}

func NewHandle(orgService *orgs.Service) *Handle {
	return &Handle{orgService: orgService}
}

// ErrorResponse carries an error message.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ListOrganizations returns the directory grouped by category.
func (h *Handle) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	dir, err := h.orgService.Directory(r.Context())
	if err != nil {
		slog.Error("failed to list organizations", "err", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, ErrorResponse{Status: "error", Message: "Failed to load organizations"})
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, dir)
}

// GetOrganization returns a single directory entry.
func (h *Handle) GetOrganization(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	org, err := h.orgService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, orgs.ErrOrgNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, ErrorResponse{Status: "error", Message: "Organization not found"})
			return
		}
		slog.Error("failed to get organization", "orgID", id, "err", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, ErrorResponse{Status: "error", Message: "Failed to load organization"})
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, org)
}

// Handler returns a http.Handler for the organization directory API
func Handler(h *Handle) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListOrganizations)
	r.Get("/{id}", h.GetOrganization)

	return r
}
