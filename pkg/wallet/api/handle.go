package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"golang.org/x/exp/slog"

	"github.com/purevote/purevote/pkg/idmerr"
	"github.com/purevote/purevote/pkg/wallet"
)

type Handle struct {
	manager *wallet.Manager
}

func NewHandle(manager *wallet.Manager) *Handle {
	return &Handle{manager: manager}
}

// SwitchRequest asks for a switch to the given chain.
type SwitchRequest struct {
	ChainID int64 `json:"chain_id"`
}

// ErrorResponse carries a user-facing wallet error.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Connect requests wallet account access.
func (h *Handle) Connect(w http.ResponseWriter, r *http.Request) {
	status, err := h.manager.Connect(r.Context())
	if err != nil {
		slog.Error("wallet connect failed", "err", err)
		renderWalletError(w, r, err)
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, status)
}

// Disconnect clears the wallet connection.
func (h *Handle) Disconnect(w http.ResponseWriter, r *http.Request) {
	h.manager.Disconnect()
	render.Status(r, http.StatusOK)
	render.JSON(w, r, h.manager.Status())
}

// Switch asks the wallet to switch to another chain.
func (h *Handle) Switch(w http.ResponseWriter, r *http.Request) {
	var req SwitchRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Status: "error", Message: "Invalid request body"})
		return
	}

	if err := h.manager.SwitchNetwork(r.Context(), req.ChainID); err != nil {
		slog.Error("network switch failed", "chainID", req.ChainID, "err", err)
		renderWalletError(w, r, err)
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, h.manager.Status())
}

// GetStatus reports the current wallet connection.
func (h *Handle) GetStatus(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, h.manager.Status())
}

func renderWalletError(w http.ResponseWriter, r *http.Request, err error) {
	message := err.Error()
	var idmErr *idmerr.Error
	if e, ok := err.(*idmerr.Error); ok {
		idmErr = e
		message = e.Message
	}
	statusCode := http.StatusBadGateway
	if idmErr != nil {
		statusCode = idmErr.HTTPStatusCode()
	}
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{Status: "error", Message: message})
}

// Handler returns a http.Handler for the wallet API
func Handler(h *Handle) http.Handler {
	r := chi.NewRouter()

	r.Post("/connect", h.Connect)
	r.Post("/disconnect", h.Disconnect)
	r.Post("/switch", h.Switch)
	r.Get("/status", h.GetStatus)

	return r
}
