package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"registrar/internal/platform/middleware"
	"registrar/internal/transport/http/shared"
	dErrors "registrar/pkg/domain-errors"
)

// RegistrationService defines the use case this handler delegates to.
type RegistrationService interface {
	Register(ctx context.Context, email, credential string) error
}

// Handler serves the registration endpoints.
type Handler struct {
	log          *slog.Logger
	registration RegistrationService
}

func NewHandler(registration RegistrationService, log *slog.Logger) *Handler {
	return &Handler{log: log, registration: registration}
}

// RegisterRequest is the wire form of a registration attempt.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.WarnContext(ctx, "invalid register request body",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	if err := h.registration.Register(ctx, req.Email, req.Password); err != nil {
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, struct{}{})
}
