package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/NicoBar2/scrapingdarwin/internal/security"
	dErrors "github.com/NicoBar2/scrapingdarwin/pkg/domain-errors"
	"github.com/NicoBar2/scrapingdarwin/pkg/platform/httputil"
	"github.com/NicoBar2/scrapingdarwin/pkg/requestcontext"
)

// PasswordRequest is the HTTP request body for POST /security/evaluar-password.
type PasswordRequest struct {
	Password *string `json:"password"`
}

func (r *PasswordRequest) Validate() error {
	if r.Password == nil {
		return dErrors.New(dErrors.CodeValidation, "Campo 'password' es requerido")
	}
	return nil
}

// PasswordResponse is the HTTP response for POST /security/evaluar-password.
type PasswordResponse struct {
	Score   int               `json:"score"`
	Level   string            `json:"level"`
	Details security.Criteria `json:"details"`
}

type Handler struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/security/evaluar-password", h.HandleEvaluatePassword)
}

func (h *Handler) HandleEvaluatePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[PasswordRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	strength, err := security.EvaluatePassword(*req.Password)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	// The password itself is never logged.
	h.logger.InfoContext(ctx, "password evaluated",
		"request_id", requestID,
		"score", strength.Score,
		"level", string(strength.Level),
	)
	httputil.WriteJSON(w, http.StatusOK, &PasswordResponse{
		Score:   strength.Score,
		Level:   string(strength.Level),
		Details: strength.Criteria,
	})
}
