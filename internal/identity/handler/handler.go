package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/NicoBar2/scrapingdarwin/internal/identity"
	"github.com/NicoBar2/scrapingdarwin/pkg/platform/httputil"
	"github.com/NicoBar2/scrapingdarwin/pkg/requestcontext"
)

// Service defines the interface for identity operations.
type Service interface {
	VerifyIdentification(ctx context.Context, id string) identity.Verdict
	CalculateAge(ctx context.Context, birthDate string) identity.AgeResult
}

// Handler wires identity endpoints to the identity service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an identity handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts identity endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/identity/verificar-cedula", h.HandleVerifyCedula)
	r.Post("/identity/calcular-edad", h.HandleCalculateAge)
}

// HandleVerifyCedula handles POST /identity/verificar-cedula requests.
func (h *Handler) HandleVerifyCedula(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[VerifyCedulaRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	verdict := h.service.VerifyIdentification(ctx, *req.Cedula)
	if !verdict.Valid {
		h.logger.InfoContext(ctx, "cedula rejected",
			"request_id", requestID,
			"reason", verdict.Reason.String(),
		)
		httputil.WriteJSON(w, http.StatusBadRequest, FromVerdict(verdict))
		return
	}

	h.logger.InfoContext(ctx, "cedula verified",
		"request_id", requestID,
		"province_code", verdict.Province.Code,
	)
	httputil.WriteJSON(w, http.StatusOK, FromVerdict(verdict))
}

// HandleCalculateAge handles POST /identity/calcular-edad requests.
func (h *Handler) HandleCalculateAge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CalculateAgeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result := h.service.CalculateAge(ctx, *req.BirthDate)
	if !result.OK() {
		h.logger.InfoContext(ctx, "age calculation rejected",
			"request_id", requestID,
			"reason", result.Reason.String(),
		)
		httputil.WriteJSON(w, http.StatusBadRequest, &ReasonResponse{
			Reason:  result.Reason.String(),
			Message: result.Reason.Message(),
		})
		return
	}

	h.logger.InfoContext(ctx, "age calculated",
		"request_id", requestID,
		"is_adult", result.Age.IsAdult,
	)
	httputil.WriteJSON(w, http.StatusOK, FromAge(result.Age))
}
