package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/NicoBar2/scrapingdarwin/internal/numwords"
	dErrors "github.com/NicoBar2/scrapingdarwin/pkg/domain-errors"
	"github.com/NicoBar2/scrapingdarwin/pkg/platform/httputil"
	"github.com/NicoBar2/scrapingdarwin/pkg/requestcontext"
)

// AmountRequest is the HTTP request body for POST /identity/numero-letras.
// Numero accepts a JSON number or a numeric string.
type AmountRequest struct {
	Numero json.RawMessage `json:"numero"`
}

// Validate implements httputil.Validatable. An explicit null is left for the
// parser so it is reported as a null value rather than a missing field.
func (r *AmountRequest) Validate() error {
	if r.Numero == nil {
		return dErrors.New(dErrors.CodeValidation, "Campo 'numero' es requerido")
	}
	return nil
}

// AmountResponse is the HTTP response for POST /identity/numero-letras.
type AmountResponse struct {
	Number  json.Number `json:"number"`
	InWords string      `json:"in_words"`
}

// Handler exposes amount-to-words conversion.
type Handler struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

// Register mounts the conversion endpoint on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/identity/numero-letras", h.HandleAmountInWords)
}

func (h *Handler) HandleAmountInWords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[AmountRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	amount, err := numwords.ParseAmount(req.Numero)
	if err != nil {
		h.logger.InfoContext(ctx, "amount rejected", "request_id", requestID, "error", err)
		httputil.WriteError(w, err)
		return
	}
	words, err := numwords.Currency(amount)
	if err != nil {
		h.logger.InfoContext(ctx, "amount rejected", "request_id", requestID, "error", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &AmountResponse{
		Number:  json.Number(amount.Round(2).String()),
		InWords: words,
	})
}
