package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/NicoBar2/scrapingdarwin/internal/text"
	dErrors "github.com/NicoBar2/scrapingdarwin/pkg/domain-errors"
	"github.com/NicoBar2/scrapingdarwin/pkg/platform/httputil"
	"github.com/NicoBar2/scrapingdarwin/pkg/requestcontext"
)

// TextRequest is the HTTP request body shared by the text endpoints.
type TextRequest struct {
	Texto *string `json:"texto"`
}

func (r *TextRequest) Validate() error {
	if r.Texto == nil {
		return dErrors.New(dErrors.CodeValidation, "Campo 'texto' es requerido")
	}
	return nil
}

type NormalizeResponse struct {
	Original   string `json:"original"`
	Normalized string `json:"normalized"`
}

type CleanResponse struct {
	Original string `json:"original"`
	Cleaned  string `json:"cleaned"`
}

type Handler struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/text/normalizar", h.HandleNormalize)
	r.Post("/text/limpiar", h.HandleClean)
}

func (h *Handler) HandleNormalize(w http.ResponseWriter, r *http.Request) {
	h.transform(w, r, "text normalized", text.Normalize, func(orig, out string) any {
		return &NormalizeResponse{Original: orig, Normalized: out}
	})
}

func (h *Handler) HandleClean(w http.ResponseWriter, r *http.Request) {
	h.transform(w, r, "text cleaned", text.Clean, func(orig, out string) any {
		return &CleanResponse{Original: orig, Cleaned: out}
	})
}

func (h *Handler) transform(
	w http.ResponseWriter,
	r *http.Request,
	event string,
	fn func(string) (string, error),
	respond func(orig, out string) any,
) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[TextRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	out, err := fn(*req.Texto)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, event,
		"request_id", requestID,
		"length", len(out),
	)
	httputil.WriteJSON(w, http.StatusOK, respond(*req.Texto, out))
}
