package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/NicoBar2/scrapingdarwin/internal/network"
	dErrors "github.com/NicoBar2/scrapingdarwin/pkg/domain-errors"
	"github.com/NicoBar2/scrapingdarwin/pkg/platform/httputil"
	"github.com/NicoBar2/scrapingdarwin/pkg/requestcontext"
)

// IPRequest is the HTTP request body for POST /geo/validar-ip.
type IPRequest struct {
	IP *string `json:"ip"`
}

func (r *IPRequest) Validate() error {
	if r.IP == nil {
		return dErrors.New(dErrors.CodeValidation, "Campo 'ip' es requerido")
	}
	return nil
}

type IPResponse struct {
	Valid   bool   `json:"valid"`
	Version string `json:"version"`
	Private bool   `json:"private"`
}

type Handler struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/geo/validar-ip", h.HandleValidateIP)
}

func (h *Handler) HandleValidateIP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[IPRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	info, err := network.ValidateIP(*req.IP)
	if err != nil {
		h.logger.InfoContext(ctx, "ip rejected", "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "ip validated",
		"request_id", requestID,
		"version", info.Version,
		"private", info.Private,
	)
	httputil.WriteJSON(w, http.StatusOK, &IPResponse{Valid: info.Valid, Version: info.Version, Private: info.Private})
}
