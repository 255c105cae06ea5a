package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/NicoBar2/scrapingdarwin/internal/auth/service"
	dErrors "github.com/NicoBar2/scrapingdarwin/pkg/domain-errors"
	"github.com/NicoBar2/scrapingdarwin/pkg/platform/httputil"
	"github.com/NicoBar2/scrapingdarwin/pkg/requestcontext"
)

// Service defines the interface for the login service.
type Service interface {
	Login(ctx context.Context, username, password string) (*service.TokenResult, error)
}

// LoginRequest is the HTTP request body for POST /auth/login.
type LoginRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if r.Username == nil || r.Password == nil ||
		strings.TrimSpace(*r.Username) == "" || *r.Password == "" {
		return dErrors.New(dErrors.CodeValidation, "Usuario y contraseña son obligatorios")
	}
	return nil
}

// TokenResponse is the HTTP response for a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(svc Service, logger *slog.Logger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Register mounts the login route. Callers wrap it with throttling.
func (h *Handler) Register(r chi.Router) {
	r.Post("/auth/login", h.HandleLogin)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[LoginRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Login(ctx, *req.Username, *req.Password)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeUnauthorized) {
			h.logger.WarnContext(ctx, "login rejected",
				"request_id", requestID,
				"username", *req.Username,
			)
		} else {
			h.logger.ErrorContext(ctx, "login failed",
				"request_id", requestID,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "login succeeded",
		"request_id", requestID,
		"username", *req.Username,
	)
	httputil.WriteJSON(w, http.StatusOK, &TokenResponse{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
		ExpiresIn:   int(result.ExpiresIn.Seconds()),
	})
}
