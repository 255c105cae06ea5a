package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NicoBar2/scrapingdarwin/internal/security"
	"github.com/NicoBar2/scrapingdarwin/pkg/testutil"
)

func TestHandleEvaluatePassword(t *testing.T) {
	var logs bytes.Buffer
	router := chi.NewRouter()
	New(slog.New(slog.NewJSONHandler(&logs, nil))).Register(router)

	t.Run("strong password", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/security/evaluar-password",
			map[string]string{"password": "P@ssw0rd123"})
		rr := testutil.Do(router, req)

		require.Equal(t, http.StatusOK, rr.Code)
		resp := testutil.DecodeJSON[PasswordResponse](t, rr)
		assert.Equal(t, 100, resp.Score)
		assert.Equal(t, "strong", resp.Level)
		assert.Equal(t, security.Criteria{Length: true, Uppercase: true, Lowercase: true, Number: true, Special: true}, resp.Details)
		assert.NotContains(t, logs.String(), "P@ssw0rd123")
	})

	t.Run("missing field", func(t *testing.T) {
		rr := testutil.Do(router, testutil.NewJSONRequest(t, http.MethodPost, "/security/evaluar-password", map[string]string{}))
		testutil.AssertError(t, rr, http.StatusBadRequest, "validation_error")
	})

	t.Run("empty password", func(t *testing.T) {
		rr := testutil.Do(router, testutil.NewJSONRequest(t, http.MethodPost, "/security/evaluar-password",
			map[string]string{"password": ""}))
		testutil.AssertError(t, rr, http.StatusBadRequest, "validation_error")
	})

	t.Run("whitespace password is scored", func(t *testing.T) {
		rr := testutil.Do(router, testutil.NewJSONRequest(t, http.MethodPost, "/security/evaluar-password",
			map[string]string{"password": "        "}))

		require.Equal(t, http.StatusOK, rr.Code)
		resp := testutil.DecodeJSON[PasswordResponse](t, rr)
		assert.Equal(t, 20, resp.Score)
		assert.Equal(t, "weak", resp.Level)
		assert.Equal(t, security.Criteria{Length: true}, resp.Details)
	})
}
