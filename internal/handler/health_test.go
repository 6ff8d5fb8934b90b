package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripline/backend/internal/handler"
	"github.com/tripline/backend/internal/handler/gen"
)

// TestGetHealth verifies GET /healthz on both the bare generated router and
// the production wiring; it never touches a service.
func TestGetHealth(t *testing.T) {
	handlers := map[string]http.Handler{
		"generated router": gen.Handler(gen.NewStrictHandler(handler.NewHealthHandler(), nil)),
		"NewHTTPHandler":   newTestServer(nil, nil, nil),
	}

	for name, h := range handlers {
		t.Run(name, func(t *testing.T) {
			rec := do(h, http.MethodGet, "/healthz", "")

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body gen.HealthResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, "ok", body.Status)
		})
	}
}
