package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripline/backend/internal/middleware"
)

// trivialHandler is a minimal http.Handler that always returns 200.
var trivialHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

const devOrigin = "http://localhost:5173"

func TestCORSHandler_GET_AllowedOrigin(t *testing.T) {
	h := middleware.NewCORSHandler([]string{devOrigin})(trivialHandler)

	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	req.Header.Set("Origin", devOrigin)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, devOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
}

// TestCORSHandler_POST_ExposesLocation verifies that browsers may read the
// Location header returned by POST /clients.
func TestCORSHandler_POST_ExposesLocation(t *testing.T) {
	h := middleware.NewCORSHandler([]string{devOrigin})(trivialHandler)

	req := httptest.NewRequest(http.MethodPost, "/clients", nil)
	req.Header.Set("Origin", devOrigin)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "Location", rec.Header().Get("Access-Control-Expose-Headers"))
}

// TestCORSHandler_OPTIONS_PreflightPUT verifies the preflight browsers send
// before PUT /clients/{id}/trips/{tripId}.
func TestCORSHandler_OPTIONS_PreflightPUT(t *testing.T) {
	h := middleware.NewCORSHandler([]string{devOrigin})(trivialHandler)

	req := httptest.NewRequest(http.MethodOptions, "/clients/1/trips/2", nil)
	req.Header.Set("Origin", devOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	// rs/cors answers preflights itself with 204.
	assert.True(t, rec.Code == http.StatusNoContent || rec.Code == http.StatusOK,
		"expected 2xx for OPTIONS preflight, got %d", rec.Code)
	assert.Equal(t, devOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.MethodPut, rec.Header().Get("Access-Control-Allow-Methods"))
}

// TestCORSHandler_GET_DisallowedOrigin verifies that a disallowed origin gets
// no Access-Control-Allow-Origin header; the browser then blocks the response.
func TestCORSHandler_GET_DisallowedOrigin(t *testing.T) {
	h := middleware.NewCORSHandler([]string{devOrigin})(trivialHandler)

	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
