package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/tripline/backend/internal/middleware"
)

// newMetricsRouter mounts the metrics middleware on a chi router with one
// parameterised route.
func newMetricsRouter(reg prometheus.Registerer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.NewMetrics(reg))
	r.Put("/clients/{id}/trips/{tripId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})
	r.Get("/trips", func(w http.ResponseWriter, r *http.Request) {})
	return r
}

// TestMetrics_countsByRoutePattern verifies that requests are labelled with
// the chi pattern so distinct ids share one series.
func TestMetrics_countsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := newMetricsRouter(reg)

	for _, path := range []string{"/clients/1/trips/2", "/clients/3/trips/4"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, path, nil))
	}
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/trips", nil))

	expected := `
# HELP http_requests_total Number of HTTP requests by method, route and status.
# TYPE http_requests_total counter
http_requests_total{method="GET",route="/trips",status="200"} 1
http_requests_total{method="PUT",route="/clients/{id}/trips/{tripId}",status="409"} 2
`
	require.NoError(t, promtest.GatherAndCompare(reg, strings.NewReader(expected), "http_requests_total"))

	n, err := promtest.GatherAndCount(reg, "http_request_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

// TestMetrics_unmatchedRoute verifies that paths with no route collapse into
// a single "unmatched" label.
func TestMetrics_unmatchedRoute(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := newMetricsRouter(reg)

	for _, path := range []string{"/wp-admin", "/.env", "/a/b/c"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	expected := `
# HELP http_requests_total Number of HTTP requests by method, route and status.
# TYPE http_requests_total counter
http_requests_total{method="GET",route="unmatched",status="404"} 3
`
	require.NoError(t, promtest.GatherAndCompare(reg, strings.NewReader(expected), "http_requests_total"))
}
