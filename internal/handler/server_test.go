package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tripline/backend/internal/domain"
	"github.com/tripline/backend/internal/handler"
	"github.com/tripline/backend/internal/handler/gen"
)

// ---- mock services ---------------------------------------------------------
// Hand-written test doubles with one function field per method.

type mockClientService struct {
	create func(ctx context.Context, client domain.Client) (int, error)
}

func (m *mockClientService) Create(ctx context.Context, client domain.Client) (int, error) {
	return m.create(ctx, client)
}

var _ handler.ClientServicer = (*mockClientService)(nil)

type mockRegistrationService struct {
	register     func(ctx context.Context, clientID, tripID int) (domain.Registration, error)
	unregister   func(ctx context.Context, clientID, tripID int) error
	listByClient func(ctx context.Context, clientID int) ([]domain.ClientTrip, error)
}

func (m *mockRegistrationService) Register(ctx context.Context, clientID, tripID int) (domain.Registration, error) {
	return m.register(ctx, clientID, tripID)
}
func (m *mockRegistrationService) Unregister(ctx context.Context, clientID, tripID int) error {
	return m.unregister(ctx, clientID, tripID)
}
func (m *mockRegistrationService) ListByClient(ctx context.Context, clientID int) ([]domain.ClientTrip, error) {
	return m.listByClient(ctx, clientID)
}

var _ handler.RegistrationServicer = (*mockRegistrationService)(nil)

type mockTripService struct {
	list func(ctx context.Context) ([]domain.Trip, error)
}

func (m *mockTripService) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}

var _ handler.TripServicer = (*mockTripService)(nil)

// ---- helpers ---------------------------------------------------------------

// testServer bundles the HTTP handler with the log buffer it writes to.
type testServer struct {
	http.Handler
	logs *bytes.Buffer
}

// newTestServer wires the mocks through NewHTTPHandler exactly as main does.
// Nil services are replaced by empty mocks, which panic if called.
func newTestServer(c *mockClientService, r *mockRegistrationService, tr *mockTripService) testServer {
	if c == nil {
		c = &mockClientService{}
	}
	if r == nil {
		r = &mockRegistrationService{}
	}
	if tr == nil {
		tr = &mockTripService{}
	}
	var logs bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&logs, nil))
	return testServer{
		Handler: handler.NewHTTPHandler(handler.NewServer(c, r, tr), log),
		logs:    &logs,
	}
}

func ptr(s string) *string { return &s }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// do sends a request with an optional body and returns the recorder.
func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decodeError decodes a JSON error envelope from rec.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) gen.ErrorDetail {
	t.Helper()
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body gen.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error
}
