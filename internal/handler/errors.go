package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tripline/backend/internal/domain"
	"github.com/tripline/backend/internal/handler/gen"
	"github.com/tripline/backend/internal/middleware"
)

// Error codes used in gen.ErrorDetail.Code.
const (
	codeNotFound         = "not_found"
	codeValidation       = "validation_error"
	codeCapacityExceeded = "capacity_exceeded"
	codeConflict         = "conflict"
	codeInternal         = "internal_error"
)

// NewHTTPHandler adapts srv to a chi router generated from openapi.yaml.
// Unlike the generated defaults, every error is answered with a JSON
// gen.ErrorResponse:
//   - malformed path parameters and request bodies → 400,
//   - bodies over the size limit → 413,
//   - errors returned by a handler → 500 with a generic message; the real
//     error is logged and never sent to the client.
func NewHTTPHandler(srv *Server, log *slog.Logger) http.Handler {
	strict := gen.NewStrictHandlerWithOptions(srv, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				middleware.WritePayloadTooLarge(w)
				return
			}
			writeError(w, http.StatusBadRequest, requestBody("request body must be a valid JSON object"))
		},
		ResponseErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			log.ErrorContext(r.Context(), "request failed",
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", chimiddleware.GetReqID(r.Context()),
				"error", err,
			)
			writeError(w, http.StatusInternalServerError, errorBody(codeInternal, "internal server error"))
		},
	})

	return gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			writeError(w, http.StatusBadRequest, requestBody(err.Error()))
		},
	})
}

// writeError writes body as JSON with the given status.
func writeError(w http.ResponseWriter, status int, body gen.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func errorBody(code, message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: code, Message: message}}
}

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the message because the handler knows what was looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return errorBody(codeNotFound, message)
}

// validationBody returns an ErrorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) gen.ErrorResponse {
	return errorBody(codeValidation, unwrapMessage(err))
}

// requestBody returns an ErrorResponse for a request rejected before it
// reached the service layer (e.g. malformed body or path parameter).
func requestBody(message string) gen.ErrorResponse {
	return errorBody(codeValidation, message)
}

// unwrapMessage extracts the human-readable part after the validation sentinel.
// e.g. "service.ClientService.Create: validation error: email is required" → "email is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}

// notFoundMessage picks the user-facing message for a domain.ErrNotFound chain.
func notFoundMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrClientNotFound):
		return "Client not found"
	case errors.Is(err, domain.ErrTripNotFound):
		return "Trip not found"
	case errors.Is(err, domain.ErrRegistrationNotFound):
		return "Registration not found"
	case errors.Is(err, domain.ErrNoClientTrips):
		return "No trips found for this client"
	default:
		return "Resource not found"
	}
}
