package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/tripline/backend/internal/handler/gen"
)

// CodePayloadTooLarge is the error code sent with every 413 response.
const CodePayloadTooLarge = "payload_too_large"

// NewMaxBodySizeHandler returns a middleware that limits request bodies to
// limit bytes. A request advertising a larger Content-Length is rejected with
// 413 before the next handler runs; otherwise the body is wrapped in
// http.MaxBytesReader so reading past the limit fails with *http.MaxBytesError.
// A limit <= 0 disables the check.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limit <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				WritePayloadTooLarge(w)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

// WritePayloadTooLarge answers 413 with the JSON error envelope. Handlers
// that hit *http.MaxBytesError while decoding call it too, so both paths
// send the same body.
func WritePayloadTooLarge(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusRequestEntityTooLarge)
	_ = json.NewEncoder(w).Encode(gen.ErrorResponse{
		Error: gen.ErrorDetail{Code: CodePayloadTooLarge, Message: "request body too large"},
	})
}
