// Package spec embeds the OpenAPI document for the trip registry API.
// The HTTP server serves it at /openapi.yaml, and internal/handler/gen is
// generated from it.
package spec

import (
	_ "embed"
	"net/http"
)

// OpenAPI contains the raw bytes of openapi.yaml, embedded at compile time.
//
//go:embed openapi.yaml
var OpenAPI []byte

// Handler serves the embedded document as application/yaml.
func Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(OpenAPI)
	})
}
