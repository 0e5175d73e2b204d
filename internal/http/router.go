// Package http wires the transport routes onto a ServeMux.
package http

import (
	nethttp "net/http"

	"card-game-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.Handle("/gameapi/", handler)
	return mux
}
