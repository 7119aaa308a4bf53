// Package server wires HTTP handlers into a router for the Gameroom
// application via routing helpers.
package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// SetupRoutes configures and returns a router with all application routes:
// the health check, the WebSocket endpoint, and the static presentation
// assets served from the configured directory.
func SetupRoutes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/ws", WebSocketHandler)
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(currentConfig().StaticDir)))
	return r
}
