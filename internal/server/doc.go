// Package server implements the HTTP and WebSocket server for Gameroom.
//
// The implementation is organized into specialized files for configuration,
// the hub, clients, the event dispatcher, the roster, routing, and HTTP
// handlers to keep the codebase maintainable and testable as the project
// grows.
package server
