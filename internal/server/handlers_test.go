package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestHealthHandler verifies the health endpoint responds with the expected
// status and body regardless of method.
func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name   string
		method string
	}{
		{"GET request", http.MethodGet},
		{"HEAD request", http.MethodHead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/health", http.NoBody)
			rr := httptest.NewRecorder()

			HealthHandler(rr, req)

			if rr.Code != http.StatusOK {
				t.Errorf("status = %d, want %d", rr.Code, http.StatusOK)
			}
			if tt.method == http.MethodGet && rr.Body.String() != "Gameroom server is running!" {
				t.Errorf("body = %q, want running message", rr.Body.String())
			}
			if ct := rr.Header().Get("Content-Type"); ct != "text/plain" {
				t.Errorf("content type = %q, want text/plain", ct)
			}
		})
	}
}

// TestWebSocketHandlerRejectsNonGet verifies non-GET requests to the
// WebSocket endpoint are refused before any upgrade attempt.
func TestWebSocketHandlerRejectsNonGet(t *testing.T) {
	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		req := httptest.NewRequest(method, "/ws", http.NoBody)
		rr := httptest.NewRecorder()

		WebSocketHandler(rr, req)

		if rr.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s /ws status = %d, want %d", method, rr.Code, http.StatusMethodNotAllowed)
		}
	}
}

// TestWebSocketHandlerRejectsPlainGet verifies a GET without the upgrade
// handshake headers fails the upgrade.
func TestWebSocketHandlerRejectsPlainGet(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ws", http.NoBody)
	rr := httptest.NewRecorder()

	WebSocketHandler(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("plain GET /ws status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}
