package server

import (
	"testing"
	"time"
)

// TestNewHub verifies a new hub is fully initialized and owns its own
// dispatcher state.
func TestNewHub(t *testing.T) {
	h := NewHub()

	if h == nil {
		t.Fatal("NewHub() returned nil")
	}
	if h.Dispatcher() == nil {
		t.Fatal("hub dispatcher is nil")
	}
	if h.GetRegisterChan() == nil || h.GetUnregisterChan() == nil {
		t.Error("hub channels are nil")
	}
}

// TestHubRunAndShutdown verifies the run loop starts and shuts down cleanly.
func TestHubRunAndShutdown(t *testing.T) {
	h := NewHub()
	go h.Run()

	// Give the loop a moment to start before tearing it down.
	time.Sleep(10 * time.Millisecond)

	if err := h.Shutdown(time.Second); err != nil {
		t.Errorf("Shutdown() = %v, want nil", err)
	}
}

// TestHubIgnoresNilRegistration verifies a nil client registration is skipped
// without panicking the run loop.
func TestHubIgnoresNilRegistration(t *testing.T) {
	h := NewHub()
	go h.Run()
	defer func() {
		if err := h.Shutdown(time.Second); err != nil {
			t.Errorf("Shutdown() = %v, want nil", err)
		}
	}()

	select {
	case h.GetRegisterChan() <- nil:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("register channel did not accept while hub is running")
	}

	time.Sleep(10 * time.Millisecond)
}

// TestHubReapSessions verifies the reaper removes idle sessions and leaves
// active ones, honoring the configured timeout.
func TestHubReapSessions(t *testing.T) {
	t.Cleanup(func() { SetConfig(nil) })

	cfg := NewConfig()
	cfg.SessionTimeout = 10 * time.Minute
	SetConfig(cfg)

	h := NewHub()
	stale := h.dispatcher.games.Create("alice", "bob")
	fresh := h.dispatcher.games.Create("carol", "dave")
	stale.LastMove = time.Now().Add(-time.Hour)

	h.reapSessions()

	if _, ok := h.dispatcher.games.Get(stale.ID); ok {
		t.Error("stale session survived the reaper")
	}
	if _, ok := h.dispatcher.games.Get(fresh.ID); !ok {
		t.Error("fresh session was reaped")
	}
}

// TestHubReapDisabled verifies a zero timeout disables reaping entirely.
func TestHubReapDisabled(t *testing.T) {
	t.Cleanup(func() { SetConfig(nil) })

	cfg := NewConfig()
	cfg.SessionTimeout = 0
	SetConfig(cfg)

	h := NewHub()
	stale := h.dispatcher.games.Create("alice", "bob")
	stale.LastMove = time.Now().Add(-24 * time.Hour)

	h.reapSessions()

	if _, ok := h.dispatcher.games.Get(stale.ID); !ok {
		t.Error("session reaped despite reaping being disabled")
	}
}

// TestHubDispatcherIsolation verifies each hub owns independent game state.
func TestHubDispatcherIsolation(t *testing.T) {
	a := NewHub()
	b := NewHub()

	s := a.dispatcher.games.Create("alice", "bob")
	if _, ok := b.dispatcher.games.Get(s.ID); ok {
		t.Error("session created in one hub is visible in another")
	}
	if got := b.dispatcher.games.Len(); got != 0 {
		t.Errorf("fresh hub has %d sessions, want 0", got)
	}
}
