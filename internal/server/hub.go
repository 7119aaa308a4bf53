// Package server coordinates client registration, event dispatch, message
// broadcast, and connection cleanup for the Gameroom WebSocket system via the
// Hub type.
package server

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/gameroomchat/gameroom/internal/game"
)

// inboundEvent pairs a raw client frame with the connection it arrived on.
type inboundEvent struct {
	client *Client
	data   []byte
}

// Hub manages all WebSocket client connections and owns the roster and the
// game session store through its dispatcher. Registration, disconnects,
// inbound events, and session reaping are all handled on the single Run
// goroutine, so every event runs to completion before the next one starts.
type Hub struct {
	clients    map[*Client]bool
	inbound    chan inboundEvent
	register   chan *Client
	unregister chan *Client
	dispatcher *Dispatcher
	mutex      sync.RWMutex
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
	done       chan struct{}
}

// NewHub creates and initializes a new Hub instance with an empty roster and
// session store. The returned Hub is ready to manage WebSocket connections
// once Run is started.
func NewHub() *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	h := &Hub{
		clients:    make(map[*Client]bool),
		inbound:    make(chan inboundEvent),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		ctx:        ctx,
		cancel:     cancel,
		done:       make(chan struct{}),
	}
	h.dispatcher = NewDispatcher(NewRoster(), game.NewStore(), h.broadcast)
	return h
}

// GetRegisterChan returns the channel used for registering new clients to the hub.
// This channel is write-only from the caller's perspective.
func (h *Hub) GetRegisterChan() chan<- *Client {
	return h.register
}

// GetUnregisterChan returns the channel used for unregistering clients from the hub.
// This channel is write-only from the caller's perspective.
func (h *Hub) GetUnregisterChan() chan<- *Client {
	return h.unregister
}

// Dispatcher returns the hub's event dispatcher. Tests use it to drive events
// without a live connection; production code never calls it directly.
func (h *Hub) Dispatcher() *Dispatcher {
	return h.dispatcher
}

// reapInterval is how often the hub checks for idle sessions.
const reapInterval = time.Minute

// Run starts the hub's main event loop, handling client registration,
// unregistration, inbound event dispatch, and idle-session reaping. This
// method should be called in a separate goroutine as it runs indefinitely.
func (h *Hub) Run() {
	defer close(h.done)

	reaper := time.NewTicker(reapInterval)
	defer reaper.Stop()

	for {
		select {
		case <-h.ctx.Done():
			h.shutdownClients()
			return

		case client := <-h.register:
			if client == nil {
				log.Printf("Received nil client registration; skipping")
				continue
			}

			h.mutex.Lock()
			client.closed = false
			h.clients[client] = true
			clientCount := len(h.clients)
			h.mutex.Unlock()
			log.Printf("Client registered from %s. Total clients: %d", client.addr, clientCount)

			h.wg.Add(2)
			go func() {
				defer h.wg.Done()
				client.writePump()
			}()
			go func() {
				defer h.wg.Done()
				client.readPump()
			}()

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.closed = true
				clientCount := len(h.clients)
				h.mutex.Unlock()
				// Close the channel after releasing the lock
				close(client.send)
				log.Printf("Client unregistered from %s. Total clients: %d", client.addr, clientCount)
				h.dispatcher.Disconnect(client)
			} else {
				h.mutex.Unlock()
			}

		case ev := <-h.inbound:
			h.dispatcher.Dispatch(ev.client, ev.data)

		case <-reaper.C:
			h.reapSessions()
		}
	}
}

var hub = NewHub()

// broadcast fans a payload out to every connected client, the sender
// included. Clients whose send buffer is full are evicted.
func (h *Hub) broadcast(payload []byte) {
	clients := h.getClientSnapshot()

	var clientsToRemove []*Client
	for _, client := range clients {
		if !h.safeSend(client, payload) {
			clientsToRemove = append(clientsToRemove, client)
		}
	}

	h.removeFailedClients(clientsToRemove)
}

func (h *Hub) safeSend(client *Client, message []byte) bool {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic in safeSend: %v", r)
		}
	}()

	// Hold the lock during the entire send operation to prevent race conditions
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	// Check if client is still registered and not closed
	_, exists := h.clients[client]
	if !exists || client.closed {
		return false
	}

	// Try to send the message (channel might be closed, so we need to recover from panic)
	select {
	case client.send <- message:
		return true
	default:
		return false
	}
}

// getClientSnapshot returns a thread-safe snapshot of all current clients
func (h *Hub) getClientSnapshot() []*Client {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	return clients
}

// removeFailedClients removes clients that failed to receive messages and closes their channels
func (h *Hub) removeFailedClients(clientsToRemove []*Client) {
	if len(clientsToRemove) == 0 {
		return
	}

	h.mutex.Lock()
	var channelsToClose []chan []byte
	for _, client := range clientsToRemove {
		if _, exists := h.clients[client]; exists {
			delete(h.clients, client)
			client.closed = true
			channelsToClose = append(channelsToClose, client.send)
			log.Printf("Client from %s removed due to full send buffer", client.addr)
		}
	}
	h.mutex.Unlock()

	// Close channels after releasing the lock
	for _, ch := range channelsToClose {
		close(ch)
	}
}

// reapSessions removes games whose last move is older than the configured
// session timeout. Expiry is silent toward clients; abandoned boards simply
// stop accepting moves.
func (h *Hub) reapSessions() {
	timeout := currentConfig().SessionTimeout
	if timeout <= 0 {
		return
	}

	for _, s := range h.dispatcher.games.Expire(time.Now().Add(-timeout)) {
		log.Printf("Expired idle game %s between %q and %q", s.ID, s.Players[0], s.Players[1])
	}
}

// shutdownClients gracefully closes all active client connections
func (h *Hub) shutdownClients() {
	log.Println("Shutting down all client connections...")

	h.mutex.Lock()
	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mutex.Unlock()

	// Close all client connections
	for _, client := range clients {
		if client.conn != nil {
			if err := client.conn.Close(); err != nil {
				if !isExpectedCloseError(err) {
					log.Printf("Error closing client connection from %s: %v", client.addr, err)
				}
			}
		}
	}

	log.Printf("Closed %d client connections", len(clients))
}

// Shutdown initiates graceful shutdown of the hub and waits for all goroutines to complete.
// It returns after all client connections are closed and goroutines have finished,
// or when the timeout is reached.
func (h *Hub) Shutdown(timeout time.Duration) error {
	log.Println("Initiating hub shutdown...")

	// Signal shutdown
	h.cancel()

	// Wait for Run() to complete
	<-h.done

	// Wait for all client goroutines to finish with timeout
	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Println("Hub shutdown completed successfully")
		return nil
	case <-time.After(timeout):
		log.Println("Hub shutdown timeout reached, some goroutines may still be running")
		return context.DeadlineExceeded
	}
}
