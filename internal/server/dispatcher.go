// Package server routes inbound client events to the roster and the game
// session store via the Dispatcher type.
package server

import (
	"encoding/json"
	"log"

	"github.com/gameroomchat/gameroom/internal/game"
)

// Dispatcher is the single entry point for inbound client events. It decodes
// the event envelope, applies the event against the roster and the session
// store, and broadcasts the resulting state through the send callback.
//
// Dispatch and Disconnect must only be called from the goroutine that owns
// the dispatcher (the hub's Run loop). That serialization is the sole
// consistency mechanism: each event runs to completion before the next, so
// the roster and the store need no locks.
//
// Malformed events, unknown event types, and invalid moves are logged and
// dropped with no state change and no broadcast.
type Dispatcher struct {
	roster *Roster
	games  *game.Store
	send   func(payload []byte)
}

// NewDispatcher creates a dispatcher that broadcasts through send.
func NewDispatcher(roster *Roster, games *game.Store, send func(payload []byte)) *Dispatcher {
	return &Dispatcher{
		roster: roster,
		games:  games,
		send:   send,
	}
}

// Dispatch handles a single raw inbound frame from a client.
func (d *Dispatcher) Dispatch(c *Client, raw []byte) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		log.Printf("Dropping malformed event from %s: %v", c.addr, err)
		return
	}

	switch env.Type {
	case EventJoin:
		d.handleJoin(c, env.Payload)
	case EventChat:
		d.handleChat(c, env.Payload)
	case EventInviteGame:
		d.handleInvite(c, env.Payload)
	case EventAcceptGame:
		d.handleAccept(c, env.Payload)
	case EventGameMove:
		d.handleMove(c, env.Payload)
	default:
		log.Printf("Dropping unknown event %q from %s", env.Type, c.addr)
	}
}

// Disconnect removes a departed client's username from the roster and
// broadcasts the change. Clients that never joined leave no trace.
func (d *Dispatcher) Disconnect(c *Client) {
	if c.username == "" {
		return
	}

	d.roster.Remove(c.username)
	d.emit(EventUserLeft, c.username)
	d.emit(EventUserList, d.roster.Names())
	log.Printf("User %q left", c.username)
}

func (d *Dispatcher) handleJoin(c *Client, payload json.RawMessage) {
	var name string
	if err := json.Unmarshal(payload, &name); err != nil || name == "" {
		log.Printf("Dropping join with invalid username from %s", c.addr)
		return
	}

	c.username = name
	d.roster.Add(name)
	d.emit(EventUserJoined, name)
	d.emit(EventUserList, d.roster.Names())
	log.Printf("User %q joined", name)
}

func (d *Dispatcher) handleChat(c *Client, payload json.RawMessage) {
	var text string
	if err := json.Unmarshal(payload, &text); err != nil {
		log.Printf("Dropping malformed chat message from %s", c.addr)
		return
	}

	d.emit(EventChat, ChatPayload{Username: c.username, Message: text})
}

func (d *Dispatcher) handleInvite(c *Client, payload json.RawMessage) {
	var opponent string
	if err := json.Unmarshal(payload, &opponent); err != nil || opponent == "" {
		log.Printf("Dropping invite with invalid opponent from %s", c.addr)
		return
	}

	// Broadcast to everyone; the named opponent filters client-side.
	d.emit(EventGameInvitation, InvitationPayload{
		Inviter:  c.username,
		Opponent: opponent,
	})
}

func (d *Dispatcher) handleAccept(c *Client, payload json.RawMessage) {
	var inviter string
	if err := json.Unmarshal(payload, &inviter); err != nil || inviter == "" {
		log.Printf("Dropping accept with invalid inviter from %s", c.addr)
		return
	}

	// Any accept creates a session; no pending-invitation bookkeeping exists.
	s := d.games.Create(inviter, c.username)
	d.emit(EventStartGame, StartGamePayload{
		GameID:        s.ID,
		Players:       s.Players,
		PlayerSymbols: s.Symbols,
		CurrentPlayer: s.CurrentPlayer(),
	})
	log.Printf("Game %s started: %q vs %q", s.ID, s.Players[0], s.Players[1])
}

func (d *Dispatcher) handleMove(c *Client, payload json.RawMessage) {
	var move MovePayload
	if err := json.Unmarshal(payload, &move); err != nil {
		log.Printf("Dropping malformed move from %s", c.addr)
		return
	}

	res := d.games.Move(move.GameID, move.Index, move.Player)
	if res == nil {
		log.Printf("Dropping invalid move on game %q from %s", move.GameID, c.addr)
		return
	}

	if !res.Terminal {
		d.emit(EventUpdateGame, UpdateGamePayload{
			GameID:        res.Session.ID,
			Board:         res.Session.Board,
			CurrentPlayer: res.Session.CurrentPlayer(),
		})
		return
	}

	over := GameOverPayload{
		GameID:      res.Session.ID,
		WinningMove: res.Index,
	}
	if !res.Draw {
		over.Winner = &res.Winner
		over.Players = GameOverPlayers{Winner: &res.Winner, Loser: &res.Loser}
		over.WinnerSymbol = &res.WinnerSymbol
	}
	d.emit(EventGameOver, over)
	log.Printf("Game %s finished", res.Session.ID)
}

func (d *Dispatcher) emit(eventType string, payload any) {
	data, err := marshalEvent(eventType, payload)
	if err != nil {
		log.Printf("Error marshaling %q event: %v", eventType, err)
		return
	}
	d.send(data)
}
