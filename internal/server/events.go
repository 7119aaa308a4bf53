// Package server defines the wire protocol shared by the dispatcher and the
// connected clients: a typed event envelope plus the payload shapes for each
// direction.
package server

import (
	"encoding/json"

	"github.com/gameroomchat/gameroom/internal/game"
)

// Client-to-server event names.
const (
	EventJoin       = "join"
	EventChat       = "chat message"
	EventInviteGame = "invite-game"
	EventAcceptGame = "accept-game"
	EventGameMove   = "game-move"
)

// Server-to-client event names. Every one of these is broadcast to all
// connections; clients filter what concerns them.
const (
	EventUserJoined     = "userJoined"
	EventUserLeft       = "userLeft"
	EventUserList       = "userList"
	EventGameInvitation = "game-invitation"
	EventStartGame      = "start-game"
	EventUpdateGame     = "update-game"
	EventGameOver       = "game-over"
)

// Envelope is the framing for every event in both directions. Payload stays
// raw until the event type is known.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ChatPayload is a relayed chat line, tagged with the sender's joined name.
type ChatPayload struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}

// InvitationPayload announces a game invitation. Clients check whether they
// are the named opponent.
type InvitationPayload struct {
	Inviter  string `json:"inviter"`
	Opponent string `json:"opponent"`
}

// MovePayload is an attempted move. Player is caller-supplied and is not
// cross-checked against the connection identity.
type MovePayload struct {
	GameID string `json:"gameId"`
	Index  int    `json:"index"`
	Player string `json:"player"`
}

// StartGamePayload is the authoritative starting state of a new session.
type StartGamePayload struct {
	GameID        string                 `json:"gameId"`
	Players       [2]string              `json:"players"`
	PlayerSymbols map[string]game.Symbol `json:"playerSymbols"`
	CurrentPlayer string                 `json:"currentPlayer"`
}

// UpdateGamePayload carries the board after a non-terminal move.
type UpdateGamePayload struct {
	GameID        string     `json:"gameId"`
	Board         game.Board `json:"board"`
	CurrentPlayer string     `json:"currentPlayer"`
}

// GameOverPlayers names the winner and loser of a finished game. Both are
// null on a draw.
type GameOverPlayers struct {
	Winner *string `json:"winner"`
	Loser  *string `json:"loser"`
}

// GameOverPayload is the terminal result of a session, including the board
// index of the deciding move.
type GameOverPayload struct {
	GameID       string          `json:"gameId"`
	Winner       *string         `json:"winner"`
	Players      GameOverPlayers `json:"players"`
	WinnerSymbol *game.Symbol    `json:"winnerSymbol"`
	WinningMove  int             `json:"winningMove"`
}

// marshalEvent frames a payload in an Envelope ready for broadcast.
func marshalEvent(eventType string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Type: eventType, Payload: raw})
}
