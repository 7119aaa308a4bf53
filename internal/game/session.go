package game

import (
	"time"

	"github.com/google/uuid"
)

// Session is one in-progress tic-tac-toe game between two named players.
// Players[0] is the inviter and moves first with symbol O; Players[1] is the
// accepter with symbol X. Turn rotation is by player index, not by symbol.
type Session struct {
	ID       string
	Players  [2]string
	Symbols  map[string]Symbol
	Board    Board
	Current  int
	LastMove time.Time
}

// NewSession creates a session for an accepted invitation. The inviter
// receives O and the first move; the accepter receives X.
func NewSession(inviter, accepter string) *Session {
	return &Session{
		ID:      uuid.New().String()[:8],
		Players: [2]string{inviter, accepter},
		Symbols: map[string]Symbol{
			inviter:  SymbolO,
			accepter: SymbolX,
		},
		LastMove: time.Now(),
	}
}

// CurrentPlayer returns the name of the player whose turn it is.
func (s *Session) CurrentPlayer() string {
	return s.Players[s.Current]
}
