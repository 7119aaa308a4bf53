package game

import "time"

// Store holds the live game sessions, keyed by session ID and indexed by the
// unordered player pair. It is owned by the hub goroutine and carries no
// locking of its own.
type Store struct {
	sessions map[string]*Session
	pairs    map[string]string
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
		pairs:    make(map[string]string),
	}
}

// pairKey derives an order-independent index key for two player names.
func pairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "\x00" + b
}

// Create starts a new session for an accepted invitation. If the pair already
// has a live session it is replaced, preserving the last-accept-wins behavior
// for colliding invitation flows.
func (st *Store) Create(inviter, accepter string) *Session {
	key := pairKey(inviter, accepter)
	if old, ok := st.pairs[key]; ok {
		delete(st.sessions, old)
	}

	s := NewSession(inviter, accepter)
	st.sessions[s.ID] = s
	st.pairs[key] = s.ID
	return s
}

// Get returns the session with the given ID, if it exists.
func (st *Store) Get(id string) (*Session, bool) {
	s, ok := st.sessions[id]
	return s, ok
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	return len(st.sessions)
}

func (st *Store) remove(s *Session) {
	delete(st.sessions, s.ID)
	key := pairKey(s.Players[0], s.Players[1])
	if st.pairs[key] == s.ID {
		delete(st.pairs, key)
	}
}

// MoveResult describes the outcome of a successful move. Terminal results
// carry the winner and loser identities and the winning symbol; a draw leaves
// all three empty.
type MoveResult struct {
	Session      *Session
	Index        int
	Terminal     bool
	Draw         bool
	Winner       string
	Loser        string
	WinnerSymbol Symbol
}

// Move applies a move to a session. It returns nil, with no state change,
// when the session is unknown, the index is out of range, the cell is
// occupied, or the named player holds no symbol in the session. The mover's
// turn is not verified against CurrentPlayer; the player field is trusted as
// supplied.
//
// A terminal move removes the session from the store before returning, so a
// later move referencing the same ID is a no-op.
func (st *Store) Move(id string, index int, player string) *MoveResult {
	s, ok := st.sessions[id]
	if !ok {
		return nil
	}
	if index < 0 || index >= len(s.Board) {
		return nil
	}
	if s.Board[index] != Empty {
		return nil
	}
	symbol, ok := s.Symbols[player]
	if !ok {
		return nil
	}

	s.Board[index] = symbol
	res := &MoveResult{Session: s, Index: index}

	result, winner := Evaluate(s.Board)
	switch result {
	case ResultWin:
		res.Terminal = true
		res.WinnerSymbol = winner
		for _, p := range s.Players {
			if s.Symbols[p] == winner {
				res.Winner = p
			} else {
				res.Loser = p
			}
		}
		st.remove(s)
	case ResultDraw:
		res.Terminal = true
		res.Draw = true
		st.remove(s)
	default:
		s.Current = 1 - s.Current
		s.LastMove = time.Now()
	}

	return res
}

// Expire removes every session whose last move predates the cutoff and
// returns the removed sessions.
func (st *Store) Expire(cutoff time.Time) []*Session {
	var expired []*Session
	for _, s := range st.sessions {
		if s.LastMove.Before(cutoff) {
			expired = append(expired, s)
		}
	}
	for _, s := range expired {
		st.remove(s)
	}
	return expired
}
