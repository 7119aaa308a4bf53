// Package game implements the tic-tac-toe rules engine and the in-memory
// session store.
//
// Nothing in this package is safe for concurrent use: every session mutation,
// including expiry, must happen on the hub goroutine that owns the store.
package game

// Symbol is a player's mark on the board. The zero value is an empty cell.
type Symbol string

const (
	SymbolX Symbol = "X"
	SymbolO Symbol = "O"
	Empty   Symbol = ""
)

// Board is the 3x3 grid in row-major order, indices 0-8.
type Board [9]Symbol

// Result classifies a board evaluated by the rules engine.
type Result int

const (
	// ResultNone means the game continues.
	ResultNone Result = iota
	ResultWin
	ResultDraw
)

// winLines lists every three-in-a-row combination.
var winLines = [8][3]int{
	{0, 1, 2}, // top row
	{3, 4, 5}, // middle row
	{6, 7, 8}, // bottom row
	{0, 3, 6}, // left column
	{1, 4, 7}, // middle column
	{2, 5, 8}, // right column
	{0, 4, 8}, // diagonal
	{2, 4, 6}, // anti-diagonal
}

// Evaluate checks the board for a terminal state. It returns ResultWin with
// the winning symbol when a line holds three equal non-empty cells, ResultDraw
// when the board is full with no winner, and ResultNone otherwise.
func Evaluate(b Board) (Result, Symbol) {
	for _, line := range winLines {
		first, second, third := line[0], line[1], line[2]
		if b[first] != Empty && b[first] == b[second] && b[second] == b[third] {
			return ResultWin, b[first]
		}
	}
	for _, cell := range b {
		if cell == Empty {
			return ResultNone, Empty
		}
	}
	return ResultDraw, Empty
}
