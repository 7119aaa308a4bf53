package game

import "testing"

// TestEvaluateWinningLines verifies that every one of the 8 fixed
// three-in-a-row patterns is detected for both symbols.
func TestEvaluateWinningLines(t *testing.T) {
	lines := [][3]int{
		{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
		{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
		{0, 4, 8}, {2, 4, 6},
	}

	for _, symbol := range []Symbol{SymbolX, SymbolO} {
		for _, line := range lines {
			var board Board
			for _, idx := range line {
				board[idx] = symbol
			}

			result, winner := Evaluate(board)
			if result != ResultWin {
				t.Errorf("Evaluate(%v) = %v, want ResultWin for line %v", board, result, line)
			}
			if winner != symbol {
				t.Errorf("Evaluate(%v) winner = %q, want %q", board, winner, symbol)
			}
		}
	}
}

// TestEvaluateContinue verifies that boards without a completed line and with
// empty cells remaining report that the game continues.
func TestEvaluateContinue(t *testing.T) {
	tests := []struct {
		name  string
		board Board
	}{
		{
			name:  "empty board",
			board: Board{},
		},
		{
			name:  "single move",
			board: Board{SymbolO},
		},
		{
			name: "mixed board with no line",
			board: Board{
				SymbolO, SymbolX, Empty,
				SymbolX, SymbolO, Empty,
				Empty, Empty, SymbolX,
			},
		},
		{
			name: "two in a row blocked",
			board: Board{
				SymbolO, SymbolO, SymbolX,
				Empty, Empty, Empty,
				Empty, Empty, Empty,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, winner := Evaluate(tt.board)
			if result != ResultNone {
				t.Errorf("Evaluate() = %v, want ResultNone", result)
			}
			if winner != Empty {
				t.Errorf("Evaluate() winner = %q, want empty", winner)
			}
		})
	}
}

// TestEvaluateDraw verifies that a full board with no three-in-a-row is a
// draw with no winning symbol.
func TestEvaluateDraw(t *testing.T) {
	board := Board{
		SymbolO, SymbolX, SymbolO,
		SymbolO, SymbolX, SymbolX,
		SymbolX, SymbolO, SymbolO,
	}

	result, winner := Evaluate(board)
	if result != ResultDraw {
		t.Errorf("Evaluate() = %v, want ResultDraw", result)
	}
	if winner != Empty {
		t.Errorf("Evaluate() winner = %q, want empty", winner)
	}
}

// TestEvaluateTopRowSequence plays indices 0,3,1,4,2 with alternating symbols
// and checks the win is detected exactly on the move completing the top row,
// not earlier.
func TestEvaluateTopRowSequence(t *testing.T) {
	moves := []struct {
		index  int
		symbol Symbol
	}{
		{0, SymbolO},
		{3, SymbolX},
		{1, SymbolO},
		{4, SymbolX},
		{2, SymbolO},
	}

	var board Board
	for i, move := range moves {
		board[move.index] = move.symbol

		result, winner := Evaluate(board)
		if i < len(moves)-1 {
			if result != ResultNone {
				t.Fatalf("Evaluate() after move %d = %v, want ResultNone", i, result)
			}
			continue
		}
		if result != ResultWin {
			t.Fatalf("Evaluate() after final move = %v, want ResultWin", result)
		}
		if winner != SymbolO {
			t.Fatalf("Evaluate() winner = %q, want %q", winner, SymbolO)
		}
	}
}
