package testutil

import (
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
)

// MustGameFromFEN parses a FEN string into a game on a standard board.
// It calls t.Fatal if parsing fails. Use this in test setup where parse
// failure should abort the test.
func MustGameFromFEN(t *testing.T, fen string) *engine.Game {
	t.Helper()
	game, err := engine.NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to parse test FEN %q: %v", fen, err)
	}
	return game
}

// MustSquare converts an algebraic square name to an index on the game's
// board, aborting the test on invalid input.
func MustSquare(t *testing.T, g *engine.Game, name string) int {
	t.Helper()
	idx, err := g.Board.ParseSquare(name)
	if err != nil {
		t.Fatalf("bad test square %q: %v", name, err)
	}
	return idx
}

// MustApply applies a move given as source and destination square names,
// aborting the test if the move is rejected. The promotion and flag fields
// are filled from the current legal-move set.
func MustApply(t *testing.T, g *engine.Game, from, to string) {
	t.Helper()
	fromIdx := MustSquare(t, g, from)
	toIdx := MustSquare(t, g, to)
	for _, move := range engine.LegalMoves(g) {
		if move.From != fromIdx || move.To != toIdx {
			continue
		}
		if move.Promotion != chess.Empty && move.Promotion != chess.Queen {
			continue
		}
		if err := g.Apply(move); err != nil {
			t.Fatalf("apply %s%s: %v", from, to, err)
		}
		return
	}
	t.Fatalf("no legal move from %s to %s", from, to)
}
