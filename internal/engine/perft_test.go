package engine

import "testing"

// Node counts from the classic perft reference positions.
func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
	}{
		{"initial depth 1", InitialFEN, 1, 20},
		{"initial depth 2", InitialFEN, 2, 400},
		{"initial depth 3", InitialFEN, 3, 8902},
		{"kiwipete depth 1", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 1, 48},
		{"kiwipete depth 2", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2, 2039},
		{"endgame depth 1", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 1, 14},
		{"endgame depth 2", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 2, 191},
		{"promotions depth 1", "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1", 1, 24},
		{"promotions depth 2", "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1", 2, 496},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := mustGame(t, tt.fen)
			if got := Perft(game, tt.depth); got != tt.want {
				t.Errorf("Perft(%q, %d) = %d, want %d", tt.fen, tt.depth, got, tt.want)
			}
		})
	}
}

func TestPerftDepthZero(t *testing.T) {
	if got := Perft(NewGame(), 0); got != 1 {
		t.Errorf("Perft(depth 0) = %d, want 1", got)
	}
}

// TestPerftLeavesGameUnchanged checks the undo bookkeeping inside the
// node counter.
func TestPerftLeavesGameUnchanged(t *testing.T) {
	game := NewGame()
	before := FEN(game)
	Perft(game, 3)
	if got := FEN(game); got != before {
		t.Errorf("perft mutated the game:\n got %q\nwant %q", got, before)
	}
	if game.PlyCount() != 0 {
		t.Errorf("PlyCount after perft = %d, want 0", game.PlyCount())
	}
}
