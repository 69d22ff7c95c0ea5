package san

import (
	goerrors "errors"
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
	"github.com/lgbarn/chesscore/internal/testutil"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		text string
		from string
		to   string
	}{
		{"pawn push", engine.InitialFEN, "e4", "e2", "e4"},
		{"knight move", engine.InitialFEN, "Nf3", "g1", "f3"},
		{"pawn capture", "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2", "exd5", "e4", "d5"},
		{"alternate capture char", "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2", "e:d5", "e4", "d5"},
		{"piece capture", "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3", "Nxe5", "f3", "e5"},
		{"file disambiguation", "4k3/8/8/8/8/8/8/R3K2R w - - 0 1", "Rad1", "a1", "d1"},
		{"rank disambiguation", "4k3/8/8/8/R7/8/8/R3K3 w - - 0 1", "R4a3", "a4", "a3"},
		{"full disambiguation", "4k3/8/8/8/Q6Q/8/8/Q3K3 w - - 0 1", "Qa4d4", "a4", "d4"},
		{"check suffix ignored", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "Ra8+", "a1", "a8"},
		{"mate suffix ignored", "7k/6pp/8/8/8/8/8/R3K3 w - - 0 1", "Ra8#", "a1", "a8"},
		{"en passant", "rnbqkbnr/pp2pppp/8/2ppP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3", "exd6", "e5", "d6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := testutil.MustGameFromFEN(t, tt.fen)
			move, err := Parse(tt.text, game)
			testutil.AssertNoError(t, err, "Parse(%q)", tt.text)
			testutil.AssertEqual(t, move.From, testutil.MustSquare(t, game, tt.from), "from square")
			testutil.AssertEqual(t, move.To, testutil.MustSquare(t, game, tt.to), "to square")
		})
	}
}

func TestParseCastling(t *testing.T) {
	game := testutil.MustGameFromFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	tests := []struct {
		text     string
		kingside bool
	}{
		{"O-O", true},
		{"0-0", true},
		{"o-o", true},
		{"O-O-O", false},
		{"0-0-0", false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			move, err := Parse(tt.text, game)
			testutil.AssertNoError(t, err, "Parse(%q)", tt.text)
			testutil.AssertEqual(t, move.KingsideCastle, tt.kingside, "kingside flag")
			testutil.AssertEqual(t, move.QueensideCastle, !tt.kingside, "queenside flag")
		})
	}
}

func TestParsePromotion(t *testing.T) {
	game := testutil.MustGameFromFEN(t, "8/4P3/8/8/8/k7/8/4K3 w - - 0 1")

	tests := []struct {
		text string
		want chess.Piece
	}{
		{"e8=Q", chess.Queen},
		{"e8=R", chess.Rook},
		{"e8=B", chess.Bishop},
		{"e8=N", chess.Knight},
		{"e8", chess.Queen}, // bare destination defaults to queen
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			move, err := Parse(tt.text, game)
			testutil.AssertNoError(t, err, "Parse(%q)", tt.text)
			testutil.AssertEqual(t, move.Promotion, tt.want, "promotion piece")
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		text string
		want error
	}{
		{"empty text", engine.InitialFEN, "", errors.ErrInvalidSAN},
		{"garbage", engine.InitialFEN, "zz9!", errors.ErrInvalidSAN},
		{"no matching move", engine.InitialFEN, "e5", errors.ErrInvalidSAN},
		{"illegal piece move", engine.InitialFEN, "Nd4", errors.ErrInvalidSAN},
		{"capture marker on quiet move", engine.InitialFEN, "exe4", errors.ErrInvalidSAN},
		{"castle without rights", "4k3/8/8/8/8/8/8/R3K2R w - - 0 1", "O-O", errors.ErrInvalidSAN},
		{"ambiguous rook move", "4k3/8/8/8/8/8/8/R3K2R w - - 0 1", "Rd1", errors.ErrAmbiguousMove},
		{"ambiguous knight move", "4k3/8/8/8/8/8/8/N1N1K3 w - - 0 1", "Nb3", errors.ErrAmbiguousMove},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := testutil.MustGameFromFEN(t, tt.fen)
			_, err := Parse(tt.text, game)
			testutil.AssertErrorIs(t, err, tt.want, "Parse(%q)", tt.text)
		})
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		to   string
		want string
	}{
		{"pawn push", engine.InitialFEN, "e2", "e4", "e4"},
		{"knight move", engine.InitialFEN, "g1", "f3", "Nf3"},
		{"pawn capture keeps file", "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2", "e4", "d5", "exd5"},
		{"piece capture", "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3", "f3", "e5", "Nxe5"},
		{"file disambiguation", "4k3/8/8/8/8/8/8/R3K2R w - - 0 1", "a1", "d1", "Rad1"},
		{"rank disambiguation", "4k3/8/8/8/R7/8/8/R3K3 w - - 0 1", "a4", "a3", "R4a3"},
		{"full disambiguation", "4k3/8/8/8/Q6Q/8/8/Q3K3 w - - 0 1", "a4", "d4", "Qa4d4"},
		{"no disambiguation needed", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1", "d1", "Rd1"},
		{"kingside castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1", "g1", "O-O"},
		{"queenside castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1", "c1", "O-O-O"},
		{"check suffix", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1", "a8", "Ra8+"},
		{"mate suffix", "7k/6pp/8/8/8/8/8/R3K3 w - - 0 1", "a1", "a8", "Ra8#"},
		{"promotion", "8/4P3/8/8/8/k7/8/4K3 w - - 0 1", "e7", "e8", "e8=Q"},
		{"en passant", "rnbqkbnr/pp2pppp/8/2ppP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3", "e5", "d6", "exd6"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := testutil.MustGameFromFEN(t, tt.fen)
			fromIdx := testutil.MustSquare(t, game, tt.from)
			toIdx := testutil.MustSquare(t, game, tt.to)
			var found *chess.Move
			for _, m := range engine.LegalMoves(game) {
				if m.From == fromIdx && m.To == toIdx &&
					(m.Promotion == chess.Empty || m.Promotion == chess.Queen) {
					move := m
					found = &move
					break
				}
			}
			if found == nil {
				t.Fatalf("no legal move %s%s in %q", tt.from, tt.to, tt.fen)
			}
			got, err := Encode(*found, game)
			testutil.AssertNoError(t, err, "Encode")
			testutil.AssertEqual(t, got, tt.want, "encoded text")
		})
	}
}

func TestEncodeRejectsIllegalMove(t *testing.T) {
	game := engine.NewGame()
	bogus := chess.Move{
		From: testutil.MustSquare(t, game, "e2"),
		To:   testutil.MustSquare(t, game, "e6"),
	}
	_, err := Encode(bogus, game)
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
}

// TestEncodeParseRoundTrip encodes every legal move in a handful of
// positions and parses the text back, expecting the identical move.
func TestEncodeParseRoundTrip(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/pp2pppp/8/2ppP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
		"4k3/8/8/8/Q6Q/8/8/Q3K3 w - - 0 1",
	}
	for _, fen := range fens {
		game := testutil.MustGameFromFEN(t, fen)
		for _, move := range engine.LegalMoves(game) {
			text, err := Encode(move, game)
			if err != nil {
				t.Fatalf("%s: Encode(%+v): %v", fen, move, err)
			}
			parsed, err := Parse(text, game)
			if err != nil {
				t.Fatalf("%s: Parse(%q): %v", fen, text, err)
			}
			if parsed != move {
				t.Errorf("%s: %q parsed to %+v, want %+v", fen, text, parsed, move)
			}
		}
	}
}

// TestFoolsMateSAN plays the shortest mate by SAN and checks the final
// encoding carries the mate suffix.
func TestFoolsMateSAN(t *testing.T) {
	game := engine.NewGame()
	for _, text := range []string{"f3", "e5", "g4"} {
		move, err := Parse(text, game)
		testutil.AssertNoError(t, err, "Parse(%q)", text)
		testutil.AssertNoError(t, game.Apply(move), "Apply(%q)", text)
	}
	mate, err := Parse("Qh4#", game)
	testutil.AssertNoError(t, err, "Parse(Qh4#)")
	encoded, err := Encode(mate, game)
	testutil.AssertNoError(t, err, "Encode")
	testutil.AssertEqual(t, encoded, "Qh4#", "mate encoding")
	testutil.AssertNoError(t, game.Apply(mate), "Apply mate")
	testutil.AssertTrue(t, engine.IsCheckmate(game), "checkmate after Qh4#")
}

func TestSANErrorDetail(t *testing.T) {
	game := engine.NewGame()
	_, err := Parse("Qd4", game)
	var sanErr *errors.SANError
	if !goerrors.As(err, &sanErr) {
		t.Fatalf("Parse error = %v, want *SANError", err)
	}
	testutil.AssertEqual(t, sanErr.Text, "Qd4", "offending text")
}
