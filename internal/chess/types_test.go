package chess

import (
	"errors"
	"testing"

	cerrors "github.com/lgbarn/chesscore/internal/errors"
)

func TestColouredPieceEncoding(t *testing.T) {
	for _, colour := range []Colour{White, Black} {
		for piece := Pawn; piece <= King; piece++ {
			coloured := MakeColouredPiece(colour, piece)
			if got := ExtractPiece(coloured); got != piece {
				t.Errorf("ExtractPiece(%v %v) = %v", colour, piece, got)
			}
			if got := ExtractColour(coloured); got != colour {
				t.Errorf("ExtractColour(%v %v) = %v", colour, piece, got)
			}
			if coloured == Empty {
				t.Errorf("coloured %v %v collides with Empty", colour, piece)
			}
		}
	}
}

func TestPieceLetters(t *testing.T) {
	tests := []struct {
		piece  Piece
		letter byte
	}{
		{Pawn, 'P'},
		{Knight, 'N'},
		{Bishop, 'B'},
		{Rook, 'R'},
		{Queen, 'Q'},
		{King, 'K'},
	}
	for _, tt := range tests {
		if got := PieceLetter(tt.piece); got != tt.letter {
			t.Errorf("PieceLetter(%v) = %c, want %c", tt.piece, got, tt.letter)
		}
		if got := PieceFromLetter(tt.letter); got != tt.piece {
			t.Errorf("PieceFromLetter(%c) = %v, want %v", tt.letter, got, tt.piece)
		}
		lower := tt.letter + 'a' - 'A'
		if got := PieceFromLetter(lower); got != tt.piece {
			t.Errorf("PieceFromLetter(%c) = %v, want %v", lower, got, tt.piece)
		}
	}

	if got := PieceFromLetter('x'); got != Empty {
		t.Errorf("PieceFromLetter('x') = %v, want Empty", got)
	}
	if got := ColouredPieceLetter(W(Queen)); got != 'Q' {
		t.Errorf("ColouredPieceLetter(white queen) = %c, want Q", got)
	}
	if got := ColouredPieceLetter(B(Queen)); got != 'q' {
		t.Errorf("ColouredPieceLetter(black queen) = %c, want q", got)
	}
}

func TestRuleFor(t *testing.T) {
	for _, piece := range []Piece{Knight, Bishop, Rook, Queen, King} {
		rule, ok := RuleFor(piece)
		if !ok {
			t.Errorf("RuleFor(%v) missing", piece)
			continue
		}
		if len(rule.Offsets) == 0 {
			t.Errorf("RuleFor(%v) has no offsets", piece)
		}
	}
	// Pawns are special-cased by the generator and have no table rule.
	if _, ok := RuleFor(Pawn); ok {
		t.Error("RuleFor(Pawn) should not exist")
	}
	if _, ok := RuleFor(Empty); ok {
		t.Error("RuleFor(Empty) should not exist")
	}

	for _, piece := range []Piece{Bishop, Rook, Queen} {
		if rule, _ := RuleFor(piece); !rule.Sliding {
			t.Errorf("%v should slide", piece)
		}
	}
	for _, piece := range []Piece{Knight, King} {
		if rule, _ := RuleFor(piece); rule.Sliding {
			t.Errorf("%v should not slide", piece)
		}
	}
}

func TestRegisterPiece(t *testing.T) {
	wazir := MoveRule{Offsets: [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}}

	tests := []struct {
		name   string
		letter byte
		rule   MoveRule
		ok     bool
	}{
		{"lowercase letter", 'z', wazir, false},
		{"digit", '3', wazir, false},
		{"taken letter", 'Q', wazir, false},
		{"no offsets", 'Y', MoveRule{}, false},
		{"valid", 'W', wazir, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			piece, err := RegisterPiece(tt.letter, tt.rule)
			if tt.ok {
				if err != nil {
					t.Fatalf("RegisterPiece(%c): %v", tt.letter, err)
				}
				if piece < firstCustomPiece {
					t.Errorf("RegisterPiece(%c) = %v, want a custom identifier", tt.letter, piece)
				}
				if got := PieceFromLetter(tt.letter); got != piece {
					t.Errorf("PieceFromLetter(%c) = %v, want %v", tt.letter, got, piece)
				}
				rule, ok := RuleFor(piece)
				if !ok || len(rule.Offsets) != len(tt.rule.Offsets) {
					t.Errorf("RuleFor(%v) = %v, %v", piece, rule, ok)
				}
				return
			}
			if !errors.Is(err, cerrors.ErrPieceRegistration) {
				t.Errorf("RegisterPiece(%c) error = %v, want ErrPieceRegistration", tt.letter, err)
			}
		})
	}
}
