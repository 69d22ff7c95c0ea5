// Package chess provides the core board model: colours, piece types, the
// movement-rule table, squares, and moves. It has no knowledge of move
// legality; that lives in the engine package.
package chess

import (
	"fmt"

	"github.com/lgbarn/chesscore/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece type. The zero value is an empty square.
// Values above King are assigned to custom pieces by RegisterPiece.
type Piece int

const (
	Empty Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	firstCustomPiece
)

// String returns the string representation of a piece type.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return fmt.Sprintf("Custom(%c)", PieceLetter(p))
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// pieceLetters maps piece types to their uppercase letters. Extended by
// RegisterPiece.
var pieceLetters = map[Piece]byte{
	Pawn:   'P',
	Knight: 'N',
	Bishop: 'B',
	Rook:   'R',
	Queen:  'Q',
	King:   'K',
}

// letterPieces is the inverse of pieceLetters, keyed by uppercase letter.
var letterPieces = map[byte]Piece{
	'P': Pawn,
	'N': Knight,
	'B': Bishop,
	'R': Rook,
	'Q': Queen,
	'K': King,
}

// PieceLetter returns the uppercase letter for a piece type, or '?' for
// an unknown type.
func PieceLetter(piece Piece) byte {
	if c, ok := pieceLetters[piece]; ok {
		return c
	}
	return '?'
}

// PieceFromLetter returns the piece type for a letter of either case, or
// Empty if the letter names no known piece.
func PieceFromLetter(c byte) Piece {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if p, ok := letterPieces[c]; ok {
		return p
	}
	return Empty
}

// ColouredPieceLetter returns the FEN letter for a coloured piece:
// uppercase for White, lowercase for Black.
func ColouredPieceLetter(colouredPiece Piece) byte {
	letter := PieceLetter(ExtractPiece(colouredPiece))
	if ExtractColour(colouredPiece) == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// MoveRule describes how a piece type moves: a set of (file, rank) offsets,
// and whether the piece slides repeatedly along each offset until blocked.
// Rank offsets are in board order: positive is toward higher indices.
type MoveRule struct {
	Offsets [][2]int
	Sliding bool
}

// Direction offset tables shared by the standard rules.
var (
	straightOffsets = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalOffsets = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	royalOffsets    = [][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	knightOffsets = [][2]int{
		{1, 2}, {-1, 2}, {1, -2}, {-1, -2},
		{2, 1}, {-2, 1}, {2, -1}, {-2, -1},
	}
)

// moveRules holds the movement rules for every non-pawn piece type. Pawns
// are special-cased throughout because their capture squares differ from
// their movement squares. Extended by RegisterPiece.
var moveRules = map[Piece]MoveRule{
	Knight: {Offsets: knightOffsets},
	Bishop: {Offsets: diagonalOffsets, Sliding: true},
	Rook:   {Offsets: straightOffsets, Sliding: true},
	Queen:  {Offsets: royalOffsets, Sliding: true},
	King:   {Offsets: royalOffsets},
}

// RuleFor returns the movement rule for a piece type. Pawns and unknown
// types have no rule.
func RuleFor(piece Piece) (MoveRule, bool) {
	rule, ok := moveRules[piece]
	return rule, ok
}

// nextCustomPiece is the identifier handed out by the next RegisterPiece call.
var nextCustomPiece = firstCustomPiece

// RegisterPiece adds a custom piece type with the given uppercase letter and
// movement rule, and returns its identifier. Registered pieces participate
// in move generation, attack detection, and the FEN and SAN codecs through
// the letter and rule tables. Support is best-effort: only the six standard
// types are guaranteed correct, custom pieces never castle, promote, or
// capture en passant, and registration must happen before any game is
// created. Registration is not safe for concurrent use.
func RegisterPiece(letter byte, rule MoveRule) (Piece, error) {
	if letter < 'A' || letter > 'Z' {
		return Empty, errors.Wrapf(errors.ErrPieceRegistration,
			"letter %q is not an uppercase ASCII letter", letter)
	}
	if _, taken := letterPieces[letter]; taken {
		return Empty, errors.Wrapf(errors.ErrPieceRegistration,
			"letter %q is already in use", letter)
	}
	if len(rule.Offsets) == 0 {
		return Empty, errors.Wrap(errors.ErrPieceRegistration,
			"rule has no offsets")
	}
	piece := nextCustomPiece
	nextCustomPiece++
	pieceLetters[piece] = letter
	letterPieces[letter] = piece
	moveRules[piece] = rule
	return piece, nil
}
