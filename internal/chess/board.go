package chess

import (
	"strconv"

	"github.com/lgbarn/chesscore/internal/errors"
)

// StandardSideLength is the side length of a regular chess board.
const StandardSideLength = 8

// Board represents a square chess board of a configurable side length,
// together with the position state a FEN string carries. Squares are stored
// as a flat slice in reading order: index 0 is the top-left corner (a8 on a
// standard board), indices increase left-to-right then top-to-bottom, and
// index = rank*SideLength + file with rank 0 at the top.
type Board struct {
	// SideLength is the board's side length; the square count is its square.
	SideLength int

	// Squares holds coloured pieces, with the zero value for empty squares.
	Squares []Piece

	// ToMove is the side with the next move.
	ToMove Colour

	// Castling rights: true while the corresponding king and rook have
	// never moved away from their original squares.
	WKingside  bool
	WQueenside bool
	BKingside  bool
	BQueenside bool

	// EPTarget is the index of the en-passant target square, or -1. It is
	// set if and only if the previous move was a double pawn push.
	EPTarget int

	// HalfmoveClock counts half-moves since the last pawn move or capture.
	HalfmoveClock uint

	// MoveNumber is the fullmove number, starting at 1 and incremented
	// after each Black move.
	MoveNumber uint

	// Cached king positions for check detection, -1 when unknown.
	WKingIdx int
	BKingIdx int
}

// NewBoard creates an empty board with the given side length.
func NewBoard(sideLength int) (*Board, error) {
	if sideLength < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidCoordinate,
			"side length %d is below 1", sideLength)
	}
	return &Board{
		SideLength: sideLength,
		Squares:    make([]Piece, sideLength*sideLength),
		ToMove:     White,
		EPTarget:   -1,
		MoveNumber: 1,
		WKingIdx:   -1,
		BKingIdx:   -1,
	}, nil
}

// NewStandardBoard creates an 8x8 board with the standard starting position.
func NewStandardBoard() *Board {
	b, _ := NewBoard(StandardSideLength)
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position. Boards
// of other side lengths are left untouched because no standard layout exists
// for them.
func (b *Board) SetupInitialPosition() {
	if b.SideLength != StandardSideLength {
		return
	}
	for i := range b.Squares {
		b.Squares[i] = Empty
	}

	n := b.SideLength
	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < n; file++ {
		b.Squares[file] = B(backRank[file])
		b.Squares[n+file] = B(Pawn)
		b.Squares[(n-2)*n+file] = W(Pawn)
		b.Squares[(n-1)*n+file] = W(backRank[file])
	}

	b.WKingIdx = (n-1)*n + 4
	b.BKingIdx = 4

	b.WKingside = true
	b.WQueenside = true
	b.BKingside = true
	b.BQueenside = true

	b.ToMove = White
	b.EPTarget = -1
	b.HalfmoveClock = 0
	b.MoveNumber = 1
}

// Index converts rank and file coordinates to a square index. Rank 0 is the
// top row. Fails with ErrInvalidCoordinate when either coordinate falls
// outside [0, SideLength).
func (b *Board) Index(rank, file int) (int, error) {
	if rank < 0 || rank >= b.SideLength || file < 0 || file >= b.SideLength {
		return 0, errors.Wrapf(errors.ErrInvalidCoordinate,
			"rank %d file %d on a %dx%d board", rank, file, b.SideLength, b.SideLength)
	}
	return rank*b.SideLength + file, nil
}

// Coords converts a square index back to rank and file coordinates.
func (b *Board) Coords(index int) (rank, file int, err error) {
	if index < 0 || index >= len(b.Squares) {
		return 0, 0, errors.Wrapf(errors.ErrInvalidCoordinate,
			"index %d on a %dx%d board", index, b.SideLength, b.SideLength)
	}
	return index / b.SideLength, index % b.SideLength, nil
}

// Get returns the coloured piece at the given index.
func (b *Board) Get(index int) (Piece, error) {
	if index < 0 || index >= len(b.Squares) {
		return Empty, errors.Wrapf(errors.ErrInvalidCoordinate,
			"index %d on a %dx%d board", index, b.SideLength, b.SideLength)
	}
	return b.Squares[index], nil
}

// Set places a coloured piece at the given index. Placing Empty removes
// whatever occupies the square.
func (b *Board) Set(index int, piece Piece) error {
	if index < 0 || index >= len(b.Squares) {
		return errors.Wrapf(errors.ErrInvalidCoordinate,
			"index %d on a %dx%d board", index, b.SideLength, b.SideLength)
	}
	b.Squares[index] = piece
	return nil
}

// SquareName returns the algebraic name of a square ("e4"). File letters
// run a..z, so names exist only for side lengths up to 26.
func (b *Board) SquareName(index int) (string, error) {
	rank, file, err := b.Coords(index)
	if err != nil {
		return "", err
	}
	if file >= 26 {
		return "", errors.Wrapf(errors.ErrInvalidCoordinate,
			"file %d has no letter name", file)
	}
	return string(byte('a'+file)) + strconv.Itoa(b.SideLength-rank), nil
}

// ParseSquare converts an algebraic square name ("e4") to a square index.
func (b *Board) ParseSquare(name string) (int, error) {
	if len(name) < 2 {
		return 0, errors.Wrapf(errors.ErrInvalidCoordinate, "square %q", name)
	}
	c := name[0]
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	if c < 'a' || c > 'z' {
		return 0, errors.Wrapf(errors.ErrInvalidCoordinate, "square %q", name)
	}
	file := int(c - 'a')
	num, err := strconv.Atoi(name[1:])
	if err != nil {
		return 0, errors.Wrapf(errors.ErrInvalidCoordinate, "square %q", name)
	}
	return b.Index(b.SideLength-num, file)
}

// KingIndex returns the index of the given colour's king, or -1 if the
// board has no such king. The cached position is used when it still holds
// the king; otherwise the board is scanned and the cache refreshed.
func (b *Board) KingIndex(colour Colour) int {
	cached := b.WKingIdx
	if colour == Black {
		cached = b.BKingIdx
	}
	king := MakeColouredPiece(colour, King)
	if cached >= 0 && cached < len(b.Squares) && b.Squares[cached] == king {
		return cached
	}
	for i, piece := range b.Squares {
		if piece == king {
			b.setKingIndex(colour, i)
			return i
		}
	}
	b.setKingIndex(colour, -1)
	return -1
}

func (b *Board) setKingIndex(colour Colour, index int) {
	if colour == White {
		b.WKingIdx = index
	} else {
		b.BKingIdx = index
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	newBoard.Squares = append([]Piece(nil), b.Squares...)
	return newBoard
}

// BoardState captures all mutable board state for save/restore operations.
// The apply/undo journal pushes one of these per applied move.
type BoardState struct {
	Squares       []Piece
	ToMove        Colour
	WKingside     bool
	WQueenside    bool
	BKingside     bool
	BQueenside    bool
	EPTarget      int
	HalfmoveClock uint
	MoveNumber    uint
	WKingIdx      int
	BKingIdx      int
}

// SaveState captures the current board state for later restoration. The
// snapshot owns its own square slice and stays valid across later moves.
func (b *Board) SaveState() BoardState {
	return BoardState{
		Squares:       append([]Piece(nil), b.Squares...),
		ToMove:        b.ToMove,
		WKingside:     b.WKingside,
		WQueenside:    b.WQueenside,
		BKingside:     b.BKingside,
		BQueenside:    b.BQueenside,
		EPTarget:      b.EPTarget,
		HalfmoveClock: b.HalfmoveClock,
		MoveNumber:    b.MoveNumber,
		WKingIdx:      b.WKingIdx,
		BKingIdx:      b.BKingIdx,
	}
}

// RestoreState restores the board to a previously saved state. The snapshot
// is copied, not aliased, so it may be restored again later.
func (b *Board) RestoreState(s BoardState) {
	b.Squares = append([]Piece(nil), s.Squares...)
	b.ToMove = s.ToMove
	b.WKingside = s.WKingside
	b.WQueenside = s.WQueenside
	b.BKingside = s.BKingside
	b.BQueenside = s.BQueenside
	b.EPTarget = s.EPTarget
	b.HalfmoveClock = s.HalfmoveClock
	b.MoveNumber = s.MoveNumber
	b.WKingIdx = s.WKingIdx
	b.BKingIdx = s.BKingIdx
}
