// Package hashing provides 64-bit position keys for repetition detection.
// Keys cover the square contents, side to move, castling rights, and
// en-passant target. They are FNV-1a style hashes: collisions are possible
// and tolerable for repetition counting, so a key is not a position
// identity.
package hashing

import "github.com/lgbarn/chesscore/internal/chess"

const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// PositionKey returns the key for a board's current position.
func PositionKey(b *chess.Board) uint64 {
	return key(b.Squares, b.ToMove,
		b.WKingside, b.WQueenside, b.BKingside, b.BQueenside, b.EPTarget)
}

// StateKey returns the key for a saved board state.
func StateKey(s *chess.BoardState) uint64 {
	return key(s.Squares, s.ToMove,
		s.WKingside, s.WQueenside, s.BKingside, s.BQueenside, s.EPTarget)
}

func key(squares []chess.Piece, toMove chess.Colour,
	wk, wq, bk, bq bool, epTarget int) uint64 {
	h := uint64(fnvOffset64)
	mix := func(v uint64) {
		h ^= v
		h *= fnvPrime64
	}
	for _, piece := range squares {
		mix(uint64(piece) + 1)
	}
	mix(uint64(toMove))
	mix(boolBit(wk)<<0 | boolBit(wq)<<1 | boolBit(bk)<<2 | boolBit(bq)<<3)
	mix(uint64(epTarget + 1))
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
