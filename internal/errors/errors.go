// Package errors provides sentinel errors and error types for the chesscore
// library. It defines the failure conditions of the rules engine and the
// codecs, and structured error types that preserve context while allowing
// error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidCoordinate indicates a rank, file, or square index outside
	// the configured board dimensions.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSAN indicates a SAN move string that does not describe any
	// legal move in the given position.
	ErrInvalidSAN = errors.New("invalid SAN move")

	// ErrAmbiguousMove indicates a SAN move string that matches more than
	// one legal move in the given position.
	ErrAmbiguousMove = errors.New("ambiguous SAN move")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoHistory indicates an undo request on a game with no applied moves.
	ErrNoHistory = errors.New("no move history")

	// ErrInvalidPromotion indicates a promotion to a piece that pawns may
	// not promote to.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	// ErrPieceRegistration indicates an invalid custom piece registration.
	ErrPieceRegistration = errors.New("invalid piece registration")
)

// FENReason identifies which validation rule a FEN string violated.
type FENReason int

const (
	// FENFieldCount: the string does not split into exactly six fields.
	FENFieldCount FENReason = iota
	// FENRankCount: the layout field has the wrong number of ranks.
	FENRankCount
	// FENRankLength: a rank describes too few or too many squares.
	FENRankLength
	// FENInvalidPiece: a layout character is not a known piece letter.
	FENInvalidPiece
	// FENInvalidDigitRun: an empty-square run is zero or overflows the rank.
	FENInvalidDigitRun
	// FENSideToMove: the side-to-move field is not "w" or "b".
	FENSideToMove
	// FENCastling: the castling field contains unknown characters.
	FENCastling
	// FENEnPassant: the en-passant field is not "-" or a valid square.
	FENEnPassant
	// FENCounters: the halfmove clock or fullmove number is malformed.
	FENCounters
)

// String returns a short description of the reason.
func (r FENReason) String() string {
	switch r {
	case FENFieldCount:
		return "wrong field count"
	case FENRankCount:
		return "wrong rank count"
	case FENRankLength:
		return "rank length mismatch"
	case FENInvalidPiece:
		return "invalid piece letter"
	case FENInvalidDigitRun:
		return "invalid empty-square run"
	case FENSideToMove:
		return "malformed side to move"
	case FENCastling:
		return "malformed castling field"
	case FENEnPassant:
		return "malformed en-passant field"
	case FENCounters:
		return "malformed move counter"
	default:
		return "unknown"
	}
}

// FENError reports a FEN parse failure with the rule that was violated.
// It unwraps to ErrInvalidFEN.
type FENError struct {
	Reason FENReason
	Detail string
}

// Error returns a formatted message including the reason and detail.
func (e *FENError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("invalid FEN: %s: %s", e.Reason, e.Detail)
	}
	return fmt.Sprintf("invalid FEN: %s", e.Reason)
}

// Unwrap returns ErrInvalidFEN, enabling errors.Is() checks.
func (e *FENError) Unwrap() error {
	return ErrInvalidFEN
}

// SANError reports a SAN parse failure for a particular move text.
// It unwraps to the underlying sentinel (ErrInvalidSAN, ErrAmbiguousMove,
// or ErrInvalidPromotion).
type SANError struct {
	Err    error  // The underlying sentinel error
	Text   string // The move text that failed to parse
	Detail string // Additional context, if any
}

// Error returns a formatted message including the move text.
func (e *SANError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("move %q: %v: %s", e.Text, e.Err, e.Detail)
	}
	return fmt.Sprintf("move %q: %v", e.Text, e.Err)
}

// Unwrap returns the underlying error.
func (e *SANError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
