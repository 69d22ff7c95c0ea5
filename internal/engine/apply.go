package engine

import (
	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// Apply applies a move to the game. The move must be a structural member of
// the current legal-move set, including the promotion choice; otherwise the
// game is left untouched and ErrIllegalMove is returned. A promotion to a
// pawn or king fails with ErrInvalidPromotion. On success the prior board
// state is pushed onto the history journal so Undo can reverse the move.
func (g *Game) Apply(move chess.Move) error {
	if move.Promotion == chess.Pawn || move.Promotion == chess.King {
		return errors.Wrapf(errors.ErrInvalidPromotion,
			"cannot promote to %v", move.Promotion)
	}

	legal := false
	for _, candidate := range legalMoves(g.Board) {
		if candidate == move {
			legal = true
			break
		}
	}
	if !legal {
		return errors.ErrIllegalMove
	}

	g.applyUnchecked(move)
	return nil
}

// applyUnchecked applies a move known to be legal, recording the prior
// state on the history journal.
func (g *Game) applyUnchecked(move chess.Move) {
	g.history = append(g.history, historyEntry{
		move:  move,
		prior: g.Board.SaveState(),
	})
	applyToBoard(g.Board, move)
}

// Undo reverses the most recent Apply, restoring the prior board contents
// and every state field exactly. It returns the move that was undone, or
// ErrNoHistory when no moves have been applied.
func (g *Game) Undo() (chess.Move, error) {
	if len(g.history) == 0 {
		return chess.Move{}, errors.ErrNoHistory
	}
	entry := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	g.Board.RestoreState(entry.prior)
	return entry.move, nil
}

// applyToBoard performs the mechanical effects of a move on a board:
// piece movement, capture removal, castling rook movement, castling-right
// maintenance, en-passant bookkeeping, clocks, and the turn flip. Legality
// is the caller's concern; the legality filter reuses this on scratch
// boards.
func applyToBoard(b *chess.Board, move chess.Move) {
	n := b.SideLength
	moving := b.Squares[move.From]
	colour := chess.ExtractColour(moving)
	pieceType := chess.ExtractPiece(moving)
	captured := b.Squares[move.To]

	// The en-passant victim sits beside the destination, not on it.
	if move.EnPassant {
		victim := move.To + n
		if colour == chess.Black {
			victim = move.To - n
		}
		captured = b.Squares[victim]
		b.Squares[victim] = chess.Empty
	}

	b.Squares[move.From] = chess.Empty
	if move.Promotion != chess.Empty {
		b.Squares[move.To] = chess.MakeColouredPiece(colour, move.Promotion)
	} else {
		b.Squares[move.To] = moving
	}

	// Castling moves the rook as well; the king travel is the move itself.
	if move.IsCastle() {
		step := 1
		if move.To < move.From {
			step = -1
		}
		rookFile := 0
		if move.KingsideCastle {
			rookFile = n - 1
		}
		rookFrom := (move.From/n)*n + rookFile
		rook := b.Squares[rookFrom]
		b.Squares[rookFrom] = chess.Empty
		b.Squares[move.To-step] = rook
	}

	// Any king movement permanently clears both of its rights.
	if pieceType == chess.King {
		if colour == chess.White {
			b.WKingIdx = move.To
			b.WKingside = false
			b.WQueenside = false
		} else {
			b.BKingIdx = move.To
			b.BKingside = false
			b.BQueenside = false
		}
	}

	// A rook leaving its corner, or being captured on it, clears the
	// corresponding right for good.
	if pieceType == chess.Rook {
		clearRookRight(b, colour, move.From)
	}
	if captured != chess.Empty && chess.ExtractPiece(captured) == chess.Rook {
		clearRookRight(b, chess.ExtractColour(captured), move.To)
	}

	if move.DoublePush {
		b.EPTarget = (move.From + move.To) / 2
	} else {
		b.EPTarget = -1
	}

	if pieceType == chess.Pawn || move.Capture {
		b.HalfmoveClock = 0
	} else {
		b.HalfmoveClock++
	}
	if colour == chess.Black {
		b.MoveNumber++
	}
	b.ToMove = colour.Opposite()
}

// clearRookRight removes the castling right bound to the given corner
// square, if idx is one.
func clearRookRight(b *chess.Board, colour chess.Colour, idx int) {
	n := b.SideLength
	if colour == chess.White {
		homeRank := n - 1
		if idx == homeRank*n+n-1 {
			b.WKingside = false
		}
		if idx == homeRank*n {
			b.WQueenside = false
		}
	} else {
		if idx == n-1 {
			b.BKingside = false
		}
		if idx == 0 {
			b.BQueenside = false
		}
	}
}
