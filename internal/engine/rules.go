package engine

import (
	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/hashing"
)

// IsCheckmate returns true if the side to move is in check and has no
// legal moves.
func IsCheckmate(g *Game) bool {
	return InCheck(g) && len(LegalMoves(g)) == 0
}

// IsStalemate returns true if the side to move is not in check and has no
// legal moves.
func IsStalemate(g *Game) bool {
	return !InCheck(g) && len(LegalMoves(g)) == 0
}

// IsFiftyMoveRule returns true if 50 full moves (100 half-moves) have been
// made without a pawn move or capture.
func IsFiftyMoveRule(g *Game) bool {
	return g.Board.HalfmoveClock >= 100
}

// RepetitionCount returns how often the current position has occurred over
// the game so far, counting the current occurrence. Positions are compared
// by their hash keys, which cover squares, side to move, castling rights,
// and the en-passant target.
func RepetitionCount(g *Game) int {
	key := hashing.PositionKey(g.Board)
	count := 1
	for _, prior := range g.priorStates() {
		if hashing.StateKey(&prior) == key {
			count++
		}
	}
	return count
}

// IsThreefoldRepetition returns true if the current position has occurred
// at least three times.
func IsThreefoldRepetition(g *Game) bool {
	return RepetitionCount(g) >= 3
}

// DrawState reports the mandatory draw conditions a game has reached.
type DrawState struct {
	// SeventyFiveMoveRule is true if a position was reached where 75 moves
	// (150 half-moves) were made without a pawn move or capture.
	SeventyFiveMoveRule bool

	// FivefoldRepetition is true if any position occurred 5 or more times.
	FivefoldRepetition bool

	// InsufficientMaterial is true if the current position has insufficient
	// mating material for either side.
	InsufficientMaterial bool
}

// AnalyzeDraws scans the game history for draw conditions.
func AnalyzeDraws(g *Game) DrawState {
	result := DrawState{
		InsufficientMaterial: HasInsufficientMaterial(g.Board),
	}

	counts := make(map[uint64]int)
	for _, prior := range g.priorStates() {
		if prior.HalfmoveClock >= 150 {
			result.SeventyFiveMoveRule = true
		}
		counts[hashing.StateKey(&prior)]++
	}
	if g.Board.HalfmoveClock >= 150 {
		result.SeventyFiveMoveRule = true
	}
	counts[hashing.PositionKey(g.Board)]++
	for _, count := range counts {
		if count >= 5 {
			result.FivefoldRepetition = true
			break
		}
	}
	return result
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side: K vs K, K+B vs K, K+N vs K, or K+B vs
// K+B with both bishops on the same square colour. Custom pieces always
// count as sufficient material.
func HasInsufficientMaterial(board *chess.Board) bool {
	var whiteMinors, blackMinors []chess.Piece
	var whiteBishopOnLight, blackBishopOnLight bool

	for idx, piece := range board.Squares {
		if piece == chess.Empty {
			continue
		}
		colour := chess.ExtractColour(piece)
		pieceType := chess.ExtractPiece(piece)

		if pieceType == chess.King {
			continue
		}
		// Anything that is not a lone minor can still mate.
		if pieceType != chess.Bishop && pieceType != chess.Knight {
			return false
		}

		if colour == chess.White {
			whiteMinors = append(whiteMinors, pieceType)
			if pieceType == chess.Bishop {
				whiteBishopOnLight = isLightSquare(board, idx)
			}
		} else {
			blackMinors = append(blackMinors, pieceType)
			if pieceType == chess.Bishop {
				blackBishopOnLight = isLightSquare(board, idx)
			}
		}
	}

	switch {
	case len(whiteMinors) == 0 && len(blackMinors) == 0:
		return true
	case len(whiteMinors) <= 1 && len(blackMinors) == 0:
		return true
	case len(whiteMinors) == 0 && len(blackMinors) <= 1:
		return true
	case len(whiteMinors) == 1 && len(blackMinors) == 1:
		return whiteMinors[0] == chess.Bishop && blackMinors[0] == chess.Bishop &&
			whiteBishopOnLight == blackBishopOnLight
	default:
		return false
	}
}

// isLightSquare returns true if the square at idx is a light square.
func isLightSquare(board *chess.Board, idx int) bool {
	n := board.SideLength
	return (idx/n+idx%n)%2 == 1
}
