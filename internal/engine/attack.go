package engine

import "github.com/lgbarn/chesscore/internal/chess"

// IsSquareAttacked returns true if the square at target is attacked by the
// given colour: some piece of that colour could capture onto it. The test
// uses raw capture reachability (pawn attack squares, offset tables, ray
// casting) and never consults move legality, so it cannot recurse into the
// legality filter.
func IsSquareAttacked(b *chess.Board, target int, by chess.Colour) bool {
	n := b.SideLength
	targetRank := target / n
	targetFile := target % n

	for from, piece := range b.Squares {
		if piece == chess.Empty || chess.ExtractColour(piece) != by {
			continue
		}
		fromRank := from / n
		fromFile := from % n
		pieceType := chess.ExtractPiece(piece)

		if pieceType == chess.Pawn {
			// Pawn attack squares differ from their push squares.
			dir := pawnDirection(by)
			if targetRank == fromRank+dir &&
				(targetFile == fromFile-1 || targetFile == fromFile+1) {
				return true
			}
			continue
		}

		rule, ok := chess.RuleFor(pieceType)
		if !ok {
			continue
		}
		if attacksAlongRule(b, rule, fromRank, fromFile, targetRank, targetFile) {
			return true
		}
	}
	return false
}

// attacksAlongRule reports whether a piece with the given rule reaches the
// target square from its position, respecting blockers on sliding rays.
func attacksAlongRule(b *chess.Board, rule chess.MoveRule, fromRank, fromFile, targetRank, targetFile int) bool {
	n := b.SideLength
	for _, offset := range rule.Offsets {
		df, dr := offset[0], offset[1]
		rank := fromRank + dr
		file := fromFile + df
		for rank >= 0 && rank < n && file >= 0 && file < n {
			if rank == targetRank && file == targetFile {
				return true
			}
			if !rule.Sliding || b.Squares[rank*n+file] != chess.Empty {
				break
			}
			rank += dr
			file += df
		}
	}
	return false
}

// IsInCheck returns true if the given colour's king is attacked by the
// opponent. Boards with no king of that colour are never in check.
func IsInCheck(b *chess.Board, colour chess.Colour) bool {
	kingIdx := b.KingIndex(colour)
	if kingIdx < 0 {
		return false
	}
	return IsSquareAttacked(b, kingIdx, colour.Opposite())
}

// InCheck returns true if the side to move is in check.
func InCheck(g *Game) bool {
	return IsInCheck(g.Board, g.Board.ToMove)
}

// pawnDirection returns the rank delta a pawn of the given colour advances
// by: White moves toward rank 0 (the top of the index space), Black away
// from it.
func pawnDirection(colour chess.Colour) int {
	if colour == chess.White {
		return -1
	}
	return 1
}
