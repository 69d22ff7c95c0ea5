package engine

import "github.com/lgbarn/chesscore/internal/chess"

// castleMoves generates the castling moves available to the king at
// kingIdx. A castle requires the corresponding right, the rook on its
// original corner, every square strictly between king and rook empty, and
// the king's current, transit, and landing squares unattacked. The king
// travels two files toward the rook and the rook lands beside it; boards
// too small for that geometry simply offer no castling.
func castleMoves(b *chess.Board, kingIdx int, colour chess.Colour) []chess.Move {
	n := b.SideLength
	homeRank := 0
	kingside, queenside := b.BKingside, b.BQueenside
	if colour == chess.White {
		homeRank = n - 1
		kingside, queenside = b.WKingside, b.WQueenside
	}
	if kingIdx/n != homeRank {
		return nil
	}

	var moves []chess.Move
	if kingside {
		if move, ok := castleTowards(b, kingIdx, colour, homeRank, n-1); ok {
			move.KingsideCastle = true
			moves = append(moves, move)
		}
	}
	if queenside {
		if move, ok := castleTowards(b, kingIdx, colour, homeRank, 0); ok {
			move.QueensideCastle = true
			moves = append(moves, move)
		}
	}
	return moves
}

// castleTowards validates castling geometry toward the rook on rookFile and
// returns the king's move when every condition holds.
func castleTowards(b *chess.Board, kingIdx int, colour chess.Colour, homeRank, rookFile int) (chess.Move, bool) {
	n := b.SideLength
	kingFile := kingIdx % n

	step := 1
	if rookFile < kingFile {
		step = -1
	}
	landingFile := kingFile + 2*step
	if landingFile < 0 || landingFile >= n || landingFile == rookFile {
		return chess.Move{}, false
	}

	rookIdx := homeRank*n + rookFile
	if b.Squares[rookIdx] != chess.MakeColouredPiece(colour, chess.Rook) {
		return chess.Move{}, false
	}

	// All squares strictly between king and rook must be empty.
	for file := kingFile + step; file != rookFile; file += step {
		if b.Squares[homeRank*n+file] != chess.Empty {
			return chess.Move{}, false
		}
	}

	// The king may not castle out of, through, or into an attack.
	enemy := colour.Opposite()
	for _, file := range []int{kingFile, kingFile + step, landingFile} {
		if IsSquareAttacked(b, homeRank*n+file, enemy) {
			return chess.Move{}, false
		}
	}

	return chess.Move{From: kingIdx, To: homeRank*n + landingFile}, true
}
