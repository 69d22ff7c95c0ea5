package engine

import "github.com/lgbarn/chesscore/internal/chess"

// promotionChoices lists the piece types a pawn may promote to, in the
// order the generator emits them. The queen comes first as the default
// choice.
var promotionChoices = []chess.Piece{
	chess.Queen, chess.Rook, chess.Bishop, chess.Knight,
}

// LegalMoves returns every legal move for the side to move, in a
// deterministic order: ascending source square, then the piece's offset
// order. A move is legal iff after applying it the mover's own king square
// is not attacked.
func LegalMoves(g *Game) []chess.Move {
	return legalMoves(g.Board)
}

func legalMoves(b *chess.Board) []chess.Move {
	colour := b.ToMove
	pseudo := pseudoLegalMoves(b, colour)
	legal := make([]chess.Move, 0, len(pseudo))
	for _, move := range pseudo {
		if movePreservesKing(b, move, colour) {
			legal = append(legal, move)
		}
	}
	return legal
}

// pseudoLegalMoves enumerates moves following each piece's movement
// pattern, ignoring whether a move exposes the mover's own king.
func pseudoLegalMoves(b *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for from, piece := range b.Squares {
		if piece == chess.Empty || chess.ExtractColour(piece) != colour {
			continue
		}
		pieceType := chess.ExtractPiece(piece)
		switch {
		case pieceType == chess.Pawn:
			moves = append(moves, pawnMoves(b, from, colour)...)
		case pieceType == chess.King:
			moves = append(moves, tableMoves(b, from, pieceType, colour)...)
			moves = append(moves, castleMoves(b, from, colour)...)
		default:
			moves = append(moves, tableMoves(b, from, pieceType, colour)...)
		}
	}
	return moves
}

// pawnMoves generates pushes, double pushes, captures, en-passant captures,
// and promotions for the pawn at from.
func pawnMoves(b *chess.Board, from int, colour chess.Colour) []chess.Move {
	n := b.SideLength
	dir := pawnDirection(colour)
	fromRank := from / n
	fromFile := from % n

	var moves []chess.Move
	emit := func(m chess.Move) {
		if (m.To/n) == promotionRank(b, colour) {
			for _, choice := range promotionChoices {
				promoted := m
				promoted.Promotion = choice
				moves = append(moves, promoted)
			}
			return
		}
		moves = append(moves, m)
	}

	// Single push to an empty square.
	pushRank := fromRank + dir
	if pushRank >= 0 && pushRank < n {
		push := pushRank*n + fromFile
		if b.Squares[push] == chess.Empty {
			emit(chess.Move{From: from, To: push})

			// Double push from the starting rank through two empty squares.
			if fromRank == pawnStartRank(b, colour) {
				doubleRank := fromRank + 2*dir
				if doubleRank >= 0 && doubleRank < n {
					double := doubleRank*n + fromFile
					if b.Squares[double] == chess.Empty {
						moves = append(moves, chess.Move{From: from, To: double, DoublePush: true})
					}
				}
			}
		}
	}

	// Diagonal captures, including onto the en-passant target.
	for _, df := range []int{-1, 1} {
		file := fromFile + df
		rank := fromRank + dir
		if file < 0 || file >= n || rank < 0 || rank >= n {
			continue
		}
		to := rank*n + file
		occupant := b.Squares[to]
		if occupant != chess.Empty && chess.ExtractColour(occupant) != colour {
			emit(chess.Move{From: from, To: to, Capture: true})
		} else if occupant == chess.Empty && to == b.EPTarget {
			moves = append(moves, chess.Move{From: from, To: to, Capture: true, EnPassant: true})
		}
	}
	return moves
}

// tableMoves generates moves for any piece driven by the movement-rule
// table: fixed offsets for leapers, ray casting for sliders.
func tableMoves(b *chess.Board, from int, pieceType chess.Piece, colour chess.Colour) []chess.Move {
	rule, ok := chess.RuleFor(pieceType)
	if !ok {
		return nil
	}

	n := b.SideLength
	fromRank := from / n
	fromFile := from % n

	var moves []chess.Move
	for _, offset := range rule.Offsets {
		df, dr := offset[0], offset[1]
		rank := fromRank + dr
		file := fromFile + df
		for rank >= 0 && rank < n && file >= 0 && file < n {
			to := rank*n + file
			occupant := b.Squares[to]
			if occupant == chess.Empty {
				moves = append(moves, chess.Move{From: from, To: to})
			} else {
				if chess.ExtractColour(occupant) != colour {
					moves = append(moves, chess.Move{From: from, To: to, Capture: true})
				}
				break
			}
			if !rule.Sliding {
				break
			}
			rank += dr
			file += df
		}
	}
	return moves
}

// movePreservesKing applies the move on a scratch board and checks that the
// mover's king square is not attacked afterwards.
func movePreservesKing(b *chess.Board, move chess.Move, colour chess.Colour) bool {
	scratch := b.Copy()
	applyToBoard(scratch, move)
	return !IsInCheck(scratch, colour)
}

// pawnStartRank returns the rank index pawns of the given colour start on.
func pawnStartRank(b *chess.Board, colour chess.Colour) int {
	if colour == chess.White {
		return b.SideLength - 2
	}
	return 1
}

// promotionRank returns the far rank index for the given colour.
func promotionRank(b *chess.Board, colour chess.Colour) int {
	if colour == chess.White {
		return 0
	}
	return b.SideLength - 1
}
