package san

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
)

// Encode serializes a legal move as SAN for the given position. The move
// must be a member of the current legal-move set. Disambiguation is
// minimal: bare destination first, then the source file, then the source
// rank, then both. Pawn captures always carry the source file. A check or
// checkmate suffix is computed from the resulting position.
func Encode(move chess.Move, g *engine.Game) (string, error) {
	legal := engine.LegalMoves(g)
	found := false
	for _, candidate := range legal {
		if candidate == move {
			found = true
			break
		}
	}
	if !found {
		return "", errors.Wrap(errors.ErrIllegalMove, "cannot encode")
	}

	var sb strings.Builder
	b := g.Board

	switch {
	case move.KingsideCastle:
		sb.WriteString("O-O")
	case move.QueensideCastle:
		sb.WriteString("O-O-O")
	default:
		pieceType := chess.ExtractPiece(b.Squares[move.From])
		dest, err := b.SquareName(move.To)
		if err != nil {
			return "", err
		}

		if pieceType == chess.Pawn {
			if move.Capture {
				sb.WriteByte(fileLetter(b, move.From))
				sb.WriteByte('x')
			}
			sb.WriteString(dest)
			if move.Promotion != chess.Empty {
				sb.WriteByte('=')
				sb.WriteByte(chess.PieceLetter(move.Promotion))
			}
		} else {
			sb.WriteByte(chess.PieceLetter(pieceType))
			sb.WriteString(disambiguation(b, legal, move, pieceType))
			if move.Capture {
				sb.WriteByte('x')
			}
			sb.WriteString(dest)
		}
	}

	sb.WriteString(checkSuffix(move, g))
	return sb.String(), nil
}

// disambiguation returns the minimal source hint that uniquely identifies
// the move among legal moves sharing its piece type and destination.
func disambiguation(b *chess.Board, legal []chess.Move, move chess.Move, pieceType chess.Piece) string {
	n := b.SideLength
	var rivals []chess.Move
	for _, candidate := range legal {
		if candidate.From == move.From || candidate.To != move.To || candidate.IsCastle() {
			continue
		}
		if chess.ExtractPiece(b.Squares[candidate.From]) == pieceType {
			rivals = append(rivals, candidate)
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	fromFile := move.From % n
	fromRank := move.From / n
	fileClashes := false
	rankClashes := false
	for _, rival := range rivals {
		if rival.From%n == fromFile {
			fileClashes = true
		}
		if rival.From/n == fromRank {
			rankClashes = true
		}
	}

	switch {
	case !fileClashes:
		return string(fileLetter(b, move.From))
	case !rankClashes:
		return rankNumber(b, move.From)
	default:
		return string(fileLetter(b, move.From)) + rankNumber(b, move.From)
	}
}

// checkSuffix applies the move to a scratch copy and returns "#" when the
// opponent is checkmated, "+" when merely in check, and "" otherwise.
func checkSuffix(move chess.Move, g *engine.Game) string {
	scratch := g.Copy()
	if err := scratch.Apply(move); err != nil {
		return ""
	}
	if !engine.InCheck(scratch) {
		return ""
	}
	if engine.IsCheckmate(scratch) {
		return "#"
	}
	return "+"
}

// fileLetter returns the letter of the square's file.
func fileLetter(b *chess.Board, idx int) byte {
	return byte('a' + idx%b.SideLength)
}

// rankNumber returns the digits of the square's rank.
func rankNumber(b *chess.Board, idx int) string {
	return strconv.Itoa(b.SideLength - idx/b.SideLength)
}
