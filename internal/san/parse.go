// Package san converts moves to and from Standard Algebraic Notation,
// resolving each move text against the legal-move set of a position.
package san

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
)

// isFileChar returns true if c can name a file on the given board.
func isFileChar(c byte, b *chess.Board) bool {
	return c >= 'a' && int(c-'a') < b.SideLength && c <= 'z'
}

// isCaptureChar returns true if c is a capture marker.
func isCaptureChar(c byte) bool {
	return c == 'x' || c == 'X' || c == ':'
}

// isCheckChar returns true if c is a check or mate annotation.
func isCheckChar(c byte) bool {
	return c == '+' || c == '#'
}

// moveDescription is the parsed form of a SAN token before it is matched
// against the legal-move set. Unset fields are wildcards.
type moveDescription struct {
	pieceType chess.Piece
	toIdx     int
	fromFile  int // -1 when not given
	fromRank  int // -1 when not given
	capture   bool
	promotion chess.Piece
}

// Parse resolves a SAN move text against the legal moves of the given
// position. The description may be partial; it must match exactly one
// legal move. Zero matches fail with ErrInvalidSAN, several matches with
// ErrAmbiguousMove. A promoting move with no promotion suffix resolves to
// the queen choice.
func Parse(text string, g *engine.Game) (chess.Move, error) {
	token := strings.TrimSpace(text)
	if token == "" {
		return chess.Move{}, &errors.SANError{Err: errors.ErrInvalidSAN, Text: text, Detail: "empty move text"}
	}

	// Trailing check/mate annotations are validated syntactically but take
	// no part in move identity.
	if isCheckChar(token[len(token)-1]) {
		token = token[:len(token)-1]
		if token == "" {
			return chess.Move{}, &errors.SANError{Err: errors.ErrInvalidSAN, Text: text}
		}
	}

	legal := engine.LegalMoves(g)

	if kingside, ok := castlingToken(token); ok {
		return matchCastle(text, legal, kingside)
	}

	desc, err := parseDescription(text, token, g.Board)
	if err != nil {
		return chess.Move{}, err
	}
	return matchDescription(text, g.Board, legal, desc)
}

// castlingToken recognizes kingside and queenside castling tokens in the
// accepted spellings (O, 0, or o with hyphens).
func castlingToken(token string) (kingside, ok bool) {
	normalized := strings.Map(func(r rune) rune {
		if r == '0' || r == 'o' {
			return 'O'
		}
		return r
	}, token)
	switch normalized {
	case "O-O-O":
		return false, true
	case "O-O":
		return true, true
	default:
		return false, false
	}
}

// matchCastle finds the castling move with the requested side.
func matchCastle(text string, legal []chess.Move, kingside bool) (chess.Move, error) {
	var matches []chess.Move
	for _, move := range legal {
		if (kingside && move.KingsideCastle) || (!kingside && move.QueensideCastle) {
			matches = append(matches, move)
		}
	}
	switch len(matches) {
	case 0:
		return chess.Move{}, &errors.SANError{Err: errors.ErrInvalidSAN, Text: text, Detail: "castling is not legal here"}
	case 1:
		return matches[0], nil
	default:
		return chess.Move{}, &errors.SANError{Err: errors.ErrAmbiguousMove, Text: text}
	}
}

// parseDescription scans a non-castling token into its description:
// optional piece letter, optional disambiguation, optional capture marker,
// destination square, optional promotion suffix.
func parseDescription(text, token string, b *chess.Board) (moveDescription, error) {
	desc := moveDescription{pieceType: chess.Pawn, fromFile: -1, fromRank: -1}
	fail := func(detail string) (moveDescription, error) {
		return desc, &errors.SANError{Err: errors.ErrInvalidSAN, Text: text, Detail: detail}
	}

	// Promotion suffix.
	if eq := strings.LastIndexByte(token, '='); eq >= 0 {
		suffix := token[eq+1:]
		if len(suffix) != 1 {
			return fail("malformed promotion suffix")
		}
		promo := chess.PieceFromLetter(suffix[0])
		if promo == chess.Empty {
			return fail("unknown promotion piece")
		}
		if promo == chess.Pawn || promo == chess.King {
			return desc, &errors.SANError{Err: errors.ErrInvalidPromotion, Text: text}
		}
		desc.promotion = promo
		token = token[:eq]
	}

	// Leading piece letter; its absence implies a pawn move.
	if len(token) > 0 && token[0] >= 'A' && token[0] <= 'Z' {
		desc.pieceType = chess.PieceFromLetter(token[0])
		if desc.pieceType == chess.Empty {
			return fail("unknown piece letter")
		}
		token = token[1:]
	}

	// Destination square: a file letter followed by the rank number, at
	// the end of the token.
	digits := 0
	for digits < len(token) && token[len(token)-1-digits] >= '0' && token[len(token)-1-digits] <= '9' {
		digits++
	}
	if digits == 0 || len(token) < digits+1 {
		return fail("missing destination square")
	}
	destStart := len(token) - digits - 1
	if !isFileChar(token[destStart], b) {
		return fail("missing destination file")
	}
	toIdx, err := b.ParseSquare(token[destStart:])
	if err != nil {
		return fail("destination square out of range")
	}
	desc.toIdx = toIdx
	token = token[:destStart]

	// What remains is disambiguation and the capture marker, in the order
	// [file][rank][x].
	i := 0
	if i < len(token) && isFileChar(token[i], b) {
		desc.fromFile = int(token[i] - 'a')
		i++
	}
	rankStart := i
	for i < len(token) && token[i] >= '0' && token[i] <= '9' {
		i++
	}
	if i > rankStart {
		num, _ := strconv.Atoi(token[rankStart:i])
		if num < 1 || num > b.SideLength {
			return fail("disambiguation rank out of range")
		}
		desc.fromRank = b.SideLength - num
	}
	if i < len(token) && isCaptureChar(token[i]) {
		desc.capture = true
		i++
	}
	if i != len(token) {
		return fail("unexpected trailing characters")
	}
	return desc, nil
}

// matchDescription finds the unique legal move the description identifies.
func matchDescription(text string, b *chess.Board, legal []chess.Move, desc moveDescription) (chess.Move, error) {
	n := b.SideLength
	var matches []chess.Move
	for _, move := range legal {
		if move.IsCastle() {
			continue
		}
		if chess.ExtractPiece(b.Squares[move.From]) != desc.pieceType {
			continue
		}
		if move.To != desc.toIdx {
			continue
		}
		if desc.fromFile >= 0 && move.From%n != desc.fromFile {
			continue
		}
		if desc.fromRank >= 0 && move.From/n != desc.fromRank {
			continue
		}
		if desc.capture != move.Capture {
			continue
		}
		if desc.promotion != chess.Empty {
			if move.Promotion != desc.promotion {
				continue
			}
		} else if move.Promotion != chess.Empty && move.Promotion != chess.Queen {
			// No suffix given: the queen choice is the default.
			continue
		}
		matches = append(matches, move)
	}

	switch len(matches) {
	case 0:
		return chess.Move{}, &errors.SANError{Err: errors.ErrInvalidSAN, Text: text, Detail: "no legal move matches"}
	case 1:
		return matches[0], nil
	default:
		return chess.Move{}, &errors.SANError{Err: errors.ErrAmbiguousMove, Text: text}
	}
}
