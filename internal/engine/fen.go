package engine

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewGameFromFEN creates a game from a FEN string on a standard 8x8 board.
func NewGameFromFEN(fen string) (*Game, error) {
	return NewGameFromFENSize(fen, chess.StandardSideLength)
}

// NewGameFromFENSize creates a game from a FEN string generalized to the
// given side length: the layout field must have sideLength ranks of
// sideLength squares each, and the en-passant field uses rank numbers up to
// sideLength. Every violation fails with a FENError carrying the reason.
func NewGameFromFENSize(fen string, sideLength int) (*Game, error) {
	board, err := chess.NewBoard(sideLength)
	if err != nil {
		return nil, err
	}

	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, &errors.FENError{
			Reason: errors.FENFieldCount,
			Detail: strconv.Itoa(len(fields)) + " fields, want 6",
		}
	}

	if err := parseLayout(board, fields[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, fields[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, fields[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, fields[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(board, fields[4], fields[5]); err != nil {
		return nil, err
	}

	return NewGameFromBoard(board), nil
}

// parseLayout parses the piece placement field: ranks separated by '/',
// top rank first, piece letters interleaved with empty-square run lengths.
func parseLayout(board *chess.Board, layout string) error {
	n := board.SideLength
	ranks := strings.Split(layout, "/")
	if len(ranks) != n {
		return &errors.FENError{
			Reason: errors.FENRankCount,
			Detail: strconv.Itoa(len(ranks)) + " ranks, want " + strconv.Itoa(n),
		}
	}

	for rank, text := range ranks {
		file := 0
		i := 0
		for i < len(text) {
			c := text[i]
			if c >= '0' && c <= '9' {
				// Consecutive digits form one run length; multi-digit
				// runs occur on boards wider than 9.
				j := i
				for j < len(text) && text[j] >= '0' && text[j] <= '9' {
					j++
				}
				run, _ := strconv.Atoi(text[i:j])
				if c == '0' || run < 1 || file+run > n {
					return &errors.FENError{
						Reason: errors.FENInvalidDigitRun,
						Detail: "run " + text[i:j] + " in rank " + strconv.Quote(text),
					}
				}
				file += run
				i = j
				continue
			}

			pieceType := chess.PieceFromLetter(c)
			if pieceType == chess.Empty {
				return &errors.FENError{
					Reason: errors.FENInvalidPiece,
					Detail: strconv.QuoteRune(rune(c)),
				}
			}
			if file >= n {
				return &errors.FENError{
					Reason: errors.FENRankLength,
					Detail: "rank " + strconv.Quote(text) + " is too long",
				}
			}

			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			idx := rank*n + file
			board.Squares[idx] = chess.MakeColouredPiece(colour, pieceType)
			if pieceType == chess.King {
				if colour == chess.White {
					board.WKingIdx = idx
				} else {
					board.BKingIdx = idx
				}
			}
			file++
			i++
		}
		if file != n {
			return &errors.FENError{
				Reason: errors.FENRankLength,
				Detail: "rank " + strconv.Quote(text) + " covers " +
					strconv.Itoa(file) + " of " + strconv.Itoa(n) + " squares",
			}
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, field string) error {
	switch field {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return &errors.FENError{Reason: errors.FENSideToMove, Detail: strconv.Quote(field)}
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, field string) error {
	if field == "-" {
		return nil
	}
	if field == "" {
		return &errors.FENError{Reason: errors.FENCastling, Detail: "empty field"}
	}
	for _, c := range field {
		switch c {
		case 'K':
			board.WKingside = true
		case 'Q':
			board.WQueenside = true
		case 'k':
			board.BKingside = true
		case 'q':
			board.BQueenside = true
		default:
			return &errors.FENError{Reason: errors.FENCastling, Detail: strconv.QuoteRune(c)}
		}
	}
	return nil
}

// parseEnPassant parses the en-passant target square field.
func parseEnPassant(board *chess.Board, field string) error {
	if field == "-" {
		return nil
	}
	idx, err := board.ParseSquare(field)
	if err != nil {
		return &errors.FENError{Reason: errors.FENEnPassant, Detail: strconv.Quote(field)}
	}
	board.EPTarget = idx
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, halfmove, fullmove string) error {
	half, err := strconv.ParseUint(halfmove, 10, 32)
	if err != nil {
		return &errors.FENError{Reason: errors.FENCounters, Detail: strconv.Quote(halfmove)}
	}
	full, err := strconv.ParseUint(fullmove, 10, 32)
	if err != nil || full < 1 {
		return &errors.FENError{Reason: errors.FENCounters, Detail: strconv.Quote(fullmove)}
	}
	board.HalfmoveClock = uint(half)
	board.MoveNumber = uint(full)
	return nil
}

// FEN serializes the game's current position. The output is canonical:
// empty-square runs are always merged into one maximal number token, and
// the en-passant square appears only while the target is set.
func FEN(g *Game) string {
	return BoardToFEN(g.Board)
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writeLayout(&sb, board)
	sb.WriteByte(' ')
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(board.HalfmoveClock), 10))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(board.MoveNumber), 10))

	return sb.String()
}

// writeLayout writes the piece placement field.
func writeLayout(sb *strings.Builder, board *chess.Board) {
	n := board.SideLength
	for rank := 0; rank < n; rank++ {
		emptyRun := 0
		for file := 0; file < n; file++ {
			piece := board.Squares[rank*n+file]
			if piece == chess.Empty {
				emptyRun++
				continue
			}
			if emptyRun > 0 {
				sb.WriteString(strconv.Itoa(emptyRun))
				emptyRun = 0
			}
			sb.WriteByte(chess.ColouredPieceLetter(piece))
		}
		if emptyRun > 0 {
			sb.WriteString(strconv.Itoa(emptyRun))
		}
		if rank < n-1 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability field.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	any := false
	if board.WKingside {
		sb.WriteByte('K')
		any = true
	}
	if board.WQueenside {
		sb.WriteByte('Q')
		any = true
	}
	if board.BKingside {
		sb.WriteByte('k')
		any = true
	}
	if board.BQueenside {
		sb.WriteByte('q')
		any = true
	}
	if !any {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en-passant target square field.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if board.EPTarget < 0 {
		sb.WriteByte('-')
		return
	}
	name, err := board.SquareName(board.EPTarget)
	if err != nil {
		sb.WriteByte('-')
		return
	}
	sb.WriteString(name)
}
