// chesscore is a small driver around the rules core: it loads a position
// from FEN, applies a sequence of SAN moves, and prints the resulting
// position, its status, and the legal moves. It implements no rules of its
// own.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/san"
)

const programVersion = "0.1.0"

var (
	fenFlag     = flag.String("fen", engine.InitialFEN, "starting position as a FEN string")
	versionFlag = flag.Bool("version", false, "print version and exit")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *versionFlag {
		fmt.Printf("chesscore version %s\n", programVersion)
		os.Exit(0)
	}

	if err := run(os.Stdout, *fenFlag, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "chesscore: %v\n", err)
		os.Exit(1)
	}
}

// run loads the position, applies the moves, and reports on it.
func run(w io.Writer, fen string, moves []string) error {
	game, err := engine.NewGameFromFEN(fen)
	if err != nil {
		return err
	}

	for _, text := range moves {
		move, err := san.Parse(text, game)
		if err != nil {
			return err
		}
		if err := game.Apply(move); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "position: %s\n", engine.FEN(game))
	fmt.Fprintf(w, "status:   %s\n", status(game))

	legal := engine.LegalMoves(game)
	names := make([]string, 0, len(legal))
	for _, move := range legal {
		text, err := san.Encode(move, game)
		if err != nil {
			return err
		}
		names = append(names, text)
	}
	fmt.Fprintf(w, "legal:    %s\n", strings.Join(names, " "))
	return nil
}

// status describes the side to move's situation.
func status(game *engine.Game) string {
	switch {
	case engine.IsCheckmate(game):
		return fmt.Sprintf("%v is checkmated", game.Board.ToMove)
	case engine.IsStalemate(game):
		return fmt.Sprintf("%v is stalemated", game.Board.ToMove)
	case engine.InCheck(game):
		return fmt.Sprintf("%v is in check", game.Board.ToMove)
	default:
		return fmt.Sprintf("%v to move", game.Board.ToMove)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: chesscore [flags] [SAN move ...]\n\n")
	fmt.Fprintf(os.Stderr, "Applies the given SAN moves to the starting position and prints the\n")
	fmt.Fprintf(os.Stderr, "resulting FEN, the game status, and the legal moves.\n\n")
	flag.PrintDefaults()
}
