// Package engine provides legal move generation, game state management,
// and the FEN codec on top of the chess board model.
package engine

import (
	"github.com/lgbarn/chesscore/internal/chess"
)

// Game owns one evolving position: a board plus an explicit history journal
// of applied moves with enough snapshot data to reverse each one. All
// mutation goes through Apply and Undo. A Game is not safe for concurrent
// mutation; hosts must serialize Apply/Undo calls and may read from Copy
// snapshots concurrently.
type Game struct {
	Board   *chess.Board
	history []historyEntry
}

// historyEntry pairs an applied move with the full board state that
// preceded it. Undo is a snapshot pop, never an incremental reversal.
type historyEntry struct {
	move  chess.Move
	prior chess.BoardState
}

// NewGame creates a game from the standard starting position.
func NewGame() *Game {
	return &Game{Board: chess.NewStandardBoard()}
}

// NewGameFromBoard creates a game from an arbitrary board position with an
// empty history.
func NewGameFromBoard(board *chess.Board) *Game {
	return &Game{Board: board}
}

// Copy creates an independent copy of the game. The board is deep-copied;
// history snapshots are shared because they are immutable once pushed.
func (g *Game) Copy() *Game {
	return &Game{
		Board:   g.Board.Copy(),
		history: append([]historyEntry(nil), g.history...),
	}
}

// History returns the applied moves in order, oldest first.
func (g *Game) History() []chess.Move {
	moves := make([]chess.Move, len(g.history))
	for i, entry := range g.history {
		moves[i] = entry.move
	}
	return moves
}

// PlyCount returns the number of applied moves on the history stack.
func (g *Game) PlyCount() int {
	return len(g.history)
}

// priorStates exposes the history snapshots, newest last, for draw-rule
// analysis within the package.
func (g *Game) priorStates() []chess.BoardState {
	states := make([]chess.BoardState, len(g.history))
	for i, entry := range g.history {
		states[i] = entry.prior
	}
	return states
}
