package engine

// Perft counts the leaf nodes of the legal-move tree to the given depth.
// It exercises the full apply/undo path and exists to validate the move
// generator against known node counts.
func Perft(g *Game, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(g)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, move := range moves {
		g.applyUnchecked(move)
		nodes += Perft(g, depth-1)
		g.Undo()
	}
	return nodes
}
