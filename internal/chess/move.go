package chess

// Move represents a single move as source and destination square indices
// plus the flags needed to apply it. Moves are plain comparable values;
// the engine tests legality by exact structural equality against the
// current legal-move set, including the promotion choice.
type Move struct {
	// From and To are square indices on the board the move belongs to.
	From int
	To   int

	// Promotion is the piece type a promoting pawn becomes, or Empty.
	Promotion Piece

	// Capture is set when the move removes an enemy piece, including
	// en-passant captures.
	Capture bool

	// KingsideCastle and QueensideCastle mark castling moves; From and To
	// describe the king's travel.
	KingsideCastle  bool
	QueensideCastle bool

	// EnPassant marks a pawn capture onto the en-passant target square.
	EnPassant bool

	// DoublePush marks a two-square pawn advance, which sets the
	// en-passant target for the following move.
	DoublePush bool
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.KingsideCastle || m.QueensideCastle
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != Empty
}
