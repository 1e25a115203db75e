package chess

// Board is the contract satisfied by any concrete board representation,
// be it an array of tiles or a set of bitboards. This package supplies
// only the vocabulary the contract is expressed in; it ships no concrete
// implementation and no move generation.
//
// Implementations are responsible for their own synchronization if they
// are shared across goroutines. The value types flowing through the
// contract are immutable and safe to share.
type Board interface {
	// SetTile places or replaces the occupant at coord. Coordinates are
	// validated at construction, so the operation is total.
	SetTile(coord Coordinate, piece Piece)

	// ClearTile empties the tile at coord. It must be equivalent to
	// SetTile(coord, EmptyPiece()).
	ClearTile(coord Coordinate)

	// Moves returns every move the implementation considers available
	// from the current state, eagerly materialized. Ordering is
	// implementation-defined.
	Moves() []Move
}
