package chess

// Bit layout of the packed Piece encoding.
const (
	// maskChessman selects the 3-bit chessman pattern.
	maskChessman = 0b0000_0111

	// maskTeam selects the team bit.
	maskTeam = 0b0000_1000

	// shiftTeam is the position of the team bit.
	shiftTeam = 3

	// maskUnoccupied is the occupancy marker: a piece with any of these
	// bits set represents an empty tile. The canonical empty encoding
	// sets all four.
	maskUnoccupied = 0b1111_0000
)

// Piece packs the occupancy of a single tile into one byte: the team in
// bit 3, the chessman in bits 0-2, and an occupancy marker in the high
// nibble. A full board fits in 64 bytes, which keeps board copies and
// comparisons cheap for consumers that snapshot positions heavily.
//
// Note that the zero value is NOT the empty tile: a zero byte decodes to
// (White, King), while the empty encoding produced by EmptyPiece sets the
// high nibble. Callers that mean "no piece" must use EmptyPiece.
type Piece struct {
	value uint8
}

// NewPiece creates the piece for an occupied tile.
func NewPiece(team Team, chessman Chessman) Piece {
	return Piece{value: uint8(team)<<shiftTeam | uint8(chessman)}
}

// EmptyPiece creates the piece for an unoccupied tile.
func EmptyPiece() Piece {
	return Piece{value: maskUnoccupied}
}

// IsEmpty reports whether the piece represents an unoccupied tile.
func (p Piece) IsEmpty() bool {
	return p.value&maskUnoccupied != 0
}

// Occupant returns the team and chessman occupying the tile. The boolean
// is false for an empty tile, in which case the other results are
// meaningless.
//
// Occupant panics if the stored chessman pattern is not one of the six
// defined values. The public constructors cannot produce such a value,
// so the panic marks a corrupted Piece, a programming error rather than
// a recoverable condition.
func (p Piece) Occupant() (Team, Chessman, bool) {
	if p.IsEmpty() {
		return 0, 0, false
	}

	team := White
	if p.value&maskTeam != 0 {
		team = Black
	}

	var chessman Chessman
	switch p.value & maskChessman {
	case 0:
		chessman = King
	case 1:
		chessman = Queen
	case 2:
		chessman = Bishop
	case 3:
		chessman = Knight
	case 4:
		chessman = Rook
	case 5:
		chessman = Pawn
	default:
		panic("chess: invalid chessman pattern in Piece")
	}

	return team, chessman, true
}

// String returns a readable representation, e.g. "White Pawn" or "empty".
func (p Piece) String() string {
	team, chessman, ok := p.Occupant()
	if !ok {
		return "empty"
	}
	return team.String() + " " + chessman.String()
}
