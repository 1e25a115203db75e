// Package chess provides the core vocabulary for chess board state: a
// validated board coordinate, a packed piece encoding, a move descriptor,
// and the Board contract that concrete board representations satisfy.
// It deliberately contains no move legality rules and no game state;
// those belong to the collaborators that consume these types.
package chess

// Team represents one of the two sides in a game.
type Team uint8

const (
	White Team = 0
	Black Team = 1
)

// NumTeams is the number of playing sides.
const NumTeams = 2

// String returns the string representation of a team.
func (t Team) String() string {
	if t == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the other team.
func (t Team) Opposite() Team {
	return t ^ 1
}

// Chessman represents the type of a piece, independent of its team.
// The constant values double as the 3-bit patterns used by the packed
// Piece encoding, so they must stay in the range 0-5.
type Chessman uint8

const (
	King Chessman = iota
	Queen
	Bishop
	Knight
	Rook
	Pawn
)

// NumChessmen is the number of distinct piece types.
const NumChessmen = 6

// String returns the string representation of a chessman.
func (c Chessman) String() string {
	names := []string{"King", "Queen", "Bishop", "Knight", "Rook", "Pawn"}
	if int(c) < len(names) {
		return names[c]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a chessman (uppercase).
func (c Chessman) Letter() byte {
	letters := []byte{'K', 'Q', 'B', 'N', 'R', 'P'}
	if int(c) < len(letters) {
		return letters[c]
	}
	return '?'
}

// Constants for board dimensions.
const (
	// BoardSize is the length of one side of the board.
	BoardSize = 8

	// NumTiles is the total number of tiles on the board.
	NumTiles = BoardSize * BoardSize
)
