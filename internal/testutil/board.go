package testutil

import (
	"testing"

	"github.com/lgbarn/chess-core-go/internal/chess"
)

// MustCoordinate creates a coordinate from a (rank, file) pair.
// It calls t.Fatal if the pair is out of bounds. Use this in test setup
// where a construction failure should abort the test.
func MustCoordinate(t *testing.T, rank, file uint8) chess.Coordinate {
	t.Helper()
	coord, err := chess.NewCoordinate(rank, file)
	if err != nil {
		t.Fatalf("NewCoordinate(%d, %d) failed: %v", rank, file, err)
	}
	return coord
}

// MustIndex creates a coordinate from a linear tile index.
// It calls t.Fatal if the index is out of bounds.
func MustIndex(t *testing.T, index uint8) chess.Coordinate {
	t.Helper()
	coord, err := chess.CoordinateFromIndex(index)
	if err != nil {
		t.Fatalf("CoordinateFromIndex(%d) failed: %v", index, err)
	}
	return coord
}

// TileBoard is a minimal array-backed reference implementation of the
// Board contract for use in tests. Tiles hold the packed Piece encoding
// directly; Moves returns whatever sequence was stubbed with StubMoves,
// since move generation is outside the core's scope.
type TileBoard struct {
	tiles [chess.NumTiles]chess.Piece
	moves []chess.Move
}

var _ chess.Board = (*TileBoard)(nil)

// NewTileBoard creates a TileBoard with every tile empty. The explicit
// fill matters: the zero value of Piece is a white king, not an empty
// tile.
func NewTileBoard() *TileBoard {
	b := &TileBoard{}
	for i := range b.tiles {
		b.tiles[i] = chess.EmptyPiece()
	}
	return b
}

// SetTile places or replaces the occupant at coord.
func (b *TileBoard) SetTile(coord chess.Coordinate, piece chess.Piece) {
	b.tiles[coord.Index()] = piece
}

// ClearTile empties the tile at coord.
func (b *TileBoard) ClearTile(coord chess.Coordinate) {
	b.SetTile(coord, chess.EmptyPiece())
}

// Moves returns the stubbed move sequence.
func (b *TileBoard) Moves() []chess.Move {
	return b.moves
}

// StubMoves sets the sequence returned by Moves.
func (b *TileBoard) StubMoves(moves ...chess.Move) {
	b.moves = moves
}

// Tile returns the piece at coord, for inspection in tests.
func (b *TileBoard) Tile(coord chess.Coordinate) chess.Piece {
	return b.tiles[coord.Index()]
}
