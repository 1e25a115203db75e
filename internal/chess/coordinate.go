package chess

import (
	"github.com/lgbarn/chess-core-go/internal/errors"
)

// Coordinate is a validated tile address: a linear index in [0, NumTiles)
// with rank = index / 8 and file = index % 8. The only way to obtain one
// is through the fallible constructors, so holders of a Coordinate never
// need to bounds-check it again. Board implementations use it purely as
// a lookup key.
type Coordinate struct {
	value uint8
}

// NewCoordinate creates a coordinate from a (rank, file) pair. Both axes
// must be below BoardSize; otherwise it returns ErrOutOfBoundsAxis.
// Validation is performed on the input axes themselves, never on the
// computed linear index, so an out-of-range axis is always reported even
// when the index arithmetic would land inside the board.
func NewCoordinate(rank, file uint8) (Coordinate, error) {
	if rank >= BoardSize || file >= BoardSize {
		return Coordinate{}, &errors.BoundsError{
			Err:  errors.ErrOutOfBoundsAxis,
			Rank: rank,
			File: file,
		}
	}
	return Coordinate{value: rank*BoardSize + file}, nil
}

// CoordinateFromIndex creates a coordinate from a linear tile index.
// The index must be below NumTiles; otherwise it returns
// ErrOutOfBoundsIndex.
func CoordinateFromIndex(index uint8) (Coordinate, error) {
	if index >= NumTiles {
		return Coordinate{}, &errors.BoundsError{
			Err:   errors.ErrOutOfBoundsIndex,
			Index: index,
		}
	}
	return Coordinate{value: index}, nil
}

// Rank returns the rank (row) of the coordinate, 0-7.
func (c Coordinate) Rank() uint8 {
	return c.value / BoardSize
}

// File returns the file (column) of the coordinate, 0-7.
func (c Coordinate) File() uint8 {
	return c.value % BoardSize
}

// Index returns the linear tile index of the coordinate, 0-63.
func (c Coordinate) Index() uint8 {
	return c.value
}

// String returns the algebraic form of the coordinate, "a1" through "h8".
func (c Coordinate) String() string {
	return string([]byte{'a' + c.File(), '1' + c.Rank()})
}
