// Package puzzle defines the board, directions, and sentinel errors of the
// 3×3 magic-square sliding puzzle.
package puzzle

import (
	"errors"
)

// Sentinel errors for board construction and parsing.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("puzzle: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("puzzle: all rows must have the same length")
	// ErrSize indicates a rectangular grid that is not Size×Size.
	ErrSize = errors.New("puzzle: grid must be 3x3")
	// ErrNotPermutation indicates cell values are not exactly 1..9.
	ErrNotPermutation = errors.New("puzzle: cells must be a permutation of 1..9")
)

const (
	// Size is the board width and height.
	Size = 3
	// Blank is the value of the empty cell.
	Blank = Size * Size
	// MagicSum is the line sum every row, column and diagonal must reach.
	MagicSum = Size * (Size*Size + 1) / 2
)

// Direction is the way the blank moves.
type Direction int

const (
	// Up moves the blank one row up.
	Up Direction = iota
	// Down moves the blank one row down.
	Down
	// Left moves the blank one column left.
	Left
	// Right moves the blank one column right.
	Right
)

// Directions lists every Direction in priority order.
var Directions = [...]Direction{Up, Down, Left, Right}

// blankOffsets[d] is the (row, col) delta of the blank for direction d.
var blankOffsets = [...][2]int{
	Up:    {-1, 0},
	Down:  {1, 0},
	Left:  {0, -1},
	Right: {0, 1},
}

// Priority is the tie-break rank of d: Up=1, Down=2, Left=3, Right=4.
func (d Direction) Priority() int { return int(d) + 1 }

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Direction(?)"
	}
}

// Board is one arrangement of the values 1..9 on a 3×3 grid; Blank marks
// the empty cell. Board is a value type: every move returns a new Board.
type Board [Size][Size]int
