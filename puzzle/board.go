package puzzle

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/blindsearch/search"
)

// NewBoard builds a Board from a non-empty, rectangular 3×3 slice holding
// each of 1..9 exactly once. The input is copied.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrSize or ErrNotPermutation.
func NewBoard(values [][]int) (Board, error) {
	var b Board
	if len(values) == 0 || len(values[0]) == 0 {
		return b, ErrEmptyGrid
	}
	w := len(values[0])
	for _, row := range values {
		if len(row) != w {
			return b, ErrNonRectangular
		}
	}
	if len(values) != Size || w != Size {
		return b, fmt.Errorf("%w: got %dx%d", ErrSize, len(values), w)
	}

	var seen [Blank + 1]bool
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			v := values[r][c]
			if v < 1 || v > Blank || seen[v] {
				return Board{}, fmt.Errorf("%w: bad value %d at (%d,%d)", ErrNotPermutation, v, r, c)
			}
			seen[v] = true
			b[r][c] = v
		}
	}

	return b, nil
}

// ParseBoard reads nine digits in row-major order. Any non-digit characters
// act as separators, so "698713254", "6 9 8 / 7 1 3 / 2 5 4" and
// "6,9,8;7,1,3;2,5,4" are equivalent.
func ParseBoard(s string) (Board, error) {
	digits := make([]int, 0, Blank)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}
	if len(digits) == 0 {
		return Board{}, ErrEmptyGrid
	}
	if len(digits) != Size*Size {
		return Board{}, fmt.Errorf("%w: got %d cells", ErrSize, len(digits))
	}
	rows := make([][]int, Size)
	for r := range rows {
		rows[r] = digits[r*Size : (r+1)*Size]
	}

	return NewBoard(rows)
}

// MustParse is ParseBoard that panics on error. Intended for fixtures.
func MustParse(s string) Board {
	b, err := ParseBoard(s)
	if err != nil {
		panic(err)
	}

	return b
}

// Default returns the reference start board
//
//	6 9 8
//	7 1 3
//	2 5 4
func Default() Board {
	return Board{{6, 9, 8}, {7, 1, 3}, {2, 5, 4}}
}

// InBounds reports whether (r,c) lies on the board.
// Complexity: O(1).
func InBounds(r, c int) bool {
	return r >= 0 && r < Size && c >= 0 && c < Size
}

// Blank returns the row and column of the blank cell.
func (b Board) Blank() (row, col int) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == Blank {
				return r, c
			}
		}
	}

	return -1, -1
}

// Move slides the blank in direction d and returns the resulting Board.
// ok is false when the blank would leave the board.
func (b Board) Move(d Direction) (next Board, ok bool) {
	r, c := b.Blank()
	off := blankOffsets[d]
	nr, nc := r+off[0], c+off[1]
	if r < 0 || !InBounds(nr, nc) {
		return b, false
	}
	next = b
	next[r][c], next[nr][nc] = next[nr][nc], next[r][c]

	return next, true
}

// IsGoal reports whether every row, column and both diagonals sum to MagicSum.
func (b Board) IsGoal() bool {
	var diag, anti int
	for i := 0; i < Size; i++ {
		var row, col int
		for j := 0; j < Size; j++ {
			row += b[i][j]
			col += b[j][i]
		}
		if row != MagicSum || col != MagicSum {
			return false
		}
		diag += b[i][i]
		anti += b[i][Size-1-i]
	}

	return diag == MagicSum && anti == MagicSum
}

// Key returns the nine cell values in row-major order, e.g. "698713254".
func (b Board) Key() string {
	var sb strings.Builder
	sb.Grow(Size * Size)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			sb.WriteByte(byte('0' + b[r][c]))
		}
	}

	return sb.String()
}

// Actions lists the legal blank moves. Tiles are scanned in row-major order
// and each tile adjacent to the blank contributes the move that swaps them,
// so the tile above the blank (Up) comes first and the tile below (Down) last.
func (b Board) Actions() ([]search.Transition, error) {
	br, bc := b.Blank()
	if br < 0 {
		return nil, fmt.Errorf("%w: no blank cell", ErrNotPermutation)
	}
	out := make([]search.Transition, 0, len(Directions))
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			d, ok := directionTo(br, bc, r, c)
			if !ok {
				continue
			}
			next, _ := b.Move(d)
			out = append(out, search.Transition{Action: ActionFor(d), State: next})
		}
	}

	return out, nil
}

// directionTo returns the blank direction that swaps the blank at (br,bc)
// with the tile at (r,c), if the two cells are orthogonal neighbours.
func directionTo(br, bc, r, c int) (Direction, bool) {
	for _, d := range Directions {
		off := blankOffsets[d]
		if br+off[0] == r && bc+off[1] == c {
			return d, true
		}
	}

	return 0, false
}

// ActionFor returns the search.Action labelling a blank move in direction d.
func ActionFor(d Direction) search.Action {
	return search.Action{Name: d.String(), Priority: d.Priority()}
}

// Rows returns a copy of the board as a slice of rows.
func (b Board) Rows() [][]int {
	rows := make([][]int, Size)
	for r := range rows {
		rows[r] = append([]int(nil), b[r][:]...)
	}

	return rows
}

// String renders the board as three space-separated rows.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < Size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(byte('0' + b[r][c]))
		}
	}

	return sb.String()
}

// inversions counts pairs of non-blank tiles out of order in row-major
// reading.
func (b Board) inversions() int {
	flat := make([]int, 0, Size*Size-1)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] != Blank {
				flat = append(flat, b[r][c])
			}
		}
	}
	n := 0
	for i := range flat {
		for j := i + 1; j < len(flat); j++ {
			if flat[i] > flat[j] {
				n++
			}
		}
	}

	return n
}

// Reachable reports whether target can be reached from b by blank moves.
// On an odd-width board a move never changes the parity of the inversion
// count, and equal parity is also sufficient.
func (b Board) Reachable(target Board) bool {
	return b.inversions()%2 == target.inversions()%2
}

// MagicSquares returns the eight 3×3 magic squares over 1..9, ordered by Key.
func MagicSquares() []Board {
	loShu := Board{{4, 9, 2}, {3, 5, 7}, {8, 1, 6}}
	out := make([]Board, 0, 8)
	seen := make(map[string]struct{}, 8)
	cur := loShu
	for i := 0; i < 4; i++ {
		for _, b := range []Board{cur, cur.mirror()} {
			if _, ok := seen[b.Key()]; !ok {
				seen[b.Key()] = struct{}{}
				out = append(out, b)
			}
		}
		cur = cur.rotate()
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })

	return out
}

// ReachableGoals returns the magic squares reachable from b.
func (b Board) ReachableGoals() []Board {
	var out []Board
	for _, m := range MagicSquares() {
		if b.Reachable(m) {
			out = append(out, m)
		}
	}

	return out
}

func (b Board) rotate() Board {
	var out Board
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			out[c][Size-1-r] = b[r][c]
		}
	}

	return out
}

func (b Board) mirror() Board {
	var out Board
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			out[r][Size-1-c] = b[r][c]
		}
	}

	return out
}
