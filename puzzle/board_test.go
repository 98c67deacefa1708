// File: puzzle/board_test.go
package puzzle_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blindsearch/puzzle"
	"github.com/katalvlaran/blindsearch/search"
)

func keys(bs []puzzle.Board) []string {
	out := make([]string, len(bs))
	for i, b := range bs {
		out[i] = b.Key()
	}

	return out
}

func TestNewBoard_Errors(t *testing.T) {
	tests := []struct {
		name   string
		in     [][]int
		target error
	}{
		{"nil", nil, puzzle.ErrEmptyGrid},
		{"empty row", [][]int{{}}, puzzle.ErrEmptyGrid},
		{"ragged", [][]int{{1, 2, 3}, {4, 5}, {6, 7, 8}}, puzzle.ErrNonRectangular},
		{"2x2", [][]int{{1, 2}, {3, 9}}, puzzle.ErrSize},
		{"4x3", [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}, {1, 2, 3}}, puzzle.ErrSize},
		{"duplicate", [][]int{{1, 1, 3}, {4, 5, 6}, {7, 8, 9}}, puzzle.ErrNotPermutation},
		{"zero", [][]int{{0, 2, 3}, {4, 5, 6}, {7, 8, 9}}, puzzle.ErrNotPermutation},
		{"ten", [][]int{{10, 2, 3}, {4, 5, 6}, {7, 8, 9}}, puzzle.ErrNotPermutation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := puzzle.NewBoard(tt.in)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
		})
	}
}

func TestNewBoard_CopiesInput(t *testing.T) {
	rows := [][]int{{6, 9, 8}, {7, 1, 3}, {2, 5, 4}}
	b, err := puzzle.NewBoard(rows)
	require.NoError(t, err)
	rows[0][0] = 1
	assert.Equal(t, puzzle.Default(), b)

	out := b.Rows()
	out[1][1] = 42
	assert.Equal(t, 1, b[1][1])
}

func TestParseBoard(t *testing.T) {
	for _, in := range []string{"698713254", "6 9 8 / 7 1 3 / 2 5 4", "6,9,8;7,1,3;2,5,4", "[[6,9,8],[7,1,3],[2,5,4]]"} {
		b, err := puzzle.ParseBoard(in)
		require.NoError(t, err, in)
		assert.Equal(t, puzzle.Default(), b, in)
	}

	_, err := puzzle.ParseBoard("abc")
	assert.ErrorIs(t, err, puzzle.ErrEmptyGrid)
	_, err = puzzle.ParseBoard("12345678")
	assert.ErrorIs(t, err, puzzle.ErrSize)
	_, err = puzzle.ParseBoard("123456780")
	assert.ErrorIs(t, err, puzzle.ErrNotPermutation)

	assert.Panics(t, func() { puzzle.MustParse("1") })
}

func TestBoard_KeyAndString(t *testing.T) {
	b := puzzle.Default()
	assert.Equal(t, "698713254", b.Key())
	assert.Equal(t, "6 9 8\n7 1 3\n2 5 4", b.String())
	r, c := b.Blank()
	assert.Equal(t, [2]int{0, 1}, [2]int{r, c})
}

func TestBoard_Move(t *testing.T) {
	b := puzzle.Default()
	tests := []struct {
		d    puzzle.Direction
		want string
		ok   bool
	}{
		{puzzle.Up, "698713254", false},
		{puzzle.Down, "618793254", true},
		{puzzle.Left, "968713254", true},
		{puzzle.Right, "689713254", true},
	}
	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			next, ok := b.Move(tt.d)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, next.Key())
		})
	}
	assert.Equal(t, "698713254", b.Key(), "Move never mutates the receiver")
}

// TestBoard_Actions checks legal moves and their enumeration order for a
// corner, an edge and the centre blank.
func TestBoard_Actions(t *testing.T) {
	tests := []struct {
		board string
		names []string
		keys  []string
	}{
		{"912345678", []string{"Right", "Down"}, []string{"192345678", "312945678"}},
		{"698713254", []string{"Left", "Right", "Down"}, []string{"968713254", "689713254", "618793254"}},
		{"123495678", []string{"Up", "Left", "Right", "Down"}, []string{"193425678", "123945678", "123459678", "123475698"}},
		{"123456789", []string{"Up", "Left"}, []string{"123459786", "123456798"}},
	}
	for _, tt := range tests {
		t.Run(tt.board, func(t *testing.T) {
			ts, err := puzzle.MustParse(tt.board).Actions()
			require.NoError(t, err)
			var names, ks []string
			for _, tr := range ts {
				names = append(names, tr.Action.Name)
				ks = append(ks, tr.State.Key())
			}
			assert.Equal(t, tt.names, names)
			assert.Equal(t, tt.keys, ks)
		})
	}

	_, err := puzzle.Board{}.Actions()
	assert.ErrorIs(t, err, puzzle.ErrNotPermutation)
}

func TestDirection(t *testing.T) {
	want := map[puzzle.Direction][2]any{
		puzzle.Up: {"Up", 1}, puzzle.Down: {"Down", 2}, puzzle.Left: {"Left", 3}, puzzle.Right: {"Right", 4},
	}
	for d, w := range want {
		assert.Equal(t, w[0], d.String())
		assert.Equal(t, w[1], d.Priority())
		assert.Equal(t, search.Action{Name: w[0].(string), Priority: w[1].(int)}, puzzle.ActionFor(d))
	}
	assert.Equal(t, "Direction(?)", puzzle.Direction(9).String())
}

func TestBoard_IsGoal(t *testing.T) {
	assert.False(t, puzzle.Default().IsGoal())
	assert.True(t, puzzle.MustParse("618753294").IsGoal())
	assert.True(t, puzzle.MustParse("492357816").IsGoal())
	assert.False(t, puzzle.MustParse("123456789").IsGoal())
	// rows and columns sum to 15 but the diagonals do not
	assert.False(t, puzzle.MustParse("159672834").IsGoal())
}

func TestMagicSquares(t *testing.T) {
	ms := puzzle.MagicSquares()
	assert.Equal(t, []string{
		"276951438", "294753618", "438951276", "492357816",
		"618753294", "672159834", "816357492", "834159672",
	}, keys(ms))
	for _, m := range ms {
		assert.True(t, m.IsGoal(), m.Key())
	}
}

func TestBoard_ReachableGoals(t *testing.T) {
	even := []string{"276951438", "492357816", "618753294", "834159672"}
	odd := []string{"294753618", "438951276", "672159834", "816357492"}

	assert.Equal(t, even, keys(puzzle.Default().ReachableGoals()))
	assert.Equal(t, odd, keys(puzzle.MustParse("896713254").ReachableGoals()))
	assert.True(t, puzzle.Default().Reachable(puzzle.MustParse("618753294")))
	assert.False(t, puzzle.Default().Reachable(puzzle.MustParse("294753618")))

	// BFS lands on a reachable square
	res, err := search.BFS(puzzle.MustParse("896713254"))
	require.NoError(t, err)
	assert.Contains(t, odd, res.Goal.State.Key())
}

func TestInBounds(t *testing.T) {
	assert.True(t, puzzle.InBounds(0, 0))
	assert.True(t, puzzle.InBounds(2, 2))
	assert.False(t, puzzle.InBounds(-1, 0))
	assert.False(t, puzzle.InBounds(0, 3))
}
