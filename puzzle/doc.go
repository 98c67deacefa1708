// Package puzzle implements the 3×3 sliding-tile puzzle whose goal is a magic
// square: every row, column and both diagonals sum to 15.
//
// What:
//
//   - Board is a value-type 3×3 grid holding 1..9 once each; 9 is the blank.
//   - A move slides the blank Up, Down, Left or Right into a neighbouring cell.
//   - Board implements search.State, so it is handed directly to search.BFS
//     or search.DFS.
//   - MagicSquares lists the eight goal boards; ReachableGoals filters them by
//     inversion parity.
//
// Action order:
//
//   - Direction priorities are Up=1, Down=2, Left=3, Right=4. Actions
//     enumerates moves by scanning tiles in row-major order, and the search
//     engine re-sorts them by priority.
//
// Complexity:
//
//   - Move, IsGoal, Key, Actions: O(1) (fixed 9 cells).
//   - The reachable component of any board holds 9!/2 = 181440 states.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows, no columns, or no digits.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrSize: grid is rectangular but not 3×3.
//   - ErrNotPermutation: cells are not exactly 1..9.
package puzzle
