// Package blindsearch is an uninformed search toolkit: breadth-first and
// depth-first search over any discrete state space, shipped with the 3×3
// magic-square sliding puzzle as its reference domain.
//
// What is in the box?
//
//	search/      State contract, Node/path reconstruction, Frontier (queue
//	              and stack), BFS and DFS sharing one expansion loop
//	puzzle/      the 3×3 board: 9 is the blank, the goal is a magic square
//	              (every row, column and diagonal sums to 15)
//	graphspace/  hand-built directed graphs exposed as search States
//	cmd/         the blindsearch CLI (solve, compare, version)
//	examples/    runnable programs
//
// Why uninformed search?
//
//   - Breadth-first search returns a path with the fewest moves.
//   - Depth-first search trades that guarantee for a frontier that grows
//     with depth instead of breadth.
//   - Both are deterministic: actions are tried in priority order
//     (Up, Down, Left, Right for the puzzle) so every run reproduces the
//     same path.
//
// Quick start:
//
//	res, err := search.BFS(puzzle.Default())
//	if err != nil { ... }
//	for n := range res.Goal.Path() {
//		fmt.Println(n.Action, n.State.Key())
//	}
//
// or from a shell:
//
//	go run ./cmd/blindsearch solve --mode bfs --show
package blindsearch
