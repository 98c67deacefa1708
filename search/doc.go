// Package search provides uninformed breadth-first and depth-first search over
// any state space that implements the State interface.
//
// What
//
//   - Search from a start State to the first State whose IsGoal reports true.
//   - Returns a Result containing:
//   - Outcome: Solved or Unreachable (frontier exhausted, not an error)
//   - Goal:    the goal Node
//   - Path:    Nodes from start to goal inclusive
//   - Stats:   expanded / generated Nodes and peak frontier size
//   - Observation hooks:
//   - OnExpand   (once per Node popped, before the goal test)
//   - OnGenerate (once per child Node pushed)
//   - Optional bounds: MaxDepth, MaxExpansions, context cancellation.
//
// Traversal
//
//	Both modes run the same loop: pop a Node, goal-test it, then push every
//	child whose State.Key has not been seen yet. A key is marked explored when
//	its Node is generated, not when it is expanded, so no State is pushed twice
//	and the frontier never exceeds the number of distinct reachable States.
//
//	BreadthFirst pops from the front (FIFO) and pushes children in ascending
//	Action.Priority. The returned path has the fewest actions.
//
//	DepthFirst pops from the back (LIFO) and pushes children in descending
//	Action.Priority. The stack reverses them again, so along every branch the
//	lowest-priority action is expanded first, exactly as in BreadthFirst.
//	The returned path is not necessarily the shortest.
//
// Determinism
//
//	Transitions are sorted stably by priority; equal priorities keep the order
//	State.Actions produced them in. Two runs with the same start and mode
//	return identical paths.
//
// Complexity (S = distinct reachable States, A = max actions per State)
//
//   - Time:   O(S·A·log A)
//   - Memory: O(S)   (explored set, frontier, live Nodes)
//
// Usage
//
//	res, err := search.BFS(start)
//	if err != nil {
//	    // ErrNilState, ErrOptionViolation, ErrExpansionLimit, ctx.Err(),
//	    // or an error returned by State.Actions
//	}
//	if !res.Found() {
//	    // Unreachable: res.Err() == ErrNoSolution
//	}
//	for n := range res.Goal.Path() {
//	    fmt.Println(n.Action, n.State.Key())
//	}
//
// Options
//
//   - DefaultOptions():       background Context, no-op hooks, no limits.
//   - WithContext(ctx):       cancel the run between expansions.
//   - WithOnExpand(fn):       observe each expanded Node.
//   - WithOnGenerate(fn):     observe each generated Node.
//   - WithMaxDepth(d):        do not generate Nodes deeper than d (>0).
//   - WithMaxExpansions(n):   stop with ErrExpansionLimit after n expansions.
//
// The engine is single-threaded. Frontier and explored set belong to one call,
// so separate calls may run concurrently as long as their States are safe to
// share.
package search
