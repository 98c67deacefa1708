// Package search provides breadth-first and depth-first search over an
// abstract state space, returning the path from a start State to the first
// goal State reached.
//
// Both modes share one expansion loop and differ only in their Frontier and
// in the direction actions are sorted by priority.
package search

import (
	"context"
	"fmt"
	"slices"
	"sort"
)

// walker encapsulates mutable state of a single search run.
type walker struct {
	mode     Mode
	opts     Options
	ctx      context.Context
	frontier Frontier
	explored map[string]struct{}
	stats    Stats
}

// Search runs the traversal selected by mode from start.
//
// Exhausting the frontier is not an error: the Result then has Outcome
// Unreachable. Search returns an error for invalid input (ErrNilState,
// ErrUnknownMode, ErrOptionViolation), for context cancellation,
// for ErrExpansionLimit, and for any error returned by State.Actions,
// which is passed through unchanged.
func Search(mode Mode, start State, opts ...Option) (*Result, error) {
	if start == nil {
		return nil, ErrNilState
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	frontier, err := NewFrontier(mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", err, mode)
	}

	w := &walker{
		mode:     mode,
		opts:     o,
		ctx:      o.Ctx,
		frontier: frontier,
		explored: make(map[string]struct{}),
	}
	w.push(newRoot(start))

	goal, err := w.loop()
	if err != nil {
		return nil, err
	}

	res := &Result{Mode: mode, Outcome: Unreachable, Stats: w.stats}
	if goal != nil {
		res.Outcome = Solved
		res.Goal = goal
		res.Path = goal.Steps()
	}

	return res, nil
}

// BFS is shorthand for Search(BreadthFirst, start, opts...).
func BFS(start State, opts ...Option) (*Result, error) {
	return Search(BreadthFirst, start, opts...)
}

// DFS is shorthand for Search(DepthFirst, start, opts...).
func DFS(start State, opts ...Option) (*Result, error) {
	return Search(DepthFirst, start, opts...)
}

// push marks n's key explored and adds n to the frontier.
// Keys are marked at generation time so no State is ever pushed twice.
func (w *walker) push(n *Node) {
	w.explored[n.State.Key()] = struct{}{}
	w.stats.Generated++
	w.frontier.Push(n)
	if l := w.frontier.Len(); l > w.stats.MaxFrontier {
		w.stats.MaxFrontier = l
	}
}

// loop pops until a goal is found or the frontier is empty.
// A nil Node with a nil error means the goal is unreachable.
func (w *walker) loop() (*Node, error) {
	for w.frontier.Len() > 0 {
		// cancellation check (once per expansion)
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}
		if w.opts.MaxExpansions > 0 && w.stats.Expanded >= w.opts.MaxExpansions {
			return nil, fmt.Errorf("%w: %d expansions", ErrExpansionLimit, w.stats.Expanded)
		}

		n := w.frontier.Pop()
		w.stats.Expanded++
		w.opts.OnExpand(n)

		if n.State.IsGoal() {
			return n, nil
		}
		if err := w.expand(n); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

// expand pushes every child of n whose key has not been generated yet.
func (w *walker) expand(n *Node) error {
	if w.opts.MaxDepth > 0 && n.Depth >= w.opts.MaxDepth {
		return nil
	}
	transitions, err := n.State.Actions()
	if err != nil {
		return err
	}
	for _, t := range w.order(transitions) {
		if _, seen := w.explored[t.State.Key()]; seen {
			continue
		}
		c := n.child(t)
		w.push(c)
		w.opts.OnGenerate(c)
	}

	return nil
}

// order returns a sorted copy of ts for pushing. A queue gets ascending
// priority. A stack gets the exact reverse, because it pops in reverse push
// order: the sibling expanded next is then the same one breadth-first search
// would expand first, ties included.
func (w *walker) order(ts []Transition) []Transition {
	ts = slices.Clone(ts)
	sort.SliceStable(ts, func(i, j int) bool { return ts[i].Action.Priority < ts[j].Action.Priority })
	if w.mode == DepthFirst {
		slices.Reverse(ts)
	}

	return ts
}
