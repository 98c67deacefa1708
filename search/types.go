// Package search defines the state contract, traversal modes, tunable options
// and sentinel errors for uninformed search.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for search execution.
var (
	// ErrNilState is returned when Search is given a nil start state.
	ErrNilState = errors.New("search: start state is nil")

	// ErrUnknownMode is returned for a Mode outside {BreadthFirst, DepthFirst}.
	ErrUnknownMode = errors.New("search: unknown traversal mode")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionLimit is returned when WithMaxExpansions stops the run
	// before the frontier is exhausted.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrNoSolution is reported by (*Result).Err when the frontier was
	// exhausted without reaching a goal.
	ErrNoSolution = errors.New("search: no solution")
)

// State is one configuration of a discrete state space.
//
// Implementations must be immutable: Actions returns freshly built states and
// never mutates the receiver. Key must be equal for every two states denoting
// the same configuration; it is the only identity the engine uses.
type State interface {
	// IsGoal reports whether the state satisfies the search objective.
	IsGoal() bool

	// Key returns the canonical, representation-independent identifier.
	Key() string

	// Actions enumerates legal transitions from the state. The engine sorts
	// them by Action.Priority, so enumeration order only breaks ties.
	// A returned error aborts the search and is passed through unchanged.
	Actions() ([]Transition, error)
}

// Action labels a transition with a display name and a sort priority.
// Lower priority values are preferred.
type Action struct {
	Name     string
	Priority int
}

// StartAction is the sentinel action carried by the root Node.
var StartAction = Action{Name: "start", Priority: -1}

// IsStart reports whether a is the root sentinel.
func (a Action) IsStart() bool { return a == StartAction }

// String returns the action name.
func (a Action) String() string { return a.Name }

// Transition pairs an Action with the State it produces.
type Transition struct {
	Action Action
	State  State
}

// Mode selects the traversal discipline.
type Mode int

const (
	// BreadthFirst pops from the front of the frontier and orders actions
	// by ascending priority.
	BreadthFirst Mode = iota
	// DepthFirst pops from the back of the frontier and pushes actions by
	// descending priority, so the preferred action is still expanded first.
	DepthFirst
)

// String returns the canonical short name of m.
func (m Mode) String() string {
	switch m {
	case BreadthFirst:
		return "bfs"
	case DepthFirst:
		return "dfs"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps user input to a Mode. Matching is case-insensitive and
// accepts the short name, the long name, and the Portuguese names
// "largura" and "profundidade".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs", "breadth", "breadth-first", "breadth_first", "largura":
		return BreadthFirst, nil
	case "dfs", "depth", "depth-first", "depth_first", "profundidade":
		return DepthFirst, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Outcome is the normal termination status of a search run.
type Outcome int

const (
	// Solved means a goal state was popped and its path reconstructed.
	Solved Outcome = iota
	// Unreachable means the frontier emptied without reaching a goal.
	Unreachable
)

// String returns a lower-case name for o.
func (o Outcome) String() string {
	if o == Solved {
		return "solved"
	}

	return "unreachable"
}

// Option configures Search behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when Search is invoked.
type Option func(*Options)

// Options holds parameters and observation hooks for a search run.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per expansion.
	Ctx context.Context

	// OnExpand is called once for every Node popped from the frontier,
	// before its goal test.
	OnExpand func(n *Node)

	// OnGenerate is called once for every child Node pushed onto the frontier.
	OnGenerate func(n *Node)

	// MaxDepth, if > 0, prunes children deeper than this many actions.
	// A value of 0 disables the limit.
	MaxDepth int

	// MaxExpansions, if > 0, aborts the run with ErrExpansionLimit once this
	// many Nodes have been expanded. A value of 0 disables the limit.
	MaxExpansions int

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no-op hooks
//   - no depth or expansion limit
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnExpand:   func(*Node) {},
		OnGenerate: func(*Node) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a callback invoked per expanded Node.
func WithOnExpand(fn func(n *Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnGenerate registers a callback invoked per generated child Node.
func WithOnGenerate(fn func(n *Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGenerate = fn
		}
	}
}

// WithMaxDepth bounds the number of actions on any explored path.
//
//	d > 0: prune children deeper than d
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxExpansions bounds the number of expanded Nodes.
//
//	n > 0: stop with ErrExpansionLimit after n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// Stats counts the work done by one run.
type Stats struct {
	// Expanded is the number of Nodes popped from the frontier.
	Expanded int `json:"expanded"`
	// Generated is the number of Nodes built, root included. It always
	// equals the size of the explored set.
	Generated int `json:"generated"`
	// MaxFrontier is the largest frontier length observed.
	MaxFrontier int `json:"max_frontier"`
}

// Result holds the outcome of a search run.
type Result struct {
	Mode    Mode
	Outcome Outcome
	// Goal is the goal Node, nil when Outcome is Unreachable.
	Goal *Node
	// Path lists the Nodes from the start to Goal inclusive.
	Path  []*Node
	Stats Stats
}

// Found reports whether a goal was reached.
func (r *Result) Found() bool { return r != nil && r.Outcome == Solved }

// Err returns ErrNoSolution for an Unreachable result and nil otherwise.
func (r *Result) Err() error {
	if r.Found() {
		return nil
	}

	return ErrNoSolution
}

// Steps returns the number of actions on the path, or -1 without a solution.
func (r *Result) Steps() int {
	if !r.Found() {
		return -1
	}

	return r.Goal.Depth
}
