// Package graphspace exposes a hand-built directed graph as a search.State
// space. Vertices are string IDs, edges carry an action name and priority,
// and any vertex may be marked as a goal.
//
// It is the smallest useful State implementation: fixtures, unreachable
// scenarios and examples are written against it instead of a full puzzle.
//
// All methods are safe for concurrent use; edges added while a search is
// running become visible to subsequent Actions calls.
package graphspace

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/blindsearch/search"
)

// Sentinel errors for graphspace operations.
var (
	// ErrEmptyID indicates that a vertex ID is the empty string.
	ErrEmptyID = errors.New("graphspace: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graphspace: vertex not found")
)

// Edge is one outgoing transition of a vertex.
type Edge struct {
	To       string
	Name     string
	Priority int
}

// Option configures a Space before creation.
type Option func(*Space)

// WithUndirected mirrors every added edge with a reverse edge of the same
// name and priority.
func WithUndirected() Option {
	return func(s *Space) { s.undirected = true }
}

// Space is an in-memory directed graph with goal marks.
type Space struct {
	mu         sync.RWMutex
	undirected bool
	adj        map[string][]Edge
	goals      map[string]struct{}
}

// New creates an empty Space.
func New(opts ...Option) *Space {
	s := &Space{
		adj:   make(map[string][]Edge),
		goals: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// AddVertex inserts id if absent. Idempotent.
func (s *Space) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensure(id)

	return nil
}

// AddEdge adds from→to labelled name with the given priority, creating
// missing endpoints.
func (s *Space) AddEdge(from, to, name string, priority int) error {
	if from == "" || to == "" {
		return ErrEmptyID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensure(from)
	s.ensure(to)
	s.adj[from] = insertSorted(s.adj[from], Edge{To: to, Name: name, Priority: priority})
	if s.undirected && from != to {
		s.adj[to] = insertSorted(s.adj[to], Edge{To: from, Name: name, Priority: priority})
	}

	return nil
}

// MarkGoal flags id as a goal vertex.
func (s *Space) MarkGoal(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.adj[id]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	s.goals[id] = struct{}{}

	return nil
}

// HasVertex reports whether id exists.
func (s *Space) HasVertex(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.adj[id]

	return ok
}

// Vertices returns all vertex IDs in ascending order.
func (s *Space) Vertices() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.adj))
	for id := range s.adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns a copy of id's outgoing edges, sorted by priority then target.
func (s *Space) Edges(id string) ([]Edge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	es, ok := s.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return append([]Edge(nil), es...), nil
}

// State returns the search.State positioned at vertex id.
func (s *Space) State(id string) (search.State, error) {
	if !s.HasVertex(id) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return Vertex{space: s, id: id}, nil
}

// ensure creates id's adjacency slot. Caller holds the write lock.
func (s *Space) ensure(id string) {
	if _, ok := s.adj[id]; !ok {
		s.adj[id] = nil
	}
}

// insertSorted keeps edges ordered by (Priority, To, Name).
func insertSorted(es []Edge, e Edge) []Edge {
	i := sort.Search(len(es), func(i int) bool { return !edgeLess(es[i], e) })
	es = append(es, Edge{})
	copy(es[i+1:], es[i:])
	es[i] = e

	return es
}

func edgeLess(a, b Edge) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if a.To != b.To {
		return a.To < b.To
	}

	return a.Name < b.Name
}

// Vertex is a search.State bound to one vertex of a Space.
type Vertex struct {
	space *Space
	id    string
}

// ID returns the vertex identifier.
func (v Vertex) ID() string { return v.id }

// IsGoal reports whether the vertex was marked with MarkGoal.
func (v Vertex) IsGoal() bool {
	v.space.mu.RLock()
	defer v.space.mu.RUnlock()
	_, ok := v.space.goals[v.id]

	return ok
}

// Key returns the vertex ID.
func (v Vertex) Key() string { return v.id }

// Actions lists one transition per outgoing edge.
func (v Vertex) Actions() ([]search.Transition, error) {
	es, err := v.space.Edges(v.id)
	if err != nil {
		return nil, err
	}
	out := make([]search.Transition, len(es))
	for i, e := range es {
		out[i] = search.Transition{
			Action: search.Action{Name: e.Name, Priority: e.Priority},
			State:  Vertex{space: v.space, id: e.To},
		}
	}

	return out, nil
}

// String returns the vertex ID.
func (v Vertex) String() string { return v.id }
