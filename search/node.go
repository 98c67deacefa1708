package search

import (
	"iter"
	"slices"
)

// Node wraps a State with the provenance needed to rebuild its path.
// Nodes are never mutated after construction; Parent is nil only for the root.
type Node struct {
	State  State
	Parent *Node
	Action Action
	Depth  int
}

// newRoot builds the start Node.
func newRoot(s State) *Node {
	return &Node{State: s, Action: StartAction}
}

// child builds the Node reached from n through t.
func (n *Node) child(t Transition) *Node {
	return &Node{State: t.State, Parent: n, Action: t.Action, Depth: n.Depth + 1}
}

// Path yields the Nodes from the root to n inclusive. The sequence is
// restartable: every range over it walks the parent chain afresh.
func (n *Node) Path() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, p := range n.Steps() {
			if !yield(p) {
				return
			}
		}
	}
}

// Steps returns the Nodes from the root to n inclusive.
// Complexity: O(depth).
func (n *Node) Steps() []*Node {
	path := make([]*Node, 0, n.Depth+1)
	for cur := n; cur != nil; cur = cur.Parent {
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path
}

// Actions returns the action labels along the path from the root to n,
// starting with StartAction.
func (n *Node) Actions() []Action {
	steps := n.Steps()
	out := make([]Action, len(steps))
	for i, p := range steps {
		out[i] = p.Action
	}

	return out
}
