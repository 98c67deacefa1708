package search

// Frontier is the ordered collection of Nodes waiting to be expanded.
// Breadth-first and depth-first search differ only in which Frontier they use.
type Frontier interface {
	Push(n *Node)
	// Pop removes and returns the next Node. It must not be called on an
	// empty Frontier.
	Pop() *Node
	Len() int
}

// queue is a FIFO Frontier.
type queue struct {
	items []*Node
	head  int
}

func newQueue(capacity int) *queue {
	return &queue{items: make([]*Node, 0, capacity)}
}

func (q *queue) Push(n *Node) { q.items = append(q.items, n) }

func (q *queue) Pop() *Node {
	n := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	// compact once the dead prefix dominates the backing array
	if q.head > 64 && q.head*2 >= len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}

	return n
}

func (q *queue) Len() int { return len(q.items) - q.head }

// stack is a LIFO Frontier.
type stack struct {
	items []*Node
}

func newStack(capacity int) *stack {
	return &stack{items: make([]*Node, 0, capacity)}
}

func (s *stack) Push(n *Node) { s.items = append(s.items, n) }

func (s *stack) Pop() *Node {
	last := len(s.items) - 1
	n := s.items[last]
	s.items[last] = nil
	s.items = s.items[:last]

	return n
}

func (s *stack) Len() int { return len(s.items) }

// NewFrontier returns the Frontier matching mode: a queue for BreadthFirst,
// a stack for DepthFirst.
func NewFrontier(mode Mode) (Frontier, error) {
	switch mode {
	case BreadthFirst:
		return newQueue(16), nil
	case DepthFirst:
		return newStack(16), nil
	default:
		return nil, ErrUnknownMode
	}
}
