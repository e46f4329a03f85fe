package layout

import (
	"github.com/raitom/teacup/maybe"
)

// ContextStack records the nodes currently being configured by nested
// blocks. Its top is the attachment point for new subviews.
//
// A ContextStack belongs to exactly one builder and is not safe for
// concurrent use.
type ContextStack struct {
	nodes []Node
}

// Push makes node the current attachment point.
func (s *ContextStack) Push(node Node) {
	s.nodes = append(s.nodes, node)
	tracer().Debugf("context stack: push %v, depth=%d", node, len(s.nodes))
}

// Pop removes the most recently pushed node. Popping an empty stack is a
// programming error and panics with ErrStackUnderflow.
func (s *ContextStack) Pop() {
	if len(s.nodes) == 0 {
		tracer().Errorf("layout: pop without matching push")
		panic(ErrStackUnderflow)
	}
	s.nodes[len(s.nodes)-1] = nil
	s.nodes = s.nodes[:len(s.nodes)-1]
	tracer().Debugf("context stack: pop, depth=%d", len(s.nodes))
}

// Top returns the most recently pushed node, or Nothing if the stack is empty.
func (s *ContextStack) Top() maybe.Maybe[Node] {
	if len(s.nodes) == 0 {
		return maybe.Nothing[Node]()
	}
	return maybe.Just(s.nodes[len(s.nodes)-1])
}

// Depth returns the number of nodes on the stack.
func (s *ContextStack) Depth() int {
	return len(s.nodes)
}

// Within pushes node, calls f and pops node again, whether f returns
// normally, returns an error or panics.
func (s *ContextStack) Within(node Node, f func() error) error {
	s.Push(node)
	defer s.Pop()
	return f()
}
