// stack.go

package trees

// NodeStack is a singly linked LIFO of tree node references. It stands in
// for the call stack during iterative traversal and teardown. The stack
// holds back-references only; it never owns the nodes it stores.
type NodeStack struct {
	top  *stackFrame
	size int
}

type stackFrame struct {
	node *Node
	down *stackFrame
}

// NewNodeStack returns a new empty stack.
func NewNodeStack() *NodeStack {
	return &NodeStack{}
}

// Push places node on top of the stack.
func (s *NodeStack) Push(node *Node) {
	s.top = &stackFrame{node: node, down: s.top}
	s.size++
}

// Pop removes and returns the top node. It returns ErrEmptyStack when the
// stack holds nothing.
func (s *NodeStack) Pop() (*Node, error) {
	if s.top == nil {
		return nil, ErrEmptyStack
	}
	frame := s.top
	s.top = frame.down
	s.size--
	return frame.node, nil
}

// Len reports the number of stacked references.
func (s *NodeStack) Len() int {
	return s.size
}

// Reset drops every stacked reference. The referenced tree nodes are
// untouched.
func (s *NodeStack) Reset() {
	s.top = nil
	s.size = 0
}
