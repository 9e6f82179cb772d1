// stack_test.go

package trees

import (
	"errors"
	"testing"
)

func TestNodeStackLIFO(t *testing.T) {
	stack := NewNodeStack()
	nodes := []*Node{{Key: 1}, {Key: 2}, {Key: 3}}
	for _, n := range nodes {
		stack.Push(n)
	}
	if stack.Len() != 3 {
		t.Fatalf("Len = %d; want 3", stack.Len())
	}

	for i := len(nodes) - 1; i >= 0; i-- {
		got, err := stack.Pop()
		if err != nil {
			t.Fatalf("Pop failed: %v", err)
		}
		if got != nodes[i] {
			t.Errorf("Pop = %+v; want node with key %d", got, nodes[i].Key)
		}
	}
	if stack.Len() != 0 {
		t.Errorf("Len after draining = %d; want 0", stack.Len())
	}
}

func TestNodeStackPopEmpty(t *testing.T) {
	stack := NewNodeStack()
	if _, err := stack.Pop(); !errors.Is(err, ErrEmptyStack) {
		t.Errorf("Pop on empty stack: err = %v; want ErrEmptyStack", err)
	}
}

func TestNodeStackReset(t *testing.T) {
	stack := NewNodeStack()
	node := &Node{Key: 7, Left: &Node{Key: 5}}
	stack.Push(node)
	stack.Push(node.Left)

	stack.Reset()
	if stack.Len() != 0 {
		t.Errorf("Len after Reset = %d; want 0", stack.Len())
	}
	// The stack never owns its nodes; the tree structure is untouched.
	if node.Left == nil || node.Left.Key != 5 {
		t.Errorf("referenced nodes were modified by Reset")
	}
}
