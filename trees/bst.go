// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package trees

// BST is the unbalanced baseline binary search tree. Every key in a node's
// left subtree is <= the node's key and every key in the right subtree is
// greater; duplicates accumulate in the left subtree of the first equal
// node. No balancing is performed, so height degenerates to O(n) on sorted
// input. Traversal and teardown therefore use explicit stacks instead of
// the call stack where depth could track n.
type BST struct {
	Root *Node
}

// NewBST returns a new empty tree.
func NewBST() *BST {
	return &BST{}
}

// Insert adds key to the tree. Equal keys descend left.
func (t *BST) Insert(key int) error {
	if t == nil {
		return ErrNilTree
	}
	slot := &t.Root
	for *slot != nil {
		if key <= (*slot).Key {
			slot = &(*slot).Left
		} else {
			slot = &(*slot).Right
		}
	}
	*slot = &Node{Key: key}
	return nil
}

// Search reports whether key is present in the tree.
func (t *BST) Search(key int) (bool, error) {
	if t == nil {
		return false, ErrNilTree
	}
	node := t.Root
	for node != nil {
		if node.Key == key {
			return true, nil
		}
		if key < node.Key {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return false, nil
}

// Delete removes one node carrying key. A node with two children is
// replaced by its in-order predecessor (the right-most node of its left
// subtree), which by construction has at most one child of its own.
// Returns ErrNotFound when no node matches.
func (t *BST) Delete(key int) error {
	if t == nil {
		return ErrNilTree
	}
	var parent *Node
	node := t.Root
	isRightChild := false
	for node != nil && node.Key != key {
		parent = node
		if key < node.Key {
			node = node.Left
			isRightChild = false
		} else {
			node = node.Right
			isRightChild = true
		}
	}
	if node == nil {
		return ErrNotFound
	}

	// Leaf or single child: splice the remaining subtree into the
	// parent's slot.
	if node.Left == nil || node.Right == nil {
		child := node.Left
		if child == nil {
			child = node.Right
		}
		t.replaceChild(parent, isRightChild, child)
		node.Left, node.Right = nil, nil
		return nil
	}

	// Two children: copy the predecessor's key up, then unlink the
	// predecessor. The predecessor has no right child, so its left
	// subtree takes its place directly.
	predParent := node
	pred := node.Left
	for pred.Right != nil {
		predParent = pred
		pred = pred.Right
	}
	node.Key = pred.Key
	if predParent.Right == pred {
		predParent.Right = pred.Left
	} else {
		predParent.Left = pred.Left
	}
	pred.Left = nil
	return nil
}

func (t *BST) replaceChild(parent *Node, isRightChild bool, child *Node) {
	switch {
	case parent == nil:
		t.Root = child
	case isRightChild:
		parent.Right = child
	default:
		parent.Left = child
	}
}

// Clear detaches every node and resets the root. The teardown is the
// two-stack technique: a discovery stack pops nodes in a pre-order-like
// sequence while pushing their children, and a second stack reverses that
// sequence so no node is released before both its children have been
// discovered. Call-stack depth stays constant even for a degenerate
// linear-height tree. Clearing an already-empty tree is a no-op.
func (t *BST) Clear() error {
	if t == nil {
		return ErrNilTree
	}
	if t.Root == nil {
		return nil
	}
	discovery := NewNodeStack()
	teardown := NewNodeStack()
	discovery.Push(t.Root)
	for discovery.Len() > 0 {
		node, err := discovery.Pop()
		if err != nil {
			return err
		}
		teardown.Push(node)
		if node.Left != nil {
			discovery.Push(node.Left)
		}
		if node.Right != nil {
			discovery.Push(node.Right)
		}
	}
	for teardown.Len() > 0 {
		node, err := teardown.Pop()
		if err != nil {
			return err
		}
		node.Left, node.Right = nil, nil
	}
	t.Root = nil
	return nil
}

// Destroy clears the tree. Calling it on a nil or already-destroyed tree
// is a safe no-op.
func (t *BST) Destroy() {
	if t == nil {
		return
	}
	_ = t.Clear()
}

// InOrder visits every key in non-decreasing order using plain recursion.
func (t *BST) InOrder(fn func(key int)) {
	if t == nil {
		return
	}
	inOrder(t.Root, fn)
}

func inOrder(node *Node, fn func(key int)) {
	if node == nil {
		return
	}
	inOrder(node.Left, fn)
	fn(node.Key)
	inOrder(node.Right, fn)
}

// InOrderIterative visits every key in non-decreasing order using an
// explicit stack: push the left spine, pop, emit, descend right. Output is
// identical to InOrder for every tree.
func (t *BST) InOrderIterative(fn func(key int)) error {
	if t == nil {
		return ErrNilTree
	}
	stack := NewNodeStack()
	current := t.Root
	for current != nil || stack.Len() > 0 {
		for current != nil {
			stack.Push(current)
			current = current.Left
		}
		node, err := stack.Pop()
		if err != nil {
			return err
		}
		fn(node.Key)
		current = node.Right
	}
	return nil
}

// WalkSideways visits right subtree, node, then left subtree, reporting
// each node's depth. Renderers rely on this order to print the tree lying
// on its side with the root at the left margin.
func (t *BST) WalkSideways(fn func(key, depth int)) {
	if t == nil {
		return
	}
	walkSideways(t.Root, 0, fn)
}

func walkSideways(node *Node, depth int, fn func(key, depth int)) {
	if node == nil {
		return
	}
	walkSideways(node.Right, depth+1, fn)
	fn(node.Key, depth)
	walkSideways(node.Left, depth+1, fn)
}
