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

// AVLTree is a height-balanced binary search tree. After every insert the
// balance factor (left height minus right height) of every node stays in
// {-1, 0, 1}, restored by single or double rotations on the way back up.
// Duplicates descend RIGHT, the opposite tie rule from BST; both rules are
// load-bearing for callers and must not be unified.
//
// The tree supports insert, traversal, and destroy. Search and delete are
// deliberately not provided: delete in particular needs its own
// rebalancing case analysis, and grafting the unbalanced tree's
// predecessor-splice delete onto this type would quietly break the balance
// invariant.
type AVLTree struct {
	Root *AVLNode
}

// NewAVLTree returns a new empty tree.
func NewAVLTree() *AVLTree {
	return &AVLTree{}
}

// Insert adds key to the tree, rebalancing as needed.
func (t *AVLTree) Insert(key int) error {
	if t == nil {
		return ErrNilTree
	}
	t.Root = t.insertRecursive(t.Root, key)
	return nil
}

func (t *AVLTree) insertRecursive(node *AVLNode, key int) *AVLNode {
	if node == nil {
		return &AVLNode{Key: key, Height: 1}
	}

	if key < node.Key {
		node.Left = t.insertRecursive(node.Left, key)
	} else {
		node.Right = t.insertRecursive(node.Right, key)
	}

	t.updateHeight(node)

	// The imbalance case is identified by where the inserted key sits
	// relative to the unbalanced node's nearer child.
	balance := t.getBalanceFactor(node)
	if balance > 1 && key < node.Left.Key {
		// Left-Left
		return t.rotateRight(node)
	}
	if balance < -1 && key > node.Right.Key {
		// Right-Right
		return t.rotateLeft(node)
	}
	if balance > 1 && key > node.Left.Key {
		// Left-Right
		node.Left = t.rotateLeft(node.Left)
		return t.rotateRight(node)
	}
	if balance < -1 && key < node.Right.Key {
		// Right-Left
		node.Right = t.rotateRight(node.Right)
		return t.rotateLeft(node)
	}

	return node
}

func (t *AVLTree) getHeight(node *AVLNode) int {
	if node == nil {
		return 0
	}
	return node.Height
}

func (t *AVLTree) updateHeight(node *AVLNode) {
	node.Height = max(t.getHeight(node.Left), t.getHeight(node.Right)) + 1
}

func (t *AVLTree) getBalanceFactor(node *AVLNode) int {
	if node == nil {
		return 0
	}
	return t.getHeight(node.Left) - t.getHeight(node.Right)
}

func (t *AVLTree) rotateLeft(node *AVLNode) *AVLNode {
	if node == nil || node.Right == nil {
		return node // Nothing to rotate
	}

	pivot := node.Right

	node.Right = pivot.Left
	pivot.Left = node

	// Child before parent: node is now below pivot.
	t.updateHeight(node)
	t.updateHeight(pivot)

	return pivot
}

func (t *AVLTree) rotateRight(node *AVLNode) *AVLNode {
	if node == nil || node.Left == nil {
		return node // Nothing to rotate
	}

	pivot := node.Left

	node.Left = pivot.Right
	pivot.Right = node

	t.updateHeight(node)
	t.updateHeight(pivot)

	return pivot
}

// InOrder visits every key in non-decreasing order. Recursion depth is
// O(log n) under the balance invariant.
func (t *AVLTree) InOrder(fn func(key int)) {
	if t == nil {
		return
	}
	avlInOrder(t.Root, fn)
}

func avlInOrder(node *AVLNode, fn func(key int)) {
	if node == nil {
		return
	}
	avlInOrder(node.Left, fn)
	fn(node.Key)
	avlInOrder(node.Right, fn)
}

// WalkSideways visits right subtree, node, then left subtree with depths,
// the order sideways renderers expect.
func (t *AVLTree) WalkSideways(fn func(key, depth int)) {
	if t == nil {
		return
	}
	avlWalkSideways(t.Root, 0, fn)
}

func avlWalkSideways(node *AVLNode, depth int, fn func(key, depth int)) {
	if node == nil {
		return
	}
	avlWalkSideways(node.Right, depth+1, fn)
	fn(node.Key, depth)
	avlWalkSideways(node.Left, depth+1, fn)
}

// Destroy releases the whole tree post-order and resets the root. Safe and
// idempotent on a nil or already-destroyed tree.
func (t *AVLTree) Destroy() {
	if t == nil {
		return
	}
	destroyAVL(t.Root)
	t.Root = nil
}

func destroyAVL(node *AVLNode) {
	if node == nil {
		return
	}
	destroyAVL(node.Left)
	destroyAVL(node.Right)
	node.Left, node.Right = nil, nil
}
