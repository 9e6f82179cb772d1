// node.go

package trees

// Node is an element of the unbalanced binary search tree. A node
// exclusively owns both of its subtrees; nil means absence.
type Node struct {
	Key   int
	Left  *Node
	Right *Node
}

// AVLNode is an element of the AVL tree. Height is 1 for a leaf and
// 1 + max(child heights) otherwise; a nil subtree counts as height 0.
type AVLNode struct {
	Key    int
	Height int
	Left   *AVLNode
	Right  *AVLNode
}
