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

package sorting

import "github.com/cybrota/treelab/trees"

// TreeSortIterative sorts a in place exactly like TreeSort but without
// call-stack recursion anywhere: the in-order traversal runs on an
// explicit node stack (push the left spine, pop, emit, descend right) and
// the tree teardown uses the tree's two-stack clear. The output is
// identical to TreeSort for every input. The unbalanced tree can reach
// height n on sorted input, which is precisely why the traversal must not
// lean on the call stack.
func TreeSortIterative(a []int) error {
	if len(a) < 2 {
		return nil
	}
	tree := trees.NewBST()
	defer tree.Destroy()
	for _, v := range a {
		if err := tree.Insert(v); err != nil {
			return err
		}
	}

	stack := trees.NewNodeStack()
	current := tree.Root
	i := 0
	for current != nil || stack.Len() > 0 {
		for current != nil {
			stack.Push(current)
			current = current.Left
		}
		node, err := stack.Pop()
		if err != nil {
			return err
		}
		a[i] = node.Key
		i++
		current = node.Right
	}
	return nil
}
