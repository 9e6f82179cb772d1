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

// Package sorting implements the study sorting algorithms: tree sort in a
// recursive and an explicitly stacked iterative variant, and a
// buffer-based top-down merge sort.
package sorting

import "github.com/cybrota/treelab/trees"

// TreeSort sorts a in place into non-decreasing order by loading every
// element into an unbalanced binary search tree and writing the in-order
// traversal back. Fewer than two elements is a no-op. On a non-nil error
// the slice contents are unspecified: elements may already have moved into
// the discarded tree.
func TreeSort(a []int) error {
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
	i := 0
	tree.InOrder(func(key int) {
		a[i] = key
		i++
	})
	return nil
}
