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

import (
	"sort"
	"testing"
)

var treeSortCases = []struct {
	Name  string
	Input []int
}{
	{Name: "Example", Input: []int{5, 3, 8, 1, 4}},
	{Name: "Empty", Input: nil},
	{Name: "Single", Input: []int{9}},
	{Name: "All Duplicates", Input: []int{6, 6, 6, 6, 6}},
	{Name: "Already Sorted", Input: []int{1, 2, 3, 4, 5, 6}},
	{Name: "Reverse Sorted", Input: []int{6, 5, 4, 3, 2, 1}},
	{Name: "Negatives And Duplicates", Input: []int{3, -100, 3, 489, 78, 2, 1, 4, 95, 10}},
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTreeSortExample(t *testing.T) {
	input := []int{5, 3, 8, 1, 4}
	if err := TreeSort(input); err != nil {
		t.Fatalf("TreeSort failed: %v", err)
	}
	if want := []int{1, 3, 4, 5, 8}; !equalInts(input, want) {
		t.Errorf("TreeSort = %v; want %v", input, want)
	}
}

func TestTreeSortVariantsAgree(t *testing.T) {
	for _, tc := range treeSortCases {
		t.Run(tc.Name, func(t *testing.T) {
			recursive := make([]int, len(tc.Input))
			copy(recursive, tc.Input)
			iterative := make([]int, len(tc.Input))
			copy(iterative, tc.Input)
			want := make([]int, len(tc.Input))
			copy(want, tc.Input)
			sort.Ints(want)

			if err := TreeSort(recursive); err != nil {
				t.Fatalf("TreeSort failed: %v", err)
			}
			if err := TreeSortIterative(iterative); err != nil {
				t.Fatalf("TreeSortIterative failed: %v", err)
			}

			if !equalInts(recursive, want) {
				t.Errorf("TreeSort = %v; want %v", recursive, want)
			}
			if !equalInts(iterative, recursive) {
				t.Errorf("TreeSortIterative = %v; differs from TreeSort %v", iterative, recursive)
			}
		})
	}
}

func TestTreeSortIterativeDeepInput(t *testing.T) {
	// Ascending input builds a linear-height tree, the worst case for
	// anything leaning on the call stack. The iterative variant runs its
	// traversal and teardown on explicit stacks and must come through.
	const n = 4096
	input := make([]int, n)
	for i := range input {
		input[i] = i
	}
	if err := TreeSortIterative(input); err != nil {
		t.Fatalf("TreeSortIterative failed: %v", err)
	}
	for i := range input {
		if input[i] != i {
			t.Fatalf("input[%d] = %d; want %d", i, input[i], i)
		}
	}
}

func TestTreeSortNilSlice(t *testing.T) {
	if err := TreeSort(nil); err != nil {
		t.Errorf("TreeSort(nil) = %v; want nil (empty input is sorted by nature)", err)
	}
	if err := TreeSortIterative(nil); err != nil {
		t.Errorf("TreeSortIterative(nil) = %v; want nil", err)
	}
}
