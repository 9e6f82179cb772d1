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

package main

import (
	"strconv"

	"github.com/willf/bloom"

	"github.com/cybrota/treelab/trees"
)

const (
	// Bits per expected key; 10 bits with 5 hashes keeps the false
	// positive rate around 1%.
	bloomBitsPerKey = 10
	bloomHashes     = 5
)

// KeyIndex pairs a bloom filter with the search tree. The filter answers
// definite misses in O(1) without touching the tree; only possible hits
// descend into the tree, which can be linear-height in the worst case.
type KeyIndex struct {
	filter *bloom.BloomFilter
	tree   *trees.BST
}

// NewKeyIndex creates an index sized for roughly expectedKeys entries.
func NewKeyIndex(expectedKeys uint) *KeyIndex {
	if expectedKeys == 0 {
		expectedKeys = 1
	}
	return &KeyIndex{
		filter: bloom.New(expectedKeys*bloomBitsPerKey, bloomHashes),
		tree:   trees.NewBST(),
	}
}

// Insert records key in both the filter and the tree.
func (ix *KeyIndex) Insert(key int) error {
	ix.filter.AddString(strconv.Itoa(key))
	return ix.tree.Insert(key)
}

// Contains reports whether key was inserted. A negative filter answer is
// authoritative; a positive one is confirmed against the tree.
func (ix *KeyIndex) Contains(key int) (bool, error) {
	if !ix.filter.TestString(strconv.Itoa(key)) {
		return false, nil
	}
	return ix.tree.Search(key)
}

// Tree exposes the underlying search tree, e.g. for rendering.
func (ix *KeyIndex) Tree() *trees.BST {
	return ix.tree
}
