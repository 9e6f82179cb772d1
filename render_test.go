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
	"testing"

	"github.com/cybrota/treelab/trees"
)

func TestRenderSidewaysBST(t *testing.T) {
	tree := trees.NewBST()
	defer tree.Destroy()
	for _, k := range []int{5, 3, 8} {
		if err := tree.Insert(k); err != nil {
			t.Fatalf("Insert(%d) failed: %v", k, err)
		}
	}

	cfg := &RenderConfig{Indent: 4, Color: false}
	got := RenderSideways(tree, cfg)
	want := "    8\n5\n    3\n"
	if got != want {
		t.Errorf("RenderSideways = %q; want %q", got, want)
	}
}

func TestRenderSidewaysAVL(t *testing.T) {
	tree := trees.NewAVLTree()
	defer tree.Destroy()
	for _, k := range []int{10, 20, 30} {
		if err := tree.Insert(k); err != nil {
			t.Fatalf("Insert(%d) failed: %v", k, err)
		}
	}

	// One left rotation has made 20 the root by now.
	cfg := &RenderConfig{Indent: 2, Color: false}
	got := RenderSideways(tree, cfg)
	want := "  30\n20\n  10\n"
	if got != want {
		t.Errorf("RenderSideways = %q; want %q", got, want)
	}
}

func TestRenderCache(t *testing.T) {
	c := NewRenderCache()
	key := renderKey("bst", []int{5, 3, 8})

	// Initially, GetRender should return an empty string for a missing key.
	if got := GetRender(c, key); got != "" {
		t.Errorf("GetRender(%q) = %q; want empty string", key, got)
	}

	rendered := "    8\n5\n    3\n"
	CacheRender(c, key, rendered)

	if got := GetRender(c, key); got != rendered {
		t.Errorf("GetRender(%q) = %q; want %q", key, got, rendered)
	}
}

func TestRenderKeyDistinguishesOrderAndKind(t *testing.T) {
	a := renderKey("bst", []int{1, 2, 3})
	b := renderKey("bst", []int{3, 2, 1})
	c := renderKey("avl", []int{1, 2, 3})
	if a == b {
		t.Errorf("insertion order must change the cache key: %q == %q", a, b)
	}
	if a == c {
		t.Errorf("tree kind must change the cache key: %q == %q", a, c)
	}
}
