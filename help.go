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
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Treelab %s**

A study bench for classic search trees and the sorts built on them.
Grow a plain binary search tree next to its AVL sibling and watch where
the rotations earn their keep.

Built with Go %s

# 1. Features
* Visualize any integer sequence as an unbalanced BST or an AVL tree, printed sideways
* Sort with tree sort (recursive or stack-based iterative) or merge sort
* Interactive explorer: insert keys one line at a time and watch both trees restructure
* Membership lookups with a bloom-filter fast path in front of the tree
* Benchmark the sorting algorithms across configurable input sizes

# 2. Argument convention
Commands taking a sequence use the counted form: the first number declares
the element count, followed by exactly that many keys.

    treelab bst 10 3 10 2 1 -100 4 95 3 489 78

# 3. Configuration
Optional settings live in ~/.treelab.yaml (render indent and color,
default sort algorithm, benchmark sizes). Run 'treelab config init' to
write the defaults.

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}
