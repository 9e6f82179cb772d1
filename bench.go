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
	"math/rand"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/treelab/sorting"
)

type benchResult struct {
	algo    string
	size    int
	elapsed time.Duration
}

// runBench times every sorting algorithm on a shared random input per
// size. Each algorithm gets its own copy, so earlier runs cannot hand
// later ones pre-sorted (adversarial for tree sort) data.
func runBench(sizes []int) {
	algos := []string{algoTree, algoTreeIter, algoMerge}

	bar := progressbar.NewOptions(len(sizes)*len(algos),
		progressbar.OptionSetDescription("⏱ Sorting..."),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
	)

	var results []benchResult
	for _, size := range sizes {
		input := make([]int, size)
		for i := range input {
			input[i] = rand.Intn(size * 10)
		}
		for _, algo := range algos {
			work := make([]int, len(input))
			copy(work, input)

			start := time.Now()
			var err error
			switch algo {
			case algoTree:
				err = sorting.TreeSort(work)
			case algoTreeIter:
				err = sorting.TreeSortIterative(work)
			case algoMerge:
				sorting.MergeSort(work)
			}
			elapsed := time.Since(start)
			if err != nil {
				fmt.Printf("\n%s failed on n=%d: %v\n", algo, size, err)
				continue
			}
			results = append(results, benchResult{algo: algo, size: size, elapsed: elapsed})
			bar.Add(1)
		}
	}

	fmt.Println()
	for _, r := range results {
		fmt.Printf("%-10s n=%-8d %14s\n", r.algo, r.size, r.elapsed)
	}
}
