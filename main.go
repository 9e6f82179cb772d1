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
	"log"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/cybrota/treelab/sorting"
	"github.com/cybrota/treelab/trees"
)

const (
	algoTree     = "tree"
	algoTreeIter = "tree-iter"
	algoMerge    = "merge"
)

func formatKeys(keys []int) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, " ")
}

func loadConfigOrDefault() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		config = &defaultConfig
	}
	return config
}

func main() {
	asciiLogo := `
████████╗██████╗ ███████╗███████╗██╗      █████╗ ██████╗
╚══██╔══╝██╔══██╗██╔════╝██╔════╝██║     ██╔══██╗██╔══██╗
   ██║   ██████╔╝█████╗  █████╗  ██║     ███████║██████╔╝
   ██║   ██╔══██╗██╔══╝  ██╔══╝  ██║     ██╔══██║██╔══██╗
   ██║   ██║  ██║███████╗███████╗███████╗██║  ██║██████╔╝
   ╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝╚══════╝╚═╝  ╚═╝╚═════╝
Search trees and the sorts built on them, side by side in your terminal [Version: %s]

Copyright @ Naren Yellavula

`

	asciiLogo = fmt.Sprintf(asciiLogo, version)

	var cmdBST = &cobra.Command{
		Use:   "bst <n> <k1> .. <kn>",
		Short: "Build an unbalanced BST and print it sideways",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Bst inserts the keys in order (ties go left) and prints the tree lying on its side`),
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			keys, err := parseCountedArgs(args)
			if err != nil {
				log.Fatalf("%v", err)
			}
			if len(keys) == 0 {
				return
			}
			config := loadConfigOrDefault()
			tree := trees.NewBST()
			defer tree.Destroy()
			for _, k := range keys {
				if err := tree.Insert(k); err != nil {
					log.Fatalf("Failed to insert into BST: %v", err)
				}
			}
			fmt.Print(RenderSideways(tree, &config.Render))
		},
	}

	var cmdAVL = &cobra.Command{
		Use:   "avl <n> <k1> .. <kn>",
		Short: "Build an AVL tree and print it sideways",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Avl inserts the keys in order (ties go right), rebalancing after every insert`),
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			keys, err := parseCountedArgs(args)
			if err != nil {
				log.Fatalf("%v", err)
			}
			if len(keys) == 0 {
				return
			}
			config := loadConfigOrDefault()
			tree := trees.NewAVLTree()
			defer tree.Destroy()
			for _, k := range keys {
				if err := tree.Insert(k); err != nil {
					log.Fatalf("Failed to insert into AVL tree: %v", err)
				}
			}
			fmt.Print(RenderSideways(tree, &config.Render))
		},
	}

	var cmdSort = &cobra.Command{
		Use:   "sort <n> <k1> .. <kn>",
		Short: "Sort a sequence with tree sort or merge sort",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Sort reorders the keys in non-decreasing order and prints them space-separated`),
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			keys, err := parseCountedArgs(args)
			if err != nil {
				log.Fatalf("%v", err)
			}
			config := loadConfigOrDefault()
			algo := cmd.Flag("algo").Value.String()
			if algo == "" {
				algo = config.Sort.Algorithm
			}
			switch algo {
			case algoTree:
				err = sorting.TreeSort(keys)
			case algoTreeIter:
				err = sorting.TreeSortIterative(keys)
			case algoMerge:
				sorting.MergeSort(keys)
			default:
				log.Fatalf("Unknown algorithm %q (want %s, %s or %s)", algo, algoTree, algoTreeIter, algoMerge)
			}
			if err != nil {
				log.Fatalf("Sort failed: %v", err)
			}
			output := formatKeys(keys)
			fmt.Println(output)
			if copyOut, _ := cmd.Flags().GetBool("copy"); copyOut {
				if err := clipboard.WriteAll(output); err != nil {
					log.Printf("Failed to copy result to clipboard: %v", err)
				}
			}
		},
	}
	cmdSort.Flags().String("algo", "", "sorting algorithm: tree, tree-iter or merge (default from config)")
	cmdSort.Flags().Bool("copy", false, "copy the sorted output to the clipboard")

	var cmdSearch = &cobra.Command{
		Use:   "search <key> <n> <k1> .. <kn>",
		Short: "Look a key up in a BST behind a bloom-filter fast path",
		Args:  cobra.MinimumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			target, err := strconv.Atoi(args[0])
			if err != nil {
				log.Fatalf("Invalid search key: %s", args[0])
			}
			keys, err := parseCountedArgs(args[1:])
			if err != nil {
				log.Fatalf("%v", err)
			}
			index := NewKeyIndex(uint(len(keys)))
			for _, k := range keys {
				if err := index.Insert(k); err != nil {
					log.Fatalf("Failed to index key %d: %v", k, err)
				}
			}
			found, err := index.Contains(target)
			if err != nil {
				log.Fatalf("Search failed: %v", err)
			}
			if found {
				fmt.Printf("%d: found\n", target)
			} else {
				fmt.Printf("%d: not found\n", target)
			}
		},
	}

	var cmdExplore = &cobra.Command{
		Use:   "explore",
		Short: "Interactively grow a BST and an AVL tree side by side",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Explore opens a terminal UI: type keys, watch both trees restructure`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			if err := runExplorer(config); err != nil {
				log.Fatalf("Explorer error: %v", err)
			}
		},
	}

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Time the sorting algorithms across configured input sizes",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			runBench(config.Bench.Sizes)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print the treelab usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the treelab guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdConfigInit = &cobra.Command{
		Use:   "init",
		Short: "Write the default ~/.treelab.yaml",
		Run: func(cmd *cobra.Command, args []string) {
			if err := createDefaultConfigFile(); err != nil {
				log.Fatalf("%v", err)
			}
			path, _ := getConfigPath()
			fmt.Printf("Wrote %s\n", path)
		},
	}

	var cmdConfig = &cobra.Command{
		Use:   "config",
		Short: "Manage treelab configuration",
	}
	cmdConfig.AddCommand(cmdConfigInit)

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print treelab version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "treelab",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the explorer when no subcommand is provided
			config := loadConfigOrDefault()
			if err := runExplorer(config); err != nil {
				log.Fatalf("Explorer error: %v", err)
			}
		},
	}
	rootCmd.AddCommand(cmdBST, cmdAVL, cmdSort, cmdSearch, cmdExplore, cmdBench, cmdUsage, cmdConfig, cmdVersion)
	rootCmd.Execute()
}
