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
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"
)

const (
	// Rendered trees stay cached for 30 minutes
	renderCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	renderCacheCleanup = 5 * time.Minute
)

// depthPalette cycles as the walk descends, so sibling levels stay
// visually distinct in deep trees.
var depthPalette = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
	lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
}

// Sideways is any tree that can report its nodes right-first with depths.
// Both tree kinds satisfy it.
type Sideways interface {
	WalkSideways(fn func(key, depth int))
}

// RenderSideways draws the tree lying on its side: right subtree above,
// node at indentation proportional to its depth, left subtree below. The
// root ends up at the left margin.
func RenderSideways(tree Sideways, cfg *RenderConfig) string {
	var b strings.Builder
	tree.WalkSideways(func(key, depth int) {
		b.WriteString(strings.Repeat(" ", depth*cfg.Indent))
		line := strconv.Itoa(key)
		if cfg.Color {
			line = depthPalette[depth%len(depthPalette)].Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	})
	return b.String()
}

// NewRenderCache creates a cache sized for rendered tree output
func NewRenderCache() *cache.Cache {
	return cache.New(renderCacheExpiration, renderCacheCleanup)
}

// renderKey builds a cache key from the tree kind and the insertion
// sequence. Insertion order matters: the same multiset of keys inserted in
// a different order shapes a different unbalanced tree.
func renderKey(kind string, keys []int) string {
	parts := make([]string, 0, len(keys)+1)
	parts = append(parts, kind)
	for _, k := range keys {
		parts = append(parts, strconv.Itoa(k))
	}
	return strings.Join(parts, ",")
}

func CacheRender(c *cache.Cache, key string, rendered string) {
	// Set instead of Add so repeated renders of the same input overwrite
	c.Set(key, rendered, renderCacheExpiration)
}

func GetRender(c *cache.Cache, key string) string {
	val, ok := c.Get(key)
	if !ok {
		return ""
	}
	return val.(string)
}
