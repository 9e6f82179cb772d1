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
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	shellwords "github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/treelab/trees"
)

// TreeView selects which tree the viewport is showing
type TreeView int

const (
	ViewBST TreeView = iota
	ViewAVL
)

const exploreCheatsheet = `
# Explorer keys

* **enter** — insert the typed keys (space-separated) into both trees
* **tab** — switch between the BST and AVL views
* **ctrl+r** — reset both trees
* **esc / ctrl+c** — quit

# What to watch for

* The BST sends equal keys **left** and never rebalances: feed it an
  ascending run and watch it degenerate into a list.
* The AVL tree sends equal keys **right** and keeps every balance factor
  in {-1, 0, 1} with four rotation cases: LL (right rotation), RR (left
  rotation), LR and RL (double rotations).
* Try ` + "`10 20 30`" + ` — the third insert triggers a single left
  rotation and 20 takes the root.
`

// Styles holds all the styling for the explorer
type Styles struct {
	BorderFocused lipgloss.Style
	BorderBlurred lipgloss.Style
	Title         lipgloss.Style
	InputPrompt   lipgloss.Style
	StatusOK      lipgloss.Style
	StatusError   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		StatusOK: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// ExplorerModel is the Bubble Tea state for the tree explorer
type ExplorerModel struct {
	ready bool

	textInput    textinput.Model
	treeViewport viewport.Model
	helpViewport viewport.Model

	bst *trees.BST
	avl *trees.AVLTree
	// insertion order so far; also the render cache key material
	insertions []int

	view        TreeView
	config      *Config
	renderCache *cache.Cache
	status      string
	statusIsErr bool

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// NewExplorerModel creates the initial model
func NewExplorerModel(config *Config) ExplorerModel {
	ti := textinput.New()
	ti.Placeholder = "Type integer keys, e.g. 5 3 8 1 4"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	treeViewport := viewport.New(0, 0)
	treeViewport.SetContent("Insert some keys to grow the tree...")

	helpViewport := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(70),
	)
	cheatsheet := exploreCheatsheet
	if glamourRenderer != nil {
		if rendered, err := glamourRenderer.Render(exploreCheatsheet); err == nil {
			cheatsheet = rendered
		}
	}
	helpViewport.SetContent(cheatsheet)

	return ExplorerModel{
		textInput:       ti,
		treeViewport:    treeViewport,
		helpViewport:    helpViewport,
		bst:             trees.NewBST(),
		avl:             trees.NewAVLTree(),
		view:            ViewAVL,
		config:          config,
		renderCache:     NewRenderCache(),
		status:          "Ready",
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
}

func (m ExplorerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentHeight := m.height - 8
		if contentHeight < 4 {
			contentHeight = 4
		}
		paneWidth := m.width/2 - 4
		if paneWidth < 20 {
			paneWidth = 20
		}
		m.treeViewport.Width = paneWidth
		m.treeViewport.Height = contentHeight
		m.helpViewport.Width = paneWidth
		m.helpViewport.Height = contentHeight
		m.refreshTreeView()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			if m.view == ViewBST {
				m.view = ViewAVL
			} else {
				m.view = ViewBST
			}
			m.refreshTreeView()
			return m, nil
		case "ctrl+r":
			m.bst.Destroy()
			m.avl.Destroy()
			m.bst = trees.NewBST()
			m.avl = trees.NewAVLTree()
			m.insertions = nil
			m.setStatus("Trees reset", false)
			m.refreshTreeView()
			return m, nil
		case "enter":
			m.insertLine(m.textInput.Value())
			m.textInput.SetValue("")
			m.refreshTreeView()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	cmds = append(cmds, cmd)
	m.treeViewport, cmd = m.treeViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// insertLine tokenizes the typed line and inserts every integer token into
// both trees, keeping their contents identical so the views compare the
// same key multiset.
func (m *ExplorerModel) insertLine(line string) {
	tokens, err := shellwords.Parse(line)
	if err != nil {
		m.setStatus(fmt.Sprintf("Cannot parse input: %v", err), true)
		return
	}
	if len(tokens) == 0 {
		return
	}
	inserted := 0
	for _, token := range tokens {
		key, err := strconv.Atoi(token)
		if err != nil {
			m.setStatus(fmt.Sprintf("Skipping %q: not an integer", token), true)
			continue
		}
		if err := m.bst.Insert(key); err != nil {
			m.setStatus(fmt.Sprintf("BST insert failed: %v", err), true)
			return
		}
		if err := m.avl.Insert(key); err != nil {
			m.setStatus(fmt.Sprintf("AVL insert failed: %v", err), true)
			return
		}
		m.insertions = append(m.insertions, key)
		inserted++
	}
	if inserted > 0 {
		m.setStatus(fmt.Sprintf("Inserted %d key(s), %d total", inserted, len(m.insertions)), false)
	}
}

func (m *ExplorerModel) setStatus(message string, isErr bool) {
	m.status = message
	m.statusIsErr = isErr
}

func (m *ExplorerModel) refreshTreeView() {
	if len(m.insertions) == 0 {
		m.treeViewport.SetContent("Insert some keys to grow the tree...")
		return
	}
	kind := "bst"
	if m.view == ViewAVL {
		kind = "avl"
	}
	key := renderKey(kind, m.insertions)
	rendered := GetRender(m.renderCache, key)
	if rendered == "" {
		if m.view == ViewAVL {
			rendered = RenderSideways(m.avl, &m.config.Render)
		} else {
			rendered = RenderSideways(m.bst, &m.config.Render)
		}
		CacheRender(m.renderCache, key, rendered)
	}
	m.treeViewport.SetContent(rendered)
}

func (m ExplorerModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	title := "Unbalanced BST (ties left, no rebalancing)"
	if m.view == ViewAVL {
		title = "AVL tree (ties right, rotation-balanced)"
	}

	treePane := m.styles.BorderFocused.Render(
		m.styles.Title.Render(title) + "\n" + m.treeViewport.View(),
	)
	helpPane := m.styles.BorderBlurred.Render(
		m.styles.Title.Render("Cheatsheet") + "\n" + m.helpViewport.View(),
	)

	statusStyle := m.styles.StatusOK
	if m.statusIsErr {
		statusStyle = m.styles.StatusError
	}

	var b strings.Builder
	b.WriteString(m.styles.InputPrompt.Render("keys> "))
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, treePane, " ", helpPane))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	return b.String()
}

// runExplorer starts the interactive explorer UI.
func runExplorer(config *Config) error {
	program := tea.NewProgram(NewExplorerModel(config), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
