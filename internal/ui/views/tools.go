// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/model"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/ui/components"
)

var toolKeys = struct {
	Up    key.Binding
	Down  key.Binding
	Use   key.Binding
	Clear key.Binding
}{
	Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("up", "previous tool")),
	Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("down", "next tool")),
	Use:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "use now")),
	Clear: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
}

// Tools is the tool catalog with its live search box. Every keystroke is
// pushed into the session, which does the filtering.
type Tools struct {
	env    *Env
	search textinput.Model
	cursor int
}

// NewTools creates the tools page.
func NewTools(env *Env) *Tools {
	in := textinput.New()
	in.Prompt = "/ "
	in.CharLimit = 100
	return &Tools{env: env, search: in}
}

func (p *Tools) Capturing() bool { return true }

// Enter focuses the search box, keeping any previous query.
func (p *Tools) Enter() tea.Cmd {
	p.search.SetValue(p.env.Session.ToolQuery())
	p.search.CursorEnd()
	p.Layout()
	return p.search.Focus()
}

// Layout sizes the search box and refreshes the placeholder language.
func (p *Tools) Layout() {
	p.search.Placeholder = p.env.T("searchTools")
	w := p.env.Width - 6
	if w < 10 {
		w = 10
	}
	p.search.Width = w
}

// Selected returns the highlighted tool among the current matches.
func (p *Tools) Selected() (model.Tool, bool) {
	tools := p.env.Session.FilteredTools()
	if len(tools) == 0 {
		return model.Tool{}, false
	}
	return tools[p.clamp(len(tools))], true
}

func (p *Tools) clamp(n int) int {
	if p.cursor >= n {
		p.cursor = n - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
	return p.cursor
}

// Update routes keys to the cursor or the search box.
func (p *Tools) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, toolKeys.Up):
			p.cursor--
			return nil
		case key.Matches(msg, toolKeys.Down):
			p.cursor++
			return nil
		case key.Matches(msg, toolKeys.Use):
			if tool, ok := p.Selected(); ok {
				return func() tea.Msg { return UseToolMsg{Tool: tool} }
			}
			return nil
		case key.Matches(msg, toolKeys.Clear):
			p.search.Reset()
			p.env.Session.SetToolQuery("")
			p.cursor = 0
			return nil
		}
	}

	var cmd tea.Cmd
	before := p.search.Value()
	p.search, cmd = p.search.Update(msg)
	if v := p.search.Value(); v != before {
		p.env.Session.SetToolQuery(v)
		p.cursor = 0
	}
	return cmd
}

// View renders the search box and the matching tools.
func (p *Tools) View() string {
	e, t := p.env, p.env.Theme
	tools := e.Session.FilteredTools()
	lang := e.Session.Language()

	box := t.InputActive.Width(e.Width - t.InputActive.GetHorizontalBorderSize()).Render(p.search.View())
	sections := []string{e.Heading(e.T("tools"), e.T("subTagline")), "", box, ""}

	if len(tools) == 0 {
		sections = append(sections, emptyState(e, e.T("noToolsFound")))
		return strings.Join(sections, "\n")
	}

	cols := cardColumns(e.Width, 34, 2)
	cardW := e.Width / cols
	cur := p.clamp(len(tools))

	cards := make([]string, len(tools))
	for i, tool := range tools {
		cost := t.Cost.Render(strconv.Itoa(tool.TokenCost) + " " + e.T("tokens"))
		button := t.Button
		if i == cur {
			button = t.ButtonPrimary
		}
		footer := components.Row(e.RTL(), t.Badge.Render(string(tool.Category)), " ", cost, "  ", button.Render(e.T("useNow")))
		cards[i] = components.Card{
			Title:  tool.Name.In(lang),
			Lines:  []string{t.Subtitle.Render(tool.Description.In(lang))},
			Footer: footer,
			Width:  cardW,
			Active: i == cur,
			RTL:    e.RTL(),
		}.Render(t)
	}
	sections = append(sections, e.Block(components.Grid(cards, cols, e.RTL())))
	return strings.Join(sections, "\n")
}
