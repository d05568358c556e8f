// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/ui/components"
)

var settingsKeys = struct {
	Left  key.Binding
	Right key.Binding
}{
	Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("left", "previous tab")),
	Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("right", "next tab")),
}

// Settings shows the settings tab menu. Only the subscription and profile
// tabs have content; the rest show the loading placeholder.
type Settings struct {
	env    *Env
	active int
}

// NewSettings creates the settings page on its first tab.
func NewSettings(env *Env) *Settings {
	return &Settings{env: env}
}

func (p *Settings) Enter() tea.Cmd  { return nil }
func (p *Settings) Layout()         {}
func (p *Settings) Capturing() bool { return false }

// ActiveTab returns the id of the selected tab.
func (p *Settings) ActiveTab() string {
	tabs := p.env.Session.Catalog().SettingsTabs()
	if len(tabs) == 0 {
		return ""
	}
	return tabs[p.active].ID
}

// Update moves between tabs. Arrow keys follow the on-screen order, which
// is mirrored in right-to-left layouts.
func (p *Settings) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	n := len(p.env.Session.Catalog().SettingsTabs())
	if n == 0 {
		return nil
	}

	step := 0
	switch {
	case key.Matches(km, settingsKeys.Left):
		step = -1
	case key.Matches(km, settingsKeys.Right):
		step = 1
	}
	if p.env.RTL() {
		step = -step
	}
	p.active = (p.active + step + n) % n
	return nil
}

// View renders the tab strip and the active tab's panel.
func (p *Settings) View() string {
	e, t := p.env, p.env.Theme
	lang := e.Session.Language()

	tabs := e.Session.Catalog().SettingsTabs()
	labels := make([]string, len(tabs))
	for i, tab := range tabs {
		labels[i] = tab.Label.In(lang)
	}

	return strings.Join([]string{
		e.Heading(e.T("settings"), e.T("settingsSubtitle")),
		"",
		e.Block(components.Tabs(t, labels, p.active, e.RTL())),
		"",
		p.panel(),
	}, "\n")
}

func (p *Settings) panel() string {
	e, t := p.env, p.env.Theme
	lang := e.Session.Language()

	switch p.ActiveTab() {
	case "subscription":
		plan, ok := e.Session.Catalog().CurrentPlan()
		if !ok {
			break
		}
		return components.Card{
			Title: e.T("currentPlan"),
			Lines: []string{
				t.CardValue.Render(plan.Name.In(lang)),
				t.Cost.Render(components.FormatNumber(plan.Tokens) + " " + e.T("smartTokens")),
			},
			Footer: t.ButtonPrimary.Render(e.T("upgradePlan")),
			Width:  e.Width,
			RTL:    e.RTL(),
		}.Render(t)
	case "profile":
		user := e.Session.State().User
		if user == nil {
			break
		}
		return components.Card{
			Title: user.Name,
			Lines: []string{t.Muted.Render(e.T("email")) + "  " + user.Email},
			Width: e.Width,
			RTL:   e.RTL(),
		}.Render(t)
	}
	return emptyState(e, e.T("loadingData"))
}
