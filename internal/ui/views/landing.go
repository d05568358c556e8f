// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/model"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/ui/components"
)

// logo is the block-letter brand shown on the landing page.
const logo = `
 ______  _    __  __    _    __  __
|__  / / \  |  \/  |  / \  |  \/  |
  / / / _ \ | |\/| | / _ \ | |\/| |
 / /_/ ___ \| |  | |/ ___ \| |  | |
/____/_/  \_\_|  |_/_/   \_\_|  |_|`

var landingKeys = struct {
	Start key.Binding
	Login key.Binding
}{
	Start: key.NewBinding(key.WithKeys("enter", "g"), key.WithHelp("enter", "get started")),
	Login: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "login")),
}

// Landing is the marketing page shown before sign-in.
type Landing struct {
	env *Env
}

// NewLanding creates the landing page.
func NewLanding(env *Env) *Landing {
	return &Landing{env: env}
}

func (p *Landing) Enter() tea.Cmd  { return nil }
func (p *Landing) Layout()         {}
func (p *Landing) Capturing() bool { return false }

// Update handles the two calls to action. Both lead to the login form.
func (p *Landing) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, landingKeys.Start, landingKeys.Login) {
			p.env.Session.Navigate(model.ViewLogin)
		}
	}
	return nil
}

// View renders the landing page centered in the window.
func (p *Landing) View() string {
	e, t := p.env, p.env.Theme

	brand := t.Logo.Render(strings.TrimPrefix(logo, "\n"))
	buttons := components.Row(e.RTL(),
		t.ButtonPrimary.Render("enter  "+e.T("getStarted")),
		"  ",
		t.Button.Render("l  "+e.T("login")),
	)

	body := lipgloss.JoinVertical(lipgloss.Center,
		brand,
		t.Muted.Render(e.T("brandSubtitle")),
		"",
		t.Title.Render(e.T("tagline")),
		t.Tagline.Render(e.T("subTagline")),
		"",
		buttons,
	)
	return lipgloss.Place(e.Width, e.Height, lipgloss.Center, lipgloss.Center, body)
}
