// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/model"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/session"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/ui/styles"
)

// =============================================================================
// SHARED ENVIRONMENT
// =============================================================================

// Env is the state every page renders from. The root model owns it and
// updates the size and theme in place.
type Env struct {
	Session *session.Session
	Theme   *styles.Theme
	Ctx     context.Context

	// Markdown renders assistant replies through glamour.
	Markdown bool

	// Width and Height describe the area the page may draw in.
	Width  int
	Height int
}

// RTL reports whether the current language reads right to left.
func (e *Env) RTL() bool {
	return e.Session.Language().IsRTL()
}

// T translates key into the current language.
func (e *Env) T(key string) string {
	return e.Session.T(key)
}

// Context returns the context provider calls run under.
func (e *Env) Context() context.Context {
	if e.Ctx == nil {
		return context.Background()
	}
	return e.Ctx
}

// Block aligns a multi-line block to the reading edge of the page.
func (e *Env) Block(s string) string {
	return lipgloss.PlaceHorizontal(e.Width, styles.Align(e.RTL()), s)
}

// Heading renders a page title with its subtitle.
func (e *Env) Heading(title, subtitle string) string {
	t := e.Theme
	lines := []string{e.Block(t.Title.Render(title))}
	if subtitle != "" {
		lines = append(lines, e.Block(t.Subtitle.Render(subtitle)))
	}
	return strings.Join(lines, "\n")
}

// =============================================================================
// PAGE CONTRACT
// =============================================================================

// Page is one screen of the dashboard.
type Page interface {
	// Enter runs when the page becomes active.
	Enter() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	// Layout recomputes sizes after a resize, theme or language change.
	Layout()
	// Capturing reports whether printable keys belong to the page.
	Capturing() bool
}

// UseToolMsg asks the root model to open the chat with a tool preselected.
type UseToolMsg struct {
	Tool model.Tool
}

// staticPage renders from the Env alone and ignores input.
type staticPage struct {
	env    *Env
	render func(*Env) string
}

func (p staticPage) Enter() tea.Cmd         { return nil }
func (p staticPage) Update(tea.Msg) tea.Cmd { return nil }
func (p staticPage) View() string           { return p.render(p.env) }
func (p staticPage) Layout()                {}
func (p staticPage) Capturing() bool        { return false }

// Pages builds one page per view.
func Pages(env *Env) map[model.View]Page {
	return map[model.View]Page{
		model.ViewLanding:   NewLanding(env),
		model.ViewLogin:     NewLogin(env),
		model.ViewDashboard: staticPage{env: env, render: renderHome},
		model.ViewProjects:  staticPage{env: env, render: renderProjects},
		model.ViewPlans:     staticPage{env: env, render: renderPlans},
		model.ViewTools:     NewTools(env),
		model.ViewChat:      NewChat(env),
		model.ViewSaved:     staticPage{env: env, render: renderSaved},
		model.ViewSettings:  NewSettings(env),
	}
}

// cardColumns returns how many cards of at least minWidth fit in width, up
// to limit.
func cardColumns(width, minWidth, limit int) int {
	cols := width / minWidth
	if cols < 1 {
		return 1
	}
	if cols > limit {
		return limit
	}
	return cols
}
