// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/ui/components"
)

// emptyState renders a centered placeholder card.
func emptyState(e *Env, lines ...string) string {
	t := e.Theme
	styled := make([]string, len(lines))
	for i, l := range lines {
		if i == 0 {
			styled[i] = t.CardTitle.Render(l)
		} else {
			styled[i] = t.Muted.Render(l)
		}
	}
	inner := e.Width - t.Card.GetHorizontalFrameSize()
	body := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center).
		Render("\n" + strings.Join(styled, "\n") + "\n")
	return t.Card.Width(e.Width - t.Card.GetHorizontalBorderSize()).Render(body)
}

func renderProjects(e *Env) string {
	t := e.Theme
	top := components.Spread(e.Width,
		t.Title.Render(e.T("myProjects")),
		t.ButtonPrimary.Render(e.T("newProject")),
		e.RTL(),
	)
	return strings.Join([]string{
		top,
		e.Block(t.Subtitle.Render(e.T("projectsSubtitle"))),
		"",
		e.Block(t.CardTitle.Render(e.Session.Tf("projectsCount", 0))),
		emptyState(e, e.T("noProjects")),
		lipgloss.PlaceHorizontal(e.Width, lipgloss.Center, t.Muted.Render(e.Session.Tf("pagination", 1, 1))),
	}, "\n")
}

func renderSaved(e *Env) string {
	return strings.Join([]string{
		e.Heading(e.T("saved"), e.T("savedSubtitle")),
		"",
		emptyState(e, e.T("noSaved"), e.T("noSavedHint")),
	}, "\n")
}
