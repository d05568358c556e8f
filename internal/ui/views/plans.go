// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/model"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/ui/components"
)

func renderPlans(e *Env) string {
	plans := e.Session.Catalog().Plans()
	cols := cardColumns(e.Width, 30, len(plans))
	cardW := e.Width / cols

	cards := make([]string, len(plans))
	for i, p := range plans {
		cards[i] = renderPlanCard(e, p, cardW)
	}

	t := e.Theme
	contact := components.Row(e.RTL(),
		t.Subtitle.Render(e.T("customPlanQuestion")),
		"  ",
		t.Button.Render(e.T("contactSales")),
	)

	return strings.Join([]string{
		e.Heading(e.T("plans"), e.T("plansSubtitle")),
		"",
		e.Block(components.Grid(cards, cols, e.RTL())),
		"",
		lipgloss.PlaceHorizontal(e.Width, lipgloss.Center, contact),
	}, "\n")
}

func renderPlanCard(e *Env, p model.Plan, width int) string {
	t := e.Theme
	lang := e.Session.Language()

	price := t.CardValue.Render("$"+strconv.Itoa(p.Price)) + t.Muted.Render(e.T("perMonth"))
	lines := []string{
		price,
		t.Cost.Render(components.FormatNumber(p.Tokens) + " " + e.T("smartTokens")),
		"",
	}
	for _, f := range p.Features.In(lang) {
		lines = append(lines, "- "+f)
	}

	footer := t.ButtonPrimary.Render(e.T("upgradeNow"))
	title := p.Name.In(lang)
	if p.Current {
		footer = t.BadgeActive.Render(e.T("activePlan"))
		title = title + "  " + t.Badge.Render(e.T("currentPlan"))
	}

	return components.Card{
		Title:  title,
		Lines:  lines,
		Footer: footer,
		Width:  width,
		Active: p.Current,
		RTL:    e.RTL(),
	}.Render(t)
}
