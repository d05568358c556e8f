// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/ui/components"
)

// Demo account figures shown on the home page.
const (
	TokensRemaining  = 5000
	TokensTotal      = 10000
	ExecutedServices = 0
	DaysRemaining    = 30
	recommendedCount = 3
)

func renderHome(e *Env) string {
	t := e.Theme
	rtl := e.RTL()

	greeting := e.Heading(e.T("welcome"), e.T("welcomeSubtitle"))
	links := e.Block(components.Row(rtl,
		t.Muted.Render(e.T("quickLinks")),
		" ",
		t.ButtonPrimary.Render(e.T("startJourney")),
	))

	cols := cardColumns(e.Width, 26, 4)
	cardW := e.Width / cols

	meterW := cardW - t.Card.GetHorizontalFrameSize()
	tokens := components.Card{
		Title: e.T("tokensRemaining"),
		Lines: []string{
			t.CardValue.Render(components.FormatNumber(TokensRemaining)),
			t.Muted.Render(e.T("outOf") + " " + components.FormatNumber(TokensTotal)),
			t.RenderMeter(meterW, TokensRemaining, TokensTotal, rtl),
		},
		Width: cardW,
		RTL:   rtl,
	}.Render(t)

	performance := components.Card{
		Title: e.T("performance"),
		Lines: []string{
			t.Muted.Render(e.T("successRate")) + " " + t.CardValue.Render("0%"),
			t.Muted.Render(e.T("completed")) + " 0",
			t.Muted.Render(e.T("inProgress")) + " 0",
		},
		Width: cardW,
		RTL:   rtl,
	}.Render(t)

	metrics := components.Grid([]string{
		tokens,
		components.StatCard(t, e.T("activeServices"), strconv.Itoa(ExecutedServices), e.T("services"), cardW, rtl),
		components.StatCard(t, e.T("daysRemaining"), strconv.Itoa(DaysRemaining), "", cardW, rtl),
		performance,
	}, cols, rtl)

	sections := []string{greeting, "", links, "", e.Block(metrics), ""}

	lower := []string{renderPlanSummary(e, cardW), renderActivity(e, cardW)}
	sections = append(sections, e.Block(components.Grid(lower, cols, rtl)), "")
	sections = append(sections, renderRecommended(e))
	return strings.Join(sections, "\n")
}

func renderPlanSummary(e *Env, width int) string {
	t := e.Theme
	lines := []string{t.CardValue.Render(e.T("freePlan"))}
	if plan, ok := e.Session.Catalog().CurrentPlan(); ok {
		lines = []string{
			t.CardValue.Render(plan.Name.In(e.Session.Language())),
			t.Muted.Render(components.FormatNumber(plan.Tokens) + " " + e.T("tokens")),
		}
	}
	return components.Card{
		Title:  e.T("myPlan"),
		Lines:  lines,
		Footer: t.Button.Render(e.T("upgradePlan")),
		Width:  width,
		RTL:    e.RTL(),
	}.Render(t)
}

func renderActivity(e *Env, width int) string {
	t := e.Theme
	return components.Card{
		Title: e.T("recentActivity"),
		Lines: []string{t.Muted.Render(e.T("noActivity"))},
		Width: width,
		RTL:   e.RTL(),
	}.Render(t)
}

func renderRecommended(e *Env) string {
	t := e.Theme
	lang := e.Session.Language()
	tools := e.Session.Catalog().Tools()
	if len(tools) > recommendedCount {
		tools = tools[:recommendedCount]
	}

	lines := []string{e.Block(t.Title.Render(e.T("recommendedServices")))}
	for _, tool := range tools {
		cost := t.Cost.Render(strconv.Itoa(tool.TokenCost) + " " + e.T("tokens"))
		row := components.Row(e.RTL(), t.CardTitle.Render(tool.Name.In(lang)), "  ", cost)
		lines = append(lines, e.Block(row))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
