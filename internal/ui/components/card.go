// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/ui/styles"
)

// =============================================================================
// CARD COMPONENTS
// =============================================================================

// Card describes a bordered content block.
type Card struct {
	Title  string
	Lines  []string
	Footer string
	Width  int
	Active bool
	RTL    bool
}

// Render draws the card with the theme.
func (c Card) Render(t *styles.Theme) string {
	style := t.Card
	if c.Active {
		style = t.CardActive
	}
	width := c.Width
	if width < 12 {
		width = 12
	}
	inner := width - style.GetHorizontalFrameSize()
	align := styles.Align(c.RTL)

	var parts []string
	if c.Title != "" {
		parts = append(parts, t.CardTitle.Render(c.Title))
	}
	parts = append(parts, c.Lines...)
	if c.Footer != "" {
		parts = append(parts, "", c.Footer)
	}

	block := lipgloss.NewStyle().Width(inner).Align(align).Render(strings.Join(parts, "\n"))
	return style.Width(width - style.GetHorizontalBorderSize()).Render(block)
}

// StatCard draws a metric: a label, a large value and an optional caption.
func StatCard(t *styles.Theme, label, value, caption string, width int, rtl bool) string {
	lines := []string{t.CardValue.Render(value)}
	if caption != "" {
		lines = append(lines, t.Muted.Render(caption))
	}
	return Card{Title: label, Lines: lines, Width: width, RTL: rtl}.Render(t)
}

// Grid lays cards out in rows of cols cards each.
func Grid(cards []string, cols int, rtl bool) string {
	if cols < 1 {
		cols = 1
	}
	var rows []string
	for i := 0; i < len(cards); i += cols {
		end := i + cols
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, Row(rtl, cards[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// =============================================================================
// TABS
// =============================================================================

// Tabs renders a horizontal tab strip with the active tab highlighted.
func Tabs(t *styles.Theme, labels []string, active int, rtl bool) string {
	rendered := make([]string, len(labels))
	for i, l := range labels {
		if i == active {
			rendered[i] = t.TabActive.Render(l)
		} else {
			rendered[i] = t.Tab.Render(l)
		}
	}
	return Row(rtl, rendered...)
}
