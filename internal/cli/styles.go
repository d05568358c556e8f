// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Shared styles for the zamam subcommands.

package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/ui/styles"
)

// init matches the lipgloss color profile to stdout, honoring NO_COLOR and
// FORCE_COLOR.
func init() {
	lipgloss.SetColorProfile(GetColorProfile())
}

// =============================================================================
// SHARED STYLES
// =============================================================================

var (
	// TitleStyle is used for command titles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Purple).
			MarginBottom(1)

	// LabelStyle is used for field labels in key/value listings
	LabelStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary).
			Width(24)

	// ValueStyle is used for regular values
	ValueStyle = lipgloss.NewStyle().Foreground(styles.TextPrimary)

	// NameStyle is used for tool and plan names
	NameStyle = lipgloss.NewStyle().Bold(true).Foreground(styles.TextPrimary)

	// CostStyle is used for token costs and prices
	CostStyle = lipgloss.NewStyle().Foreground(styles.Amber)

	// SuccessStyle is used for confirmations
	SuccessStyle = lipgloss.NewStyle().Foreground(styles.Emerald).Bold(true)

	// ErrorStyle is used for failures
	ErrorStyle = lipgloss.NewStyle().Foreground(styles.Rose).Bold(true)

	// DimStyle is used for hints and secondary information
	DimStyle = lipgloss.NewStyle().Foreground(styles.TextMuted)

	// PromptStyle is used for the chat prompt
	PromptStyle = lipgloss.NewStyle().Foreground(styles.Purple).Bold(true)

	// SeparatorStyle is used for horizontal rules
	SeparatorStyle = lipgloss.NewStyle().Foreground(styles.Overlay)
)

// RenderSeparator renders a horizontal rule of width cells.
func RenderSeparator(width int) string {
	if width <= 0 {
		width = 40
	}
	return SeparatorStyle.Render(strings.Repeat("=", width))
}

// RenderLabel renders a fixed-width label.
func RenderLabel(label string) string {
	return LabelStyle.Render(label)
}
