// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/ui/styles"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/util"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header is the bar above the active page: the localized view title on the
// leading side and the language toggle on the trailing side.
type Header struct {
	Title      string // localized title of the active view
	ToggleText string // name of the language the toggle switches to
	Width      int
	RTL        bool
	theme      *styles.Theme
}

// NewHeader creates a header with an 80 column default width.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{Width: 80, theme: theme}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// View renders the header.
func (h *Header) View() string {
	width := h.Width
	if width < 20 {
		width = 20
	}
	inner := width - h.theme.Header.GetHorizontalFrameSize()

	toggle := h.theme.LangToggle.Render(h.ToggleText)
	room := inner - lipgloss.Width(toggle) - 1
	title := h.theme.HeaderTitle.Render(util.TruncateWidth(h.Title, room))

	// The toggle is two lines taller than the title because of its border.
	title = lipgloss.PlaceVertical(lipgloss.Height(toggle), lipgloss.Center, title)
	return h.theme.Header.Width(width).Render(Spread(inner, title, toggle, h.RTL))
}
