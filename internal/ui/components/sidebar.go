// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/model"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/ui/styles"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/util"
)

// =============================================================================
// SIDEBAR COMPONENT
// =============================================================================

// SidebarItem is one navigation entry.
type SidebarItem struct {
	View  model.View
	Label string
}

// Sidebar renders the dashboard navigation column. Entries are numbered
// from 1 so the shortcut key is visible next to each label.
type Sidebar struct {
	Brand       string
	Subtitle    string
	Items       []SidebarItem
	Active      model.View
	LogoutLabel string
	LogoutKey   string
	Width       int
	Height      int
	RTL         bool
	theme       *styles.Theme
}

// NewSidebar creates an empty sidebar.
func NewSidebar(theme *styles.Theme) *Sidebar {
	return &Sidebar{Width: 24, theme: theme}
}

// View renders the sidebar.
func (s *Sidebar) View() string {
	t := s.theme
	inner := s.Width - t.Sidebar.GetHorizontalFrameSize()
	if inner < 6 {
		inner = 6
	}
	align := styles.Align(s.RTL)

	line := func(style lipgloss.Style, text string) string {
		room := inner - style.GetHorizontalFrameSize()
		return style.Width(inner).Align(align).Render(util.TruncateWidth(text, room))
	}

	var lines []string
	lines = append(lines, line(t.SidebarBrand.MarginBottom(0), s.Brand))
	if s.Subtitle != "" {
		lines = append(lines, line(t.Muted, s.Subtitle))
	}
	lines = append(lines, "")

	for i, item := range s.Items {
		style := t.SidebarItem
		if item.View == s.Active {
			style = t.SidebarItemActive
		}
		lines = append(lines, line(style, numbered(i+1, item.Label, s.RTL)))
	}

	if s.LogoutLabel != "" {
		label := s.LogoutLabel
		if s.LogoutKey != "" {
			label = numberedKey(s.LogoutKey, label, s.RTL)
		}
		lines = append(lines, "", line(t.SidebarLogout, label))
	}

	body := strings.Join(lines, "\n")
	style := t.Sidebar.Width(s.Width)
	if s.Height > 0 {
		style = style.Height(s.Height - t.Sidebar.GetVerticalFrameSize())
	}
	return style.Render(body)
}

func numbered(n int, label string, rtl bool) string {
	return numberedKey(strconv.Itoa(n), label, rtl)
}

func numberedKey(k, label string, rtl bool) string {
	if rtl {
		return label + " " + k
	}
	return k + " " + label
}
