// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Mode selects the palette half used for AdaptiveColor values.
type Mode string

const (
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
	ModeAuto  Mode = "auto"
)

// ParseMode maps a config value onto a Mode. Unknown values mean auto.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeDark, ModeLight:
		return Mode(s)
	default:
		return ModeAuto
	}
}

// Theme contains every style used by the dashboard.
type Theme struct {
	Mode         Mode
	IsDark       bool
	ColorProfile termenv.Profile

	// Terminal dimensions, updated on resize.
	Width  int
	Height int

	renderer *lipgloss.Renderer

	// ==========================================================================
	// LANDING AND LOGIN
	// ==========================================================================

	Logo        lipgloss.Style
	Tagline     lipgloss.Style
	Panel       lipgloss.Style
	PanelTitle  lipgloss.Style
	FieldLabel  lipgloss.Style
	Input       lipgloss.Style
	InputActive lipgloss.Style

	// ==========================================================================
	// SHELL
	// ==========================================================================

	Sidebar           lipgloss.Style
	SidebarBrand      lipgloss.Style
	SidebarItem       lipgloss.Style
	SidebarItemActive lipgloss.Style
	SidebarLogout     lipgloss.Style
	Header            lipgloss.Style
	HeaderTitle       lipgloss.Style
	LangToggle        lipgloss.Style
	Content           lipgloss.Style

	// ==========================================================================
	// CONTENT
	// ==========================================================================

	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Muted         lipgloss.Style
	Card          lipgloss.Style
	CardActive    lipgloss.Style
	CardTitle     lipgloss.Style
	CardValue     lipgloss.Style
	Cost          lipgloss.Style
	Badge         lipgloss.Style
	BadgeActive   lipgloss.Style
	Button        lipgloss.Style
	ButtonPrimary lipgloss.Style
	Tab           lipgloss.Style
	TabActive     lipgloss.Style
	ProgressFill  lipgloss.Style
	ProgressTrack lipgloss.Style

	// ==========================================================================
	// CHAT
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	Speaker         lipgloss.Style
	Spinner         lipgloss.Style
	Thinking        lipgloss.Style
	Notice          lipgloss.Style

	// ==========================================================================
	// FOOTER
	// ==========================================================================

	Help    lipgloss.Style
	HelpKey lipgloss.Style
}

// NewTheme creates a theme for stdout in the given mode.
func NewTheme(mode Mode) *Theme {
	return NewThemeFor(os.Stdout, mode)
}

// NewThemeFor creates a theme whose colors are resolved against w.
func NewThemeFor(w io.Writer, mode Mode) *Theme {
	r := lipgloss.NewRenderer(w)
	isDark := r.HasDarkBackground()
	switch mode {
	case ModeDark:
		isDark = true
	case ModeLight:
		isDark = false
	default:
		mode = ModeAuto
	}
	r.SetHasDarkBackground(isDark)

	t := &Theme{
		Mode:         mode,
		IsDark:       isDark,
		ColorProfile: r.ColorProfile(),
		renderer:     r,
	}
	t.initStyles()
	return t
}

// Renderer exposes the lipgloss renderer the styles were built with.
func (t *Theme) Renderer() *lipgloss.Renderer {
	return t.renderer
}

// GlamourStyle names the glamour standard style matching the palette.
func (t *Theme) GlamourStyle() string {
	if t.IsDark {
		return "dark"
	}
	return "light"
}

func (t *Theme) initStyles() {
	s := t.renderer.NewStyle

	// Landing and login
	t.Logo = s().Bold(true).Foreground(Purple)
	t.Tagline = s().Foreground(TextSecondary).Italic(true)
	t.Panel = s().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(1, 3)
	t.PanelTitle = s().Bold(true).Foreground(TextPrimary)
	t.FieldLabel = s().Foreground(TextSecondary)
	t.Input = s().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)
	t.InputActive = t.Input.BorderForeground(Purple)

	// Shell
	t.Sidebar = s().
		Background(SurfaceDim).
		Padding(1, 1)
	t.SidebarBrand = s().Bold(true).Foreground(Purple).MarginBottom(1)
	t.SidebarItem = s().Foreground(TextSecondary).Padding(0, 1)
	t.SidebarItemActive = s().
		Foreground(TextInverse).
		Background(Purple).
		Bold(true).
		Padding(0, 1)
	t.SidebarLogout = s().Foreground(Rose).Padding(0, 1)
	t.Header = s().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Overlay).
		Padding(0, 1)
	t.HeaderTitle = s().Bold(true).Foreground(TextPrimary)
	t.LangToggle = s().
		Foreground(Purple).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)
	t.Content = s().Padding(1, 2)

	// Content
	t.Title = s().Bold(true).Foreground(TextPrimary)
	t.Subtitle = s().Foreground(TextSecondary)
	t.Muted = s().Foreground(TextMuted)
	t.Card = s().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 2)
	t.CardActive = t.Card.BorderForeground(Purple)
	t.CardTitle = s().Bold(true).Foreground(TextPrimary)
	t.CardValue = s().Bold(true).Foreground(Purple)
	t.Cost = s().Foreground(Amber)
	t.Badge = s().Foreground(TextSecondary).Background(Overlay).Padding(0, 1)
	t.BadgeActive = s().Foreground(TextInverse).Background(Emerald).Bold(true).Padding(0, 1)
	t.Button = s().
		Foreground(TextPrimary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 2)
	t.ButtonPrimary = s().
		Foreground(TextInverse).
		Background(Purple).
		Bold(true).
		Padding(0, 2)
	t.Tab = s().Foreground(TextSecondary).Padding(0, 1)
	t.TabActive = s().Foreground(Purple).Bold(true).Underline(true).Padding(0, 1)
	t.ProgressFill = s().Foreground(Purple)
	t.ProgressTrack = s().Foreground(Overlay)

	// Chat
	t.UserBubble = s().
		Foreground(UserBubbleFg).
		Background(UserBubbleBg).
		Padding(0, 2)
	t.AssistantBubble = s().
		Foreground(AssistantBubbleFg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(AssistantBubbleBorder).
		Padding(0, 1)
	t.Speaker = s().Foreground(TextMuted).Bold(true)
	t.Spinner = s().Foreground(Purple)
	t.Thinking = s().Foreground(TextSecondary).Italic(true)
	t.Notice = s().Foreground(Rose).Bold(true)

	// Footer
	t.Help = s().Foreground(TextMuted)
	t.HelpKey = s().Foreground(Purple).Bold(true)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// SidebarWidth is the column count reserved for the sidebar.
func (t *Theme) SidebarWidth() int {
	switch t.GetLayoutMode() {
	case LayoutNarrow:
		return 14
	case LayoutMedium:
		return 20
	default:
		return 26
	}
}

// ContentWidth is the width left for the active page.
func (t *Theme) ContentWidth() int {
	w := t.Width - t.SidebarWidth()
	if w < 20 {
		return 20
	}
	return w
}

// Align returns the horizontal position text should take for the reading
// direction.
func Align(rtl bool) lipgloss.Position {
	if rtl {
		return lipgloss.Right
	}
	return lipgloss.Left
}
