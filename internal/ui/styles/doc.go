// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the Zamam dashboard.

# Color System (colors.go)

All colors are lipgloss AdaptiveColor values so one palette serves dark and
light terminals:

	Purple, PurpleDeep, Indigo - brand accents
	Emerald, Amber, Rose, Sky  - semantic states
	Surface, SurfaceDim, SurfaceBright, Overlay - layered backgrounds
	TextPrimary, TextSecondary, TextMuted, TextInverse - text hierarchy

# Theme System (theme.go)

A Theme owns its own lipgloss renderer so the dark/light choice from the
configuration (ui.theme) is applied without touching global state:

	theme := styles.NewTheme(styles.ParseMode(cfg.UI.Theme))
	theme.SetSize(msg.Width, msg.Height)
	sidebar := theme.Sidebar.Width(theme.SidebarWidth()).Render(items)

Align maps the reading direction of the active language onto a lipgloss
position; Arabic pages are right-aligned.

# Animations (animations.go)

SpinnerConfig frames feed bubbles/spinner, and RenderMeter draws the token
usage bar on the home page.
*/
package styles
