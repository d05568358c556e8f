// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the reusable building blocks of the Zamam
dashboard: the sidebar, the header bar, cards and tab strips.

Components are plain structs with a View method, or render functions for
stateless pieces. Every component takes an RTL flag; Arabic layouts mirror
horizontally and right-align their text.

	sb := components.NewSidebar(theme)
	sb.Items = items
	sb.Active = model.ViewTools
	sb.RTL = lang.IsRTL()
	left := sb.View()
*/
package components
