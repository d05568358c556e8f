// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import "github.com/binawad1-crypto/Zamam-AI-g/internal/model"

// =============================================================================
// TRANSITIONS
// =============================================================================

// Initial returns the state a new session starts in.
func Initial() model.State {
	return model.State{
		View:     model.ViewLanding,
		Language: model.DefaultLanguage,
	}
}

// Navigate sets the current view. The last call wins.
func Navigate(s model.State, target model.View) model.State {
	s.View = target
	return s
}

// SetLanguage sets the display language. Only rendering changes; text that
// was already produced (chat turns) is left as it was.
func SetLanguage(s model.State, lang model.Language) model.State {
	s.Language = lang
	return s
}

// ToggleLanguage flips between Arabic and English.
func ToggleLanguage(s model.State) model.State {
	s.Language = s.Language.Toggle()
	return s
}

// Login assigns the placeholder user and opens the dashboard.
// Credentials are collected by the form but never checked.
func Login(s model.State, _ model.Credentials) model.State {
	s.User = model.MockUser()
	s.View = model.ViewDashboard
	return s
}

// Logout clears the user and returns to the landing page.
func Logout(s model.State) model.State {
	s.User = nil
	s.View = model.ViewLanding
	return s
}

// =============================================================================
// LAYOUT QUERIES
// =============================================================================

// InShell reports whether the view is drawn inside the dashboard shell
// (sidebar and header). Landing and login are full-screen.
func InShell(v model.View) bool {
	return v != model.ViewLanding && v != model.ViewLogin
}

// SidebarViews returns the sidebar menu entries in display order.
func SidebarViews() []model.View {
	return []model.View{
		model.ViewDashboard,
		model.ViewProjects,
		model.ViewPlans,
		model.ViewTools,
		model.ViewChat,
		model.ViewSaved,
		model.ViewSettings,
	}
}

// TitleKey returns the translation key used for the header title of a view.
// Views without a dedicated title fall back to the dashboard title.
func TitleKey(v model.View) string {
	if InShell(v) {
		return v.Key()
	}
	return model.ViewDashboard.Key()
}
