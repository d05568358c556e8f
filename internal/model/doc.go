// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures shared by every Zamam layer.
//
// # Key Types
//
//   - View: the screen currently shown (landing, login, dashboard pages)
//   - Language: the UI language, Arabic (default, right-to-left) or English
//   - State: the in-memory session state (view, language, signed-in user)
//   - Turn: one entry of the chat transcript, user or assistant
//   - Tool, Plan, SettingsTab: read-only catalog records with per-language text
//
// # Usage
//
//	s := model.State{View: model.ViewLanding, Language: model.LangArabic}
//	v, err := model.ParseView("tools")
//	turn := model.NewTurn(model.RoleUser, "hello")
package model
