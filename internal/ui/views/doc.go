// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package views implements the Zamam dashboard pages.
//
// Every page satisfies Page and reads its data from the shared Env, whose
// Session is the only place state changes. Pages with text inputs (login,
// tools search, chat) report Capturing so the root model routes printable
// keys to them instead of treating them as shortcuts.
//
// # Pages
//
//   - Landing: brand, tagline and the way into the login form
//   - Login: email and password fields; any input signs in
//   - Home: token meter, usage metrics, current plan, recommended tools
//   - Projects, Saved: empty-state listings
//   - Plans: the pricing cards from the catalog
//   - Tools: live search over the tool catalog
//   - Chat: transcript viewport, input line and a spinner while waiting
//   - Settings: the settings tab menu
package views
