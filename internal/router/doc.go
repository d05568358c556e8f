// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package router holds the view state machine of the Zamam dashboard.
//
// Every function takes a model.State by value and returns the next State.
// Nothing here performs I/O or fails: any view is reachable from any other,
// login accepts whatever credentials it is given, and logout always lands on
// the marketing page.
//
// # Usage
//
//	s := router.Initial()
//	s = router.Login(s, model.Credentials{Email: "a@b.c"})
//	s = router.Navigate(s, model.ViewTools)
//	s = router.ToggleLanguage(s)
package router
