// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownView is returned by ParseView for names outside the View set.
var ErrUnknownView = errors.New("unknown view")

// =============================================================================
// VIEW TYPE
// =============================================================================

// View identifies the screen being displayed.
type View int

const (
	ViewLanding View = iota
	ViewLogin
	ViewDashboard
	ViewProjects
	ViewTools
	ViewChat
	ViewSaved
	ViewSettings
	ViewPlans
)

var viewNames = [...]string{
	ViewLanding:   "LANDING",
	ViewLogin:     "LOGIN",
	ViewDashboard: "DASHBOARD",
	ViewProjects:  "PROJECTS",
	ViewTools:     "TOOLS",
	ViewChat:      "CHAT",
	ViewSaved:     "SAVED",
	ViewSettings:  "SETTINGS",
	ViewPlans:     "PLANS",
}

// AllViews returns every view in declaration order.
func AllViews() []View {
	views := make([]View, len(viewNames))
	for i := range viewNames {
		views[i] = View(i)
	}
	return views
}

// String returns the upper-case view name.
func (v View) String() string {
	if v.Valid() {
		return viewNames[v]
	}
	return fmt.Sprintf("View(%d)", int(v))
}

// Valid reports whether v is one of the declared views.
func (v View) Valid() bool {
	return v >= ViewLanding && int(v) < len(viewNames)
}

// Key returns the translation key of the view title, e.g. "dashboard".
func (v View) Key() string {
	return strings.ToLower(v.String())
}

// ParseView converts a view name to a View. Matching is case-insensitive.
func ParseView(name string) (View, error) {
	name = strings.TrimSpace(name)
	for i, n := range viewNames {
		if strings.EqualFold(n, name) {
			return View(i), nil
		}
	}
	return ViewLanding, fmt.Errorf("%w: %q", ErrUnknownView, name)
}

// MarshalText implements encoding.TextMarshaler.
func (v View) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownView, int(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *View) UnmarshalText(text []byte) error {
	parsed, err := ParseView(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
