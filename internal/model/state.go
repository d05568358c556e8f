// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// User is the signed-in identity shown in the dashboard shell.
type User struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// MockUser returns the placeholder identity assigned on login.
func MockUser() *User {
	return &User{
		Email: "user@zamam.ai",
		Name:  "Zamam User",
	}
}

// Credentials are whatever the login form collected. They are not checked.
type Credentials struct {
	Email    string
	Password string
}

// State is the in-memory application state of one session.
type State struct {
	View     View     `json:"view"`
	Language Language `json:"language"`
	User     *User    `json:"user,omitempty"`
}

// LoggedIn reports whether a user is set.
func (s State) LoggedIn() bool {
	return s.User != nil
}
