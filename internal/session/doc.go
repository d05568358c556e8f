// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the single interactive Zamam session.
//
// A Session combines the router state, the chat assistant, the tool search
// query and the "sending" flag. The presentation layers (TUI, REPL, MCP)
// call its intent methods and read its view data; they never touch the
// router or the assistant directly.
//
// # Sending
//
// Only one chat request may be in flight. BeginSend rejects blank text and
// rejects a second send while the first is outstanding; CompleteSend clears
// the flag. SendChat does all three steps for synchronous callers.
package session
