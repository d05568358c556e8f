// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the Zamam packages:
// atomic file writes for the config file and display-width aware string
// helpers for mixed Arabic/Latin terminal output.
package util
