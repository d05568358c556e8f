// Zamam - a bilingual business dashboard for the terminal.
//
// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import "github.com/binawad1-crypto/Zamam-AI-g/internal/cli"

func main() {
	cli.Execute()
}
