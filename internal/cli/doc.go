// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the zamam command tree.
//
// Running zamam with no subcommand opens the dashboard. The subcommands give
// scripted access to the same pieces:
//
//	zamam                       Open the dashboard
//	zamam ask <prompt>          One stateless prompt, printed as Markdown
//	zamam chat                  Line-editing chat REPL
//	zamam tools [query]         Search the AI tool catalog
//	zamam plans                 List subscription plans
//	zamam config show|get|set|path|keys
//	zamam mcp                   Serve the catalog and assistant over MCP
//	zamam version
//
// Global flags:
//
//	-v, --verbose   Debug logging
//	    --lang      ar or en, overrides the configured language
//	    --config    Config file to read instead of ~/.zamam/config.toml
//
// Output styling follows the terminal: colors are dropped when stdout is
// not a TTY or NO_COLOR is set, and FORCE_COLOR turns them back on.
package cli
