// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"github.com/spf13/cobra"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the tool catalog and assistant over MCP (stdio)",
	Long: `Run an MCP server on stdin/stdout for use by MCP clients.

Tools:
  search_tools    Search the AI tool catalog
  generate_text   One stateless prompt
  send_message    Chat with the assistant, keeping the conversation
  reset_chat      Clear the conversation

Logs go to ~/.zamam/zamam.log since stdout carries the protocol.

Example client entry:
  {"command": "zamam", "args": ["mcp"]}`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := newRunEnv(cmd, true)
		if err != nil {
			return err
		}
		defer rt.Close()
		return mcpserver.New(rt.session, version, rt.logger).Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
