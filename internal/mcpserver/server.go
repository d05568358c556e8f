// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package mcpserver exposes the Zamam tool catalog and the AI assistant to
// MCP clients over stdio.
//
// The server wraps a single session, so send_message calls share one chat
// transcript until reset_chat is called.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/catalog"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/logging"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/model"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/session"
)

// ServerName identifies this server to MCP clients.
const ServerName = "zamam"

// ErrBusy is reported when send_message arrives while a reply is pending.
var ErrBusy = errors.New("a reply is still pending")

// Server hosts the MCP server.
type Server struct {
	mcpServer *server.MCPServer
	session   *session.Session
	logger    *log.Logger
}

// New creates a configured MCP server around s.
func New(s *session.Session, version string, logger *log.Logger) *Server {
	srv := &Server{
		mcpServer: server.NewMCPServer(
			ServerName,
			version,
			server.WithToolCapabilities(false),
		),
		session: s,
		logger:  logging.Or(logger),
	}
	srv.mcpServer.AddTools(srv.tools()...)
	return srv
}

// Serve runs the server on stdin/stdout until the client disconnects.
func (s *Server) Serve() error {
	if s == nil || s.mcpServer == nil {
		return errors.New("MCP server is not configured")
	}
	s.logger.Info("MCP_START", "session", s.session.ID()[:8])
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

// tools lists every tool with its handler.
func (s *Server) tools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("search_tools",
				mcp.WithDescription("Searches the Zamam AI tool catalog by name or description. An empty query lists every tool."),
				mcp.WithString("query", mcp.Description("Case-insensitive text to look for")),
				mcp.WithString("lang",
					mcp.Description("Language to match and answer in"),
					mcp.Enum(string(model.LangArabic), string(model.LangEnglish)),
				),
			),
			Handler: s.searchToolsHandler,
		},
		{
			Tool: mcp.NewTool("generate_text",
				mcp.WithDescription("Runs a single stateless prompt through the AI model."),
				mcp.WithString("prompt", mcp.Required(), mcp.Description("The prompt text")),
			),
			Handler: s.generateTextHandler,
		},
		{
			Tool: mcp.NewTool("send_message",
				mcp.WithDescription("Sends a message to the Zamam assistant. The conversation so far is included."),
				mcp.WithString("message", mcp.Required(), mcp.Description("The message to send")),
			),
			Handler: s.sendMessageHandler,
		},
		{
			Tool: mcp.NewTool("reset_chat",
				mcp.WithDescription("Clears the assistant conversation."),
			),
			Handler: s.resetChatHandler,
		},
	}
}

func (s *Server) searchToolsHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lang := s.session.Language()
	if raw := request.GetString("lang", ""); raw != "" {
		parsed, err := model.ParseLanguage(raw)
		if err != nil {
			return mcp.NewToolResultErrorFromErr("invalid lang", err), nil
		}
		lang = parsed
	}

	query := request.GetString("query", "")
	found := catalog.Filter(s.session.Catalog().Tools(), query, lang)
	s.logger.Debug("MCP_SEARCH_TOOLS", "query", query, "lang", lang, "hits", len(found))
	if len(found) == 0 {
		return mcp.NewToolResultText(s.session.Bundle().T(lang, "noToolsFound")), nil
	}

	var sb strings.Builder
	for _, t := range found {
		fmt.Fprintf(&sb, "- %s [%s] (%d %s): %s\n",
			t.Name.In(lang), t.ID, t.TokenCost,
			s.session.Bundle().T(lang, "tokens"), t.Description.In(lang))
	}
	return mcp.NewToolResultText(strings.TrimRight(sb.String(), "\n")), nil
}

func (s *Server) generateTextHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prompt, err := request.RequireString("prompt")
	if err != nil {
		return mcp.NewToolResultError("prompt is required"), nil
	}
	if strings.TrimSpace(prompt) == "" {
		return mcp.NewToolResultError("prompt cannot be empty"), nil
	}
	return mcp.NewToolResultText(s.session.Assistant().GenerateText(ctx, prompt)), nil
}

func (s *Server) sendMessageHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("message is required"), nil
	}
	if strings.TrimSpace(message) == "" {
		return mcp.NewToolResultError("message cannot be empty"), nil
	}
	res, ok := s.session.SendChat(ctx, message)
	if !ok {
		return mcp.NewToolResultErrorFromErr("message rejected", ErrBusy), nil
	}
	if res.Err != nil {
		return mcp.NewToolResultError(res.Text), nil
	}
	return mcp.NewToolResultText(res.Text), nil
}

func (s *Server) resetChatHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.session.ClearChat()
	return mcp.NewToolResultText("Conversation cleared."), nil
}
