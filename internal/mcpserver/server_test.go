// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package mcpserver

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/assistant"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/gemini"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/logging"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/model"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/session"
)

// fakeProvider records calls and answers with fixed text.
type fakeProvider struct {
	reply   string
	err     error
	prompts []string
	chats   []gemini.ChatRequest
}

func (f *fakeProvider) GenerateText(_ context.Context, _ string, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func (f *fakeProvider) Chat(_ context.Context, req gemini.ChatRequest) (string, error) {
	f.chats = append(f.chats, req)
	return f.reply, f.err
}

func newServer(t *testing.T, p *fakeProvider, lang model.Language) *Server {
	t.Helper()
	a := assistant.New(p, assistant.WithLogger(logging.Discard()))
	s := session.New(a, session.WithLanguage(lang), session.WithLogger(logging.Discard()))
	return New(s, "test", logging.Discard())
}

func callTool(t *testing.T, srv *Server, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	var tool *server.ServerTool
	for _, st := range srv.tools() {
		if st.Tool.Name == name {
			tool = &st
			break
		}
	}
	require.NotNil(t, tool, "tool %s not registered", name)

	res, err := tool.Handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestNew_RegistersTools(t *testing.T) {
	srv := newServer(t, &fakeProvider{}, model.LangEnglish)

	var names []string
	for _, st := range srv.tools() {
		names = append(names, st.Tool.Name)
	}
	assert.Equal(t, []string{"search_tools", "generate_text", "send_message", "reset_chat"}, names)
	assert.NotNil(t, srv.mcpServer)
}

func TestServe_RequiresConfiguredServer(t *testing.T) {
	var nilServer *Server
	assert.Error(t, nilServer.Serve())
	assert.Error(t, (&Server{}).Serve())
}

// =============================================================================
// SEARCH
// =============================================================================

func TestSearchTools_EmptyQueryListsCatalog(t *testing.T) {
	srv := newServer(t, &fakeProvider{}, model.LangEnglish)

	res := callTool(t, srv, "search_tools", nil)
	assert.False(t, res.IsError)
	text := resultText(t, res)
	assert.Contains(t, text, "Pro Link Analyzer")
	assert.Contains(t, text, "Audio Transcriber")
}

func TestSearchTools_CaseInsensitive(t *testing.T) {
	srv := newServer(t, &fakeProvider{}, model.LangEnglish)

	text := resultText(t, callTool(t, srv, "search_tools", map[string]any{"query": "LINK"}))
	assert.Contains(t, text, "Pro Link Analyzer")
	assert.NotContains(t, text, "Audio Transcriber")
}

func TestSearchTools_LanguageArgument(t *testing.T) {
	srv := newServer(t, &fakeProvider{}, model.LangEnglish)

	res := callTool(t, srv, "search_tools", map[string]any{"query": "zzz", "lang": "ar"})
	assert.False(t, res.IsError)
	assert.Equal(t, srv.session.Bundle().T(model.LangArabic, "noToolsFound"), resultText(t, res))

	res = callTool(t, srv, "search_tools", map[string]any{"lang": "!!"})
	assert.True(t, res.IsError)
}

// =============================================================================
// GENERATE
// =============================================================================

func TestGenerateText(t *testing.T) {
	p := &fakeProvider{reply: "a poem"}
	srv := newServer(t, p, model.LangEnglish)

	res := callTool(t, srv, "generate_text", map[string]any{"prompt": "write a poem"})
	assert.False(t, res.IsError)
	assert.Equal(t, "a poem", resultText(t, res))
	assert.Equal(t, []string{"write a poem"}, p.prompts)
	assert.Empty(t, srv.session.Transcript())
}

func TestGenerateText_Failures(t *testing.T) {
	p := &fakeProvider{err: errors.New("quota")}
	srv := newServer(t, p, model.LangEnglish)

	assert.Equal(t, assistant.GenerateApology,
		resultText(t, callTool(t, srv, "generate_text", map[string]any{"prompt": "x"})))

	assert.True(t, callTool(t, srv, "generate_text", nil).IsError)
	assert.True(t, callTool(t, srv, "generate_text", map[string]any{"prompt": "  "}).IsError)
	assert.Len(t, p.prompts, 1)
}

// =============================================================================
// CHAT
// =============================================================================

func TestSendMessage_KeepsConversation(t *testing.T) {
	p := &fakeProvider{reply: "hi there"}
	srv := newServer(t, p, model.LangEnglish)

	res := callTool(t, srv, "send_message", map[string]any{"message": "hello"})
	assert.False(t, res.IsError)
	assert.Equal(t, "hi there", resultText(t, res))

	callTool(t, srv, "send_message", map[string]any{"message": "again"})
	require.Len(t, p.chats, 2)
	assert.Len(t, p.chats[1].History, 2)
	assert.Equal(t, assistant.SystemInstruction, p.chats[1].SystemInstruction)
	assert.Len(t, srv.session.Transcript(), 4)
}

func TestSendMessage_Failure(t *testing.T) {
	p := &fakeProvider{err: errors.New("boom")}
	srv := newServer(t, p, model.LangEnglish)

	res := callTool(t, srv, "send_message", map[string]any{"message": "hello"})
	assert.True(t, res.IsError)
	assert.Equal(t, assistant.ChatApology, resultText(t, res))
	assert.Empty(t, srv.session.Transcript())
}

func TestSendMessage_RejectsBlankAndBusy(t *testing.T) {
	p := &fakeProvider{reply: "x"}
	srv := newServer(t, p, model.LangEnglish)

	assert.True(t, callTool(t, srv, "send_message", map[string]any{"message": " "}).IsError)

	require.True(t, srv.session.BeginSend("pending"))
	res := callTool(t, srv, "send_message", map[string]any{"message": "hello"})
	assert.True(t, res.IsError)
	srv.session.CompleteSend()

	assert.Empty(t, p.chats)
}

func TestResetChat(t *testing.T) {
	p := &fakeProvider{reply: "ok"}
	srv := newServer(t, p, model.LangEnglish)

	callTool(t, srv, "send_message", map[string]any{"message": "hello"})
	require.Len(t, srv.session.Transcript(), 2)

	res := callTool(t, srv, "reset_chat", nil)
	assert.False(t, res.IsError)
	assert.Empty(t, srv.session.Transcript())
}
