// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/assistant"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/config"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/gemini"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/logging"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/model"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/session"
)

// =============================================================================
// HELPERS
// =============================================================================

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

// resetFlags restores every flag to its default. Cobra keeps parsed values,
// including --help and --version, between Execute calls.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// setup isolates the Zamam home directory and the AI provider.
func setup(t *testing.T, p *fakeProvider) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("ZAMAM_HOME", home)
	for _, k := range []string{"GEMINI_API_KEY", "API_KEY", "ZAMAM_LANG", "ZAMAM_MODEL", "ZAMAM_RPM"} {
		t.Setenv(k, "")
	}
	ForceColorsEnabled(false)

	old := newProvider
	newProvider = func(*config.Config, *log.Logger) gemini.Provider { return p }
	resetFlags(rootCmd)
	t.Cleanup(func() {
		newProvider = old
		resetFlags(rootCmd)
		logging.SetDefault(logging.Discard())
	})
	return home
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	if args == nil {
		args = []string{}
	}
	resetFlags(rootCmd)
	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(""))
	err := rootCmd.Execute()
	return ansi.Strip(stdout.String()), err
}

// =============================================================================
// ROOT COMMAND
// =============================================================================

func TestRootCommand(t *testing.T) {
	setup(t, &fakeProvider{})

	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "dev (commit: unknown")

	out, err = execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "zamam chat")
	for _, sub := range []string{"ask", "chat", "tools", "plans", "config", "mcp", "version"} {
		assert.Contains(t, out, sub)
	}

	_, err = execute(t, "bogus")
	assert.Error(t, err)
}

func TestRootCommand_DashboardNeedsTerminal(t *testing.T) {
	if IsTTY() {
		t.Skip("stdin is a terminal")
	}
	setup(t, &fakeProvider{})

	_, err := execute(t)
	var ttyErr *TTYRequiredError
	require.ErrorAs(t, err, &ttyErr)
	assert.Equal(t, "open the dashboard", ttyErr.Operation)

	_, err = execute(t, "chat")
	require.ErrorAs(t, err, &ttyErr)
}

func TestRootCommand_InvalidLanguage(t *testing.T) {
	setup(t, &fakeProvider{})
	_, err := execute(t, "plans", "--lang", "not a tag!")
	assert.ErrorContains(t, err, "invalid --lang")
}

// =============================================================================
// ASK
// =============================================================================

func TestAsk(t *testing.T) {
	p := &fakeProvider{reply: "**Zamam** helps you grow"}
	setup(t, p)

	out, err := execute(t, "ask", "write", "a", "tagline")
	require.NoError(t, err)
	assert.Equal(t, "**Zamam** helps you grow\n", out)
	assert.Equal(t, []string{"write a tagline"}, p.prompts)
	assert.Empty(t, p.chats)
}

func TestAsk_Failures(t *testing.T) {
	p := &fakeProvider{err: errors.New("quota")}
	setup(t, p)

	out, err := execute(t, "ask", "hello")
	require.NoError(t, err)
	assert.Equal(t, assistant.GenerateApology+"\n", out)

	p.err = nil
	out, err = execute(t, "ask", "hello")
	require.NoError(t, err)
	assert.Equal(t, assistant.NoResponse+"\n", out)
}

func TestAsk_RequiresPrompt(t *testing.T) {
	p := &fakeProvider{reply: "x"}
	setup(t, p)

	_, err := execute(t, "ask", "  ")
	assert.ErrorContains(t, err, "prompt is required")
	assert.Empty(t, p.prompts)
}

func TestAsk_ReadsStdin(t *testing.T) {
	if IsTTY() {
		t.Skip("stdin is a terminal")
	}
	p := &fakeProvider{reply: "ok"}
	setup(t, p)

	var stdout bytes.Buffer
	rootCmd.SetArgs([]string{"ask"})
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader("summarize our pricing\n"))
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, []string{"summarize our pricing"}, p.prompts)
}

func TestAsk_Markdown(t *testing.T) {
	p := &fakeProvider{reply: "# Plan\n\nGrow **fast**"}
	setup(t, p)
	ForceColorsEnabled(true)

	out, err := execute(t, "ask", "plan")
	require.NoError(t, err)
	plain := ansi.Strip(out)
	assert.Contains(t, plain, "Plan")
	assert.Contains(t, plain, "Grow fast")
	assert.NotContains(t, plain, "**")

	out, err = execute(t, "ask", "--raw", "plan")
	require.NoError(t, err)
	assert.Equal(t, p.reply+"\n", out)
}

// =============================================================================
// TOOLS AND PLANS
// =============================================================================

func TestTools(t *testing.T) {
	setup(t, &fakeProvider{})

	out, err := execute(t, "tools", "LINK", "--lang", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "Pro Link Analyzer")
	assert.Contains(t, out, "150 tokens")
	assert.NotContains(t, out, "Audio Transcriber")

	out, err = execute(t, "tools", "zzz", "--lang", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "No matching tools")
}

func TestTools_DefaultsToArabic(t *testing.T) {
	setup(t, &fakeProvider{})

	out, err := execute(t, "tools")
	require.NoError(t, err)
	assert.Contains(t, out, "محلل الروابط الاحترافي")
	assert.Contains(t, out, "مولد الصور الذكي")
}

func TestTools_JSON(t *testing.T) {
	setup(t, &fakeProvider{})

	out, err := execute(t, "tools", "--json", "--lang", "en", "--category", "image")
	require.NoError(t, err)

	var resp struct {
		Success bool       `json:"success"`
		Command string     `json:"command"`
		Data    []ToolData `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "tools", resp.Command)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Smart Image Generator", resp.Data[0].Name)
	assert.Equal(t, "image", resp.Data[0].Category)
}

func TestTools_UnknownCategory(t *testing.T) {
	setup(t, &fakeProvider{})
	_, err := execute(t, "tools", "--category", "music")
	assert.ErrorContains(t, err, "unknown category")
}

func TestPlans(t *testing.T) {
	setup(t, &fakeProvider{})

	out, err := execute(t, "plans", "--lang", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "Free Plan")
	assert.Contains(t, out, "$29/month")
	assert.Contains(t, out, "25,000 smart tokens")
	assert.Contains(t, out, "Your Current Plan")
	assert.Contains(t, out, "- Priority execution")
}

func TestPlans_JSON(t *testing.T) {
	setup(t, &fakeProvider{})

	out, err := execute(t, "plans", "--json", "--lang", "ar")
	require.NoError(t, err)

	var resp struct {
		Data []PlanData `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Data, 3)
	assert.Equal(t, "الباقة المجانية", resp.Data[0].Name)
	assert.True(t, resp.Data[0].Current)
	assert.False(t, resp.Data[1].Current)
}

// =============================================================================
// CONFIG
// =============================================================================

func TestConfig_SetGetShow(t *testing.T) {
	home := setup(t, &fakeProvider{})
	path := filepath.Join(home, "config.toml")

	out, err := execute(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	out, err = execute(t, "config", "set", "language", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "language = en")
	require.FileExists(t, path)

	out, err = execute(t, "config", "get", "language")
	require.NoError(t, err)
	assert.Equal(t, "en\n", out)

	out, err = execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, `language = "en"`)
	assert.Contains(t, out, "[gemini]")

	// The saved language now drives the listings.
	out, err = execute(t, "tools", "link")
	require.NoError(t, err)
	assert.Contains(t, out, "Pro Link Analyzer")
}

func TestConfig_APIKeyIsRedacted(t *testing.T) {
	home := setup(t, &fakeProvider{})

	out, err := execute(t, "config", "set", "gemini.api_key", "sk-secret-value")
	require.NoError(t, err)
	assert.NotContains(t, out, "sk-secret-value")

	data, err := os.ReadFile(filepath.Join(home, "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "sk-secret-value")

	out, err = execute(t, "config", "get", "gemini.api_key")
	require.NoError(t, err)
	assert.Contains(t, out, "REDACTED "+gemini.Fingerprint("sk-secret-value"))

	out, err = execute(t, "config", "show", "--json")
	require.NoError(t, err)
	assert.NotContains(t, out, "sk-secret-value")
	assert.Contains(t, out, `"success": true`)
}

func TestConfig_SetRejectsInvalid(t *testing.T) {
	home := setup(t, &fakeProvider{})

	_, err := execute(t, "config", "set", "ui.theme", "neon")
	assert.ErrorContains(t, err, "ui.theme")
	assert.NoFileExists(t, filepath.Join(home, "config.toml"))

	_, err = execute(t, "config", "set", "ui.colour", "x")
	assert.ErrorContains(t, err, "unknown field")

	_, err = execute(t, "config", "set", "gemini.requests_per_minute", "many")
	assert.ErrorContains(t, err, "invalid integer")
}

func TestConfig_SetDoesNotPersistEnvironment(t *testing.T) {
	home := setup(t, &fakeProvider{})
	t.Setenv("GEMINI_API_KEY", "from-env")

	_, err := execute(t, "config", "set", "ui.theme", "light")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(home, "config.toml"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "from-env")
	assert.Contains(t, string(data), `theme = "light"`)
}

func TestConfig_Keys(t *testing.T) {
	setup(t, &fakeProvider{})

	out, err := execute(t, "config", "keys")
	require.NoError(t, err)
	assert.Contains(t, out, "gemini.api_key\n")
	assert.Contains(t, out, "ui.theme\n")
}

func TestConfig_ExplicitPath(t *testing.T) {
	setup(t, &fakeProvider{})
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("language = \"en\"\n"), 0600))

	out, err := execute(t, "--config", path, "config", "get", "language")
	require.NoError(t, err)
	assert.Equal(t, "en\n", out)

	out, err = execute(t, "--config", path, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)
}

// =============================================================================
// VERSION
// =============================================================================

func TestVersion(t *testing.T) {
	setup(t, &fakeProvider{})

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "zamam dev")
	assert.Contains(t, out, gemini.DefaultModel)

	out, err = execute(t, "version", "--json")
	require.NoError(t, err)
	var resp struct {
		Data VersionData `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "dev", resp.Data.Version)
	assert.Equal(t, gemini.DefaultModel, resp.Data.Model)
}

// =============================================================================
// CHAT REPL
// =============================================================================

func newREPL(t *testing.T, p *fakeProvider) (*chatREPL, *bytes.Buffer) {
	t.Helper()
	a := assistant.New(p, assistant.WithLogger(logging.Discard()))
	s := session.New(a, session.WithLanguage(model.LangEnglish), session.WithLogger(logging.Discard()))
	var buf bytes.Buffer
	return newChatREPL(s, &buf, &markdown{}), &buf
}

func text(buf *bytes.Buffer) string {
	return ansi.Strip(buf.String())
}

func TestChatREPL_Exchange(t *testing.T) {
	p := &fakeProvider{reply: "hi there"}
	repl, out := newREPL(t, p)

	repl.Welcome()
	assert.Contains(t, text(out), repl.session.Greeting())

	assert.True(t, repl.Handle(context.Background(), "hello"))
	assert.Contains(t, text(out), "Zamam AI:\nhi there")
	require.Len(t, p.chats, 1)
	assert.Equal(t, "hello", p.chats[0].Message)
	assert.Len(t, repl.session.Transcript(), 2)

	out.Reset()
	assert.True(t, repl.Handle(context.Background(), "/history"))
	assert.Contains(t, text(out), "You: hello")
	assert.Contains(t, text(out), "Zamam AI: hi there")
}

func TestChatREPL_BlankInputIsIgnored(t *testing.T) {
	p := &fakeProvider{reply: "x"}
	repl, out := newREPL(t, p)

	assert.True(t, repl.Handle(context.Background(), "   "))
	assert.Empty(t, text(out))
	assert.Empty(t, p.chats)
}

func TestChatREPL_Failure(t *testing.T) {
	p := &fakeProvider{err: errors.New("boom")}
	repl, out := newREPL(t, p)

	assert.True(t, repl.Handle(context.Background(), "hello"))
	assert.Contains(t, text(out), assistant.ChatApology)
	assert.Empty(t, repl.session.Transcript())
}

func TestChatREPL_Commands(t *testing.T) {
	p := &fakeProvider{reply: "ok"}
	repl, out := newREPL(t, p)
	ctx := context.Background()

	repl.Handle(ctx, "hello")
	assert.True(t, repl.Handle(ctx, "/clear"))
	assert.Empty(t, repl.session.Transcript())

	out.Reset()
	repl.Handle(ctx, "/history")
	assert.Contains(t, text(out), "No messages yet")

	assert.True(t, repl.Handle(ctx, "/lang ar"))
	assert.Equal(t, model.LangArabic, repl.session.Language())
	assert.True(t, repl.Handle(ctx, "/lang"))
	assert.Equal(t, model.LangEnglish, repl.session.Language())

	out.Reset()
	repl.Handle(ctx, "/lang xx!")
	assert.Contains(t, text(out), "Unknown language")
	assert.Equal(t, model.LangEnglish, repl.session.Language())

	out.Reset()
	repl.Handle(ctx, "/bogus")
	assert.Contains(t, text(out), "Unknown command: /bogus")

	out.Reset()
	repl.Handle(ctx, "/help")
	assert.Contains(t, text(out), "/history")
	assert.Contains(t, out.String(), chatHelp)
	assert.Equal(t, chatHelp, chatCmd.Long)

	assert.False(t, repl.Handle(ctx, "/quit"))
	assert.False(t, repl.Handle(ctx, "EXIT"))
}

func TestChatREPL_Summary(t *testing.T) {
	p := &fakeProvider{reply: "ok"}
	repl, out := newREPL(t, p)

	repl.Handle(context.Background(), "one")
	repl.Handle(context.Background(), "two")
	out.Reset()
	repl.Summary()
	assert.Contains(t, text(out), "2 exchanges")
	assert.Contains(t, text(out), repl.session.ID()[:8])
}

func TestChatCLI_HistoryStaysInMemory(t *testing.T) {
	if IsTTY() {
		t.Skip("stdin is a terminal")
	}
	home := setup(t, &fakeProvider{})

	c := NewChatCLI()
	c.line.AppendHistory("my private question")
	c.Close()

	entries, err := os.ReadDir(home)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCompleteSlash(t *testing.T) {
	assert.Equal(t, []string{"/help", "/history"}, completeSlash("/h"))
	assert.Equal(t, slashCommands, completeSlash("/"))
	assert.Nil(t, completeSlash("hello"))
}

// =============================================================================
// OUTPUT HELPERS
// =============================================================================

func TestOutputJSON_Error(t *testing.T) {
	var buf bytes.Buffer
	boom := errors.New("boom")
	err := OutputJSON(&buf, "tools", func() (any, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)

	var resp JSONResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "boom", *resp.Error)
}

func TestTTYRequiredError(t *testing.T) {
	assert.Equal(t, "stdin is not a terminal; cannot chat interactively",
		(&TTYRequiredError{Operation: "chat"}).Error())
	assert.Contains(t, (&TTYRequiredError{}).Error(), "interactive input not available")
}

func TestColorProfile(t *testing.T) {
	ForceColorsEnabled(false)
	t.Cleanup(func() { ForceColorsEnabled(false) })
	assert.False(t, ColorsEnabled())
	assert.Equal(t, termenv.Ascii, GetColorProfile())

	ForceColorsEnabled(true)
	assert.True(t, ColorsEnabled())
}

func TestMarkdown_PlainWhenDisabled(t *testing.T) {
	cfg := config.Default()
	ForceColorsEnabled(true)
	t.Cleanup(func() { ForceColorsEnabled(false) })

	assert.Equal(t, "**x**", newMarkdown(&bytes.Buffer{}, cfg, true).Render("**x**"))

	cfg.UI.Markdown = false
	assert.Equal(t, "**x**", newMarkdown(&bytes.Buffer{}, cfg, false).Render("**x**"))
}
