// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/model"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/session"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/ui/styles"
)

// chatHelp is the command help and the /help output.
const chatHelp = `Start an interactive conversation with the Zamam assistant.

Every message is sent with the conversation so far. Use the arrow keys to
recall earlier input. Commands:

  /clear          Start a new conversation
  /history        Show the conversation so far
  /lang [ar|en]   Switch language (toggles without an argument)
  /help           Show this list
  /quit           Leave (also: exit, quit, ctrl+c, ctrl+d)`

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the Zamam assistant in the terminal",
	Long:  chatHelp,
	Args:  cobra.NoArgs,
	RunE:  runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	if err := RequiresTTY("chat"); err != nil {
		return err
	}
	rt, err := newRunEnv(cmd, true)
	if err != nil {
		return err
	}
	defer rt.Close()

	input := NewChatCLI()
	defer input.Close()

	out := cmd.OutOrStdout()
	repl := newChatREPL(rt.session, out, newMarkdown(out, rt.cfg, false))
	repl.Welcome()

	for {
		line, err := input.ReadInput(PromptStyle.Render("zamam> "))
		if err != nil {
			// ctrl+c aborts the prompt; ctrl+d ends input. Both leave.
			if !errors.Is(err, liner.ErrPromptAborted) && !errors.Is(err, io.EOF) {
				rt.logger.Warn("CHAT_INPUT_FAILED", "err", err)
			}
			printf(out, "\n")
			repl.Summary()
			return nil
		}
		if !repl.Handle(cmd.Context(), line) {
			repl.Summary()
			return nil
		}
	}
}

// =============================================================================
// LINE INPUT WITH HISTORY
// =============================================================================

// ChatCLI wraps liner for line editing. Input history lives only as long as
// the REPL; chat text is never written to disk.
type ChatCLI struct {
	line *liner.State
}

// NewChatCLI creates a line reader with slash-command completion.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	line.SetCompleter(completeSlash)
	return &ChatCLI{line: line}
}

// ReadInput reads a line of input with the given prompt.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// Close restores the terminal.
func (c *ChatCLI) Close() {
	c.line.Close()
}

// slashCommands are offered for tab completion.
var slashCommands = []string{"/clear", "/help", "/history", "/lang", "/quit"}

func completeSlash(line string) []string {
	if !strings.HasPrefix(line, "/") {
		return nil
	}
	var out []string
	for _, c := range slashCommands {
		if strings.HasPrefix(c, line) {
			out = append(out, c)
		}
	}
	return out
}

// =============================================================================
// REPL
// =============================================================================

// chatREPL turns input lines into session intents and prints the results.
type chatREPL struct {
	session *session.Session
	out     io.Writer
	md      *markdown
}

func newChatREPL(s *session.Session, out io.Writer, md *markdown) *chatREPL {
	return &chatREPL{session: s, out: out, md: md}
}

// Welcome prints the assistant greeting.
func (r *chatREPL) Welcome() {
	printf(r.out, "%s\n", TitleStyle.Render(r.session.T("chat")))
	printf(r.out, "%s\n", r.speaker(model.RoleAssistant))
	printf(r.out, "%s\n", r.md.Render(r.session.Greeting()))
	printf(r.out, "%s\n\n", DimStyle.Render("/help"))
}

// Handle processes one input line. It returns false when the user leaves.
func (r *chatREPL) Handle(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}
	if strings.HasPrefix(line, "/") {
		return r.command(line)
	}
	if strings.EqualFold(line, "exit") || strings.EqualFold(line, "quit") {
		return false
	}

	printf(r.out, "%s\n", DimStyle.Render(r.session.T("thinking")))
	res, ok := r.session.SendChat(ctx, line)
	if !ok {
		return true
	}
	if res.Err != nil {
		printf(r.out, "%s\n\n", styles.RenderError(res.Text))
		return true
	}
	printf(r.out, "%s\n%s\n\n", r.speaker(model.RoleAssistant), r.md.Render(res.Text))
	return true
}

func (r *chatREPL) command(line string) bool {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "/quit", "/exit", "/q":
		return false

	case "/clear":
		r.session.ClearChat()
		printf(r.out, "%s\n", styles.RenderSuccess("Conversation cleared"))

	case "/history":
		r.history()

	case "/lang":
		if len(fields) > 1 {
			lang, err := model.ParseLanguage(fields[1])
			if err != nil {
				printf(r.out, "%s\n", styles.RenderError("Unknown language: "+fields[1]))
				return true
			}
			r.session.SetLanguage(lang)
		} else {
			r.session.ToggleLanguage()
		}
		printf(r.out, "%s\n", styles.RenderInfo("Language: "+r.session.Language().String()))

	case "/help":
		printf(r.out, "%s\n", chatHelp)

	default:
		printf(r.out, "%s\n", styles.RenderError("Unknown command: "+fields[0]+" (try /help)"))
	}
	return true
}

func (r *chatREPL) history() {
	turns := r.session.Transcript()
	if len(turns) == 0 {
		printf(r.out, "%s\n", DimStyle.Render("No messages yet"))
		return
	}
	for _, t := range turns {
		printf(r.out, "%s %s\n", r.speaker(t.Role), t.Preview(200))
	}
}

func (r *chatREPL) speaker(role model.Role) string {
	return NameStyle.Render(role.DisplayName() + ":")
}

// Summary prints a one-line recap when the REPL ends.
func (r *chatREPL) Summary() {
	turns := len(r.session.Transcript())
	printf(r.out, "%s\n", DimStyle.Render(fmt.Sprintf("Session %s: %d exchanges in %s",
		r.session.ID()[:8], turns/2, r.session.Duration().Round(time.Second))))
}
