// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/config"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/ui/styles"
)

var askRaw bool

var askCmd = &cobra.Command{
	Use:   "ask <prompt>",
	Short: "Send one prompt to the AI model",
	Long: `Send a single prompt to the AI model and print the answer.

The prompt is not added to any conversation. When no prompt is given and
stdin is not a terminal, the prompt is read from stdin:

  echo "Summarize our pricing" | zamam ask`,
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askRaw, "raw", false, "Print the answer without Markdown rendering")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	prompt := strings.Join(args, " ")
	if strings.TrimSpace(prompt) == "" && !IsTTY() {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read prompt from stdin: %w", err)
		}
		prompt = string(data)
	}
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return errors.New("a prompt is required")
	}

	rt, err := newRunEnv(cmd, false)
	if err != nil {
		return err
	}
	defer rt.Close()

	answer := rt.session.Assistant().GenerateText(cmd.Context(), prompt)
	out := cmd.OutOrStdout()
	printf(out, "%s\n", newMarkdown(out, rt.cfg, askRaw).Render(answer))
	return nil
}

// =============================================================================
// MARKDOWN OUTPUT
// =============================================================================

// markdown renders assistant text for the terminal. It falls back to the
// plain text when rendering is off or fails.
type markdown struct {
	renderer *glamour.TermRenderer
}

// newMarkdown prepares a renderer matching the configured theme. Rendering
// is off for --raw, when ui.markdown is false and when colors are disabled.
func newMarkdown(w io.Writer, cfg *config.Config, raw bool) *markdown {
	if raw || !cfg.UI.Markdown || !ColorsEnabled() {
		return &markdown{}
	}
	theme := styles.NewThemeFor(w, styles.ParseMode(cfg.UI.Theme))
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme.GlamourStyle()),
		glamour.WithWordWrap(GetTerminalWidth()-4),
	)
	if err != nil {
		return &markdown{}
	}
	return &markdown{renderer: r}
}

// Render returns text as styled Markdown.
func (m *markdown) Render(text string) string {
	if m.renderer == nil {
		return text
	}
	out, err := m.renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}
