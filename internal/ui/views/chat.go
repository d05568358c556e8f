// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/assistant"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/model"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/ui/styles"
)

// ClearCommand typed into the chat input drops the conversation.
const ClearCommand = "/clear"

// chromeLines is the height used by the title, status line and input box.
const chromeLines = 7

var chatKeys = struct {
	Send     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}{
	Send:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
	PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "scroll down")),
}

// ReplyMsg carries the outcome of a chat send back into the update loop.
type ReplyMsg struct {
	Result assistant.Result
}

// Chat is the assistant conversation page.
type Chat struct {
	env      *Env
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model
	pending  string

	renderer    *glamour.TermRenderer
	rendererKey string
}

// NewChat creates the chat page.
func NewChat(env *Env) *Chat {
	in := textinput.New()
	in.Prompt = "> "
	in.CharLimit = 4000

	sp := spinner.New(spinner.WithSpinner(styles.DotsSpinner.Bubble()))

	return &Chat{
		env:      env,
		viewport: viewport.New(0, 0),
		input:    in,
		spinner:  sp,
	}
}

func (p *Chat) Capturing() bool { return true }

// Enter lays the page out and focuses the input line.
func (p *Chat) Enter() tea.Cmd {
	p.Layout()
	return p.input.Focus()
}

// Prefill replaces the input line with text.
func (p *Chat) Prefill(text string) {
	p.input.SetValue(text)
	p.input.CursorEnd()
}

// Input returns the text currently typed.
func (p *Chat) Input() string {
	return p.input.Value()
}

// Layout resizes the viewport and rebuilds the transcript.
func (p *Chat) Layout() {
	e := p.env
	p.spinner.Style = e.Theme.Spinner
	p.input.Placeholder = e.T("typeMessage")
	p.input.Width = e.Width - 6

	h := e.Height - chromeLines
	if h < 3 {
		h = 3
	}
	p.viewport.Width = e.Width
	p.viewport.Height = h
	p.refresh()
}

// Update handles sending, replies, scrolling and typing.
func (p *Chat) Update(msg tea.Msg) tea.Cmd {
	s := p.env.Session

	switch msg := msg.(type) {
	case ReplyMsg:
		s.CompleteSend()
		p.pending = ""
		p.refresh()
		return nil

	case spinner.TickMsg:
		if !s.Sending() {
			return nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, chatKeys.Send):
			return p.submit()
		case key.Matches(msg, chatKeys.PageUp, chatKeys.PageDown):
			var cmd tea.Cmd
			p.viewport, cmd = p.viewport.Update(msg)
			return cmd
		}
		if s.Sending() {
			return nil
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *Chat) submit() tea.Cmd {
	s := p.env.Session
	text := p.input.Value()

	if strings.TrimSpace(text) == ClearCommand {
		s.ClearChat()
		p.input.Reset()
		p.refresh()
		return nil
	}
	if !s.BeginSend(text) {
		return nil
	}

	p.input.Reset()
	p.pending = text
	p.refresh()

	ctx := p.env.Context()
	return tea.Batch(p.spinner.Tick, func() tea.Msg {
		return ReplyMsg{Result: s.Exchange(ctx, text)}
	})
}

// refresh rebuilds the viewport content and scrolls to the newest turn.
func (p *Chat) refresh() {
	if p.viewport.Width <= 0 {
		return
	}
	blocks := []string{p.bubble(model.RoleAssistant, p.env.Session.Greeting())}
	for _, turn := range p.env.Session.Transcript() {
		blocks = append(blocks, p.bubble(turn.Role, turn.Text))
	}
	if p.pending != "" {
		blocks = append(blocks, p.bubble(model.RoleUser, p.pending))
	}
	p.viewport.SetContent(strings.Join(blocks, "\n\n"))
	p.viewport.GotoBottom()
}

// bubble renders one message. Assistant turns sit on the reading edge and
// user turns on the opposite edge.
func (p *Chat) bubble(role model.Role, text string) string {
	t := p.env.Theme
	rtl := p.env.RTL()
	width := p.viewport.Width
	maxW := width * 3 / 4
	if maxW < 16 {
		maxW = width
	}

	var body string
	pos := styles.Align(rtl)
	if role == model.RoleAssistant {
		inner := maxW - t.AssistantBubble.GetHorizontalFrameSize()
		body = t.AssistantBubble.Render(p.markdown(text, inner))
	} else {
		if pos == lipgloss.Left {
			pos = lipgloss.Right
		} else {
			pos = lipgloss.Left
		}
		inner := maxW - t.UserBubble.GetHorizontalFrameSize()
		w := lipgloss.Width(text)
		if w > inner {
			w = inner
		}
		body = t.UserBubble.Width(w + t.UserBubble.GetHorizontalPadding()).Render(text)
	}

	speaker := t.Speaker.Render(role.DisplayName())
	return lipgloss.PlaceHorizontal(width, pos, lipgloss.JoinVertical(pos, speaker, body))
}

// markdown renders assistant text through glamour when enabled, falling
// back to wrapped plain text.
func (p *Chat) markdown(text string, width int) string {
	plain := lipgloss.NewStyle().Width(width).Render(text)
	if !p.env.Markdown || width < 10 {
		return plain
	}

	cacheKey := p.env.Theme.GlamourStyle() + ":" + strconv.Itoa(width)
	if p.renderer == nil || p.rendererKey != cacheKey {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(p.env.Theme.GlamourStyle()),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return plain
		}
		p.renderer, p.rendererKey = r, cacheKey
	}

	out, err := p.renderer.Render(text)
	if err != nil {
		return plain
	}
	return strings.Trim(out, "\n")
}

// View renders the transcript, the status line and the input box.
func (p *Chat) View() string {
	e, t := p.env, p.env.Theme
	s := e.Session

	status := ""
	switch {
	case s.Sending():
		status = p.spinner.View() + " " + t.Thinking.Render(e.T("thinking"))
	case s.Notice() != "":
		status = styles.RenderError(s.Notice())
	}

	box := t.InputActive
	if s.Sending() {
		box = t.Input
	}
	input := box.Width(e.Width - box.GetHorizontalBorderSize()).Render(p.input.View())

	return strings.Join([]string{
		e.Block(t.Title.Render(e.T("chat"))),
		p.viewport.View(),
		e.Block(status),
		input,
	}, "\n")
}
