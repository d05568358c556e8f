// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app is the root Bubble Tea model of the Zamam dashboard. It owns
// the window layout (sidebar, header, page, help line), the global key
// bindings and the live configuration updates; everything else is delegated
// to the page for the session's current view.
package app

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/config"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/logging"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/model"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/router"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/session"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/ui/components"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/ui/styles"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/ui/views"
)

// Default window size used until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 100
	defaultHeight = 30
)

// ConfigChangedMsg is posted by the config watcher after a reload.
type ConfigChangedMsg struct {
	Config *config.Config
}

// Options configures the root model.
type Options struct {
	Theme    styles.Mode
	Markdown bool
	Logger   *log.Logger
	Ctx      context.Context
	// Output is the writer the theme resolves colors against. Defaults to
	// stdout.
	Output io.Writer
}

// Model is the root tea.Model.
type Model struct {
	env     *views.Env
	pages   map[model.View]views.Page
	current model.View

	header  *components.Header
	sidebar *components.Sidebar
	help    help.Model
	keys    KeyMap

	width  int
	height int
	output io.Writer
	logger *log.Logger
}

// New creates the root model over a session.
func New(s *session.Session, opts Options) *Model {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	theme := styles.NewThemeFor(out, opts.Theme)

	env := &views.Env{
		Session:  s,
		Theme:    theme,
		Ctx:      opts.Ctx,
		Markdown: opts.Markdown,
	}
	m := &Model{
		env:     env,
		pages:   views.Pages(env),
		current: s.State().View,
		header:  components.NewHeader(theme),
		sidebar: components.NewSidebar(theme),
		help:    help.New(),
		keys:    DefaultKeyMap(),
		output:  out,
		logger:  logging.Or(opts.Logger),
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

// Session returns the session the model drives.
func (m *Model) Session() *session.Session {
	return m.env.Session
}

// Theme returns the active theme.
func (m *Model) Theme() *styles.Theme {
	return m.env.Theme
}

// Page returns the page object for a view.
func (m *Model) Page(v model.View) views.Page {
	return m.pages[v]
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.pages[m.current].Enter()
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case ConfigChangedMsg:
		m.applyConfig(msg.Config)
		return m, nil

	case views.ReplyMsg, spinner.TickMsg:
		// Replies and spinner frames belong to the chat even while another
		// page is shown.
		cmd = m.pages[model.ViewChat].Update(msg)

	case views.UseToolMsg:
		m.env.Session.Navigate(model.ViewChat)
		cmd = m.sync()
		if chat, ok := m.pages[model.ViewChat].(*views.Chat); ok {
			chat.Prefill(msg.Tool.Name.In(m.env.Session.Language()) + ": ")
		}
		return m, cmd

	case tea.KeyMsg:
		handled, quit, kcmd := m.handleKey(msg)
		if quit {
			return m, tea.Quit
		}
		if handled {
			return m, tea.Batch(kcmd, m.sync())
		}
		cmd = m.pages[m.current].Update(msg)

	default:
		cmd = m.pages[m.current].Update(msg)
	}

	return m, tea.Batch(cmd, m.sync())
}

// handleKey processes the global bindings.
func (m *Model) handleKey(msg tea.KeyMsg) (handled, quit bool, cmd tea.Cmd) {
	s := m.env.Session
	page := m.pages[m.current]
	inShell := router.InShell(m.current)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return true, true, nil

	case key.Matches(msg, m.keys.QuitHome) && m.current == model.ViewLanding:
		return true, true, nil

	case key.Matches(msg, m.keys.Language):
		lang := s.ToggleLanguage()
		m.logger.Debug("UI_LANGUAGE", "lang", lang)
		m.relayout()
		return true, false, nil
	}

	if !inShell {
		return false, false, nil
	}

	switch {
	case key.Matches(msg, m.keys.Logout):
		s.Logout()
		return true, false, nil

	case key.Matches(msg, m.keys.Next):
		s.Navigate(m.step(1))
		return true, false, nil

	case key.Matches(msg, m.keys.Prev):
		s.Navigate(m.step(-1))
		return true, false, nil

	case key.Matches(msg, m.keys.JumpAlt),
		key.Matches(msg, m.keys.Jump) && !page.Capturing():
		if v, ok := jumpTarget(msg.String()); ok {
			s.Navigate(v)
			return true, false, nil
		}
	}
	return false, false, nil
}

// step returns the sidebar view delta entries away from the current one.
func (m *Model) step(delta int) model.View {
	items := router.SidebarViews()
	idx := 0
	for i, v := range items {
		if v == m.current {
			idx = i
			break
		}
	}
	n := len(items)
	return items[((idx+delta)%n+n)%n]
}

// jumpTarget maps "3" or "alt+3" to the third sidebar view.
func jumpTarget(k string) (model.View, bool) {
	if k == "" {
		return 0, false
	}
	d := int(k[len(k)-1] - '0')
	items := router.SidebarViews()
	if d < 1 || d > len(items) {
		return 0, false
	}
	return items[d-1], true
}

// sync follows the session's current view, entering the new page when it
// changed.
func (m *Model) sync() tea.Cmd {
	v := m.env.Session.State().View
	if v == m.current {
		return nil
	}
	m.current = v
	m.relayout()
	return m.pages[v].Enter()
}

// applyConfig picks up language, theme and markdown changes from a reloaded
// configuration file.
func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	s := m.env.Session
	if lang := cfg.Lang(); lang != s.Language() {
		s.SetLanguage(lang)
	}
	mode := styles.ParseMode(cfg.UI.Theme)
	if mode != m.env.Theme.Mode {
		m.setTheme(styles.NewThemeFor(m.output, mode))
	}
	m.env.Markdown = cfg.UI.Markdown
	m.logger.Info("UI_CONFIG_RELOAD", "lang", s.Language(), "theme", mode, "markdown", cfg.UI.Markdown)
	m.relayout()
}

func (m *Model) setTheme(t *styles.Theme) {
	t.SetSize(m.width, m.height)
	m.env.Theme = t
	m.header = components.NewHeader(t)
	m.sidebar = components.NewSidebar(t)
}

// =============================================================================
// LAYOUT
// =============================================================================

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.env.Theme.SetSize(w, h)
	m.help.Width = w
	m.relayout()
}

// relayout recomputes the page area for the current view and lets every
// page adapt to it.
func (m *Model) relayout() {
	t := m.env.Theme
	helpLines := 1

	if router.InShell(m.current) {
		contentW := t.ContentWidth()
		m.header.SetWidth(contentW)
		m.env.Width = contentW - t.Content.GetHorizontalFrameSize()
		m.env.Height = m.height - m.headerHeight() - helpLines - t.Content.GetVerticalFrameSize()
	} else {
		m.env.Width = m.width
		m.env.Height = m.height - helpLines
	}
	if m.env.Height < 1 {
		m.env.Height = 1
	}
	for _, p := range m.pages {
		p.Layout()
	}
}

func (m *Model) headerHeight() int {
	m.header.Title = m.env.Session.Title()
	m.header.ToggleText = m.env.T("languageName")
	return lipgloss.Height(m.header.View())
}

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m *Model) View() string {
	page := m.pages[m.current].View()

	var keys help.KeyMap = m.keys
	if !router.InShell(m.current) {
		keys = landingHelp{m.keys}
		return page + "\n" + m.help.View(keys)
	}

	t := m.env.Theme
	s := m.env.Session
	rtl := s.Language().IsRTL()

	m.header.Title = s.Title()
	m.header.ToggleText = s.T("languageName")
	m.header.RTL = rtl

	m.sidebar.Brand = s.T("appName")
	m.sidebar.Subtitle = s.T("brandSubtitle")
	m.sidebar.Items = sidebarItems(s)
	m.sidebar.Active = m.current
	m.sidebar.LogoutLabel = s.T("logout")
	m.sidebar.LogoutKey = "^x"
	m.sidebar.Width = t.SidebarWidth()
	m.sidebar.Height = m.height - 1
	m.sidebar.RTL = rtl

	header := m.header.View()
	bodyH := m.height - 1 - lipgloss.Height(header)
	if bodyH < 1 {
		bodyH = 1
	}
	content := t.Content.Render(page)
	content = lipgloss.NewStyle().MaxHeight(bodyH).Render(content)

	main := lipgloss.JoinVertical(styles.Align(rtl), header, content)
	main = lipgloss.NewStyle().Width(t.ContentWidth()).Render(main)

	return strings.Join([]string{
		components.Row(rtl, m.sidebar.View(), main),
		m.help.View(keys),
	}, "\n")
}

func sidebarItems(s *session.Session) []components.SidebarItem {
	entries := router.SidebarViews()
	items := make([]components.SidebarItem, len(entries))
	for i, v := range entries {
		items[i] = components.SidebarItem{View: v, Label: s.T(router.TitleKey(v))}
	}
	return items
}
