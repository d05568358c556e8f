// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/assistant"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/catalog"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/i18n"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/logging"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/model"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/router"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/util"
)

// =============================================================================
// SESSION
// =============================================================================

// Session is one running UI instance. It is safe for concurrent use.
type Session struct {
	mu sync.Mutex

	id        string
	startTime time.Time

	state     model.State
	toolQuery string
	sending   bool
	notice    string

	assistant *assistant.Assistant
	catalog   *catalog.Catalog
	bundle    *i18n.Bundle
	logger    *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLanguage sets the starting language.
func WithLanguage(lang model.Language) Option {
	return func(s *Session) {
		if lang.Valid() {
			s.state = router.SetLanguage(s.state, lang)
		}
	}
}

// WithCatalog replaces the embedded catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(s *Session) {
		s.catalog = c
	}
}

// WithBundle replaces the embedded translations.
func WithBundle(b *i18n.Bundle) Option {
	return func(s *Session) {
		s.bundle = b
	}
}

// WithLogger sets the logger. Defaults to the process logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// New creates a session in the initial state around a.
func New(a *assistant.Assistant, opts ...Option) *Session {
	s := &Session{
		id:        uuid.NewString(),
		startTime: time.Now(),
		state:     router.Initial(),
		assistant: a,
		catalog:   catalog.Default(),
		bundle:    i18n.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logging.Or(s.logger).With("session", s.id[:8])
	s.logger.Info("SESSION_START", "language", s.state.Language)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// StartTime returns when the session started.
func (s *Session) StartTime() time.Time {
	return s.startTime
}

// Duration returns how long the session has been running.
func (s *Session) Duration() time.Duration {
	return time.Since(s.startTime)
}

// =============================================================================
// NAVIGATION INTENTS
// =============================================================================

// Navigate switches to view v.
func (s *Session) Navigate(v model.View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	from := s.state.View
	s.state = router.Navigate(s.state, v)
	s.logger.Debug("NAVIGATE", "from", from, "to", v)
}

// SetLanguage switches the display language.
func (s *Session) SetLanguage(lang model.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = router.SetLanguage(s.state, lang)
	s.logger.Debug("LANGUAGE", "lang", lang)
}

// ToggleLanguage flips between Arabic and English.
func (s *Session) ToggleLanguage() model.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = router.ToggleLanguage(s.state)
	s.logger.Debug("LANGUAGE", "lang", s.state.Language)
	return s.state.Language
}

// Login signs in the placeholder user and opens the dashboard.
func (s *Session) Login(creds model.Credentials) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = router.Login(s.state, creds)
	s.logger.Info("LOGIN", "user", s.state.User.Email)
}

// Logout clears the user and returns to the landing page.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = router.Logout(s.state)
	s.logger.Info("LOGOUT")
}

// SetToolQuery sets the tools search text.
func (s *Session) SetToolQuery(q string) {
	s.mu.Lock()
	s.toolQuery = q
	s.mu.Unlock()
}

// =============================================================================
// CHAT INTENTS
// =============================================================================

// BeginSend marks a chat request as in flight. It returns false, and does
// nothing, for blank text or when a request is already outstanding.
func (s *Session) BeginSend(text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if util.IsBlank(text) {
		return false
	}
	if s.sending {
		s.logger.Debug("SEND_REJECTED", "reason", "in flight")
		return false
	}
	s.sending = true
	return true
}

// Exchange performs the provider call for a send started with BeginSend.
// On failure the apology becomes the session notice and is returned as the
// result text along with the error.
func (s *Session) Exchange(ctx context.Context, text string) assistant.Result {
	res := s.assistant.Send(ctx, text)

	s.mu.Lock()
	defer s.mu.Unlock()
	if res.Err != nil {
		s.notice = assistant.ChatApology
		return assistant.Result{Text: assistant.ChatApology, Err: res.Err}
	}
	s.notice = ""
	return res
}

// CompleteSend clears the in-flight flag.
func (s *Session) CompleteSend() {
	s.mu.Lock()
	s.sending = false
	s.mu.Unlock()
}

// SendChat sends text synchronously. ok is false when the send was rejected.
// Otherwise the result carries the reply, or the apology and the error.
func (s *Session) SendChat(ctx context.Context, text string) (res assistant.Result, ok bool) {
	if !s.BeginSend(text) {
		return assistant.Result{}, false
	}
	defer s.CompleteSend()
	return s.Exchange(ctx, text), true
}

// ClearChat drops the transcript and any notice.
func (s *Session) ClearChat() {
	s.assistant.Reset()
	s.mu.Lock()
	s.notice = ""
	s.mu.Unlock()
}

// =============================================================================
// VIEW DATA
// =============================================================================

// State returns a copy of the router state.
func (s *Session) State() model.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	if st.User != nil {
		u := *st.User
		st.User = &u
	}
	return st
}

// Language returns the current language.
func (s *Session) Language() model.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Language
}

// T translates key into the current language.
func (s *Session) T(key string) string {
	return s.bundle.T(s.Language(), key)
}

// Tf translates and formats key into the current language.
func (s *Session) Tf(key string, args ...any) string {
	return s.bundle.Tf(s.Language(), key, args...)
}

// Title returns the header title of the current view.
func (s *Session) Title() string {
	s.mu.Lock()
	v := s.state.View
	s.mu.Unlock()
	return s.T(router.TitleKey(v))
}

// ToolQuery returns the tools search text.
func (s *Session) ToolQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.toolQuery
}

// FilteredTools returns the catalog filtered by the search text.
func (s *Session) FilteredTools() []model.Tool {
	s.mu.Lock()
	q, lang := s.toolQuery, s.state.Language
	s.mu.Unlock()
	return catalog.Filter(s.catalog.Tools(), q, lang)
}

// Catalog returns the static catalog.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Bundle returns the translations the session renders with.
func (s *Session) Bundle() *i18n.Bundle {
	return s.bundle
}

// Transcript returns the chat turns so far.
func (s *Session) Transcript() []model.Turn {
	return s.assistant.Transcript()
}

// Greeting returns the assistant's welcome line in the current language.
// It is shown above the transcript and is not part of it.
func (s *Session) Greeting() string {
	return s.T("chatGreeting")
}

// Sending reports whether a chat request is in flight.
func (s *Session) Sending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sending
}

// Notice returns the apology from the last failed send, or "".
func (s *Session) Notice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notice
}

// Assistant returns the chat assistant.
func (s *Session) Assistant() *assistant.Assistant {
	return s.assistant
}
