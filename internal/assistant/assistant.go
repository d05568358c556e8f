// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package assistant keeps the running chat transcript and relays messages to
// the AI provider.
//
// Every chat call replays the full transcript under a fixed system
// instruction. A successful call appends the user turn and then the
// assistant turn; a failed call leaves the transcript untouched. Nothing is
// persisted and nothing is retried.
package assistant

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/gemini"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/logging"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/model"
)

const (
	// SystemInstruction frames every chat call.
	SystemInstruction = "You are a helpful AI assistant for a business platform called Zamam."

	// ChatApology is shown when a chat call fails.
	ChatApology = "Sorry, I couldn't process that message."

	// GenerateApology is returned when a text generation call fails.
	GenerateApology = "An error occurred while communicating with the AI."

	// NoResponse is returned when text generation produced no text.
	NoResponse = "No response received"
)

// Result is the outcome of one provider call.
type Result struct {
	Text string
	Err  error
}

// OK reports whether the call succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Assistant is the chat session adapter. It is safe for concurrent use.
// Sends are serialized so turns stay in order; the transcript lock is only
// held while copying or appending, so readers never wait on the provider.
type Assistant struct {
	provider gemini.Provider
	model    string
	logger   *log.Logger

	sendMu sync.Mutex

	mu         sync.Mutex
	transcript []model.Turn
	// epoch counts resets; a reply that arrives after a reset is dropped.
	epoch uint64
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithModel sets the model name passed to the provider.
func WithModel(name string) Option {
	return func(a *Assistant) {
		a.model = name
	}
}

// WithLogger sets the logger. Defaults to the process logger.
func WithLogger(l *log.Logger) Option {
	return func(a *Assistant) {
		a.logger = l
	}
}

// New creates an Assistant with an empty transcript.
func New(p gemini.Provider, opts ...Option) *Assistant {
	a := &Assistant{
		provider: p,
		model:    gemini.DefaultModel,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = logging.Or(a.logger)
	return a
}

// Model returns the configured model name.
func (a *Assistant) Model() string {
	return a.model
}

// Send relays text with the whole transcript. On success both turns are
// appended and the reply (possibly empty) is returned. If Reset runs while
// the provider call is outstanding, the reply is returned but not recorded.
func (a *Assistant) Send(ctx context.Context, text string) Result {
	a.sendMu.Lock()
	defer a.sendMu.Unlock()

	a.mu.Lock()
	history := append([]model.Turn(nil), a.transcript...)
	epoch := a.epoch
	a.mu.Unlock()

	req := gemini.ChatRequest{
		Model:             a.model,
		SystemInstruction: SystemInstruction,
		History:           history,
		Message:           text,
	}

	a.logger.Debug("CHAT_SEND", "turns", len(history), "chars", len(text))
	reply, err := a.provider.Chat(ctx, req)
	if err != nil {
		a.logger.Warn("CHAT_FAILED", "turns", len(history), "err", err)
		return Result{Err: err}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.epoch != epoch {
		a.logger.Info("CHAT_REPLY_DROPPED", "reason", "reset")
		return Result{Text: reply}
	}
	a.transcript = append(a.transcript,
		model.NewTurn(model.RoleUser, text),
		model.NewTurn(model.RoleAssistant, reply),
	)
	a.logger.Info("CHAT_REPLY", "turns", len(a.transcript), "chars", len(reply))
	return Result{Text: reply}
}

// SendMessage is Send with the default failure policy: the apology string
// is returned in place of an error.
func (a *Assistant) SendMessage(ctx context.Context, text string) string {
	res := a.Send(ctx, text)
	if res.Err != nil {
		return ChatApology
	}
	return res.Text
}

// Generate runs a stateless prompt. The transcript is not read or changed.
func (a *Assistant) Generate(ctx context.Context, prompt string) Result {
	a.logger.Debug("GENERATE", "chars", len(prompt))
	text, err := a.provider.GenerateText(ctx, a.model, prompt)
	if err != nil {
		a.logger.Warn("GENERATE_FAILED", "err", err)
		return Result{Err: err}
	}
	return Result{Text: text}
}

// GenerateText is Generate with the default policy: failures become
// GenerateApology and an empty body becomes NoResponse.
func (a *Assistant) GenerateText(ctx context.Context, prompt string) string {
	res := a.Generate(ctx, prompt)
	switch {
	case res.Err != nil:
		return GenerateApology
	case res.Text == "":
		return NoResponse
	default:
		return res.Text
	}
}

// Transcript returns a copy of the turns so far.
func (a *Assistant) Transcript() []model.Turn {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]model.Turn(nil), a.transcript...)
}

// Len returns the number of turns.
func (a *Assistant) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.transcript)
}

// Reset drops the transcript.
func (a *Assistant) Reset() {
	a.mu.Lock()
	a.transcript = nil
	a.epoch++
	a.mu.Unlock()
	a.logger.Info("CHAT_RESET")
}
