// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/model"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-3-flash-preview"

// ErrNotConfigured indicates no API key is available.
var ErrNotConfigured = errors.New("gemini API key not configured")

// Provider is an external generative AI service.
type Provider interface {
	// GenerateText runs a single stateless prompt.
	GenerateText(ctx context.Context, model, prompt string) (string, error)
	// Chat sends Message after replaying History under SystemInstruction.
	Chat(ctx context.Context, req ChatRequest) (string, error)
}

// ChatRequest is one chat call.
type ChatRequest struct {
	Model             string
	SystemInstruction string
	History           []model.Turn
	Message           string
}

// ProviderError wraps a failure reported by the SDK or the service.
type ProviderError struct {
	Op    string
	Model string
	Err   error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("gemini %s (%s): %v", e.Op, e.Model, e.Err)
}

// Unwrap returns the underlying error.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ProviderFunc adapts a pair of functions to Provider. Nil functions return
// ErrNotConfigured.
type ProviderFunc struct {
	TextFunc func(ctx context.Context, model, prompt string) (string, error)
	ChatFunc func(ctx context.Context, req ChatRequest) (string, error)
}

// GenerateText implements Provider.
func (p ProviderFunc) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	if p.TextFunc == nil {
		return "", ErrNotConfigured
	}
	return p.TextFunc(ctx, model, prompt)
}

// Chat implements Provider.
func (p ProviderFunc) Chat(ctx context.Context, req ChatRequest) (string, error) {
	if p.ChatFunc == nil {
		return "", ErrNotConfigured
	}
	return p.ChatFunc(ctx, req)
}
