// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package gemini

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/logging"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/model"
)

// Client talks to the Gemini API through google.golang.org/genai.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithRequestsPerMinute paces outbound calls. Zero or less disables pacing.
func WithRequestsPerMinute(rpm int) Option {
	return func(c *Client) {
		if rpm <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), 1)
	}
}

// WithBaseURL points the SDK at another endpoint.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(url, "/") + "/"
	}
}

// WithHTTPClient sets the HTTP client handed to the SDK.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger. Defaults to the process logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a client for apiKey. An empty key yields a client whose
// calls fail with ErrNotConfigured.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{apiKey: strings.TrimSpace(apiKey)}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logging.Or(c.logger)
	return c
}

// IsConfigured reports whether an API key is set.
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

// KeyFingerprint returns a short hash of the API key for display and logs.
// The key itself is never shown.
func (c *Client) KeyFingerprint() string {
	return Fingerprint(c.apiKey)
}

// Fingerprint hashes key into 8 hex characters, or "none" for an empty key.
func Fingerprint(key string) string {
	if key == "" {
		return "none"
	}
	h := sha256.Sum256([]byte(key))
	return hex.EncodeToString(h[:4])
}

// GenerateText implements Provider.
func (c *Client) GenerateText(ctx context.Context, modelName, prompt string) (string, error) {
	return c.generate(ctx, "generate", orDefault(modelName), genai.Text(prompt), nil)
}

// Chat implements Provider.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (string, error) {
	modelName := orDefault(req.Model)
	contents := BuildContents(req.History, req.Message)

	var cfg *genai.GenerateContentConfig
	if req.SystemInstruction != "" {
		cfg = &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: req.SystemInstruction}},
			},
		}
	}
	return c.generate(ctx, "chat", modelName, contents, cfg)
}

func (c *Client) generate(ctx context.Context, op, modelName string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	if !c.IsConfigured() {
		return "", ErrNotConfigured
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", &ProviderError{Op: op, Model: modelName, Err: err}
		}
	}

	client, err := c.newGenAI(ctx)
	if err != nil {
		return "", &ProviderError{Op: op, Model: modelName, Err: err}
	}

	start := time.Now()
	c.logger.Debug("PROVIDER_REQUEST", "op", op, "model", modelName, "contents", len(contents), "key", c.KeyFingerprint())
	resp, err := client.Models.GenerateContent(ctx, modelName, contents, cfg)
	if err != nil {
		c.logger.Warn("PROVIDER_ERROR", "op", op, "model", modelName, "err", err)
		return "", &ProviderError{Op: op, Model: modelName, Err: err}
	}

	text := ResponseText(resp)
	c.logger.Debug("PROVIDER_RESPONSE", "op", op, "model", modelName, "chars", len(text), "duration", time.Since(start))
	return text, nil
}

func (c *Client) newGenAI(ctx context.Context) (*genai.Client, error) {
	cfg := &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if c.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: c.baseURL}
	}
	if c.httpClient != nil {
		cfg.HTTPClient = c.httpClient
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return client, nil
}

// BuildContents converts a transcript plus the new message to SDK contents.
// Assistant turns become the "model" role.
func BuildContents(history []model.Turn, message string) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		contents = append(contents, textContent(roleFor(turn.Role), turn.Text))
	}
	return append(contents, textContent(string(genai.RoleUser), message))
}

func textContent(role, text string) *genai.Content {
	return &genai.Content{
		Role:  role,
		Parts: []*genai.Part{{Text: text}},
	}
}

func roleFor(r model.Role) string {
	if r == model.RoleAssistant {
		return string(genai.RoleModel)
	}
	return string(genai.RoleUser)
}

// ResponseText concatenates the text parts of the first candidate. Thought
// parts are skipped. A response without candidates yields "".
func ResponseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range cand.Content.Parts {
		if p == nil || p.Thought {
			continue
		}
		sb.WriteString(p.Text)
	}
	return sb.String()
}

func orDefault(m string) string {
	if strings.TrimSpace(m) == "" {
		return DefaultModel
	}
	return m
}
