// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gemini provides the Google Gemini integration used by the chat
// assistant.
//
// # Key Types
//
//   - Provider: the capability the assistant depends on (text and chat)
//   - Client: Provider implementation on google.golang.org/genai
//   - ChatRequest: system instruction, prior transcript and the new message
//   - ProviderError: SDK failure tagged with the operation that failed
//
// A fresh genai.Client is created for every call and the whole transcript is
// replayed each time, so the Client itself holds no conversation state.
// Outbound calls wait on a requests-per-minute limiter; nothing is retried.
//
// # Usage
//
//	c := gemini.NewClient(apiKey, gemini.WithRequestsPerMinute(30))
//	reply, err := c.Chat(ctx, gemini.ChatRequest{
//	    Model:             gemini.DefaultModel,
//	    SystemInstruction: "You are a helpful assistant.",
//	    History:           transcript,
//	    Message:           "hello",
//	})
package gemini
