// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ai provides the LLM generation capability used to draft articles.
// The Provider interface abstracts the model vendor so handlers and tests
// can substitute a double; the Claude implementation talks to the Anthropic
// Messages API over streaming HTTP.
package ai

import "context"

// Provider defines the interface an AI provider must implement.
// The provider handles its own HTTP communication and response parsing.
type Provider interface {
	// Stream sends a prompt to the LLM and returns the model's output as
	// an incremental fragment stream. systemPrompt sets the model's
	// behaviour; userPrompt is the generation request. The call blocks
	// until the provider has accepted the request; fragments then arrive
	// asynchronously via the returned Stream.
	Stream(ctx context.Context, systemPrompt, userPrompt string) (Stream, error)

	// Name returns the provider identifier (e.g., "claude").
	Name() string
}

// Stream is a lazy, finite, non-restartable sequence of text fragments.
// Recv blocks until the next fragment is available and returns io.EOF
// when the model has finished cleanly; any other error means the stream
// broke and no further fragments will arrive. Close releases the
// underlying connection and must always be called.
type Stream interface {
	Recv() (string, error)
	Close() error
}

// ProviderConfig holds the credentials and settings for a provider.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}
