// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// defaultClaudeModel is used when no model is configured.
const defaultClaudeModel = "claude-sonnet-4-20250514"

// maxOutputTokens bounds the length of a generated article.
const maxOutputTokens = 4096

// claudeProvider implements the Provider interface using the Anthropic
// Messages API (POST /v1/messages) with server-sent event streaming.
type claudeProvider struct {
	config ProviderConfig
	client *http.Client
}

// NewClaude creates a new Anthropic Claude provider.
func NewClaude(cfg ProviderConfig) Provider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.anthropic.com"
	}
	if cfg.Model == "" {
		cfg.Model = defaultClaudeModel
	}
	return &claudeProvider{
		config: cfg,
		// No overall timeout: a generation stream legitimately stays open
		// for minutes. Cancellation happens through the request context.
		client: &http.Client{},
	}
}

func (p *claudeProvider) Name() string { return "claude" }

// Stream sends a message to the Anthropic Messages API with streaming
// enabled and returns the filtered text-delta event sequence.
func (p *claudeProvider) Stream(ctx context.Context, systemPrompt, userPrompt string) (Stream, error) {
	body := claudeRequest{
		Model:     p.config.Model,
		MaxTokens: maxOutputTokens,
		System:    systemPrompt,
		Stream:    true,
		Messages: []claudeMessage{
			{Role: "user", Content: userPrompt},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("claude marshal: %w", err)
	}

	url := p.config.BaseURL + "/v1/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("claude request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("x-api-key", p.config.APIKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("claude http: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, fmt.Errorf("claude API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	scanner := bufio.NewScanner(resp.Body)
	// Text deltas are small, but a single SSE line can carry a large
	// input-echo or error payload.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	return &claudeStream{body: resp.Body, scanner: scanner}, nil
}

// claudeStream reads the Anthropic SSE event stream and yields only the
// text fragments, discarding metadata and control events.
type claudeStream struct {
	body    io.ReadCloser
	scanner *bufio.Scanner
	done    bool
}

// Recv returns the next text fragment. It returns io.EOF after the
// message_stop event (clean end) and a descriptive error if the provider
// reports a mid-stream failure or the connection breaks.
func (s *claudeStream) Recv() (string, error) {
	if s.done {
		return "", io.EOF
	}

	for s.scanner.Scan() {
		line := s.scanner.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "" {
			continue
		}

		var ev claudeStreamEvent
		if err := json.Unmarshal([]byte(data), &ev); err != nil {
			// Unknown or malformed event payloads are skipped, not fatal.
			continue
		}

		switch ev.Type {
		case "content_block_delta":
			if ev.Delta.Type == "text_delta" && ev.Delta.Text != "" {
				return ev.Delta.Text, nil
			}
		case "message_stop":
			s.done = true
			return "", io.EOF
		case "error":
			s.done = true
			return "", fmt.Errorf("claude stream error: %s", ev.Error.Message)
		}
		// ping, message_start, content_block_start/stop, message_delta:
		// control events, ignored.
	}

	s.done = true
	if err := s.scanner.Err(); err != nil {
		return "", fmt.Errorf("claude stream read: %w", err)
	}
	// The connection ended without a message_stop event. Treat it as a
	// broken transfer so callers don't mistake a truncated article for a
	// complete one.
	return "", fmt.Errorf("claude stream ended unexpectedly")
}

// Close releases the underlying HTTP response body.
func (s *claudeStream) Close() error {
	return s.body.Close()
}

// --- Anthropic Messages API types ---

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	System    string          `json:"system,omitempty"`
	Stream    bool            `json:"stream"`
	Messages  []claudeMessage `json:"messages"`
}

type claudeStreamEvent struct {
	Type  string `json:"type"`
	Delta struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"delta"`
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}
