// Package chat talks to Groq's OpenAI-compatible chat completions API.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gameronce/commerce-api/internal/core/domain"
)

// Config holds the Groq connection settings.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GroqProvider implements ports.ChatProvider against the Groq API.
type GroqProvider struct {
	cfg    Config
	client *http.Client
}

func NewGroqProvider(cfg Config) *GroqProvider {
	return &GroqProvider{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type completionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model    string              `json:"model"`
	Messages []completionMessage `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message completionMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (g *GroqProvider) Complete(ctx context.Context, messages []domain.ChatMessage) (string, domain.ChatUsage, error) {
	if g.cfg.APIKey == "" {
		return "", domain.ChatUsage{}, fmt.Errorf("chat: groq api key is not configured")
	}

	payload := completionRequest{Model: g.cfg.Model}
	for _, msg := range messages {
		payload.Messages = append(payload.Messages, completionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", domain.ChatUsage{}, fmt.Errorf("chat: encode request: %w", err)
	}

	url := strings.TrimRight(g.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", domain.ChatUsage{}, fmt.Errorf("chat: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", domain.ChatUsage{}, fmt.Errorf("chat: call groq: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", domain.ChatUsage{}, fmt.Errorf("chat: read response: %w", err)
	}

	var parsed completionResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", domain.ChatUsage{}, fmt.Errorf("chat: decode response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil && parsed.Error.Message != "" {
			return "", domain.ChatUsage{}, fmt.Errorf("chat: groq status %d: %s", resp.StatusCode, parsed.Error.Message)
		}
		return "", domain.ChatUsage{}, fmt.Errorf("chat: groq status %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return "", domain.ChatUsage{}, fmt.Errorf("chat: groq returned no choices")
	}

	usage := domain.ChatUsage{
		PromptTokens:     parsed.Usage.PromptTokens,
		CompletionTokens: parsed.Usage.CompletionTokens,
		TotalTokens:      parsed.Usage.TotalTokens,
	}
	return parsed.Choices[0].Message.Content, usage, nil
}
