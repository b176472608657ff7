package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"rallypoint/internal/domain"
)

// ClientConfig holds configuration for the generative-text API client.
type ClientConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}

type httpGenerator struct {
	client *http.Client
	config ClientConfig
}

// NewHTTPGenerator returns a TextGenerator that calls a chat-completions style
// HTTP API. The API is treated as an opaque service: one prompt in, one text
// completion out.
func NewHTTPGenerator(client *http.Client, config ClientConfig) domain.TextGenerator {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpGenerator{client: client, config: config}
}

type completionRequest struct {
	Model    string              `json:"model"`
	Messages []completionMessage `json:"messages"`
}

type completionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionResponse struct {
	Choices []struct {
		Message completionMessage `json:"message"`
	} `json:"choices"`
}

func (g *httpGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(completionRequest{
		Model: g.config.Model,
		Messages: []completionMessage{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := g.config.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.config.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call text generation api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("text generation api returned status: %d", resp.StatusCode)
	}

	var data completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(data.Choices) == 0 {
		return "", fmt.Errorf("text generation api returned no choices")
	}
	return data.Choices[0].Message.Content, nil
}
