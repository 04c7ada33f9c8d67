package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	anthropicBaseURL    = "https://api.anthropic.com"
	anthropicAPIVersion = "2023-06-01"
	anthropicModel      = "claude-sonnet-4-20250514"
	maxTokens           = 1024
)

// AnthropicClient calls the Anthropic Messages API.
type AnthropicClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// AnthropicConfig holds configuration for the Anthropic client.
type AnthropicConfig struct {
	APIKey  string
	Model   string
	BaseURL string // override for tests
}

// NewAnthropicClient creates a new Anthropic API client.
func NewAnthropicClient(cfg AnthropicConfig) *AnthropicClient {
	model := cfg.Model
	if model == "" {
		model = anthropicModel
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = anthropicBaseURL
	}

	return &AnthropicClient{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
	Error      *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate sends the prompt as a single user message and returns the model's
// text response.
func (c *AnthropicClient) Generate(ctx context.Context, prompt string) (string, error) {
	req := anthropicRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		Messages: []anthropicMessage{
			{Role: "user", Content: prompt},
		},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", &Error{Provider: "anthropic", Err: fmt.Errorf("marshal request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return "", &Error{Provider: "anthropic", Err: fmt.Errorf("create request: %w", err)}
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicAPIVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &Error{Provider: "anthropic", Err: fmt.Errorf("send request: %w", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Provider: "anthropic", Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &Error{Provider: "anthropic", Err: fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))}
	}

	var apiResp anthropicResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", &Error{Provider: "anthropic", Err: fmt.Errorf("unmarshal response: %w", err)}
	}

	if apiResp.Error != nil {
		return "", &Error{Provider: "anthropic", Err: fmt.Errorf("API error: %s - %s", apiResp.Error.Type, apiResp.Error.Message)}
	}

	if len(apiResp.Content) == 0 {
		return "", &Error{Provider: "anthropic", Err: fmt.Errorf("empty response from API")}
	}

	return apiResp.Content[0].Text, nil
}
