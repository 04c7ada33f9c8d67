package generation

import (
	"context"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const openaiModel = "gpt-4o-mini"

// OpenAIClient calls an OpenAI-compatible chat completions endpoint. With a
// custom base URL it also covers compatible providers such as Groq.
type OpenAIClient struct {
	model string
	opts  []option.RequestOption
}

// OpenAIConfig holds configuration for the OpenAI client.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// NewOpenAIClient creates a new OpenAI-compatible client.
func NewOpenAIClient(cfg OpenAIConfig) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}
	model := cfg.Model
	if model == "" {
		model = openaiModel
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAIClient{model: model, opts: opts}, nil
}

// Generate sends the prompt as a single user message and returns the model's
// text response.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	client := openai.NewClient(c.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", &Error{Provider: "openai", Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &Error{Provider: "openai", Err: fmt.Errorf("empty choices in response")}
	}

	return resp.Choices[0].Message.Content, nil
}
