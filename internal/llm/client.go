package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Client is an abstraction over text-completion providers.
type Client interface {
	// Complete sends one system+user message pair and returns the generated text.
	Complete(ctx context.Context, system, user string, opts Options) (string, error)
}

// ChatClient implements Client against an OpenAI-compatible chat-completions
// endpoint (bearer-token authenticated JSON POST).
type ChatClient struct {
	client *openai.Client
	config *Config
}

// NewClient creates a chat-completions client. The API key is injected here,
// once per process; consumers receive the client by dependency injection.
func NewClient(config *Config, apiKey string) (*ChatClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultConfig()
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &ChatClient{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Model returns the configured model identifier.
func (c *ChatClient) Model() string {
	return c.config.Model
}

// Complete sends one request and returns the first choice's message content.
func (c *ChatClient) Complete(ctx context.Context, system, user string, opts Options) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}
