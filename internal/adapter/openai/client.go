package openai

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"post-studio/internal/config/configs"
	"post-studio/internal/core/domain"
)

// Client implements port.LLMClient with the chat completions API. A Client
// built without an API key is valid but reports Configured() == false so
// the use case can refuse generation before any request is made.
type Client struct {
	api   *openai.Client
	cfg   configs.OpenAI
	ready bool
}

// NewClient creates a client from cfg. BaseURL, when set, replaces the SDK
// default endpoint.
func NewClient(cfg configs.OpenAI) *Client {
	conf := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		conf.BaseURL = cfg.BaseURL
	}
	return &Client{
		api:   openai.NewClientWithConfig(conf),
		cfg:   cfg,
		ready: cfg.APIKey != "",
	}
}

// Configured reports whether an API key was supplied.
func (c *Client) Configured() bool {
	return c.ready
}

// Complete sends the system and user instructions and returns the first
// choice. Errors from the SDK are returned unchanged.
func (c *Client) Complete(ctx context.Context, prompt domain.Prompt) (string, error) {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.System},
			{Role: openai.ChatMessageRoleUser, Content: prompt.User},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
