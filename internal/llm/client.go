// Package llm wraps an OpenAI-compatible chat completion endpoint (Groq by
// default) behind a small interface the pipeline can mock in tests.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/campuscare/healthbot/internal/config"
)

// Failure kinds. The response generator maps each to a fixed user-facing
// message; raw error text never reaches the end user.
var (
	// ErrNotConfigured means the API key is missing or rejected
	ErrNotConfigured = errors.New("llm: api key not configured")
	// ErrThrottled means the provider rate limit was exceeded
	ErrThrottled = errors.New("llm: rate limit exceeded")
	// ErrUnavailable covers network, timeout and server-side failures
	ErrUnavailable = errors.New("llm: completion request failed")
	// ErrEmptyResponse means the provider returned no usable text
	ErrEmptyResponse = errors.New("llm: empty completion")
)

// CompletionRequest is a single chat completion call. System is optional;
// classification calls send the whole instruction as the user prompt, the
// way the generation prompt was originally shaped.
type CompletionRequest struct {
	System      string
	Prompt      string
	Temperature float32
	TopP        float32
	MaxTokens   int
}

// Client issues one completion per call. Implementations must return errors
// wrapping one of the failure kinds above.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// GroqClient talks to an OpenAI-compatible endpoint
type GroqClient struct {
	client *openai.Client
	model  string
	apiKey string
}

// NewGroqClient creates a completion client from configuration
func NewGroqClient(cfg config.LLMConfig) *GroqClient {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	clientCfg.HTTPClient = &http.Client{Timeout: time.Duration(timeout) * time.Second}

	return &GroqClient{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		apiKey: cfg.APIKey,
	}
}

// Complete issues one chat completion and returns the trimmed response text
func (g *GroqClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if strings.TrimSpace(g.apiKey) == "" {
		return "", fmt.Errorf("%w: empty API key", ErrNotConfigured)
	}

	var messages []openai.ChatCompletionMessage
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Messages:    messages,
		Temperature: req.Temperature,
		TopP:        req.TopP,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", wrapError(err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}

// wrapError maps provider errors onto the package's failure kinds. Status
// codes are checked first; the message-substring checks keep parity with
// providers that report quota problems without a 429.
func wrapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %v", ErrNotConfigured, err)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", ErrThrottled, err)
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key"):
		return fmt.Errorf("%w: %v", ErrNotConfigured, err)
	case strings.Contains(msg, "rate limit"):
		return fmt.Errorf("%w: %v", ErrThrottled, err)
	}

	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
