package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// Completer turns a prompt into generated text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CompletionClient calls an OpenAI-compatible chat endpoint on
// OpenRouter. Failures are returned as-is; the handler surfaces them as
// a flash and renders with an empty answer. No retries.
type CompletionClient struct {
	client *openai.Client
	model  string
}

// headerTransport adds the attribution headers OpenRouter requires on
// every request.
type headerTransport struct {
	referer string
	base    http.RoundTripper
}

func (t headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("HTTP-Referer", t.referer)
	req.Header.Set("X-Title", "Student Chat App")
	return t.base.RoundTrip(req)
}

func NewCompletionClient(apiKey, referer, model string) *CompletionClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = openRouterBaseURL
	cfg.HTTPClient = &http.Client{
		Transport: headerTransport{referer: referer, base: http.DefaultTransport},
	}
	return &CompletionClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *CompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
