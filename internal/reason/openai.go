// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reason

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"text/template"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/pdiddy/research-agent/pkg/types"
)

// reasoningPromptTmpl is the prompt sent to the chat completions API. It
// asks for numbered reasoning steps and folds in the context passage when
// one is available.
var reasoningPromptTmpl = template.Must(template.New("reasoning").Parse(`Think through the following query step by step. Lay out your reasoning in exactly {{.Steps}} numbered steps, then state your conclusion.
{{if .Context}}
Background that may help:
{{.Context}}
{{end}}
Query: {{.Topic}}
`))

// backoffBase controls the base duration for exponential backoff. Tests
// override this to avoid real sleeps.
var backoffBase = time.Second

// OpenAIBackend calls an OpenAI-compatible chat completions API. The base
// URL is configurable so alternative providers hosting open models can be
// used with the same client.
type OpenAIBackend struct {
	cfg    types.ReasoningConfig
	client *openai.Client
}

// NewOpenAIBackend builds a backend from the reasoning configuration.
func NewOpenAIBackend(cfg types.ReasoningConfig) *OpenAIBackend {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	return &OpenAIBackend{cfg: cfg, client: openai.NewClientWithConfig(oc)}
}

// Name returns the backend identifier.
func (b *OpenAIBackend) Name() string { return "openai" }

// Reason renders the reasoning prompt and calls the chat completions API,
// retrying transient failures with exponential backoff.
func (b *OpenAIBackend) Reason(ctx context.Context, req Request) (string, error) {
	steps := req.Steps
	if steps <= 0 {
		steps = b.cfg.DefaultSteps
	}
	if steps <= 0 {
		steps = 3
	}

	prompt, err := renderPrompt(req.Topic, steps, req.Context)
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}

	maxRetries := b.cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}

	chatReq := openai.ChatCompletionRequest{
		Model:       b.cfg.Model,
		Temperature: b.cfg.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}

	resp, err := b.callWithRetry(ctx, chatReq, maxRetries)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("reasoning API returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// callWithRetry calls the chat completions API with exponential backoff.
func (b *OpenAIBackend) callWithRetry(ctx context.Context, req openai.ChatCompletionRequest, maxRetries int) (openai.ChatCompletionResponse, error) {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * backoffBase
			select {
			case <-ctx.Done():
				return openai.ChatCompletionResponse{}, ctx.Err()
			case <-time.After(backoff):
			}
		}

		resp, err := b.client.CreateChatCompletion(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}
	return openai.ChatCompletionResponse{}, fmt.Errorf("after %d retries: %w", maxRetries, lastErr)
}

// renderPrompt executes the reasoning prompt template.
func renderPrompt(topic string, steps int, contextPassage string) (string, error) {
	var buf bytes.Buffer
	err := reasoningPromptTmpl.Execute(&buf, struct {
		Topic   string
		Steps   int
		Context string
	}{Topic: topic, Steps: steps, Context: contextPassage})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
