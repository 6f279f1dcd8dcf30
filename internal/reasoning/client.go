package reasoning

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/GoSim-25-26J-441/aqualab-backend/config"
)

var (
	// ErrServiceUnavailable covers transport failures, API errors and timeouts.
	ErrServiceUnavailable = errors.New("reasoning service unavailable")
	// ErrMalformedResponse means the service answered with nothing usable.
	ErrMalformedResponse = errors.New("reasoning service returned a malformed response")
)

// Completer is a text-completion capability.
type Completer interface {
	// Complete sends a system instruction and user prompt. When structured is
	// true the service is asked to answer with a single JSON object.
	Complete(ctx context.Context, system, prompt string, structured bool) (string, error)
}

// OpenAIClient implements Completer on the OpenAI chat completions API.
// It is safe for concurrent use and meant to be built once per process.
type OpenAIClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	limiter *rate.Limiter
}

func NewOpenAIClient(cfg config.ReasoningConfig) *OpenAIClient {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}

	limit := rate.Inf
	if cfg.RatePerSec > 0 {
		limit = rate.Limit(cfg.RatePerSec)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAIClient{
		client:  openai.NewClientWithConfig(oc),
		model:   model,
		timeout: cfg.Timeout,
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (o *OpenAIClient) Complete(ctx context.Context, system, prompt string, structured bool) (string, error) {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	if err := o.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: throttle: %v", ErrServiceUnavailable, err)
	}

	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
	if structured {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", ErrMalformedResponse)
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("%w: empty content", ErrMalformedResponse)
	}
	return content, nil
}
