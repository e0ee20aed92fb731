package agent

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/liushuangls/go-anthropic/v2"
)

const anthropicMaxTokens = 8192

// AnthropicProvider generates content through the Anthropic messages API.
type AnthropicProvider struct {
	client *anthropic.Client
	model  string
}

func NewAnthropicProvider(model string) (*AnthropicProvider, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is not set")
	}
	return &AnthropicProvider{client: anthropic.NewClient(apiKey), model: model}, nil
}

func (p *AnthropicProvider) Name() string { return "anthropic" }

func (p *AnthropicProvider) Run(ctx context.Context, prompt string) (string, *RequestLog, error) {
	startTime := time.Now()

	resp, err := p.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     anthropic.Model(p.model),
		System:    SYSTEM_INSTRUCTION,
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(prompt),
		},
	})
	if err != nil {
		return "", nil, err
	}
	if len(resp.Content) == 0 {
		return "", nil, fmt.Errorf("anthropic returned no content blocks")
	}

	text := resp.Content[0].GetText()

	requestLog := &RequestLog{
		Prompt:    prompt,
		Response:  text,
		LatencyMs: time.Since(startTime).Milliseconds(),
		TokenUsage: TokenUsage{
			InputTokens:  int64(resp.Usage.InputTokens),
			OutputTokens: int64(resp.Usage.OutputTokens),
			TotalTokens:  int64(resp.Usage.InputTokens + resp.Usage.OutputTokens),
		},
		ModelName:    p.model,
		ModelVersion: string(resp.Model),
		GeneratedAt:  time.Now(),
	}

	return text, requestLog, nil
}
