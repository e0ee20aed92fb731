package agent

import (
	"context"
	"fmt"
	"os"
	"time"

	"google.golang.org/genai"
)

// GoogleProvider generates content through the Gemini API.
type GoogleProvider struct {
	apiKey string
	model  string
}

func NewGoogleProvider(model string) (*GoogleProvider, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}
	return &GoogleProvider{apiKey: apiKey, model: model}, nil
}

func (p *GoogleProvider) Name() string { return "google" }

func (p *GoogleProvider) Run(ctx context.Context, prompt string) (string, *RequestLog, error) {
	startTime := time.Now()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: p.apiKey,
	})
	if err != nil {
		return "", nil, err
	}

	result, err := client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: SYSTEM_INSTRUCTION}}},
		},
	)
	if err != nil {
		return "", nil, err
	}

	text := result.Text()
	if text == "" {
		return "", nil, fmt.Errorf("gemini returned an empty response")
	}

	requestLog := &RequestLog{
		Prompt:       prompt,
		Response:     text,
		LatencyMs:    time.Since(startTime).Milliseconds(),
		ModelName:    p.model,
		ModelVersion: result.ModelVersion,
		GeneratedAt:  time.Now(),
	}
	if result.UsageMetadata != nil {
		requestLog.TokenUsage = TokenUsage{
			InputTokens:  int64(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int64(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int64(result.UsageMetadata.TotalTokenCount),
		}
	}

	return text, requestLog, nil
}
