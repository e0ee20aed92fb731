// Package agent talks to the external content-generation backend. The
// backend is opaque: it takes a prompt string and returns free-form text
// that may contain zero or more recognizable section headers.
package agent

import (
	"context"
	"fmt"
	"time"

	"social-agent/config"
)

// Provider abstracts the LLM client so backends can be swapped or mocked.
type Provider interface {
	// Run sends the prompt and returns the raw response text plus a
	// request log. Run blocks until the backend answers or ctx is done.
	Run(ctx context.Context, prompt string) (string, *RequestLog, error)

	// Name returns the provider identifier ("google", "openai", ...).
	Name() string
}

// RequestLog captures per-call LLM metadata for observability.
type RequestLog struct {
	Prompt       string     `json:"prompt"`
	Response     string     `json:"response"`
	LatencyMs    int64      `json:"latency_ms"`
	TokenUsage   TokenUsage `json:"token_usage"`
	ModelName    string     `json:"model_name"`
	ModelVersion string     `json:"model_version"`
	GeneratedAt  time.Time  `json:"generated_at"`
}

type TokenUsage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
	TotalTokens  int64 `json:"total_tokens"`
}

// SYSTEM_INSTRUCTION is the coordinator persona. The section headers here
// are the ones the response parser recognizes.
const SYSTEM_INSTRUCTION = `
You are a social media content coordinator. Given a content brief, produce a
complete content package with the following sections, each introduced by its
header line exactly as written:

## 📊 Content Package Summary
A short overview of the package and the strategy behind it.

## 📝 Content
The ready-to-post content itself, optimized for the requested platform and
written in the requested tone. No meta commentary inside this section.

## 🏷️ Hashtag Strategy
Recommended hashtags with a one-line rationale.

## 🎨 Visual Concepts
Creative suggestions for accompanying visuals.

## 📈 Performance Insights
Expected performance notes and optimization tips.

## 🔥 Trending Elements
Current trends worth incorporating.

Respect the platform's character limits and best practices. Sections the
brief marks as not requested may be omitted.
`

// NewProviderFromConfig builds the provider selected in config.yaml. The
// matching API key is read from the environment.
func NewProviderFromConfig(cfg config.AppConfig) (Provider, error) {
	switch cfg.Agent.Provider {
	case "google":
		return NewGoogleProvider(cfg.Agent.Model)
	case "openai":
		return NewOpenAIProvider(cfg.Agent.Model)
	case "anthropic":
		return NewAnthropicProvider(cfg.Agent.Model)
	default:
		return nil, fmt.Errorf("unsupported agent provider: %s", cfg.Agent.Provider)
	}
}
