// Package llm abstracts chat-completion providers behind the ChatModel
// interface consumed by the planner and executor. Anthropic uses its native
// SDK; OpenAI, Google, and xAI share the OpenAI-compatible chat API.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/praxislabs/praxis/pkg/budget"
	"github.com/praxislabs/praxis/pkg/models"
)

// Providers selectable in configuration.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderGoogle    = "google"
	ProviderXAI       = "xai"
	ProviderStub      = "stub"
)

// EnvTestMode forces the stub provider regardless of configuration so
// end-to-end runs need no provider credentials.
const EnvTestMode = "PRAXIS_TEST_MODE"

// DefaultMaxTokens caps completion length when neither the request nor the
// configuration sets one. The Anthropic API requires an explicit value.
const DefaultMaxTokens = 4096

// OpenAI-compatible endpoints for providers without a dedicated SDK.
const (
	googleBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	xaiBaseURL    = "https://api.x.ai/v1"
)

// ErrMissingAPIKey indicates no credential was configured or found in the
// provider's environment variable.
var ErrMissingAPIKey = errors.New("api key not configured")

var defaultModels = map[string]string{
	ProviderAnthropic: "claude-sonnet-4-5",
	ProviderOpenAI:    "gpt-4o",
	ProviderGoogle:    "gemini-2.5-flash",
	ProviderXAI:       "grok-4",
}

var apiKeyEnvs = map[string]string{
	ProviderAnthropic: "ANTHROPIC_API_KEY",
	ProviderOpenAI:    "OPENAI_API_KEY",
	ProviderGoogle:    "GOOGLE_API_KEY",
	ProviderXAI:       "XAI_API_KEY",
}

// Request carries one chat completion call. Tool-role messages in the
// transcript are replayed to providers as user turns; session history keeps
// flattened text only, so tool-result messages must be self-describing.
type Request struct {
	Messages    []models.Message
	Tools       []models.ToolDefinition
	Temperature *float64
	MaxTokens   int
}

// Usage reports provider-metered token consumption for one call.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// EnsureUsage returns the usage a response reported, or an estimate from
// the request transcript and response text when the provider returned
// none. Keeps session budgets honest with providers that omit usage.
func EnsureUsage(req Request, resp *Response) Usage {
	if resp.Usage.InputTokens > 0 || resp.Usage.OutputTokens > 0 {
		return resp.Usage
	}
	contents := make([]string, 0, len(req.Messages))
	for _, m := range req.Messages {
		contents = append(contents, m.Content)
	}
	return Usage{
		InputTokens:  budget.EstimateMessages(contents),
		OutputTokens: budget.EstimateTokens(resp.Content),
	}
}

// RateLimit is advisory quota information some providers return alongside a
// completion. Consumed for budgeting decisions only.
type RateLimit struct {
	Remaining int
	ResetAt   time.Time
}

// Response is one completed chat turn.
type Response struct {
	Content    string
	ToolCalls  []models.ToolCall
	StopReason string
	Usage      Usage
	RateLimit  *RateLimit
}

// StreamChunk is one fragment of a streamed completion. Exactly one chunk
// has IsFinal set; it carries the stop reason and usage when the provider
// reports them, or Err on a mid-stream failure.
type StreamChunk struct {
	Content    string
	ToolCall   *models.ToolCall
	Usage      *Usage
	StopReason string
	IsFinal    bool
	Err        error
}

// ChatModel is the provider abstraction consumed by the planner and the
// executor. Implementations must be safe for concurrent use.
type ChatModel interface {
	Chat(ctx context.Context, req Request) (*Response, error)
	ChatStream(ctx context.Context, req Request) (<-chan StreamChunk, error)
}

// Config selects and parameterizes a chat provider.
type Config struct {
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string
	MaxTokens   int
	Temperature *float64
}

// New builds the configured provider. A missing API key falls back to the
// provider's environment variable; a missing model name to a per-provider
// default. PRAXIS_TEST_MODE overrides everything with the stub.
func New(cfg Config) (ChatModel, error) {
	if cfg.Provider == ProviderStub || testMode() {
		slog.Info("Chat model configured", "provider", ProviderStub)
		return NewStub(), nil
	}
	env, ok := apiKeyEnvs[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown chat provider %q", cfg.Provider)
	}
	if cfg.Model == "" {
		cfg.Model = defaultModels[cfg.Provider]
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv(env)
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s (%s): %w", cfg.Provider, env, ErrMissingAPIKey)
	}

	var (
		model ChatModel
		err   error
	)
	switch cfg.Provider {
	case ProviderAnthropic:
		model, err = NewAnthropic(cfg)
	case ProviderOpenAI:
		model, err = NewOpenAI(cfg)
	case ProviderGoogle:
		if cfg.BaseURL == "" {
			cfg.BaseURL = googleBaseURL
		}
		model, err = NewOpenAI(cfg)
	case ProviderXAI:
		if cfg.BaseURL == "" {
			cfg.BaseURL = xaiBaseURL
		}
		model, err = NewOpenAI(cfg)
	}
	if err != nil {
		return nil, err
	}
	slog.Info("Chat model configured", "provider", cfg.Provider, "model", cfg.Model)
	return model, nil
}

func testMode() bool {
	v := os.Getenv(EnvTestMode)
	return v == "1" || strings.EqualFold(v, "true")
}

// decodeToolArguments parses a function-call arguments payload. Malformed
// JSON is preserved under a "raw" key instead of being dropped.
func decodeToolArguments(raw string) map[string]any {
	if strings.TrimSpace(raw) == "" {
		return map[string]any{}
	}
	var params map[string]any
	if err := json.Unmarshal([]byte(raw), &params); err != nil {
		return map[string]any{"raw": raw}
	}
	if params == nil {
		params = map[string]any{}
	}
	return params
}
