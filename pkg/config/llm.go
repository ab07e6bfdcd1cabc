package config

// Chat provider names accepted by llm.provider. Kept in sync with the
// providers pkg/llm actually constructs.
var knownProviders = map[string]bool{
	"anthropic": true,
	"openai":    true,
	"google":    true,
	"xai":       true,
	"stub":      true,
}

// LLMConfig selects and parameterizes the chat model shared by the planner
// and the executor.
type LLMConfig struct {
	// Provider type: anthropic, openai, google, xai, or stub.
	Provider string `yaml:"provider"`

	// Model name; empty uses the provider's default.
	Model string `yaml:"model,omitempty"`

	// Environment variable holding the API key; empty uses the provider's
	// conventional variable (ANTHROPIC_API_KEY, OPENAI_API_KEY, ...).
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// Optional custom endpoint. The OpenAI-compatible providers use this
	// for self-hosted or proxy deployments.
	BaseURL string `yaml:"base_url,omitempty"`

	// Maximum tokens per completion.
	MaxTokens int `yaml:"max_tokens,omitempty"`

	// Sampling temperature; nil uses the provider default.
	Temperature *float64 `yaml:"temperature,omitempty"`
}

// DefaultLLMConfig returns the built-in chat model defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Provider:  "anthropic",
		MaxTokens: 8192,
	}
}
