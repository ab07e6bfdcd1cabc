package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/pkg/models"
)

// collectChunks drains a stream channel with a deadline so a stalled
// producer fails the test instead of hanging it.
func collectChunks(t *testing.T, ch <-chan StreamChunk) []StreamChunk {
	t.Helper()
	var out []StreamChunk
	deadline := time.After(2 * time.Second)
	for {
		select {
		case c, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, c)
		case <-deadline:
			t.Fatal("timed out draining stream")
		}
	}
}

func TestNewRejectsUnknownProvider(t *testing.T) {
	t.Setenv(EnvTestMode, "")

	_, err := New(Config{Provider: "mistral"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown chat provider")
}

func TestNewRequiresAPIKey(t *testing.T) {
	t.Setenv(EnvTestMode, "")
	t.Setenv("XAI_API_KEY", "")

	_, err := New(Config{Provider: ProviderXAI})
	require.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Contains(t, err.Error(), "XAI_API_KEY")
}

func TestNewTestModeForcesStub(t *testing.T) {
	t.Setenv(EnvTestMode, "1")

	model, err := New(Config{Provider: ProviderAnthropic})
	require.NoError(t, err)
	assert.IsType(t, &StubModel{}, model)
}

func TestNewAnthropicDefaultsModel(t *testing.T) {
	t.Setenv(EnvTestMode, "")

	model, err := New(Config{Provider: ProviderAnthropic, APIKey: "test-key"})
	require.NoError(t, err)
	am, ok := model.(*AnthropicModel)
	require.True(t, ok)
	assert.Equal(t, defaultModels[ProviderAnthropic], am.model)
}

func TestNewGoogleUsesOpenAICompatiblePath(t *testing.T) {
	t.Setenv(EnvTestMode, "")

	model, err := New(Config{Provider: ProviderGoogle, APIKey: "test-key"})
	require.NoError(t, err)
	om, ok := model.(*OpenAIModel)
	require.True(t, ok)
	assert.Equal(t, defaultModels[ProviderGoogle], om.model)
}

func TestNewReadsKeyFromEnvironment(t *testing.T) {
	t.Setenv(EnvTestMode, "")
	t.Setenv("OPENAI_API_KEY", "from-env")

	model, err := New(Config{Provider: ProviderOpenAI, Model: "gpt-4o-mini"})
	require.NoError(t, err)
	om, ok := model.(*OpenAIModel)
	require.True(t, ok)
	assert.Equal(t, "gpt-4o-mini", om.model)
}

func TestDecodeToolArguments(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]any
	}{
		{name: "valid object", raw: `{"path":"README.md","depth":2}`, want: map[string]any{"path": "README.md", "depth": float64(2)}},
		{name: "empty string", raw: "", want: map[string]any{}},
		{name: "whitespace", raw: "  \n", want: map[string]any{}},
		{name: "json null", raw: "null", want: map[string]any{}},
		{name: "malformed", raw: `{broken`, want: map[string]any{"raw": `{broken`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeToolArguments(tt.raw))
		})
	}
}

func TestEnsureUsagePassesReportedUsageThrough(t *testing.T) {
	req := Request{Messages: []models.Message{{Role: models.RoleUser, Content: "hello"}}}
	resp := &Response{Content: "hi", Usage: Usage{InputTokens: 12, OutputTokens: 3}}
	assert.Equal(t, Usage{InputTokens: 12, OutputTokens: 3}, EnsureUsage(req, resp))
}

func TestEnsureUsageEstimatesWhenUnreported(t *testing.T) {
	req := Request{Messages: []models.Message{
		{Role: models.RoleUser, Content: "summarize the release notes for me in detail"},
	}}
	resp := &Response{Content: "The release adds generics to the standard library sort package."}

	usage := EnsureUsage(req, resp)
	assert.Positive(t, usage.InputTokens)
	assert.Positive(t, usage.OutputTokens)
}
