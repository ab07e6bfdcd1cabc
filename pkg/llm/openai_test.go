package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/pkg/models"
)

type fakeChatClient struct {
	lastRequest openai.ChatCompletionRequest
	resp        openai.ChatCompletionResponse
	err         error
}

func (f *fakeChatClient) CreateChatCompletion(_ context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.lastRequest = request
	return f.resp, f.err
}

type fakeChatStream struct {
	responses []openai.ChatCompletionStreamResponse
	err       error
	closed    bool
}

func (f *fakeChatStream) Recv() (openai.ChatCompletionStreamResponse, error) {
	if len(f.responses) == 0 {
		if f.err != nil {
			return openai.ChatCompletionStreamResponse{}, f.err
		}
		return openai.ChatCompletionStreamResponse{}, io.EOF
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp, nil
}

func (f *fakeChatStream) Close() error {
	f.closed = true
	return nil
}

func streamedModel(fake *fakeChatStream) (*OpenAIModel, *openai.ChatCompletionRequest) {
	captured := &openai.ChatCompletionRequest{}
	m := &OpenAIModel{
		chat:  &fakeChatClient{},
		model: "gpt-4o",
		streamFn: func(_ context.Context, request openai.ChatCompletionRequest) (chatStream, error) {
			*captured = request
			return fake, nil
		},
	}
	return m, captured
}

func TestOpenAIChatRequestShape(t *testing.T) {
	fake := &fakeChatClient{resp: openai.ChatCompletionResponse{}}
	temp := 0.3
	m := &OpenAIModel{chat: fake, model: "gpt-4o", maxTokens: 512, temperature: &temp}

	_, err := m.Chat(context.Background(), Request{
		Messages: []models.Message{
			{Role: models.RoleSystem, Content: "You plan tasks."},
			{Role: models.RoleUser, Content: "list files"},
			{Role: models.RoleTool, Content: "file_list result: []"},
		},
		Tools: []models.ToolDefinition{
			{
				Name:        "file_list",
				Description: "List directory entries",
				Parameters: map[string]any{
					"type":       "object",
					"properties": map[string]any{"path": map[string]any{"type": "string"}},
				},
			},
			{Name: "bare_tool", Description: "No schema declared"},
		},
	})
	require.NoError(t, err)

	req := fake.lastRequest
	assert.Equal(t, "gpt-4o", req.Model)
	assert.Equal(t, 512, req.MaxTokens)
	assert.InDelta(t, 0.3, float64(req.Temperature), 1e-6)

	require.Len(t, req.Messages, 3)
	assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
	assert.Equal(t, openai.ChatMessageRoleUser, req.Messages[1].Role)
	// Tool transcripts replay as user turns.
	assert.Equal(t, openai.ChatMessageRoleUser, req.Messages[2].Role)

	require.Len(t, req.Tools, 2)
	assert.Equal(t, openai.ToolTypeFunction, req.Tools[0].Type)
	require.NotNil(t, req.Tools[0].Function)
	assert.Equal(t, "file_list", req.Tools[0].Function.Name)
	schema, err := json.Marshal(req.Tools[0].Function.Parameters)
	require.NoError(t, err)
	assert.Contains(t, string(schema), `"properties"`)

	// A tool without a declared schema still sends a valid object schema.
	bare, err := json.Marshal(req.Tools[1].Function.Parameters)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"object"}`, string(bare))
}

func TestOpenAIChatTranslatesResponse(t *testing.T) {
	fake := &fakeChatClient{resp: openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleAssistant,
				Content: "Checking both sources.",
				ToolCalls: []openai.ToolCall{
					{
						ID:       "call_1",
						Type:     openai.ToolTypeFunction,
						Function: openai.FunctionCall{Name: "web_search", Arguments: `{"query":"golang"}`},
					},
					{
						ID:       "call_2",
						Type:     openai.ToolTypeFunction,
						Function: openai.FunctionCall{Name: "repo", Arguments: `{broken`},
					},
				},
			},
			FinishReason: openai.FinishReasonToolCalls,
		}},
		Usage: openai.Usage{PromptTokens: 12, CompletionTokens: 34},
	}}
	m := &OpenAIModel{chat: fake, model: "gpt-4o"}

	resp, err := m.Chat(context.Background(), Request{
		Messages: []models.Message{{Role: models.RoleUser, Content: "search golang"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Checking both sources.", resp.Content)
	assert.Equal(t, string(openai.FinishReasonToolCalls), resp.StopReason)
	assert.Equal(t, Usage{InputTokens: 12, OutputTokens: 34}, resp.Usage)

	require.Len(t, resp.ToolCalls, 2)
	assert.Equal(t, "call_1", resp.ToolCalls[0].ID)
	assert.Equal(t, "web_search", resp.ToolCalls[0].ToolName)
	assert.Equal(t, map[string]any{"query": "golang"}, resp.ToolCalls[0].Parameters)
	// Malformed arguments are preserved rather than dropped.
	assert.Equal(t, map[string]any{"raw": `{broken`}, resp.ToolCalls[1].Parameters)

	// The fake carries no HTTP headers, so no rate limit info is reported.
	assert.Nil(t, resp.RateLimit)
}

func TestOpenAIChatWrapsAPIError(t *testing.T) {
	fake := &fakeChatClient{err: fmt.Errorf("upstream 500")}
	m := &OpenAIModel{chat: fake, model: "gpt-4o"}

	_, err := m.Chat(context.Background(), Request{
		Messages: []models.Message{{Role: models.RoleUser, Content: "hi"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openai chat completion")
}

func TestOpenAIChatStream(t *testing.T) {
	fake := &fakeChatStream{responses: []openai.ChatCompletionStreamResponse{
		{Choices: []openai.ChatCompletionStreamChoice{{Delta: openai.ChatCompletionStreamChoiceDelta{Content: "Hel"}}}},
		{Choices: []openai.ChatCompletionStreamChoice{{Delta: openai.ChatCompletionStreamChoiceDelta{Content: "lo"}, FinishReason: openai.FinishReasonStop}}},
		{Usage: &openai.Usage{PromptTokens: 5, CompletionTokens: 9}},
	}}
	m, captured := streamedModel(fake)

	ch, err := m.ChatStream(context.Background(), Request{
		Messages: []models.Message{{Role: models.RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)

	chunks := collectChunks(t, ch)
	require.Len(t, chunks, 3)
	assert.Equal(t, "Hel", chunks[0].Content)
	assert.Equal(t, "lo", chunks[1].Content)

	final := chunks[2]
	assert.True(t, final.IsFinal)
	assert.Equal(t, string(openai.FinishReasonStop), final.StopReason)
	require.NotNil(t, final.Usage)
	assert.Equal(t, Usage{InputTokens: 5, OutputTokens: 9}, *final.Usage)

	assert.True(t, fake.closed)
	require.NotNil(t, captured.StreamOptions)
	assert.True(t, captured.StreamOptions.IncludeUsage)
}

func TestOpenAIChatStreamMidStreamError(t *testing.T) {
	fake := &fakeChatStream{
		responses: []openai.ChatCompletionStreamResponse{
			{Choices: []openai.ChatCompletionStreamChoice{{Delta: openai.ChatCompletionStreamChoiceDelta{Content: "par"}}}},
		},
		err: fmt.Errorf("connection reset"),
	}
	m, _ := streamedModel(fake)

	ch, err := m.ChatStream(context.Background(), Request{
		Messages: []models.Message{{Role: models.RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)

	chunks := collectChunks(t, ch)
	require.Len(t, chunks, 2)
	assert.Equal(t, "par", chunks[0].Content)
	require.Error(t, chunks[1].Err)
	assert.True(t, chunks[1].IsFinal)
	assert.Contains(t, chunks[1].Err.Error(), "openai stream")
}

func TestParseRateLimitHeaders(t *testing.T) {
	h := http.Header{}
	h.Set("x-ratelimit-remaining-requests", "99")
	h.Set("x-ratelimit-reset-requests", "6s")

	before := time.Now()
	rl := parseRateLimitHeaders(h)
	require.NotNil(t, rl)
	assert.Equal(t, 99, rl.Remaining)
	assert.WithinDuration(t, before.Add(6*time.Second), rl.ResetAt, 2*time.Second)

	assert.Nil(t, parseRateLimitHeaders(http.Header{}))

	junk := http.Header{}
	junk.Set("x-ratelimit-remaining-requests", "plenty")
	assert.Nil(t, parseRateLimitHeaders(junk))
}
