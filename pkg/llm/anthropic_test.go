package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/ssestream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/pkg/models"
)

type stubMessagesClient struct {
	lastParams sdk.MessageNewParams
	resp       *sdk.Message
	err        error
	stream     *ssestream.Stream[sdk.MessageStreamEventUnion]
}

func (s *stubMessagesClient) New(_ context.Context, body sdk.MessageNewParams, _ ...option.RequestOption) (*sdk.Message, error) {
	s.lastParams = body
	return s.resp, s.err
}

func (s *stubMessagesClient) NewStreaming(_ context.Context, body sdk.MessageNewParams, _ ...option.RequestOption) *ssestream.Stream[sdk.MessageStreamEventUnion] {
	s.lastParams = body
	return s.stream
}

// eventDecoder feeds canned SSE events to an ssestream.Stream.
type eventDecoder struct {
	events []ssestream.Event
	i      int
	err    error
}

func (d *eventDecoder) Event() ssestream.Event { return d.events[d.i-1] }

func (d *eventDecoder) Next() bool {
	if d.i >= len(d.events) {
		return false
	}
	d.i++
	return true
}

func (d *eventDecoder) Close() error { return nil }
func (d *eventDecoder) Err() error   { return d.err }

func sseEvent(eventType, data string) ssestream.Event {
	return ssestream.Event{Type: eventType, Data: json.RawMessage(data)}
}

func TestAnthropicChatBuildsParams(t *testing.T) {
	stub := &stubMessagesClient{resp: &sdk.Message{
		Content:    []sdk.ContentBlockUnion{{Type: "text", Text: "ok"}},
		StopReason: sdk.StopReasonEndTurn,
	}}
	temp := 0.2
	m := &AnthropicModel{msg: stub, model: "claude-sonnet-4-5", temperature: &temp}

	_, err := m.Chat(context.Background(), Request{
		Messages: []models.Message{
			{Role: models.RoleSystem, Content: "You plan tasks."},
			{Role: models.RoleUser, Content: "list files"},
			{Role: models.RoleAssistant, Content: "on it"},
			{Role: models.RoleTool, Content: "file_list result: []"},
		},
		Tools: []models.ToolDefinition{{
			Name:        "file_list",
			Description: "List directory entries",
			Parameters: map[string]any{
				"type":       "object",
				"properties": map[string]any{"path": map[string]any{"type": "string"}},
			},
		}},
	})
	require.NoError(t, err)

	params := stub.lastParams
	assert.Equal(t, sdk.Model("claude-sonnet-4-5"), params.Model)
	assert.EqualValues(t, DefaultMaxTokens, params.MaxTokens)
	require.Len(t, params.System, 1)
	assert.Equal(t, "You plan tasks.", params.System[0].Text)

	// System prompt is hoisted out; the tool result rides as a user turn.
	require.Len(t, params.Messages, 3)
	assert.Equal(t, sdk.MessageParamRoleUser, params.Messages[0].Role)
	assert.Equal(t, sdk.MessageParamRoleAssistant, params.Messages[1].Role)
	assert.Equal(t, sdk.MessageParamRoleUser, params.Messages[2].Role)

	require.Len(t, params.Tools, 1)
	require.NotNil(t, params.Tools[0].OfTool)
	assert.Equal(t, "file_list", params.Tools[0].OfTool.Name)
	assert.Equal(t, "List directory entries", params.Tools[0].OfTool.Description.Value)
	assert.Contains(t, params.Tools[0].OfTool.InputSchema.ExtraFields, "properties")

	assert.InDelta(t, 0.2, params.Temperature.Value, 1e-9)
}

func TestAnthropicChatTranslatesResponse(t *testing.T) {
	stub := &stubMessagesClient{resp: &sdk.Message{
		Content: []sdk.ContentBlockUnion{
			{Type: "text", Text: "Searching now. "},
			{Type: "tool_use", ID: "tu_1", Name: "web_search", Input: json.RawMessage(`{"query":"golang"}`)},
			{Type: "text", Text: "Done."},
		},
		StopReason: sdk.StopReasonToolUse,
		Usage:      sdk.Usage{InputTokens: 42, OutputTokens: 17},
	}}
	m := &AnthropicModel{msg: stub, model: "claude-sonnet-4-5"}

	resp, err := m.Chat(context.Background(), Request{
		Messages: []models.Message{{Role: models.RoleUser, Content: "search golang"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Searching now. Done.", resp.Content)
	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "tu_1", resp.ToolCalls[0].ID)
	assert.Equal(t, "web_search", resp.ToolCalls[0].ToolName)
	assert.Equal(t, map[string]any{"query": "golang"}, resp.ToolCalls[0].Parameters)
	assert.Equal(t, string(sdk.StopReasonToolUse), resp.StopReason)
	assert.Equal(t, Usage{InputTokens: 42, OutputTokens: 17}, resp.Usage)
}

func TestAnthropicChatWrapsAPIError(t *testing.T) {
	stub := &stubMessagesClient{err: fmt.Errorf("overloaded")}
	m := &AnthropicModel{msg: stub, model: "claude-sonnet-4-5"}

	_, err := m.Chat(context.Background(), Request{
		Messages: []models.Message{{Role: models.RoleUser, Content: "hi"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anthropic chat completion")
}

func TestAnthropicChatRejectsEmptyTranscript(t *testing.T) {
	m := &AnthropicModel{msg: &stubMessagesClient{}, model: "claude-sonnet-4-5"}

	_, err := m.Chat(context.Background(), Request{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "messages are required")
}

func TestAnthropicStreamDeliversTextToolsAndUsage(t *testing.T) {
	dec := &eventDecoder{events: []ssestream.Event{
		sseEvent("content_block_delta", `{"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":"Hello "}}`),
		sseEvent("content_block_delta", `{"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":"world"}}`),
		sseEvent("content_block_start", `{"type":"content_block_start","index":1,"content_block":{"type":"tool_use","id":"tu_9","name":"repo"}}`),
		sseEvent("content_block_delta", `{"type":"content_block_delta","index":1,"delta":{"type":"input_json_delta","partial_json":"{\"action\":"}}`),
		sseEvent("content_block_delta", `{"type":"content_block_delta","index":1,"delta":{"type":"input_json_delta","partial_json":"\"read_file\"}"}}`),
		sseEvent("content_block_stop", `{"type":"content_block_stop","index":1}`),
		sseEvent("message_delta", `{"type":"message_delta","delta":{"stop_reason":"tool_use"},"usage":{"input_tokens":3,"output_tokens":7}}`),
		sseEvent("message_stop", `{"type":"message_stop"}`),
	}}
	stub := &stubMessagesClient{stream: ssestream.NewStream[sdk.MessageStreamEventUnion](dec, nil)}
	m := &AnthropicModel{msg: stub, model: "claude-sonnet-4-5"}

	ch, err := m.ChatStream(context.Background(), Request{
		Messages: []models.Message{{Role: models.RoleUser, Content: "read the readme"}},
	})
	require.NoError(t, err)

	chunks := collectChunks(t, ch)
	require.Len(t, chunks, 4)
	assert.Equal(t, "Hello ", chunks[0].Content)
	assert.Equal(t, "world", chunks[1].Content)

	require.NotNil(t, chunks[2].ToolCall)
	assert.Equal(t, "repo", chunks[2].ToolCall.ToolName)
	assert.Equal(t, map[string]any{"action": "read_file"}, chunks[2].ToolCall.Parameters)

	final := chunks[3]
	assert.True(t, final.IsFinal)
	assert.Equal(t, "tool_use", final.StopReason)
	require.NotNil(t, final.Usage)
	assert.Equal(t, Usage{InputTokens: 3, OutputTokens: 7}, *final.Usage)
}

func TestAnthropicStreamSurfacesMidStreamError(t *testing.T) {
	dec := &eventDecoder{
		events: []ssestream.Event{
			sseEvent("content_block_delta", `{"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":"par"}}`),
		},
		err: fmt.Errorf("connection reset"),
	}
	stub := &stubMessagesClient{stream: ssestream.NewStream[sdk.MessageStreamEventUnion](dec, nil)}
	m := &AnthropicModel{msg: stub, model: "claude-sonnet-4-5"}

	ch, err := m.ChatStream(context.Background(), Request{
		Messages: []models.Message{{Role: models.RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)

	chunks := collectChunks(t, ch)
	require.NotEmpty(t, chunks)
	final := chunks[len(chunks)-1]
	assert.True(t, final.IsFinal)
	require.Error(t, final.Err)
	assert.Contains(t, final.Err.Error(), "anthropic stream")
}
