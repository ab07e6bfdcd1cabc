package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/pkg/models"
)

func TestStubReplaysScriptedResponsesInOrder(t *testing.T) {
	stub := NewStub(
		Response{Content: "first", Usage: Usage{InputTokens: 1, OutputTokens: 2}},
		Response{Content: "second"},
	)
	stub.Enqueue(Response{Content: "third"})

	req := Request{Messages: []models.Message{{Role: models.RoleUser, Content: "go"}}}
	for _, want := range []string{"first", "second", "third"} {
		resp, err := stub.Chat(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, want, resp.Content)
	}
}

func TestStubDefaultPlanWhenToolsOffered(t *testing.T) {
	stub := NewStub()

	resp, err := stub.Chat(context.Background(), Request{
		Messages: []models.Message{
			{Role: models.RoleSystem, Content: "You plan tasks."},
			{Role: models.RoleUser, Content: "summarize the readme"},
		},
		Tools: []models.ToolDefinition{{Name: "file_read"}},
	})
	require.NoError(t, err)

	var plan struct {
		Task  string `json:"task"`
		Steps []struct {
			ID           int     `json:"id"`
			Description  string  `json:"description"`
			ToolName     *string `json:"tool_name"`
			Dependencies []int   `json:"dependencies"`
		} `json:"steps"`
	}
	require.NoError(t, json.Unmarshal([]byte(resp.Content), &plan))
	assert.Equal(t, "summarize the readme", plan.Task)
	require.Len(t, plan.Steps, 1)
	assert.Nil(t, plan.Steps[0].ToolName)
	assert.Equal(t, "summarize the readme", plan.Steps[0].Description)
	assert.Empty(t, plan.Steps[0].Dependencies)

	assert.Positive(t, resp.Usage.InputTokens)
	assert.Positive(t, resp.Usage.OutputTokens)
	assert.Equal(t, "end_turn", resp.StopReason)
}

func TestStubDefaultEchoWithoutTools(t *testing.T) {
	stub := NewStub()

	resp, err := stub.Chat(context.Background(), Request{
		Messages: []models.Message{{Role: models.RoleUser, Content: "explain the plan"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Stub response: explain the plan", resp.Content)
}

func TestStubStreamDeliversContentThenFinalUsage(t *testing.T) {
	stub := NewStub(Response{
		Content:    "streamed",
		ToolCalls:  []models.ToolCall{{ID: "c1", ToolName: "file_read", Parameters: map[string]any{"path": "README.md"}}},
		StopReason: "tool_use",
		Usage:      Usage{InputTokens: 3, OutputTokens: 4},
	})

	ch, err := stub.ChatStream(context.Background(), Request{
		Messages: []models.Message{{Role: models.RoleUser, Content: "go"}},
	})
	require.NoError(t, err)

	chunks := collectChunks(t, ch)
	require.Len(t, chunks, 3)
	assert.Equal(t, "streamed", chunks[0].Content)
	require.NotNil(t, chunks[1].ToolCall)
	assert.Equal(t, "file_read", chunks[1].ToolCall.ToolName)

	final := chunks[2]
	assert.True(t, final.IsFinal)
	assert.Equal(t, "tool_use", final.StopReason)
	require.NotNil(t, final.Usage)
	assert.Equal(t, Usage{InputTokens: 3, OutputTokens: 4}, *final.Usage)
}

func TestStubHonorsCancelledContext(t *testing.T) {
	stub := NewStub()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stub.Chat(ctx, Request{Messages: []models.Message{{Role: models.RoleUser, Content: "go"}}})
	require.ErrorIs(t, err, context.Canceled)
}
