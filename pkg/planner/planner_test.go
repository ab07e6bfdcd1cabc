package planner

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/pkg/llm"
	"github.com/praxislabs/praxis/pkg/models"
)

// capturingModel records the last request and replays a scripted response.
type capturingModel struct {
	lastRequest llm.Request
	resp        *llm.Response
	err         error
}

func (c *capturingModel) Chat(_ context.Context, req llm.Request) (*llm.Response, error) {
	c.lastRequest = req
	return c.resp, c.err
}

func (c *capturingModel) ChatStream(ctx context.Context, req llm.Request) (<-chan llm.StreamChunk, error) {
	resp, err := c.Chat(ctx, req)
	if err != nil {
		return nil, err
	}
	chunks := make(chan llm.StreamChunk, 2)
	chunks <- llm.StreamChunk{Content: resp.Content}
	chunks <- llm.StreamChunk{IsFinal: true}
	close(chunks)
	return chunks, nil
}

func searchCatalog() []models.ToolDefinition {
	return []models.ToolDefinition{{
		Name:        "web_search",
		Description: "Search the web",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query":       map[string]any{"type": "string", "description": "Search terms"},
				"max_results": map[string]any{"type": "integer", "default": 5},
			},
			"required": []any{"query"},
		},
	}}
}

func TestCreatePlanParsesStructuredReply(t *testing.T) {
	model := &capturingModel{resp: &llm.Response{
		Content: `{
  "task": "echoed task",
  "overview": "Search, then summarize.",
  "steps": [
    {"id": 1, "description": "Search for Go release notes", "tool_name": "web_search", "params": {"query": "go 1.25 release notes"}, "dependencies": []},
    {"id": 2, "description": "Summarize the findings", "tool_name": null, "dependencies": [1]}
  ]
}`,
		Usage: llm.Usage{InputTokens: 120, OutputTokens: 80},
	}}
	p := New(model)

	plan, usage, err := p.CreatePlan(context.Background(), "summarize go 1.25", searchCatalog(), nil)
	require.NoError(t, err)
	assert.Equal(t, llm.Usage{InputTokens: 120, OutputTokens: 80}, usage)

	// Canonical task wins over the model's echo.
	assert.Equal(t, "summarize go 1.25", plan.Task)
	assert.Equal(t, "Search, then summarize.", plan.Overview)
	require.Len(t, plan.Steps, 2)

	first := plan.Steps[0]
	require.NotNil(t, first.ToolName)
	assert.Equal(t, "web_search", *first.ToolName)
	assert.Equal(t, map[string]any{"query": "go 1.25 release notes"}, first.Params)
	assert.Equal(t, models.StepPending, first.Status)

	second := plan.Steps[1]
	assert.Nil(t, second.ToolName)
	assert.Equal(t, []int{1}, second.Dependencies)
	assert.Equal(t, models.StepPending, second.Status)
}

func TestCreatePlanEstimatesUsageWhenUnreported(t *testing.T) {
	model := &capturingModel{resp: &llm.Response{
		Content: `{"task":"t","steps":[{"id":1,"description":"do it"}]}`,
	}}
	p := New(model)

	_, usage, err := p.CreatePlan(context.Background(), "t", searchCatalog(), nil)
	require.NoError(t, err)

	// No usage block in the reply: the planning call is estimated from the
	// prompt and reply text so the session budget still moves.
	assert.Positive(t, usage.InputTokens)
	assert.Positive(t, usage.OutputTokens)
}

func TestCreatePlanUnwrapsMarkdownFences(t *testing.T) {
	model := &capturingModel{resp: &llm.Response{
		Content: "```json\n{\"task\":\"t\",\"steps\":[{\"id\":1,\"description\":\"do it\"}]}\n```",
	}}
	p := New(model)

	plan, _, err := p.CreatePlan(context.Background(), "t", nil, nil)
	require.NoError(t, err)
	require.Len(t, plan.Steps, 1)
	assert.Equal(t, "do it", plan.Steps[0].Description)
}

func TestCreatePlanFallsBackOnUnusableReplies(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "prose", content: "I think we should start by searching the web."},
		{name: "empty", content: ""},
		{name: "no steps", content: `{"task":"t","steps":[]}`},
		{name: "truncated json", content: `{"task":"t","steps":[{"id":1,`},
		{name: "duplicate ids", content: `{"steps":[{"id":1,"description":"a"},{"id":1,"description":"b"}]}`},
		{name: "unknown dependency", content: `{"steps":[{"id":1,"description":"a","dependencies":[9]}]}`},
		{name: "dependency cycle", content: `{"steps":[{"id":1,"description":"a","dependencies":[2]},{"id":2,"description":"b","dependencies":[1]}]}`},
		{name: "missing description", content: `{"steps":[{"id":1}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := &capturingModel{resp: &llm.Response{
				Content: tt.content,
				Usage:   llm.Usage{InputTokens: 7, OutputTokens: 3},
			}}
			p := New(model)

			plan, usage, err := p.CreatePlan(context.Background(), "write the summary", nil, nil)
			require.NoError(t, err)
			// The planning call still consumed tokens.
			assert.Equal(t, llm.Usage{InputTokens: 7, OutputTokens: 3}, usage)

			require.Len(t, plan.Steps, 1)
			assert.Nil(t, plan.Steps[0].ToolName)
			assert.Equal(t, "write the summary", plan.Steps[0].Description)
			assert.Equal(t, models.StepPending, plan.Steps[0].Status)
		})
	}
}

func TestCreatePlanNormalizesEmptyToolName(t *testing.T) {
	model := &capturingModel{resp: &llm.Response{
		Content: `{"steps":[{"id":1,"description":"think","tool_name":""}]}`,
	}}
	p := New(model)

	plan, _, err := p.CreatePlan(context.Background(), "t", nil, nil)
	require.NoError(t, err)
	assert.Nil(t, plan.Steps[0].ToolName)
}

func TestCreatePlanPropagatesModelError(t *testing.T) {
	model := &capturingModel{err: fmt.Errorf("rate limited")}
	p := New(model)

	_, _, err := p.CreatePlan(context.Background(), "t", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "planning chat")
}

func TestCreatePlanPromptIncludesCatalogAndHistory(t *testing.T) {
	model := &capturingModel{resp: &llm.Response{
		Content: `{"steps":[{"id":1,"description":"d"}]}`,
	}}
	p := New(model)

	history := []models.Message{{Role: models.RoleUser, Content: "earlier context"}}
	_, _, err := p.CreatePlan(context.Background(), "find the bug", searchCatalog(), history)
	require.NoError(t, err)

	req := model.lastRequest
	// Catalog rides in the prompt text; no function-calling tools are passed
	// because the reply must be the plan JSON itself.
	assert.Empty(t, req.Tools)
	require.GreaterOrEqual(t, len(req.Messages), 3)

	system := req.Messages[0]
	assert.Equal(t, models.RoleSystem, system.Role)
	assert.Contains(t, system.Content, "web_search")
	assert.Contains(t, system.Content, "query (required, string)")

	assert.Equal(t, "earlier context", req.Messages[1].Content)

	last := req.Messages[len(req.Messages)-1]
	assert.Equal(t, models.RoleUser, last.Role)
	assert.Contains(t, last.Content, "find the bug")
}

func TestFormatToolCatalog(t *testing.T) {
	defs := []models.ToolDefinition{
		{
			Name:        "file_write",
			Description: "Write a file",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"path":    map[string]any{"type": "string", "description": "Target path"},
					"mode":    map[string]any{"type": "string", "enum": []any{"create", "overwrite"}},
					"content": map[string]any{"type": "string"},
				},
				"required": []any{"path", "content"},
			},
		},
		{Name: "noop", Description: "Does nothing"},
	}

	out := FormatToolCatalog(defs)
	assert.Contains(t, out, "1. **file_write**: Write a file")
	assert.Contains(t, out, "path (required, string): Target path")
	assert.Contains(t, out, "content (required, string)")
	assert.Contains(t, out, `mode (optional, string) [choices: ["create", "overwrite"]]`)
	assert.Contains(t, out, "2. **noop**: Does nothing")
	assert.Contains(t, out, "**Parameters**: None")

	assert.Equal(t, "No tools available.", FormatToolCatalog(nil))
}

func TestFallbackPlanShape(t *testing.T) {
	plan := FallbackPlan("answer the question")
	require.NoError(t, plan.Validate())
	require.Len(t, plan.Steps, 1)
	assert.Equal(t, 1, plan.Steps[0].ID)
	assert.Nil(t, plan.Steps[0].ToolName)
	assert.Empty(t, plan.Steps[0].Dependencies)
	runnable := plan.NextRunnable()
	require.NotNil(t, runnable)
	assert.Equal(t, 1, runnable.ID)
}
