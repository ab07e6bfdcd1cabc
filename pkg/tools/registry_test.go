package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/pkg/models"
)

type fakeTool struct {
	def  models.ToolDefinition
	exec func(params map[string]any) (*models.ToolResult, error)
}

func (f *fakeTool) Definition() models.ToolDefinition { return f.def }

func (f *fakeTool) Execute(_ context.Context, params map[string]any, _ *AgentContext) (*models.ToolResult, error) {
	if f.exec != nil {
		return f.exec(params)
	}
	return &models.ToolResult{Success: true, Data: "ok"}, nil
}

func echoTool(name string) *fakeTool {
	return &fakeTool{
		def: models.ToolDefinition{
			Name:        name,
			Description: "echoes its input",
			Category:    models.CategoryGeneral,
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"text":  map[string]any{"type": "string"},
					"count": map[string]any{"type": "integer"},
				},
				"required": []string{"text"},
			},
		},
	}
}

func TestRegisterAndLookupBuiltin(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.RegisterBuiltin(echoTool("echo")))

	_, ok := r.Get("echo")
	assert.True(t, ok)
	def, ok := r.Definition("echo")
	require.True(t, ok)
	assert.Equal(t, "echo", def.Name)

	assert.Error(t, r.RegisterBuiltin(echoTool("echo")), "duplicate name must fail")
}

func TestExternalNamespacing(t *testing.T) {
	r := NewRegistry()
	serverID := "0f9c44aa-1111-2222-3333-444455556666"

	name, err := r.RegisterExternal(serverID, "github", models.TrustUserAdded, echoTool("create_issue"))
	require.NoError(t, err)
	assert.Equal(t, "ext_0f9c44aa_create_issue", name)

	def, ok := r.Definition(name)
	require.True(t, ok)
	assert.Equal(t, "[github] echoes its input", def.Description)
	assert.True(t, def.RequiresApprovalDefault, "user_added servers gate by default")
	assert.Equal(t, models.CategoryGeneral, def.Category, "known categories pass through")
}

func TestVerifiedServerSkipsApprovalDefault(t *testing.T) {
	r := NewRegistry()
	name, err := r.RegisterExternal("abcd1234", "internal", models.TrustVerified, echoTool("query"))
	require.NoError(t, err)

	def, _ := r.Definition(name)
	assert.False(t, def.RequiresApprovalDefault)
}

func TestExternalWinsLookupCollision(t *testing.T) {
	r := NewRegistry()
	builtin := echoTool("ext_11111111_probe")
	builtin.def.Description = "builtin"
	require.NoError(t, r.RegisterBuiltin(builtin))

	ext := echoTool("probe")
	ext.def.Description = "external"
	_, err := r.RegisterExternal("11111111-aaaa", "srv", models.TrustVerified, ext)
	require.NoError(t, err)

	def, ok := r.Definition("ext_11111111_probe")
	require.True(t, ok)
	assert.Equal(t, "[srv] external", def.Description)

	defs := r.Definitions()
	count := 0
	for _, d := range defs {
		if d.Name == "ext_11111111_probe" {
			count++
		}
	}
	assert.Equal(t, 1, count, "shadowed builtin must not be enumerated twice")
}

func TestUnregisterServerRemovesOnlyItsTools(t *testing.T) {
	r := NewRegistry()
	_, err := r.RegisterExternal("aaaaaaaa-1", "one", models.TrustVerified, echoTool("a"))
	require.NoError(t, err)
	_, err = r.RegisterExternal("aaaaaaaa-1", "one", models.TrustVerified, echoTool("b"))
	require.NoError(t, err)
	keep, err := r.RegisterExternal("bbbbbbbb-2", "two", models.TrustVerified, echoTool("c"))
	require.NoError(t, err)

	assert.Equal(t, 2, r.UnregisterServer("aaaaaaaa-1"))
	_, ok := r.Get(keep)
	assert.True(t, ok, "other server's tools survive")
	assert.Len(t, r.Definitions(), 1)
}

func TestExecuteValidatesParameters(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.RegisterBuiltin(echoTool("echo")))
	ctx := context.Background()
	agentCtx := &AgentContext{SessionID: "s1"}

	_, err := r.Execute(ctx, models.ToolCall{ID: "c1", ToolName: "echo", Parameters: map[string]any{"count": 3}}, agentCtx)
	assert.ErrorIs(t, err, ErrInvalidParams, "missing required field")

	_, err = r.Execute(ctx, models.ToolCall{ID: "c2", ToolName: "echo", Parameters: map[string]any{"text": 42}}, agentCtx)
	assert.ErrorIs(t, err, ErrInvalidParams, "wrong type")

	res, err := r.Execute(ctx, models.ToolCall{ID: "c3", ToolName: "echo", Parameters: map[string]any{"text": "hi", "count": 2}}, agentCtx)
	require.NoError(t, err, "native ints must survive schema validation")
	assert.True(t, res.Success)
	assert.Equal(t, "c3", res.CallID)
	assert.GreaterOrEqual(t, res.DurationMS, int64(0))
}

func TestExecuteUnknownTool(t *testing.T) {
	r := NewRegistry()
	_, err := r.Execute(context.Background(), models.ToolCall{ToolName: "ghost"}, &AgentContext{})
	assert.ErrorIs(t, err, ErrToolNotFound)
}

func TestDefinitionsSorted(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.RegisterBuiltin(echoTool("zeta")))
	require.NoError(t, r.RegisterBuiltin(echoTool("alpha")))

	defs := r.Definitions()
	require.Len(t, defs, 2)
	assert.Equal(t, "alpha", defs[0].Name)
	assert.Equal(t, "zeta", defs[1].Name)
}

func TestFreeFormCategoryNormalizedToExternal(t *testing.T) {
	r := NewRegistry()
	tool := echoTool("weird")
	tool.def.Category = "quantum-ops"
	name, err := r.RegisterExternal("cccccccc-3", "srv", models.TrustVerified, tool)
	require.NoError(t, err)

	def, _ := r.Definition(name)
	assert.Equal(t, models.CategoryExternal, def.Category)
}
