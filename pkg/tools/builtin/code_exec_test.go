package builtin

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeExecutionCapturesOutput(t *testing.T) {
	v := newValidator(t)
	tool := NewCodeExecutionTool(v)

	res, err := tool.Execute(context.Background(), map[string]any{
		"language": "bash",
		"code":     "echo out; echo err 1>&2",
	}, nil)
	require.NoError(t, err)
	data := resultData(t, res)
	assert.Equal(t, 0, data["exit_code"])
	assert.Equal(t, "out\n", data["stdout"])
	assert.Equal(t, "err\n", data["stderr"])
	assert.Equal(t, false, data["timed_out"])
	assert.Equal(t, "bash", data["language"])
}

func TestCodeExecutionNonZeroExit(t *testing.T) {
	v := newValidator(t)
	tool := NewCodeExecutionTool(v)

	res, err := tool.Execute(context.Background(), map[string]any{
		"language": "bash",
		"code":     "exit 3",
	}, nil)
	require.NoError(t, err)
	assert.False(t, res.Success)
	data := res.Data.(map[string]any)
	assert.Equal(t, 3, data["exit_code"])
}

func TestCodeExecutionTimeoutKillsProcess(t *testing.T) {
	v := newValidator(t)
	tool := NewCodeExecutionTool(v)

	res, err := tool.Execute(context.Background(), map[string]any{
		"language":  "bash",
		"code":      "sleep 30",
		"timeout_s": 1,
	}, nil)
	require.NoError(t, err)
	assert.False(t, res.Success)
	data := res.Data.(map[string]any)
	assert.Equal(t, true, data["timed_out"])
	assert.Less(t, data["duration_s"].(float64), 10.0)
}

func TestCodeExecutionRunsInProjectDir(t *testing.T) {
	v := newValidator(t)
	tool := NewCodeExecutionTool(v)

	res, err := tool.Execute(context.Background(), map[string]any{
		"language": "bash",
		"code":     "pwd",
	}, nil)
	require.NoError(t, err)
	data := resultData(t, res)
	assert.Equal(t, v.Root(), strings.TrimSpace(data["stdout"].(string)))
}

func TestCodeExecutionLongCodeViaTempFile(t *testing.T) {
	v := newValidator(t)
	tool := NewCodeExecutionTool(v)

	// Padding comments push the snippet over the inline limit.
	code := "echo long\n" + strings.Repeat("# padding line to grow the script body\n", 80)
	require.Greater(t, len(code), inlineCodeLimit)

	res, err := tool.Execute(context.Background(), map[string]any{
		"language": "bash",
		"code":     code,
	}, nil)
	require.NoError(t, err)
	data := resultData(t, res)
	assert.Equal(t, "long\n", data["stdout"])
}

func TestCodeExecutionUnknownLanguage(t *testing.T) {
	v := newValidator(t)
	tool := NewCodeExecutionTool(v)

	res, err := tool.Execute(context.Background(), map[string]any{
		"language": "cobol",
		"code":     "DISPLAY 'HI'.",
	}, nil)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "unsupported language")
}
