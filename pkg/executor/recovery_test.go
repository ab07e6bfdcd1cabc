package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxislabs/praxis/pkg/models"
	"github.com/praxislabs/praxis/pkg/tools"
)

// fakeNetError satisfies net.Error with a controllable timeout flag.
type fakeNetError struct{ timeout bool }

func (f fakeNetError) Error() string   { return "net: request failed" }
func (f fakeNetError) Timeout() bool   { return f.timeout }
func (f fakeNetError) Temporary() bool { return false }

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindInternal},
		{"context canceled", context.Canceled, KindCancelled},
		{"wrapped deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), KindTimeout},
		{"invalid params", fmt.Errorf("%w: tool %q: missing path", tools.ErrInvalidParams, "file_write"), KindValidation},
		{"unknown tool", fmt.Errorf("%w: %q", tools.ErrToolNotFound, "ghost"), KindValidation},
		{"budget sentinel", ErrBudgetExceeded, KindBudgetExceeded},
		{"rejection sentinel", fmt.Errorf("step 3: %w", ErrApprovalRejected), KindApprovalRejected},
		{"eof", io.EOF, KindTransport},
		{"unexpected eof", fmt.Errorf("read frame: %w", io.ErrUnexpectedEOF), KindTransport},
		{"closed pipe", io.ErrClosedPipe, KindTransport},
		{"connection refused", errors.New("dial tcp 10.0.0.7:8811: connect: connection refused"), KindTransport},
		{"connection reset", errors.New("read tcp: connection reset by peer"), KindTransport},
		{"broken pipe", errors.New("write unix @: broken pipe"), KindTransport},
		{"no such host", errors.New("dial tcp: lookup etp.internal: no such host"), KindTransport},
		{"server session closed", errors.New("call tools/call: session closed"), KindTransport},
		{"net error timeout", fakeNetError{timeout: true}, KindTimeout},
		{"net error other", fakeNetError{}, KindTransport},
		{"tool-specific failure", errors.New("exit status 2"), KindToolFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyError(tt.err))
		})
	}
}

func TestKindRetryable(t *testing.T) {
	assert.True(t, KindTransport.Retryable())
	assert.True(t, KindTimeout.Retryable())

	for _, kind := range []Kind{
		KindBudgetExceeded, KindValidation, KindToolFailure,
		KindCancelled, KindApprovalRejected, KindInternal,
	} {
		assert.False(t, kind.Retryable(), "kind %s", kind)
	}
}

func TestInvokeToolContainsPanic(t *testing.T) {
	exploder := &scriptedTool{name: "exploder", run: func(context.Context, int, map[string]any) (*models.ToolResult, error) {
		panic("index out of range")
	}}
	registry := tools.NewRegistry()
	require.NoError(t, registry.RegisterBuiltin(exploder))
	e := New(Options{Tools: registry})

	call := models.ToolCall{ID: "call-1", ToolName: "exploder", Parameters: map[string]any{}}
	result, err := e.invokeTool(context.Background(), call, &tools.AgentContext{SessionID: "s1"})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "tool panic")
	assert.Contains(t, err.Error(), "exploder")
	assert.Contains(t, err.Error(), "index out of range")
	assert.Equal(t, KindInternal, ClassifyError(err))
	assert.False(t, ClassifyError(err).Retryable())
}

func TestInvokeToolPassesResultThrough(t *testing.T) {
	registry := tools.NewRegistry()
	require.NoError(t, registry.RegisterBuiltin(okTool("echo", "hello")))
	e := New(Options{Tools: registry})

	call := models.ToolCall{ID: "call-2", ToolName: "echo", Parameters: map[string]any{"text": "hello"}}
	result, err := e.invokeTool(context.Background(), call, &tools.AgentContext{SessionID: "s1"})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Success)
	assert.Equal(t, "hello", result.Data)
	assert.Equal(t, "call-2", result.CallID)
}
