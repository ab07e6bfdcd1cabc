package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"runtime/debug"
	"strings"

	"github.com/praxislabs/praxis/pkg/models"
	"github.com/praxislabs/praxis/pkg/tools"
)

// errToolPanic marks a tool that panicked instead of returning.
var errToolPanic = errors.New("tool panic")

// Failures the executor raises itself. They flow through the same
// classification as tool errors.
var (
	// ErrBudgetExceeded means the session's token budget ran out.
	ErrBudgetExceeded = errors.New("token budget exhausted")

	// ErrApprovalRejected means a human rejected the gated action.
	ErrApprovalRejected = errors.New("approval rejected")
)

// Kind classifies a failure for retry and reporting decisions.
type Kind string

// Failure kinds.
const (
	KindBudgetExceeded   Kind = "budget_exceeded"
	KindTimeout          Kind = "timeout"
	KindValidation       Kind = "validation"
	KindTransport        Kind = "transport"
	KindToolFailure      Kind = "tool_failure"
	KindCancelled        Kind = "cancelled"
	KindApprovalRejected Kind = "approval_rejected"
	KindInternal         Kind = "internal"
)

// Retryable reports whether a failure of this kind may succeed on a fresh
// attempt. Only transport and timeout failures qualify; everything else is
// deterministic or already decided.
func (k Kind) Retryable() bool {
	return k == KindTransport || k == KindTimeout
}

// ClassifyError maps a tool invocation error to its failure kind. The
// mapping decides retry behavior, so it is deliberately conservative:
// anything unrecognized counts as a tool failure and does not retry.
func ClassifyError(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, context.Canceled):
		return KindCancelled
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.Is(err, errToolPanic):
		return KindInternal
	case errors.Is(err, ErrBudgetExceeded):
		return KindBudgetExceeded
	case errors.Is(err, ErrApprovalRejected):
		return KindApprovalRejected
	case errors.Is(err, tools.ErrInvalidParams), errors.Is(err, tools.ErrToolNotFound):
		return KindValidation
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return KindTimeout
		}
		return KindTransport
	}

	if isConnectionError(err) {
		return KindTransport
	}

	return KindToolFailure
}

// isConnectionError detects transport-level failures that arrive as plain
// wrapped errors rather than net.Error values.
func isConnectionError(err error) bool {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.ErrClosedPipe) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, indicator := range []string{
		"connection refused",
		"connection reset",
		"connection closed",
		"broken pipe",
		"no such host",
		"session closed",
		"transport closed",
	} {
		if strings.Contains(msg, indicator) {
			return true
		}
	}
	return false
}

// invokeTool dispatches to the registry with panic containment: a
// panicking tool becomes a non-retryable error instead of unwinding the
// run loop.
func (e *Executor) invokeTool(ctx context.Context, call models.ToolCall, agentCtx *tools.AgentContext) (result *models.ToolResult, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("Tool panicked",
				"tool", call.ToolName,
				"panic", rec,
				"stack", string(debug.Stack()))
			result = nil
			err = fmt.Errorf("%w: %q: %v", errToolPanic, call.ToolName, rec)
		}
	}()
	return e.tools.Execute(ctx, call, agentCtx)
}
