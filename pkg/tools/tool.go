// Package tools defines the tool ABI and the process-wide registry that
// validates parameters and dispatches invocations to built-in and external
// tools.
package tools

import (
	"context"
	"errors"

	"github.com/praxislabs/praxis/pkg/models"
)

// Registry dispatch errors. ErrInvalidParams marks schema validation
// failures, which the executor never retries.
var (
	ErrToolNotFound  = errors.New("tool not found")
	ErrInvalidParams = errors.New("invalid tool parameters")
)

// AgentContext is the per-session view handed to every tool execution.
// Tools may read Messages and read/write Variables; everything else is
// theirs to leave alone.
type AgentContext struct {
	SessionID   string
	ProjectPath string
	Messages    []models.Message
	Variables   map[string]any
}

// Tool is one invokable capability. Execute returns an error only for
// infrastructure failures (transport, subprocess spawn); a tool that ran and
// failed reports that through ToolResult.Success=false. The registry
// validates parameters against the definition's schema before Execute is
// called, so implementations may assume the declared shape.
type Tool interface {
	Definition() models.ToolDefinition
	Execute(ctx context.Context, params map[string]any, agentCtx *AgentContext) (*models.ToolResult, error)
}
