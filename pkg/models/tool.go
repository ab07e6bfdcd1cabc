package models

// Tool categories. External servers may report free-form categories; anything
// unrecognized is normalized to CategoryExternal at registration time.
const (
	CategoryFilesystem = "filesystem"
	CategoryNetwork    = "network"
	CategoryCode       = "code"
	CategoryBrowser    = "browser"
	CategoryRepo       = "repo"
	CategoryKnowledge  = "knowledge"
	CategoryExternal   = "external"
	CategoryGeneral    = "general"
)

// ToolDefinition describes a tool for registry enumeration and for
// LLM function-calling catalogs. Parameters is a JSON Schema object
// (type:"object").
type ToolDefinition struct {
	Name                     string         `json:"name"`
	Description              string         `json:"description"`
	Parameters               map[string]any `json:"parameters"`
	Category                 string         `json:"category"`
	IsDestructive            bool           `json:"is_destructive"`
	RequiresApprovalDefault  bool           `json:"requires_approval_default"`
}

// ToolCall is a single requested tool invocation.
type ToolCall struct {
	ID         string         `json:"id"`
	ToolName   string         `json:"tool_name"`
	Parameters map[string]any `json:"parameters"`
}

// ToolResult is the outcome of one tool invocation. A result is produced at
// most once per call; failures are captured here rather than escaping as
// panics across the executor boundary.
type ToolResult struct {
	CallID     string `json:"call_id"`
	Success    bool   `json:"success"`
	Data       any    `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}
