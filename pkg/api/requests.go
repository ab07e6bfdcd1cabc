package api

// ApproveActionRequest is the body for approving a pending action. All
// fields are optional; an empty body is a plain one-shot approval.
type ApproveActionRequest struct {
	ApproveSimilar bool           `json:"approve_similar,omitempty"`
	ModifiedParams map[string]any `json:"modified_params,omitempty"`
	RememberScope  string         `json:"remember_scope,omitempty"`
}

// SetLevelRequest changes a project's autonomy level.
type SetLevelRequest struct {
	ProjectPath string `json:"project_path"`
	Level       string `json:"level" binding:"required"`
}

// SetRulesRequest replaces a project's allowlist and blocklist.
type SetRulesRequest struct {
	ProjectPath string   `json:"project_path"`
	Allowlist   []string `json:"allowlist"`
	Blocklist   []string `json:"blocklist"`
}

// KillRequest triggers the kill switch.
type KillRequest struct {
	Reason string `json:"reason,omitempty"`
}

// ToolApprovalRequest marks an external tool as pre-approved or not.
// Approved is a pointer so an explicit false binds.
type ToolApprovalRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}
