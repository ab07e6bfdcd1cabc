package models

import (
	"time"

	"github.com/praxislabs/praxis/ent"
)

// ApprovalOutcome is the approval_decision recorded on an audit entry.
// Unlike Decision it includes the no-gate cases: auto-executed actions and
// kill-switch aborts.
type ApprovalOutcome string

// Approval outcomes for audit entries.
const (
	OutcomeAuto       ApprovalOutcome = "auto"
	OutcomeApproved   ApprovalOutcome = "approved"
	OutcomeRejected   ApprovalOutcome = "rejected"
	OutcomeTimeout    ApprovalOutcome = "timeout"
	OutcomeKillSwitch ApprovalOutcome = "kill_switch"
)

// AuditRecord carries one attempted tool invocation into the audit store.
// Parameters is the raw payload; the store truncates it to 4 KiB unless
// YoloMode is set, in which case the full payload is stored separately.
type AuditRecord struct {
	SessionID        string
	ToolName         string
	RiskLevel        RiskLevel
	Parameters       map[string]any
	ApprovalDecision ApprovalOutcome
	ApprovedBy       string
	DurationMS       int64
	Success          bool
	Result           string
	Error            string
	YoloMode         bool
}

// AuditFilters contains filtering options for reading the audit log.
type AuditFilters struct {
	SessionID string     `json:"session_id,omitempty"`
	RiskLevel string     `json:"risk_level,omitempty"`
	Since     *time.Time `json:"since,omitempty"`
	Until     *time.Time `json:"until,omitempty"`
	Limit     int        `json:"limit,omitempty"`
	Offset    int        `json:"offset,omitempty"`
}

// AuditListResponse contains a paginated audit page.
type AuditListResponse struct {
	Entries    []*ent.AuditEntry `json:"entries"`
	TotalCount int               `json:"total_count"`
	Limit      int               `json:"limit"`
	Offset     int               `json:"offset"`
}
