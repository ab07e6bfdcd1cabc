// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentSessionsColumns holds the columns for the "agent_sessions" table.
	AgentSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "task", Type: field.TypeString, Size: 2147483647},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"idle", "planning", "executing", "awaiting_tool", "awaiting_approval", "completed", "failed", "cancelled"}, Default: "idle"},
		{Name: "project_path", Type: field.TypeString, Nullable: true},
		{Name: "plan_overview", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "tokens_in", Type: field.TypeInt, Default: 0},
		{Name: "tokens_out", Type: field.TypeInt, Default: 0},
		{Name: "cost", Type: field.TypeFloat64, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
	}
	// AgentSessionsTable holds the schema information for the "agent_sessions" table.
	AgentSessionsTable = &schema.Table{
		Name:       "agent_sessions",
		Columns:    AgentSessionsColumns,
		PrimaryKey: []*schema.Column{AgentSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentsession_state",
				Unique:  false,
				Columns: []*schema.Column{AgentSessionsColumns[2]},
			},
			{
				Name:    "agentsession_state_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentSessionsColumns[2], AgentSessionsColumns[5]},
			},
			{
				Name:    "agentsession_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentSessionsColumns[5]},
			},
		},
	}
	// AgentStepsColumns holds the columns for the "agent_steps" table.
	AgentStepsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "step_id", Type: field.TypeInt},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "tool_name", Type: field.TypeString, Nullable: true},
		{Name: "params", Type: field.TypeJSON, Nullable: true},
		{Name: "deps", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "skipped"}, Default: "pending"},
		{Name: "result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// AgentStepsTable holds the schema information for the "agent_steps" table.
	AgentStepsTable = &schema.Table{
		Name:       "agent_steps",
		Columns:    AgentStepsColumns,
		PrimaryKey: []*schema.Column{AgentStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_steps_agent_sessions_steps",
				Columns:    []*schema.Column{AgentStepsColumns[12]},
				RefColumns: []*schema.Column{AgentSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentstep_session_id_step_id",
				Unique:  true,
				Columns: []*schema.Column{AgentStepsColumns[12], AgentStepsColumns[1]},
			},
			{
				Name:    "agentstep_status",
				Unique:  false,
				Columns: []*schema.Column{AgentStepsColumns[6]},
			},
		},
	}
	// AuditEntriesColumns holds the columns for the "audit_entries" table.
	AuditEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "risk_level", Type: field.TypeEnum, Enums: []string{"safe", "moderate", "destructive", "critical"}},
		{Name: "parameters", Type: field.TypeString, Size: 2147483647},
		{Name: "full_parameters", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "approval_decision", Type: field.TypeEnum, Enums: []string{"auto", "approved", "rejected", "timeout", "kill_switch"}},
		{Name: "approved_by", Type: field.TypeString, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "yolo_mode", Type: field.TypeBool, Default: false},
	}
	// AuditEntriesTable holds the schema information for the "audit_entries" table.
	AuditEntriesTable = &schema.Table{
		Name:       "audit_entries",
		Columns:    AuditEntriesColumns,
		PrimaryKey: []*schema.Column{AuditEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditentry_session_id",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[1]},
			},
			{
				Name:    "auditentry_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[2]},
			},
			{
				Name:    "auditentry_risk_level",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[4]},
			},
			{
				Name:    "auditentry_yolo_mode_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[13], AuditEntriesColumns[2]},
			},
		},
	}
	// ExternalServersColumns holds the columns for the "external_servers" table.
	ExternalServersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "transport", Type: field.TypeEnum, Enums: []string{"stdio", "http"}},
		{Name: "command", Type: field.TypeString, Nullable: true},
		{Name: "args_json", Type: field.TypeJSON, Nullable: true},
		{Name: "env_json", Type: field.TypeJSON, Nullable: true},
		{Name: "url", Type: field.TypeString, Nullable: true},
		{Name: "headers_json", Type: field.TypeJSON, Nullable: true},
		{Name: "trust", Type: field.TypeEnum, Enums: []string{"builtin", "verified", "user_added"}, Default: "user_added"},
		{Name: "sandbox_enabled", Type: field.TypeBool, Default: true},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_connected", Type: field.TypeTime, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
	}
	// ExternalServersTable holds the schema information for the "external_servers" table.
	ExternalServersTable = &schema.Table{
		Name:       "external_servers",
		Columns:    ExternalServersColumns,
		PrimaryKey: []*schema.Column{ExternalServersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "externalserver_enabled",
				Unique:  false,
				Columns: []*schema.Column{ExternalServersColumns[12]},
			},
			{
				Name:    "externalserver_trust",
				Unique:  false,
				Columns: []*schema.Column{ExternalServersColumns[9]},
			},
		},
	}
	// ProjectAutonomiesColumns holds the columns for the "project_autonomies" table.
	ProjectAutonomiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "project_path", Type: field.TypeString, Unique: true},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"L1", "L2", "L3", "L4"}, Default: "L2"},
		{Name: "allowlist_json", Type: field.TypeJSON, Nullable: true},
		{Name: "blocklist_json", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectAutonomiesTable holds the schema information for the "project_autonomies" table.
	ProjectAutonomiesTable = &schema.Table{
		Name:       "project_autonomies",
		Columns:    ProjectAutonomiesColumns,
		PrimaryKey: []*schema.Column{ProjectAutonomiesColumns[0]},
	}
	// ToolApprovalsColumns holds the columns for the "tool_approvals" table.
	ToolApprovalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "approved", Type: field.TypeBool, Default: false},
		{Name: "approved_at", Type: field.TypeTime, Nullable: true},
		{Name: "server_id", Type: field.TypeString},
	}
	// ToolApprovalsTable holds the schema information for the "tool_approvals" table.
	ToolApprovalsTable = &schema.Table{
		Name:       "tool_approvals",
		Columns:    ToolApprovalsColumns,
		PrimaryKey: []*schema.Column{ToolApprovalsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tool_approvals_external_servers_tool_approvals",
				Columns:    []*schema.Column{ToolApprovalsColumns[4]},
				RefColumns: []*schema.Column{ExternalServersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "toolapproval_server_id_tool_name",
				Unique:  true,
				Columns: []*schema.Column{ToolApprovalsColumns[4], ToolApprovalsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentSessionsTable,
		AgentStepsTable,
		AuditEntriesTable,
		ExternalServersTable,
		ProjectAutonomiesTable,
		ToolApprovalsTable,
	}
)

func init() {
	AgentStepsTable.ForeignKeys[0].RefTable = AgentSessionsTable
	ToolApprovalsTable.ForeignKeys[0].RefTable = ExternalServersTable
}
