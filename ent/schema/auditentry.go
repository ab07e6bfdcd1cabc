package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditEntry holds the schema definition for the AuditEntry entity.
// Append-only record of every attempted tool invocation. Deliberately not
// edged to AgentSession: audit rows follow their own retention schedule
// (30 days standard, 90 days YOLO) and must survive session cleanup.
type AuditEntry struct {
	ent.Schema
}

// Fields of the AuditEntry.
func (AuditEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.String("tool_name"),
		field.Enum("risk_level").
			Values("safe", "moderate", "destructive", "critical"),
		field.Text("parameters").
			Comment("JSON-encoded, truncated at 4 KiB for non-YOLO entries"),
		field.Text("full_parameters").
			Optional().
			Nillable().
			Comment("Untruncated payload, stored only when yolo_mode=true"),
		field.Enum("approval_decision").
			Values("auto", "approved", "rejected", "timeout", "kill_switch"),
		field.String("approved_by").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Default(0),
		field.Bool("success"),
		field.Text("result").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Bool("yolo_mode").
			Default(false),
	}
}

// Indexes of the AuditEntry.
func (AuditEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("timestamp"),
		index.Fields("risk_level"),
		index.Fields("yolo_mode", "timestamp"),
	}
}
