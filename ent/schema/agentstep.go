package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentStep holds the schema definition for the AgentStep entity.
// One row per plan step, persisted for replay and history.
type AgentStep struct {
	ent.Schema
}

// Fields of the AgentStep.
func (AgentStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Immutable(),
		field.Int("step_id").
			Comment("Step id within the plan (1-based, referenced by dependencies)"),
		field.Text("description"),
		field.String("tool_name").
			Optional().
			Nillable().
			Comment("Null for reasoning-only steps"),
		field.JSON("params", map[string]interface{}{}).
			Optional(),
		field.JSON("dependencies", []int{}).
			Optional().
			StorageKey("deps"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "skipped").
			Default("pending"),
		field.Text("result").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),
	}
}

// Edges of the AgentStep.
func (AgentStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", AgentSession.Type).
			Ref("steps").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentStep.
func (AgentStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "step_id").
			Unique(),
		index.Fields("status"),
	}
}
