package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentSession holds the schema definition for the AgentSession entity.
// One row per task run, from submission to terminal state.
type AgentSession struct {
	ent.Schema
}

// Fields of the AgentSession.
func (AgentSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Text("task").
			Comment("Original natural-language task"),
		field.Enum("state").
			Values("idle", "planning", "executing", "awaiting_tool", "awaiting_approval", "completed", "failed", "cancelled").
			Default("idle"),
		field.String("project_path").
			Optional().
			Nillable().
			Comment("Project the task runs against; scopes autonomy and classification rules"),
		field.Text("plan_overview").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the session"),
		field.Time("ended_at").
			Optional().
			Nillable().
			Comment("Set exactly once, on transition to a terminal state"),
		field.Int("tokens_in").
			Default(0),
		field.Int("tokens_out").
			Default(0),
		field.Float("cost").
			Default(0),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("Worker claim owner, for orphan detection"),
	}
}

// Edges of the AgentSession.
func (AgentSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("steps", AgentStep.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AgentSession.
func (AgentSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state"),
		index.Fields("state", "created_at"),
		index.Fields("created_at"),
	}
}
