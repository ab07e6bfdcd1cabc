package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ToolApproval holds the schema definition for the ToolApproval entity.
// Records which tools of an external server the user has blessed.
// Rows are cascade-deleted with their server.
type ToolApproval struct {
	ent.Schema
}

// Fields of the ToolApproval.
func (ToolApproval) Fields() []ent.Field {
	return []ent.Field{
		field.String("server_id").
			Immutable(),
		field.String("tool_name"),
		field.Bool("approved").
			Default(false),
		field.Time("approved_at").
			Optional().
			Nillable(),
	}
}

// Edges of the ToolApproval.
func (ToolApproval) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("server", ExternalServer.Type).
			Ref("tool_approvals").
			Field("server_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ToolApproval.
func (ToolApproval) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("server_id", "tool_name").
			Unique(),
	}
}
