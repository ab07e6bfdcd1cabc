package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExternalServer holds the schema definition for the ExternalServer entity.
// Configuration for an external tool server reachable over stdio or
// streamable HTTP. Stdio fields are populated iff transport=stdio, HTTP
// fields iff transport=http.
type ExternalServer struct {
	ent.Schema
}

// Fields of the ExternalServer.
func (ExternalServer) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			Unique(),
		field.String("description").
			Optional(),
		field.Enum("transport").
			Values("stdio", "http"),
		field.String("command").
			Optional().
			Nillable(),
		field.JSON("args", []string{}).
			Optional().
			StorageKey("args_json"),
		field.JSON("env", map[string]string{}).
			Optional().
			StorageKey("env_json"),
		field.String("url").
			Optional().
			Nillable(),
		field.JSON("headers", map[string]string{}).
			Optional().
			StorageKey("headers_json"),
		field.Enum("trust").
			Values("builtin", "verified", "user_added").
			Default("user_added"),
		field.Bool("sandbox_enabled").
			Default(true),
		field.String("category").
			Optional(),
		field.Bool("enabled").
			Default(true),
		field.Time("created_at").
			Default(time.Now),
		field.Time("last_connected").
			Optional().
			Nillable(),
		field.String("last_error").
			Optional().
			Nillable(),
	}
}

// Edges of the ExternalServer.
func (ExternalServer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("tool_approvals", ToolApproval.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ExternalServer.
func (ExternalServer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("enabled"),
		index.Fields("trust"),
	}
}
