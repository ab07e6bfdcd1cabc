package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ProjectAutonomy holds the schema definition for the ProjectAutonomy entity.
// Per-project autonomy level and classification rule lists. L5 (YOLO) is
// never written here: it lives in an in-memory session-only set.
type ProjectAutonomy struct {
	ent.Schema
}

// Fields of the ProjectAutonomy.
func (ProjectAutonomy) Fields() []ent.Field {
	return []ent.Field{
		field.String("project_path").
			Unique().
			Immutable(),
		field.Enum("level").
			Values("L1", "L2", "L3", "L4").
			Default("L2"),
		field.JSON("allowlist", []string{}).
			Optional().
			StorageKey("allowlist_json").
			Comment("Patterns matched against tool name and parameter substrings"),
		field.JSON("blocklist", []string{}).
			Optional().
			StorageKey("blocklist_json"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
