// Code generated by ent, DO NOT EDIT.

package projectautonomy

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/praxislabs/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldLTE(FieldID, id))
}

// ProjectPath applies equality check predicate on the "project_path" field. It's identical to ProjectPathEQ.
func ProjectPath(v string) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldEQ(FieldProjectPath, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProjectPathEQ applies the EQ predicate on the "project_path" field.
func ProjectPathEQ(v string) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldEQ(FieldProjectPath, v))
}

// ProjectPathNEQ applies the NEQ predicate on the "project_path" field.
func ProjectPathNEQ(v string) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldNEQ(FieldProjectPath, v))
}

// ProjectPathIn applies the In predicate on the "project_path" field.
func ProjectPathIn(vs ...string) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldIn(FieldProjectPath, vs...))
}

// ProjectPathNotIn applies the NotIn predicate on the "project_path" field.
func ProjectPathNotIn(vs ...string) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldNotIn(FieldProjectPath, vs...))
}

// ProjectPathGT applies the GT predicate on the "project_path" field.
func ProjectPathGT(v string) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldGT(FieldProjectPath, v))
}

// ProjectPathGTE applies the GTE predicate on the "project_path" field.
func ProjectPathGTE(v string) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldGTE(FieldProjectPath, v))
}

// ProjectPathLT applies the LT predicate on the "project_path" field.
func ProjectPathLT(v string) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldLT(FieldProjectPath, v))
}

// ProjectPathLTE applies the LTE predicate on the "project_path" field.
func ProjectPathLTE(v string) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldLTE(FieldProjectPath, v))
}

// ProjectPathContains applies the Contains predicate on the "project_path" field.
func ProjectPathContains(v string) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldContains(FieldProjectPath, v))
}

// ProjectPathHasPrefix applies the HasPrefix predicate on the "project_path" field.
func ProjectPathHasPrefix(v string) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldHasPrefix(FieldProjectPath, v))
}

// ProjectPathHasSuffix applies the HasSuffix predicate on the "project_path" field.
func ProjectPathHasSuffix(v string) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldHasSuffix(FieldProjectPath, v))
}

// ProjectPathEqualFold applies the EqualFold predicate on the "project_path" field.
func ProjectPathEqualFold(v string) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldEqualFold(FieldProjectPath, v))
}

// ProjectPathContainsFold applies the ContainsFold predicate on the "project_path" field.
func ProjectPathContainsFold(v string) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldContainsFold(FieldProjectPath, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v Level) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v Level) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...Level) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...Level) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldNotIn(FieldLevel, vs...))
}

// AllowlistIsNil applies the IsNil predicate on the "allowlist" field.
func AllowlistIsNil() predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldIsNull(FieldAllowlist))
}

// AllowlistNotNil applies the NotNil predicate on the "allowlist" field.
func AllowlistNotNil() predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldNotNull(FieldAllowlist))
}

// BlocklistIsNil applies the IsNil predicate on the "blocklist" field.
func BlocklistIsNil() predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldIsNull(FieldBlocklist))
}

// BlocklistNotNil applies the NotNil predicate on the "blocklist" field.
func BlocklistNotNil() predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldNotNull(FieldBlocklist))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProjectAutonomy) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProjectAutonomy) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProjectAutonomy) predicate.ProjectAutonomy {
	return predicate.ProjectAutonomy(sql.NotPredicates(p))
}
