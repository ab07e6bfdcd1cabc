// Code generated by ent, DO NOT EDIT.

package toolapproval

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/praxislabs/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldLTE(FieldID, id))
}

// ServerID applies equality check predicate on the "server_id" field. It's identical to ServerIDEQ.
func ServerID(v string) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldEQ(FieldServerID, v))
}

// ToolName applies equality check predicate on the "tool_name" field. It's identical to ToolNameEQ.
func ToolName(v string) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldEQ(FieldToolName, v))
}

// Approved applies equality check predicate on the "approved" field. It's identical to ApprovedEQ.
func Approved(v bool) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldEQ(FieldApproved, v))
}

// ApprovedAt applies equality check predicate on the "approved_at" field. It's identical to ApprovedAtEQ.
func ApprovedAt(v time.Time) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldEQ(FieldApprovedAt, v))
}

// ServerIDEQ applies the EQ predicate on the "server_id" field.
func ServerIDEQ(v string) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldEQ(FieldServerID, v))
}

// ServerIDNEQ applies the NEQ predicate on the "server_id" field.
func ServerIDNEQ(v string) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldNEQ(FieldServerID, v))
}

// ServerIDIn applies the In predicate on the "server_id" field.
func ServerIDIn(vs ...string) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldIn(FieldServerID, vs...))
}

// ServerIDNotIn applies the NotIn predicate on the "server_id" field.
func ServerIDNotIn(vs ...string) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldNotIn(FieldServerID, vs...))
}

// ServerIDGT applies the GT predicate on the "server_id" field.
func ServerIDGT(v string) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldGT(FieldServerID, v))
}

// ServerIDGTE applies the GTE predicate on the "server_id" field.
func ServerIDGTE(v string) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldGTE(FieldServerID, v))
}

// ServerIDLT applies the LT predicate on the "server_id" field.
func ServerIDLT(v string) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldLT(FieldServerID, v))
}

// ServerIDLTE applies the LTE predicate on the "server_id" field.
func ServerIDLTE(v string) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldLTE(FieldServerID, v))
}

// ServerIDContains applies the Contains predicate on the "server_id" field.
func ServerIDContains(v string) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldContains(FieldServerID, v))
}

// ServerIDHasPrefix applies the HasPrefix predicate on the "server_id" field.
func ServerIDHasPrefix(v string) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldHasPrefix(FieldServerID, v))
}

// ServerIDHasSuffix applies the HasSuffix predicate on the "server_id" field.
func ServerIDHasSuffix(v string) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldHasSuffix(FieldServerID, v))
}

// ServerIDEqualFold applies the EqualFold predicate on the "server_id" field.
func ServerIDEqualFold(v string) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldEqualFold(FieldServerID, v))
}

// ServerIDContainsFold applies the ContainsFold predicate on the "server_id" field.
func ServerIDContainsFold(v string) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldContainsFold(FieldServerID, v))
}

// ToolNameEQ applies the EQ predicate on the "tool_name" field.
func ToolNameEQ(v string) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldEQ(FieldToolName, v))
}

// ToolNameNEQ applies the NEQ predicate on the "tool_name" field.
func ToolNameNEQ(v string) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldNEQ(FieldToolName, v))
}

// ToolNameIn applies the In predicate on the "tool_name" field.
func ToolNameIn(vs ...string) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldIn(FieldToolName, vs...))
}

// ToolNameNotIn applies the NotIn predicate on the "tool_name" field.
func ToolNameNotIn(vs ...string) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldNotIn(FieldToolName, vs...))
}

// ToolNameGT applies the GT predicate on the "tool_name" field.
func ToolNameGT(v string) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldGT(FieldToolName, v))
}

// ToolNameGTE applies the GTE predicate on the "tool_name" field.
func ToolNameGTE(v string) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldGTE(FieldToolName, v))
}

// ToolNameLT applies the LT predicate on the "tool_name" field.
func ToolNameLT(v string) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldLT(FieldToolName, v))
}

// ToolNameLTE applies the LTE predicate on the "tool_name" field.
func ToolNameLTE(v string) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldLTE(FieldToolName, v))
}

// ToolNameContains applies the Contains predicate on the "tool_name" field.
func ToolNameContains(v string) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldContains(FieldToolName, v))
}

// ToolNameHasPrefix applies the HasPrefix predicate on the "tool_name" field.
func ToolNameHasPrefix(v string) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldHasPrefix(FieldToolName, v))
}

// ToolNameHasSuffix applies the HasSuffix predicate on the "tool_name" field.
func ToolNameHasSuffix(v string) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldHasSuffix(FieldToolName, v))
}

// ToolNameEqualFold applies the EqualFold predicate on the "tool_name" field.
func ToolNameEqualFold(v string) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldEqualFold(FieldToolName, v))
}

// ToolNameContainsFold applies the ContainsFold predicate on the "tool_name" field.
func ToolNameContainsFold(v string) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldContainsFold(FieldToolName, v))
}

// ApprovedEQ applies the EQ predicate on the "approved" field.
func ApprovedEQ(v bool) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldEQ(FieldApproved, v))
}

// ApprovedNEQ applies the NEQ predicate on the "approved" field.
func ApprovedNEQ(v bool) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldNEQ(FieldApproved, v))
}

// ApprovedAtEQ applies the EQ predicate on the "approved_at" field.
func ApprovedAtEQ(v time.Time) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldEQ(FieldApprovedAt, v))
}

// ApprovedAtNEQ applies the NEQ predicate on the "approved_at" field.
func ApprovedAtNEQ(v time.Time) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldNEQ(FieldApprovedAt, v))
}

// ApprovedAtIn applies the In predicate on the "approved_at" field.
func ApprovedAtIn(vs ...time.Time) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldIn(FieldApprovedAt, vs...))
}

// ApprovedAtNotIn applies the NotIn predicate on the "approved_at" field.
func ApprovedAtNotIn(vs ...time.Time) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldNotIn(FieldApprovedAt, vs...))
}

// ApprovedAtGT applies the GT predicate on the "approved_at" field.
func ApprovedAtGT(v time.Time) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldGT(FieldApprovedAt, v))
}

// ApprovedAtGTE applies the GTE predicate on the "approved_at" field.
func ApprovedAtGTE(v time.Time) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldGTE(FieldApprovedAt, v))
}

// ApprovedAtLT applies the LT predicate on the "approved_at" field.
func ApprovedAtLT(v time.Time) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldLT(FieldApprovedAt, v))
}

// ApprovedAtLTE applies the LTE predicate on the "approved_at" field.
func ApprovedAtLTE(v time.Time) predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldLTE(FieldApprovedAt, v))
}

// ApprovedAtIsNil applies the IsNil predicate on the "approved_at" field.
func ApprovedAtIsNil() predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldIsNull(FieldApprovedAt))
}

// ApprovedAtNotNil applies the NotNil predicate on the "approved_at" field.
func ApprovedAtNotNil() predicate.ToolApproval {
	return predicate.ToolApproval(sql.FieldNotNull(FieldApprovedAt))
}

// HasServer applies the HasEdge predicate on the "server" edge.
func HasServer() predicate.ToolApproval {
	return predicate.ToolApproval(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ServerTable, ServerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasServerWith applies the HasEdge predicate on the "server" edge with a given conditions (other predicates).
func HasServerWith(preds ...predicate.ExternalServer) predicate.ToolApproval {
	return predicate.ToolApproval(func(s *sql.Selector) {
		step := newServerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ToolApproval) predicate.ToolApproval {
	return predicate.ToolApproval(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ToolApproval) predicate.ToolApproval {
	return predicate.ToolApproval(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ToolApproval) predicate.ToolApproval {
	return predicate.ToolApproval(sql.NotPredicates(p))
}
