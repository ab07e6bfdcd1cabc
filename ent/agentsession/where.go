// Code generated by ent, DO NOT EDIT.

package agentsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/praxislabs/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldID, id))
}

// Task applies equality check predicate on the "task" field. It's identical to TaskEQ.
func Task(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldTask, v))
}

// ProjectPath applies equality check predicate on the "project_path" field. It's identical to ProjectPathEQ.
func ProjectPath(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldProjectPath, v))
}

// PlanOverview applies equality check predicate on the "plan_overview" field. It's identical to PlanOverviewEQ.
func PlanOverview(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldPlanOverview, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldEndedAt, v))
}

// TokensIn applies equality check predicate on the "tokens_in" field. It's identical to TokensInEQ.
func TokensIn(v int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldTokensIn, v))
}

// TokensOut applies equality check predicate on the "tokens_out" field. It's identical to TokensOutEQ.
func TokensOut(v int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldTokensOut, v))
}

// Cost applies equality check predicate on the "cost" field. It's identical to CostEQ.
func Cost(v float64) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldCost, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldErrorMessage, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldPodID, v))
}

// TaskEQ applies the EQ predicate on the "task" field.
func TaskEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldTask, v))
}

// TaskNEQ applies the NEQ predicate on the "task" field.
func TaskNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldTask, v))
}

// TaskIn applies the In predicate on the "task" field.
func TaskIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldTask, vs...))
}

// TaskNotIn applies the NotIn predicate on the "task" field.
func TaskNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldTask, vs...))
}

// TaskGT applies the GT predicate on the "task" field.
func TaskGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldTask, v))
}

// TaskGTE applies the GTE predicate on the "task" field.
func TaskGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldTask, v))
}

// TaskLT applies the LT predicate on the "task" field.
func TaskLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldTask, v))
}

// TaskLTE applies the LTE predicate on the "task" field.
func TaskLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldTask, v))
}

// TaskContains applies the Contains predicate on the "task" field.
func TaskContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldTask, v))
}

// TaskHasPrefix applies the HasPrefix predicate on the "task" field.
func TaskHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldTask, v))
}

// TaskHasSuffix applies the HasSuffix predicate on the "task" field.
func TaskHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldTask, v))
}

// TaskEqualFold applies the EqualFold predicate on the "task" field.
func TaskEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldTask, v))
}

// TaskContainsFold applies the ContainsFold predicate on the "task" field.
func TaskContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldTask, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldState, vs...))
}

// ProjectPathEQ applies the EQ predicate on the "project_path" field.
func ProjectPathEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldProjectPath, v))
}

// ProjectPathNEQ applies the NEQ predicate on the "project_path" field.
func ProjectPathNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldProjectPath, v))
}

// ProjectPathIn applies the In predicate on the "project_path" field.
func ProjectPathIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldProjectPath, vs...))
}

// ProjectPathNotIn applies the NotIn predicate on the "project_path" field.
func ProjectPathNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldProjectPath, vs...))
}

// ProjectPathGT applies the GT predicate on the "project_path" field.
func ProjectPathGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldProjectPath, v))
}

// ProjectPathGTE applies the GTE predicate on the "project_path" field.
func ProjectPathGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldProjectPath, v))
}

// ProjectPathLT applies the LT predicate on the "project_path" field.
func ProjectPathLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldProjectPath, v))
}

// ProjectPathLTE applies the LTE predicate on the "project_path" field.
func ProjectPathLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldProjectPath, v))
}

// ProjectPathContains applies the Contains predicate on the "project_path" field.
func ProjectPathContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldProjectPath, v))
}

// ProjectPathHasPrefix applies the HasPrefix predicate on the "project_path" field.
func ProjectPathHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldProjectPath, v))
}

// ProjectPathHasSuffix applies the HasSuffix predicate on the "project_path" field.
func ProjectPathHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldProjectPath, v))
}

// ProjectPathIsNil applies the IsNil predicate on the "project_path" field.
func ProjectPathIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldProjectPath))
}

// ProjectPathNotNil applies the NotNil predicate on the "project_path" field.
func ProjectPathNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldProjectPath))
}

// ProjectPathEqualFold applies the EqualFold predicate on the "project_path" field.
func ProjectPathEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldProjectPath, v))
}

// ProjectPathContainsFold applies the ContainsFold predicate on the "project_path" field.
func ProjectPathContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldProjectPath, v))
}

// PlanOverviewEQ applies the EQ predicate on the "plan_overview" field.
func PlanOverviewEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldPlanOverview, v))
}

// PlanOverviewNEQ applies the NEQ predicate on the "plan_overview" field.
func PlanOverviewNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldPlanOverview, v))
}

// PlanOverviewIn applies the In predicate on the "plan_overview" field.
func PlanOverviewIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldPlanOverview, vs...))
}

// PlanOverviewNotIn applies the NotIn predicate on the "plan_overview" field.
func PlanOverviewNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldPlanOverview, vs...))
}

// PlanOverviewGT applies the GT predicate on the "plan_overview" field.
func PlanOverviewGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldPlanOverview, v))
}

// PlanOverviewGTE applies the GTE predicate on the "plan_overview" field.
func PlanOverviewGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldPlanOverview, v))
}

// PlanOverviewLT applies the LT predicate on the "plan_overview" field.
func PlanOverviewLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldPlanOverview, v))
}

// PlanOverviewLTE applies the LTE predicate on the "plan_overview" field.
func PlanOverviewLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldPlanOverview, v))
}

// PlanOverviewContains applies the Contains predicate on the "plan_overview" field.
func PlanOverviewContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldPlanOverview, v))
}

// PlanOverviewHasPrefix applies the HasPrefix predicate on the "plan_overview" field.
func PlanOverviewHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldPlanOverview, v))
}

// PlanOverviewHasSuffix applies the HasSuffix predicate on the "plan_overview" field.
func PlanOverviewHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldPlanOverview, v))
}

// PlanOverviewIsNil applies the IsNil predicate on the "plan_overview" field.
func PlanOverviewIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldPlanOverview))
}

// PlanOverviewNotNil applies the NotNil predicate on the "plan_overview" field.
func PlanOverviewNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldPlanOverview))
}

// PlanOverviewEqualFold applies the EqualFold predicate on the "plan_overview" field.
func PlanOverviewEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldPlanOverview, v))
}

// PlanOverviewContainsFold applies the ContainsFold predicate on the "plan_overview" field.
func PlanOverviewContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldPlanOverview, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldStartedAt))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldEndedAt))
}

// TokensInEQ applies the EQ predicate on the "tokens_in" field.
func TokensInEQ(v int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldTokensIn, v))
}

// TokensInNEQ applies the NEQ predicate on the "tokens_in" field.
func TokensInNEQ(v int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldTokensIn, v))
}

// TokensInIn applies the In predicate on the "tokens_in" field.
func TokensInIn(vs ...int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldTokensIn, vs...))
}

// TokensInNotIn applies the NotIn predicate on the "tokens_in" field.
func TokensInNotIn(vs ...int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldTokensIn, vs...))
}

// TokensInGT applies the GT predicate on the "tokens_in" field.
func TokensInGT(v int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldTokensIn, v))
}

// TokensInGTE applies the GTE predicate on the "tokens_in" field.
func TokensInGTE(v int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldTokensIn, v))
}

// TokensInLT applies the LT predicate on the "tokens_in" field.
func TokensInLT(v int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldTokensIn, v))
}

// TokensInLTE applies the LTE predicate on the "tokens_in" field.
func TokensInLTE(v int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldTokensIn, v))
}

// TokensOutEQ applies the EQ predicate on the "tokens_out" field.
func TokensOutEQ(v int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldTokensOut, v))
}

// TokensOutNEQ applies the NEQ predicate on the "tokens_out" field.
func TokensOutNEQ(v int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldTokensOut, v))
}

// TokensOutIn applies the In predicate on the "tokens_out" field.
func TokensOutIn(vs ...int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldTokensOut, vs...))
}

// TokensOutNotIn applies the NotIn predicate on the "tokens_out" field.
func TokensOutNotIn(vs ...int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldTokensOut, vs...))
}

// TokensOutGT applies the GT predicate on the "tokens_out" field.
func TokensOutGT(v int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldTokensOut, v))
}

// TokensOutGTE applies the GTE predicate on the "tokens_out" field.
func TokensOutGTE(v int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldTokensOut, v))
}

// TokensOutLT applies the LT predicate on the "tokens_out" field.
func TokensOutLT(v int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldTokensOut, v))
}

// TokensOutLTE applies the LTE predicate on the "tokens_out" field.
func TokensOutLTE(v int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldTokensOut, v))
}

// CostEQ applies the EQ predicate on the "cost" field.
func CostEQ(v float64) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldCost, v))
}

// CostNEQ applies the NEQ predicate on the "cost" field.
func CostNEQ(v float64) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldCost, v))
}

// CostIn applies the In predicate on the "cost" field.
func CostIn(vs ...float64) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldCost, vs...))
}

// CostNotIn applies the NotIn predicate on the "cost" field.
func CostNotIn(vs ...float64) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldCost, vs...))
}

// CostGT applies the GT predicate on the "cost" field.
func CostGT(v float64) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldCost, v))
}

// CostGTE applies the GTE predicate on the "cost" field.
func CostGTE(v float64) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldCost, v))
}

// CostLT applies the LT predicate on the "cost" field.
func CostLT(v float64) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldCost, v))
}

// CostLTE applies the LTE predicate on the "cost" field.
func CostLTE(v float64) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldCost, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldErrorMessage, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldPodID, v))
}

// HasSteps applies the HasEdge predicate on the "steps" edge.
func HasSteps() predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepsWith applies the HasEdge predicate on the "steps" edge with a given conditions (other predicates).
func HasStepsWith(preds ...predicate.AgentStep) predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := newStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentSession) predicate.AgentSession {
	return predicate.AgentSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentSession) predicate.AgentSession {
	return predicate.AgentSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentSession) predicate.AgentSession {
	return predicate.AgentSession(sql.NotPredicates(p))
}
