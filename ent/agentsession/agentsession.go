// Code generated by ent, DO NOT EDIT.

package agentsession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agentsession type in the database.
	Label = "agent_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTask holds the string denoting the task field in the database.
	FieldTask = "task"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldProjectPath holds the string denoting the project_path field in the database.
	FieldProjectPath = "project_path"
	// FieldPlanOverview holds the string denoting the plan_overview field in the database.
	FieldPlanOverview = "plan_overview"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// FieldTokensIn holds the string denoting the tokens_in field in the database.
	FieldTokensIn = "tokens_in"
	// FieldTokensOut holds the string denoting the tokens_out field in the database.
	FieldTokensOut = "tokens_out"
	// FieldCost holds the string denoting the cost field in the database.
	FieldCost = "cost"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// EdgeSteps holds the string denoting the steps edge name in mutations.
	EdgeSteps = "steps"
	// Table holds the table name of the agentsession in the database.
	Table = "agent_sessions"
	// StepsTable is the table that holds the steps relation/edge.
	StepsTable = "agent_steps"
	// StepsInverseTable is the table name for the AgentStep entity.
	// It exists in this package in order to avoid circular dependency with the "agentstep" package.
	StepsInverseTable = "agent_steps"
	// StepsColumn is the table column denoting the steps relation/edge.
	StepsColumn = "session_id"
)

// Columns holds all SQL columns for agentsession fields.
var Columns = []string{
	FieldID,
	FieldTask,
	FieldState,
	FieldProjectPath,
	FieldPlanOverview,
	FieldCreatedAt,
	FieldStartedAt,
	FieldEndedAt,
	FieldTokensIn,
	FieldTokensOut,
	FieldCost,
	FieldErrorMessage,
	FieldPodID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultTokensIn holds the default value on creation for the "tokens_in" field.
	DefaultTokensIn int
	// DefaultTokensOut holds the default value on creation for the "tokens_out" field.
	DefaultTokensOut int
	// DefaultCost holds the default value on creation for the "cost" field.
	DefaultCost float64
)

// State defines the type for the "state" enum field.
type State string

// StateIdle is the default value of the State enum.
const DefaultState = StateIdle

// State values.
const (
	StateIdle             State = "idle"
	StatePlanning         State = "planning"
	StateExecuting        State = "executing"
	StateAwaitingTool     State = "awaiting_tool"
	StateAwaitingApproval State = "awaiting_approval"
	StateCompleted        State = "completed"
	StateFailed           State = "failed"
	StateCancelled        State = "cancelled"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateIdle, StatePlanning, StateExecuting, StateAwaitingTool, StateAwaitingApproval, StateCompleted, StateFailed, StateCancelled:
		return nil
	default:
		return fmt.Errorf("agentsession: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the AgentSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTask orders the results by the task field.
func ByTask(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTask, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByProjectPath orders the results by the project_path field.
func ByProjectPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectPath, opts...).ToFunc()
}

// ByPlanOverview orders the results by the plan_overview field.
func ByPlanOverview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanOverview, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
}

// ByTokensIn orders the results by the tokens_in field.
func ByTokensIn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensIn, opts...).ToFunc()
}

// ByTokensOut orders the results by the tokens_out field.
func ByTokensOut(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensOut, opts...).ToFunc()
}

// ByCost orders the results by the cost field.
func ByCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCost, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByStepsCount orders the results by steps count.
func ByStepsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStepsStep(), opts...)
	}
}

// BySteps orders the results by steps terms.
func BySteps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newStepsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
	)
}
