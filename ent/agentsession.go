// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxislabs/praxis/ent/agentsession"
)

// AgentSession is the model entity for the AgentSession schema.
type AgentSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Original natural-language task
	Task string `json:"task,omitempty"`
	// State holds the value of the "state" field.
	State agentsession.State `json:"state,omitempty"`
	// Project the task runs against; scopes autonomy and classification rules
	ProjectPath *string `json:"project_path,omitempty"`
	// PlanOverview holds the value of the "plan_overview" field.
	PlanOverview *string `json:"plan_overview,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When a worker claimed the session
	StartedAt *time.Time `json:"started_at,omitempty"`
	// Set exactly once, on transition to a terminal state
	EndedAt *time.Time `json:"ended_at,omitempty"`
	// TokensIn holds the value of the "tokens_in" field.
	TokensIn int `json:"tokens_in,omitempty"`
	// TokensOut holds the value of the "tokens_out" field.
	TokensOut int `json:"tokens_out,omitempty"`
	// Cost holds the value of the "cost" field.
	Cost float64 `json:"cost,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Worker claim owner, for orphan detection
	PodID *string `json:"pod_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentSessionQuery when eager-loading is set.
	Edges        AgentSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentSessionEdges holds the relations/edges for other nodes in the graph.
type AgentSessionEdges struct {
	// Steps holds the value of the steps edge.
	Steps []*AgentStep `json:"steps,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// StepsOrErr returns the Steps value or an error if the edge
// was not loaded in eager-loading.
func (e AgentSessionEdges) StepsOrErr() ([]*AgentStep, error) {
	if e.loadedTypes[0] {
		return e.Steps, nil
	}
	return nil, &NotLoadedError{edge: "steps"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentsession.FieldCost:
			values[i] = new(sql.NullFloat64)
		case agentsession.FieldTokensIn, agentsession.FieldTokensOut:
			values[i] = new(sql.NullInt64)
		case agentsession.FieldID, agentsession.FieldTask, agentsession.FieldState, agentsession.FieldProjectPath, agentsession.FieldPlanOverview, agentsession.FieldErrorMessage, agentsession.FieldPodID:
			values[i] = new(sql.NullString)
		case agentsession.FieldCreatedAt, agentsession.FieldStartedAt, agentsession.FieldEndedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentSession fields.
func (_m *AgentSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentsession.FieldTask:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task", values[i])
			} else if value.Valid {
				_m.Task = value.String
			}
		case agentsession.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = agentsession.State(value.String)
			}
		case agentsession.FieldProjectPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_path", values[i])
			} else if value.Valid {
				_m.ProjectPath = new(string)
				*_m.ProjectPath = value.String
			}
		case agentsession.FieldPlanOverview:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_overview", values[i])
			} else if value.Valid {
				_m.PlanOverview = new(string)
				*_m.PlanOverview = value.String
			}
		case agentsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agentsession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case agentsession.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = new(time.Time)
				*_m.EndedAt = value.Time
			}
		case agentsession.FieldTokensIn:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_in", values[i])
			} else if value.Valid {
				_m.TokensIn = int(value.Int64)
			}
		case agentsession.FieldTokensOut:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_out", values[i])
			} else if value.Valid {
				_m.TokensOut = int(value.Int64)
			}
		case agentsession.FieldCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost", values[i])
			} else if value.Valid {
				_m.Cost = value.Float64
			}
		case agentsession.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case agentsession.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentSession.
// This includes values selected through modifiers, order, etc.
func (_m *AgentSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySteps queries the "steps" edge of the AgentSession entity.
func (_m *AgentSession) QuerySteps() *AgentStepQuery {
	return NewAgentSessionClient(_m.config).QuerySteps(_m)
}

// Update returns a builder for updating this AgentSession.
// Note that you need to call AgentSession.Unwrap() before calling this method if this AgentSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentSession) Update() *AgentSessionUpdateOne {
	return NewAgentSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentSession) Unwrap() *AgentSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentSession) String() string {
	var builder strings.Builder
	builder.WriteString("AgentSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task=")
	builder.WriteString(_m.Task)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	if v := _m.ProjectPath; v != nil {
		builder.WriteString("project_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PlanOverview; v != nil {
		builder.WriteString("plan_overview=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.EndedAt; v != nil {
		builder.WriteString("ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("tokens_in=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensIn))
	builder.WriteString(", ")
	builder.WriteString("tokens_out=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensOut))
	builder.WriteString(", ")
	builder.WriteString("cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cost))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// AgentSessions is a parsable slice of AgentSession.
type AgentSessions []*AgentSession
