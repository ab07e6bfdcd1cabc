// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxislabs/praxis/ent/externalserver"
	"github.com/praxislabs/praxis/ent/toolapproval"
)

// ToolApproval is the model entity for the ToolApproval schema.
type ToolApproval struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ServerID holds the value of the "server_id" field.
	ServerID string `json:"server_id,omitempty"`
	// ToolName holds the value of the "tool_name" field.
	ToolName string `json:"tool_name,omitempty"`
	// Approved holds the value of the "approved" field.
	Approved bool `json:"approved,omitempty"`
	// ApprovedAt holds the value of the "approved_at" field.
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ToolApprovalQuery when eager-loading is set.
	Edges        ToolApprovalEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ToolApprovalEdges holds the relations/edges for other nodes in the graph.
type ToolApprovalEdges struct {
	// Server holds the value of the server edge.
	Server *ExternalServer `json:"server,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ServerOrErr returns the Server value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ToolApprovalEdges) ServerOrErr() (*ExternalServer, error) {
	if e.Server != nil {
		return e.Server, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: externalserver.Label}
	}
	return nil, &NotLoadedError{edge: "server"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ToolApproval) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case toolapproval.FieldApproved:
			values[i] = new(sql.NullBool)
		case toolapproval.FieldID:
			values[i] = new(sql.NullInt64)
		case toolapproval.FieldServerID, toolapproval.FieldToolName:
			values[i] = new(sql.NullString)
		case toolapproval.FieldApprovedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ToolApproval fields.
func (_m *ToolApproval) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case toolapproval.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case toolapproval.FieldServerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field server_id", values[i])
			} else if value.Valid {
				_m.ServerID = value.String
			}
		case toolapproval.FieldToolName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_name", values[i])
			} else if value.Valid {
				_m.ToolName = value.String
			}
		case toolapproval.FieldApproved:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field approved", values[i])
			} else if value.Valid {
				_m.Approved = value.Bool
			}
		case toolapproval.FieldApprovedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field approved_at", values[i])
			} else if value.Valid {
				_m.ApprovedAt = new(time.Time)
				*_m.ApprovedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ToolApproval.
// This includes values selected through modifiers, order, etc.
func (_m *ToolApproval) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryServer queries the "server" edge of the ToolApproval entity.
func (_m *ToolApproval) QueryServer() *ExternalServerQuery {
	return NewToolApprovalClient(_m.config).QueryServer(_m)
}

// Update returns a builder for updating this ToolApproval.
// Note that you need to call ToolApproval.Unwrap() before calling this method if this ToolApproval
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ToolApproval) Update() *ToolApprovalUpdateOne {
	return NewToolApprovalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ToolApproval entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ToolApproval) Unwrap() *ToolApproval {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ToolApproval is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ToolApproval) String() string {
	var builder strings.Builder
	builder.WriteString("ToolApproval(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("server_id=")
	builder.WriteString(_m.ServerID)
	builder.WriteString(", ")
	builder.WriteString("tool_name=")
	builder.WriteString(_m.ToolName)
	builder.WriteString(", ")
	builder.WriteString("approved=")
	builder.WriteString(fmt.Sprintf("%v", _m.Approved))
	builder.WriteString(", ")
	if v := _m.ApprovedAt; v != nil {
		builder.WriteString("approved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ToolApprovals is a parsable slice of ToolApproval.
type ToolApprovals []*ToolApproval
