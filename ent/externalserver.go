// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxislabs/praxis/ent/externalserver"
)

// ExternalServer is the model entity for the ExternalServer schema.
type ExternalServer struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Transport holds the value of the "transport" field.
	Transport externalserver.Transport `json:"transport,omitempty"`
	// Command holds the value of the "command" field.
	Command *string `json:"command,omitempty"`
	// Args holds the value of the "args" field.
	Args []string `json:"args,omitempty"`
	// Env holds the value of the "env" field.
	Env map[string]string `json:"env,omitempty"`
	// URL holds the value of the "url" field.
	URL *string `json:"url,omitempty"`
	// Headers holds the value of the "headers" field.
	Headers map[string]string `json:"headers,omitempty"`
	// Trust holds the value of the "trust" field.
	Trust externalserver.Trust `json:"trust,omitempty"`
	// SandboxEnabled holds the value of the "sandbox_enabled" field.
	SandboxEnabled bool `json:"sandbox_enabled,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// LastConnected holds the value of the "last_connected" field.
	LastConnected *time.Time `json:"last_connected,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError *string `json:"last_error,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExternalServerQuery when eager-loading is set.
	Edges        ExternalServerEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExternalServerEdges holds the relations/edges for other nodes in the graph.
type ExternalServerEdges struct {
	// ToolApprovals holds the value of the tool_approvals edge.
	ToolApprovals []*ToolApproval `json:"tool_approvals,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ToolApprovalsOrErr returns the ToolApprovals value or an error if the edge
// was not loaded in eager-loading.
func (e ExternalServerEdges) ToolApprovalsOrErr() ([]*ToolApproval, error) {
	if e.loadedTypes[0] {
		return e.ToolApprovals, nil
	}
	return nil, &NotLoadedError{edge: "tool_approvals"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExternalServer) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case externalserver.FieldArgs, externalserver.FieldEnv, externalserver.FieldHeaders:
			values[i] = new([]byte)
		case externalserver.FieldSandboxEnabled, externalserver.FieldEnabled:
			values[i] = new(sql.NullBool)
		case externalserver.FieldID, externalserver.FieldName, externalserver.FieldDescription, externalserver.FieldTransport, externalserver.FieldCommand, externalserver.FieldURL, externalserver.FieldTrust, externalserver.FieldCategory, externalserver.FieldLastError:
			values[i] = new(sql.NullString)
		case externalserver.FieldCreatedAt, externalserver.FieldLastConnected:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExternalServer fields.
func (_m *ExternalServer) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case externalserver.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case externalserver.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case externalserver.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case externalserver.FieldTransport:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transport", values[i])
			} else if value.Valid {
				_m.Transport = externalserver.Transport(value.String)
			}
		case externalserver.FieldCommand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field command", values[i])
			} else if value.Valid {
				_m.Command = new(string)
				*_m.Command = value.String
			}
		case externalserver.FieldArgs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field args", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Args); err != nil {
					return fmt.Errorf("unmarshal field args: %w", err)
				}
			}
		case externalserver.FieldEnv:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field env", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Env); err != nil {
					return fmt.Errorf("unmarshal field env: %w", err)
				}
			}
		case externalserver.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = new(string)
				*_m.URL = value.String
			}
		case externalserver.FieldHeaders:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field headers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Headers); err != nil {
					return fmt.Errorf("unmarshal field headers: %w", err)
				}
			}
		case externalserver.FieldTrust:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trust", values[i])
			} else if value.Valid {
				_m.Trust = externalserver.Trust(value.String)
			}
		case externalserver.FieldSandboxEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field sandbox_enabled", values[i])
			} else if value.Valid {
				_m.SandboxEnabled = value.Bool
			}
		case externalserver.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case externalserver.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case externalserver.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case externalserver.FieldLastConnected:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_connected", values[i])
			} else if value.Valid {
				_m.LastConnected = new(time.Time)
				*_m.LastConnected = value.Time
			}
		case externalserver.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = new(string)
				*_m.LastError = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExternalServer.
// This includes values selected through modifiers, order, etc.
func (_m *ExternalServer) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryToolApprovals queries the "tool_approvals" edge of the ExternalServer entity.
func (_m *ExternalServer) QueryToolApprovals() *ToolApprovalQuery {
	return NewExternalServerClient(_m.config).QueryToolApprovals(_m)
}

// Update returns a builder for updating this ExternalServer.
// Note that you need to call ExternalServer.Unwrap() before calling this method if this ExternalServer
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExternalServer) Update() *ExternalServerUpdateOne {
	return NewExternalServerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExternalServer entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExternalServer) Unwrap() *ExternalServer {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExternalServer is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExternalServer) String() string {
	var builder strings.Builder
	builder.WriteString("ExternalServer(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("transport=")
	builder.WriteString(fmt.Sprintf("%v", _m.Transport))
	builder.WriteString(", ")
	if v := _m.Command; v != nil {
		builder.WriteString("command=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("args=")
	builder.WriteString(fmt.Sprintf("%v", _m.Args))
	builder.WriteString(", ")
	builder.WriteString("env=")
	builder.WriteString(fmt.Sprintf("%v", _m.Env))
	builder.WriteString(", ")
	if v := _m.URL; v != nil {
		builder.WriteString("url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("headers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Headers))
	builder.WriteString(", ")
	builder.WriteString("trust=")
	builder.WriteString(fmt.Sprintf("%v", _m.Trust))
	builder.WriteString(", ")
	builder.WriteString("sandbox_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.SandboxEnabled))
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.LastConnected; v != nil {
		builder.WriteString("last_connected=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastError; v != nil {
		builder.WriteString("last_error=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// ExternalServers is a parsable slice of ExternalServer.
type ExternalServers []*ExternalServer
