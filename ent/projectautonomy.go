// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxislabs/praxis/ent/projectautonomy"
)

// ProjectAutonomy is the model entity for the ProjectAutonomy schema.
type ProjectAutonomy struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ProjectPath holds the value of the "project_path" field.
	ProjectPath string `json:"project_path,omitempty"`
	// Level holds the value of the "level" field.
	Level projectautonomy.Level `json:"level,omitempty"`
	// Patterns matched against tool name and parameter substrings
	Allowlist []string `json:"allowlist,omitempty"`
	// Blocklist holds the value of the "blocklist" field.
	Blocklist []string `json:"blocklist,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProjectAutonomy) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case projectautonomy.FieldAllowlist, projectautonomy.FieldBlocklist:
			values[i] = new([]byte)
		case projectautonomy.FieldID:
			values[i] = new(sql.NullInt64)
		case projectautonomy.FieldProjectPath, projectautonomy.FieldLevel:
			values[i] = new(sql.NullString)
		case projectautonomy.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProjectAutonomy fields.
func (_m *ProjectAutonomy) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case projectautonomy.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case projectautonomy.FieldProjectPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_path", values[i])
			} else if value.Valid {
				_m.ProjectPath = value.String
			}
		case projectautonomy.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = projectautonomy.Level(value.String)
			}
		case projectautonomy.FieldAllowlist:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field allowlist", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Allowlist); err != nil {
					return fmt.Errorf("unmarshal field allowlist: %w", err)
				}
			}
		case projectautonomy.FieldBlocklist:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field blocklist", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Blocklist); err != nil {
					return fmt.Errorf("unmarshal field blocklist: %w", err)
				}
			}
		case projectautonomy.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProjectAutonomy.
// This includes values selected through modifiers, order, etc.
func (_m *ProjectAutonomy) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProjectAutonomy.
// Note that you need to call ProjectAutonomy.Unwrap() before calling this method if this ProjectAutonomy
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProjectAutonomy) Update() *ProjectAutonomyUpdateOne {
	return NewProjectAutonomyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProjectAutonomy entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProjectAutonomy) Unwrap() *ProjectAutonomy {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProjectAutonomy is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProjectAutonomy) String() string {
	var builder strings.Builder
	builder.WriteString("ProjectAutonomy(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_path=")
	builder.WriteString(_m.ProjectPath)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteString(", ")
	builder.WriteString("allowlist=")
	builder.WriteString(fmt.Sprintf("%v", _m.Allowlist))
	builder.WriteString(", ")
	builder.WriteString("blocklist=")
	builder.WriteString(fmt.Sprintf("%v", _m.Blocklist))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProjectAutonomies is a parsable slice of ProjectAutonomy.
type ProjectAutonomies []*ProjectAutonomy
