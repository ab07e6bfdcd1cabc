// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxislabs/praxis/ent/auditentry"
)

// AuditEntry is the model entity for the AuditEntry schema.
type AuditEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// ToolName holds the value of the "tool_name" field.
	ToolName string `json:"tool_name,omitempty"`
	// RiskLevel holds the value of the "risk_level" field.
	RiskLevel auditentry.RiskLevel `json:"risk_level,omitempty"`
	// JSON-encoded, truncated at 4 KiB for non-YOLO entries
	Parameters string `json:"parameters,omitempty"`
	// Untruncated payload, stored only when yolo_mode=true
	FullParameters *string `json:"full_parameters,omitempty"`
	// ApprovalDecision holds the value of the "approval_decision" field.
	ApprovalDecision auditentry.ApprovalDecision `json:"approval_decision,omitempty"`
	// ApprovedBy holds the value of the "approved_by" field.
	ApprovedBy *string `json:"approved_by,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs int `json:"duration_ms,omitempty"`
	// Success holds the value of the "success" field.
	Success bool `json:"success,omitempty"`
	// Result holds the value of the "result" field.
	Result *string `json:"result,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// YoloMode holds the value of the "yolo_mode" field.
	YoloMode     bool `json:"yolo_mode,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AuditEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case auditentry.FieldSuccess, auditentry.FieldYoloMode:
			values[i] = new(sql.NullBool)
		case auditentry.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case auditentry.FieldID, auditentry.FieldSessionID, auditentry.FieldToolName, auditentry.FieldRiskLevel, auditentry.FieldParameters, auditentry.FieldFullParameters, auditentry.FieldApprovalDecision, auditentry.FieldApprovedBy, auditentry.FieldResult, auditentry.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case auditentry.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AuditEntry fields.
func (_m *AuditEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case auditentry.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case auditentry.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case auditentry.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case auditentry.FieldToolName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_name", values[i])
			} else if value.Valid {
				_m.ToolName = value.String
			}
		case auditentry.FieldRiskLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_level", values[i])
			} else if value.Valid {
				_m.RiskLevel = auditentry.RiskLevel(value.String)
			}
		case auditentry.FieldParameters:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parameters", values[i])
			} else if value.Valid {
				_m.Parameters = value.String
			}
		case auditentry.FieldFullParameters:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_parameters", values[i])
			} else if value.Valid {
				_m.FullParameters = new(string)
				*_m.FullParameters = value.String
			}
		case auditentry.FieldApprovalDecision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field approval_decision", values[i])
			} else if value.Valid {
				_m.ApprovalDecision = auditentry.ApprovalDecision(value.String)
			}
		case auditentry.FieldApprovedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field approved_by", values[i])
			} else if value.Valid {
				_m.ApprovedBy = new(string)
				*_m.ApprovedBy = value.String
			}
		case auditentry.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = int(value.Int64)
			}
		case auditentry.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case auditentry.FieldResult:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value.Valid {
				_m.Result = new(string)
				*_m.Result = value.String
			}
		case auditentry.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case auditentry.FieldYoloMode:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field yolo_mode", values[i])
			} else if value.Valid {
				_m.YoloMode = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AuditEntry.
// This includes values selected through modifiers, order, etc.
func (_m *AuditEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AuditEntry.
// Note that you need to call AuditEntry.Unwrap() before calling this method if this AuditEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AuditEntry) Update() *AuditEntryUpdateOne {
	return NewAuditEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AuditEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AuditEntry) Unwrap() *AuditEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AuditEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AuditEntry) String() string {
	var builder strings.Builder
	builder.WriteString("AuditEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("tool_name=")
	builder.WriteString(_m.ToolName)
	builder.WriteString(", ")
	builder.WriteString("risk_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskLevel))
	builder.WriteString(", ")
	builder.WriteString("parameters=")
	builder.WriteString(_m.Parameters)
	builder.WriteString(", ")
	if v := _m.FullParameters; v != nil {
		builder.WriteString("full_parameters=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("approval_decision=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApprovalDecision))
	builder.WriteString(", ")
	if v := _m.ApprovedBy; v != nil {
		builder.WriteString("approved_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	if v := _m.Result; v != nil {
		builder.WriteString("result=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("yolo_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.YoloMode))
	builder.WriteByte(')')
	return builder.String()
}

// AuditEntries is a parsable slice of AuditEntry.
type AuditEntries []*AuditEntry
