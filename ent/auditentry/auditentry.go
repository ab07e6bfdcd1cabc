// Code generated by ent, DO NOT EDIT.

package auditentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the auditentry type in the database.
	Label = "audit_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldToolName holds the string denoting the tool_name field in the database.
	FieldToolName = "tool_name"
	// FieldRiskLevel holds the string denoting the risk_level field in the database.
	FieldRiskLevel = "risk_level"
	// FieldParameters holds the string denoting the parameters field in the database.
	FieldParameters = "parameters"
	// FieldFullParameters holds the string denoting the full_parameters field in the database.
	FieldFullParameters = "full_parameters"
	// FieldApprovalDecision holds the string denoting the approval_decision field in the database.
	FieldApprovalDecision = "approval_decision"
	// FieldApprovedBy holds the string denoting the approved_by field in the database.
	FieldApprovedBy = "approved_by"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldSuccess holds the string denoting the success field in the database.
	FieldSuccess = "success"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldYoloMode holds the string denoting the yolo_mode field in the database.
	FieldYoloMode = "yolo_mode"
	// Table holds the table name of the auditentry in the database.
	Table = "audit_entries"
)

// Columns holds all SQL columns for auditentry fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldTimestamp,
	FieldToolName,
	FieldRiskLevel,
	FieldParameters,
	FieldFullParameters,
	FieldApprovalDecision,
	FieldApprovedBy,
	FieldDurationMs,
	FieldSuccess,
	FieldResult,
	FieldErrorMessage,
	FieldYoloMode,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultDurationMs holds the default value on creation for the "duration_ms" field.
	DefaultDurationMs int
	// DefaultYoloMode holds the default value on creation for the "yolo_mode" field.
	DefaultYoloMode bool
)

// RiskLevel defines the type for the "risk_level" enum field.
type RiskLevel string

// RiskLevel values.
const (
	RiskLevelSafe        RiskLevel = "safe"
	RiskLevelModerate    RiskLevel = "moderate"
	RiskLevelDestructive RiskLevel = "destructive"
	RiskLevelCritical    RiskLevel = "critical"
)

func (rl RiskLevel) String() string {
	return string(rl)
}

// RiskLevelValidator is a validator for the "risk_level" field enum values. It is called by the builders before save.
func RiskLevelValidator(rl RiskLevel) error {
	switch rl {
	case RiskLevelSafe, RiskLevelModerate, RiskLevelDestructive, RiskLevelCritical:
		return nil
	default:
		return fmt.Errorf("auditentry: invalid enum value for risk_level field: %q", rl)
	}
}

// ApprovalDecision defines the type for the "approval_decision" enum field.
type ApprovalDecision string

// ApprovalDecision values.
const (
	ApprovalDecisionAuto       ApprovalDecision = "auto"
	ApprovalDecisionApproved   ApprovalDecision = "approved"
	ApprovalDecisionRejected   ApprovalDecision = "rejected"
	ApprovalDecisionTimeout    ApprovalDecision = "timeout"
	ApprovalDecisionKillSwitch ApprovalDecision = "kill_switch"
)

func (ad ApprovalDecision) String() string {
	return string(ad)
}

// ApprovalDecisionValidator is a validator for the "approval_decision" field enum values. It is called by the builders before save.
func ApprovalDecisionValidator(ad ApprovalDecision) error {
	switch ad {
	case ApprovalDecisionAuto, ApprovalDecisionApproved, ApprovalDecisionRejected, ApprovalDecisionTimeout, ApprovalDecisionKillSwitch:
		return nil
	default:
		return fmt.Errorf("auditentry: invalid enum value for approval_decision field: %q", ad)
	}
}

// OrderOption defines the ordering options for the AuditEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByToolName orders the results by the tool_name field.
func ByToolName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolName, opts...).ToFunc()
}

// ByRiskLevel orders the results by the risk_level field.
func ByRiskLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskLevel, opts...).ToFunc()
}

// ByParameters orders the results by the parameters field.
func ByParameters(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParameters, opts...).ToFunc()
}

// ByFullParameters orders the results by the full_parameters field.
func ByFullParameters(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullParameters, opts...).ToFunc()
}

// ByApprovalDecision orders the results by the approval_decision field.
func ByApprovalDecision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovalDecision, opts...).ToFunc()
}

// ByApprovedBy orders the results by the approved_by field.
func ByApprovedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovedBy, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// BySuccess orders the results by the success field.
func BySuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccess, opts...).ToFunc()
}

// ByResult orders the results by the result field.
func ByResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResult, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByYoloMode orders the results by the yolo_mode field.
func ByYoloMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYoloMode, opts...).ToFunc()
}
