// Code generated by ent, DO NOT EDIT.

package auditentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/praxislabs/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldSessionID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldTimestamp, v))
}

// ToolName applies equality check predicate on the "tool_name" field. It's identical to ToolNameEQ.
func ToolName(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldToolName, v))
}

// Parameters applies equality check predicate on the "parameters" field. It's identical to ParametersEQ.
func Parameters(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldParameters, v))
}

// FullParameters applies equality check predicate on the "full_parameters" field. It's identical to FullParametersEQ.
func FullParameters(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldFullParameters, v))
}

// ApprovedBy applies equality check predicate on the "approved_by" field. It's identical to ApprovedByEQ.
func ApprovedBy(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldApprovedBy, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldDurationMs, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldSuccess, v))
}

// Result applies equality check predicate on the "result" field. It's identical to ResultEQ.
func Result(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldResult, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldErrorMessage, v))
}

// YoloMode applies equality check predicate on the "yolo_mode" field. It's identical to YoloModeEQ.
func YoloMode(v bool) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldYoloMode, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContainsFold(FieldSessionID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldTimestamp, v))
}

// ToolNameEQ applies the EQ predicate on the "tool_name" field.
func ToolNameEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldToolName, v))
}

// ToolNameNEQ applies the NEQ predicate on the "tool_name" field.
func ToolNameNEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldToolName, v))
}

// ToolNameIn applies the In predicate on the "tool_name" field.
func ToolNameIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldToolName, vs...))
}

// ToolNameNotIn applies the NotIn predicate on the "tool_name" field.
func ToolNameNotIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldToolName, vs...))
}

// ToolNameGT applies the GT predicate on the "tool_name" field.
func ToolNameGT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldToolName, v))
}

// ToolNameGTE applies the GTE predicate on the "tool_name" field.
func ToolNameGTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldToolName, v))
}

// ToolNameLT applies the LT predicate on the "tool_name" field.
func ToolNameLT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldToolName, v))
}

// ToolNameLTE applies the LTE predicate on the "tool_name" field.
func ToolNameLTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldToolName, v))
}

// ToolNameContains applies the Contains predicate on the "tool_name" field.
func ToolNameContains(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContains(FieldToolName, v))
}

// ToolNameHasPrefix applies the HasPrefix predicate on the "tool_name" field.
func ToolNameHasPrefix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasPrefix(FieldToolName, v))
}

// ToolNameHasSuffix applies the HasSuffix predicate on the "tool_name" field.
func ToolNameHasSuffix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasSuffix(FieldToolName, v))
}

// ToolNameEqualFold applies the EqualFold predicate on the "tool_name" field.
func ToolNameEqualFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEqualFold(FieldToolName, v))
}

// ToolNameContainsFold applies the ContainsFold predicate on the "tool_name" field.
func ToolNameContainsFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContainsFold(FieldToolName, v))
}

// RiskLevelEQ applies the EQ predicate on the "risk_level" field.
func RiskLevelEQ(v RiskLevel) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskLevelNEQ applies the NEQ predicate on the "risk_level" field.
func RiskLevelNEQ(v RiskLevel) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldRiskLevel, v))
}

// RiskLevelIn applies the In predicate on the "risk_level" field.
func RiskLevelIn(vs ...RiskLevel) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldRiskLevel, vs...))
}

// RiskLevelNotIn applies the NotIn predicate on the "risk_level" field.
func RiskLevelNotIn(vs ...RiskLevel) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldRiskLevel, vs...))
}

// ParametersEQ applies the EQ predicate on the "parameters" field.
func ParametersEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldParameters, v))
}

// ParametersNEQ applies the NEQ predicate on the "parameters" field.
func ParametersNEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldParameters, v))
}

// ParametersIn applies the In predicate on the "parameters" field.
func ParametersIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldParameters, vs...))
}

// ParametersNotIn applies the NotIn predicate on the "parameters" field.
func ParametersNotIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldParameters, vs...))
}

// ParametersGT applies the GT predicate on the "parameters" field.
func ParametersGT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldParameters, v))
}

// ParametersGTE applies the GTE predicate on the "parameters" field.
func ParametersGTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldParameters, v))
}

// ParametersLT applies the LT predicate on the "parameters" field.
func ParametersLT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldParameters, v))
}

// ParametersLTE applies the LTE predicate on the "parameters" field.
func ParametersLTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldParameters, v))
}

// ParametersContains applies the Contains predicate on the "parameters" field.
func ParametersContains(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContains(FieldParameters, v))
}

// ParametersHasPrefix applies the HasPrefix predicate on the "parameters" field.
func ParametersHasPrefix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasPrefix(FieldParameters, v))
}

// ParametersHasSuffix applies the HasSuffix predicate on the "parameters" field.
func ParametersHasSuffix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasSuffix(FieldParameters, v))
}

// ParametersEqualFold applies the EqualFold predicate on the "parameters" field.
func ParametersEqualFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEqualFold(FieldParameters, v))
}

// ParametersContainsFold applies the ContainsFold predicate on the "parameters" field.
func ParametersContainsFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContainsFold(FieldParameters, v))
}

// FullParametersEQ applies the EQ predicate on the "full_parameters" field.
func FullParametersEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldFullParameters, v))
}

// FullParametersNEQ applies the NEQ predicate on the "full_parameters" field.
func FullParametersNEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldFullParameters, v))
}

// FullParametersIn applies the In predicate on the "full_parameters" field.
func FullParametersIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldFullParameters, vs...))
}

// FullParametersNotIn applies the NotIn predicate on the "full_parameters" field.
func FullParametersNotIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldFullParameters, vs...))
}

// FullParametersGT applies the GT predicate on the "full_parameters" field.
func FullParametersGT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldFullParameters, v))
}

// FullParametersGTE applies the GTE predicate on the "full_parameters" field.
func FullParametersGTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldFullParameters, v))
}

// FullParametersLT applies the LT predicate on the "full_parameters" field.
func FullParametersLT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldFullParameters, v))
}

// FullParametersLTE applies the LTE predicate on the "full_parameters" field.
func FullParametersLTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldFullParameters, v))
}

// FullParametersContains applies the Contains predicate on the "full_parameters" field.
func FullParametersContains(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContains(FieldFullParameters, v))
}

// FullParametersHasPrefix applies the HasPrefix predicate on the "full_parameters" field.
func FullParametersHasPrefix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasPrefix(FieldFullParameters, v))
}

// FullParametersHasSuffix applies the HasSuffix predicate on the "full_parameters" field.
func FullParametersHasSuffix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasSuffix(FieldFullParameters, v))
}

// FullParametersIsNil applies the IsNil predicate on the "full_parameters" field.
func FullParametersIsNil() predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIsNull(FieldFullParameters))
}

// FullParametersNotNil applies the NotNil predicate on the "full_parameters" field.
func FullParametersNotNil() predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotNull(FieldFullParameters))
}

// FullParametersEqualFold applies the EqualFold predicate on the "full_parameters" field.
func FullParametersEqualFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEqualFold(FieldFullParameters, v))
}

// FullParametersContainsFold applies the ContainsFold predicate on the "full_parameters" field.
func FullParametersContainsFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContainsFold(FieldFullParameters, v))
}

// ApprovalDecisionEQ applies the EQ predicate on the "approval_decision" field.
func ApprovalDecisionEQ(v ApprovalDecision) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldApprovalDecision, v))
}

// ApprovalDecisionNEQ applies the NEQ predicate on the "approval_decision" field.
func ApprovalDecisionNEQ(v ApprovalDecision) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldApprovalDecision, v))
}

// ApprovalDecisionIn applies the In predicate on the "approval_decision" field.
func ApprovalDecisionIn(vs ...ApprovalDecision) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldApprovalDecision, vs...))
}

// ApprovalDecisionNotIn applies the NotIn predicate on the "approval_decision" field.
func ApprovalDecisionNotIn(vs ...ApprovalDecision) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldApprovalDecision, vs...))
}

// ApprovedByEQ applies the EQ predicate on the "approved_by" field.
func ApprovedByEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldApprovedBy, v))
}

// ApprovedByNEQ applies the NEQ predicate on the "approved_by" field.
func ApprovedByNEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldApprovedBy, v))
}

// ApprovedByIn applies the In predicate on the "approved_by" field.
func ApprovedByIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldApprovedBy, vs...))
}

// ApprovedByNotIn applies the NotIn predicate on the "approved_by" field.
func ApprovedByNotIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldApprovedBy, vs...))
}

// ApprovedByGT applies the GT predicate on the "approved_by" field.
func ApprovedByGT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldApprovedBy, v))
}

// ApprovedByGTE applies the GTE predicate on the "approved_by" field.
func ApprovedByGTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldApprovedBy, v))
}

// ApprovedByLT applies the LT predicate on the "approved_by" field.
func ApprovedByLT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldApprovedBy, v))
}

// ApprovedByLTE applies the LTE predicate on the "approved_by" field.
func ApprovedByLTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldApprovedBy, v))
}

// ApprovedByContains applies the Contains predicate on the "approved_by" field.
func ApprovedByContains(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContains(FieldApprovedBy, v))
}

// ApprovedByHasPrefix applies the HasPrefix predicate on the "approved_by" field.
func ApprovedByHasPrefix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasPrefix(FieldApprovedBy, v))
}

// ApprovedByHasSuffix applies the HasSuffix predicate on the "approved_by" field.
func ApprovedByHasSuffix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasSuffix(FieldApprovedBy, v))
}

// ApprovedByIsNil applies the IsNil predicate on the "approved_by" field.
func ApprovedByIsNil() predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIsNull(FieldApprovedBy))
}

// ApprovedByNotNil applies the NotNil predicate on the "approved_by" field.
func ApprovedByNotNil() predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotNull(FieldApprovedBy))
}

// ApprovedByEqualFold applies the EqualFold predicate on the "approved_by" field.
func ApprovedByEqualFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEqualFold(FieldApprovedBy, v))
}

// ApprovedByContainsFold applies the ContainsFold predicate on the "approved_by" field.
func ApprovedByContainsFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContainsFold(FieldApprovedBy, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldDurationMs, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldSuccess, v))
}

// ResultEQ applies the EQ predicate on the "result" field.
func ResultEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldResult, v))
}

// ResultNEQ applies the NEQ predicate on the "result" field.
func ResultNEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldResult, v))
}

// ResultIn applies the In predicate on the "result" field.
func ResultIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldResult, vs...))
}

// ResultNotIn applies the NotIn predicate on the "result" field.
func ResultNotIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldResult, vs...))
}

// ResultGT applies the GT predicate on the "result" field.
func ResultGT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldResult, v))
}

// ResultGTE applies the GTE predicate on the "result" field.
func ResultGTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldResult, v))
}

// ResultLT applies the LT predicate on the "result" field.
func ResultLT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldResult, v))
}

// ResultLTE applies the LTE predicate on the "result" field.
func ResultLTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldResult, v))
}

// ResultContains applies the Contains predicate on the "result" field.
func ResultContains(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContains(FieldResult, v))
}

// ResultHasPrefix applies the HasPrefix predicate on the "result" field.
func ResultHasPrefix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasPrefix(FieldResult, v))
}

// ResultHasSuffix applies the HasSuffix predicate on the "result" field.
func ResultHasSuffix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasSuffix(FieldResult, v))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotNull(FieldResult))
}

// ResultEqualFold applies the EqualFold predicate on the "result" field.
func ResultEqualFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEqualFold(FieldResult, v))
}

// ResultContainsFold applies the ContainsFold predicate on the "result" field.
func ResultContainsFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContainsFold(FieldResult, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContainsFold(FieldErrorMessage, v))
}

// YoloModeEQ applies the EQ predicate on the "yolo_mode" field.
func YoloModeEQ(v bool) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldYoloMode, v))
}

// YoloModeNEQ applies the NEQ predicate on the "yolo_mode" field.
func YoloModeNEQ(v bool) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldYoloMode, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AuditEntry) predicate.AuditEntry {
	return predicate.AuditEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AuditEntry) predicate.AuditEntry {
	return predicate.AuditEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AuditEntry) predicate.AuditEntry {
	return predicate.AuditEntry(sql.NotPredicates(p))
}
