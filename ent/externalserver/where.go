// Code generated by ent, DO NOT EDIT.

package externalserver

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/praxislabs/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldEQ(FieldDescription, v))
}

// Command applies equality check predicate on the "command" field. It's identical to CommandEQ.
func Command(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldEQ(FieldCommand, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldEQ(FieldURL, v))
}

// SandboxEnabled applies equality check predicate on the "sandbox_enabled" field. It's identical to SandboxEnabledEQ.
func SandboxEnabled(v bool) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldEQ(FieldSandboxEnabled, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldEQ(FieldCategory, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldEQ(FieldEnabled, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldEQ(FieldCreatedAt, v))
}

// LastConnected applies equality check predicate on the "last_connected" field. It's identical to LastConnectedEQ.
func LastConnected(v time.Time) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldEQ(FieldLastConnected, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldEQ(FieldLastError, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldContainsFold(FieldDescription, v))
}

// TransportEQ applies the EQ predicate on the "transport" field.
func TransportEQ(v Transport) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldEQ(FieldTransport, v))
}

// TransportNEQ applies the NEQ predicate on the "transport" field.
func TransportNEQ(v Transport) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNEQ(FieldTransport, v))
}

// TransportIn applies the In predicate on the "transport" field.
func TransportIn(vs ...Transport) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldIn(FieldTransport, vs...))
}

// TransportNotIn applies the NotIn predicate on the "transport" field.
func TransportNotIn(vs ...Transport) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNotIn(FieldTransport, vs...))
}

// CommandEQ applies the EQ predicate on the "command" field.
func CommandEQ(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldEQ(FieldCommand, v))
}

// CommandNEQ applies the NEQ predicate on the "command" field.
func CommandNEQ(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNEQ(FieldCommand, v))
}

// CommandIn applies the In predicate on the "command" field.
func CommandIn(vs ...string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldIn(FieldCommand, vs...))
}

// CommandNotIn applies the NotIn predicate on the "command" field.
func CommandNotIn(vs ...string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNotIn(FieldCommand, vs...))
}

// CommandGT applies the GT predicate on the "command" field.
func CommandGT(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldGT(FieldCommand, v))
}

// CommandGTE applies the GTE predicate on the "command" field.
func CommandGTE(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldGTE(FieldCommand, v))
}

// CommandLT applies the LT predicate on the "command" field.
func CommandLT(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldLT(FieldCommand, v))
}

// CommandLTE applies the LTE predicate on the "command" field.
func CommandLTE(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldLTE(FieldCommand, v))
}

// CommandContains applies the Contains predicate on the "command" field.
func CommandContains(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldContains(FieldCommand, v))
}

// CommandHasPrefix applies the HasPrefix predicate on the "command" field.
func CommandHasPrefix(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldHasPrefix(FieldCommand, v))
}

// CommandHasSuffix applies the HasSuffix predicate on the "command" field.
func CommandHasSuffix(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldHasSuffix(FieldCommand, v))
}

// CommandIsNil applies the IsNil predicate on the "command" field.
func CommandIsNil() predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldIsNull(FieldCommand))
}

// CommandNotNil applies the NotNil predicate on the "command" field.
func CommandNotNil() predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNotNull(FieldCommand))
}

// CommandEqualFold applies the EqualFold predicate on the "command" field.
func CommandEqualFold(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldEqualFold(FieldCommand, v))
}

// CommandContainsFold applies the ContainsFold predicate on the "command" field.
func CommandContainsFold(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldContainsFold(FieldCommand, v))
}

// ArgsIsNil applies the IsNil predicate on the "args" field.
func ArgsIsNil() predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldIsNull(FieldArgs))
}

// ArgsNotNil applies the NotNil predicate on the "args" field.
func ArgsNotNil() predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNotNull(FieldArgs))
}

// EnvIsNil applies the IsNil predicate on the "env" field.
func EnvIsNil() predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldIsNull(FieldEnv))
}

// EnvNotNil applies the NotNil predicate on the "env" field.
func EnvNotNil() predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNotNull(FieldEnv))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldHasSuffix(FieldURL, v))
}

// URLIsNil applies the IsNil predicate on the "url" field.
func URLIsNil() predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldIsNull(FieldURL))
}

// URLNotNil applies the NotNil predicate on the "url" field.
func URLNotNil() predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNotNull(FieldURL))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldContainsFold(FieldURL, v))
}

// HeadersIsNil applies the IsNil predicate on the "headers" field.
func HeadersIsNil() predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldIsNull(FieldHeaders))
}

// HeadersNotNil applies the NotNil predicate on the "headers" field.
func HeadersNotNil() predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNotNull(FieldHeaders))
}

// TrustEQ applies the EQ predicate on the "trust" field.
func TrustEQ(v Trust) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldEQ(FieldTrust, v))
}

// TrustNEQ applies the NEQ predicate on the "trust" field.
func TrustNEQ(v Trust) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNEQ(FieldTrust, v))
}

// TrustIn applies the In predicate on the "trust" field.
func TrustIn(vs ...Trust) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldIn(FieldTrust, vs...))
}

// TrustNotIn applies the NotIn predicate on the "trust" field.
func TrustNotIn(vs ...Trust) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNotIn(FieldTrust, vs...))
}

// SandboxEnabledEQ applies the EQ predicate on the "sandbox_enabled" field.
func SandboxEnabledEQ(v bool) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldEQ(FieldSandboxEnabled, v))
}

// SandboxEnabledNEQ applies the NEQ predicate on the "sandbox_enabled" field.
func SandboxEnabledNEQ(v bool) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNEQ(FieldSandboxEnabled, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldContainsFold(FieldCategory, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNEQ(FieldEnabled, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldLTE(FieldCreatedAt, v))
}

// LastConnectedEQ applies the EQ predicate on the "last_connected" field.
func LastConnectedEQ(v time.Time) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldEQ(FieldLastConnected, v))
}

// LastConnectedNEQ applies the NEQ predicate on the "last_connected" field.
func LastConnectedNEQ(v time.Time) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNEQ(FieldLastConnected, v))
}

// LastConnectedIn applies the In predicate on the "last_connected" field.
func LastConnectedIn(vs ...time.Time) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldIn(FieldLastConnected, vs...))
}

// LastConnectedNotIn applies the NotIn predicate on the "last_connected" field.
func LastConnectedNotIn(vs ...time.Time) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNotIn(FieldLastConnected, vs...))
}

// LastConnectedGT applies the GT predicate on the "last_connected" field.
func LastConnectedGT(v time.Time) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldGT(FieldLastConnected, v))
}

// LastConnectedGTE applies the GTE predicate on the "last_connected" field.
func LastConnectedGTE(v time.Time) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldGTE(FieldLastConnected, v))
}

// LastConnectedLT applies the LT predicate on the "last_connected" field.
func LastConnectedLT(v time.Time) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldLT(FieldLastConnected, v))
}

// LastConnectedLTE applies the LTE predicate on the "last_connected" field.
func LastConnectedLTE(v time.Time) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldLTE(FieldLastConnected, v))
}

// LastConnectedIsNil applies the IsNil predicate on the "last_connected" field.
func LastConnectedIsNil() predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldIsNull(FieldLastConnected))
}

// LastConnectedNotNil applies the NotNil predicate on the "last_connected" field.
func LastConnectedNotNil() predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNotNull(FieldLastConnected))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.ExternalServer {
	return predicate.ExternalServer(sql.FieldContainsFold(FieldLastError, v))
}

// HasToolApprovals applies the HasEdge predicate on the "tool_approvals" edge.
func HasToolApprovals() predicate.ExternalServer {
	return predicate.ExternalServer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ToolApprovalsTable, ToolApprovalsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasToolApprovalsWith applies the HasEdge predicate on the "tool_approvals" edge with a given conditions (other predicates).
func HasToolApprovalsWith(preds ...predicate.ToolApproval) predicate.ExternalServer {
	return predicate.ExternalServer(func(s *sql.Selector) {
		step := newToolApprovalsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExternalServer) predicate.ExternalServer {
	return predicate.ExternalServer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExternalServer) predicate.ExternalServer {
	return predicate.ExternalServer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExternalServer) predicate.ExternalServer {
	return predicate.ExternalServer(sql.NotPredicates(p))
}
