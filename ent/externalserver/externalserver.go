// Code generated by ent, DO NOT EDIT.

package externalserver

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the externalserver type in the database.
	Label = "external_server"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldTransport holds the string denoting the transport field in the database.
	FieldTransport = "transport"
	// FieldCommand holds the string denoting the command field in the database.
	FieldCommand = "command"
	// FieldArgs holds the string denoting the args field in the database.
	FieldArgs = "args_json"
	// FieldEnv holds the string denoting the env field in the database.
	FieldEnv = "env_json"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldHeaders holds the string denoting the headers field in the database.
	FieldHeaders = "headers_json"
	// FieldTrust holds the string denoting the trust field in the database.
	FieldTrust = "trust"
	// FieldSandboxEnabled holds the string denoting the sandbox_enabled field in the database.
	FieldSandboxEnabled = "sandbox_enabled"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldLastConnected holds the string denoting the last_connected field in the database.
	FieldLastConnected = "last_connected"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// EdgeToolApprovals holds the string denoting the tool_approvals edge name in mutations.
	EdgeToolApprovals = "tool_approvals"
	// Table holds the table name of the externalserver in the database.
	Table = "external_servers"
	// ToolApprovalsTable is the table that holds the tool_approvals relation/edge.
	ToolApprovalsTable = "tool_approvals"
	// ToolApprovalsInverseTable is the table name for the ToolApproval entity.
	// It exists in this package in order to avoid circular dependency with the "toolapproval" package.
	ToolApprovalsInverseTable = "tool_approvals"
	// ToolApprovalsColumn is the table column denoting the tool_approvals relation/edge.
	ToolApprovalsColumn = "server_id"
)

// Columns holds all SQL columns for externalserver fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDescription,
	FieldTransport,
	FieldCommand,
	FieldArgs,
	FieldEnv,
	FieldURL,
	FieldHeaders,
	FieldTrust,
	FieldSandboxEnabled,
	FieldCategory,
	FieldEnabled,
	FieldCreatedAt,
	FieldLastConnected,
	FieldLastError,
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
	// DefaultSandboxEnabled holds the default value on creation for the "sandbox_enabled" field.
	DefaultSandboxEnabled bool
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Transport defines the type for the "transport" enum field.
type Transport string

// Transport values.
const (
	TransportStdio Transport = "stdio"
	TransportHTTP  Transport = "http"
)

func (t Transport) String() string {
	return string(t)
}

// TransportValidator is a validator for the "transport" field enum values. It is called by the builders before save.
func TransportValidator(t Transport) error {
	switch t {
	case TransportStdio, TransportHTTP:
		return nil
	default:
		return fmt.Errorf("externalserver: invalid enum value for transport field: %q", t)
	}
}

// Trust defines the type for the "trust" enum field.
type Trust string

// TrustUserAdded is the default value of the Trust enum.
const DefaultTrust = TrustUserAdded

// Trust values.
const (
	TrustBuiltin   Trust = "builtin"
	TrustVerified  Trust = "verified"
	TrustUserAdded Trust = "user_added"
)

func (t Trust) String() string {
	return string(t)
}

// TrustValidator is a validator for the "trust" field enum values. It is called by the builders before save.
func TrustValidator(t Trust) error {
	switch t {
	case TrustBuiltin, TrustVerified, TrustUserAdded:
		return nil
	default:
		return fmt.Errorf("externalserver: invalid enum value for trust field: %q", t)
	}
}

// OrderOption defines the ordering options for the ExternalServer queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByTransport orders the results by the transport field.
func ByTransport(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransport, opts...).ToFunc()
}

// ByCommand orders the results by the command field.
func ByCommand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommand, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByTrust orders the results by the trust field.
func ByTrust(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrust, opts...).ToFunc()
}

// BySandboxEnabled orders the results by the sandbox_enabled field.
func BySandboxEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSandboxEnabled, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLastConnected orders the results by the last_connected field.
func ByLastConnected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastConnected, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByToolApprovalsCount orders the results by tool_approvals count.
func ByToolApprovalsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newToolApprovalsStep(), opts...)
	}
}

// ByToolApprovals orders the results by tool_approvals terms.
func ByToolApprovals(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newToolApprovalsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newToolApprovalsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ToolApprovalsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ToolApprovalsTable, ToolApprovalsColumn),
	)
}
