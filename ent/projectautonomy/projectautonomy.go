// Code generated by ent, DO NOT EDIT.

package projectautonomy

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the projectautonomy type in the database.
	Label = "project_autonomy"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProjectPath holds the string denoting the project_path field in the database.
	FieldProjectPath = "project_path"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldAllowlist holds the string denoting the allowlist field in the database.
	FieldAllowlist = "allowlist_json"
	// FieldBlocklist holds the string denoting the blocklist field in the database.
	FieldBlocklist = "blocklist_json"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the projectautonomy in the database.
	Table = "project_autonomies"
)

// Columns holds all SQL columns for projectautonomy fields.
var Columns = []string{
	FieldID,
	FieldProjectPath,
	FieldLevel,
	FieldAllowlist,
	FieldBlocklist,
	FieldUpdatedAt,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Level defines the type for the "level" enum field.
type Level string

// LevelL2 is the default value of the Level enum.
const DefaultLevel = LevelL2

// Level values.
const (
	LevelL1 Level = "L1"
	LevelL2 Level = "L2"
	LevelL3 Level = "L3"
	LevelL4 Level = "L4"
)

func (l Level) String() string {
	return string(l)
}

// LevelValidator is a validator for the "level" field enum values. It is called by the builders before save.
func LevelValidator(l Level) error {
	switch l {
	case LevelL1, LevelL2, LevelL3, LevelL4:
		return nil
	default:
		return fmt.Errorf("projectautonomy: invalid enum value for level field: %q", l)
	}
}

// OrderOption defines the ordering options for the ProjectAutonomy queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectPath orders the results by the project_path field.
func ByProjectPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectPath, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
