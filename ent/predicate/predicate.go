// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentSession is the predicate function for agentsession builders.
type AgentSession func(*sql.Selector)

// AgentStep is the predicate function for agentstep builders.
type AgentStep func(*sql.Selector)

// AuditEntry is the predicate function for auditentry builders.
type AuditEntry func(*sql.Selector)

// ExternalServer is the predicate function for externalserver builders.
type ExternalServer func(*sql.Selector)

// ProjectAutonomy is the predicate function for projectautonomy builders.
type ProjectAutonomy func(*sql.Selector)

// ToolApproval is the predicate function for toolapproval builders.
type ToolApproval func(*sql.Selector)
