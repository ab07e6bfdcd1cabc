// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/praxislabs/praxis/ent/agentsession"
	"github.com/praxislabs/praxis/ent/auditentry"
	"github.com/praxislabs/praxis/ent/externalserver"
	"github.com/praxislabs/praxis/ent/projectautonomy"
	"github.com/praxislabs/praxis/ent/schema"
	"github.com/praxislabs/praxis/ent/toolapproval"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentsessionFields := schema.AgentSession{}.Fields()
	_ = agentsessionFields
	// agentsessionDescCreatedAt is the schema descriptor for created_at field.
	agentsessionDescCreatedAt := agentsessionFields[5].Descriptor()
	// agentsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentsession.DefaultCreatedAt = agentsessionDescCreatedAt.Default.(func() time.Time)
	// agentsessionDescTokensIn is the schema descriptor for tokens_in field.
	agentsessionDescTokensIn := agentsessionFields[8].Descriptor()
	// agentsession.DefaultTokensIn holds the default value on creation for the tokens_in field.
	agentsession.DefaultTokensIn = agentsessionDescTokensIn.Default.(int)
	// agentsessionDescTokensOut is the schema descriptor for tokens_out field.
	agentsessionDescTokensOut := agentsessionFields[9].Descriptor()
	// agentsession.DefaultTokensOut holds the default value on creation for the tokens_out field.
	agentsession.DefaultTokensOut = agentsessionDescTokensOut.Default.(int)
	// agentsessionDescCost is the schema descriptor for cost field.
	agentsessionDescCost := agentsessionFields[10].Descriptor()
	// agentsession.DefaultCost holds the default value on creation for the cost field.
	agentsession.DefaultCost = agentsessionDescCost.Default.(float64)
	agentstepFields := schema.AgentStep{}.Fields()
	_ = agentstepFields
	auditentryFields := schema.AuditEntry{}.Fields()
	_ = auditentryFields
	// auditentryDescTimestamp is the schema descriptor for timestamp field.
	auditentryDescTimestamp := auditentryFields[2].Descriptor()
	// auditentry.DefaultTimestamp holds the default value on creation for the timestamp field.
	auditentry.DefaultTimestamp = auditentryDescTimestamp.Default.(func() time.Time)
	// auditentryDescDurationMs is the schema descriptor for duration_ms field.
	auditentryDescDurationMs := auditentryFields[9].Descriptor()
	// auditentry.DefaultDurationMs holds the default value on creation for the duration_ms field.
	auditentry.DefaultDurationMs = auditentryDescDurationMs.Default.(int)
	// auditentryDescYoloMode is the schema descriptor for yolo_mode field.
	auditentryDescYoloMode := auditentryFields[13].Descriptor()
	// auditentry.DefaultYoloMode holds the default value on creation for the yolo_mode field.
	auditentry.DefaultYoloMode = auditentryDescYoloMode.Default.(bool)
	externalserverFields := schema.ExternalServer{}.Fields()
	_ = externalserverFields
	// externalserverDescSandboxEnabled is the schema descriptor for sandbox_enabled field.
	externalserverDescSandboxEnabled := externalserverFields[10].Descriptor()
	// externalserver.DefaultSandboxEnabled holds the default value on creation for the sandbox_enabled field.
	externalserver.DefaultSandboxEnabled = externalserverDescSandboxEnabled.Default.(bool)
	// externalserverDescEnabled is the schema descriptor for enabled field.
	externalserverDescEnabled := externalserverFields[12].Descriptor()
	// externalserver.DefaultEnabled holds the default value on creation for the enabled field.
	externalserver.DefaultEnabled = externalserverDescEnabled.Default.(bool)
	// externalserverDescCreatedAt is the schema descriptor for created_at field.
	externalserverDescCreatedAt := externalserverFields[13].Descriptor()
	// externalserver.DefaultCreatedAt holds the default value on creation for the created_at field.
	externalserver.DefaultCreatedAt = externalserverDescCreatedAt.Default.(func() time.Time)
	projectautonomyFields := schema.ProjectAutonomy{}.Fields()
	_ = projectautonomyFields
	// projectautonomyDescUpdatedAt is the schema descriptor for updated_at field.
	projectautonomyDescUpdatedAt := projectautonomyFields[4].Descriptor()
	// projectautonomy.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	projectautonomy.DefaultUpdatedAt = projectautonomyDescUpdatedAt.Default.(func() time.Time)
	// projectautonomy.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	projectautonomy.UpdateDefaultUpdatedAt = projectautonomyDescUpdatedAt.UpdateDefault.(func() time.Time)
	toolapprovalFields := schema.ToolApproval{}.Fields()
	_ = toolapprovalFields
	// toolapprovalDescApproved is the schema descriptor for approved field.
	toolapprovalDescApproved := toolapprovalFields[2].Descriptor()
	// toolapproval.DefaultApproved holds the default value on creation for the approved field.
	toolapproval.DefaultApproved = toolapprovalDescApproved.Default.(bool)
}
