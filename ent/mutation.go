// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxislabs/praxis/ent/agentsession"
	"github.com/praxislabs/praxis/ent/agentstep"
	"github.com/praxislabs/praxis/ent/auditentry"
	"github.com/praxislabs/praxis/ent/externalserver"
	"github.com/praxislabs/praxis/ent/predicate"
	"github.com/praxislabs/praxis/ent/projectautonomy"
	"github.com/praxislabs/praxis/ent/toolapproval"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentSession    = "AgentSession"
	TypeAgentStep       = "AgentStep"
	TypeAuditEntry      = "AuditEntry"
	TypeExternalServer  = "ExternalServer"
	TypeProjectAutonomy = "ProjectAutonomy"
	TypeToolApproval    = "ToolApproval"
)

// AgentSessionMutation represents an operation that mutates the AgentSession nodes in the graph.
type AgentSessionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	task          *string
	state         *agentsession.State
	project_path  *string
	plan_overview *string
	created_at    *time.Time
	started_at    *time.Time
	ended_at      *time.Time
	tokens_in     *int
	addtokens_in  *int
	tokens_out    *int
	addtokens_out *int
	cost          *float64
	addcost       *float64
	error_message *string
	pod_id        *string
	clearedFields map[string]struct{}
	steps         map[int]struct{}
	removedsteps  map[int]struct{}
	clearedsteps  bool
	done          bool
	oldValue      func(context.Context) (*AgentSession, error)
	predicates    []predicate.AgentSession
}

var _ ent.Mutation = (*AgentSessionMutation)(nil)

// agentsessionOption allows management of the mutation configuration using functional options.
type agentsessionOption func(*AgentSessionMutation)

// newAgentSessionMutation creates new mutation for the AgentSession entity.
func newAgentSessionMutation(c config, op Op, opts ...agentsessionOption) *AgentSessionMutation {
	m := &AgentSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentSessionID sets the ID field of the mutation.
func withAgentSessionID(id string) agentsessionOption {
	return func(m *AgentSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentSession
		)
		m.oldValue = func(ctx context.Context) (*AgentSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentSession sets the old AgentSession of the mutation.
func withAgentSession(node *AgentSession) agentsessionOption {
	return func(m *AgentSessionMutation) {
		m.oldValue = func(context.Context) (*AgentSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentSession entities.
func (m *AgentSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTask sets the "task" field.
func (m *AgentSessionMutation) SetTask(s string) {
	m.task = &s
}

// Task returns the value of the "task" field in the mutation.
func (m *AgentSessionMutation) Task() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTask returns the old "task" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldTask(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTask is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTask requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTask: %w", err)
	}
	return oldValue.Task, nil
}

// ResetTask resets all changes to the "task" field.
func (m *AgentSessionMutation) ResetTask() {
	m.task = nil
}

// SetState sets the "state" field.
func (m *AgentSessionMutation) SetState(a agentsession.State) {
	m.state = &a
}

// State returns the value of the "state" field in the mutation.
func (m *AgentSessionMutation) State() (r agentsession.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldState(ctx context.Context) (v agentsession.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *AgentSessionMutation) ResetState() {
	m.state = nil
}

// SetProjectPath sets the "project_path" field.
func (m *AgentSessionMutation) SetProjectPath(s string) {
	m.project_path = &s
}

// ProjectPath returns the value of the "project_path" field in the mutation.
func (m *AgentSessionMutation) ProjectPath() (r string, exists bool) {
	v := m.project_path
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectPath returns the old "project_path" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldProjectPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectPath: %w", err)
	}
	return oldValue.ProjectPath, nil
}

// ClearProjectPath clears the value of the "project_path" field.
func (m *AgentSessionMutation) ClearProjectPath() {
	m.project_path = nil
	m.clearedFields[agentsession.FieldProjectPath] = struct{}{}
}

// ProjectPathCleared returns if the "project_path" field was cleared in this mutation.
func (m *AgentSessionMutation) ProjectPathCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldProjectPath]
	return ok
}

// ResetProjectPath resets all changes to the "project_path" field.
func (m *AgentSessionMutation) ResetProjectPath() {
	m.project_path = nil
	delete(m.clearedFields, agentsession.FieldProjectPath)
}

// SetPlanOverview sets the "plan_overview" field.
func (m *AgentSessionMutation) SetPlanOverview(s string) {
	m.plan_overview = &s
}

// PlanOverview returns the value of the "plan_overview" field in the mutation.
func (m *AgentSessionMutation) PlanOverview() (r string, exists bool) {
	v := m.plan_overview
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanOverview returns the old "plan_overview" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldPlanOverview(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanOverview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanOverview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanOverview: %w", err)
	}
	return oldValue.PlanOverview, nil
}

// ClearPlanOverview clears the value of the "plan_overview" field.
func (m *AgentSessionMutation) ClearPlanOverview() {
	m.plan_overview = nil
	m.clearedFields[agentsession.FieldPlanOverview] = struct{}{}
}

// PlanOverviewCleared returns if the "plan_overview" field was cleared in this mutation.
func (m *AgentSessionMutation) PlanOverviewCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldPlanOverview]
	return ok
}

// ResetPlanOverview resets all changes to the "plan_overview" field.
func (m *AgentSessionMutation) ResetPlanOverview() {
	m.plan_overview = nil
	delete(m.clearedFields, agentsession.FieldPlanOverview)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AgentSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AgentSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *AgentSessionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[agentsession.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *AgentSessionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AgentSessionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, agentsession.FieldStartedAt)
}

// SetEndedAt sets the "ended_at" field.
func (m *AgentSessionMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *AgentSessionMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *AgentSessionMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[agentsession.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *AgentSessionMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *AgentSessionMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, agentsession.FieldEndedAt)
}

// SetTokensIn sets the "tokens_in" field.
func (m *AgentSessionMutation) SetTokensIn(i int) {
	m.tokens_in = &i
	m.addtokens_in = nil
}

// TokensIn returns the value of the "tokens_in" field in the mutation.
func (m *AgentSessionMutation) TokensIn() (r int, exists bool) {
	v := m.tokens_in
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensIn returns the old "tokens_in" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldTokensIn(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensIn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensIn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensIn: %w", err)
	}
	return oldValue.TokensIn, nil
}

// AddTokensIn adds i to the "tokens_in" field.
func (m *AgentSessionMutation) AddTokensIn(i int) {
	if m.addtokens_in != nil {
		*m.addtokens_in += i
	} else {
		m.addtokens_in = &i
	}
}

// AddedTokensIn returns the value that was added to the "tokens_in" field in this mutation.
func (m *AgentSessionMutation) AddedTokensIn() (r int, exists bool) {
	v := m.addtokens_in
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensIn resets all changes to the "tokens_in" field.
func (m *AgentSessionMutation) ResetTokensIn() {
	m.tokens_in = nil
	m.addtokens_in = nil
}

// SetTokensOut sets the "tokens_out" field.
func (m *AgentSessionMutation) SetTokensOut(i int) {
	m.tokens_out = &i
	m.addtokens_out = nil
}

// TokensOut returns the value of the "tokens_out" field in the mutation.
func (m *AgentSessionMutation) TokensOut() (r int, exists bool) {
	v := m.tokens_out
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensOut returns the old "tokens_out" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldTokensOut(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensOut is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensOut requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensOut: %w", err)
	}
	return oldValue.TokensOut, nil
}

// AddTokensOut adds i to the "tokens_out" field.
func (m *AgentSessionMutation) AddTokensOut(i int) {
	if m.addtokens_out != nil {
		*m.addtokens_out += i
	} else {
		m.addtokens_out = &i
	}
}

// AddedTokensOut returns the value that was added to the "tokens_out" field in this mutation.
func (m *AgentSessionMutation) AddedTokensOut() (r int, exists bool) {
	v := m.addtokens_out
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensOut resets all changes to the "tokens_out" field.
func (m *AgentSessionMutation) ResetTokensOut() {
	m.tokens_out = nil
	m.addtokens_out = nil
}

// SetCost sets the "cost" field.
func (m *AgentSessionMutation) SetCost(f float64) {
	m.cost = &f
	m.addcost = nil
}

// Cost returns the value of the "cost" field in the mutation.
func (m *AgentSessionMutation) Cost() (r float64, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// AddCost adds f to the "cost" field.
func (m *AgentSessionMutation) AddCost(f float64) {
	if m.addcost != nil {
		*m.addcost += f
	} else {
		m.addcost = &f
	}
}

// AddedCost returns the value that was added to the "cost" field in this mutation.
func (m *AgentSessionMutation) AddedCost() (r float64, exists bool) {
	v := m.addcost
	if v == nil {
		return
	}
	return *v, true
}

// ResetCost resets all changes to the "cost" field.
func (m *AgentSessionMutation) ResetCost() {
	m.cost = nil
	m.addcost = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *AgentSessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AgentSessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AgentSessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[agentsession.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AgentSessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AgentSessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, agentsession.FieldErrorMessage)
}

// SetPodID sets the "pod_id" field.
func (m *AgentSessionMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *AgentSessionMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *AgentSessionMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[agentsession.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *AgentSessionMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *AgentSessionMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, agentsession.FieldPodID)
}

// AddStepIDs adds the "steps" edge to the AgentStep entity by ids.
func (m *AgentSessionMutation) AddStepIDs(ids ...int) {
	if m.steps == nil {
		m.steps = make(map[int]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the AgentStep entity.
func (m *AgentSessionMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the AgentStep entity was cleared.
func (m *AgentSessionMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the AgentStep entity by IDs.
func (m *AgentSessionMutation) RemoveStepIDs(ids ...int) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the AgentStep entity.
func (m *AgentSessionMutation) RemovedStepsIDs() (ids []int) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *AgentSessionMutation) StepsIDs() (ids []int) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *AgentSessionMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// Where appends a list predicates to the AgentSessionMutation builder.
func (m *AgentSessionMutation) Where(ps ...predicate.AgentSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentSession).
func (m *AgentSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentSessionMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.task != nil {
		fields = append(fields, agentsession.FieldTask)
	}
	if m.state != nil {
		fields = append(fields, agentsession.FieldState)
	}
	if m.project_path != nil {
		fields = append(fields, agentsession.FieldProjectPath)
	}
	if m.plan_overview != nil {
		fields = append(fields, agentsession.FieldPlanOverview)
	}
	if m.created_at != nil {
		fields = append(fields, agentsession.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, agentsession.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, agentsession.FieldEndedAt)
	}
	if m.tokens_in != nil {
		fields = append(fields, agentsession.FieldTokensIn)
	}
	if m.tokens_out != nil {
		fields = append(fields, agentsession.FieldTokensOut)
	}
	if m.cost != nil {
		fields = append(fields, agentsession.FieldCost)
	}
	if m.error_message != nil {
		fields = append(fields, agentsession.FieldErrorMessage)
	}
	if m.pod_id != nil {
		fields = append(fields, agentsession.FieldPodID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentsession.FieldTask:
		return m.Task()
	case agentsession.FieldState:
		return m.State()
	case agentsession.FieldProjectPath:
		return m.ProjectPath()
	case agentsession.FieldPlanOverview:
		return m.PlanOverview()
	case agentsession.FieldCreatedAt:
		return m.CreatedAt()
	case agentsession.FieldStartedAt:
		return m.StartedAt()
	case agentsession.FieldEndedAt:
		return m.EndedAt()
	case agentsession.FieldTokensIn:
		return m.TokensIn()
	case agentsession.FieldTokensOut:
		return m.TokensOut()
	case agentsession.FieldCost:
		return m.Cost()
	case agentsession.FieldErrorMessage:
		return m.ErrorMessage()
	case agentsession.FieldPodID:
		return m.PodID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentsession.FieldTask:
		return m.OldTask(ctx)
	case agentsession.FieldState:
		return m.OldState(ctx)
	case agentsession.FieldProjectPath:
		return m.OldProjectPath(ctx)
	case agentsession.FieldPlanOverview:
		return m.OldPlanOverview(ctx)
	case agentsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentsession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case agentsession.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case agentsession.FieldTokensIn:
		return m.OldTokensIn(ctx)
	case agentsession.FieldTokensOut:
		return m.OldTokensOut(ctx)
	case agentsession.FieldCost:
		return m.OldCost(ctx)
	case agentsession.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case agentsession.FieldPodID:
		return m.OldPodID(ctx)
	}
	return nil, fmt.Errorf("unknown AgentSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentsession.FieldTask:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTask(v)
		return nil
	case agentsession.FieldState:
		v, ok := value.(agentsession.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case agentsession.FieldProjectPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectPath(v)
		return nil
	case agentsession.FieldPlanOverview:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanOverview(v)
		return nil
	case agentsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentsession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case agentsession.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case agentsession.FieldTokensIn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensIn(v)
		return nil
	case agentsession.FieldTokensOut:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensOut(v)
		return nil
	case agentsession.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	case agentsession.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case agentsession.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	}
	return fmt.Errorf("unknown AgentSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentSessionMutation) AddedFields() []string {
	var fields []string
	if m.addtokens_in != nil {
		fields = append(fields, agentsession.FieldTokensIn)
	}
	if m.addtokens_out != nil {
		fields = append(fields, agentsession.FieldTokensOut)
	}
	if m.addcost != nil {
		fields = append(fields, agentsession.FieldCost)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentsession.FieldTokensIn:
		return m.AddedTokensIn()
	case agentsession.FieldTokensOut:
		return m.AddedTokensOut()
	case agentsession.FieldCost:
		return m.AddedCost()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentsession.FieldTokensIn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensIn(v)
		return nil
	case agentsession.FieldTokensOut:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensOut(v)
		return nil
	case agentsession.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCost(v)
		return nil
	}
	return fmt.Errorf("unknown AgentSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentsession.FieldProjectPath) {
		fields = append(fields, agentsession.FieldProjectPath)
	}
	if m.FieldCleared(agentsession.FieldPlanOverview) {
		fields = append(fields, agentsession.FieldPlanOverview)
	}
	if m.FieldCleared(agentsession.FieldStartedAt) {
		fields = append(fields, agentsession.FieldStartedAt)
	}
	if m.FieldCleared(agentsession.FieldEndedAt) {
		fields = append(fields, agentsession.FieldEndedAt)
	}
	if m.FieldCleared(agentsession.FieldErrorMessage) {
		fields = append(fields, agentsession.FieldErrorMessage)
	}
	if m.FieldCleared(agentsession.FieldPodID) {
		fields = append(fields, agentsession.FieldPodID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentSessionMutation) ClearField(name string) error {
	switch name {
	case agentsession.FieldProjectPath:
		m.ClearProjectPath()
		return nil
	case agentsession.FieldPlanOverview:
		m.ClearPlanOverview()
		return nil
	case agentsession.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case agentsession.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	case agentsession.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case agentsession.FieldPodID:
		m.ClearPodID()
		return nil
	}
	return fmt.Errorf("unknown AgentSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentSessionMutation) ResetField(name string) error {
	switch name {
	case agentsession.FieldTask:
		m.ResetTask()
		return nil
	case agentsession.FieldState:
		m.ResetState()
		return nil
	case agentsession.FieldProjectPath:
		m.ResetProjectPath()
		return nil
	case agentsession.FieldPlanOverview:
		m.ResetPlanOverview()
		return nil
	case agentsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentsession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case agentsession.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case agentsession.FieldTokensIn:
		m.ResetTokensIn()
		return nil
	case agentsession.FieldTokensOut:
		m.ResetTokensOut()
		return nil
	case agentsession.FieldCost:
		m.ResetCost()
		return nil
	case agentsession.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case agentsession.FieldPodID:
		m.ResetPodID()
		return nil
	}
	return fmt.Errorf("unknown AgentSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.steps != nil {
		edges = append(edges, agentsession.EdgeSteps)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentsession.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedsteps != nil {
		edges = append(edges, agentsession.EdgeSteps)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agentsession.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsteps {
		edges = append(edges, agentsession.EdgeSteps)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case agentsession.EdgeSteps:
		return m.clearedsteps
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentSessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentSessionMutation) ResetEdge(name string) error {
	switch name {
	case agentsession.EdgeSteps:
		m.ResetSteps()
		return nil
	}
	return fmt.Errorf("unknown AgentSession edge %s", name)
}

// AgentStepMutation represents an operation that mutates the AgentStep nodes in the graph.
type AgentStepMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	step_id            *int
	addstep_id         *int
	description        *string
	tool_name          *string
	params             *map[string]interface{}
	dependencies       *[]int
	appenddependencies []int
	status             *agentstep.Status
	result             *string
	error_message      *string
	started_at         *time.Time
	completed_at       *time.Time
	duration_ms        *int
	addduration_ms     *int
	clearedFields      map[string]struct{}
	session            *string
	clearedsession     bool
	done               bool
	oldValue           func(context.Context) (*AgentStep, error)
	predicates         []predicate.AgentStep
}

var _ ent.Mutation = (*AgentStepMutation)(nil)

// agentstepOption allows management of the mutation configuration using functional options.
type agentstepOption func(*AgentStepMutation)

// newAgentStepMutation creates new mutation for the AgentStep entity.
func newAgentStepMutation(c config, op Op, opts ...agentstepOption) *AgentStepMutation {
	m := &AgentStepMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentStepID sets the ID field of the mutation.
func withAgentStepID(id int) agentstepOption {
	return func(m *AgentStepMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentStep
		)
		m.oldValue = func(ctx context.Context) (*AgentStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentStep sets the old AgentStep of the mutation.
func withAgentStep(node *AgentStep) agentstepOption {
	return func(m *AgentStepMutation) {
		m.oldValue = func(context.Context) (*AgentStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentStepMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentStepMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *AgentStepMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AgentStepMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AgentStepMutation) ResetSessionID() {
	m.session = nil
}

// SetStepID sets the "step_id" field.
func (m *AgentStepMutation) SetStepID(i int) {
	m.step_id = &i
	m.addstep_id = nil
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *AgentStepMutation) StepID() (r int, exists bool) {
	v := m.step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldStepID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// AddStepID adds i to the "step_id" field.
func (m *AgentStepMutation) AddStepID(i int) {
	if m.addstep_id != nil {
		*m.addstep_id += i
	} else {
		m.addstep_id = &i
	}
}

// AddedStepID returns the value that was added to the "step_id" field in this mutation.
func (m *AgentStepMutation) AddedStepID() (r int, exists bool) {
	v := m.addstep_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepID resets all changes to the "step_id" field.
func (m *AgentStepMutation) ResetStepID() {
	m.step_id = nil
	m.addstep_id = nil
}

// SetDescription sets the "description" field.
func (m *AgentStepMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *AgentStepMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *AgentStepMutation) ResetDescription() {
	m.description = nil
}

// SetToolName sets the "tool_name" field.
func (m *AgentStepMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *AgentStepMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldToolName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ClearToolName clears the value of the "tool_name" field.
func (m *AgentStepMutation) ClearToolName() {
	m.tool_name = nil
	m.clearedFields[agentstep.FieldToolName] = struct{}{}
}

// ToolNameCleared returns if the "tool_name" field was cleared in this mutation.
func (m *AgentStepMutation) ToolNameCleared() bool {
	_, ok := m.clearedFields[agentstep.FieldToolName]
	return ok
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *AgentStepMutation) ResetToolName() {
	m.tool_name = nil
	delete(m.clearedFields, agentstep.FieldToolName)
}

// SetParams sets the "params" field.
func (m *AgentStepMutation) SetParams(value map[string]interface{}) {
	m.params = &value
}

// Params returns the value of the "params" field in the mutation.
func (m *AgentStepMutation) Params() (r map[string]interface{}, exists bool) {
	v := m.params
	if v == nil {
		return
	}
	return *v, true
}

// OldParams returns the old "params" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldParams(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParams: %w", err)
	}
	return oldValue.Params, nil
}

// ClearParams clears the value of the "params" field.
func (m *AgentStepMutation) ClearParams() {
	m.params = nil
	m.clearedFields[agentstep.FieldParams] = struct{}{}
}

// ParamsCleared returns if the "params" field was cleared in this mutation.
func (m *AgentStepMutation) ParamsCleared() bool {
	_, ok := m.clearedFields[agentstep.FieldParams]
	return ok
}

// ResetParams resets all changes to the "params" field.
func (m *AgentStepMutation) ResetParams() {
	m.params = nil
	delete(m.clearedFields, agentstep.FieldParams)
}

// SetDependencies sets the "dependencies" field.
func (m *AgentStepMutation) SetDependencies(i []int) {
	m.dependencies = &i
	m.appenddependencies = nil
}

// Dependencies returns the value of the "dependencies" field in the mutation.
func (m *AgentStepMutation) Dependencies() (r []int, exists bool) {
	v := m.dependencies
	if v == nil {
		return
	}
	return *v, true
}

// OldDependencies returns the old "dependencies" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldDependencies(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependencies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependencies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependencies: %w", err)
	}
	return oldValue.Dependencies, nil
}

// AppendDependencies adds i to the "dependencies" field.
func (m *AgentStepMutation) AppendDependencies(i []int) {
	m.appenddependencies = append(m.appenddependencies, i...)
}

// AppendedDependencies returns the list of values that were appended to the "dependencies" field in this mutation.
func (m *AgentStepMutation) AppendedDependencies() ([]int, bool) {
	if len(m.appenddependencies) == 0 {
		return nil, false
	}
	return m.appenddependencies, true
}

// ClearDependencies clears the value of the "dependencies" field.
func (m *AgentStepMutation) ClearDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	m.clearedFields[agentstep.FieldDependencies] = struct{}{}
}

// DependenciesCleared returns if the "dependencies" field was cleared in this mutation.
func (m *AgentStepMutation) DependenciesCleared() bool {
	_, ok := m.clearedFields[agentstep.FieldDependencies]
	return ok
}

// ResetDependencies resets all changes to the "dependencies" field.
func (m *AgentStepMutation) ResetDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	delete(m.clearedFields, agentstep.FieldDependencies)
}

// SetStatus sets the "status" field.
func (m *AgentStepMutation) SetStatus(a agentstep.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentStepMutation) Status() (r agentstep.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldStatus(ctx context.Context) (v agentstep.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentStepMutation) ResetStatus() {
	m.status = nil
}

// SetResult sets the "result" field.
func (m *AgentStepMutation) SetResult(s string) {
	m.result = &s
}

// Result returns the value of the "result" field in the mutation.
func (m *AgentStepMutation) Result() (r string, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldResult(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *AgentStepMutation) ClearResult() {
	m.result = nil
	m.clearedFields[agentstep.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *AgentStepMutation) ResultCleared() bool {
	_, ok := m.clearedFields[agentstep.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *AgentStepMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, agentstep.FieldResult)
}

// SetErrorMessage sets the "error_message" field.
func (m *AgentStepMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AgentStepMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AgentStepMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[agentstep.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AgentStepMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[agentstep.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AgentStepMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, agentstep.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *AgentStepMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AgentStepMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *AgentStepMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[agentstep.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *AgentStepMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[agentstep.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AgentStepMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, agentstep.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *AgentStepMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AgentStepMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AgentStepMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[agentstep.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AgentStepMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[agentstep.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AgentStepMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, agentstep.FieldCompletedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *AgentStepMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *AgentStepMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *AgentStepMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *AgentStepMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *AgentStepMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[agentstep.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *AgentStepMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[agentstep.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *AgentStepMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, agentstep.FieldDurationMs)
}

// ClearSession clears the "session" edge to the AgentSession entity.
func (m *AgentStepMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[agentstep.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the AgentSession entity was cleared.
func (m *AgentStepMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *AgentStepMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *AgentStepMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the AgentStepMutation builder.
func (m *AgentStepMutation) Where(ps ...predicate.AgentStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentStep).
func (m *AgentStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentStepMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.session != nil {
		fields = append(fields, agentstep.FieldSessionID)
	}
	if m.step_id != nil {
		fields = append(fields, agentstep.FieldStepID)
	}
	if m.description != nil {
		fields = append(fields, agentstep.FieldDescription)
	}
	if m.tool_name != nil {
		fields = append(fields, agentstep.FieldToolName)
	}
	if m.params != nil {
		fields = append(fields, agentstep.FieldParams)
	}
	if m.dependencies != nil {
		fields = append(fields, agentstep.FieldDependencies)
	}
	if m.status != nil {
		fields = append(fields, agentstep.FieldStatus)
	}
	if m.result != nil {
		fields = append(fields, agentstep.FieldResult)
	}
	if m.error_message != nil {
		fields = append(fields, agentstep.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, agentstep.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, agentstep.FieldCompletedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, agentstep.FieldDurationMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentstep.FieldSessionID:
		return m.SessionID()
	case agentstep.FieldStepID:
		return m.StepID()
	case agentstep.FieldDescription:
		return m.Description()
	case agentstep.FieldToolName:
		return m.ToolName()
	case agentstep.FieldParams:
		return m.Params()
	case agentstep.FieldDependencies:
		return m.Dependencies()
	case agentstep.FieldStatus:
		return m.Status()
	case agentstep.FieldResult:
		return m.Result()
	case agentstep.FieldErrorMessage:
		return m.ErrorMessage()
	case agentstep.FieldStartedAt:
		return m.StartedAt()
	case agentstep.FieldCompletedAt:
		return m.CompletedAt()
	case agentstep.FieldDurationMs:
		return m.DurationMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentstep.FieldSessionID:
		return m.OldSessionID(ctx)
	case agentstep.FieldStepID:
		return m.OldStepID(ctx)
	case agentstep.FieldDescription:
		return m.OldDescription(ctx)
	case agentstep.FieldToolName:
		return m.OldToolName(ctx)
	case agentstep.FieldParams:
		return m.OldParams(ctx)
	case agentstep.FieldDependencies:
		return m.OldDependencies(ctx)
	case agentstep.FieldStatus:
		return m.OldStatus(ctx)
	case agentstep.FieldResult:
		return m.OldResult(ctx)
	case agentstep.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case agentstep.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case agentstep.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case agentstep.FieldDurationMs:
		return m.OldDurationMs(ctx)
	}
	return nil, fmt.Errorf("unknown AgentStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentstep.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case agentstep.FieldStepID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case agentstep.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case agentstep.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case agentstep.FieldParams:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParams(v)
		return nil
	case agentstep.FieldDependencies:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependencies(v)
		return nil
	case agentstep.FieldStatus:
		v, ok := value.(agentstep.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentstep.FieldResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case agentstep.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case agentstep.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case agentstep.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case agentstep.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown AgentStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentStepMutation) AddedFields() []string {
	var fields []string
	if m.addstep_id != nil {
		fields = append(fields, agentstep.FieldStepID)
	}
	if m.addduration_ms != nil {
		fields = append(fields, agentstep.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentstep.FieldStepID:
		return m.AddedStepID()
	case agentstep.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentstep.FieldStepID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepID(v)
		return nil
	case agentstep.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown AgentStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentstep.FieldToolName) {
		fields = append(fields, agentstep.FieldToolName)
	}
	if m.FieldCleared(agentstep.FieldParams) {
		fields = append(fields, agentstep.FieldParams)
	}
	if m.FieldCleared(agentstep.FieldDependencies) {
		fields = append(fields, agentstep.FieldDependencies)
	}
	if m.FieldCleared(agentstep.FieldResult) {
		fields = append(fields, agentstep.FieldResult)
	}
	if m.FieldCleared(agentstep.FieldErrorMessage) {
		fields = append(fields, agentstep.FieldErrorMessage)
	}
	if m.FieldCleared(agentstep.FieldStartedAt) {
		fields = append(fields, agentstep.FieldStartedAt)
	}
	if m.FieldCleared(agentstep.FieldCompletedAt) {
		fields = append(fields, agentstep.FieldCompletedAt)
	}
	if m.FieldCleared(agentstep.FieldDurationMs) {
		fields = append(fields, agentstep.FieldDurationMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentStepMutation) ClearField(name string) error {
	switch name {
	case agentstep.FieldToolName:
		m.ClearToolName()
		return nil
	case agentstep.FieldParams:
		m.ClearParams()
		return nil
	case agentstep.FieldDependencies:
		m.ClearDependencies()
		return nil
	case agentstep.FieldResult:
		m.ClearResult()
		return nil
	case agentstep.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case agentstep.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case agentstep.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case agentstep.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	}
	return fmt.Errorf("unknown AgentStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentStepMutation) ResetField(name string) error {
	switch name {
	case agentstep.FieldSessionID:
		m.ResetSessionID()
		return nil
	case agentstep.FieldStepID:
		m.ResetStepID()
		return nil
	case agentstep.FieldDescription:
		m.ResetDescription()
		return nil
	case agentstep.FieldToolName:
		m.ResetToolName()
		return nil
	case agentstep.FieldParams:
		m.ResetParams()
		return nil
	case agentstep.FieldDependencies:
		m.ResetDependencies()
		return nil
	case agentstep.FieldStatus:
		m.ResetStatus()
		return nil
	case agentstep.FieldResult:
		m.ResetResult()
		return nil
	case agentstep.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case agentstep.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case agentstep.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case agentstep.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	}
	return fmt.Errorf("unknown AgentStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, agentstep.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentStepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentstep.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, agentstep.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentStepMutation) EdgeCleared(name string) bool {
	switch name {
	case agentstep.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentStepMutation) ClearEdge(name string) error {
	switch name {
	case agentstep.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown AgentStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentStepMutation) ResetEdge(name string) error {
	switch name {
	case agentstep.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown AgentStep edge %s", name)
}

// AuditEntryMutation represents an operation that mutates the AuditEntry nodes in the graph.
type AuditEntryMutation struct {
	config
	op                Op
	typ               string
	id                *string
	session_id        *string
	timestamp         *time.Time
	tool_name         *string
	risk_level        *auditentry.RiskLevel
	parameters        *string
	full_parameters   *string
	approval_decision *auditentry.ApprovalDecision
	approved_by       *string
	duration_ms       *int
	addduration_ms    *int
	success           *bool
	result            *string
	error_message     *string
	yolo_mode         *bool
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*AuditEntry, error)
	predicates        []predicate.AuditEntry
}

var _ ent.Mutation = (*AuditEntryMutation)(nil)

// auditentryOption allows management of the mutation configuration using functional options.
type auditentryOption func(*AuditEntryMutation)

// newAuditEntryMutation creates new mutation for the AuditEntry entity.
func newAuditEntryMutation(c config, op Op, opts ...auditentryOption) *AuditEntryMutation {
	m := &AuditEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditEntryID sets the ID field of the mutation.
func withAuditEntryID(id string) auditentryOption {
	return func(m *AuditEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditEntry
		)
		m.oldValue = func(ctx context.Context) (*AuditEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditEntry sets the old AuditEntry of the mutation.
func withAuditEntry(node *AuditEntry) auditentryOption {
	return func(m *AuditEntryMutation) {
		m.oldValue = func(context.Context) (*AuditEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditEntry entities.
func (m *AuditEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *AuditEntryMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AuditEntryMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AuditEntryMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AuditEntryMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AuditEntryMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AuditEntryMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetToolName sets the "tool_name" field.
func (m *AuditEntryMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *AuditEntryMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldToolName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *AuditEntryMutation) ResetToolName() {
	m.tool_name = nil
}

// SetRiskLevel sets the "risk_level" field.
func (m *AuditEntryMutation) SetRiskLevel(al auditentry.RiskLevel) {
	m.risk_level = &al
}

// RiskLevel returns the value of the "risk_level" field in the mutation.
func (m *AuditEntryMutation) RiskLevel() (r auditentry.RiskLevel, exists bool) {
	v := m.risk_level
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskLevel returns the old "risk_level" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldRiskLevel(ctx context.Context) (v auditentry.RiskLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskLevel: %w", err)
	}
	return oldValue.RiskLevel, nil
}

// ResetRiskLevel resets all changes to the "risk_level" field.
func (m *AuditEntryMutation) ResetRiskLevel() {
	m.risk_level = nil
}

// SetParameters sets the "parameters" field.
func (m *AuditEntryMutation) SetParameters(s string) {
	m.parameters = &s
}

// Parameters returns the value of the "parameters" field in the mutation.
func (m *AuditEntryMutation) Parameters() (r string, exists bool) {
	v := m.parameters
	if v == nil {
		return
	}
	return *v, true
}

// OldParameters returns the old "parameters" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldParameters(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParameters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParameters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParameters: %w", err)
	}
	return oldValue.Parameters, nil
}

// ResetParameters resets all changes to the "parameters" field.
func (m *AuditEntryMutation) ResetParameters() {
	m.parameters = nil
}

// SetFullParameters sets the "full_parameters" field.
func (m *AuditEntryMutation) SetFullParameters(s string) {
	m.full_parameters = &s
}

// FullParameters returns the value of the "full_parameters" field in the mutation.
func (m *AuditEntryMutation) FullParameters() (r string, exists bool) {
	v := m.full_parameters
	if v == nil {
		return
	}
	return *v, true
}

// OldFullParameters returns the old "full_parameters" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldFullParameters(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullParameters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullParameters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullParameters: %w", err)
	}
	return oldValue.FullParameters, nil
}

// ClearFullParameters clears the value of the "full_parameters" field.
func (m *AuditEntryMutation) ClearFullParameters() {
	m.full_parameters = nil
	m.clearedFields[auditentry.FieldFullParameters] = struct{}{}
}

// FullParametersCleared returns if the "full_parameters" field was cleared in this mutation.
func (m *AuditEntryMutation) FullParametersCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldFullParameters]
	return ok
}

// ResetFullParameters resets all changes to the "full_parameters" field.
func (m *AuditEntryMutation) ResetFullParameters() {
	m.full_parameters = nil
	delete(m.clearedFields, auditentry.FieldFullParameters)
}

// SetApprovalDecision sets the "approval_decision" field.
func (m *AuditEntryMutation) SetApprovalDecision(ad auditentry.ApprovalDecision) {
	m.approval_decision = &ad
}

// ApprovalDecision returns the value of the "approval_decision" field in the mutation.
func (m *AuditEntryMutation) ApprovalDecision() (r auditentry.ApprovalDecision, exists bool) {
	v := m.approval_decision
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovalDecision returns the old "approval_decision" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldApprovalDecision(ctx context.Context) (v auditentry.ApprovalDecision, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovalDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovalDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovalDecision: %w", err)
	}
	return oldValue.ApprovalDecision, nil
}

// ResetApprovalDecision resets all changes to the "approval_decision" field.
func (m *AuditEntryMutation) ResetApprovalDecision() {
	m.approval_decision = nil
}

// SetApprovedBy sets the "approved_by" field.
func (m *AuditEntryMutation) SetApprovedBy(s string) {
	m.approved_by = &s
}

// ApprovedBy returns the value of the "approved_by" field in the mutation.
func (m *AuditEntryMutation) ApprovedBy() (r string, exists bool) {
	v := m.approved_by
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedBy returns the old "approved_by" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldApprovedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedBy: %w", err)
	}
	return oldValue.ApprovedBy, nil
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (m *AuditEntryMutation) ClearApprovedBy() {
	m.approved_by = nil
	m.clearedFields[auditentry.FieldApprovedBy] = struct{}{}
}

// ApprovedByCleared returns if the "approved_by" field was cleared in this mutation.
func (m *AuditEntryMutation) ApprovedByCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldApprovedBy]
	return ok
}

// ResetApprovedBy resets all changes to the "approved_by" field.
func (m *AuditEntryMutation) ResetApprovedBy() {
	m.approved_by = nil
	delete(m.clearedFields, auditentry.FieldApprovedBy)
}

// SetDurationMs sets the "duration_ms" field.
func (m *AuditEntryMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *AuditEntryMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldDurationMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *AuditEntryMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *AuditEntryMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *AuditEntryMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetSuccess sets the "success" field.
func (m *AuditEntryMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *AuditEntryMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *AuditEntryMutation) ResetSuccess() {
	m.success = nil
}

// SetResult sets the "result" field.
func (m *AuditEntryMutation) SetResult(s string) {
	m.result = &s
}

// Result returns the value of the "result" field in the mutation.
func (m *AuditEntryMutation) Result() (r string, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldResult(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *AuditEntryMutation) ClearResult() {
	m.result = nil
	m.clearedFields[auditentry.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *AuditEntryMutation) ResultCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *AuditEntryMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, auditentry.FieldResult)
}

// SetErrorMessage sets the "error_message" field.
func (m *AuditEntryMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AuditEntryMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AuditEntryMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[auditentry.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AuditEntryMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AuditEntryMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, auditentry.FieldErrorMessage)
}

// SetYoloMode sets the "yolo_mode" field.
func (m *AuditEntryMutation) SetYoloMode(b bool) {
	m.yolo_mode = &b
}

// YoloMode returns the value of the "yolo_mode" field in the mutation.
func (m *AuditEntryMutation) YoloMode() (r bool, exists bool) {
	v := m.yolo_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldYoloMode returns the old "yolo_mode" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldYoloMode(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYoloMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYoloMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYoloMode: %w", err)
	}
	return oldValue.YoloMode, nil
}

// ResetYoloMode resets all changes to the "yolo_mode" field.
func (m *AuditEntryMutation) ResetYoloMode() {
	m.yolo_mode = nil
}

// Where appends a list predicates to the AuditEntryMutation builder.
func (m *AuditEntryMutation) Where(ps ...predicate.AuditEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditEntry).
func (m *AuditEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditEntryMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.session_id != nil {
		fields = append(fields, auditentry.FieldSessionID)
	}
	if m.timestamp != nil {
		fields = append(fields, auditentry.FieldTimestamp)
	}
	if m.tool_name != nil {
		fields = append(fields, auditentry.FieldToolName)
	}
	if m.risk_level != nil {
		fields = append(fields, auditentry.FieldRiskLevel)
	}
	if m.parameters != nil {
		fields = append(fields, auditentry.FieldParameters)
	}
	if m.full_parameters != nil {
		fields = append(fields, auditentry.FieldFullParameters)
	}
	if m.approval_decision != nil {
		fields = append(fields, auditentry.FieldApprovalDecision)
	}
	if m.approved_by != nil {
		fields = append(fields, auditentry.FieldApprovedBy)
	}
	if m.duration_ms != nil {
		fields = append(fields, auditentry.FieldDurationMs)
	}
	if m.success != nil {
		fields = append(fields, auditentry.FieldSuccess)
	}
	if m.result != nil {
		fields = append(fields, auditentry.FieldResult)
	}
	if m.error_message != nil {
		fields = append(fields, auditentry.FieldErrorMessage)
	}
	if m.yolo_mode != nil {
		fields = append(fields, auditentry.FieldYoloMode)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditentry.FieldSessionID:
		return m.SessionID()
	case auditentry.FieldTimestamp:
		return m.Timestamp()
	case auditentry.FieldToolName:
		return m.ToolName()
	case auditentry.FieldRiskLevel:
		return m.RiskLevel()
	case auditentry.FieldParameters:
		return m.Parameters()
	case auditentry.FieldFullParameters:
		return m.FullParameters()
	case auditentry.FieldApprovalDecision:
		return m.ApprovalDecision()
	case auditentry.FieldApprovedBy:
		return m.ApprovedBy()
	case auditentry.FieldDurationMs:
		return m.DurationMs()
	case auditentry.FieldSuccess:
		return m.Success()
	case auditentry.FieldResult:
		return m.Result()
	case auditentry.FieldErrorMessage:
		return m.ErrorMessage()
	case auditentry.FieldYoloMode:
		return m.YoloMode()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditentry.FieldSessionID:
		return m.OldSessionID(ctx)
	case auditentry.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case auditentry.FieldToolName:
		return m.OldToolName(ctx)
	case auditentry.FieldRiskLevel:
		return m.OldRiskLevel(ctx)
	case auditentry.FieldParameters:
		return m.OldParameters(ctx)
	case auditentry.FieldFullParameters:
		return m.OldFullParameters(ctx)
	case auditentry.FieldApprovalDecision:
		return m.OldApprovalDecision(ctx)
	case auditentry.FieldApprovedBy:
		return m.OldApprovedBy(ctx)
	case auditentry.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case auditentry.FieldSuccess:
		return m.OldSuccess(ctx)
	case auditentry.FieldResult:
		return m.OldResult(ctx)
	case auditentry.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case auditentry.FieldYoloMode:
		return m.OldYoloMode(ctx)
	}
	return nil, fmt.Errorf("unknown AuditEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditentry.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case auditentry.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case auditentry.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case auditentry.FieldRiskLevel:
		v, ok := value.(auditentry.RiskLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskLevel(v)
		return nil
	case auditentry.FieldParameters:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParameters(v)
		return nil
	case auditentry.FieldFullParameters:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullParameters(v)
		return nil
	case auditentry.FieldApprovalDecision:
		v, ok := value.(auditentry.ApprovalDecision)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovalDecision(v)
		return nil
	case auditentry.FieldApprovedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedBy(v)
		return nil
	case auditentry.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case auditentry.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case auditentry.FieldResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case auditentry.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case auditentry.FieldYoloMode:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYoloMode(v)
		return nil
	}
	return fmt.Errorf("unknown AuditEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditEntryMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, auditentry.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case auditentry.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case auditentry.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown AuditEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditentry.FieldFullParameters) {
		fields = append(fields, auditentry.FieldFullParameters)
	}
	if m.FieldCleared(auditentry.FieldApprovedBy) {
		fields = append(fields, auditentry.FieldApprovedBy)
	}
	if m.FieldCleared(auditentry.FieldResult) {
		fields = append(fields, auditentry.FieldResult)
	}
	if m.FieldCleared(auditentry.FieldErrorMessage) {
		fields = append(fields, auditentry.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditEntryMutation) ClearField(name string) error {
	switch name {
	case auditentry.FieldFullParameters:
		m.ClearFullParameters()
		return nil
	case auditentry.FieldApprovedBy:
		m.ClearApprovedBy()
		return nil
	case auditentry.FieldResult:
		m.ClearResult()
		return nil
	case auditentry.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditEntryMutation) ResetField(name string) error {
	switch name {
	case auditentry.FieldSessionID:
		m.ResetSessionID()
		return nil
	case auditentry.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case auditentry.FieldToolName:
		m.ResetToolName()
		return nil
	case auditentry.FieldRiskLevel:
		m.ResetRiskLevel()
		return nil
	case auditentry.FieldParameters:
		m.ResetParameters()
		return nil
	case auditentry.FieldFullParameters:
		m.ResetFullParameters()
		return nil
	case auditentry.FieldApprovalDecision:
		m.ResetApprovalDecision()
		return nil
	case auditentry.FieldApprovedBy:
		m.ResetApprovedBy()
		return nil
	case auditentry.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case auditentry.FieldSuccess:
		m.ResetSuccess()
		return nil
	case auditentry.FieldResult:
		m.ResetResult()
		return nil
	case auditentry.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case auditentry.FieldYoloMode:
		m.ResetYoloMode()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditEntry edge %s", name)
}

// ExternalServerMutation represents an operation that mutates the ExternalServer nodes in the graph.
type ExternalServerMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	name                  *string
	description           *string
	transport             *externalserver.Transport
	command               *string
	args                  *[]string
	appendargs            []string
	env                   *map[string]string
	url                   *string
	headers               *map[string]string
	trust                 *externalserver.Trust
	sandbox_enabled       *bool
	category              *string
	enabled               *bool
	created_at            *time.Time
	last_connected        *time.Time
	last_error            *string
	clearedFields         map[string]struct{}
	tool_approvals        map[int]struct{}
	removedtool_approvals map[int]struct{}
	clearedtool_approvals bool
	done                  bool
	oldValue              func(context.Context) (*ExternalServer, error)
	predicates            []predicate.ExternalServer
}

var _ ent.Mutation = (*ExternalServerMutation)(nil)

// externalserverOption allows management of the mutation configuration using functional options.
type externalserverOption func(*ExternalServerMutation)

// newExternalServerMutation creates new mutation for the ExternalServer entity.
func newExternalServerMutation(c config, op Op, opts ...externalserverOption) *ExternalServerMutation {
	m := &ExternalServerMutation{
		config:        c,
		op:            op,
		typ:           TypeExternalServer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExternalServerID sets the ID field of the mutation.
func withExternalServerID(id string) externalserverOption {
	return func(m *ExternalServerMutation) {
		var (
			err   error
			once  sync.Once
			value *ExternalServer
		)
		m.oldValue = func(ctx context.Context) (*ExternalServer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExternalServer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExternalServer sets the old ExternalServer of the mutation.
func withExternalServer(node *ExternalServer) externalserverOption {
	return func(m *ExternalServerMutation) {
		m.oldValue = func(context.Context) (*ExternalServer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExternalServerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExternalServerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExternalServer entities.
func (m *ExternalServerMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExternalServerMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExternalServerMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExternalServer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ExternalServerMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ExternalServerMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ExternalServer entity.
// If the ExternalServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalServerMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ExternalServerMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ExternalServerMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ExternalServerMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ExternalServer entity.
// If the ExternalServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalServerMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ExternalServerMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[externalserver.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ExternalServerMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[externalserver.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ExternalServerMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, externalserver.FieldDescription)
}

// SetTransport sets the "transport" field.
func (m *ExternalServerMutation) SetTransport(e externalserver.Transport) {
	m.transport = &e
}

// Transport returns the value of the "transport" field in the mutation.
func (m *ExternalServerMutation) Transport() (r externalserver.Transport, exists bool) {
	v := m.transport
	if v == nil {
		return
	}
	return *v, true
}

// OldTransport returns the old "transport" field's value of the ExternalServer entity.
// If the ExternalServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalServerMutation) OldTransport(ctx context.Context) (v externalserver.Transport, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransport: %w", err)
	}
	return oldValue.Transport, nil
}

// ResetTransport resets all changes to the "transport" field.
func (m *ExternalServerMutation) ResetTransport() {
	m.transport = nil
}

// SetCommand sets the "command" field.
func (m *ExternalServerMutation) SetCommand(s string) {
	m.command = &s
}

// Command returns the value of the "command" field in the mutation.
func (m *ExternalServerMutation) Command() (r string, exists bool) {
	v := m.command
	if v == nil {
		return
	}
	return *v, true
}

// OldCommand returns the old "command" field's value of the ExternalServer entity.
// If the ExternalServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalServerMutation) OldCommand(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommand: %w", err)
	}
	return oldValue.Command, nil
}

// ClearCommand clears the value of the "command" field.
func (m *ExternalServerMutation) ClearCommand() {
	m.command = nil
	m.clearedFields[externalserver.FieldCommand] = struct{}{}
}

// CommandCleared returns if the "command" field was cleared in this mutation.
func (m *ExternalServerMutation) CommandCleared() bool {
	_, ok := m.clearedFields[externalserver.FieldCommand]
	return ok
}

// ResetCommand resets all changes to the "command" field.
func (m *ExternalServerMutation) ResetCommand() {
	m.command = nil
	delete(m.clearedFields, externalserver.FieldCommand)
}

// SetArgs sets the "args" field.
func (m *ExternalServerMutation) SetArgs(s []string) {
	m.args = &s
	m.appendargs = nil
}

// Args returns the value of the "args" field in the mutation.
func (m *ExternalServerMutation) Args() (r []string, exists bool) {
	v := m.args
	if v == nil {
		return
	}
	return *v, true
}

// OldArgs returns the old "args" field's value of the ExternalServer entity.
// If the ExternalServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalServerMutation) OldArgs(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArgs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArgs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArgs: %w", err)
	}
	return oldValue.Args, nil
}

// AppendArgs adds s to the "args" field.
func (m *ExternalServerMutation) AppendArgs(s []string) {
	m.appendargs = append(m.appendargs, s...)
}

// AppendedArgs returns the list of values that were appended to the "args" field in this mutation.
func (m *ExternalServerMutation) AppendedArgs() ([]string, bool) {
	if len(m.appendargs) == 0 {
		return nil, false
	}
	return m.appendargs, true
}

// ClearArgs clears the value of the "args" field.
func (m *ExternalServerMutation) ClearArgs() {
	m.args = nil
	m.appendargs = nil
	m.clearedFields[externalserver.FieldArgs] = struct{}{}
}

// ArgsCleared returns if the "args" field was cleared in this mutation.
func (m *ExternalServerMutation) ArgsCleared() bool {
	_, ok := m.clearedFields[externalserver.FieldArgs]
	return ok
}

// ResetArgs resets all changes to the "args" field.
func (m *ExternalServerMutation) ResetArgs() {
	m.args = nil
	m.appendargs = nil
	delete(m.clearedFields, externalserver.FieldArgs)
}

// SetEnv sets the "env" field.
func (m *ExternalServerMutation) SetEnv(value map[string]string) {
	m.env = &value
}

// Env returns the value of the "env" field in the mutation.
func (m *ExternalServerMutation) Env() (r map[string]string, exists bool) {
	v := m.env
	if v == nil {
		return
	}
	return *v, true
}

// OldEnv returns the old "env" field's value of the ExternalServer entity.
// If the ExternalServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalServerMutation) OldEnv(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnv is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnv requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnv: %w", err)
	}
	return oldValue.Env, nil
}

// ClearEnv clears the value of the "env" field.
func (m *ExternalServerMutation) ClearEnv() {
	m.env = nil
	m.clearedFields[externalserver.FieldEnv] = struct{}{}
}

// EnvCleared returns if the "env" field was cleared in this mutation.
func (m *ExternalServerMutation) EnvCleared() bool {
	_, ok := m.clearedFields[externalserver.FieldEnv]
	return ok
}

// ResetEnv resets all changes to the "env" field.
func (m *ExternalServerMutation) ResetEnv() {
	m.env = nil
	delete(m.clearedFields, externalserver.FieldEnv)
}

// SetURL sets the "url" field.
func (m *ExternalServerMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *ExternalServerMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the ExternalServer entity.
// If the ExternalServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalServerMutation) OldURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ClearURL clears the value of the "url" field.
func (m *ExternalServerMutation) ClearURL() {
	m.url = nil
	m.clearedFields[externalserver.FieldURL] = struct{}{}
}

// URLCleared returns if the "url" field was cleared in this mutation.
func (m *ExternalServerMutation) URLCleared() bool {
	_, ok := m.clearedFields[externalserver.FieldURL]
	return ok
}

// ResetURL resets all changes to the "url" field.
func (m *ExternalServerMutation) ResetURL() {
	m.url = nil
	delete(m.clearedFields, externalserver.FieldURL)
}

// SetHeaders sets the "headers" field.
func (m *ExternalServerMutation) SetHeaders(value map[string]string) {
	m.headers = &value
}

// Headers returns the value of the "headers" field in the mutation.
func (m *ExternalServerMutation) Headers() (r map[string]string, exists bool) {
	v := m.headers
	if v == nil {
		return
	}
	return *v, true
}

// OldHeaders returns the old "headers" field's value of the ExternalServer entity.
// If the ExternalServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalServerMutation) OldHeaders(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeaders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeaders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeaders: %w", err)
	}
	return oldValue.Headers, nil
}

// ClearHeaders clears the value of the "headers" field.
func (m *ExternalServerMutation) ClearHeaders() {
	m.headers = nil
	m.clearedFields[externalserver.FieldHeaders] = struct{}{}
}

// HeadersCleared returns if the "headers" field was cleared in this mutation.
func (m *ExternalServerMutation) HeadersCleared() bool {
	_, ok := m.clearedFields[externalserver.FieldHeaders]
	return ok
}

// ResetHeaders resets all changes to the "headers" field.
func (m *ExternalServerMutation) ResetHeaders() {
	m.headers = nil
	delete(m.clearedFields, externalserver.FieldHeaders)
}

// SetTrust sets the "trust" field.
func (m *ExternalServerMutation) SetTrust(e externalserver.Trust) {
	m.trust = &e
}

// Trust returns the value of the "trust" field in the mutation.
func (m *ExternalServerMutation) Trust() (r externalserver.Trust, exists bool) {
	v := m.trust
	if v == nil {
		return
	}
	return *v, true
}

// OldTrust returns the old "trust" field's value of the ExternalServer entity.
// If the ExternalServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalServerMutation) OldTrust(ctx context.Context) (v externalserver.Trust, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrust is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrust requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrust: %w", err)
	}
	return oldValue.Trust, nil
}

// ResetTrust resets all changes to the "trust" field.
func (m *ExternalServerMutation) ResetTrust() {
	m.trust = nil
}

// SetSandboxEnabled sets the "sandbox_enabled" field.
func (m *ExternalServerMutation) SetSandboxEnabled(b bool) {
	m.sandbox_enabled = &b
}

// SandboxEnabled returns the value of the "sandbox_enabled" field in the mutation.
func (m *ExternalServerMutation) SandboxEnabled() (r bool, exists bool) {
	v := m.sandbox_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldSandboxEnabled returns the old "sandbox_enabled" field's value of the ExternalServer entity.
// If the ExternalServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalServerMutation) OldSandboxEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSandboxEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSandboxEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSandboxEnabled: %w", err)
	}
	return oldValue.SandboxEnabled, nil
}

// ResetSandboxEnabled resets all changes to the "sandbox_enabled" field.
func (m *ExternalServerMutation) ResetSandboxEnabled() {
	m.sandbox_enabled = nil
}

// SetCategory sets the "category" field.
func (m *ExternalServerMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *ExternalServerMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the ExternalServer entity.
// If the ExternalServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalServerMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *ExternalServerMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[externalserver.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *ExternalServerMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[externalserver.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *ExternalServerMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, externalserver.FieldCategory)
}

// SetEnabled sets the "enabled" field.
func (m *ExternalServerMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *ExternalServerMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the ExternalServer entity.
// If the ExternalServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalServerMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *ExternalServerMutation) ResetEnabled() {
	m.enabled = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExternalServerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExternalServerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExternalServer entity.
// If the ExternalServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalServerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExternalServerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastConnected sets the "last_connected" field.
func (m *ExternalServerMutation) SetLastConnected(t time.Time) {
	m.last_connected = &t
}

// LastConnected returns the value of the "last_connected" field in the mutation.
func (m *ExternalServerMutation) LastConnected() (r time.Time, exists bool) {
	v := m.last_connected
	if v == nil {
		return
	}
	return *v, true
}

// OldLastConnected returns the old "last_connected" field's value of the ExternalServer entity.
// If the ExternalServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalServerMutation) OldLastConnected(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastConnected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastConnected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastConnected: %w", err)
	}
	return oldValue.LastConnected, nil
}

// ClearLastConnected clears the value of the "last_connected" field.
func (m *ExternalServerMutation) ClearLastConnected() {
	m.last_connected = nil
	m.clearedFields[externalserver.FieldLastConnected] = struct{}{}
}

// LastConnectedCleared returns if the "last_connected" field was cleared in this mutation.
func (m *ExternalServerMutation) LastConnectedCleared() bool {
	_, ok := m.clearedFields[externalserver.FieldLastConnected]
	return ok
}

// ResetLastConnected resets all changes to the "last_connected" field.
func (m *ExternalServerMutation) ResetLastConnected() {
	m.last_connected = nil
	delete(m.clearedFields, externalserver.FieldLastConnected)
}

// SetLastError sets the "last_error" field.
func (m *ExternalServerMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *ExternalServerMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the ExternalServer entity.
// If the ExternalServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalServerMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *ExternalServerMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[externalserver.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *ExternalServerMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[externalserver.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *ExternalServerMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, externalserver.FieldLastError)
}

// AddToolApprovalIDs adds the "tool_approvals" edge to the ToolApproval entity by ids.
func (m *ExternalServerMutation) AddToolApprovalIDs(ids ...int) {
	if m.tool_approvals == nil {
		m.tool_approvals = make(map[int]struct{})
	}
	for i := range ids {
		m.tool_approvals[ids[i]] = struct{}{}
	}
}

// ClearToolApprovals clears the "tool_approvals" edge to the ToolApproval entity.
func (m *ExternalServerMutation) ClearToolApprovals() {
	m.clearedtool_approvals = true
}

// ToolApprovalsCleared reports if the "tool_approvals" edge to the ToolApproval entity was cleared.
func (m *ExternalServerMutation) ToolApprovalsCleared() bool {
	return m.clearedtool_approvals
}

// RemoveToolApprovalIDs removes the "tool_approvals" edge to the ToolApproval entity by IDs.
func (m *ExternalServerMutation) RemoveToolApprovalIDs(ids ...int) {
	if m.removedtool_approvals == nil {
		m.removedtool_approvals = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.tool_approvals, ids[i])
		m.removedtool_approvals[ids[i]] = struct{}{}
	}
}

// RemovedToolApprovals returns the removed IDs of the "tool_approvals" edge to the ToolApproval entity.
func (m *ExternalServerMutation) RemovedToolApprovalsIDs() (ids []int) {
	for id := range m.removedtool_approvals {
		ids = append(ids, id)
	}
	return
}

// ToolApprovalsIDs returns the "tool_approvals" edge IDs in the mutation.
func (m *ExternalServerMutation) ToolApprovalsIDs() (ids []int) {
	for id := range m.tool_approvals {
		ids = append(ids, id)
	}
	return
}

// ResetToolApprovals resets all changes to the "tool_approvals" edge.
func (m *ExternalServerMutation) ResetToolApprovals() {
	m.tool_approvals = nil
	m.clearedtool_approvals = false
	m.removedtool_approvals = nil
}

// Where appends a list predicates to the ExternalServerMutation builder.
func (m *ExternalServerMutation) Where(ps ...predicate.ExternalServer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExternalServerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExternalServerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExternalServer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExternalServerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExternalServerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExternalServer).
func (m *ExternalServerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExternalServerMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.name != nil {
		fields = append(fields, externalserver.FieldName)
	}
	if m.description != nil {
		fields = append(fields, externalserver.FieldDescription)
	}
	if m.transport != nil {
		fields = append(fields, externalserver.FieldTransport)
	}
	if m.command != nil {
		fields = append(fields, externalserver.FieldCommand)
	}
	if m.args != nil {
		fields = append(fields, externalserver.FieldArgs)
	}
	if m.env != nil {
		fields = append(fields, externalserver.FieldEnv)
	}
	if m.url != nil {
		fields = append(fields, externalserver.FieldURL)
	}
	if m.headers != nil {
		fields = append(fields, externalserver.FieldHeaders)
	}
	if m.trust != nil {
		fields = append(fields, externalserver.FieldTrust)
	}
	if m.sandbox_enabled != nil {
		fields = append(fields, externalserver.FieldSandboxEnabled)
	}
	if m.category != nil {
		fields = append(fields, externalserver.FieldCategory)
	}
	if m.enabled != nil {
		fields = append(fields, externalserver.FieldEnabled)
	}
	if m.created_at != nil {
		fields = append(fields, externalserver.FieldCreatedAt)
	}
	if m.last_connected != nil {
		fields = append(fields, externalserver.FieldLastConnected)
	}
	if m.last_error != nil {
		fields = append(fields, externalserver.FieldLastError)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExternalServerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case externalserver.FieldName:
		return m.Name()
	case externalserver.FieldDescription:
		return m.Description()
	case externalserver.FieldTransport:
		return m.Transport()
	case externalserver.FieldCommand:
		return m.Command()
	case externalserver.FieldArgs:
		return m.Args()
	case externalserver.FieldEnv:
		return m.Env()
	case externalserver.FieldURL:
		return m.URL()
	case externalserver.FieldHeaders:
		return m.Headers()
	case externalserver.FieldTrust:
		return m.Trust()
	case externalserver.FieldSandboxEnabled:
		return m.SandboxEnabled()
	case externalserver.FieldCategory:
		return m.Category()
	case externalserver.FieldEnabled:
		return m.Enabled()
	case externalserver.FieldCreatedAt:
		return m.CreatedAt()
	case externalserver.FieldLastConnected:
		return m.LastConnected()
	case externalserver.FieldLastError:
		return m.LastError()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExternalServerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case externalserver.FieldName:
		return m.OldName(ctx)
	case externalserver.FieldDescription:
		return m.OldDescription(ctx)
	case externalserver.FieldTransport:
		return m.OldTransport(ctx)
	case externalserver.FieldCommand:
		return m.OldCommand(ctx)
	case externalserver.FieldArgs:
		return m.OldArgs(ctx)
	case externalserver.FieldEnv:
		return m.OldEnv(ctx)
	case externalserver.FieldURL:
		return m.OldURL(ctx)
	case externalserver.FieldHeaders:
		return m.OldHeaders(ctx)
	case externalserver.FieldTrust:
		return m.OldTrust(ctx)
	case externalserver.FieldSandboxEnabled:
		return m.OldSandboxEnabled(ctx)
	case externalserver.FieldCategory:
		return m.OldCategory(ctx)
	case externalserver.FieldEnabled:
		return m.OldEnabled(ctx)
	case externalserver.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case externalserver.FieldLastConnected:
		return m.OldLastConnected(ctx)
	case externalserver.FieldLastError:
		return m.OldLastError(ctx)
	}
	return nil, fmt.Errorf("unknown ExternalServer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExternalServerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case externalserver.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case externalserver.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case externalserver.FieldTransport:
		v, ok := value.(externalserver.Transport)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransport(v)
		return nil
	case externalserver.FieldCommand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommand(v)
		return nil
	case externalserver.FieldArgs:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArgs(v)
		return nil
	case externalserver.FieldEnv:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnv(v)
		return nil
	case externalserver.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case externalserver.FieldHeaders:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeaders(v)
		return nil
	case externalserver.FieldTrust:
		v, ok := value.(externalserver.Trust)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrust(v)
		return nil
	case externalserver.FieldSandboxEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSandboxEnabled(v)
		return nil
	case externalserver.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case externalserver.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case externalserver.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case externalserver.FieldLastConnected:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastConnected(v)
		return nil
	case externalserver.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	}
	return fmt.Errorf("unknown ExternalServer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExternalServerMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExternalServerMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExternalServerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ExternalServer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExternalServerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(externalserver.FieldDescription) {
		fields = append(fields, externalserver.FieldDescription)
	}
	if m.FieldCleared(externalserver.FieldCommand) {
		fields = append(fields, externalserver.FieldCommand)
	}
	if m.FieldCleared(externalserver.FieldArgs) {
		fields = append(fields, externalserver.FieldArgs)
	}
	if m.FieldCleared(externalserver.FieldEnv) {
		fields = append(fields, externalserver.FieldEnv)
	}
	if m.FieldCleared(externalserver.FieldURL) {
		fields = append(fields, externalserver.FieldURL)
	}
	if m.FieldCleared(externalserver.FieldHeaders) {
		fields = append(fields, externalserver.FieldHeaders)
	}
	if m.FieldCleared(externalserver.FieldCategory) {
		fields = append(fields, externalserver.FieldCategory)
	}
	if m.FieldCleared(externalserver.FieldLastConnected) {
		fields = append(fields, externalserver.FieldLastConnected)
	}
	if m.FieldCleared(externalserver.FieldLastError) {
		fields = append(fields, externalserver.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExternalServerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExternalServerMutation) ClearField(name string) error {
	switch name {
	case externalserver.FieldDescription:
		m.ClearDescription()
		return nil
	case externalserver.FieldCommand:
		m.ClearCommand()
		return nil
	case externalserver.FieldArgs:
		m.ClearArgs()
		return nil
	case externalserver.FieldEnv:
		m.ClearEnv()
		return nil
	case externalserver.FieldURL:
		m.ClearURL()
		return nil
	case externalserver.FieldHeaders:
		m.ClearHeaders()
		return nil
	case externalserver.FieldCategory:
		m.ClearCategory()
		return nil
	case externalserver.FieldLastConnected:
		m.ClearLastConnected()
		return nil
	case externalserver.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown ExternalServer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExternalServerMutation) ResetField(name string) error {
	switch name {
	case externalserver.FieldName:
		m.ResetName()
		return nil
	case externalserver.FieldDescription:
		m.ResetDescription()
		return nil
	case externalserver.FieldTransport:
		m.ResetTransport()
		return nil
	case externalserver.FieldCommand:
		m.ResetCommand()
		return nil
	case externalserver.FieldArgs:
		m.ResetArgs()
		return nil
	case externalserver.FieldEnv:
		m.ResetEnv()
		return nil
	case externalserver.FieldURL:
		m.ResetURL()
		return nil
	case externalserver.FieldHeaders:
		m.ResetHeaders()
		return nil
	case externalserver.FieldTrust:
		m.ResetTrust()
		return nil
	case externalserver.FieldSandboxEnabled:
		m.ResetSandboxEnabled()
		return nil
	case externalserver.FieldCategory:
		m.ResetCategory()
		return nil
	case externalserver.FieldEnabled:
		m.ResetEnabled()
		return nil
	case externalserver.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case externalserver.FieldLastConnected:
		m.ResetLastConnected()
		return nil
	case externalserver.FieldLastError:
		m.ResetLastError()
		return nil
	}
	return fmt.Errorf("unknown ExternalServer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExternalServerMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tool_approvals != nil {
		edges = append(edges, externalserver.EdgeToolApprovals)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExternalServerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case externalserver.EdgeToolApprovals:
		ids := make([]ent.Value, 0, len(m.tool_approvals))
		for id := range m.tool_approvals {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExternalServerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedtool_approvals != nil {
		edges = append(edges, externalserver.EdgeToolApprovals)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExternalServerMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case externalserver.EdgeToolApprovals:
		ids := make([]ent.Value, 0, len(m.removedtool_approvals))
		for id := range m.removedtool_approvals {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExternalServerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtool_approvals {
		edges = append(edges, externalserver.EdgeToolApprovals)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExternalServerMutation) EdgeCleared(name string) bool {
	switch name {
	case externalserver.EdgeToolApprovals:
		return m.clearedtool_approvals
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExternalServerMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ExternalServer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExternalServerMutation) ResetEdge(name string) error {
	switch name {
	case externalserver.EdgeToolApprovals:
		m.ResetToolApprovals()
		return nil
	}
	return fmt.Errorf("unknown ExternalServer edge %s", name)
}

// ProjectAutonomyMutation represents an operation that mutates the ProjectAutonomy nodes in the graph.
type ProjectAutonomyMutation struct {
	config
	op              Op
	typ             string
	id              *int
	project_path    *string
	level           *projectautonomy.Level
	allowlist       *[]string
	appendallowlist []string
	blocklist       *[]string
	appendblocklist []string
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ProjectAutonomy, error)
	predicates      []predicate.ProjectAutonomy
}

var _ ent.Mutation = (*ProjectAutonomyMutation)(nil)

// projectautonomyOption allows management of the mutation configuration using functional options.
type projectautonomyOption func(*ProjectAutonomyMutation)

// newProjectAutonomyMutation creates new mutation for the ProjectAutonomy entity.
func newProjectAutonomyMutation(c config, op Op, opts ...projectautonomyOption) *ProjectAutonomyMutation {
	m := &ProjectAutonomyMutation{
		config:        c,
		op:            op,
		typ:           TypeProjectAutonomy,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectAutonomyID sets the ID field of the mutation.
func withProjectAutonomyID(id int) projectautonomyOption {
	return func(m *ProjectAutonomyMutation) {
		var (
			err   error
			once  sync.Once
			value *ProjectAutonomy
		)
		m.oldValue = func(ctx context.Context) (*ProjectAutonomy, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProjectAutonomy.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProjectAutonomy sets the old ProjectAutonomy of the mutation.
func withProjectAutonomy(node *ProjectAutonomy) projectautonomyOption {
	return func(m *ProjectAutonomyMutation) {
		m.oldValue = func(context.Context) (*ProjectAutonomy, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectAutonomyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectAutonomyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectAutonomyMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectAutonomyMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProjectAutonomy.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectPath sets the "project_path" field.
func (m *ProjectAutonomyMutation) SetProjectPath(s string) {
	m.project_path = &s
}

// ProjectPath returns the value of the "project_path" field in the mutation.
func (m *ProjectAutonomyMutation) ProjectPath() (r string, exists bool) {
	v := m.project_path
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectPath returns the old "project_path" field's value of the ProjectAutonomy entity.
// If the ProjectAutonomy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectAutonomyMutation) OldProjectPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectPath: %w", err)
	}
	return oldValue.ProjectPath, nil
}

// ResetProjectPath resets all changes to the "project_path" field.
func (m *ProjectAutonomyMutation) ResetProjectPath() {
	m.project_path = nil
}

// SetLevel sets the "level" field.
func (m *ProjectAutonomyMutation) SetLevel(pr projectautonomy.Level) {
	m.level = &pr
}

// Level returns the value of the "level" field in the mutation.
func (m *ProjectAutonomyMutation) Level() (r projectautonomy.Level, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the ProjectAutonomy entity.
// If the ProjectAutonomy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectAutonomyMutation) OldLevel(ctx context.Context) (v projectautonomy.Level, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *ProjectAutonomyMutation) ResetLevel() {
	m.level = nil
}

// SetAllowlist sets the "allowlist" field.
func (m *ProjectAutonomyMutation) SetAllowlist(s []string) {
	m.allowlist = &s
	m.appendallowlist = nil
}

// Allowlist returns the value of the "allowlist" field in the mutation.
func (m *ProjectAutonomyMutation) Allowlist() (r []string, exists bool) {
	v := m.allowlist
	if v == nil {
		return
	}
	return *v, true
}

// OldAllowlist returns the old "allowlist" field's value of the ProjectAutonomy entity.
// If the ProjectAutonomy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectAutonomyMutation) OldAllowlist(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllowlist is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllowlist requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllowlist: %w", err)
	}
	return oldValue.Allowlist, nil
}

// AppendAllowlist adds s to the "allowlist" field.
func (m *ProjectAutonomyMutation) AppendAllowlist(s []string) {
	m.appendallowlist = append(m.appendallowlist, s...)
}

// AppendedAllowlist returns the list of values that were appended to the "allowlist" field in this mutation.
func (m *ProjectAutonomyMutation) AppendedAllowlist() ([]string, bool) {
	if len(m.appendallowlist) == 0 {
		return nil, false
	}
	return m.appendallowlist, true
}

// ClearAllowlist clears the value of the "allowlist" field.
func (m *ProjectAutonomyMutation) ClearAllowlist() {
	m.allowlist = nil
	m.appendallowlist = nil
	m.clearedFields[projectautonomy.FieldAllowlist] = struct{}{}
}

// AllowlistCleared returns if the "allowlist" field was cleared in this mutation.
func (m *ProjectAutonomyMutation) AllowlistCleared() bool {
	_, ok := m.clearedFields[projectautonomy.FieldAllowlist]
	return ok
}

// ResetAllowlist resets all changes to the "allowlist" field.
func (m *ProjectAutonomyMutation) ResetAllowlist() {
	m.allowlist = nil
	m.appendallowlist = nil
	delete(m.clearedFields, projectautonomy.FieldAllowlist)
}

// SetBlocklist sets the "blocklist" field.
func (m *ProjectAutonomyMutation) SetBlocklist(s []string) {
	m.blocklist = &s
	m.appendblocklist = nil
}

// Blocklist returns the value of the "blocklist" field in the mutation.
func (m *ProjectAutonomyMutation) Blocklist() (r []string, exists bool) {
	v := m.blocklist
	if v == nil {
		return
	}
	return *v, true
}

// OldBlocklist returns the old "blocklist" field's value of the ProjectAutonomy entity.
// If the ProjectAutonomy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectAutonomyMutation) OldBlocklist(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlocklist is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlocklist requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlocklist: %w", err)
	}
	return oldValue.Blocklist, nil
}

// AppendBlocklist adds s to the "blocklist" field.
func (m *ProjectAutonomyMutation) AppendBlocklist(s []string) {
	m.appendblocklist = append(m.appendblocklist, s...)
}

// AppendedBlocklist returns the list of values that were appended to the "blocklist" field in this mutation.
func (m *ProjectAutonomyMutation) AppendedBlocklist() ([]string, bool) {
	if len(m.appendblocklist) == 0 {
		return nil, false
	}
	return m.appendblocklist, true
}

// ClearBlocklist clears the value of the "blocklist" field.
func (m *ProjectAutonomyMutation) ClearBlocklist() {
	m.blocklist = nil
	m.appendblocklist = nil
	m.clearedFields[projectautonomy.FieldBlocklist] = struct{}{}
}

// BlocklistCleared returns if the "blocklist" field was cleared in this mutation.
func (m *ProjectAutonomyMutation) BlocklistCleared() bool {
	_, ok := m.clearedFields[projectautonomy.FieldBlocklist]
	return ok
}

// ResetBlocklist resets all changes to the "blocklist" field.
func (m *ProjectAutonomyMutation) ResetBlocklist() {
	m.blocklist = nil
	m.appendblocklist = nil
	delete(m.clearedFields, projectautonomy.FieldBlocklist)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectAutonomyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectAutonomyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProjectAutonomy entity.
// If the ProjectAutonomy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectAutonomyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectAutonomyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ProjectAutonomyMutation builder.
func (m *ProjectAutonomyMutation) Where(ps ...predicate.ProjectAutonomy) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectAutonomyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectAutonomyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProjectAutonomy, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectAutonomyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectAutonomyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProjectAutonomy).
func (m *ProjectAutonomyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectAutonomyMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.project_path != nil {
		fields = append(fields, projectautonomy.FieldProjectPath)
	}
	if m.level != nil {
		fields = append(fields, projectautonomy.FieldLevel)
	}
	if m.allowlist != nil {
		fields = append(fields, projectautonomy.FieldAllowlist)
	}
	if m.blocklist != nil {
		fields = append(fields, projectautonomy.FieldBlocklist)
	}
	if m.updated_at != nil {
		fields = append(fields, projectautonomy.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectAutonomyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case projectautonomy.FieldProjectPath:
		return m.ProjectPath()
	case projectautonomy.FieldLevel:
		return m.Level()
	case projectautonomy.FieldAllowlist:
		return m.Allowlist()
	case projectautonomy.FieldBlocklist:
		return m.Blocklist()
	case projectautonomy.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectAutonomyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case projectautonomy.FieldProjectPath:
		return m.OldProjectPath(ctx)
	case projectautonomy.FieldLevel:
		return m.OldLevel(ctx)
	case projectautonomy.FieldAllowlist:
		return m.OldAllowlist(ctx)
	case projectautonomy.FieldBlocklist:
		return m.OldBlocklist(ctx)
	case projectautonomy.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProjectAutonomy field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectAutonomyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case projectautonomy.FieldProjectPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectPath(v)
		return nil
	case projectautonomy.FieldLevel:
		v, ok := value.(projectautonomy.Level)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case projectautonomy.FieldAllowlist:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllowlist(v)
		return nil
	case projectautonomy.FieldBlocklist:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlocklist(v)
		return nil
	case projectautonomy.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProjectAutonomy field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectAutonomyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectAutonomyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectAutonomyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProjectAutonomy numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectAutonomyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(projectautonomy.FieldAllowlist) {
		fields = append(fields, projectautonomy.FieldAllowlist)
	}
	if m.FieldCleared(projectautonomy.FieldBlocklist) {
		fields = append(fields, projectautonomy.FieldBlocklist)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectAutonomyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectAutonomyMutation) ClearField(name string) error {
	switch name {
	case projectautonomy.FieldAllowlist:
		m.ClearAllowlist()
		return nil
	case projectautonomy.FieldBlocklist:
		m.ClearBlocklist()
		return nil
	}
	return fmt.Errorf("unknown ProjectAutonomy nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectAutonomyMutation) ResetField(name string) error {
	switch name {
	case projectautonomy.FieldProjectPath:
		m.ResetProjectPath()
		return nil
	case projectautonomy.FieldLevel:
		m.ResetLevel()
		return nil
	case projectautonomy.FieldAllowlist:
		m.ResetAllowlist()
		return nil
	case projectautonomy.FieldBlocklist:
		m.ResetBlocklist()
		return nil
	case projectautonomy.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProjectAutonomy field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectAutonomyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectAutonomyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectAutonomyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectAutonomyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectAutonomyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectAutonomyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectAutonomyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProjectAutonomy unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectAutonomyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProjectAutonomy edge %s", name)
}

// ToolApprovalMutation represents an operation that mutates the ToolApproval nodes in the graph.
type ToolApprovalMutation struct {
	config
	op            Op
	typ           string
	id            *int
	tool_name     *string
	approved      *bool
	approved_at   *time.Time
	clearedFields map[string]struct{}
	server        *string
	clearedserver bool
	done          bool
	oldValue      func(context.Context) (*ToolApproval, error)
	predicates    []predicate.ToolApproval
}

var _ ent.Mutation = (*ToolApprovalMutation)(nil)

// toolapprovalOption allows management of the mutation configuration using functional options.
type toolapprovalOption func(*ToolApprovalMutation)

// newToolApprovalMutation creates new mutation for the ToolApproval entity.
func newToolApprovalMutation(c config, op Op, opts ...toolapprovalOption) *ToolApprovalMutation {
	m := &ToolApprovalMutation{
		config:        c,
		op:            op,
		typ:           TypeToolApproval,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withToolApprovalID sets the ID field of the mutation.
func withToolApprovalID(id int) toolapprovalOption {
	return func(m *ToolApprovalMutation) {
		var (
			err   error
			once  sync.Once
			value *ToolApproval
		)
		m.oldValue = func(ctx context.Context) (*ToolApproval, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ToolApproval.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withToolApproval sets the old ToolApproval of the mutation.
func withToolApproval(node *ToolApproval) toolapprovalOption {
	return func(m *ToolApprovalMutation) {
		m.oldValue = func(context.Context) (*ToolApproval, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ToolApprovalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ToolApprovalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ToolApprovalMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ToolApprovalMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ToolApproval.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetServerID sets the "server_id" field.
func (m *ToolApprovalMutation) SetServerID(s string) {
	m.server = &s
}

// ServerID returns the value of the "server_id" field in the mutation.
func (m *ToolApprovalMutation) ServerID() (r string, exists bool) {
	v := m.server
	if v == nil {
		return
	}
	return *v, true
}

// OldServerID returns the old "server_id" field's value of the ToolApproval entity.
// If the ToolApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolApprovalMutation) OldServerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServerID: %w", err)
	}
	return oldValue.ServerID, nil
}

// ResetServerID resets all changes to the "server_id" field.
func (m *ToolApprovalMutation) ResetServerID() {
	m.server = nil
}

// SetToolName sets the "tool_name" field.
func (m *ToolApprovalMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *ToolApprovalMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the ToolApproval entity.
// If the ToolApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolApprovalMutation) OldToolName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *ToolApprovalMutation) ResetToolName() {
	m.tool_name = nil
}

// SetApproved sets the "approved" field.
func (m *ToolApprovalMutation) SetApproved(b bool) {
	m.approved = &b
}

// Approved returns the value of the "approved" field in the mutation.
func (m *ToolApprovalMutation) Approved() (r bool, exists bool) {
	v := m.approved
	if v == nil {
		return
	}
	return *v, true
}

// OldApproved returns the old "approved" field's value of the ToolApproval entity.
// If the ToolApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolApprovalMutation) OldApproved(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApproved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApproved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApproved: %w", err)
	}
	return oldValue.Approved, nil
}

// ResetApproved resets all changes to the "approved" field.
func (m *ToolApprovalMutation) ResetApproved() {
	m.approved = nil
}

// SetApprovedAt sets the "approved_at" field.
func (m *ToolApprovalMutation) SetApprovedAt(t time.Time) {
	m.approved_at = &t
}

// ApprovedAt returns the value of the "approved_at" field in the mutation.
func (m *ToolApprovalMutation) ApprovedAt() (r time.Time, exists bool) {
	v := m.approved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedAt returns the old "approved_at" field's value of the ToolApproval entity.
// If the ToolApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolApprovalMutation) OldApprovedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedAt: %w", err)
	}
	return oldValue.ApprovedAt, nil
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (m *ToolApprovalMutation) ClearApprovedAt() {
	m.approved_at = nil
	m.clearedFields[toolapproval.FieldApprovedAt] = struct{}{}
}

// ApprovedAtCleared returns if the "approved_at" field was cleared in this mutation.
func (m *ToolApprovalMutation) ApprovedAtCleared() bool {
	_, ok := m.clearedFields[toolapproval.FieldApprovedAt]
	return ok
}

// ResetApprovedAt resets all changes to the "approved_at" field.
func (m *ToolApprovalMutation) ResetApprovedAt() {
	m.approved_at = nil
	delete(m.clearedFields, toolapproval.FieldApprovedAt)
}

// ClearServer clears the "server" edge to the ExternalServer entity.
func (m *ToolApprovalMutation) ClearServer() {
	m.clearedserver = true
	m.clearedFields[toolapproval.FieldServerID] = struct{}{}
}

// ServerCleared reports if the "server" edge to the ExternalServer entity was cleared.
func (m *ToolApprovalMutation) ServerCleared() bool {
	return m.clearedserver
}

// ServerIDs returns the "server" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ServerID instead. It exists only for internal usage by the builders.
func (m *ToolApprovalMutation) ServerIDs() (ids []string) {
	if id := m.server; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetServer resets all changes to the "server" edge.
func (m *ToolApprovalMutation) ResetServer() {
	m.server = nil
	m.clearedserver = false
}

// Where appends a list predicates to the ToolApprovalMutation builder.
func (m *ToolApprovalMutation) Where(ps ...predicate.ToolApproval) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ToolApprovalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ToolApprovalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ToolApproval, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ToolApprovalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ToolApprovalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ToolApproval).
func (m *ToolApprovalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ToolApprovalMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.server != nil {
		fields = append(fields, toolapproval.FieldServerID)
	}
	if m.tool_name != nil {
		fields = append(fields, toolapproval.FieldToolName)
	}
	if m.approved != nil {
		fields = append(fields, toolapproval.FieldApproved)
	}
	if m.approved_at != nil {
		fields = append(fields, toolapproval.FieldApprovedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ToolApprovalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case toolapproval.FieldServerID:
		return m.ServerID()
	case toolapproval.FieldToolName:
		return m.ToolName()
	case toolapproval.FieldApproved:
		return m.Approved()
	case toolapproval.FieldApprovedAt:
		return m.ApprovedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ToolApprovalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case toolapproval.FieldServerID:
		return m.OldServerID(ctx)
	case toolapproval.FieldToolName:
		return m.OldToolName(ctx)
	case toolapproval.FieldApproved:
		return m.OldApproved(ctx)
	case toolapproval.FieldApprovedAt:
		return m.OldApprovedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ToolApproval field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolApprovalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case toolapproval.FieldServerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServerID(v)
		return nil
	case toolapproval.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case toolapproval.FieldApproved:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApproved(v)
		return nil
	case toolapproval.FieldApprovedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ToolApproval field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ToolApprovalMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ToolApprovalMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolApprovalMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ToolApproval numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ToolApprovalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(toolapproval.FieldApprovedAt) {
		fields = append(fields, toolapproval.FieldApprovedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ToolApprovalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ToolApprovalMutation) ClearField(name string) error {
	switch name {
	case toolapproval.FieldApprovedAt:
		m.ClearApprovedAt()
		return nil
	}
	return fmt.Errorf("unknown ToolApproval nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ToolApprovalMutation) ResetField(name string) error {
	switch name {
	case toolapproval.FieldServerID:
		m.ResetServerID()
		return nil
	case toolapproval.FieldToolName:
		m.ResetToolName()
		return nil
	case toolapproval.FieldApproved:
		m.ResetApproved()
		return nil
	case toolapproval.FieldApprovedAt:
		m.ResetApprovedAt()
		return nil
	}
	return fmt.Errorf("unknown ToolApproval field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ToolApprovalMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.server != nil {
		edges = append(edges, toolapproval.EdgeServer)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ToolApprovalMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case toolapproval.EdgeServer:
		if id := m.server; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ToolApprovalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ToolApprovalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ToolApprovalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedserver {
		edges = append(edges, toolapproval.EdgeServer)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ToolApprovalMutation) EdgeCleared(name string) bool {
	switch name {
	case toolapproval.EdgeServer:
		return m.clearedserver
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ToolApprovalMutation) ClearEdge(name string) error {
	switch name {
	case toolapproval.EdgeServer:
		m.ClearServer()
		return nil
	}
	return fmt.Errorf("unknown ToolApproval unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ToolApprovalMutation) ResetEdge(name string) error {
	switch name {
	case toolapproval.EdgeServer:
		m.ResetServer()
		return nil
	}
	return fmt.Errorf("unknown ToolApproval edge %s", name)
}
