// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxislabs/praxis/ent/agentsession"
	"github.com/praxislabs/praxis/ent/agentstep"
)

// AgentStepCreate is the builder for creating a AgentStep entity.
type AgentStepCreate struct {
	config
	mutation *AgentStepMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *AgentStepCreate) SetSessionID(v string) *AgentStepCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *AgentStepCreate) SetStepID(v int) *AgentStepCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *AgentStepCreate) SetDescription(v string) *AgentStepCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *AgentStepCreate) SetToolName(v string) *AgentStepCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_c *AgentStepCreate) SetNillableToolName(v *string) *AgentStepCreate {
	if v != nil {
		_c.SetToolName(*v)
	}
	return _c
}

// SetParams sets the "params" field.
func (_c *AgentStepCreate) SetParams(v map[string]interface{}) *AgentStepCreate {
	_c.mutation.SetParams(v)
	return _c
}

// SetDependencies sets the "dependencies" field.
func (_c *AgentStepCreate) SetDependencies(v []int) *AgentStepCreate {
	_c.mutation.SetDependencies(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentStepCreate) SetStatus(v agentstep.Status) *AgentStepCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentStepCreate) SetNillableStatus(v *agentstep.Status) *AgentStepCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *AgentStepCreate) SetResult(v string) *AgentStepCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_c *AgentStepCreate) SetNillableResult(v *string) *AgentStepCreate {
	if v != nil {
		_c.SetResult(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AgentStepCreate) SetErrorMessage(v string) *AgentStepCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AgentStepCreate) SetNillableErrorMessage(v *string) *AgentStepCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AgentStepCreate) SetStartedAt(v time.Time) *AgentStepCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AgentStepCreate) SetNillableStartedAt(v *time.Time) *AgentStepCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AgentStepCreate) SetCompletedAt(v time.Time) *AgentStepCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AgentStepCreate) SetNillableCompletedAt(v *time.Time) *AgentStepCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *AgentStepCreate) SetDurationMs(v int) *AgentStepCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *AgentStepCreate) SetNillableDurationMs(v *int) *AgentStepCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetSession sets the "session" edge to the AgentSession entity.
func (_c *AgentStepCreate) SetSession(v *AgentSession) *AgentStepCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the AgentStepMutation object of the builder.
func (_c *AgentStepCreate) Mutation() *AgentStepMutation {
	return _c.mutation
}

// Save creates the AgentStep in the database.
func (_c *AgentStepCreate) Save(ctx context.Context) (*AgentStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentStepCreate) SaveX(ctx context.Context) *AgentStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentStepCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agentstep.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentStepCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AgentStep.session_id"`)}
	}
	if _, ok := _c.mutation.StepID(); !ok {
		return &ValidationError{Name: "step_id", err: errors.New(`ent: missing required field "AgentStep.step_id"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "AgentStep.description"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentStep.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentStep.status": %w`, err)}
		}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "AgentStep.session"`)}
	}
	return nil
}

func (_c *AgentStepCreate) sqlSave(ctx context.Context) (*AgentStep, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentStepCreate) createSpec() (*AgentStep, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentstep.Table, sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StepID(); ok {
		_spec.SetField(agentstep.FieldStepID, field.TypeInt, value)
		_node.StepID = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(agentstep.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(agentstep.FieldToolName, field.TypeString, value)
		_node.ToolName = &value
	}
	if value, ok := _c.mutation.Params(); ok {
		_spec.SetField(agentstep.FieldParams, field.TypeJSON, value)
		_node.Params = value
	}
	if value, ok := _c.mutation.Dependencies(); ok {
		_spec.SetField(agentstep.FieldDependencies, field.TypeJSON, value)
		_node.Dependencies = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentstep.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(agentstep.FieldResult, field.TypeString, value)
		_node.Result = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(agentstep.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(agentstep.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(agentstep.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(agentstep.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = &value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentstep.SessionTable,
			Columns: []string{agentstep.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentStepCreateBulk is the builder for creating many AgentStep entities in bulk.
type AgentStepCreateBulk struct {
	config
	err      error
	builders []*AgentStepCreate
}

// Save creates the AgentStep entities in the database.
func (_c *AgentStepCreateBulk) Save(ctx context.Context) ([]*AgentStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentStepMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AgentStepCreateBulk) SaveX(ctx context.Context) []*AgentStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
