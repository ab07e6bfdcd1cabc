// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/praxislabs/praxis/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/praxislabs/praxis/ent/agentsession"
	"github.com/praxislabs/praxis/ent/agentstep"
	"github.com/praxislabs/praxis/ent/auditentry"
	"github.com/praxislabs/praxis/ent/externalserver"
	"github.com/praxislabs/praxis/ent/projectautonomy"
	"github.com/praxislabs/praxis/ent/toolapproval"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentSession is the client for interacting with the AgentSession builders.
	AgentSession *AgentSessionClient
	// AgentStep is the client for interacting with the AgentStep builders.
	AgentStep *AgentStepClient
	// AuditEntry is the client for interacting with the AuditEntry builders.
	AuditEntry *AuditEntryClient
	// ExternalServer is the client for interacting with the ExternalServer builders.
	ExternalServer *ExternalServerClient
	// ProjectAutonomy is the client for interacting with the ProjectAutonomy builders.
	ProjectAutonomy *ProjectAutonomyClient
	// ToolApproval is the client for interacting with the ToolApproval builders.
	ToolApproval *ToolApprovalClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentSession = NewAgentSessionClient(c.config)
	c.AgentStep = NewAgentStepClient(c.config)
	c.AuditEntry = NewAuditEntryClient(c.config)
	c.ExternalServer = NewExternalServerClient(c.config)
	c.ProjectAutonomy = NewProjectAutonomyClient(c.config)
	c.ToolApproval = NewToolApprovalClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		AgentSession:    NewAgentSessionClient(cfg),
		AgentStep:       NewAgentStepClient(cfg),
		AuditEntry:      NewAuditEntryClient(cfg),
		ExternalServer:  NewExternalServerClient(cfg),
		ProjectAutonomy: NewProjectAutonomyClient(cfg),
		ToolApproval:    NewToolApprovalClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		AgentSession:    NewAgentSessionClient(cfg),
		AgentStep:       NewAgentStepClient(cfg),
		AuditEntry:      NewAuditEntryClient(cfg),
		ExternalServer:  NewExternalServerClient(cfg),
		ProjectAutonomy: NewProjectAutonomyClient(cfg),
		ToolApproval:    NewToolApprovalClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentSession.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AgentSession, c.AgentStep, c.AuditEntry, c.ExternalServer, c.ProjectAutonomy,
		c.ToolApproval,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentSession, c.AgentStep, c.AuditEntry, c.ExternalServer, c.ProjectAutonomy,
		c.ToolApproval,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentSessionMutation:
		return c.AgentSession.mutate(ctx, m)
	case *AgentStepMutation:
		return c.AgentStep.mutate(ctx, m)
	case *AuditEntryMutation:
		return c.AuditEntry.mutate(ctx, m)
	case *ExternalServerMutation:
		return c.ExternalServer.mutate(ctx, m)
	case *ProjectAutonomyMutation:
		return c.ProjectAutonomy.mutate(ctx, m)
	case *ToolApprovalMutation:
		return c.ToolApproval.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentSessionClient is a client for the AgentSession schema.
type AgentSessionClient struct {
	config
}

// NewAgentSessionClient returns a client for the AgentSession from the given config.
func NewAgentSessionClient(c config) *AgentSessionClient {
	return &AgentSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentsession.Hooks(f(g(h())))`.
func (c *AgentSessionClient) Use(hooks ...Hook) {
	c.hooks.AgentSession = append(c.hooks.AgentSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentsession.Intercept(f(g(h())))`.
func (c *AgentSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentSession = append(c.inters.AgentSession, interceptors...)
}

// Create returns a builder for creating a AgentSession entity.
func (c *AgentSessionClient) Create() *AgentSessionCreate {
	mutation := newAgentSessionMutation(c.config, OpCreate)
	return &AgentSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentSession entities.
func (c *AgentSessionClient) CreateBulk(builders ...*AgentSessionCreate) *AgentSessionCreateBulk {
	return &AgentSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentSessionClient) MapCreateBulk(slice any, setFunc func(*AgentSessionCreate, int)) *AgentSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentSessionCreateBulk{err: fmt.Errorf("calling to AgentSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentSession.
func (c *AgentSessionClient) Update() *AgentSessionUpdate {
	mutation := newAgentSessionMutation(c.config, OpUpdate)
	return &AgentSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentSessionClient) UpdateOne(_m *AgentSession) *AgentSessionUpdateOne {
	mutation := newAgentSessionMutation(c.config, OpUpdateOne, withAgentSession(_m))
	return &AgentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentSessionClient) UpdateOneID(id string) *AgentSessionUpdateOne {
	mutation := newAgentSessionMutation(c.config, OpUpdateOne, withAgentSessionID(id))
	return &AgentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentSession.
func (c *AgentSessionClient) Delete() *AgentSessionDelete {
	mutation := newAgentSessionMutation(c.config, OpDelete)
	return &AgentSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentSessionClient) DeleteOne(_m *AgentSession) *AgentSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentSessionClient) DeleteOneID(id string) *AgentSessionDeleteOne {
	builder := c.Delete().Where(agentsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentSessionDeleteOne{builder}
}

// Query returns a query builder for AgentSession.
func (c *AgentSessionClient) Query() *AgentSessionQuery {
	return &AgentSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentSession},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentSession entity by its id.
func (c *AgentSessionClient) Get(ctx context.Context, id string) (*AgentSession, error) {
	return c.Query().Where(agentsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentSessionClient) GetX(ctx context.Context, id string) *AgentSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySteps queries the steps edge of a AgentSession.
func (c *AgentSessionClient) QuerySteps(_m *AgentSession) *AgentStepQuery {
	query := (&AgentStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentsession.Table, agentsession.FieldID, id),
			sqlgraph.To(agentstep.Table, agentstep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentsession.StepsTable, agentsession.StepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentSessionClient) Hooks() []Hook {
	return c.hooks.AgentSession
}

// Interceptors returns the client interceptors.
func (c *AgentSessionClient) Interceptors() []Interceptor {
	return c.inters.AgentSession
}

func (c *AgentSessionClient) mutate(ctx context.Context, m *AgentSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentSession mutation op: %q", m.Op())
	}
}

// AgentStepClient is a client for the AgentStep schema.
type AgentStepClient struct {
	config
}

// NewAgentStepClient returns a client for the AgentStep from the given config.
func NewAgentStepClient(c config) *AgentStepClient {
	return &AgentStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentstep.Hooks(f(g(h())))`.
func (c *AgentStepClient) Use(hooks ...Hook) {
	c.hooks.AgentStep = append(c.hooks.AgentStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentstep.Intercept(f(g(h())))`.
func (c *AgentStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentStep = append(c.inters.AgentStep, interceptors...)
}

// Create returns a builder for creating a AgentStep entity.
func (c *AgentStepClient) Create() *AgentStepCreate {
	mutation := newAgentStepMutation(c.config, OpCreate)
	return &AgentStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentStep entities.
func (c *AgentStepClient) CreateBulk(builders ...*AgentStepCreate) *AgentStepCreateBulk {
	return &AgentStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentStepClient) MapCreateBulk(slice any, setFunc func(*AgentStepCreate, int)) *AgentStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentStepCreateBulk{err: fmt.Errorf("calling to AgentStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentStep.
func (c *AgentStepClient) Update() *AgentStepUpdate {
	mutation := newAgentStepMutation(c.config, OpUpdate)
	return &AgentStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentStepClient) UpdateOne(_m *AgentStep) *AgentStepUpdateOne {
	mutation := newAgentStepMutation(c.config, OpUpdateOne, withAgentStep(_m))
	return &AgentStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentStepClient) UpdateOneID(id int) *AgentStepUpdateOne {
	mutation := newAgentStepMutation(c.config, OpUpdateOne, withAgentStepID(id))
	return &AgentStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentStep.
func (c *AgentStepClient) Delete() *AgentStepDelete {
	mutation := newAgentStepMutation(c.config, OpDelete)
	return &AgentStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentStepClient) DeleteOne(_m *AgentStep) *AgentStepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentStepClient) DeleteOneID(id int) *AgentStepDeleteOne {
	builder := c.Delete().Where(agentstep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentStepDeleteOne{builder}
}

// Query returns a query builder for AgentStep.
func (c *AgentStepClient) Query() *AgentStepQuery {
	return &AgentStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentStep},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentStep entity by its id.
func (c *AgentStepClient) Get(ctx context.Context, id int) (*AgentStep, error) {
	return c.Query().Where(agentstep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentStepClient) GetX(ctx context.Context, id int) *AgentStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a AgentStep.
func (c *AgentStepClient) QuerySession(_m *AgentStep) *AgentSessionQuery {
	query := (&AgentSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentstep.Table, agentstep.FieldID, id),
			sqlgraph.To(agentsession.Table, agentsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentstep.SessionTable, agentstep.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentStepClient) Hooks() []Hook {
	return c.hooks.AgentStep
}

// Interceptors returns the client interceptors.
func (c *AgentStepClient) Interceptors() []Interceptor {
	return c.inters.AgentStep
}

func (c *AgentStepClient) mutate(ctx context.Context, m *AgentStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentStep mutation op: %q", m.Op())
	}
}

// AuditEntryClient is a client for the AuditEntry schema.
type AuditEntryClient struct {
	config
}

// NewAuditEntryClient returns a client for the AuditEntry from the given config.
func NewAuditEntryClient(c config) *AuditEntryClient {
	return &AuditEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditentry.Hooks(f(g(h())))`.
func (c *AuditEntryClient) Use(hooks ...Hook) {
	c.hooks.AuditEntry = append(c.hooks.AuditEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditentry.Intercept(f(g(h())))`.
func (c *AuditEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditEntry = append(c.inters.AuditEntry, interceptors...)
}

// Create returns a builder for creating a AuditEntry entity.
func (c *AuditEntryClient) Create() *AuditEntryCreate {
	mutation := newAuditEntryMutation(c.config, OpCreate)
	return &AuditEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditEntry entities.
func (c *AuditEntryClient) CreateBulk(builders ...*AuditEntryCreate) *AuditEntryCreateBulk {
	return &AuditEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditEntryClient) MapCreateBulk(slice any, setFunc func(*AuditEntryCreate, int)) *AuditEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditEntryCreateBulk{err: fmt.Errorf("calling to AuditEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditEntry.
func (c *AuditEntryClient) Update() *AuditEntryUpdate {
	mutation := newAuditEntryMutation(c.config, OpUpdate)
	return &AuditEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditEntryClient) UpdateOne(_m *AuditEntry) *AuditEntryUpdateOne {
	mutation := newAuditEntryMutation(c.config, OpUpdateOne, withAuditEntry(_m))
	return &AuditEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditEntryClient) UpdateOneID(id string) *AuditEntryUpdateOne {
	mutation := newAuditEntryMutation(c.config, OpUpdateOne, withAuditEntryID(id))
	return &AuditEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditEntry.
func (c *AuditEntryClient) Delete() *AuditEntryDelete {
	mutation := newAuditEntryMutation(c.config, OpDelete)
	return &AuditEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditEntryClient) DeleteOne(_m *AuditEntry) *AuditEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditEntryClient) DeleteOneID(id string) *AuditEntryDeleteOne {
	builder := c.Delete().Where(auditentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditEntryDeleteOne{builder}
}

// Query returns a query builder for AuditEntry.
func (c *AuditEntryClient) Query() *AuditEntryQuery {
	return &AuditEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditEntry entity by its id.
func (c *AuditEntryClient) Get(ctx context.Context, id string) (*AuditEntry, error) {
	return c.Query().Where(auditentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditEntryClient) GetX(ctx context.Context, id string) *AuditEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditEntryClient) Hooks() []Hook {
	return c.hooks.AuditEntry
}

// Interceptors returns the client interceptors.
func (c *AuditEntryClient) Interceptors() []Interceptor {
	return c.inters.AuditEntry
}

func (c *AuditEntryClient) mutate(ctx context.Context, m *AuditEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditEntry mutation op: %q", m.Op())
	}
}

// ExternalServerClient is a client for the ExternalServer schema.
type ExternalServerClient struct {
	config
}

// NewExternalServerClient returns a client for the ExternalServer from the given config.
func NewExternalServerClient(c config) *ExternalServerClient {
	return &ExternalServerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `externalserver.Hooks(f(g(h())))`.
func (c *ExternalServerClient) Use(hooks ...Hook) {
	c.hooks.ExternalServer = append(c.hooks.ExternalServer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `externalserver.Intercept(f(g(h())))`.
func (c *ExternalServerClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExternalServer = append(c.inters.ExternalServer, interceptors...)
}

// Create returns a builder for creating a ExternalServer entity.
func (c *ExternalServerClient) Create() *ExternalServerCreate {
	mutation := newExternalServerMutation(c.config, OpCreate)
	return &ExternalServerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExternalServer entities.
func (c *ExternalServerClient) CreateBulk(builders ...*ExternalServerCreate) *ExternalServerCreateBulk {
	return &ExternalServerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExternalServerClient) MapCreateBulk(slice any, setFunc func(*ExternalServerCreate, int)) *ExternalServerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExternalServerCreateBulk{err: fmt.Errorf("calling to ExternalServerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExternalServerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExternalServerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExternalServer.
func (c *ExternalServerClient) Update() *ExternalServerUpdate {
	mutation := newExternalServerMutation(c.config, OpUpdate)
	return &ExternalServerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExternalServerClient) UpdateOne(_m *ExternalServer) *ExternalServerUpdateOne {
	mutation := newExternalServerMutation(c.config, OpUpdateOne, withExternalServer(_m))
	return &ExternalServerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExternalServerClient) UpdateOneID(id string) *ExternalServerUpdateOne {
	mutation := newExternalServerMutation(c.config, OpUpdateOne, withExternalServerID(id))
	return &ExternalServerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExternalServer.
func (c *ExternalServerClient) Delete() *ExternalServerDelete {
	mutation := newExternalServerMutation(c.config, OpDelete)
	return &ExternalServerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExternalServerClient) DeleteOne(_m *ExternalServer) *ExternalServerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExternalServerClient) DeleteOneID(id string) *ExternalServerDeleteOne {
	builder := c.Delete().Where(externalserver.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExternalServerDeleteOne{builder}
}

// Query returns a query builder for ExternalServer.
func (c *ExternalServerClient) Query() *ExternalServerQuery {
	return &ExternalServerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExternalServer},
		inters: c.Interceptors(),
	}
}

// Get returns a ExternalServer entity by its id.
func (c *ExternalServerClient) Get(ctx context.Context, id string) (*ExternalServer, error) {
	return c.Query().Where(externalserver.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExternalServerClient) GetX(ctx context.Context, id string) *ExternalServer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryToolApprovals queries the tool_approvals edge of a ExternalServer.
func (c *ExternalServerClient) QueryToolApprovals(_m *ExternalServer) *ToolApprovalQuery {
	query := (&ToolApprovalClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(externalserver.Table, externalserver.FieldID, id),
			sqlgraph.To(toolapproval.Table, toolapproval.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, externalserver.ToolApprovalsTable, externalserver.ToolApprovalsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExternalServerClient) Hooks() []Hook {
	return c.hooks.ExternalServer
}

// Interceptors returns the client interceptors.
func (c *ExternalServerClient) Interceptors() []Interceptor {
	return c.inters.ExternalServer
}

func (c *ExternalServerClient) mutate(ctx context.Context, m *ExternalServerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExternalServerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExternalServerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExternalServerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExternalServerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExternalServer mutation op: %q", m.Op())
	}
}

// ProjectAutonomyClient is a client for the ProjectAutonomy schema.
type ProjectAutonomyClient struct {
	config
}

// NewProjectAutonomyClient returns a client for the ProjectAutonomy from the given config.
func NewProjectAutonomyClient(c config) *ProjectAutonomyClient {
	return &ProjectAutonomyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `projectautonomy.Hooks(f(g(h())))`.
func (c *ProjectAutonomyClient) Use(hooks ...Hook) {
	c.hooks.ProjectAutonomy = append(c.hooks.ProjectAutonomy, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `projectautonomy.Intercept(f(g(h())))`.
func (c *ProjectAutonomyClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProjectAutonomy = append(c.inters.ProjectAutonomy, interceptors...)
}

// Create returns a builder for creating a ProjectAutonomy entity.
func (c *ProjectAutonomyClient) Create() *ProjectAutonomyCreate {
	mutation := newProjectAutonomyMutation(c.config, OpCreate)
	return &ProjectAutonomyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProjectAutonomy entities.
func (c *ProjectAutonomyClient) CreateBulk(builders ...*ProjectAutonomyCreate) *ProjectAutonomyCreateBulk {
	return &ProjectAutonomyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectAutonomyClient) MapCreateBulk(slice any, setFunc func(*ProjectAutonomyCreate, int)) *ProjectAutonomyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectAutonomyCreateBulk{err: fmt.Errorf("calling to ProjectAutonomyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectAutonomyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectAutonomyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProjectAutonomy.
func (c *ProjectAutonomyClient) Update() *ProjectAutonomyUpdate {
	mutation := newProjectAutonomyMutation(c.config, OpUpdate)
	return &ProjectAutonomyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectAutonomyClient) UpdateOne(_m *ProjectAutonomy) *ProjectAutonomyUpdateOne {
	mutation := newProjectAutonomyMutation(c.config, OpUpdateOne, withProjectAutonomy(_m))
	return &ProjectAutonomyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectAutonomyClient) UpdateOneID(id int) *ProjectAutonomyUpdateOne {
	mutation := newProjectAutonomyMutation(c.config, OpUpdateOne, withProjectAutonomyID(id))
	return &ProjectAutonomyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProjectAutonomy.
func (c *ProjectAutonomyClient) Delete() *ProjectAutonomyDelete {
	mutation := newProjectAutonomyMutation(c.config, OpDelete)
	return &ProjectAutonomyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectAutonomyClient) DeleteOne(_m *ProjectAutonomy) *ProjectAutonomyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectAutonomyClient) DeleteOneID(id int) *ProjectAutonomyDeleteOne {
	builder := c.Delete().Where(projectautonomy.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectAutonomyDeleteOne{builder}
}

// Query returns a query builder for ProjectAutonomy.
func (c *ProjectAutonomyClient) Query() *ProjectAutonomyQuery {
	return &ProjectAutonomyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProjectAutonomy},
		inters: c.Interceptors(),
	}
}

// Get returns a ProjectAutonomy entity by its id.
func (c *ProjectAutonomyClient) Get(ctx context.Context, id int) (*ProjectAutonomy, error) {
	return c.Query().Where(projectautonomy.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectAutonomyClient) GetX(ctx context.Context, id int) *ProjectAutonomy {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProjectAutonomyClient) Hooks() []Hook {
	return c.hooks.ProjectAutonomy
}

// Interceptors returns the client interceptors.
func (c *ProjectAutonomyClient) Interceptors() []Interceptor {
	return c.inters.ProjectAutonomy
}

func (c *ProjectAutonomyClient) mutate(ctx context.Context, m *ProjectAutonomyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectAutonomyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectAutonomyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectAutonomyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectAutonomyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProjectAutonomy mutation op: %q", m.Op())
	}
}

// ToolApprovalClient is a client for the ToolApproval schema.
type ToolApprovalClient struct {
	config
}

// NewToolApprovalClient returns a client for the ToolApproval from the given config.
func NewToolApprovalClient(c config) *ToolApprovalClient {
	return &ToolApprovalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `toolapproval.Hooks(f(g(h())))`.
func (c *ToolApprovalClient) Use(hooks ...Hook) {
	c.hooks.ToolApproval = append(c.hooks.ToolApproval, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `toolapproval.Intercept(f(g(h())))`.
func (c *ToolApprovalClient) Intercept(interceptors ...Interceptor) {
	c.inters.ToolApproval = append(c.inters.ToolApproval, interceptors...)
}

// Create returns a builder for creating a ToolApproval entity.
func (c *ToolApprovalClient) Create() *ToolApprovalCreate {
	mutation := newToolApprovalMutation(c.config, OpCreate)
	return &ToolApprovalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ToolApproval entities.
func (c *ToolApprovalClient) CreateBulk(builders ...*ToolApprovalCreate) *ToolApprovalCreateBulk {
	return &ToolApprovalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ToolApprovalClient) MapCreateBulk(slice any, setFunc func(*ToolApprovalCreate, int)) *ToolApprovalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ToolApprovalCreateBulk{err: fmt.Errorf("calling to ToolApprovalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ToolApprovalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ToolApprovalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ToolApproval.
func (c *ToolApprovalClient) Update() *ToolApprovalUpdate {
	mutation := newToolApprovalMutation(c.config, OpUpdate)
	return &ToolApprovalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ToolApprovalClient) UpdateOne(_m *ToolApproval) *ToolApprovalUpdateOne {
	mutation := newToolApprovalMutation(c.config, OpUpdateOne, withToolApproval(_m))
	return &ToolApprovalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ToolApprovalClient) UpdateOneID(id int) *ToolApprovalUpdateOne {
	mutation := newToolApprovalMutation(c.config, OpUpdateOne, withToolApprovalID(id))
	return &ToolApprovalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ToolApproval.
func (c *ToolApprovalClient) Delete() *ToolApprovalDelete {
	mutation := newToolApprovalMutation(c.config, OpDelete)
	return &ToolApprovalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ToolApprovalClient) DeleteOne(_m *ToolApproval) *ToolApprovalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ToolApprovalClient) DeleteOneID(id int) *ToolApprovalDeleteOne {
	builder := c.Delete().Where(toolapproval.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ToolApprovalDeleteOne{builder}
}

// Query returns a query builder for ToolApproval.
func (c *ToolApprovalClient) Query() *ToolApprovalQuery {
	return &ToolApprovalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeToolApproval},
		inters: c.Interceptors(),
	}
}

// Get returns a ToolApproval entity by its id.
func (c *ToolApprovalClient) Get(ctx context.Context, id int) (*ToolApproval, error) {
	return c.Query().Where(toolapproval.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ToolApprovalClient) GetX(ctx context.Context, id int) *ToolApproval {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryServer queries the server edge of a ToolApproval.
func (c *ToolApprovalClient) QueryServer(_m *ToolApproval) *ExternalServerQuery {
	query := (&ExternalServerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(toolapproval.Table, toolapproval.FieldID, id),
			sqlgraph.To(externalserver.Table, externalserver.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, toolapproval.ServerTable, toolapproval.ServerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ToolApprovalClient) Hooks() []Hook {
	return c.hooks.ToolApproval
}

// Interceptors returns the client interceptors.
func (c *ToolApprovalClient) Interceptors() []Interceptor {
	return c.inters.ToolApproval
}

func (c *ToolApprovalClient) mutate(ctx context.Context, m *ToolApprovalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ToolApprovalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ToolApprovalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ToolApprovalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ToolApprovalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ToolApproval mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentSession, AgentStep, AuditEntry, ExternalServer, ProjectAutonomy,
		ToolApproval []ent.Hook
	}
	inters struct {
		AgentSession, AgentStep, AuditEntry, ExternalServer, ProjectAutonomy,
		ToolApproval []ent.Interceptor
	}
)
