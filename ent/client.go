// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/polski/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/polski/ent/answerevent"
	"github.com/abhisek/polski/ent/concept"
	"github.com/abhisek/polski/ent/conceptgroup"
	"github.com/abhisek/polski/ent/conceptprogress"
	"github.com/abhisek/polski/ent/courseconcept"
	"github.com/abhisek/polski/ent/llmrequestevent"
	"github.com/abhisek/polski/ent/questionbankentry"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnswerEvent is the client for interacting with the AnswerEvent builders.
	AnswerEvent *AnswerEventClient
	// Concept is the client for interacting with the Concept builders.
	Concept *ConceptClient
	// ConceptGroup is the client for interacting with the ConceptGroup builders.
	ConceptGroup *ConceptGroupClient
	// ConceptProgress is the client for interacting with the ConceptProgress builders.
	ConceptProgress *ConceptProgressClient
	// CourseConcept is the client for interacting with the CourseConcept builders.
	CourseConcept *CourseConceptClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// QuestionBankEntry is the client for interacting with the QuestionBankEntry builders.
	QuestionBankEntry *QuestionBankEntryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnswerEvent = NewAnswerEventClient(c.config)
	c.Concept = NewConceptClient(c.config)
	c.ConceptGroup = NewConceptGroupClient(c.config)
	c.ConceptProgress = NewConceptProgressClient(c.config)
	c.CourseConcept = NewCourseConceptClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.QuestionBankEntry = NewQuestionBankEntryClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		AnswerEvent:       NewAnswerEventClient(cfg),
		Concept:           NewConceptClient(cfg),
		ConceptGroup:      NewConceptGroupClient(cfg),
		ConceptProgress:   NewConceptProgressClient(cfg),
		CourseConcept:     NewCourseConceptClient(cfg),
		LLMRequestEvent:   NewLLMRequestEventClient(cfg),
		QuestionBankEntry: NewQuestionBankEntryClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		AnswerEvent:       NewAnswerEventClient(cfg),
		Concept:           NewConceptClient(cfg),
		ConceptGroup:      NewConceptGroupClient(cfg),
		ConceptProgress:   NewConceptProgressClient(cfg),
		CourseConcept:     NewCourseConceptClient(cfg),
		LLMRequestEvent:   NewLLMRequestEventClient(cfg),
		QuestionBankEntry: NewQuestionBankEntryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnswerEvent.
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
		c.AnswerEvent, c.Concept, c.ConceptGroup, c.ConceptProgress, c.CourseConcept,
		c.LLMRequestEvent, c.QuestionBankEntry,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AnswerEvent, c.Concept, c.ConceptGroup, c.ConceptProgress, c.CourseConcept,
		c.LLMRequestEvent, c.QuestionBankEntry,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnswerEventMutation:
		return c.AnswerEvent.mutate(ctx, m)
	case *ConceptMutation:
		return c.Concept.mutate(ctx, m)
	case *ConceptGroupMutation:
		return c.ConceptGroup.mutate(ctx, m)
	case *ConceptProgressMutation:
		return c.ConceptProgress.mutate(ctx, m)
	case *CourseConceptMutation:
		return c.CourseConcept.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *QuestionBankEntryMutation:
		return c.QuestionBankEntry.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnswerEventClient is a client for the AnswerEvent schema.
type AnswerEventClient struct {
	config
}

// NewAnswerEventClient returns a client for the AnswerEvent from the given config.
func NewAnswerEventClient(c config) *AnswerEventClient {
	return &AnswerEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `answerevent.Hooks(f(g(h())))`.
func (c *AnswerEventClient) Use(hooks ...Hook) {
	c.hooks.AnswerEvent = append(c.hooks.AnswerEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `answerevent.Intercept(f(g(h())))`.
func (c *AnswerEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnswerEvent = append(c.inters.AnswerEvent, interceptors...)
}

// Create returns a builder for creating a AnswerEvent entity.
func (c *AnswerEventClient) Create() *AnswerEventCreate {
	mutation := newAnswerEventMutation(c.config, OpCreate)
	return &AnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnswerEvent entities.
func (c *AnswerEventClient) CreateBulk(builders ...*AnswerEventCreate) *AnswerEventCreateBulk {
	return &AnswerEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnswerEventClient) MapCreateBulk(slice any, setFunc func(*AnswerEventCreate, int)) *AnswerEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnswerEventCreateBulk{err: fmt.Errorf("calling to AnswerEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnswerEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnswerEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnswerEvent.
func (c *AnswerEventClient) Update() *AnswerEventUpdate {
	mutation := newAnswerEventMutation(c.config, OpUpdate)
	return &AnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnswerEventClient) UpdateOne(_m *AnswerEvent) *AnswerEventUpdateOne {
	mutation := newAnswerEventMutation(c.config, OpUpdateOne, withAnswerEvent(_m))
	return &AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnswerEventClient) UpdateOneID(id int) *AnswerEventUpdateOne {
	mutation := newAnswerEventMutation(c.config, OpUpdateOne, withAnswerEventID(id))
	return &AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnswerEvent.
func (c *AnswerEventClient) Delete() *AnswerEventDelete {
	mutation := newAnswerEventMutation(c.config, OpDelete)
	return &AnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnswerEventClient) DeleteOne(_m *AnswerEvent) *AnswerEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnswerEventClient) DeleteOneID(id int) *AnswerEventDeleteOne {
	builder := c.Delete().Where(answerevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnswerEventDeleteOne{builder}
}

// Query returns a query builder for AnswerEvent.
func (c *AnswerEventClient) Query() *AnswerEventQuery {
	return &AnswerEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnswerEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AnswerEvent entity by its id.
func (c *AnswerEventClient) Get(ctx context.Context, id int) (*AnswerEvent, error) {
	return c.Query().Where(answerevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnswerEventClient) GetX(ctx context.Context, id int) *AnswerEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnswerEventClient) Hooks() []Hook {
	return c.hooks.AnswerEvent
}

// Interceptors returns the client interceptors.
func (c *AnswerEventClient) Interceptors() []Interceptor {
	return c.inters.AnswerEvent
}

func (c *AnswerEventClient) mutate(ctx context.Context, m *AnswerEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnswerEvent mutation op: %q", m.Op())
	}
}

// ConceptClient is a client for the Concept schema.
type ConceptClient struct {
	config
}

// NewConceptClient returns a client for the Concept from the given config.
func NewConceptClient(c config) *ConceptClient {
	return &ConceptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `concept.Hooks(f(g(h())))`.
func (c *ConceptClient) Use(hooks ...Hook) {
	c.hooks.Concept = append(c.hooks.Concept, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `concept.Intercept(f(g(h())))`.
func (c *ConceptClient) Intercept(interceptors ...Interceptor) {
	c.inters.Concept = append(c.inters.Concept, interceptors...)
}

// Create returns a builder for creating a Concept entity.
func (c *ConceptClient) Create() *ConceptCreate {
	mutation := newConceptMutation(c.config, OpCreate)
	return &ConceptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Concept entities.
func (c *ConceptClient) CreateBulk(builders ...*ConceptCreate) *ConceptCreateBulk {
	return &ConceptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConceptClient) MapCreateBulk(slice any, setFunc func(*ConceptCreate, int)) *ConceptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConceptCreateBulk{err: fmt.Errorf("calling to ConceptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConceptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConceptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Concept.
func (c *ConceptClient) Update() *ConceptUpdate {
	mutation := newConceptMutation(c.config, OpUpdate)
	return &ConceptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConceptClient) UpdateOne(_m *Concept) *ConceptUpdateOne {
	mutation := newConceptMutation(c.config, OpUpdateOne, withConcept(_m))
	return &ConceptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConceptClient) UpdateOneID(id string) *ConceptUpdateOne {
	mutation := newConceptMutation(c.config, OpUpdateOne, withConceptID(id))
	return &ConceptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Concept.
func (c *ConceptClient) Delete() *ConceptDelete {
	mutation := newConceptMutation(c.config, OpDelete)
	return &ConceptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConceptClient) DeleteOne(_m *Concept) *ConceptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConceptClient) DeleteOneID(id string) *ConceptDeleteOne {
	builder := c.Delete().Where(concept.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConceptDeleteOne{builder}
}

// Query returns a query builder for Concept.
func (c *ConceptClient) Query() *ConceptQuery {
	return &ConceptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConcept},
		inters: c.Interceptors(),
	}
}

// Get returns a Concept entity by its id.
func (c *ConceptClient) Get(ctx context.Context, id string) (*Concept, error) {
	return c.Query().Where(concept.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConceptClient) GetX(ctx context.Context, id string) *Concept {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConceptClient) Hooks() []Hook {
	return c.hooks.Concept
}

// Interceptors returns the client interceptors.
func (c *ConceptClient) Interceptors() []Interceptor {
	return c.inters.Concept
}

func (c *ConceptClient) mutate(ctx context.Context, m *ConceptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConceptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConceptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConceptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConceptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Concept mutation op: %q", m.Op())
	}
}

// ConceptGroupClient is a client for the ConceptGroup schema.
type ConceptGroupClient struct {
	config
}

// NewConceptGroupClient returns a client for the ConceptGroup from the given config.
func NewConceptGroupClient(c config) *ConceptGroupClient {
	return &ConceptGroupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conceptgroup.Hooks(f(g(h())))`.
func (c *ConceptGroupClient) Use(hooks ...Hook) {
	c.hooks.ConceptGroup = append(c.hooks.ConceptGroup, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conceptgroup.Intercept(f(g(h())))`.
func (c *ConceptGroupClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConceptGroup = append(c.inters.ConceptGroup, interceptors...)
}

// Create returns a builder for creating a ConceptGroup entity.
func (c *ConceptGroupClient) Create() *ConceptGroupCreate {
	mutation := newConceptGroupMutation(c.config, OpCreate)
	return &ConceptGroupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConceptGroup entities.
func (c *ConceptGroupClient) CreateBulk(builders ...*ConceptGroupCreate) *ConceptGroupCreateBulk {
	return &ConceptGroupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConceptGroupClient) MapCreateBulk(slice any, setFunc func(*ConceptGroupCreate, int)) *ConceptGroupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConceptGroupCreateBulk{err: fmt.Errorf("calling to ConceptGroupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConceptGroupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConceptGroupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConceptGroup.
func (c *ConceptGroupClient) Update() *ConceptGroupUpdate {
	mutation := newConceptGroupMutation(c.config, OpUpdate)
	return &ConceptGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConceptGroupClient) UpdateOne(_m *ConceptGroup) *ConceptGroupUpdateOne {
	mutation := newConceptGroupMutation(c.config, OpUpdateOne, withConceptGroup(_m))
	return &ConceptGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConceptGroupClient) UpdateOneID(id string) *ConceptGroupUpdateOne {
	mutation := newConceptGroupMutation(c.config, OpUpdateOne, withConceptGroupID(id))
	return &ConceptGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConceptGroup.
func (c *ConceptGroupClient) Delete() *ConceptGroupDelete {
	mutation := newConceptGroupMutation(c.config, OpDelete)
	return &ConceptGroupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConceptGroupClient) DeleteOne(_m *ConceptGroup) *ConceptGroupDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConceptGroupClient) DeleteOneID(id string) *ConceptGroupDeleteOne {
	builder := c.Delete().Where(conceptgroup.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConceptGroupDeleteOne{builder}
}

// Query returns a query builder for ConceptGroup.
func (c *ConceptGroupClient) Query() *ConceptGroupQuery {
	return &ConceptGroupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConceptGroup},
		inters: c.Interceptors(),
	}
}

// Get returns a ConceptGroup entity by its id.
func (c *ConceptGroupClient) Get(ctx context.Context, id string) (*ConceptGroup, error) {
	return c.Query().Where(conceptgroup.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConceptGroupClient) GetX(ctx context.Context, id string) *ConceptGroup {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConceptGroupClient) Hooks() []Hook {
	return c.hooks.ConceptGroup
}

// Interceptors returns the client interceptors.
func (c *ConceptGroupClient) Interceptors() []Interceptor {
	return c.inters.ConceptGroup
}

func (c *ConceptGroupClient) mutate(ctx context.Context, m *ConceptGroupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConceptGroupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConceptGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConceptGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConceptGroupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConceptGroup mutation op: %q", m.Op())
	}
}

// ConceptProgressClient is a client for the ConceptProgress schema.
type ConceptProgressClient struct {
	config
}

// NewConceptProgressClient returns a client for the ConceptProgress from the given config.
func NewConceptProgressClient(c config) *ConceptProgressClient {
	return &ConceptProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conceptprogress.Hooks(f(g(h())))`.
func (c *ConceptProgressClient) Use(hooks ...Hook) {
	c.hooks.ConceptProgress = append(c.hooks.ConceptProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conceptprogress.Intercept(f(g(h())))`.
func (c *ConceptProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConceptProgress = append(c.inters.ConceptProgress, interceptors...)
}

// Create returns a builder for creating a ConceptProgress entity.
func (c *ConceptProgressClient) Create() *ConceptProgressCreate {
	mutation := newConceptProgressMutation(c.config, OpCreate)
	return &ConceptProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConceptProgress entities.
func (c *ConceptProgressClient) CreateBulk(builders ...*ConceptProgressCreate) *ConceptProgressCreateBulk {
	return &ConceptProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConceptProgressClient) MapCreateBulk(slice any, setFunc func(*ConceptProgressCreate, int)) *ConceptProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConceptProgressCreateBulk{err: fmt.Errorf("calling to ConceptProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConceptProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConceptProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConceptProgress.
func (c *ConceptProgressClient) Update() *ConceptProgressUpdate {
	mutation := newConceptProgressMutation(c.config, OpUpdate)
	return &ConceptProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConceptProgressClient) UpdateOne(_m *ConceptProgress) *ConceptProgressUpdateOne {
	mutation := newConceptProgressMutation(c.config, OpUpdateOne, withConceptProgress(_m))
	return &ConceptProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConceptProgressClient) UpdateOneID(id string) *ConceptProgressUpdateOne {
	mutation := newConceptProgressMutation(c.config, OpUpdateOne, withConceptProgressID(id))
	return &ConceptProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConceptProgress.
func (c *ConceptProgressClient) Delete() *ConceptProgressDelete {
	mutation := newConceptProgressMutation(c.config, OpDelete)
	return &ConceptProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConceptProgressClient) DeleteOne(_m *ConceptProgress) *ConceptProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConceptProgressClient) DeleteOneID(id string) *ConceptProgressDeleteOne {
	builder := c.Delete().Where(conceptprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConceptProgressDeleteOne{builder}
}

// Query returns a query builder for ConceptProgress.
func (c *ConceptProgressClient) Query() *ConceptProgressQuery {
	return &ConceptProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConceptProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a ConceptProgress entity by its id.
func (c *ConceptProgressClient) Get(ctx context.Context, id string) (*ConceptProgress, error) {
	return c.Query().Where(conceptprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConceptProgressClient) GetX(ctx context.Context, id string) *ConceptProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConceptProgressClient) Hooks() []Hook {
	return c.hooks.ConceptProgress
}

// Interceptors returns the client interceptors.
func (c *ConceptProgressClient) Interceptors() []Interceptor {
	return c.inters.ConceptProgress
}

func (c *ConceptProgressClient) mutate(ctx context.Context, m *ConceptProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConceptProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConceptProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConceptProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConceptProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConceptProgress mutation op: %q", m.Op())
	}
}

// CourseConceptClient is a client for the CourseConcept schema.
type CourseConceptClient struct {
	config
}

// NewCourseConceptClient returns a client for the CourseConcept from the given config.
func NewCourseConceptClient(c config) *CourseConceptClient {
	return &CourseConceptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `courseconcept.Hooks(f(g(h())))`.
func (c *CourseConceptClient) Use(hooks ...Hook) {
	c.hooks.CourseConcept = append(c.hooks.CourseConcept, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `courseconcept.Intercept(f(g(h())))`.
func (c *CourseConceptClient) Intercept(interceptors ...Interceptor) {
	c.inters.CourseConcept = append(c.inters.CourseConcept, interceptors...)
}

// Create returns a builder for creating a CourseConcept entity.
func (c *CourseConceptClient) Create() *CourseConceptCreate {
	mutation := newCourseConceptMutation(c.config, OpCreate)
	return &CourseConceptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CourseConcept entities.
func (c *CourseConceptClient) CreateBulk(builders ...*CourseConceptCreate) *CourseConceptCreateBulk {
	return &CourseConceptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CourseConceptClient) MapCreateBulk(slice any, setFunc func(*CourseConceptCreate, int)) *CourseConceptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CourseConceptCreateBulk{err: fmt.Errorf("calling to CourseConceptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CourseConceptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CourseConceptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CourseConcept.
func (c *CourseConceptClient) Update() *CourseConceptUpdate {
	mutation := newCourseConceptMutation(c.config, OpUpdate)
	return &CourseConceptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CourseConceptClient) UpdateOne(_m *CourseConcept) *CourseConceptUpdateOne {
	mutation := newCourseConceptMutation(c.config, OpUpdateOne, withCourseConcept(_m))
	return &CourseConceptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CourseConceptClient) UpdateOneID(id int) *CourseConceptUpdateOne {
	mutation := newCourseConceptMutation(c.config, OpUpdateOne, withCourseConceptID(id))
	return &CourseConceptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CourseConcept.
func (c *CourseConceptClient) Delete() *CourseConceptDelete {
	mutation := newCourseConceptMutation(c.config, OpDelete)
	return &CourseConceptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CourseConceptClient) DeleteOne(_m *CourseConcept) *CourseConceptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CourseConceptClient) DeleteOneID(id int) *CourseConceptDeleteOne {
	builder := c.Delete().Where(courseconcept.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CourseConceptDeleteOne{builder}
}

// Query returns a query builder for CourseConcept.
func (c *CourseConceptClient) Query() *CourseConceptQuery {
	return &CourseConceptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCourseConcept},
		inters: c.Interceptors(),
	}
}

// Get returns a CourseConcept entity by its id.
func (c *CourseConceptClient) Get(ctx context.Context, id int) (*CourseConcept, error) {
	return c.Query().Where(courseconcept.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CourseConceptClient) GetX(ctx context.Context, id int) *CourseConcept {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CourseConceptClient) Hooks() []Hook {
	return c.hooks.CourseConcept
}

// Interceptors returns the client interceptors.
func (c *CourseConceptClient) Interceptors() []Interceptor {
	return c.inters.CourseConcept
}

func (c *CourseConceptClient) mutate(ctx context.Context, m *CourseConceptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CourseConceptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CourseConceptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CourseConceptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CourseConceptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CourseConcept mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// QuestionBankEntryClient is a client for the QuestionBankEntry schema.
type QuestionBankEntryClient struct {
	config
}

// NewQuestionBankEntryClient returns a client for the QuestionBankEntry from the given config.
func NewQuestionBankEntryClient(c config) *QuestionBankEntryClient {
	return &QuestionBankEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `questionbankentry.Hooks(f(g(h())))`.
func (c *QuestionBankEntryClient) Use(hooks ...Hook) {
	c.hooks.QuestionBankEntry = append(c.hooks.QuestionBankEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `questionbankentry.Intercept(f(g(h())))`.
func (c *QuestionBankEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuestionBankEntry = append(c.inters.QuestionBankEntry, interceptors...)
}

// Create returns a builder for creating a QuestionBankEntry entity.
func (c *QuestionBankEntryClient) Create() *QuestionBankEntryCreate {
	mutation := newQuestionBankEntryMutation(c.config, OpCreate)
	return &QuestionBankEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuestionBankEntry entities.
func (c *QuestionBankEntryClient) CreateBulk(builders ...*QuestionBankEntryCreate) *QuestionBankEntryCreateBulk {
	return &QuestionBankEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionBankEntryClient) MapCreateBulk(slice any, setFunc func(*QuestionBankEntryCreate, int)) *QuestionBankEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionBankEntryCreateBulk{err: fmt.Errorf("calling to QuestionBankEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionBankEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionBankEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuestionBankEntry.
func (c *QuestionBankEntryClient) Update() *QuestionBankEntryUpdate {
	mutation := newQuestionBankEntryMutation(c.config, OpUpdate)
	return &QuestionBankEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionBankEntryClient) UpdateOne(_m *QuestionBankEntry) *QuestionBankEntryUpdateOne {
	mutation := newQuestionBankEntryMutation(c.config, OpUpdateOne, withQuestionBankEntry(_m))
	return &QuestionBankEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionBankEntryClient) UpdateOneID(id string) *QuestionBankEntryUpdateOne {
	mutation := newQuestionBankEntryMutation(c.config, OpUpdateOne, withQuestionBankEntryID(id))
	return &QuestionBankEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuestionBankEntry.
func (c *QuestionBankEntryClient) Delete() *QuestionBankEntryDelete {
	mutation := newQuestionBankEntryMutation(c.config, OpDelete)
	return &QuestionBankEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionBankEntryClient) DeleteOne(_m *QuestionBankEntry) *QuestionBankEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionBankEntryClient) DeleteOneID(id string) *QuestionBankEntryDeleteOne {
	builder := c.Delete().Where(questionbankentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionBankEntryDeleteOne{builder}
}

// Query returns a query builder for QuestionBankEntry.
func (c *QuestionBankEntryClient) Query() *QuestionBankEntryQuery {
	return &QuestionBankEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestionBankEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a QuestionBankEntry entity by its id.
func (c *QuestionBankEntryClient) Get(ctx context.Context, id string) (*QuestionBankEntry, error) {
	return c.Query().Where(questionbankentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionBankEntryClient) GetX(ctx context.Context, id string) *QuestionBankEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuestionBankEntryClient) Hooks() []Hook {
	return c.hooks.QuestionBankEntry
}

// Interceptors returns the client interceptors.
func (c *QuestionBankEntryClient) Interceptors() []Interceptor {
	return c.inters.QuestionBankEntry
}

func (c *QuestionBankEntryClient) mutate(ctx context.Context, m *QuestionBankEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionBankEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionBankEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionBankEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionBankEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuestionBankEntry mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnswerEvent, Concept, ConceptGroup, ConceptProgress, CourseConcept,
		LLMRequestEvent, QuestionBankEntry []ent.Hook
	}
	inters struct {
		AnswerEvent, Concept, ConceptGroup, ConceptProgress, CourseConcept,
		LLMRequestEvent, QuestionBankEntry []ent.Interceptor
	}
)
