// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/avyukth/medsim/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/avyukth/medsim/ent/caseevent"
	"github.com/avyukth/medsim/ent/diagnosisevent"
	"github.com/avyukth/medsim/ent/examevent"
	"github.com/avyukth/medsim/ent/hintevent"
	"github.com/avyukth/medsim/ent/llmrequestevent"
	"github.com/avyukth/medsim/ent/questionevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CaseEvent is the client for interacting with the CaseEvent builders.
	CaseEvent *CaseEventClient
	// DiagnosisEvent is the client for interacting with the DiagnosisEvent builders.
	DiagnosisEvent *DiagnosisEventClient
	// ExamEvent is the client for interacting with the ExamEvent builders.
	ExamEvent *ExamEventClient
	// HintEvent is the client for interacting with the HintEvent builders.
	HintEvent *HintEventClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// QuestionEvent is the client for interacting with the QuestionEvent builders.
	QuestionEvent *QuestionEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CaseEvent = NewCaseEventClient(c.config)
	c.DiagnosisEvent = NewDiagnosisEventClient(c.config)
	c.ExamEvent = NewExamEventClient(c.config)
	c.HintEvent = NewHintEventClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.QuestionEvent = NewQuestionEventClient(c.config)
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
		CaseEvent:       NewCaseEventClient(cfg),
		DiagnosisEvent:  NewDiagnosisEventClient(cfg),
		ExamEvent:       NewExamEventClient(cfg),
		HintEvent:       NewHintEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		QuestionEvent:   NewQuestionEventClient(cfg),
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
		CaseEvent:       NewCaseEventClient(cfg),
		DiagnosisEvent:  NewDiagnosisEventClient(cfg),
		ExamEvent:       NewExamEventClient(cfg),
		HintEvent:       NewHintEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		QuestionEvent:   NewQuestionEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CaseEvent.
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
		c.CaseEvent, c.DiagnosisEvent, c.ExamEvent, c.HintEvent, c.LLMRequestEvent,
		c.QuestionEvent,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.CaseEvent, c.DiagnosisEvent, c.ExamEvent, c.HintEvent, c.LLMRequestEvent,
		c.QuestionEvent,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CaseEventMutation:
		return c.CaseEvent.mutate(ctx, m)
	case *DiagnosisEventMutation:
		return c.DiagnosisEvent.mutate(ctx, m)
	case *ExamEventMutation:
		return c.ExamEvent.mutate(ctx, m)
	case *HintEventMutation:
		return c.HintEvent.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *QuestionEventMutation:
		return c.QuestionEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CaseEventClient is a client for the CaseEvent schema.
type CaseEventClient struct {
	config
}

// NewCaseEventClient returns a client for the CaseEvent from the given config.
func NewCaseEventClient(c config) *CaseEventClient {
	return &CaseEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `caseevent.Hooks(f(g(h())))`.
func (c *CaseEventClient) Use(hooks ...Hook) {
	c.hooks.CaseEvent = append(c.hooks.CaseEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `caseevent.Intercept(f(g(h())))`.
func (c *CaseEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.CaseEvent = append(c.inters.CaseEvent, interceptors...)
}

// Create returns a builder for creating a CaseEvent entity.
func (c *CaseEventClient) Create() *CaseEventCreate {
	mutation := newCaseEventMutation(c.config, OpCreate)
	return &CaseEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CaseEvent entities.
func (c *CaseEventClient) CreateBulk(builders ...*CaseEventCreate) *CaseEventCreateBulk {
	return &CaseEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CaseEventClient) MapCreateBulk(slice any, setFunc func(*CaseEventCreate, int)) *CaseEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CaseEventCreateBulk{err: fmt.Errorf("calling to CaseEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CaseEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CaseEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CaseEvent.
func (c *CaseEventClient) Update() *CaseEventUpdate {
	mutation := newCaseEventMutation(c.config, OpUpdate)
	return &CaseEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CaseEventClient) UpdateOne(_m *CaseEvent) *CaseEventUpdateOne {
	mutation := newCaseEventMutation(c.config, OpUpdateOne, withCaseEvent(_m))
	return &CaseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CaseEventClient) UpdateOneID(id int) *CaseEventUpdateOne {
	mutation := newCaseEventMutation(c.config, OpUpdateOne, withCaseEventID(id))
	return &CaseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CaseEvent.
func (c *CaseEventClient) Delete() *CaseEventDelete {
	mutation := newCaseEventMutation(c.config, OpDelete)
	return &CaseEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CaseEventClient) DeleteOne(_m *CaseEvent) *CaseEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CaseEventClient) DeleteOneID(id int) *CaseEventDeleteOne {
	builder := c.Delete().Where(caseevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CaseEventDeleteOne{builder}
}

// Query returns a query builder for CaseEvent.
func (c *CaseEventClient) Query() *CaseEventQuery {
	return &CaseEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCaseEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a CaseEvent entity by its id.
func (c *CaseEventClient) Get(ctx context.Context, id int) (*CaseEvent, error) {
	return c.Query().Where(caseevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CaseEventClient) GetX(ctx context.Context, id int) *CaseEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CaseEventClient) Hooks() []Hook {
	return c.hooks.CaseEvent
}

// Interceptors returns the client interceptors.
func (c *CaseEventClient) Interceptors() []Interceptor {
	return c.inters.CaseEvent
}

func (c *CaseEventClient) mutate(ctx context.Context, m *CaseEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CaseEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CaseEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CaseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CaseEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CaseEvent mutation op: %q", m.Op())
	}
}

// DiagnosisEventClient is a client for the DiagnosisEvent schema.
type DiagnosisEventClient struct {
	config
}

// NewDiagnosisEventClient returns a client for the DiagnosisEvent from the given config.
func NewDiagnosisEventClient(c config) *DiagnosisEventClient {
	return &DiagnosisEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `diagnosisevent.Hooks(f(g(h())))`.
func (c *DiagnosisEventClient) Use(hooks ...Hook) {
	c.hooks.DiagnosisEvent = append(c.hooks.DiagnosisEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `diagnosisevent.Intercept(f(g(h())))`.
func (c *DiagnosisEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.DiagnosisEvent = append(c.inters.DiagnosisEvent, interceptors...)
}

// Create returns a builder for creating a DiagnosisEvent entity.
func (c *DiagnosisEventClient) Create() *DiagnosisEventCreate {
	mutation := newDiagnosisEventMutation(c.config, OpCreate)
	return &DiagnosisEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DiagnosisEvent entities.
func (c *DiagnosisEventClient) CreateBulk(builders ...*DiagnosisEventCreate) *DiagnosisEventCreateBulk {
	return &DiagnosisEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DiagnosisEventClient) MapCreateBulk(slice any, setFunc func(*DiagnosisEventCreate, int)) *DiagnosisEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DiagnosisEventCreateBulk{err: fmt.Errorf("calling to DiagnosisEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DiagnosisEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DiagnosisEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DiagnosisEvent.
func (c *DiagnosisEventClient) Update() *DiagnosisEventUpdate {
	mutation := newDiagnosisEventMutation(c.config, OpUpdate)
	return &DiagnosisEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DiagnosisEventClient) UpdateOne(_m *DiagnosisEvent) *DiagnosisEventUpdateOne {
	mutation := newDiagnosisEventMutation(c.config, OpUpdateOne, withDiagnosisEvent(_m))
	return &DiagnosisEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DiagnosisEventClient) UpdateOneID(id int) *DiagnosisEventUpdateOne {
	mutation := newDiagnosisEventMutation(c.config, OpUpdateOne, withDiagnosisEventID(id))
	return &DiagnosisEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DiagnosisEvent.
func (c *DiagnosisEventClient) Delete() *DiagnosisEventDelete {
	mutation := newDiagnosisEventMutation(c.config, OpDelete)
	return &DiagnosisEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DiagnosisEventClient) DeleteOne(_m *DiagnosisEvent) *DiagnosisEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DiagnosisEventClient) DeleteOneID(id int) *DiagnosisEventDeleteOne {
	builder := c.Delete().Where(diagnosisevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DiagnosisEventDeleteOne{builder}
}

// Query returns a query builder for DiagnosisEvent.
func (c *DiagnosisEventClient) Query() *DiagnosisEventQuery {
	return &DiagnosisEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDiagnosisEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a DiagnosisEvent entity by its id.
func (c *DiagnosisEventClient) Get(ctx context.Context, id int) (*DiagnosisEvent, error) {
	return c.Query().Where(diagnosisevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DiagnosisEventClient) GetX(ctx context.Context, id int) *DiagnosisEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DiagnosisEventClient) Hooks() []Hook {
	return c.hooks.DiagnosisEvent
}

// Interceptors returns the client interceptors.
func (c *DiagnosisEventClient) Interceptors() []Interceptor {
	return c.inters.DiagnosisEvent
}

func (c *DiagnosisEventClient) mutate(ctx context.Context, m *DiagnosisEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DiagnosisEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DiagnosisEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DiagnosisEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DiagnosisEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DiagnosisEvent mutation op: %q", m.Op())
	}
}

// ExamEventClient is a client for the ExamEvent schema.
type ExamEventClient struct {
	config
}

// NewExamEventClient returns a client for the ExamEvent from the given config.
func NewExamEventClient(c config) *ExamEventClient {
	return &ExamEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `examevent.Hooks(f(g(h())))`.
func (c *ExamEventClient) Use(hooks ...Hook) {
	c.hooks.ExamEvent = append(c.hooks.ExamEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `examevent.Intercept(f(g(h())))`.
func (c *ExamEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExamEvent = append(c.inters.ExamEvent, interceptors...)
}

// Create returns a builder for creating a ExamEvent entity.
func (c *ExamEventClient) Create() *ExamEventCreate {
	mutation := newExamEventMutation(c.config, OpCreate)
	return &ExamEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExamEvent entities.
func (c *ExamEventClient) CreateBulk(builders ...*ExamEventCreate) *ExamEventCreateBulk {
	return &ExamEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExamEventClient) MapCreateBulk(slice any, setFunc func(*ExamEventCreate, int)) *ExamEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExamEventCreateBulk{err: fmt.Errorf("calling to ExamEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExamEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExamEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExamEvent.
func (c *ExamEventClient) Update() *ExamEventUpdate {
	mutation := newExamEventMutation(c.config, OpUpdate)
	return &ExamEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExamEventClient) UpdateOne(_m *ExamEvent) *ExamEventUpdateOne {
	mutation := newExamEventMutation(c.config, OpUpdateOne, withExamEvent(_m))
	return &ExamEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExamEventClient) UpdateOneID(id int) *ExamEventUpdateOne {
	mutation := newExamEventMutation(c.config, OpUpdateOne, withExamEventID(id))
	return &ExamEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExamEvent.
func (c *ExamEventClient) Delete() *ExamEventDelete {
	mutation := newExamEventMutation(c.config, OpDelete)
	return &ExamEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExamEventClient) DeleteOne(_m *ExamEvent) *ExamEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExamEventClient) DeleteOneID(id int) *ExamEventDeleteOne {
	builder := c.Delete().Where(examevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExamEventDeleteOne{builder}
}

// Query returns a query builder for ExamEvent.
func (c *ExamEventClient) Query() *ExamEventQuery {
	return &ExamEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExamEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ExamEvent entity by its id.
func (c *ExamEventClient) Get(ctx context.Context, id int) (*ExamEvent, error) {
	return c.Query().Where(examevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExamEventClient) GetX(ctx context.Context, id int) *ExamEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExamEventClient) Hooks() []Hook {
	return c.hooks.ExamEvent
}

// Interceptors returns the client interceptors.
func (c *ExamEventClient) Interceptors() []Interceptor {
	return c.inters.ExamEvent
}

func (c *ExamEventClient) mutate(ctx context.Context, m *ExamEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExamEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExamEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExamEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExamEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExamEvent mutation op: %q", m.Op())
	}
}

// HintEventClient is a client for the HintEvent schema.
type HintEventClient struct {
	config
}

// NewHintEventClient returns a client for the HintEvent from the given config.
func NewHintEventClient(c config) *HintEventClient {
	return &HintEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `hintevent.Hooks(f(g(h())))`.
func (c *HintEventClient) Use(hooks ...Hook) {
	c.hooks.HintEvent = append(c.hooks.HintEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `hintevent.Intercept(f(g(h())))`.
func (c *HintEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.HintEvent = append(c.inters.HintEvent, interceptors...)
}

// Create returns a builder for creating a HintEvent entity.
func (c *HintEventClient) Create() *HintEventCreate {
	mutation := newHintEventMutation(c.config, OpCreate)
	return &HintEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HintEvent entities.
func (c *HintEventClient) CreateBulk(builders ...*HintEventCreate) *HintEventCreateBulk {
	return &HintEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HintEventClient) MapCreateBulk(slice any, setFunc func(*HintEventCreate, int)) *HintEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HintEventCreateBulk{err: fmt.Errorf("calling to HintEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HintEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HintEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HintEvent.
func (c *HintEventClient) Update() *HintEventUpdate {
	mutation := newHintEventMutation(c.config, OpUpdate)
	return &HintEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HintEventClient) UpdateOne(_m *HintEvent) *HintEventUpdateOne {
	mutation := newHintEventMutation(c.config, OpUpdateOne, withHintEvent(_m))
	return &HintEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HintEventClient) UpdateOneID(id int) *HintEventUpdateOne {
	mutation := newHintEventMutation(c.config, OpUpdateOne, withHintEventID(id))
	return &HintEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HintEvent.
func (c *HintEventClient) Delete() *HintEventDelete {
	mutation := newHintEventMutation(c.config, OpDelete)
	return &HintEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HintEventClient) DeleteOne(_m *HintEvent) *HintEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HintEventClient) DeleteOneID(id int) *HintEventDeleteOne {
	builder := c.Delete().Where(hintevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HintEventDeleteOne{builder}
}

// Query returns a query builder for HintEvent.
func (c *HintEventClient) Query() *HintEventQuery {
	return &HintEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHintEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a HintEvent entity by its id.
func (c *HintEventClient) Get(ctx context.Context, id int) (*HintEvent, error) {
	return c.Query().Where(hintevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HintEventClient) GetX(ctx context.Context, id int) *HintEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *HintEventClient) Hooks() []Hook {
	return c.hooks.HintEvent
}

// Interceptors returns the client interceptors.
func (c *HintEventClient) Interceptors() []Interceptor {
	return c.inters.HintEvent
}

func (c *HintEventClient) mutate(ctx context.Context, m *HintEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HintEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HintEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HintEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HintEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown HintEvent mutation op: %q", m.Op())
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

// QuestionEventClient is a client for the QuestionEvent schema.
type QuestionEventClient struct {
	config
}

// NewQuestionEventClient returns a client for the QuestionEvent from the given config.
func NewQuestionEventClient(c config) *QuestionEventClient {
	return &QuestionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `questionevent.Hooks(f(g(h())))`.
func (c *QuestionEventClient) Use(hooks ...Hook) {
	c.hooks.QuestionEvent = append(c.hooks.QuestionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `questionevent.Intercept(f(g(h())))`.
func (c *QuestionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuestionEvent = append(c.inters.QuestionEvent, interceptors...)
}

// Create returns a builder for creating a QuestionEvent entity.
func (c *QuestionEventClient) Create() *QuestionEventCreate {
	mutation := newQuestionEventMutation(c.config, OpCreate)
	return &QuestionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuestionEvent entities.
func (c *QuestionEventClient) CreateBulk(builders ...*QuestionEventCreate) *QuestionEventCreateBulk {
	return &QuestionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionEventClient) MapCreateBulk(slice any, setFunc func(*QuestionEventCreate, int)) *QuestionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionEventCreateBulk{err: fmt.Errorf("calling to QuestionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuestionEvent.
func (c *QuestionEventClient) Update() *QuestionEventUpdate {
	mutation := newQuestionEventMutation(c.config, OpUpdate)
	return &QuestionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionEventClient) UpdateOne(_m *QuestionEvent) *QuestionEventUpdateOne {
	mutation := newQuestionEventMutation(c.config, OpUpdateOne, withQuestionEvent(_m))
	return &QuestionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionEventClient) UpdateOneID(id int) *QuestionEventUpdateOne {
	mutation := newQuestionEventMutation(c.config, OpUpdateOne, withQuestionEventID(id))
	return &QuestionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuestionEvent.
func (c *QuestionEventClient) Delete() *QuestionEventDelete {
	mutation := newQuestionEventMutation(c.config, OpDelete)
	return &QuestionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionEventClient) DeleteOne(_m *QuestionEvent) *QuestionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionEventClient) DeleteOneID(id int) *QuestionEventDeleteOne {
	builder := c.Delete().Where(questionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionEventDeleteOne{builder}
}

// Query returns a query builder for QuestionEvent.
func (c *QuestionEventClient) Query() *QuestionEventQuery {
	return &QuestionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a QuestionEvent entity by its id.
func (c *QuestionEventClient) Get(ctx context.Context, id int) (*QuestionEvent, error) {
	return c.Query().Where(questionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionEventClient) GetX(ctx context.Context, id int) *QuestionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuestionEventClient) Hooks() []Hook {
	return c.hooks.QuestionEvent
}

// Interceptors returns the client interceptors.
func (c *QuestionEventClient) Interceptors() []Interceptor {
	return c.inters.QuestionEvent
}

func (c *QuestionEventClient) mutate(ctx context.Context, m *QuestionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuestionEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CaseEvent, DiagnosisEvent, ExamEvent, HintEvent, LLMRequestEvent,
		QuestionEvent []ent.Hook
	}
	inters struct {
		CaseEvent, DiagnosisEvent, ExamEvent, HintEvent, LLMRequestEvent,
		QuestionEvent []ent.Interceptor
	}
)
