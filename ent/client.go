// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/skiftkoll/skiftkoll/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/skiftkoll/skiftkoll/ent/captureimage"
	"github.com/skiftkoll/skiftkoll/ent/capturesession"
	"github.com/skiftkoll/skiftkoll/ent/daysnapshot"
	"github.com/skiftkoll/skiftkoll/ent/scheduleevent"
	"github.com/skiftkoll/skiftkoll/ent/schedulenotification"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CaptureImage is the client for interacting with the CaptureImage builders.
	CaptureImage *CaptureImageClient
	// CaptureSession is the client for interacting with the CaptureSession builders.
	CaptureSession *CaptureSessionClient
	// DaySnapshot is the client for interacting with the DaySnapshot builders.
	DaySnapshot *DaySnapshotClient
	// ScheduleEvent is the client for interacting with the ScheduleEvent builders.
	ScheduleEvent *ScheduleEventClient
	// ScheduleNotification is the client for interacting with the ScheduleNotification builders.
	ScheduleNotification *ScheduleNotificationClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CaptureImage = NewCaptureImageClient(c.config)
	c.CaptureSession = NewCaptureSessionClient(c.config)
	c.DaySnapshot = NewDaySnapshotClient(c.config)
	c.ScheduleEvent = NewScheduleEventClient(c.config)
	c.ScheduleNotification = NewScheduleNotificationClient(c.config)
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
		ctx:                  ctx,
		config:               cfg,
		CaptureImage:         NewCaptureImageClient(cfg),
		CaptureSession:       NewCaptureSessionClient(cfg),
		DaySnapshot:          NewDaySnapshotClient(cfg),
		ScheduleEvent:        NewScheduleEventClient(cfg),
		ScheduleNotification: NewScheduleNotificationClient(cfg),
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
		ctx:                  ctx,
		config:               cfg,
		CaptureImage:         NewCaptureImageClient(cfg),
		CaptureSession:       NewCaptureSessionClient(cfg),
		DaySnapshot:          NewDaySnapshotClient(cfg),
		ScheduleEvent:        NewScheduleEventClient(cfg),
		ScheduleNotification: NewScheduleNotificationClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CaptureImage.
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
	c.CaptureImage.Use(hooks...)
	c.CaptureSession.Use(hooks...)
	c.DaySnapshot.Use(hooks...)
	c.ScheduleEvent.Use(hooks...)
	c.ScheduleNotification.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CaptureImage.Intercept(interceptors...)
	c.CaptureSession.Intercept(interceptors...)
	c.DaySnapshot.Intercept(interceptors...)
	c.ScheduleEvent.Intercept(interceptors...)
	c.ScheduleNotification.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CaptureImageMutation:
		return c.CaptureImage.mutate(ctx, m)
	case *CaptureSessionMutation:
		return c.CaptureSession.mutate(ctx, m)
	case *DaySnapshotMutation:
		return c.DaySnapshot.mutate(ctx, m)
	case *ScheduleEventMutation:
		return c.ScheduleEvent.mutate(ctx, m)
	case *ScheduleNotificationMutation:
		return c.ScheduleNotification.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CaptureImageClient is a client for the CaptureImage schema.
type CaptureImageClient struct {
	config
}

// NewCaptureImageClient returns a client for the CaptureImage from the given config.
func NewCaptureImageClient(c config) *CaptureImageClient {
	return &CaptureImageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `captureimage.Hooks(f(g(h())))`.
func (c *CaptureImageClient) Use(hooks ...Hook) {
	c.hooks.CaptureImage = append(c.hooks.CaptureImage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `captureimage.Intercept(f(g(h())))`.
func (c *CaptureImageClient) Intercept(interceptors ...Interceptor) {
	c.inters.CaptureImage = append(c.inters.CaptureImage, interceptors...)
}

// Create returns a builder for creating a CaptureImage entity.
func (c *CaptureImageClient) Create() *CaptureImageCreate {
	mutation := newCaptureImageMutation(c.config, OpCreate)
	return &CaptureImageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CaptureImage entities.
func (c *CaptureImageClient) CreateBulk(builders ...*CaptureImageCreate) *CaptureImageCreateBulk {
	return &CaptureImageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CaptureImageClient) MapCreateBulk(slice any, setFunc func(*CaptureImageCreate, int)) *CaptureImageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CaptureImageCreateBulk{err: fmt.Errorf("calling to CaptureImageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CaptureImageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CaptureImageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CaptureImage.
func (c *CaptureImageClient) Update() *CaptureImageUpdate {
	mutation := newCaptureImageMutation(c.config, OpUpdate)
	return &CaptureImageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CaptureImageClient) UpdateOne(_m *CaptureImage) *CaptureImageUpdateOne {
	mutation := newCaptureImageMutation(c.config, OpUpdateOne, withCaptureImage(_m))
	return &CaptureImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CaptureImageClient) UpdateOneID(id string) *CaptureImageUpdateOne {
	mutation := newCaptureImageMutation(c.config, OpUpdateOne, withCaptureImageID(id))
	return &CaptureImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CaptureImage.
func (c *CaptureImageClient) Delete() *CaptureImageDelete {
	mutation := newCaptureImageMutation(c.config, OpDelete)
	return &CaptureImageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CaptureImageClient) DeleteOne(_m *CaptureImage) *CaptureImageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CaptureImageClient) DeleteOneID(id string) *CaptureImageDeleteOne {
	builder := c.Delete().Where(captureimage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CaptureImageDeleteOne{builder}
}

// Query returns a query builder for CaptureImage.
func (c *CaptureImageClient) Query() *CaptureImageQuery {
	return &CaptureImageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCaptureImage},
		inters: c.Interceptors(),
	}
}

// Get returns a CaptureImage entity by its id.
func (c *CaptureImageClient) Get(ctx context.Context, id string) (*CaptureImage, error) {
	return c.Query().Where(captureimage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CaptureImageClient) GetX(ctx context.Context, id string) *CaptureImage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a CaptureImage.
func (c *CaptureImageClient) QuerySession(_m *CaptureImage) *CaptureSessionQuery {
	query := (&CaptureSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(captureimage.Table, captureimage.FieldID, id),
			sqlgraph.To(capturesession.Table, capturesession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, captureimage.SessionTable, captureimage.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CaptureImageClient) Hooks() []Hook {
	return c.hooks.CaptureImage
}

// Interceptors returns the client interceptors.
func (c *CaptureImageClient) Interceptors() []Interceptor {
	return c.inters.CaptureImage
}

func (c *CaptureImageClient) mutate(ctx context.Context, m *CaptureImageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CaptureImageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CaptureImageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CaptureImageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CaptureImageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CaptureImage mutation op: %q", m.Op())
	}
}

// CaptureSessionClient is a client for the CaptureSession schema.
type CaptureSessionClient struct {
	config
}

// NewCaptureSessionClient returns a client for the CaptureSession from the given config.
func NewCaptureSessionClient(c config) *CaptureSessionClient {
	return &CaptureSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `capturesession.Hooks(f(g(h())))`.
func (c *CaptureSessionClient) Use(hooks ...Hook) {
	c.hooks.CaptureSession = append(c.hooks.CaptureSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `capturesession.Intercept(f(g(h())))`.
func (c *CaptureSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.CaptureSession = append(c.inters.CaptureSession, interceptors...)
}

// Create returns a builder for creating a CaptureSession entity.
func (c *CaptureSessionClient) Create() *CaptureSessionCreate {
	mutation := newCaptureSessionMutation(c.config, OpCreate)
	return &CaptureSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CaptureSession entities.
func (c *CaptureSessionClient) CreateBulk(builders ...*CaptureSessionCreate) *CaptureSessionCreateBulk {
	return &CaptureSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CaptureSessionClient) MapCreateBulk(slice any, setFunc func(*CaptureSessionCreate, int)) *CaptureSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CaptureSessionCreateBulk{err: fmt.Errorf("calling to CaptureSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CaptureSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CaptureSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CaptureSession.
func (c *CaptureSessionClient) Update() *CaptureSessionUpdate {
	mutation := newCaptureSessionMutation(c.config, OpUpdate)
	return &CaptureSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CaptureSessionClient) UpdateOne(_m *CaptureSession) *CaptureSessionUpdateOne {
	mutation := newCaptureSessionMutation(c.config, OpUpdateOne, withCaptureSession(_m))
	return &CaptureSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CaptureSessionClient) UpdateOneID(id string) *CaptureSessionUpdateOne {
	mutation := newCaptureSessionMutation(c.config, OpUpdateOne, withCaptureSessionID(id))
	return &CaptureSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CaptureSession.
func (c *CaptureSessionClient) Delete() *CaptureSessionDelete {
	mutation := newCaptureSessionMutation(c.config, OpDelete)
	return &CaptureSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CaptureSessionClient) DeleteOne(_m *CaptureSession) *CaptureSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CaptureSessionClient) DeleteOneID(id string) *CaptureSessionDeleteOne {
	builder := c.Delete().Where(capturesession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CaptureSessionDeleteOne{builder}
}

// Query returns a query builder for CaptureSession.
func (c *CaptureSessionClient) Query() *CaptureSessionQuery {
	return &CaptureSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCaptureSession},
		inters: c.Interceptors(),
	}
}

// Get returns a CaptureSession entity by its id.
func (c *CaptureSessionClient) Get(ctx context.Context, id string) (*CaptureSession, error) {
	return c.Query().Where(capturesession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CaptureSessionClient) GetX(ctx context.Context, id string) *CaptureSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryImages queries the images edge of a CaptureSession.
func (c *CaptureSessionClient) QueryImages(_m *CaptureSession) *CaptureImageQuery {
	query := (&CaptureImageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(capturesession.Table, capturesession.FieldID, id),
			sqlgraph.To(captureimage.Table, captureimage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, capturesession.ImagesTable, capturesession.ImagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CaptureSessionClient) Hooks() []Hook {
	return c.hooks.CaptureSession
}

// Interceptors returns the client interceptors.
func (c *CaptureSessionClient) Interceptors() []Interceptor {
	return c.inters.CaptureSession
}

func (c *CaptureSessionClient) mutate(ctx context.Context, m *CaptureSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CaptureSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CaptureSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CaptureSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CaptureSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CaptureSession mutation op: %q", m.Op())
	}
}

// DaySnapshotClient is a client for the DaySnapshot schema.
type DaySnapshotClient struct {
	config
}

// NewDaySnapshotClient returns a client for the DaySnapshot from the given config.
func NewDaySnapshotClient(c config) *DaySnapshotClient {
	return &DaySnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `daysnapshot.Hooks(f(g(h())))`.
func (c *DaySnapshotClient) Use(hooks ...Hook) {
	c.hooks.DaySnapshot = append(c.hooks.DaySnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `daysnapshot.Intercept(f(g(h())))`.
func (c *DaySnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.DaySnapshot = append(c.inters.DaySnapshot, interceptors...)
}

// Create returns a builder for creating a DaySnapshot entity.
func (c *DaySnapshotClient) Create() *DaySnapshotCreate {
	mutation := newDaySnapshotMutation(c.config, OpCreate)
	return &DaySnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DaySnapshot entities.
func (c *DaySnapshotClient) CreateBulk(builders ...*DaySnapshotCreate) *DaySnapshotCreateBulk {
	return &DaySnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DaySnapshotClient) MapCreateBulk(slice any, setFunc func(*DaySnapshotCreate, int)) *DaySnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DaySnapshotCreateBulk{err: fmt.Errorf("calling to DaySnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DaySnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DaySnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DaySnapshot.
func (c *DaySnapshotClient) Update() *DaySnapshotUpdate {
	mutation := newDaySnapshotMutation(c.config, OpUpdate)
	return &DaySnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DaySnapshotClient) UpdateOne(_m *DaySnapshot) *DaySnapshotUpdateOne {
	mutation := newDaySnapshotMutation(c.config, OpUpdateOne, withDaySnapshot(_m))
	return &DaySnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DaySnapshotClient) UpdateOneID(id int) *DaySnapshotUpdateOne {
	mutation := newDaySnapshotMutation(c.config, OpUpdateOne, withDaySnapshotID(id))
	return &DaySnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DaySnapshot.
func (c *DaySnapshotClient) Delete() *DaySnapshotDelete {
	mutation := newDaySnapshotMutation(c.config, OpDelete)
	return &DaySnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DaySnapshotClient) DeleteOne(_m *DaySnapshot) *DaySnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DaySnapshotClient) DeleteOneID(id int) *DaySnapshotDeleteOne {
	builder := c.Delete().Where(daysnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DaySnapshotDeleteOne{builder}
}

// Query returns a query builder for DaySnapshot.
func (c *DaySnapshotClient) Query() *DaySnapshotQuery {
	return &DaySnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDaySnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a DaySnapshot entity by its id.
func (c *DaySnapshotClient) Get(ctx context.Context, id int) (*DaySnapshot, error) {
	return c.Query().Where(daysnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DaySnapshotClient) GetX(ctx context.Context, id int) *DaySnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DaySnapshotClient) Hooks() []Hook {
	return c.hooks.DaySnapshot
}

// Interceptors returns the client interceptors.
func (c *DaySnapshotClient) Interceptors() []Interceptor {
	return c.inters.DaySnapshot
}

func (c *DaySnapshotClient) mutate(ctx context.Context, m *DaySnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DaySnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DaySnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DaySnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DaySnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DaySnapshot mutation op: %q", m.Op())
	}
}

// ScheduleEventClient is a client for the ScheduleEvent schema.
type ScheduleEventClient struct {
	config
}

// NewScheduleEventClient returns a client for the ScheduleEvent from the given config.
func NewScheduleEventClient(c config) *ScheduleEventClient {
	return &ScheduleEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scheduleevent.Hooks(f(g(h())))`.
func (c *ScheduleEventClient) Use(hooks ...Hook) {
	c.hooks.ScheduleEvent = append(c.hooks.ScheduleEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scheduleevent.Intercept(f(g(h())))`.
func (c *ScheduleEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScheduleEvent = append(c.inters.ScheduleEvent, interceptors...)
}

// Create returns a builder for creating a ScheduleEvent entity.
func (c *ScheduleEventClient) Create() *ScheduleEventCreate {
	mutation := newScheduleEventMutation(c.config, OpCreate)
	return &ScheduleEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScheduleEvent entities.
func (c *ScheduleEventClient) CreateBulk(builders ...*ScheduleEventCreate) *ScheduleEventCreateBulk {
	return &ScheduleEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScheduleEventClient) MapCreateBulk(slice any, setFunc func(*ScheduleEventCreate, int)) *ScheduleEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScheduleEventCreateBulk{err: fmt.Errorf("calling to ScheduleEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScheduleEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScheduleEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScheduleEvent.
func (c *ScheduleEventClient) Update() *ScheduleEventUpdate {
	mutation := newScheduleEventMutation(c.config, OpUpdate)
	return &ScheduleEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScheduleEventClient) UpdateOne(_m *ScheduleEvent) *ScheduleEventUpdateOne {
	mutation := newScheduleEventMutation(c.config, OpUpdateOne, withScheduleEvent(_m))
	return &ScheduleEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScheduleEventClient) UpdateOneID(id string) *ScheduleEventUpdateOne {
	mutation := newScheduleEventMutation(c.config, OpUpdateOne, withScheduleEventID(id))
	return &ScheduleEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScheduleEvent.
func (c *ScheduleEventClient) Delete() *ScheduleEventDelete {
	mutation := newScheduleEventMutation(c.config, OpDelete)
	return &ScheduleEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScheduleEventClient) DeleteOne(_m *ScheduleEvent) *ScheduleEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScheduleEventClient) DeleteOneID(id string) *ScheduleEventDeleteOne {
	builder := c.Delete().Where(scheduleevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScheduleEventDeleteOne{builder}
}

// Query returns a query builder for ScheduleEvent.
func (c *ScheduleEventClient) Query() *ScheduleEventQuery {
	return &ScheduleEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScheduleEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ScheduleEvent entity by its id.
func (c *ScheduleEventClient) Get(ctx context.Context, id string) (*ScheduleEvent, error) {
	return c.Query().Where(scheduleevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScheduleEventClient) GetX(ctx context.Context, id string) *ScheduleEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScheduleEventClient) Hooks() []Hook {
	return c.hooks.ScheduleEvent
}

// Interceptors returns the client interceptors.
func (c *ScheduleEventClient) Interceptors() []Interceptor {
	return c.inters.ScheduleEvent
}

func (c *ScheduleEventClient) mutate(ctx context.Context, m *ScheduleEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScheduleEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScheduleEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScheduleEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScheduleEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScheduleEvent mutation op: %q", m.Op())
	}
}

// ScheduleNotificationClient is a client for the ScheduleNotification schema.
type ScheduleNotificationClient struct {
	config
}

// NewScheduleNotificationClient returns a client for the ScheduleNotification from the given config.
func NewScheduleNotificationClient(c config) *ScheduleNotificationClient {
	return &ScheduleNotificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `schedulenotification.Hooks(f(g(h())))`.
func (c *ScheduleNotificationClient) Use(hooks ...Hook) {
	c.hooks.ScheduleNotification = append(c.hooks.ScheduleNotification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `schedulenotification.Intercept(f(g(h())))`.
func (c *ScheduleNotificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScheduleNotification = append(c.inters.ScheduleNotification, interceptors...)
}

// Create returns a builder for creating a ScheduleNotification entity.
func (c *ScheduleNotificationClient) Create() *ScheduleNotificationCreate {
	mutation := newScheduleNotificationMutation(c.config, OpCreate)
	return &ScheduleNotificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScheduleNotification entities.
func (c *ScheduleNotificationClient) CreateBulk(builders ...*ScheduleNotificationCreate) *ScheduleNotificationCreateBulk {
	return &ScheduleNotificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScheduleNotificationClient) MapCreateBulk(slice any, setFunc func(*ScheduleNotificationCreate, int)) *ScheduleNotificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScheduleNotificationCreateBulk{err: fmt.Errorf("calling to ScheduleNotificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScheduleNotificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScheduleNotificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScheduleNotification.
func (c *ScheduleNotificationClient) Update() *ScheduleNotificationUpdate {
	mutation := newScheduleNotificationMutation(c.config, OpUpdate)
	return &ScheduleNotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScheduleNotificationClient) UpdateOne(_m *ScheduleNotification) *ScheduleNotificationUpdateOne {
	mutation := newScheduleNotificationMutation(c.config, OpUpdateOne, withScheduleNotification(_m))
	return &ScheduleNotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScheduleNotificationClient) UpdateOneID(id string) *ScheduleNotificationUpdateOne {
	mutation := newScheduleNotificationMutation(c.config, OpUpdateOne, withScheduleNotificationID(id))
	return &ScheduleNotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScheduleNotification.
func (c *ScheduleNotificationClient) Delete() *ScheduleNotificationDelete {
	mutation := newScheduleNotificationMutation(c.config, OpDelete)
	return &ScheduleNotificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScheduleNotificationClient) DeleteOne(_m *ScheduleNotification) *ScheduleNotificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScheduleNotificationClient) DeleteOneID(id string) *ScheduleNotificationDeleteOne {
	builder := c.Delete().Where(schedulenotification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScheduleNotificationDeleteOne{builder}
}

// Query returns a query builder for ScheduleNotification.
func (c *ScheduleNotificationClient) Query() *ScheduleNotificationQuery {
	return &ScheduleNotificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScheduleNotification},
		inters: c.Interceptors(),
	}
}

// Get returns a ScheduleNotification entity by its id.
func (c *ScheduleNotificationClient) Get(ctx context.Context, id string) (*ScheduleNotification, error) {
	return c.Query().Where(schedulenotification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScheduleNotificationClient) GetX(ctx context.Context, id string) *ScheduleNotification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScheduleNotificationClient) Hooks() []Hook {
	return c.hooks.ScheduleNotification
}

// Interceptors returns the client interceptors.
func (c *ScheduleNotificationClient) Interceptors() []Interceptor {
	return c.inters.ScheduleNotification
}

func (c *ScheduleNotificationClient) mutate(ctx context.Context, m *ScheduleNotificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScheduleNotificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScheduleNotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScheduleNotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScheduleNotificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScheduleNotification mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CaptureImage, CaptureSession, DaySnapshot, ScheduleEvent,
		ScheduleNotification []ent.Hook
	}
	inters struct {
		CaptureImage, CaptureSession, DaySnapshot, ScheduleEvent,
		ScheduleNotification []ent.Interceptor
	}
)
