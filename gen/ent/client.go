// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/patientrecord"
	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/proceduretemplate"
	"github.com/dentistnoor/DentistFriend-V2-sub000/gen/ent/profile"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// PatientRecord is the client for interacting with the PatientRecord builders.
	PatientRecord *PatientRecordClient
	// ProcedureTemplate is the client for interacting with the ProcedureTemplate builders.
	ProcedureTemplate *ProcedureTemplateClient
	// Profile is the client for interacting with the Profile builders.
	Profile *ProfileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.PatientRecord = NewPatientRecordClient(c.config)
	c.ProcedureTemplate = NewProcedureTemplateClient(c.config)
	c.Profile = NewProfileClient(c.config)
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
		PatientRecord:     NewPatientRecordClient(cfg),
		ProcedureTemplate: NewProcedureTemplateClient(cfg),
		Profile:           NewProfileClient(cfg),
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
		PatientRecord:     NewPatientRecordClient(cfg),
		ProcedureTemplate: NewProcedureTemplateClient(cfg),
		Profile:           NewProfileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		PatientRecord.
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
	c.PatientRecord.Use(hooks...)
	c.ProcedureTemplate.Use(hooks...)
	c.Profile.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.PatientRecord.Intercept(interceptors...)
	c.ProcedureTemplate.Intercept(interceptors...)
	c.Profile.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *PatientRecordMutation:
		return c.PatientRecord.mutate(ctx, m)
	case *ProcedureTemplateMutation:
		return c.ProcedureTemplate.mutate(ctx, m)
	case *ProfileMutation:
		return c.Profile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// PatientRecordClient is a client for the PatientRecord schema.
type PatientRecordClient struct {
	config
}

// NewPatientRecordClient returns a client for the PatientRecord from the given config.
func NewPatientRecordClient(c config) *PatientRecordClient {
	return &PatientRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patientrecord.Hooks(f(g(h())))`.
func (c *PatientRecordClient) Use(hooks ...Hook) {
	c.hooks.PatientRecord = append(c.hooks.PatientRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patientrecord.Intercept(f(g(h())))`.
func (c *PatientRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.PatientRecord = append(c.inters.PatientRecord, interceptors...)
}

// Create returns a builder for creating a PatientRecord entity.
func (c *PatientRecordClient) Create() *PatientRecordCreate {
	mutation := newPatientRecordMutation(c.config, OpCreate)
	return &PatientRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PatientRecord entities.
func (c *PatientRecordClient) CreateBulk(builders ...*PatientRecordCreate) *PatientRecordCreateBulk {
	return &PatientRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatientRecordClient) MapCreateBulk(slice any, setFunc func(*PatientRecordCreate, int)) *PatientRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatientRecordCreateBulk{err: fmt.Errorf("calling to PatientRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatientRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatientRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PatientRecord.
func (c *PatientRecordClient) Update() *PatientRecordUpdate {
	mutation := newPatientRecordMutation(c.config, OpUpdate)
	return &PatientRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatientRecordClient) UpdateOne(_m *PatientRecord) *PatientRecordUpdateOne {
	mutation := newPatientRecordMutation(c.config, OpUpdateOne, withPatientRecord(_m))
	return &PatientRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatientRecordClient) UpdateOneID(id uuid.UUID) *PatientRecordUpdateOne {
	mutation := newPatientRecordMutation(c.config, OpUpdateOne, withPatientRecordID(id))
	return &PatientRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PatientRecord.
func (c *PatientRecordClient) Delete() *PatientRecordDelete {
	mutation := newPatientRecordMutation(c.config, OpDelete)
	return &PatientRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatientRecordClient) DeleteOne(_m *PatientRecord) *PatientRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatientRecordClient) DeleteOneID(id uuid.UUID) *PatientRecordDeleteOne {
	builder := c.Delete().Where(patientrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatientRecordDeleteOne{builder}
}

// Query returns a query builder for PatientRecord.
func (c *PatientRecordClient) Query() *PatientRecordQuery {
	return &PatientRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatientRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a PatientRecord entity by its id.
func (c *PatientRecordClient) Get(ctx context.Context, id uuid.UUID) (*PatientRecord, error) {
	return c.Query().Where(patientrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatientRecordClient) GetX(ctx context.Context, id uuid.UUID) *PatientRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProfile queries the profile edge of a PatientRecord.
func (c *PatientRecordClient) QueryProfile(_m *PatientRecord) *ProfileQuery {
	query := (&ProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patientrecord.Table, patientrecord.FieldID, id),
			sqlgraph.To(profile.Table, profile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, patientrecord.ProfileTable, patientrecord.ProfileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PatientRecordClient) Hooks() []Hook {
	return c.hooks.PatientRecord
}

// Interceptors returns the client interceptors.
func (c *PatientRecordClient) Interceptors() []Interceptor {
	return c.inters.PatientRecord
}

func (c *PatientRecordClient) mutate(ctx context.Context, m *PatientRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatientRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatientRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatientRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatientRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PatientRecord mutation op: %q", m.Op())
	}
}

// ProcedureTemplateClient is a client for the ProcedureTemplate schema.
type ProcedureTemplateClient struct {
	config
}

// NewProcedureTemplateClient returns a client for the ProcedureTemplate from the given config.
func NewProcedureTemplateClient(c config) *ProcedureTemplateClient {
	return &ProcedureTemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `proceduretemplate.Hooks(f(g(h())))`.
func (c *ProcedureTemplateClient) Use(hooks ...Hook) {
	c.hooks.ProcedureTemplate = append(c.hooks.ProcedureTemplate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `proceduretemplate.Intercept(f(g(h())))`.
func (c *ProcedureTemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcedureTemplate = append(c.inters.ProcedureTemplate, interceptors...)
}

// Create returns a builder for creating a ProcedureTemplate entity.
func (c *ProcedureTemplateClient) Create() *ProcedureTemplateCreate {
	mutation := newProcedureTemplateMutation(c.config, OpCreate)
	return &ProcedureTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcedureTemplate entities.
func (c *ProcedureTemplateClient) CreateBulk(builders ...*ProcedureTemplateCreate) *ProcedureTemplateCreateBulk {
	return &ProcedureTemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcedureTemplateClient) MapCreateBulk(slice any, setFunc func(*ProcedureTemplateCreate, int)) *ProcedureTemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcedureTemplateCreateBulk{err: fmt.Errorf("calling to ProcedureTemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcedureTemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcedureTemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcedureTemplate.
func (c *ProcedureTemplateClient) Update() *ProcedureTemplateUpdate {
	mutation := newProcedureTemplateMutation(c.config, OpUpdate)
	return &ProcedureTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcedureTemplateClient) UpdateOne(_m *ProcedureTemplate) *ProcedureTemplateUpdateOne {
	mutation := newProcedureTemplateMutation(c.config, OpUpdateOne, withProcedureTemplate(_m))
	return &ProcedureTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcedureTemplateClient) UpdateOneID(id uuid.UUID) *ProcedureTemplateUpdateOne {
	mutation := newProcedureTemplateMutation(c.config, OpUpdateOne, withProcedureTemplateID(id))
	return &ProcedureTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcedureTemplate.
func (c *ProcedureTemplateClient) Delete() *ProcedureTemplateDelete {
	mutation := newProcedureTemplateMutation(c.config, OpDelete)
	return &ProcedureTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcedureTemplateClient) DeleteOne(_m *ProcedureTemplate) *ProcedureTemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcedureTemplateClient) DeleteOneID(id uuid.UUID) *ProcedureTemplateDeleteOne {
	builder := c.Delete().Where(proceduretemplate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcedureTemplateDeleteOne{builder}
}

// Query returns a query builder for ProcedureTemplate.
func (c *ProcedureTemplateClient) Query() *ProcedureTemplateQuery {
	return &ProcedureTemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcedureTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcedureTemplate entity by its id.
func (c *ProcedureTemplateClient) Get(ctx context.Context, id uuid.UUID) (*ProcedureTemplate, error) {
	return c.Query().Where(proceduretemplate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcedureTemplateClient) GetX(ctx context.Context, id uuid.UUID) *ProcedureTemplate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProfile queries the profile edge of a ProcedureTemplate.
func (c *ProcedureTemplateClient) QueryProfile(_m *ProcedureTemplate) *ProfileQuery {
	query := (&ProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(proceduretemplate.Table, proceduretemplate.FieldID, id),
			sqlgraph.To(profile.Table, profile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, proceduretemplate.ProfileTable, proceduretemplate.ProfileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProcedureTemplateClient) Hooks() []Hook {
	return c.hooks.ProcedureTemplate
}

// Interceptors returns the client interceptors.
func (c *ProcedureTemplateClient) Interceptors() []Interceptor {
	return c.inters.ProcedureTemplate
}

func (c *ProcedureTemplateClient) mutate(ctx context.Context, m *ProcedureTemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcedureTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcedureTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcedureTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcedureTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcedureTemplate mutation op: %q", m.Op())
	}
}

// ProfileClient is a client for the Profile schema.
type ProfileClient struct {
	config
}

// NewProfileClient returns a client for the Profile from the given config.
func NewProfileClient(c config) *ProfileClient {
	return &ProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `profile.Hooks(f(g(h())))`.
func (c *ProfileClient) Use(hooks ...Hook) {
	c.hooks.Profile = append(c.hooks.Profile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `profile.Intercept(f(g(h())))`.
func (c *ProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.Profile = append(c.inters.Profile, interceptors...)
}

// Create returns a builder for creating a Profile entity.
func (c *ProfileClient) Create() *ProfileCreate {
	mutation := newProfileMutation(c.config, OpCreate)
	return &ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Profile entities.
func (c *ProfileClient) CreateBulk(builders ...*ProfileCreate) *ProfileCreateBulk {
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProfileClient) MapCreateBulk(slice any, setFunc func(*ProfileCreate, int)) *ProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProfileCreateBulk{err: fmt.Errorf("calling to ProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Profile.
func (c *ProfileClient) Update() *ProfileUpdate {
	mutation := newProfileMutation(c.config, OpUpdate)
	return &ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProfileClient) UpdateOne(_m *Profile) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfile(_m))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProfileClient) UpdateOneID(id uuid.UUID) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfileID(id))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Profile.
func (c *ProfileClient) Delete() *ProfileDelete {
	mutation := newProfileMutation(c.config, OpDelete)
	return &ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProfileClient) DeleteOne(_m *Profile) *ProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProfileClient) DeleteOneID(id uuid.UUID) *ProfileDeleteOne {
	builder := c.Delete().Where(profile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProfileDeleteOne{builder}
}

// Query returns a query builder for Profile.
func (c *ProfileClient) Query() *ProfileQuery {
	return &ProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a Profile entity by its id.
func (c *ProfileClient) Get(ctx context.Context, id uuid.UUID) (*Profile, error) {
	return c.Query().Where(profile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProfileClient) GetX(ctx context.Context, id uuid.UUID) *Profile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRecords queries the records edge of a Profile.
func (c *ProfileClient) QueryRecords(_m *Profile) *PatientRecordQuery {
	query := (&PatientRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(profile.Table, profile.FieldID, id),
			sqlgraph.To(patientrecord.Table, patientrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, profile.RecordsTable, profile.RecordsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTemplates queries the templates edge of a Profile.
func (c *ProfileClient) QueryTemplates(_m *Profile) *ProcedureTemplateQuery {
	query := (&ProcedureTemplateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(profile.Table, profile.FieldID, id),
			sqlgraph.To(proceduretemplate.Table, proceduretemplate.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, profile.TemplatesTable, profile.TemplatesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProfileClient) Hooks() []Hook {
	return c.hooks.Profile
}

// Interceptors returns the client interceptors.
func (c *ProfileClient) Interceptors() []Interceptor {
	return c.inters.Profile
}

func (c *ProfileClient) mutate(ctx context.Context, m *ProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Profile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		PatientRecord, ProcedureTemplate, Profile []ent.Hook
	}
	inters struct {
		PatientRecord, ProcedureTemplate, Profile []ent.Interceptor
	}
)
