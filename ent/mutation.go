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
	"github.com/skiftkoll/skiftkoll/ent/captureimage"
	"github.com/skiftkoll/skiftkoll/ent/capturesession"
	"github.com/skiftkoll/skiftkoll/ent/daysnapshot"
	"github.com/skiftkoll/skiftkoll/ent/predicate"
	"github.com/skiftkoll/skiftkoll/ent/scheduleevent"
	"github.com/skiftkoll/skiftkoll/ent/schedulenotification"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCaptureImage         = "CaptureImage"
	TypeCaptureSession       = "CaptureSession"
	TypeDaySnapshot          = "DaySnapshot"
	TypeScheduleEvent        = "ScheduleEvent"
	TypeScheduleNotification = "ScheduleNotification"
)

// CaptureImageMutation represents an operation that mutates the CaptureImage nodes in the graph.
type CaptureImageMutation struct {
	config
	op             Op
	typ            string
	id             *string
	sequence       *int
	addsequence    *int
	object_key     *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*CaptureImage, error)
	predicates     []predicate.CaptureImage
}

var _ ent.Mutation = (*CaptureImageMutation)(nil)

// captureimageOption allows management of the mutation configuration using functional options.
type captureimageOption func(*CaptureImageMutation)

// newCaptureImageMutation creates new mutation for the CaptureImage entity.
func newCaptureImageMutation(c config, op Op, opts ...captureimageOption) *CaptureImageMutation {
	m := &CaptureImageMutation{
		config:        c,
		op:            op,
		typ:           TypeCaptureImage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCaptureImageID sets the ID field of the mutation.
func withCaptureImageID(id string) captureimageOption {
	return func(m *CaptureImageMutation) {
		var (
			err   error
			once  sync.Once
			value *CaptureImage
		)
		m.oldValue = func(ctx context.Context) (*CaptureImage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CaptureImage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCaptureImage sets the old CaptureImage of the mutation.
func withCaptureImage(node *CaptureImage) captureimageOption {
	return func(m *CaptureImageMutation) {
		m.oldValue = func(context.Context) (*CaptureImage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CaptureImageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CaptureImageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CaptureImage entities.
func (m *CaptureImageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CaptureImageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CaptureImageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CaptureImage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *CaptureImageMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *CaptureImageMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the CaptureImage entity.
// If the CaptureImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaptureImageMutation) OldSessionID(ctx context.Context) (v string, err error) {
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
func (m *CaptureImageMutation) ResetSessionID() {
	m.session = nil
}

// SetSequence sets the "sequence" field.
func (m *CaptureImageMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *CaptureImageMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the CaptureImage entity.
// If the CaptureImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaptureImageMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *CaptureImageMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *CaptureImageMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *CaptureImageMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetObjectKey sets the "object_key" field.
func (m *CaptureImageMutation) SetObjectKey(s string) {
	m.object_key = &s
}

// ObjectKey returns the value of the "object_key" field in the mutation.
func (m *CaptureImageMutation) ObjectKey() (r string, exists bool) {
	v := m.object_key
	if v == nil {
		return
	}
	return *v, true
}

// OldObjectKey returns the old "object_key" field's value of the CaptureImage entity.
// If the CaptureImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaptureImageMutation) OldObjectKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjectKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjectKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjectKey: %w", err)
	}
	return oldValue.ObjectKey, nil
}

// ResetObjectKey resets all changes to the "object_key" field.
func (m *CaptureImageMutation) ResetObjectKey() {
	m.object_key = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CaptureImageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CaptureImageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CaptureImage entity.
// If the CaptureImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaptureImageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CaptureImageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the CaptureSession entity.
func (m *CaptureImageMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[captureimage.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the CaptureSession entity was cleared.
func (m *CaptureImageMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *CaptureImageMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *CaptureImageMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the CaptureImageMutation builder.
func (m *CaptureImageMutation) Where(ps ...predicate.CaptureImage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CaptureImageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CaptureImageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CaptureImage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CaptureImageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CaptureImageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CaptureImage).
func (m *CaptureImageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CaptureImageMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.session != nil {
		fields = append(fields, captureimage.FieldSessionID)
	}
	if m.sequence != nil {
		fields = append(fields, captureimage.FieldSequence)
	}
	if m.object_key != nil {
		fields = append(fields, captureimage.FieldObjectKey)
	}
	if m.created_at != nil {
		fields = append(fields, captureimage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CaptureImageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case captureimage.FieldSessionID:
		return m.SessionID()
	case captureimage.FieldSequence:
		return m.Sequence()
	case captureimage.FieldObjectKey:
		return m.ObjectKey()
	case captureimage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CaptureImageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case captureimage.FieldSessionID:
		return m.OldSessionID(ctx)
	case captureimage.FieldSequence:
		return m.OldSequence(ctx)
	case captureimage.FieldObjectKey:
		return m.OldObjectKey(ctx)
	case captureimage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CaptureImage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaptureImageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case captureimage.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case captureimage.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case captureimage.FieldObjectKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjectKey(v)
		return nil
	case captureimage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CaptureImage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CaptureImageMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, captureimage.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CaptureImageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case captureimage.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaptureImageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case captureimage.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown CaptureImage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CaptureImageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CaptureImageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CaptureImageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CaptureImage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CaptureImageMutation) ResetField(name string) error {
	switch name {
	case captureimage.FieldSessionID:
		m.ResetSessionID()
		return nil
	case captureimage.FieldSequence:
		m.ResetSequence()
		return nil
	case captureimage.FieldObjectKey:
		m.ResetObjectKey()
		return nil
	case captureimage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CaptureImage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CaptureImageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, captureimage.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CaptureImageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case captureimage.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CaptureImageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CaptureImageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CaptureImageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, captureimage.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CaptureImageMutation) EdgeCleared(name string) bool {
	switch name {
	case captureimage.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CaptureImageMutation) ClearEdge(name string) error {
	switch name {
	case captureimage.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown CaptureImage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CaptureImageMutation) ResetEdge(name string) error {
	switch name {
	case captureimage.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown CaptureImage edge %s", name)
}

// CaptureSessionMutation represents an operation that mutates the CaptureSession nodes in the graph.
type CaptureSessionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *int64
	adduser_id    *int64
	state         *string
	created_at    *time.Time
	error_message *string
	locked_by     *string
	locked_at     *time.Time
	clearedFields map[string]struct{}
	images        map[string]struct{}
	removedimages map[string]struct{}
	clearedimages bool
	done          bool
	oldValue      func(context.Context) (*CaptureSession, error)
	predicates    []predicate.CaptureSession
}

var _ ent.Mutation = (*CaptureSessionMutation)(nil)

// capturesessionOption allows management of the mutation configuration using functional options.
type capturesessionOption func(*CaptureSessionMutation)

// newCaptureSessionMutation creates new mutation for the CaptureSession entity.
func newCaptureSessionMutation(c config, op Op, opts ...capturesessionOption) *CaptureSessionMutation {
	m := &CaptureSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeCaptureSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCaptureSessionID sets the ID field of the mutation.
func withCaptureSessionID(id string) capturesessionOption {
	return func(m *CaptureSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *CaptureSession
		)
		m.oldValue = func(ctx context.Context) (*CaptureSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CaptureSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCaptureSession sets the old CaptureSession of the mutation.
func withCaptureSession(node *CaptureSession) capturesessionOption {
	return func(m *CaptureSessionMutation) {
		m.oldValue = func(context.Context) (*CaptureSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CaptureSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CaptureSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CaptureSession entities.
func (m *CaptureSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CaptureSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CaptureSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CaptureSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *CaptureSessionMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CaptureSessionMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the CaptureSession entity.
// If the CaptureSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaptureSessionMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *CaptureSessionMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *CaptureSessionMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CaptureSessionMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetState sets the "state" field.
func (m *CaptureSessionMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *CaptureSessionMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the CaptureSession entity.
// If the CaptureSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaptureSessionMutation) OldState(ctx context.Context) (v string, err error) {
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
func (m *CaptureSessionMutation) ResetState() {
	m.state = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CaptureSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CaptureSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CaptureSession entity.
// If the CaptureSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaptureSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CaptureSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *CaptureSessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *CaptureSessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the CaptureSession entity.
// If the CaptureSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaptureSessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
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
func (m *CaptureSessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[capturesession.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *CaptureSessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[capturesession.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *CaptureSessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, capturesession.FieldErrorMessage)
}

// SetLockedBy sets the "locked_by" field.
func (m *CaptureSessionMutation) SetLockedBy(s string) {
	m.locked_by = &s
}

// LockedBy returns the value of the "locked_by" field in the mutation.
func (m *CaptureSessionMutation) LockedBy() (r string, exists bool) {
	v := m.locked_by
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedBy returns the old "locked_by" field's value of the CaptureSession entity.
// If the CaptureSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaptureSessionMutation) OldLockedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedBy: %w", err)
	}
	return oldValue.LockedBy, nil
}

// ClearLockedBy clears the value of the "locked_by" field.
func (m *CaptureSessionMutation) ClearLockedBy() {
	m.locked_by = nil
	m.clearedFields[capturesession.FieldLockedBy] = struct{}{}
}

// LockedByCleared returns if the "locked_by" field was cleared in this mutation.
func (m *CaptureSessionMutation) LockedByCleared() bool {
	_, ok := m.clearedFields[capturesession.FieldLockedBy]
	return ok
}

// ResetLockedBy resets all changes to the "locked_by" field.
func (m *CaptureSessionMutation) ResetLockedBy() {
	m.locked_by = nil
	delete(m.clearedFields, capturesession.FieldLockedBy)
}

// SetLockedAt sets the "locked_at" field.
func (m *CaptureSessionMutation) SetLockedAt(t time.Time) {
	m.locked_at = &t
}

// LockedAt returns the value of the "locked_at" field in the mutation.
func (m *CaptureSessionMutation) LockedAt() (r time.Time, exists bool) {
	v := m.locked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedAt returns the old "locked_at" field's value of the CaptureSession entity.
// If the CaptureSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaptureSessionMutation) OldLockedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedAt: %w", err)
	}
	return oldValue.LockedAt, nil
}

// ClearLockedAt clears the value of the "locked_at" field.
func (m *CaptureSessionMutation) ClearLockedAt() {
	m.locked_at = nil
	m.clearedFields[capturesession.FieldLockedAt] = struct{}{}
}

// LockedAtCleared returns if the "locked_at" field was cleared in this mutation.
func (m *CaptureSessionMutation) LockedAtCleared() bool {
	_, ok := m.clearedFields[capturesession.FieldLockedAt]
	return ok
}

// ResetLockedAt resets all changes to the "locked_at" field.
func (m *CaptureSessionMutation) ResetLockedAt() {
	m.locked_at = nil
	delete(m.clearedFields, capturesession.FieldLockedAt)
}

// AddImageIDs adds the "images" edge to the CaptureImage entity by ids.
func (m *CaptureSessionMutation) AddImageIDs(ids ...string) {
	if m.images == nil {
		m.images = make(map[string]struct{})
	}
	for i := range ids {
		m.images[ids[i]] = struct{}{}
	}
}

// ClearImages clears the "images" edge to the CaptureImage entity.
func (m *CaptureSessionMutation) ClearImages() {
	m.clearedimages = true
}

// ImagesCleared reports if the "images" edge to the CaptureImage entity was cleared.
func (m *CaptureSessionMutation) ImagesCleared() bool {
	return m.clearedimages
}

// RemoveImageIDs removes the "images" edge to the CaptureImage entity by IDs.
func (m *CaptureSessionMutation) RemoveImageIDs(ids ...string) {
	if m.removedimages == nil {
		m.removedimages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.images, ids[i])
		m.removedimages[ids[i]] = struct{}{}
	}
}

// RemovedImages returns the removed IDs of the "images" edge to the CaptureImage entity.
func (m *CaptureSessionMutation) RemovedImagesIDs() (ids []string) {
	for id := range m.removedimages {
		ids = append(ids, id)
	}
	return
}

// ImagesIDs returns the "images" edge IDs in the mutation.
func (m *CaptureSessionMutation) ImagesIDs() (ids []string) {
	for id := range m.images {
		ids = append(ids, id)
	}
	return
}

// ResetImages resets all changes to the "images" edge.
func (m *CaptureSessionMutation) ResetImages() {
	m.images = nil
	m.clearedimages = false
	m.removedimages = nil
}

// Where appends a list predicates to the CaptureSessionMutation builder.
func (m *CaptureSessionMutation) Where(ps ...predicate.CaptureSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CaptureSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CaptureSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CaptureSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CaptureSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CaptureSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CaptureSession).
func (m *CaptureSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CaptureSessionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user_id != nil {
		fields = append(fields, capturesession.FieldUserID)
	}
	if m.state != nil {
		fields = append(fields, capturesession.FieldState)
	}
	if m.created_at != nil {
		fields = append(fields, capturesession.FieldCreatedAt)
	}
	if m.error_message != nil {
		fields = append(fields, capturesession.FieldErrorMessage)
	}
	if m.locked_by != nil {
		fields = append(fields, capturesession.FieldLockedBy)
	}
	if m.locked_at != nil {
		fields = append(fields, capturesession.FieldLockedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CaptureSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case capturesession.FieldUserID:
		return m.UserID()
	case capturesession.FieldState:
		return m.State()
	case capturesession.FieldCreatedAt:
		return m.CreatedAt()
	case capturesession.FieldErrorMessage:
		return m.ErrorMessage()
	case capturesession.FieldLockedBy:
		return m.LockedBy()
	case capturesession.FieldLockedAt:
		return m.LockedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CaptureSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case capturesession.FieldUserID:
		return m.OldUserID(ctx)
	case capturesession.FieldState:
		return m.OldState(ctx)
	case capturesession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case capturesession.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case capturesession.FieldLockedBy:
		return m.OldLockedBy(ctx)
	case capturesession.FieldLockedAt:
		return m.OldLockedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CaptureSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaptureSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case capturesession.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case capturesession.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case capturesession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case capturesession.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case capturesession.FieldLockedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedBy(v)
		return nil
	case capturesession.FieldLockedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CaptureSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CaptureSessionMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, capturesession.FieldUserID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CaptureSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case capturesession.FieldUserID:
		return m.AddedUserID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaptureSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case capturesession.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	}
	return fmt.Errorf("unknown CaptureSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CaptureSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(capturesession.FieldErrorMessage) {
		fields = append(fields, capturesession.FieldErrorMessage)
	}
	if m.FieldCleared(capturesession.FieldLockedBy) {
		fields = append(fields, capturesession.FieldLockedBy)
	}
	if m.FieldCleared(capturesession.FieldLockedAt) {
		fields = append(fields, capturesession.FieldLockedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CaptureSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CaptureSessionMutation) ClearField(name string) error {
	switch name {
	case capturesession.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case capturesession.FieldLockedBy:
		m.ClearLockedBy()
		return nil
	case capturesession.FieldLockedAt:
		m.ClearLockedAt()
		return nil
	}
	return fmt.Errorf("unknown CaptureSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CaptureSessionMutation) ResetField(name string) error {
	switch name {
	case capturesession.FieldUserID:
		m.ResetUserID()
		return nil
	case capturesession.FieldState:
		m.ResetState()
		return nil
	case capturesession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case capturesession.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case capturesession.FieldLockedBy:
		m.ResetLockedBy()
		return nil
	case capturesession.FieldLockedAt:
		m.ResetLockedAt()
		return nil
	}
	return fmt.Errorf("unknown CaptureSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CaptureSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.images != nil {
		edges = append(edges, capturesession.EdgeImages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CaptureSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case capturesession.EdgeImages:
		ids := make([]ent.Value, 0, len(m.images))
		for id := range m.images {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CaptureSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedimages != nil {
		edges = append(edges, capturesession.EdgeImages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CaptureSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case capturesession.EdgeImages:
		ids := make([]ent.Value, 0, len(m.removedimages))
		for id := range m.removedimages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CaptureSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedimages {
		edges = append(edges, capturesession.EdgeImages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CaptureSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case capturesession.EdgeImages:
		return m.clearedimages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CaptureSessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown CaptureSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CaptureSessionMutation) ResetEdge(name string) error {
	switch name {
	case capturesession.EdgeImages:
		m.ResetImages()
		return nil
	}
	return fmt.Errorf("unknown CaptureSession edge %s", name)
}

// DaySnapshotMutation represents an operation that mutates the DaySnapshot nodes in the graph.
type DaySnapshotMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	user_id                *int64
	adduser_id             *int64
	schedule_date          *string
	snapshot_payload       *[]map[string]interface{}
	appendsnapshot_payload []map[string]interface{}
	source_session_id      *string
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*DaySnapshot, error)
	predicates             []predicate.DaySnapshot
}

var _ ent.Mutation = (*DaySnapshotMutation)(nil)

// daysnapshotOption allows management of the mutation configuration using functional options.
type daysnapshotOption func(*DaySnapshotMutation)

// newDaySnapshotMutation creates new mutation for the DaySnapshot entity.
func newDaySnapshotMutation(c config, op Op, opts ...daysnapshotOption) *DaySnapshotMutation {
	m := &DaySnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeDaySnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDaySnapshotID sets the ID field of the mutation.
func withDaySnapshotID(id int) daysnapshotOption {
	return func(m *DaySnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *DaySnapshot
		)
		m.oldValue = func(ctx context.Context) (*DaySnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DaySnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDaySnapshot sets the old DaySnapshot of the mutation.
func withDaySnapshot(node *DaySnapshot) daysnapshotOption {
	return func(m *DaySnapshotMutation) {
		m.oldValue = func(context.Context) (*DaySnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DaySnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DaySnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DaySnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DaySnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DaySnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *DaySnapshotMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *DaySnapshotMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the DaySnapshot entity.
// If the DaySnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DaySnapshotMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *DaySnapshotMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *DaySnapshotMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *DaySnapshotMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetScheduleDate sets the "schedule_date" field.
func (m *DaySnapshotMutation) SetScheduleDate(s string) {
	m.schedule_date = &s
}

// ScheduleDate returns the value of the "schedule_date" field in the mutation.
func (m *DaySnapshotMutation) ScheduleDate() (r string, exists bool) {
	v := m.schedule_date
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduleDate returns the old "schedule_date" field's value of the DaySnapshot entity.
// If the DaySnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DaySnapshotMutation) OldScheduleDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduleDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduleDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduleDate: %w", err)
	}
	return oldValue.ScheduleDate, nil
}

// ResetScheduleDate resets all changes to the "schedule_date" field.
func (m *DaySnapshotMutation) ResetScheduleDate() {
	m.schedule_date = nil
}

// SetSnapshotPayload sets the "snapshot_payload" field.
func (m *DaySnapshotMutation) SetSnapshotPayload(value []map[string]interface{}) {
	m.snapshot_payload = &value
	m.appendsnapshot_payload = nil
}

// SnapshotPayload returns the value of the "snapshot_payload" field in the mutation.
func (m *DaySnapshotMutation) SnapshotPayload() (r []map[string]interface{}, exists bool) {
	v := m.snapshot_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldSnapshotPayload returns the old "snapshot_payload" field's value of the DaySnapshot entity.
// If the DaySnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DaySnapshotMutation) OldSnapshotPayload(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnapshotPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnapshotPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnapshotPayload: %w", err)
	}
	return oldValue.SnapshotPayload, nil
}

// AppendSnapshotPayload adds value to the "snapshot_payload" field.
func (m *DaySnapshotMutation) AppendSnapshotPayload(value []map[string]interface{}) {
	m.appendsnapshot_payload = append(m.appendsnapshot_payload, value...)
}

// AppendedSnapshotPayload returns the list of values that were appended to the "snapshot_payload" field in this mutation.
func (m *DaySnapshotMutation) AppendedSnapshotPayload() ([]map[string]interface{}, bool) {
	if len(m.appendsnapshot_payload) == 0 {
		return nil, false
	}
	return m.appendsnapshot_payload, true
}

// ResetSnapshotPayload resets all changes to the "snapshot_payload" field.
func (m *DaySnapshotMutation) ResetSnapshotPayload() {
	m.snapshot_payload = nil
	m.appendsnapshot_payload = nil
}

// SetSourceSessionID sets the "source_session_id" field.
func (m *DaySnapshotMutation) SetSourceSessionID(s string) {
	m.source_session_id = &s
}

// SourceSessionID returns the value of the "source_session_id" field in the mutation.
func (m *DaySnapshotMutation) SourceSessionID() (r string, exists bool) {
	v := m.source_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceSessionID returns the old "source_session_id" field's value of the DaySnapshot entity.
// If the DaySnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DaySnapshotMutation) OldSourceSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceSessionID: %w", err)
	}
	return oldValue.SourceSessionID, nil
}

// ResetSourceSessionID resets all changes to the "source_session_id" field.
func (m *DaySnapshotMutation) ResetSourceSessionID() {
	m.source_session_id = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DaySnapshotMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DaySnapshotMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DaySnapshot entity.
// If the DaySnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DaySnapshotMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *DaySnapshotMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the DaySnapshotMutation builder.
func (m *DaySnapshotMutation) Where(ps ...predicate.DaySnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DaySnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DaySnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DaySnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DaySnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DaySnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DaySnapshot).
func (m *DaySnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DaySnapshotMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user_id != nil {
		fields = append(fields, daysnapshot.FieldUserID)
	}
	if m.schedule_date != nil {
		fields = append(fields, daysnapshot.FieldScheduleDate)
	}
	if m.snapshot_payload != nil {
		fields = append(fields, daysnapshot.FieldSnapshotPayload)
	}
	if m.source_session_id != nil {
		fields = append(fields, daysnapshot.FieldSourceSessionID)
	}
	if m.updated_at != nil {
		fields = append(fields, daysnapshot.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DaySnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case daysnapshot.FieldUserID:
		return m.UserID()
	case daysnapshot.FieldScheduleDate:
		return m.ScheduleDate()
	case daysnapshot.FieldSnapshotPayload:
		return m.SnapshotPayload()
	case daysnapshot.FieldSourceSessionID:
		return m.SourceSessionID()
	case daysnapshot.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DaySnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case daysnapshot.FieldUserID:
		return m.OldUserID(ctx)
	case daysnapshot.FieldScheduleDate:
		return m.OldScheduleDate(ctx)
	case daysnapshot.FieldSnapshotPayload:
		return m.OldSnapshotPayload(ctx)
	case daysnapshot.FieldSourceSessionID:
		return m.OldSourceSessionID(ctx)
	case daysnapshot.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DaySnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DaySnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case daysnapshot.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case daysnapshot.FieldScheduleDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduleDate(v)
		return nil
	case daysnapshot.FieldSnapshotPayload:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnapshotPayload(v)
		return nil
	case daysnapshot.FieldSourceSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceSessionID(v)
		return nil
	case daysnapshot.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DaySnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DaySnapshotMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, daysnapshot.FieldUserID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DaySnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case daysnapshot.FieldUserID:
		return m.AddedUserID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DaySnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case daysnapshot.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	}
	return fmt.Errorf("unknown DaySnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DaySnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DaySnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DaySnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DaySnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DaySnapshotMutation) ResetField(name string) error {
	switch name {
	case daysnapshot.FieldUserID:
		m.ResetUserID()
		return nil
	case daysnapshot.FieldScheduleDate:
		m.ResetScheduleDate()
		return nil
	case daysnapshot.FieldSnapshotPayload:
		m.ResetSnapshotPayload()
		return nil
	case daysnapshot.FieldSourceSessionID:
		m.ResetSourceSessionID()
		return nil
	case daysnapshot.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DaySnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DaySnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DaySnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DaySnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DaySnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DaySnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DaySnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DaySnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DaySnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DaySnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DaySnapshot edge %s", name)
}

// ScheduleEventMutation represents an operation that mutates the ScheduleEvent nodes in the graph.
type ScheduleEventMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	user_id              *int64
	adduser_id           *int64
	schedule_date        *string
	event_type           *string
	location_fingerprint *string
	customer_fingerprint *string
	old_value_hash       *string
	new_value_hash       *string
	old_value            *map[string]interface{}
	new_value            *map[string]interface{}
	detected_at          *time.Time
	source_session_id    *string
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*ScheduleEvent, error)
	predicates           []predicate.ScheduleEvent
}

var _ ent.Mutation = (*ScheduleEventMutation)(nil)

// scheduleeventOption allows management of the mutation configuration using functional options.
type scheduleeventOption func(*ScheduleEventMutation)

// newScheduleEventMutation creates new mutation for the ScheduleEvent entity.
func newScheduleEventMutation(c config, op Op, opts ...scheduleeventOption) *ScheduleEventMutation {
	m := &ScheduleEventMutation{
		config:        c,
		op:            op,
		typ:           TypeScheduleEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScheduleEventID sets the ID field of the mutation.
func withScheduleEventID(id string) scheduleeventOption {
	return func(m *ScheduleEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ScheduleEvent
		)
		m.oldValue = func(ctx context.Context) (*ScheduleEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScheduleEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScheduleEvent sets the old ScheduleEvent of the mutation.
func withScheduleEvent(node *ScheduleEvent) scheduleeventOption {
	return func(m *ScheduleEventMutation) {
		m.oldValue = func(context.Context) (*ScheduleEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScheduleEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScheduleEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScheduleEvent entities.
func (m *ScheduleEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScheduleEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScheduleEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScheduleEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ScheduleEventMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ScheduleEventMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ScheduleEvent entity.
// If the ScheduleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEventMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *ScheduleEventMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *ScheduleEventMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ScheduleEventMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetScheduleDate sets the "schedule_date" field.
func (m *ScheduleEventMutation) SetScheduleDate(s string) {
	m.schedule_date = &s
}

// ScheduleDate returns the value of the "schedule_date" field in the mutation.
func (m *ScheduleEventMutation) ScheduleDate() (r string, exists bool) {
	v := m.schedule_date
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduleDate returns the old "schedule_date" field's value of the ScheduleEvent entity.
// If the ScheduleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEventMutation) OldScheduleDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduleDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduleDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduleDate: %w", err)
	}
	return oldValue.ScheduleDate, nil
}

// ResetScheduleDate resets all changes to the "schedule_date" field.
func (m *ScheduleEventMutation) ResetScheduleDate() {
	m.schedule_date = nil
}

// SetEventType sets the "event_type" field.
func (m *ScheduleEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *ScheduleEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the ScheduleEvent entity.
// If the ScheduleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *ScheduleEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetLocationFingerprint sets the "location_fingerprint" field.
func (m *ScheduleEventMutation) SetLocationFingerprint(s string) {
	m.location_fingerprint = &s
}

// LocationFingerprint returns the value of the "location_fingerprint" field in the mutation.
func (m *ScheduleEventMutation) LocationFingerprint() (r string, exists bool) {
	v := m.location_fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationFingerprint returns the old "location_fingerprint" field's value of the ScheduleEvent entity.
// If the ScheduleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEventMutation) OldLocationFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationFingerprint: %w", err)
	}
	return oldValue.LocationFingerprint, nil
}

// ResetLocationFingerprint resets all changes to the "location_fingerprint" field.
func (m *ScheduleEventMutation) ResetLocationFingerprint() {
	m.location_fingerprint = nil
}

// SetCustomerFingerprint sets the "customer_fingerprint" field.
func (m *ScheduleEventMutation) SetCustomerFingerprint(s string) {
	m.customer_fingerprint = &s
}

// CustomerFingerprint returns the value of the "customer_fingerprint" field in the mutation.
func (m *ScheduleEventMutation) CustomerFingerprint() (r string, exists bool) {
	v := m.customer_fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerFingerprint returns the old "customer_fingerprint" field's value of the ScheduleEvent entity.
// If the ScheduleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEventMutation) OldCustomerFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerFingerprint: %w", err)
	}
	return oldValue.CustomerFingerprint, nil
}

// ResetCustomerFingerprint resets all changes to the "customer_fingerprint" field.
func (m *ScheduleEventMutation) ResetCustomerFingerprint() {
	m.customer_fingerprint = nil
}

// SetOldValueHash sets the "old_value_hash" field.
func (m *ScheduleEventMutation) SetOldValueHash(s string) {
	m.old_value_hash = &s
}

// OldValueHash returns the value of the "old_value_hash" field in the mutation.
func (m *ScheduleEventMutation) OldValueHash() (r string, exists bool) {
	v := m.old_value_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldOldValueHash returns the old "old_value_hash" field's value of the ScheduleEvent entity.
// If the ScheduleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEventMutation) OldOldValueHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOldValueHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOldValueHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOldValueHash: %w", err)
	}
	return oldValue.OldValueHash, nil
}

// ResetOldValueHash resets all changes to the "old_value_hash" field.
func (m *ScheduleEventMutation) ResetOldValueHash() {
	m.old_value_hash = nil
}

// SetNewValueHash sets the "new_value_hash" field.
func (m *ScheduleEventMutation) SetNewValueHash(s string) {
	m.new_value_hash = &s
}

// NewValueHash returns the value of the "new_value_hash" field in the mutation.
func (m *ScheduleEventMutation) NewValueHash() (r string, exists bool) {
	v := m.new_value_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldNewValueHash returns the old "new_value_hash" field's value of the ScheduleEvent entity.
// If the ScheduleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEventMutation) OldNewValueHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewValueHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewValueHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewValueHash: %w", err)
	}
	return oldValue.NewValueHash, nil
}

// ResetNewValueHash resets all changes to the "new_value_hash" field.
func (m *ScheduleEventMutation) ResetNewValueHash() {
	m.new_value_hash = nil
}

// SetOldValue sets the "old_value" field.
func (m *ScheduleEventMutation) SetOldValue(value map[string]interface{}) {
	m.old_value = &value
}

// OldValue returns the value of the "old_value" field in the mutation.
func (m *ScheduleEventMutation) OldValue() (r map[string]interface{}, exists bool) {
	v := m.old_value
	if v == nil {
		return
	}
	return *v, true
}

// OldOldValue returns the old "old_value" field's value of the ScheduleEvent entity.
// If the ScheduleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEventMutation) OldOldValue(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOldValue: %w", err)
	}
	return oldValue.OldValue, nil
}

// ClearOldValue clears the value of the "old_value" field.
func (m *ScheduleEventMutation) ClearOldValue() {
	m.old_value = nil
	m.clearedFields[scheduleevent.FieldOldValue] = struct{}{}
}

// OldValueCleared returns if the "old_value" field was cleared in this mutation.
func (m *ScheduleEventMutation) OldValueCleared() bool {
	_, ok := m.clearedFields[scheduleevent.FieldOldValue]
	return ok
}

// ResetOldValue resets all changes to the "old_value" field.
func (m *ScheduleEventMutation) ResetOldValue() {
	m.old_value = nil
	delete(m.clearedFields, scheduleevent.FieldOldValue)
}

// SetNewValue sets the "new_value" field.
func (m *ScheduleEventMutation) SetNewValue(value map[string]interface{}) {
	m.new_value = &value
}

// NewValue returns the value of the "new_value" field in the mutation.
func (m *ScheduleEventMutation) NewValue() (r map[string]interface{}, exists bool) {
	v := m.new_value
	if v == nil {
		return
	}
	return *v, true
}

// OldNewValue returns the old "new_value" field's value of the ScheduleEvent entity.
// If the ScheduleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEventMutation) OldNewValue(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewValue: %w", err)
	}
	return oldValue.NewValue, nil
}

// ClearNewValue clears the value of the "new_value" field.
func (m *ScheduleEventMutation) ClearNewValue() {
	m.new_value = nil
	m.clearedFields[scheduleevent.FieldNewValue] = struct{}{}
}

// NewValueCleared returns if the "new_value" field was cleared in this mutation.
func (m *ScheduleEventMutation) NewValueCleared() bool {
	_, ok := m.clearedFields[scheduleevent.FieldNewValue]
	return ok
}

// ResetNewValue resets all changes to the "new_value" field.
func (m *ScheduleEventMutation) ResetNewValue() {
	m.new_value = nil
	delete(m.clearedFields, scheduleevent.FieldNewValue)
}

// SetDetectedAt sets the "detected_at" field.
func (m *ScheduleEventMutation) SetDetectedAt(t time.Time) {
	m.detected_at = &t
}

// DetectedAt returns the value of the "detected_at" field in the mutation.
func (m *ScheduleEventMutation) DetectedAt() (r time.Time, exists bool) {
	v := m.detected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectedAt returns the old "detected_at" field's value of the ScheduleEvent entity.
// If the ScheduleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEventMutation) OldDetectedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectedAt: %w", err)
	}
	return oldValue.DetectedAt, nil
}

// ResetDetectedAt resets all changes to the "detected_at" field.
func (m *ScheduleEventMutation) ResetDetectedAt() {
	m.detected_at = nil
}

// SetSourceSessionID sets the "source_session_id" field.
func (m *ScheduleEventMutation) SetSourceSessionID(s string) {
	m.source_session_id = &s
}

// SourceSessionID returns the value of the "source_session_id" field in the mutation.
func (m *ScheduleEventMutation) SourceSessionID() (r string, exists bool) {
	v := m.source_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceSessionID returns the old "source_session_id" field's value of the ScheduleEvent entity.
// If the ScheduleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleEventMutation) OldSourceSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceSessionID: %w", err)
	}
	return oldValue.SourceSessionID, nil
}

// ResetSourceSessionID resets all changes to the "source_session_id" field.
func (m *ScheduleEventMutation) ResetSourceSessionID() {
	m.source_session_id = nil
}

// Where appends a list predicates to the ScheduleEventMutation builder.
func (m *ScheduleEventMutation) Where(ps ...predicate.ScheduleEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScheduleEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScheduleEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScheduleEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScheduleEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScheduleEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScheduleEvent).
func (m *ScheduleEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScheduleEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.user_id != nil {
		fields = append(fields, scheduleevent.FieldUserID)
	}
	if m.schedule_date != nil {
		fields = append(fields, scheduleevent.FieldScheduleDate)
	}
	if m.event_type != nil {
		fields = append(fields, scheduleevent.FieldEventType)
	}
	if m.location_fingerprint != nil {
		fields = append(fields, scheduleevent.FieldLocationFingerprint)
	}
	if m.customer_fingerprint != nil {
		fields = append(fields, scheduleevent.FieldCustomerFingerprint)
	}
	if m.old_value_hash != nil {
		fields = append(fields, scheduleevent.FieldOldValueHash)
	}
	if m.new_value_hash != nil {
		fields = append(fields, scheduleevent.FieldNewValueHash)
	}
	if m.old_value != nil {
		fields = append(fields, scheduleevent.FieldOldValue)
	}
	if m.new_value != nil {
		fields = append(fields, scheduleevent.FieldNewValue)
	}
	if m.detected_at != nil {
		fields = append(fields, scheduleevent.FieldDetectedAt)
	}
	if m.source_session_id != nil {
		fields = append(fields, scheduleevent.FieldSourceSessionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScheduleEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scheduleevent.FieldUserID:
		return m.UserID()
	case scheduleevent.FieldScheduleDate:
		return m.ScheduleDate()
	case scheduleevent.FieldEventType:
		return m.EventType()
	case scheduleevent.FieldLocationFingerprint:
		return m.LocationFingerprint()
	case scheduleevent.FieldCustomerFingerprint:
		return m.CustomerFingerprint()
	case scheduleevent.FieldOldValueHash:
		return m.OldValueHash()
	case scheduleevent.FieldNewValueHash:
		return m.NewValueHash()
	case scheduleevent.FieldOldValue:
		return m.OldValue()
	case scheduleevent.FieldNewValue:
		return m.NewValue()
	case scheduleevent.FieldDetectedAt:
		return m.DetectedAt()
	case scheduleevent.FieldSourceSessionID:
		return m.SourceSessionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScheduleEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scheduleevent.FieldUserID:
		return m.OldUserID(ctx)
	case scheduleevent.FieldScheduleDate:
		return m.OldScheduleDate(ctx)
	case scheduleevent.FieldEventType:
		return m.OldEventType(ctx)
	case scheduleevent.FieldLocationFingerprint:
		return m.OldLocationFingerprint(ctx)
	case scheduleevent.FieldCustomerFingerprint:
		return m.OldCustomerFingerprint(ctx)
	case scheduleevent.FieldOldValueHash:
		return m.OldOldValueHash(ctx)
	case scheduleevent.FieldNewValueHash:
		return m.OldNewValueHash(ctx)
	case scheduleevent.FieldOldValue:
		return m.OldOldValue(ctx)
	case scheduleevent.FieldNewValue:
		return m.OldNewValue(ctx)
	case scheduleevent.FieldDetectedAt:
		return m.OldDetectedAt(ctx)
	case scheduleevent.FieldSourceSessionID:
		return m.OldSourceSessionID(ctx)
	}
	return nil, fmt.Errorf("unknown ScheduleEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduleEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scheduleevent.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case scheduleevent.FieldScheduleDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduleDate(v)
		return nil
	case scheduleevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case scheduleevent.FieldLocationFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationFingerprint(v)
		return nil
	case scheduleevent.FieldCustomerFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerFingerprint(v)
		return nil
	case scheduleevent.FieldOldValueHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOldValueHash(v)
		return nil
	case scheduleevent.FieldNewValueHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewValueHash(v)
		return nil
	case scheduleevent.FieldOldValue:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOldValue(v)
		return nil
	case scheduleevent.FieldNewValue:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewValue(v)
		return nil
	case scheduleevent.FieldDetectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectedAt(v)
		return nil
	case scheduleevent.FieldSourceSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceSessionID(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduleEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScheduleEventMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, scheduleevent.FieldUserID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScheduleEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scheduleevent.FieldUserID:
		return m.AddedUserID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduleEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scheduleevent.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduleEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScheduleEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scheduleevent.FieldOldValue) {
		fields = append(fields, scheduleevent.FieldOldValue)
	}
	if m.FieldCleared(scheduleevent.FieldNewValue) {
		fields = append(fields, scheduleevent.FieldNewValue)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScheduleEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScheduleEventMutation) ClearField(name string) error {
	switch name {
	case scheduleevent.FieldOldValue:
		m.ClearOldValue()
		return nil
	case scheduleevent.FieldNewValue:
		m.ClearNewValue()
		return nil
	}
	return fmt.Errorf("unknown ScheduleEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScheduleEventMutation) ResetField(name string) error {
	switch name {
	case scheduleevent.FieldUserID:
		m.ResetUserID()
		return nil
	case scheduleevent.FieldScheduleDate:
		m.ResetScheduleDate()
		return nil
	case scheduleevent.FieldEventType:
		m.ResetEventType()
		return nil
	case scheduleevent.FieldLocationFingerprint:
		m.ResetLocationFingerprint()
		return nil
	case scheduleevent.FieldCustomerFingerprint:
		m.ResetCustomerFingerprint()
		return nil
	case scheduleevent.FieldOldValueHash:
		m.ResetOldValueHash()
		return nil
	case scheduleevent.FieldNewValueHash:
		m.ResetNewValueHash()
		return nil
	case scheduleevent.FieldOldValue:
		m.ResetOldValue()
		return nil
	case scheduleevent.FieldNewValue:
		m.ResetNewValue()
		return nil
	case scheduleevent.FieldDetectedAt:
		m.ResetDetectedAt()
		return nil
	case scheduleevent.FieldSourceSessionID:
		m.ResetSourceSessionID()
		return nil
	}
	return fmt.Errorf("unknown ScheduleEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScheduleEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScheduleEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScheduleEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScheduleEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScheduleEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScheduleEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScheduleEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScheduleEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScheduleEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScheduleEvent edge %s", name)
}

// ScheduleNotificationMutation represents an operation that mutates the ScheduleNotification nodes in the graph.
type ScheduleNotificationMutation struct {
	config
	op                Op
	typ               string
	id                *string
	user_id           *int64
	adduser_id        *int64
	schedule_date     *string
	source_session_id *string
	status            *string
	notification_type *string
	message           *string
	event_ids         *[]string
	appendevent_ids   []string
	created_at        *time.Time
	sent_at           *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*ScheduleNotification, error)
	predicates        []predicate.ScheduleNotification
}

var _ ent.Mutation = (*ScheduleNotificationMutation)(nil)

// schedulenotificationOption allows management of the mutation configuration using functional options.
type schedulenotificationOption func(*ScheduleNotificationMutation)

// newScheduleNotificationMutation creates new mutation for the ScheduleNotification entity.
func newScheduleNotificationMutation(c config, op Op, opts ...schedulenotificationOption) *ScheduleNotificationMutation {
	m := &ScheduleNotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeScheduleNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScheduleNotificationID sets the ID field of the mutation.
func withScheduleNotificationID(id string) schedulenotificationOption {
	return func(m *ScheduleNotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *ScheduleNotification
		)
		m.oldValue = func(ctx context.Context) (*ScheduleNotification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScheduleNotification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScheduleNotification sets the old ScheduleNotification of the mutation.
func withScheduleNotification(node *ScheduleNotification) schedulenotificationOption {
	return func(m *ScheduleNotificationMutation) {
		m.oldValue = func(context.Context) (*ScheduleNotification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScheduleNotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScheduleNotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScheduleNotification entities.
func (m *ScheduleNotificationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScheduleNotificationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScheduleNotificationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScheduleNotification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ScheduleNotificationMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ScheduleNotificationMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ScheduleNotification entity.
// If the ScheduleNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleNotificationMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *ScheduleNotificationMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *ScheduleNotificationMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ScheduleNotificationMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetScheduleDate sets the "schedule_date" field.
func (m *ScheduleNotificationMutation) SetScheduleDate(s string) {
	m.schedule_date = &s
}

// ScheduleDate returns the value of the "schedule_date" field in the mutation.
func (m *ScheduleNotificationMutation) ScheduleDate() (r string, exists bool) {
	v := m.schedule_date
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduleDate returns the old "schedule_date" field's value of the ScheduleNotification entity.
// If the ScheduleNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleNotificationMutation) OldScheduleDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduleDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduleDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduleDate: %w", err)
	}
	return oldValue.ScheduleDate, nil
}

// ResetScheduleDate resets all changes to the "schedule_date" field.
func (m *ScheduleNotificationMutation) ResetScheduleDate() {
	m.schedule_date = nil
}

// SetSourceSessionID sets the "source_session_id" field.
func (m *ScheduleNotificationMutation) SetSourceSessionID(s string) {
	m.source_session_id = &s
}

// SourceSessionID returns the value of the "source_session_id" field in the mutation.
func (m *ScheduleNotificationMutation) SourceSessionID() (r string, exists bool) {
	v := m.source_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceSessionID returns the old "source_session_id" field's value of the ScheduleNotification entity.
// If the ScheduleNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleNotificationMutation) OldSourceSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceSessionID: %w", err)
	}
	return oldValue.SourceSessionID, nil
}

// ResetSourceSessionID resets all changes to the "source_session_id" field.
func (m *ScheduleNotificationMutation) ResetSourceSessionID() {
	m.source_session_id = nil
}

// SetStatus sets the "status" field.
func (m *ScheduleNotificationMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ScheduleNotificationMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ScheduleNotification entity.
// If the ScheduleNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleNotificationMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *ScheduleNotificationMutation) ResetStatus() {
	m.status = nil
}

// SetNotificationType sets the "notification_type" field.
func (m *ScheduleNotificationMutation) SetNotificationType(s string) {
	m.notification_type = &s
}

// NotificationType returns the value of the "notification_type" field in the mutation.
func (m *ScheduleNotificationMutation) NotificationType() (r string, exists bool) {
	v := m.notification_type
	if v == nil {
		return
	}
	return *v, true
}

// OldNotificationType returns the old "notification_type" field's value of the ScheduleNotification entity.
// If the ScheduleNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleNotificationMutation) OldNotificationType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotificationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotificationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotificationType: %w", err)
	}
	return oldValue.NotificationType, nil
}

// ResetNotificationType resets all changes to the "notification_type" field.
func (m *ScheduleNotificationMutation) ResetNotificationType() {
	m.notification_type = nil
}

// SetMessage sets the "message" field.
func (m *ScheduleNotificationMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *ScheduleNotificationMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the ScheduleNotification entity.
// If the ScheduleNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleNotificationMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *ScheduleNotificationMutation) ResetMessage() {
	m.message = nil
}

// SetEventIds sets the "event_ids" field.
func (m *ScheduleNotificationMutation) SetEventIds(s []string) {
	m.event_ids = &s
	m.appendevent_ids = nil
}

// EventIds returns the value of the "event_ids" field in the mutation.
func (m *ScheduleNotificationMutation) EventIds() (r []string, exists bool) {
	v := m.event_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldEventIds returns the old "event_ids" field's value of the ScheduleNotification entity.
// If the ScheduleNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleNotificationMutation) OldEventIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventIds: %w", err)
	}
	return oldValue.EventIds, nil
}

// AppendEventIds adds s to the "event_ids" field.
func (m *ScheduleNotificationMutation) AppendEventIds(s []string) {
	m.appendevent_ids = append(m.appendevent_ids, s...)
}

// AppendedEventIds returns the list of values that were appended to the "event_ids" field in this mutation.
func (m *ScheduleNotificationMutation) AppendedEventIds() ([]string, bool) {
	if len(m.appendevent_ids) == 0 {
		return nil, false
	}
	return m.appendevent_ids, true
}

// ResetEventIds resets all changes to the "event_ids" field.
func (m *ScheduleNotificationMutation) ResetEventIds() {
	m.event_ids = nil
	m.appendevent_ids = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ScheduleNotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScheduleNotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScheduleNotification entity.
// If the ScheduleNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleNotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ScheduleNotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetSentAt sets the "sent_at" field.
func (m *ScheduleNotificationMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *ScheduleNotificationMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the ScheduleNotification entity.
// If the ScheduleNotification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleNotificationMutation) OldSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ClearSentAt clears the value of the "sent_at" field.
func (m *ScheduleNotificationMutation) ClearSentAt() {
	m.sent_at = nil
	m.clearedFields[schedulenotification.FieldSentAt] = struct{}{}
}

// SentAtCleared returns if the "sent_at" field was cleared in this mutation.
func (m *ScheduleNotificationMutation) SentAtCleared() bool {
	_, ok := m.clearedFields[schedulenotification.FieldSentAt]
	return ok
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *ScheduleNotificationMutation) ResetSentAt() {
	m.sent_at = nil
	delete(m.clearedFields, schedulenotification.FieldSentAt)
}

// Where appends a list predicates to the ScheduleNotificationMutation builder.
func (m *ScheduleNotificationMutation) Where(ps ...predicate.ScheduleNotification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScheduleNotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScheduleNotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScheduleNotification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScheduleNotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScheduleNotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScheduleNotification).
func (m *ScheduleNotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScheduleNotificationMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, schedulenotification.FieldUserID)
	}
	if m.schedule_date != nil {
		fields = append(fields, schedulenotification.FieldScheduleDate)
	}
	if m.source_session_id != nil {
		fields = append(fields, schedulenotification.FieldSourceSessionID)
	}
	if m.status != nil {
		fields = append(fields, schedulenotification.FieldStatus)
	}
	if m.notification_type != nil {
		fields = append(fields, schedulenotification.FieldNotificationType)
	}
	if m.message != nil {
		fields = append(fields, schedulenotification.FieldMessage)
	}
	if m.event_ids != nil {
		fields = append(fields, schedulenotification.FieldEventIds)
	}
	if m.created_at != nil {
		fields = append(fields, schedulenotification.FieldCreatedAt)
	}
	if m.sent_at != nil {
		fields = append(fields, schedulenotification.FieldSentAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScheduleNotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case schedulenotification.FieldUserID:
		return m.UserID()
	case schedulenotification.FieldScheduleDate:
		return m.ScheduleDate()
	case schedulenotification.FieldSourceSessionID:
		return m.SourceSessionID()
	case schedulenotification.FieldStatus:
		return m.Status()
	case schedulenotification.FieldNotificationType:
		return m.NotificationType()
	case schedulenotification.FieldMessage:
		return m.Message()
	case schedulenotification.FieldEventIds:
		return m.EventIds()
	case schedulenotification.FieldCreatedAt:
		return m.CreatedAt()
	case schedulenotification.FieldSentAt:
		return m.SentAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScheduleNotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case schedulenotification.FieldUserID:
		return m.OldUserID(ctx)
	case schedulenotification.FieldScheduleDate:
		return m.OldScheduleDate(ctx)
	case schedulenotification.FieldSourceSessionID:
		return m.OldSourceSessionID(ctx)
	case schedulenotification.FieldStatus:
		return m.OldStatus(ctx)
	case schedulenotification.FieldNotificationType:
		return m.OldNotificationType(ctx)
	case schedulenotification.FieldMessage:
		return m.OldMessage(ctx)
	case schedulenotification.FieldEventIds:
		return m.OldEventIds(ctx)
	case schedulenotification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case schedulenotification.FieldSentAt:
		return m.OldSentAt(ctx)
	}
	return nil, fmt.Errorf("unknown ScheduleNotification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduleNotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case schedulenotification.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case schedulenotification.FieldScheduleDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduleDate(v)
		return nil
	case schedulenotification.FieldSourceSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceSessionID(v)
		return nil
	case schedulenotification.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case schedulenotification.FieldNotificationType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotificationType(v)
		return nil
	case schedulenotification.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case schedulenotification.FieldEventIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventIds(v)
		return nil
	case schedulenotification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case schedulenotification.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduleNotification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScheduleNotificationMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, schedulenotification.FieldUserID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScheduleNotificationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case schedulenotification.FieldUserID:
		return m.AddedUserID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduleNotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case schedulenotification.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduleNotification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScheduleNotificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(schedulenotification.FieldSentAt) {
		fields = append(fields, schedulenotification.FieldSentAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScheduleNotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScheduleNotificationMutation) ClearField(name string) error {
	switch name {
	case schedulenotification.FieldSentAt:
		m.ClearSentAt()
		return nil
	}
	return fmt.Errorf("unknown ScheduleNotification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScheduleNotificationMutation) ResetField(name string) error {
	switch name {
	case schedulenotification.FieldUserID:
		m.ResetUserID()
		return nil
	case schedulenotification.FieldScheduleDate:
		m.ResetScheduleDate()
		return nil
	case schedulenotification.FieldSourceSessionID:
		m.ResetSourceSessionID()
		return nil
	case schedulenotification.FieldStatus:
		m.ResetStatus()
		return nil
	case schedulenotification.FieldNotificationType:
		m.ResetNotificationType()
		return nil
	case schedulenotification.FieldMessage:
		m.ResetMessage()
		return nil
	case schedulenotification.FieldEventIds:
		m.ResetEventIds()
		return nil
	case schedulenotification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case schedulenotification.FieldSentAt:
		m.ResetSentAt()
		return nil
	}
	return fmt.Errorf("unknown ScheduleNotification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScheduleNotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScheduleNotificationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScheduleNotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScheduleNotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScheduleNotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScheduleNotificationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScheduleNotificationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScheduleNotification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScheduleNotificationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScheduleNotification edge %s", name)
}
