// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/ent/llminteraction"
	"github.com/tarsy-project/tarsy/ent/mcpinteraction"
	"github.com/tarsy-project/tarsy/ent/stageexecution"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
)

// TimelineEventCreate is the builder for creating a TimelineEvent entity.
type TimelineEventCreate struct {
	config
	mutation *TimelineEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *TimelineEventCreate) SetSessionID(v string) *TimelineEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetExecutionID sets the "execution_id" field.
func (_c *TimelineEventCreate) SetExecutionID(v string) *TimelineEventCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_c *TimelineEventCreate) SetNillableExecutionID(v *string) *TimelineEventCreate {
	if v != nil {
		_c.SetExecutionID(*v)
	}
	return _c
}

// SetSequenceNumber sets the "sequence_number" field.
func (_c *TimelineEventCreate) SetSequenceNumber(v int) *TimelineEventCreate {
	_c.mutation.SetSequenceNumber(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TimelineEventCreate) SetCreatedAt(v time.Time) *TimelineEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TimelineEventCreate) SetNillableCreatedAt(v *time.Time) *TimelineEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TimelineEventCreate) SetUpdatedAt(v time.Time) *TimelineEventCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TimelineEventCreate) SetNillableUpdatedAt(v *time.Time) *TimelineEventCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *TimelineEventCreate) SetEventType(v timelineevent.EventType) *TimelineEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TimelineEventCreate) SetStatus(v timelineevent.Status) *TimelineEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TimelineEventCreate) SetNillableStatus(v *timelineevent.Status) *TimelineEventCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *TimelineEventCreate) SetContent(v string) *TimelineEventCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *TimelineEventCreate) SetMetadata(v map[string]interface{}) *TimelineEventCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetLlmInteractionID sets the "llm_interaction_id" field.
func (_c *TimelineEventCreate) SetLlmInteractionID(v string) *TimelineEventCreate {
	_c.mutation.SetLlmInteractionID(v)
	return _c
}

// SetNillableLlmInteractionID sets the "llm_interaction_id" field if the given value is not nil.
func (_c *TimelineEventCreate) SetNillableLlmInteractionID(v *string) *TimelineEventCreate {
	if v != nil {
		_c.SetLlmInteractionID(*v)
	}
	return _c
}

// SetMcpInteractionID sets the "mcp_interaction_id" field.
func (_c *TimelineEventCreate) SetMcpInteractionID(v string) *TimelineEventCreate {
	_c.mutation.SetMcpInteractionID(v)
	return _c
}

// SetNillableMcpInteractionID sets the "mcp_interaction_id" field if the given value is not nil.
func (_c *TimelineEventCreate) SetNillableMcpInteractionID(v *string) *TimelineEventCreate {
	if v != nil {
		_c.SetMcpInteractionID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TimelineEventCreate) SetID(v string) *TimelineEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the AlertSession entity.
func (_c *TimelineEventCreate) SetSession(v *AlertSession) *TimelineEventCreate {
	return _c.SetSessionID(v.ID)
}

// SetStageExecutionID sets the "stage_execution" edge to the StageExecution entity by ID.
func (_c *TimelineEventCreate) SetStageExecutionID(id string) *TimelineEventCreate {
	_c.mutation.SetStageExecutionID(id)
	return _c
}

// SetNillableStageExecutionID sets the "stage_execution" edge to the StageExecution entity by ID if the given value is not nil.
func (_c *TimelineEventCreate) SetNillableStageExecutionID(id *string) *TimelineEventCreate {
	if id != nil {
		_c = _c.SetStageExecutionID(*id)
	}
	return _c
}

// SetStageExecution sets the "stage_execution" edge to the StageExecution entity.
func (_c *TimelineEventCreate) SetStageExecution(v *StageExecution) *TimelineEventCreate {
	return _c.SetStageExecutionID(v.ID)
}

// SetLlmInteraction sets the "llm_interaction" edge to the LLMInteraction entity.
func (_c *TimelineEventCreate) SetLlmInteraction(v *LLMInteraction) *TimelineEventCreate {
	return _c.SetLlmInteractionID(v.ID)
}

// SetMcpInteraction sets the "mcp_interaction" edge to the MCPInteraction entity.
func (_c *TimelineEventCreate) SetMcpInteraction(v *MCPInteraction) *TimelineEventCreate {
	return _c.SetMcpInteractionID(v.ID)
}

// Mutation returns the TimelineEventMutation object of the builder.
func (_c *TimelineEventCreate) Mutation() *TimelineEventMutation {
	return _c.mutation
}

// Save creates the TimelineEvent in the database.
func (_c *TimelineEventCreate) Save(ctx context.Context) (*TimelineEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TimelineEventCreate) SaveX(ctx context.Context) *TimelineEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TimelineEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TimelineEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TimelineEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := timelineevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := timelineevent.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := timelineevent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TimelineEventCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TimelineEvent.session_id"`)}
	}
	if _, ok := _c.mutation.SequenceNumber(); !ok {
		return &ValidationError{Name: "sequence_number", err: errors.New(`ent: missing required field "TimelineEvent.sequence_number"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TimelineEvent.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TimelineEvent.updated_at"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "TimelineEvent.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := timelineevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "TimelineEvent.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TimelineEvent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := timelineevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TimelineEvent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "TimelineEvent.content"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "TimelineEvent.session"`)}
	}
	return nil
}

func (_c *TimelineEventCreate) sqlSave(ctx context.Context) (*TimelineEvent, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected TimelineEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TimelineEventCreate) createSpec() (*TimelineEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TimelineEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(timelineevent.Table, sqlgraph.NewFieldSpec(timelineevent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SequenceNumber(); ok {
		_spec.SetField(timelineevent.FieldSequenceNumber, field.TypeInt, value)
		_node.SequenceNumber = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(timelineevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(timelineevent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(timelineevent.FieldEventType, field.TypeEnum, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(timelineevent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(timelineevent.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(timelineevent.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   timelineevent.SessionTable,
			Columns: []string{timelineevent.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alertsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StageExecutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   timelineevent.StageExecutionTable,
			Columns: []string{timelineevent.StageExecutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ExecutionID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LlmInteractionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   timelineevent.LlmInteractionTable,
			Columns: []string{timelineevent.LlmInteractionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(llminteraction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.LlmInteractionID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.McpInteractionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   timelineevent.McpInteractionTable,
			Columns: []string{timelineevent.McpInteractionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mcpinteraction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.McpInteractionID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TimelineEvent.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TimelineEventUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *TimelineEventCreate) OnConflict(opts ...sql.ConflictOption) *TimelineEventUpsertOne {
	_c.conflict = opts
	return &TimelineEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TimelineEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TimelineEventCreate) OnConflictColumns(columns ...string) *TimelineEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TimelineEventUpsertOne{
		create: _c,
	}
}

type (
	// TimelineEventUpsertOne is the builder for "upsert"-ing
	//  one TimelineEvent node.
	TimelineEventUpsertOne struct {
		create *TimelineEventCreate
	}

	// TimelineEventUpsert is the "OnConflict" setter.
	TimelineEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetSequenceNumber sets the "sequence_number" field.
func (u *TimelineEventUpsert) SetSequenceNumber(v int) *TimelineEventUpsert {
	u.Set(timelineevent.FieldSequenceNumber, v)
	return u
}

// UpdateSequenceNumber sets the "sequence_number" field to the value that was provided on create.
func (u *TimelineEventUpsert) UpdateSequenceNumber() *TimelineEventUpsert {
	u.SetExcluded(timelineevent.FieldSequenceNumber)
	return u
}

// AddSequenceNumber adds v to the "sequence_number" field.
func (u *TimelineEventUpsert) AddSequenceNumber(v int) *TimelineEventUpsert {
	u.Add(timelineevent.FieldSequenceNumber, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TimelineEventUpsert) SetUpdatedAt(v time.Time) *TimelineEventUpsert {
	u.Set(timelineevent.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TimelineEventUpsert) UpdateUpdatedAt() *TimelineEventUpsert {
	u.SetExcluded(timelineevent.FieldUpdatedAt)
	return u
}

// SetEventType sets the "event_type" field.
func (u *TimelineEventUpsert) SetEventType(v timelineevent.EventType) *TimelineEventUpsert {
	u.Set(timelineevent.FieldEventType, v)
	return u
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *TimelineEventUpsert) UpdateEventType() *TimelineEventUpsert {
	u.SetExcluded(timelineevent.FieldEventType)
	return u
}

// SetStatus sets the "status" field.
func (u *TimelineEventUpsert) SetStatus(v timelineevent.Status) *TimelineEventUpsert {
	u.Set(timelineevent.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TimelineEventUpsert) UpdateStatus() *TimelineEventUpsert {
	u.SetExcluded(timelineevent.FieldStatus)
	return u
}

// SetContent sets the "content" field.
func (u *TimelineEventUpsert) SetContent(v string) *TimelineEventUpsert {
	u.Set(timelineevent.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *TimelineEventUpsert) UpdateContent() *TimelineEventUpsert {
	u.SetExcluded(timelineevent.FieldContent)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *TimelineEventUpsert) SetMetadata(v map[string]interface{}) *TimelineEventUpsert {
	u.Set(timelineevent.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *TimelineEventUpsert) UpdateMetadata() *TimelineEventUpsert {
	u.SetExcluded(timelineevent.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *TimelineEventUpsert) ClearMetadata() *TimelineEventUpsert {
	u.SetNull(timelineevent.FieldMetadata)
	return u
}

// SetLlmInteractionID sets the "llm_interaction_id" field.
func (u *TimelineEventUpsert) SetLlmInteractionID(v string) *TimelineEventUpsert {
	u.Set(timelineevent.FieldLlmInteractionID, v)
	return u
}

// UpdateLlmInteractionID sets the "llm_interaction_id" field to the value that was provided on create.
func (u *TimelineEventUpsert) UpdateLlmInteractionID() *TimelineEventUpsert {
	u.SetExcluded(timelineevent.FieldLlmInteractionID)
	return u
}

// ClearLlmInteractionID clears the value of the "llm_interaction_id" field.
func (u *TimelineEventUpsert) ClearLlmInteractionID() *TimelineEventUpsert {
	u.SetNull(timelineevent.FieldLlmInteractionID)
	return u
}

// SetMcpInteractionID sets the "mcp_interaction_id" field.
func (u *TimelineEventUpsert) SetMcpInteractionID(v string) *TimelineEventUpsert {
	u.Set(timelineevent.FieldMcpInteractionID, v)
	return u
}

// UpdateMcpInteractionID sets the "mcp_interaction_id" field to the value that was provided on create.
func (u *TimelineEventUpsert) UpdateMcpInteractionID() *TimelineEventUpsert {
	u.SetExcluded(timelineevent.FieldMcpInteractionID)
	return u
}

// ClearMcpInteractionID clears the value of the "mcp_interaction_id" field.
func (u *TimelineEventUpsert) ClearMcpInteractionID() *TimelineEventUpsert {
	u.SetNull(timelineevent.FieldMcpInteractionID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TimelineEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(timelineevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TimelineEventUpsertOne) UpdateNewValues() *TimelineEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(timelineevent.FieldID)
		}
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(timelineevent.FieldSessionID)
		}
		if _, exists := u.create.mutation.ExecutionID(); exists {
			s.SetIgnore(timelineevent.FieldExecutionID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(timelineevent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TimelineEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TimelineEventUpsertOne) Ignore() *TimelineEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TimelineEventUpsertOne) DoNothing() *TimelineEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TimelineEventCreate.OnConflict
// documentation for more info.
func (u *TimelineEventUpsertOne) Update(set func(*TimelineEventUpsert)) *TimelineEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TimelineEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSequenceNumber sets the "sequence_number" field.
func (u *TimelineEventUpsertOne) SetSequenceNumber(v int) *TimelineEventUpsertOne {
	return u.Update(func(s *TimelineEventUpsert) {
		s.SetSequenceNumber(v)
	})
}

// AddSequenceNumber adds v to the "sequence_number" field.
func (u *TimelineEventUpsertOne) AddSequenceNumber(v int) *TimelineEventUpsertOne {
	return u.Update(func(s *TimelineEventUpsert) {
		s.AddSequenceNumber(v)
	})
}

// UpdateSequenceNumber sets the "sequence_number" field to the value that was provided on create.
func (u *TimelineEventUpsertOne) UpdateSequenceNumber() *TimelineEventUpsertOne {
	return u.Update(func(s *TimelineEventUpsert) {
		s.UpdateSequenceNumber()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TimelineEventUpsertOne) SetUpdatedAt(v time.Time) *TimelineEventUpsertOne {
	return u.Update(func(s *TimelineEventUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TimelineEventUpsertOne) UpdateUpdatedAt() *TimelineEventUpsertOne {
	return u.Update(func(s *TimelineEventUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetEventType sets the "event_type" field.
func (u *TimelineEventUpsertOne) SetEventType(v timelineevent.EventType) *TimelineEventUpsertOne {
	return u.Update(func(s *TimelineEventUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *TimelineEventUpsertOne) UpdateEventType() *TimelineEventUpsertOne {
	return u.Update(func(s *TimelineEventUpsert) {
		s.UpdateEventType()
	})
}

// SetStatus sets the "status" field.
func (u *TimelineEventUpsertOne) SetStatus(v timelineevent.Status) *TimelineEventUpsertOne {
	return u.Update(func(s *TimelineEventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TimelineEventUpsertOne) UpdateStatus() *TimelineEventUpsertOne {
	return u.Update(func(s *TimelineEventUpsert) {
		s.UpdateStatus()
	})
}

// SetContent sets the "content" field.
func (u *TimelineEventUpsertOne) SetContent(v string) *TimelineEventUpsertOne {
	return u.Update(func(s *TimelineEventUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *TimelineEventUpsertOne) UpdateContent() *TimelineEventUpsertOne {
	return u.Update(func(s *TimelineEventUpsert) {
		s.UpdateContent()
	})
}

// SetMetadata sets the "metadata" field.
func (u *TimelineEventUpsertOne) SetMetadata(v map[string]interface{}) *TimelineEventUpsertOne {
	return u.Update(func(s *TimelineEventUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *TimelineEventUpsertOne) UpdateMetadata() *TimelineEventUpsertOne {
	return u.Update(func(s *TimelineEventUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *TimelineEventUpsertOne) ClearMetadata() *TimelineEventUpsertOne {
	return u.Update(func(s *TimelineEventUpsert) {
		s.ClearMetadata()
	})
}

// SetLlmInteractionID sets the "llm_interaction_id" field.
func (u *TimelineEventUpsertOne) SetLlmInteractionID(v string) *TimelineEventUpsertOne {
	return u.Update(func(s *TimelineEventUpsert) {
		s.SetLlmInteractionID(v)
	})
}

// UpdateLlmInteractionID sets the "llm_interaction_id" field to the value that was provided on create.
func (u *TimelineEventUpsertOne) UpdateLlmInteractionID() *TimelineEventUpsertOne {
	return u.Update(func(s *TimelineEventUpsert) {
		s.UpdateLlmInteractionID()
	})
}

// ClearLlmInteractionID clears the value of the "llm_interaction_id" field.
func (u *TimelineEventUpsertOne) ClearLlmInteractionID() *TimelineEventUpsertOne {
	return u.Update(func(s *TimelineEventUpsert) {
		s.ClearLlmInteractionID()
	})
}

// SetMcpInteractionID sets the "mcp_interaction_id" field.
func (u *TimelineEventUpsertOne) SetMcpInteractionID(v string) *TimelineEventUpsertOne {
	return u.Update(func(s *TimelineEventUpsert) {
		s.SetMcpInteractionID(v)
	})
}

// UpdateMcpInteractionID sets the "mcp_interaction_id" field to the value that was provided on create.
func (u *TimelineEventUpsertOne) UpdateMcpInteractionID() *TimelineEventUpsertOne {
	return u.Update(func(s *TimelineEventUpsert) {
		s.UpdateMcpInteractionID()
	})
}

// ClearMcpInteractionID clears the value of the "mcp_interaction_id" field.
func (u *TimelineEventUpsertOne) ClearMcpInteractionID() *TimelineEventUpsertOne {
	return u.Update(func(s *TimelineEventUpsert) {
		s.ClearMcpInteractionID()
	})
}

// Exec executes the query.
func (u *TimelineEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TimelineEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TimelineEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TimelineEventUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TimelineEventUpsertOne.ID is not supported by MySQL driver. Use TimelineEventUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TimelineEventUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TimelineEventCreateBulk is the builder for creating many TimelineEvent entities in bulk.
type TimelineEventCreateBulk struct {
	config
	err      error
	builders []*TimelineEventCreate
	conflict []sql.ConflictOption
}

// Save creates the TimelineEvent entities in the database.
func (_c *TimelineEventCreateBulk) Save(ctx context.Context) ([]*TimelineEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TimelineEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TimelineEventMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *TimelineEventCreateBulk) SaveX(ctx context.Context) []*TimelineEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TimelineEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TimelineEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TimelineEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TimelineEventUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *TimelineEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *TimelineEventUpsertBulk {
	_c.conflict = opts
	return &TimelineEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TimelineEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TimelineEventCreateBulk) OnConflictColumns(columns ...string) *TimelineEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TimelineEventUpsertBulk{
		create: _c,
	}
}

// TimelineEventUpsertBulk is the builder for "upsert"-ing
// a bulk of TimelineEvent nodes.
type TimelineEventUpsertBulk struct {
	create *TimelineEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TimelineEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(timelineevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TimelineEventUpsertBulk) UpdateNewValues() *TimelineEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(timelineevent.FieldID)
			}
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(timelineevent.FieldSessionID)
			}
			if _, exists := b.mutation.ExecutionID(); exists {
				s.SetIgnore(timelineevent.FieldExecutionID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(timelineevent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TimelineEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TimelineEventUpsertBulk) Ignore() *TimelineEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TimelineEventUpsertBulk) DoNothing() *TimelineEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TimelineEventCreateBulk.OnConflict
// documentation for more info.
func (u *TimelineEventUpsertBulk) Update(set func(*TimelineEventUpsert)) *TimelineEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TimelineEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSequenceNumber sets the "sequence_number" field.
func (u *TimelineEventUpsertBulk) SetSequenceNumber(v int) *TimelineEventUpsertBulk {
	return u.Update(func(s *TimelineEventUpsert) {
		s.SetSequenceNumber(v)
	})
}

// AddSequenceNumber adds v to the "sequence_number" field.
func (u *TimelineEventUpsertBulk) AddSequenceNumber(v int) *TimelineEventUpsertBulk {
	return u.Update(func(s *TimelineEventUpsert) {
		s.AddSequenceNumber(v)
	})
}

// UpdateSequenceNumber sets the "sequence_number" field to the value that was provided on create.
func (u *TimelineEventUpsertBulk) UpdateSequenceNumber() *TimelineEventUpsertBulk {
	return u.Update(func(s *TimelineEventUpsert) {
		s.UpdateSequenceNumber()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TimelineEventUpsertBulk) SetUpdatedAt(v time.Time) *TimelineEventUpsertBulk {
	return u.Update(func(s *TimelineEventUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TimelineEventUpsertBulk) UpdateUpdatedAt() *TimelineEventUpsertBulk {
	return u.Update(func(s *TimelineEventUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetEventType sets the "event_type" field.
func (u *TimelineEventUpsertBulk) SetEventType(v timelineevent.EventType) *TimelineEventUpsertBulk {
	return u.Update(func(s *TimelineEventUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *TimelineEventUpsertBulk) UpdateEventType() *TimelineEventUpsertBulk {
	return u.Update(func(s *TimelineEventUpsert) {
		s.UpdateEventType()
	})
}

// SetStatus sets the "status" field.
func (u *TimelineEventUpsertBulk) SetStatus(v timelineevent.Status) *TimelineEventUpsertBulk {
	return u.Update(func(s *TimelineEventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TimelineEventUpsertBulk) UpdateStatus() *TimelineEventUpsertBulk {
	return u.Update(func(s *TimelineEventUpsert) {
		s.UpdateStatus()
	})
}

// SetContent sets the "content" field.
func (u *TimelineEventUpsertBulk) SetContent(v string) *TimelineEventUpsertBulk {
	return u.Update(func(s *TimelineEventUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *TimelineEventUpsertBulk) UpdateContent() *TimelineEventUpsertBulk {
	return u.Update(func(s *TimelineEventUpsert) {
		s.UpdateContent()
	})
}

// SetMetadata sets the "metadata" field.
func (u *TimelineEventUpsertBulk) SetMetadata(v map[string]interface{}) *TimelineEventUpsertBulk {
	return u.Update(func(s *TimelineEventUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *TimelineEventUpsertBulk) UpdateMetadata() *TimelineEventUpsertBulk {
	return u.Update(func(s *TimelineEventUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *TimelineEventUpsertBulk) ClearMetadata() *TimelineEventUpsertBulk {
	return u.Update(func(s *TimelineEventUpsert) {
		s.ClearMetadata()
	})
}

// SetLlmInteractionID sets the "llm_interaction_id" field.
func (u *TimelineEventUpsertBulk) SetLlmInteractionID(v string) *TimelineEventUpsertBulk {
	return u.Update(func(s *TimelineEventUpsert) {
		s.SetLlmInteractionID(v)
	})
}

// UpdateLlmInteractionID sets the "llm_interaction_id" field to the value that was provided on create.
func (u *TimelineEventUpsertBulk) UpdateLlmInteractionID() *TimelineEventUpsertBulk {
	return u.Update(func(s *TimelineEventUpsert) {
		s.UpdateLlmInteractionID()
	})
}

// ClearLlmInteractionID clears the value of the "llm_interaction_id" field.
func (u *TimelineEventUpsertBulk) ClearLlmInteractionID() *TimelineEventUpsertBulk {
	return u.Update(func(s *TimelineEventUpsert) {
		s.ClearLlmInteractionID()
	})
}

// SetMcpInteractionID sets the "mcp_interaction_id" field.
func (u *TimelineEventUpsertBulk) SetMcpInteractionID(v string) *TimelineEventUpsertBulk {
	return u.Update(func(s *TimelineEventUpsert) {
		s.SetMcpInteractionID(v)
	})
}

// UpdateMcpInteractionID sets the "mcp_interaction_id" field to the value that was provided on create.
func (u *TimelineEventUpsertBulk) UpdateMcpInteractionID() *TimelineEventUpsertBulk {
	return u.Update(func(s *TimelineEventUpsert) {
		s.UpdateMcpInteractionID()
	})
}

// ClearMcpInteractionID clears the value of the "mcp_interaction_id" field.
func (u *TimelineEventUpsertBulk) ClearMcpInteractionID() *TimelineEventUpsertBulk {
	return u.Update(func(s *TimelineEventUpsert) {
		s.ClearMcpInteractionID()
	})
}

// Exec executes the query.
func (u *TimelineEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TimelineEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TimelineEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TimelineEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
