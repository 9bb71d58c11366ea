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
	"github.com/tarsy-project/tarsy/ent/mcpinteraction"
	"github.com/tarsy-project/tarsy/ent/stageexecution"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
)

// MCPInteractionCreate is the builder for creating a MCPInteraction entity.
type MCPInteractionCreate struct {
	config
	mutation *MCPInteractionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *MCPInteractionCreate) SetSessionID(v string) *MCPInteractionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetExecutionID sets the "execution_id" field.
func (_c *MCPInteractionCreate) SetExecutionID(v string) *MCPInteractionCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MCPInteractionCreate) SetCreatedAt(v time.Time) *MCPInteractionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MCPInteractionCreate) SetNillableCreatedAt(v *time.Time) *MCPInteractionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetInteractionType sets the "interaction_type" field.
func (_c *MCPInteractionCreate) SetInteractionType(v mcpinteraction.InteractionType) *MCPInteractionCreate {
	_c.mutation.SetInteractionType(v)
	return _c
}

// SetServerName sets the "server_name" field.
func (_c *MCPInteractionCreate) SetServerName(v string) *MCPInteractionCreate {
	_c.mutation.SetServerName(v)
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *MCPInteractionCreate) SetToolName(v string) *MCPInteractionCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_c *MCPInteractionCreate) SetNillableToolName(v *string) *MCPInteractionCreate {
	if v != nil {
		_c.SetToolName(*v)
	}
	return _c
}

// SetToolArguments sets the "tool_arguments" field.
func (_c *MCPInteractionCreate) SetToolArguments(v map[string]interface{}) *MCPInteractionCreate {
	_c.mutation.SetToolArguments(v)
	return _c
}

// SetToolResult sets the "tool_result" field.
func (_c *MCPInteractionCreate) SetToolResult(v string) *MCPInteractionCreate {
	_c.mutation.SetToolResult(v)
	return _c
}

// SetNillableToolResult sets the "tool_result" field if the given value is not nil.
func (_c *MCPInteractionCreate) SetNillableToolResult(v *string) *MCPInteractionCreate {
	if v != nil {
		_c.SetToolResult(*v)
	}
	return _c
}

// SetAvailableTools sets the "available_tools" field.
func (_c *MCPInteractionCreate) SetAvailableTools(v []interface{}) *MCPInteractionCreate {
	_c.mutation.SetAvailableTools(v)
	return _c
}

// SetMasked sets the "masked" field.
func (_c *MCPInteractionCreate) SetMasked(v bool) *MCPInteractionCreate {
	_c.mutation.SetMasked(v)
	return _c
}

// SetNillableMasked sets the "masked" field if the given value is not nil.
func (_c *MCPInteractionCreate) SetNillableMasked(v *bool) *MCPInteractionCreate {
	if v != nil {
		_c.SetMasked(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *MCPInteractionCreate) SetDurationMs(v int) *MCPInteractionCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *MCPInteractionCreate) SetNillableDurationMs(v *int) *MCPInteractionCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *MCPInteractionCreate) SetErrorMessage(v string) *MCPInteractionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *MCPInteractionCreate) SetNillableErrorMessage(v *string) *MCPInteractionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MCPInteractionCreate) SetID(v string) *MCPInteractionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the AlertSession entity.
func (_c *MCPInteractionCreate) SetSession(v *AlertSession) *MCPInteractionCreate {
	return _c.SetSessionID(v.ID)
}

// SetStageExecutionID sets the "stage_execution" edge to the StageExecution entity by ID.
func (_c *MCPInteractionCreate) SetStageExecutionID(id string) *MCPInteractionCreate {
	_c.mutation.SetStageExecutionID(id)
	return _c
}

// SetStageExecution sets the "stage_execution" edge to the StageExecution entity.
func (_c *MCPInteractionCreate) SetStageExecution(v *StageExecution) *MCPInteractionCreate {
	return _c.SetStageExecutionID(v.ID)
}

// AddTimelineEventIDs adds the "timeline_events" edge to the TimelineEvent entity by IDs.
func (_c *MCPInteractionCreate) AddTimelineEventIDs(ids ...string) *MCPInteractionCreate {
	_c.mutation.AddTimelineEventIDs(ids...)
	return _c
}

// AddTimelineEvents adds the "timeline_events" edges to the TimelineEvent entity.
func (_c *MCPInteractionCreate) AddTimelineEvents(v ...*TimelineEvent) *MCPInteractionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTimelineEventIDs(ids...)
}

// Mutation returns the MCPInteractionMutation object of the builder.
func (_c *MCPInteractionCreate) Mutation() *MCPInteractionMutation {
	return _c.mutation
}

// Save creates the MCPInteraction in the database.
func (_c *MCPInteractionCreate) Save(ctx context.Context) (*MCPInteraction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MCPInteractionCreate) SaveX(ctx context.Context) *MCPInteraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MCPInteractionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MCPInteractionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MCPInteractionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mcpinteraction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Masked(); !ok {
		v := mcpinteraction.DefaultMasked
		_c.mutation.SetMasked(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MCPInteractionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "MCPInteraction.session_id"`)}
	}
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "MCPInteraction.execution_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MCPInteraction.created_at"`)}
	}
	if _, ok := _c.mutation.InteractionType(); !ok {
		return &ValidationError{Name: "interaction_type", err: errors.New(`ent: missing required field "MCPInteraction.interaction_type"`)}
	}
	if v, ok := _c.mutation.InteractionType(); ok {
		if err := mcpinteraction.InteractionTypeValidator(v); err != nil {
			return &ValidationError{Name: "interaction_type", err: fmt.Errorf(`ent: validator failed for field "MCPInteraction.interaction_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ServerName(); !ok {
		return &ValidationError{Name: "server_name", err: errors.New(`ent: missing required field "MCPInteraction.server_name"`)}
	}
	if _, ok := _c.mutation.Masked(); !ok {
		return &ValidationError{Name: "masked", err: errors.New(`ent: missing required field "MCPInteraction.masked"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "MCPInteraction.session"`)}
	}
	if len(_c.mutation.StageExecutionIDs()) == 0 {
		return &ValidationError{Name: "stage_execution", err: errors.New(`ent: missing required edge "MCPInteraction.stage_execution"`)}
	}
	return nil
}

func (_c *MCPInteractionCreate) sqlSave(ctx context.Context) (*MCPInteraction, error) {
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
			return nil, fmt.Errorf("unexpected MCPInteraction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MCPInteractionCreate) createSpec() (*MCPInteraction, *sqlgraph.CreateSpec) {
	var (
		_node = &MCPInteraction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mcpinteraction.Table, sqlgraph.NewFieldSpec(mcpinteraction.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mcpinteraction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.InteractionType(); ok {
		_spec.SetField(mcpinteraction.FieldInteractionType, field.TypeEnum, value)
		_node.InteractionType = value
	}
	if value, ok := _c.mutation.ServerName(); ok {
		_spec.SetField(mcpinteraction.FieldServerName, field.TypeString, value)
		_node.ServerName = value
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(mcpinteraction.FieldToolName, field.TypeString, value)
		_node.ToolName = &value
	}
	if value, ok := _c.mutation.ToolArguments(); ok {
		_spec.SetField(mcpinteraction.FieldToolArguments, field.TypeJSON, value)
		_node.ToolArguments = value
	}
	if value, ok := _c.mutation.ToolResult(); ok {
		_spec.SetField(mcpinteraction.FieldToolResult, field.TypeString, value)
		_node.ToolResult = &value
	}
	if value, ok := _c.mutation.AvailableTools(); ok {
		_spec.SetField(mcpinteraction.FieldAvailableTools, field.TypeJSON, value)
		_node.AvailableTools = value
	}
	if value, ok := _c.mutation.Masked(); ok {
		_spec.SetField(mcpinteraction.FieldMasked, field.TypeBool, value)
		_node.Masked = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(mcpinteraction.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(mcpinteraction.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mcpinteraction.SessionTable,
			Columns: []string{mcpinteraction.SessionColumn},
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
			Table:   mcpinteraction.StageExecutionTable,
			Columns: []string{mcpinteraction.StageExecutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ExecutionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TimelineEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mcpinteraction.TimelineEventsTable,
			Columns: []string{mcpinteraction.TimelineEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timelineevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MCPInteraction.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MCPInteractionUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *MCPInteractionCreate) OnConflict(opts ...sql.ConflictOption) *MCPInteractionUpsertOne {
	_c.conflict = opts
	return &MCPInteractionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MCPInteraction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MCPInteractionCreate) OnConflictColumns(columns ...string) *MCPInteractionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MCPInteractionUpsertOne{
		create: _c,
	}
}

type (
	// MCPInteractionUpsertOne is the builder for "upsert"-ing
	//  one MCPInteraction node.
	MCPInteractionUpsertOne struct {
		create *MCPInteractionCreate
	}

	// MCPInteractionUpsert is the "OnConflict" setter.
	MCPInteractionUpsert struct {
		*sql.UpdateSet
	}
)

// SetInteractionType sets the "interaction_type" field.
func (u *MCPInteractionUpsert) SetInteractionType(v mcpinteraction.InteractionType) *MCPInteractionUpsert {
	u.Set(mcpinteraction.FieldInteractionType, v)
	return u
}

// UpdateInteractionType sets the "interaction_type" field to the value that was provided on create.
func (u *MCPInteractionUpsert) UpdateInteractionType() *MCPInteractionUpsert {
	u.SetExcluded(mcpinteraction.FieldInteractionType)
	return u
}

// SetServerName sets the "server_name" field.
func (u *MCPInteractionUpsert) SetServerName(v string) *MCPInteractionUpsert {
	u.Set(mcpinteraction.FieldServerName, v)
	return u
}

// UpdateServerName sets the "server_name" field to the value that was provided on create.
func (u *MCPInteractionUpsert) UpdateServerName() *MCPInteractionUpsert {
	u.SetExcluded(mcpinteraction.FieldServerName)
	return u
}

// SetToolName sets the "tool_name" field.
func (u *MCPInteractionUpsert) SetToolName(v string) *MCPInteractionUpsert {
	u.Set(mcpinteraction.FieldToolName, v)
	return u
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *MCPInteractionUpsert) UpdateToolName() *MCPInteractionUpsert {
	u.SetExcluded(mcpinteraction.FieldToolName)
	return u
}

// ClearToolName clears the value of the "tool_name" field.
func (u *MCPInteractionUpsert) ClearToolName() *MCPInteractionUpsert {
	u.SetNull(mcpinteraction.FieldToolName)
	return u
}

// SetToolArguments sets the "tool_arguments" field.
func (u *MCPInteractionUpsert) SetToolArguments(v map[string]interface{}) *MCPInteractionUpsert {
	u.Set(mcpinteraction.FieldToolArguments, v)
	return u
}

// UpdateToolArguments sets the "tool_arguments" field to the value that was provided on create.
func (u *MCPInteractionUpsert) UpdateToolArguments() *MCPInteractionUpsert {
	u.SetExcluded(mcpinteraction.FieldToolArguments)
	return u
}

// ClearToolArguments clears the value of the "tool_arguments" field.
func (u *MCPInteractionUpsert) ClearToolArguments() *MCPInteractionUpsert {
	u.SetNull(mcpinteraction.FieldToolArguments)
	return u
}

// SetToolResult sets the "tool_result" field.
func (u *MCPInteractionUpsert) SetToolResult(v string) *MCPInteractionUpsert {
	u.Set(mcpinteraction.FieldToolResult, v)
	return u
}

// UpdateToolResult sets the "tool_result" field to the value that was provided on create.
func (u *MCPInteractionUpsert) UpdateToolResult() *MCPInteractionUpsert {
	u.SetExcluded(mcpinteraction.FieldToolResult)
	return u
}

// ClearToolResult clears the value of the "tool_result" field.
func (u *MCPInteractionUpsert) ClearToolResult() *MCPInteractionUpsert {
	u.SetNull(mcpinteraction.FieldToolResult)
	return u
}

// SetAvailableTools sets the "available_tools" field.
func (u *MCPInteractionUpsert) SetAvailableTools(v []interface{}) *MCPInteractionUpsert {
	u.Set(mcpinteraction.FieldAvailableTools, v)
	return u
}

// UpdateAvailableTools sets the "available_tools" field to the value that was provided on create.
func (u *MCPInteractionUpsert) UpdateAvailableTools() *MCPInteractionUpsert {
	u.SetExcluded(mcpinteraction.FieldAvailableTools)
	return u
}

// ClearAvailableTools clears the value of the "available_tools" field.
func (u *MCPInteractionUpsert) ClearAvailableTools() *MCPInteractionUpsert {
	u.SetNull(mcpinteraction.FieldAvailableTools)
	return u
}

// SetMasked sets the "masked" field.
func (u *MCPInteractionUpsert) SetMasked(v bool) *MCPInteractionUpsert {
	u.Set(mcpinteraction.FieldMasked, v)
	return u
}

// UpdateMasked sets the "masked" field to the value that was provided on create.
func (u *MCPInteractionUpsert) UpdateMasked() *MCPInteractionUpsert {
	u.SetExcluded(mcpinteraction.FieldMasked)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *MCPInteractionUpsert) SetDurationMs(v int) *MCPInteractionUpsert {
	u.Set(mcpinteraction.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *MCPInteractionUpsert) UpdateDurationMs() *MCPInteractionUpsert {
	u.SetExcluded(mcpinteraction.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *MCPInteractionUpsert) AddDurationMs(v int) *MCPInteractionUpsert {
	u.Add(mcpinteraction.FieldDurationMs, v)
	return u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *MCPInteractionUpsert) ClearDurationMs() *MCPInteractionUpsert {
	u.SetNull(mcpinteraction.FieldDurationMs)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *MCPInteractionUpsert) SetErrorMessage(v string) *MCPInteractionUpsert {
	u.Set(mcpinteraction.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *MCPInteractionUpsert) UpdateErrorMessage() *MCPInteractionUpsert {
	u.SetExcluded(mcpinteraction.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *MCPInteractionUpsert) ClearErrorMessage() *MCPInteractionUpsert {
	u.SetNull(mcpinteraction.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MCPInteraction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mcpinteraction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MCPInteractionUpsertOne) UpdateNewValues() *MCPInteractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(mcpinteraction.FieldID)
		}
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(mcpinteraction.FieldSessionID)
		}
		if _, exists := u.create.mutation.ExecutionID(); exists {
			s.SetIgnore(mcpinteraction.FieldExecutionID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(mcpinteraction.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MCPInteraction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MCPInteractionUpsertOne) Ignore() *MCPInteractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MCPInteractionUpsertOne) DoNothing() *MCPInteractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MCPInteractionCreate.OnConflict
// documentation for more info.
func (u *MCPInteractionUpsertOne) Update(set func(*MCPInteractionUpsert)) *MCPInteractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MCPInteractionUpsert{UpdateSet: update})
	}))
	return u
}

// SetInteractionType sets the "interaction_type" field.
func (u *MCPInteractionUpsertOne) SetInteractionType(v mcpinteraction.InteractionType) *MCPInteractionUpsertOne {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.SetInteractionType(v)
	})
}

// UpdateInteractionType sets the "interaction_type" field to the value that was provided on create.
func (u *MCPInteractionUpsertOne) UpdateInteractionType() *MCPInteractionUpsertOne {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.UpdateInteractionType()
	})
}

// SetServerName sets the "server_name" field.
func (u *MCPInteractionUpsertOne) SetServerName(v string) *MCPInteractionUpsertOne {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.SetServerName(v)
	})
}

// UpdateServerName sets the "server_name" field to the value that was provided on create.
func (u *MCPInteractionUpsertOne) UpdateServerName() *MCPInteractionUpsertOne {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.UpdateServerName()
	})
}

// SetToolName sets the "tool_name" field.
func (u *MCPInteractionUpsertOne) SetToolName(v string) *MCPInteractionUpsertOne {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.SetToolName(v)
	})
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *MCPInteractionUpsertOne) UpdateToolName() *MCPInteractionUpsertOne {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.UpdateToolName()
	})
}

// ClearToolName clears the value of the "tool_name" field.
func (u *MCPInteractionUpsertOne) ClearToolName() *MCPInteractionUpsertOne {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.ClearToolName()
	})
}

// SetToolArguments sets the "tool_arguments" field.
func (u *MCPInteractionUpsertOne) SetToolArguments(v map[string]interface{}) *MCPInteractionUpsertOne {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.SetToolArguments(v)
	})
}

// UpdateToolArguments sets the "tool_arguments" field to the value that was provided on create.
func (u *MCPInteractionUpsertOne) UpdateToolArguments() *MCPInteractionUpsertOne {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.UpdateToolArguments()
	})
}

// ClearToolArguments clears the value of the "tool_arguments" field.
func (u *MCPInteractionUpsertOne) ClearToolArguments() *MCPInteractionUpsertOne {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.ClearToolArguments()
	})
}

// SetToolResult sets the "tool_result" field.
func (u *MCPInteractionUpsertOne) SetToolResult(v string) *MCPInteractionUpsertOne {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.SetToolResult(v)
	})
}

// UpdateToolResult sets the "tool_result" field to the value that was provided on create.
func (u *MCPInteractionUpsertOne) UpdateToolResult() *MCPInteractionUpsertOne {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.UpdateToolResult()
	})
}

// ClearToolResult clears the value of the "tool_result" field.
func (u *MCPInteractionUpsertOne) ClearToolResult() *MCPInteractionUpsertOne {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.ClearToolResult()
	})
}

// SetAvailableTools sets the "available_tools" field.
func (u *MCPInteractionUpsertOne) SetAvailableTools(v []interface{}) *MCPInteractionUpsertOne {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.SetAvailableTools(v)
	})
}

// UpdateAvailableTools sets the "available_tools" field to the value that was provided on create.
func (u *MCPInteractionUpsertOne) UpdateAvailableTools() *MCPInteractionUpsertOne {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.UpdateAvailableTools()
	})
}

// ClearAvailableTools clears the value of the "available_tools" field.
func (u *MCPInteractionUpsertOne) ClearAvailableTools() *MCPInteractionUpsertOne {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.ClearAvailableTools()
	})
}

// SetMasked sets the "masked" field.
func (u *MCPInteractionUpsertOne) SetMasked(v bool) *MCPInteractionUpsertOne {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.SetMasked(v)
	})
}

// UpdateMasked sets the "masked" field to the value that was provided on create.
func (u *MCPInteractionUpsertOne) UpdateMasked() *MCPInteractionUpsertOne {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.UpdateMasked()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *MCPInteractionUpsertOne) SetDurationMs(v int) *MCPInteractionUpsertOne {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *MCPInteractionUpsertOne) AddDurationMs(v int) *MCPInteractionUpsertOne {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *MCPInteractionUpsertOne) UpdateDurationMs() *MCPInteractionUpsertOne {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *MCPInteractionUpsertOne) ClearDurationMs() *MCPInteractionUpsertOne {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.ClearDurationMs()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *MCPInteractionUpsertOne) SetErrorMessage(v string) *MCPInteractionUpsertOne {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *MCPInteractionUpsertOne) UpdateErrorMessage() *MCPInteractionUpsertOne {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *MCPInteractionUpsertOne) ClearErrorMessage() *MCPInteractionUpsertOne {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *MCPInteractionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MCPInteractionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MCPInteractionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MCPInteractionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MCPInteractionUpsertOne.ID is not supported by MySQL driver. Use MCPInteractionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MCPInteractionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MCPInteractionCreateBulk is the builder for creating many MCPInteraction entities in bulk.
type MCPInteractionCreateBulk struct {
	config
	err      error
	builders []*MCPInteractionCreate
	conflict []sql.ConflictOption
}

// Save creates the MCPInteraction entities in the database.
func (_c *MCPInteractionCreateBulk) Save(ctx context.Context) ([]*MCPInteraction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MCPInteraction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MCPInteractionMutation)
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
func (_c *MCPInteractionCreateBulk) SaveX(ctx context.Context) []*MCPInteraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MCPInteractionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MCPInteractionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MCPInteraction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MCPInteractionUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *MCPInteractionCreateBulk) OnConflict(opts ...sql.ConflictOption) *MCPInteractionUpsertBulk {
	_c.conflict = opts
	return &MCPInteractionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MCPInteraction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MCPInteractionCreateBulk) OnConflictColumns(columns ...string) *MCPInteractionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MCPInteractionUpsertBulk{
		create: _c,
	}
}

// MCPInteractionUpsertBulk is the builder for "upsert"-ing
// a bulk of MCPInteraction nodes.
type MCPInteractionUpsertBulk struct {
	create *MCPInteractionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MCPInteraction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mcpinteraction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MCPInteractionUpsertBulk) UpdateNewValues() *MCPInteractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(mcpinteraction.FieldID)
			}
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(mcpinteraction.FieldSessionID)
			}
			if _, exists := b.mutation.ExecutionID(); exists {
				s.SetIgnore(mcpinteraction.FieldExecutionID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(mcpinteraction.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MCPInteraction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MCPInteractionUpsertBulk) Ignore() *MCPInteractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MCPInteractionUpsertBulk) DoNothing() *MCPInteractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MCPInteractionCreateBulk.OnConflict
// documentation for more info.
func (u *MCPInteractionUpsertBulk) Update(set func(*MCPInteractionUpsert)) *MCPInteractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MCPInteractionUpsert{UpdateSet: update})
	}))
	return u
}

// SetInteractionType sets the "interaction_type" field.
func (u *MCPInteractionUpsertBulk) SetInteractionType(v mcpinteraction.InteractionType) *MCPInteractionUpsertBulk {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.SetInteractionType(v)
	})
}

// UpdateInteractionType sets the "interaction_type" field to the value that was provided on create.
func (u *MCPInteractionUpsertBulk) UpdateInteractionType() *MCPInteractionUpsertBulk {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.UpdateInteractionType()
	})
}

// SetServerName sets the "server_name" field.
func (u *MCPInteractionUpsertBulk) SetServerName(v string) *MCPInteractionUpsertBulk {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.SetServerName(v)
	})
}

// UpdateServerName sets the "server_name" field to the value that was provided on create.
func (u *MCPInteractionUpsertBulk) UpdateServerName() *MCPInteractionUpsertBulk {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.UpdateServerName()
	})
}

// SetToolName sets the "tool_name" field.
func (u *MCPInteractionUpsertBulk) SetToolName(v string) *MCPInteractionUpsertBulk {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.SetToolName(v)
	})
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *MCPInteractionUpsertBulk) UpdateToolName() *MCPInteractionUpsertBulk {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.UpdateToolName()
	})
}

// ClearToolName clears the value of the "tool_name" field.
func (u *MCPInteractionUpsertBulk) ClearToolName() *MCPInteractionUpsertBulk {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.ClearToolName()
	})
}

// SetToolArguments sets the "tool_arguments" field.
func (u *MCPInteractionUpsertBulk) SetToolArguments(v map[string]interface{}) *MCPInteractionUpsertBulk {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.SetToolArguments(v)
	})
}

// UpdateToolArguments sets the "tool_arguments" field to the value that was provided on create.
func (u *MCPInteractionUpsertBulk) UpdateToolArguments() *MCPInteractionUpsertBulk {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.UpdateToolArguments()
	})
}

// ClearToolArguments clears the value of the "tool_arguments" field.
func (u *MCPInteractionUpsertBulk) ClearToolArguments() *MCPInteractionUpsertBulk {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.ClearToolArguments()
	})
}

// SetToolResult sets the "tool_result" field.
func (u *MCPInteractionUpsertBulk) SetToolResult(v string) *MCPInteractionUpsertBulk {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.SetToolResult(v)
	})
}

// UpdateToolResult sets the "tool_result" field to the value that was provided on create.
func (u *MCPInteractionUpsertBulk) UpdateToolResult() *MCPInteractionUpsertBulk {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.UpdateToolResult()
	})
}

// ClearToolResult clears the value of the "tool_result" field.
func (u *MCPInteractionUpsertBulk) ClearToolResult() *MCPInteractionUpsertBulk {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.ClearToolResult()
	})
}

// SetAvailableTools sets the "available_tools" field.
func (u *MCPInteractionUpsertBulk) SetAvailableTools(v []interface{}) *MCPInteractionUpsertBulk {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.SetAvailableTools(v)
	})
}

// UpdateAvailableTools sets the "available_tools" field to the value that was provided on create.
func (u *MCPInteractionUpsertBulk) UpdateAvailableTools() *MCPInteractionUpsertBulk {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.UpdateAvailableTools()
	})
}

// ClearAvailableTools clears the value of the "available_tools" field.
func (u *MCPInteractionUpsertBulk) ClearAvailableTools() *MCPInteractionUpsertBulk {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.ClearAvailableTools()
	})
}

// SetMasked sets the "masked" field.
func (u *MCPInteractionUpsertBulk) SetMasked(v bool) *MCPInteractionUpsertBulk {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.SetMasked(v)
	})
}

// UpdateMasked sets the "masked" field to the value that was provided on create.
func (u *MCPInteractionUpsertBulk) UpdateMasked() *MCPInteractionUpsertBulk {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.UpdateMasked()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *MCPInteractionUpsertBulk) SetDurationMs(v int) *MCPInteractionUpsertBulk {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *MCPInteractionUpsertBulk) AddDurationMs(v int) *MCPInteractionUpsertBulk {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *MCPInteractionUpsertBulk) UpdateDurationMs() *MCPInteractionUpsertBulk {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *MCPInteractionUpsertBulk) ClearDurationMs() *MCPInteractionUpsertBulk {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.ClearDurationMs()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *MCPInteractionUpsertBulk) SetErrorMessage(v string) *MCPInteractionUpsertBulk {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *MCPInteractionUpsertBulk) UpdateErrorMessage() *MCPInteractionUpsertBulk {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *MCPInteractionUpsertBulk) ClearErrorMessage() *MCPInteractionUpsertBulk {
	return u.Update(func(s *MCPInteractionUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *MCPInteractionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MCPInteractionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MCPInteractionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MCPInteractionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
