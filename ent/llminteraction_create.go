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
	"github.com/tarsy-project/tarsy/ent/stageexecution"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
)

// LLMInteractionCreate is the builder for creating a LLMInteraction entity.
type LLMInteractionCreate struct {
	config
	mutation *LLMInteractionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *LLMInteractionCreate) SetSessionID(v string) *LLMInteractionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetExecutionID sets the "execution_id" field.
func (_c *LLMInteractionCreate) SetExecutionID(v string) *LLMInteractionCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LLMInteractionCreate) SetCreatedAt(v time.Time) *LLMInteractionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LLMInteractionCreate) SetNillableCreatedAt(v *time.Time) *LLMInteractionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetInteractionType sets the "interaction_type" field.
func (_c *LLMInteractionCreate) SetInteractionType(v llminteraction.InteractionType) *LLMInteractionCreate {
	_c.mutation.SetInteractionType(v)
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *LLMInteractionCreate) SetModelName(v string) *LLMInteractionCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *LLMInteractionCreate) SetProvider(v string) *LLMInteractionCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetConversation sets the "conversation" field.
func (_c *LLMInteractionCreate) SetConversation(v []map[string]interface{}) *LLMInteractionCreate {
	_c.mutation.SetConversation(v)
	return _c
}

// SetThinkingContent sets the "thinking_content" field.
func (_c *LLMInteractionCreate) SetThinkingContent(v string) *LLMInteractionCreate {
	_c.mutation.SetThinkingContent(v)
	return _c
}

// SetNillableThinkingContent sets the "thinking_content" field if the given value is not nil.
func (_c *LLMInteractionCreate) SetNillableThinkingContent(v *string) *LLMInteractionCreate {
	if v != nil {
		_c.SetThinkingContent(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *LLMInteractionCreate) SetInputTokens(v int) *LLMInteractionCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *LLMInteractionCreate) SetNillableInputTokens(v *int) *LLMInteractionCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *LLMInteractionCreate) SetOutputTokens(v int) *LLMInteractionCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *LLMInteractionCreate) SetNillableOutputTokens(v *int) *LLMInteractionCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *LLMInteractionCreate) SetTotalTokens(v int) *LLMInteractionCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *LLMInteractionCreate) SetNillableTotalTokens(v *int) *LLMInteractionCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *LLMInteractionCreate) SetDurationMs(v int) *LLMInteractionCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *LLMInteractionCreate) SetNillableDurationMs(v *int) *LLMInteractionCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *LLMInteractionCreate) SetErrorMessage(v string) *LLMInteractionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *LLMInteractionCreate) SetNillableErrorMessage(v *string) *LLMInteractionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LLMInteractionCreate) SetID(v string) *LLMInteractionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the AlertSession entity.
func (_c *LLMInteractionCreate) SetSession(v *AlertSession) *LLMInteractionCreate {
	return _c.SetSessionID(v.ID)
}

// SetStageExecutionID sets the "stage_execution" edge to the StageExecution entity by ID.
func (_c *LLMInteractionCreate) SetStageExecutionID(id string) *LLMInteractionCreate {
	_c.mutation.SetStageExecutionID(id)
	return _c
}

// SetStageExecution sets the "stage_execution" edge to the StageExecution entity.
func (_c *LLMInteractionCreate) SetStageExecution(v *StageExecution) *LLMInteractionCreate {
	return _c.SetStageExecutionID(v.ID)
}

// AddTimelineEventIDs adds the "timeline_events" edge to the TimelineEvent entity by IDs.
func (_c *LLMInteractionCreate) AddTimelineEventIDs(ids ...string) *LLMInteractionCreate {
	_c.mutation.AddTimelineEventIDs(ids...)
	return _c
}

// AddTimelineEvents adds the "timeline_events" edges to the TimelineEvent entity.
func (_c *LLMInteractionCreate) AddTimelineEvents(v ...*TimelineEvent) *LLMInteractionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTimelineEventIDs(ids...)
}

// Mutation returns the LLMInteractionMutation object of the builder.
func (_c *LLMInteractionCreate) Mutation() *LLMInteractionMutation {
	return _c.mutation
}

// Save creates the LLMInteraction in the database.
func (_c *LLMInteractionCreate) Save(ctx context.Context) (*LLMInteraction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LLMInteractionCreate) SaveX(ctx context.Context) *LLMInteraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMInteractionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMInteractionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LLMInteractionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := llminteraction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LLMInteractionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "LLMInteraction.session_id"`)}
	}
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "LLMInteraction.execution_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LLMInteraction.created_at"`)}
	}
	if _, ok := _c.mutation.InteractionType(); !ok {
		return &ValidationError{Name: "interaction_type", err: errors.New(`ent: missing required field "LLMInteraction.interaction_type"`)}
	}
	if v, ok := _c.mutation.InteractionType(); ok {
		if err := llminteraction.InteractionTypeValidator(v); err != nil {
			return &ValidationError{Name: "interaction_type", err: fmt.Errorf(`ent: validator failed for field "LLMInteraction.interaction_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModelName(); !ok {
		return &ValidationError{Name: "model_name", err: errors.New(`ent: missing required field "LLMInteraction.model_name"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "LLMInteraction.provider"`)}
	}
	if _, ok := _c.mutation.Conversation(); !ok {
		return &ValidationError{Name: "conversation", err: errors.New(`ent: missing required field "LLMInteraction.conversation"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "LLMInteraction.session"`)}
	}
	if len(_c.mutation.StageExecutionIDs()) == 0 {
		return &ValidationError{Name: "stage_execution", err: errors.New(`ent: missing required edge "LLMInteraction.stage_execution"`)}
	}
	return nil
}

func (_c *LLMInteractionCreate) sqlSave(ctx context.Context) (*LLMInteraction, error) {
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
			return nil, fmt.Errorf("unexpected LLMInteraction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LLMInteractionCreate) createSpec() (*LLMInteraction, *sqlgraph.CreateSpec) {
	var (
		_node = &LLMInteraction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(llminteraction.Table, sqlgraph.NewFieldSpec(llminteraction.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(llminteraction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.InteractionType(); ok {
		_spec.SetField(llminteraction.FieldInteractionType, field.TypeEnum, value)
		_node.InteractionType = value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(llminteraction.FieldModelName, field.TypeString, value)
		_node.ModelName = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(llminteraction.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Conversation(); ok {
		_spec.SetField(llminteraction.FieldConversation, field.TypeJSON, value)
		_node.Conversation = value
	}
	if value, ok := _c.mutation.ThinkingContent(); ok {
		_spec.SetField(llminteraction.FieldThinkingContent, field.TypeString, value)
		_node.ThinkingContent = &value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(llminteraction.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = &value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(llminteraction.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = &value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(llminteraction.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(llminteraction.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(llminteraction.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   llminteraction.SessionTable,
			Columns: []string{llminteraction.SessionColumn},
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
			Table:   llminteraction.StageExecutionTable,
			Columns: []string{llminteraction.StageExecutionColumn},
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
			Table:   llminteraction.TimelineEventsTable,
			Columns: []string{llminteraction.TimelineEventsColumn},
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
//	client.LLMInteraction.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LLMInteractionUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *LLMInteractionCreate) OnConflict(opts ...sql.ConflictOption) *LLMInteractionUpsertOne {
	_c.conflict = opts
	return &LLMInteractionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LLMInteraction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LLMInteractionCreate) OnConflictColumns(columns ...string) *LLMInteractionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LLMInteractionUpsertOne{
		create: _c,
	}
}

type (
	// LLMInteractionUpsertOne is the builder for "upsert"-ing
	//  one LLMInteraction node.
	LLMInteractionUpsertOne struct {
		create *LLMInteractionCreate
	}

	// LLMInteractionUpsert is the "OnConflict" setter.
	LLMInteractionUpsert struct {
		*sql.UpdateSet
	}
)

// SetInteractionType sets the "interaction_type" field.
func (u *LLMInteractionUpsert) SetInteractionType(v llminteraction.InteractionType) *LLMInteractionUpsert {
	u.Set(llminteraction.FieldInteractionType, v)
	return u
}

// UpdateInteractionType sets the "interaction_type" field to the value that was provided on create.
func (u *LLMInteractionUpsert) UpdateInteractionType() *LLMInteractionUpsert {
	u.SetExcluded(llminteraction.FieldInteractionType)
	return u
}

// SetModelName sets the "model_name" field.
func (u *LLMInteractionUpsert) SetModelName(v string) *LLMInteractionUpsert {
	u.Set(llminteraction.FieldModelName, v)
	return u
}

// UpdateModelName sets the "model_name" field to the value that was provided on create.
func (u *LLMInteractionUpsert) UpdateModelName() *LLMInteractionUpsert {
	u.SetExcluded(llminteraction.FieldModelName)
	return u
}

// SetProvider sets the "provider" field.
func (u *LLMInteractionUpsert) SetProvider(v string) *LLMInteractionUpsert {
	u.Set(llminteraction.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LLMInteractionUpsert) UpdateProvider() *LLMInteractionUpsert {
	u.SetExcluded(llminteraction.FieldProvider)
	return u
}

// SetConversation sets the "conversation" field.
func (u *LLMInteractionUpsert) SetConversation(v []map[string]interface{}) *LLMInteractionUpsert {
	u.Set(llminteraction.FieldConversation, v)
	return u
}

// UpdateConversation sets the "conversation" field to the value that was provided on create.
func (u *LLMInteractionUpsert) UpdateConversation() *LLMInteractionUpsert {
	u.SetExcluded(llminteraction.FieldConversation)
	return u
}

// SetThinkingContent sets the "thinking_content" field.
func (u *LLMInteractionUpsert) SetThinkingContent(v string) *LLMInteractionUpsert {
	u.Set(llminteraction.FieldThinkingContent, v)
	return u
}

// UpdateThinkingContent sets the "thinking_content" field to the value that was provided on create.
func (u *LLMInteractionUpsert) UpdateThinkingContent() *LLMInteractionUpsert {
	u.SetExcluded(llminteraction.FieldThinkingContent)
	return u
}

// ClearThinkingContent clears the value of the "thinking_content" field.
func (u *LLMInteractionUpsert) ClearThinkingContent() *LLMInteractionUpsert {
	u.SetNull(llminteraction.FieldThinkingContent)
	return u
}

// SetInputTokens sets the "input_tokens" field.
func (u *LLMInteractionUpsert) SetInputTokens(v int) *LLMInteractionUpsert {
	u.Set(llminteraction.FieldInputTokens, v)
	return u
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *LLMInteractionUpsert) UpdateInputTokens() *LLMInteractionUpsert {
	u.SetExcluded(llminteraction.FieldInputTokens)
	return u
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *LLMInteractionUpsert) AddInputTokens(v int) *LLMInteractionUpsert {
	u.Add(llminteraction.FieldInputTokens, v)
	return u
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (u *LLMInteractionUpsert) ClearInputTokens() *LLMInteractionUpsert {
	u.SetNull(llminteraction.FieldInputTokens)
	return u
}

// SetOutputTokens sets the "output_tokens" field.
func (u *LLMInteractionUpsert) SetOutputTokens(v int) *LLMInteractionUpsert {
	u.Set(llminteraction.FieldOutputTokens, v)
	return u
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *LLMInteractionUpsert) UpdateOutputTokens() *LLMInteractionUpsert {
	u.SetExcluded(llminteraction.FieldOutputTokens)
	return u
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *LLMInteractionUpsert) AddOutputTokens(v int) *LLMInteractionUpsert {
	u.Add(llminteraction.FieldOutputTokens, v)
	return u
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (u *LLMInteractionUpsert) ClearOutputTokens() *LLMInteractionUpsert {
	u.SetNull(llminteraction.FieldOutputTokens)
	return u
}

// SetTotalTokens sets the "total_tokens" field.
func (u *LLMInteractionUpsert) SetTotalTokens(v int) *LLMInteractionUpsert {
	u.Set(llminteraction.FieldTotalTokens, v)
	return u
}

// UpdateTotalTokens sets the "total_tokens" field to the value that was provided on create.
func (u *LLMInteractionUpsert) UpdateTotalTokens() *LLMInteractionUpsert {
	u.SetExcluded(llminteraction.FieldTotalTokens)
	return u
}

// AddTotalTokens adds v to the "total_tokens" field.
func (u *LLMInteractionUpsert) AddTotalTokens(v int) *LLMInteractionUpsert {
	u.Add(llminteraction.FieldTotalTokens, v)
	return u
}

// ClearTotalTokens clears the value of the "total_tokens" field.
func (u *LLMInteractionUpsert) ClearTotalTokens() *LLMInteractionUpsert {
	u.SetNull(llminteraction.FieldTotalTokens)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *LLMInteractionUpsert) SetDurationMs(v int) *LLMInteractionUpsert {
	u.Set(llminteraction.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *LLMInteractionUpsert) UpdateDurationMs() *LLMInteractionUpsert {
	u.SetExcluded(llminteraction.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *LLMInteractionUpsert) AddDurationMs(v int) *LLMInteractionUpsert {
	u.Add(llminteraction.FieldDurationMs, v)
	return u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *LLMInteractionUpsert) ClearDurationMs() *LLMInteractionUpsert {
	u.SetNull(llminteraction.FieldDurationMs)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *LLMInteractionUpsert) SetErrorMessage(v string) *LLMInteractionUpsert {
	u.Set(llminteraction.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *LLMInteractionUpsert) UpdateErrorMessage() *LLMInteractionUpsert {
	u.SetExcluded(llminteraction.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *LLMInteractionUpsert) ClearErrorMessage() *LLMInteractionUpsert {
	u.SetNull(llminteraction.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LLMInteraction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(llminteraction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LLMInteractionUpsertOne) UpdateNewValues() *LLMInteractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(llminteraction.FieldID)
		}
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(llminteraction.FieldSessionID)
		}
		if _, exists := u.create.mutation.ExecutionID(); exists {
			s.SetIgnore(llminteraction.FieldExecutionID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(llminteraction.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LLMInteraction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LLMInteractionUpsertOne) Ignore() *LLMInteractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LLMInteractionUpsertOne) DoNothing() *LLMInteractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LLMInteractionCreate.OnConflict
// documentation for more info.
func (u *LLMInteractionUpsertOne) Update(set func(*LLMInteractionUpsert)) *LLMInteractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LLMInteractionUpsert{UpdateSet: update})
	}))
	return u
}

// SetInteractionType sets the "interaction_type" field.
func (u *LLMInteractionUpsertOne) SetInteractionType(v llminteraction.InteractionType) *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetInteractionType(v)
	})
}

// UpdateInteractionType sets the "interaction_type" field to the value that was provided on create.
func (u *LLMInteractionUpsertOne) UpdateInteractionType() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateInteractionType()
	})
}

// SetModelName sets the "model_name" field.
func (u *LLMInteractionUpsertOne) SetModelName(v string) *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetModelName(v)
	})
}

// UpdateModelName sets the "model_name" field to the value that was provided on create.
func (u *LLMInteractionUpsertOne) UpdateModelName() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateModelName()
	})
}

// SetProvider sets the "provider" field.
func (u *LLMInteractionUpsertOne) SetProvider(v string) *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LLMInteractionUpsertOne) UpdateProvider() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateProvider()
	})
}

// SetConversation sets the "conversation" field.
func (u *LLMInteractionUpsertOne) SetConversation(v []map[string]interface{}) *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetConversation(v)
	})
}

// UpdateConversation sets the "conversation" field to the value that was provided on create.
func (u *LLMInteractionUpsertOne) UpdateConversation() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateConversation()
	})
}

// SetThinkingContent sets the "thinking_content" field.
func (u *LLMInteractionUpsertOne) SetThinkingContent(v string) *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetThinkingContent(v)
	})
}

// UpdateThinkingContent sets the "thinking_content" field to the value that was provided on create.
func (u *LLMInteractionUpsertOne) UpdateThinkingContent() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateThinkingContent()
	})
}

// ClearThinkingContent clears the value of the "thinking_content" field.
func (u *LLMInteractionUpsertOne) ClearThinkingContent() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.ClearThinkingContent()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *LLMInteractionUpsertOne) SetInputTokens(v int) *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *LLMInteractionUpsertOne) AddInputTokens(v int) *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *LLMInteractionUpsertOne) UpdateInputTokens() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateInputTokens()
	})
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (u *LLMInteractionUpsertOne) ClearInputTokens() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.ClearInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *LLMInteractionUpsertOne) SetOutputTokens(v int) *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *LLMInteractionUpsertOne) AddOutputTokens(v int) *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *LLMInteractionUpsertOne) UpdateOutputTokens() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateOutputTokens()
	})
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (u *LLMInteractionUpsertOne) ClearOutputTokens() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.ClearOutputTokens()
	})
}

// SetTotalTokens sets the "total_tokens" field.
func (u *LLMInteractionUpsertOne) SetTotalTokens(v int) *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetTotalTokens(v)
	})
}

// AddTotalTokens adds v to the "total_tokens" field.
func (u *LLMInteractionUpsertOne) AddTotalTokens(v int) *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.AddTotalTokens(v)
	})
}

// UpdateTotalTokens sets the "total_tokens" field to the value that was provided on create.
func (u *LLMInteractionUpsertOne) UpdateTotalTokens() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateTotalTokens()
	})
}

// ClearTotalTokens clears the value of the "total_tokens" field.
func (u *LLMInteractionUpsertOne) ClearTotalTokens() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.ClearTotalTokens()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *LLMInteractionUpsertOne) SetDurationMs(v int) *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *LLMInteractionUpsertOne) AddDurationMs(v int) *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *LLMInteractionUpsertOne) UpdateDurationMs() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *LLMInteractionUpsertOne) ClearDurationMs() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.ClearDurationMs()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *LLMInteractionUpsertOne) SetErrorMessage(v string) *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *LLMInteractionUpsertOne) UpdateErrorMessage() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *LLMInteractionUpsertOne) ClearErrorMessage() *LLMInteractionUpsertOne {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *LLMInteractionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LLMInteractionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LLMInteractionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LLMInteractionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LLMInteractionUpsertOne.ID is not supported by MySQL driver. Use LLMInteractionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LLMInteractionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LLMInteractionCreateBulk is the builder for creating many LLMInteraction entities in bulk.
type LLMInteractionCreateBulk struct {
	config
	err      error
	builders []*LLMInteractionCreate
	conflict []sql.ConflictOption
}

// Save creates the LLMInteraction entities in the database.
func (_c *LLMInteractionCreateBulk) Save(ctx context.Context) ([]*LLMInteraction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LLMInteraction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LLMInteractionMutation)
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
func (_c *LLMInteractionCreateBulk) SaveX(ctx context.Context) []*LLMInteraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMInteractionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMInteractionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LLMInteraction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LLMInteractionUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *LLMInteractionCreateBulk) OnConflict(opts ...sql.ConflictOption) *LLMInteractionUpsertBulk {
	_c.conflict = opts
	return &LLMInteractionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LLMInteraction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LLMInteractionCreateBulk) OnConflictColumns(columns ...string) *LLMInteractionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LLMInteractionUpsertBulk{
		create: _c,
	}
}

// LLMInteractionUpsertBulk is the builder for "upsert"-ing
// a bulk of LLMInteraction nodes.
type LLMInteractionUpsertBulk struct {
	create *LLMInteractionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LLMInteraction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(llminteraction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LLMInteractionUpsertBulk) UpdateNewValues() *LLMInteractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(llminteraction.FieldID)
			}
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(llminteraction.FieldSessionID)
			}
			if _, exists := b.mutation.ExecutionID(); exists {
				s.SetIgnore(llminteraction.FieldExecutionID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(llminteraction.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LLMInteraction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LLMInteractionUpsertBulk) Ignore() *LLMInteractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LLMInteractionUpsertBulk) DoNothing() *LLMInteractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LLMInteractionCreateBulk.OnConflict
// documentation for more info.
func (u *LLMInteractionUpsertBulk) Update(set func(*LLMInteractionUpsert)) *LLMInteractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LLMInteractionUpsert{UpdateSet: update})
	}))
	return u
}

// SetInteractionType sets the "interaction_type" field.
func (u *LLMInteractionUpsertBulk) SetInteractionType(v llminteraction.InteractionType) *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetInteractionType(v)
	})
}

// UpdateInteractionType sets the "interaction_type" field to the value that was provided on create.
func (u *LLMInteractionUpsertBulk) UpdateInteractionType() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateInteractionType()
	})
}

// SetModelName sets the "model_name" field.
func (u *LLMInteractionUpsertBulk) SetModelName(v string) *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetModelName(v)
	})
}

// UpdateModelName sets the "model_name" field to the value that was provided on create.
func (u *LLMInteractionUpsertBulk) UpdateModelName() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateModelName()
	})
}

// SetProvider sets the "provider" field.
func (u *LLMInteractionUpsertBulk) SetProvider(v string) *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LLMInteractionUpsertBulk) UpdateProvider() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateProvider()
	})
}

// SetConversation sets the "conversation" field.
func (u *LLMInteractionUpsertBulk) SetConversation(v []map[string]interface{}) *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetConversation(v)
	})
}

// UpdateConversation sets the "conversation" field to the value that was provided on create.
func (u *LLMInteractionUpsertBulk) UpdateConversation() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateConversation()
	})
}

// SetThinkingContent sets the "thinking_content" field.
func (u *LLMInteractionUpsertBulk) SetThinkingContent(v string) *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetThinkingContent(v)
	})
}

// UpdateThinkingContent sets the "thinking_content" field to the value that was provided on create.
func (u *LLMInteractionUpsertBulk) UpdateThinkingContent() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateThinkingContent()
	})
}

// ClearThinkingContent clears the value of the "thinking_content" field.
func (u *LLMInteractionUpsertBulk) ClearThinkingContent() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.ClearThinkingContent()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *LLMInteractionUpsertBulk) SetInputTokens(v int) *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *LLMInteractionUpsertBulk) AddInputTokens(v int) *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *LLMInteractionUpsertBulk) UpdateInputTokens() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateInputTokens()
	})
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (u *LLMInteractionUpsertBulk) ClearInputTokens() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.ClearInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *LLMInteractionUpsertBulk) SetOutputTokens(v int) *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *LLMInteractionUpsertBulk) AddOutputTokens(v int) *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *LLMInteractionUpsertBulk) UpdateOutputTokens() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateOutputTokens()
	})
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (u *LLMInteractionUpsertBulk) ClearOutputTokens() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.ClearOutputTokens()
	})
}

// SetTotalTokens sets the "total_tokens" field.
func (u *LLMInteractionUpsertBulk) SetTotalTokens(v int) *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetTotalTokens(v)
	})
}

// AddTotalTokens adds v to the "total_tokens" field.
func (u *LLMInteractionUpsertBulk) AddTotalTokens(v int) *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.AddTotalTokens(v)
	})
}

// UpdateTotalTokens sets the "total_tokens" field to the value that was provided on create.
func (u *LLMInteractionUpsertBulk) UpdateTotalTokens() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateTotalTokens()
	})
}

// ClearTotalTokens clears the value of the "total_tokens" field.
func (u *LLMInteractionUpsertBulk) ClearTotalTokens() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.ClearTotalTokens()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *LLMInteractionUpsertBulk) SetDurationMs(v int) *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *LLMInteractionUpsertBulk) AddDurationMs(v int) *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *LLMInteractionUpsertBulk) UpdateDurationMs() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *LLMInteractionUpsertBulk) ClearDurationMs() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.ClearDurationMs()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *LLMInteractionUpsertBulk) SetErrorMessage(v string) *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *LLMInteractionUpsertBulk) UpdateErrorMessage() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *LLMInteractionUpsertBulk) ClearErrorMessage() *LLMInteractionUpsertBulk {
	return u.Update(func(s *LLMInteractionUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *LLMInteractionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LLMInteractionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LLMInteractionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LLMInteractionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
