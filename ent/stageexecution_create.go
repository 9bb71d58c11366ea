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

// StageExecutionCreate is the builder for creating a StageExecution entity.
type StageExecutionCreate struct {
	config
	mutation *StageExecutionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *StageExecutionCreate) SetSessionID(v string) *StageExecutionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStageID sets the "stage_id" field.
func (_c *StageExecutionCreate) SetStageID(v string) *StageExecutionCreate {
	_c.mutation.SetStageID(v)
	return _c
}

// SetStageIndex sets the "stage_index" field.
func (_c *StageExecutionCreate) SetStageIndex(v int) *StageExecutionCreate {
	_c.mutation.SetStageIndex(v)
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *StageExecutionCreate) SetAgentName(v string) *StageExecutionCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetIterationStrategy sets the "iteration_strategy" field.
func (_c *StageExecutionCreate) SetIterationStrategy(v string) *StageExecutionCreate {
	_c.mutation.SetIterationStrategy(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *StageExecutionCreate) SetStatus(v stageexecution.Status) *StageExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableStatus(v *stageexecution.Status) *StageExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *StageExecutionCreate) SetStartedAt(v time.Time) *StageExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableStartedAt(v *time.Time) *StageExecutionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *StageExecutionCreate) SetCompletedAt(v time.Time) *StageExecutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableCompletedAt(v *time.Time) *StageExecutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *StageExecutionCreate) SetDurationMs(v int) *StageExecutionCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableDurationMs(v *int) *StageExecutionCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetCurrentIteration sets the "current_iteration" field.
func (_c *StageExecutionCreate) SetCurrentIteration(v int) *StageExecutionCreate {
	_c.mutation.SetCurrentIteration(v)
	return _c
}

// SetNillableCurrentIteration sets the "current_iteration" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableCurrentIteration(v *int) *StageExecutionCreate {
	if v != nil {
		_c.SetCurrentIteration(*v)
	}
	return _c
}

// SetStageOutput sets the "stage_output" field.
func (_c *StageExecutionCreate) SetStageOutput(v string) *StageExecutionCreate {
	_c.mutation.SetStageOutput(v)
	return _c
}

// SetNillableStageOutput sets the "stage_output" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableStageOutput(v *string) *StageExecutionCreate {
	if v != nil {
		_c.SetStageOutput(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *StageExecutionCreate) SetErrorMessage(v string) *StageExecutionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableErrorMessage(v *string) *StageExecutionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StageExecutionCreate) SetCreatedAt(v time.Time) *StageExecutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableCreatedAt(v *time.Time) *StageExecutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StageExecutionCreate) SetID(v string) *StageExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the AlertSession entity.
func (_c *StageExecutionCreate) SetSession(v *AlertSession) *StageExecutionCreate {
	return _c.SetSessionID(v.ID)
}

// AddTimelineEventIDs adds the "timeline_events" edge to the TimelineEvent entity by IDs.
func (_c *StageExecutionCreate) AddTimelineEventIDs(ids ...string) *StageExecutionCreate {
	_c.mutation.AddTimelineEventIDs(ids...)
	return _c
}

// AddTimelineEvents adds the "timeline_events" edges to the TimelineEvent entity.
func (_c *StageExecutionCreate) AddTimelineEvents(v ...*TimelineEvent) *StageExecutionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTimelineEventIDs(ids...)
}

// AddLlmInteractionIDs adds the "llm_interactions" edge to the LLMInteraction entity by IDs.
func (_c *StageExecutionCreate) AddLlmInteractionIDs(ids ...string) *StageExecutionCreate {
	_c.mutation.AddLlmInteractionIDs(ids...)
	return _c
}

// AddLlmInteractions adds the "llm_interactions" edges to the LLMInteraction entity.
func (_c *StageExecutionCreate) AddLlmInteractions(v ...*LLMInteraction) *StageExecutionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLlmInteractionIDs(ids...)
}

// AddMcpInteractionIDs adds the "mcp_interactions" edge to the MCPInteraction entity by IDs.
func (_c *StageExecutionCreate) AddMcpInteractionIDs(ids ...string) *StageExecutionCreate {
	_c.mutation.AddMcpInteractionIDs(ids...)
	return _c
}

// AddMcpInteractions adds the "mcp_interactions" edges to the MCPInteraction entity.
func (_c *StageExecutionCreate) AddMcpInteractions(v ...*MCPInteraction) *StageExecutionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMcpInteractionIDs(ids...)
}

// Mutation returns the StageExecutionMutation object of the builder.
func (_c *StageExecutionCreate) Mutation() *StageExecutionMutation {
	return _c.mutation
}

// Save creates the StageExecution in the database.
func (_c *StageExecutionCreate) Save(ctx context.Context) (*StageExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StageExecutionCreate) SaveX(ctx context.Context) *StageExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StageExecutionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := stageexecution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stageexecution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StageExecutionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "StageExecution.session_id"`)}
	}
	if _, ok := _c.mutation.StageID(); !ok {
		return &ValidationError{Name: "stage_id", err: errors.New(`ent: missing required field "StageExecution.stage_id"`)}
	}
	if _, ok := _c.mutation.StageIndex(); !ok {
		return &ValidationError{Name: "stage_index", err: errors.New(`ent: missing required field "StageExecution.stage_index"`)}
	}
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "StageExecution.agent_name"`)}
	}
	if _, ok := _c.mutation.IterationStrategy(); !ok {
		return &ValidationError{Name: "iteration_strategy", err: errors.New(`ent: missing required field "StageExecution.iteration_strategy"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StageExecution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := stageexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StageExecution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StageExecution.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "StageExecution.session"`)}
	}
	return nil
}

func (_c *StageExecutionCreate) sqlSave(ctx context.Context) (*StageExecution, error) {
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
			return nil, fmt.Errorf("unexpected StageExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StageExecutionCreate) createSpec() (*StageExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &StageExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stageexecution.Table, sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StageID(); ok {
		_spec.SetField(stageexecution.FieldStageID, field.TypeString, value)
		_node.StageID = value
	}
	if value, ok := _c.mutation.StageIndex(); ok {
		_spec.SetField(stageexecution.FieldStageIndex, field.TypeInt, value)
		_node.StageIndex = value
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(stageexecution.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.IterationStrategy(); ok {
		_spec.SetField(stageexecution.FieldIterationStrategy, field.TypeString, value)
		_node.IterationStrategy = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(stageexecution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(stageexecution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(stageexecution.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(stageexecution.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.CurrentIteration(); ok {
		_spec.SetField(stageexecution.FieldCurrentIteration, field.TypeInt, value)
		_node.CurrentIteration = &value
	}
	if value, ok := _c.mutation.StageOutput(); ok {
		_spec.SetField(stageexecution.FieldStageOutput, field.TypeString, value)
		_node.StageOutput = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(stageexecution.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stageexecution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stageexecution.SessionTable,
			Columns: []string{stageexecution.SessionColumn},
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
	if nodes := _c.mutation.TimelineEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stageexecution.TimelineEventsTable,
			Columns: []string{stageexecution.TimelineEventsColumn},
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
	if nodes := _c.mutation.LlmInteractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stageexecution.LlmInteractionsTable,
			Columns: []string{stageexecution.LlmInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(llminteraction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.McpInteractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stageexecution.McpInteractionsTable,
			Columns: []string{stageexecution.McpInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mcpinteraction.FieldID, field.TypeString),
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
//	client.StageExecution.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StageExecutionUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *StageExecutionCreate) OnConflict(opts ...sql.ConflictOption) *StageExecutionUpsertOne {
	_c.conflict = opts
	return &StageExecutionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StageExecution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StageExecutionCreate) OnConflictColumns(columns ...string) *StageExecutionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StageExecutionUpsertOne{
		create: _c,
	}
}

type (
	// StageExecutionUpsertOne is the builder for "upsert"-ing
	//  one StageExecution node.
	StageExecutionUpsertOne struct {
		create *StageExecutionCreate
	}

	// StageExecutionUpsert is the "OnConflict" setter.
	StageExecutionUpsert struct {
		*sql.UpdateSet
	}
)

// SetStageID sets the "stage_id" field.
func (u *StageExecutionUpsert) SetStageID(v string) *StageExecutionUpsert {
	u.Set(stageexecution.FieldStageID, v)
	return u
}

// UpdateStageID sets the "stage_id" field to the value that was provided on create.
func (u *StageExecutionUpsert) UpdateStageID() *StageExecutionUpsert {
	u.SetExcluded(stageexecution.FieldStageID)
	return u
}

// SetStageIndex sets the "stage_index" field.
func (u *StageExecutionUpsert) SetStageIndex(v int) *StageExecutionUpsert {
	u.Set(stageexecution.FieldStageIndex, v)
	return u
}

// UpdateStageIndex sets the "stage_index" field to the value that was provided on create.
func (u *StageExecutionUpsert) UpdateStageIndex() *StageExecutionUpsert {
	u.SetExcluded(stageexecution.FieldStageIndex)
	return u
}

// AddStageIndex adds v to the "stage_index" field.
func (u *StageExecutionUpsert) AddStageIndex(v int) *StageExecutionUpsert {
	u.Add(stageexecution.FieldStageIndex, v)
	return u
}

// SetAgentName sets the "agent_name" field.
func (u *StageExecutionUpsert) SetAgentName(v string) *StageExecutionUpsert {
	u.Set(stageexecution.FieldAgentName, v)
	return u
}

// UpdateAgentName sets the "agent_name" field to the value that was provided on create.
func (u *StageExecutionUpsert) UpdateAgentName() *StageExecutionUpsert {
	u.SetExcluded(stageexecution.FieldAgentName)
	return u
}

// SetIterationStrategy sets the "iteration_strategy" field.
func (u *StageExecutionUpsert) SetIterationStrategy(v string) *StageExecutionUpsert {
	u.Set(stageexecution.FieldIterationStrategy, v)
	return u
}

// UpdateIterationStrategy sets the "iteration_strategy" field to the value that was provided on create.
func (u *StageExecutionUpsert) UpdateIterationStrategy() *StageExecutionUpsert {
	u.SetExcluded(stageexecution.FieldIterationStrategy)
	return u
}

// SetStatus sets the "status" field.
func (u *StageExecutionUpsert) SetStatus(v stageexecution.Status) *StageExecutionUpsert {
	u.Set(stageexecution.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StageExecutionUpsert) UpdateStatus() *StageExecutionUpsert {
	u.SetExcluded(stageexecution.FieldStatus)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *StageExecutionUpsert) SetStartedAt(v time.Time) *StageExecutionUpsert {
	u.Set(stageexecution.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *StageExecutionUpsert) UpdateStartedAt() *StageExecutionUpsert {
	u.SetExcluded(stageexecution.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *StageExecutionUpsert) ClearStartedAt() *StageExecutionUpsert {
	u.SetNull(stageexecution.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *StageExecutionUpsert) SetCompletedAt(v time.Time) *StageExecutionUpsert {
	u.Set(stageexecution.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StageExecutionUpsert) UpdateCompletedAt() *StageExecutionUpsert {
	u.SetExcluded(stageexecution.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StageExecutionUpsert) ClearCompletedAt() *StageExecutionUpsert {
	u.SetNull(stageexecution.FieldCompletedAt)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *StageExecutionUpsert) SetDurationMs(v int) *StageExecutionUpsert {
	u.Set(stageexecution.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *StageExecutionUpsert) UpdateDurationMs() *StageExecutionUpsert {
	u.SetExcluded(stageexecution.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *StageExecutionUpsert) AddDurationMs(v int) *StageExecutionUpsert {
	u.Add(stageexecution.FieldDurationMs, v)
	return u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *StageExecutionUpsert) ClearDurationMs() *StageExecutionUpsert {
	u.SetNull(stageexecution.FieldDurationMs)
	return u
}

// SetCurrentIteration sets the "current_iteration" field.
func (u *StageExecutionUpsert) SetCurrentIteration(v int) *StageExecutionUpsert {
	u.Set(stageexecution.FieldCurrentIteration, v)
	return u
}

// UpdateCurrentIteration sets the "current_iteration" field to the value that was provided on create.
func (u *StageExecutionUpsert) UpdateCurrentIteration() *StageExecutionUpsert {
	u.SetExcluded(stageexecution.FieldCurrentIteration)
	return u
}

// AddCurrentIteration adds v to the "current_iteration" field.
func (u *StageExecutionUpsert) AddCurrentIteration(v int) *StageExecutionUpsert {
	u.Add(stageexecution.FieldCurrentIteration, v)
	return u
}

// ClearCurrentIteration clears the value of the "current_iteration" field.
func (u *StageExecutionUpsert) ClearCurrentIteration() *StageExecutionUpsert {
	u.SetNull(stageexecution.FieldCurrentIteration)
	return u
}

// SetStageOutput sets the "stage_output" field.
func (u *StageExecutionUpsert) SetStageOutput(v string) *StageExecutionUpsert {
	u.Set(stageexecution.FieldStageOutput, v)
	return u
}

// UpdateStageOutput sets the "stage_output" field to the value that was provided on create.
func (u *StageExecutionUpsert) UpdateStageOutput() *StageExecutionUpsert {
	u.SetExcluded(stageexecution.FieldStageOutput)
	return u
}

// ClearStageOutput clears the value of the "stage_output" field.
func (u *StageExecutionUpsert) ClearStageOutput() *StageExecutionUpsert {
	u.SetNull(stageexecution.FieldStageOutput)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *StageExecutionUpsert) SetErrorMessage(v string) *StageExecutionUpsert {
	u.Set(stageexecution.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *StageExecutionUpsert) UpdateErrorMessage() *StageExecutionUpsert {
	u.SetExcluded(stageexecution.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *StageExecutionUpsert) ClearErrorMessage() *StageExecutionUpsert {
	u.SetNull(stageexecution.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StageExecution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stageexecution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StageExecutionUpsertOne) UpdateNewValues() *StageExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(stageexecution.FieldID)
		}
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(stageexecution.FieldSessionID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(stageexecution.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StageExecution.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StageExecutionUpsertOne) Ignore() *StageExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StageExecutionUpsertOne) DoNothing() *StageExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StageExecutionCreate.OnConflict
// documentation for more info.
func (u *StageExecutionUpsertOne) Update(set func(*StageExecutionUpsert)) *StageExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StageExecutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStageID sets the "stage_id" field.
func (u *StageExecutionUpsertOne) SetStageID(v string) *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetStageID(v)
	})
}

// UpdateStageID sets the "stage_id" field to the value that was provided on create.
func (u *StageExecutionUpsertOne) UpdateStageID() *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateStageID()
	})
}

// SetStageIndex sets the "stage_index" field.
func (u *StageExecutionUpsertOne) SetStageIndex(v int) *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetStageIndex(v)
	})
}

// AddStageIndex adds v to the "stage_index" field.
func (u *StageExecutionUpsertOne) AddStageIndex(v int) *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.AddStageIndex(v)
	})
}

// UpdateStageIndex sets the "stage_index" field to the value that was provided on create.
func (u *StageExecutionUpsertOne) UpdateStageIndex() *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateStageIndex()
	})
}

// SetAgentName sets the "agent_name" field.
func (u *StageExecutionUpsertOne) SetAgentName(v string) *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetAgentName(v)
	})
}

// UpdateAgentName sets the "agent_name" field to the value that was provided on create.
func (u *StageExecutionUpsertOne) UpdateAgentName() *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateAgentName()
	})
}

// SetIterationStrategy sets the "iteration_strategy" field.
func (u *StageExecutionUpsertOne) SetIterationStrategy(v string) *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetIterationStrategy(v)
	})
}

// UpdateIterationStrategy sets the "iteration_strategy" field to the value that was provided on create.
func (u *StageExecutionUpsertOne) UpdateIterationStrategy() *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateIterationStrategy()
	})
}

// SetStatus sets the "status" field.
func (u *StageExecutionUpsertOne) SetStatus(v stageexecution.Status) *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StageExecutionUpsertOne) UpdateStatus() *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateStatus()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *StageExecutionUpsertOne) SetStartedAt(v time.Time) *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *StageExecutionUpsertOne) UpdateStartedAt() *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *StageExecutionUpsertOne) ClearStartedAt() *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *StageExecutionUpsertOne) SetCompletedAt(v time.Time) *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StageExecutionUpsertOne) UpdateCompletedAt() *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StageExecutionUpsertOne) ClearCompletedAt() *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *StageExecutionUpsertOne) SetDurationMs(v int) *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *StageExecutionUpsertOne) AddDurationMs(v int) *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *StageExecutionUpsertOne) UpdateDurationMs() *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *StageExecutionUpsertOne) ClearDurationMs() *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.ClearDurationMs()
	})
}

// SetCurrentIteration sets the "current_iteration" field.
func (u *StageExecutionUpsertOne) SetCurrentIteration(v int) *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetCurrentIteration(v)
	})
}

// AddCurrentIteration adds v to the "current_iteration" field.
func (u *StageExecutionUpsertOne) AddCurrentIteration(v int) *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.AddCurrentIteration(v)
	})
}

// UpdateCurrentIteration sets the "current_iteration" field to the value that was provided on create.
func (u *StageExecutionUpsertOne) UpdateCurrentIteration() *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateCurrentIteration()
	})
}

// ClearCurrentIteration clears the value of the "current_iteration" field.
func (u *StageExecutionUpsertOne) ClearCurrentIteration() *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.ClearCurrentIteration()
	})
}

// SetStageOutput sets the "stage_output" field.
func (u *StageExecutionUpsertOne) SetStageOutput(v string) *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetStageOutput(v)
	})
}

// UpdateStageOutput sets the "stage_output" field to the value that was provided on create.
func (u *StageExecutionUpsertOne) UpdateStageOutput() *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateStageOutput()
	})
}

// ClearStageOutput clears the value of the "stage_output" field.
func (u *StageExecutionUpsertOne) ClearStageOutput() *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.ClearStageOutput()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *StageExecutionUpsertOne) SetErrorMessage(v string) *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *StageExecutionUpsertOne) UpdateErrorMessage() *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *StageExecutionUpsertOne) ClearErrorMessage() *StageExecutionUpsertOne {
	return u.Update(func(s *StageExecutionUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *StageExecutionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StageExecutionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StageExecutionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StageExecutionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StageExecutionUpsertOne.ID is not supported by MySQL driver. Use StageExecutionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StageExecutionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StageExecutionCreateBulk is the builder for creating many StageExecution entities in bulk.
type StageExecutionCreateBulk struct {
	config
	err      error
	builders []*StageExecutionCreate
	conflict []sql.ConflictOption
}

// Save creates the StageExecution entities in the database.
func (_c *StageExecutionCreateBulk) Save(ctx context.Context) ([]*StageExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StageExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StageExecutionMutation)
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
func (_c *StageExecutionCreateBulk) SaveX(ctx context.Context) []*StageExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StageExecution.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StageExecutionUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *StageExecutionCreateBulk) OnConflict(opts ...sql.ConflictOption) *StageExecutionUpsertBulk {
	_c.conflict = opts
	return &StageExecutionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StageExecution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StageExecutionCreateBulk) OnConflictColumns(columns ...string) *StageExecutionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StageExecutionUpsertBulk{
		create: _c,
	}
}

// StageExecutionUpsertBulk is the builder for "upsert"-ing
// a bulk of StageExecution nodes.
type StageExecutionUpsertBulk struct {
	create *StageExecutionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StageExecution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stageexecution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StageExecutionUpsertBulk) UpdateNewValues() *StageExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(stageexecution.FieldID)
			}
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(stageexecution.FieldSessionID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(stageexecution.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StageExecution.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StageExecutionUpsertBulk) Ignore() *StageExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StageExecutionUpsertBulk) DoNothing() *StageExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StageExecutionCreateBulk.OnConflict
// documentation for more info.
func (u *StageExecutionUpsertBulk) Update(set func(*StageExecutionUpsert)) *StageExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StageExecutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStageID sets the "stage_id" field.
func (u *StageExecutionUpsertBulk) SetStageID(v string) *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetStageID(v)
	})
}

// UpdateStageID sets the "stage_id" field to the value that was provided on create.
func (u *StageExecutionUpsertBulk) UpdateStageID() *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateStageID()
	})
}

// SetStageIndex sets the "stage_index" field.
func (u *StageExecutionUpsertBulk) SetStageIndex(v int) *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetStageIndex(v)
	})
}

// AddStageIndex adds v to the "stage_index" field.
func (u *StageExecutionUpsertBulk) AddStageIndex(v int) *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.AddStageIndex(v)
	})
}

// UpdateStageIndex sets the "stage_index" field to the value that was provided on create.
func (u *StageExecutionUpsertBulk) UpdateStageIndex() *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateStageIndex()
	})
}

// SetAgentName sets the "agent_name" field.
func (u *StageExecutionUpsertBulk) SetAgentName(v string) *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetAgentName(v)
	})
}

// UpdateAgentName sets the "agent_name" field to the value that was provided on create.
func (u *StageExecutionUpsertBulk) UpdateAgentName() *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateAgentName()
	})
}

// SetIterationStrategy sets the "iteration_strategy" field.
func (u *StageExecutionUpsertBulk) SetIterationStrategy(v string) *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetIterationStrategy(v)
	})
}

// UpdateIterationStrategy sets the "iteration_strategy" field to the value that was provided on create.
func (u *StageExecutionUpsertBulk) UpdateIterationStrategy() *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateIterationStrategy()
	})
}

// SetStatus sets the "status" field.
func (u *StageExecutionUpsertBulk) SetStatus(v stageexecution.Status) *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StageExecutionUpsertBulk) UpdateStatus() *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateStatus()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *StageExecutionUpsertBulk) SetStartedAt(v time.Time) *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *StageExecutionUpsertBulk) UpdateStartedAt() *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *StageExecutionUpsertBulk) ClearStartedAt() *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *StageExecutionUpsertBulk) SetCompletedAt(v time.Time) *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StageExecutionUpsertBulk) UpdateCompletedAt() *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StageExecutionUpsertBulk) ClearCompletedAt() *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *StageExecutionUpsertBulk) SetDurationMs(v int) *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *StageExecutionUpsertBulk) AddDurationMs(v int) *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *StageExecutionUpsertBulk) UpdateDurationMs() *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *StageExecutionUpsertBulk) ClearDurationMs() *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.ClearDurationMs()
	})
}

// SetCurrentIteration sets the "current_iteration" field.
func (u *StageExecutionUpsertBulk) SetCurrentIteration(v int) *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetCurrentIteration(v)
	})
}

// AddCurrentIteration adds v to the "current_iteration" field.
func (u *StageExecutionUpsertBulk) AddCurrentIteration(v int) *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.AddCurrentIteration(v)
	})
}

// UpdateCurrentIteration sets the "current_iteration" field to the value that was provided on create.
func (u *StageExecutionUpsertBulk) UpdateCurrentIteration() *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateCurrentIteration()
	})
}

// ClearCurrentIteration clears the value of the "current_iteration" field.
func (u *StageExecutionUpsertBulk) ClearCurrentIteration() *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.ClearCurrentIteration()
	})
}

// SetStageOutput sets the "stage_output" field.
func (u *StageExecutionUpsertBulk) SetStageOutput(v string) *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetStageOutput(v)
	})
}

// UpdateStageOutput sets the "stage_output" field to the value that was provided on create.
func (u *StageExecutionUpsertBulk) UpdateStageOutput() *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateStageOutput()
	})
}

// ClearStageOutput clears the value of the "stage_output" field.
func (u *StageExecutionUpsertBulk) ClearStageOutput() *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.ClearStageOutput()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *StageExecutionUpsertBulk) SetErrorMessage(v string) *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *StageExecutionUpsertBulk) UpdateErrorMessage() *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *StageExecutionUpsertBulk) ClearErrorMessage() *StageExecutionUpsertBulk {
	return u.Update(func(s *StageExecutionUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *StageExecutionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StageExecutionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StageExecutionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StageExecutionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
