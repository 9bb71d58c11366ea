// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tarsy-project/tarsy/ent/llminteraction"
	"github.com/tarsy-project/tarsy/ent/mcpinteraction"
	"github.com/tarsy-project/tarsy/ent/predicate"
	"github.com/tarsy-project/tarsy/ent/stageexecution"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
)

// StageExecutionUpdate is the builder for updating StageExecution entities.
type StageExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *StageExecutionMutation
}

// Where appends a list predicates to the StageExecutionUpdate builder.
func (_u *StageExecutionUpdate) Where(ps ...predicate.StageExecution) *StageExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStageID sets the "stage_id" field.
func (_u *StageExecutionUpdate) SetStageID(v string) *StageExecutionUpdate {
	_u.mutation.SetStageID(v)
	return _u
}

// SetNillableStageID sets the "stage_id" field if the given value is not nil.
func (_u *StageExecutionUpdate) SetNillableStageID(v *string) *StageExecutionUpdate {
	if v != nil {
		_u.SetStageID(*v)
	}
	return _u
}

// SetStageIndex sets the "stage_index" field.
func (_u *StageExecutionUpdate) SetStageIndex(v int) *StageExecutionUpdate {
	_u.mutation.ResetStageIndex()
	_u.mutation.SetStageIndex(v)
	return _u
}

// SetNillableStageIndex sets the "stage_index" field if the given value is not nil.
func (_u *StageExecutionUpdate) SetNillableStageIndex(v *int) *StageExecutionUpdate {
	if v != nil {
		_u.SetStageIndex(*v)
	}
	return _u
}

// AddStageIndex adds value to the "stage_index" field.
func (_u *StageExecutionUpdate) AddStageIndex(v int) *StageExecutionUpdate {
	_u.mutation.AddStageIndex(v)
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *StageExecutionUpdate) SetAgentName(v string) *StageExecutionUpdate {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *StageExecutionUpdate) SetNillableAgentName(v *string) *StageExecutionUpdate {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetIterationStrategy sets the "iteration_strategy" field.
func (_u *StageExecutionUpdate) SetIterationStrategy(v string) *StageExecutionUpdate {
	_u.mutation.SetIterationStrategy(v)
	return _u
}

// SetNillableIterationStrategy sets the "iteration_strategy" field if the given value is not nil.
func (_u *StageExecutionUpdate) SetNillableIterationStrategy(v *string) *StageExecutionUpdate {
	if v != nil {
		_u.SetIterationStrategy(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *StageExecutionUpdate) SetStatus(v stageexecution.Status) *StageExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StageExecutionUpdate) SetNillableStatus(v *stageexecution.Status) *StageExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StageExecutionUpdate) SetStartedAt(v time.Time) *StageExecutionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StageExecutionUpdate) SetNillableStartedAt(v *time.Time) *StageExecutionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StageExecutionUpdate) ClearStartedAt() *StageExecutionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StageExecutionUpdate) SetCompletedAt(v time.Time) *StageExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StageExecutionUpdate) SetNillableCompletedAt(v *time.Time) *StageExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StageExecutionUpdate) ClearCompletedAt() *StageExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *StageExecutionUpdate) SetDurationMs(v int) *StageExecutionUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *StageExecutionUpdate) SetNillableDurationMs(v *int) *StageExecutionUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *StageExecutionUpdate) AddDurationMs(v int) *StageExecutionUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *StageExecutionUpdate) ClearDurationMs() *StageExecutionUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetCurrentIteration sets the "current_iteration" field.
func (_u *StageExecutionUpdate) SetCurrentIteration(v int) *StageExecutionUpdate {
	_u.mutation.ResetCurrentIteration()
	_u.mutation.SetCurrentIteration(v)
	return _u
}

// SetNillableCurrentIteration sets the "current_iteration" field if the given value is not nil.
func (_u *StageExecutionUpdate) SetNillableCurrentIteration(v *int) *StageExecutionUpdate {
	if v != nil {
		_u.SetCurrentIteration(*v)
	}
	return _u
}

// AddCurrentIteration adds value to the "current_iteration" field.
func (_u *StageExecutionUpdate) AddCurrentIteration(v int) *StageExecutionUpdate {
	_u.mutation.AddCurrentIteration(v)
	return _u
}

// ClearCurrentIteration clears the value of the "current_iteration" field.
func (_u *StageExecutionUpdate) ClearCurrentIteration() *StageExecutionUpdate {
	_u.mutation.ClearCurrentIteration()
	return _u
}

// SetStageOutput sets the "stage_output" field.
func (_u *StageExecutionUpdate) SetStageOutput(v string) *StageExecutionUpdate {
	_u.mutation.SetStageOutput(v)
	return _u
}

// SetNillableStageOutput sets the "stage_output" field if the given value is not nil.
func (_u *StageExecutionUpdate) SetNillableStageOutput(v *string) *StageExecutionUpdate {
	if v != nil {
		_u.SetStageOutput(*v)
	}
	return _u
}

// ClearStageOutput clears the value of the "stage_output" field.
func (_u *StageExecutionUpdate) ClearStageOutput() *StageExecutionUpdate {
	_u.mutation.ClearStageOutput()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *StageExecutionUpdate) SetErrorMessage(v string) *StageExecutionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *StageExecutionUpdate) SetNillableErrorMessage(v *string) *StageExecutionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *StageExecutionUpdate) ClearErrorMessage() *StageExecutionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// AddTimelineEventIDs adds the "timeline_events" edge to the TimelineEvent entity by IDs.
func (_u *StageExecutionUpdate) AddTimelineEventIDs(ids ...string) *StageExecutionUpdate {
	_u.mutation.AddTimelineEventIDs(ids...)
	return _u
}

// AddTimelineEvents adds the "timeline_events" edges to the TimelineEvent entity.
func (_u *StageExecutionUpdate) AddTimelineEvents(v ...*TimelineEvent) *StageExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTimelineEventIDs(ids...)
}

// AddLlmInteractionIDs adds the "llm_interactions" edge to the LLMInteraction entity by IDs.
func (_u *StageExecutionUpdate) AddLlmInteractionIDs(ids ...string) *StageExecutionUpdate {
	_u.mutation.AddLlmInteractionIDs(ids...)
	return _u
}

// AddLlmInteractions adds the "llm_interactions" edges to the LLMInteraction entity.
func (_u *StageExecutionUpdate) AddLlmInteractions(v ...*LLMInteraction) *StageExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLlmInteractionIDs(ids...)
}

// AddMcpInteractionIDs adds the "mcp_interactions" edge to the MCPInteraction entity by IDs.
func (_u *StageExecutionUpdate) AddMcpInteractionIDs(ids ...string) *StageExecutionUpdate {
	_u.mutation.AddMcpInteractionIDs(ids...)
	return _u
}

// AddMcpInteractions adds the "mcp_interactions" edges to the MCPInteraction entity.
func (_u *StageExecutionUpdate) AddMcpInteractions(v ...*MCPInteraction) *StageExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMcpInteractionIDs(ids...)
}

// Mutation returns the StageExecutionMutation object of the builder.
func (_u *StageExecutionUpdate) Mutation() *StageExecutionMutation {
	return _u.mutation
}

// ClearTimelineEvents clears all "timeline_events" edges to the TimelineEvent entity.
func (_u *StageExecutionUpdate) ClearTimelineEvents() *StageExecutionUpdate {
	_u.mutation.ClearTimelineEvents()
	return _u
}

// RemoveTimelineEventIDs removes the "timeline_events" edge to TimelineEvent entities by IDs.
func (_u *StageExecutionUpdate) RemoveTimelineEventIDs(ids ...string) *StageExecutionUpdate {
	_u.mutation.RemoveTimelineEventIDs(ids...)
	return _u
}

// RemoveTimelineEvents removes "timeline_events" edges to TimelineEvent entities.
func (_u *StageExecutionUpdate) RemoveTimelineEvents(v ...*TimelineEvent) *StageExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTimelineEventIDs(ids...)
}

// ClearLlmInteractions clears all "llm_interactions" edges to the LLMInteraction entity.
func (_u *StageExecutionUpdate) ClearLlmInteractions() *StageExecutionUpdate {
	_u.mutation.ClearLlmInteractions()
	return _u
}

// RemoveLlmInteractionIDs removes the "llm_interactions" edge to LLMInteraction entities by IDs.
func (_u *StageExecutionUpdate) RemoveLlmInteractionIDs(ids ...string) *StageExecutionUpdate {
	_u.mutation.RemoveLlmInteractionIDs(ids...)
	return _u
}

// RemoveLlmInteractions removes "llm_interactions" edges to LLMInteraction entities.
func (_u *StageExecutionUpdate) RemoveLlmInteractions(v ...*LLMInteraction) *StageExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLlmInteractionIDs(ids...)
}

// ClearMcpInteractions clears all "mcp_interactions" edges to the MCPInteraction entity.
func (_u *StageExecutionUpdate) ClearMcpInteractions() *StageExecutionUpdate {
	_u.mutation.ClearMcpInteractions()
	return _u
}

// RemoveMcpInteractionIDs removes the "mcp_interactions" edge to MCPInteraction entities by IDs.
func (_u *StageExecutionUpdate) RemoveMcpInteractionIDs(ids ...string) *StageExecutionUpdate {
	_u.mutation.RemoveMcpInteractionIDs(ids...)
	return _u
}

// RemoveMcpInteractions removes "mcp_interactions" edges to MCPInteraction entities.
func (_u *StageExecutionUpdate) RemoveMcpInteractions(v ...*MCPInteraction) *StageExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMcpInteractionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StageExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StageExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := stageexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StageExecution.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StageExecution.session"`)
	}
	return nil
}

func (_u *StageExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stageexecution.Table, stageexecution.Columns, sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StageID(); ok {
		_spec.SetField(stageexecution.FieldStageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageIndex(); ok {
		_spec.SetField(stageexecution.FieldStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageIndex(); ok {
		_spec.AddField(stageexecution.FieldStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(stageexecution.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.IterationStrategy(); ok {
		_spec.SetField(stageexecution.FieldIterationStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(stageexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(stageexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(stageexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(stageexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(stageexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(stageexecution.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(stageexecution.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(stageexecution.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.CurrentIteration(); ok {
		_spec.SetField(stageexecution.FieldCurrentIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentIteration(); ok {
		_spec.AddField(stageexecution.FieldCurrentIteration, field.TypeInt, value)
	}
	if _u.mutation.CurrentIterationCleared() {
		_spec.ClearField(stageexecution.FieldCurrentIteration, field.TypeInt)
	}
	if value, ok := _u.mutation.StageOutput(); ok {
		_spec.SetField(stageexecution.FieldStageOutput, field.TypeString, value)
	}
	if _u.mutation.StageOutputCleared() {
		_spec.ClearField(stageexecution.FieldStageOutput, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(stageexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(stageexecution.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.TimelineEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTimelineEventsIDs(); len(nodes) > 0 && !_u.mutation.TimelineEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TimelineEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LlmInteractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLlmInteractionsIDs(); len(nodes) > 0 && !_u.mutation.LlmInteractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LlmInteractionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.McpInteractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMcpInteractionsIDs(); len(nodes) > 0 && !_u.mutation.McpInteractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.McpInteractionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stageexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StageExecutionUpdateOne is the builder for updating a single StageExecution entity.
type StageExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StageExecutionMutation
}

// SetStageID sets the "stage_id" field.
func (_u *StageExecutionUpdateOne) SetStageID(v string) *StageExecutionUpdateOne {
	_u.mutation.SetStageID(v)
	return _u
}

// SetNillableStageID sets the "stage_id" field if the given value is not nil.
func (_u *StageExecutionUpdateOne) SetNillableStageID(v *string) *StageExecutionUpdateOne {
	if v != nil {
		_u.SetStageID(*v)
	}
	return _u
}

// SetStageIndex sets the "stage_index" field.
func (_u *StageExecutionUpdateOne) SetStageIndex(v int) *StageExecutionUpdateOne {
	_u.mutation.ResetStageIndex()
	_u.mutation.SetStageIndex(v)
	return _u
}

// SetNillableStageIndex sets the "stage_index" field if the given value is not nil.
func (_u *StageExecutionUpdateOne) SetNillableStageIndex(v *int) *StageExecutionUpdateOne {
	if v != nil {
		_u.SetStageIndex(*v)
	}
	return _u
}

// AddStageIndex adds value to the "stage_index" field.
func (_u *StageExecutionUpdateOne) AddStageIndex(v int) *StageExecutionUpdateOne {
	_u.mutation.AddStageIndex(v)
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *StageExecutionUpdateOne) SetAgentName(v string) *StageExecutionUpdateOne {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *StageExecutionUpdateOne) SetNillableAgentName(v *string) *StageExecutionUpdateOne {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetIterationStrategy sets the "iteration_strategy" field.
func (_u *StageExecutionUpdateOne) SetIterationStrategy(v string) *StageExecutionUpdateOne {
	_u.mutation.SetIterationStrategy(v)
	return _u
}

// SetNillableIterationStrategy sets the "iteration_strategy" field if the given value is not nil.
func (_u *StageExecutionUpdateOne) SetNillableIterationStrategy(v *string) *StageExecutionUpdateOne {
	if v != nil {
		_u.SetIterationStrategy(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *StageExecutionUpdateOne) SetStatus(v stageexecution.Status) *StageExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StageExecutionUpdateOne) SetNillableStatus(v *stageexecution.Status) *StageExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StageExecutionUpdateOne) SetStartedAt(v time.Time) *StageExecutionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StageExecutionUpdateOne) SetNillableStartedAt(v *time.Time) *StageExecutionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StageExecutionUpdateOne) ClearStartedAt() *StageExecutionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StageExecutionUpdateOne) SetCompletedAt(v time.Time) *StageExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StageExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *StageExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StageExecutionUpdateOne) ClearCompletedAt() *StageExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *StageExecutionUpdateOne) SetDurationMs(v int) *StageExecutionUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *StageExecutionUpdateOne) SetNillableDurationMs(v *int) *StageExecutionUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *StageExecutionUpdateOne) AddDurationMs(v int) *StageExecutionUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *StageExecutionUpdateOne) ClearDurationMs() *StageExecutionUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetCurrentIteration sets the "current_iteration" field.
func (_u *StageExecutionUpdateOne) SetCurrentIteration(v int) *StageExecutionUpdateOne {
	_u.mutation.ResetCurrentIteration()
	_u.mutation.SetCurrentIteration(v)
	return _u
}

// SetNillableCurrentIteration sets the "current_iteration" field if the given value is not nil.
func (_u *StageExecutionUpdateOne) SetNillableCurrentIteration(v *int) *StageExecutionUpdateOne {
	if v != nil {
		_u.SetCurrentIteration(*v)
	}
	return _u
}

// AddCurrentIteration adds value to the "current_iteration" field.
func (_u *StageExecutionUpdateOne) AddCurrentIteration(v int) *StageExecutionUpdateOne {
	_u.mutation.AddCurrentIteration(v)
	return _u
}

// ClearCurrentIteration clears the value of the "current_iteration" field.
func (_u *StageExecutionUpdateOne) ClearCurrentIteration() *StageExecutionUpdateOne {
	_u.mutation.ClearCurrentIteration()
	return _u
}

// SetStageOutput sets the "stage_output" field.
func (_u *StageExecutionUpdateOne) SetStageOutput(v string) *StageExecutionUpdateOne {
	_u.mutation.SetStageOutput(v)
	return _u
}

// SetNillableStageOutput sets the "stage_output" field if the given value is not nil.
func (_u *StageExecutionUpdateOne) SetNillableStageOutput(v *string) *StageExecutionUpdateOne {
	if v != nil {
		_u.SetStageOutput(*v)
	}
	return _u
}

// ClearStageOutput clears the value of the "stage_output" field.
func (_u *StageExecutionUpdateOne) ClearStageOutput() *StageExecutionUpdateOne {
	_u.mutation.ClearStageOutput()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *StageExecutionUpdateOne) SetErrorMessage(v string) *StageExecutionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *StageExecutionUpdateOne) SetNillableErrorMessage(v *string) *StageExecutionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *StageExecutionUpdateOne) ClearErrorMessage() *StageExecutionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// AddTimelineEventIDs adds the "timeline_events" edge to the TimelineEvent entity by IDs.
func (_u *StageExecutionUpdateOne) AddTimelineEventIDs(ids ...string) *StageExecutionUpdateOne {
	_u.mutation.AddTimelineEventIDs(ids...)
	return _u
}

// AddTimelineEvents adds the "timeline_events" edges to the TimelineEvent entity.
func (_u *StageExecutionUpdateOne) AddTimelineEvents(v ...*TimelineEvent) *StageExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTimelineEventIDs(ids...)
}

// AddLlmInteractionIDs adds the "llm_interactions" edge to the LLMInteraction entity by IDs.
func (_u *StageExecutionUpdateOne) AddLlmInteractionIDs(ids ...string) *StageExecutionUpdateOne {
	_u.mutation.AddLlmInteractionIDs(ids...)
	return _u
}

// AddLlmInteractions adds the "llm_interactions" edges to the LLMInteraction entity.
func (_u *StageExecutionUpdateOne) AddLlmInteractions(v ...*LLMInteraction) *StageExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLlmInteractionIDs(ids...)
}

// AddMcpInteractionIDs adds the "mcp_interactions" edge to the MCPInteraction entity by IDs.
func (_u *StageExecutionUpdateOne) AddMcpInteractionIDs(ids ...string) *StageExecutionUpdateOne {
	_u.mutation.AddMcpInteractionIDs(ids...)
	return _u
}

// AddMcpInteractions adds the "mcp_interactions" edges to the MCPInteraction entity.
func (_u *StageExecutionUpdateOne) AddMcpInteractions(v ...*MCPInteraction) *StageExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMcpInteractionIDs(ids...)
}

// Mutation returns the StageExecutionMutation object of the builder.
func (_u *StageExecutionUpdateOne) Mutation() *StageExecutionMutation {
	return _u.mutation
}

// ClearTimelineEvents clears all "timeline_events" edges to the TimelineEvent entity.
func (_u *StageExecutionUpdateOne) ClearTimelineEvents() *StageExecutionUpdateOne {
	_u.mutation.ClearTimelineEvents()
	return _u
}

// RemoveTimelineEventIDs removes the "timeline_events" edge to TimelineEvent entities by IDs.
func (_u *StageExecutionUpdateOne) RemoveTimelineEventIDs(ids ...string) *StageExecutionUpdateOne {
	_u.mutation.RemoveTimelineEventIDs(ids...)
	return _u
}

// RemoveTimelineEvents removes "timeline_events" edges to TimelineEvent entities.
func (_u *StageExecutionUpdateOne) RemoveTimelineEvents(v ...*TimelineEvent) *StageExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTimelineEventIDs(ids...)
}

// ClearLlmInteractions clears all "llm_interactions" edges to the LLMInteraction entity.
func (_u *StageExecutionUpdateOne) ClearLlmInteractions() *StageExecutionUpdateOne {
	_u.mutation.ClearLlmInteractions()
	return _u
}

// RemoveLlmInteractionIDs removes the "llm_interactions" edge to LLMInteraction entities by IDs.
func (_u *StageExecutionUpdateOne) RemoveLlmInteractionIDs(ids ...string) *StageExecutionUpdateOne {
	_u.mutation.RemoveLlmInteractionIDs(ids...)
	return _u
}

// RemoveLlmInteractions removes "llm_interactions" edges to LLMInteraction entities.
func (_u *StageExecutionUpdateOne) RemoveLlmInteractions(v ...*LLMInteraction) *StageExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLlmInteractionIDs(ids...)
}

// ClearMcpInteractions clears all "mcp_interactions" edges to the MCPInteraction entity.
func (_u *StageExecutionUpdateOne) ClearMcpInteractions() *StageExecutionUpdateOne {
	_u.mutation.ClearMcpInteractions()
	return _u
}

// RemoveMcpInteractionIDs removes the "mcp_interactions" edge to MCPInteraction entities by IDs.
func (_u *StageExecutionUpdateOne) RemoveMcpInteractionIDs(ids ...string) *StageExecutionUpdateOne {
	_u.mutation.RemoveMcpInteractionIDs(ids...)
	return _u
}

// RemoveMcpInteractions removes "mcp_interactions" edges to MCPInteraction entities.
func (_u *StageExecutionUpdateOne) RemoveMcpInteractions(v ...*MCPInteraction) *StageExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMcpInteractionIDs(ids...)
}

// Where appends a list predicates to the StageExecutionUpdate builder.
func (_u *StageExecutionUpdateOne) Where(ps ...predicate.StageExecution) *StageExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StageExecutionUpdateOne) Select(field string, fields ...string) *StageExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StageExecution entity.
func (_u *StageExecutionUpdateOne) Save(ctx context.Context) (*StageExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageExecutionUpdateOne) SaveX(ctx context.Context) *StageExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StageExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := stageexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StageExecution.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StageExecution.session"`)
	}
	return nil
}

func (_u *StageExecutionUpdateOne) sqlSave(ctx context.Context) (_node *StageExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stageexecution.Table, stageexecution.Columns, sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StageExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stageexecution.FieldID)
		for _, f := range fields {
			if !stageexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stageexecution.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StageID(); ok {
		_spec.SetField(stageexecution.FieldStageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageIndex(); ok {
		_spec.SetField(stageexecution.FieldStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageIndex(); ok {
		_spec.AddField(stageexecution.FieldStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(stageexecution.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.IterationStrategy(); ok {
		_spec.SetField(stageexecution.FieldIterationStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(stageexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(stageexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(stageexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(stageexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(stageexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(stageexecution.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(stageexecution.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(stageexecution.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.CurrentIteration(); ok {
		_spec.SetField(stageexecution.FieldCurrentIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentIteration(); ok {
		_spec.AddField(stageexecution.FieldCurrentIteration, field.TypeInt, value)
	}
	if _u.mutation.CurrentIterationCleared() {
		_spec.ClearField(stageexecution.FieldCurrentIteration, field.TypeInt)
	}
	if value, ok := _u.mutation.StageOutput(); ok {
		_spec.SetField(stageexecution.FieldStageOutput, field.TypeString, value)
	}
	if _u.mutation.StageOutputCleared() {
		_spec.ClearField(stageexecution.FieldStageOutput, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(stageexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(stageexecution.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.TimelineEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTimelineEventsIDs(); len(nodes) > 0 && !_u.mutation.TimelineEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TimelineEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LlmInteractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLlmInteractionsIDs(); len(nodes) > 0 && !_u.mutation.LlmInteractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LlmInteractionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.McpInteractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMcpInteractionsIDs(); len(nodes) > 0 && !_u.mutation.McpInteractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.McpInteractionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &StageExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stageexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
