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
	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/ent/event"
	"github.com/tarsy-project/tarsy/ent/llminteraction"
	"github.com/tarsy-project/tarsy/ent/mcpinteraction"
	"github.com/tarsy-project/tarsy/ent/predicate"
	"github.com/tarsy-project/tarsy/ent/stageexecution"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
)

// AlertSessionUpdate is the builder for updating AlertSession entities.
type AlertSessionUpdate struct {
	config
	hooks    []Hook
	mutation *AlertSessionMutation
}

// Where appends a list predicates to the AlertSessionUpdate builder.
func (_u *AlertSessionUpdate) Where(ps ...predicate.AlertSession) *AlertSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAlertData sets the "alert_data" field.
func (_u *AlertSessionUpdate) SetAlertData(v string) *AlertSessionUpdate {
	_u.mutation.SetAlertData(v)
	return _u
}

// SetNillableAlertData sets the "alert_data" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableAlertData(v *string) *AlertSessionUpdate {
	if v != nil {
		_u.SetAlertData(*v)
	}
	return _u
}

// SetAlertType sets the "alert_type" field.
func (_u *AlertSessionUpdate) SetAlertType(v string) *AlertSessionUpdate {
	_u.mutation.SetAlertType(v)
	return _u
}

// SetNillableAlertType sets the "alert_type" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableAlertType(v *string) *AlertSessionUpdate {
	if v != nil {
		_u.SetAlertType(*v)
	}
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *AlertSessionUpdate) SetFingerprint(v string) *AlertSessionUpdate {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableFingerprint(v *string) *AlertSessionUpdate {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AlertSessionUpdate) SetStatus(v alertsession.Status) *AlertSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableStatus(v *alertsession.Status) *AlertSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AlertSessionUpdate) SetCreatedAt(v time.Time) *AlertSessionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableCreatedAt(v *time.Time) *AlertSessionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AlertSessionUpdate) SetStartedAt(v time.Time) *AlertSessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableStartedAt(v *time.Time) *AlertSessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AlertSessionUpdate) ClearStartedAt() *AlertSessionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AlertSessionUpdate) SetCompletedAt(v time.Time) *AlertSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableCompletedAt(v *time.Time) *AlertSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AlertSessionUpdate) ClearCompletedAt() *AlertSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AlertSessionUpdate) SetErrorMessage(v string) *AlertSessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableErrorMessage(v *string) *AlertSessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AlertSessionUpdate) ClearErrorMessage() *AlertSessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFinalAnalysis sets the "final_analysis" field.
func (_u *AlertSessionUpdate) SetFinalAnalysis(v string) *AlertSessionUpdate {
	_u.mutation.SetFinalAnalysis(v)
	return _u
}

// SetNillableFinalAnalysis sets the "final_analysis" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableFinalAnalysis(v *string) *AlertSessionUpdate {
	if v != nil {
		_u.SetFinalAnalysis(*v)
	}
	return _u
}

// ClearFinalAnalysis clears the value of the "final_analysis" field.
func (_u *AlertSessionUpdate) ClearFinalAnalysis() *AlertSessionUpdate {
	_u.mutation.ClearFinalAnalysis()
	return _u
}

// SetPauseMetadata sets the "pause_metadata" field.
func (_u *AlertSessionUpdate) SetPauseMetadata(v map[string]interface{}) *AlertSessionUpdate {
	_u.mutation.SetPauseMetadata(v)
	return _u
}

// ClearPauseMetadata clears the value of the "pause_metadata" field.
func (_u *AlertSessionUpdate) ClearPauseMetadata() *AlertSessionUpdate {
	_u.mutation.ClearPauseMetadata()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *AlertSessionUpdate) SetAuthor(v string) *AlertSessionUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableAuthor(v *string) *AlertSessionUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *AlertSessionUpdate) ClearAuthor() *AlertSessionUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// SetRunbookURL sets the "runbook_url" field.
func (_u *AlertSessionUpdate) SetRunbookURL(v string) *AlertSessionUpdate {
	_u.mutation.SetRunbookURL(v)
	return _u
}

// SetNillableRunbookURL sets the "runbook_url" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableRunbookURL(v *string) *AlertSessionUpdate {
	if v != nil {
		_u.SetRunbookURL(*v)
	}
	return _u
}

// ClearRunbookURL clears the value of the "runbook_url" field.
func (_u *AlertSessionUpdate) ClearRunbookURL() *AlertSessionUpdate {
	_u.mutation.ClearRunbookURL()
	return _u
}

// SetMcpSelection sets the "mcp_selection" field.
func (_u *AlertSessionUpdate) SetMcpSelection(v map[string]interface{}) *AlertSessionUpdate {
	_u.mutation.SetMcpSelection(v)
	return _u
}

// ClearMcpSelection clears the value of the "mcp_selection" field.
func (_u *AlertSessionUpdate) ClearMcpSelection() *AlertSessionUpdate {
	_u.mutation.ClearMcpSelection()
	return _u
}

// SetChainID sets the "chain_id" field.
func (_u *AlertSessionUpdate) SetChainID(v string) *AlertSessionUpdate {
	_u.mutation.SetChainID(v)
	return _u
}

// SetNillableChainID sets the "chain_id" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableChainID(v *string) *AlertSessionUpdate {
	if v != nil {
		_u.SetChainID(*v)
	}
	return _u
}

// SetCurrentStageIndex sets the "current_stage_index" field.
func (_u *AlertSessionUpdate) SetCurrentStageIndex(v int) *AlertSessionUpdate {
	_u.mutation.ResetCurrentStageIndex()
	_u.mutation.SetCurrentStageIndex(v)
	return _u
}

// SetNillableCurrentStageIndex sets the "current_stage_index" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableCurrentStageIndex(v *int) *AlertSessionUpdate {
	if v != nil {
		_u.SetCurrentStageIndex(*v)
	}
	return _u
}

// AddCurrentStageIndex adds value to the "current_stage_index" field.
func (_u *AlertSessionUpdate) AddCurrentStageIndex(v int) *AlertSessionUpdate {
	_u.mutation.AddCurrentStageIndex(v)
	return _u
}

// ClearCurrentStageIndex clears the value of the "current_stage_index" field.
func (_u *AlertSessionUpdate) ClearCurrentStageIndex() *AlertSessionUpdate {
	_u.mutation.ClearCurrentStageIndex()
	return _u
}

// SetCurrentStageID sets the "current_stage_id" field.
func (_u *AlertSessionUpdate) SetCurrentStageID(v string) *AlertSessionUpdate {
	_u.mutation.SetCurrentStageID(v)
	return _u
}

// SetNillableCurrentStageID sets the "current_stage_id" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableCurrentStageID(v *string) *AlertSessionUpdate {
	if v != nil {
		_u.SetCurrentStageID(*v)
	}
	return _u
}

// ClearCurrentStageID clears the value of the "current_stage_id" field.
func (_u *AlertSessionUpdate) ClearCurrentStageID() *AlertSessionUpdate {
	_u.mutation.ClearCurrentStageID()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *AlertSessionUpdate) SetPodID(v string) *AlertSessionUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillablePodID(v *string) *AlertSessionUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *AlertSessionUpdate) ClearPodID() *AlertSessionUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *AlertSessionUpdate) SetLastInteractionAt(v time.Time) *AlertSessionUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableLastInteractionAt(v *time.Time) *AlertSessionUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *AlertSessionUpdate) ClearLastInteractionAt() *AlertSessionUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *AlertSessionUpdate) SetDeletedAt(v time.Time) *AlertSessionUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableDeletedAt(v *time.Time) *AlertSessionUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *AlertSessionUpdate) ClearDeletedAt() *AlertSessionUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddStageExecutionIDs adds the "stage_executions" edge to the StageExecution entity by IDs.
func (_u *AlertSessionUpdate) AddStageExecutionIDs(ids ...string) *AlertSessionUpdate {
	_u.mutation.AddStageExecutionIDs(ids...)
	return _u
}

// AddStageExecutions adds the "stage_executions" edges to the StageExecution entity.
func (_u *AlertSessionUpdate) AddStageExecutions(v ...*StageExecution) *AlertSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageExecutionIDs(ids...)
}

// AddTimelineEventIDs adds the "timeline_events" edge to the TimelineEvent entity by IDs.
func (_u *AlertSessionUpdate) AddTimelineEventIDs(ids ...string) *AlertSessionUpdate {
	_u.mutation.AddTimelineEventIDs(ids...)
	return _u
}

// AddTimelineEvents adds the "timeline_events" edges to the TimelineEvent entity.
func (_u *AlertSessionUpdate) AddTimelineEvents(v ...*TimelineEvent) *AlertSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTimelineEventIDs(ids...)
}

// AddLlmInteractionIDs adds the "llm_interactions" edge to the LLMInteraction entity by IDs.
func (_u *AlertSessionUpdate) AddLlmInteractionIDs(ids ...string) *AlertSessionUpdate {
	_u.mutation.AddLlmInteractionIDs(ids...)
	return _u
}

// AddLlmInteractions adds the "llm_interactions" edges to the LLMInteraction entity.
func (_u *AlertSessionUpdate) AddLlmInteractions(v ...*LLMInteraction) *AlertSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLlmInteractionIDs(ids...)
}

// AddMcpInteractionIDs adds the "mcp_interactions" edge to the MCPInteraction entity by IDs.
func (_u *AlertSessionUpdate) AddMcpInteractionIDs(ids ...string) *AlertSessionUpdate {
	_u.mutation.AddMcpInteractionIDs(ids...)
	return _u
}

// AddMcpInteractions adds the "mcp_interactions" edges to the MCPInteraction entity.
func (_u *AlertSessionUpdate) AddMcpInteractions(v ...*MCPInteraction) *AlertSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMcpInteractionIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *AlertSessionUpdate) AddEventIDs(ids ...int) *AlertSessionUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *AlertSessionUpdate) AddEvents(v ...*Event) *AlertSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the AlertSessionMutation object of the builder.
func (_u *AlertSessionUpdate) Mutation() *AlertSessionMutation {
	return _u.mutation
}

// ClearStageExecutions clears all "stage_executions" edges to the StageExecution entity.
func (_u *AlertSessionUpdate) ClearStageExecutions() *AlertSessionUpdate {
	_u.mutation.ClearStageExecutions()
	return _u
}

// RemoveStageExecutionIDs removes the "stage_executions" edge to StageExecution entities by IDs.
func (_u *AlertSessionUpdate) RemoveStageExecutionIDs(ids ...string) *AlertSessionUpdate {
	_u.mutation.RemoveStageExecutionIDs(ids...)
	return _u
}

// RemoveStageExecutions removes "stage_executions" edges to StageExecution entities.
func (_u *AlertSessionUpdate) RemoveStageExecutions(v ...*StageExecution) *AlertSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageExecutionIDs(ids...)
}

// ClearTimelineEvents clears all "timeline_events" edges to the TimelineEvent entity.
func (_u *AlertSessionUpdate) ClearTimelineEvents() *AlertSessionUpdate {
	_u.mutation.ClearTimelineEvents()
	return _u
}

// RemoveTimelineEventIDs removes the "timeline_events" edge to TimelineEvent entities by IDs.
func (_u *AlertSessionUpdate) RemoveTimelineEventIDs(ids ...string) *AlertSessionUpdate {
	_u.mutation.RemoveTimelineEventIDs(ids...)
	return _u
}

// RemoveTimelineEvents removes "timeline_events" edges to TimelineEvent entities.
func (_u *AlertSessionUpdate) RemoveTimelineEvents(v ...*TimelineEvent) *AlertSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTimelineEventIDs(ids...)
}

// ClearLlmInteractions clears all "llm_interactions" edges to the LLMInteraction entity.
func (_u *AlertSessionUpdate) ClearLlmInteractions() *AlertSessionUpdate {
	_u.mutation.ClearLlmInteractions()
	return _u
}

// RemoveLlmInteractionIDs removes the "llm_interactions" edge to LLMInteraction entities by IDs.
func (_u *AlertSessionUpdate) RemoveLlmInteractionIDs(ids ...string) *AlertSessionUpdate {
	_u.mutation.RemoveLlmInteractionIDs(ids...)
	return _u
}

// RemoveLlmInteractions removes "llm_interactions" edges to LLMInteraction entities.
func (_u *AlertSessionUpdate) RemoveLlmInteractions(v ...*LLMInteraction) *AlertSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLlmInteractionIDs(ids...)
}

// ClearMcpInteractions clears all "mcp_interactions" edges to the MCPInteraction entity.
func (_u *AlertSessionUpdate) ClearMcpInteractions() *AlertSessionUpdate {
	_u.mutation.ClearMcpInteractions()
	return _u
}

// RemoveMcpInteractionIDs removes the "mcp_interactions" edge to MCPInteraction entities by IDs.
func (_u *AlertSessionUpdate) RemoveMcpInteractionIDs(ids ...string) *AlertSessionUpdate {
	_u.mutation.RemoveMcpInteractionIDs(ids...)
	return _u
}

// RemoveMcpInteractions removes "mcp_interactions" edges to MCPInteraction entities.
func (_u *AlertSessionUpdate) RemoveMcpInteractions(v ...*MCPInteraction) *AlertSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMcpInteractionIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *AlertSessionUpdate) ClearEvents() *AlertSessionUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *AlertSessionUpdate) RemoveEventIDs(ids ...int) *AlertSessionUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *AlertSessionUpdate) RemoveEvents(v ...*Event) *AlertSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AlertSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AlertSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := alertsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AlertSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AlertSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alertsession.Table, alertsession.Columns, sqlgraph.NewFieldSpec(alertsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AlertData(); ok {
		_spec.SetField(alertsession.FieldAlertData, field.TypeString, value)
	}
	if value, ok := _u.mutation.AlertType(); ok {
		_spec.SetField(alertsession.FieldAlertType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(alertsession.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(alertsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(alertsession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(alertsession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(alertsession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(alertsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(alertsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(alertsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(alertsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FinalAnalysis(); ok {
		_spec.SetField(alertsession.FieldFinalAnalysis, field.TypeString, value)
	}
	if _u.mutation.FinalAnalysisCleared() {
		_spec.ClearField(alertsession.FieldFinalAnalysis, field.TypeString)
	}
	if value, ok := _u.mutation.PauseMetadata(); ok {
		_spec.SetField(alertsession.FieldPauseMetadata, field.TypeJSON, value)
	}
	if _u.mutation.PauseMetadataCleared() {
		_spec.ClearField(alertsession.FieldPauseMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(alertsession.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(alertsession.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.RunbookURL(); ok {
		_spec.SetField(alertsession.FieldRunbookURL, field.TypeString, value)
	}
	if _u.mutation.RunbookURLCleared() {
		_spec.ClearField(alertsession.FieldRunbookURL, field.TypeString)
	}
	if value, ok := _u.mutation.McpSelection(); ok {
		_spec.SetField(alertsession.FieldMcpSelection, field.TypeJSON, value)
	}
	if _u.mutation.McpSelectionCleared() {
		_spec.ClearField(alertsession.FieldMcpSelection, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChainID(); ok {
		_spec.SetField(alertsession.FieldChainID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentStageIndex(); ok {
		_spec.SetField(alertsession.FieldCurrentStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStageIndex(); ok {
		_spec.AddField(alertsession.FieldCurrentStageIndex, field.TypeInt, value)
	}
	if _u.mutation.CurrentStageIndexCleared() {
		_spec.ClearField(alertsession.FieldCurrentStageIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.CurrentStageID(); ok {
		_spec.SetField(alertsession.FieldCurrentStageID, field.TypeString, value)
	}
	if _u.mutation.CurrentStageIDCleared() {
		_spec.ClearField(alertsession.FieldCurrentStageID, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(alertsession.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(alertsession.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(alertsession.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(alertsession.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(alertsession.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(alertsession.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.StageExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.StageExecutionsTable,
			Columns: []string{alertsession.StageExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStageExecutionsIDs(); len(nodes) > 0 && !_u.mutation.StageExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.StageExecutionsTable,
			Columns: []string{alertsession.StageExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.StageExecutionsTable,
			Columns: []string{alertsession.StageExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TimelineEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.TimelineEventsTable,
			Columns: []string{alertsession.TimelineEventsColumn},
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
			Table:   alertsession.TimelineEventsTable,
			Columns: []string{alertsession.TimelineEventsColumn},
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
			Table:   alertsession.TimelineEventsTable,
			Columns: []string{alertsession.TimelineEventsColumn},
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
			Table:   alertsession.LlmInteractionsTable,
			Columns: []string{alertsession.LlmInteractionsColumn},
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
			Table:   alertsession.LlmInteractionsTable,
			Columns: []string{alertsession.LlmInteractionsColumn},
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
			Table:   alertsession.LlmInteractionsTable,
			Columns: []string{alertsession.LlmInteractionsColumn},
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
			Table:   alertsession.McpInteractionsTable,
			Columns: []string{alertsession.McpInteractionsColumn},
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
			Table:   alertsession.McpInteractionsTable,
			Columns: []string{alertsession.McpInteractionsColumn},
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
			Table:   alertsession.McpInteractionsTable,
			Columns: []string{alertsession.McpInteractionsColumn},
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
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.EventsTable,
			Columns: []string{alertsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.EventsTable,
			Columns: []string{alertsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.EventsTable,
			Columns: []string{alertsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alertsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AlertSessionUpdateOne is the builder for updating a single AlertSession entity.
type AlertSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AlertSessionMutation
}

// SetAlertData sets the "alert_data" field.
func (_u *AlertSessionUpdateOne) SetAlertData(v string) *AlertSessionUpdateOne {
	_u.mutation.SetAlertData(v)
	return _u
}

// SetNillableAlertData sets the "alert_data" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableAlertData(v *string) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetAlertData(*v)
	}
	return _u
}

// SetAlertType sets the "alert_type" field.
func (_u *AlertSessionUpdateOne) SetAlertType(v string) *AlertSessionUpdateOne {
	_u.mutation.SetAlertType(v)
	return _u
}

// SetNillableAlertType sets the "alert_type" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableAlertType(v *string) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetAlertType(*v)
	}
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *AlertSessionUpdateOne) SetFingerprint(v string) *AlertSessionUpdateOne {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableFingerprint(v *string) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AlertSessionUpdateOne) SetStatus(v alertsession.Status) *AlertSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableStatus(v *alertsession.Status) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AlertSessionUpdateOne) SetCreatedAt(v time.Time) *AlertSessionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableCreatedAt(v *time.Time) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AlertSessionUpdateOne) SetStartedAt(v time.Time) *AlertSessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableStartedAt(v *time.Time) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AlertSessionUpdateOne) ClearStartedAt() *AlertSessionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AlertSessionUpdateOne) SetCompletedAt(v time.Time) *AlertSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AlertSessionUpdateOne) ClearCompletedAt() *AlertSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AlertSessionUpdateOne) SetErrorMessage(v string) *AlertSessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableErrorMessage(v *string) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AlertSessionUpdateOne) ClearErrorMessage() *AlertSessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFinalAnalysis sets the "final_analysis" field.
func (_u *AlertSessionUpdateOne) SetFinalAnalysis(v string) *AlertSessionUpdateOne {
	_u.mutation.SetFinalAnalysis(v)
	return _u
}

// SetNillableFinalAnalysis sets the "final_analysis" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableFinalAnalysis(v *string) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetFinalAnalysis(*v)
	}
	return _u
}

// ClearFinalAnalysis clears the value of the "final_analysis" field.
func (_u *AlertSessionUpdateOne) ClearFinalAnalysis() *AlertSessionUpdateOne {
	_u.mutation.ClearFinalAnalysis()
	return _u
}

// SetPauseMetadata sets the "pause_metadata" field.
func (_u *AlertSessionUpdateOne) SetPauseMetadata(v map[string]interface{}) *AlertSessionUpdateOne {
	_u.mutation.SetPauseMetadata(v)
	return _u
}

// ClearPauseMetadata clears the value of the "pause_metadata" field.
func (_u *AlertSessionUpdateOne) ClearPauseMetadata() *AlertSessionUpdateOne {
	_u.mutation.ClearPauseMetadata()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *AlertSessionUpdateOne) SetAuthor(v string) *AlertSessionUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableAuthor(v *string) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *AlertSessionUpdateOne) ClearAuthor() *AlertSessionUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// SetRunbookURL sets the "runbook_url" field.
func (_u *AlertSessionUpdateOne) SetRunbookURL(v string) *AlertSessionUpdateOne {
	_u.mutation.SetRunbookURL(v)
	return _u
}

// SetNillableRunbookURL sets the "runbook_url" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableRunbookURL(v *string) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetRunbookURL(*v)
	}
	return _u
}

// ClearRunbookURL clears the value of the "runbook_url" field.
func (_u *AlertSessionUpdateOne) ClearRunbookURL() *AlertSessionUpdateOne {
	_u.mutation.ClearRunbookURL()
	return _u
}

// SetMcpSelection sets the "mcp_selection" field.
func (_u *AlertSessionUpdateOne) SetMcpSelection(v map[string]interface{}) *AlertSessionUpdateOne {
	_u.mutation.SetMcpSelection(v)
	return _u
}

// ClearMcpSelection clears the value of the "mcp_selection" field.
func (_u *AlertSessionUpdateOne) ClearMcpSelection() *AlertSessionUpdateOne {
	_u.mutation.ClearMcpSelection()
	return _u
}

// SetChainID sets the "chain_id" field.
func (_u *AlertSessionUpdateOne) SetChainID(v string) *AlertSessionUpdateOne {
	_u.mutation.SetChainID(v)
	return _u
}

// SetNillableChainID sets the "chain_id" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableChainID(v *string) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetChainID(*v)
	}
	return _u
}

// SetCurrentStageIndex sets the "current_stage_index" field.
func (_u *AlertSessionUpdateOne) SetCurrentStageIndex(v int) *AlertSessionUpdateOne {
	_u.mutation.ResetCurrentStageIndex()
	_u.mutation.SetCurrentStageIndex(v)
	return _u
}

// SetNillableCurrentStageIndex sets the "current_stage_index" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableCurrentStageIndex(v *int) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetCurrentStageIndex(*v)
	}
	return _u
}

// AddCurrentStageIndex adds value to the "current_stage_index" field.
func (_u *AlertSessionUpdateOne) AddCurrentStageIndex(v int) *AlertSessionUpdateOne {
	_u.mutation.AddCurrentStageIndex(v)
	return _u
}

// ClearCurrentStageIndex clears the value of the "current_stage_index" field.
func (_u *AlertSessionUpdateOne) ClearCurrentStageIndex() *AlertSessionUpdateOne {
	_u.mutation.ClearCurrentStageIndex()
	return _u
}

// SetCurrentStageID sets the "current_stage_id" field.
func (_u *AlertSessionUpdateOne) SetCurrentStageID(v string) *AlertSessionUpdateOne {
	_u.mutation.SetCurrentStageID(v)
	return _u
}

// SetNillableCurrentStageID sets the "current_stage_id" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableCurrentStageID(v *string) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetCurrentStageID(*v)
	}
	return _u
}

// ClearCurrentStageID clears the value of the "current_stage_id" field.
func (_u *AlertSessionUpdateOne) ClearCurrentStageID() *AlertSessionUpdateOne {
	_u.mutation.ClearCurrentStageID()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *AlertSessionUpdateOne) SetPodID(v string) *AlertSessionUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillablePodID(v *string) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *AlertSessionUpdateOne) ClearPodID() *AlertSessionUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *AlertSessionUpdateOne) SetLastInteractionAt(v time.Time) *AlertSessionUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableLastInteractionAt(v *time.Time) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *AlertSessionUpdateOne) ClearLastInteractionAt() *AlertSessionUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *AlertSessionUpdateOne) SetDeletedAt(v time.Time) *AlertSessionUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableDeletedAt(v *time.Time) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *AlertSessionUpdateOne) ClearDeletedAt() *AlertSessionUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddStageExecutionIDs adds the "stage_executions" edge to the StageExecution entity by IDs.
func (_u *AlertSessionUpdateOne) AddStageExecutionIDs(ids ...string) *AlertSessionUpdateOne {
	_u.mutation.AddStageExecutionIDs(ids...)
	return _u
}

// AddStageExecutions adds the "stage_executions" edges to the StageExecution entity.
func (_u *AlertSessionUpdateOne) AddStageExecutions(v ...*StageExecution) *AlertSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageExecutionIDs(ids...)
}

// AddTimelineEventIDs adds the "timeline_events" edge to the TimelineEvent entity by IDs.
func (_u *AlertSessionUpdateOne) AddTimelineEventIDs(ids ...string) *AlertSessionUpdateOne {
	_u.mutation.AddTimelineEventIDs(ids...)
	return _u
}

// AddTimelineEvents adds the "timeline_events" edges to the TimelineEvent entity.
func (_u *AlertSessionUpdateOne) AddTimelineEvents(v ...*TimelineEvent) *AlertSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTimelineEventIDs(ids...)
}

// AddLlmInteractionIDs adds the "llm_interactions" edge to the LLMInteraction entity by IDs.
func (_u *AlertSessionUpdateOne) AddLlmInteractionIDs(ids ...string) *AlertSessionUpdateOne {
	_u.mutation.AddLlmInteractionIDs(ids...)
	return _u
}

// AddLlmInteractions adds the "llm_interactions" edges to the LLMInteraction entity.
func (_u *AlertSessionUpdateOne) AddLlmInteractions(v ...*LLMInteraction) *AlertSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLlmInteractionIDs(ids...)
}

// AddMcpInteractionIDs adds the "mcp_interactions" edge to the MCPInteraction entity by IDs.
func (_u *AlertSessionUpdateOne) AddMcpInteractionIDs(ids ...string) *AlertSessionUpdateOne {
	_u.mutation.AddMcpInteractionIDs(ids...)
	return _u
}

// AddMcpInteractions adds the "mcp_interactions" edges to the MCPInteraction entity.
func (_u *AlertSessionUpdateOne) AddMcpInteractions(v ...*MCPInteraction) *AlertSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMcpInteractionIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *AlertSessionUpdateOne) AddEventIDs(ids ...int) *AlertSessionUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *AlertSessionUpdateOne) AddEvents(v ...*Event) *AlertSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the AlertSessionMutation object of the builder.
func (_u *AlertSessionUpdateOne) Mutation() *AlertSessionMutation {
	return _u.mutation
}

// ClearStageExecutions clears all "stage_executions" edges to the StageExecution entity.
func (_u *AlertSessionUpdateOne) ClearStageExecutions() *AlertSessionUpdateOne {
	_u.mutation.ClearStageExecutions()
	return _u
}

// RemoveStageExecutionIDs removes the "stage_executions" edge to StageExecution entities by IDs.
func (_u *AlertSessionUpdateOne) RemoveStageExecutionIDs(ids ...string) *AlertSessionUpdateOne {
	_u.mutation.RemoveStageExecutionIDs(ids...)
	return _u
}

// RemoveStageExecutions removes "stage_executions" edges to StageExecution entities.
func (_u *AlertSessionUpdateOne) RemoveStageExecutions(v ...*StageExecution) *AlertSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageExecutionIDs(ids...)
}

// ClearTimelineEvents clears all "timeline_events" edges to the TimelineEvent entity.
func (_u *AlertSessionUpdateOne) ClearTimelineEvents() *AlertSessionUpdateOne {
	_u.mutation.ClearTimelineEvents()
	return _u
}

// RemoveTimelineEventIDs removes the "timeline_events" edge to TimelineEvent entities by IDs.
func (_u *AlertSessionUpdateOne) RemoveTimelineEventIDs(ids ...string) *AlertSessionUpdateOne {
	_u.mutation.RemoveTimelineEventIDs(ids...)
	return _u
}

// RemoveTimelineEvents removes "timeline_events" edges to TimelineEvent entities.
func (_u *AlertSessionUpdateOne) RemoveTimelineEvents(v ...*TimelineEvent) *AlertSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTimelineEventIDs(ids...)
}

// ClearLlmInteractions clears all "llm_interactions" edges to the LLMInteraction entity.
func (_u *AlertSessionUpdateOne) ClearLlmInteractions() *AlertSessionUpdateOne {
	_u.mutation.ClearLlmInteractions()
	return _u
}

// RemoveLlmInteractionIDs removes the "llm_interactions" edge to LLMInteraction entities by IDs.
func (_u *AlertSessionUpdateOne) RemoveLlmInteractionIDs(ids ...string) *AlertSessionUpdateOne {
	_u.mutation.RemoveLlmInteractionIDs(ids...)
	return _u
}

// RemoveLlmInteractions removes "llm_interactions" edges to LLMInteraction entities.
func (_u *AlertSessionUpdateOne) RemoveLlmInteractions(v ...*LLMInteraction) *AlertSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLlmInteractionIDs(ids...)
}

// ClearMcpInteractions clears all "mcp_interactions" edges to the MCPInteraction entity.
func (_u *AlertSessionUpdateOne) ClearMcpInteractions() *AlertSessionUpdateOne {
	_u.mutation.ClearMcpInteractions()
	return _u
}

// RemoveMcpInteractionIDs removes the "mcp_interactions" edge to MCPInteraction entities by IDs.
func (_u *AlertSessionUpdateOne) RemoveMcpInteractionIDs(ids ...string) *AlertSessionUpdateOne {
	_u.mutation.RemoveMcpInteractionIDs(ids...)
	return _u
}

// RemoveMcpInteractions removes "mcp_interactions" edges to MCPInteraction entities.
func (_u *AlertSessionUpdateOne) RemoveMcpInteractions(v ...*MCPInteraction) *AlertSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMcpInteractionIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *AlertSessionUpdateOne) ClearEvents() *AlertSessionUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *AlertSessionUpdateOne) RemoveEventIDs(ids ...int) *AlertSessionUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *AlertSessionUpdateOne) RemoveEvents(v ...*Event) *AlertSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the AlertSessionUpdate builder.
func (_u *AlertSessionUpdateOne) Where(ps ...predicate.AlertSession) *AlertSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AlertSessionUpdateOne) Select(field string, fields ...string) *AlertSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AlertSession entity.
func (_u *AlertSessionUpdateOne) Save(ctx context.Context) (*AlertSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertSessionUpdateOne) SaveX(ctx context.Context) *AlertSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AlertSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := alertsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AlertSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AlertSessionUpdateOne) sqlSave(ctx context.Context) (_node *AlertSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alertsession.Table, alertsession.Columns, sqlgraph.NewFieldSpec(alertsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AlertSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, alertsession.FieldID)
		for _, f := range fields {
			if !alertsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != alertsession.FieldID {
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
	if value, ok := _u.mutation.AlertData(); ok {
		_spec.SetField(alertsession.FieldAlertData, field.TypeString, value)
	}
	if value, ok := _u.mutation.AlertType(); ok {
		_spec.SetField(alertsession.FieldAlertType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(alertsession.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(alertsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(alertsession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(alertsession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(alertsession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(alertsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(alertsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(alertsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(alertsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FinalAnalysis(); ok {
		_spec.SetField(alertsession.FieldFinalAnalysis, field.TypeString, value)
	}
	if _u.mutation.FinalAnalysisCleared() {
		_spec.ClearField(alertsession.FieldFinalAnalysis, field.TypeString)
	}
	if value, ok := _u.mutation.PauseMetadata(); ok {
		_spec.SetField(alertsession.FieldPauseMetadata, field.TypeJSON, value)
	}
	if _u.mutation.PauseMetadataCleared() {
		_spec.ClearField(alertsession.FieldPauseMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(alertsession.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(alertsession.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.RunbookURL(); ok {
		_spec.SetField(alertsession.FieldRunbookURL, field.TypeString, value)
	}
	if _u.mutation.RunbookURLCleared() {
		_spec.ClearField(alertsession.FieldRunbookURL, field.TypeString)
	}
	if value, ok := _u.mutation.McpSelection(); ok {
		_spec.SetField(alertsession.FieldMcpSelection, field.TypeJSON, value)
	}
	if _u.mutation.McpSelectionCleared() {
		_spec.ClearField(alertsession.FieldMcpSelection, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChainID(); ok {
		_spec.SetField(alertsession.FieldChainID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentStageIndex(); ok {
		_spec.SetField(alertsession.FieldCurrentStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStageIndex(); ok {
		_spec.AddField(alertsession.FieldCurrentStageIndex, field.TypeInt, value)
	}
	if _u.mutation.CurrentStageIndexCleared() {
		_spec.ClearField(alertsession.FieldCurrentStageIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.CurrentStageID(); ok {
		_spec.SetField(alertsession.FieldCurrentStageID, field.TypeString, value)
	}
	if _u.mutation.CurrentStageIDCleared() {
		_spec.ClearField(alertsession.FieldCurrentStageID, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(alertsession.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(alertsession.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(alertsession.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(alertsession.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(alertsession.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(alertsession.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.StageExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.StageExecutionsTable,
			Columns: []string{alertsession.StageExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStageExecutionsIDs(); len(nodes) > 0 && !_u.mutation.StageExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.StageExecutionsTable,
			Columns: []string{alertsession.StageExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.StageExecutionsTable,
			Columns: []string{alertsession.StageExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TimelineEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.TimelineEventsTable,
			Columns: []string{alertsession.TimelineEventsColumn},
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
			Table:   alertsession.TimelineEventsTable,
			Columns: []string{alertsession.TimelineEventsColumn},
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
			Table:   alertsession.TimelineEventsTable,
			Columns: []string{alertsession.TimelineEventsColumn},
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
			Table:   alertsession.LlmInteractionsTable,
			Columns: []string{alertsession.LlmInteractionsColumn},
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
			Table:   alertsession.LlmInteractionsTable,
			Columns: []string{alertsession.LlmInteractionsColumn},
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
			Table:   alertsession.LlmInteractionsTable,
			Columns: []string{alertsession.LlmInteractionsColumn},
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
			Table:   alertsession.McpInteractionsTable,
			Columns: []string{alertsession.McpInteractionsColumn},
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
			Table:   alertsession.McpInteractionsTable,
			Columns: []string{alertsession.McpInteractionsColumn},
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
			Table:   alertsession.McpInteractionsTable,
			Columns: []string{alertsession.McpInteractionsColumn},
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
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.EventsTable,
			Columns: []string{alertsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.EventsTable,
			Columns: []string{alertsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.EventsTable,
			Columns: []string{alertsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AlertSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alertsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
