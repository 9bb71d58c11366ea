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
	"github.com/tarsy-project/tarsy/ent/event"
	"github.com/tarsy-project/tarsy/ent/llminteraction"
	"github.com/tarsy-project/tarsy/ent/mcpinteraction"
	"github.com/tarsy-project/tarsy/ent/stageexecution"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
)

// AlertSessionCreate is the builder for creating a AlertSession entity.
type AlertSessionCreate struct {
	config
	mutation *AlertSessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAlertData sets the "alert_data" field.
func (_c *AlertSessionCreate) SetAlertData(v string) *AlertSessionCreate {
	_c.mutation.SetAlertData(v)
	return _c
}

// SetAlertType sets the "alert_type" field.
func (_c *AlertSessionCreate) SetAlertType(v string) *AlertSessionCreate {
	_c.mutation.SetAlertType(v)
	return _c
}

// SetFingerprint sets the "fingerprint" field.
func (_c *AlertSessionCreate) SetFingerprint(v string) *AlertSessionCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AlertSessionCreate) SetStatus(v alertsession.Status) *AlertSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AlertSessionCreate) SetNillableStatus(v *alertsession.Status) *AlertSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AlertSessionCreate) SetCreatedAt(v time.Time) *AlertSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AlertSessionCreate) SetNillableCreatedAt(v *time.Time) *AlertSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AlertSessionCreate) SetStartedAt(v time.Time) *AlertSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AlertSessionCreate) SetNillableStartedAt(v *time.Time) *AlertSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AlertSessionCreate) SetCompletedAt(v time.Time) *AlertSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AlertSessionCreate) SetNillableCompletedAt(v *time.Time) *AlertSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AlertSessionCreate) SetErrorMessage(v string) *AlertSessionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AlertSessionCreate) SetNillableErrorMessage(v *string) *AlertSessionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetFinalAnalysis sets the "final_analysis" field.
func (_c *AlertSessionCreate) SetFinalAnalysis(v string) *AlertSessionCreate {
	_c.mutation.SetFinalAnalysis(v)
	return _c
}

// SetNillableFinalAnalysis sets the "final_analysis" field if the given value is not nil.
func (_c *AlertSessionCreate) SetNillableFinalAnalysis(v *string) *AlertSessionCreate {
	if v != nil {
		_c.SetFinalAnalysis(*v)
	}
	return _c
}

// SetPauseMetadata sets the "pause_metadata" field.
func (_c *AlertSessionCreate) SetPauseMetadata(v map[string]interface{}) *AlertSessionCreate {
	_c.mutation.SetPauseMetadata(v)
	return _c
}

// SetAuthor sets the "author" field.
func (_c *AlertSessionCreate) SetAuthor(v string) *AlertSessionCreate {
	_c.mutation.SetAuthor(v)
	return _c
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_c *AlertSessionCreate) SetNillableAuthor(v *string) *AlertSessionCreate {
	if v != nil {
		_c.SetAuthor(*v)
	}
	return _c
}

// SetRunbookURL sets the "runbook_url" field.
func (_c *AlertSessionCreate) SetRunbookURL(v string) *AlertSessionCreate {
	_c.mutation.SetRunbookURL(v)
	return _c
}

// SetNillableRunbookURL sets the "runbook_url" field if the given value is not nil.
func (_c *AlertSessionCreate) SetNillableRunbookURL(v *string) *AlertSessionCreate {
	if v != nil {
		_c.SetRunbookURL(*v)
	}
	return _c
}

// SetMcpSelection sets the "mcp_selection" field.
func (_c *AlertSessionCreate) SetMcpSelection(v map[string]interface{}) *AlertSessionCreate {
	_c.mutation.SetMcpSelection(v)
	return _c
}

// SetChainID sets the "chain_id" field.
func (_c *AlertSessionCreate) SetChainID(v string) *AlertSessionCreate {
	_c.mutation.SetChainID(v)
	return _c
}

// SetCurrentStageIndex sets the "current_stage_index" field.
func (_c *AlertSessionCreate) SetCurrentStageIndex(v int) *AlertSessionCreate {
	_c.mutation.SetCurrentStageIndex(v)
	return _c
}

// SetNillableCurrentStageIndex sets the "current_stage_index" field if the given value is not nil.
func (_c *AlertSessionCreate) SetNillableCurrentStageIndex(v *int) *AlertSessionCreate {
	if v != nil {
		_c.SetCurrentStageIndex(*v)
	}
	return _c
}

// SetCurrentStageID sets the "current_stage_id" field.
func (_c *AlertSessionCreate) SetCurrentStageID(v string) *AlertSessionCreate {
	_c.mutation.SetCurrentStageID(v)
	return _c
}

// SetNillableCurrentStageID sets the "current_stage_id" field if the given value is not nil.
func (_c *AlertSessionCreate) SetNillableCurrentStageID(v *string) *AlertSessionCreate {
	if v != nil {
		_c.SetCurrentStageID(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *AlertSessionCreate) SetPodID(v string) *AlertSessionCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *AlertSessionCreate) SetNillablePodID(v *string) *AlertSessionCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_c *AlertSessionCreate) SetLastInteractionAt(v time.Time) *AlertSessionCreate {
	_c.mutation.SetLastInteractionAt(v)
	return _c
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_c *AlertSessionCreate) SetNillableLastInteractionAt(v *time.Time) *AlertSessionCreate {
	if v != nil {
		_c.SetLastInteractionAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *AlertSessionCreate) SetDeletedAt(v time.Time) *AlertSessionCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *AlertSessionCreate) SetNillableDeletedAt(v *time.Time) *AlertSessionCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AlertSessionCreate) SetID(v string) *AlertSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddStageExecutionIDs adds the "stage_executions" edge to the StageExecution entity by IDs.
func (_c *AlertSessionCreate) AddStageExecutionIDs(ids ...string) *AlertSessionCreate {
	_c.mutation.AddStageExecutionIDs(ids...)
	return _c
}

// AddStageExecutions adds the "stage_executions" edges to the StageExecution entity.
func (_c *AlertSessionCreate) AddStageExecutions(v ...*StageExecution) *AlertSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStageExecutionIDs(ids...)
}

// AddTimelineEventIDs adds the "timeline_events" edge to the TimelineEvent entity by IDs.
func (_c *AlertSessionCreate) AddTimelineEventIDs(ids ...string) *AlertSessionCreate {
	_c.mutation.AddTimelineEventIDs(ids...)
	return _c
}

// AddTimelineEvents adds the "timeline_events" edges to the TimelineEvent entity.
func (_c *AlertSessionCreate) AddTimelineEvents(v ...*TimelineEvent) *AlertSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTimelineEventIDs(ids...)
}

// AddLlmInteractionIDs adds the "llm_interactions" edge to the LLMInteraction entity by IDs.
func (_c *AlertSessionCreate) AddLlmInteractionIDs(ids ...string) *AlertSessionCreate {
	_c.mutation.AddLlmInteractionIDs(ids...)
	return _c
}

// AddLlmInteractions adds the "llm_interactions" edges to the LLMInteraction entity.
func (_c *AlertSessionCreate) AddLlmInteractions(v ...*LLMInteraction) *AlertSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLlmInteractionIDs(ids...)
}

// AddMcpInteractionIDs adds the "mcp_interactions" edge to the MCPInteraction entity by IDs.
func (_c *AlertSessionCreate) AddMcpInteractionIDs(ids ...string) *AlertSessionCreate {
	_c.mutation.AddMcpInteractionIDs(ids...)
	return _c
}

// AddMcpInteractions adds the "mcp_interactions" edges to the MCPInteraction entity.
func (_c *AlertSessionCreate) AddMcpInteractions(v ...*MCPInteraction) *AlertSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMcpInteractionIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *AlertSessionCreate) AddEventIDs(ids ...int) *AlertSessionCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *AlertSessionCreate) AddEvents(v ...*Event) *AlertSessionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the AlertSessionMutation object of the builder.
func (_c *AlertSessionCreate) Mutation() *AlertSessionMutation {
	return _c.mutation
}

// Save creates the AlertSession in the database.
func (_c *AlertSessionCreate) Save(ctx context.Context) (*AlertSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AlertSessionCreate) SaveX(ctx context.Context) *AlertSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AlertSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := alertsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := alertsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AlertSessionCreate) check() error {
	if _, ok := _c.mutation.AlertData(); !ok {
		return &ValidationError{Name: "alert_data", err: errors.New(`ent: missing required field "AlertSession.alert_data"`)}
	}
	if _, ok := _c.mutation.AlertType(); !ok {
		return &ValidationError{Name: "alert_type", err: errors.New(`ent: missing required field "AlertSession.alert_type"`)}
	}
	if _, ok := _c.mutation.Fingerprint(); !ok {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required field "AlertSession.fingerprint"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AlertSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := alertsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AlertSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AlertSession.created_at"`)}
	}
	if _, ok := _c.mutation.ChainID(); !ok {
		return &ValidationError{Name: "chain_id", err: errors.New(`ent: missing required field "AlertSession.chain_id"`)}
	}
	return nil
}

func (_c *AlertSessionCreate) sqlSave(ctx context.Context) (*AlertSession, error) {
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
			return nil, fmt.Errorf("unexpected AlertSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AlertSessionCreate) createSpec() (*AlertSession, *sqlgraph.CreateSpec) {
	var (
		_node = &AlertSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(alertsession.Table, sqlgraph.NewFieldSpec(alertsession.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AlertData(); ok {
		_spec.SetField(alertsession.FieldAlertData, field.TypeString, value)
		_node.AlertData = value
	}
	if value, ok := _c.mutation.AlertType(); ok {
		_spec.SetField(alertsession.FieldAlertType, field.TypeString, value)
		_node.AlertType = value
	}
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(alertsession.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(alertsession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(alertsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(alertsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(alertsession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(alertsession.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.FinalAnalysis(); ok {
		_spec.SetField(alertsession.FieldFinalAnalysis, field.TypeString, value)
		_node.FinalAnalysis = &value
	}
	if value, ok := _c.mutation.PauseMetadata(); ok {
		_spec.SetField(alertsession.FieldPauseMetadata, field.TypeJSON, value)
		_node.PauseMetadata = value
	}
	if value, ok := _c.mutation.Author(); ok {
		_spec.SetField(alertsession.FieldAuthor, field.TypeString, value)
		_node.Author = &value
	}
	if value, ok := _c.mutation.RunbookURL(); ok {
		_spec.SetField(alertsession.FieldRunbookURL, field.TypeString, value)
		_node.RunbookURL = &value
	}
	if value, ok := _c.mutation.McpSelection(); ok {
		_spec.SetField(alertsession.FieldMcpSelection, field.TypeJSON, value)
		_node.McpSelection = value
	}
	if value, ok := _c.mutation.ChainID(); ok {
		_spec.SetField(alertsession.FieldChainID, field.TypeString, value)
		_node.ChainID = value
	}
	if value, ok := _c.mutation.CurrentStageIndex(); ok {
		_spec.SetField(alertsession.FieldCurrentStageIndex, field.TypeInt, value)
		_node.CurrentStageIndex = &value
	}
	if value, ok := _c.mutation.CurrentStageID(); ok {
		_spec.SetField(alertsession.FieldCurrentStageID, field.TypeString, value)
		_node.CurrentStageID = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(alertsession.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastInteractionAt(); ok {
		_spec.SetField(alertsession.FieldLastInteractionAt, field.TypeTime, value)
		_node.LastInteractionAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(alertsession.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.StageExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TimelineEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LlmInteractionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.McpInteractionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AlertSession.Create().
//		SetAlertData(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AlertSessionUpsert) {
//			SetAlertData(v+v).
//		}).
//		Exec(ctx)
func (_c *AlertSessionCreate) OnConflict(opts ...sql.ConflictOption) *AlertSessionUpsertOne {
	_c.conflict = opts
	return &AlertSessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AlertSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AlertSessionCreate) OnConflictColumns(columns ...string) *AlertSessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AlertSessionUpsertOne{
		create: _c,
	}
}

type (
	// AlertSessionUpsertOne is the builder for "upsert"-ing
	//  one AlertSession node.
	AlertSessionUpsertOne struct {
		create *AlertSessionCreate
	}

	// AlertSessionUpsert is the "OnConflict" setter.
	AlertSessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetAlertData sets the "alert_data" field.
func (u *AlertSessionUpsert) SetAlertData(v string) *AlertSessionUpsert {
	u.Set(alertsession.FieldAlertData, v)
	return u
}

// UpdateAlertData sets the "alert_data" field to the value that was provided on create.
func (u *AlertSessionUpsert) UpdateAlertData() *AlertSessionUpsert {
	u.SetExcluded(alertsession.FieldAlertData)
	return u
}

// SetAlertType sets the "alert_type" field.
func (u *AlertSessionUpsert) SetAlertType(v string) *AlertSessionUpsert {
	u.Set(alertsession.FieldAlertType, v)
	return u
}

// UpdateAlertType sets the "alert_type" field to the value that was provided on create.
func (u *AlertSessionUpsert) UpdateAlertType() *AlertSessionUpsert {
	u.SetExcluded(alertsession.FieldAlertType)
	return u
}

// SetFingerprint sets the "fingerprint" field.
func (u *AlertSessionUpsert) SetFingerprint(v string) *AlertSessionUpsert {
	u.Set(alertsession.FieldFingerprint, v)
	return u
}

// UpdateFingerprint sets the "fingerprint" field to the value that was provided on create.
func (u *AlertSessionUpsert) UpdateFingerprint() *AlertSessionUpsert {
	u.SetExcluded(alertsession.FieldFingerprint)
	return u
}

// SetStatus sets the "status" field.
func (u *AlertSessionUpsert) SetStatus(v alertsession.Status) *AlertSessionUpsert {
	u.Set(alertsession.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AlertSessionUpsert) UpdateStatus() *AlertSessionUpsert {
	u.SetExcluded(alertsession.FieldStatus)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *AlertSessionUpsert) SetCreatedAt(v time.Time) *AlertSessionUpsert {
	u.Set(alertsession.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AlertSessionUpsert) UpdateCreatedAt() *AlertSessionUpsert {
	u.SetExcluded(alertsession.FieldCreatedAt)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *AlertSessionUpsert) SetStartedAt(v time.Time) *AlertSessionUpsert {
	u.Set(alertsession.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *AlertSessionUpsert) UpdateStartedAt() *AlertSessionUpsert {
	u.SetExcluded(alertsession.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *AlertSessionUpsert) ClearStartedAt() *AlertSessionUpsert {
	u.SetNull(alertsession.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *AlertSessionUpsert) SetCompletedAt(v time.Time) *AlertSessionUpsert {
	u.Set(alertsession.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AlertSessionUpsert) UpdateCompletedAt() *AlertSessionUpsert {
	u.SetExcluded(alertsession.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AlertSessionUpsert) ClearCompletedAt() *AlertSessionUpsert {
	u.SetNull(alertsession.FieldCompletedAt)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *AlertSessionUpsert) SetErrorMessage(v string) *AlertSessionUpsert {
	u.Set(alertsession.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AlertSessionUpsert) UpdateErrorMessage() *AlertSessionUpsert {
	u.SetExcluded(alertsession.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AlertSessionUpsert) ClearErrorMessage() *AlertSessionUpsert {
	u.SetNull(alertsession.FieldErrorMessage)
	return u
}

// SetFinalAnalysis sets the "final_analysis" field.
func (u *AlertSessionUpsert) SetFinalAnalysis(v string) *AlertSessionUpsert {
	u.Set(alertsession.FieldFinalAnalysis, v)
	return u
}

// UpdateFinalAnalysis sets the "final_analysis" field to the value that was provided on create.
func (u *AlertSessionUpsert) UpdateFinalAnalysis() *AlertSessionUpsert {
	u.SetExcluded(alertsession.FieldFinalAnalysis)
	return u
}

// ClearFinalAnalysis clears the value of the "final_analysis" field.
func (u *AlertSessionUpsert) ClearFinalAnalysis() *AlertSessionUpsert {
	u.SetNull(alertsession.FieldFinalAnalysis)
	return u
}

// SetPauseMetadata sets the "pause_metadata" field.
func (u *AlertSessionUpsert) SetPauseMetadata(v map[string]interface{}) *AlertSessionUpsert {
	u.Set(alertsession.FieldPauseMetadata, v)
	return u
}

// UpdatePauseMetadata sets the "pause_metadata" field to the value that was provided on create.
func (u *AlertSessionUpsert) UpdatePauseMetadata() *AlertSessionUpsert {
	u.SetExcluded(alertsession.FieldPauseMetadata)
	return u
}

// ClearPauseMetadata clears the value of the "pause_metadata" field.
func (u *AlertSessionUpsert) ClearPauseMetadata() *AlertSessionUpsert {
	u.SetNull(alertsession.FieldPauseMetadata)
	return u
}

// SetAuthor sets the "author" field.
func (u *AlertSessionUpsert) SetAuthor(v string) *AlertSessionUpsert {
	u.Set(alertsession.FieldAuthor, v)
	return u
}

// UpdateAuthor sets the "author" field to the value that was provided on create.
func (u *AlertSessionUpsert) UpdateAuthor() *AlertSessionUpsert {
	u.SetExcluded(alertsession.FieldAuthor)
	return u
}

// ClearAuthor clears the value of the "author" field.
func (u *AlertSessionUpsert) ClearAuthor() *AlertSessionUpsert {
	u.SetNull(alertsession.FieldAuthor)
	return u
}

// SetRunbookURL sets the "runbook_url" field.
func (u *AlertSessionUpsert) SetRunbookURL(v string) *AlertSessionUpsert {
	u.Set(alertsession.FieldRunbookURL, v)
	return u
}

// UpdateRunbookURL sets the "runbook_url" field to the value that was provided on create.
func (u *AlertSessionUpsert) UpdateRunbookURL() *AlertSessionUpsert {
	u.SetExcluded(alertsession.FieldRunbookURL)
	return u
}

// ClearRunbookURL clears the value of the "runbook_url" field.
func (u *AlertSessionUpsert) ClearRunbookURL() *AlertSessionUpsert {
	u.SetNull(alertsession.FieldRunbookURL)
	return u
}

// SetMcpSelection sets the "mcp_selection" field.
func (u *AlertSessionUpsert) SetMcpSelection(v map[string]interface{}) *AlertSessionUpsert {
	u.Set(alertsession.FieldMcpSelection, v)
	return u
}

// UpdateMcpSelection sets the "mcp_selection" field to the value that was provided on create.
func (u *AlertSessionUpsert) UpdateMcpSelection() *AlertSessionUpsert {
	u.SetExcluded(alertsession.FieldMcpSelection)
	return u
}

// ClearMcpSelection clears the value of the "mcp_selection" field.
func (u *AlertSessionUpsert) ClearMcpSelection() *AlertSessionUpsert {
	u.SetNull(alertsession.FieldMcpSelection)
	return u
}

// SetChainID sets the "chain_id" field.
func (u *AlertSessionUpsert) SetChainID(v string) *AlertSessionUpsert {
	u.Set(alertsession.FieldChainID, v)
	return u
}

// UpdateChainID sets the "chain_id" field to the value that was provided on create.
func (u *AlertSessionUpsert) UpdateChainID() *AlertSessionUpsert {
	u.SetExcluded(alertsession.FieldChainID)
	return u
}

// SetCurrentStageIndex sets the "current_stage_index" field.
func (u *AlertSessionUpsert) SetCurrentStageIndex(v int) *AlertSessionUpsert {
	u.Set(alertsession.FieldCurrentStageIndex, v)
	return u
}

// UpdateCurrentStageIndex sets the "current_stage_index" field to the value that was provided on create.
func (u *AlertSessionUpsert) UpdateCurrentStageIndex() *AlertSessionUpsert {
	u.SetExcluded(alertsession.FieldCurrentStageIndex)
	return u
}

// AddCurrentStageIndex adds v to the "current_stage_index" field.
func (u *AlertSessionUpsert) AddCurrentStageIndex(v int) *AlertSessionUpsert {
	u.Add(alertsession.FieldCurrentStageIndex, v)
	return u
}

// ClearCurrentStageIndex clears the value of the "current_stage_index" field.
func (u *AlertSessionUpsert) ClearCurrentStageIndex() *AlertSessionUpsert {
	u.SetNull(alertsession.FieldCurrentStageIndex)
	return u
}

// SetCurrentStageID sets the "current_stage_id" field.
func (u *AlertSessionUpsert) SetCurrentStageID(v string) *AlertSessionUpsert {
	u.Set(alertsession.FieldCurrentStageID, v)
	return u
}

// UpdateCurrentStageID sets the "current_stage_id" field to the value that was provided on create.
func (u *AlertSessionUpsert) UpdateCurrentStageID() *AlertSessionUpsert {
	u.SetExcluded(alertsession.FieldCurrentStageID)
	return u
}

// ClearCurrentStageID clears the value of the "current_stage_id" field.
func (u *AlertSessionUpsert) ClearCurrentStageID() *AlertSessionUpsert {
	u.SetNull(alertsession.FieldCurrentStageID)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *AlertSessionUpsert) SetPodID(v string) *AlertSessionUpsert {
	u.Set(alertsession.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *AlertSessionUpsert) UpdatePodID() *AlertSessionUpsert {
	u.SetExcluded(alertsession.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *AlertSessionUpsert) ClearPodID() *AlertSessionUpsert {
	u.SetNull(alertsession.FieldPodID)
	return u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *AlertSessionUpsert) SetLastInteractionAt(v time.Time) *AlertSessionUpsert {
	u.Set(alertsession.FieldLastInteractionAt, v)
	return u
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *AlertSessionUpsert) UpdateLastInteractionAt() *AlertSessionUpsert {
	u.SetExcluded(alertsession.FieldLastInteractionAt)
	return u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *AlertSessionUpsert) ClearLastInteractionAt() *AlertSessionUpsert {
	u.SetNull(alertsession.FieldLastInteractionAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *AlertSessionUpsert) SetDeletedAt(v time.Time) *AlertSessionUpsert {
	u.Set(alertsession.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *AlertSessionUpsert) UpdateDeletedAt() *AlertSessionUpsert {
	u.SetExcluded(alertsession.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *AlertSessionUpsert) ClearDeletedAt() *AlertSessionUpsert {
	u.SetNull(alertsession.FieldDeletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AlertSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(alertsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AlertSessionUpsertOne) UpdateNewValues() *AlertSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(alertsession.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AlertSession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AlertSessionUpsertOne) Ignore() *AlertSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AlertSessionUpsertOne) DoNothing() *AlertSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AlertSessionCreate.OnConflict
// documentation for more info.
func (u *AlertSessionUpsertOne) Update(set func(*AlertSessionUpsert)) *AlertSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AlertSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetAlertData sets the "alert_data" field.
func (u *AlertSessionUpsertOne) SetAlertData(v string) *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetAlertData(v)
	})
}

// UpdateAlertData sets the "alert_data" field to the value that was provided on create.
func (u *AlertSessionUpsertOne) UpdateAlertData() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateAlertData()
	})
}

// SetAlertType sets the "alert_type" field.
func (u *AlertSessionUpsertOne) SetAlertType(v string) *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetAlertType(v)
	})
}

// UpdateAlertType sets the "alert_type" field to the value that was provided on create.
func (u *AlertSessionUpsertOne) UpdateAlertType() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateAlertType()
	})
}

// SetFingerprint sets the "fingerprint" field.
func (u *AlertSessionUpsertOne) SetFingerprint(v string) *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetFingerprint(v)
	})
}

// UpdateFingerprint sets the "fingerprint" field to the value that was provided on create.
func (u *AlertSessionUpsertOne) UpdateFingerprint() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateFingerprint()
	})
}

// SetStatus sets the "status" field.
func (u *AlertSessionUpsertOne) SetStatus(v alertsession.Status) *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AlertSessionUpsertOne) UpdateStatus() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateStatus()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *AlertSessionUpsertOne) SetCreatedAt(v time.Time) *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AlertSessionUpsertOne) UpdateCreatedAt() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *AlertSessionUpsertOne) SetStartedAt(v time.Time) *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *AlertSessionUpsertOne) UpdateStartedAt() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *AlertSessionUpsertOne) ClearStartedAt() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *AlertSessionUpsertOne) SetCompletedAt(v time.Time) *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AlertSessionUpsertOne) UpdateCompletedAt() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AlertSessionUpsertOne) ClearCompletedAt() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *AlertSessionUpsertOne) SetErrorMessage(v string) *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AlertSessionUpsertOne) UpdateErrorMessage() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AlertSessionUpsertOne) ClearErrorMessage() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.ClearErrorMessage()
	})
}

// SetFinalAnalysis sets the "final_analysis" field.
func (u *AlertSessionUpsertOne) SetFinalAnalysis(v string) *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetFinalAnalysis(v)
	})
}

// UpdateFinalAnalysis sets the "final_analysis" field to the value that was provided on create.
func (u *AlertSessionUpsertOne) UpdateFinalAnalysis() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateFinalAnalysis()
	})
}

// ClearFinalAnalysis clears the value of the "final_analysis" field.
func (u *AlertSessionUpsertOne) ClearFinalAnalysis() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.ClearFinalAnalysis()
	})
}

// SetPauseMetadata sets the "pause_metadata" field.
func (u *AlertSessionUpsertOne) SetPauseMetadata(v map[string]interface{}) *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetPauseMetadata(v)
	})
}

// UpdatePauseMetadata sets the "pause_metadata" field to the value that was provided on create.
func (u *AlertSessionUpsertOne) UpdatePauseMetadata() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdatePauseMetadata()
	})
}

// ClearPauseMetadata clears the value of the "pause_metadata" field.
func (u *AlertSessionUpsertOne) ClearPauseMetadata() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.ClearPauseMetadata()
	})
}

// SetAuthor sets the "author" field.
func (u *AlertSessionUpsertOne) SetAuthor(v string) *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetAuthor(v)
	})
}

// UpdateAuthor sets the "author" field to the value that was provided on create.
func (u *AlertSessionUpsertOne) UpdateAuthor() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateAuthor()
	})
}

// ClearAuthor clears the value of the "author" field.
func (u *AlertSessionUpsertOne) ClearAuthor() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.ClearAuthor()
	})
}

// SetRunbookURL sets the "runbook_url" field.
func (u *AlertSessionUpsertOne) SetRunbookURL(v string) *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetRunbookURL(v)
	})
}

// UpdateRunbookURL sets the "runbook_url" field to the value that was provided on create.
func (u *AlertSessionUpsertOne) UpdateRunbookURL() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateRunbookURL()
	})
}

// ClearRunbookURL clears the value of the "runbook_url" field.
func (u *AlertSessionUpsertOne) ClearRunbookURL() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.ClearRunbookURL()
	})
}

// SetMcpSelection sets the "mcp_selection" field.
func (u *AlertSessionUpsertOne) SetMcpSelection(v map[string]interface{}) *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetMcpSelection(v)
	})
}

// UpdateMcpSelection sets the "mcp_selection" field to the value that was provided on create.
func (u *AlertSessionUpsertOne) UpdateMcpSelection() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateMcpSelection()
	})
}

// ClearMcpSelection clears the value of the "mcp_selection" field.
func (u *AlertSessionUpsertOne) ClearMcpSelection() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.ClearMcpSelection()
	})
}

// SetChainID sets the "chain_id" field.
func (u *AlertSessionUpsertOne) SetChainID(v string) *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetChainID(v)
	})
}

// UpdateChainID sets the "chain_id" field to the value that was provided on create.
func (u *AlertSessionUpsertOne) UpdateChainID() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateChainID()
	})
}

// SetCurrentStageIndex sets the "current_stage_index" field.
func (u *AlertSessionUpsertOne) SetCurrentStageIndex(v int) *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetCurrentStageIndex(v)
	})
}

// AddCurrentStageIndex adds v to the "current_stage_index" field.
func (u *AlertSessionUpsertOne) AddCurrentStageIndex(v int) *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.AddCurrentStageIndex(v)
	})
}

// UpdateCurrentStageIndex sets the "current_stage_index" field to the value that was provided on create.
func (u *AlertSessionUpsertOne) UpdateCurrentStageIndex() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateCurrentStageIndex()
	})
}

// ClearCurrentStageIndex clears the value of the "current_stage_index" field.
func (u *AlertSessionUpsertOne) ClearCurrentStageIndex() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.ClearCurrentStageIndex()
	})
}

// SetCurrentStageID sets the "current_stage_id" field.
func (u *AlertSessionUpsertOne) SetCurrentStageID(v string) *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetCurrentStageID(v)
	})
}

// UpdateCurrentStageID sets the "current_stage_id" field to the value that was provided on create.
func (u *AlertSessionUpsertOne) UpdateCurrentStageID() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateCurrentStageID()
	})
}

// ClearCurrentStageID clears the value of the "current_stage_id" field.
func (u *AlertSessionUpsertOne) ClearCurrentStageID() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.ClearCurrentStageID()
	})
}

// SetPodID sets the "pod_id" field.
func (u *AlertSessionUpsertOne) SetPodID(v string) *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *AlertSessionUpsertOne) UpdatePodID() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *AlertSessionUpsertOne) ClearPodID() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.ClearPodID()
	})
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *AlertSessionUpsertOne) SetLastInteractionAt(v time.Time) *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetLastInteractionAt(v)
	})
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *AlertSessionUpsertOne) UpdateLastInteractionAt() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateLastInteractionAt()
	})
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *AlertSessionUpsertOne) ClearLastInteractionAt() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.ClearLastInteractionAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *AlertSessionUpsertOne) SetDeletedAt(v time.Time) *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *AlertSessionUpsertOne) UpdateDeletedAt() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *AlertSessionUpsertOne) ClearDeletedAt() *AlertSessionUpsertOne {
	return u.Update(func(s *AlertSessionUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *AlertSessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AlertSessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AlertSessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AlertSessionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AlertSessionUpsertOne.ID is not supported by MySQL driver. Use AlertSessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AlertSessionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AlertSessionCreateBulk is the builder for creating many AlertSession entities in bulk.
type AlertSessionCreateBulk struct {
	config
	err      error
	builders []*AlertSessionCreate
	conflict []sql.ConflictOption
}

// Save creates the AlertSession entities in the database.
func (_c *AlertSessionCreateBulk) Save(ctx context.Context) ([]*AlertSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AlertSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AlertSessionMutation)
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
func (_c *AlertSessionCreateBulk) SaveX(ctx context.Context) []*AlertSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AlertSession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AlertSessionUpsert) {
//			SetAlertData(v+v).
//		}).
//		Exec(ctx)
func (_c *AlertSessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *AlertSessionUpsertBulk {
	_c.conflict = opts
	return &AlertSessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AlertSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AlertSessionCreateBulk) OnConflictColumns(columns ...string) *AlertSessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AlertSessionUpsertBulk{
		create: _c,
	}
}

// AlertSessionUpsertBulk is the builder for "upsert"-ing
// a bulk of AlertSession nodes.
type AlertSessionUpsertBulk struct {
	create *AlertSessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AlertSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(alertsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AlertSessionUpsertBulk) UpdateNewValues() *AlertSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(alertsession.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AlertSession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AlertSessionUpsertBulk) Ignore() *AlertSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AlertSessionUpsertBulk) DoNothing() *AlertSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AlertSessionCreateBulk.OnConflict
// documentation for more info.
func (u *AlertSessionUpsertBulk) Update(set func(*AlertSessionUpsert)) *AlertSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AlertSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetAlertData sets the "alert_data" field.
func (u *AlertSessionUpsertBulk) SetAlertData(v string) *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetAlertData(v)
	})
}

// UpdateAlertData sets the "alert_data" field to the value that was provided on create.
func (u *AlertSessionUpsertBulk) UpdateAlertData() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateAlertData()
	})
}

// SetAlertType sets the "alert_type" field.
func (u *AlertSessionUpsertBulk) SetAlertType(v string) *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetAlertType(v)
	})
}

// UpdateAlertType sets the "alert_type" field to the value that was provided on create.
func (u *AlertSessionUpsertBulk) UpdateAlertType() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateAlertType()
	})
}

// SetFingerprint sets the "fingerprint" field.
func (u *AlertSessionUpsertBulk) SetFingerprint(v string) *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetFingerprint(v)
	})
}

// UpdateFingerprint sets the "fingerprint" field to the value that was provided on create.
func (u *AlertSessionUpsertBulk) UpdateFingerprint() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateFingerprint()
	})
}

// SetStatus sets the "status" field.
func (u *AlertSessionUpsertBulk) SetStatus(v alertsession.Status) *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AlertSessionUpsertBulk) UpdateStatus() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateStatus()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *AlertSessionUpsertBulk) SetCreatedAt(v time.Time) *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AlertSessionUpsertBulk) UpdateCreatedAt() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *AlertSessionUpsertBulk) SetStartedAt(v time.Time) *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *AlertSessionUpsertBulk) UpdateStartedAt() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *AlertSessionUpsertBulk) ClearStartedAt() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *AlertSessionUpsertBulk) SetCompletedAt(v time.Time) *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AlertSessionUpsertBulk) UpdateCompletedAt() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AlertSessionUpsertBulk) ClearCompletedAt() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *AlertSessionUpsertBulk) SetErrorMessage(v string) *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AlertSessionUpsertBulk) UpdateErrorMessage() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AlertSessionUpsertBulk) ClearErrorMessage() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.ClearErrorMessage()
	})
}

// SetFinalAnalysis sets the "final_analysis" field.
func (u *AlertSessionUpsertBulk) SetFinalAnalysis(v string) *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetFinalAnalysis(v)
	})
}

// UpdateFinalAnalysis sets the "final_analysis" field to the value that was provided on create.
func (u *AlertSessionUpsertBulk) UpdateFinalAnalysis() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateFinalAnalysis()
	})
}

// ClearFinalAnalysis clears the value of the "final_analysis" field.
func (u *AlertSessionUpsertBulk) ClearFinalAnalysis() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.ClearFinalAnalysis()
	})
}

// SetPauseMetadata sets the "pause_metadata" field.
func (u *AlertSessionUpsertBulk) SetPauseMetadata(v map[string]interface{}) *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetPauseMetadata(v)
	})
}

// UpdatePauseMetadata sets the "pause_metadata" field to the value that was provided on create.
func (u *AlertSessionUpsertBulk) UpdatePauseMetadata() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdatePauseMetadata()
	})
}

// ClearPauseMetadata clears the value of the "pause_metadata" field.
func (u *AlertSessionUpsertBulk) ClearPauseMetadata() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.ClearPauseMetadata()
	})
}

// SetAuthor sets the "author" field.
func (u *AlertSessionUpsertBulk) SetAuthor(v string) *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetAuthor(v)
	})
}

// UpdateAuthor sets the "author" field to the value that was provided on create.
func (u *AlertSessionUpsertBulk) UpdateAuthor() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateAuthor()
	})
}

// ClearAuthor clears the value of the "author" field.
func (u *AlertSessionUpsertBulk) ClearAuthor() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.ClearAuthor()
	})
}

// SetRunbookURL sets the "runbook_url" field.
func (u *AlertSessionUpsertBulk) SetRunbookURL(v string) *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetRunbookURL(v)
	})
}

// UpdateRunbookURL sets the "runbook_url" field to the value that was provided on create.
func (u *AlertSessionUpsertBulk) UpdateRunbookURL() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateRunbookURL()
	})
}

// ClearRunbookURL clears the value of the "runbook_url" field.
func (u *AlertSessionUpsertBulk) ClearRunbookURL() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.ClearRunbookURL()
	})
}

// SetMcpSelection sets the "mcp_selection" field.
func (u *AlertSessionUpsertBulk) SetMcpSelection(v map[string]interface{}) *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetMcpSelection(v)
	})
}

// UpdateMcpSelection sets the "mcp_selection" field to the value that was provided on create.
func (u *AlertSessionUpsertBulk) UpdateMcpSelection() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateMcpSelection()
	})
}

// ClearMcpSelection clears the value of the "mcp_selection" field.
func (u *AlertSessionUpsertBulk) ClearMcpSelection() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.ClearMcpSelection()
	})
}

// SetChainID sets the "chain_id" field.
func (u *AlertSessionUpsertBulk) SetChainID(v string) *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetChainID(v)
	})
}

// UpdateChainID sets the "chain_id" field to the value that was provided on create.
func (u *AlertSessionUpsertBulk) UpdateChainID() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateChainID()
	})
}

// SetCurrentStageIndex sets the "current_stage_index" field.
func (u *AlertSessionUpsertBulk) SetCurrentStageIndex(v int) *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetCurrentStageIndex(v)
	})
}

// AddCurrentStageIndex adds v to the "current_stage_index" field.
func (u *AlertSessionUpsertBulk) AddCurrentStageIndex(v int) *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.AddCurrentStageIndex(v)
	})
}

// UpdateCurrentStageIndex sets the "current_stage_index" field to the value that was provided on create.
func (u *AlertSessionUpsertBulk) UpdateCurrentStageIndex() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateCurrentStageIndex()
	})
}

// ClearCurrentStageIndex clears the value of the "current_stage_index" field.
func (u *AlertSessionUpsertBulk) ClearCurrentStageIndex() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.ClearCurrentStageIndex()
	})
}

// SetCurrentStageID sets the "current_stage_id" field.
func (u *AlertSessionUpsertBulk) SetCurrentStageID(v string) *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetCurrentStageID(v)
	})
}

// UpdateCurrentStageID sets the "current_stage_id" field to the value that was provided on create.
func (u *AlertSessionUpsertBulk) UpdateCurrentStageID() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateCurrentStageID()
	})
}

// ClearCurrentStageID clears the value of the "current_stage_id" field.
func (u *AlertSessionUpsertBulk) ClearCurrentStageID() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.ClearCurrentStageID()
	})
}

// SetPodID sets the "pod_id" field.
func (u *AlertSessionUpsertBulk) SetPodID(v string) *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *AlertSessionUpsertBulk) UpdatePodID() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *AlertSessionUpsertBulk) ClearPodID() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.ClearPodID()
	})
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *AlertSessionUpsertBulk) SetLastInteractionAt(v time.Time) *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetLastInteractionAt(v)
	})
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *AlertSessionUpsertBulk) UpdateLastInteractionAt() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateLastInteractionAt()
	})
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *AlertSessionUpsertBulk) ClearLastInteractionAt() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.ClearLastInteractionAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *AlertSessionUpsertBulk) SetDeletedAt(v time.Time) *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *AlertSessionUpsertBulk) UpdateDeletedAt() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *AlertSessionUpsertBulk) ClearDeletedAt() *AlertSessionUpsertBulk {
	return u.Update(func(s *AlertSessionUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *AlertSessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AlertSessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AlertSessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AlertSessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
