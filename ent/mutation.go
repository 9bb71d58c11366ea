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
	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/ent/event"
	"github.com/tarsy-project/tarsy/ent/llminteraction"
	"github.com/tarsy-project/tarsy/ent/mcpinteraction"
	"github.com/tarsy-project/tarsy/ent/predicate"
	"github.com/tarsy-project/tarsy/ent/stageexecution"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAlertSession   = "AlertSession"
	TypeEvent          = "Event"
	TypeLLMInteraction = "LLMInteraction"
	TypeMCPInteraction = "MCPInteraction"
	TypeStageExecution = "StageExecution"
	TypeTimelineEvent  = "TimelineEvent"
)

// AlertSessionMutation represents an operation that mutates the AlertSession nodes in the graph.
type AlertSessionMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	alert_data              *string
	alert_type              *string
	fingerprint             *string
	status                  *alertsession.Status
	created_at              *time.Time
	started_at              *time.Time
	completed_at            *time.Time
	error_message           *string
	final_analysis          *string
	pause_metadata          *map[string]interface{}
	author                  *string
	runbook_url             *string
	mcp_selection           *map[string]interface{}
	chain_id                *string
	current_stage_index     *int
	addcurrent_stage_index  *int
	current_stage_id        *string
	pod_id                  *string
	last_interaction_at     *time.Time
	deleted_at              *time.Time
	clearedFields           map[string]struct{}
	stage_executions        map[string]struct{}
	removedstage_executions map[string]struct{}
	clearedstage_executions bool
	timeline_events         map[string]struct{}
	removedtimeline_events  map[string]struct{}
	clearedtimeline_events  bool
	llm_interactions        map[string]struct{}
	removedllm_interactions map[string]struct{}
	clearedllm_interactions bool
	mcp_interactions        map[string]struct{}
	removedmcp_interactions map[string]struct{}
	clearedmcp_interactions bool
	events                  map[int]struct{}
	removedevents           map[int]struct{}
	clearedevents           bool
	done                    bool
	oldValue                func(context.Context) (*AlertSession, error)
	predicates              []predicate.AlertSession
}

var _ ent.Mutation = (*AlertSessionMutation)(nil)

// alertsessionOption allows management of the mutation configuration using functional options.
type alertsessionOption func(*AlertSessionMutation)

// newAlertSessionMutation creates new mutation for the AlertSession entity.
func newAlertSessionMutation(c config, op Op, opts ...alertsessionOption) *AlertSessionMutation {
	m := &AlertSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeAlertSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAlertSessionID sets the ID field of the mutation.
func withAlertSessionID(id string) alertsessionOption {
	return func(m *AlertSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *AlertSession
		)
		m.oldValue = func(ctx context.Context) (*AlertSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AlertSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAlertSession sets the old AlertSession of the mutation.
func withAlertSession(node *AlertSession) alertsessionOption {
	return func(m *AlertSessionMutation) {
		m.oldValue = func(context.Context) (*AlertSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AlertSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AlertSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AlertSession entities.
func (m *AlertSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AlertSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AlertSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AlertSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAlertData sets the "alert_data" field.
func (m *AlertSessionMutation) SetAlertData(s string) {
	m.alert_data = &s
}

// AlertData returns the value of the "alert_data" field in the mutation.
func (m *AlertSessionMutation) AlertData() (r string, exists bool) {
	v := m.alert_data
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertData returns the old "alert_data" field's value of the AlertSession entity.
// If the AlertSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertSessionMutation) OldAlertData(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertData: %w", err)
	}
	return oldValue.AlertData, nil
}

// ResetAlertData resets all changes to the "alert_data" field.
func (m *AlertSessionMutation) ResetAlertData() {
	m.alert_data = nil
}

// SetAlertType sets the "alert_type" field.
func (m *AlertSessionMutation) SetAlertType(s string) {
	m.alert_type = &s
}

// AlertType returns the value of the "alert_type" field in the mutation.
func (m *AlertSessionMutation) AlertType() (r string, exists bool) {
	v := m.alert_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertType returns the old "alert_type" field's value of the AlertSession entity.
// If the AlertSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertSessionMutation) OldAlertType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertType: %w", err)
	}
	return oldValue.AlertType, nil
}

// ResetAlertType resets all changes to the "alert_type" field.
func (m *AlertSessionMutation) ResetAlertType() {
	m.alert_type = nil
}

// SetFingerprint sets the "fingerprint" field.
func (m *AlertSessionMutation) SetFingerprint(s string) {
	m.fingerprint = &s
}

// Fingerprint returns the value of the "fingerprint" field in the mutation.
func (m *AlertSessionMutation) Fingerprint() (r string, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprint returns the old "fingerprint" field's value of the AlertSession entity.
// If the AlertSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertSessionMutation) OldFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprint: %w", err)
	}
	return oldValue.Fingerprint, nil
}

// ResetFingerprint resets all changes to the "fingerprint" field.
func (m *AlertSessionMutation) ResetFingerprint() {
	m.fingerprint = nil
}

// SetStatus sets the "status" field.
func (m *AlertSessionMutation) SetStatus(a alertsession.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AlertSessionMutation) Status() (r alertsession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AlertSession entity.
// If the AlertSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertSessionMutation) OldStatus(ctx context.Context) (v alertsession.Status, err error) {
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
func (m *AlertSessionMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AlertSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AlertSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AlertSession entity.
// If the AlertSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AlertSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AlertSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AlertSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AlertSession entity.
// If the AlertSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertSessionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *AlertSessionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[alertsession.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *AlertSessionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[alertsession.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AlertSessionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, alertsession.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *AlertSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AlertSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the AlertSession entity.
// If the AlertSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertSessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AlertSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[alertsession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AlertSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[alertsession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AlertSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, alertsession.FieldCompletedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *AlertSessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AlertSessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AlertSession entity.
// If the AlertSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertSessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
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
func (m *AlertSessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[alertsession.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AlertSessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[alertsession.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AlertSessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, alertsession.FieldErrorMessage)
}

// SetFinalAnalysis sets the "final_analysis" field.
func (m *AlertSessionMutation) SetFinalAnalysis(s string) {
	m.final_analysis = &s
}

// FinalAnalysis returns the value of the "final_analysis" field in the mutation.
func (m *AlertSessionMutation) FinalAnalysis() (r string, exists bool) {
	v := m.final_analysis
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalAnalysis returns the old "final_analysis" field's value of the AlertSession entity.
// If the AlertSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertSessionMutation) OldFinalAnalysis(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalAnalysis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalAnalysis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalAnalysis: %w", err)
	}
	return oldValue.FinalAnalysis, nil
}

// ClearFinalAnalysis clears the value of the "final_analysis" field.
func (m *AlertSessionMutation) ClearFinalAnalysis() {
	m.final_analysis = nil
	m.clearedFields[alertsession.FieldFinalAnalysis] = struct{}{}
}

// FinalAnalysisCleared returns if the "final_analysis" field was cleared in this mutation.
func (m *AlertSessionMutation) FinalAnalysisCleared() bool {
	_, ok := m.clearedFields[alertsession.FieldFinalAnalysis]
	return ok
}

// ResetFinalAnalysis resets all changes to the "final_analysis" field.
func (m *AlertSessionMutation) ResetFinalAnalysis() {
	m.final_analysis = nil
	delete(m.clearedFields, alertsession.FieldFinalAnalysis)
}

// SetPauseMetadata sets the "pause_metadata" field.
func (m *AlertSessionMutation) SetPauseMetadata(value map[string]interface{}) {
	m.pause_metadata = &value
}

// PauseMetadata returns the value of the "pause_metadata" field in the mutation.
func (m *AlertSessionMutation) PauseMetadata() (r map[string]interface{}, exists bool) {
	v := m.pause_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldPauseMetadata returns the old "pause_metadata" field's value of the AlertSession entity.
// If the AlertSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertSessionMutation) OldPauseMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPauseMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPauseMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPauseMetadata: %w", err)
	}
	return oldValue.PauseMetadata, nil
}

// ClearPauseMetadata clears the value of the "pause_metadata" field.
func (m *AlertSessionMutation) ClearPauseMetadata() {
	m.pause_metadata = nil
	m.clearedFields[alertsession.FieldPauseMetadata] = struct{}{}
}

// PauseMetadataCleared returns if the "pause_metadata" field was cleared in this mutation.
func (m *AlertSessionMutation) PauseMetadataCleared() bool {
	_, ok := m.clearedFields[alertsession.FieldPauseMetadata]
	return ok
}

// ResetPauseMetadata resets all changes to the "pause_metadata" field.
func (m *AlertSessionMutation) ResetPauseMetadata() {
	m.pause_metadata = nil
	delete(m.clearedFields, alertsession.FieldPauseMetadata)
}

// SetAuthor sets the "author" field.
func (m *AlertSessionMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *AlertSessionMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the AlertSession entity.
// If the AlertSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertSessionMutation) OldAuthor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ClearAuthor clears the value of the "author" field.
func (m *AlertSessionMutation) ClearAuthor() {
	m.author = nil
	m.clearedFields[alertsession.FieldAuthor] = struct{}{}
}

// AuthorCleared returns if the "author" field was cleared in this mutation.
func (m *AlertSessionMutation) AuthorCleared() bool {
	_, ok := m.clearedFields[alertsession.FieldAuthor]
	return ok
}

// ResetAuthor resets all changes to the "author" field.
func (m *AlertSessionMutation) ResetAuthor() {
	m.author = nil
	delete(m.clearedFields, alertsession.FieldAuthor)
}

// SetRunbookURL sets the "runbook_url" field.
func (m *AlertSessionMutation) SetRunbookURL(s string) {
	m.runbook_url = &s
}

// RunbookURL returns the value of the "runbook_url" field in the mutation.
func (m *AlertSessionMutation) RunbookURL() (r string, exists bool) {
	v := m.runbook_url
	if v == nil {
		return
	}
	return *v, true
}

// OldRunbookURL returns the old "runbook_url" field's value of the AlertSession entity.
// If the AlertSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertSessionMutation) OldRunbookURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunbookURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunbookURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunbookURL: %w", err)
	}
	return oldValue.RunbookURL, nil
}

// ClearRunbookURL clears the value of the "runbook_url" field.
func (m *AlertSessionMutation) ClearRunbookURL() {
	m.runbook_url = nil
	m.clearedFields[alertsession.FieldRunbookURL] = struct{}{}
}

// RunbookURLCleared returns if the "runbook_url" field was cleared in this mutation.
func (m *AlertSessionMutation) RunbookURLCleared() bool {
	_, ok := m.clearedFields[alertsession.FieldRunbookURL]
	return ok
}

// ResetRunbookURL resets all changes to the "runbook_url" field.
func (m *AlertSessionMutation) ResetRunbookURL() {
	m.runbook_url = nil
	delete(m.clearedFields, alertsession.FieldRunbookURL)
}

// SetMcpSelection sets the "mcp_selection" field.
func (m *AlertSessionMutation) SetMcpSelection(value map[string]interface{}) {
	m.mcp_selection = &value
}

// McpSelection returns the value of the "mcp_selection" field in the mutation.
func (m *AlertSessionMutation) McpSelection() (r map[string]interface{}, exists bool) {
	v := m.mcp_selection
	if v == nil {
		return
	}
	return *v, true
}

// OldMcpSelection returns the old "mcp_selection" field's value of the AlertSession entity.
// If the AlertSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertSessionMutation) OldMcpSelection(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMcpSelection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMcpSelection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMcpSelection: %w", err)
	}
	return oldValue.McpSelection, nil
}

// ClearMcpSelection clears the value of the "mcp_selection" field.
func (m *AlertSessionMutation) ClearMcpSelection() {
	m.mcp_selection = nil
	m.clearedFields[alertsession.FieldMcpSelection] = struct{}{}
}

// McpSelectionCleared returns if the "mcp_selection" field was cleared in this mutation.
func (m *AlertSessionMutation) McpSelectionCleared() bool {
	_, ok := m.clearedFields[alertsession.FieldMcpSelection]
	return ok
}

// ResetMcpSelection resets all changes to the "mcp_selection" field.
func (m *AlertSessionMutation) ResetMcpSelection() {
	m.mcp_selection = nil
	delete(m.clearedFields, alertsession.FieldMcpSelection)
}

// SetChainID sets the "chain_id" field.
func (m *AlertSessionMutation) SetChainID(s string) {
	m.chain_id = &s
}

// ChainID returns the value of the "chain_id" field in the mutation.
func (m *AlertSessionMutation) ChainID() (r string, exists bool) {
	v := m.chain_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChainID returns the old "chain_id" field's value of the AlertSession entity.
// If the AlertSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertSessionMutation) OldChainID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChainID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChainID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChainID: %w", err)
	}
	return oldValue.ChainID, nil
}

// ResetChainID resets all changes to the "chain_id" field.
func (m *AlertSessionMutation) ResetChainID() {
	m.chain_id = nil
}

// SetCurrentStageIndex sets the "current_stage_index" field.
func (m *AlertSessionMutation) SetCurrentStageIndex(i int) {
	m.current_stage_index = &i
	m.addcurrent_stage_index = nil
}

// CurrentStageIndex returns the value of the "current_stage_index" field in the mutation.
func (m *AlertSessionMutation) CurrentStageIndex() (r int, exists bool) {
	v := m.current_stage_index
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStageIndex returns the old "current_stage_index" field's value of the AlertSession entity.
// If the AlertSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertSessionMutation) OldCurrentStageIndex(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStageIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStageIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStageIndex: %w", err)
	}
	return oldValue.CurrentStageIndex, nil
}

// AddCurrentStageIndex adds i to the "current_stage_index" field.
func (m *AlertSessionMutation) AddCurrentStageIndex(i int) {
	if m.addcurrent_stage_index != nil {
		*m.addcurrent_stage_index += i
	} else {
		m.addcurrent_stage_index = &i
	}
}

// AddedCurrentStageIndex returns the value that was added to the "current_stage_index" field in this mutation.
func (m *AlertSessionMutation) AddedCurrentStageIndex() (r int, exists bool) {
	v := m.addcurrent_stage_index
	if v == nil {
		return
	}
	return *v, true
}

// ClearCurrentStageIndex clears the value of the "current_stage_index" field.
func (m *AlertSessionMutation) ClearCurrentStageIndex() {
	m.current_stage_index = nil
	m.addcurrent_stage_index = nil
	m.clearedFields[alertsession.FieldCurrentStageIndex] = struct{}{}
}

// CurrentStageIndexCleared returns if the "current_stage_index" field was cleared in this mutation.
func (m *AlertSessionMutation) CurrentStageIndexCleared() bool {
	_, ok := m.clearedFields[alertsession.FieldCurrentStageIndex]
	return ok
}

// ResetCurrentStageIndex resets all changes to the "current_stage_index" field.
func (m *AlertSessionMutation) ResetCurrentStageIndex() {
	m.current_stage_index = nil
	m.addcurrent_stage_index = nil
	delete(m.clearedFields, alertsession.FieldCurrentStageIndex)
}

// SetCurrentStageID sets the "current_stage_id" field.
func (m *AlertSessionMutation) SetCurrentStageID(s string) {
	m.current_stage_id = &s
}

// CurrentStageID returns the value of the "current_stage_id" field in the mutation.
func (m *AlertSessionMutation) CurrentStageID() (r string, exists bool) {
	v := m.current_stage_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStageID returns the old "current_stage_id" field's value of the AlertSession entity.
// If the AlertSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertSessionMutation) OldCurrentStageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStageID: %w", err)
	}
	return oldValue.CurrentStageID, nil
}

// ClearCurrentStageID clears the value of the "current_stage_id" field.
func (m *AlertSessionMutation) ClearCurrentStageID() {
	m.current_stage_id = nil
	m.clearedFields[alertsession.FieldCurrentStageID] = struct{}{}
}

// CurrentStageIDCleared returns if the "current_stage_id" field was cleared in this mutation.
func (m *AlertSessionMutation) CurrentStageIDCleared() bool {
	_, ok := m.clearedFields[alertsession.FieldCurrentStageID]
	return ok
}

// ResetCurrentStageID resets all changes to the "current_stage_id" field.
func (m *AlertSessionMutation) ResetCurrentStageID() {
	m.current_stage_id = nil
	delete(m.clearedFields, alertsession.FieldCurrentStageID)
}

// SetPodID sets the "pod_id" field.
func (m *AlertSessionMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *AlertSessionMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the AlertSession entity.
// If the AlertSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertSessionMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *AlertSessionMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[alertsession.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *AlertSessionMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[alertsession.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *AlertSessionMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, alertsession.FieldPodID)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *AlertSessionMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *AlertSessionMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the AlertSession entity.
// If the AlertSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertSessionMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *AlertSessionMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[alertsession.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *AlertSessionMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[alertsession.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *AlertSessionMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, alertsession.FieldLastInteractionAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *AlertSessionMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *AlertSessionMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the AlertSession entity.
// If the AlertSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertSessionMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *AlertSessionMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[alertsession.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *AlertSessionMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[alertsession.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *AlertSessionMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, alertsession.FieldDeletedAt)
}

// AddStageExecutionIDs adds the "stage_executions" edge to the StageExecution entity by ids.
func (m *AlertSessionMutation) AddStageExecutionIDs(ids ...string) {
	if m.stage_executions == nil {
		m.stage_executions = make(map[string]struct{})
	}
	for i := range ids {
		m.stage_executions[ids[i]] = struct{}{}
	}
}

// ClearStageExecutions clears the "stage_executions" edge to the StageExecution entity.
func (m *AlertSessionMutation) ClearStageExecutions() {
	m.clearedstage_executions = true
}

// StageExecutionsCleared reports if the "stage_executions" edge to the StageExecution entity was cleared.
func (m *AlertSessionMutation) StageExecutionsCleared() bool {
	return m.clearedstage_executions
}

// RemoveStageExecutionIDs removes the "stage_executions" edge to the StageExecution entity by IDs.
func (m *AlertSessionMutation) RemoveStageExecutionIDs(ids ...string) {
	if m.removedstage_executions == nil {
		m.removedstage_executions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.stage_executions, ids[i])
		m.removedstage_executions[ids[i]] = struct{}{}
	}
}

// RemovedStageExecutions returns the removed IDs of the "stage_executions" edge to the StageExecution entity.
func (m *AlertSessionMutation) RemovedStageExecutionsIDs() (ids []string) {
	for id := range m.removedstage_executions {
		ids = append(ids, id)
	}
	return
}

// StageExecutionsIDs returns the "stage_executions" edge IDs in the mutation.
func (m *AlertSessionMutation) StageExecutionsIDs() (ids []string) {
	for id := range m.stage_executions {
		ids = append(ids, id)
	}
	return
}

// ResetStageExecutions resets all changes to the "stage_executions" edge.
func (m *AlertSessionMutation) ResetStageExecutions() {
	m.stage_executions = nil
	m.clearedstage_executions = false
	m.removedstage_executions = nil
}

// AddTimelineEventIDs adds the "timeline_events" edge to the TimelineEvent entity by ids.
func (m *AlertSessionMutation) AddTimelineEventIDs(ids ...string) {
	if m.timeline_events == nil {
		m.timeline_events = make(map[string]struct{})
	}
	for i := range ids {
		m.timeline_events[ids[i]] = struct{}{}
	}
}

// ClearTimelineEvents clears the "timeline_events" edge to the TimelineEvent entity.
func (m *AlertSessionMutation) ClearTimelineEvents() {
	m.clearedtimeline_events = true
}

// TimelineEventsCleared reports if the "timeline_events" edge to the TimelineEvent entity was cleared.
func (m *AlertSessionMutation) TimelineEventsCleared() bool {
	return m.clearedtimeline_events
}

// RemoveTimelineEventIDs removes the "timeline_events" edge to the TimelineEvent entity by IDs.
func (m *AlertSessionMutation) RemoveTimelineEventIDs(ids ...string) {
	if m.removedtimeline_events == nil {
		m.removedtimeline_events = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.timeline_events, ids[i])
		m.removedtimeline_events[ids[i]] = struct{}{}
	}
}

// RemovedTimelineEvents returns the removed IDs of the "timeline_events" edge to the TimelineEvent entity.
func (m *AlertSessionMutation) RemovedTimelineEventsIDs() (ids []string) {
	for id := range m.removedtimeline_events {
		ids = append(ids, id)
	}
	return
}

// TimelineEventsIDs returns the "timeline_events" edge IDs in the mutation.
func (m *AlertSessionMutation) TimelineEventsIDs() (ids []string) {
	for id := range m.timeline_events {
		ids = append(ids, id)
	}
	return
}

// ResetTimelineEvents resets all changes to the "timeline_events" edge.
func (m *AlertSessionMutation) ResetTimelineEvents() {
	m.timeline_events = nil
	m.clearedtimeline_events = false
	m.removedtimeline_events = nil
}

// AddLlmInteractionIDs adds the "llm_interactions" edge to the LLMInteraction entity by ids.
func (m *AlertSessionMutation) AddLlmInteractionIDs(ids ...string) {
	if m.llm_interactions == nil {
		m.llm_interactions = make(map[string]struct{})
	}
	for i := range ids {
		m.llm_interactions[ids[i]] = struct{}{}
	}
}

// ClearLlmInteractions clears the "llm_interactions" edge to the LLMInteraction entity.
func (m *AlertSessionMutation) ClearLlmInteractions() {
	m.clearedllm_interactions = true
}

// LlmInteractionsCleared reports if the "llm_interactions" edge to the LLMInteraction entity was cleared.
func (m *AlertSessionMutation) LlmInteractionsCleared() bool {
	return m.clearedllm_interactions
}

// RemoveLlmInteractionIDs removes the "llm_interactions" edge to the LLMInteraction entity by IDs.
func (m *AlertSessionMutation) RemoveLlmInteractionIDs(ids ...string) {
	if m.removedllm_interactions == nil {
		m.removedllm_interactions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.llm_interactions, ids[i])
		m.removedllm_interactions[ids[i]] = struct{}{}
	}
}

// RemovedLlmInteractions returns the removed IDs of the "llm_interactions" edge to the LLMInteraction entity.
func (m *AlertSessionMutation) RemovedLlmInteractionsIDs() (ids []string) {
	for id := range m.removedllm_interactions {
		ids = append(ids, id)
	}
	return
}

// LlmInteractionsIDs returns the "llm_interactions" edge IDs in the mutation.
func (m *AlertSessionMutation) LlmInteractionsIDs() (ids []string) {
	for id := range m.llm_interactions {
		ids = append(ids, id)
	}
	return
}

// ResetLlmInteractions resets all changes to the "llm_interactions" edge.
func (m *AlertSessionMutation) ResetLlmInteractions() {
	m.llm_interactions = nil
	m.clearedllm_interactions = false
	m.removedllm_interactions = nil
}

// AddMcpInteractionIDs adds the "mcp_interactions" edge to the MCPInteraction entity by ids.
func (m *AlertSessionMutation) AddMcpInteractionIDs(ids ...string) {
	if m.mcp_interactions == nil {
		m.mcp_interactions = make(map[string]struct{})
	}
	for i := range ids {
		m.mcp_interactions[ids[i]] = struct{}{}
	}
}

// ClearMcpInteractions clears the "mcp_interactions" edge to the MCPInteraction entity.
func (m *AlertSessionMutation) ClearMcpInteractions() {
	m.clearedmcp_interactions = true
}

// McpInteractionsCleared reports if the "mcp_interactions" edge to the MCPInteraction entity was cleared.
func (m *AlertSessionMutation) McpInteractionsCleared() bool {
	return m.clearedmcp_interactions
}

// RemoveMcpInteractionIDs removes the "mcp_interactions" edge to the MCPInteraction entity by IDs.
func (m *AlertSessionMutation) RemoveMcpInteractionIDs(ids ...string) {
	if m.removedmcp_interactions == nil {
		m.removedmcp_interactions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.mcp_interactions, ids[i])
		m.removedmcp_interactions[ids[i]] = struct{}{}
	}
}

// RemovedMcpInteractions returns the removed IDs of the "mcp_interactions" edge to the MCPInteraction entity.
func (m *AlertSessionMutation) RemovedMcpInteractionsIDs() (ids []string) {
	for id := range m.removedmcp_interactions {
		ids = append(ids, id)
	}
	return
}

// McpInteractionsIDs returns the "mcp_interactions" edge IDs in the mutation.
func (m *AlertSessionMutation) McpInteractionsIDs() (ids []string) {
	for id := range m.mcp_interactions {
		ids = append(ids, id)
	}
	return
}

// ResetMcpInteractions resets all changes to the "mcp_interactions" edge.
func (m *AlertSessionMutation) ResetMcpInteractions() {
	m.mcp_interactions = nil
	m.clearedmcp_interactions = false
	m.removedmcp_interactions = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *AlertSessionMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *AlertSessionMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *AlertSessionMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *AlertSessionMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *AlertSessionMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *AlertSessionMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *AlertSessionMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the AlertSessionMutation builder.
func (m *AlertSessionMutation) Where(ps ...predicate.AlertSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AlertSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AlertSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AlertSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AlertSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AlertSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AlertSession).
func (m *AlertSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AlertSessionMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.alert_data != nil {
		fields = append(fields, alertsession.FieldAlertData)
	}
	if m.alert_type != nil {
		fields = append(fields, alertsession.FieldAlertType)
	}
	if m.fingerprint != nil {
		fields = append(fields, alertsession.FieldFingerprint)
	}
	if m.status != nil {
		fields = append(fields, alertsession.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, alertsession.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, alertsession.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, alertsession.FieldCompletedAt)
	}
	if m.error_message != nil {
		fields = append(fields, alertsession.FieldErrorMessage)
	}
	if m.final_analysis != nil {
		fields = append(fields, alertsession.FieldFinalAnalysis)
	}
	if m.pause_metadata != nil {
		fields = append(fields, alertsession.FieldPauseMetadata)
	}
	if m.author != nil {
		fields = append(fields, alertsession.FieldAuthor)
	}
	if m.runbook_url != nil {
		fields = append(fields, alertsession.FieldRunbookURL)
	}
	if m.mcp_selection != nil {
		fields = append(fields, alertsession.FieldMcpSelection)
	}
	if m.chain_id != nil {
		fields = append(fields, alertsession.FieldChainID)
	}
	if m.current_stage_index != nil {
		fields = append(fields, alertsession.FieldCurrentStageIndex)
	}
	if m.current_stage_id != nil {
		fields = append(fields, alertsession.FieldCurrentStageID)
	}
	if m.pod_id != nil {
		fields = append(fields, alertsession.FieldPodID)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, alertsession.FieldLastInteractionAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, alertsession.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AlertSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case alertsession.FieldAlertData:
		return m.AlertData()
	case alertsession.FieldAlertType:
		return m.AlertType()
	case alertsession.FieldFingerprint:
		return m.Fingerprint()
	case alertsession.FieldStatus:
		return m.Status()
	case alertsession.FieldCreatedAt:
		return m.CreatedAt()
	case alertsession.FieldStartedAt:
		return m.StartedAt()
	case alertsession.FieldCompletedAt:
		return m.CompletedAt()
	case alertsession.FieldErrorMessage:
		return m.ErrorMessage()
	case alertsession.FieldFinalAnalysis:
		return m.FinalAnalysis()
	case alertsession.FieldPauseMetadata:
		return m.PauseMetadata()
	case alertsession.FieldAuthor:
		return m.Author()
	case alertsession.FieldRunbookURL:
		return m.RunbookURL()
	case alertsession.FieldMcpSelection:
		return m.McpSelection()
	case alertsession.FieldChainID:
		return m.ChainID()
	case alertsession.FieldCurrentStageIndex:
		return m.CurrentStageIndex()
	case alertsession.FieldCurrentStageID:
		return m.CurrentStageID()
	case alertsession.FieldPodID:
		return m.PodID()
	case alertsession.FieldLastInteractionAt:
		return m.LastInteractionAt()
	case alertsession.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AlertSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case alertsession.FieldAlertData:
		return m.OldAlertData(ctx)
	case alertsession.FieldAlertType:
		return m.OldAlertType(ctx)
	case alertsession.FieldFingerprint:
		return m.OldFingerprint(ctx)
	case alertsession.FieldStatus:
		return m.OldStatus(ctx)
	case alertsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case alertsession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case alertsession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case alertsession.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case alertsession.FieldFinalAnalysis:
		return m.OldFinalAnalysis(ctx)
	case alertsession.FieldPauseMetadata:
		return m.OldPauseMetadata(ctx)
	case alertsession.FieldAuthor:
		return m.OldAuthor(ctx)
	case alertsession.FieldRunbookURL:
		return m.OldRunbookURL(ctx)
	case alertsession.FieldMcpSelection:
		return m.OldMcpSelection(ctx)
	case alertsession.FieldChainID:
		return m.OldChainID(ctx)
	case alertsession.FieldCurrentStageIndex:
		return m.OldCurrentStageIndex(ctx)
	case alertsession.FieldCurrentStageID:
		return m.OldCurrentStageID(ctx)
	case alertsession.FieldPodID:
		return m.OldPodID(ctx)
	case alertsession.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	case alertsession.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AlertSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case alertsession.FieldAlertData:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertData(v)
		return nil
	case alertsession.FieldAlertType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertType(v)
		return nil
	case alertsession.FieldFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprint(v)
		return nil
	case alertsession.FieldStatus:
		v, ok := value.(alertsession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case alertsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case alertsession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case alertsession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case alertsession.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case alertsession.FieldFinalAnalysis:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalAnalysis(v)
		return nil
	case alertsession.FieldPauseMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPauseMetadata(v)
		return nil
	case alertsession.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case alertsession.FieldRunbookURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunbookURL(v)
		return nil
	case alertsession.FieldMcpSelection:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMcpSelection(v)
		return nil
	case alertsession.FieldChainID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChainID(v)
		return nil
	case alertsession.FieldCurrentStageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStageIndex(v)
		return nil
	case alertsession.FieldCurrentStageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStageID(v)
		return nil
	case alertsession.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case alertsession.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	case alertsession.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AlertSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AlertSessionMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_stage_index != nil {
		fields = append(fields, alertsession.FieldCurrentStageIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AlertSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case alertsession.FieldCurrentStageIndex:
		return m.AddedCurrentStageIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case alertsession.FieldCurrentStageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentStageIndex(v)
		return nil
	}
	return fmt.Errorf("unknown AlertSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AlertSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(alertsession.FieldStartedAt) {
		fields = append(fields, alertsession.FieldStartedAt)
	}
	if m.FieldCleared(alertsession.FieldCompletedAt) {
		fields = append(fields, alertsession.FieldCompletedAt)
	}
	if m.FieldCleared(alertsession.FieldErrorMessage) {
		fields = append(fields, alertsession.FieldErrorMessage)
	}
	if m.FieldCleared(alertsession.FieldFinalAnalysis) {
		fields = append(fields, alertsession.FieldFinalAnalysis)
	}
	if m.FieldCleared(alertsession.FieldPauseMetadata) {
		fields = append(fields, alertsession.FieldPauseMetadata)
	}
	if m.FieldCleared(alertsession.FieldAuthor) {
		fields = append(fields, alertsession.FieldAuthor)
	}
	if m.FieldCleared(alertsession.FieldRunbookURL) {
		fields = append(fields, alertsession.FieldRunbookURL)
	}
	if m.FieldCleared(alertsession.FieldMcpSelection) {
		fields = append(fields, alertsession.FieldMcpSelection)
	}
	if m.FieldCleared(alertsession.FieldCurrentStageIndex) {
		fields = append(fields, alertsession.FieldCurrentStageIndex)
	}
	if m.FieldCleared(alertsession.FieldCurrentStageID) {
		fields = append(fields, alertsession.FieldCurrentStageID)
	}
	if m.FieldCleared(alertsession.FieldPodID) {
		fields = append(fields, alertsession.FieldPodID)
	}
	if m.FieldCleared(alertsession.FieldLastInteractionAt) {
		fields = append(fields, alertsession.FieldLastInteractionAt)
	}
	if m.FieldCleared(alertsession.FieldDeletedAt) {
		fields = append(fields, alertsession.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AlertSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AlertSessionMutation) ClearField(name string) error {
	switch name {
	case alertsession.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case alertsession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case alertsession.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case alertsession.FieldFinalAnalysis:
		m.ClearFinalAnalysis()
		return nil
	case alertsession.FieldPauseMetadata:
		m.ClearPauseMetadata()
		return nil
	case alertsession.FieldAuthor:
		m.ClearAuthor()
		return nil
	case alertsession.FieldRunbookURL:
		m.ClearRunbookURL()
		return nil
	case alertsession.FieldMcpSelection:
		m.ClearMcpSelection()
		return nil
	case alertsession.FieldCurrentStageIndex:
		m.ClearCurrentStageIndex()
		return nil
	case alertsession.FieldCurrentStageID:
		m.ClearCurrentStageID()
		return nil
	case alertsession.FieldPodID:
		m.ClearPodID()
		return nil
	case alertsession.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	case alertsession.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown AlertSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AlertSessionMutation) ResetField(name string) error {
	switch name {
	case alertsession.FieldAlertData:
		m.ResetAlertData()
		return nil
	case alertsession.FieldAlertType:
		m.ResetAlertType()
		return nil
	case alertsession.FieldFingerprint:
		m.ResetFingerprint()
		return nil
	case alertsession.FieldStatus:
		m.ResetStatus()
		return nil
	case alertsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case alertsession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case alertsession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case alertsession.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case alertsession.FieldFinalAnalysis:
		m.ResetFinalAnalysis()
		return nil
	case alertsession.FieldPauseMetadata:
		m.ResetPauseMetadata()
		return nil
	case alertsession.FieldAuthor:
		m.ResetAuthor()
		return nil
	case alertsession.FieldRunbookURL:
		m.ResetRunbookURL()
		return nil
	case alertsession.FieldMcpSelection:
		m.ResetMcpSelection()
		return nil
	case alertsession.FieldChainID:
		m.ResetChainID()
		return nil
	case alertsession.FieldCurrentStageIndex:
		m.ResetCurrentStageIndex()
		return nil
	case alertsession.FieldCurrentStageID:
		m.ResetCurrentStageID()
		return nil
	case alertsession.FieldPodID:
		m.ResetPodID()
		return nil
	case alertsession.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	case alertsession.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown AlertSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AlertSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.stage_executions != nil {
		edges = append(edges, alertsession.EdgeStageExecutions)
	}
	if m.timeline_events != nil {
		edges = append(edges, alertsession.EdgeTimelineEvents)
	}
	if m.llm_interactions != nil {
		edges = append(edges, alertsession.EdgeLlmInteractions)
	}
	if m.mcp_interactions != nil {
		edges = append(edges, alertsession.EdgeMcpInteractions)
	}
	if m.events != nil {
		edges = append(edges, alertsession.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AlertSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case alertsession.EdgeStageExecutions:
		ids := make([]ent.Value, 0, len(m.stage_executions))
		for id := range m.stage_executions {
			ids = append(ids, id)
		}
		return ids
	case alertsession.EdgeTimelineEvents:
		ids := make([]ent.Value, 0, len(m.timeline_events))
		for id := range m.timeline_events {
			ids = append(ids, id)
		}
		return ids
	case alertsession.EdgeLlmInteractions:
		ids := make([]ent.Value, 0, len(m.llm_interactions))
		for id := range m.llm_interactions {
			ids = append(ids, id)
		}
		return ids
	case alertsession.EdgeMcpInteractions:
		ids := make([]ent.Value, 0, len(m.mcp_interactions))
		for id := range m.mcp_interactions {
			ids = append(ids, id)
		}
		return ids
	case alertsession.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AlertSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedstage_executions != nil {
		edges = append(edges, alertsession.EdgeStageExecutions)
	}
	if m.removedtimeline_events != nil {
		edges = append(edges, alertsession.EdgeTimelineEvents)
	}
	if m.removedllm_interactions != nil {
		edges = append(edges, alertsession.EdgeLlmInteractions)
	}
	if m.removedmcp_interactions != nil {
		edges = append(edges, alertsession.EdgeMcpInteractions)
	}
	if m.removedevents != nil {
		edges = append(edges, alertsession.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AlertSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case alertsession.EdgeStageExecutions:
		ids := make([]ent.Value, 0, len(m.removedstage_executions))
		for id := range m.removedstage_executions {
			ids = append(ids, id)
		}
		return ids
	case alertsession.EdgeTimelineEvents:
		ids := make([]ent.Value, 0, len(m.removedtimeline_events))
		for id := range m.removedtimeline_events {
			ids = append(ids, id)
		}
		return ids
	case alertsession.EdgeLlmInteractions:
		ids := make([]ent.Value, 0, len(m.removedllm_interactions))
		for id := range m.removedllm_interactions {
			ids = append(ids, id)
		}
		return ids
	case alertsession.EdgeMcpInteractions:
		ids := make([]ent.Value, 0, len(m.removedmcp_interactions))
		for id := range m.removedmcp_interactions {
			ids = append(ids, id)
		}
		return ids
	case alertsession.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AlertSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedstage_executions {
		edges = append(edges, alertsession.EdgeStageExecutions)
	}
	if m.clearedtimeline_events {
		edges = append(edges, alertsession.EdgeTimelineEvents)
	}
	if m.clearedllm_interactions {
		edges = append(edges, alertsession.EdgeLlmInteractions)
	}
	if m.clearedmcp_interactions {
		edges = append(edges, alertsession.EdgeMcpInteractions)
	}
	if m.clearedevents {
		edges = append(edges, alertsession.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AlertSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case alertsession.EdgeStageExecutions:
		return m.clearedstage_executions
	case alertsession.EdgeTimelineEvents:
		return m.clearedtimeline_events
	case alertsession.EdgeLlmInteractions:
		return m.clearedllm_interactions
	case alertsession.EdgeMcpInteractions:
		return m.clearedmcp_interactions
	case alertsession.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AlertSessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown AlertSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AlertSessionMutation) ResetEdge(name string) error {
	switch name {
	case alertsession.EdgeStageExecutions:
		m.ResetStageExecutions()
		return nil
	case alertsession.EdgeTimelineEvents:
		m.ResetTimelineEvents()
		return nil
	case alertsession.EdgeLlmInteractions:
		m.ResetLlmInteractions()
		return nil
	case alertsession.EdgeMcpInteractions:
		m.ResetMcpInteractions()
		return nil
	case alertsession.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown AlertSession edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	channel        *string
	payload        *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*Event, error)
	predicates     []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *EventMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *EventMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSessionID(ctx context.Context) (v string, err error) {
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
func (m *EventMutation) ResetSessionID() {
	m.session = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the AlertSession entity.
func (m *EventMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[event.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the AlertSession entity was cleared.
func (m *EventMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *EventMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *EventMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.session != nil {
		fields = append(fields, event.FieldSessionID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldSessionID:
		return m.SessionID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldSessionID:
		return m.OldSessionID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldSessionID:
		m.ResetSessionID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, event.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, event.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// LLMInteractionMutation represents an operation that mutates the LLMInteraction nodes in the graph.
type LLMInteractionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	created_at             *time.Time
	interaction_type       *llminteraction.InteractionType
	model_name             *string
	provider               *string
	conversation           *[]map[string]interface{}
	appendconversation     []map[string]interface{}
	thinking_content       *string
	input_tokens           *int
	addinput_tokens        *int
	output_tokens          *int
	addoutput_tokens       *int
	total_tokens           *int
	addtotal_tokens        *int
	duration_ms            *int
	addduration_ms         *int
	error_message          *string
	clearedFields          map[string]struct{}
	session                *string
	clearedsession         bool
	stage_execution        *string
	clearedstage_execution bool
	timeline_events        map[string]struct{}
	removedtimeline_events map[string]struct{}
	clearedtimeline_events bool
	done                   bool
	oldValue               func(context.Context) (*LLMInteraction, error)
	predicates             []predicate.LLMInteraction
}

var _ ent.Mutation = (*LLMInteractionMutation)(nil)

// llminteractionOption allows management of the mutation configuration using functional options.
type llminteractionOption func(*LLMInteractionMutation)

// newLLMInteractionMutation creates new mutation for the LLMInteraction entity.
func newLLMInteractionMutation(c config, op Op, opts ...llminteractionOption) *LLMInteractionMutation {
	m := &LLMInteractionMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMInteraction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMInteractionID sets the ID field of the mutation.
func withLLMInteractionID(id string) llminteractionOption {
	return func(m *LLMInteractionMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMInteraction
		)
		m.oldValue = func(ctx context.Context) (*LLMInteraction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMInteraction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMInteraction sets the old LLMInteraction of the mutation.
func withLLMInteraction(node *LLMInteraction) llminteractionOption {
	return func(m *LLMInteractionMutation) {
		m.oldValue = func(context.Context) (*LLMInteraction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMInteractionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMInteractionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LLMInteraction entities.
func (m *LLMInteractionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMInteractionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMInteractionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMInteraction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *LLMInteractionMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *LLMInteractionMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldSessionID(ctx context.Context) (v string, err error) {
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
func (m *LLMInteractionMutation) ResetSessionID() {
	m.session = nil
}

// SetExecutionID sets the "execution_id" field.
func (m *LLMInteractionMutation) SetExecutionID(s string) {
	m.stage_execution = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *LLMInteractionMutation) ExecutionID() (r string, exists bool) {
	v := m.stage_execution
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *LLMInteractionMutation) ResetExecutionID() {
	m.stage_execution = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LLMInteractionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LLMInteractionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *LLMInteractionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetInteractionType sets the "interaction_type" field.
func (m *LLMInteractionMutation) SetInteractionType(lt llminteraction.InteractionType) {
	m.interaction_type = &lt
}

// InteractionType returns the value of the "interaction_type" field in the mutation.
func (m *LLMInteractionMutation) InteractionType() (r llminteraction.InteractionType, exists bool) {
	v := m.interaction_type
	if v == nil {
		return
	}
	return *v, true
}

// OldInteractionType returns the old "interaction_type" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldInteractionType(ctx context.Context) (v llminteraction.InteractionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInteractionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInteractionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInteractionType: %w", err)
	}
	return oldValue.InteractionType, nil
}

// ResetInteractionType resets all changes to the "interaction_type" field.
func (m *LLMInteractionMutation) ResetInteractionType() {
	m.interaction_type = nil
}

// SetModelName sets the "model_name" field.
func (m *LLMInteractionMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *LLMInteractionMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldModelName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ResetModelName resets all changes to the "model_name" field.
func (m *LLMInteractionMutation) ResetModelName() {
	m.model_name = nil
}

// SetProvider sets the "provider" field.
func (m *LLMInteractionMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMInteractionMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMInteractionMutation) ResetProvider() {
	m.provider = nil
}

// SetConversation sets the "conversation" field.
func (m *LLMInteractionMutation) SetConversation(value []map[string]interface{}) {
	m.conversation = &value
	m.appendconversation = nil
}

// Conversation returns the value of the "conversation" field in the mutation.
func (m *LLMInteractionMutation) Conversation() (r []map[string]interface{}, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversation returns the old "conversation" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldConversation(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversation: %w", err)
	}
	return oldValue.Conversation, nil
}

// AppendConversation adds value to the "conversation" field.
func (m *LLMInteractionMutation) AppendConversation(value []map[string]interface{}) {
	m.appendconversation = append(m.appendconversation, value...)
}

// AppendedConversation returns the list of values that were appended to the "conversation" field in this mutation.
func (m *LLMInteractionMutation) AppendedConversation() ([]map[string]interface{}, bool) {
	if len(m.appendconversation) == 0 {
		return nil, false
	}
	return m.appendconversation, true
}

// ResetConversation resets all changes to the "conversation" field.
func (m *LLMInteractionMutation) ResetConversation() {
	m.conversation = nil
	m.appendconversation = nil
}

// SetThinkingContent sets the "thinking_content" field.
func (m *LLMInteractionMutation) SetThinkingContent(s string) {
	m.thinking_content = &s
}

// ThinkingContent returns the value of the "thinking_content" field in the mutation.
func (m *LLMInteractionMutation) ThinkingContent() (r string, exists bool) {
	v := m.thinking_content
	if v == nil {
		return
	}
	return *v, true
}

// OldThinkingContent returns the old "thinking_content" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldThinkingContent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThinkingContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThinkingContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThinkingContent: %w", err)
	}
	return oldValue.ThinkingContent, nil
}

// ClearThinkingContent clears the value of the "thinking_content" field.
func (m *LLMInteractionMutation) ClearThinkingContent() {
	m.thinking_content = nil
	m.clearedFields[llminteraction.FieldThinkingContent] = struct{}{}
}

// ThinkingContentCleared returns if the "thinking_content" field was cleared in this mutation.
func (m *LLMInteractionMutation) ThinkingContentCleared() bool {
	_, ok := m.clearedFields[llminteraction.FieldThinkingContent]
	return ok
}

// ResetThinkingContent resets all changes to the "thinking_content" field.
func (m *LLMInteractionMutation) ResetThinkingContent() {
	m.thinking_content = nil
	delete(m.clearedFields, llminteraction.FieldThinkingContent)
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMInteractionMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMInteractionMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldInputTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMInteractionMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMInteractionMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (m *LLMInteractionMutation) ClearInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
	m.clearedFields[llminteraction.FieldInputTokens] = struct{}{}
}

// InputTokensCleared returns if the "input_tokens" field was cleared in this mutation.
func (m *LLMInteractionMutation) InputTokensCleared() bool {
	_, ok := m.clearedFields[llminteraction.FieldInputTokens]
	return ok
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMInteractionMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
	delete(m.clearedFields, llminteraction.FieldInputTokens)
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMInteractionMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMInteractionMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldOutputTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMInteractionMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMInteractionMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (m *LLMInteractionMutation) ClearOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
	m.clearedFields[llminteraction.FieldOutputTokens] = struct{}{}
}

// OutputTokensCleared returns if the "output_tokens" field was cleared in this mutation.
func (m *LLMInteractionMutation) OutputTokensCleared() bool {
	_, ok := m.clearedFields[llminteraction.FieldOutputTokens]
	return ok
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMInteractionMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
	delete(m.clearedFields, llminteraction.FieldOutputTokens)
}

// SetTotalTokens sets the "total_tokens" field.
func (m *LLMInteractionMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *LLMInteractionMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldTotalTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *LLMInteractionMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *LLMInteractionMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalTokens clears the value of the "total_tokens" field.
func (m *LLMInteractionMutation) ClearTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
	m.clearedFields[llminteraction.FieldTotalTokens] = struct{}{}
}

// TotalTokensCleared returns if the "total_tokens" field was cleared in this mutation.
func (m *LLMInteractionMutation) TotalTokensCleared() bool {
	_, ok := m.clearedFields[llminteraction.FieldTotalTokens]
	return ok
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *LLMInteractionMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
	delete(m.clearedFields, llminteraction.FieldTotalTokens)
}

// SetDurationMs sets the "duration_ms" field.
func (m *LLMInteractionMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *LLMInteractionMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *LLMInteractionMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *LLMInteractionMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *LLMInteractionMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[llminteraction.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *LLMInteractionMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[llminteraction.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *LLMInteractionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, llminteraction.FieldDurationMs)
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMInteractionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMInteractionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
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
func (m *LLMInteractionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[llminteraction.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *LLMInteractionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[llminteraction.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMInteractionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, llminteraction.FieldErrorMessage)
}

// ClearSession clears the "session" edge to the AlertSession entity.
func (m *LLMInteractionMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[llminteraction.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the AlertSession entity was cleared.
func (m *LLMInteractionMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *LLMInteractionMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *LLMInteractionMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// SetStageExecutionID sets the "stage_execution" edge to the StageExecution entity by id.
func (m *LLMInteractionMutation) SetStageExecutionID(id string) {
	m.stage_execution = &id
}

// ClearStageExecution clears the "stage_execution" edge to the StageExecution entity.
func (m *LLMInteractionMutation) ClearStageExecution() {
	m.clearedstage_execution = true
	m.clearedFields[llminteraction.FieldExecutionID] = struct{}{}
}

// StageExecutionCleared reports if the "stage_execution" edge to the StageExecution entity was cleared.
func (m *LLMInteractionMutation) StageExecutionCleared() bool {
	return m.clearedstage_execution
}

// StageExecutionID returns the "stage_execution" edge ID in the mutation.
func (m *LLMInteractionMutation) StageExecutionID() (id string, exists bool) {
	if m.stage_execution != nil {
		return *m.stage_execution, true
	}
	return
}

// StageExecutionIDs returns the "stage_execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StageExecutionID instead. It exists only for internal usage by the builders.
func (m *LLMInteractionMutation) StageExecutionIDs() (ids []string) {
	if id := m.stage_execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStageExecution resets all changes to the "stage_execution" edge.
func (m *LLMInteractionMutation) ResetStageExecution() {
	m.stage_execution = nil
	m.clearedstage_execution = false
}

// AddTimelineEventIDs adds the "timeline_events" edge to the TimelineEvent entity by ids.
func (m *LLMInteractionMutation) AddTimelineEventIDs(ids ...string) {
	if m.timeline_events == nil {
		m.timeline_events = make(map[string]struct{})
	}
	for i := range ids {
		m.timeline_events[ids[i]] = struct{}{}
	}
}

// ClearTimelineEvents clears the "timeline_events" edge to the TimelineEvent entity.
func (m *LLMInteractionMutation) ClearTimelineEvents() {
	m.clearedtimeline_events = true
}

// TimelineEventsCleared reports if the "timeline_events" edge to the TimelineEvent entity was cleared.
func (m *LLMInteractionMutation) TimelineEventsCleared() bool {
	return m.clearedtimeline_events
}

// RemoveTimelineEventIDs removes the "timeline_events" edge to the TimelineEvent entity by IDs.
func (m *LLMInteractionMutation) RemoveTimelineEventIDs(ids ...string) {
	if m.removedtimeline_events == nil {
		m.removedtimeline_events = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.timeline_events, ids[i])
		m.removedtimeline_events[ids[i]] = struct{}{}
	}
}

// RemovedTimelineEvents returns the removed IDs of the "timeline_events" edge to the TimelineEvent entity.
func (m *LLMInteractionMutation) RemovedTimelineEventsIDs() (ids []string) {
	for id := range m.removedtimeline_events {
		ids = append(ids, id)
	}
	return
}

// TimelineEventsIDs returns the "timeline_events" edge IDs in the mutation.
func (m *LLMInteractionMutation) TimelineEventsIDs() (ids []string) {
	for id := range m.timeline_events {
		ids = append(ids, id)
	}
	return
}

// ResetTimelineEvents resets all changes to the "timeline_events" edge.
func (m *LLMInteractionMutation) ResetTimelineEvents() {
	m.timeline_events = nil
	m.clearedtimeline_events = false
	m.removedtimeline_events = nil
}

// Where appends a list predicates to the LLMInteractionMutation builder.
func (m *LLMInteractionMutation) Where(ps ...predicate.LLMInteraction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMInteractionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMInteractionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMInteraction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMInteractionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMInteractionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMInteraction).
func (m *LLMInteractionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMInteractionMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.session != nil {
		fields = append(fields, llminteraction.FieldSessionID)
	}
	if m.stage_execution != nil {
		fields = append(fields, llminteraction.FieldExecutionID)
	}
	if m.created_at != nil {
		fields = append(fields, llminteraction.FieldCreatedAt)
	}
	if m.interaction_type != nil {
		fields = append(fields, llminteraction.FieldInteractionType)
	}
	if m.model_name != nil {
		fields = append(fields, llminteraction.FieldModelName)
	}
	if m.provider != nil {
		fields = append(fields, llminteraction.FieldProvider)
	}
	if m.conversation != nil {
		fields = append(fields, llminteraction.FieldConversation)
	}
	if m.thinking_content != nil {
		fields = append(fields, llminteraction.FieldThinkingContent)
	}
	if m.input_tokens != nil {
		fields = append(fields, llminteraction.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llminteraction.FieldOutputTokens)
	}
	if m.total_tokens != nil {
		fields = append(fields, llminteraction.FieldTotalTokens)
	}
	if m.duration_ms != nil {
		fields = append(fields, llminteraction.FieldDurationMs)
	}
	if m.error_message != nil {
		fields = append(fields, llminteraction.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMInteractionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llminteraction.FieldSessionID:
		return m.SessionID()
	case llminteraction.FieldExecutionID:
		return m.ExecutionID()
	case llminteraction.FieldCreatedAt:
		return m.CreatedAt()
	case llminteraction.FieldInteractionType:
		return m.InteractionType()
	case llminteraction.FieldModelName:
		return m.ModelName()
	case llminteraction.FieldProvider:
		return m.Provider()
	case llminteraction.FieldConversation:
		return m.Conversation()
	case llminteraction.FieldThinkingContent:
		return m.ThinkingContent()
	case llminteraction.FieldInputTokens:
		return m.InputTokens()
	case llminteraction.FieldOutputTokens:
		return m.OutputTokens()
	case llminteraction.FieldTotalTokens:
		return m.TotalTokens()
	case llminteraction.FieldDurationMs:
		return m.DurationMs()
	case llminteraction.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMInteractionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llminteraction.FieldSessionID:
		return m.OldSessionID(ctx)
	case llminteraction.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case llminteraction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case llminteraction.FieldInteractionType:
		return m.OldInteractionType(ctx)
	case llminteraction.FieldModelName:
		return m.OldModelName(ctx)
	case llminteraction.FieldProvider:
		return m.OldProvider(ctx)
	case llminteraction.FieldConversation:
		return m.OldConversation(ctx)
	case llminteraction.FieldThinkingContent:
		return m.OldThinkingContent(ctx)
	case llminteraction.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llminteraction.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llminteraction.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case llminteraction.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case llminteraction.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown LLMInteraction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMInteractionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llminteraction.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case llminteraction.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case llminteraction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case llminteraction.FieldInteractionType:
		v, ok := value.(llminteraction.InteractionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInteractionType(v)
		return nil
	case llminteraction.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case llminteraction.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llminteraction.FieldConversation:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversation(v)
		return nil
	case llminteraction.FieldThinkingContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThinkingContent(v)
		return nil
	case llminteraction.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llminteraction.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llminteraction.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case llminteraction.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case llminteraction.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown LLMInteraction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMInteractionMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, llminteraction.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llminteraction.FieldOutputTokens)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, llminteraction.FieldTotalTokens)
	}
	if m.addduration_ms != nil {
		fields = append(fields, llminteraction.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMInteractionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llminteraction.FieldInputTokens:
		return m.AddedInputTokens()
	case llminteraction.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llminteraction.FieldTotalTokens:
		return m.AddedTotalTokens()
	case llminteraction.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMInteractionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llminteraction.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llminteraction.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llminteraction.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	case llminteraction.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMInteraction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMInteractionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(llminteraction.FieldThinkingContent) {
		fields = append(fields, llminteraction.FieldThinkingContent)
	}
	if m.FieldCleared(llminteraction.FieldInputTokens) {
		fields = append(fields, llminteraction.FieldInputTokens)
	}
	if m.FieldCleared(llminteraction.FieldOutputTokens) {
		fields = append(fields, llminteraction.FieldOutputTokens)
	}
	if m.FieldCleared(llminteraction.FieldTotalTokens) {
		fields = append(fields, llminteraction.FieldTotalTokens)
	}
	if m.FieldCleared(llminteraction.FieldDurationMs) {
		fields = append(fields, llminteraction.FieldDurationMs)
	}
	if m.FieldCleared(llminteraction.FieldErrorMessage) {
		fields = append(fields, llminteraction.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMInteractionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMInteractionMutation) ClearField(name string) error {
	switch name {
	case llminteraction.FieldThinkingContent:
		m.ClearThinkingContent()
		return nil
	case llminteraction.FieldInputTokens:
		m.ClearInputTokens()
		return nil
	case llminteraction.FieldOutputTokens:
		m.ClearOutputTokens()
		return nil
	case llminteraction.FieldTotalTokens:
		m.ClearTotalTokens()
		return nil
	case llminteraction.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case llminteraction.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMInteraction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMInteractionMutation) ResetField(name string) error {
	switch name {
	case llminteraction.FieldSessionID:
		m.ResetSessionID()
		return nil
	case llminteraction.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case llminteraction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case llminteraction.FieldInteractionType:
		m.ResetInteractionType()
		return nil
	case llminteraction.FieldModelName:
		m.ResetModelName()
		return nil
	case llminteraction.FieldProvider:
		m.ResetProvider()
		return nil
	case llminteraction.FieldConversation:
		m.ResetConversation()
		return nil
	case llminteraction.FieldThinkingContent:
		m.ResetThinkingContent()
		return nil
	case llminteraction.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llminteraction.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llminteraction.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case llminteraction.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case llminteraction.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMInteraction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMInteractionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.session != nil {
		edges = append(edges, llminteraction.EdgeSession)
	}
	if m.stage_execution != nil {
		edges = append(edges, llminteraction.EdgeStageExecution)
	}
	if m.timeline_events != nil {
		edges = append(edges, llminteraction.EdgeTimelineEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMInteractionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case llminteraction.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case llminteraction.EdgeStageExecution:
		if id := m.stage_execution; id != nil {
			return []ent.Value{*id}
		}
	case llminteraction.EdgeTimelineEvents:
		ids := make([]ent.Value, 0, len(m.timeline_events))
		for id := range m.timeline_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMInteractionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedtimeline_events != nil {
		edges = append(edges, llminteraction.EdgeTimelineEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMInteractionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case llminteraction.EdgeTimelineEvents:
		ids := make([]ent.Value, 0, len(m.removedtimeline_events))
		for id := range m.removedtimeline_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMInteractionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedsession {
		edges = append(edges, llminteraction.EdgeSession)
	}
	if m.clearedstage_execution {
		edges = append(edges, llminteraction.EdgeStageExecution)
	}
	if m.clearedtimeline_events {
		edges = append(edges, llminteraction.EdgeTimelineEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMInteractionMutation) EdgeCleared(name string) bool {
	switch name {
	case llminteraction.EdgeSession:
		return m.clearedsession
	case llminteraction.EdgeStageExecution:
		return m.clearedstage_execution
	case llminteraction.EdgeTimelineEvents:
		return m.clearedtimeline_events
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMInteractionMutation) ClearEdge(name string) error {
	switch name {
	case llminteraction.EdgeSession:
		m.ClearSession()
		return nil
	case llminteraction.EdgeStageExecution:
		m.ClearStageExecution()
		return nil
	}
	return fmt.Errorf("unknown LLMInteraction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMInteractionMutation) ResetEdge(name string) error {
	switch name {
	case llminteraction.EdgeSession:
		m.ResetSession()
		return nil
	case llminteraction.EdgeStageExecution:
		m.ResetStageExecution()
		return nil
	case llminteraction.EdgeTimelineEvents:
		m.ResetTimelineEvents()
		return nil
	}
	return fmt.Errorf("unknown LLMInteraction edge %s", name)
}

// MCPInteractionMutation represents an operation that mutates the MCPInteraction nodes in the graph.
type MCPInteractionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	created_at             *time.Time
	interaction_type       *mcpinteraction.InteractionType
	server_name            *string
	tool_name              *string
	tool_arguments         *map[string]interface{}
	tool_result            *string
	available_tools        *[]interface{}
	appendavailable_tools  []interface{}
	masked                 *bool
	duration_ms            *int
	addduration_ms         *int
	error_message          *string
	clearedFields          map[string]struct{}
	session                *string
	clearedsession         bool
	stage_execution        *string
	clearedstage_execution bool
	timeline_events        map[string]struct{}
	removedtimeline_events map[string]struct{}
	clearedtimeline_events bool
	done                   bool
	oldValue               func(context.Context) (*MCPInteraction, error)
	predicates             []predicate.MCPInteraction
}

var _ ent.Mutation = (*MCPInteractionMutation)(nil)

// mcpinteractionOption allows management of the mutation configuration using functional options.
type mcpinteractionOption func(*MCPInteractionMutation)

// newMCPInteractionMutation creates new mutation for the MCPInteraction entity.
func newMCPInteractionMutation(c config, op Op, opts ...mcpinteractionOption) *MCPInteractionMutation {
	m := &MCPInteractionMutation{
		config:        c,
		op:            op,
		typ:           TypeMCPInteraction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMCPInteractionID sets the ID field of the mutation.
func withMCPInteractionID(id string) mcpinteractionOption {
	return func(m *MCPInteractionMutation) {
		var (
			err   error
			once  sync.Once
			value *MCPInteraction
		)
		m.oldValue = func(ctx context.Context) (*MCPInteraction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MCPInteraction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMCPInteraction sets the old MCPInteraction of the mutation.
func withMCPInteraction(node *MCPInteraction) mcpinteractionOption {
	return func(m *MCPInteractionMutation) {
		m.oldValue = func(context.Context) (*MCPInteraction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MCPInteractionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MCPInteractionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MCPInteraction entities.
func (m *MCPInteractionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MCPInteractionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MCPInteractionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MCPInteraction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *MCPInteractionMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *MCPInteractionMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldSessionID(ctx context.Context) (v string, err error) {
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
func (m *MCPInteractionMutation) ResetSessionID() {
	m.session = nil
}

// SetExecutionID sets the "execution_id" field.
func (m *MCPInteractionMutation) SetExecutionID(s string) {
	m.stage_execution = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *MCPInteractionMutation) ExecutionID() (r string, exists bool) {
	v := m.stage_execution
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *MCPInteractionMutation) ResetExecutionID() {
	m.stage_execution = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MCPInteractionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MCPInteractionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *MCPInteractionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetInteractionType sets the "interaction_type" field.
func (m *MCPInteractionMutation) SetInteractionType(mt mcpinteraction.InteractionType) {
	m.interaction_type = &mt
}

// InteractionType returns the value of the "interaction_type" field in the mutation.
func (m *MCPInteractionMutation) InteractionType() (r mcpinteraction.InteractionType, exists bool) {
	v := m.interaction_type
	if v == nil {
		return
	}
	return *v, true
}

// OldInteractionType returns the old "interaction_type" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldInteractionType(ctx context.Context) (v mcpinteraction.InteractionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInteractionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInteractionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInteractionType: %w", err)
	}
	return oldValue.InteractionType, nil
}

// ResetInteractionType resets all changes to the "interaction_type" field.
func (m *MCPInteractionMutation) ResetInteractionType() {
	m.interaction_type = nil
}

// SetServerName sets the "server_name" field.
func (m *MCPInteractionMutation) SetServerName(s string) {
	m.server_name = &s
}

// ServerName returns the value of the "server_name" field in the mutation.
func (m *MCPInteractionMutation) ServerName() (r string, exists bool) {
	v := m.server_name
	if v == nil {
		return
	}
	return *v, true
}

// OldServerName returns the old "server_name" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldServerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServerName: %w", err)
	}
	return oldValue.ServerName, nil
}

// ResetServerName resets all changes to the "server_name" field.
func (m *MCPInteractionMutation) ResetServerName() {
	m.server_name = nil
}

// SetToolName sets the "tool_name" field.
func (m *MCPInteractionMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *MCPInteractionMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldToolName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ClearToolName clears the value of the "tool_name" field.
func (m *MCPInteractionMutation) ClearToolName() {
	m.tool_name = nil
	m.clearedFields[mcpinteraction.FieldToolName] = struct{}{}
}

// ToolNameCleared returns if the "tool_name" field was cleared in this mutation.
func (m *MCPInteractionMutation) ToolNameCleared() bool {
	_, ok := m.clearedFields[mcpinteraction.FieldToolName]
	return ok
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *MCPInteractionMutation) ResetToolName() {
	m.tool_name = nil
	delete(m.clearedFields, mcpinteraction.FieldToolName)
}

// SetToolArguments sets the "tool_arguments" field.
func (m *MCPInteractionMutation) SetToolArguments(value map[string]interface{}) {
	m.tool_arguments = &value
}

// ToolArguments returns the value of the "tool_arguments" field in the mutation.
func (m *MCPInteractionMutation) ToolArguments() (r map[string]interface{}, exists bool) {
	v := m.tool_arguments
	if v == nil {
		return
	}
	return *v, true
}

// OldToolArguments returns the old "tool_arguments" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldToolArguments(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolArguments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolArguments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolArguments: %w", err)
	}
	return oldValue.ToolArguments, nil
}

// ClearToolArguments clears the value of the "tool_arguments" field.
func (m *MCPInteractionMutation) ClearToolArguments() {
	m.tool_arguments = nil
	m.clearedFields[mcpinteraction.FieldToolArguments] = struct{}{}
}

// ToolArgumentsCleared returns if the "tool_arguments" field was cleared in this mutation.
func (m *MCPInteractionMutation) ToolArgumentsCleared() bool {
	_, ok := m.clearedFields[mcpinteraction.FieldToolArguments]
	return ok
}

// ResetToolArguments resets all changes to the "tool_arguments" field.
func (m *MCPInteractionMutation) ResetToolArguments() {
	m.tool_arguments = nil
	delete(m.clearedFields, mcpinteraction.FieldToolArguments)
}

// SetToolResult sets the "tool_result" field.
func (m *MCPInteractionMutation) SetToolResult(s string) {
	m.tool_result = &s
}

// ToolResult returns the value of the "tool_result" field in the mutation.
func (m *MCPInteractionMutation) ToolResult() (r string, exists bool) {
	v := m.tool_result
	if v == nil {
		return
	}
	return *v, true
}

// OldToolResult returns the old "tool_result" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldToolResult(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolResult: %w", err)
	}
	return oldValue.ToolResult, nil
}

// ClearToolResult clears the value of the "tool_result" field.
func (m *MCPInteractionMutation) ClearToolResult() {
	m.tool_result = nil
	m.clearedFields[mcpinteraction.FieldToolResult] = struct{}{}
}

// ToolResultCleared returns if the "tool_result" field was cleared in this mutation.
func (m *MCPInteractionMutation) ToolResultCleared() bool {
	_, ok := m.clearedFields[mcpinteraction.FieldToolResult]
	return ok
}

// ResetToolResult resets all changes to the "tool_result" field.
func (m *MCPInteractionMutation) ResetToolResult() {
	m.tool_result = nil
	delete(m.clearedFields, mcpinteraction.FieldToolResult)
}

// SetAvailableTools sets the "available_tools" field.
func (m *MCPInteractionMutation) SetAvailableTools(i []interface{}) {
	m.available_tools = &i
	m.appendavailable_tools = nil
}

// AvailableTools returns the value of the "available_tools" field in the mutation.
func (m *MCPInteractionMutation) AvailableTools() (r []interface{}, exists bool) {
	v := m.available_tools
	if v == nil {
		return
	}
	return *v, true
}

// OldAvailableTools returns the old "available_tools" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldAvailableTools(ctx context.Context) (v []interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvailableTools is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvailableTools requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvailableTools: %w", err)
	}
	return oldValue.AvailableTools, nil
}

// AppendAvailableTools adds i to the "available_tools" field.
func (m *MCPInteractionMutation) AppendAvailableTools(i []interface{}) {
	m.appendavailable_tools = append(m.appendavailable_tools, i...)
}

// AppendedAvailableTools returns the list of values that were appended to the "available_tools" field in this mutation.
func (m *MCPInteractionMutation) AppendedAvailableTools() ([]interface{}, bool) {
	if len(m.appendavailable_tools) == 0 {
		return nil, false
	}
	return m.appendavailable_tools, true
}

// ClearAvailableTools clears the value of the "available_tools" field.
func (m *MCPInteractionMutation) ClearAvailableTools() {
	m.available_tools = nil
	m.appendavailable_tools = nil
	m.clearedFields[mcpinteraction.FieldAvailableTools] = struct{}{}
}

// AvailableToolsCleared returns if the "available_tools" field was cleared in this mutation.
func (m *MCPInteractionMutation) AvailableToolsCleared() bool {
	_, ok := m.clearedFields[mcpinteraction.FieldAvailableTools]
	return ok
}

// ResetAvailableTools resets all changes to the "available_tools" field.
func (m *MCPInteractionMutation) ResetAvailableTools() {
	m.available_tools = nil
	m.appendavailable_tools = nil
	delete(m.clearedFields, mcpinteraction.FieldAvailableTools)
}

// SetMasked sets the "masked" field.
func (m *MCPInteractionMutation) SetMasked(b bool) {
	m.masked = &b
}

// Masked returns the value of the "masked" field in the mutation.
func (m *MCPInteractionMutation) Masked() (r bool, exists bool) {
	v := m.masked
	if v == nil {
		return
	}
	return *v, true
}

// OldMasked returns the old "masked" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldMasked(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasked: %w", err)
	}
	return oldValue.Masked, nil
}

// ResetMasked resets all changes to the "masked" field.
func (m *MCPInteractionMutation) ResetMasked() {
	m.masked = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *MCPInteractionMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *MCPInteractionMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *MCPInteractionMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *MCPInteractionMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *MCPInteractionMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[mcpinteraction.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *MCPInteractionMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[mcpinteraction.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *MCPInteractionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, mcpinteraction.FieldDurationMs)
}

// SetErrorMessage sets the "error_message" field.
func (m *MCPInteractionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *MCPInteractionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
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
func (m *MCPInteractionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[mcpinteraction.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *MCPInteractionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[mcpinteraction.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *MCPInteractionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, mcpinteraction.FieldErrorMessage)
}

// ClearSession clears the "session" edge to the AlertSession entity.
func (m *MCPInteractionMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[mcpinteraction.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the AlertSession entity was cleared.
func (m *MCPInteractionMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *MCPInteractionMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *MCPInteractionMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// SetStageExecutionID sets the "stage_execution" edge to the StageExecution entity by id.
func (m *MCPInteractionMutation) SetStageExecutionID(id string) {
	m.stage_execution = &id
}

// ClearStageExecution clears the "stage_execution" edge to the StageExecution entity.
func (m *MCPInteractionMutation) ClearStageExecution() {
	m.clearedstage_execution = true
	m.clearedFields[mcpinteraction.FieldExecutionID] = struct{}{}
}

// StageExecutionCleared reports if the "stage_execution" edge to the StageExecution entity was cleared.
func (m *MCPInteractionMutation) StageExecutionCleared() bool {
	return m.clearedstage_execution
}

// StageExecutionID returns the "stage_execution" edge ID in the mutation.
func (m *MCPInteractionMutation) StageExecutionID() (id string, exists bool) {
	if m.stage_execution != nil {
		return *m.stage_execution, true
	}
	return
}

// StageExecutionIDs returns the "stage_execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StageExecutionID instead. It exists only for internal usage by the builders.
func (m *MCPInteractionMutation) StageExecutionIDs() (ids []string) {
	if id := m.stage_execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStageExecution resets all changes to the "stage_execution" edge.
func (m *MCPInteractionMutation) ResetStageExecution() {
	m.stage_execution = nil
	m.clearedstage_execution = false
}

// AddTimelineEventIDs adds the "timeline_events" edge to the TimelineEvent entity by ids.
func (m *MCPInteractionMutation) AddTimelineEventIDs(ids ...string) {
	if m.timeline_events == nil {
		m.timeline_events = make(map[string]struct{})
	}
	for i := range ids {
		m.timeline_events[ids[i]] = struct{}{}
	}
}

// ClearTimelineEvents clears the "timeline_events" edge to the TimelineEvent entity.
func (m *MCPInteractionMutation) ClearTimelineEvents() {
	m.clearedtimeline_events = true
}

// TimelineEventsCleared reports if the "timeline_events" edge to the TimelineEvent entity was cleared.
func (m *MCPInteractionMutation) TimelineEventsCleared() bool {
	return m.clearedtimeline_events
}

// RemoveTimelineEventIDs removes the "timeline_events" edge to the TimelineEvent entity by IDs.
func (m *MCPInteractionMutation) RemoveTimelineEventIDs(ids ...string) {
	if m.removedtimeline_events == nil {
		m.removedtimeline_events = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.timeline_events, ids[i])
		m.removedtimeline_events[ids[i]] = struct{}{}
	}
}

// RemovedTimelineEvents returns the removed IDs of the "timeline_events" edge to the TimelineEvent entity.
func (m *MCPInteractionMutation) RemovedTimelineEventsIDs() (ids []string) {
	for id := range m.removedtimeline_events {
		ids = append(ids, id)
	}
	return
}

// TimelineEventsIDs returns the "timeline_events" edge IDs in the mutation.
func (m *MCPInteractionMutation) TimelineEventsIDs() (ids []string) {
	for id := range m.timeline_events {
		ids = append(ids, id)
	}
	return
}

// ResetTimelineEvents resets all changes to the "timeline_events" edge.
func (m *MCPInteractionMutation) ResetTimelineEvents() {
	m.timeline_events = nil
	m.clearedtimeline_events = false
	m.removedtimeline_events = nil
}

// Where appends a list predicates to the MCPInteractionMutation builder.
func (m *MCPInteractionMutation) Where(ps ...predicate.MCPInteraction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MCPInteractionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MCPInteractionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MCPInteraction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MCPInteractionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MCPInteractionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MCPInteraction).
func (m *MCPInteractionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MCPInteractionMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.session != nil {
		fields = append(fields, mcpinteraction.FieldSessionID)
	}
	if m.stage_execution != nil {
		fields = append(fields, mcpinteraction.FieldExecutionID)
	}
	if m.created_at != nil {
		fields = append(fields, mcpinteraction.FieldCreatedAt)
	}
	if m.interaction_type != nil {
		fields = append(fields, mcpinteraction.FieldInteractionType)
	}
	if m.server_name != nil {
		fields = append(fields, mcpinteraction.FieldServerName)
	}
	if m.tool_name != nil {
		fields = append(fields, mcpinteraction.FieldToolName)
	}
	if m.tool_arguments != nil {
		fields = append(fields, mcpinteraction.FieldToolArguments)
	}
	if m.tool_result != nil {
		fields = append(fields, mcpinteraction.FieldToolResult)
	}
	if m.available_tools != nil {
		fields = append(fields, mcpinteraction.FieldAvailableTools)
	}
	if m.masked != nil {
		fields = append(fields, mcpinteraction.FieldMasked)
	}
	if m.duration_ms != nil {
		fields = append(fields, mcpinteraction.FieldDurationMs)
	}
	if m.error_message != nil {
		fields = append(fields, mcpinteraction.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MCPInteractionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mcpinteraction.FieldSessionID:
		return m.SessionID()
	case mcpinteraction.FieldExecutionID:
		return m.ExecutionID()
	case mcpinteraction.FieldCreatedAt:
		return m.CreatedAt()
	case mcpinteraction.FieldInteractionType:
		return m.InteractionType()
	case mcpinteraction.FieldServerName:
		return m.ServerName()
	case mcpinteraction.FieldToolName:
		return m.ToolName()
	case mcpinteraction.FieldToolArguments:
		return m.ToolArguments()
	case mcpinteraction.FieldToolResult:
		return m.ToolResult()
	case mcpinteraction.FieldAvailableTools:
		return m.AvailableTools()
	case mcpinteraction.FieldMasked:
		return m.Masked()
	case mcpinteraction.FieldDurationMs:
		return m.DurationMs()
	case mcpinteraction.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MCPInteractionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mcpinteraction.FieldSessionID:
		return m.OldSessionID(ctx)
	case mcpinteraction.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case mcpinteraction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case mcpinteraction.FieldInteractionType:
		return m.OldInteractionType(ctx)
	case mcpinteraction.FieldServerName:
		return m.OldServerName(ctx)
	case mcpinteraction.FieldToolName:
		return m.OldToolName(ctx)
	case mcpinteraction.FieldToolArguments:
		return m.OldToolArguments(ctx)
	case mcpinteraction.FieldToolResult:
		return m.OldToolResult(ctx)
	case mcpinteraction.FieldAvailableTools:
		return m.OldAvailableTools(ctx)
	case mcpinteraction.FieldMasked:
		return m.OldMasked(ctx)
	case mcpinteraction.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case mcpinteraction.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown MCPInteraction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MCPInteractionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mcpinteraction.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case mcpinteraction.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case mcpinteraction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case mcpinteraction.FieldInteractionType:
		v, ok := value.(mcpinteraction.InteractionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInteractionType(v)
		return nil
	case mcpinteraction.FieldServerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServerName(v)
		return nil
	case mcpinteraction.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case mcpinteraction.FieldToolArguments:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolArguments(v)
		return nil
	case mcpinteraction.FieldToolResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolResult(v)
		return nil
	case mcpinteraction.FieldAvailableTools:
		v, ok := value.([]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvailableTools(v)
		return nil
	case mcpinteraction.FieldMasked:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasked(v)
		return nil
	case mcpinteraction.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case mcpinteraction.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown MCPInteraction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MCPInteractionMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, mcpinteraction.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MCPInteractionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case mcpinteraction.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MCPInteractionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case mcpinteraction.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown MCPInteraction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MCPInteractionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mcpinteraction.FieldToolName) {
		fields = append(fields, mcpinteraction.FieldToolName)
	}
	if m.FieldCleared(mcpinteraction.FieldToolArguments) {
		fields = append(fields, mcpinteraction.FieldToolArguments)
	}
	if m.FieldCleared(mcpinteraction.FieldToolResult) {
		fields = append(fields, mcpinteraction.FieldToolResult)
	}
	if m.FieldCleared(mcpinteraction.FieldAvailableTools) {
		fields = append(fields, mcpinteraction.FieldAvailableTools)
	}
	if m.FieldCleared(mcpinteraction.FieldDurationMs) {
		fields = append(fields, mcpinteraction.FieldDurationMs)
	}
	if m.FieldCleared(mcpinteraction.FieldErrorMessage) {
		fields = append(fields, mcpinteraction.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MCPInteractionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MCPInteractionMutation) ClearField(name string) error {
	switch name {
	case mcpinteraction.FieldToolName:
		m.ClearToolName()
		return nil
	case mcpinteraction.FieldToolArguments:
		m.ClearToolArguments()
		return nil
	case mcpinteraction.FieldToolResult:
		m.ClearToolResult()
		return nil
	case mcpinteraction.FieldAvailableTools:
		m.ClearAvailableTools()
		return nil
	case mcpinteraction.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case mcpinteraction.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown MCPInteraction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MCPInteractionMutation) ResetField(name string) error {
	switch name {
	case mcpinteraction.FieldSessionID:
		m.ResetSessionID()
		return nil
	case mcpinteraction.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case mcpinteraction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case mcpinteraction.FieldInteractionType:
		m.ResetInteractionType()
		return nil
	case mcpinteraction.FieldServerName:
		m.ResetServerName()
		return nil
	case mcpinteraction.FieldToolName:
		m.ResetToolName()
		return nil
	case mcpinteraction.FieldToolArguments:
		m.ResetToolArguments()
		return nil
	case mcpinteraction.FieldToolResult:
		m.ResetToolResult()
		return nil
	case mcpinteraction.FieldAvailableTools:
		m.ResetAvailableTools()
		return nil
	case mcpinteraction.FieldMasked:
		m.ResetMasked()
		return nil
	case mcpinteraction.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case mcpinteraction.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown MCPInteraction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MCPInteractionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.session != nil {
		edges = append(edges, mcpinteraction.EdgeSession)
	}
	if m.stage_execution != nil {
		edges = append(edges, mcpinteraction.EdgeStageExecution)
	}
	if m.timeline_events != nil {
		edges = append(edges, mcpinteraction.EdgeTimelineEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MCPInteractionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case mcpinteraction.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case mcpinteraction.EdgeStageExecution:
		if id := m.stage_execution; id != nil {
			return []ent.Value{*id}
		}
	case mcpinteraction.EdgeTimelineEvents:
		ids := make([]ent.Value, 0, len(m.timeline_events))
		for id := range m.timeline_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MCPInteractionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedtimeline_events != nil {
		edges = append(edges, mcpinteraction.EdgeTimelineEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MCPInteractionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case mcpinteraction.EdgeTimelineEvents:
		ids := make([]ent.Value, 0, len(m.removedtimeline_events))
		for id := range m.removedtimeline_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MCPInteractionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedsession {
		edges = append(edges, mcpinteraction.EdgeSession)
	}
	if m.clearedstage_execution {
		edges = append(edges, mcpinteraction.EdgeStageExecution)
	}
	if m.clearedtimeline_events {
		edges = append(edges, mcpinteraction.EdgeTimelineEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MCPInteractionMutation) EdgeCleared(name string) bool {
	switch name {
	case mcpinteraction.EdgeSession:
		return m.clearedsession
	case mcpinteraction.EdgeStageExecution:
		return m.clearedstage_execution
	case mcpinteraction.EdgeTimelineEvents:
		return m.clearedtimeline_events
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MCPInteractionMutation) ClearEdge(name string) error {
	switch name {
	case mcpinteraction.EdgeSession:
		m.ClearSession()
		return nil
	case mcpinteraction.EdgeStageExecution:
		m.ClearStageExecution()
		return nil
	}
	return fmt.Errorf("unknown MCPInteraction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MCPInteractionMutation) ResetEdge(name string) error {
	switch name {
	case mcpinteraction.EdgeSession:
		m.ResetSession()
		return nil
	case mcpinteraction.EdgeStageExecution:
		m.ResetStageExecution()
		return nil
	case mcpinteraction.EdgeTimelineEvents:
		m.ResetTimelineEvents()
		return nil
	}
	return fmt.Errorf("unknown MCPInteraction edge %s", name)
}

// StageExecutionMutation represents an operation that mutates the StageExecution nodes in the graph.
type StageExecutionMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	stage_id                *string
	stage_index             *int
	addstage_index          *int
	agent_name              *string
	iteration_strategy      *string
	status                  *stageexecution.Status
	started_at              *time.Time
	completed_at            *time.Time
	duration_ms             *int
	addduration_ms          *int
	current_iteration       *int
	addcurrent_iteration    *int
	stage_output            *string
	error_message           *string
	created_at              *time.Time
	clearedFields           map[string]struct{}
	session                 *string
	clearedsession          bool
	timeline_events         map[string]struct{}
	removedtimeline_events  map[string]struct{}
	clearedtimeline_events  bool
	llm_interactions        map[string]struct{}
	removedllm_interactions map[string]struct{}
	clearedllm_interactions bool
	mcp_interactions        map[string]struct{}
	removedmcp_interactions map[string]struct{}
	clearedmcp_interactions bool
	done                    bool
	oldValue                func(context.Context) (*StageExecution, error)
	predicates              []predicate.StageExecution
}

var _ ent.Mutation = (*StageExecutionMutation)(nil)

// stageexecutionOption allows management of the mutation configuration using functional options.
type stageexecutionOption func(*StageExecutionMutation)

// newStageExecutionMutation creates new mutation for the StageExecution entity.
func newStageExecutionMutation(c config, op Op, opts ...stageexecutionOption) *StageExecutionMutation {
	m := &StageExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeStageExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStageExecutionID sets the ID field of the mutation.
func withStageExecutionID(id string) stageexecutionOption {
	return func(m *StageExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *StageExecution
		)
		m.oldValue = func(ctx context.Context) (*StageExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StageExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStageExecution sets the old StageExecution of the mutation.
func withStageExecution(node *StageExecution) stageexecutionOption {
	return func(m *StageExecutionMutation) {
		m.oldValue = func(context.Context) (*StageExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StageExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StageExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StageExecution entities.
func (m *StageExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StageExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StageExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StageExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *StageExecutionMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *StageExecutionMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldSessionID(ctx context.Context) (v string, err error) {
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
func (m *StageExecutionMutation) ResetSessionID() {
	m.session = nil
}

// SetStageID sets the "stage_id" field.
func (m *StageExecutionMutation) SetStageID(s string) {
	m.stage_id = &s
}

// StageID returns the value of the "stage_id" field in the mutation.
func (m *StageExecutionMutation) StageID() (r string, exists bool) {
	v := m.stage_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStageID returns the old "stage_id" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldStageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageID: %w", err)
	}
	return oldValue.StageID, nil
}

// ResetStageID resets all changes to the "stage_id" field.
func (m *StageExecutionMutation) ResetStageID() {
	m.stage_id = nil
}

// SetStageIndex sets the "stage_index" field.
func (m *StageExecutionMutation) SetStageIndex(i int) {
	m.stage_index = &i
	m.addstage_index = nil
}

// StageIndex returns the value of the "stage_index" field in the mutation.
func (m *StageExecutionMutation) StageIndex() (r int, exists bool) {
	v := m.stage_index
	if v == nil {
		return
	}
	return *v, true
}

// OldStageIndex returns the old "stage_index" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldStageIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageIndex: %w", err)
	}
	return oldValue.StageIndex, nil
}

// AddStageIndex adds i to the "stage_index" field.
func (m *StageExecutionMutation) AddStageIndex(i int) {
	if m.addstage_index != nil {
		*m.addstage_index += i
	} else {
		m.addstage_index = &i
	}
}

// AddedStageIndex returns the value that was added to the "stage_index" field in this mutation.
func (m *StageExecutionMutation) AddedStageIndex() (r int, exists bool) {
	v := m.addstage_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetStageIndex resets all changes to the "stage_index" field.
func (m *StageExecutionMutation) ResetStageIndex() {
	m.stage_index = nil
	m.addstage_index = nil
}

// SetAgentName sets the "agent_name" field.
func (m *StageExecutionMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *StageExecutionMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *StageExecutionMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetIterationStrategy sets the "iteration_strategy" field.
func (m *StageExecutionMutation) SetIterationStrategy(s string) {
	m.iteration_strategy = &s
}

// IterationStrategy returns the value of the "iteration_strategy" field in the mutation.
func (m *StageExecutionMutation) IterationStrategy() (r string, exists bool) {
	v := m.iteration_strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldIterationStrategy returns the old "iteration_strategy" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldIterationStrategy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIterationStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIterationStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIterationStrategy: %w", err)
	}
	return oldValue.IterationStrategy, nil
}

// ResetIterationStrategy resets all changes to the "iteration_strategy" field.
func (m *StageExecutionMutation) ResetIterationStrategy() {
	m.iteration_strategy = nil
}

// SetStatus sets the "status" field.
func (m *StageExecutionMutation) SetStatus(s stageexecution.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StageExecutionMutation) Status() (r stageexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldStatus(ctx context.Context) (v stageexecution.Status, err error) {
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
func (m *StageExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *StageExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *StageExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *StageExecutionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[stageexecution.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *StageExecutionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *StageExecutionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, stageexecution.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *StageExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *StageExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *StageExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[stageexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *StageExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *StageExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, stageexecution.FieldCompletedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *StageExecutionMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *StageExecutionMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *StageExecutionMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *StageExecutionMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *StageExecutionMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[stageexecution.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *StageExecutionMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *StageExecutionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, stageexecution.FieldDurationMs)
}

// SetCurrentIteration sets the "current_iteration" field.
func (m *StageExecutionMutation) SetCurrentIteration(i int) {
	m.current_iteration = &i
	m.addcurrent_iteration = nil
}

// CurrentIteration returns the value of the "current_iteration" field in the mutation.
func (m *StageExecutionMutation) CurrentIteration() (r int, exists bool) {
	v := m.current_iteration
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentIteration returns the old "current_iteration" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldCurrentIteration(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentIteration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentIteration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentIteration: %w", err)
	}
	return oldValue.CurrentIteration, nil
}

// AddCurrentIteration adds i to the "current_iteration" field.
func (m *StageExecutionMutation) AddCurrentIteration(i int) {
	if m.addcurrent_iteration != nil {
		*m.addcurrent_iteration += i
	} else {
		m.addcurrent_iteration = &i
	}
}

// AddedCurrentIteration returns the value that was added to the "current_iteration" field in this mutation.
func (m *StageExecutionMutation) AddedCurrentIteration() (r int, exists bool) {
	v := m.addcurrent_iteration
	if v == nil {
		return
	}
	return *v, true
}

// ClearCurrentIteration clears the value of the "current_iteration" field.
func (m *StageExecutionMutation) ClearCurrentIteration() {
	m.current_iteration = nil
	m.addcurrent_iteration = nil
	m.clearedFields[stageexecution.FieldCurrentIteration] = struct{}{}
}

// CurrentIterationCleared returns if the "current_iteration" field was cleared in this mutation.
func (m *StageExecutionMutation) CurrentIterationCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldCurrentIteration]
	return ok
}

// ResetCurrentIteration resets all changes to the "current_iteration" field.
func (m *StageExecutionMutation) ResetCurrentIteration() {
	m.current_iteration = nil
	m.addcurrent_iteration = nil
	delete(m.clearedFields, stageexecution.FieldCurrentIteration)
}

// SetStageOutput sets the "stage_output" field.
func (m *StageExecutionMutation) SetStageOutput(s string) {
	m.stage_output = &s
}

// StageOutput returns the value of the "stage_output" field in the mutation.
func (m *StageExecutionMutation) StageOutput() (r string, exists bool) {
	v := m.stage_output
	if v == nil {
		return
	}
	return *v, true
}

// OldStageOutput returns the old "stage_output" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldStageOutput(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageOutput: %w", err)
	}
	return oldValue.StageOutput, nil
}

// ClearStageOutput clears the value of the "stage_output" field.
func (m *StageExecutionMutation) ClearStageOutput() {
	m.stage_output = nil
	m.clearedFields[stageexecution.FieldStageOutput] = struct{}{}
}

// StageOutputCleared returns if the "stage_output" field was cleared in this mutation.
func (m *StageExecutionMutation) StageOutputCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldStageOutput]
	return ok
}

// ResetStageOutput resets all changes to the "stage_output" field.
func (m *StageExecutionMutation) ResetStageOutput() {
	m.stage_output = nil
	delete(m.clearedFields, stageexecution.FieldStageOutput)
}

// SetErrorMessage sets the "error_message" field.
func (m *StageExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *StageExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
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
func (m *StageExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[stageexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *StageExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *StageExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, stageexecution.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *StageExecutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StageExecutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *StageExecutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the AlertSession entity.
func (m *StageExecutionMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[stageexecution.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the AlertSession entity was cleared.
func (m *StageExecutionMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *StageExecutionMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *StageExecutionMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// AddTimelineEventIDs adds the "timeline_events" edge to the TimelineEvent entity by ids.
func (m *StageExecutionMutation) AddTimelineEventIDs(ids ...string) {
	if m.timeline_events == nil {
		m.timeline_events = make(map[string]struct{})
	}
	for i := range ids {
		m.timeline_events[ids[i]] = struct{}{}
	}
}

// ClearTimelineEvents clears the "timeline_events" edge to the TimelineEvent entity.
func (m *StageExecutionMutation) ClearTimelineEvents() {
	m.clearedtimeline_events = true
}

// TimelineEventsCleared reports if the "timeline_events" edge to the TimelineEvent entity was cleared.
func (m *StageExecutionMutation) TimelineEventsCleared() bool {
	return m.clearedtimeline_events
}

// RemoveTimelineEventIDs removes the "timeline_events" edge to the TimelineEvent entity by IDs.
func (m *StageExecutionMutation) RemoveTimelineEventIDs(ids ...string) {
	if m.removedtimeline_events == nil {
		m.removedtimeline_events = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.timeline_events, ids[i])
		m.removedtimeline_events[ids[i]] = struct{}{}
	}
}

// RemovedTimelineEvents returns the removed IDs of the "timeline_events" edge to the TimelineEvent entity.
func (m *StageExecutionMutation) RemovedTimelineEventsIDs() (ids []string) {
	for id := range m.removedtimeline_events {
		ids = append(ids, id)
	}
	return
}

// TimelineEventsIDs returns the "timeline_events" edge IDs in the mutation.
func (m *StageExecutionMutation) TimelineEventsIDs() (ids []string) {
	for id := range m.timeline_events {
		ids = append(ids, id)
	}
	return
}

// ResetTimelineEvents resets all changes to the "timeline_events" edge.
func (m *StageExecutionMutation) ResetTimelineEvents() {
	m.timeline_events = nil
	m.clearedtimeline_events = false
	m.removedtimeline_events = nil
}

// AddLlmInteractionIDs adds the "llm_interactions" edge to the LLMInteraction entity by ids.
func (m *StageExecutionMutation) AddLlmInteractionIDs(ids ...string) {
	if m.llm_interactions == nil {
		m.llm_interactions = make(map[string]struct{})
	}
	for i := range ids {
		m.llm_interactions[ids[i]] = struct{}{}
	}
}

// ClearLlmInteractions clears the "llm_interactions" edge to the LLMInteraction entity.
func (m *StageExecutionMutation) ClearLlmInteractions() {
	m.clearedllm_interactions = true
}

// LlmInteractionsCleared reports if the "llm_interactions" edge to the LLMInteraction entity was cleared.
func (m *StageExecutionMutation) LlmInteractionsCleared() bool {
	return m.clearedllm_interactions
}

// RemoveLlmInteractionIDs removes the "llm_interactions" edge to the LLMInteraction entity by IDs.
func (m *StageExecutionMutation) RemoveLlmInteractionIDs(ids ...string) {
	if m.removedllm_interactions == nil {
		m.removedllm_interactions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.llm_interactions, ids[i])
		m.removedllm_interactions[ids[i]] = struct{}{}
	}
}

// RemovedLlmInteractions returns the removed IDs of the "llm_interactions" edge to the LLMInteraction entity.
func (m *StageExecutionMutation) RemovedLlmInteractionsIDs() (ids []string) {
	for id := range m.removedllm_interactions {
		ids = append(ids, id)
	}
	return
}

// LlmInteractionsIDs returns the "llm_interactions" edge IDs in the mutation.
func (m *StageExecutionMutation) LlmInteractionsIDs() (ids []string) {
	for id := range m.llm_interactions {
		ids = append(ids, id)
	}
	return
}

// ResetLlmInteractions resets all changes to the "llm_interactions" edge.
func (m *StageExecutionMutation) ResetLlmInteractions() {
	m.llm_interactions = nil
	m.clearedllm_interactions = false
	m.removedllm_interactions = nil
}

// AddMcpInteractionIDs adds the "mcp_interactions" edge to the MCPInteraction entity by ids.
func (m *StageExecutionMutation) AddMcpInteractionIDs(ids ...string) {
	if m.mcp_interactions == nil {
		m.mcp_interactions = make(map[string]struct{})
	}
	for i := range ids {
		m.mcp_interactions[ids[i]] = struct{}{}
	}
}

// ClearMcpInteractions clears the "mcp_interactions" edge to the MCPInteraction entity.
func (m *StageExecutionMutation) ClearMcpInteractions() {
	m.clearedmcp_interactions = true
}

// McpInteractionsCleared reports if the "mcp_interactions" edge to the MCPInteraction entity was cleared.
func (m *StageExecutionMutation) McpInteractionsCleared() bool {
	return m.clearedmcp_interactions
}

// RemoveMcpInteractionIDs removes the "mcp_interactions" edge to the MCPInteraction entity by IDs.
func (m *StageExecutionMutation) RemoveMcpInteractionIDs(ids ...string) {
	if m.removedmcp_interactions == nil {
		m.removedmcp_interactions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.mcp_interactions, ids[i])
		m.removedmcp_interactions[ids[i]] = struct{}{}
	}
}

// RemovedMcpInteractions returns the removed IDs of the "mcp_interactions" edge to the MCPInteraction entity.
func (m *StageExecutionMutation) RemovedMcpInteractionsIDs() (ids []string) {
	for id := range m.removedmcp_interactions {
		ids = append(ids, id)
	}
	return
}

// McpInteractionsIDs returns the "mcp_interactions" edge IDs in the mutation.
func (m *StageExecutionMutation) McpInteractionsIDs() (ids []string) {
	for id := range m.mcp_interactions {
		ids = append(ids, id)
	}
	return
}

// ResetMcpInteractions resets all changes to the "mcp_interactions" edge.
func (m *StageExecutionMutation) ResetMcpInteractions() {
	m.mcp_interactions = nil
	m.clearedmcp_interactions = false
	m.removedmcp_interactions = nil
}

// Where appends a list predicates to the StageExecutionMutation builder.
func (m *StageExecutionMutation) Where(ps ...predicate.StageExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StageExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StageExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StageExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StageExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StageExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StageExecution).
func (m *StageExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StageExecutionMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.session != nil {
		fields = append(fields, stageexecution.FieldSessionID)
	}
	if m.stage_id != nil {
		fields = append(fields, stageexecution.FieldStageID)
	}
	if m.stage_index != nil {
		fields = append(fields, stageexecution.FieldStageIndex)
	}
	if m.agent_name != nil {
		fields = append(fields, stageexecution.FieldAgentName)
	}
	if m.iteration_strategy != nil {
		fields = append(fields, stageexecution.FieldIterationStrategy)
	}
	if m.status != nil {
		fields = append(fields, stageexecution.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, stageexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, stageexecution.FieldCompletedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, stageexecution.FieldDurationMs)
	}
	if m.current_iteration != nil {
		fields = append(fields, stageexecution.FieldCurrentIteration)
	}
	if m.stage_output != nil {
		fields = append(fields, stageexecution.FieldStageOutput)
	}
	if m.error_message != nil {
		fields = append(fields, stageexecution.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, stageexecution.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StageExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stageexecution.FieldSessionID:
		return m.SessionID()
	case stageexecution.FieldStageID:
		return m.StageID()
	case stageexecution.FieldStageIndex:
		return m.StageIndex()
	case stageexecution.FieldAgentName:
		return m.AgentName()
	case stageexecution.FieldIterationStrategy:
		return m.IterationStrategy()
	case stageexecution.FieldStatus:
		return m.Status()
	case stageexecution.FieldStartedAt:
		return m.StartedAt()
	case stageexecution.FieldCompletedAt:
		return m.CompletedAt()
	case stageexecution.FieldDurationMs:
		return m.DurationMs()
	case stageexecution.FieldCurrentIteration:
		return m.CurrentIteration()
	case stageexecution.FieldStageOutput:
		return m.StageOutput()
	case stageexecution.FieldErrorMessage:
		return m.ErrorMessage()
	case stageexecution.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StageExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stageexecution.FieldSessionID:
		return m.OldSessionID(ctx)
	case stageexecution.FieldStageID:
		return m.OldStageID(ctx)
	case stageexecution.FieldStageIndex:
		return m.OldStageIndex(ctx)
	case stageexecution.FieldAgentName:
		return m.OldAgentName(ctx)
	case stageexecution.FieldIterationStrategy:
		return m.OldIterationStrategy(ctx)
	case stageexecution.FieldStatus:
		return m.OldStatus(ctx)
	case stageexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case stageexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case stageexecution.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case stageexecution.FieldCurrentIteration:
		return m.OldCurrentIteration(ctx)
	case stageexecution.FieldStageOutput:
		return m.OldStageOutput(ctx)
	case stageexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case stageexecution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StageExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stageexecution.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case stageexecution.FieldStageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageID(v)
		return nil
	case stageexecution.FieldStageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageIndex(v)
		return nil
	case stageexecution.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case stageexecution.FieldIterationStrategy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIterationStrategy(v)
		return nil
	case stageexecution.FieldStatus:
		v, ok := value.(stageexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case stageexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case stageexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case stageexecution.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case stageexecution.FieldCurrentIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentIteration(v)
		return nil
	case stageexecution.FieldStageOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageOutput(v)
		return nil
	case stageexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case stageexecution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StageExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StageExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addstage_index != nil {
		fields = append(fields, stageexecution.FieldStageIndex)
	}
	if m.addduration_ms != nil {
		fields = append(fields, stageexecution.FieldDurationMs)
	}
	if m.addcurrent_iteration != nil {
		fields = append(fields, stageexecution.FieldCurrentIteration)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StageExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stageexecution.FieldStageIndex:
		return m.AddedStageIndex()
	case stageexecution.FieldDurationMs:
		return m.AddedDurationMs()
	case stageexecution.FieldCurrentIteration:
		return m.AddedCurrentIteration()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stageexecution.FieldStageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStageIndex(v)
		return nil
	case stageexecution.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case stageexecution.FieldCurrentIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentIteration(v)
		return nil
	}
	return fmt.Errorf("unknown StageExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StageExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stageexecution.FieldStartedAt) {
		fields = append(fields, stageexecution.FieldStartedAt)
	}
	if m.FieldCleared(stageexecution.FieldCompletedAt) {
		fields = append(fields, stageexecution.FieldCompletedAt)
	}
	if m.FieldCleared(stageexecution.FieldDurationMs) {
		fields = append(fields, stageexecution.FieldDurationMs)
	}
	if m.FieldCleared(stageexecution.FieldCurrentIteration) {
		fields = append(fields, stageexecution.FieldCurrentIteration)
	}
	if m.FieldCleared(stageexecution.FieldStageOutput) {
		fields = append(fields, stageexecution.FieldStageOutput)
	}
	if m.FieldCleared(stageexecution.FieldErrorMessage) {
		fields = append(fields, stageexecution.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StageExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StageExecutionMutation) ClearField(name string) error {
	switch name {
	case stageexecution.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case stageexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case stageexecution.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case stageexecution.FieldCurrentIteration:
		m.ClearCurrentIteration()
		return nil
	case stageexecution.FieldStageOutput:
		m.ClearStageOutput()
		return nil
	case stageexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown StageExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StageExecutionMutation) ResetField(name string) error {
	switch name {
	case stageexecution.FieldSessionID:
		m.ResetSessionID()
		return nil
	case stageexecution.FieldStageID:
		m.ResetStageID()
		return nil
	case stageexecution.FieldStageIndex:
		m.ResetStageIndex()
		return nil
	case stageexecution.FieldAgentName:
		m.ResetAgentName()
		return nil
	case stageexecution.FieldIterationStrategy:
		m.ResetIterationStrategy()
		return nil
	case stageexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case stageexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case stageexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case stageexecution.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case stageexecution.FieldCurrentIteration:
		m.ResetCurrentIteration()
		return nil
	case stageexecution.FieldStageOutput:
		m.ResetStageOutput()
		return nil
	case stageexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case stageexecution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StageExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StageExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.session != nil {
		edges = append(edges, stageexecution.EdgeSession)
	}
	if m.timeline_events != nil {
		edges = append(edges, stageexecution.EdgeTimelineEvents)
	}
	if m.llm_interactions != nil {
		edges = append(edges, stageexecution.EdgeLlmInteractions)
	}
	if m.mcp_interactions != nil {
		edges = append(edges, stageexecution.EdgeMcpInteractions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StageExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case stageexecution.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case stageexecution.EdgeTimelineEvents:
		ids := make([]ent.Value, 0, len(m.timeline_events))
		for id := range m.timeline_events {
			ids = append(ids, id)
		}
		return ids
	case stageexecution.EdgeLlmInteractions:
		ids := make([]ent.Value, 0, len(m.llm_interactions))
		for id := range m.llm_interactions {
			ids = append(ids, id)
		}
		return ids
	case stageexecution.EdgeMcpInteractions:
		ids := make([]ent.Value, 0, len(m.mcp_interactions))
		for id := range m.mcp_interactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StageExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedtimeline_events != nil {
		edges = append(edges, stageexecution.EdgeTimelineEvents)
	}
	if m.removedllm_interactions != nil {
		edges = append(edges, stageexecution.EdgeLlmInteractions)
	}
	if m.removedmcp_interactions != nil {
		edges = append(edges, stageexecution.EdgeMcpInteractions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StageExecutionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case stageexecution.EdgeTimelineEvents:
		ids := make([]ent.Value, 0, len(m.removedtimeline_events))
		for id := range m.removedtimeline_events {
			ids = append(ids, id)
		}
		return ids
	case stageexecution.EdgeLlmInteractions:
		ids := make([]ent.Value, 0, len(m.removedllm_interactions))
		for id := range m.removedllm_interactions {
			ids = append(ids, id)
		}
		return ids
	case stageexecution.EdgeMcpInteractions:
		ids := make([]ent.Value, 0, len(m.removedmcp_interactions))
		for id := range m.removedmcp_interactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StageExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedsession {
		edges = append(edges, stageexecution.EdgeSession)
	}
	if m.clearedtimeline_events {
		edges = append(edges, stageexecution.EdgeTimelineEvents)
	}
	if m.clearedllm_interactions {
		edges = append(edges, stageexecution.EdgeLlmInteractions)
	}
	if m.clearedmcp_interactions {
		edges = append(edges, stageexecution.EdgeMcpInteractions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StageExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case stageexecution.EdgeSession:
		return m.clearedsession
	case stageexecution.EdgeTimelineEvents:
		return m.clearedtimeline_events
	case stageexecution.EdgeLlmInteractions:
		return m.clearedllm_interactions
	case stageexecution.EdgeMcpInteractions:
		return m.clearedmcp_interactions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StageExecutionMutation) ClearEdge(name string) error {
	switch name {
	case stageexecution.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown StageExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StageExecutionMutation) ResetEdge(name string) error {
	switch name {
	case stageexecution.EdgeSession:
		m.ResetSession()
		return nil
	case stageexecution.EdgeTimelineEvents:
		m.ResetTimelineEvents()
		return nil
	case stageexecution.EdgeLlmInteractions:
		m.ResetLlmInteractions()
		return nil
	case stageexecution.EdgeMcpInteractions:
		m.ResetMcpInteractions()
		return nil
	}
	return fmt.Errorf("unknown StageExecution edge %s", name)
}

// TimelineEventMutation represents an operation that mutates the TimelineEvent nodes in the graph.
type TimelineEventMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	sequence_number        *int
	addsequence_number     *int
	created_at             *time.Time
	updated_at             *time.Time
	event_type             *timelineevent.EventType
	status                 *timelineevent.Status
	content                *string
	metadata               *map[string]interface{}
	clearedFields          map[string]struct{}
	session                *string
	clearedsession         bool
	stage_execution        *string
	clearedstage_execution bool
	llm_interaction        *string
	clearedllm_interaction bool
	mcp_interaction        *string
	clearedmcp_interaction bool
	done                   bool
	oldValue               func(context.Context) (*TimelineEvent, error)
	predicates             []predicate.TimelineEvent
}

var _ ent.Mutation = (*TimelineEventMutation)(nil)

// timelineeventOption allows management of the mutation configuration using functional options.
type timelineeventOption func(*TimelineEventMutation)

// newTimelineEventMutation creates new mutation for the TimelineEvent entity.
func newTimelineEventMutation(c config, op Op, opts ...timelineeventOption) *TimelineEventMutation {
	m := &TimelineEventMutation{
		config:        c,
		op:            op,
		typ:           TypeTimelineEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTimelineEventID sets the ID field of the mutation.
func withTimelineEventID(id string) timelineeventOption {
	return func(m *TimelineEventMutation) {
		var (
			err   error
			once  sync.Once
			value *TimelineEvent
		)
		m.oldValue = func(ctx context.Context) (*TimelineEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TimelineEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTimelineEvent sets the old TimelineEvent of the mutation.
func withTimelineEvent(node *TimelineEvent) timelineeventOption {
	return func(m *TimelineEventMutation) {
		m.oldValue = func(context.Context) (*TimelineEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TimelineEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TimelineEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TimelineEvent entities.
func (m *TimelineEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TimelineEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TimelineEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TimelineEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *TimelineEventMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *TimelineEventMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the TimelineEvent entity.
// If the TimelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
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
func (m *TimelineEventMutation) ResetSessionID() {
	m.session = nil
}

// SetExecutionID sets the "execution_id" field.
func (m *TimelineEventMutation) SetExecutionID(s string) {
	m.stage_execution = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *TimelineEventMutation) ExecutionID() (r string, exists bool) {
	v := m.stage_execution
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the TimelineEvent entity.
// If the TimelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEventMutation) OldExecutionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ClearExecutionID clears the value of the "execution_id" field.
func (m *TimelineEventMutation) ClearExecutionID() {
	m.stage_execution = nil
	m.clearedFields[timelineevent.FieldExecutionID] = struct{}{}
}

// ExecutionIDCleared returns if the "execution_id" field was cleared in this mutation.
func (m *TimelineEventMutation) ExecutionIDCleared() bool {
	_, ok := m.clearedFields[timelineevent.FieldExecutionID]
	return ok
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *TimelineEventMutation) ResetExecutionID() {
	m.stage_execution = nil
	delete(m.clearedFields, timelineevent.FieldExecutionID)
}

// SetSequenceNumber sets the "sequence_number" field.
func (m *TimelineEventMutation) SetSequenceNumber(i int) {
	m.sequence_number = &i
	m.addsequence_number = nil
}

// SequenceNumber returns the value of the "sequence_number" field in the mutation.
func (m *TimelineEventMutation) SequenceNumber() (r int, exists bool) {
	v := m.sequence_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceNumber returns the old "sequence_number" field's value of the TimelineEvent entity.
// If the TimelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEventMutation) OldSequenceNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceNumber: %w", err)
	}
	return oldValue.SequenceNumber, nil
}

// AddSequenceNumber adds i to the "sequence_number" field.
func (m *TimelineEventMutation) AddSequenceNumber(i int) {
	if m.addsequence_number != nil {
		*m.addsequence_number += i
	} else {
		m.addsequence_number = &i
	}
}

// AddedSequenceNumber returns the value that was added to the "sequence_number" field in this mutation.
func (m *TimelineEventMutation) AddedSequenceNumber() (r int, exists bool) {
	v := m.addsequence_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequenceNumber resets all changes to the "sequence_number" field.
func (m *TimelineEventMutation) ResetSequenceNumber() {
	m.sequence_number = nil
	m.addsequence_number = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TimelineEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TimelineEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TimelineEvent entity.
// If the TimelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TimelineEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TimelineEventMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TimelineEventMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TimelineEvent entity.
// If the TimelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEventMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TimelineEventMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetEventType sets the "event_type" field.
func (m *TimelineEventMutation) SetEventType(tt timelineevent.EventType) {
	m.event_type = &tt
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *TimelineEventMutation) EventType() (r timelineevent.EventType, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the TimelineEvent entity.
// If the TimelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEventMutation) OldEventType(ctx context.Context) (v timelineevent.EventType, err error) {
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
func (m *TimelineEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetStatus sets the "status" field.
func (m *TimelineEventMutation) SetStatus(t timelineevent.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TimelineEventMutation) Status() (r timelineevent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TimelineEvent entity.
// If the TimelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEventMutation) OldStatus(ctx context.Context) (v timelineevent.Status, err error) {
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
func (m *TimelineEventMutation) ResetStatus() {
	m.status = nil
}

// SetContent sets the "content" field.
func (m *TimelineEventMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *TimelineEventMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the TimelineEvent entity.
// If the TimelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEventMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *TimelineEventMutation) ResetContent() {
	m.content = nil
}

// SetMetadata sets the "metadata" field.
func (m *TimelineEventMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *TimelineEventMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the TimelineEvent entity.
// If the TimelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEventMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *TimelineEventMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[timelineevent.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *TimelineEventMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[timelineevent.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *TimelineEventMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, timelineevent.FieldMetadata)
}

// SetLlmInteractionID sets the "llm_interaction_id" field.
func (m *TimelineEventMutation) SetLlmInteractionID(s string) {
	m.llm_interaction = &s
}

// LlmInteractionID returns the value of the "llm_interaction_id" field in the mutation.
func (m *TimelineEventMutation) LlmInteractionID() (r string, exists bool) {
	v := m.llm_interaction
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmInteractionID returns the old "llm_interaction_id" field's value of the TimelineEvent entity.
// If the TimelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEventMutation) OldLlmInteractionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmInteractionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmInteractionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmInteractionID: %w", err)
	}
	return oldValue.LlmInteractionID, nil
}

// ClearLlmInteractionID clears the value of the "llm_interaction_id" field.
func (m *TimelineEventMutation) ClearLlmInteractionID() {
	m.llm_interaction = nil
	m.clearedFields[timelineevent.FieldLlmInteractionID] = struct{}{}
}

// LlmInteractionIDCleared returns if the "llm_interaction_id" field was cleared in this mutation.
func (m *TimelineEventMutation) LlmInteractionIDCleared() bool {
	_, ok := m.clearedFields[timelineevent.FieldLlmInteractionID]
	return ok
}

// ResetLlmInteractionID resets all changes to the "llm_interaction_id" field.
func (m *TimelineEventMutation) ResetLlmInteractionID() {
	m.llm_interaction = nil
	delete(m.clearedFields, timelineevent.FieldLlmInteractionID)
}

// SetMcpInteractionID sets the "mcp_interaction_id" field.
func (m *TimelineEventMutation) SetMcpInteractionID(s string) {
	m.mcp_interaction = &s
}

// McpInteractionID returns the value of the "mcp_interaction_id" field in the mutation.
func (m *TimelineEventMutation) McpInteractionID() (r string, exists bool) {
	v := m.mcp_interaction
	if v == nil {
		return
	}
	return *v, true
}

// OldMcpInteractionID returns the old "mcp_interaction_id" field's value of the TimelineEvent entity.
// If the TimelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEventMutation) OldMcpInteractionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMcpInteractionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMcpInteractionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMcpInteractionID: %w", err)
	}
	return oldValue.McpInteractionID, nil
}

// ClearMcpInteractionID clears the value of the "mcp_interaction_id" field.
func (m *TimelineEventMutation) ClearMcpInteractionID() {
	m.mcp_interaction = nil
	m.clearedFields[timelineevent.FieldMcpInteractionID] = struct{}{}
}

// McpInteractionIDCleared returns if the "mcp_interaction_id" field was cleared in this mutation.
func (m *TimelineEventMutation) McpInteractionIDCleared() bool {
	_, ok := m.clearedFields[timelineevent.FieldMcpInteractionID]
	return ok
}

// ResetMcpInteractionID resets all changes to the "mcp_interaction_id" field.
func (m *TimelineEventMutation) ResetMcpInteractionID() {
	m.mcp_interaction = nil
	delete(m.clearedFields, timelineevent.FieldMcpInteractionID)
}

// ClearSession clears the "session" edge to the AlertSession entity.
func (m *TimelineEventMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[timelineevent.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the AlertSession entity was cleared.
func (m *TimelineEventMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *TimelineEventMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *TimelineEventMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// SetStageExecutionID sets the "stage_execution" edge to the StageExecution entity by id.
func (m *TimelineEventMutation) SetStageExecutionID(id string) {
	m.stage_execution = &id
}

// ClearStageExecution clears the "stage_execution" edge to the StageExecution entity.
func (m *TimelineEventMutation) ClearStageExecution() {
	m.clearedstage_execution = true
	m.clearedFields[timelineevent.FieldExecutionID] = struct{}{}
}

// StageExecutionCleared reports if the "stage_execution" edge to the StageExecution entity was cleared.
func (m *TimelineEventMutation) StageExecutionCleared() bool {
	return m.ExecutionIDCleared() || m.clearedstage_execution
}

// StageExecutionID returns the "stage_execution" edge ID in the mutation.
func (m *TimelineEventMutation) StageExecutionID() (id string, exists bool) {
	if m.stage_execution != nil {
		return *m.stage_execution, true
	}
	return
}

// StageExecutionIDs returns the "stage_execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StageExecutionID instead. It exists only for internal usage by the builders.
func (m *TimelineEventMutation) StageExecutionIDs() (ids []string) {
	if id := m.stage_execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStageExecution resets all changes to the "stage_execution" edge.
func (m *TimelineEventMutation) ResetStageExecution() {
	m.stage_execution = nil
	m.clearedstage_execution = false
}

// ClearLlmInteraction clears the "llm_interaction" edge to the LLMInteraction entity.
func (m *TimelineEventMutation) ClearLlmInteraction() {
	m.clearedllm_interaction = true
	m.clearedFields[timelineevent.FieldLlmInteractionID] = struct{}{}
}

// LlmInteractionCleared reports if the "llm_interaction" edge to the LLMInteraction entity was cleared.
func (m *TimelineEventMutation) LlmInteractionCleared() bool {
	return m.LlmInteractionIDCleared() || m.clearedllm_interaction
}

// LlmInteractionIDs returns the "llm_interaction" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LlmInteractionID instead. It exists only for internal usage by the builders.
func (m *TimelineEventMutation) LlmInteractionIDs() (ids []string) {
	if id := m.llm_interaction; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLlmInteraction resets all changes to the "llm_interaction" edge.
func (m *TimelineEventMutation) ResetLlmInteraction() {
	m.llm_interaction = nil
	m.clearedllm_interaction = false
}

// ClearMcpInteraction clears the "mcp_interaction" edge to the MCPInteraction entity.
func (m *TimelineEventMutation) ClearMcpInteraction() {
	m.clearedmcp_interaction = true
	m.clearedFields[timelineevent.FieldMcpInteractionID] = struct{}{}
}

// McpInteractionCleared reports if the "mcp_interaction" edge to the MCPInteraction entity was cleared.
func (m *TimelineEventMutation) McpInteractionCleared() bool {
	return m.McpInteractionIDCleared() || m.clearedmcp_interaction
}

// McpInteractionIDs returns the "mcp_interaction" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// McpInteractionID instead. It exists only for internal usage by the builders.
func (m *TimelineEventMutation) McpInteractionIDs() (ids []string) {
	if id := m.mcp_interaction; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMcpInteraction resets all changes to the "mcp_interaction" edge.
func (m *TimelineEventMutation) ResetMcpInteraction() {
	m.mcp_interaction = nil
	m.clearedmcp_interaction = false
}

// Where appends a list predicates to the TimelineEventMutation builder.
func (m *TimelineEventMutation) Where(ps ...predicate.TimelineEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TimelineEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TimelineEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TimelineEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TimelineEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TimelineEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TimelineEvent).
func (m *TimelineEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TimelineEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.session != nil {
		fields = append(fields, timelineevent.FieldSessionID)
	}
	if m.stage_execution != nil {
		fields = append(fields, timelineevent.FieldExecutionID)
	}
	if m.sequence_number != nil {
		fields = append(fields, timelineevent.FieldSequenceNumber)
	}
	if m.created_at != nil {
		fields = append(fields, timelineevent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, timelineevent.FieldUpdatedAt)
	}
	if m.event_type != nil {
		fields = append(fields, timelineevent.FieldEventType)
	}
	if m.status != nil {
		fields = append(fields, timelineevent.FieldStatus)
	}
	if m.content != nil {
		fields = append(fields, timelineevent.FieldContent)
	}
	if m.metadata != nil {
		fields = append(fields, timelineevent.FieldMetadata)
	}
	if m.llm_interaction != nil {
		fields = append(fields, timelineevent.FieldLlmInteractionID)
	}
	if m.mcp_interaction != nil {
		fields = append(fields, timelineevent.FieldMcpInteractionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TimelineEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case timelineevent.FieldSessionID:
		return m.SessionID()
	case timelineevent.FieldExecutionID:
		return m.ExecutionID()
	case timelineevent.FieldSequenceNumber:
		return m.SequenceNumber()
	case timelineevent.FieldCreatedAt:
		return m.CreatedAt()
	case timelineevent.FieldUpdatedAt:
		return m.UpdatedAt()
	case timelineevent.FieldEventType:
		return m.EventType()
	case timelineevent.FieldStatus:
		return m.Status()
	case timelineevent.FieldContent:
		return m.Content()
	case timelineevent.FieldMetadata:
		return m.Metadata()
	case timelineevent.FieldLlmInteractionID:
		return m.LlmInteractionID()
	case timelineevent.FieldMcpInteractionID:
		return m.McpInteractionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TimelineEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case timelineevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case timelineevent.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case timelineevent.FieldSequenceNumber:
		return m.OldSequenceNumber(ctx)
	case timelineevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case timelineevent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case timelineevent.FieldEventType:
		return m.OldEventType(ctx)
	case timelineevent.FieldStatus:
		return m.OldStatus(ctx)
	case timelineevent.FieldContent:
		return m.OldContent(ctx)
	case timelineevent.FieldMetadata:
		return m.OldMetadata(ctx)
	case timelineevent.FieldLlmInteractionID:
		return m.OldLlmInteractionID(ctx)
	case timelineevent.FieldMcpInteractionID:
		return m.OldMcpInteractionID(ctx)
	}
	return nil, fmt.Errorf("unknown TimelineEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TimelineEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case timelineevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case timelineevent.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case timelineevent.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceNumber(v)
		return nil
	case timelineevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case timelineevent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case timelineevent.FieldEventType:
		v, ok := value.(timelineevent.EventType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case timelineevent.FieldStatus:
		v, ok := value.(timelineevent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case timelineevent.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case timelineevent.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case timelineevent.FieldLlmInteractionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmInteractionID(v)
		return nil
	case timelineevent.FieldMcpInteractionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMcpInteractionID(v)
		return nil
	}
	return fmt.Errorf("unknown TimelineEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TimelineEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence_number != nil {
		fields = append(fields, timelineevent.FieldSequenceNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TimelineEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case timelineevent.FieldSequenceNumber:
		return m.AddedSequenceNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TimelineEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case timelineevent.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceNumber(v)
		return nil
	}
	return fmt.Errorf("unknown TimelineEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TimelineEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(timelineevent.FieldExecutionID) {
		fields = append(fields, timelineevent.FieldExecutionID)
	}
	if m.FieldCleared(timelineevent.FieldMetadata) {
		fields = append(fields, timelineevent.FieldMetadata)
	}
	if m.FieldCleared(timelineevent.FieldLlmInteractionID) {
		fields = append(fields, timelineevent.FieldLlmInteractionID)
	}
	if m.FieldCleared(timelineevent.FieldMcpInteractionID) {
		fields = append(fields, timelineevent.FieldMcpInteractionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TimelineEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TimelineEventMutation) ClearField(name string) error {
	switch name {
	case timelineevent.FieldExecutionID:
		m.ClearExecutionID()
		return nil
	case timelineevent.FieldMetadata:
		m.ClearMetadata()
		return nil
	case timelineevent.FieldLlmInteractionID:
		m.ClearLlmInteractionID()
		return nil
	case timelineevent.FieldMcpInteractionID:
		m.ClearMcpInteractionID()
		return nil
	}
	return fmt.Errorf("unknown TimelineEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TimelineEventMutation) ResetField(name string) error {
	switch name {
	case timelineevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case timelineevent.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case timelineevent.FieldSequenceNumber:
		m.ResetSequenceNumber()
		return nil
	case timelineevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case timelineevent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case timelineevent.FieldEventType:
		m.ResetEventType()
		return nil
	case timelineevent.FieldStatus:
		m.ResetStatus()
		return nil
	case timelineevent.FieldContent:
		m.ResetContent()
		return nil
	case timelineevent.FieldMetadata:
		m.ResetMetadata()
		return nil
	case timelineevent.FieldLlmInteractionID:
		m.ResetLlmInteractionID()
		return nil
	case timelineevent.FieldMcpInteractionID:
		m.ResetMcpInteractionID()
		return nil
	}
	return fmt.Errorf("unknown TimelineEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TimelineEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.session != nil {
		edges = append(edges, timelineevent.EdgeSession)
	}
	if m.stage_execution != nil {
		edges = append(edges, timelineevent.EdgeStageExecution)
	}
	if m.llm_interaction != nil {
		edges = append(edges, timelineevent.EdgeLlmInteraction)
	}
	if m.mcp_interaction != nil {
		edges = append(edges, timelineevent.EdgeMcpInteraction)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TimelineEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case timelineevent.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case timelineevent.EdgeStageExecution:
		if id := m.stage_execution; id != nil {
			return []ent.Value{*id}
		}
	case timelineevent.EdgeLlmInteraction:
		if id := m.llm_interaction; id != nil {
			return []ent.Value{*id}
		}
	case timelineevent.EdgeMcpInteraction:
		if id := m.mcp_interaction; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TimelineEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TimelineEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TimelineEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedsession {
		edges = append(edges, timelineevent.EdgeSession)
	}
	if m.clearedstage_execution {
		edges = append(edges, timelineevent.EdgeStageExecution)
	}
	if m.clearedllm_interaction {
		edges = append(edges, timelineevent.EdgeLlmInteraction)
	}
	if m.clearedmcp_interaction {
		edges = append(edges, timelineevent.EdgeMcpInteraction)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TimelineEventMutation) EdgeCleared(name string) bool {
	switch name {
	case timelineevent.EdgeSession:
		return m.clearedsession
	case timelineevent.EdgeStageExecution:
		return m.clearedstage_execution
	case timelineevent.EdgeLlmInteraction:
		return m.clearedllm_interaction
	case timelineevent.EdgeMcpInteraction:
		return m.clearedmcp_interaction
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TimelineEventMutation) ClearEdge(name string) error {
	switch name {
	case timelineevent.EdgeSession:
		m.ClearSession()
		return nil
	case timelineevent.EdgeStageExecution:
		m.ClearStageExecution()
		return nil
	case timelineevent.EdgeLlmInteraction:
		m.ClearLlmInteraction()
		return nil
	case timelineevent.EdgeMcpInteraction:
		m.ClearMcpInteraction()
		return nil
	}
	return fmt.Errorf("unknown TimelineEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TimelineEventMutation) ResetEdge(name string) error {
	switch name {
	case timelineevent.EdgeSession:
		m.ResetSession()
		return nil
	case timelineevent.EdgeStageExecution:
		m.ResetStageExecution()
		return nil
	case timelineevent.EdgeLlmInteraction:
		m.ResetLlmInteraction()
		return nil
	case timelineevent.EdgeMcpInteraction:
		m.ResetMcpInteraction()
		return nil
	}
	return fmt.Errorf("unknown TimelineEvent edge %s", name)
}
