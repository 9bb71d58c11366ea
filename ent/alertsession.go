// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tarsy-project/tarsy/ent/alertsession"
)

// AlertSession is the model entity for the AlertSession schema.
type AlertSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Original alert payload (full-text searchable)
	AlertData string `json:"alert_data,omitempty"`
	// Alert classification, drives chain routing
	AlertType string `json:"alert_type,omitempty"`
	// Deduplication key: hash of alert_type + canonical payload
	Fingerprint string `json:"fingerprint,omitempty"`
	// Status holds the value of the "status" field.
	Status alertsession.Status `json:"status,omitempty"`
	// When the session was submitted/created
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When the worker started processing (transitioned from pending to in_progress)
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Investigation summary (full-text searchable)
	FinalAnalysis *string `json:"final_analysis,omitempty"`
	// Set while paused: reason, current_iteration, message, paused_at
	PauseMetadata map[string]interface{} `json:"pause_metadata,omitempty"`
	// Author holds the value of the "author" field.
	Author *string `json:"author,omitempty"`
	// RunbookURL holds the value of the "runbook_url" field.
	RunbookURL *string `json:"runbook_url,omitempty"`
	// MCP override config
	McpSelection map[string]interface{} `json:"mcp_selection,omitempty"`
	// Chain identifier (live lookup, no snapshot)
	ChainID string `json:"chain_id,omitempty"`
	// CurrentStageIndex holds the value of the "current_stage_index" field.
	CurrentStageIndex *int `json:"current_stage_index,omitempty"`
	// CurrentStageID holds the value of the "current_stage_id" field.
	CurrentStageID *string `json:"current_stage_id,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// For orphan detection
	LastInteractionAt *time.Time `json:"last_interaction_at,omitempty"`
	// Soft delete for retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AlertSessionQuery when eager-loading is set.
	Edges        AlertSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AlertSessionEdges holds the relations/edges for other nodes in the graph.
type AlertSessionEdges struct {
	// StageExecutions holds the value of the stage_executions edge.
	StageExecutions []*StageExecution `json:"stage_executions,omitempty"`
	// TimelineEvents holds the value of the timeline_events edge.
	TimelineEvents []*TimelineEvent `json:"timeline_events,omitempty"`
	// LlmInteractions holds the value of the llm_interactions edge.
	LlmInteractions []*LLMInteraction `json:"llm_interactions,omitempty"`
	// McpInteractions holds the value of the mcp_interactions edge.
	McpInteractions []*MCPInteraction `json:"mcp_interactions,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// StageExecutionsOrErr returns the StageExecutions value or an error if the edge
// was not loaded in eager-loading.
func (e AlertSessionEdges) StageExecutionsOrErr() ([]*StageExecution, error) {
	if e.loadedTypes[0] {
		return e.StageExecutions, nil
	}
	return nil, &NotLoadedError{edge: "stage_executions"}
}

// TimelineEventsOrErr returns the TimelineEvents value or an error if the edge
// was not loaded in eager-loading.
func (e AlertSessionEdges) TimelineEventsOrErr() ([]*TimelineEvent, error) {
	if e.loadedTypes[1] {
		return e.TimelineEvents, nil
	}
	return nil, &NotLoadedError{edge: "timeline_events"}
}

// LlmInteractionsOrErr returns the LlmInteractions value or an error if the edge
// was not loaded in eager-loading.
func (e AlertSessionEdges) LlmInteractionsOrErr() ([]*LLMInteraction, error) {
	if e.loadedTypes[2] {
		return e.LlmInteractions, nil
	}
	return nil, &NotLoadedError{edge: "llm_interactions"}
}

// McpInteractionsOrErr returns the McpInteractions value or an error if the edge
// was not loaded in eager-loading.
func (e AlertSessionEdges) McpInteractionsOrErr() ([]*MCPInteraction, error) {
	if e.loadedTypes[3] {
		return e.McpInteractions, nil
	}
	return nil, &NotLoadedError{edge: "mcp_interactions"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e AlertSessionEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[4] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AlertSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case alertsession.FieldPauseMetadata, alertsession.FieldMcpSelection:
			values[i] = new([]byte)
		case alertsession.FieldCurrentStageIndex:
			values[i] = new(sql.NullInt64)
		case alertsession.FieldID, alertsession.FieldAlertData, alertsession.FieldAlertType, alertsession.FieldFingerprint, alertsession.FieldStatus, alertsession.FieldErrorMessage, alertsession.FieldFinalAnalysis, alertsession.FieldAuthor, alertsession.FieldRunbookURL, alertsession.FieldChainID, alertsession.FieldCurrentStageID, alertsession.FieldPodID:
			values[i] = new(sql.NullString)
		case alertsession.FieldCreatedAt, alertsession.FieldStartedAt, alertsession.FieldCompletedAt, alertsession.FieldLastInteractionAt, alertsession.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AlertSession fields.
func (_m *AlertSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case alertsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case alertsession.FieldAlertData:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alert_data", values[i])
			} else if value.Valid {
				_m.AlertData = value.String
			}
		case alertsession.FieldAlertType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alert_type", values[i])
			} else if value.Valid {
				_m.AlertType = value.String
			}
		case alertsession.FieldFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fingerprint", values[i])
			} else if value.Valid {
				_m.Fingerprint = value.String
			}
		case alertsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = alertsession.Status(value.String)
			}
		case alertsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case alertsession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case alertsession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case alertsession.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case alertsession.FieldFinalAnalysis:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_analysis", values[i])
			} else if value.Valid {
				_m.FinalAnalysis = new(string)
				*_m.FinalAnalysis = value.String
			}
		case alertsession.FieldPauseMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field pause_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PauseMetadata); err != nil {
					return fmt.Errorf("unmarshal field pause_metadata: %w", err)
				}
			}
		case alertsession.FieldAuthor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author", values[i])
			} else if value.Valid {
				_m.Author = new(string)
				*_m.Author = value.String
			}
		case alertsession.FieldRunbookURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field runbook_url", values[i])
			} else if value.Valid {
				_m.RunbookURL = new(string)
				*_m.RunbookURL = value.String
			}
		case alertsession.FieldMcpSelection:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field mcp_selection", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.McpSelection); err != nil {
					return fmt.Errorf("unmarshal field mcp_selection: %w", err)
				}
			}
		case alertsession.FieldChainID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chain_id", values[i])
			} else if value.Valid {
				_m.ChainID = value.String
			}
		case alertsession.FieldCurrentStageIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_stage_index", values[i])
			} else if value.Valid {
				_m.CurrentStageIndex = new(int)
				*_m.CurrentStageIndex = int(value.Int64)
			}
		case alertsession.FieldCurrentStageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_stage_id", values[i])
			} else if value.Valid {
				_m.CurrentStageID = new(string)
				*_m.CurrentStageID = value.String
			}
		case alertsession.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case alertsession.FieldLastInteractionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_interaction_at", values[i])
			} else if value.Valid {
				_m.LastInteractionAt = new(time.Time)
				*_m.LastInteractionAt = value.Time
			}
		case alertsession.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AlertSession.
// This includes values selected through modifiers, order, etc.
func (_m *AlertSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStageExecutions queries the "stage_executions" edge of the AlertSession entity.
func (_m *AlertSession) QueryStageExecutions() *StageExecutionQuery {
	return NewAlertSessionClient(_m.config).QueryStageExecutions(_m)
}

// QueryTimelineEvents queries the "timeline_events" edge of the AlertSession entity.
func (_m *AlertSession) QueryTimelineEvents() *TimelineEventQuery {
	return NewAlertSessionClient(_m.config).QueryTimelineEvents(_m)
}

// QueryLlmInteractions queries the "llm_interactions" edge of the AlertSession entity.
func (_m *AlertSession) QueryLlmInteractions() *LLMInteractionQuery {
	return NewAlertSessionClient(_m.config).QueryLlmInteractions(_m)
}

// QueryMcpInteractions queries the "mcp_interactions" edge of the AlertSession entity.
func (_m *AlertSession) QueryMcpInteractions() *MCPInteractionQuery {
	return NewAlertSessionClient(_m.config).QueryMcpInteractions(_m)
}

// QueryEvents queries the "events" edge of the AlertSession entity.
func (_m *AlertSession) QueryEvents() *EventQuery {
	return NewAlertSessionClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this AlertSession.
// Note that you need to call AlertSession.Unwrap() before calling this method if this AlertSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AlertSession) Update() *AlertSessionUpdateOne {
	return NewAlertSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AlertSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AlertSession) Unwrap() *AlertSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AlertSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AlertSession) String() string {
	var builder strings.Builder
	builder.WriteString("AlertSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("alert_data=")
	builder.WriteString(_m.AlertData)
	builder.WriteString(", ")
	builder.WriteString("alert_type=")
	builder.WriteString(_m.AlertType)
	builder.WriteString(", ")
	builder.WriteString("fingerprint=")
	builder.WriteString(_m.Fingerprint)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FinalAnalysis; v != nil {
		builder.WriteString("final_analysis=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("pause_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.PauseMetadata))
	builder.WriteString(", ")
	if v := _m.Author; v != nil {
		builder.WriteString("author=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RunbookURL; v != nil {
		builder.WriteString("runbook_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("mcp_selection=")
	builder.WriteString(fmt.Sprintf("%v", _m.McpSelection))
	builder.WriteString(", ")
	builder.WriteString("chain_id=")
	builder.WriteString(_m.ChainID)
	builder.WriteString(", ")
	if v := _m.CurrentStageIndex; v != nil {
		builder.WriteString("current_stage_index=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CurrentStageID; v != nil {
		builder.WriteString("current_stage_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastInteractionAt; v != nil {
		builder.WriteString("last_interaction_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// AlertSessions is a parsable slice of AlertSession.
type AlertSessions []*AlertSession
