// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/ent/stageexecution"
)

// StageExecution is the model entity for the StageExecution schema.
type StageExecution struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Configured stage name, e.g. 'investigation', 'synthesis'
	StageID string `json:"stage_id,omitempty"`
	// Position in chain: 0, 1, 2...
	StageIndex int `json:"stage_index,omitempty"`
	// e.g., 'KubernetesAgent'
	AgentName string `json:"agent_name,omitempty"`
	// e.g., 'react', 'native-thinking' (for observability)
	IterationStrategy string `json:"iteration_strategy,omitempty"`
	// Status holds the value of the "status" field.
	Status stageexecution.Status `json:"status,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs *int `json:"duration_ms,omitempty"`
	// Iterations completed so far; resume restarts from here
	CurrentIteration *int `json:"current_iteration,omitempty"`
	// Agent's final text for this stage, fed to later stages
	StageOutput *string `json:"stage_output,omitempty"`
	// Error details if failed
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StageExecutionQuery when eager-loading is set.
	Edges        StageExecutionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StageExecutionEdges holds the relations/edges for other nodes in the graph.
type StageExecutionEdges struct {
	// Session holds the value of the session edge.
	Session *AlertSession `json:"session,omitempty"`
	// TimelineEvents holds the value of the timeline_events edge.
	TimelineEvents []*TimelineEvent `json:"timeline_events,omitempty"`
	// LlmInteractions holds the value of the llm_interactions edge.
	LlmInteractions []*LLMInteraction `json:"llm_interactions,omitempty"`
	// McpInteractions holds the value of the mcp_interactions edge.
	McpInteractions []*MCPInteraction `json:"mcp_interactions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StageExecutionEdges) SessionOrErr() (*AlertSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: alertsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// TimelineEventsOrErr returns the TimelineEvents value or an error if the edge
// was not loaded in eager-loading.
func (e StageExecutionEdges) TimelineEventsOrErr() ([]*TimelineEvent, error) {
	if e.loadedTypes[1] {
		return e.TimelineEvents, nil
	}
	return nil, &NotLoadedError{edge: "timeline_events"}
}

// LlmInteractionsOrErr returns the LlmInteractions value or an error if the edge
// was not loaded in eager-loading.
func (e StageExecutionEdges) LlmInteractionsOrErr() ([]*LLMInteraction, error) {
	if e.loadedTypes[2] {
		return e.LlmInteractions, nil
	}
	return nil, &NotLoadedError{edge: "llm_interactions"}
}

// McpInteractionsOrErr returns the McpInteractions value or an error if the edge
// was not loaded in eager-loading.
func (e StageExecutionEdges) McpInteractionsOrErr() ([]*MCPInteraction, error) {
	if e.loadedTypes[3] {
		return e.McpInteractions, nil
	}
	return nil, &NotLoadedError{edge: "mcp_interactions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StageExecution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stageexecution.FieldStageIndex, stageexecution.FieldDurationMs, stageexecution.FieldCurrentIteration:
			values[i] = new(sql.NullInt64)
		case stageexecution.FieldID, stageexecution.FieldSessionID, stageexecution.FieldStageID, stageexecution.FieldAgentName, stageexecution.FieldIterationStrategy, stageexecution.FieldStatus, stageexecution.FieldStageOutput, stageexecution.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case stageexecution.FieldStartedAt, stageexecution.FieldCompletedAt, stageexecution.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StageExecution fields.
func (_m *StageExecution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stageexecution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case stageexecution.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case stageexecution.FieldStageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_id", values[i])
			} else if value.Valid {
				_m.StageID = value.String
			}
		case stageexecution.FieldStageIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stage_index", values[i])
			} else if value.Valid {
				_m.StageIndex = int(value.Int64)
			}
		case stageexecution.FieldAgentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_name", values[i])
			} else if value.Valid {
				_m.AgentName = value.String
			}
		case stageexecution.FieldIterationStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field iteration_strategy", values[i])
			} else if value.Valid {
				_m.IterationStrategy = value.String
			}
		case stageexecution.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = stageexecution.Status(value.String)
			}
		case stageexecution.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case stageexecution.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case stageexecution.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = new(int)
				*_m.DurationMs = int(value.Int64)
			}
		case stageexecution.FieldCurrentIteration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_iteration", values[i])
			} else if value.Valid {
				_m.CurrentIteration = new(int)
				*_m.CurrentIteration = int(value.Int64)
			}
		case stageexecution.FieldStageOutput:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_output", values[i])
			} else if value.Valid {
				_m.StageOutput = new(string)
				*_m.StageOutput = value.String
			}
		case stageexecution.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case stageexecution.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StageExecution.
// This includes values selected through modifiers, order, etc.
func (_m *StageExecution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the StageExecution entity.
func (_m *StageExecution) QuerySession() *AlertSessionQuery {
	return NewStageExecutionClient(_m.config).QuerySession(_m)
}

// QueryTimelineEvents queries the "timeline_events" edge of the StageExecution entity.
func (_m *StageExecution) QueryTimelineEvents() *TimelineEventQuery {
	return NewStageExecutionClient(_m.config).QueryTimelineEvents(_m)
}

// QueryLlmInteractions queries the "llm_interactions" edge of the StageExecution entity.
func (_m *StageExecution) QueryLlmInteractions() *LLMInteractionQuery {
	return NewStageExecutionClient(_m.config).QueryLlmInteractions(_m)
}

// QueryMcpInteractions queries the "mcp_interactions" edge of the StageExecution entity.
func (_m *StageExecution) QueryMcpInteractions() *MCPInteractionQuery {
	return NewStageExecutionClient(_m.config).QueryMcpInteractions(_m)
}

// Update returns a builder for updating this StageExecution.
// Note that you need to call StageExecution.Unwrap() before calling this method if this StageExecution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StageExecution) Update() *StageExecutionUpdateOne {
	return NewStageExecutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StageExecution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StageExecution) Unwrap() *StageExecution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StageExecution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StageExecution) String() string {
	var builder strings.Builder
	builder.WriteString("StageExecution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("stage_id=")
	builder.WriteString(_m.StageID)
	builder.WriteString(", ")
	builder.WriteString("stage_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.StageIndex))
	builder.WriteString(", ")
	builder.WriteString("agent_name=")
	builder.WriteString(_m.AgentName)
	builder.WriteString(", ")
	builder.WriteString("iteration_strategy=")
	builder.WriteString(_m.IterationStrategy)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
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
	if v := _m.DurationMs; v != nil {
		builder.WriteString("duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CurrentIteration; v != nil {
		builder.WriteString("current_iteration=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.StageOutput; v != nil {
		builder.WriteString("stage_output=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StageExecutions is a parsable slice of StageExecution.
type StageExecutions []*StageExecution
