// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AlertSessionsColumns holds the columns for the "alert_sessions" table.
	AlertSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "alert_data", Type: field.TypeString, Size: 2147483647},
		{Name: "alert_type", Type: field.TypeString},
		{Name: "fingerprint", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "paused", "cancelling", "completed", "failed", "cancelled", "timed_out"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "final_analysis", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "pause_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "author", Type: field.TypeString, Nullable: true},
		{Name: "runbook_url", Type: field.TypeString, Nullable: true},
		{Name: "mcp_selection", Type: field.TypeJSON, Nullable: true},
		{Name: "chain_id", Type: field.TypeString},
		{Name: "current_stage_index", Type: field.TypeInt, Nullable: true},
		{Name: "current_stage_id", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// AlertSessionsTable holds the schema information for the "alert_sessions" table.
	AlertSessionsTable = &schema.Table{
		Name:       "alert_sessions",
		Columns:    AlertSessionsColumns,
		PrimaryKey: []*schema.Column{AlertSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "alertsession_status",
				Unique:  false,
				Columns: []*schema.Column{AlertSessionsColumns[4]},
			},
			{
				Name:    "alertsession_alert_type",
				Unique:  false,
				Columns: []*schema.Column{AlertSessionsColumns[2]},
			},
			{
				Name:    "alertsession_chain_id",
				Unique:  false,
				Columns: []*schema.Column{AlertSessionsColumns[14]},
			},
			{
				Name:    "alertsession_fingerprint_status",
				Unique:  false,
				Columns: []*schema.Column{AlertSessionsColumns[3], AlertSessionsColumns[4]},
			},
			{
				Name:    "alertsession_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{AlertSessionsColumns[4], AlertSessionsColumns[5]},
			},
			{
				Name:    "alertsession_status_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{AlertSessionsColumns[4], AlertSessionsColumns[18]},
			},
			{
				Name:    "alertsession_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{AlertSessionsColumns[19]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_alert_sessions_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{AlertSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[0]},
			},
			{
				Name:    "event_session_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3]},
			},
		},
	}
	// LlmInteractionsColumns holds the columns for the "llm_interactions" table.
	LlmInteractionsColumns = []*schema.Column{
		{Name: "interaction_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "interaction_type", Type: field.TypeEnum, Enums: []string{"investigation", "final_analysis", "summarization"}},
		{Name: "model_name", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString},
		{Name: "conversation", Type: field.TypeJSON},
		{Name: "thinking_content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "input_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "output_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "total_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "execution_id", Type: field.TypeString},
	}
	// LlmInteractionsTable holds the schema information for the "llm_interactions" table.
	LlmInteractionsTable = &schema.Table{
		Name:       "llm_interactions",
		Columns:    LlmInteractionsColumns,
		PrimaryKey: []*schema.Column{LlmInteractionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "llm_interactions_alert_sessions_llm_interactions",
				Columns:    []*schema.Column{LlmInteractionsColumns[12]},
				RefColumns: []*schema.Column{AlertSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "llm_interactions_stage_executions_llm_interactions",
				Columns:    []*schema.Column{LlmInteractionsColumns[13]},
				RefColumns: []*schema.Column{StageExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "llminteraction_execution_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmInteractionsColumns[13], LlmInteractionsColumns[1]},
			},
			{
				Name:    "llminteraction_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmInteractionsColumns[12], LlmInteractionsColumns[1]},
			},
		},
	}
	// McpInteractionsColumns holds the columns for the "mcp_interactions" table.
	McpInteractionsColumns = []*schema.Column{
		{Name: "interaction_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "interaction_type", Type: field.TypeEnum, Enums: []string{"tool_call", "tool_list"}},
		{Name: "server_name", Type: field.TypeString},
		{Name: "tool_name", Type: field.TypeString, Nullable: true},
		{Name: "tool_arguments", Type: field.TypeJSON, Nullable: true},
		{Name: "tool_result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "available_tools", Type: field.TypeJSON, Nullable: true},
		{Name: "masked", Type: field.TypeBool, Default: false},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "execution_id", Type: field.TypeString},
	}
	// McpInteractionsTable holds the schema information for the "mcp_interactions" table.
	McpInteractionsTable = &schema.Table{
		Name:       "mcp_interactions",
		Columns:    McpInteractionsColumns,
		PrimaryKey: []*schema.Column{McpInteractionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "mcp_interactions_alert_sessions_mcp_interactions",
				Columns:    []*schema.Column{McpInteractionsColumns[11]},
				RefColumns: []*schema.Column{AlertSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "mcp_interactions_stage_executions_mcp_interactions",
				Columns:    []*schema.Column{McpInteractionsColumns[12]},
				RefColumns: []*schema.Column{StageExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "mcpinteraction_execution_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{McpInteractionsColumns[12], McpInteractionsColumns[1]},
			},
			{
				Name:    "mcpinteraction_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{McpInteractionsColumns[11], McpInteractionsColumns[1]},
			},
		},
	}
	// StageExecutionsColumns holds the columns for the "stage_executions" table.
	StageExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "stage_id", Type: field.TypeString},
		{Name: "stage_index", Type: field.TypeInt},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "iteration_strategy", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "active", "paused", "completed", "failed", "cancelled", "timed_out"}, Default: "pending"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "current_iteration", Type: field.TypeInt, Nullable: true},
		{Name: "stage_output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// StageExecutionsTable holds the schema information for the "stage_executions" table.
	StageExecutionsTable = &schema.Table{
		Name:       "stage_executions",
		Columns:    StageExecutionsColumns,
		PrimaryKey: []*schema.Column{StageExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "stage_executions_alert_sessions_stage_executions",
				Columns:    []*schema.Column{StageExecutionsColumns[13]},
				RefColumns: []*schema.Column{AlertSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stageexecution_session_id_stage_index",
				Unique:  true,
				Columns: []*schema.Column{StageExecutionsColumns[13], StageExecutionsColumns[2]},
			},
			{
				Name:    "stageexecution_session_id",
				Unique:  false,
				Columns: []*schema.Column{StageExecutionsColumns[13]},
			},
		},
	}
	// TimelineEventsColumns holds the columns for the "timeline_events" table.
	TimelineEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "sequence_number", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"llm_thinking", "llm_tool_call", "mcp_tool_summary", "final_analysis", "error"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"streaming", "completed", "failed", "cancelled", "timed_out"}, Default: "streaming"},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "llm_interaction_id", Type: field.TypeString, Nullable: true},
		{Name: "mcp_interaction_id", Type: field.TypeString, Nullable: true},
		{Name: "execution_id", Type: field.TypeString, Nullable: true},
	}
	// TimelineEventsTable holds the schema information for the "timeline_events" table.
	TimelineEventsTable = &schema.Table{
		Name:       "timeline_events",
		Columns:    TimelineEventsColumns,
		PrimaryKey: []*schema.Column{TimelineEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "timeline_events_alert_sessions_timeline_events",
				Columns:    []*schema.Column{TimelineEventsColumns[8]},
				RefColumns: []*schema.Column{AlertSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "timeline_events_llm_interactions_timeline_events",
				Columns:    []*schema.Column{TimelineEventsColumns[9]},
				RefColumns: []*schema.Column{LlmInteractionsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "timeline_events_mcp_interactions_timeline_events",
				Columns:    []*schema.Column{TimelineEventsColumns[10]},
				RefColumns: []*schema.Column{McpInteractionsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "timeline_events_stage_executions_timeline_events",
				Columns:    []*schema.Column{TimelineEventsColumns[11]},
				RefColumns: []*schema.Column{StageExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "timelineevent_session_id_sequence_number",
				Unique:  false,
				Columns: []*schema.Column{TimelineEventsColumns[8], TimelineEventsColumns[1]},
			},
			{
				Name:    "timelineevent_execution_id_sequence_number",
				Unique:  false,
				Columns: []*schema.Column{TimelineEventsColumns[11], TimelineEventsColumns[1]},
			},
			{
				Name:    "timelineevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{TimelineEventsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AlertSessionsTable,
		EventsTable,
		LlmInteractionsTable,
		McpInteractionsTable,
		StageExecutionsTable,
		TimelineEventsTable,
	}
)

func init() {
	EventsTable.ForeignKeys[0].RefTable = AlertSessionsTable
	LlmInteractionsTable.ForeignKeys[0].RefTable = AlertSessionsTable
	LlmInteractionsTable.ForeignKeys[1].RefTable = StageExecutionsTable
	McpInteractionsTable.ForeignKeys[0].RefTable = AlertSessionsTable
	McpInteractionsTable.ForeignKeys[1].RefTable = StageExecutionsTable
	StageExecutionsTable.ForeignKeys[0].RefTable = AlertSessionsTable
	TimelineEventsTable.ForeignKeys[0].RefTable = AlertSessionsTable
	TimelineEventsTable.ForeignKeys[1].RefTable = LlmInteractionsTable
	TimelineEventsTable.ForeignKeys[2].RefTable = McpInteractionsTable
	TimelineEventsTable.ForeignKeys[3].RefTable = StageExecutionsTable
}
