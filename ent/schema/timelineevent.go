package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TimelineEvent holds the schema definition for the TimelineEvent entity.
// User-facing investigation timeline, streamed to subscribers in real time.
type TimelineEvent struct {
	ent.Schema
}

// Fields of the TimelineEvent.
func (TimelineEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("execution_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Stage grouping — nil for session-level events"),

		// Timeline Ordering
		field.Int("sequence_number").
			Comment("Order in timeline"),

		// Timestamps
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update (for streaming)"),

		// Event types and their semantics:
		//   llm_thinking     — LLM reasoning content. Covers both native model
		//                      thinking (metadata.source = "native") and thoughts
		//                      parsed from ReAct text (metadata.source = "react").
		//   llm_tool_call    — Tool call lifecycle event. Created with status
		//                      "streaming" when the LLM requests a call (metadata:
		//                      server_name, tool_name, arguments), completed with
		//                      the storage-truncated result and is_error.
		//   mcp_tool_summary — Oversized tool result being distilled. Created when
		//                      summarization starts, completed with the summary.
		//   final_analysis   — Agent's final conclusion for the stage or session.
		//   error            — Error during iteration (LLM failure, tool failure).
		field.Enum("event_type").
			Values(
				"llm_thinking",
				"llm_tool_call",
				"mcp_tool_summary",
				"final_analysis",
				"error",
			),
		field.Enum("status").
			Values("streaming", "completed", "failed", "cancelled", "timed_out").
			Default("streaming"),
		field.Text("content").
			Comment("Event content (grows during streaming, updateable on completion)"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Type-specific data (tool_name, server_name, etc.)"),

		// Debug Links (set on completion)
		field.String("llm_interaction_id").
			Optional().
			Nillable().
			Comment("Link to trace details"),
		field.String("mcp_interaction_id").
			Optional().
			Nillable().
			Comment("Link to trace details"),
	}
}

// Edges of the TimelineEvent.
func (TimelineEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", AlertSession.Type).
			Ref("timeline_events").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.From("stage_execution", StageExecution.Type).
			Ref("timeline_events").
			Field("execution_id").
			Unique().
			Immutable(),
		edge.From("llm_interaction", LLMInteraction.Type).
			Ref("timeline_events").
			Field("llm_interaction_id").
			Unique(),
		edge.From("mcp_interaction", MCPInteraction.Type).
			Ref("timeline_events").
			Field("mcp_interaction_id").
			Unique(),
	}
}

// Indexes of the TimelineEvent.
func (TimelineEvent) Indexes() []ent.Index {
	return []ent.Index{
		// Timeline ordering
		index.Fields("session_id", "sequence_number"),
		// Stage timeline grouping (execution_id is nullable; EQ predicates naturally exclude NULLs)
		index.Fields("execution_id", "sequence_number"),
		// Chronological queries
		index.Fields("created_at"),
	}
}
