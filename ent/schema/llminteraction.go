package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMInteraction holds the schema definition for the LLMInteraction entity.
// Full technical details for LLM calls (observability and resume).
type LLMInteraction struct {
	ent.Schema
}

// Fields of the LLMInteraction.
func (LLMInteraction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("interaction_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("execution_id").
			Immutable().
			Comment("Which stage execution"),

		// Timing
		field.Time("created_at").
			Default(time.Now).
			Immutable(),

		// Interaction Details
		field.Enum("interaction_type").
			Values("investigation", "final_analysis", "summarization"),
		field.String("model_name").
			Comment("e.g., 'gemini-2.5-pro'"),
		field.String("provider").
			Comment("e.g., 'google', 'anthropic'"),

		// Complete cumulative conversation at the end of this call.
		// Each interaction's conversation extends the previous one, so the
		// latest row alone is enough to rebuild agent state on resume.
		field.JSON("conversation", []map[string]interface{}{}).
			Comment("Ordered messages: role, content, tool_calls, tool_call_id, thought_signature"),
		field.Text("thinking_content").
			Optional().
			Nillable().
			Comment("Native thinking text, when the provider exposes it"),

		// Metrics & Result
		field.Int("input_tokens").
			Optional().
			Nillable(),
		field.Int("output_tokens").
			Optional().
			Nillable(),
		field.Int("total_tokens").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable().
			Comment("null = success, not-null = failed"),
	}
}

// Edges of the LLMInteraction.
func (LLMInteraction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", AlertSession.Type).
			Ref("llm_interactions").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.From("stage_execution", StageExecution.Type).
			Ref("llm_interactions").
			Field("execution_id").
			Unique().
			Required().
			Immutable(),
		edge.To("timeline_events", TimelineEvent.Type),
	}
}

// Indexes of the LLMInteraction.
func (LLMInteraction) Indexes() []ent.Index {
	return []ent.Index{
		// Stage's LLM calls chronologically
		index.Fields("execution_id", "created_at"),
		// Session-wide trace queries
		index.Fields("session_id", "created_at"),
	}
}
