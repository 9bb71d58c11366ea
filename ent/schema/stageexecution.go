package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StageExecution holds the schema definition for the StageExecution entity.
// One row per chain stage run by an agent within a session.
type StageExecution struct {
	ent.Schema
}

// Fields of the StageExecution.
func (StageExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),

		// Stage Configuration
		field.String("stage_id").
			Comment("Configured stage name, e.g. 'investigation', 'synthesis'"),
		field.Int("stage_index").
			Comment("Position in chain: 0, 1, 2..."),
		field.String("agent_name").
			Comment("e.g., 'KubernetesAgent'"),
		field.String("iteration_strategy").
			Comment("e.g., 'react', 'native-thinking' (for observability)"),

		// Status & Timing
		field.Enum("status").
			Values("pending", "active", "paused", "completed", "failed", "cancelled", "timed_out").
			Default("pending"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.Int("current_iteration").
			Optional().
			Nillable().
			Comment("Iterations completed so far; resume restarts from here"),
		field.Text("stage_output").
			Optional().
			Nillable().
			Comment("Agent's final text for this stage, fed to later stages"),
		field.String("error_message").
			Optional().
			Nillable().
			Comment("Error details if failed"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the StageExecution.
func (StageExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", AlertSession.Type).
			Ref("stage_executions").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.To("timeline_events", TimelineEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("llm_interactions", LLMInteraction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("mcp_interactions", MCPInteraction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the StageExecution.
func (StageExecution) Indexes() []ent.Index {
	return []ent.Index{
		// Unique constraint for stage ordering within session
		index.Fields("session_id", "stage_index").
			Unique(),
		// Session-wide queries
		index.Fields("session_id"),
	}
}
