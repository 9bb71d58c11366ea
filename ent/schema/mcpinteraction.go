package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MCPInteraction holds the schema definition for the MCPInteraction entity.
// Full technical details for MCP tool calls (observability).
type MCPInteraction struct {
	ent.Schema
}

// Fields of the MCPInteraction.
func (MCPInteraction) Fields() []ent.Field {
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
			Values("tool_call", "tool_list"),
		field.String("server_name").
			Comment("e.g., 'kubernetes-server'"),
		field.String("tool_name").
			Optional().
			Nillable().
			Comment("e.g., 'pods_get'"),

		// Full Details
		field.JSON("tool_arguments", map[string]interface{}{}).
			Optional().
			Comment("Input parameters"),
		field.Text("tool_result").
			Optional().
			Nillable().
			Comment("Masked tool output, truncated for storage"),
		field.JSON("available_tools", []interface{}{}).
			Optional().
			Comment("For tool_list type"),
		field.Bool("masked").
			Default(false).
			Comment("Whether masking rewrote the stored result"),

		// Result & Timing
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable().
			Comment("null = success, not-null = failed"),
	}
}

// Edges of the MCPInteraction.
func (MCPInteraction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", AlertSession.Type).
			Ref("mcp_interactions").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.From("stage_execution", StageExecution.Type).
			Ref("mcp_interactions").
			Field("execution_id").
			Unique().
			Required().
			Immutable(),
		edge.To("timeline_events", TimelineEvent.Type),
	}
}

// Indexes of the MCPInteraction.
func (MCPInteraction) Indexes() []ent.Index {
	return []ent.Index{
		// Stage's MCP calls chronologically
		index.Fields("execution_id", "created_at"),
		// Session-wide trace queries
		index.Fields("session_id", "created_at"),
	}
}
