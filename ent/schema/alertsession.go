package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AlertSession holds the schema definition for the AlertSession entity.
type AlertSession struct {
	ent.Schema
}

// Mixin for custom ID field.
func (AlertSession) Mixin() []ent.Mixin {
	return []ent.Mixin{}
}

// Fields of the AlertSession.
func (AlertSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.Text("alert_data").
			Comment("Original alert payload (full-text searchable)"),
		field.String("alert_type").
			Comment("Alert classification, drives chain routing"),
		field.String("fingerprint").
			Comment("Deduplication key: hash of alert_type + canonical payload"),
		field.Enum("status").
			Values("pending", "in_progress", "paused", "cancelling", "completed", "failed", "cancelled", "timed_out").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Comment("When the session was submitted/created"),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When the worker started processing (transitioned from pending to in_progress)"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Text("final_analysis").
			Optional().
			Nillable().
			Comment("Investigation summary (full-text searchable)"),
		field.JSON("pause_metadata", map[string]interface{}{}).
			Optional().
			Comment("Set while paused: reason, current_iteration, message, paused_at"),
		field.String("author").
			Optional().
			Nillable(),
		field.String("runbook_url").
			Optional().
			Nillable(),
		field.JSON("mcp_selection", map[string]interface{}{}).
			Optional().
			Comment("MCP override config"),
		field.String("chain_id").
			Comment("Chain identifier (live lookup, no snapshot)"),
		field.Int("current_stage_index").
			Optional().
			Nillable(),
		field.String("current_stage_id").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the AlertSession.
func (AlertSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("stage_executions", StageExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("timeline_events", TimelineEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("llm_interactions", LLMInteraction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("mcp_interactions", MCPInteraction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AlertSession.
func (AlertSession) Indexes() []ent.Index {
	return []ent.Index{
		// Single field indexes
		index.Fields("status"),
		index.Fields("alert_type"),
		index.Fields("chain_id"),

		// Duplicate detection scans active sessions by fingerprint
		index.Fields("fingerprint", "status"),

		// Composite indexes
		index.Fields("status", "created_at"),
		index.Fields("status", "last_interaction_at"),

		// Partial index for soft deletes
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}

// Annotations for PostgreSQL-specific features.
// Note: GIN indexes for full-text search are created via migration hooks
// in pkg/database/migrations.go
func (AlertSession) Annotations() []schema.Annotation {
	return []schema.Annotation{}
}
