package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity: the durable
// append-only event log backing WebSocket catch-up. The auto-increment
// integer ID gives subscribers a monotonic cursor per channel.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Immutable(),
		field.String("channel").
			Comment("e.g., 'sessions', 'session:<id>'"),
		field.JSON("payload", map[string]interface{}{}).
			Comment("Full event payload as published"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", AlertSession.Type).
			Ref("events").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		// Catch-up scans: events on a channel after a given ID
		index.Fields("channel", "id"),
		// Per-session cleanup
		index.Fields("session_id"),
		// TTL cleanup
		index.Fields("created_at"),
	}
}
