package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScheduleEvent holds the schema definition for the ScheduleEvent entity.
// Rows are append-only; the composite unique index is the semantic
// dedupe key for re-observed changes.
type ScheduleEvent struct {
	ent.Schema
}

// Fields of the ScheduleEvent.
func (ScheduleEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.Int64("user_id"),
		field.String("schedule_date").
			SchemaType(map[string]string{"postgres": "date"}),
		field.String("event_type"),
		field.String("location_fingerprint"),
		field.String("customer_fingerprint"),
		field.String("old_value_hash"),
		field.String("new_value_hash"),
		field.JSON("old_value", map[string]interface{}{}).
			Optional(),
		field.JSON("new_value", map[string]interface{}{}).
			Optional(),
		field.Time("detected_at"),
		field.String("source_session_id"),
	}
}

// Annotations of the ScheduleEvent.
func (ScheduleEvent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "schedule_event"},
	}
}

// Indexes of the ScheduleEvent.
func (ScheduleEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "schedule_date", "location_fingerprint", "event_type", "old_value_hash", "new_value_hash").
			Unique(),
		index.Fields("user_id", "schedule_date"),
		index.Fields("source_session_id"),
	}
}
