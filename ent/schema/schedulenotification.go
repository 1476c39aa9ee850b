package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScheduleNotification holds the schema definition for the
// ScheduleNotification entity. The id is a deterministic hash, so
// storage is idempotent insert-or-ignore.
type ScheduleNotification struct {
	ent.Schema
}

// Fields of the ScheduleNotification.
func (ScheduleNotification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("notification_id").
			Unique().
			Immutable(),
		field.Int64("user_id"),
		field.String("schedule_date").
			SchemaType(map[string]string{"postgres": "date"}),
		field.String("source_session_id"),
		field.String("status").
			Default("pending"),
		field.String("notification_type"),
		field.Text("message"),
		field.JSON("event_ids", []string{}),
		field.Time("created_at"),
		field.Time("sent_at").
			Optional().
			Nillable(),
	}
}

// Annotations of the ScheduleNotification.
func (ScheduleNotification) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "schedule_notification"},
	}
}

// Indexes of the ScheduleNotification.
func (ScheduleNotification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "schedule_date"),
		index.Fields("status"),
	}
}
