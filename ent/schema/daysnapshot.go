package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DaySnapshot holds the schema definition for the DaySnapshot entity:
// the authoritative canonical shift list for one (user, date).
type DaySnapshot struct {
	ent.Schema
}

// Fields of the DaySnapshot.
func (DaySnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("user_id"),
		field.String("schedule_date").
			SchemaType(map[string]string{"postgres": "date"}),
		field.JSON("snapshot_payload", []map[string]interface{}{}),
		field.String("source_session_id").
			Comment("Session of the last observation that produced this payload"),
		field.Time("updated_at"),
	}
}

// Annotations of the DaySnapshot.
func (DaySnapshot) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "day_snapshot"},
	}
}

// Indexes of the DaySnapshot.
func (DaySnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "schedule_date").
			Unique(),
	}
}
