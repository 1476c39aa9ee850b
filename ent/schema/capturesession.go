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

// CaptureSession holds the schema definition for the CaptureSession entity.
// One session is one burst of schedule screenshots from one user.
type CaptureSession struct {
	ent.Schema
}

// Fields of the CaptureSession.
func (CaptureSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.Int64("user_id").
			Comment("Owning user"),
		field.String("state").
			Default("open").
			Comment("State labels are deployment-configurable, so no enum"),
		field.Time("created_at").
			Default(time.Now),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("locked_by").
			Optional().
			Nillable().
			Comment("Worker id holding the processing claim"),
		field.Time("locked_at").
			Optional().
			Nillable().
			Comment("Claim time; heartbeats refresh it for orphan detection"),
	}
}

// Edges of the CaptureSession.
func (CaptureSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("images", CaptureImage.Type),
	}
}

// Annotations of the CaptureSession.
func (CaptureSession) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "capture_session"},
	}
}

// Indexes of the CaptureSession.
func (CaptureSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state"),
		index.Fields("user_id"),
		index.Fields("state", "created_at"),
		index.Fields("state", "locked_at"),
	}
}
