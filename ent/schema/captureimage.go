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

// CaptureImage holds the schema definition for the CaptureImage entity.
type CaptureImage struct {
	ent.Schema
}

// Fields of the CaptureImage.
func (CaptureImage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("image_id").
			Unique().
			Immutable(),
		field.String("session_id"),
		field.Int("sequence").
			Comment("Upload order within the session"),
		field.String("object_key").
			Comment("Object store key of the screenshot"),
		field.Time("created_at").
			Default(time.Now).
			Comment("Server-observed upload time; gates the idle timeout"),
	}
}

// Edges of the CaptureImage.
func (CaptureImage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", CaptureSession.Type).
			Ref("images").
			Field("session_id").
			Unique().
			Required(),
	}
}

// Annotations of the CaptureImage.
func (CaptureImage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "capture_image"},
	}
}

// Indexes of the CaptureImage.
func (CaptureImage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "sequence").
			Unique(),
		index.Fields("session_id", "created_at"),
	}
}
