// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CaptureImageColumns holds the columns for the "capture_image" table.
	CaptureImageColumns = []*schema.Column{
		{Name: "image_id", Type: field.TypeString, Unique: true},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "object_key", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// CaptureImageTable holds the schema information for the "capture_image" table.
	CaptureImageTable = &schema.Table{
		Name:       "capture_image",
		Columns:    CaptureImageColumns,
		PrimaryKey: []*schema.Column{CaptureImageColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "capture_image_capture_session_images",
				Columns:    []*schema.Column{CaptureImageColumns[4]},
				RefColumns: []*schema.Column{CaptureSessionColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "captureimage_session_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{CaptureImageColumns[4], CaptureImageColumns[1]},
			},
			{
				Name:    "captureimage_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CaptureImageColumns[4], CaptureImageColumns[3]},
			},
		},
	}
	// CaptureSessionColumns holds the columns for the "capture_session" table.
	CaptureSessionColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "state", Type: field.TypeString, Default: "open"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "locked_by", Type: field.TypeString, Nullable: true},
		{Name: "locked_at", Type: field.TypeTime, Nullable: true},
	}
	// CaptureSessionTable holds the schema information for the "capture_session" table.
	CaptureSessionTable = &schema.Table{
		Name:       "capture_session",
		Columns:    CaptureSessionColumns,
		PrimaryKey: []*schema.Column{CaptureSessionColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "capturesession_state",
				Unique:  false,
				Columns: []*schema.Column{CaptureSessionColumns[2]},
			},
			{
				Name:    "capturesession_user_id",
				Unique:  false,
				Columns: []*schema.Column{CaptureSessionColumns[1]},
			},
			{
				Name:    "capturesession_state_created_at",
				Unique:  false,
				Columns: []*schema.Column{CaptureSessionColumns[2], CaptureSessionColumns[3]},
			},
			{
				Name:    "capturesession_state_locked_at",
				Unique:  false,
				Columns: []*schema.Column{CaptureSessionColumns[2], CaptureSessionColumns[6]},
			},
		},
	}
	// DaySnapshotColumns holds the columns for the "day_snapshot" table.
	DaySnapshotColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "schedule_date", Type: field.TypeString, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "snapshot_payload", Type: field.TypeJSON},
		{Name: "source_session_id", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DaySnapshotTable holds the schema information for the "day_snapshot" table.
	DaySnapshotTable = &schema.Table{
		Name:       "day_snapshot",
		Columns:    DaySnapshotColumns,
		PrimaryKey: []*schema.Column{DaySnapshotColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "daysnapshot_user_id_schedule_date",
				Unique:  true,
				Columns: []*schema.Column{DaySnapshotColumns[1], DaySnapshotColumns[2]},
			},
		},
	}
	// ScheduleEventColumns holds the columns for the "schedule_event" table.
	ScheduleEventColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "schedule_date", Type: field.TypeString, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "event_type", Type: field.TypeString},
		{Name: "location_fingerprint", Type: field.TypeString},
		{Name: "customer_fingerprint", Type: field.TypeString},
		{Name: "old_value_hash", Type: field.TypeString},
		{Name: "new_value_hash", Type: field.TypeString},
		{Name: "old_value", Type: field.TypeJSON, Nullable: true},
		{Name: "new_value", Type: field.TypeJSON, Nullable: true},
		{Name: "detected_at", Type: field.TypeTime},
		{Name: "source_session_id", Type: field.TypeString},
	}
	// ScheduleEventTable holds the schema information for the "schedule_event" table.
	ScheduleEventTable = &schema.Table{
		Name:       "schedule_event",
		Columns:    ScheduleEventColumns,
		PrimaryKey: []*schema.Column{ScheduleEventColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scheduleevent_user_id_schedule_date_location_fingerprint_event_type_old_value_hash_new_value_hash",
				Unique:  true,
				Columns: []*schema.Column{ScheduleEventColumns[1], ScheduleEventColumns[2], ScheduleEventColumns[4], ScheduleEventColumns[3], ScheduleEventColumns[6], ScheduleEventColumns[7]},
			},
			{
				Name:    "scheduleevent_user_id_schedule_date",
				Unique:  false,
				Columns: []*schema.Column{ScheduleEventColumns[1], ScheduleEventColumns[2]},
			},
			{
				Name:    "scheduleevent_source_session_id",
				Unique:  false,
				Columns: []*schema.Column{ScheduleEventColumns[11]},
			},
		},
	}
	// ScheduleNotificationColumns holds the columns for the "schedule_notification" table.
	ScheduleNotificationColumns = []*schema.Column{
		{Name: "notification_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "schedule_date", Type: field.TypeString, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "source_session_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "notification_type", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "event_ids", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "sent_at", Type: field.TypeTime, Nullable: true},
	}
	// ScheduleNotificationTable holds the schema information for the "schedule_notification" table.
	ScheduleNotificationTable = &schema.Table{
		Name:       "schedule_notification",
		Columns:    ScheduleNotificationColumns,
		PrimaryKey: []*schema.Column{ScheduleNotificationColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "schedulenotification_user_id_schedule_date",
				Unique:  false,
				Columns: []*schema.Column{ScheduleNotificationColumns[1], ScheduleNotificationColumns[2]},
			},
			{
				Name:    "schedulenotification_status",
				Unique:  false,
				Columns: []*schema.Column{ScheduleNotificationColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CaptureImageTable,
		CaptureSessionTable,
		DaySnapshotTable,
		ScheduleEventTable,
		ScheduleNotificationTable,
	}
)

func init() {
	CaptureImageTable.ForeignKeys[0].RefTable = CaptureSessionTable
	CaptureImageTable.Annotation = &entsql.Annotation{
		Table: "capture_image",
	}
	CaptureSessionTable.Annotation = &entsql.Annotation{
		Table: "capture_session",
	}
	DaySnapshotTable.Annotation = &entsql.Annotation{
		Table: "day_snapshot",
	}
	ScheduleEventTable.Annotation = &entsql.Annotation{
		Table: "schedule_event",
	}
	ScheduleNotificationTable.Annotation = &entsql.Annotation{
		Table: "schedule_notification",
	}
}
