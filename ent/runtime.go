// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/skiftkoll/skiftkoll/ent/captureimage"
	"github.com/skiftkoll/skiftkoll/ent/capturesession"
	"github.com/skiftkoll/skiftkoll/ent/schedulenotification"
	"github.com/skiftkoll/skiftkoll/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	captureimageFields := schema.CaptureImage{}.Fields()
	_ = captureimageFields
	// captureimageDescCreatedAt is the schema descriptor for created_at field.
	captureimageDescCreatedAt := captureimageFields[4].Descriptor()
	// captureimage.DefaultCreatedAt holds the default value on creation for the created_at field.
	captureimage.DefaultCreatedAt = captureimageDescCreatedAt.Default.(func() time.Time)
	capturesessionFields := schema.CaptureSession{}.Fields()
	_ = capturesessionFields
	// capturesessionDescState is the schema descriptor for state field.
	capturesessionDescState := capturesessionFields[2].Descriptor()
	// capturesession.DefaultState holds the default value on creation for the state field.
	capturesession.DefaultState = capturesessionDescState.Default.(string)
	// capturesessionDescCreatedAt is the schema descriptor for created_at field.
	capturesessionDescCreatedAt := capturesessionFields[3].Descriptor()
	// capturesession.DefaultCreatedAt holds the default value on creation for the created_at field.
	capturesession.DefaultCreatedAt = capturesessionDescCreatedAt.Default.(func() time.Time)
	schedulenotificationFields := schema.ScheduleNotification{}.Fields()
	_ = schedulenotificationFields
	// schedulenotificationDescStatus is the schema descriptor for status field.
	schedulenotificationDescStatus := schedulenotificationFields[4].Descriptor()
	// schedulenotification.DefaultStatus holds the default value on creation for the status field.
	schedulenotification.DefaultStatus = schedulenotificationDescStatus.Default.(string)
}
