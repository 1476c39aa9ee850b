// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CaptureImage is the predicate function for captureimage builders.
type CaptureImage func(*sql.Selector)

// CaptureSession is the predicate function for capturesession builders.
type CaptureSession func(*sql.Selector)

// DaySnapshot is the predicate function for daysnapshot builders.
type DaySnapshot func(*sql.Selector)

// ScheduleEvent is the predicate function for scheduleevent builders.
type ScheduleEvent func(*sql.Selector)

// ScheduleNotification is the predicate function for schedulenotification builders.
type ScheduleNotification func(*sql.Selector)
