// Code generated by ent, DO NOT EDIT.

package daysnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/skiftkoll/skiftkoll/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int64) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldEQ(FieldUserID, v))
}

// ScheduleDate applies equality check predicate on the "schedule_date" field. It's identical to ScheduleDateEQ.
func ScheduleDate(v string) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldEQ(FieldScheduleDate, v))
}

// SourceSessionID applies equality check predicate on the "source_session_id" field. It's identical to SourceSessionIDEQ.
func SourceSessionID(v string) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldEQ(FieldSourceSessionID, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int64) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int64) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int64) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int64) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int64) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int64) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int64) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int64) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldLTE(FieldUserID, v))
}

// ScheduleDateEQ applies the EQ predicate on the "schedule_date" field.
func ScheduleDateEQ(v string) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldEQ(FieldScheduleDate, v))
}

// ScheduleDateNEQ applies the NEQ predicate on the "schedule_date" field.
func ScheduleDateNEQ(v string) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldNEQ(FieldScheduleDate, v))
}

// ScheduleDateIn applies the In predicate on the "schedule_date" field.
func ScheduleDateIn(vs ...string) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldIn(FieldScheduleDate, vs...))
}

// ScheduleDateNotIn applies the NotIn predicate on the "schedule_date" field.
func ScheduleDateNotIn(vs ...string) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldNotIn(FieldScheduleDate, vs...))
}

// ScheduleDateGT applies the GT predicate on the "schedule_date" field.
func ScheduleDateGT(v string) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldGT(FieldScheduleDate, v))
}

// ScheduleDateGTE applies the GTE predicate on the "schedule_date" field.
func ScheduleDateGTE(v string) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldGTE(FieldScheduleDate, v))
}

// ScheduleDateLT applies the LT predicate on the "schedule_date" field.
func ScheduleDateLT(v string) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldLT(FieldScheduleDate, v))
}

// ScheduleDateLTE applies the LTE predicate on the "schedule_date" field.
func ScheduleDateLTE(v string) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldLTE(FieldScheduleDate, v))
}

// ScheduleDateContains applies the Contains predicate on the "schedule_date" field.
func ScheduleDateContains(v string) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldContains(FieldScheduleDate, v))
}

// ScheduleDateHasPrefix applies the HasPrefix predicate on the "schedule_date" field.
func ScheduleDateHasPrefix(v string) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldHasPrefix(FieldScheduleDate, v))
}

// ScheduleDateHasSuffix applies the HasSuffix predicate on the "schedule_date" field.
func ScheduleDateHasSuffix(v string) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldHasSuffix(FieldScheduleDate, v))
}

// ScheduleDateEqualFold applies the EqualFold predicate on the "schedule_date" field.
func ScheduleDateEqualFold(v string) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldEqualFold(FieldScheduleDate, v))
}

// ScheduleDateContainsFold applies the ContainsFold predicate on the "schedule_date" field.
func ScheduleDateContainsFold(v string) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldContainsFold(FieldScheduleDate, v))
}

// SourceSessionIDEQ applies the EQ predicate on the "source_session_id" field.
func SourceSessionIDEQ(v string) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldEQ(FieldSourceSessionID, v))
}

// SourceSessionIDNEQ applies the NEQ predicate on the "source_session_id" field.
func SourceSessionIDNEQ(v string) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldNEQ(FieldSourceSessionID, v))
}

// SourceSessionIDIn applies the In predicate on the "source_session_id" field.
func SourceSessionIDIn(vs ...string) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldIn(FieldSourceSessionID, vs...))
}

// SourceSessionIDNotIn applies the NotIn predicate on the "source_session_id" field.
func SourceSessionIDNotIn(vs ...string) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldNotIn(FieldSourceSessionID, vs...))
}

// SourceSessionIDGT applies the GT predicate on the "source_session_id" field.
func SourceSessionIDGT(v string) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldGT(FieldSourceSessionID, v))
}

// SourceSessionIDGTE applies the GTE predicate on the "source_session_id" field.
func SourceSessionIDGTE(v string) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldGTE(FieldSourceSessionID, v))
}

// SourceSessionIDLT applies the LT predicate on the "source_session_id" field.
func SourceSessionIDLT(v string) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldLT(FieldSourceSessionID, v))
}

// SourceSessionIDLTE applies the LTE predicate on the "source_session_id" field.
func SourceSessionIDLTE(v string) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldLTE(FieldSourceSessionID, v))
}

// SourceSessionIDContains applies the Contains predicate on the "source_session_id" field.
func SourceSessionIDContains(v string) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldContains(FieldSourceSessionID, v))
}

// SourceSessionIDHasPrefix applies the HasPrefix predicate on the "source_session_id" field.
func SourceSessionIDHasPrefix(v string) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldHasPrefix(FieldSourceSessionID, v))
}

// SourceSessionIDHasSuffix applies the HasSuffix predicate on the "source_session_id" field.
func SourceSessionIDHasSuffix(v string) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldHasSuffix(FieldSourceSessionID, v))
}

// SourceSessionIDEqualFold applies the EqualFold predicate on the "source_session_id" field.
func SourceSessionIDEqualFold(v string) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldEqualFold(FieldSourceSessionID, v))
}

// SourceSessionIDContainsFold applies the ContainsFold predicate on the "source_session_id" field.
func SourceSessionIDContainsFold(v string) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldContainsFold(FieldSourceSessionID, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DaySnapshot) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DaySnapshot) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DaySnapshot) predicate.DaySnapshot {
	return predicate.DaySnapshot(sql.NotPredicates(p))
}
