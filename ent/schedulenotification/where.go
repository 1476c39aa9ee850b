// Code generated by ent, DO NOT EDIT.

package schedulenotification

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/skiftkoll/skiftkoll/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int64) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldEQ(FieldUserID, v))
}

// ScheduleDate applies equality check predicate on the "schedule_date" field. It's identical to ScheduleDateEQ.
func ScheduleDate(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldEQ(FieldScheduleDate, v))
}

// SourceSessionID applies equality check predicate on the "source_session_id" field. It's identical to SourceSessionIDEQ.
func SourceSessionID(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldEQ(FieldSourceSessionID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldEQ(FieldStatus, v))
}

// NotificationType applies equality check predicate on the "notification_type" field. It's identical to NotificationTypeEQ.
func NotificationType(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldEQ(FieldNotificationType, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldEQ(FieldMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldEQ(FieldCreatedAt, v))
}

// SentAt applies equality check predicate on the "sent_at" field. It's identical to SentAtEQ.
func SentAt(v time.Time) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldEQ(FieldSentAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int64) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int64) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int64) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int64) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int64) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int64) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int64) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int64) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldLTE(FieldUserID, v))
}

// ScheduleDateEQ applies the EQ predicate on the "schedule_date" field.
func ScheduleDateEQ(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldEQ(FieldScheduleDate, v))
}

// ScheduleDateNEQ applies the NEQ predicate on the "schedule_date" field.
func ScheduleDateNEQ(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldNEQ(FieldScheduleDate, v))
}

// ScheduleDateIn applies the In predicate on the "schedule_date" field.
func ScheduleDateIn(vs ...string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldIn(FieldScheduleDate, vs...))
}

// ScheduleDateNotIn applies the NotIn predicate on the "schedule_date" field.
func ScheduleDateNotIn(vs ...string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldNotIn(FieldScheduleDate, vs...))
}

// ScheduleDateGT applies the GT predicate on the "schedule_date" field.
func ScheduleDateGT(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldGT(FieldScheduleDate, v))
}

// ScheduleDateGTE applies the GTE predicate on the "schedule_date" field.
func ScheduleDateGTE(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldGTE(FieldScheduleDate, v))
}

// ScheduleDateLT applies the LT predicate on the "schedule_date" field.
func ScheduleDateLT(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldLT(FieldScheduleDate, v))
}

// ScheduleDateLTE applies the LTE predicate on the "schedule_date" field.
func ScheduleDateLTE(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldLTE(FieldScheduleDate, v))
}

// ScheduleDateContains applies the Contains predicate on the "schedule_date" field.
func ScheduleDateContains(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldContains(FieldScheduleDate, v))
}

// ScheduleDateHasPrefix applies the HasPrefix predicate on the "schedule_date" field.
func ScheduleDateHasPrefix(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldHasPrefix(FieldScheduleDate, v))
}

// ScheduleDateHasSuffix applies the HasSuffix predicate on the "schedule_date" field.
func ScheduleDateHasSuffix(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldHasSuffix(FieldScheduleDate, v))
}

// ScheduleDateEqualFold applies the EqualFold predicate on the "schedule_date" field.
func ScheduleDateEqualFold(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldEqualFold(FieldScheduleDate, v))
}

// ScheduleDateContainsFold applies the ContainsFold predicate on the "schedule_date" field.
func ScheduleDateContainsFold(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldContainsFold(FieldScheduleDate, v))
}

// SourceSessionIDEQ applies the EQ predicate on the "source_session_id" field.
func SourceSessionIDEQ(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldEQ(FieldSourceSessionID, v))
}

// SourceSessionIDNEQ applies the NEQ predicate on the "source_session_id" field.
func SourceSessionIDNEQ(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldNEQ(FieldSourceSessionID, v))
}

// SourceSessionIDIn applies the In predicate on the "source_session_id" field.
func SourceSessionIDIn(vs ...string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldIn(FieldSourceSessionID, vs...))
}

// SourceSessionIDNotIn applies the NotIn predicate on the "source_session_id" field.
func SourceSessionIDNotIn(vs ...string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldNotIn(FieldSourceSessionID, vs...))
}

// SourceSessionIDGT applies the GT predicate on the "source_session_id" field.
func SourceSessionIDGT(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldGT(FieldSourceSessionID, v))
}

// SourceSessionIDGTE applies the GTE predicate on the "source_session_id" field.
func SourceSessionIDGTE(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldGTE(FieldSourceSessionID, v))
}

// SourceSessionIDLT applies the LT predicate on the "source_session_id" field.
func SourceSessionIDLT(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldLT(FieldSourceSessionID, v))
}

// SourceSessionIDLTE applies the LTE predicate on the "source_session_id" field.
func SourceSessionIDLTE(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldLTE(FieldSourceSessionID, v))
}

// SourceSessionIDContains applies the Contains predicate on the "source_session_id" field.
func SourceSessionIDContains(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldContains(FieldSourceSessionID, v))
}

// SourceSessionIDHasPrefix applies the HasPrefix predicate on the "source_session_id" field.
func SourceSessionIDHasPrefix(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldHasPrefix(FieldSourceSessionID, v))
}

// SourceSessionIDHasSuffix applies the HasSuffix predicate on the "source_session_id" field.
func SourceSessionIDHasSuffix(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldHasSuffix(FieldSourceSessionID, v))
}

// SourceSessionIDEqualFold applies the EqualFold predicate on the "source_session_id" field.
func SourceSessionIDEqualFold(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldEqualFold(FieldSourceSessionID, v))
}

// SourceSessionIDContainsFold applies the ContainsFold predicate on the "source_session_id" field.
func SourceSessionIDContainsFold(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldContainsFold(FieldSourceSessionID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldContainsFold(FieldStatus, v))
}

// NotificationTypeEQ applies the EQ predicate on the "notification_type" field.
func NotificationTypeEQ(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldEQ(FieldNotificationType, v))
}

// NotificationTypeNEQ applies the NEQ predicate on the "notification_type" field.
func NotificationTypeNEQ(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldNEQ(FieldNotificationType, v))
}

// NotificationTypeIn applies the In predicate on the "notification_type" field.
func NotificationTypeIn(vs ...string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldIn(FieldNotificationType, vs...))
}

// NotificationTypeNotIn applies the NotIn predicate on the "notification_type" field.
func NotificationTypeNotIn(vs ...string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldNotIn(FieldNotificationType, vs...))
}

// NotificationTypeGT applies the GT predicate on the "notification_type" field.
func NotificationTypeGT(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldGT(FieldNotificationType, v))
}

// NotificationTypeGTE applies the GTE predicate on the "notification_type" field.
func NotificationTypeGTE(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldGTE(FieldNotificationType, v))
}

// NotificationTypeLT applies the LT predicate on the "notification_type" field.
func NotificationTypeLT(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldLT(FieldNotificationType, v))
}

// NotificationTypeLTE applies the LTE predicate on the "notification_type" field.
func NotificationTypeLTE(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldLTE(FieldNotificationType, v))
}

// NotificationTypeContains applies the Contains predicate on the "notification_type" field.
func NotificationTypeContains(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldContains(FieldNotificationType, v))
}

// NotificationTypeHasPrefix applies the HasPrefix predicate on the "notification_type" field.
func NotificationTypeHasPrefix(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldHasPrefix(FieldNotificationType, v))
}

// NotificationTypeHasSuffix applies the HasSuffix predicate on the "notification_type" field.
func NotificationTypeHasSuffix(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldHasSuffix(FieldNotificationType, v))
}

// NotificationTypeEqualFold applies the EqualFold predicate on the "notification_type" field.
func NotificationTypeEqualFold(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldEqualFold(FieldNotificationType, v))
}

// NotificationTypeContainsFold applies the ContainsFold predicate on the "notification_type" field.
func NotificationTypeContainsFold(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldContainsFold(FieldNotificationType, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldContainsFold(FieldMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldLTE(FieldCreatedAt, v))
}

// SentAtEQ applies the EQ predicate on the "sent_at" field.
func SentAtEQ(v time.Time) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldEQ(FieldSentAt, v))
}

// SentAtNEQ applies the NEQ predicate on the "sent_at" field.
func SentAtNEQ(v time.Time) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldNEQ(FieldSentAt, v))
}

// SentAtIn applies the In predicate on the "sent_at" field.
func SentAtIn(vs ...time.Time) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldIn(FieldSentAt, vs...))
}

// SentAtNotIn applies the NotIn predicate on the "sent_at" field.
func SentAtNotIn(vs ...time.Time) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldNotIn(FieldSentAt, vs...))
}

// SentAtGT applies the GT predicate on the "sent_at" field.
func SentAtGT(v time.Time) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldGT(FieldSentAt, v))
}

// SentAtGTE applies the GTE predicate on the "sent_at" field.
func SentAtGTE(v time.Time) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldGTE(FieldSentAt, v))
}

// SentAtLT applies the LT predicate on the "sent_at" field.
func SentAtLT(v time.Time) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldLT(FieldSentAt, v))
}

// SentAtLTE applies the LTE predicate on the "sent_at" field.
func SentAtLTE(v time.Time) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldLTE(FieldSentAt, v))
}

// SentAtIsNil applies the IsNil predicate on the "sent_at" field.
func SentAtIsNil() predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldIsNull(FieldSentAt))
}

// SentAtNotNil applies the NotNil predicate on the "sent_at" field.
func SentAtNotNil() predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.FieldNotNull(FieldSentAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScheduleNotification) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScheduleNotification) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScheduleNotification) predicate.ScheduleNotification {
	return predicate.ScheduleNotification(sql.NotPredicates(p))
}
