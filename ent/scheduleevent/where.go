// Code generated by ent, DO NOT EDIT.

package scheduleevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/skiftkoll/skiftkoll/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int64) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldUserID, v))
}

// ScheduleDate applies equality check predicate on the "schedule_date" field. It's identical to ScheduleDateEQ.
func ScheduleDate(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldScheduleDate, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldEventType, v))
}

// LocationFingerprint applies equality check predicate on the "location_fingerprint" field. It's identical to LocationFingerprintEQ.
func LocationFingerprint(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldLocationFingerprint, v))
}

// CustomerFingerprint applies equality check predicate on the "customer_fingerprint" field. It's identical to CustomerFingerprintEQ.
func CustomerFingerprint(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldCustomerFingerprint, v))
}

// OldValueHash applies equality check predicate on the "old_value_hash" field. It's identical to OldValueHashEQ.
func OldValueHash(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldOldValueHash, v))
}

// NewValueHash applies equality check predicate on the "new_value_hash" field. It's identical to NewValueHashEQ.
func NewValueHash(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldNewValueHash, v))
}

// DetectedAt applies equality check predicate on the "detected_at" field. It's identical to DetectedAtEQ.
func DetectedAt(v time.Time) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldDetectedAt, v))
}

// SourceSessionID applies equality check predicate on the "source_session_id" field. It's identical to SourceSessionIDEQ.
func SourceSessionID(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldSourceSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int64) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int64) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int64) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int64) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int64) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int64) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int64) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int64) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLTE(FieldUserID, v))
}

// ScheduleDateEQ applies the EQ predicate on the "schedule_date" field.
func ScheduleDateEQ(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldScheduleDate, v))
}

// ScheduleDateNEQ applies the NEQ predicate on the "schedule_date" field.
func ScheduleDateNEQ(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNEQ(FieldScheduleDate, v))
}

// ScheduleDateIn applies the In predicate on the "schedule_date" field.
func ScheduleDateIn(vs ...string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldIn(FieldScheduleDate, vs...))
}

// ScheduleDateNotIn applies the NotIn predicate on the "schedule_date" field.
func ScheduleDateNotIn(vs ...string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNotIn(FieldScheduleDate, vs...))
}

// ScheduleDateGT applies the GT predicate on the "schedule_date" field.
func ScheduleDateGT(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGT(FieldScheduleDate, v))
}

// ScheduleDateGTE applies the GTE predicate on the "schedule_date" field.
func ScheduleDateGTE(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGTE(FieldScheduleDate, v))
}

// ScheduleDateLT applies the LT predicate on the "schedule_date" field.
func ScheduleDateLT(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLT(FieldScheduleDate, v))
}

// ScheduleDateLTE applies the LTE predicate on the "schedule_date" field.
func ScheduleDateLTE(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLTE(FieldScheduleDate, v))
}

// ScheduleDateContains applies the Contains predicate on the "schedule_date" field.
func ScheduleDateContains(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldContains(FieldScheduleDate, v))
}

// ScheduleDateHasPrefix applies the HasPrefix predicate on the "schedule_date" field.
func ScheduleDateHasPrefix(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldHasPrefix(FieldScheduleDate, v))
}

// ScheduleDateHasSuffix applies the HasSuffix predicate on the "schedule_date" field.
func ScheduleDateHasSuffix(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldHasSuffix(FieldScheduleDate, v))
}

// ScheduleDateEqualFold applies the EqualFold predicate on the "schedule_date" field.
func ScheduleDateEqualFold(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEqualFold(FieldScheduleDate, v))
}

// ScheduleDateContainsFold applies the ContainsFold predicate on the "schedule_date" field.
func ScheduleDateContainsFold(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldContainsFold(FieldScheduleDate, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldContainsFold(FieldEventType, v))
}

// LocationFingerprintEQ applies the EQ predicate on the "location_fingerprint" field.
func LocationFingerprintEQ(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldLocationFingerprint, v))
}

// LocationFingerprintNEQ applies the NEQ predicate on the "location_fingerprint" field.
func LocationFingerprintNEQ(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNEQ(FieldLocationFingerprint, v))
}

// LocationFingerprintIn applies the In predicate on the "location_fingerprint" field.
func LocationFingerprintIn(vs ...string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldIn(FieldLocationFingerprint, vs...))
}

// LocationFingerprintNotIn applies the NotIn predicate on the "location_fingerprint" field.
func LocationFingerprintNotIn(vs ...string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNotIn(FieldLocationFingerprint, vs...))
}

// LocationFingerprintGT applies the GT predicate on the "location_fingerprint" field.
func LocationFingerprintGT(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGT(FieldLocationFingerprint, v))
}

// LocationFingerprintGTE applies the GTE predicate on the "location_fingerprint" field.
func LocationFingerprintGTE(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGTE(FieldLocationFingerprint, v))
}

// LocationFingerprintLT applies the LT predicate on the "location_fingerprint" field.
func LocationFingerprintLT(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLT(FieldLocationFingerprint, v))
}

// LocationFingerprintLTE applies the LTE predicate on the "location_fingerprint" field.
func LocationFingerprintLTE(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLTE(FieldLocationFingerprint, v))
}

// LocationFingerprintContains applies the Contains predicate on the "location_fingerprint" field.
func LocationFingerprintContains(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldContains(FieldLocationFingerprint, v))
}

// LocationFingerprintHasPrefix applies the HasPrefix predicate on the "location_fingerprint" field.
func LocationFingerprintHasPrefix(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldHasPrefix(FieldLocationFingerprint, v))
}

// LocationFingerprintHasSuffix applies the HasSuffix predicate on the "location_fingerprint" field.
func LocationFingerprintHasSuffix(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldHasSuffix(FieldLocationFingerprint, v))
}

// LocationFingerprintEqualFold applies the EqualFold predicate on the "location_fingerprint" field.
func LocationFingerprintEqualFold(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEqualFold(FieldLocationFingerprint, v))
}

// LocationFingerprintContainsFold applies the ContainsFold predicate on the "location_fingerprint" field.
func LocationFingerprintContainsFold(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldContainsFold(FieldLocationFingerprint, v))
}

// CustomerFingerprintEQ applies the EQ predicate on the "customer_fingerprint" field.
func CustomerFingerprintEQ(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldCustomerFingerprint, v))
}

// CustomerFingerprintNEQ applies the NEQ predicate on the "customer_fingerprint" field.
func CustomerFingerprintNEQ(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNEQ(FieldCustomerFingerprint, v))
}

// CustomerFingerprintIn applies the In predicate on the "customer_fingerprint" field.
func CustomerFingerprintIn(vs ...string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldIn(FieldCustomerFingerprint, vs...))
}

// CustomerFingerprintNotIn applies the NotIn predicate on the "customer_fingerprint" field.
func CustomerFingerprintNotIn(vs ...string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNotIn(FieldCustomerFingerprint, vs...))
}

// CustomerFingerprintGT applies the GT predicate on the "customer_fingerprint" field.
func CustomerFingerprintGT(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGT(FieldCustomerFingerprint, v))
}

// CustomerFingerprintGTE applies the GTE predicate on the "customer_fingerprint" field.
func CustomerFingerprintGTE(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGTE(FieldCustomerFingerprint, v))
}

// CustomerFingerprintLT applies the LT predicate on the "customer_fingerprint" field.
func CustomerFingerprintLT(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLT(FieldCustomerFingerprint, v))
}

// CustomerFingerprintLTE applies the LTE predicate on the "customer_fingerprint" field.
func CustomerFingerprintLTE(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLTE(FieldCustomerFingerprint, v))
}

// CustomerFingerprintContains applies the Contains predicate on the "customer_fingerprint" field.
func CustomerFingerprintContains(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldContains(FieldCustomerFingerprint, v))
}

// CustomerFingerprintHasPrefix applies the HasPrefix predicate on the "customer_fingerprint" field.
func CustomerFingerprintHasPrefix(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldHasPrefix(FieldCustomerFingerprint, v))
}

// CustomerFingerprintHasSuffix applies the HasSuffix predicate on the "customer_fingerprint" field.
func CustomerFingerprintHasSuffix(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldHasSuffix(FieldCustomerFingerprint, v))
}

// CustomerFingerprintEqualFold applies the EqualFold predicate on the "customer_fingerprint" field.
func CustomerFingerprintEqualFold(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEqualFold(FieldCustomerFingerprint, v))
}

// CustomerFingerprintContainsFold applies the ContainsFold predicate on the "customer_fingerprint" field.
func CustomerFingerprintContainsFold(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldContainsFold(FieldCustomerFingerprint, v))
}

// OldValueHashEQ applies the EQ predicate on the "old_value_hash" field.
func OldValueHashEQ(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldOldValueHash, v))
}

// OldValueHashNEQ applies the NEQ predicate on the "old_value_hash" field.
func OldValueHashNEQ(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNEQ(FieldOldValueHash, v))
}

// OldValueHashIn applies the In predicate on the "old_value_hash" field.
func OldValueHashIn(vs ...string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldIn(FieldOldValueHash, vs...))
}

// OldValueHashNotIn applies the NotIn predicate on the "old_value_hash" field.
func OldValueHashNotIn(vs ...string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNotIn(FieldOldValueHash, vs...))
}

// OldValueHashGT applies the GT predicate on the "old_value_hash" field.
func OldValueHashGT(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGT(FieldOldValueHash, v))
}

// OldValueHashGTE applies the GTE predicate on the "old_value_hash" field.
func OldValueHashGTE(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGTE(FieldOldValueHash, v))
}

// OldValueHashLT applies the LT predicate on the "old_value_hash" field.
func OldValueHashLT(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLT(FieldOldValueHash, v))
}

// OldValueHashLTE applies the LTE predicate on the "old_value_hash" field.
func OldValueHashLTE(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLTE(FieldOldValueHash, v))
}

// OldValueHashContains applies the Contains predicate on the "old_value_hash" field.
func OldValueHashContains(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldContains(FieldOldValueHash, v))
}

// OldValueHashHasPrefix applies the HasPrefix predicate on the "old_value_hash" field.
func OldValueHashHasPrefix(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldHasPrefix(FieldOldValueHash, v))
}

// OldValueHashHasSuffix applies the HasSuffix predicate on the "old_value_hash" field.
func OldValueHashHasSuffix(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldHasSuffix(FieldOldValueHash, v))
}

// OldValueHashEqualFold applies the EqualFold predicate on the "old_value_hash" field.
func OldValueHashEqualFold(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEqualFold(FieldOldValueHash, v))
}

// OldValueHashContainsFold applies the ContainsFold predicate on the "old_value_hash" field.
func OldValueHashContainsFold(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldContainsFold(FieldOldValueHash, v))
}

// NewValueHashEQ applies the EQ predicate on the "new_value_hash" field.
func NewValueHashEQ(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldNewValueHash, v))
}

// NewValueHashNEQ applies the NEQ predicate on the "new_value_hash" field.
func NewValueHashNEQ(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNEQ(FieldNewValueHash, v))
}

// NewValueHashIn applies the In predicate on the "new_value_hash" field.
func NewValueHashIn(vs ...string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldIn(FieldNewValueHash, vs...))
}

// NewValueHashNotIn applies the NotIn predicate on the "new_value_hash" field.
func NewValueHashNotIn(vs ...string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNotIn(FieldNewValueHash, vs...))
}

// NewValueHashGT applies the GT predicate on the "new_value_hash" field.
func NewValueHashGT(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGT(FieldNewValueHash, v))
}

// NewValueHashGTE applies the GTE predicate on the "new_value_hash" field.
func NewValueHashGTE(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGTE(FieldNewValueHash, v))
}

// NewValueHashLT applies the LT predicate on the "new_value_hash" field.
func NewValueHashLT(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLT(FieldNewValueHash, v))
}

// NewValueHashLTE applies the LTE predicate on the "new_value_hash" field.
func NewValueHashLTE(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLTE(FieldNewValueHash, v))
}

// NewValueHashContains applies the Contains predicate on the "new_value_hash" field.
func NewValueHashContains(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldContains(FieldNewValueHash, v))
}

// NewValueHashHasPrefix applies the HasPrefix predicate on the "new_value_hash" field.
func NewValueHashHasPrefix(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldHasPrefix(FieldNewValueHash, v))
}

// NewValueHashHasSuffix applies the HasSuffix predicate on the "new_value_hash" field.
func NewValueHashHasSuffix(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldHasSuffix(FieldNewValueHash, v))
}

// NewValueHashEqualFold applies the EqualFold predicate on the "new_value_hash" field.
func NewValueHashEqualFold(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEqualFold(FieldNewValueHash, v))
}

// NewValueHashContainsFold applies the ContainsFold predicate on the "new_value_hash" field.
func NewValueHashContainsFold(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldContainsFold(FieldNewValueHash, v))
}

// OldValueIsNil applies the IsNil predicate on the "old_value" field.
func OldValueIsNil() predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldIsNull(FieldOldValue))
}

// OldValueNotNil applies the NotNil predicate on the "old_value" field.
func OldValueNotNil() predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNotNull(FieldOldValue))
}

// NewValueIsNil applies the IsNil predicate on the "new_value" field.
func NewValueIsNil() predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldIsNull(FieldNewValue))
}

// NewValueNotNil applies the NotNil predicate on the "new_value" field.
func NewValueNotNil() predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNotNull(FieldNewValue))
}

// DetectedAtEQ applies the EQ predicate on the "detected_at" field.
func DetectedAtEQ(v time.Time) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldDetectedAt, v))
}

// DetectedAtNEQ applies the NEQ predicate on the "detected_at" field.
func DetectedAtNEQ(v time.Time) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNEQ(FieldDetectedAt, v))
}

// DetectedAtIn applies the In predicate on the "detected_at" field.
func DetectedAtIn(vs ...time.Time) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldIn(FieldDetectedAt, vs...))
}

// DetectedAtNotIn applies the NotIn predicate on the "detected_at" field.
func DetectedAtNotIn(vs ...time.Time) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNotIn(FieldDetectedAt, vs...))
}

// DetectedAtGT applies the GT predicate on the "detected_at" field.
func DetectedAtGT(v time.Time) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGT(FieldDetectedAt, v))
}

// DetectedAtGTE applies the GTE predicate on the "detected_at" field.
func DetectedAtGTE(v time.Time) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGTE(FieldDetectedAt, v))
}

// DetectedAtLT applies the LT predicate on the "detected_at" field.
func DetectedAtLT(v time.Time) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLT(FieldDetectedAt, v))
}

// DetectedAtLTE applies the LTE predicate on the "detected_at" field.
func DetectedAtLTE(v time.Time) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLTE(FieldDetectedAt, v))
}

// SourceSessionIDEQ applies the EQ predicate on the "source_session_id" field.
func SourceSessionIDEQ(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEQ(FieldSourceSessionID, v))
}

// SourceSessionIDNEQ applies the NEQ predicate on the "source_session_id" field.
func SourceSessionIDNEQ(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNEQ(FieldSourceSessionID, v))
}

// SourceSessionIDIn applies the In predicate on the "source_session_id" field.
func SourceSessionIDIn(vs ...string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldIn(FieldSourceSessionID, vs...))
}

// SourceSessionIDNotIn applies the NotIn predicate on the "source_session_id" field.
func SourceSessionIDNotIn(vs ...string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldNotIn(FieldSourceSessionID, vs...))
}

// SourceSessionIDGT applies the GT predicate on the "source_session_id" field.
func SourceSessionIDGT(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGT(FieldSourceSessionID, v))
}

// SourceSessionIDGTE applies the GTE predicate on the "source_session_id" field.
func SourceSessionIDGTE(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldGTE(FieldSourceSessionID, v))
}

// SourceSessionIDLT applies the LT predicate on the "source_session_id" field.
func SourceSessionIDLT(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLT(FieldSourceSessionID, v))
}

// SourceSessionIDLTE applies the LTE predicate on the "source_session_id" field.
func SourceSessionIDLTE(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldLTE(FieldSourceSessionID, v))
}

// SourceSessionIDContains applies the Contains predicate on the "source_session_id" field.
func SourceSessionIDContains(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldContains(FieldSourceSessionID, v))
}

// SourceSessionIDHasPrefix applies the HasPrefix predicate on the "source_session_id" field.
func SourceSessionIDHasPrefix(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldHasPrefix(FieldSourceSessionID, v))
}

// SourceSessionIDHasSuffix applies the HasSuffix predicate on the "source_session_id" field.
func SourceSessionIDHasSuffix(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldHasSuffix(FieldSourceSessionID, v))
}

// SourceSessionIDEqualFold applies the EqualFold predicate on the "source_session_id" field.
func SourceSessionIDEqualFold(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldEqualFold(FieldSourceSessionID, v))
}

// SourceSessionIDContainsFold applies the ContainsFold predicate on the "source_session_id" field.
func SourceSessionIDContainsFold(v string) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.FieldContainsFold(FieldSourceSessionID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScheduleEvent) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScheduleEvent) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScheduleEvent) predicate.ScheduleEvent {
	return predicate.ScheduleEvent(sql.NotPredicates(p))
}
