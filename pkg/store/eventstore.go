// Package store persists schedule events, day snapshots and
// notifications. Event history is append-only with a semantic dedupe
// key; snapshots are upserted per (user, date).
package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/skiftkoll/skiftkoll/pkg/diff"
	"github.com/skiftkoll/skiftkoll/pkg/models"
)

// Store runs the persistence side of the finalization pipeline against
// one Postgres schema.
type Store struct {
	db     *sql.DB
	schema string
}

// New creates a Store over db using the given schema for all tables.
func New(db *sql.DB, schema string) *Store {
	return &Store{db: db, schema: schema}
}

func (s *Store) table(name string) string {
	return pgx.Identifier{s.schema, name}.Sanitize()
}

// DiffError marks a failure computing the schedule diff. It is raised
// before any write happens, so callers can report it as a pipeline
// stage of its own rather than a storage failure.
type DiffError struct {
	Err error
}

func (e *DiffError) Error() string { return fmt.Sprintf("diffing schedules: %v", e.Err) }

func (e *DiffError) Unwrap() error { return e.Err }

// LoadDaySnapshot returns the stored canonical shift list for (user,
// date), or an empty list when no snapshot exists yet.
func (s *Store) LoadDaySnapshot(ctx context.Context, userID int64, scheduleDate string) ([]models.CanonicalShift, error) {
	query := fmt.Sprintf(`
		SELECT snapshot_payload
		FROM %s
		WHERE user_id = $1 AND schedule_date = $2`, s.table("day_snapshot"))

	var payload []byte
	err := s.db.QueryRowContext(ctx, query, userID, scheduleDate).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return []models.CanonicalShift{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading day snapshot: %w", err)
	}

	var shifts []models.CanonicalShift
	if err := json.Unmarshal(payload, &shifts); err != nil {
		return nil, fmt.Errorf("decoding day snapshot payload: %w", err)
	}
	return shifts, nil
}

// ProcessObservation runs the load-diff-persist cycle for one observed
// day schedule inside a single transaction. A per-(user, date) advisory
// lock serializes concurrent observations of the same day, so the diff
// always runs against the latest committed snapshot. The returned
// events are re-read from storage after the insert, so they carry the
// ids that actually exist: rows discarded by the dedupe key are absent,
// and a retried session gets back the ids its first run stored.
// inserted is the number of rows that survived the dedupe key.
func (s *Store) ProcessObservation(ctx context.Context, userID int64, scheduleDate, sourceSessionID string, snapshot []models.CanonicalShift, detectedAt time.Time) ([]models.StoredEvent, int, error) {
	if detectedAt.IsZero() {
		detectedAt = time.Now().UTC()
	}
	if _, err := time.Parse("2006-01-02", scheduleDate); err != nil {
		return nil, 0, &DiffError{Err: fmt.Errorf("invalid schedule date %q: %w", scheduleDate, err)}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("starting observation transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", dayLockKey(userID, scheduleDate)); err != nil {
		return nil, 0, fmt.Errorf("acquiring day lock: %w", err)
	}

	previous, err := s.loadDaySnapshotTx(ctx, tx, userID, scheduleDate)
	if err != nil {
		return nil, 0, err
	}

	diffEvents, err := diff.Schedules(previous, snapshot, scheduleDate)
	if err != nil {
		return nil, 0, &DiffError{Err: err}
	}

	rows, err := buildEventRows(userID, scheduleDate, sourceSessionID, detectedAt, diffEvents)
	if err != nil {
		return nil, 0, err
	}

	inserted, err := s.insertEvents(ctx, tx, rows)
	if err != nil {
		return nil, 0, err
	}

	stored, err := s.loadSessionEventsTx(ctx, tx, sourceSessionID)
	if err != nil {
		return nil, 0, err
	}

	if err := s.upsertSnapshot(ctx, tx, userID, scheduleDate, sourceSessionID, snapshot, detectedAt); err != nil {
		return nil, 0, err
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("committing observation: %w", err)
	}
	return stored, inserted, nil
}

// loadSessionEventsTx reads back the events persisted for one session,
// in detection order. This is the source of truth for notification
// building: an id minted for a row the dedupe key discarded never
// leaves the transaction.
func (s *Store) loadSessionEventsTx(ctx context.Context, tx *sql.Tx, sourceSessionID string) ([]models.StoredEvent, error) {
	query := fmt.Sprintf(`
		SELECT
			event_id,
			user_id,
			schedule_date::text,
			event_type,
			location_fingerprint,
			customer_fingerprint,
			old_value,
			new_value,
			detected_at,
			source_session_id
		FROM %s
		WHERE source_session_id = $1
		ORDER BY detected_at ASC, event_id ASC`, s.table("schedule_event"))

	rows, err := tx.QueryContext(ctx, query, sourceSessionID)
	if err != nil {
		return nil, fmt.Errorf("loading session events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []models.StoredEvent
	for rows.Next() {
		var (
			event    models.StoredEvent
			kind     string
			oldValue []byte
			newValue []byte
		)
		if err := rows.Scan(
			&event.EventID,
			&event.UserID,
			&event.ScheduleDate,
			&kind,
			&event.LocationFingerprint,
			&event.CustomerFingerprint,
			&oldValue,
			&newValue,
			&event.DetectedAt,
			&event.SourceSessionID,
		); err != nil {
			return nil, fmt.Errorf("scanning session event: %w", err)
		}
		event.Kind = models.EventKind(kind)
		if event.OldValue, err = decodeShiftJSON(oldValue); err != nil {
			return nil, fmt.Errorf("decoding %s event old value: %w", kind, err)
		}
		if event.NewValue, err = decodeShiftJSON(newValue); err != nil {
			return nil, fmt.Errorf("decoding %s event new value: %w", kind, err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating session events: %w", err)
	}
	return events, nil
}

func decodeShiftJSON(raw []byte) (*models.CanonicalShift, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var shift models.CanonicalShift
	if err := json.Unmarshal(raw, &shift); err != nil {
		return nil, err
	}
	return &shift, nil
}

func (s *Store) loadDaySnapshotTx(ctx context.Context, tx *sql.Tx, userID int64, scheduleDate string) ([]models.CanonicalShift, error) {
	query := fmt.Sprintf(`
		SELECT snapshot_payload
		FROM %s
		WHERE user_id = $1 AND schedule_date = $2`, s.table("day_snapshot"))

	var payload []byte
	err := tx.QueryRowContext(ctx, query, userID, scheduleDate).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading day snapshot: %w", err)
	}

	var shifts []models.CanonicalShift
	if err := json.Unmarshal(payload, &shifts); err != nil {
		return nil, fmt.Errorf("decoding day snapshot payload: %w", err)
	}
	return shifts, nil
}

func (s *Store) insertEvents(ctx context.Context, tx *sql.Tx, rows []models.StoredEvent) (int, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (
			event_id,
			user_id,
			schedule_date,
			event_type,
			location_fingerprint,
			customer_fingerprint,
			old_value_hash,
			new_value_hash,
			old_value,
			new_value,
			detected_at,
			source_session_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb, $10::jsonb, $11, $12)
		ON CONFLICT (
			user_id,
			schedule_date,
			location_fingerprint,
			event_type,
			old_value_hash,
			new_value_hash
		)
		DO NOTHING`, s.table("schedule_event"))

	inserted := 0
	for _, row := range rows {
		result, err := tx.ExecContext(ctx, query,
			row.EventID,
			row.UserID,
			row.ScheduleDate,
			string(row.Kind),
			row.LocationFingerprint,
			row.CustomerFingerprint,
			models.ValueHash(row.OldValue),
			models.ValueHash(row.NewValue),
			nullableJSON(row.OldValue),
			nullableJSON(row.NewValue),
			row.DetectedAt,
			row.SourceSessionID,
		)
		if err != nil {
			return inserted, fmt.Errorf("inserting %s event: %w", row.Kind, err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return inserted, fmt.Errorf("reading insert result: %w", err)
		}
		inserted += int(affected)
	}
	return inserted, nil
}

func (s *Store) upsertSnapshot(ctx context.Context, tx *sql.Tx, userID int64, scheduleDate, sourceSessionID string, snapshot []models.CanonicalShift, updatedAt time.Time) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (
			user_id,
			schedule_date,
			snapshot_payload,
			source_session_id,
			updated_at
		)
		VALUES ($1, $2, $3::jsonb, $4, $5)
		ON CONFLICT (user_id, schedule_date)
		DO UPDATE
		SET snapshot_payload = EXCLUDED.snapshot_payload,
		    source_session_id = EXCLUDED.source_session_id,
		    updated_at = EXCLUDED.updated_at`, s.table("day_snapshot"))

	_, err := tx.ExecContext(ctx, query, userID, scheduleDate, snapshotJSON(snapshot), sourceSessionID, updatedAt)
	if err != nil {
		return fmt.Errorf("upserting day snapshot: %w", err)
	}
	return nil
}

// buildEventRows shapes diff events into storable rows. The identity
// fingerprints come from the new value when present, otherwise the old
// one; an event carrying neither is malformed.
func buildEventRows(userID int64, scheduleDate, sourceSessionID string, detectedAt time.Time, events []models.DiffEvent) ([]models.StoredEvent, error) {
	rows := make([]models.StoredEvent, 0, len(events))
	for _, event := range events {
		identity := event.IdentityShift()
		if identity == nil {
			return nil, fmt.Errorf("%s event carries no shift identity", event.Kind)
		}
		rows = append(rows, models.StoredEvent{
			EventID:             uuid.NewString(),
			UserID:              userID,
			ScheduleDate:        scheduleDate,
			Kind:                event.Kind,
			LocationFingerprint: identity.LocationFingerprint,
			CustomerFingerprint: identity.CustomerFingerprint,
			OldValue:            event.Before,
			NewValue:            event.After,
			DetectedAt:          detectedAt,
			SourceSessionID:     sourceSessionID,
		})
	}
	return rows, nil
}

func nullableJSON(shift *models.CanonicalShift) any {
	if shift == nil {
		return nil
	}
	return string(shift.CanonicalJSON())
}

// snapshotJSON renders the snapshot payload as a compact sorted-key
// JSON array, matching the value-hash serialization of its elements.
func snapshotJSON(snapshot []models.CanonicalShift) string {
	buf := []byte{'['}
	for i := range snapshot {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, snapshot[i].CanonicalJSON()...)
	}
	return string(append(buf, ']'))
}

// dayLockKey derives the advisory lock key for (user, date) from the
// first eight bytes of a SHA-256 over both.
func dayLockKey(userID int64, scheduleDate string) int64 {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d|%s", userID, scheduleDate)))
	return int64(binary.BigEndian.Uint64(sum[:8]))
}
