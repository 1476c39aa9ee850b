package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/skiftkoll/skiftkoll/pkg/models"
)

// PersistNotifications stores notifications with insert-or-ignore
// semantics keyed on the deterministic notification id. Returns the
// number of newly inserted rows.
func (s *Store) PersistNotifications(ctx context.Context, notifications []models.Notification, createdAt time.Time) (int, error) {
	if len(notifications) == 0 {
		return 0, nil
	}
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (
			notification_id,
			user_id,
			schedule_date,
			source_session_id,
			status,
			notification_type,
			message,
			event_ids,
			created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9)
		ON CONFLICT (notification_id)
		DO NOTHING`, s.table("schedule_notification"))

	inserted := 0
	for _, notification := range notifications {
		if notification.NotificationID == "" {
			return inserted, fmt.Errorf("notification for user %d is missing its id", notification.UserID)
		}
		eventIDs := notification.EventIDs
		if eventIDs == nil {
			eventIDs = []string{}
		}
		payload, err := json.Marshal(eventIDs)
		if err != nil {
			return inserted, fmt.Errorf("encoding event ids: %w", err)
		}

		result, err := s.db.ExecContext(ctx, query,
			notification.NotificationID,
			notification.UserID,
			notification.ScheduleDate,
			notification.SourceSessionID,
			models.NotificationStatusPending,
			notification.Type,
			notification.Message,
			string(payload),
			createdAt,
		)
		if err != nil {
			return inserted, fmt.Errorf("inserting notification: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return inserted, fmt.Errorf("reading insert result: %w", err)
		}
		inserted += int(affected)
	}
	return inserted, nil
}

// AlreadyNotifiedEventIDs returns the event ids already covered by a
// stored notification for (user, date), so rebuilt notifications for a
// reprocessed session never duplicate.
func (s *Store) AlreadyNotifiedEventIDs(ctx context.Context, userID int64, scheduleDate string) (map[string]struct{}, error) {
	query := fmt.Sprintf(`
		SELECT event_ids
		FROM %s
		WHERE user_id = $1 AND schedule_date = $2`, s.table("schedule_notification"))

	rows, err := s.db.QueryContext(ctx, query, userID, scheduleDate)
	if err != nil {
		return nil, fmt.Errorf("querying notified event ids: %w", err)
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning notified event ids: %w", err)
		}
		var eventIDs []string
		if err := json.Unmarshal(payload, &eventIDs); err != nil {
			return nil, fmt.Errorf("decoding notified event ids: %w", err)
		}
		for _, id := range eventIDs {
			seen[id] = struct{}{}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading notified event ids: %w", err)
	}
	return seen, nil
}
