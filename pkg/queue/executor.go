package queue

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/skiftkoll/skiftkoll/ent"
	"github.com/skiftkoll/skiftkoll/ent/captureimage"
	"github.com/skiftkoll/skiftkoll/pkg/aggregate"
	"github.com/skiftkoll/skiftkoll/pkg/notify"
	"github.com/skiftkoll/skiftkoll/pkg/store"
)

// PipelineExecutor runs the full finalization pipeline for one session:
// images -> input source -> aggregate -> event store -> notifications.
type PipelineExecutor struct {
	client  *ent.Client
	store   *store.Store
	builder *notify.Builder
	source  InputSource
}

// NewPipelineExecutor wires the pipeline dependencies.
func NewPipelineExecutor(client *ent.Client, st *store.Store, builder *notify.Builder, source InputSource) *PipelineExecutor {
	return &PipelineExecutor{
		client:  client,
		store:   st,
		builder: builder,
		source:  source,
	}
}

// Execute processes one claimed session. All persistence except the
// terminal state transition happens here; failures come back tagged on
// the result so the worker can pick the right transition.
func (e *PipelineExecutor) Execute(ctx context.Context, session *ent.CaptureSession) *ExecutionResult {
	log := slog.With("session_id", session.ID, "user_id", session.UserID)
	result := &ExecutionResult{}

	images, err := e.loadSessionImages(ctx, session.ID)
	if err != nil {
		result.Err = err
		return result
	}
	log.Info("Session images loaded", "image_count", len(images))

	observation, err := e.source.Load(ctx, session, images)
	if err != nil {
		result.Err = err
		return result
	}
	log.Info("OCR stage completed",
		"schedule_date", observation.ScheduleDate,
		"image_count", len(observation.ImageShifts),
		"box_count", observation.BoxCount)

	day, err := aggregate.Session(observation.ImageShifts, observation.ScheduleDate, aggregate.DefaultTimeTolerance)
	if err != nil {
		result.Err = NewStageError(StageAggregate, "failed aggregating session shifts", err)
		return result
	}
	snapshot := day.Snapshot()
	result.ScheduleDate = observation.ScheduleDate
	result.ShiftCount = len(snapshot)
	log.Info("Aggregation completed",
		"schedule_date", observation.ScheduleDate,
		"shift_count", len(snapshot))

	detectedAt := time.Now().UTC()
	events, inserted, err := e.store.ProcessObservation(ctx,
		session.UserID, observation.ScheduleDate, session.ID, snapshot, detectedAt)
	if err != nil {
		var diffErr *store.DiffError
		if errors.As(err, &diffErr) {
			result.Err = NewStageError(StageDiff, "failed diffing schedules", err)
		} else {
			result.Err = NewStageError(StageDB, "failed persisting events and snapshot", err)
		}
		return result
	}
	result.EventCount = len(events)
	result.InsertedEventCount = inserted
	log.Info("Events persisted",
		"event_count", len(events),
		"inserted_event_count", inserted)

	alreadyNotified, err := e.store.AlreadyNotifiedEventIDs(ctx, session.UserID, observation.ScheduleDate)
	if err != nil {
		result.Err = NewStageError(StageDB, "failed loading notified event ids", err)
		return result
	}

	notifications := e.builder.Build(events, alreadyNotified)
	notifications = notify.AnnotateWithImages(notifications, observation.ImageNames)
	result.NotificationCount = len(notifications)

	// Untagged on purpose: a notification persist failure must leave
	// the session in processing, since events and snapshot are already
	// durable and the notification ids are deterministic.
	stored, err := e.store.PersistNotifications(ctx, notifications, detectedAt)
	if err != nil {
		result.Err = err
		return result
	}
	result.StoredNotifications = stored
	log.Info("Notifications stored",
		"notification_count", len(notifications),
		"stored_notification_count", stored)

	return result
}

// loadSessionImages returns the session's images in sequence order.
// A session without images is a lifecycle defect: it should never have
// passed the finalizable query.
func (e *PipelineExecutor) loadSessionImages(ctx context.Context, sessionID string) ([]*ent.CaptureImage, error) {
	images, err := e.client.CaptureImage.Query().
		Where(captureimage.SessionIDEQ(sessionID)).
		Order(ent.Asc(captureimage.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, NewStageError(StageLifecycle, "failed loading session images", err)
	}
	if len(images) == 0 {
		return nil, NewStageError(StageLifecycle, "session has no capture images", nil)
	}
	return images, nil
}
