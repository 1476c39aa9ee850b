package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/skiftkoll/skiftkoll/ent"
	"github.com/skiftkoll/skiftkoll/pkg/layout"
	"github.com/skiftkoll/skiftkoll/pkg/models"
	"github.com/skiftkoll/skiftkoll/pkg/normalize"
	"github.com/skiftkoll/skiftkoll/pkg/objectstore"
	"github.com/skiftkoll/skiftkoll/pkg/ocr"
)

// Observation is one session's worth of normalized schedule content,
// ready for aggregation.
type Observation struct {
	// ScheduleDate is the single ISO date all images agree on.
	ScheduleDate string

	// ImageShifts holds the canonical shifts per source image.
	ImageShifts [][]models.CanonicalShift

	// ImageNames are the deduplicated capture image file names, used to
	// annotate notifications.
	ImageNames []string

	// BoxCount is the total number of OCR boxes across all images.
	BoxCount int
}

// InputSource turns a claimed session's images into an Observation.
// Implementations tag their failures with StageOCR, StageLayout or
// StageNormalize.
type InputSource interface {
	Load(ctx context.Context, session *ent.CaptureSession, images []*ent.CaptureImage) (*Observation, error)
}

// FixtureSource replays a JSON payload file instead of running OCR.
// Used in development and end-to-end tests.
type FixtureSource struct {
	PayloadPath string
}

type fixturePayload struct {
	ScheduleDate string         `json:"schedule_date"`
	Entries      []models.Entry `json:"entries"`
}

// Load reads the fixture payload and normalizes its entries. The same
// payload is returned for every session, which is exactly what the
// fixture mode is for.
func (f *FixtureSource) Load(_ context.Context, _ *ent.CaptureSession, images []*ent.CaptureImage) (*Observation, error) {
	raw, err := os.ReadFile(f.PayloadPath)
	if err != nil {
		return nil, NewStageError(StageOCR, fmt.Sprintf("failed reading fixture payload %s", f.PayloadPath), err)
	}

	var payload fixturePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, NewStageError(StageOCR, fmt.Sprintf("fixture payload is not valid JSON: %s", f.PayloadPath), err)
	}
	if _, err := time.Parse("2006-01-02", payload.ScheduleDate); err != nil {
		return nil, NewStageError(StageOCR, fmt.Sprintf("fixture payload has invalid schedule_date %q", payload.ScheduleDate), err)
	}
	if payload.Entries == nil {
		return nil, NewStageError(StageOCR, "fixture payload must include `entries` as a list", nil)
	}

	shifts, err := normalize.Entries(payload.Entries)
	if err != nil {
		return nil, NewStageError(StageNormalize, "failed normalizing fixture entries", err)
	}

	return &Observation{
		ScheduleDate: payload.ScheduleDate,
		ImageShifts:  [][]models.CanonicalShift{shifts},
		ImageNames:   extractImageNames(images),
	}, nil
}

// OCRSource fetches image bytes from the object store, runs the OCR
// engine, and parses each image's layout. All images in a session must
// show the same schedule date.
type OCRSource struct {
	Objects *objectstore.Client
	Engine  *ocr.Client

	// DefaultYear resolves on-screen dates without a year. Zero falls
	// back to the session's creation year.
	DefaultYear int
}

// Load runs OCR and layout parsing for every capture image in sequence
// order.
func (o *OCRSource) Load(ctx context.Context, session *ent.CaptureSession, images []*ent.CaptureImage) (*Observation, error) {
	defaultYear := o.DefaultYear
	if defaultYear == 0 {
		defaultYear = session.CreatedAt.Year()
	}

	imageShifts := make([][]models.CanonicalShift, 0, len(images))
	imageDates := make([]time.Time, 0, len(images))
	boxCount := 0

	for _, image := range images {
		if image.ObjectKey == "" {
			return nil, NewStageError(StageOCR, fmt.Sprintf("session %s image %s is missing its object key", session.ID, image.ID), nil)
		}

		imageBytes, err := o.Objects.FetchObject(ctx, image.ObjectKey)
		if err != nil {
			return nil, NewStageError(StageOCR, fmt.Sprintf("failed downloading object %s", image.ObjectKey), err)
		}

		boxes, err := o.Engine.Recognize(ctx, path.Base(image.ObjectKey), imageBytes)
		if err != nil {
			return nil, NewStageError(StageOCR, fmt.Sprintf("failed OCR on image %s", image.ObjectKey), err)
		}
		boxCount += len(boxes)

		imageDate, err := layout.ExtractScheduleDate(boxes, defaultYear)
		if err != nil {
			return nil, NewStageError(StageLayout, fmt.Sprintf("failed resolving schedule date for image %s", image.ObjectKey), err)
		}

		shifts, err := normalize.Entries(layout.Parse(boxes))
		if err != nil {
			return nil, NewStageError(StageNormalize, fmt.Sprintf("failed normalizing entries for image %s", image.ObjectKey), err)
		}

		imageDates = append(imageDates, imageDate)
		imageShifts = append(imageShifts, shifts)
	}

	scheduleDate, err := ensureSingleScheduleDate(imageDates)
	if err != nil {
		return nil, NewStageError(StageLayout, "session images disagree on schedule date", err)
	}

	return &Observation{
		ScheduleDate: scheduleDate,
		ImageShifts:  imageShifts,
		ImageNames:   extractImageNames(images),
		BoxCount:     boxCount,
	}, nil
}

// ensureSingleScheduleDate verifies all images resolved the same date.
func ensureSingleScheduleDate(dates []time.Time) (string, error) {
	if len(dates) == 0 {
		return "", fmt.Errorf("no schedule dates resolved")
	}
	first := dates[0].Format("2006-01-02")
	for _, d := range dates[1:] {
		if got := d.Format("2006-01-02"); got != first {
			return "", fmt.Errorf("multiple schedule dates in one session: %s and %s", first, got)
		}
	}
	return first, nil
}

// extractImageNames derives display names from object keys, in sequence
// order, deduplicated.
func extractImageNames(images []*ent.CaptureImage) []string {
	names := make([]string, 0, len(images))
	seen := make(map[string]struct{}, len(images))
	for _, image := range images {
		name := ""
		if image.ObjectKey != "" {
			name = path.Base(image.ObjectKey)
		}
		if name == "" || name == "." || name == "/" {
			name = fmt.Sprintf("sequence-%d", image.Sequence)
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
