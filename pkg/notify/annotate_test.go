package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skiftkoll/skiftkoll/pkg/models"
)

func TestAnnotateWithImages(t *testing.T) {
	notifications := []models.Notification{
		{NotificationID: "n1", Message: "New shift added tomorrow 10:00–14:00 in Billdal"},
		{NotificationID: "n2", Message: "3 shifts updated for tomorrow"},
	}

	annotated := AnnotateWithImages(notifications, []string{"a.png"})
	assert.Equal(t, "New shift added tomorrow 10:00–14:00 in Billdal (image: a.png)", annotated[0].Message)
	assert.Equal(t, "3 shifts updated for tomorrow (image: a.png)", annotated[1].Message)

	// Inputs are not mutated.
	assert.Equal(t, "3 shifts updated for tomorrow", notifications[1].Message)
}

func TestAnnotateWithImagesPlural(t *testing.T) {
	annotated := AnnotateWithImages(
		[]models.Notification{{Message: "Shift removed today 08:00–10:00 in Molndal"}},
		[]string{"a.png", "b.png"},
	)
	assert.Equal(t, "Shift removed today 08:00–10:00 in Molndal (images: a.png, b.png)", annotated[0].Message)
}

func TestAnnotateWithImagesIdempotent(t *testing.T) {
	once := AnnotateWithImages([]models.Notification{{Message: "msg"}}, []string{"a.png"})
	twice := AnnotateWithImages(once, []string{"a.png"})
	assert.Equal(t, "msg (image: a.png)", twice[0].Message)
}

func TestAnnotateWithImagesNoNames(t *testing.T) {
	notifications := []models.Notification{{Message: "msg"}}
	assert.Equal(t, notifications, AnnotateWithImages(notifications, nil))
}
