package notify

import (
	"strings"

	"github.com/skiftkoll/skiftkoll/pkg/models"
)

// AnnotateWithImages appends the source capture image names to each
// notification message, e.g. " (image: a.png)" or " (images: a.png,
// b.png)". A message already carrying the suffix is left alone, so the
// annotation is idempotent.
func AnnotateWithImages(notifications []models.Notification, imageNames []string) []models.Notification {
	if len(notifications) == 0 || len(imageNames) == 0 {
		return notifications
	}

	label := "image"
	if len(imageNames) > 1 {
		label = "images"
	}
	suffix := " (" + label + ": " + strings.Join(imageNames, ", ") + ")"

	annotated := make([]models.Notification, len(notifications))
	for i, notification := range notifications {
		if !strings.HasSuffix(notification.Message, suffix) {
			notification.Message += suffix
		}
		annotated[i] = notification
	}
	return annotated
}
