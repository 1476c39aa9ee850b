package layout

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/skiftkoll/skiftkoll/pkg/identity"
	"github.com/skiftkoll/skiftkoll/pkg/models"
)

// ErrNoScheduleDate is returned when no box text parses as a schedule date.
var ErrNoScheduleDate = errors.New("could not resolve schedule date from OCR text")

var (
	dateWithWeekdayRe = regexp.MustCompile(`([A-Za-zÅÄÖåäö]+)\s+(\d{1,2})\s+([A-Za-zÅÄÖåäö]+)(?:\s+(\d{4}))?`)
	dateDayMonthRe    = regexp.MustCompile(`\b(\d{1,2})\s+([A-Za-zÅÄÖåäö]+)(?:\s+(\d{4}))?\b`)
)

var weekdayNames = map[string]struct{}{
	"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {},
	"friday": {}, "saturday": {}, "sunday": {},
	"mandag": {}, "tisdag": {}, "onsdag": {}, "torsdag": {},
	"fredag": {}, "lordag": {}, "sondag": {},
}

var monthMap = map[string]time.Month{
	"jan": time.January, "january": time.January, "januari": time.January,
	"feb": time.February, "february": time.February, "februari": time.February,
	"mar": time.March, "march": time.March, "mars": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May, "maj": time.May,
	"jun": time.June, "june": time.June, "juni": time.June,
	"jul": time.July, "july": time.July, "juli": time.July,
	"aug": time.August, "august": time.August, "augusti": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October, "okt": time.October, "oktober": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// ExtractScheduleDate resolves the schedule date shown in an image's UI
// text. Line-merged candidates are tried before raw box texts, so a date
// split across OCR tokens still parses. defaultYear fills a missing
// on-screen year; 0 means unconfigured.
func ExtractScheduleDate(boxes []models.Box, defaultYear int) (time.Time, error) {
	for _, text := range dateCandidateTexts(boxes) {
		parsed, err := parseScheduleDateText(text, defaultYear)
		if err != nil {
			return time.Time{}, err
		}
		if !parsed.IsZero() {
			return parsed, nil
		}
	}
	return time.Time{}, ErrNoScheduleDate
}

func dateCandidateTexts(boxes []models.Box) []string {
	cleaned := make([]models.Box, 0, len(boxes))
	for _, box := range boxes {
		if text := cleanText(box.Text); text != "" {
			box.Text = text
			box.H = maxF(box.H, 1.0)
			cleaned = append(cleaned, box)
		}
	}
	if len(cleaned) == 0 {
		return nil
	}

	sort.SliceStable(cleaned, func(i, j int) bool {
		if cleaned[i].Y != cleaned[j].Y {
			return cleaned[i].Y < cleaned[j].Y
		}
		return cleaned[i].X < cleaned[j].X
	})

	var texts []string
	for _, l := range clusterLines(cleaned) {
		texts = append(texts, l.text)
	}
	for _, box := range cleaned {
		texts = append(texts, box.Text)
	}
	return texts
}

// parseScheduleDateText returns the zero time when no date is found; an
// error is reserved for a recognized date missing its year with no
// default configured.
func parseScheduleDateText(text string, defaultYear int) (time.Time, error) {
	for _, match := range dateWithWeekdayRe.FindAllStringSubmatch(text, -1) {
		if _, ok := weekdayNames[normalizeDateToken(match[1])]; !ok {
			continue
		}
		resolved, err := buildDate(match[2], match[3], match[4], defaultYear)
		if err != nil {
			return time.Time{}, err
		}
		if !resolved.IsZero() {
			return resolved, nil
		}
	}
	for _, match := range dateDayMonthRe.FindAllStringSubmatch(text, -1) {
		resolved, err := buildDate(match[1], match[2], match[3], defaultYear)
		if err != nil {
			return time.Time{}, err
		}
		if !resolved.IsZero() {
			return resolved, nil
		}
	}
	return time.Time{}, nil
}

func buildDate(dayText, monthText, yearText string, defaultYear int) (time.Time, error) {
	month, ok := monthMap[normalizeDateToken(monthText)]
	if !ok {
		return time.Time{}, nil
	}
	day, err := strconv.Atoi(dayText)
	if err != nil {
		return time.Time{}, nil
	}

	year := defaultYear
	if yearText != "" {
		year, err = strconv.Atoi(yearText)
		if err != nil {
			return time.Time{}, nil
		}
	}
	if year == 0 {
		return time.Time{}, fmt.Errorf("date text has no year and OCR_DEFAULT_YEAR is not configured")
	}

	candidate := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if candidate.Day() != day || candidate.Month() != month {
		// Day overflowed the month (e.g. 31 februari); not a real date.
		return time.Time{}, nil
	}
	return candidate, nil
}

func normalizeDateToken(value string) string {
	return strings.ToLower(identity.StripAccents(cleanText(value)))
}
