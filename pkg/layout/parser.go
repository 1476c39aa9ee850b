// Package layout turns OCR text boxes into structured schedule entries.
//
// The parser is purely geometric and deterministic: the same boxes, in any
// order and with one pixel of jitter, produce the same entries. Semantic
// cleanup happens downstream in pkg/normalize.
package layout

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/skiftkoll/skiftkoll/pkg/identity"
	"github.com/skiftkoll/skiftkoll/pkg/models"
)

var timeRangeRe = regexp.MustCompile(`\b(\d{1,2})[:.](\d{2})(?:\s*-\s*(\d{1,2})[:.](\d{2}))?\b`)

// Known UI-chrome lines that never carry schedule content.
var (
	noiseOnTimeRe        = regexp.MustCompile(`(?i)^on time$`)
	noiseCollaboratorsRe = regexp.MustCompile(`(?i)^collaborators(\s*\+\s*\d+)?$`)
	noiseThanksRe        = regexp.MustCompile(`(?i)^thank you for today!?$`)
	noiseDurationRe      = regexp.MustCompile(`(?i)^\d+\s*h(\s*\d+\s*m(in)?)?$|^\d+\s*m(in)?$`)
)

var streetSuffixVocab = []string{
	"vagen", "gatan", "grand", "torg", "torget", "allen", "alle",
	"stigen", "backen", "platsen", "plan", "vag", "gata",
}

const (
	// Horizontal tolerance for treating two stacked time lines as one
	// column, and for text that blocks such a merge.
	stackColumnTolerance = 40.0
)

type line struct {
	text string
	x    float64
	y    float64
	h    float64
}

type timeMarker struct {
	index   int // line index of the (first) time line
	start   string
	end     string
	skip    int      // extra line indices consumed by a stacked merge
	extra   []string // candidate title text contributed by the merge
	anchorY float64
	anchorX float64
}

// Parse converts OCR boxes into schedule entries ordered top-to-bottom,
// then left-to-right. Boxes with empty text are ignored.
func Parse(boxes []models.Box) []models.Entry {
	cleaned := make([]models.Box, 0, len(boxes))
	for _, box := range boxes {
		if cleanText(box.Text) != "" {
			cleaned = append(cleaned, box)
		}
	}
	if len(cleaned) == 0 {
		return nil
	}

	type anchored struct {
		y, x  float64
		entry models.Entry
	}
	var parsed []anchored

	for _, column := range splitColumns(cleaned) {
		lines := clusterLines(column)
		for _, card := range groupCards(lines) {
			for _, result := range parseCardEntries(card) {
				parsed = append(parsed, anchored{y: result.anchorY, x: result.anchorX, entry: result.entry})
			}
		}
	}

	sort.SliceStable(parsed, func(i, j int) bool {
		if parsed[i].y != parsed[j].y {
			return parsed[i].y < parsed[j].y
		}
		return parsed[i].x < parsed[j].x
	})

	entries := make([]models.Entry, len(parsed))
	for i, item := range parsed {
		entries[i] = item.entry
	}
	return entries
}

func cleanText(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// parseTime extracts a time marker from a line. Single times yield
// start == end; invalid clock values reject the whole marker.
func parseTime(text string) (start, end string, ok bool) {
	match := timeRangeRe.FindStringSubmatch(text)
	if match == nil {
		return "", "", false
	}
	start, ok = normalizeClock(match[1], match[2])
	if !ok {
		return "", "", false
	}
	if match[3] == "" || match[4] == "" {
		return start, start, true
	}
	end, ok = normalizeClock(match[3], match[4])
	if !ok {
		return "", "", false
	}
	return start, end, true
}

func normalizeClock(hourText, minuteText string) (string, bool) {
	hour, err := strconv.Atoi(hourText)
	if err != nil {
		return "", false
	}
	minute, err := strconv.Atoi(minuteText)
	if err != nil {
		return "", false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", false
	}
	return pad2(hour) + ":" + pad2(minute), true
}

func pad2(v int) string {
	if v < 10 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

// isNoiseLine reports whether a line is known UI chrome.
func isNoiseLine(text string) bool {
	t := cleanText(text)
	return noiseOnTimeRe.MatchString(t) ||
		noiseCollaboratorsRe.MatchString(t) ||
		noiseThanksRe.MatchString(t) ||
		noiseDurationRe.MatchString(t)
}

// looksLikeAddress reports whether text is plausibly a street address:
// it contains a digit, a comma, or a street-suffix word.
func looksLikeAddress(text string) bool {
	if strings.ContainsAny(text, "0123456789,") {
		return true
	}
	folded := strings.ToLower(identity.StripAccents(text))
	for _, token := range strings.Fields(folded) {
		for _, suffix := range streetSuffixVocab {
			if strings.HasSuffix(token, suffix) {
				return true
			}
		}
	}
	return false
}

func splitColumns(boxes []models.Box) [][]models.Box {
	if len(boxes) < 4 {
		return [][]models.Box{sortBoxes(boxes)}
	}

	centers := make([]float64, len(boxes))
	widths := make([]float64, len(boxes))
	for i, box := range boxes {
		centers[i] = box.CenterX()
		widths[i] = maxF(box.W, 1.0)
	}
	sort.Float64s(centers)
	medianWidth := medianF(widths)

	largestGap := -1.0
	splitIndex := -1
	for i := 0; i < len(centers)-1; i++ {
		if gap := centers[i+1] - centers[i]; gap > largestGap {
			largestGap = gap
			splitIndex = i
		}
	}

	threshold := maxF(120.0, medianWidth*1.8)
	if splitIndex < 0 || largestGap <= threshold {
		return [][]models.Box{sortBoxes(boxes)}
	}

	boundary := (centers[splitIndex] + centers[splitIndex+1]) / 2.0
	var left, right []models.Box
	for _, box := range boxes {
		if box.CenterX() <= boundary {
			left = append(left, box)
		} else {
			right = append(right, box)
		}
	}
	if len(left) < 2 || len(right) < 2 {
		return [][]models.Box{sortBoxes(boxes)}
	}

	columns := [][]models.Box{sortBoxes(left), sortBoxes(right)}
	sort.SliceStable(columns, func(i, j int) bool {
		return minX(columns[i]) < minX(columns[j])
	})
	return columns
}

func sortBoxes(boxes []models.Box) []models.Box {
	sorted := append([]models.Box(nil), boxes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y < sorted[j].Y
		}
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Text < sorted[j].Text
	})
	return sorted
}

func minX(boxes []models.Box) float64 {
	m := boxes[0].X
	for _, box := range boxes[1:] {
		if box.X < m {
			m = box.X
		}
	}
	return m
}

// clusterLines groups a column's boxes into text lines by vertical center,
// maintaining a running average to absorb jitter. Box rows are merged
// left-to-right; far-right metadata separated from the row body by a large
// gap is pruned unless it looks like an address.
func clusterLines(boxes []models.Box) []line {
	if len(boxes) == 0 {
		return nil
	}

	sorted := sortBoxes(boxes)
	heights := make([]float64, len(sorted))
	widths := make([]float64, len(sorted))
	for i, box := range sorted {
		heights[i] = maxF(box.H, 1.0)
		widths[i] = maxF(box.W, 1.0)
	}
	threshold := maxF(8.0, medianF(heights)*0.6)
	pruneGap := maxF(160.0, medianF(widths)*2.5)

	var rows [][]models.Box
	var current []models.Box
	currentCenter := 0.0
	for _, box := range sorted {
		center := box.CenterY()
		if len(current) == 0 {
			current = []models.Box{box}
			currentCenter = center
			continue
		}
		if absF(center-currentCenter) <= threshold {
			current = append(current, box)
			currentCenter = (currentCenter*float64(len(current)-1) + center) / float64(len(current))
		} else {
			rows = append(rows, current)
			current = []models.Box{box}
			currentCenter = center
		}
	}
	if len(current) > 0 {
		rows = append(rows, current)
	}

	var lines []line
	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool {
			if row[i].X != row[j].X {
				return row[i].X < row[j].X
			}
			return row[i].Text < row[j].Text
		})
		row = pruneFarRight(row, pruneGap)

		parts := make([]string, 0, len(row))
		for _, box := range row {
			parts = append(parts, cleanText(box.Text))
		}
		text := cleanText(strings.Join(parts, " "))
		if text == "" {
			continue
		}

		x, y := row[0].X, row[0].Y
		rowHeights := make([]float64, len(row))
		for i, box := range row {
			if box.X < x {
				x = box.X
			}
			if box.Y < y {
				y = box.Y
			}
			rowHeights[i] = maxF(box.H, 1.0)
		}
		lines = append(lines, line{text: text, x: x, y: y, h: medianF(rowHeights)})
	}

	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].y != lines[j].y {
			return lines[i].y < lines[j].y
		}
		return lines[i].x < lines[j].x
	})
	return lines
}

// pruneFarRight drops boxes pushed far to the right of the row body
// (timestamps, badges) unless the detached tail reads like an address.
func pruneFarRight(row []models.Box, pruneGap float64) []models.Box {
	for i := 0; i < len(row)-1; i++ {
		gap := row[i+1].X - (row[i].X + row[i].W)
		if gap <= pruneGap {
			continue
		}
		var tailParts []string
		for _, box := range row[i+1:] {
			tailParts = append(tailParts, cleanText(box.Text))
		}
		if looksLikeAddress(strings.Join(tailParts, " ")) {
			continue
		}
		return row[:i+1]
	}
	return row
}

func groupCards(lines []line) [][]line {
	if len(lines) == 0 {
		return nil
	}

	heights := make([]float64, len(lines))
	for i, l := range lines {
		heights[i] = maxF(l.h, 1.0)
	}
	gapThreshold := maxF(24.0, medianF(heights)*1.8)

	var cards [][]line
	var current []line
	for i, l := range lines {
		if len(current) == 0 {
			current = []line{l}
			continue
		}
		if l.y-lines[i-1].y > gapThreshold {
			cards = append(cards, current)
			current = []line{l}
		} else {
			current = append(current, l)
		}
	}
	if len(current) > 0 {
		cards = append(cards, current)
	}
	return cards
}

type cardResult struct {
	entry   models.Entry
	anchorY float64
	anchorX float64
}

func parseCardEntries(lines []line) []cardResult {
	if len(lines) == 0 {
		return nil
	}

	markers := extractTimeMarkers(lines)
	// Card without a time line is UI chrome (headers, banners).
	if len(markers) == 0 {
		return nil
	}

	consumed := make(map[int]bool)
	for _, marker := range markers {
		consumed[marker.index] = true
		for s := 1; s <= marker.skip; s++ {
			consumed[marker.index+s] = true
		}
	}

	var results []cardResult
	for position, marker := range markers {
		prevEnd := -1
		if position > 0 {
			prev := markers[position-1]
			prevEnd = prev.index + prev.skip
		}
		nextStart := len(lines)
		if position+1 < len(markers) {
			nextStart = markers[position+1].index
		}

		var before, after []int
		for i := prevEnd + 1; i < marker.index; i++ {
			if !consumed[i] && !isNoiseLine(lines[i].text) && cleanText(lines[i].text) != "" {
				before = append(before, i)
			}
		}
		for i := marker.index + marker.skip + 1; i < nextStart; i++ {
			if !consumed[i] && !isNoiseLine(lines[i].text) && cleanText(lines[i].text) != "" {
				after = append(after, i)
			}
		}

		var titleParts []string
		var trailing []int
		switch {
		case len(before) > 0 && (position == 0 || len(after) == 0):
			// Title lines above the first time line.
			for _, i := range before {
				titleParts = append(titleParts, cleanText(lines[i].text))
			}
			trailing = after
		case len(after) > 0:
			titleParts = append(titleParts, cleanText(lines[after[0]].text))
			trailing = after[1:]
		case len(before) > 0:
			titleParts = append(titleParts, cleanText(lines[before[len(before)-1]].text))
		}
		titleParts = append(titleParts, marker.extra...)

		title := cleanText(strings.Join(titleParts, " "))
		if title == "" {
			continue
		}

		var address, location string
		switch {
		case len(trailing) == 0:
		case len(trailing) == 1:
			text := cleanText(lines[trailing[0]].text)
			if looksLikeAddress(text) {
				address = text
			} else {
				location = text
			}
		default:
			var addressParts []string
			for _, i := range trailing[:len(trailing)-1] {
				addressParts = append(addressParts, cleanText(lines[i].text))
			}
			address = strings.Join(addressParts, " ")
			location = cleanText(lines[trailing[len(trailing)-1]].text)
		}

		results = append(results, cardResult{
			entry: models.Entry{
				Start:    marker.start,
				End:      marker.end,
				Title:    title,
				Location: location,
				Address:  address,
			},
			anchorY: marker.anchorY,
			anchorX: marker.anchorX,
		})
	}
	return results
}

// extractTimeMarkers finds the card's time lines and merges stacked
// single-time pairs (start above, end below, same column, nothing in the
// left column between them) into one range marker.
func extractTimeMarkers(lines []line) []timeMarker {
	var raw []rawMarker
	for i, l := range lines {
		if start, end, ok := parseTime(l.text); ok {
			raw = append(raw, rawMarker{index: i, start: start, end: end})
		}
	}

	var markers []timeMarker
	for i := 0; i < len(raw); i++ {
		current := raw[i]
		marker := timeMarker{
			index:   current.index,
			start:   current.start,
			end:     current.end,
			anchorY: lines[current.index].y,
			anchorX: lines[current.index].x,
		}

		if i+1 < len(raw) && canMergeStacked(lines, current, raw[i+1]) {
			next := raw[i+1]
			marker.end = next.start
			marker.skip = next.index - current.index
			marker.extra = stackedTitleCandidates(lines, current.index, next.index)
			i++
		}

		markers = append(markers, marker)
	}
	return markers
}

type rawMarker struct {
	index      int
	start, end string
}

func canMergeStacked(lines []line, first, second rawMarker) bool {
	if first.start != first.end || second.start != second.end {
		return false
	}
	firstLine, secondLine := lines[first.index], lines[second.index]
	if absF(firstLine.x-secondLine.x) > stackColumnTolerance {
		return false
	}
	maxGap := maxF(48.0, maxF(firstLine.h, secondLine.h)*3.0)
	if secondLine.y-firstLine.y > maxGap {
		return false
	}
	// Left-column text between the two times means they are separate
	// markers, not a stacked range.
	columnX := minF(firstLine.x, secondLine.x)
	for i := first.index + 1; i < second.index; i++ {
		if lines[i].x <= columnX+stackColumnTolerance {
			return false
		}
	}
	return true
}

// stackedTitleCandidates collects the start line's text after the time
// token plus any non-noise right-column lines between the stacked times.
func stackedTitleCandidates(lines []line, firstIdx, secondIdx int) []string {
	var candidates []string
	remainder := cleanText(timeRangeRe.ReplaceAllString(lines[firstIdx].text, " "))
	if remainder != "" && !isNoiseLine(remainder) {
		candidates = append(candidates, remainder)
	}
	for i := firstIdx + 1; i < secondIdx; i++ {
		text := cleanText(lines[i].text)
		if text != "" && !isNoiseLine(text) {
			candidates = append(candidates, text)
		}
	}
	return candidates
}

func medianF(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2.0
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
