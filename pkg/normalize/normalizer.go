// Package normalize turns parsed layout entries into canonical shifts:
// validated times, decomposed addresses, classified shift types and
// stable entity fingerprints.
package normalize

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/skiftkoll/skiftkoll/pkg/identity"
	"github.com/skiftkoll/skiftkoll/pkg/models"
)

// ErrInvalidTime marks an entry whose start or end is not a valid HH:MM
// clock value.
var ErrInvalidTime = errors.New("invalid time value")

var (
	timeValueRe   = regexp.MustCompile(`^\s*(\d{1,2})[:.](\d{2})\s*$`)
	titleBulletRe = regexp.MustCompile(`\s*[•·]\s*`)
)

var nonWorkActivityTypes = map[string]struct{}{
	models.ShiftTypeBreak:       {},
	models.ShiftTypeTravel:      {},
	models.ShiftTypeMeeting:     {},
	models.ShiftTypeAdmin:       {},
	models.ShiftTypeLeave:       {},
	models.ShiftTypeUnavailable: {},
	models.ShiftTypeTraining:    {},
}

func isNonWorkActivityType(shiftType string) bool {
	_, ok := nonWorkActivityTypes[shiftType]
	return ok
}

// Entry converts one parsed entry into its canonical shift.
func Entry(entry models.Entry) (models.CanonicalShift, error) {
	start, err := normalizeTime(entry.Start, "start")
	if err != nil {
		return models.CanonicalShift{}, err
	}
	end, err := normalizeTime(entry.End, "end")
	if err != nil {
		return models.CanonicalShift{}, err
	}

	customerTitle, jobTypeHint := splitTitleComponents(entry.Title)
	address := decomposeAddress(entry.Address, entry.Location)
	rawTypeLabel := extractRawTypeLabel(entry, customerTitle, jobTypeHint)
	shiftType := classifyShift(entry, address, rawTypeLabel)
	customerName := extractCustomerName(entry, customerTitle, jobTypeHint, rawTypeLabel, shiftType, address)

	locationKey := identity.LocationFingerprint(address.Street, address.StreetNumber, address.PostalArea, address.City)

	customerKey := CustomerKey(customerName, rawTypeLabel, shiftType)

	return models.CanonicalShift{
		Start:               start,
		End:                 end,
		CustomerName:        customerName,
		CustomerFingerprint: customerKey,
		Street:              address.Street,
		StreetNumber:        address.StreetNumber,
		PostalCode:          address.PostalCode,
		PostalArea:          address.PostalArea,
		City:                address.City,
		LocationFingerprint: locationKey,
		ShiftType:           shiftType,
		RawTypeLabel:        rawTypeLabel,
	}, nil
}

// Entries converts a parsed image's entries in order.
func Entries(entries []models.Entry) ([]models.CanonicalShift, error) {
	shifts := make([]models.CanonicalShift, 0, len(entries))
	for i, entry := range entries {
		shift, err := Entry(entry)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		shifts = append(shifts, shift)
	}
	return shifts, nil
}

// CustomerKey computes the customer fingerprint from the identity anchor:
// the first non-empty of customer name, cleaned raw type label and shift
// type. The aggregator uses it to recompute fingerprints after merging.
func CustomerKey(customerName, rawTypeLabel, shiftType string) string {
	anchor := customerName
	if anchor == "" {
		anchor = normalizeCustomerName(rawTypeLabel)
	}
	if anchor == "" {
		anchor = shiftType
	}
	return identity.CustomerFingerprint(anchor)
}

func normalizeTime(value, fieldName string) (string, error) {
	match := timeValueRe.FindStringSubmatch(value)
	if match == nil {
		return "", fmt.Errorf("%w: bad %s %q", ErrInvalidTime, fieldName, value)
	}
	hour, _ := strconv.Atoi(match[1])
	minute, _ := strconv.Atoi(match[2])
	if hour > 23 || minute > 59 {
		return "", fmt.Errorf("%w: bad %s %q", ErrInvalidTime, fieldName, value)
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// splitTitleComponents separates a title into (customer hint, job type
// hint). Bullets are a hard separator; otherwise the first token matching
// the job-type vocabulary starts the hint.
func splitTitleComponents(value string) (string, string) {
	collapsed := collapseWhitespace(value)
	if collapsed == "" {
		return "", ""
	}

	if titleBulletRe.MatchString(collapsed) {
		parts := titleBulletRe.Split(collapsed, 2)
		customer := collapseWhitespace(parts[0])
		jobType := ""
		if len(parts) > 1 {
			jobType = collapseWhitespace(stripTrailingDuration(parts[1]))
		}
		return customer, jobType
	}

	withoutDuration := stripTrailingDuration(collapsed)
	tokens := strings.Split(withoutDuration, " ")
	for i, token := range tokens {
		if i == 0 {
			continue
		}
		normalized := strings.ToLower(normalizeText(token))
		if _, ok := jobTypeHintTokens[normalized]; ok {
			return collapseWhitespace(strings.Join(tokens[:i], " ")),
				collapseWhitespace(strings.Join(tokens[i:], " "))
		}
	}
	return withoutDuration, ""
}

// classifyShift resolves the shift type hierarchically: raw label alone,
// then the combined title+address+location text, then street evidence.
func classifyShift(entry models.Entry, address AddressParts, rawTypeLabel string) string {
	normalizedRaw := strings.ToLower(normalizeText(rawTypeLabel))
	if classified := classifyFromNormalizedLabel(normalizedRaw); classified != models.ShiftTypeUnknown {
		return classified
	}

	combined := strings.Join([]string{
		strings.ToLower(normalizeText(entry.Title)),
		strings.ToLower(normalizeText(entry.Address)),
		strings.ToLower(normalizeText(entry.Location)),
	}, " ")
	if classified := classifyFromNormalizedLabel(combined); classified != models.ShiftTypeUnknown {
		return classified
	}
	if strings.Contains(combined, "hem") || (address.Street != "" && address.StreetNumber != "") {
		return models.ShiftTypeWork
	}
	return models.ShiftTypeUnknown
}

func classifyFromNormalizedLabel(value string) string {
	if value == "" {
		return models.ShiftTypeUnknown
	}
	if containsAny(value, "restid", "inter tid") {
		return models.ShiftTypeTravel
	}
	if containsAny(value, "lunch", "rast", "thank you for today") {
		return models.ShiftTypeBreak
	}
	if strings.Contains(value, "personalmote") {
		return models.ShiftTypeMeeting
	}
	if containsAny(value, "nyckelhantering", "forberedelser till iss") {
		return models.ShiftTypeAdmin
	}
	if strings.Contains(value, "vard av barn") {
		return models.ShiftTypeLeave
	}
	if containsAny(value, "ej disponibel", "avbokade uppdrag", "avokade uppdrag") {
		return models.ShiftTypeUnavailable
	}
	if strings.Contains(value, "utbildning") {
		return models.ShiftTypeTraining
	}
	if containsAny(value,
		"stadservice", "stadning", "storstadning", "inledande storstadning",
		"reklamation", "omstadning", "extra stadtillfalle", "fonsterputs",
		"kylskapsrengoring", "ugnsrengoring", "clickandgo", "skola",
		"kontor", "hemstadning",
	) {
		return models.ShiftTypeWork
	}
	return models.ShiftTypeUnknown
}

func containsAny(value string, tokens ...string) bool {
	for _, token := range tokens {
		if strings.Contains(value, token) {
			return true
		}
	}
	return false
}

// normalizeCustomerName cleans a name candidate: durations stripped,
// corporate noise tokens dropped (unless that empties the name),
// title-cased.
func normalizeCustomerName(value string) string {
	normalized := strings.ToLower(normalizeText(stripTrailingDuration(value)))
	fields := strings.Fields(normalized)

	tokens := make([]string, 0, len(fields))
	for _, token := range fields {
		if !isCompanyNoiseToken(token) {
			tokens = append(tokens, token)
		}
	}
	if len(tokens) == 0 {
		tokens = fields
	}
	return toTitleCase(strings.Join(tokens, " "))
}

var companyNoiseTokens = map[string]struct{}{
	"ab": {}, "hb": {}, "stadservice": {}, "stadtjanst": {}, "stadning": {},
}

func isCompanyNoiseToken(token string) bool {
	_, ok := companyNoiseTokens[token]
	return ok
}

// extractCustomerName applies the non-work clearing rules: an activity
// row without location context carries no customer.
func extractCustomerName(entry models.Entry, customerTitle, jobTypeHint, rawTypeLabel, shiftType string, address AddressParts) string {
	source := customerTitle
	if source == "" {
		source = entry.Title
	}
	candidate := normalizeCustomerName(source)
	if rawTypeLabel == "" {
		return candidate
	}

	var hintParts []string
	for _, part := range []string{customerTitle, jobTypeHint} {
		if part != "" {
			hintParts = append(hintParts, part)
		}
	}
	combinedHintLabel := normalizeTypeLabel(strings.Join(hintParts, " "))
	combinedHintType := models.ShiftTypeUnknown
	if combinedHintLabel != "" {
		combinedHintType = classifyFromNormalizedLabel(strings.ToLower(normalizeText(combinedHintLabel)))
	}

	hasCustomerHint := normalizeText(customerTitle) != "" && normalizeText(jobTypeHint) != ""
	hasLocationContext := address.Street != "" ||
		address.StreetNumber != "" ||
		address.City != "" ||
		address.PostalCode != "" ||
		normalizeText(entry.Address) != "" ||
		normalizeText(entry.Location) != ""

	if isNonWorkActivityType(combinedHintType) && !hasLocationContext {
		return ""
	}
	if isNonWorkActivityType(shiftType) && !hasLocationContext {
		return ""
	}
	if hasCustomerHint || hasLocationContext {
		return candidate
	}
	if isNonWorkActivityType(shiftType) {
		return ""
	}
	return candidate
}
