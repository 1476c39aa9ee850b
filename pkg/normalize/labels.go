package normalize

import (
	"regexp"
	"sort"
	"strings"

	"github.com/skiftkoll/skiftkoll/pkg/models"
)

// jobTypeHintTokens mark where a title switches from customer name to job
// description when no bullet separator is present. Tokens are compared in
// normalized (accent-stripped, lowercase) form.
var jobTypeHintTokens = map[string]struct{}{
	"lunch": {}, "restid": {}, "personalmote": {}, "utbildning": {},
	"stadservice": {}, "stadning": {}, "storstadning": {}, "inledande": {},
	"reklamation": {}, "omstadning": {}, "extra": {}, "fonsterputs": {},
	"kylskapsrengoring": {}, "ugnsrengoring": {}, "hemstadning": {},
	"kontor": {}, "skola": {}, "nyckelhantering": {}, "forberedelser": {},
	"disponibel": {}, "avbokade": {}, "avokade": {}, "vard": {}, "barn": {},
	"clickandgo": {},
}

// activityLabelOverrides map a fully-normalized label directly to its
// canonical spelling, bypassing pattern and fuzzy matching.
var activityLabelOverrides = map[string]string{
	"thank you for today":  "Thank You For Today",
	"thank you for today!": "Thank You For Today",
	"inter tid":            "Inter Tid",
	"personalmote":         "Personalmote",
	"vard av barn":         "Vard Av Barn",
	"nyckelhantering":      "Nyckelhantering",
	"forberedelser till iss": "Forberedelser Till Iss",
	"ej disponibel":          "Ej Disponibel",
	"avbokade uppdrag":       "Avbokade Uppdrag",
	"avokade uppdrag":        "Avbokade Uppdrag",
}

// knownLabelPattern is one ordered entry of the canonical label table.
// Longer, more specific patterns come first so they win over their
// substrings.
type knownLabelPattern struct {
	pattern   string
	canonical string
	wordRe    *regexp.Regexp
}

var knownTypeLabelPatterns = buildKnownTypeLabelPatterns([][2]string{
	{"utbildning handledarhus", "Utbildning Handledarhus"},
	{"forberedelser till iss", "Forberedelser Till Iss"},
	{"avbokade uppdrag", "Avbokade Uppdrag"},
	{"avokade uppdrag", "Avbokade Uppdrag"},
	{"ej disponibel", "Ej Disponibel"},
	{"extra stadtillfalle", "Extra Stadtillfalle"},
	{"inledande storstadning", "Inledande Storstadning"},
	{"reklamation omstadning", "Reklamation Omstadning"},
	{"kylskapsrengoring", "Kylskapsrengoring"},
	{"ugnsrengoring", "Ugnsrengoring"},
	{"nyckelhantering", "Nyckelhantering"},
	{"personalmote", "Personalmote"},
	{"thank you for today", "Thank You For Today"},
	{"inter tid", "Inter Tid"},
	{"vard av barn", "Vard Av Barn"},
	{"clickandgo", "ClickAndGo"},
	{"storstadning", "Storstadning"},
	{"stadservice", "Stadservice"},
	{"reklamation", "Reklamation"},
	{"fonsterputs", "Fonsterputs"},
	{"utbildning", "Utbildning"},
	{"restid", "Restid"},
	{"lunch", "Lunch"},
})

func buildKnownTypeLabelPatterns(pairs [][2]string) []knownLabelPattern {
	patterns := make([]knownLabelPattern, len(pairs))
	for i, pair := range pairs {
		patterns[i] = knownLabelPattern{
			pattern:   pair[0],
			canonical: pair[1],
			wordRe:    regexp.MustCompile(`\b` + regexp.QuoteMeta(pair[0]) + `\b`),
		}
	}
	return patterns
}

var rawLabelWordRe = regexp.MustCompile(`[a-z]{2,}`)

const (
	knownLabelFuzzyMinLen    = 5
	knownLabelFuzzyThreshold = 0.82
	knownLabelFuzzyMaxDiff   = 6
)

// normalizeTypeLabel cleans a raw label fragment: bullets to spaces,
// trailing durations/counters/punctuation removed, then normalized and
// title-cased.
func normalizeTypeLabel(value string) string {
	cleaned := strings.ReplaceAll(value, "•", " ")
	cleaned = strings.ReplaceAll(cleaned, "·", " ")
	cleaned = collapseWhitespace(cleaned)
	cleaned = stripTrailingDuration(cleaned)
	cleaned = strings.TrimSpace(trailingCounterRe.ReplaceAllString(cleaned, ""))
	cleaned = trailingPunctRe.ReplaceAllString(cleaned, "")
	cleaned = collapseWhitespace(cleaned)
	if cleaned == "" {
		return ""
	}
	return toTitleCase(normalizeText(cleaned))
}

// canonicalizeTypeLabel normalizes a label and swaps it for the canonical
// spelling when the label table recognizes it.
func canonicalizeTypeLabel(value string) string {
	cleaned := normalizeTypeLabel(value)
	if cleaned == "" {
		return ""
	}
	if canonical := canonicalKnownLabel(strings.ToLower(normalizeText(cleaned))); canonical != "" {
		return canonical
	}
	return cleaned
}

func extractLabelFromContextText(value string) string {
	normalized := strings.ToLower(normalizeText(value))
	if normalized == "" {
		return ""
	}
	return canonicalKnownLabel(normalized)
}

// canonicalKnownLabel resolves a normalized lowercase string against the
// override table, then the ordered word-boundary patterns, then fuzzy
// matching.
func canonicalKnownLabel(normalized string) string {
	if normalized == "" {
		return ""
	}
	if canonical, ok := activityLabelOverrides[normalized]; ok {
		return canonical
	}
	for _, entry := range knownTypeLabelPatterns {
		if entry.wordRe.MatchString(normalized) {
			return entry.canonical
		}
	}
	return fuzzyCanonicalKnownLabel(normalized)
}

func isUsableRawTypeLabel(value string) bool {
	normalized := strings.ToLower(normalizeText(value))
	if normalized == "" {
		return false
	}
	if _, ok := activityLabelOverrides[normalized]; ok {
		return true
	}
	if canonicalKnownLabel(normalized) != "" {
		return true
	}
	return rawLabelWordRe.MatchString(normalized)
}

// fuzzyCanonicalKnownLabel slides 1-3 token phrases over the text and
// scores them against every known pattern. A hit needs similarity of at
// least 0.82 and a length difference of at most 6.
func fuzzyCanonicalKnownLabel(normalized string) string {
	tokens := strings.Fields(normalized)
	if len(tokens) == 0 {
		return ""
	}

	candidates := make(map[string]struct{})
	for _, size := range []int{1, 2, 3} {
		if len(tokens) < size {
			continue
		}
		for i := 0; i+size <= len(tokens); i++ {
			phrase := strings.Join(tokens[i:i+size], " ")
			if len(strings.ReplaceAll(phrase, " ", "")) >= knownLabelFuzzyMinLen {
				candidates[phrase] = struct{}{}
			}
		}
	}

	ordered := make([]string, 0, len(candidates))
	for phrase := range candidates {
		ordered = append(ordered, phrase)
	}
	// Iterate in a fixed order so equal scores resolve the same way on
	// every run.
	sort.Strings(ordered)

	bestScore := 0.0
	bestLabel := ""
	for _, candidate := range ordered {
		for _, entry := range knownTypeLabelPatterns {
			if absInt(len(candidate)-len(entry.pattern)) > knownLabelFuzzyMaxDiff {
				continue
			}
			score := sequenceRatio(candidate, entry.pattern)
			if score > bestScore && score >= knownLabelFuzzyThreshold {
				bestScore = score
				bestLabel = entry.canonical
			}
		}
	}
	return bestLabel
}

// extractRawTypeLabel resolves the canonical activity label for an entry:
// combined title hint → override/classified label → usable job hint →
// whole title → address/location context.
func extractRawTypeLabel(entry models.Entry, customerTitle, jobTypeHint string) string {
	var hintParts []string
	for _, part := range []string{customerTitle, jobTypeHint} {
		if part != "" {
			hintParts = append(hintParts, part)
		}
	}
	combinedHint := normalizeTypeLabel(strings.Join(hintParts, " "))
	if combinedHint != "" {
		combinedNormalized := strings.ToLower(normalizeText(combinedHint))
		if canonical, ok := activityLabelOverrides[combinedNormalized]; ok {
			return canonical
		}
		if isNonWorkActivityType(classifyFromNormalizedLabel(combinedNormalized)) {
			return canonicalizeTypeLabel(combinedHint)
		}
	}

	if jobTypeHint != "" {
		hintCandidate := canonicalizeTypeLabel(jobTypeHint)
		if isUsableRawTypeLabel(hintCandidate) {
			return hintCandidate
		}
	}

	titleCandidate := canonicalizeTypeLabel(entry.Title)
	if titleCandidate == "" {
		if addressCandidate := extractLabelFromContextText(entry.Address); addressCandidate != "" {
			return addressCandidate
		}
		return extractLabelFromContextText(entry.Location)
	}

	normalized := strings.ToLower(normalizeText(titleCandidate))
	if canonical, ok := activityLabelOverrides[normalized]; ok {
		return canonical
	}
	if classifyFromNormalizedLabel(normalized) != models.ShiftTypeUnknown {
		return titleCandidate
	}

	if addressCandidate := extractLabelFromContextText(entry.Address); addressCandidate != "" {
		return addressCandidate
	}
	if locationCandidate := extractLabelFromContextText(entry.Location); locationCandidate != "" {
		return locationCandidate
	}
	return ""
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
