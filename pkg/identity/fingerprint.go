// Package identity derives deterministic fingerprints for schedule entities.
//
// Fingerprints identify "the same place" and "the same customer" across OCR
// captures of varying quality. Component normalization therefore folds the
// common OCR confusions (0/o, 1/i/l/|) before hashing, so two noisy readings
// of one street name collapse to one fingerprint.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// companyNoiseTokens are corporate suffixes that appear inconsistently in
// customer names and must not influence identity.
var companyNoiseTokens = map[string]struct{}{
	"ab":          {},
	"hb":          {},
	"stadservice": {},
	"stadtjanst":  {},
	"stadning":    {},
}

var (
	readableKeepRe   = regexp.MustCompile(`[^A-Za-z0-9\s\-']`)
	componentZeroRe  = regexp.MustCompile(`[0o]`)
	componentOneRe   = regexp.MustCompile(`[1il|]`)
	componentAlnumRe = regexp.MustCompile(`[^a-z0-9]`)
)

// LocationFingerprint hashes the normalized (street, number, place) triple.
// postal_area wins over city as the place component when both are present.
func LocationFingerprint(street, streetNumber, postalArea, city string) string {
	place := postalArea
	if place == "" {
		place = city
	}
	source := strings.Join([]string{
		NormalizeComponent(street),
		NormalizeComponent(streetNumber),
		NormalizeComponent(place),
	}, "|")
	return sha256Hex(source)
}

// CustomerFingerprint hashes a customer name down to "surname|initials":
// the longest token is taken as the surname, the first letters of the
// remaining tokens are sorted and concatenated. Corporate noise tokens are
// dropped first unless that would empty the name.
func CustomerFingerprint(customerName string) string {
	normalized := strings.ToLower(NormalizeReadableText(customerName))
	rawTokens := strings.Fields(normalized)

	tokens := make([]string, 0, len(rawTokens))
	for _, token := range rawTokens {
		if _, noise := companyNoiseTokens[token]; !noise {
			tokens = append(tokens, token)
		}
	}
	if len(tokens) == 0 {
		tokens = rawTokens
	}
	if len(tokens) == 0 {
		return sha256Hex("")
	}

	surname := tokens[0]
	for _, token := range tokens[1:] {
		if len(token) > len(surname) {
			surname = token
		}
	}

	var initials []string
	for _, token := range tokens {
		if token != surname && token != "" {
			initials = append(initials, token[:1])
		}
	}
	sort.Strings(initials)

	return sha256Hex(surname + "|" + strings.Join(initials, ""))
}

// NormalizeComponent reduces an address component to a confusion-folded
// lowercase alphanumeric string.
func NormalizeComponent(value string) string {
	base := strings.ToLower(NormalizeReadableText(value))
	if base == "" {
		return ""
	}
	base = componentZeroRe.ReplaceAllString(base, "o")
	base = componentOneRe.ReplaceAllString(base, "l")
	return componentAlnumRe.ReplaceAllString(base, "")
}

// NormalizeReadableText collapses whitespace, strips accents and replaces
// punctuation with spaces, keeping hyphens and apostrophes.
func NormalizeReadableText(value string) string {
	collapsed := strings.Join(strings.Fields(value), " ")
	if collapsed == "" {
		return ""
	}
	stripped := StripAccents(collapsed)
	alnum := readableKeepRe.ReplaceAllString(stripped, " ")
	return strings.Join(strings.Fields(alnum), " ")
}

// StripAccents removes combining marks after NFKD decomposition, so that
// accented and plain vowels compare equal.
func StripAccents(value string) string {
	decomposed := norm.NFKD.String(value)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func sha256Hex(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}
