package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/skiftkoll/skiftkoll/pkg/identity"
)

var (
	trailingDurationRe = regexp.MustCompile(`(?i)(?:\b\d+\s*h(?:\s*\d+\s*m)?\b|\b\d+\s*m(?:in)?\b)\s*$`)
	trailingCounterRe  = regexp.MustCompile(`(?:\s+\d+)+\s*$`)
	trailingPunctRe    = regexp.MustCompile(`^[\s\-–—:;,.!?()\[\]{}]+|[\s\-–—:;,.!?()\[\]{}]+$`)
	keepReadableRe     = regexp.MustCompile(`[^A-Za-z0-9\s\-']`)
)

func collapseWhitespace(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// normalizeText folds the OCR confusions that survive layout parsing
// (pipe as l, capital I as i, digits inside words), strips accents and
// punctuation, and collapses whitespace.
func normalizeText(value string) string {
	collapsed := collapseWhitespace(value)
	if collapsed == "" {
		return ""
	}
	fixed := strings.ReplaceAll(collapsed, "|", "l")
	fixed = strings.ReplaceAll(fixed, "I", "i")
	fixed = replaceOCRDigitConfusions(fixed)
	stripped := identity.StripAccents(fixed)
	alnum := keepReadableRe.ReplaceAllString(stripped, " ")
	return collapseWhitespace(alnum)
}

// replaceOCRDigitConfusions rewrites 0 and 1 to their letter readings,
// but only between alphabetic neighbors so real house numbers survive.
func replaceOCRDigitConfusions(value string) string {
	runes := []rune(value)
	for i, r := range runes {
		if r != '0' && r != '1' {
			continue
		}
		prevAlpha := i > 0 && unicode.IsLetter(runes[i-1])
		nextAlpha := i+1 < len(runes) && unicode.IsLetter(runes[i+1])
		if !prevAlpha || !nextAlpha {
			continue
		}
		if r == '0' {
			runes[i] = 'o'
		} else {
			runes[i] = 'i'
		}
	}
	return string(runes)
}

func stripTrailingDuration(value string) string {
	current := collapseWhitespace(value)
	for {
		next := strings.TrimSpace(trailingDurationRe.ReplaceAllString(current, ""))
		if next == current {
			break
		}
		current = next
	}
	return collapseWhitespace(current)
}

func toTitleCase(value string) string {
	if value == "" {
		return ""
	}
	tokens := strings.Split(value, " ")
	for i, token := range tokens {
		tokens[i] = titleToken(token)
	}
	return strings.Join(tokens, " ")
}

func titleToken(token string) string {
	if token == "" {
		return token
	}
	runes := []rune(strings.ToLower(token))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
