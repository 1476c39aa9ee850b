package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

var postalCodeRe = regexp.MustCompile(`\b(\d{3})\s?(\d{2})\b`)

// AddressParts is the decomposed form of an entry's address plus location
// hint. All fields are normalized and may be empty.
type AddressParts struct {
	Street       string
	StreetNumber string
	PostalCode   string
	PostalArea   string
	City         string
}

// decomposeAddress splits noisy address text into street, number, postal
// code "XXX XX", postal area and city. The location hint is the fallback
// city when the address text yields none.
func decomposeAddress(addressText, locationHint string) AddressParts {
	normalizedAddress := normalizeText(addressText)
	normalizedLocation := normalizePlace(locationHint)

	postalCode := ""
	postalArea := ""
	city := normalizedLocation

	streetSource := normalizedAddress
	if loc := postalCodeRe.FindStringSubmatchIndex(normalizedAddress); loc != nil {
		postalCode = normalizedAddress[loc[2]:loc[3]] + " " + normalizedAddress[loc[4]:loc[5]]
		streetSource = collapseWhitespace(normalizedAddress[:loc[0]])
		postalArea = normalizePlace(collapseWhitespace(normalizedAddress[loc[1]:]))
		if postalArea != "" {
			city = postalArea
		}
	}

	tokens := strings.Fields(streetSource)
	street := ""
	streetNumber := ""
	var trailingTokens []string

	if numberIndex := lastNumberIndex(tokens); numberIndex >= 0 {
		street = normalizeStreet(strings.Join(tokens[:numberIndex], " "))
		streetNumber = normalizeStreetNumber(tokens[numberIndex])
		trailingTokens = tokens[numberIndex+1:]
	} else {
		street = normalizeStreet(streetSource)
	}

	if city == "" && len(trailingTokens) > 0 {
		city = extractCityFromTokens(trailingTokens)
	}
	if postalCode != "" && postalArea == "" && city != "" {
		postalArea = city
	}
	if city == "" && normalizedLocation != "" {
		city = normalizedLocation
	}

	return AddressParts{
		Street:       street,
		StreetNumber: streetNumber,
		PostalCode:   postalCode,
		PostalArea:   postalArea,
		City:         city,
	}
}

func normalizeStreet(value string) string {
	return toTitleCase(normalizeText(value))
}

func normalizePlace(value string) string {
	return toTitleCase(normalizeText(value))
}

func normalizeStreetNumber(value string) string {
	return strings.ToUpper(strings.ReplaceAll(normalizeText(value), " ", ""))
}

// extractCityFromTokens reads up to two trailing alphabetic tokens as the
// city, stopping at digits and single-letter noise.
func extractCityFromTokens(tokens []string) string {
	var cityTokens []string
	for i := len(tokens) - 1; i >= 0; i-- {
		if containsDigit(tokens[i]) {
			break
		}
		normalized := normalizePlace(tokens[i])
		if normalized == "" {
			break
		}
		if len(normalized) <= 2 && len(cityTokens) > 0 {
			break
		}
		cityTokens = append(cityTokens, normalized)
		if len(cityTokens) == 2 {
			break
		}
	}
	if len(cityTokens) == 0 {
		return ""
	}
	for i, j := 0, len(cityTokens)-1; i < j; i, j = i+1, j-1 {
		cityTokens[i], cityTokens[j] = cityTokens[j], cityTokens[i]
	}
	return strings.Join(cityTokens, " ")
}

func lastNumberIndex(tokens []string) int {
	for i := len(tokens) - 1; i >= 0; i-- {
		if containsDigit(tokens[i]) {
			return i
		}
	}
	return -1
}

func containsDigit(value string) bool {
	for _, r := range value {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
