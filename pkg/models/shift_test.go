package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalJSON_SortedCompactUnescaped(t *testing.T) {
	shift := &CanonicalShift{
		Start:               "10:00",
		End:                 "14:00",
		CustomerName:        "Marie Sjöberg",
		CustomerFingerprint: "cfp",
		Street:              "Valebergsvägen",
		StreetNumber:        "316",
		PostalCode:          "427 40",
		PostalArea:          "",
		City:                "Billdal",
		LocationFingerprint: "lfp",
		ShiftType:           ShiftTypeWork,
		RawTypeLabel:        "Städservice",
	}

	want := `{"city":"Billdal","customer_fingerprint":"cfp","customer_name":"Marie Sjöberg",` +
		`"end":"14:00","location_fingerprint":"lfp","postal_area":"","postal_code":"427 40",` +
		`"raw_type_label":"Städservice","shift_type":"WORK","start":"10:00",` +
		`"street":"Valebergsvägen","street_number":"316"}`
	assert.Equal(t, want, string(shift.CanonicalJSON()))

	// encoding/json must agree with the canonical encoder.
	marshaled, err := json.Marshal(*shift)
	require.NoError(t, err)
	assert.Equal(t, want, string(marshaled))

	// The canonical bytes round-trip through a plain decode.
	var decoded CanonicalShift
	require.NoError(t, json.Unmarshal(shift.CanonicalJSON(), &decoded))
	assert.Equal(t, *shift, decoded)
}

func TestCanonicalJSON_EscapesControlAndQuote(t *testing.T) {
	shift := &CanonicalShift{CustomerName: "a\"b\\c\nd"}
	assert.Contains(t, string(shift.CanonicalJSON()), `"customer_name":"a\"b\\c\nd"`)
}

func TestValueHash(t *testing.T) {
	// SHA-256 of the literal "null" marks an absent shift.
	assert.Equal(t,
		"74234e98afe7498fb5daf1f36ac2d78acc339464f950703b8c019892f982b90b",
		ValueHash(nil))

	a := &CanonicalShift{Start: "08:00", End: "10:00"}
	b := &CanonicalShift{Start: "08:00", End: "10:00"}
	c := &CanonicalShift{Start: "08:00", End: "10:01"}
	assert.Equal(t, ValueHash(a), ValueHash(b))
	assert.NotEqual(t, ValueHash(a), ValueHash(c))
}
