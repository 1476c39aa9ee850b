// Package models defines the domain records shared across the pipeline:
// OCR boxes, parsed entries, canonical shifts, diff events and
// notifications.
package models

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Shift type labels, ordered here by merge priority (highest first).
const (
	ShiftTypeWork        = "WORK"
	ShiftTypeUnavailable = "UNAVAILABLE"
	ShiftTypeTraining    = "TRAINING"
	ShiftTypeLeave       = "LEAVE"
	ShiftTypeAdmin       = "ADMIN"
	ShiftTypeMeeting     = "MEETING"
	ShiftTypeTravel      = "TRAVEL"
	ShiftTypeBreak       = "BREAK"
	ShiftTypeUnknown     = "UNKNOWN"
)

// CanonicalShift is the normalized semantic record for one scheduled time
// slot. All fields are strings; times are zero-padded HH:MM. Fingerprints
// are pure functions of the readable fields (pkg/identity).
type CanonicalShift struct {
	Start               string `json:"start"`
	End                 string `json:"end"`
	CustomerName        string `json:"customer_name"`
	CustomerFingerprint string `json:"customer_fingerprint"`
	Street              string `json:"street"`
	StreetNumber        string `json:"street_number"`
	PostalCode          string `json:"postal_code"`
	PostalArea          string `json:"postal_area"`
	City                string `json:"city"`
	LocationFingerprint string `json:"location_fingerprint"`
	ShiftType           string `json:"shift_type"`
	RawTypeLabel        string `json:"raw_type_label"`
}

// CanonicalJSON renders the shift as its wire form: keys sorted
// alphabetically, compact separators, non-ASCII characters unescaped.
// Value hashes and snapshot payloads are built from exactly these bytes,
// so the encoding must never change.
func (s *CanonicalShift) CanonicalJSON() []byte {
	var b bytes.Buffer
	b.WriteByte('{')
	writeCanonicalField(&b, "city", s.City, false)
	writeCanonicalField(&b, "customer_fingerprint", s.CustomerFingerprint, false)
	writeCanonicalField(&b, "customer_name", s.CustomerName, false)
	writeCanonicalField(&b, "end", s.End, false)
	writeCanonicalField(&b, "location_fingerprint", s.LocationFingerprint, false)
	writeCanonicalField(&b, "postal_area", s.PostalArea, false)
	writeCanonicalField(&b, "postal_code", s.PostalCode, false)
	writeCanonicalField(&b, "raw_type_label", s.RawTypeLabel, false)
	writeCanonicalField(&b, "shift_type", s.ShiftType, false)
	writeCanonicalField(&b, "start", s.Start, false)
	writeCanonicalField(&b, "street", s.Street, false)
	writeCanonicalField(&b, "street_number", s.StreetNumber, true)
	b.WriteByte('}')
	return b.Bytes()
}

// MarshalJSON keeps encoding/json output identical to CanonicalJSON.
func (s CanonicalShift) MarshalJSON() ([]byte, error) {
	return s.CanonicalJSON(), nil
}

// ValueHash returns the SHA-256 hex digest of the shift's canonical JSON,
// or of the literal "null" for an absent shift. This is the event dedupe
// hash.
func ValueHash(s *CanonicalShift) string {
	var payload []byte
	if s == nil {
		payload = []byte("null")
	} else {
		payload = s.CanonicalJSON()
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

func writeCanonicalField(b *bytes.Buffer, key, value string, last bool) {
	writeJSONString(b, key)
	b.WriteByte(':')
	writeJSONString(b, value)
	if !last {
		b.WriteByte(',')
	}
}

// writeJSONString escapes like a compact JSON encoder without ASCII
// escaping: only quote, backslash and control characters are escaped.
func writeJSONString(b *bytes.Buffer, value string) {
	b.WriteByte('"')
	for _, r := range value {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}
