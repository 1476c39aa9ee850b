package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationFingerprint_OCRConfusions(t *testing.T) {
	tests := []struct {
		name string
		a    [4]string // street, number, postalArea, city
		b    [4]string
		same bool
	}{
		{
			name: "digit and letter confusions fold together",
			a:    [4]string{"Storgatan", "12", "Centrum", ""},
			b:    [4]string{"St0rgatan", "l2", "Centrum", ""},
			same: true,
		},
		{
			name: "pipe reads as l",
			a:    [4]string{"Lindvägen", "3", "", "Solna"},
			b:    [4]string{"L|ndvägen", "3", "", "Solna"},
			same: true,
		},
		{
			name: "postal area wins over city",
			a:    [4]string{"Storgatan", "12", "Centrum", "Stockholm"},
			b:    [4]string{"Storgatan", "12", "Centrum", "Uppsala"},
			same: true,
		},
		{
			name: "city used when postal area missing",
			a:    [4]string{"Storgatan", "12", "", "Stockholm"},
			b:    [4]string{"Storgatan", "12", "", "Uppsala"},
			same: false,
		},
		{
			name: "accents are insignificant",
			a:    [4]string{"Östra Vägen", "7", "Lund", ""},
			b:    [4]string{"Ostra Vagen", "7", "Lund", ""},
			same: true,
		},
		{
			name: "different streets stay distinct",
			a:    [4]string{"Storgatan", "12", "Centrum", ""},
			b:    [4]string{"Kungsgatan", "12", "Centrum", ""},
			same: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fpA := LocationFingerprint(tt.a[0], tt.a[1], tt.a[2], tt.a[3])
			fpB := LocationFingerprint(tt.b[0], tt.b[1], tt.b[2], tt.b[3])
			assert.Len(t, fpA, 64)
			if tt.same {
				assert.Equal(t, fpA, fpB)
			} else {
				assert.NotEqual(t, fpA, fpB)
			}
		})
	}
}

func TestCustomerFingerprint(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		same bool
	}{
		{
			name: "given name order is insignificant",
			a:    "Anna Karin Svensson",
			b:    "Karin Anna Svensson",
			same: true,
		},
		{
			name: "company noise tokens dropped",
			a:    "Svensson Städservice AB",
			b:    "Svensson",
			same: true,
		},
		{
			name: "case and accents insignificant",
			a:    "BJÖRN LINDQVIST",
			b:    "bjorn lindqvist",
			same: true,
		},
		{
			name: "different surnames stay distinct",
			a:    "Anna Svensson",
			b:    "Anna Karlsson",
			same: false,
		},
		{
			name: "initial only needs to match",
			a:    "A Svensson",
			b:    "Anna Svensson",
			same: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fpA := CustomerFingerprint(tt.a)
			fpB := CustomerFingerprint(tt.b)
			if tt.same {
				assert.Equal(t, fpA, fpB)
			} else {
				assert.NotEqual(t, fpA, fpB)
			}
		})
	}
}

func TestCustomerFingerprint_NoiseOnlyNameKeepsTokens(t *testing.T) {
	// A name consisting solely of noise tokens falls back to the raw tokens
	// instead of hashing an empty identity.
	assert.NotEqual(t, CustomerFingerprint(""), CustomerFingerprint("Städservice AB"))
	assert.Equal(t, CustomerFingerprint("Städservice AB"), CustomerFingerprint("stadservice ab"))
}

func TestNormalizeComponent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"St0rgatan", "storgatan"},
		{"L|nden 1", "lndenl"},
		{"  Östra   Vägen  ", "ostravagen"},
		{"", ""},
		{"  ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeComponent(tt.in), "input %q", tt.in)
	}
}
