package isbn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid isbn13", "9780143127741", true},
		{"valid isbn13 hyphenated", "978-0-14-312774-1", true},
		{"isbn13 bad checksum", "9780143127742", false},
		{"valid isbn10", "0140447938", true},
		{"valid isbn10 with X", "097522980X", true},
		{"isbn10 bad checksum", "0140447939", false},
		{"empty", "", false},
		{"too short", "12345", false},
		{"twelve digits", "978014312774", false},
		{"fourteen digits", "97801431277411", false},
		{"letters", "97801431277AB", false},
		{"X not in last position", "014X447938", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.input))
		})
	}
}

func TestIsISBN13_RejectsValidISBN10(t *testing.T) {
	assert.False(t, IsISBN13("0140447938"))
}

func TestIsISBN10_RejectsValidISBN13(t *testing.T) {
	assert.False(t, IsISBN10("9780143127741"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "9780143127741", Normalize("978-0-14-312774-1"))
	assert.Equal(t, "0140447938", Normalize("0 1404 4793 8"))
}
