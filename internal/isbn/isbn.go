// Package isbn validates the standard 10- and 13-digit book identifiers.
package isbn

import (
	"errors"
	"strings"
)

// ErrInvalid is returned when a string is not a well-formed ISBN-10 or ISBN-13.
var ErrInvalid = errors.New("invalid ISBN")

// Normalize strips hyphens and spaces so "978-0-14-312774-1" and
// "9780143127741" compare equal.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, " ", "")
}

// Validate reports whether s is a valid ISBN-10 or ISBN-13 after
// normalization. It is a pure function with no failure mode beyond false.
func Validate(s string) bool {
	n := Normalize(s)
	return IsISBN13(n) || IsISBN10(n)
}

// IsISBN10 reports whether s is exactly ten characters with a valid
// mod-11 checksum. The final character may be 'X' (value ten).
func IsISBN10(s string) bool {
	if len(s) != 10 {
		return false
	}
	sum := 0
	for i, r := range s {
		var v int
		switch {
		case r >= '0' && r <= '9':
			v = int(r - '0')
		case (r == 'X' || r == 'x') && i == 9:
			v = 10
		default:
			return false
		}
		sum += (10 - i) * v
	}
	return sum%11 == 0
}

// IsISBN13 reports whether s is exactly thirteen digits with a valid
// alternating 1/3-weighted mod-10 checksum.
func IsISBN13(s string) bool {
	if len(s) != 13 {
		return false
	}
	sum := 0
	for i, r := range s {
		if r < '0' || r > '9' {
			return false
		}
		v := int(r - '0')
		if i%2 == 1 {
			v *= 3
		}
		sum += v
	}
	return sum%10 == 0
}
