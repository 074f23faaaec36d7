package utils

import "strings"

// NormalizePlate converts a license plate to its canonical form: uppercase
// with separators removed, so "ab-123 cd" and "AB123CD" compare equal.
func NormalizePlate(plate string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(plate)) {
		switch r {
		case ' ', '-', '.', '_':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SamePlate compares two plates in canonical form.
func SamePlate(a, b string) bool {
	return NormalizePlate(a) == NormalizePlate(b)
}
