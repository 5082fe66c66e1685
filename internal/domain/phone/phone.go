// Package phone holds the pure phone-number helpers shared by the store and
// the conversation layer: country-code normalization, digit stripping and the
// suffix-matching rule used for customer lookups.
package phone

import "strings"

// DigitsOnly strips every non-digit rune from s.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Normalize prefixes a raw operator number with its country code. Numbers
// already carrying a "+" prefix are kept as-is; Syrian mobile numbers
// (09.../9...) get +963, Turkish ones (05.../5...) get +90. Anything else is
// returned unchanged for the admin to correct.
func Normalize(raw string) string {
	number := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(number, "+"):
		return number
	case strings.HasPrefix(number, "09"):
		return "+963" + number[1:]
	case strings.HasPrefix(number, "9"):
		return "+963" + number
	case strings.HasPrefix(number, "05"):
		return "+90" + number[1:]
	case strings.HasPrefix(number, "5"):
		return "+90" + number
	}

	return number
}

// SuffixMatch implements the lookup rule: both sides are country-code
// normalized, reduced to digits and match when either is a suffix of the
// other. Normalizing first lets a caller search with their local number
// (0911234567) against a stored international one (+963911234567) and vice
// versa. Short queries can match many records; that leniency is intentional.
func SuffixMatch(stored, query string) bool {
	s := DigitsOnly(Normalize(stored))
	q := DigitsOnly(Normalize(query))
	if s == "" || q == "" {
		return false
	}

	return strings.HasSuffix(s, q) || strings.HasSuffix(q, s)
}

// Mask hides all but the last four digits of a phone number for display to
// non-admin users.
func Mask(number string) string {
	if len(number) <= 4 {
		return number
	}

	return strings.Repeat("*", len(number)-4) + number[len(number)-4:]
}
