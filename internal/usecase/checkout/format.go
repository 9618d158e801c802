package checkout

import "strings"

// Input shaping for the payment fields. These are cosmetic masks only: no
// Luhn check, no expiry-date validation, and none of the shaped values go
// anywhere near a real gateway.

// FormatCardNumber strips non-digits and groups the rest into space-separated
// 4-digit blocks.
func FormatCardNumber(s string) string {
	digits := keepDigits(s)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatExpiry strips non-digits and coerces the result to MM/YY, keeping at
// most five characters.
func FormatExpiry(s string) string {
	digits := keepDigits(s)
	if len(digits) > 2 {
		digits = digits[:2] + "/" + digits[2:]
	}
	if len(digits) > 5 {
		digits = digits[:5]
	}
	return digits
}

// FormatCVC strips non-digits and truncates to three.
func FormatCVC(s string) string {
	digits := keepDigits(s)
	if len(digits) > 3 {
		digits = digits[:3]
	}
	return digits
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
