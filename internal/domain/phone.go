package domain

import "strings"

// PhoneDigits strips all non-digit characters from a phone number
func PhoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidPhone reports whether the phone reduces to exactly ten digits
func IsValidPhone(phone string) bool {
	return len(PhoneDigits(phone)) == PhoneDigitCount
}

// FormatPhone renders a phone number as "(XXX) XXX XXXX", truncating
// anything past ten digits. Partial input formats as far as it goes.
func FormatPhone(phone string) string {
	digits := PhoneDigits(phone)
	if len(digits) > PhoneDigitCount {
		digits = digits[:PhoneDigitCount]
	}

	switch {
	case len(digits) == 0:
		return ""
	case len(digits) <= 3:
		return "(" + digits
	case len(digits) <= 6:
		return "(" + digits[:3] + ") " + digits[3:]
	default:
		return "(" + digits[:3] + ") " + digits[3:6] + " " + digits[6:]
	}
}

// IsValidZip reports whether the value is a five-digit ZIP code
func IsValidZip(zip string) bool {
	if len(zip) != ZipCodeLength {
		return false
	}
	for _, r := range zip {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
