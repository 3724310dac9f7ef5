package qr

// Data capacity of a version 40 symbol at error correction level L.
const (
	maxNumericChars      = 7089
	maxAlphanumericChars = 4296
	maxByteChars         = 2953
)

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// Capacity returns the largest payload length accepted for the cheapest
// single encoding mode that can represent payload, and the payload's
// length measured in that mode.
func Capacity(payload string) (limit, length int) {
	switch {
	case isNumeric(payload):
		return maxNumericChars, len(payload)
	case isAlphanumeric(payload):
		return maxAlphanumericChars, len(payload)
	default:
		return maxByteChars, len(payload)
	}
}

// Fits reports whether payload can be held by some QR version at level L
// using a single encoding mode. Mixed-mode payloads may fit even when Fits
// is false.
func Fits(payload string) bool {
	limit, n := Capacity(payload)
	return n <= limit
}

func isNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isAlphanumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		found := false
		for j := 0; j < len(alphanumericCharset); j++ {
			if s[i] == alphanumericCharset[j] {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
