// Package reference implements the check digit algorithms for the two
// payment reference schemes: the 27-digit QR reference (recursive mod 10)
// and the ISO 11649 creditor reference (ISO 7064 mod 97-10).
package reference

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidReference means the reference has the wrong shape or a
	// wrong check digit for its scheme.
	ErrInvalidReference = errors.New("invalid reference")
	// ErrInvalidCharacters means a creditor reference payload contains
	// characters outside [A-Z0-9].
	ErrInvalidCharacters = errors.New("invalid characters in reference")
)

// qrReferenceLength is the full length of a QR reference including the
// trailing check digit.
const qrReferenceLength = 27

// ISO 11649 payloads are limited so the full reference fits in 25 chars.
const maxISO11649PayloadLength = 21

// Carry table of the recursive mod 10 algorithm used for QR references.
var mod10Table = [10]int{0, 9, 4, 6, 8, 2, 7, 1, 3, 5}

// ComputeMod10 computes the check digit for a numeric string, scanning left
// to right through the carry table.
func ComputeMod10(digits string) (int, error) {
	carry := 0
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q is not numeric", ErrInvalidCharacters, digits)
		}
		carry = mod10Table[(carry+int(r-'0'))%10]
	}
	return (10 - carry) % 10, nil
}

// ValidateQR checks a QR reference: 27 numeric characters (whitespace is
// ignored) ending in a valid mod 10 check digit.
func ValidateQR(ref string) error {
	ref = stripWhitespace(ref)
	if len(ref) != qrReferenceLength {
		return fmt.Errorf("%w: QR reference must be %d digits, got %d", ErrInvalidReference, qrReferenceLength, len(ref))
	}
	check, err := ComputeMod10(ref[:qrReferenceLength-1])
	if err != nil {
		return fmt.Errorf("%w: QR reference must be numeric", ErrInvalidReference)
	}
	if byte('0'+check) != ref[qrReferenceLength-1] {
		return fmt.Errorf("%w: wrong check digit", ErrInvalidReference)
	}
	return nil
}

// CreateISO11649 builds a creditor reference from a raw payload: whitespace
// is stripped, the payload normalized to uppercase and prefixed with "RF"
// and the two ISO 7064 mod 97-10 check digits.
func CreateISO11649(rawPayload string) (string, error) {
	payload := strings.ToUpper(stripWhitespace(rawPayload))
	if len(payload) == 0 || len(payload) > maxISO11649PayloadLength {
		return "", fmt.Errorf("%w: payload must be 1-%d characters", ErrInvalidReference, maxISO11649PayloadLength)
	}
	for i := 0; i < len(payload); i++ {
		if !isAlphanumeric(payload[i]) {
			return "", fmt.Errorf("%w: %q", ErrInvalidCharacters, rawPayload)
		}
	}
	// Check digits make the rearranged reference compute to 1 mod 97.
	check := 98 - mod97(payload+"RF00")
	return fmt.Sprintf("RF%02d%s", check, payload), nil
}

// ValidateISO11649 checks an "RF"-prefixed creditor reference against its
// embedded check digits.
func ValidateISO11649(ref string) error {
	ref = strings.ToUpper(stripWhitespace(ref))
	if len(ref) < 5 || len(ref) > 25 || !strings.HasPrefix(ref, "RF") {
		return fmt.Errorf("%w: malformed creditor reference", ErrInvalidReference)
	}
	for i := 2; i < len(ref); i++ {
		if !isAlphanumeric(ref[i]) {
			return fmt.Errorf("%w: %q", ErrInvalidCharacters, ref)
		}
	}
	if mod97(ref[4:]+ref[:4]) != 1 {
		return fmt.Errorf("%w: wrong check digits", ErrInvalidReference)
	}
	return nil
}

// mod97 computes the ISO 7064 remainder over a string of digits and capital
// letters, letters mapped to their two-digit values (A=10 .. Z=35). The
// input must already be normalized; any other character maps to 0 and will
// never validate.
func mod97(s string) int {
	r := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			r = (r*10 + int(c-'0')) % 97
		case c >= 'A' && c <= 'Z':
			r = (r*100 + int(c-'A') + 10) % 97
		default:
			r = (r * 100) % 97
		}
	}
	return r
}

func isAlphanumeric(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z')
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
