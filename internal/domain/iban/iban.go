// Package iban validates Swiss and Liechtenstein IBANs and classifies them
// as QR-IBANs or standard IBANs. The classification drives which reference
// scheme a bill must carry.
package iban

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidIBAN means the account is not a well-formed CH/LI IBAN.
var ErrInvalidIBAN = errors.New("invalid IBAN")

// CH and LI IBANs are always 21 characters.
const ibanLength = 21

// QR-IIDs are the institution identifiers reserved for QR-IBAN accounts.
const (
	qrIIDMin = 30000
	qrIIDMax = 31999
)

// Normalize strips whitespace and uppercases an IBAN.
func Normalize(input string) string {
	return strings.ToUpper(strings.Join(strings.Fields(input), ""))
}

// Validate checks a normalized IBAN: 21 characters, country CH or LI, and a
// valid ISO 7064 mod 97 checksum over the rearranged string.
func Validate(iban string) error {
	if len(iban) != ibanLength {
		return fmt.Errorf("%w: must be %d characters, got %d", ErrInvalidIBAN, ibanLength, len(iban))
	}
	country := iban[:2]
	if country != "CH" && country != "LI" {
		return fmt.Errorf("%w: country %q not allowed", ErrInvalidIBAN, country)
	}
	for i := 0; i < len(iban); i++ {
		c := iban[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'Z') {
			return fmt.Errorf("%w: invalid character %q", ErrInvalidIBAN, c)
		}
	}
	if mod97(iban[4:]+iban[:4]) != 1 {
		return fmt.Errorf("%w: checksum failed", ErrInvalidIBAN)
	}
	return nil
}

// IsQRIBAN reports whether the normalized IBAN carries an institution
// identifier in the reserved QR-IID range. A QR-IBAN makes the QR reference
// mandatory on every payment.
func IsQRIBAN(iban string) bool {
	if len(iban) < 9 {
		return false
	}
	iid, err := strconv.Atoi(iban[4:9])
	if err != nil {
		return false
	}
	return iid >= qrIIDMin && iid <= qrIIDMax
}

func mod97(s string) int {
	r := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			r = (r*10 + int(c-'0')) % 97
		case c >= 'A' && c <= 'Z':
			r = (r*100 + int(c-'A') + 10) % 97
		}
	}
	return r
}
