// Package codec converts between the bill data model and the Swiss Payments
// Code text payload embedded in the QR symbol. The payload is positional: a
// fixed sequence of newline-separated fields where absent optional values
// are emitted as empty lines.
package codec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/qrbill-ch/qrbill/internal/domain/bill"
	"github.com/qrbill-ch/qrbill/internal/domain/iban"
	"github.com/qrbill-ch/qrbill/internal/validation"
)

var (
	// ErrEncoding is returned when a bill that fails validation is handed
	// to Encode. Callers must validate first; this is a programming error.
	ErrEncoding = errors.New("encoding error")
	// ErrInvalidPayload is returned by Decode for structurally malformed
	// payload text.
	ErrInvalidPayload = errors.New("invalid payload")
)

const (
	headerMarker  = "SPC"
	trailerMarker = "EPD"
	codingType    = "1"

	addressTagStructured = "S"
	addressTagCombined   = "K"

	refTypeQR   = "QRR"
	refTypeSCOR = "SCOR"
	refTypeNone = "NON"
)

// Line counts of the positional payload: 31 mandatory lines through the
// trailer, plus an optional bill information line and up to two alternative
// scheme lines.
const (
	minPayloadLines = 31
	maxPayloadLines = 34
)

// Encode serializes a validated bill into the canonical payload text. The
// bill is re-validated; encoding an invalid bill fails with ErrEncoding.
func Encode(b *bill.Bill) (string, error) {
	if res := validation.Validate(b); !res.OK() {
		return "", fmt.Errorf("%w: %s", ErrEncoding, res.String())
	}

	lines := make([]string, 0, maxPayloadLines)
	lines = append(lines,
		headerMarker,
		string(b.Version),
		codingType,
		iban.Normalize(b.Account),
	)
	lines = appendAddress(lines, b.Creditor)
	// Ultimate creditor is reserved in version 2.0 and always blank.
	lines = appendAddress(lines, nil)

	amount := ""
	if b.Amount != nil {
		amount = b.Amount.StringFixed(2)
	}
	lines = append(lines, amount, string(b.Currency))

	debtor := b.Debtor
	if debtor.IsEmpty() {
		debtor = nil
	}
	lines = appendAddress(lines, debtor)

	ref := strings.ToUpper(strings.Join(strings.Fields(b.Reference), ""))
	lines = append(lines, referenceType(ref), ref)

	lines = append(lines, strings.TrimSpace(b.UnstructuredMessage), trailerMarker)

	if b.BillInformation != "" || len(b.AlternativeSchemes) > 0 {
		lines = append(lines, strings.TrimSpace(b.BillInformation))
	}
	for _, s := range b.AlternativeSchemes {
		lines = append(lines, strings.TrimSpace(s.Name)+"/"+strings.TrimSpace(s.Instruction))
	}

	return strings.Join(lines, "\n"), nil
}

// appendAddress emits the seven positional lines of an address block. A nil
// address produces seven empty lines.
func appendAddress(lines []string, a *bill.Address) []string {
	if a == nil {
		return append(lines, "", "", "", "", "", "", "")
	}
	if a.Type() == bill.AddressTypeCombined {
		return append(lines,
			addressTagCombined,
			strings.TrimSpace(a.Name),
			strings.TrimSpace(a.AddressLine1),
			strings.TrimSpace(a.AddressLine2),
			"",
			"",
			strings.TrimSpace(a.CountryCode),
		)
	}
	return append(lines,
		addressTagStructured,
		strings.TrimSpace(a.Name),
		strings.TrimSpace(a.Street),
		strings.TrimSpace(a.HouseNo),
		strings.TrimSpace(a.PostalCode),
		strings.TrimSpace(a.Town),
		strings.TrimSpace(a.CountryCode),
	)
}

func referenceType(ref string) string {
	switch {
	case ref == "":
		return refTypeNone
	case strings.HasPrefix(ref, "RF"):
		return refTypeSCOR
	default:
		return refTypeQR
	}
}
