package codec

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/qrbill-ch/qrbill/internal/domain/bill"
	"github.com/qrbill-ch/qrbill/internal/validation"
)

// Decode parses payload text back into a bill and re-runs the field
// validator on the result. Structural problems (wrong marker, wrong field
// count, unknown address tag) fail fast with ErrInvalidPayload; no partial
// bill is ever returned.
func Decode(text string) (*bill.Bill, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")

	if len(lines) < minPayloadLines || len(lines) > maxPayloadLines {
		return nil, fmt.Errorf("%w: expected %d-%d lines, got %d",
			ErrInvalidPayload, minPayloadLines, maxPayloadLines, len(lines))
	}
	if lines[0] != headerMarker {
		return nil, fmt.Errorf("%w: missing %s header", ErrInvalidPayload, headerMarker)
	}
	if lines[1] != string(bill.V2_0) {
		return nil, fmt.Errorf("%w: unsupported version %q", ErrInvalidPayload, lines[1])
	}
	if lines[2] != codingType {
		return nil, fmt.Errorf("%w: unsupported coding type %q", ErrInvalidPayload, lines[2])
	}
	if lines[30] != trailerMarker {
		return nil, fmt.Errorf("%w: missing %s trailer", ErrInvalidPayload, trailerMarker)
	}

	b := bill.New()
	b.Version = bill.Version(lines[1])
	b.Account = lines[3]

	creditor, err := decodeAddress(lines[4:11])
	if err != nil {
		return nil, err
	}
	b.Creditor = creditor

	// Ultimate creditor lines are reserved and must stay blank.
	for _, l := range lines[11:18] {
		if l != "" {
			return nil, fmt.Errorf("%w: ultimate creditor must be empty", ErrInvalidPayload)
		}
	}

	if lines[18] != "" {
		amt, parseErr := decimal.NewFromString(lines[18])
		if parseErr != nil {
			return nil, fmt.Errorf("%w: malformed amount %q", ErrInvalidPayload, lines[18])
		}
		b.Amount = &amt
	}
	b.Currency = bill.Currency(lines[19])

	debtor, err := decodeAddress(lines[20:27])
	if err != nil {
		return nil, err
	}
	b.Debtor = debtor

	if err := checkReferenceMarker(lines[27], lines[28]); err != nil {
		return nil, err
	}
	b.Reference = lines[28]
	b.UnstructuredMessage = lines[29]

	if len(lines) > 31 {
		b.BillInformation = lines[31]
	}
	for _, l := range lines[min(len(lines), 32):] {
		name, instruction, found := strings.Cut(l, "/")
		if !found {
			return nil, fmt.Errorf("%w: malformed alternative scheme %q", ErrInvalidPayload, l)
		}
		b.AlternativeSchemes = append(b.AlternativeSchemes, bill.AlternativeScheme{
			Name:        name,
			Instruction: instruction,
		})
	}

	if res := validation.Validate(b); !res.OK() {
		return nil, fmt.Errorf("decoded payload failed validation: %w", &validation.Error{Result: res})
	}
	return b, nil
}

// decodeAddress rebuilds an address from its seven positional lines. A fully
// blank block yields nil.
func decodeAddress(lines []string) (*bill.Address, error) {
	blank := true
	for _, l := range lines {
		if l != "" {
			blank = false
			break
		}
	}
	if blank {
		return nil, nil
	}

	a := &bill.Address{
		Name:        lines[1],
		CountryCode: lines[6],
	}
	switch lines[0] {
	case addressTagStructured:
		a.Street = lines[2]
		a.HouseNo = lines[3]
		a.PostalCode = lines[4]
		a.Town = lines[5]
	case addressTagCombined:
		if lines[4] != "" || lines[5] != "" {
			return nil, fmt.Errorf("%w: combined address with structured fields", ErrInvalidPayload)
		}
		a.AddressLine1 = lines[2]
		a.AddressLine2 = lines[3]
	default:
		return nil, fmt.Errorf("%w: unknown address tag %q", ErrInvalidPayload, lines[0])
	}
	return a, nil
}

func checkReferenceMarker(marker, ref string) error {
	switch marker {
	case refTypeQR, refTypeSCOR:
		if ref == "" {
			return fmt.Errorf("%w: reference type %s without reference", ErrInvalidPayload, marker)
		}
	case refTypeNone:
		if ref != "" {
			return fmt.Errorf("%w: reference present with type %s", ErrInvalidPayload, refTypeNone)
		}
	default:
		return fmt.Errorf("%w: unknown reference type %q", ErrInvalidPayload, marker)
	}
	return nil
}
