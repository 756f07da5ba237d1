// Package bill holds the in-memory data model of a Swiss QR bill. All types
// are plain value objects: they are populated by the caller, validated on
// demand and carry no background state.
package bill

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Version identifies the payload format version. Open enumeration: only 2.0
// exists today, but scanners must be prepared for future values.
type Version string

// V2_0 is payload format version 2.0, the only version currently in use.
const V2_0 Version = "0200"

// Currency is the payment currency of a bill.
type Currency string

const (
	CurrencyCHF Currency = "CHF"
	CurrencyEUR Currency = "EUR"
)

func (c Currency) Valid() bool {
	return c == CurrencyCHF || c == CurrencyEUR
}

// AlternativeScheme is an optional parameter block for a secondary,
// non-standard payment scheme. Name and Instruction are both mandatory when
// the element is present.
type AlternativeScheme struct {
	Name        string
	Instruction string
}

// MaxAlternativeSchemes is the maximum number of alternative scheme blocks a
// bill may carry.
const MaxAlternativeSchemes = 2

// Bill is the root aggregate of the data model.
type Bill struct {
	Version Version

	// Amount is the payment amount with two decimal places, between 0.01
	// and 999 999 999.99. A nil amount means "any amount" payment.
	Amount *decimal.Decimal

	Currency Currency

	// Account is the creditor's IBAN. It must belong to a bank in
	// Switzerland or Liechtenstein. Spaces are tolerated.
	Account string

	// Creditor is mandatory.
	Creditor *Address

	// Reference is either a 27-digit QR reference or an ISO 11649 creditor
	// reference. Mandatory when Account is a QR-IBAN, optional otherwise.
	Reference string

	// Debtor is optional; a fully empty address counts as absent.
	Debtor *Address

	UnstructuredMessage string
	BillInformation     string

	AlternativeSchemes []AlternativeScheme

	Format Format
}

// New returns a bill with the version, currency and format defaults applied.
func New() *Bill {
	return &Bill{
		Version:  V2_0,
		Currency: CurrencyCHF,
		Format:   DefaultFormat(),
	}
}

// SetAmount sets the amount from a decimal value; pass nil value via
// ClearAmount instead.
func (b *Bill) SetAmount(d decimal.Decimal) {
	b.Amount = &d
}

// ClearAmount marks the bill as an "any amount" payment.
func (b *Bill) ClearAmount() {
	b.Amount = nil
}

// Equal reports structural equality of two bills. Amounts are compared by
// numeric value, so 100.5 and 100.50 are equal.
func (b *Bill) Equal(other *Bill) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.Version != other.Version ||
		b.Currency != other.Currency ||
		b.Account != other.Account ||
		b.Reference != other.Reference ||
		b.UnstructuredMessage != other.UnstructuredMessage ||
		b.BillInformation != other.BillInformation ||
		b.Format != other.Format {
		return false
	}
	if (b.Amount == nil) != (other.Amount == nil) {
		return false
	}
	if b.Amount != nil && !b.Amount.Equal(*other.Amount) {
		return false
	}
	if !b.Creditor.Equal(other.Creditor) || !b.Debtor.Equal(other.Debtor) {
		return false
	}
	return slices.Equal(b.AlternativeSchemes, other.AlternativeSchemes)
}
