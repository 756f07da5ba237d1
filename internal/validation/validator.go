// Package validation checks every field of a bill against the payload's
// structural rules and reports all failures of a pass at once.
package validation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/qrbill-ch/qrbill/internal/domain/bill"
	"github.com/qrbill-ch/qrbill/internal/domain/iban"
	"github.com/qrbill-ch/qrbill/internal/domain/reference"
)

// Field length limits of the payload format.
const (
	maxLenName        = 70
	maxLenStreet      = 70
	maxLenHouseNo     = 16
	maxLenPostalCode  = 16
	maxLenTown        = 35
	maxLenAddressLine = 70
	maxLenMessage     = 140
	maxLenBillInfo    = 140
	maxLenSchemeField = 100

	// Unstructured message and bill information share one payload slot.
	maxLenAdditionalInfo = 140
)

var (
	amountMin = decimal.RequireFromString("0.01")
	amountMax = decimal.RequireFromString("999999999.99")
)

// Validate checks a full bill and returns every issue found. The bill is not
// modified; whitespace-insensitive fields (account, reference) are
// normalized only for checking.
func Validate(b *bill.Bill) Result {
	var res Result

	if b == nil {
		res.add("bill", KindMissingMandatoryField, "bill is required")
		return res
	}

	if b.Version == "" {
		res.add("version", KindMissingMandatoryField, "version is required")
	}

	validateAccountAndReference(b, &res)
	validateAmount(b, &res)

	if b.Currency == "" {
		res.add("currency", KindMissingMandatoryField, "currency is required")
	} else if !b.Currency.Valid() {
		res.add("currency", KindInvalidValue, "currency must be CHF or EUR")
	}

	if b.Creditor.IsEmpty() {
		res.add("creditor", KindMissingMandatoryField, "creditor is required")
	} else {
		validateAddress(b.Creditor, "creditor", &res)
	}
	if !b.Debtor.IsEmpty() {
		validateAddress(b.Debtor, "debtor", &res)
	}

	validateAdditionalInfo(b, &res)
	validateAlternativeSchemes(b, &res)
	validateFormat(b, &res)

	return res
}

func validateAccountAndReference(b *bill.Bill, res *Result) {
	account := iban.Normalize(b.Account)
	if account == "" {
		res.add("account", KindMissingMandatoryField, "account is required")
		return
	}
	if err := iban.Validate(account); err != nil {
		res.add("account", KindInvalidIBAN, "account must be a valid CH or LI IBAN")
		return
	}

	ref := strings.ToUpper(strings.Join(strings.Fields(b.Reference), ""))

	if iban.IsQRIBAN(account) {
		// A QR-IBAN admits only the QR reference scheme.
		switch {
		case ref == "":
			res.add("reference", KindMissingMandatoryField, "QR-IBAN requires a QR reference")
		case strings.HasPrefix(ref, "RF"):
			res.add("reference", KindInvalidReferenceType, "QR-IBAN does not admit a creditor reference")
		case reference.ValidateQR(ref) != nil:
			res.add("reference", KindInvalidReference, "invalid QR reference check digit")
		}
		return
	}

	if ref == "" {
		return
	}
	switch {
	case strings.HasPrefix(ref, "RF"):
		if reference.ValidateISO11649(ref) != nil {
			res.add("reference", KindInvalidReference, "invalid creditor reference check digits")
		}
	case isNumeric(ref) && len(ref) == 27:
		if reference.ValidateQR(ref) != nil {
			res.add("reference", KindInvalidReference, "invalid QR reference check digit")
		}
	default:
		res.add("reference", KindInvalidReferenceType, "reference matches neither QR nor creditor reference scheme")
	}
}

func validateAmount(b *bill.Bill, res *Result) {
	if b.Amount == nil {
		return
	}
	amt := *b.Amount
	// More than two decimal places is rejected, never rounded.
	if !amt.Equal(amt.Truncate(2)) {
		res.add("amount", KindInvalidValue, "amount must have at most 2 decimal places")
		return
	}
	if amt.LessThan(amountMin) || amt.GreaterThan(amountMax) {
		res.add("amount", KindInvalidValue, "amount must be between 0.01 and 999999999.99")
	}
}

func validateAddress(a *bill.Address, field string, res *Result) {
	switch a.Type() {
	case bill.AddressTypeConflicting:
		res.add(field, KindAmbiguousAddressVariant, "address mixes structured and combined fields")
		return
	case bill.AddressTypeUndetermined:
		res.add(field, KindMissingMandatoryField, "address needs either structured fields or address lines")
		return
	}

	if strings.TrimSpace(a.Name) == "" {
		res.add(field+".name", KindMissingMandatoryField, "name is required")
	}
	checkLength(a.Name, field+".name", maxLenName, res)

	cc := a.CountryCode
	if strings.TrimSpace(cc) == "" {
		res.add(field+".countryCode", KindMissingMandatoryField, "country code is required")
	} else if len(cc) != 2 || !isUpperAlpha(cc) {
		res.add(field+".countryCode", KindInvalidValue, "country code must be two letters")
	}

	if a.Type() == bill.AddressTypeStructured {
		checkLength(a.Street, field+".street", maxLenStreet, res)
		checkLength(a.HouseNo, field+".houseNo", maxLenHouseNo, res)
		if strings.TrimSpace(a.PostalCode) == "" {
			res.add(field+".postalCode", KindMissingMandatoryField, "postal code is required")
		}
		checkLength(a.PostalCode, field+".postalCode", maxLenPostalCode, res)
		if strings.TrimSpace(a.Town) == "" {
			res.add(field+".town", KindMissingMandatoryField, "town is required")
		}
		checkLength(a.Town, field+".town", maxLenTown, res)
		return
	}

	checkLength(a.AddressLine1, field+".addressLine1", maxLenAddressLine, res)
	if strings.TrimSpace(a.AddressLine2) == "" {
		res.add(field+".addressLine2", KindMissingMandatoryField, "address line 2 is required")
	}
	checkLength(a.AddressLine2, field+".addressLine2", maxLenAddressLine, res)
}

func validateAdditionalInfo(b *bill.Bill, res *Result) {
	checkLength(b.UnstructuredMessage, "unstructuredMessage", maxLenMessage, res)
	checkLength(b.BillInformation, "billInformation", maxLenBillInfo, res)
	if len(b.UnstructuredMessage)+len(b.BillInformation) > maxLenAdditionalInfo {
		res.add("unstructuredMessage", KindFieldTooLong,
			"unstructured message and bill information exceed %d characters combined", maxLenAdditionalInfo)
	}
}

func validateAlternativeSchemes(b *bill.Bill, res *Result) {
	if len(b.AlternativeSchemes) > bill.MaxAlternativeSchemes {
		res.add("alternativeSchemes", KindInvalidValue,
			"at most %d alternative schemes allowed", bill.MaxAlternativeSchemes)
		return
	}
	for i, s := range b.AlternativeSchemes {
		field := schemeField(i)
		if strings.TrimSpace(s.Name) == "" {
			res.add(field+".name", KindMissingMandatoryField, "scheme name is required")
		}
		checkLength(s.Name, field+".name", maxLenSchemeField, res)
		if strings.TrimSpace(s.Instruction) == "" {
			res.add(field+".instruction", KindMissingMandatoryField, "scheme instruction is required")
		}
		checkLength(s.Instruction, field+".instruction", maxLenSchemeField, res)
	}
}

func validateFormat(b *bill.Bill, res *Result) {
	if !b.Format.Language.Valid() {
		res.add("format.language", KindInvalidValue, "unknown language %q", b.Format.Language)
	}
	if !b.Format.OutputSize.Valid() {
		res.add("format.outputSize", KindInvalidValue, "unknown output size %q", b.Format.OutputSize)
	}
	if !b.Format.SeparatorType.Valid() {
		res.add("format.separatorType", KindInvalidValue, "unknown separator type %q", b.Format.SeparatorType)
	}
}

func checkLength(value, field string, max int, res *Result) {
	if len([]rune(value)) > max {
		res.add(field, KindFieldTooLong, "must not exceed %d characters", max)
	}
}

func schemeField(i int) string {
	return "alternativeSchemes[" + string(rune('0'+i)) + "]"
}

func isNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

func isUpperAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
