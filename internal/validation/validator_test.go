package validation_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrbill-ch/qrbill/internal/domain/bill"
	"github.com/qrbill-ch/qrbill/internal/validation"
)

const (
	standardIBAN = "CH9300762011623852957"
	qrIBAN       = "CH4431999123000889012"
	qrReference  = "210000000003139471430009017"
)

func validBill() *bill.Bill {
	b := bill.New()
	amt := decimal.RequireFromString("199.95")
	b.Amount = &amt
	b.Account = standardIBAN
	b.Creditor = &bill.Address{
		Name:        "Robert Schneider AG",
		Street:      "Rue du Lac",
		HouseNo:     "1268",
		PostalCode:  "2501",
		Town:        "Biel",
		CountryCode: "CH",
	}
	return b
}

func issueKinds(res validation.Result) map[string]validation.Kind {
	kinds := make(map[string]validation.Kind)
	for _, issue := range res.Issues {
		kinds[issue.Field] = issue.Kind
	}
	return kinds
}

func TestValidate_ValidBill(t *testing.T) {
	res := validation.Validate(validBill())
	assert.True(t, res.OK(), "unexpected issues: %s", res.String())
}

func TestValidate_Idempotent(t *testing.T) {
	b := validBill()
	b.Account = "not an iban"

	first := validation.Validate(b)
	second := validation.Validate(b)
	assert.Equal(t, first, second)
}

func TestValidate_CollectsAllIssues(t *testing.T) {
	b := validBill()
	b.Account = ""
	b.Currency = "USD"
	b.Creditor = nil

	res := validation.Validate(b)
	require.False(t, res.OK())

	kinds := issueKinds(res)
	assert.Equal(t, validation.KindMissingMandatoryField, kinds["account"])
	assert.Equal(t, validation.KindInvalidValue, kinds["currency"])
	assert.Equal(t, validation.KindMissingMandatoryField, kinds["creditor"])
}

func TestValidate_AmountBoundaries(t *testing.T) {
	tests := []struct {
		amount string
		valid  bool
	}{
		{"0.00", false},
		{"0.01", true},
		{"999999999.99", true},
		{"1000000000.00", false},
		{"1.005", false},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			b := validBill()
			amt := decimal.RequireFromString(tt.amount)
			b.Amount = &amt

			res := validation.Validate(b)
			assert.Equal(t, tt.valid, res.OK(), res.String())
		})
	}
}

func TestValidate_AmountAbsentMeansAnyAmount(t *testing.T) {
	b := validBill()
	b.Amount = nil
	assert.True(t, validation.Validate(b).OK())
}

func TestValidate_QRIBANRequiresQRReference(t *testing.T) {
	b := validBill()
	b.Account = qrIBAN

	res := validation.Validate(b)
	kinds := issueKinds(res)
	assert.Equal(t, validation.KindMissingMandatoryField, kinds["reference"])

	b.Reference = qrReference
	assert.True(t, validation.Validate(b).OK())

	b.Reference = "RF18539007547034"
	kinds = issueKinds(validation.Validate(b))
	assert.Equal(t, validation.KindInvalidReferenceType, kinds["reference"])
}

func TestValidate_StandardIBANReferenceOptional(t *testing.T) {
	b := validBill()
	b.Reference = ""
	assert.True(t, validation.Validate(b).OK())

	b.Reference = "RF18539007547034"
	assert.True(t, validation.Validate(b).OK())

	b.Reference = qrReference
	assert.True(t, validation.Validate(b).OK())
}

func TestValidate_ReferenceShapeRouting(t *testing.T) {
	b := validBill()

	// Wrong check digit routes to the detected scheme's validation.
	b.Reference = "RF19539007547034"
	kinds := issueKinds(validation.Validate(b))
	assert.Equal(t, validation.KindInvalidReference, kinds["reference"])

	b.Reference = "210000000003139471430009018"
	kinds = issueKinds(validation.Validate(b))
	assert.Equal(t, validation.KindInvalidReference, kinds["reference"])

	// A wrong-length numeric string matches neither scheme cleanly.
	b.Reference = "12345"
	kinds = issueKinds(validation.Validate(b))
	assert.Equal(t, validation.KindInvalidReferenceType, kinds["reference"])

	b.Reference = "hello world"
	kinds = issueKinds(validation.Validate(b))
	assert.Equal(t, validation.KindInvalidReferenceType, kinds["reference"])
}

func TestValidate_AmbiguousAddressVariant(t *testing.T) {
	b := validBill()
	b.Creditor.AddressLine1 = "Rue du Lac 1268"

	kinds := issueKinds(validation.Validate(b))
	assert.Equal(t, validation.KindAmbiguousAddressVariant, kinds["creditor"])
}

func TestValidate_CombinedAddress(t *testing.T) {
	b := validBill()
	b.Creditor = &bill.Address{
		Name:         "Robert Schneider AG",
		AddressLine1: "Rue du Lac 1268",
		AddressLine2: "2501 Biel",
		CountryCode:  "CH",
	}
	assert.True(t, validation.Validate(b).OK())

	b.Creditor.AddressLine2 = ""
	b.Creditor.AddressLine1 = "Rue du Lac 1268"
	kinds := issueKinds(validation.Validate(b))
	assert.Equal(t, validation.KindMissingMandatoryField, kinds["creditor.addressLine2"])
}

func TestValidate_EmptyDebtorEqualsAbsent(t *testing.T) {
	b := validBill()
	b.Debtor = &bill.Address{}
	assert.True(t, validation.Validate(b).OK())

	b.Debtor = &bill.Address{Name: "Pia Rutschmann"}
	res := validation.Validate(b)
	assert.False(t, res.OK(), "partially filled debtor must be validated")
}

func TestValidate_FieldLengths(t *testing.T) {
	b := validBill()
	b.Creditor.Name = strings.Repeat("x", 71)

	kinds := issueKinds(validation.Validate(b))
	assert.Equal(t, validation.KindFieldTooLong, kinds["creditor.name"])
}

func TestValidate_AdditionalInfoCombinedBudget(t *testing.T) {
	b := validBill()
	b.UnstructuredMessage = strings.Repeat("m", 100)
	b.BillInformation = strings.Repeat("i", 100)

	kinds := issueKinds(validation.Validate(b))
	assert.Equal(t, validation.KindFieldTooLong, kinds["unstructuredMessage"])

	b.UnstructuredMessage = strings.Repeat("m", 40)
	assert.True(t, validation.Validate(b).OK())
}

func TestValidate_AlternativeSchemes(t *testing.T) {
	scheme := bill.AlternativeScheme{Name: "eBill", Instruction: "B/41010560425610173"}

	b := validBill()
	assert.True(t, validation.Validate(b).OK(), "zero schemes must be valid")

	b.AlternativeSchemes = []bill.AlternativeScheme{scheme, scheme}
	assert.True(t, validation.Validate(b).OK(), "two schemes must be valid")

	b.AlternativeSchemes = []bill.AlternativeScheme{scheme, scheme, scheme}
	kinds := issueKinds(validation.Validate(b))
	assert.Equal(t, validation.KindInvalidValue, kinds["alternativeSchemes"])

	b.AlternativeSchemes = []bill.AlternativeScheme{{Name: "eBill"}}
	kinds = issueKinds(validation.Validate(b))
	assert.Equal(t, validation.KindMissingMandatoryField, kinds["alternativeSchemes[0].instruction"])
}

func TestValidate_Format(t *testing.T) {
	b := validBill()
	b.Format.Language = "xx"

	kinds := issueKinds(validation.Validate(b))
	assert.Equal(t, validation.KindInvalidValue, kinds["format.language"])
}
