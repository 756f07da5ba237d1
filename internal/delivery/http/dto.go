package http

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/qrbill-ch/qrbill/internal/domain/bill"
)

type AddressDTO struct {
	Name         string `json:"name"`
	Street       string `json:"street,omitempty"`
	HouseNo      string `json:"house_no,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	Town         string `json:"town,omitempty"`
	AddressLine1 string `json:"address_line1,omitempty"`
	AddressLine2 string `json:"address_line2,omitempty"`
	CountryCode  string `json:"country_code"`
}

type SchemeDTO struct {
	Name        string `json:"name"`
	Instruction string `json:"instruction"`
}

type FormatDTO struct {
	Language      string `json:"language,omitempty"`
	OutputSize    string `json:"output_size,omitempty"`
	SeparatorType string `json:"separator_type,omitempty"`
}

// BillDTO is the JSON representation of a bill as accepted from the input
// layer. Amount travels as a string to keep the two decimal places intact.
type BillDTO struct {
	Amount              *string     `json:"amount,omitempty"`
	Currency            string      `json:"currency"`
	Account             string      `json:"account"`
	Creditor            *AddressDTO `json:"creditor"`
	Reference           string      `json:"reference,omitempty"`
	Debtor              *AddressDTO `json:"debtor,omitempty"`
	UnstructuredMessage string      `json:"unstructured_message,omitempty"`
	BillInformation     string      `json:"bill_information,omitempty"`
	AlternativeSchemes  []SchemeDTO `json:"alternative_schemes,omitempty"`
	Format              *FormatDTO  `json:"format,omitempty"`
}

func (d *BillDTO) toDomain() (*bill.Bill, error) {
	b := bill.New()
	if d.Amount != nil {
		amt, err := decimal.NewFromString(*d.Amount)
		if err != nil {
			return nil, fmt.Errorf("malformed amount %q", *d.Amount)
		}
		b.Amount = &amt
	}
	b.Currency = bill.Currency(d.Currency)
	b.Account = d.Account
	b.Creditor = addressToDomain(d.Creditor)
	b.Reference = d.Reference
	b.Debtor = addressToDomain(d.Debtor)
	b.UnstructuredMessage = d.UnstructuredMessage
	b.BillInformation = d.BillInformation
	for _, s := range d.AlternativeSchemes {
		b.AlternativeSchemes = append(b.AlternativeSchemes, bill.AlternativeScheme(s))
	}
	if f := d.Format; f != nil {
		if f.Language != "" {
			b.Format.Language = bill.Language(f.Language)
		}
		if f.OutputSize != "" {
			b.Format.OutputSize = bill.OutputSize(f.OutputSize)
		}
		if f.SeparatorType != "" {
			b.Format.SeparatorType = bill.SeparatorType(f.SeparatorType)
		}
	}
	return b, nil
}

func fromDomain(b *bill.Bill) *BillDTO {
	d := &BillDTO{
		Currency:            string(b.Currency),
		Account:             b.Account,
		Reference:           b.Reference,
		Creditor:            addressFromDomain(b.Creditor),
		Debtor:              addressFromDomain(b.Debtor),
		UnstructuredMessage: b.UnstructuredMessage,
		BillInformation:     b.BillInformation,
		Format: &FormatDTO{
			Language:      string(b.Format.Language),
			OutputSize:    string(b.Format.OutputSize),
			SeparatorType: string(b.Format.SeparatorType),
		},
	}
	if b.Amount != nil {
		amount := b.Amount.StringFixed(2)
		d.Amount = &amount
	}
	for _, s := range b.AlternativeSchemes {
		d.AlternativeSchemes = append(d.AlternativeSchemes, SchemeDTO(s))
	}
	return d
}

func addressToDomain(d *AddressDTO) *bill.Address {
	if d == nil {
		return nil
	}
	return &bill.Address{
		Name:         d.Name,
		Street:       d.Street,
		HouseNo:      d.HouseNo,
		PostalCode:   d.PostalCode,
		Town:         d.Town,
		AddressLine1: d.AddressLine1,
		AddressLine2: d.AddressLine2,
		CountryCode:  d.CountryCode,
	}
}

func addressFromDomain(a *bill.Address) *AddressDTO {
	if a.IsEmpty() {
		return nil
	}
	return &AddressDTO{
		Name:         a.Name,
		Street:       a.Street,
		HouseNo:      a.HouseNo,
		PostalCode:   a.PostalCode,
		Town:         a.Town,
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		CountryCode:  a.CountryCode,
	}
}
