package bill

import "strings"

// AddressType describes which of the two payload address variants the
// populated fields of an Address correspond to.
type AddressType int

const (
	AddressTypeUndetermined AddressType = iota
	AddressTypeStructured
	AddressTypeCombined
	// AddressTypeConflicting marks an address that mixes structured and
	// combined fields. Such an address never passes validation.
	AddressTypeConflicting
)

// Address is a postal address of a creditor or debtor. It carries the fields
// of both payload variants: structured (street, house number, postal code,
// town) and combined (two free-form lines). Exactly one variant may be
// populated.
type Address struct {
	Name string

	Street     string
	HouseNo    string
	PostalCode string
	Town       string

	AddressLine1 string
	AddressLine2 string

	// CountryCode is the two-letter ISO 3166-1 country code.
	CountryCode string
}

// Type derives the address variant from the populated fields.
func (a *Address) Type() AddressType {
	structured := a.Street != "" || a.HouseNo != "" || a.PostalCode != "" || a.Town != ""
	combined := a.AddressLine1 != "" || a.AddressLine2 != ""

	switch {
	case structured && combined:
		return AddressTypeConflicting
	case combined:
		return AddressTypeCombined
	case structured:
		return AddressTypeStructured
	default:
		return AddressTypeUndetermined
	}
}

// IsEmpty reports whether every field of the address is blank. An empty
// debtor address is treated the same as an absent one.
func (a *Address) IsEmpty() bool {
	if a == nil {
		return true
	}
	fields := []string{
		a.Name, a.Street, a.HouseNo, a.PostalCode, a.Town,
		a.AddressLine1, a.AddressLine2, a.CountryCode,
	}
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// Equal reports field-for-field equality. Two nil (or fully empty) addresses
// are equal.
func (a *Address) Equal(other *Address) bool {
	if a.IsEmpty() || other.IsEmpty() {
		return a.IsEmpty() && other.IsEmpty()
	}
	return *a == *other
}
