package validation

import (
	"fmt"
	"strings"
)

// Kind classifies a single validation failure.
type Kind string

const (
	KindInvalidIBAN             Kind = "invalid_iban"
	KindInvalidReference        Kind = "invalid_reference"
	KindInvalidReferenceType    Kind = "invalid_reference_type"
	KindInvalidCharacters       Kind = "invalid_characters"
	KindFieldTooLong            Kind = "field_too_long"
	KindMissingMandatoryField   Kind = "missing_mandatory_field"
	KindAmbiguousAddressVariant Kind = "ambiguous_address_variant"
	KindInvalidValue            Kind = "invalid_value"
)

// Issue is a single field-scoped validation failure. Field is a dotted path
// into the bill, e.g. "creditor.name".
type Issue struct {
	Field   string `json:"field"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Field, i.Message)
}

// Result collects every issue found in one validation pass. Validation never
// fails fast, so callers can surface all problems of a form at once.
type Result struct {
	Issues []Issue `json:"issues"`
}

// OK reports whether the bill passed validation.
func (r Result) OK() bool {
	return len(r.Issues) == 0
}

func (r *Result) add(field string, kind Kind, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{
		Field:   field,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	})
}

func (r Result) String() string {
	if r.OK() {
		return "ok"
	}
	parts := make([]string, len(r.Issues))
	for i, issue := range r.Issues {
		parts[i] = issue.String()
	}
	return strings.Join(parts, "; ")
}

// Error adapts a failed Result to the error interface for callers that
// cannot consume the issue list directly.
type Error struct {
	Result Result
}

func (e *Error) Error() string {
	return "bill validation failed: " + e.Result.String()
}
