package bill

// Language selects the fixed texts printed on the bill. It only affects the
// rendering layer; the QR payload itself is language independent.
type Language string

const (
	LanguageDE Language = "de"
	LanguageFR Language = "fr"
	LanguageIT Language = "it"
	LanguageRM Language = "rm"
	LanguageEN Language = "en"
)

// OutputSize selects the printed variant of the bill.
type OutputSize string

const (
	OutputSizeA4Portrait OutputSize = "a4-portrait"
	OutputSizeQRBillOnly OutputSize = "qr-bill-only"
	OutputSizeQRCodeOnly OutputSize = "qr-code-only"
)

// SeparatorType selects how the detachable payment part is delimited.
type SeparatorType string

const (
	SeparatorNone                  SeparatorType = "none"
	SeparatorDashedLine            SeparatorType = "dashed-line"
	SeparatorSolidLine             SeparatorType = "solid-line"
	SeparatorSolidLineWithScissors SeparatorType = "solid-line-with-scissors"
)

// Format holds the presentational choices for a bill. The core codec passes
// it through untouched; it is consumed by the external rendering layer.
// Recognized values are still validated for set membership.
type Format struct {
	Language      Language
	OutputSize    OutputSize
	SeparatorType SeparatorType
}

// DefaultFormat returns the format applied to a freshly constructed bill.
func DefaultFormat() Format {
	return Format{
		Language:      LanguageEN,
		OutputSize:    OutputSizeQRBillOnly,
		SeparatorType: SeparatorSolidLineWithScissors,
	}
}

func (l Language) Valid() bool {
	switch l {
	case LanguageDE, LanguageFR, LanguageIT, LanguageRM, LanguageEN:
		return true
	}
	return false
}

func (s OutputSize) Valid() bool {
	switch s {
	case OutputSizeA4Portrait, OutputSizeQRBillOnly, OutputSizeQRCodeOnly:
		return true
	}
	return false
}

func (s SeparatorType) Valid() bool {
	switch s {
	case SeparatorNone, SeparatorDashedLine, SeparatorSolidLine, SeparatorSolidLineWithScissors:
		return true
	}
	return false
}
