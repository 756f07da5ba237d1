package reference_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrbill-ch/qrbill/internal/domain/reference"
)

func TestComputeMod10(t *testing.T) {
	// The official example reference: check digit 7 over the first 26 digits.
	check, err := reference.ComputeMod10("21000000000313947143000901")
	require.NoError(t, err)
	assert.Equal(t, 7, check)

	_, err = reference.ComputeMod10("12345a")
	assert.ErrorIs(t, err, reference.ErrInvalidCharacters)
}

func TestValidateQR(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		wantErr bool
	}{
		{"valid reference", "210000000003139471430009017", false},
		{"valid with whitespace", "21 00000 00003 13947 14300 09017", false},
		{"wrong check digit", "210000000003139471430009018", true},
		{"too short", "2100000000031394714300090", true},
		{"not numeric", "21000000000313947143000901A", true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := reference.ValidateQR(tt.ref)
			if tt.wantErr {
				assert.ErrorIs(t, err, reference.ErrInvalidReference)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateISO11649(t *testing.T) {
	ref, err := reference.CreateISO11649("ABC")
	require.NoError(t, err)
	assert.Equal(t, "RF45ABC", ref)
	assert.Regexp(t, regexp.MustCompile(`^RF\d{2}ABC$`), ref)
	assert.NoError(t, reference.ValidateISO11649(ref))
}

func TestCreateISO11649_NormalizesInput(t *testing.T) {
	ref, err := reference.CreateISO11649("  ab 12 ")
	require.NoError(t, err)
	assert.Equal(t, "AB12", ref[4:])
	assert.NoError(t, reference.ValidateISO11649(ref))
}

func TestCreateISO11649_RejectsBadPayloads(t *testing.T) {
	_, err := reference.CreateISO11649("AB-12")
	assert.ErrorIs(t, err, reference.ErrInvalidCharacters)

	_, err = reference.CreateISO11649("")
	assert.ErrorIs(t, err, reference.ErrInvalidReference)

	_, err = reference.CreateISO11649("1234567890123456789012")
	assert.ErrorIs(t, err, reference.ErrInvalidReference)
}

func TestValidateISO11649(t *testing.T) {
	assert.NoError(t, reference.ValidateISO11649("RF18539007547034"))
	assert.NoError(t, reference.ValidateISO11649("RF18 5390 0754 7034"))

	assert.ErrorIs(t, reference.ValidateISO11649("RF19539007547034"), reference.ErrInvalidReference)
	assert.ErrorIs(t, reference.ValidateISO11649("RF45"), reference.ErrInvalidReference)
	assert.ErrorIs(t, reference.ValidateISO11649("XX45ABC"), reference.ErrInvalidReference)
}
