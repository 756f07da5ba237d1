package decodebill_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrbill-ch/qrbill/internal/codec"
	"github.com/qrbill-ch/qrbill/internal/usecase/decodebill"
)

var scannedPayload = strings.Join([]string{
	"SPC",
	"0200",
	"1",
	"CH4431999123000889012",
	"S",
	"Robert Schneider AG",
	"Rue du Lac",
	"1268",
	"2501",
	"Biel",
	"CH",
	"", "", "", "", "", "", "",
	"1949.75",
	"CHF",
	"", "", "", "", "", "", "",
	"QRR",
	"210000000003139471430009017",
	"",
	"EPD",
}, "\n")

func TestDecodeBill_ScannedPayload(t *testing.T) {
	uc := decodebill.NewUseCase()

	resp, err := uc.Execute(decodebill.Request{Payload: scannedPayload})
	require.NoError(t, err)

	b := resp.Bill
	assert.Equal(t, "CH4431999123000889012", b.Account)
	assert.Equal(t, "Robert Schneider AG", b.Creditor.Name)
	assert.Equal(t, "210000000003139471430009017", b.Reference)
	require.NotNil(t, b.Amount)
	assert.Equal(t, "1949.75", b.Amount.StringFixed(2))
	assert.Nil(t, b.Debtor)
}

func TestDecodeBill_MalformedPayload(t *testing.T) {
	uc := decodebill.NewUseCase()

	_, err := uc.Execute(decodebill.Request{Payload: "not a payload"})
	assert.ErrorIs(t, err, codec.ErrInvalidPayload)
}
