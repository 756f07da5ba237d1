package generatebill

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/qrbill-ch/qrbill/internal/codec"
	"github.com/qrbill-ch/qrbill/internal/domain/bill"
	"github.com/qrbill-ch/qrbill/internal/domain/qrcode"
	"github.com/qrbill-ch/qrbill/internal/validation"
)

type Request struct {
	Bill *bill.Bill
}

type Response struct {
	BillID  string
	Payload string
	PNG     []byte
}

// UseCase validates a bill, encodes it into the payload text and renders
// the QR symbol for the printable payment part.
type UseCase struct {
	generator qrcode.Generator
}

func NewUseCase(generator qrcode.Generator) *UseCase {
	return &UseCase{generator: generator}
}

func (uc *UseCase) Execute(req Request) (*Response, error) {
	if res := validation.Validate(req.Bill); !res.OK() {
		return nil, &validation.Error{Result: res}
	}

	payload, err := codec.Encode(req.Bill)
	if err != nil {
		return nil, err
	}

	png, err := uc.generator.Generate(payload)
	if err != nil {
		return nil, fmt.Errorf("qr generation failed: %w", err)
	}

	return &Response{
		BillID:  uuid.New().String(),
		Payload: payload,
		PNG:     png,
	}, nil
}
