package decodebill

import (
	"github.com/qrbill-ch/qrbill/internal/codec"
	"github.com/qrbill-ch/qrbill/internal/domain/bill"
)

type Request struct {
	Payload string
}

type Response struct {
	Bill *bill.Bill
}

// UseCase parses scanned payload text back into a validated bill.
type UseCase struct{}

func NewUseCase() *UseCase {
	return &UseCase{}
}

func (uc *UseCase) Execute(req Request) (*Response, error) {
	b, err := codec.Decode(req.Payload)
	if err != nil {
		return nil, err
	}
	return &Response{Bill: b}, nil
}
