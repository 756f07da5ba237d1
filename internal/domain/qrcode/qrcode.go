package qrcode

//go:generate mockgen -source=qrcode.go -destination=mocks/mock_generator.go -package=mocks

// Generator renders payload text into a scannable QR symbol. The payload
// text alone is sufficient input; implementations live in infrastructure.
type Generator interface {
	Generate(payload string) ([]byte, error)
}
