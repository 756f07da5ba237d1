package qrgenerator

import (
	qr "github.com/skip2/go-qrcode"
)

// Generator renders payload text as a PNG QR symbol. Swiss bills mandate
// error correction level M.
type Generator struct {
	size int
}

func NewGenerator(size int) *Generator {
	return &Generator{size: size}
}

func (g *Generator) Generate(payload string) ([]byte, error) {
	return qr.Encode(payload, qr.Medium, g.size)
}
