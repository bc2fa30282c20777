package qr

import (
	qrcode "github.com/skip2/go-qrcode"
)

// Generator renders an opaque token into a scannable image. The rest of the
// system only ever handles the token string.
//
//go:generate mockgen -source=generator.go -destination=mock/generator_mock.go -package=mock
type Generator interface {
	Encode(token string) ([]byte, error)
}

type pngGenerator struct {
	size int
}

func NewPNGGenerator(size int) Generator {
	if size <= 0 {
		size = 256
	}
	return &pngGenerator{size: size}
}

func (g *pngGenerator) Encode(token string) ([]byte, error) {
	return qrcode.Encode(token, qrcode.Medium, g.size)
}
