package service

import (
	"strings"

	"github.com/skip2/go-qrcode"
)

const qrSize = 512

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(username string) ([]byte, error) {
	return qrcode.Encode(strings.TrimRight(g.BaseURL, "/")+"/"+username, qrcode.Medium, qrSize)
}
