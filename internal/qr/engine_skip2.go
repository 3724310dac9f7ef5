package qr

import (
	qrcode "github.com/skip2/go-qrcode"
)

// Skip2Engine encodes with github.com/skip2/go-qrcode.
type Skip2Engine struct{}

func (Skip2Engine) Name() string { return EngineSkip2 }

// Segments reports true: skip2 splits payloads into numeric, alphanumeric
// and byte segments.
func (Skip2Engine) Segments() bool { return true }

func (Skip2Engine) Matrix(payload string) ([][]bool, error) {
	q, err := qrcode.New(payload, qrcode.Low)
	if err != nil {
		return nil, err
	}
	// Bitmap builds the symbol and may only be called once per QRCode.
	q.DisableBorder = true
	return q.Bitmap(), nil
}
