package qr

import (
	"image/color"
	"io"

	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"
)

// WriteStyled renders req as PNG through the yeqown standard image writer
// instead of our own rasterizer. The result looks the same as a Bitmap
// encoded to PNG but is drawn by the library (anti-aliased edges).
func WriteStyled(w io.Writer, req Request) error {
	if err := req.Validate(); err != nil {
		return err
	}

	qrc, err := qrcode.NewWith(req.Payload, qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionLow))
	if err != nil {
		return &EncodingError{Op: "encode payload", Engine: EngineYeqown, Err: err}
	}

	writer := standard.NewWithWriter(nopCloser{w},
		standard.WithQRWidth(uint8(req.ModuleSize)),
		standard.WithBorderWidth(req.Border*req.ModuleSize),
		standard.WithBgColor(color.RGBA{255, 255, 255, 255}),
		standard.WithFgColor(color.RGBA{0, 0, 0, 255}),
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
	)
	if err := qrc.Save(writer); err != nil {
		return &EncodingError{Op: "write styled image", Engine: EngineYeqown, Err: err}
	}
	return nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
