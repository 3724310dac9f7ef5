package qr

import (
	"errors"

	"github.com/yeqown/go-qrcode/v2"
)

// YeqownEngine encodes with github.com/yeqown/go-qrcode/v2.
type YeqownEngine struct{}

func (YeqownEngine) Name() string { return EngineYeqown }

func (YeqownEngine) Matrix(payload string) ([][]bool, error) {
	qrc, err := qrcode.NewWith(payload, qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionLow))
	if err != nil {
		return nil, err
	}

	w := &matrixWriter{}
	if err := qrc.Save(w); err != nil {
		return nil, err
	}
	if w.modules == nil {
		return nil, errors.New("encoder produced no matrix")
	}
	return w.modules, nil
}

// matrixWriter is a qrcode.Writer that keeps the symbol matrix instead of
// drawing it, so layout stays under our control.
type matrixWriter struct {
	modules [][]bool
}

func (w *matrixWriter) Write(mat qrcode.Matrix) error {
	modules := make([][]bool, mat.Height())
	for y := range modules {
		modules[y] = make([]bool, mat.Width())
	}
	mat.Iterate(qrcode.IterDirection_ROW, func(x, y int, v qrcode.QRValue) {
		modules[y][x] = v.IsSet()
	})
	w.modules = modules
	return nil
}

func (w *matrixWriter) Close() error { return nil }
