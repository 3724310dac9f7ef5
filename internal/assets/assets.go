// Package assets holds files embedded in the binary.
package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// FaviconSide is the pixel size of the rasterized favicon.
const FaviconSide = 64

//go:embed icon.svg
var iconSVG []byte

// IconSVG returns the source of the site icon.
func IconSVG() []byte { return iconSVG }

var favicon struct {
	once sync.Once
	data []byte
	err  error
}

// FaviconPNG returns the site icon rasterized to a FaviconSide PNG. The
// result is computed once.
func FaviconPNG() ([]byte, error) {
	favicon.once.Do(func() {
		img, err := Rasterize(iconSVG, FaviconSide)
		if err != nil {
			favicon.err = err
			return
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			favicon.err = fmt.Errorf("encode favicon: %w", err)
			return
		}
		favicon.data = buf.Bytes()
	})
	return favicon.data, favicon.err
}

// Rasterize renders an SVG document to a side x side RGBA image.
func Rasterize(svg []byte, side int) (*image.RGBA, error) {
	if side <= 0 {
		return nil, fmt.Errorf("rasterize svg: invalid side %d", side)
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(side), float64(side))

	img := image.NewRGBA(image.Rect(0, 0, side, side))
	scanner := rasterx.NewScannerGV(side, side, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(side, side, scanner), 1)
	return img, nil
}
