package export

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Scale resizes img to side x side pixels with nearest-neighbour sampling,
// which keeps module edges sharp. Paletted images stay paletted.
func Scale(img image.Image, side int) image.Image {
	bounds := img.Bounds()
	if side <= 0 || (bounds.Dx() == side && bounds.Dy() == side) {
		return img
	}

	rect := image.Rect(0, 0, side, side)
	var dst xdraw.Image
	if palette, ok := img.ColorModel().(color.Palette); ok {
		dst = image.NewPaletted(rect, palette)
	} else {
		dst = image.NewRGBA(rect)
	}
	xdraw.NearestNeighbor.Scale(dst, rect, img, bounds, xdraw.Src, nil)
	return dst
}
