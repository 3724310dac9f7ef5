package qr

import (
	"image"
	"image/color"
)

// Palette indices used by Bitmap.
const (
	Light uint8 = 0
	Dark  uint8 = 1
)

var monochrome = color.Palette{color.White, color.Black}

// Bitmap is a rendered QR symbol: a black-on-white paletted image plus
// the module matrix and layout it was drawn from.
type Bitmap struct {
	*image.Paletted

	// Modules is the bare symbol (no quiet zone), indexed [y][x].
	Modules    [][]bool
	ModuleSize int
	Border     int
}

// Dimension is the number of modules along one side of the symbol.
func (b *Bitmap) Dimension() int { return len(b.Modules) }

// Side is the pixel width (and height) of the image.
func (b *Bitmap) Side() int { return b.Rect.Dx() }

// Margin is the blank margin in pixels on each side of the symbol.
func (b *Bitmap) Margin() int { return b.Border * b.ModuleSize }

// IsDark reports whether pixel (x, y) is black.
func (b *Bitmap) IsDark(x, y int) bool {
	return b.ColorIndexAt(x, y) == Dark
}

// rasterize lays out modules as moduleSize-pixel blocks surrounded by
// border blank modules on every side.
func rasterize(modules [][]bool, moduleSize, border int) *Bitmap {
	dim := len(modules)
	side := (dim + 2*border) * moduleSize
	img := image.NewPaletted(image.Rect(0, 0, side, side), monochrome)

	offset := border * moduleSize
	for y, row := range modules {
		for x, dark := range row {
			if !dark {
				continue
			}
			x0 := offset + x*moduleSize
			y0 := offset + y*moduleSize
			for py := y0; py < y0+moduleSize; py++ {
				line := img.Pix[py*img.Stride : py*img.Stride+side]
				for px := x0; px < x0+moduleSize; px++ {
					line[px] = Dark
				}
			}
		}
	}

	return &Bitmap{
		Paletted:   img,
		Modules:    modules,
		ModuleSize: moduleSize,
		Border:     border,
	}
}

// Version is the QR version (1-40) chosen by the engine.
func (b *Bitmap) Version() int {
	return (b.Dimension() - 17) / 4
}
