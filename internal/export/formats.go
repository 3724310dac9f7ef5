package export

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/cristianadrielbraun/qrgen/internal/qr"
)

// Format is an output image format.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpg"
	FormatBMP  Format = "bmp"
	FormatSVG  Format = "svg"
)

const (
	MIMEPNG  = "image/png"
	MIMEJPEG = "image/jpeg"
	MIMEBMP  = "image/bmp"
	MIMESVG  = "image/svg+xml"
)

const jpegQuality = 92

// ParseFormat normalizes a format name. "jpeg" maps to jpg and anything
// unrecognized falls back to png.
func ParseFormat(s string) Format {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "jpeg":
		return FormatJPEG
	case FormatJPEG, FormatBMP, FormatSVG:
		return f
	default:
		return FormatPNG
	}
}

// MIME returns the content type of the format.
func (f Format) MIME() string {
	switch f {
	case FormatJPEG:
		return MIMEJPEG
	case FormatBMP:
		return MIMEBMP
	case FormatSVG:
		return MIMESVG
	default:
		return MIMEPNG
	}
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	if f == "" {
		return ".png"
	}
	return "." + string(f)
}

// Filename returns the download filename for a size label in format f,
// e.g. "qrcode_large.svg".
func (f Format) Filename(sizeLabel string) string {
	return strings.TrimSuffix(Filename(sizeLabel), FormatPNG.Ext()) + f.Ext()
}

// Raster reports whether the format is a pixel format.
func (f Format) Raster() bool { return f != FormatSVG }

// Write encodes b in format f. img, when non-nil, replaces b's own pixels
// for raster formats (used for scaled previews).
func Write(w io.Writer, b *qr.Bitmap, img image.Image, f Format) error {
	if img == nil {
		img = b
	}
	switch f {
	case FormatSVG:
		return SVG(w, b)
	case FormatJPEG:
		return writeJPEG(w, img)
	case FormatBMP:
		if err := bmp.Encode(w, img); err != nil {
			return fmt.Errorf("encode bmp: %w", err)
		}
		return nil
	default:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
		return nil
	}
}

// writeJPEG composites img onto an opaque white background first.
func writeJPEG(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(out, bounds, img, bounds.Min, draw.Over)
	if err := jpeg.Encode(w, out, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("encode jpeg: %w", err)
	}
	return nil
}

// SVG writes b as a vector image in pixel units, one rect per horizontal
// run of dark modules.
func SVG(w io.Writer, b *qr.Bitmap) error {
	bw := bufio.NewWriter(w)
	side := b.Side()
	m := b.ModuleSize
	offset := b.Margin()

	fmt.Fprint(bw, `<?xml version="1.0" encoding="UTF-8"?>`)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d" shape-rendering="crispEdges">`,
		side, side, side, side)
	fmt.Fprintf(bw, `<rect width="%d" height="%d" fill="#ffffff"/>`, side, side)
	fmt.Fprint(bw, `<g fill="#000000">`)
	for y, row := range b.Modules {
		for x := 0; x < len(row); {
			if !row[x] {
				x++
				continue
			}
			start := x
			for x < len(row) && row[x] {
				x++
			}
			fmt.Fprintf(bw, `<rect x="%d" y="%d" width="%d" height="%d"/>`,
				offset+start*m, offset+y*m, (x-start)*m, m)
		}
	}
	fmt.Fprint(bw, `</g></svg>`)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}
