// Package studio evaluates one render cycle of the generator page: it
// decides between the empty, displaying and failed states and prepares
// everything the page needs to draw them.
package studio

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/cristianadrielbraun/qrgen/internal/export"
	"github.com/cristianadrielbraun/qrgen/internal/qr"
)

// The example shown while the text area is empty.
const (
	ExampleText       = "Hello, World! This is a sample QR code."
	ExampleModuleSize = 10
	ExampleBorder     = 4
	ExampleWidth      = 300
)

// Encoder renders QR bitmaps. *qr.Encoder implements it.
type Encoder interface {
	Encode(payload string, moduleSize, border int) (*qr.Bitmap, error)
}

// State is the outcome of a render cycle.
type State int

const (
	StateEmpty State = iota
	StateDisplaying
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateDisplaying:
		return "displaying"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Image is a rendered code ready for an <img> tag.
type Image struct {
	Src     string // PNG data URI
	Width   int    // display width hint in pixels, 0 for natural size
	Side    int    // actual pixel size
	Caption string
}

// View is everything the page needs for one render cycle.
type View struct {
	Form     Form
	State    State
	Image    *Image
	Link     *export.Link
	Message  string
	Hint     string
	Warnings []string
}

// Studio runs render cycles against an encoder.
type Studio struct {
	enc Encoder
	log *logrus.Entry

	exampleOnce sync.Once
	example     *Image
}

// New returns a Studio. A nil logger discards log output.
func New(enc Encoder, logger *logrus.Logger) *Studio {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &Studio{enc: enc, log: logger.WithField("component", "studio")}
}

// Render evaluates the state machine for f. It never panics on encoder
// failures: those become a StateFailed view.
func (s *Studio) Render(ctx context.Context, f Form) View {
	v := View{Form: f}
	log := s.log.WithContext(ctx)

	if f.Empty() {
		v.State = StateEmpty
		v.Message = "Enter some text above to generate your QR code"
		v.Image = s.exampleImage()
		return v
	}

	if err := ctx.Err(); err != nil {
		return failed(v, err)
	}

	bmp, err := s.enc.Encode(f.Text, f.Size.ModuleSize, f.Border)
	if err != nil {
		log.WithError(err).WithField("size", f.Size.Label).Info("qr generation failed")
		return failed(v, err)
	}

	d, err := export.NewPNGDownload(bmp, export.Filename(f.Size.Label))
	if err != nil {
		log.WithError(err).Error("qr export failed")
		return failed(v, err)
	}

	link := d.Link()
	v.State = StateDisplaying
	v.Image = &Image{Src: link.Href, Side: bmp.Side(), Caption: "Your QR Code"}
	v.Link = &link
	v.Message = fmt.Sprintf("QR Code generated successfully! Size: %s, Border: %d", f.Size.Label, f.Border)
	return v
}

func failed(v View, err error) View {
	v.State = StateFailed
	v.Message = "Error generating QR code: " + err.Error()
	v.Hint = "Please check your input and try again."
	return v
}

// exampleImage renders the fixed example once per Studio.
func (s *Studio) exampleImage() *Image {
	s.exampleOnce.Do(func() {
		bmp, err := s.enc.Encode(ExampleText, ExampleModuleSize, ExampleBorder)
		if err != nil {
			s.log.WithError(err).Error("example qr generation failed")
			return
		}
		data, err := export.PNG(bmp)
		if err != nil {
			s.log.WithError(err).Error("example qr export failed")
			return
		}
		s.example = &Image{
			Src:     export.DataURI(export.MIMEPNG, data),
			Width:   ExampleWidth,
			Side:    bmp.Side(),
			Caption: "Example QR Code",
		}
	})
	return s.example
}
