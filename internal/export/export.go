// Package export serializes QR bitmaps for display and download.
package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html"
	"image"
	"image/png"
	"strings"
)

// LinkText is the visible text of the download anchor.
const LinkText = "Download QR Code"

// PNG encodes img as PNG.
func PNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// DataURI returns data as a base64 data URI of the given MIME type.
func DataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Filename returns the download filename for a size label,
// e.g. "qrcode_medium.png".
func Filename(sizeLabel string) string {
	return "qrcode_" + strings.ToLower(sizeLabel) + ".png"
}

// Download is an in-memory file offered to the user.
type Download struct {
	Data     []byte
	Filename string
	MIME     string
}

// DataURI returns the download's bytes as a data URI.
func (d Download) DataURI() string { return DataURI(d.MIME, d.Data) }

// Link returns the anchor that downloads d.
func (d Download) Link() Link {
	return Link{Href: d.DataURI(), Filename: d.Filename, MIME: d.MIME, Text: LinkText}
}

// Link is a download anchor whose target is an inline data URI.
type Link struct {
	Href     string
	Filename string
	MIME     string
	Text     string
}

// HTML renders the anchor, e.g.
// <a href="data:image/png;base64,..." download="qrcode_medium.png">Download QR Code</a>.
func (l Link) HTML() string {
	return fmt.Sprintf(`<a href="%s" download="%s">%s</a>`,
		html.EscapeString(l.Href), html.EscapeString(l.Filename), html.EscapeString(l.Text))
}

// NewPNGDownload encodes img as PNG and wraps it as a Download.
func NewPNGDownload(img image.Image, filename string) (Download, error) {
	data, err := PNG(img)
	if err != nil {
		return Download{}, err
	}
	return Download{Data: data, Filename: filename, MIME: MIMEPNG}, nil
}

// ToDownloadLink encodes img as PNG and returns a link that downloads it
// under filename.
func ToDownloadLink(img image.Image, filename string) (Link, error) {
	d, err := NewPNGDownload(img, filename)
	if err != nil {
		return Link{}, err
	}
	return d.Link(), nil
}
