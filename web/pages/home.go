// Package pages holds the full-page and fragment renderers.
package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/cristianadrielbraun/qrgen/internal/qr"
	"github.com/cristianadrielbraun/qrgen/internal/studio"
	"github.com/cristianadrielbraun/qrgen/web/components"
)

const (
	htmxSrc     = "https://unpkg.com/htmx.org@1.9.12"
	tailwindSrc = "https://cdn.tailwindcss.com"

	// ResultID is the element htmx swaps on live updates.
	ResultID      = "result"
	borderValueID = "border-value"

	placeholder = "Enter your text here... (e.g., https://example.com, Hello World!, contact info, etc.)"
)

// copyButton copies the displayed image as a data URI and asks the server
// for a confirmation toast.
const copyButton = `<button type="button" class="text-sm underline text-gray-600"` +
	` hx-post="/api/htmx/toast" hx-target="#toasts" hx-swap="beforeend"` +
	` hx-vals='{"title":"Copied","description":"QR code copied as a data URI","variant":"success","dismissible":"on"}'` +
	` onclick="navigator.clipboard.writeText(document.querySelector('#` + ResultID + ` img').src)">Copy as data URI</button>`

var usageTips = []components.Tip{
	{Title: "URLs", Text: "Include http:// or https:// for web links"},
	{Title: "Contact Info", Text: "Use vCard format for contact details"},
	{Title: "WiFi", Text: "Use format", Example: "WIFI:T:WPA;S:network_name;P:password;;"},
	{Title: "Email", Text: "Use", Example: "mailto:email@example.com"},
	{Title: "Phone", Text: "Use", Example: "tel:+1234567890"},
}

const aboutText = "This QR code generator creates high-quality QR codes that can be scanned by any QR code reader. " +
	"The generated codes support various data types including text, URLs, contact information, and more."

// part is either raw markup or a child component.
type part struct {
	html string
	c    templ.Component
}

func raw(s string) part { return part{html: s} }
func child(c templ.Component) part { return part{c: c} }
func text(s string) part { return raw(templ.EscapeString(s)) }

func renderParts(ctx context.Context, w io.Writer, parts ...part) error {
	for _, p := range parts {
		if p.c != nil {
			if err := p.c.Render(ctx, w); err != nil {
				return err
			}
			continue
		}
		if _, err := io.WriteString(w, p.html); err != nil {
			return err
		}
	}
	return nil
}

// HomePage renders the whole generator page for v.
func HomePage(v studio.View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return renderParts(ctx, w,
			raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`),
			raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`),
			raw(`<title>QR Code Generator</title>`),
			raw(`<link rel="icon" type="image/png" href="/favicon.png">`),
			raw(`<script src="`+tailwindSrc+`"></script>`),
			raw(`<script src="`+htmxSrc+`"></script>`),
			raw(`</head><body class="bg-gray-50 text-gray-900"><main class="mx-auto max-w-2xl p-6">`),
			raw(`<h1 class="text-3xl font-bold">📱 QR Code Generator</h1>`),
			raw(`<p class="mt-1 mb-6 text-gray-600">Generate QR codes from any text, URL, or data!</p>`),
			child(form(v.Form)),
			raw(`<h2 class="mt-8 text-xl font-semibold">Generated QR Code</h2>`),
			raw(`<section id="`+ResultID+`" aria-live="polite">`),
			child(Result(v)),
			raw(`</section>`),
			raw(`<hr class="my-8">`),
			raw(`<h3 class="text-lg font-semibold mb-2">💡 Usage Tips</h3>`),
			child(components.Tips(usageTips)),
			raw(`<h3 class="mt-6 text-lg font-semibold mb-2">ℹ️ About</h3>`),
			raw(`<p class="text-sm text-gray-700">`), text(aboutText), raw(`</p>`),
			raw(`</main><div id="toasts"></div>`),
			raw(`<script>document.body.addEventListener("htmx:afterSwap",function(){`+
				`document.querySelectorAll("[data-toast][data-duration]").forEach(function(t){`+
				`setTimeout(function(){t.remove()},+t.dataset.duration);t.removeAttribute("data-duration")})})</script>`),
			raw(`</body></html>`),
		)
	})
}

func form(f studio.Form) templ.Component {
	options := make([]components.Option, 0, len(qr.Sizes))
	for _, s := range qr.Sizes {
		options = append(options, components.Option{Value: s.Label, Label: s.Label})
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return renderParts(ctx, w,
			raw(`<form id="qr-form" method="get" action="/" hx-post="/render" hx-target="#`+ResultID+`"`),
			raw(` hx-swap="innerHTML" hx-trigger="input delay:300ms, change">`),
			raw(`<h2 class="text-xl font-semibold mb-2">Input</h2>`),
			child(components.TextArea(components.TextAreaProps{
				ID:          "text",
				Name:        "text",
				Label:       "Enter text, URL, or any data to generate QR code:",
				Value:       f.Text,
				Placeholder: placeholder,
				Rows:        4,
			})),
			raw(`<h2 class="mt-6 text-xl font-semibold mb-2">Customization</h2>`),
			raw(`<div class="grid grid-cols-1 gap-4 sm:grid-cols-2"><div>`),
			child(components.Select(components.SelectProps{
				ID:       "size",
				Name:     "size",
				Label:    "QR Code Size:",
				Options:  options,
				Selected: f.Size.Label,
			})),
			raw(`</div><div>`),
			child(components.Slider(components.SliderProps{
				ID:      "border",
				Name:    "border",
				Label:   "Border Size:",
				Help:    "Border size around the QR code",
				Min:     studio.MinBorder,
				Max:     studio.MaxBorder,
				Value:   f.Border,
				ValueID: borderValueID,
			})),
			raw(`</div></div>`),
			child(components.SubmitButton("Generate QR Code")),
			raw(`</form>`),
		)
	})
}

// Result renders the outcome area of v.
func Result(v studio.View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, warn := range v.Warnings {
			if err := components.Alert(components.AlertWarning, warn, "").Render(ctx, w); err != nil {
				return err
			}
		}

		switch v.State {
		case studio.StateDisplaying:
			parts := []part{
				child(components.Image(components.ImageProps{
					Src: v.Image.Src, Alt: "QR code", Caption: v.Image.Caption, Width: v.Image.Width,
				})),
			}
			if v.Link != nil {
				parts = append(parts,
					raw(`<h3 class="text-lg font-semibold">Download</h3>`),
					child(components.DownloadLink(*v.Link)),
					raw(copyButton),
				)
			}
			parts = append(parts,
				child(components.Alert(components.AlertSuccess, "✅ "+v.Message, "")),
				child(components.Expander("Preview Input Data", v.Form.Text)),
			)
			return renderParts(ctx, w, parts...)

		case studio.StateFailed:
			return components.Alert(components.AlertError, "❌ "+v.Message, v.Hint).Render(ctx, w)

		default:
			parts := []part{child(components.Alert(components.AlertInfo, "👆 "+v.Message, ""))}
			if v.Image != nil {
				parts = append(parts,
					raw(`<h3 class="text-lg font-semibold">Example</h3>`),
					child(components.Image(components.ImageProps{
						Src: v.Image.Src, Alt: "Example QR code", Caption: v.Image.Caption, Width: v.Image.Width,
					})),
					raw(`<p class="text-center text-xs text-gray-500">This is what your QR code will look like</p>`),
				)
			}
			return renderParts(ctx, w, parts...)
		}
	})
}

// Fragment is the htmx response for a live update: the result area plus an
// out-of-band refresh of the border value label.
func Fragment(v studio.View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return renderParts(ctx, w,
			child(Result(v)),
			child(components.SliderValue(borderValueID, v.Form.Border)),
		)
	})
}
