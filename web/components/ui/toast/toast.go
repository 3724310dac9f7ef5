// Package toast renders transient notifications swapped in by htmx.
package toast

import (
	"context"
	"io"
	"strconv"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
)

type Variant string

const (
	VariantDefault Variant = "default"
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantWarning Variant = "warning"
	VariantInfo    Variant = "info"
)

type Position string

const (
	PositionTopRight     Position = "top-right"
	PositionTopLeft      Position = "top-left"
	PositionBottomRight  Position = "bottom-right"
	PositionBottomLeft   Position = "bottom-left"
	PositionBottomCenter Position = "bottom-center"
)

// Props configures a Toast. Duration is in milliseconds; 0 keeps the
// toast until dismissed.
type Props struct {
	ID            string
	Class         string
	Title         string
	Description   string
	Variant       Variant
	Position      Position
	Duration      int
	Dismissible   bool
	ShowIndicator bool
	Icon          bool
}

var variantClasses = map[Variant]string{
	VariantDefault: "border-gray-200 bg-white text-gray-900",
	VariantSuccess: "border-green-300 bg-green-50 text-green-900",
	VariantError:   "border-red-300 bg-red-50 text-red-900",
	VariantWarning: "border-yellow-300 bg-yellow-50 text-yellow-900",
	VariantInfo:    "border-blue-300 bg-blue-50 text-blue-900",
}

var positionClasses = map[Position]string{
	PositionTopRight:     "top-4 right-4",
	PositionTopLeft:      "top-4 left-4",
	PositionBottomRight:  "bottom-4 right-4",
	PositionBottomLeft:   "bottom-4 left-4",
	PositionBottomCenter: "bottom-4 left-1/2 -translate-x-1/2",
}

var icons = map[Variant]string{
	VariantSuccess: "✓",
	VariantError:   "✕",
	VariantWarning: "!",
	VariantInfo:    "i",
}

// Toast renders p. Unknown variants and positions fall back to the
// defaults.
func Toast(p Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		variant := p.Variant
		if _, ok := variantClasses[variant]; !ok {
			variant = VariantDefault
		}
		position := p.Position
		if _, ok := positionClasses[position]; !ok {
			position = PositionBottomRight
		}
		cls := twmerge.Merge(
			"fixed z-50 max-w-sm rounded-md border p-4 shadow-lg",
			positionClasses[position],
			variantClasses[variant],
			p.Class,
		)

		var out []string
		add := func(s ...string) { out = append(out, s...) }
		add(`<div role="status" data-toast data-variant="`, string(variant), `"`)
		if p.ID != "" {
			add(` id="`, templ.EscapeString(p.ID), `"`)
		}
		if p.Duration > 0 {
			add(` data-duration="`, strconv.Itoa(p.Duration), `"`)
		}
		add(` class="`, templ.EscapeString(cls), `"><div class="flex items-start gap-3">`)
		if p.Icon {
			if icon, ok := icons[variant]; ok {
				add(`<span aria-hidden="true" class="font-bold">`, icon, `</span>`)
			}
		}
		add(`<div class="flex-1">`)
		if p.Title != "" {
			add(`<p class="font-semibold">`, templ.EscapeString(p.Title), `</p>`)
		}
		if p.Description != "" {
			add(`<p class="text-sm opacity-90">`, templ.EscapeString(p.Description), `</p>`)
		}
		add(`</div>`)
		if p.Dismissible {
			add(`<button type="button" aria-label="Close" class="opacity-60 hover:opacity-100" onclick="this.closest('[data-toast]').remove()">✕</button>`)
		}
		add(`</div>`)
		if p.ShowIndicator && p.Duration > 0 {
			add(`<div class="mt-2 h-1 bg-current opacity-30" style="animation: shrink `, strconv.Itoa(p.Duration), `ms linear forwards"></div>`)
		}
		add(`</div>`)

		for _, s := range out {
			if _, err := io.WriteString(w, s); err != nil {
				return err
			}
		}
		return nil
	})
}
