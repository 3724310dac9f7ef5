package components

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// TextArea renders a labelled multi-line text input.
func TextArea(p TextAreaProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		rows := p.Rows
		if rows <= 0 {
			rows = 4
		}
		return write(w,
			`<label for="`, esc(p.ID), `" class="block text-sm font-medium mb-1">`, esc(p.Label), `</label>`,
			`<textarea id="`, esc(p.ID), `" name="`, esc(p.Name), `" rows="`, strconv.Itoa(rows), `"`,
			` placeholder="`, esc(p.Placeholder), `"`,
			` class="`, esc(Classes("w-full rounded-md border border-gray-300 p-2 font-mono text-sm", p.Class)), `"`,
			attrs(p.Attrs), `>`,
			esc(p.Value),
			`</textarea>`,
		)
	})
}

// Select renders a labelled drop-down.
func Select(p SelectProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w,
			`<label for="`, esc(p.ID), `" class="block text-sm font-medium mb-1">`, esc(p.Label), `</label>`,
			`<select id="`, esc(p.ID), `" name="`, esc(p.Name), `"`,
			` class="`, esc(Classes("w-full rounded-md border border-gray-300 p-2", p.Class)), `"`,
			attrs(p.Attrs), `>`,
		); err != nil {
			return err
		}
		for _, o := range p.Options {
			selected := ""
			if o.Value == p.Selected {
				selected = " selected"
			}
			if err := write(w, `<option value="`, esc(o.Value), `"`, selected, `>`, esc(o.Label), `</option>`); err != nil {
				return err
			}
		}
		return write(w, `</select>`)
	})
}

// Slider renders a labelled range input with its current value.
func Slider(p SliderProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return write(w,
			`<label for="`, esc(p.ID), `" class="block text-sm font-medium mb-1">`, esc(p.Label),
			` <span id="`, esc(p.ValueID), `" class="font-mono">`, strconv.Itoa(p.Value), `</span></label>`,
			`<input type="range" id="`, esc(p.ID), `" name="`, esc(p.Name), `"`,
			` min="`, strconv.Itoa(p.Min), `" max="`, strconv.Itoa(p.Max), `" value="`, strconv.Itoa(p.Value), `"`,
			` title="`, esc(p.Help), `"`,
			` class="`, esc(Classes("w-full", p.Class)), `"`,
			attrs(p.Attrs), `>`,
			`<p class="text-xs text-gray-500">`, esc(p.Help), `</p>`,
		)
	})
}

// SliderValue renders the slider's value element for an htmx out-of-band
// swap, keeping the label in sync after a partial update.
func SliderValue(id string, value int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return write(w, `<span id="`, esc(id), `" class="font-mono" hx-swap-oob="true">`, strconv.Itoa(value), `</span>`)
	})
}

// SubmitButton renders the fallback submit button shown without JavaScript.
func SubmitButton(label string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return write(w,
			`<noscript><button type="submit" class="mt-4 rounded-md bg-black px-4 py-2 text-white">`,
			esc(label),
			`</button></noscript>`,
		)
	})
}
