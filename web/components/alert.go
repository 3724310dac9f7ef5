package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

var alertClasses = map[AlertVariant]string{
	AlertInfo:    "border-blue-300 bg-blue-50 text-blue-800",
	AlertSuccess: "border-green-300 bg-green-50 text-green-800",
	AlertWarning: "border-yellow-300 bg-yellow-50 text-yellow-800",
	AlertError:   "border-red-300 bg-red-50 text-red-800",
}

// Alert renders a status box. hint is an optional second line.
func Alert(variant AlertVariant, message, hint string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cls, ok := alertClasses[variant]
		if !ok {
			variant = AlertInfo
			cls = alertClasses[AlertInfo]
		}
		if err := write(w,
			`<div role="alert" data-variant="`, string(variant), `"`,
			` class="`, esc(Classes("rounded-md border p-3 my-2 text-sm", cls)), `">`,
			`<p>`, esc(message), `</p>`,
		); err != nil {
			return err
		}
		if hint != "" {
			if err := write(w, `<p class="mt-1 opacity-80">`, esc(hint), `</p>`); err != nil {
				return err
			}
		}
		return write(w, `</div>`)
	})
}
