package components

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/cristianadrielbraun/qrgen/internal/export"
)

// Image renders a captioned figure. Width 0 fills the column.
func Image(p ImageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		width := ""
		cls := Classes("mx-auto", p.Class)
		if p.Width > 0 {
			width = ` width="` + strconv.Itoa(p.Width) + `"`
		} else {
			cls = Classes(cls, "w-full")
		}
		if err := write(w,
			`<figure class="my-4 text-center">`,
			`<img src="`, esc(p.Src), `" alt="`, esc(p.Alt), `"`, width,
			` class="`, esc(cls), `" style="image-rendering: pixelated">`,
		); err != nil {
			return err
		}
		if p.Caption != "" {
			if err := write(w, `<figcaption class="mt-2 text-sm text-gray-600">`, esc(p.Caption), `</figcaption>`); err != nil {
				return err
			}
		}
		return write(w, `</figure>`)
	})
}

// DownloadLink renders an anchor that saves the embedded payload under the
// link's filename.
func DownloadLink(l export.Link) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return write(w,
			`<p class="my-2"><a class="underline font-medium text-blue-700" href="`, esc(l.Href),
			`" download="`, esc(l.Filename), `" type="`, esc(l.MIME), `">`,
			esc(l.Text), `</a></p>`,
		)
	})
}

// Expander renders a collapsible block showing preformatted text.
func Expander(title, body string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return write(w,
			`<details class="my-2 rounded-md border border-gray-200 p-2">`,
			`<summary class="cursor-pointer text-sm font-medium">`, esc(title), `</summary>`,
			`<pre class="mt-2 whitespace-pre-wrap break-all text-xs"><code>`, esc(body), `</code></pre>`,
			`</details>`,
		)
	})
}

// Tip is one usage hint. Example is shown as code when set.
type Tip struct {
	Title   string
	Text    string
	Example string
}

// Tips renders a bullet list of usage hints.
func Tips(tips []Tip) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w, `<ul class="list-disc pl-5 text-sm space-y-1">`); err != nil {
			return err
		}
		for _, t := range tips {
			if err := write(w, `<li><strong>`, esc(t.Title), `:</strong> `, esc(t.Text)); err != nil {
				return err
			}
			if t.Example != "" {
				if err := write(w, ` <code class="break-all">`, esc(t.Example), `</code>`); err != nil {
					return err
				}
			}
			if err := write(w, `</li>`); err != nil {
				return err
			}
		}
		return write(w, `</ul>`)
	})
}
