package components

import (
	"io"
	"sort"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
)

// Classes merges tailwind class lists; later classes win on conflicts.
func Classes(classes ...string) string {
	return twmerge.Merge(classes...)
}

func esc(s string) string { return templ.EscapeString(s) }

func attrs(a Attrs) string {
	if len(a) == 0 {
		return ""
	}
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(" ")
		b.WriteString(esc(k))
		b.WriteString(`="`)
		b.WriteString(esc(a[k]))
		b.WriteString(`"`)
	}
	return b.String()
}

func write(w io.Writer, parts ...string) error {
	for _, p := range parts {
		if _, err := io.WriteString(w, p); err != nil {
			return err
		}
	}
	return nil
}
