package qr

import "strings"

// Size pairs a user-facing size label with its module size in pixels.
type Size struct {
	Label      string
	ModuleSize int
}

// Slug is the form value used for the size, e.g. "extra-large".
func (s Size) Slug() string {
	return strings.ReplaceAll(strings.ToLower(s.Label), " ", "-")
}

// Sizes is the fixed, ordered size table offered by the selector.
var Sizes = []Size{
	{Label: "Small", ModuleSize: 5},
	{Label: "Medium", ModuleSize: 10},
	{Label: "Large", ModuleSize: 15},
	{Label: "Extra Large", ModuleSize: 20},
}

// DefaultSize is the size preselected in the form.
var DefaultSize = Sizes[1]

// LookupSize finds a size by label or slug, ignoring case, spaces,
// dashes and underscores ("Extra Large", "extra-large" and "extralarge"
// all match).
func LookupSize(name string) (Size, bool) {
	key := compactLabel(name)
	if key == "" {
		return Size{}, false
	}
	for _, s := range Sizes {
		if compactLabel(s.Label) == key {
			return s, true
		}
	}
	return Size{}, false
}

func compactLabel(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '\t':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
