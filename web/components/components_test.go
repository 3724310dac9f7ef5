package components

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianadrielbraun/qrgen/internal/export"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, c.Render(context.Background(), &b))
	return b.String()
}

func TestClassesResolvesConflicts(t *testing.T) {
	assert.Equal(t, "p-4", Classes("p-2", "p-4"))
	assert.ElementsMatch(t, []string{"w-full", "p-2"}, strings.Fields(Classes("w-full", "p-2")))
	assert.ElementsMatch(t, []string{"w-full", "p-4"}, strings.Fields(Classes("w-full p-2", "p-4")))
}

func TestTextAreaEscapesValue(t *testing.T) {
	out := render(t, TextArea(TextAreaProps{
		ID: "text", Name: "text", Label: "Text", Value: `<script>"x"</script>`,
		Attrs: Attrs{"hx-post": "/render"},
	}))
	assert.Contains(t, out, `name="text"`)
	assert.Contains(t, out, `rows="4"`)
	assert.Contains(t, out, `hx-post="/render"`)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestSelectMarksSelected(t *testing.T) {
	out := render(t, Select(SelectProps{
		ID: "size", Name: "size", Label: "QR Code Size",
		Options:  []Option{{Value: "Small", Label: "Small"}, {Value: "Medium", Label: "Medium"}},
		Selected: "Medium",
	}))
	assert.Contains(t, out, `<option value="Medium" selected>Medium</option>`)
	assert.Contains(t, out, `<option value="Small">Small</option>`)
}

func TestSlider(t *testing.T) {
	out := render(t, Slider(SliderProps{
		ID: "border", Name: "border", Label: "Border Size", ValueID: "border-value",
		Min: 1, Max: 10, Value: 4, Help: "Border around the QR code",
	}))
	assert.Contains(t, out, `type="range"`)
	assert.Contains(t, out, `min="1" max="10" value="4"`)
	assert.Contains(t, out, `<span id="border-value" class="font-mono">4</span>`)

	oob := render(t, SliderValue("border-value", 7))
	assert.Contains(t, oob, `hx-swap-oob="true"`)
	assert.Contains(t, oob, ">7</span>")
}

func TestAlert(t *testing.T) {
	out := render(t, Alert(AlertError, "Error generating QR code: boom", "Please check your input and try again."))
	assert.Contains(t, out, `data-variant="error"`)
	assert.Contains(t, out, "Error generating QR code: boom")
	assert.Contains(t, out, "Please check your input and try again.")

	out = render(t, Alert("bogus", "hello", ""))
	assert.Contains(t, out, `data-variant="info"`)
	assert.Equal(t, 1, strings.Count(out, "<p"))
}

func TestImageWidth(t *testing.T) {
	out := render(t, Image(ImageProps{Src: "data:image/png;base64,AA==", Alt: "QR", Caption: "Example QR Code", Width: 300}))
	assert.Contains(t, out, `width="300"`)
	assert.Contains(t, out, "Example QR Code")

	out = render(t, Image(ImageProps{Src: "data:image/png;base64,AA==", Alt: "QR"}))
	assert.NotContains(t, out, "width=")
	assert.Contains(t, out, "w-full")
	assert.NotContains(t, out, "figcaption")
}

func TestDownloadLink(t *testing.T) {
	out := render(t, DownloadLink(export.Link{
		Href: "data:image/png;base64,AA==", Filename: "qrcode_medium.png", MIME: export.MIMEPNG, Text: export.LinkText,
	}))
	assert.Contains(t, out, `href="data:image/png;base64,AA=="`)
	assert.Contains(t, out, `download="qrcode_medium.png"`)
	assert.Contains(t, out, ">Download QR Code</a>")
}

func TestExpanderAndTips(t *testing.T) {
	out := render(t, Expander("View Text Content", "a<b"))
	assert.Contains(t, out, "<summary")
	assert.Contains(t, out, "a&lt;b")

	out = render(t, Tips([]Tip{
		{Title: "Phone", Text: "Use", Example: "tel:+1234567890"},
		{Title: "Contact Info", Text: "Use vCard format for contact details"},
	}))
	assert.Contains(t, out, "<strong>Phone:</strong> Use <code")
	assert.Contains(t, out, "tel:+1234567890")
	assert.Equal(t, 1, strings.Count(out, "<code"))
}
