package studio

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/cristianadrielbraun/qrgen/internal/qr"
)

// Border slider bounds and default.
const (
	MinBorder     = 1
	MaxBorder     = 10
	DefaultBorder = 4
)

// Form is the widget state of one render cycle. It is built from the
// request and passed explicitly; nothing outlives the request.
type Form struct {
	Text   string
	Size   qr.Size
	Border int
}

// DefaultForm is the state of an untouched page.
func DefaultForm() Form {
	return Form{Size: qr.DefaultSize, Border: DefaultBorder}
}

// Empty reports whether the text area holds only whitespace.
func (f Form) Empty() bool {
	return strings.TrimSpace(f.Text) == ""
}

// Input is the raw form submission as bound by gin.
type Input struct {
	Text   string `form:"text" json:"text"`
	Size   string `form:"size" json:"size" binding:"omitempty,qrsize"`
	Border *int   `form:"border" json:"border" binding:"omitempty,min=1,max=10"`
}

// Form converts validated input, filling defaults for missing values.
func (in Input) Form() Form {
	f := DefaultForm()
	f.Text = in.Text
	if s, ok := qr.LookupSize(in.Size); ok {
		f.Size = s
	}
	if in.Border != nil && *in.Border >= MinBorder && *in.Border <= MaxBorder {
		f.Border = *in.Border
	}
	return f
}

// RegisterValidations adds the "qrsize" tag used by Input to v.
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("qrsize", func(fl validator.FieldLevel) bool {
		_, ok := qr.LookupSize(fl.Field().String())
		return ok
	})
}
