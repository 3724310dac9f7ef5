package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrgen/web/components/ui/toast"
)

type toastInput struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Variant     string `form:"variant"`
	Dismissible string `form:"dismissible"`
}

func toastVariant(s string) toast.Variant {
	switch s {
	case "error", "destructive":
		return toast.VariantError
	case "warning":
		return toast.VariantWarning
	case "info":
		return toast.VariantInfo
	default:
		return toast.VariantSuccess
	}
}

// GenericToast returns a toast fragment for htmx swaps, e.g. after the
// page copies a data URI to the clipboard.
func (h *Handler) GenericToast(c *gin.Context) {
	var in toastInput
	if err := c.ShouldBind(&in); err != nil {
		writeError(c, ErrValidation, "invalid toast form: "+err.Error())
		return
	}
	if in.Title == "" && in.Description == "" {
		writeError(c, ErrValidation, "title or description is required")
		return
	}

	h.html(c, toast.Toast(toast.Props{
		Title:         in.Title,
		Description:   in.Description,
		Variant:       toastVariant(in.Variant),
		Position:      toast.PositionBottomRight,
		Duration:      2000,
		Dismissible:   in.Dismissible == "on",
		ShowIndicator: false,
		Icon:          true,
	}))
}
