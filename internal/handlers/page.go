package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/cristianadrielbraun/qrgen/internal/qr"
	"github.com/cristianadrielbraun/qrgen/internal/studio"
	"github.com/cristianadrielbraun/qrgen/web/pages"
)

// Home renders the full page from query string widget values.
func (h *Handler) Home(c *gin.Context) {
	h.page(c, false)
}

// Render serves live updates. htmx requests get the result fragment, plain
// form posts get the full page.
func (h *Handler) Render(c *gin.Context) {
	h.page(c, c.GetHeader("HX-Request") == "true")
}

func (h *Handler) page(c *gin.Context, fragment bool) {
	form, warnings, err := h.bindForm(c)
	if err != nil {
		writeError(c, ErrTooLarge, "request body too large")
		return
	}

	view := h.studio.Render(c.Request.Context(), form)
	view.Warnings = append(view.Warnings, warnings...)

	h.log(c).WithFields(logrus.Fields{
		"state":    view.State.String(),
		"fragment": fragment,
		"size":     form.Size.Label,
		"border":   form.Border,
	}).Debug("page rendered")

	var comp templ.Component
	if fragment {
		comp = pages.Fragment(view)
	} else {
		comp = pages.HomePage(view)
	}
	h.html(c, comp)
}

// bindForm binds the widget values. Invalid values never fail the request:
// they fall back to their defaults and produce a warning for the page. Only
// an oversized body is an error.
func (h *Handler) bindForm(c *gin.Context) (studio.Form, []string, error) {
	var in studio.Input
	err := c.ShouldBind(&in)
	if err == nil {
		return in.Form(), nil, nil
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return studio.Form{}, nil, err
	}

	var warnings []string
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			warnings = append(warnings, fieldWarning(fe.Field()))
		}
		return in.Form(), warnings, nil
	}

	// mapping failed, e.g. a non-numeric border
	h.log(c).WithError(err).Debug("form binding failed")
	in = studio.Input{Text: c.Request.FormValue("text"), Size: c.Request.FormValue("size")}
	if _, ok := qr.LookupSize(in.Size); !ok && in.Size != "" {
		warnings = append(warnings, fieldWarning("Size"))
	}
	warnings = append(warnings, fieldWarning("Border"))
	return in.Form(), warnings, nil
}

func fieldWarning(field string) string {
	switch field {
	case "Size":
		return fmt.Sprintf("Unknown QR code size; using %s.", qr.DefaultSize.Label)
	case "Border":
		return fmt.Sprintf("Border size must be a number between %d and %d; using %d.",
			studio.MinBorder, studio.MaxBorder, studio.DefaultBorder)
	default:
		return fmt.Sprintf("Invalid value for %s was ignored.", field)
	}
}

// html renders comp into a buffer first so a failed render can still
// produce a clean error response.
func (h *Handler) html(c *gin.Context, comp templ.Component) {
	var buf bytes.Buffer
	if err := comp.Render(c.Request.Context(), &buf); err != nil {
		h.log(c).WithError(err).Error("render failed")
		writeError(c, ErrInternal, "internal error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
