package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrgen/internal/assets"
)

// Favicon serves the embedded icon as PNG.
func (h *Handler) Favicon(c *gin.Context) {
	data, err := assets.FaviconPNG()
	if err != nil {
		h.log(c).WithError(err).Error("favicon rasterization failed")
		writeError(c, ErrInternal, "internal error")
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/png", data)
}

// FaviconSVG serves the embedded icon source.
func (h *Handler) FaviconSVG(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/svg+xml", assets.IconSVG())
}
