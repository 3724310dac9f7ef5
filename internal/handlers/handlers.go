package handlers

import (
	"encoding/xml"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cristianadrielbraun/qrgen/internal/logging"
	"github.com/cristianadrielbraun/qrgen/internal/qr"
	"github.com/cristianadrielbraun/qrgen/internal/studio"
)

// Encoder is the QR encoder used by the image API.
type Encoder interface {
	Engine() string
	EncodeRequest(req qr.Request) (*qr.Bitmap, error)
}

// Handler holds the dependencies of the HTTP handlers. It carries no
// per-request state.
type Handler struct {
	studio  *studio.Studio
	encoder Encoder
	logger  *logrus.Logger
	version string
}

// Options configures New.
type Options struct {
	Studio  *studio.Studio
	Encoder Encoder
	Logger  *logrus.Logger
	Version string
}

// New returns a Handler. Missing dependencies fall back to the default
// yeqown encoder and a discarding logger.
func New(opts Options) *Handler {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Encoder == nil {
		opts.Encoder = qr.NewEncoder(qr.YeqownEngine{}, opts.Logger)
	}
	if opts.Studio == nil {
		enc, ok := opts.Encoder.(studio.Encoder)
		if !ok {
			enc = qr.NewEncoder(qr.YeqownEngine{}, opts.Logger)
		}
		opts.Studio = studio.New(enc, opts.Logger)
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	return &Handler{
		studio:  opts.Studio,
		encoder: opts.Encoder,
		logger:  opts.Logger,
		version: opts.Version,
	}
}

func (h *Handler) log(c *gin.Context) *logrus.Entry {
	return logging.FromContext(c.Request.Context(), h.logger).WithField("component", "handlers")
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// SitemapXML serves a sitemap listing the generator page.
func (h *Handler) SitemapXML(c *gin.Context) {
	scheme := "https"
	if xf := c.GetHeader("X-Forwarded-Proto"); xf != "" {
		scheme = xf
	} else if c.Request.TLS == nil {
		scheme = "http"
	}
	base := scheme + "://" + c.Request.Host

	body, err := xml.MarshalIndent(sitemap{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []sitemapURL{{Loc: base + "/", ChangeFreq: "weekly", Priority: "1.0"}},
	}, "", "  ")
	if err != nil {
		h.log(c).WithError(err).Error("sitemap marshal failed")
		writeError(c, ErrInternal, "internal error")
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), append(body, '\n')...))
}

// Sizes serves the size table in display order.
func (h *Handler) Sizes(c *gin.Context) {
	type size struct {
		Label      string `json:"label"`
		Slug       string `json:"slug"`
		ModuleSize int    `json:"module_size"`
		Default    bool   `json:"default"`
	}
	out := make([]size, 0, len(qr.Sizes))
	for _, s := range qr.Sizes {
		out = append(out, size{Label: s.Label, Slug: s.Slug(), ModuleSize: s.ModuleSize, Default: s == qr.DefaultSize})
	}
	c.JSON(http.StatusOK, gin.H{
		"sizes": out,
		"border": gin.H{
			"min":     studio.MinBorder,
			"max":     studio.MaxBorder,
			"default": studio.DefaultBorder,
		},
	})
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"engine":  h.encoder.Engine(),
		"version": h.version,
	})
}
