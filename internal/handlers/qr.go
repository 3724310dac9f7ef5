package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/cristianadrielbraun/qrgen/internal/export"
	"github.com/cristianadrielbraun/qrgen/internal/qr"
	"github.com/cristianadrielbraun/qrgen/internal/studio"
)

// qrQuery is the query string of the image API.
type qrQuery struct {
	Text     string `form:"text"`
	Size     string `form:"size" binding:"omitempty,qrsize"`
	Border   *int   `form:"border" binding:"omitempty,min=1,max=10"`
	Format   string `form:"format" binding:"omitempty,oneof=png jpg jpeg bmp svg PNG JPG JPEG BMP SVG"`
	Preview  int    `form:"preview" binding:"omitempty,min=16,max=4096"`
	Download bool   `form:"download"`
	Styled   bool   `form:"styled"`
}

// QRCodeHandler renders text as a QR image.
//
//	GET /api/qr?text=...&size=Medium&border=4&format=png&preview=256&download=1
//
// preview rescales raster output to the given side in pixels. styled
// renders PNG through the library's own writer.
func (h *Handler) QRCodeHandler(c *gin.Context) {
	var q qrQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, ErrValidation, queryErrorMessage(err))
		return
	}
	if strings.TrimSpace(q.Text) == "" {
		writeError(c, ErrValidation, "text parameter is required")
		return
	}

	form := studio.Input{Text: q.Text, Size: q.Size, Border: q.Border}.Form()
	format := export.ParseFormat(q.Format)
	req := qr.Request{Payload: form.Text, ModuleSize: form.Size.ModuleSize, Border: form.Border}
	log := h.log(c).WithFields(logrus.Fields{
		"size":          form.Size.Label,
		"border":        form.Border,
		"format":        string(format),
		"payload_bytes": len(req.Payload),
	})

	var (
		buf  bytes.Buffer
		info string
	)
	if q.Styled {
		format = export.FormatPNG
		if err := qr.WriteStyled(&buf, req); err != nil {
			h.encodeFailed(c, log, err)
			return
		}
		info = fmt.Sprintf("engine=%s;styled=true", qr.EngineYeqown)
	} else {
		bmp, err := h.encoder.EncodeRequest(req)
		if err != nil {
			h.encodeFailed(c, log, err)
			return
		}
		var img image.Image = bmp
		if q.Preview > 0 && format.Raster() {
			img = export.Scale(bmp, q.Preview)
		}
		if err := export.Write(&buf, bmp, img, format); err != nil {
			log.WithError(err).Error("qr image write failed")
			writeError(c, ErrInternal, "failed to write QR image")
			return
		}
		info = fmt.Sprintf("engine=%s;version=%d;modules=%d;side=%d",
			h.encoder.Engine(), bmp.Version(), bmp.Dimension(), img.Bounds().Dx())
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Header("X-QR-Info", info)
	if q.Download {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.Filename(form.Size.Label)))
	}
	log.WithField("bytes", buf.Len()).Debug("qr image served")
	c.Data(http.StatusOK, format.MIME(), buf.Bytes())
}

func (h *Handler) encodeFailed(c *gin.Context, log *logrus.Entry, err error) {
	if qr.IsEncodingError(err) {
		log.WithError(err).Info("qr encode rejected")
		writeError(c, ErrEncoding, err.Error())
		return
	}
	log.WithError(err).Error("qr encode failed")
	writeError(c, ErrInternal, "failed to generate QR code")
}

func queryErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid query: " + err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Field() {
		case "Size":
			labels := make([]string, 0, len(qr.Sizes))
			for _, s := range qr.Sizes {
				labels = append(labels, s.Label)
			}
			msgs = append(msgs, "size must be one of "+strings.Join(labels, ", "))
		case "Border":
			msgs = append(msgs, fmt.Sprintf("border must be between %d and %d", studio.MinBorder, studio.MaxBorder))
		case "Format":
			msgs = append(msgs, "format must be one of png, jpg, bmp, svg")
		case "Preview":
			msgs = append(msgs, "preview must be between 16 and 4096")
		default:
			msgs = append(msgs, "invalid "+strings.ToLower(fe.Field()))
		}
	}
	return strings.Join(msgs, "; ")
}
