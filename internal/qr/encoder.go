// Package qr turns text payloads into black-on-white QR bitmaps. Symbol
// generation is delegated to a third-party Engine; this package only
// validates requests and lays the module matrix out as pixels.
package qr

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Request describes a single encode call.
type Request struct {
	Payload    string
	ModuleSize int
	Border     int
}

// Validate checks the request constraints. Errors are *EncodingError.
func (r Request) Validate() error {
	return r.validate(true)
}

// validate skips the capacity limits when checkCapacity is false.
func (r Request) validate(checkCapacity bool) error {
	var cause error
	switch {
	case strings.TrimSpace(r.Payload) == "":
		cause = ErrEmptyPayload
	case r.ModuleSize <= 0 || r.ModuleSize > 255:
		cause = ErrInvalidModuleSize
	case r.Border < 0:
		cause = ErrInvalidBorder
	case checkCapacity && !Fits(r.Payload):
		cause = ErrPayloadTooLarge
	default:
		return nil
	}
	return &EncodingError{Op: "validate request", Err: cause}
}

// Encoder renders QR bitmaps with a fixed engine.
type Encoder struct {
	engine Engine
	log    *logrus.Entry
}

// NewEncoder returns an Encoder backed by engine. A nil logger discards
// log output.
func NewEncoder(engine Engine, logger *logrus.Logger) *Encoder {
	if engine == nil {
		engine = YeqownEngine{}
	}
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &Encoder{
		engine: engine,
		log:    logger.WithField("component", "qr").WithField("engine", engine.Name()),
	}
}

// Engine returns the name of the engine in use.
func (e *Encoder) Engine() string { return e.engine.Name() }

// Encode renders payload with moduleSize-pixel modules and a quiet zone of
// border modules. The same arguments always produce the same bitmap.
func (e *Encoder) Encode(payload string, moduleSize, border int) (*Bitmap, error) {
	return e.EncodeRequest(Request{Payload: payload, ModuleSize: moduleSize, Border: border})
}

// EncodeRequest is Encode taking a Request.
func (e *Encoder) EncodeRequest(req Request) (*Bitmap, error) {
	if err := req.validate(!segments(e.engine)); err != nil {
		e.log.WithError(err).WithField("payload_bytes", len(req.Payload)).Debug("qr request rejected")
		return nil, err
	}

	start := time.Now()
	modules, err := e.engine.Matrix(req.Payload)
	if err != nil {
		e.log.WithError(err).WithField("payload_bytes", len(req.Payload)).Warn("qr encode failed")
		if !Fits(req.Payload) {
			err = fmt.Errorf("%w: %v", ErrPayloadTooLarge, err)
		}
		return nil, &EncodingError{Op: "encode payload", Engine: e.engine.Name(), Err: err}
	}

	bmp := rasterize(modules, req.ModuleSize, req.Border)
	e.log.WithFields(logrus.Fields{
		"payload_bytes": len(req.Payload),
		"dimension":     bmp.Dimension(),
		"module_size":   req.ModuleSize,
		"border":        req.Border,
		"side_px":       bmp.Side(),
		"duration_ms":   time.Since(start).Milliseconds(),
	}).Debug("qr encoded")
	return bmp, nil
}

var defaultEncoder = NewEncoder(YeqownEngine{}, nil)

// Encode renders payload with the default engine.
func Encode(payload string, moduleSize, border int) (*Bitmap, error) {
	return defaultEncoder.Encode(payload, moduleSize, border)
}
