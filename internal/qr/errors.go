package qr

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyPayload      = errors.New("payload is empty")
	ErrInvalidModuleSize = errors.New("module size must be between 1 and 255")
	ErrInvalidBorder     = errors.New("border width must not be negative")
	ErrPayloadTooLarge   = errors.New("payload exceeds the capacity of the largest QR version")
)

// EncodingError is returned for every failure of the encoder adapter,
// whether the request was rejected up front or the engine itself failed.
type EncodingError struct {
	Op     string
	Engine string
	Err    error
}

func (e *EncodingError) Error() string {
	if e.Engine == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s (%s): %v", e.Op, e.Engine, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// IsEncodingError reports whether err carries an *EncodingError.
func IsEncodingError(err error) bool {
	var encErr *EncodingError
	return errors.As(err, &encErr)
}
