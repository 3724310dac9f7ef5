package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/cristianadrielbraun/qrgen/internal/studio"
)

// RegisterBindings adds the custom form validations to gin's validator.
func RegisterBindings() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("register bindings: unexpected validator engine %T", binding.Validator.Engine())
	}
	return studio.RegisterValidations(v)
}
