package domain

import (
	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. Struct tags on the Create
// payload types define the accepted field shapes.
var validate = validator.New() //nolint:gochecknoglobals // Shared validator instance

// Validate checks a payload struct against its validation tags.
func Validate(s any) error {
	return validate.Struct(s)
}
