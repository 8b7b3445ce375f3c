package schema

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a structured stage output against its declared
// constraints. The model-calling layer runs this on every decoded output
// before it enters the pipeline state.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("invalid structured output: %w", err)
	}
	return nil
}
