package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/prodrate/rational"
)

// Validator wraps go-playground/validator with the "rational" rule, which
// accepts anything rational.Parse accepts.
type Validator struct {
	validate *validator.Validate
}

// NewValidator returns a Validator with the custom rules registered.
func NewValidator() *Validator {
	v := validator.New()
	// Registration only fails for an empty tag or a nil func.
	_ = v.RegisterValidation("rational", isRational)

	return &Validator{validate: v}
}

func isRational(fl validator.FieldLevel) bool {
	_, err := rational.Parse(fl.Field().String())

	return err == nil
}

// Validate checks i against its validate tags.
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return formatValidationError(err)
	}

	return nil
}

func formatValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, fmt.Sprintf("field '%s' failed validation: %s (value: '%v')",
			e.Namespace(), e.Tag(), e.Value()))
	}

	return fmt.Errorf("validation failed:\n  %s", strings.Join(messages, "\n  "))
}

// ValidateConfig validates cfg.
func ValidateConfig(cfg *Config) error {
	return NewValidator().Validate(cfg)
}
