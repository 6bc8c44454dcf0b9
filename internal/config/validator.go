package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jahasielva/folio/internal/theme"
	folioerrors "github.com/jahasielva/folio/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	envNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme_pref", func(fl validator.FieldLevel) bool {
			_, ok := theme.ParsePreference(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("env_name", func(fl validator.FieldLevel) bool {
			return envNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema validation on the configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return folioerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// convertValidationError normalizes validator errors into folio validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return folioerrors.NewValidationError(field, msg, err)
	}

	return folioerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns Config.Theme.StorageKey into theme.storagekey.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
