// Package config provides configuration management for the fleet monitor.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError represents a single validation error with user-friendly message.
type ValidationError struct {
	Field   string      // Field path (e.g., "smtp.from")
	Tag     string      // Validation tag that failed (e.g., "required", "email")
	Value   interface{} // Actual value that failed validation
	Message string      // User-friendly error message
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  - %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// validate is the package-level validator instance.
var validate = validator.New()

// Validate validates the configuration and returns user-friendly error messages.
func Validate(cfg *Config) error {
	var validationErrors ValidationErrors

	// Run struct validation
	if err := validate.Struct(cfg); err != nil {
		if fieldErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrors {
				validationErrors = append(validationErrors, &ValidationError{
					Field:   formatFieldName(fe.Namespace()),
					Tag:     fe.Tag(),
					Value:   fe.Value(),
					Message: translateError(fe),
				})
			}
		}
	}

	// Run custom business logic validations
	if errs := validateSMTP(cfg); len(errs) > 0 {
		validationErrors = append(validationErrors, errs...)
	}

	if errs := validateSSHAuth(cfg); len(errs) > 0 {
		validationErrors = append(validationErrors, errs...)
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

// validateSMTP requires a complete relay definition once a server is set.
func validateSMTP(cfg *Config) ValidationErrors {
	var errors ValidationErrors

	if !cfg.SMTP.Configured() {
		return errors
	}

	if cfg.SMTP.From == "" {
		errors = append(errors, &ValidationError{
			Field:   "smtp.from",
			Tag:     "required_with_server",
			Message: "sender address is required when smtp.server is set",
		})
	}
	if cfg.SMTP.To == "" {
		errors = append(errors, &ValidationError{
			Field:   "smtp.to",
			Tag:     "required_with_server",
			Message: "recipient address is required when smtp.server is set",
		})
	}
	if cfg.SMTP.Subject == "" {
		errors = append(errors, &ValidationError{
			Field:   "smtp.subject",
			Tag:     "required_with_server",
			Message: "subject is required when smtp.server is set",
		})
	}

	return errors
}

// validateSSHAuth requires a usable credential once a user is set.
func validateSSHAuth(cfg *Config) ValidationErrors {
	var errors ValidationErrors

	if cfg.SSH.User == "" {
		return errors
	}

	if cfg.SSH.Password == "" && cfg.SSH.KeyFile == "" {
		errors = append(errors, &ValidationError{
			Field:   "ssh",
			Tag:     "auth_method",
			Message: "either ssh.password or ssh.key_file is required when ssh.user is set",
		})
	}

	return errors
}

// formatFieldName converts the validator field namespace to a user-friendly format.
// Example: "Config.SMTP.From" -> "smtp.from"
func formatFieldName(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:] // Remove "Config"
	}

	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}

	return strings.Join(parts, ".")
}

// translateError converts a validator.FieldError to a user-friendly message.
func translateError(fe validator.FieldError) string {
	field := formatFieldName(fe.Namespace())

	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return fmt.Sprintf("invalid email address: %v", fe.Value())
	case "url":
		return fmt.Sprintf("invalid URL format: %v", fe.Value())
	case "gte":
		return fmt.Sprintf("value must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("value must be less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("value must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("validation failed on '%s' tag for field '%s'", fe.Tag(), field)
	}
}
