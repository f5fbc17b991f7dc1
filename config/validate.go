package config

import (
	"fmt"
	"net"
	"strings"
)

// FieldError is a validation failure of one configuration field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError collects every FieldError found by Validate.
type ValidationError struct {
	Errors []FieldError
}

func (e ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d errors:", len(e.Errors))
	for _, err := range e.Errors {
		sb.WriteString("\n  - ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

func Validate(cfg *Config) error {
	var errs []FieldError

	if cfg.Log.Verbosity < -4 {
		errs = append(errs, FieldError{"log.verbosity", fmt.Sprintf("must be at least -4, got %d", cfg.Log.Verbosity)})
	}

	if cfg.Watch.Debounce < 0 {
		errs = append(errs, FieldError{"watch.debounce", "must not be negative"})
	}
	for _, ext := range cfg.Watch.Extensions {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, FieldError{"watch.extensions", fmt.Sprintf("%q must start with a dot", ext)})
		}
	}
	if addr := cfg.Watch.MetricsAddress; addr != "" {
		if _, _, err := net.SplitHostPort(addr); err != nil {
			errs = append(errs, FieldError{"watch.metrics_address", err.Error()})
		}
	}

	if cfg.LSP.ServerName == "" {
		errs = append(errs, FieldError{"lsp.server_name", "must not be empty"})
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}
