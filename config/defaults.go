package config

import "time"

const (
	DefaultVerbosity        = 0
	DefaultDebounce         = 100 * time.Millisecond
	DefaultServerName       = "tutor"
	DefaultDiagnosticSource = "tutor"
)

// DefaultExtensions are the file extensions of lesson documents.
var DefaultExtensions = []string{".lesson"}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills zero-valued fields. Log verbosity is left alone since
// zero is already the default.
func ApplyDefaults(cfg *Config) {
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = DefaultDebounce
	}
	if len(cfg.Watch.Extensions) == 0 {
		cfg.Watch.Extensions = append([]string(nil), DefaultExtensions...)
	}
	if cfg.LSP.ServerName == "" {
		cfg.LSP.ServerName = DefaultServerName
	}
	if cfg.LSP.DiagnosticSource == "" {
		cfg.LSP.DiagnosticSource = DefaultDiagnosticSource
	}
}
