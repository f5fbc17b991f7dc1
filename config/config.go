// Package config holds the settings of the tutor command line tool. A
// configuration is read from a YAML or TOML file, completed with defaults,
// overridden from TUTOR_* environment variables and validated.
package config

import "time"

type Config struct {
	Log   LogConfig   `yaml:"log" toml:"log"`
	Watch WatchConfig `yaml:"watch" toml:"watch"`
	LSP   LSPConfig   `yaml:"lsp" toml:"lsp"`
}

type LogConfig struct {
	// Verbosity is passed to commonlog: 0 logs notices and above, each step
	// up adds a level, negative values silence more.
	Verbosity int `yaml:"verbosity" toml:"verbosity"`

	// File receives log output. Empty means stderr.
	File string `yaml:"file" toml:"file"`
}

type WatchConfig struct {
	// Debounce is the quiet period after the last file event before a
	// lesson is checked again.
	Debounce time.Duration `yaml:"debounce" toml:"debounce"`

	// Extensions selects the files that are checked.
	Extensions []string `yaml:"extensions" toml:"extensions"`

	// IncludeHidden also watches dot files and dot directories.
	IncludeHidden bool `yaml:"include_hidden" toml:"include_hidden"`

	// MetricsAddress serves Prometheus metrics at /metrics when set.
	MetricsAddress string `yaml:"metrics_address" toml:"metrics_address"`
}

type LSPConfig struct {
	// ServerName is reported to the editor on initialize.
	ServerName string `yaml:"server_name" toml:"server_name"`

	// DiagnosticSource labels every published diagnostic.
	DiagnosticSource string `yaml:"diagnostic_source" toml:"diagnostic_source"`
}
