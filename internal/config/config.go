// Package config loads process settings from the environment, optionally
// seeded from a .env file. Per-run conversion options are flags, not
// environment settings; see internal/cli.
package config

import "time"

// Config holds settings shared by the CLI and the server.
type Config struct {
	Logging LoggingConfig
	Server  ServerConfig
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"CSV2FASTA_LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"CSV2FASTA_LOG_FORMAT" default:"text"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Addr is the listen address (default: :8080)
	Addr string `env:"CSV2FASTA_ADDR" default:":8080"`

	// MaxBodyBytes caps the size of an uploaded table (default: 32 MiB)
	MaxBodyBytes int64 `env:"CSV2FASTA_MAX_BODY_BYTES" default:"33554432"`

	// ReadTimeout is the maximum duration for reading a request (default: 15s)
	ReadTimeout time.Duration `env:"CSV2FASTA_READ_TIMEOUT" default:"15s"`

	// ShutdownTimeout bounds graceful shutdown (default: 10s)
	ShutdownTimeout time.Duration `env:"CSV2FASTA_SHUTDOWN_TIMEOUT" default:"10s"`
}
