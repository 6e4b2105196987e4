// Package config defines service configuration and loading.
//
// Conventions:
// - New builds a Config with defaults; Load layers file and env on top.
// - All loading functions accept context.Context as the first parameter.
// - External errors are wrapped via this package's sentinel errors.
package config

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Environment labels recognized by the service.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Port is the HTTP listen port.
	Port int `koanf:"port"`

	// FrontendURL is the single origin allowed by the CORS policy.
	FrontendURL string `koanf:"frontend_url"`

	// Environment gates verbose error detail and the health label.
	Environment string `koanf:"environment"`

	// UploadsDir is served verbatim under /uploads/.
	UploadsDir string `koanf:"uploads_dir"`

	// MaxBodyBytes caps request body size for parsed bodies.
	MaxBodyBytes int64 `koanf:"max_body_bytes"`

	// RateLimitWindowMinutes is the fixed rate-limit window length.
	RateLimitWindowMinutes int `koanf:"rate_limit_window_minutes"`

	// RateLimitMax is the number of requests allowed per address per window.
	RateLimitMax int `koanf:"rate_limit_max"`

	// Version is reported by the API index endpoint.
	Version string `koanf:"version"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:               "info",
		Port:                   5000,
		FrontendURL:            "http://localhost:3000",
		Environment:            EnvDevelopment,
		UploadsDir:             "uploads",
		MaxBodyBytes:           1 << 20,
		RateLimitWindowMinutes: 15,
		RateLimitMax:           100,
		Version:                "1.0.0",
	}
}

// Addr returns the HTTP listen address, e.g. ":5000".
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, EnvDevelopment)
}

// RateLimitWindow returns the window length as a duration.
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowMinutes) * time.Minute
}
