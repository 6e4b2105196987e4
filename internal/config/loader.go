package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. YAML file if SHOWCASE_CONFIG is set
//  3. env vars with prefix SHOWCASE_ (SHOWCASE_PORT -> port, ...)
//  4. legacy env names PORT, FRONTEND_URL, NODE_ENV
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv("SHOWCASE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// SHOWCASE_FRONTEND_URL -> frontend_url (flat keys, underscores kept to
	// match koanf tags on the struct).
	envProvider := env.Provider("SHOWCASE_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "showcase_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := applyLegacyEnv(&cfg); err != nil {
		return nil, err
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyLegacyEnv honors the unprefixed names the deployment contract uses.
// They take precedence over everything else.
func applyLegacyEnv(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: PORT: %w", ErrInvalidConfig, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("FRONTEND_URL"); v != "" {
		cfg.FrontendURL = v
	}
	if v := os.Getenv("NODE_ENV"); v != "" {
		cfg.Environment = v
	}
	return nil
}

func validate(cfg *Config) error {
	switch {
	case cfg.Port < 1 || cfg.Port > 65535:
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, cfg.Port)
	case strings.TrimSpace(cfg.FrontendURL) == "":
		return fmt.Errorf("%w: frontend_url must not be empty", ErrInvalidConfig)
	case cfg.RateLimitMax < 1:
		return fmt.Errorf("%w: rate_limit_max must be positive", ErrInvalidConfig)
	case cfg.RateLimitWindowMinutes < 1:
		return fmt.Errorf("%w: rate_limit_window_minutes must be positive", ErrInvalidConfig)
	case cfg.MaxBodyBytes < 1:
		return fmt.Errorf("%w: max_body_bytes must be positive", ErrInvalidConfig)
	}
	return nil
}
