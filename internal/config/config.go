// Package config loads careerpulse configuration from an optional YAML
// file, a .env file, and environment variables, in that order of increasing
// precedence. The resulting struct is injected into the client at startup;
// no other package reads the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"careerpulse/internal/gemini"
)

// GeminiConfig configures the AI backend.
type GeminiConfig struct {
	APIKey          string `yaml:"api_key"`
	Model           string `yaml:"model"`
	FallbackModel   string `yaml:"fallback_model"`
	BaseURL         string `yaml:"base_url"`
	Timeout         string `yaml:"timeout"`
	MaxOutputTokens int    `yaml:"max_output_tokens"`
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Config is the root configuration.
type Config struct {
	Gemini  GeminiConfig  `yaml:"gemini"`
	Logging LoggingConfig `yaml:"logging"`
}

// Default returns the baseline configuration.
func Default() *Config {
	return &Config{
		Gemini: GeminiConfig{
			Model:         "gemini-1.5-flash",
			FallbackModel: "gemini-1.5-pro",
			BaseURL:       "https://generativelanguage.googleapis.com",
			Timeout:       "90s",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load builds the configuration. path may be empty, in which case only the
// .env file and environment are consulted.
func Load(path string) (*Config, error) {
	// A missing .env is fine; environment variables still apply.
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv layers environment overrides on top of file values.
func (c *Config) applyEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv("CAREERPULSE_MODEL"); v != "" {
		c.Gemini.Model = v
	}
	if v := os.Getenv("CAREERPULSE_FALLBACK_MODEL"); v != "" {
		c.Gemini.FallbackModel = v
	}
	if v := os.Getenv("CAREERPULSE_BASE_URL"); v != "" {
		c.Gemini.BaseURL = v
	}
	if v := os.Getenv("CAREERPULSE_TIMEOUT"); v != "" {
		c.Gemini.Timeout = v
	}
	if v := os.Getenv("CAREERPULSE_MAX_OUTPUT_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Gemini.MaxOutputTokens = n
		}
	}
	if v := os.Getenv("CAREERPULSE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// ClientConfig converts the loaded settings into a gemini.Config.
func (c *Config) ClientConfig() (gemini.Config, error) {
	out := gemini.Config{
		APIKey:          c.Gemini.APIKey,
		BaseURL:         c.Gemini.BaseURL,
		Model:           c.Gemini.Model,
		FallbackModel:   c.Gemini.FallbackModel,
		MaxOutputTokens: c.Gemini.MaxOutputTokens,
	}
	if c.Gemini.Timeout != "" {
		d, err := time.ParseDuration(c.Gemini.Timeout)
		if err != nil {
			return gemini.Config{}, fmt.Errorf("invalid timeout %q: %w", c.Gemini.Timeout, err)
		}
		out.Timeout = d
	}
	return out, nil
}
