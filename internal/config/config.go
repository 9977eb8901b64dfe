package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"product-compare/internal/i18n"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Config is the on-disk configuration shape (YAML). Environment variables override it.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Sessions SessionsConfig `yaml:"sessions"`
	UI       UIConfig       `yaml:"ui"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Port           string        `yaml:"port" validate:"required,numeric"`
	Env            string        `yaml:"env" validate:"omitempty,oneof=development production test"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	ReadTimeout    time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout   time.Duration `yaml:"write_timeout" validate:"gt=0"`
}

type SessionsConfig struct {
	// TTL of an idle session; 0 keeps sessions until restart.
	TTL             time.Duration `yaml:"ttl" validate:"gte=0"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" validate:"gte=0"`
}

type UIConfig struct {
	DefaultLanguage string `yaml:"default_language" validate:"oneof=th en"`
	// RevealDelay is how long the best-product highlight waits after a product is added.
	RevealDelay time.Duration `yaml:"reveal_delay" validate:"gte=0"`
}

type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         "8080",
			Env:          "development",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Sessions: SessionsConfig{
			TTL:             2 * time.Hour,
			CleanupInterval: 5 * time.Minute,
		},
		UI: UIConfig{
			DefaultLanguage: string(i18n.Default),
			RevealDelay:     300 * time.Millisecond,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the YAML file at path (optional), applies environment overrides
// (optionally loaded from envFile) and validates the result.
func Load(path, envFile string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}
	if err := c.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked merges the file at path over Default, without env overrides or validation.
func LoadUnchecked(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

func loadEnvFile(envFile string) error {
	if envFile == "" {
		// A missing .env is fine when the environment is set directly.
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed loading env file %s: %w", envFile, err)
	}
	return nil
}

// ApplyEnv overlays the supported environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("API_PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("API_ENV"); v != "" {
		c.Server.Env = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		c.Server.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("DEFAULT_LANGUAGE"); v != "" {
		c.UI.DefaultLanguage = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"SESSION_TTL", &c.Sessions.TTL},
		{"SESSION_CLEANUP_INTERVAL", &c.Sessions.CleanupInterval},
		{"REVEAL_DELAY", &c.UI.RevealDelay},
	}
	for _, d := range durations {
		v := os.Getenv(d.key)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
		*d.dst = parsed
	}
	return nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config invalid: %w", err)
	}
	return nil
}

// Language returns the configured default UI language.
func (c *Config) Language() i18n.Language {
	l, err := i18n.Parse(c.UI.DefaultLanguage)
	if err != nil {
		return i18n.Default
	}
	return l
}

func (c *Config) Production() bool {
	return c.Server.Env == "production"
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
