// Package config loads service configuration from an optional file, the
// environment and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. RESUME_SCORER_PORT.
const EnvPrefix = "RESUME_SCORER"

// Grammar provider names.
const (
	GrammarNone         = "none"
	GrammarLanguageTool = "languagetool"
	GrammarGemini       = "gemini"
)

// Config is the full service configuration.
type Config struct {
	Port            int           `mapstructure:"port"`
	DatabaseURL     string        `mapstructure:"database_url"`
	CallbackBaseURL string        `mapstructure:"callback_base_url"`
	CallbackTimeout time.Duration `mapstructure:"callback_timeout"`

	Grammar   GrammarConfig   `mapstructure:"grammar"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Skills    SkillsConfig    `mapstructure:"skills"`
	Rank      RankConfig      `mapstructure:"rank"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
}

// GrammarConfig selects the grammar-check provider.
type GrammarConfig struct {
	Provider        string `mapstructure:"provider"`
	LanguageToolURL string `mapstructure:"languagetool_url"`
	Language        string `mapstructure:"language"`
	MaxIssues       int    `mapstructure:"max_issues"`
}

// GeminiConfig holds Gemini credentials.
type GeminiConfig struct {
	APIKey    string `mapstructure:"api_key"`
	ModelTier string `mapstructure:"model_tier"`
}

// StorageConfig locates uploaded documents referenced by key.
type StorageConfig struct {
	LocalDir string `mapstructure:"local_dir"`
	BaseURL  string `mapstructure:"base_url"`
}

// AuthConfig enables bearer-token auth when JWTSecret is set.
type AuthConfig struct {
	JWTSecret       string `mapstructure:"jwt_secret"`
	ExpirationHours int    `mapstructure:"expiration_hours"`
}

// SkillsConfig replaces the embedded skills vocabulary with a JSON file.
type SkillsConfig struct {
	VocabularyFile string `mapstructure:"vocabulary_file"`
}

// RankConfig tunes batch ranking.
type RankConfig struct {
	Workers int `mapstructure:"workers"`
}

// RateLimitConfig throttles API clients by IP address.
type RateLimitConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	DefaultLimit  int           `mapstructure:"default_limit"`
	DefaultWindow time.Duration `mapstructure:"default_window"`
	Whitelist     []string      `mapstructure:"whitelist"`
	Blacklist     []string      `mapstructure:"blacklist"`
}

// LogConfig controls the logger.
type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

//nolint:gochecknoglobals // read-only table
var defaults = map[string]any{
	"port":                      8080,
	"database_url":              "",
	"callback_base_url":         "http://backend:4000",
	"callback_timeout":          "10s",
	"grammar.provider":          GrammarNone,
	"grammar.languagetool_url":  "",
	"grammar.language":          "en-US",
	"grammar.max_issues":        50,
	"gemini.api_key":            "",
	"gemini.model_tier":         "lite",
	"storage.local_dir":         "/app/uploads",
	"storage.base_url":          "",
	"auth.jwt_secret":           "",
	"auth.expiration_hours":     24,
	"skills.vocabulary_file":    "",
	"rank.workers":              4,
	"rate_limit.enabled":        true,
	"rate_limit.default_limit":  1000,
	"rate_limit.default_window": "1m",
	"rate_limit.whitelist":      []string{},
	"rate_limit.blacklist":      []string{},
	"log.json":                  false,
	"log.debug":                 false,
}

// NewViper returns a viper instance with defaults and environment overrides
// registered but no config file read.
func NewViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file at path (YAML or JSON), applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	v := NewViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}
	return FromViper(v)
}

// FromViper decodes and validates configuration held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Grammar.Provider = strings.ToLower(strings.TrimSpace(cfg.Grammar.Provider))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	var errs []error
	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("config error: 'port' out of range: %d", c.Port))
	}
	if c.CallbackTimeout < 0 {
		errs = append(errs, errors.New("config error: 'callback_timeout' must be non-negative"))
	}
	if c.Rank.Workers < 0 {
		errs = append(errs, errors.New("config error: 'rank.workers' must be non-negative"))
	}
	if c.RateLimit.DefaultLimit < 0 || c.RateLimit.DefaultWindow < 0 {
		errs = append(errs, errors.New("config error: 'rate_limit' values must be non-negative"))
	}
	if c.Grammar.MaxIssues < 0 {
		errs = append(errs, errors.New("config error: 'grammar.max_issues' must be non-negative"))
	}

	switch c.Grammar.Provider {
	case "", GrammarNone:
	case GrammarLanguageTool:
		if c.Grammar.LanguageToolURL == "" {
			errs = append(errs, errors.New("config error: 'grammar.languagetool_url' is required for the languagetool provider"))
		}
	case GrammarGemini:
		if c.Gemini.APIKey == "" {
			errs = append(errs, errors.New("config error: 'gemini.api_key' is required for the gemini provider"))
		}
	default:
		errs = append(errs, fmt.Errorf("config error: unknown grammar provider %q", c.Grammar.Provider))
	}

	if c.Auth.JWTSecret != "" {
		if _, err := c.JWT(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Address returns the listen address for the configured port.
func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// AuthEnabled reports whether service tokens are required.
func (c *Config) AuthEnabled() bool {
	return c.Auth.JWTSecret != ""
}
