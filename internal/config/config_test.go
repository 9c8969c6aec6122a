package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Address())
	assert.Equal(t, "http://backend:4000", cfg.CallbackBaseURL)
	assert.Equal(t, 10*time.Second, cfg.CallbackTimeout)
	assert.Equal(t, GrammarNone, cfg.Grammar.Provider)
	assert.Equal(t, "en-US", cfg.Grammar.Language)
	assert.Equal(t, 50, cfg.Grammar.MaxIssues)
	assert.Equal(t, "/app/uploads", cfg.Storage.LocalDir)
	assert.Equal(t, 4, cfg.Rank.Workers)
	assert.Empty(t, cfg.Skills.VocabularyFile)
	assert.Equal(t, 24, cfg.Auth.ExpirationHours)
	assert.False(t, cfg.AuthEnabled())
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 1000, cfg.RateLimit.DefaultLimit)
	assert.Equal(t, time.Minute, cfg.RateLimit.DefaultWindow)
}

func TestLoad_RateLimitEnv(t *testing.T) {
	t.Setenv("RESUME_SCORER_RATE_LIMIT_ENABLED", "false")
	t.Setenv("RESUME_SCORER_RATE_LIMIT_WHITELIST", "10.0.0.1,10.0.0.2")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.RateLimit.Whitelist)
}

func TestLoad_YAMLFile(t *testing.T) {
	content := `
port: 9090
callback_timeout: 3s
grammar:
  provider: LanguageTool
  languagetool_url: http://lt:8010
rank:
  workers: 8
skills:
  vocabulary_file: /etc/scorer/skills.json
log:
  json: true
`
	path := filepath.Join(t.TempDir(), "scorer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.CallbackTimeout)
	assert.Equal(t, GrammarLanguageTool, cfg.Grammar.Provider)
	assert.Equal(t, "http://lt:8010", cfg.Grammar.LanguageToolURL)
	assert.Equal(t, 8, cfg.Rank.Workers)
	assert.Equal(t, "/etc/scorer/skills.json", cfg.Skills.VocabularyFile)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, "en-US", cfg.Grammar.Language)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RESUME_SCORER_PORT", "7000")
	t.Setenv("RESUME_SCORER_STORAGE_BASE_URL", "https://docs.example.com")
	t.Setenv("RESUME_SCORER_AUTH_JWT_SECRET", "s3cret")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, "https://docs.example.com", cfg.Storage.BaseURL)
	assert.True(t, cfg.AuthEnabled())

	jwtCfg, err := cfg.JWT()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", jwtCfg.Secret)
	assert.Equal(t, 24, jwtCfg.ExpirationHours)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load("/nonexistent/path/scorer.yaml")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{Port: 8080, Rank: RankConfig{Workers: 4}}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"negative port", func(c *Config) { c.Port = -1 }, "port"},
		{"negative timeout", func(c *Config) { c.CallbackTimeout = -time.Second }, "callback_timeout"},
		{"negative workers", func(c *Config) { c.Rank.Workers = -2 }, "rank.workers"},
		{"unknown provider", func(c *Config) { c.Grammar.Provider = "aspell" }, "unknown grammar provider"},
		{"languagetool without url", func(c *Config) { c.Grammar.Provider = GrammarLanguageTool }, "languagetool_url"},
		{"gemini without key", func(c *Config) { c.Grammar.Provider = GrammarGemini }, "gemini.api_key"},
		{"bad expiration", func(c *Config) {
			c.Auth.JWTSecret = "x"
			c.Auth.ExpirationHours = -1
		}, "expiration_hours"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestJWT_RequiresSecret(t *testing.T) {
	cfg := Config{}
	_, err := cfg.JWT()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret")
}
