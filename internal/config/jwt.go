package config

import "fmt"

// JWTConfig holds configuration for service token generation and validation.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// JWT returns the token configuration derived from the auth section.
func (c *Config) JWT() (*JWTConfig, error) {
	cfg := &JWTConfig{
		Secret:          c.Auth.JWTSecret,
		ExpirationHours: c.Auth.ExpirationHours,
	}
	if cfg.ExpirationHours == 0 {
		cfg.ExpirationHours = 24
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration.
func (c *JWTConfig) normalize() error {
	if c.Secret == "" {
		return fmt.Errorf("auth.jwt_secret cannot be empty")
	}
	if c.ExpirationHours < 1 {
		return fmt.Errorf("auth.expiration_hours must be at least 1 hour, got: %d", c.ExpirationHours)
	}
	return nil
}
