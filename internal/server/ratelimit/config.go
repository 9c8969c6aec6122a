package ratelimit

import (
	"net/http"
	"strings"
	"time"
)

// EndpointConfig limits one route. Paths ending in "/" match by prefix.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int           // requests per Window
	Window time.Duration
	Burst  int // bucket capacity, Limit when 0
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	IdleTTL         time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// NewConfig builds a configuration with the scoring endpoint limits.
func NewConfig(enabled bool, defaultLimit int, defaultWindow time.Duration, whitelist, blacklist []string) *Config {
	if defaultLimit <= 0 {
		defaultLimit = 1000
	}
	if defaultWindow <= 0 {
		defaultWindow = time.Minute
	}
	return &Config{
		Enabled:         enabled,
		DefaultLimit:    defaultLimit,
		DefaultWindow:   defaultWindow,
		CleanupInterval: 5 * time.Minute,
		IdleTTL:         time.Hour,
		Whitelist:       toSet(whitelist),
		Blacklist:       toSet(blacklist),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns limits for the scoring routes, strictest for
// the ones that run the full pipeline or score many candidates.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		{Path: "/rank", Method: http.MethodPost, Limit: 10, Window: time.Minute, Burst: 2},
		{Path: "/analyze/sync", Method: http.MethodPost, Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/analyze", Method: http.MethodPost, Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/match", Method: http.MethodPost, Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/analyses/", Method: http.MethodGet, Limit: 300, Window: time.Minute, Burst: 50},
		{Path: "/resumes/", Method: http.MethodGet, Limit: 300, Window: time.Minute, Burst: 50},
		{Path: "/batches/", Method: http.MethodGet, Limit: 300, Window: time.Minute, Burst: 50},
	}
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			set[item] = true
		}
	}
	return set
}
