package ratelimit

import (
	"net/http"
	"strings"
)

// unlimited marks routes that are never throttled.
//
//nolint:gochecknoglobals // read-only value
var unlimited = EndpointConfig{}

// MatchEndpoint returns the configuration for path and method, preferring an
// exact path over a prefix. GET /health is always unlimited. Returns nil when
// nothing matches.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == http.MethodGet {
		u := unlimited
		return &u
	}

	var prefix *EndpointConfig
	for i := range configs {
		c := &configs[i]
		if c.Method != method {
			continue
		}
		if c.Path == path {
			return c
		}
		if prefix == nil && strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			prefix = c
		}
	}
	return prefix
}
