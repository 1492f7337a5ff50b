package ratelimit

import (
	"strings"
)

// unlimited marks endpoints that are never limited.
var unlimited = map[string]bool{
	"GET /health":  true,
	"GET /metrics": true,
}

// MatchEndpoint matches a request path and method to an endpoint configuration.
// Returns the matching EndpointConfig or nil if no match is found.
// Path matching supports prefix matching (e.g., "/export/" matches "/export/pdf").
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if unlimited[method+" "+path] {
		return &EndpointConfig{Path: path, Method: method}
	}

	// Try exact match first
	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	// Try prefix match (for paths ending with "/")
	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") {
			if strings.HasPrefix(path, config.Path) {
				return config
			}
		}
	}

	return nil
}

// key identifies the bucket for a matched request. Prefix configurations
// share one bucket; the global default is keyed by the concrete path.
func (c *EndpointConfig) key(path, method string) string {
	if c.Path != "" && strings.HasSuffix(c.Path, "/") {
		return method + " " + c.Path
	}
	return method + " " + path
}
