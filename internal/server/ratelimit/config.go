package ratelimit

import (
	"strings"
	"time"
)

// Defaults used when a Config leaves a field unset
const (
	DefaultLimit           = 100
	DefaultWindow          = 10 * time.Minute
	DefaultCleanupInterval = 5 * time.Minute
	// DefaultIdleTimeout is how long an unused client limiter is kept
	DefaultIdleTimeout = time.Hour
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	IdleTimeout     time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// NewConfig builds a Config with a per-client limit shared by all routes and
// the stricter advisory endpoint limits on top.
func NewConfig(enabled bool, limit int, window time.Duration) *Config {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Config{
		Enabled:         enabled,
		DefaultLimit:    limit,
		DefaultWindow:   window,
		CleanupInterval: DefaultCleanupInterval,
		IdleTimeout:     DefaultIdleTimeout,
		Whitelist:       make(map[string]bool),
		Blacklist:       make(map[string]bool),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Advisory calls go out to a paid model
		{Path: "/api/ai/career-path", Method: "POST", Limit: 20, Window: 10 * time.Minute, Burst: 5},
		{Path: "/api/ai/suggestions", Method: "POST", Limit: 20, Window: 10 * time.Minute, Burst: 5},
		{Path: "/api/ai/analyze-section", Method: "POST", Limit: 20, Window: 10 * time.Minute, Burst: 5},
	}
}

// ParseIPList parses a comma-separated list of IP addresses into a map.
func ParseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	if list == "" {
		return result
	}

	for _, ip := range strings.Split(list, ",") {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}

	return result
}
