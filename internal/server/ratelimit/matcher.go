package ratelimit

import (
	"net/http"
	"strings"
)

// unlimited lists "METHOD path" keys that are never counted.
var unlimited = map[string]bool{
	http.MethodGet + " /health":     true,
	http.MethodGet + " /api/health": true,
}

// MatchEndpoint returns the rule for a request. An exact path wins over a
// prefix rule (a Path ending in "/"). A nil result means the client's shared
// bucket applies; a rule with Limit 0 means the request is not limited.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if unlimited[method+" "+path] {
		return &EndpointConfig{Path: path, Method: method}
	}

	var prefix *EndpointConfig
	for i := range configs {
		rule := &configs[i]
		if rule.Method != method {
			continue
		}
		if rule.Path == path {
			return rule
		}
		if prefix == nil && strings.HasSuffix(rule.Path, "/") && strings.HasPrefix(path, rule.Path) {
			prefix = rule
		}
	}
	return prefix
}
