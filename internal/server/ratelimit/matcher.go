package ratelimit

import (
	"strings"
)

// MatchEndpoint returns the first rule matching the request path and method,
// or nil when no rule applies. The health endpoint is never limited.
//
// Rule paths may contain "*" as a single-segment wildcard
// (e.g. "/sessions/*/assist/") and a trailing "/" matches by prefix.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		rule := &configs[i]
		if rule.Method == method && matchPath(path, rule.Path) {
			return rule
		}
	}
	return nil
}

func matchPath(path, pattern string) bool {
	if !strings.Contains(pattern, "*") {
		if strings.HasSuffix(pattern, "/") {
			return strings.HasPrefix(path, pattern)
		}
		return path == pattern
	}

	prefix := strings.HasSuffix(pattern, "/")
	patSegs := splitSegments(pattern)
	pathSegs := splitSegments(path)

	if prefix {
		if len(pathSegs) < len(patSegs) {
			return false
		}
	} else if len(pathSegs) != len(patSegs) {
		return false
	}

	for i, seg := range patSegs {
		if seg != "*" && seg != pathSegs[i] {
			return false
		}
	}
	return true
}

func splitSegments(p string) []string {
	return strings.Split(strings.Trim(p, "/"), "/")
}
