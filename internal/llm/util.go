// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// ExtractJSONObject returns the span from the first '{' to the last '}' in text.
// It does not balance braces: prose containing braces around or between JSON
// fragments produces a span that will fail to parse, which callers treat as
// "no result". Returns false when no such span exists.
func ExtractJSONObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return "", false
	}
	return text[start : end+1], true
}
