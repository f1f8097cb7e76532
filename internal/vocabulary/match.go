package vocabulary

import "strings"

// ContainsFold reports whether substr appears anywhere in s, ignoring case.
// This is the single matching primitive used for skills and keywords.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// CountFold counts non-overlapping occurrences of substr in s, ignoring case.
// An empty substr counts zero.
func CountFold(s, substr string) int {
	if substr == "" {
		return 0
	}
	return strings.Count(strings.ToLower(s), strings.ToLower(substr))
}

// AnyContainsFold reports whether any item contains substr, ignoring case
func AnyContainsFold(items []string, substr string) bool {
	for _, item := range items {
		if ContainsFold(item, substr) {
			return true
		}
	}
	return false
}

// FindIn returns the entries of lexicon that occur in text, in lexicon order
func FindIn(text string, lexicon []string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0)
	seen := make(map[string]bool)
	for _, entry := range lexicon {
		if seen[entry] {
			continue
		}
		if strings.Contains(lower, strings.ToLower(entry)) {
			found = append(found, entry)
			seen[entry] = true
		}
	}
	return found
}
