// Package prompts holds the advisory prompt templates, embedded at compile time.
// Each user prompt under key K is sent with the system role stored under "K-system";
// "section-*" keys hold the per-section task text spliced into the suggestions prompt.
package prompts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed advisory.json
var advisoryJSON []byte

// Keys of the four advisory prompt kinds
const (
	KeyAnalyzeResume = "analyze-resume"
	KeyCareerPath    = "career-path"
	KeyJobMatch      = "job-match"
	KeySuggestions   = "suggestions"
)

const systemSuffix = "-system"

var load = sync.OnceValues(func() (map[string]string, error) {
	var set map[string]string
	if err := json.Unmarshal(advisoryJSON, &set); err != nil {
		return nil, fmt.Errorf("failed to parse advisory prompts: %w", err)
	}
	return set, nil
})

// Template is a user prompt together with the system role it is sent under
type Template struct {
	System string
	User   string
}

// Render fills the user prompt placeholders. The system role is returned unchanged.
func (t Template) Render(data map[string]string) Template {
	return Template{System: t.System, User: Format(t.User, data)}
}

// Get returns the raw text stored under key
func Get(key string) (string, error) {
	set, err := load()
	if err != nil {
		return "", err
	}
	text, ok := set[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found", key)
	}
	return text, nil
}

// GetTemplate returns the user prompt under key and its system role.
// A missing system role is not an error; the template is sent without one.
func GetTemplate(key string) (Template, error) {
	user, err := Get(key)
	if err != nil {
		return Template{}, err
	}
	system, _ := Get(key + systemSuffix)
	return Template{System: system, User: user}, nil
}

// Keys lists every stored key, sorted
func Keys() []string {
	set, err := load()
	if err != nil {
		return nil
	}
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Format replaces {{.Key}} placeholders with values from data in a single
// pass; values that themselves contain placeholders are left as-is.
func Format(template string, data map[string]string) string {
	if len(data) == 0 {
		return template
	}
	pairs := make([]string, 0, len(data)*2)
	for key, value := range data {
		pairs = append(pairs, "{{."+key+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
