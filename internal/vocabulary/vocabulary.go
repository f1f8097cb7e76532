// Package vocabulary provides the fixed reference tables used by extraction, scoring, and matching.
// Tables are parsed once from embedded YAML and shared read-only across all requests.
package vocabulary

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var defaultData []byte

var (
	defaultOnce   sync.Once
	defaultTables *Tables
	defaultErr    error
)

// Tables holds the skill lexicon, keyword lexicons, line-detection keywords,
// and role maps. A Tables value must not be modified after Load returns.
type Tables struct {
	Skills                []string            `yaml:"skills"`
	ResumeKeywords        []string            `yaml:"resume_keywords"`
	JobKeywords           []string            `yaml:"job_keywords"`
	JobTitles             []string            `yaml:"job_titles"`
	Degrees               []string            `yaml:"degrees"`
	Certifications        []string            `yaml:"certifications"`
	RoleRequiredSkills    map[string][]string `yaml:"role_required_skills"`
	RoleRecommendedSkills map[string][]string `yaml:"role_recommended_skills"`
}

// LoadError represents an error reading or parsing a vocabulary document
type LoadError struct {
	Source  string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load vocabulary %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load vocabulary %s: %s", e.Source, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Default returns the embedded tables, parsing them on first use.
// It panics if the embedded document is invalid, which is a build defect.
func Default() *Tables {
	defaultOnce.Do(func() {
		defaultTables, defaultErr = parse("(embedded)", defaultData)
	})
	if defaultErr != nil {
		panic(defaultErr.Error())
	}
	return defaultTables
}

// Load parses a vocabulary YAML document
func Load(data []byte) (*Tables, error) {
	return parse("(bytes)", data)
}

// LoadFile parses a vocabulary YAML file, used to override the embedded tables
func LoadFile(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Message: "failed to read file", Cause: err}
	}
	return parse(path, data)
}

func parse(source string, data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, &LoadError{Source: source, Message: "invalid YAML", Cause: err}
	}

	if len(t.Skills) == 0 {
		return nil, &LoadError{Source: source, Message: "skills list is empty"}
	}
	if len(t.JobTitles) == 0 {
		return nil, &LoadError{Source: source, Message: "job_titles list is empty"}
	}

	t.Skills = dedupe(t.Skills)
	t.ResumeKeywords = dedupe(t.ResumeKeywords)
	t.JobKeywords = dedupe(t.JobKeywords)
	if t.RoleRequiredSkills == nil {
		t.RoleRequiredSkills = map[string][]string{}
	}
	if t.RoleRecommendedSkills == nil {
		t.RoleRecommendedSkills = map[string][]string{}
	}

	return &t, nil
}

// RequiredSkills returns the skills a role is scored against, or nil for an unknown role
func (t *Tables) RequiredSkills(role string) []string {
	return slices.Clone(t.RoleRequiredSkills[role])
}

// RecommendedSkills returns the additional skills suggested for a role, or nil for an unknown role
func (t *Tables) RecommendedSkills(role string) []string {
	return slices.Clone(t.RoleRecommendedSkills[role])
}

// Roles returns every role identifier known to either role table, sorted
func (t *Tables) Roles() []string {
	seen := make(map[string]bool)
	for role := range t.RoleRequiredSkills {
		seen[role] = true
	}
	for role := range t.RoleRecommendedSkills {
		seen[role] = true
	}

	roles := make([]string, 0, len(seen))
	for role := range seen {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}

// dedupe removes exact duplicates while keeping first-seen order
func dedupe(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
