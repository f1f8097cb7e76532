// Package types provides type definitions for structured data used throughout the resume-insights system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// AdvisoryAnalysis is the structured object expected back from a resume-analysis advisory call
type AdvisoryAnalysis struct {
	Strengths       []string       `json:"strengths"`
	Weaknesses      []string       `json:"weaknesses"`
	MissingSkills   []string       `json:"missingSkills"`
	Recommendations []string       `json:"recommendations"`
	ATSScore        *AdvisoryScore `json:"atsScore,omitempty"`
	ResumeScore     *AdvisoryScore `json:"resumeScore,omitempty"`
}

// AdvisoryScore is a score with a short justification
type AdvisoryScore struct {
	Score     Score  `json:"score"`
	Reasoning string `json:"reasoning,omitempty"`
}

// Score is an integer score that decodes from a JSON number or a numeric string.
// Anything else decodes to zero, which callers treat as "not provided".
type Score int

// UnmarshalJSON implements json.Unmarshaler
func (s *Score) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*s = 0
			return nil
		}
		raw = strings.TrimSuffix(strings.TrimSpace(str), "%")
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*s = 0
		return nil
	}
	*s = Score(math.Round(f))
	return nil
}

// Value returns the score if present, or 0
func (a *AdvisoryScore) Value() int {
	if a == nil {
		return 0
	}
	return int(a.Score)
}

// CareerPath is a personalized development roadmap toward a target role
type CareerPath struct {
	Timeline       string          `json:"timeline"`
	Phases         []CareerPhase   `json:"phases"`
	PrioritySkills []PrioritySkill `json:"prioritySkills"`
	ProjectIdeas   []ProjectIdea   `json:"projectIdeas"`
}

// CareerPhase is one stage of a career path
type CareerPhase struct {
	Phase       string   `json:"phase"`
	Duration    string   `json:"duration"`
	Skills      []string `json:"skills"`
	Description string   `json:"description"`
}

// PrioritySkill is a skill to learn with its relative priority
type PrioritySkill struct {
	Skill         string `json:"skill"`
	Priority      string `json:"priority"`
	EstimatedTime string `json:"estimatedTime"`
	Reason        string `json:"reason"`
}

// ProjectIdea is a suggested portfolio project
type ProjectIdea struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Duration    string   `json:"duration"`
}

// SectionSuggestions holds rewrite suggestions for one resume section
type SectionSuggestions struct {
	Suggestions []Suggestion `json:"suggestions"`
	Examples    []string     `json:"examples"`
}

// Suggestion is a single before/after improvement
type Suggestion struct {
	Type      string `json:"type"`
	Original  string `json:"original,omitempty"`
	Improved  string `json:"improved"`
	Reasoning string `json:"reasoning,omitempty"`
}

// MatchInsights is the advisory enrichment attached to a MatchResult.
// Its shape is owned by the advisory service and passed through untouched.
type MatchInsights map[string]any

// AdvisoryStatus describes whether the advisory capability is usable
type AdvisoryStatus struct {
	Enabled    bool   `json:"enabled"`
	Configured bool   `json:"configured"`
	Provider   string `json:"provider"`
	Model      string `json:"model"`
	Status     string `json:"status"`
}
