// Package types provides type definitions for structured data used throughout the resume-insights system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ScoreSet holds the three rule-based resume scores, each in [0,100]
type ScoreSet struct {
	ATSScore    int `json:"atsScore"`
	ResumeScore int `json:"resumeScore"`
	SkillMatch  int `json:"skillMatch"`
}

// AnalysisResult is the outcome of analyzing a resume for a target role.
// When AdvisoryPowered is true, ResumeScore/ATSScore and the four insight
// lists may come from the advisory service; SkillMatch never does.
type AnalysisResult struct {
	Scores          ScoreSet `json:"scores"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	MissingSkills   []string `json:"missingSkills"`
	Recommendations []string `json:"recommendations"`
	Keywords        []string `json:"keywords"`
	AdvisoryPowered bool     `json:"advisoryPowered"`
}

// AnalysisRequest carries the inputs of a single analysis call
type AnalysisRequest struct {
	Text            string `json:"text"`
	TargetRole      string `json:"target_role,omitempty"`
	ExperienceLevel string `json:"experience_level,omitempty"`
}
