// Package types provides type definitions for structured data used throughout the resume-insights system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MatchScores holds the job-match sub-scores and their weighted overall, each in [0,100]
type MatchScores struct {
	Overall    int `json:"overall"`
	Skills     int `json:"skills"`
	Experience int `json:"experience"`
	Keywords   int `json:"keywords"`
}

// KeywordCount pairs a job keyword with its occurrence count in the resume text
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// MatchResult is the gap analysis of a resume against a job description.
// MatchedSkills holds profile skills; MissingSkills holds job skills. The two
// are computed from different source sets and do not partition anything.
type MatchResult struct {
	MatchScores      MatchScores    `json:"matchScores"`
	MatchedSkills    []string       `json:"matchedSkills"`
	MissingSkills    []string       `json:"missingSkills"`
	MatchedKeywords  []KeywordCount `json:"matchedKeywords"`
	MissingKeywords  []string       `json:"missingKeywords"`
	Recommendations  []string       `json:"recommendations"`
	AdvisoryInsights MatchInsights  `json:"advisoryInsights,omitempty"`
	AdvisoryPowered  bool           `json:"advisoryPowered"`
}
