// Package types provides type definitions for structured data used throughout the resume-insights system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// DefaultJobTitle labels a job match submitted without a title
const DefaultJobTitle = "Untitled Job"

// Resume sections accepted by the suggestions endpoints
const (
	SectionSummary    = "summary"
	SectionExperience = "experience"
	SectionSkills     = "skills"
	SectionOverall    = "overall"
)

var validate = validator.New()

// AnalyzeRequest represents the request to analyze resume text for a target role.
type AnalyzeRequest struct {
	ResumeText        string `json:"resumeText" validate:"required"`
	TargetRole        string `json:"targetRole,omitempty" validate:"omitempty,max=100"`
	ExperienceLevel   string `json:"experienceLevel,omitempty" validate:"omitempty,max=50"`
	IncludeCareerPath bool   `json:"includeCareerPath,omitempty"`
}

// MatchRequest represents the request to match resume text against a job.
// The job is given either inline or by posting URL.
type MatchRequest struct {
	ResumeText     string `json:"resumeText" validate:"required"`
	JobDescription string `json:"jobDescription,omitempty" validate:"required_without=JobURL"`
	JobURL         string `json:"jobUrl,omitempty" validate:"omitempty,url"`
	JobTitle       string `json:"jobTitle,omitempty"`
	Company        string `json:"company,omitempty"`
}

// CareerPathRequest represents the request to generate a career path.
type CareerPathRequest struct {
	ResumeText      string `json:"resumeText" validate:"required"`
	TargetRole      string `json:"targetRole,omitempty" validate:"omitempty,max=100"`
	ExperienceLevel string `json:"experienceLevel,omitempty" validate:"omitempty,max=50"`
}

// SuggestionsRequest represents the request for section improvement suggestions.
// An empty section means the whole resume.
type SuggestionsRequest struct {
	Content string `json:"content" validate:"required"`
	Section string `json:"section,omitempty" validate:"omitempty,oneof=summary experience skills overall"`
}

// SectionAnalysisRequest is SuggestionsRequest with the section mandatory.
type SectionAnalysisRequest struct {
	Content string `json:"content" validate:"required"`
	Section string `json:"section" validate:"required,oneof=summary experience skills overall"`
}

// JobMatch is a MatchResult labelled with the job it was computed against.
type JobMatch struct {
	JobTitle string `json:"jobTitle"`
	Company  string `json:"company"`
	JobURL   string `json:"jobUrl,omitempty"`
	MatchResult
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the CareerPathRequest using the validator.
func (r *CareerPathRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the SuggestionsRequest using the validator.
func (r *SuggestionsRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the SectionAnalysisRequest using the validator.
func (r *SectionAnalysisRequest) Validate() error {
	return validate.Struct(r)
}

// SectionOrDefault returns the requested section, or overall when none was given.
func (r *SuggestionsRequest) SectionOrDefault() string {
	if r.Section == "" {
		return SectionOverall
	}
	return r.Section
}
