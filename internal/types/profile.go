// Package types provides type definitions for structured data used throughout the resume-insights system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// NameNotFound is the name reported when the resume text has no usable first line.
const NameNotFound = "Not found"

// Profile represents the structured facts extracted from free-form resume text.
// Every slice is non-nil; absence is represented by emptiness.
type Profile struct {
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone"`
	Skills         []string          `json:"skills"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Certifications []string          `json:"certifications"`
}

// ExperienceEntry represents a detected job entry
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// EducationEntry represents a detected degree line
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// NewProfile returns a Profile with every collection initialized to empty.
func NewProfile() Profile {
	return Profile{
		Skills:         []string{},
		Experience:     []ExperienceEntry{},
		Education:      []EducationEntry{},
		Certifications: []string{},
	}
}

// HasContact reports whether both email and phone were found.
func (p *Profile) HasContact() bool {
	return p.Email != "" && p.Phone != ""
}

// Normalize replaces nil collections with empty ones so the profile
// serializes with [] rather than null. Profiles decoded from caller JSON
// go through this before reaching the scorers.
func (p *Profile) Normalize() {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Experience == nil {
		p.Experience = []ExperienceEntry{}
	}
	if p.Education == nil {
		p.Education = []EducationEntry{}
	}
	if p.Certifications == nil {
		p.Certifications = []string{}
	}
}
