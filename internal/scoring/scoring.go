// Package scoring computes the rule-based resume scores: ATS parseability,
// overall resume completeness, and skill match against a target role.
package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/resume-insights/internal/types"
	"github.com/jonathan/resume-insights/internal/vocabulary"
)

// Base scores and bonuses
const (
	atsBase           = 60
	atsContactBonus   = 5
	atsSkillPerItem   = 2
	atsSkillCap       = 20
	atsExperience     = 10
	atsEducation      = 5
	atsCleanLayout    = 5
	resumeBase        = 50
	defaultSkillMatch = 75
)

// layoutArtifacts mark text converted from tables or multi-column layouts.
// The second entry is a UTF-8 arrow decoded as Windows-1252.
var layoutArtifacts = []string{"|", "â†’"}

// Scorer computes rule-based scores against a set of vocabulary tables
type Scorer struct {
	vocab *vocabulary.Tables
}

// New creates a Scorer. A nil vocab uses the embedded default tables.
func New(vocab *vocabulary.Tables) *Scorer {
	if vocab == nil {
		vocab = vocabulary.Default()
	}
	return &Scorer{vocab: vocab}
}

// Score computes all three scores for a profile and its source text
func (s *Scorer) Score(text string, profile *types.Profile, role string) types.ScoreSet {
	return types.ScoreSet{
		ATSScore:    ATSScore(text, profile),
		ResumeScore: ResumeScore(profile),
		SkillMatch:  s.SkillMatch(profile, role),
	}
}

// ATSScore estimates how well an applicant tracking system would parse the resume.
// Blank text earns no clean-layout bonus since there is no layout to judge.
func ATSScore(text string, profile *types.Profile) int {
	score := atsBase

	if profile.Email != "" {
		score += atsContactBonus
	}
	if profile.Phone != "" {
		score += atsContactBonus
	}
	score += min(len(profile.Skills)*atsSkillPerItem, atsSkillCap)
	if len(profile.Experience) > 0 {
		score += atsExperience
	}
	if len(profile.Education) > 0 {
		score += atsEducation
	}
	if strings.TrimSpace(text) != "" && !containsAny(text, layoutArtifacts) {
		score += atsCleanLayout
	}

	return Clamp(score)
}

// ResumeScore rates the completeness of the extracted profile
func ResumeScore(profile *types.Profile) int {
	score := resumeBase

	switch skills := len(profile.Skills); {
	case skills >= 8:
		score += 15
	case skills >= 5:
		score += 10
	}

	switch roles := len(profile.Experience); {
	case roles >= 3:
		score += 15
	case roles >= 1:
		score += 10
	}

	if len(profile.Education) > 0 {
		score += 10
	}
	if len(profile.Certifications) > 0 {
		score += 10
	}
	if profile.HasContact() {
		score += 10
	}

	return Clamp(score)
}

// SkillMatch returns the percentage of the role's required skills covered by
// the profile. A required skill is covered when any profile skill contains it.
// Unknown roles score 75.
func (s *Scorer) SkillMatch(profile *types.Profile, role string) int {
	required := s.vocab.RequiredSkills(role)
	if len(required) == 0 {
		return defaultSkillMatch
	}

	matched := 0
	for _, skill := range required {
		if vocabulary.AnyContainsFold(profile.Skills, skill) {
			matched++
		}
	}

	return Percent(matched, len(required))
}

// Percent returns round(part/whole*100) clamped to [0,100]. A zero whole is treated as one.
func Percent(part, whole int) int {
	whole = max(whole, 1)
	return Clamp(int(math.Round(float64(part) / float64(whole) * 100)))
}

// Clamp bounds a score to [0,100]
func Clamp(score int) int {
	return max(0, min(score, 100))
}

func containsAny(text string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}
