// Package insights generates the threshold-driven strengths, weaknesses, and
// recommendation lists reported alongside the rule-based scores.
package insights

import (
	"github.com/jonathan/resume-insights/internal/types"
	"github.com/jonathan/resume-insights/internal/vocabulary"
)

const (
	maxMissingSkills   = 6
	maxRecommendations = 6
)

const (
	strengthSkills         = "Strong technical skills - Multiple technologies listed"
	strengthExperience     = "Diverse work experience across multiple roles"
	strengthCertifications = "Professional certifications demonstrate commitment to growth"
	strengthContact        = "Complete contact information for easy reach"

	weaknessSkills         = "Limited technical skills listed - add more relevant technologies"
	weaknessCertifications = "No certifications listed - consider adding relevant credentials"
	weaknessExperience     = "Limited work experience shown - elaborate on projects and responsibilities"

	recommendCertification = "Consider obtaining relevant certifications for your target role"
	recommendSkills        = "Expand your skills section with more relevant technologies"
)

// baseRecommendations always lead the recommendation list
var baseRecommendations = []string{
	"Add quantifiable achievements with metrics and numbers",
	"Use action verbs to start bullet points (Developed, Implemented, Optimized)",
	"Tailor your resume to match the job description keywords",
	"Keep resume length to 1-2 pages maximum",
	"Include links to GitHub, portfolio, or LinkedIn",
}

// Generator produces insight lists against a set of vocabulary tables
type Generator struct {
	vocab *vocabulary.Tables
}

// New creates a Generator. A nil vocab uses the embedded default tables.
func New(vocab *vocabulary.Tables) *Generator {
	if vocab == nil {
		vocab = vocabulary.Default()
	}
	return &Generator{vocab: vocab}
}

// Strengths lists what the profile does well, in check order
func Strengths(profile *types.Profile) []string {
	strengths := make([]string, 0, 4)
	if len(profile.Skills) >= 8 {
		strengths = append(strengths, strengthSkills)
	}
	if len(profile.Experience) >= 3 {
		strengths = append(strengths, strengthExperience)
	}
	if len(profile.Certifications) > 0 {
		strengths = append(strengths, strengthCertifications)
	}
	if profile.HasContact() {
		strengths = append(strengths, strengthContact)
	}
	return strengths
}

// Weaknesses lists gaps in the profile, in check order
func Weaknesses(profile *types.Profile) []string {
	weaknesses := make([]string, 0, 3)
	if len(profile.Skills) < 5 {
		weaknesses = append(weaknesses, weaknessSkills)
	}
	if len(profile.Certifications) == 0 {
		weaknesses = append(weaknesses, weaknessCertifications)
	}
	if len(profile.Experience) < 2 {
		weaknesses = append(weaknesses, weaknessExperience)
	}
	return weaknesses
}

// Recommendations returns the generic tips followed by conditional ones,
// truncated so the generic tips take priority.
func Recommendations(profile *types.Profile) []string {
	recs := make([]string, 0, len(baseRecommendations)+2)
	recs = append(recs, baseRecommendations...)
	if len(profile.Certifications) == 0 {
		recs = append(recs, recommendCertification)
	}
	if len(profile.Skills) < 8 {
		recs = append(recs, recommendSkills)
	}
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

// MissingSkills returns the role's recommended skills that no profile skill
// contains, at most six. Unknown roles yield an empty list.
func (g *Generator) MissingSkills(profile *types.Profile, role string) []string {
	missing := make([]string, 0)
	for _, skill := range g.vocab.RecommendedSkills(role) {
		if vocabulary.AnyContainsFold(profile.Skills, skill) {
			continue
		}
		missing = append(missing, skill)
		if len(missing) == maxMissingSkills {
			break
		}
	}
	return missing
}

// Keywords returns the resume keywords present in text, in vocabulary order
func (g *Generator) Keywords(text string) []string {
	return vocabulary.FindIn(text, g.vocab.ResumeKeywords)
}

// Analyze assembles the full rule-based AnalysisResult for an extracted profile
func (g *Generator) Analyze(text string, profile *types.Profile, role string, scores types.ScoreSet) types.AnalysisResult {
	return types.AnalysisResult{
		Scores:          scores,
		Strengths:       Strengths(profile),
		Weaknesses:      Weaknesses(profile),
		MissingSkills:   g.MissingSkills(profile, role),
		Recommendations: Recommendations(profile),
		Keywords:        g.Keywords(text),
		AdvisoryPowered: false,
	}
}
