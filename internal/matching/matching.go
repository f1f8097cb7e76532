// Package matching compares an extracted resume profile against a job
// description and produces a weighted gap analysis.
package matching

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-insights/internal/scoring"
	"github.com/jonathan/resume-insights/internal/types"
	"github.com/jonathan/resume-insights/internal/vocabulary"
)

// Fixed weights of the overall match score
const (
	skillsWeight     = 0.4
	experienceWeight = 0.35
	keywordsWeight   = 0.25
)

const (
	maxRecommendations = 5
	maxNamedGaps       = 3
	passingScore       = 70
)

const (
	recommendBelowThreshold = "Your match score is below 70% - consider adding missing skills and keywords"
	recommendFocusSkills    = "Focus on learning the key technical skills mentioned in the job description"
	recommendTailorKeywords = "Tailor your resume by adding relevant keywords from the job description"
	recommendSummary        = "Customize your professional summary to align with the job requirements"
)

// yearsPattern finds the first "N years" / "N+ years" requirement
var yearsPattern = regexp.MustCompile(`(?i)(\d+)\+?\s*years?`)

// Matcher matches profiles against job descriptions
type Matcher struct {
	vocab *vocabulary.Tables
}

// New creates a Matcher. A nil vocab uses the embedded default tables.
func New(vocab *vocabulary.Tables) *Matcher {
	if vocab == nil {
		vocab = vocabulary.Default()
	}
	return &Matcher{vocab: vocab}
}

// Match scores a profile (and the resume text it came from) against a job description.
//
// MatchedSkills are profile skills containing some job skill, while MissingSkills
// are job skills that no profile skill contains. They are computed from different
// source lists and are not complements of each other.
func (m *Matcher) Match(profile *types.Profile, resumeText, jobDescription string) types.MatchResult {
	jobSkills := vocabulary.FindIn(jobDescription, m.vocab.Skills)
	jobKeywords := vocabulary.FindIn(jobDescription, m.vocab.JobKeywords)

	result := types.MatchResult{
		MatchedSkills:   make([]string, 0),
		MissingSkills:   make([]string, 0),
		MatchedKeywords: make([]types.KeywordCount, 0),
		MissingKeywords: make([]string, 0),
	}

	for _, skill := range profile.Skills {
		if containsAnyOf(skill, jobSkills) {
			result.MatchedSkills = append(result.MatchedSkills, skill)
		}
	}
	for _, jobSkill := range jobSkills {
		if !vocabulary.AnyContainsFold(profile.Skills, jobSkill) {
			result.MissingSkills = append(result.MissingSkills, jobSkill)
		}
	}

	for _, keyword := range jobKeywords {
		count := vocabulary.CountFold(resumeText, keyword)
		if count > 0 {
			result.MatchedKeywords = append(result.MatchedKeywords, types.KeywordCount{Keyword: keyword, Count: count})
		} else {
			result.MissingKeywords = append(result.MissingKeywords, keyword)
		}
	}

	result.MatchScores.Skills = scoring.Percent(len(result.MatchedSkills), len(jobSkills))
	result.MatchScores.Keywords = scoring.Percent(len(result.MatchedKeywords), len(jobKeywords))
	result.MatchScores.Experience = ExperienceScore(len(profile.Experience), jobDescription)
	result.MatchScores.Overall = OverallScore(result.MatchScores.Skills, result.MatchScores.Experience, result.MatchScores.Keywords)
	result.Recommendations = recommendations(&result)

	return result
}

// OverallScore combines the sub-scores with the fixed weights
func OverallScore(skills, experience, keywords int) int {
	// Explicit conversions keep each product rounded separately (no fused multiply-add)
	overall := float64(float64(skills)*skillsWeight) +
		float64(float64(experience)*experienceWeight) +
		float64(float64(keywords)*keywordsWeight)
	return scoring.Clamp(int(math.Round(overall)))
}

// ExperienceScore rates the number of detected roles against the first
// years-of-experience requirement in the job description.
func ExperienceScore(roles int, jobDescription string) int {
	required, ok := RequiredYears(jobDescription)
	if !ok {
		if roles > 0 {
			return 85
		}
		return 60
	}

	if roles == 0 {
		return 50
	}
	switch {
	case required <= 2 && roles >= 1:
		return 90
	case required <= 5 && roles >= 2:
		return 90
	case required > 5 && roles >= 3:
		return 85
	default:
		return 75
	}
}

// RequiredYears returns the first "N years" requirement in text
func RequiredYears(text string) (int, bool) {
	match := yearsPattern.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}
	years, err := strconv.Atoi(match[1])
	if err != nil {
		// Digit runs too long for int are treated as a very large requirement
		return math.MaxInt, true
	}
	return years, true
}

func recommendations(result *types.MatchResult) []string {
	recs := make([]string, 0, maxRecommendations+1)

	if result.MatchScores.Overall < passingScore {
		recs = append(recs, recommendBelowThreshold)
	}
	if n := len(result.MissingSkills); n > 0 {
		recs = append(recs, fmt.Sprintf("Add these %d missing skills: %s", n, joinFirst(result.MissingSkills, maxNamedGaps)))
	}
	if len(result.MissingKeywords) > 0 {
		recs = append(recs, fmt.Sprintf("Incorporate these keywords: %s", joinFirst(result.MissingKeywords, maxNamedGaps)))
	}
	if result.MatchScores.Skills < passingScore {
		recs = append(recs, recommendFocusSkills)
	}
	if result.MatchScores.Keywords < passingScore {
		recs = append(recs, recommendTailorKeywords)
	}
	recs = append(recs, recommendSummary)

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

func joinFirst(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}

// containsAnyOf reports whether s contains any of needles, ignoring case
func containsAnyOf(s string, needles []string) bool {
	for _, needle := range needles {
		if vocabulary.ContainsFold(s, needle) {
			return true
		}
	}
	return false
}
