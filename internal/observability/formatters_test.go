package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/resume-insights/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.Profile{
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Skills: []string{"Go", "Docker"},
		Experience: []types.ExperienceEntry{
			{Title: "Senior Software Engineer", Company: "Acme Corp"},
			{Title: "Intern"},
		},
		Education:      []types.EducationEntry{{Degree: "MBA", Year: "2014"}},
		Certifications: []string{"PMP"},
	}

	p.PrintProfile(profile)
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED PROFILE")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "Phone:  -")
	assert.Contains(t, output, "Go, Docker")
	assert.Contains(t, output, "Senior Software Engineer @ Acme Corp")
	assert.Contains(t, output, "• Intern")
	assert.Contains(t, output, "MBA (2014)")
	assert.Contains(t, output, "PMP")
}

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.AnalysisResult{
		Scores:          types.ScoreSet{ATSScore: 85, ResumeScore: 60, SkillMatch: 29},
		Strengths:       []string{"Strong skill set"},
		Weaknesses:      []string{"No certifications"},
		Recommendations: []string{"a", "b", "c", "d", "e", "f", "g", "h"},
		Keywords:        []string{},
	}

	p.PrintAnalysis(result)
	output := buf.String()

	assert.Contains(t, output, "RESUME ANALYSIS (rule-based)")
	assert.Contains(t, output, " 85/100 ████████░░")
	assert.Contains(t, output, " 29/100 ██░░░░░░░░")
	assert.Contains(t, output, "Strong skill set")
	assert.Contains(t, output, "... and 2 more")
	assert.NotContains(t, output, "Keywords:")
	assert.NotContains(t, output, "Missing skills:")
}

func TestPrintMatch(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.MatchResult{
		MatchScores:      types.MatchScores{Overall: 44, Skills: 25, Experience: 75, Keywords: 33},
		MatchedSkills:    []string{"Node.js"},
		MissingSkills:    []string{"Go", "MongoDB"},
		MatchedKeywords:  []types.KeywordCount{{Keyword: "team", Count: 2}},
		Recommendations:  []string{"Add Go"},
		AdvisoryInsights: types.MatchInsights{"summary": "Decent fit", "fitLevel": "medium"},
		AdvisoryPowered:  true,
	}

	p.PrintMatch(result)
	output := buf.String()

	assert.Contains(t, output, "JOB MATCH (advisory)")
	assert.Contains(t, output, "team ×2")
	assert.Contains(t, output, "MongoDB")
	// Insight keys are sorted
	assert.Less(t, strings.Index(output, "fitLevel: medium"), strings.Index(output, "summary: Decent fit"))
}

func TestPrintCareerPath(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCareerPath(&types.CareerPath{
		Timeline: "12 months",
		Phases: []types.CareerPhase{
			{Phase: "Foundations", Duration: "3 months", Skills: []string{"Go"}, Description: "Learn the basics"},
		},
		PrioritySkills: []types.PrioritySkill{{Skill: "Kubernetes", Priority: "high", EstimatedTime: "2 months"}},
		ProjectIdeas:   []types.ProjectIdea{{Title: "CLI tool", Duration: "2 weeks"}},
	})
	output := buf.String()

	assert.Contains(t, output, "CAREER PATH")
	assert.Contains(t, output, "1. Foundations (3 months)")
	assert.Contains(t, output, "Kubernetes (high, 2 months)")
	assert.Contains(t, output, "CLI tool (2 weeks)")
}

func TestPrintSuggestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSuggestions("summary", &types.SectionSuggestions{
		Suggestions: []types.Suggestion{{Type: "clarity", Original: "Did stuff", Improved: "Shipped 3 services"}},
		Examples:    []string{"Led a team of 5"},
	})
	output := buf.String()

	assert.Contains(t, output, "SUGGESTIONS: SUMMARY")
	assert.Contains(t, output, "CLARITY")
	assert.Contains(t, output, "- Did stuff")
	assert.Contains(t, output, "+ Shipped 3 services")
	assert.Contains(t, output, "Led a team of 5")
}

func TestPrintStatus(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintStatus(types.AdvisoryStatus{Status: "disabled", Provider: "openai", Model: "gpt-3.5-turbo"})

	output := buf.String()
	assert.Contains(t, output, "ADVISORY STATUS")
	assert.Contains(t, output, "Status:     disabled")
	assert.Contains(t, output, "Configured: false")
}

func TestPrint_NilInputs(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(nil)
	p.PrintAnalysis(nil)
	p.PrintMatch(nil)
	p.PrintCareerPath(nil)
	p.PrintSuggestions("overall", nil)

	assert.Empty(t, buf.String())
}

func TestPrintBox_TruncatesByRune(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("T", strings.Repeat("é", 100))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), line)
	}
}

func TestScoreBar(t *testing.T) {
	assert.Equal(t, "  0/100 ░░░░░░░░░░", scoreBar(0))
	assert.Equal(t, "100/100 ██████████", scoreBar(100))
	assert.Equal(t, " 59/100 █████░░░░░", scoreBar(59))
}
