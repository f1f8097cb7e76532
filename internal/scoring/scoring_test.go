package scoring

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-insights/internal/extraction"
	"github.com/jonathan/resume-insights/internal/types"
	"github.com/stretchr/testify/assert"
)

func profileWith(skills, experience, education, certs int, email, phone string) *types.Profile {
	p := types.NewProfile()
	p.Email = email
	p.Phone = phone
	for i := 0; i < skills; i++ {
		p.Skills = append(p.Skills, "Skill"+strings.Repeat("x", i))
	}
	for i := 0; i < experience; i++ {
		p.Experience = append(p.Experience, types.ExperienceEntry{Title: "Developer"})
	}
	for i := 0; i < education; i++ {
		p.Education = append(p.Education, types.EducationEntry{Degree: "B.S."})
	}
	for i := 0; i < certs; i++ {
		p.Certifications = append(p.Certifications, "PMP")
	}
	return &p
}

func TestATSScore(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		profile  *types.Profile
		expected int
	}{
		{name: "empty text", text: "", profile: profileWith(0, 0, 0, 0, "", ""), expected: 60},
		{name: "blank text", text: " \n ", profile: profileWith(0, 0, 0, 0, "", ""), expected: 60},
		{name: "empty profile clean text", text: "plain", profile: profileWith(0, 0, 0, 0, "", ""), expected: 65},
		{name: "empty profile with pipe", text: "a | b", profile: profileWith(0, 0, 0, 0, "", ""), expected: 60},
		{name: "mis-encoded arrow", text: "step â†’ step", profile: profileWith(0, 0, 0, 0, "", ""), expected: 60},
		{name: "contacts", text: "x", profile: profileWith(0, 0, 0, 0, "a@b.co", "555-123-4567"), expected: 75},
		{name: "three skills", text: "x", profile: profileWith(3, 0, 0, 0, "", ""), expected: 71},
		{name: "skill bonus capped", text: "x", profile: profileWith(15, 0, 0, 0, "", ""), expected: 85},
		{name: "experience and education", text: "x", profile: profileWith(0, 2, 1, 0, "", ""), expected: 80},
		{name: "everything clamps to 100", text: "x", profile: profileWith(12, 3, 2, 1, "a@b.co", "555-123-4567"), expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ATSScore(tt.text, tt.profile))
		})
	}
}

func TestResumeScore(t *testing.T) {
	tests := []struct {
		name     string
		profile  *types.Profile
		expected int
	}{
		{name: "empty", profile: profileWith(0, 0, 0, 0, "", ""), expected: 50},
		{name: "four skills no bonus", profile: profileWith(4, 0, 0, 0, "", ""), expected: 50},
		{name: "five skills", profile: profileWith(5, 0, 0, 0, "", ""), expected: 60},
		{name: "eight skills", profile: profileWith(8, 0, 0, 0, "", ""), expected: 65},
		{name: "one role", profile: profileWith(0, 1, 0, 0, "", ""), expected: 60},
		{name: "three roles", profile: profileWith(0, 3, 0, 0, "", ""), expected: 65},
		{name: "education and certs", profile: profileWith(0, 0, 1, 1, "", ""), expected: 70},
		{name: "email only", profile: profileWith(0, 0, 0, 0, "a@b.co", ""), expected: 50},
		{name: "both contacts", profile: profileWith(0, 0, 0, 0, "a@b.co", "555-123-4567"), expected: 60},
		{name: "full profile clamps", profile: profileWith(10, 4, 1, 2, "a@b.co", "555-123-4567"), expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResumeScore(tt.profile))
		})
	}
}

func TestSkillMatch(t *testing.T) {
	scorer := New(nil)

	tests := []struct {
		name     string
		skills   []string
		role     string
		expected int
	}{
		{name: "unknown role", skills: []string{"Go"}, role: "astronaut", expected: 75},
		{name: "empty role", skills: nil, role: "", expected: 75},
		{name: "no skills", skills: []string{}, role: "software-engineer", expected: 0},
		// 2 of 7: JavaScript covers both JavaScript and Java
		{name: "substring covers two", skills: []string{"JavaScript"}, role: "software-engineer", expected: 29},
		{name: "case-insensitive", skills: []string{"python", "GIT", "sql"}, role: "software-engineer", expected: 43},
		{name: "all covered", skills: []string{"SQL", "Python", "Excel", "Tableau", "Data Visualization"}, role: "data-analyst", expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := types.NewProfile()
			if tt.skills != nil {
				p.Skills = tt.skills
			}
			assert.Equal(t, tt.expected, scorer.SkillMatch(&p, tt.role))
		})
	}
}

func TestScore_EmptyText(t *testing.T) {
	profile := extraction.New(nil).Extract("")

	scores := New(nil).Score("", &profile, "software-engineer")

	assert.Equal(t, 60, scores.ATSScore)
	assert.Equal(t, 50, scores.ResumeScore)
	assert.Equal(t, 0, scores.SkillMatch)
}

func TestScore_WithinBounds(t *testing.T) {
	texts := []string{
		"",
		"|||",
		"Jane\njane@x.io\n555-123-4567\nGo Python Java React Docker AWS Kubernetes SQL Redis\nSenior Developer\nAcme\nLead Architect\nBeta\nManager\nGamma\nBachelor 2010\nMIT\nAWS Certified",
	}
	scorer := New(nil)
	extractor := extraction.New(nil)

	for _, text := range texts {
		profile := extractor.Extract(text)
		scores := scorer.Score(text, &profile, "backend-developer")
		for _, v := range []int{scores.ATSScore, scores.ResumeScore, scores.SkillMatch} {
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, 100)
		}
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(0, 0))
	assert.Equal(t, 100, Percent(1, 0))
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 50, Percent(1, 2))
	assert.Equal(t, 100, Percent(5, 3))
}
