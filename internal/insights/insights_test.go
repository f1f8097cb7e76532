package insights

import (
	"testing"

	"github.com/jonathan/resume-insights/internal/types"
	"github.com/stretchr/testify/assert"
)

func newProfile(skills []string, roles int, certs []string, email, phone string) *types.Profile {
	p := types.NewProfile()
	if skills != nil {
		p.Skills = skills
	}
	for i := 0; i < roles; i++ {
		p.Experience = append(p.Experience, types.ExperienceEntry{Title: "Developer"})
	}
	if certs != nil {
		p.Certifications = certs
	}
	p.Email = email
	p.Phone = phone
	return &p
}

var eightSkills = []string{"Go", "Python", "Java", "SQL", "Docker", "AWS", "Git", "Redis"}

func TestStrengths(t *testing.T) {
	tests := []struct {
		name     string
		profile  *types.Profile
		expected []string
	}{
		{name: "empty", profile: newProfile(nil, 0, nil, "", ""), expected: []string{}},
		{
			name:    "all",
			profile: newProfile(eightSkills, 3, []string{"PMP"}, "a@b.co", "555-123-4567"),
			expected: []string{
				"Strong technical skills - Multiple technologies listed",
				"Diverse work experience across multiple roles",
				"Professional certifications demonstrate commitment to growth",
				"Complete contact information for easy reach",
			},
		},
		{
			name:     "email alone is not complete contact",
			profile:  newProfile(nil, 0, []string{"PMP"}, "a@b.co", ""),
			expected: []string{"Professional certifications demonstrate commitment to growth"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Strengths(tt.profile))
		})
	}
}

func TestWeaknesses(t *testing.T) {
	assert.Equal(t, []string{
		"Limited technical skills listed - add more relevant technologies",
		"No certifications listed - consider adding relevant credentials",
		"Limited work experience shown - elaborate on projects and responsibilities",
	}, Weaknesses(newProfile(nil, 0, nil, "", "")))

	assert.Empty(t, Weaknesses(newProfile(eightSkills[:5], 2, []string{"CISSP"}, "", "")))
}

func TestRecommendations(t *testing.T) {
	t.Run("conditional tips truncated to six", func(t *testing.T) {
		recs := Recommendations(newProfile(nil, 0, nil, "", ""))

		assert.Len(t, recs, 6)
		assert.Equal(t, "Add quantifiable achievements with metrics and numbers", recs[0])
		assert.Equal(t, "Consider obtaining relevant certifications for your target role", recs[5])
		assert.NotContains(t, recs, "Expand your skills section with more relevant technologies")
	})

	t.Run("skills tip when certified", func(t *testing.T) {
		recs := Recommendations(newProfile(nil, 0, []string{"PMP"}, "", ""))

		assert.Len(t, recs, 6)
		assert.Equal(t, "Expand your skills section with more relevant technologies", recs[5])
	})

	t.Run("base list only", func(t *testing.T) {
		recs := Recommendations(newProfile(eightSkills, 0, []string{"PMP"}, "", ""))
		assert.Len(t, recs, 5)
	})
}

func TestMissingSkills(t *testing.T) {
	g := New(nil)

	tests := []struct {
		name     string
		skills   []string
		role     string
		expected []string
	}{
		{name: "unknown role", skills: nil, role: "astronaut", expected: []string{}},
		{name: "role without recommendations", skills: nil, role: "data-analyst", expected: []string{}},
		{
			name:     "filters satisfied skills",
			skills:   []string{"graphql", "Docker"},
			role:     "software-engineer",
			expected: []string{"Kubernetes", "Testing", "System Design"},
		},
		{
			name:     "nothing satisfied",
			skills:   nil,
			role:     "devops-engineer",
			expected: []string{"Terraform", "Ansible", "Prometheus", "Grafana", "ELK Stack"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, g.MissingSkills(newProfile(tt.skills, 0, nil, "", ""), tt.role))
		})
	}
}

func TestKeywords(t *testing.T) {
	g := New(nil)

	found := g.Keywords("Agile TEAM player; led Project DESIGN and Development")
	assert.Equal(t, []string{"team", "project", "development", "design", "agile"}, found)
	assert.Empty(t, g.Keywords(""))
}

func TestAnalyze(t *testing.T) {
	g := New(nil)
	p := newProfile(nil, 0, nil, "", "")
	scores := types.ScoreSet{ATSScore: 60, ResumeScore: 50, SkillMatch: 75}

	result := g.Analyze("", p, "unknown", scores)

	assert.Equal(t, scores, result.Scores)
	assert.False(t, result.AdvisoryPowered)
	assert.Empty(t, result.Strengths)
	assert.Len(t, result.Weaknesses, 3)
	assert.NotNil(t, result.MissingSkills)
	assert.Empty(t, result.MissingSkills)
	assert.NotNil(t, result.Keywords)
}
