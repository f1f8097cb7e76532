package matching

import (
	"testing"

	"github.com/jonathan/resume-insights/internal/extraction"
	"github.com/jonathan/resume-insights/internal/types"
	"github.com/jonathan/resume-insights/internal/vocabulary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const backendJD = "Looking for a Backend Developer with 3+ years of experience in Node.js, MongoDB, and REST API design, strong team collaboration skills required"

func profileWith(skills []string, roles int) *types.Profile {
	p := types.NewProfile()
	p.Skills = append(p.Skills, skills...)
	for i := 0; i < roles; i++ {
		p.Experience = append(p.Experience, types.ExperienceEntry{Title: "Developer"})
	}
	return &p
}

func TestMatch_BackendExample(t *testing.T) {
	profile := profileWith([]string{"Node.js", "JavaScript"}, 1)
	resume := "Node.js and JavaScript developer working with a team"

	result := New(nil).Match(profile, resume, backendJD)

	assert.Equal(t, []string{"Node.js"}, result.MatchedSkills)
	// "Go" is found inside "MongoDB" by substring containment
	assert.Equal(t, []string{"Go", "MongoDB", "REST API"}, result.MissingSkills)
	assert.Equal(t, 25, result.MatchScores.Skills)

	// 3 years required, one role: falls through to "some experience"
	assert.Equal(t, 75, result.MatchScores.Experience)

	assert.Equal(t, []types.KeywordCount{{Keyword: "team", Count: 1}}, result.MatchedKeywords)
	assert.Equal(t, []string{"collaboration", "backend"}, result.MissingKeywords)
	assert.Equal(t, 33, result.MatchScores.Keywords)

	assert.Equal(t, OverallScore(25, 75, 33), result.MatchScores.Overall)
	assert.Less(t, result.MatchScores.Overall, 70)

	assert.Equal(t, []string{
		"Your match score is below 70% - consider adding missing skills and keywords",
		"Add these 3 missing skills: Go, MongoDB, REST API",
		"Incorporate these keywords: collaboration, backend",
		"Focus on learning the key technical skills mentioned in the job description",
		"Tailor your resume by adding relevant keywords from the job description",
	}, result.Recommendations)
}

func TestMatch_MatchedAndMissingAreAsymmetric(t *testing.T) {
	m := New(nil)

	t.Run("matched skill need not be a job skill", func(t *testing.T) {
		result := m.Match(profileWith([]string{"JavaScript"}, 0), "", "Java developer")

		assert.Equal(t, []string{"JavaScript"}, result.MatchedSkills)
		assert.Empty(t, result.MissingSkills)
		assert.Equal(t, 100, result.MatchScores.Skills)
	})

	t.Run("job skill missing while a shorter one matches", func(t *testing.T) {
		result := m.Match(profileWith([]string{"Java"}, 0), "", "JavaScript")

		assert.Equal(t, []string{"Java"}, result.MatchedSkills)
		assert.Equal(t, []string{"JavaScript"}, result.MissingSkills)
		assert.Equal(t, 50, result.MatchScores.Skills)
	})
}

func TestMatch_EmptyInputs(t *testing.T) {
	result := New(nil).Match(profileWith(nil, 0), "", "")

	assert.Equal(t, types.MatchScores{Overall: 21, Skills: 0, Experience: 60, Keywords: 0}, result.MatchScores)
	assert.NotNil(t, result.MatchedSkills)
	assert.NotNil(t, result.MissingSkills)
	assert.NotNil(t, result.MatchedKeywords)
	assert.NotNil(t, result.MissingKeywords)
	assert.Equal(t, []string{
		"Your match score is below 70% - consider adding missing skills and keywords",
		"Focus on learning the key technical skills mentioned in the job description",
		"Tailor your resume by adding relevant keywords from the job description",
		"Customize your professional summary to align with the job requirements",
	}, result.Recommendations)
	assert.Nil(t, result.AdvisoryInsights)
	assert.False(t, result.AdvisoryPowered)
}

func TestMatch_KeywordCounts(t *testing.T) {
	result := New(nil).Match(profileWith(nil, 0), "Team player, TEAM lead; teamwork in the cloud", "team and cloud work")

	require.Len(t, result.MatchedKeywords, 2)
	assert.Equal(t, types.KeywordCount{Keyword: "team", Count: 3}, result.MatchedKeywords[0])
	assert.Equal(t, types.KeywordCount{Keyword: "cloud", Count: 1}, result.MatchedKeywords[1])
	assert.Empty(t, result.MissingKeywords)
	assert.Equal(t, 100, result.MatchScores.Keywords)
}

func TestMatch_StrongMatchKeepsClosingTip(t *testing.T) {
	profile := profileWith([]string{"Python", "Docker"}, 3)
	result := New(nil).Match(profile, "python docker leadership", "Python and Docker, leadership")

	assert.Equal(t, 100, result.MatchScores.Skills)
	assert.Equal(t, 100, result.MatchScores.Keywords)
	assert.Equal(t, 85, result.MatchScores.Experience)
	assert.Equal(t, []string{"Customize your professional summary to align with the job requirements"}, result.Recommendations)
}

func TestExperienceScore(t *testing.T) {
	tests := []struct {
		name     string
		roles    int
		jd       string
		expected int
	}{
		{name: "no requirement with experience", roles: 1, jd: "Great team", expected: 85},
		{name: "no requirement without experience", roles: 0, jd: "Great team", expected: 60},
		{name: "requirement without experience", roles: 0, jd: "1 year", expected: 50},
		{name: "junior one role", roles: 1, jd: "2 years", expected: 90},
		{name: "mid two roles", roles: 2, jd: "5+ years", expected: 90},
		{name: "mid one role", roles: 1, jd: "3+ years", expected: 75},
		{name: "senior three roles", roles: 3, jd: "8 YEARS", expected: 85},
		{name: "senior two roles", roles: 2, jd: "7 years", expected: 75},
		{name: "first requirement wins", roles: 1, jd: "1 year of Go, 10 years overall", expected: 90},
		{name: "overflowing number", roles: 3, jd: "99999999999999999999999 years", expected: 85},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExperienceScore(tt.roles, tt.jd))
		})
	}
}

func TestRequiredYears(t *testing.T) {
	years, ok := RequiredYears("Requires 10+ years")
	assert.True(t, ok)
	assert.Equal(t, 10, years)

	years, ok = RequiredYears("2-3 years")
	assert.True(t, ok)
	assert.Equal(t, 3, years)

	_, ok = RequiredYears("Years of fun, 5 yrs")
	assert.False(t, ok)
}

func TestOverallScore(t *testing.T) {
	tests := []struct {
		skills, experience, keywords int
		expected                     int
	}{
		{0, 0, 0, 0},
		{100, 100, 100, 100},
		{0, 60, 0, 21},
		{50, 80, 40, 58},
		{100, 85, 100, 95},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, OverallScore(tt.skills, tt.experience, tt.keywords))
	}
}

func TestMatch_RecommendationsCappedAtFive(t *testing.T) {
	result := New(nil).Match(profileWith(nil, 0), "", "Python, Docker, AWS, team, cloud, scalable")
	assert.Len(t, result.Recommendations, 5)
	assert.Equal(t, "Add these 3 missing skills: Python, AWS, Docker", result.Recommendations[1])
}

var matchPairs = []struct {
	name   string
	resume string
	jd     string
}{
	{name: "both empty", resume: "", jd: ""},
	{name: "empty resume", resume: "", jd: backendJD},
	{name: "empty job description", resume: "Go and Python engineer, Docker, Kubernetes", jd: ""},
	{name: "backend", resume: "Senior Developer\nAcme\nNode.js, Express, MongoDB, team player\n5 years", jd: backendJD},
	{name: "frontend", resume: "React, TypeScript, CSS and HTML developer", jd: "Frontend engineer with React, Vue, Angular and 2+ years of experience, leadership a plus"},
	{name: "data", resume: "Python, SQL, Pandas, Machine Learning, TensorFlow\nData Scientist\nBeta", jd: "Data scientist, 7+ years, Python, R, Spark, AWS, communication skills"},
	{name: "no shared terms", resume: "Chef with pastry experience", jd: "Java developer with Kubernetes and Terraform"},
}

func TestMatch_SkillsComeFromVocabulary(t *testing.T) {
	vocab := vocabulary.Default()
	known := make(map[string]bool, len(vocab.Skills))
	for _, skill := range vocab.Skills {
		known[skill] = true
	}

	extractor := extraction.New(nil)
	m := New(nil)

	for _, tt := range matchPairs {
		t.Run(tt.name, func(t *testing.T) {
			profile := extractor.Extract(tt.resume)
			result := m.Match(&profile, tt.resume, tt.jd)

			for _, skill := range result.MatchedSkills {
				assert.True(t, known[skill], "matched skill %q not in vocabulary", skill)
			}
			for _, skill := range result.MissingSkills {
				assert.True(t, known[skill], "missing skill %q not in vocabulary", skill)
			}
		})
	}
}

func TestMatch_ScoresWithinBounds(t *testing.T) {
	extractor := extraction.New(nil)
	m := New(nil)

	for _, tt := range matchPairs {
		t.Run(tt.name, func(t *testing.T) {
			profile := extractor.Extract(tt.resume)
			scores := m.Match(&profile, tt.resume, tt.jd).MatchScores

			for _, v := range []int{scores.Overall, scores.Skills, scores.Experience, scores.Keywords} {
				assert.GreaterOrEqual(t, v, 0)
				assert.LessOrEqual(t, v, 100)
			}
		})
	}
}
