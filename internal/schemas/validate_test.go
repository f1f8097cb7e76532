package schemas

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-insights/internal/analysis"
	"github.com/jonathan/resume-insights/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resumeText = `Jane Doe
jane@example.com
555-123-4567
Senior Software Engineer
Acme Corp
JavaScript, Python, Git, SQL, Docker
B.S. Computer Science 2016
State University`

const jobText = "Backend developer with 3+ years of Node.js, MongoDB and Go. Strong communication and teamwork."

func TestNames(t *testing.T) {
	assert.Equal(t, []string{Analysis, Match, Profile}, Names())
}

func TestEmbeddedSchemas_WellFormed(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			source, err := Source(name)
			require.NoError(t, err)

			var schemaObj map[string]any
			require.NoError(t, json.Unmarshal([]byte(source), &schemaObj), "schema should be valid JSON")
			assert.Equal(t, "http://json-schema.org/draft-07/schema#", schemaObj["$schema"])
			assert.Equal(t, "object", schemaObj["type"])
			assert.Contains(t, schemaObj, "required")

			_, err = load(name)
			assert.NoError(t, err, "schema should compile")
		})
	}
}

func TestValidate_ServiceOutputs(t *testing.T) {
	svc := analysis.NewService(nil, nil)
	ctx := context.Background()

	for _, text := range []string{resumeText, ""} {
		profile, result := svc.Analyze(ctx, types.AnalysisRequest{Text: text})
		assert.NoError(t, Validate(Profile, profile))
		assert.NoError(t, Validate(Analysis, result))

		match := svc.Match(ctx, &profile, text, jobText)
		assert.NoError(t, Validate(Match, match))
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		value  any
		field  string
	}{
		{
			name:   "score above 100",
			schema: Analysis,
			value: types.AnalysisResult{
				Scores:          types.ScoreSet{ATSScore: 101},
				Strengths:       []string{},
				Weaknesses:      []string{},
				MissingSkills:   []string{},
				Recommendations: []string{},
				Keywords:        []string{},
			},
			field: "scores.atsScore",
		},
		{
			name:   "nil list",
			schema: Analysis,
			value:  types.AnalysisResult{Strengths: []string{}, Weaknesses: []string{}, MissingSkills: []string{}, Recommendations: []string{}},
			field:  "keywords",
		},
		{
			name:   "duplicate skills",
			schema: Profile,
			value: types.Profile{
				Skills:         []string{"Go", "Go"},
				Experience:     []types.ExperienceEntry{},
				Education:      []types.EducationEntry{},
				Certifications: []string{},
			},
			field: "skills",
		},
		{
			name:   "zero keyword count",
			schema: Match,
			value: types.MatchResult{
				MatchedSkills:   []string{},
				MissingSkills:   []string{},
				MatchedKeywords: []types.KeywordCount{{Keyword: "team", Count: 0}},
				MissingKeywords: []string{},
				Recommendations: []string{},
			},
			field: "matchedKeywords.0.count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.schema, tt.value)
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.schema, validationErr.Schema)

			fields := make([]string, 0, len(validationErr.Errors))
			for _, fieldErr := range validationErr.Errors {
				fields = append(fields, fieldErr.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestValidateBytes_UnknownSchema(t *testing.T) {
	err := ValidateBytes("resume", []byte(`{}`))

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "resume", loadErr.Ref)
	assert.ErrorIs(t, err, ErrUnknownSchema)
}

func TestValidateBytes_MalformedDocument(t *testing.T) {
	err := ValidateBytes(Match, []byte(`{ invalid json }`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read match document")
}

func TestValidateJSON_Files(t *testing.T) {
	dir := t.TempDir()
	schemaSource, err := Source(Match)
	require.NoError(t, err)

	schemaPath := filepath.Join(dir, "match.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(schemaSource), 0644))

	validPath := filepath.Join(dir, "valid.json")
	require.NoError(t, os.WriteFile(validPath, []byte(`{
		"matchScores": {"overall": 58, "skills": 50, "experience": 80, "keywords": 40},
		"matchedSkills": ["Go"], "missingSkills": [], "matchedKeywords": [{"keyword": "team", "count": 2}],
		"missingKeywords": [], "recommendations": [], "advisoryPowered": false
	}`), 0644))

	invalidPath := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalidPath, []byte(`{"matchScores": {"overall": "high"}}`), 0644))

	assert.NoError(t, ValidateJSON(schemaPath, validPath))

	err = ValidateJSON(schemaPath, invalidPath)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)

	err = ValidateJSON(filepath.Join(dir, "missing.json"), validPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = ValidateJSON(schemaPath, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Schema: Analysis,
		Errors: []FieldError{
			{Field: "scores", Message: "is required"},
			{Field: "keywords", Message: "Invalid type"},
		},
	}

	msg := err.Error()
	assert.Contains(t, msg, "analysis validation failed")
	assert.Contains(t, msg, "1. scores: is required; ")
	assert.Contains(t, msg, "2. keywords: Invalid type")
}

func TestValidationError_ErrorWithoutSchemaName(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{{Field: "(root)", Message: "name is required"}}}
	assert.Equal(t, "document validation failed: 1. (root): name is required", err.Error())
}
