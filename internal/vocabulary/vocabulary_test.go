package vocabulary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Tables(t *testing.T) {
	tables := Default()

	assert.Contains(t, tables.Skills, "JavaScript")
	assert.Contains(t, tables.Skills, "REST API")
	assert.Contains(t, tables.Skills, "Linux")
	assert.Len(t, tables.ResumeKeywords, 10)
	assert.Len(t, tables.JobKeywords, 20)
	assert.Contains(t, tables.JobTitles, "Software Engineer")
	assert.Contains(t, tables.Degrees, "B.S.")
	assert.Contains(t, tables.Certifications, "CISSP")

	// Same pointer on every call
	assert.Same(t, tables, Default())
}

func TestRequiredSkills(t *testing.T) {
	tables := Default()

	assert.Equal(t,
		[]string{"JavaScript", "Python", "Java", "Git", "SQL", "Data Structures", "Algorithms"},
		tables.RequiredSkills("software-engineer"))
	assert.Nil(t, tables.RequiredSkills("astronaut"))
	assert.Len(t, tables.RequiredSkills("data-analyst"), 5)
}

func TestRecommendedSkills(t *testing.T) {
	tables := Default()

	assert.Equal(t,
		[]string{"Terraform", "Ansible", "Prometheus", "Grafana", "ELK Stack"},
		tables.RecommendedSkills("devops-engineer"))
	assert.Nil(t, tables.RecommendedSkills("data-analyst"))
}

func TestRequiredSkills_ReturnsCopy(t *testing.T) {
	tables := Default()

	skills := tables.RequiredSkills("frontend-developer")
	skills[0] = "mutated"

	assert.Equal(t, "JavaScript", tables.RequiredSkills("frontend-developer")[0])
}

func TestRoles(t *testing.T) {
	roles := Default().Roles()

	assert.Equal(t, "backend-developer", roles[0])
	assert.Contains(t, roles, "data-analyst")
	assert.Len(t, roles, 7)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		message string
	}{
		{name: "invalid yaml", data: "skills: [unterminated", message: "invalid YAML"},
		{name: "no skills", data: "job_titles: [Developer]", message: "skills list is empty"},
		{name: "no titles", data: "skills: [Go]", message: "job_titles list is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tables, err := Load([]byte(tt.data))
			require.Error(t, err)
			assert.Nil(t, tables)

			var loadErr *LoadError
			assert.ErrorAs(t, err, &loadErr)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoad_DedupesAndInitializesMaps(t *testing.T) {
	tables, err := Load([]byte("skills: [Go, Go, Rust]\njob_titles: [Developer]\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Go", "Rust"}, tables.Skills)
	assert.NotNil(t, tables.RoleRequiredSkills)
	assert.Nil(t, tables.RequiredSkills("software-engineer"))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	require.NoError(t, os.WriteFile(path, []byte("skills: [Elixir]\njob_titles: [Engineer]\n"), 0644))

	tables, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Elixir"}, tables.Skills)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}
