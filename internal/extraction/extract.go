// Package extraction turns raw resume text into a structured Profile using line-oriented pattern matching.
package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-insights/internal/types"
	"github.com/jonathan/resume-insights/internal/vocabulary"
)

// maxExperienceEntries caps the experience list in detection order
const maxExperienceEntries = 5

var (
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	// Deliberately loose; dates and other digit runs can match.
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?(\(?\d{3}\)?[-.\s]?)?\d{3}[-.\s]?\d{4}`)
	yearPattern  = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// Extractor extracts Profiles using a fixed set of vocabulary tables
type Extractor struct {
	vocab *vocabulary.Tables
}

// New creates an Extractor. A nil vocab uses the embedded default tables.
func New(vocab *vocabulary.Tables) *Extractor {
	if vocab == nil {
		vocab = vocabulary.Default()
	}
	return &Extractor{vocab: vocab}
}

// Extract builds a Profile from resume text. It never fails: anything not
// found is left as an empty value.
func (e *Extractor) Extract(text string) types.Profile {
	lines := strings.Split(text, "\n")

	profile := types.NewProfile()
	profile.Name = extractName(lines)
	profile.Email = emailPattern.FindString(text)
	profile.Phone = phonePattern.FindString(text)
	profile.Skills = vocabulary.FindIn(text, e.vocab.Skills)
	profile.Experience = extractExperience(lines, e.vocab.JobTitles)
	profile.Education = extractEducation(lines, e.vocab.Degrees)
	profile.Certifications = extractCertifications(lines, e.vocab.Certifications)

	return profile
}

// extractName takes the first line of the document
func extractName(lines []string) string {
	if len(lines) == 0 {
		return types.NameNotFound
	}
	name := strings.TrimSpace(lines[0])
	if name == "" {
		return types.NameNotFound
	}
	return name
}

// extractExperience opens a new entry at every line that mentions a job title.
// The following line is taken as the company.
func extractExperience(lines []string, titles []string) []types.ExperienceEntry {
	entries := make([]types.ExperienceEntry, 0)
	var current *types.ExperienceEntry

	for i, line := range lines {
		if !containsAnyFold(line, titles) {
			continue
		}
		if current != nil {
			entries = append(entries, *current)
		}
		current = &types.ExperienceEntry{
			Title:   strings.TrimSpace(line),
			Company: lineAt(lines, i+1),
		}
	}
	if current != nil {
		entries = append(entries, *current)
	}

	if len(entries) > maxExperienceEntries {
		entries = entries[:maxExperienceEntries]
	}
	return entries
}

// extractEducation appends one entry per degree keyword found on a line, so a
// line naming two degrees yields two entries. Matching is case-sensitive.
func extractEducation(lines []string, degrees []string) []types.EducationEntry {
	entries := make([]types.EducationEntry, 0)

	for i, line := range lines {
		for _, degree := range degrees {
			if !strings.Contains(line, degree) {
				continue
			}
			next := lineAt(lines, i+1)
			year := lastYear(line)
			if year == "" {
				year = lastYear(next)
			}
			entries = append(entries, types.EducationEntry{
				Degree:      strings.TrimSpace(line),
				Institution: next,
				Year:        year,
			})
		}
	}

	return entries
}

// extractCertifications collects distinct trimmed lines containing a
// certification keyword. Matching is case-sensitive.
func extractCertifications(lines []string, keywords []string) []string {
	certs := make([]string, 0)
	seen := make(map[string]bool)

	for _, line := range lines {
		for _, keyword := range keywords {
			if !strings.Contains(line, keyword) {
				continue
			}
			trimmed := strings.TrimSpace(line)
			if !seen[trimmed] {
				seen[trimmed] = true
				certs = append(certs, trimmed)
			}
		}
	}

	return certs
}

// lastYear returns the last 19xx/20xx year in text
func lastYear(text string) string {
	matches := yearPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return ""
	}
	return matches[len(matches)-1]
}

// lineAt returns the trimmed line at index i, or "" past the end
func lineAt(lines []string, i int) string {
	if i < 0 || i >= len(lines) {
		return ""
	}
	return strings.TrimSpace(lines[i])
}

func containsAnyFold(line string, keywords []string) bool {
	for _, keyword := range keywords {
		if vocabulary.ContainsFold(line, keyword) {
			return true
		}
	}
	return false
}
