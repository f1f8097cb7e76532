// Package advisory issues the four advisory prompt kinds against an llm.Client.
//
// Every call follows the same policy: skip entirely when the client is
// disabled, issue exactly one request otherwise, and turn any transport
// failure or unparsable reply into a nil result. Failures are logged and
// never returned.
package advisory

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"strings"

	"github.com/jonathan/resume-insights/internal/llm"
	"github.com/jonathan/resume-insights/internal/prompts"
	"github.com/jonathan/resume-insights/internal/types"
)

// Context bounds, in characters
const (
	analysisContextLimit = 3000
	matchContextLimit    = 2000
	sectionContextLimit  = 2000
)

// Sections accepted by SectionSuggestions
const (
	SectionSummary    = "summary"
	SectionExperience = "experience"
	SectionSkills     = "skills"
	SectionOverall    = "overall"
)

// Advisor wraps an llm.Client with the advisory prompts and parsing policy
type Advisor struct {
	client llm.Client
}

// New creates an Advisor. A nil client is treated as disabled.
func New(client llm.Client) *Advisor {
	if client == nil {
		client = llm.NewDisabledClient(nil, false)
	}
	return &Advisor{client: client}
}

// Enabled reports whether advisory calls will be attempted
func (a *Advisor) Enabled() bool {
	return a.client.Enabled()
}

// Status reports the underlying client status
func (a *Advisor) Status() types.AdvisoryStatus {
	return a.client.Status()
}

// AnalyzeResume asks for strengths, weaknesses, missing skills, recommendations,
// and two scores. Only the first 3000 characters of the resume are sent.
func (a *Advisor) AnalyzeResume(ctx context.Context, resumeText string, profile *types.Profile, role string) *types.AdvisoryAnalysis {
	data := map[string]string{
		"Role":            role,
		"ResumeText":      Truncate(resumeText, analysisContextLimit),
		"Skills":          joinOr(profile.Skills, "None"),
		"ExperienceCount": strconv.Itoa(len(profile.Experience)),
		"EducationCount":  strconv.Itoa(len(profile.Education)),
	}

	var out types.AdvisoryAnalysis
	if !a.call(ctx, prompts.KeyAnalyzeResume, data, &out) {
		return nil
	}
	return &out
}

// CareerPath asks for a development roadmap toward role. Only extracted
// fields are sent, never the resume text.
func (a *Advisor) CareerPath(ctx context.Context, profile *types.Profile, role, level string) *types.CareerPath {
	data := map[string]string{
		"Role":            role,
		"ExperienceLevel": level,
		"Skills":          joinOr(profile.Skills, "Not specified"),
		"ExperienceCount": strconv.Itoa(len(profile.Experience)),
	}

	var out types.CareerPath
	if !a.call(ctx, prompts.KeyCareerPath, data, &out) {
		return nil
	}
	return &out
}

// MatchInsights asks for a fit assessment on top of a computed baseline.
// The reply is passed through as an untyped object.
func (a *Advisor) MatchInsights(ctx context.Context, resumeText, jobDescription string, baseline *types.MatchResult) types.MatchInsights {
	data := map[string]string{
		"ResumeText":     Truncate(resumeText, matchContextLimit),
		"JobDescription": Truncate(jobDescription, matchContextLimit),
		"OverallScore":   strconv.Itoa(baseline.MatchScores.Overall),
		"MatchedSkills":  strings.Join(baseline.MatchedSkills, ", "),
		"MissingSkills":  strings.Join(baseline.MissingSkills, ", "),
	}

	var out types.MatchInsights
	if !a.call(ctx, prompts.KeyJobMatch, data, &out) || out == nil {
		return nil
	}
	return out
}

// SectionSuggestions asks for rewrite suggestions for one resume section.
// Unknown sections are treated as "overall".
func (a *Advisor) SectionSuggestions(ctx context.Context, content, section string) *types.SectionSuggestions {
	task, err := prompts.Get("section-"+NormalizeSection(section))
	if err != nil {
		log.Printf("[advisory] %v", err)
		return nil
	}

	data := map[string]string{
		"Content": Truncate(content, sectionContextLimit),
		"Task":    task,
	}

	var out types.SectionSuggestions
	if !a.call(ctx, prompts.KeySuggestions, data, &out) {
		return nil
	}
	return &out
}

// call renders the prompt, issues one request, and decodes the JSON object in
// the reply into out. It reports false on any failure.
func (a *Advisor) call(ctx context.Context, key string, data map[string]string, out any) bool {
	if !a.client.Enabled() {
		return false
	}

	tmpl, err := prompts.GetTemplate(key)
	if err != nil {
		log.Printf("[advisory] %s: %v", key, err)
		return false
	}
	tmpl = tmpl.Render(data)

	reply, err := a.client.Generate(ctx, tmpl.System, tmpl.User)
	if err != nil {
		log.Printf("[advisory] %s call failed, using rule-based result: %v", key, err)
		return false
	}

	object, ok := llm.ExtractJSONObject(reply)
	if !ok {
		log.Printf("[advisory] %s reply contained no JSON object", key)
		return false
	}
	if err := json.Unmarshal([]byte(object), out); err != nil {
		log.Printf("[advisory] %s reply could not be parsed: %v", key, err)
		return false
	}
	return true
}

// NormalizeSection maps a section name onto a known section, defaulting to overall
func NormalizeSection(section string) string {
	switch s := strings.ToLower(strings.TrimSpace(section)); s {
	case SectionSummary, SectionExperience, SectionSkills:
		return s
	default:
		return SectionOverall
	}
}

// Truncate returns at most limit characters of s
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}
