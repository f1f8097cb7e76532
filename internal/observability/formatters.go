// Package observability renders analysis and match results as boxed text reports for the CLI.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-insights/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 64
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 6
)

// Printer handles formatted report output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs the extracted profile fields.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:   %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", orDash(profile.Email)))
	sb.WriteString(fmt.Sprintf("Phone:  %s\n", orDash(profile.Phone)))
	sb.WriteString(fmt.Sprintf("Skills: %s\n", orDash(strings.Join(profile.Skills, ", "))))

	if len(profile.Experience) > 0 {
		sb.WriteString("\nExperience:\n")
		for _, entry := range profile.Experience {
			if entry.Company != "" {
				sb.WriteString(fmt.Sprintf("  • %s @ %s\n", entry.Title, entry.Company))
			} else {
				sb.WriteString(fmt.Sprintf("  • %s\n", entry.Title))
			}
		}
	}
	if len(profile.Education) > 0 {
		sb.WriteString("\nEducation:\n")
		for _, entry := range profile.Education {
			line := entry.Degree
			if entry.Year != "" && !strings.Contains(line, entry.Year) {
				line += " (" + entry.Year + ")"
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", line))
		}
	}
	writeList(&sb, "Certifications", profile.Certifications)

	p.printBox("EXTRACTED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs scores and insight lists of an analysis.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ATS score:     %s\n", scoreBar(result.Scores.ATSScore)))
	sb.WriteString(fmt.Sprintf("Resume score:  %s\n", scoreBar(result.Scores.ResumeScore)))
	sb.WriteString(fmt.Sprintf("Skill match:   %s\n", scoreBar(result.Scores.SkillMatch)))

	writeList(&sb, "Strengths", result.Strengths)
	writeList(&sb, "Weaknesses", result.Weaknesses)
	writeList(&sb, "Missing skills", result.MissingSkills)
	writeList(&sb, "Recommendations", result.Recommendations)
	writeList(&sb, "Keywords", result.Keywords)

	p.printBox(titleWithSource("RESUME ANALYSIS", result.AdvisoryPowered), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatch outputs the sub-scores and gap lists of a job match.
func (p *Printer) PrintMatch(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:     %s\n", scoreBar(result.MatchScores.Overall)))
	sb.WriteString(fmt.Sprintf("Skills:      %s\n", scoreBar(result.MatchScores.Skills)))
	sb.WriteString(fmt.Sprintf("Experience:  %s\n", scoreBar(result.MatchScores.Experience)))
	sb.WriteString(fmt.Sprintf("Keywords:    %s\n", scoreBar(result.MatchScores.Keywords)))

	writeList(&sb, "Matched skills", result.MatchedSkills)
	writeList(&sb, "Missing skills", result.MissingSkills)

	if len(result.MatchedKeywords) > 0 {
		keywords := make([]string, 0, len(result.MatchedKeywords))
		for _, kc := range result.MatchedKeywords {
			keywords = append(keywords, fmt.Sprintf("%s ×%d", kc.Keyword, kc.Count))
		}
		writeList(&sb, "Matched keywords", keywords)
	}
	writeList(&sb, "Missing keywords", result.MissingKeywords)
	writeList(&sb, "Recommendations", result.Recommendations)

	if len(result.AdvisoryInsights) > 0 {
		keys := make([]string, 0, len(result.AdvisoryInsights))
		for key := range result.AdvisoryInsights {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		sb.WriteString("\nAdvisory insights:\n")
		for _, key := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %v\n", key, result.AdvisoryInsights[key]))
		}
	}

	p.printBox(titleWithSource("JOB MATCH", result.AdvisoryPowered), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCareerPath outputs a generated career plan.
func (p *Printer) PrintCareerPath(path *types.CareerPath) {
	if path == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Timeline: %s\n", orDash(path.Timeline)))

	for i, phase := range path.Phases {
		sb.WriteString(fmt.Sprintf("\n%d. %s (%s)\n", i+1, phase.Phase, phase.Duration))
		if phase.Description != "" {
			sb.WriteString(fmt.Sprintf("   %s\n", phase.Description))
		}
		if len(phase.Skills) > 0 {
			sb.WriteString(fmt.Sprintf("   [%s]\n", strings.Join(phase.Skills, ", ")))
		}
	}

	if len(path.PrioritySkills) > 0 {
		sb.WriteString("\nPriority skills:\n")
		for _, skill := range path.PrioritySkills {
			sb.WriteString(fmt.Sprintf("  • %s (%s, %s)\n", skill.Skill, skill.Priority, skill.EstimatedTime))
		}
	}
	if len(path.ProjectIdeas) > 0 {
		sb.WriteString("\nProject ideas:\n")
		for _, idea := range path.ProjectIdeas {
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", idea.Title, idea.Duration))
		}
	}

	p.printBox("CAREER PATH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs section improvement suggestions.
func (p *Printer) PrintSuggestions(section string, suggestions *types.SectionSuggestions) {
	if suggestions == nil {
		return
	}

	var sb strings.Builder
	for i, s := range suggestions.Suggestions {
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(orDash(s.Type))))
		if s.Original != "" {
			sb.WriteString(fmt.Sprintf("  - %s\n", s.Original))
		}
		sb.WriteString(fmt.Sprintf("  + %s\n", s.Improved))
		if i < len(suggestions.Suggestions)-1 {
			sb.WriteString("\n")
		}
	}
	writeList(&sb, "Examples", suggestions.Examples)

	p.printBox(fmt.Sprintf("SUGGESTIONS: %s", strings.ToUpper(section)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStatus outputs the advisory model status.
func (p *Printer) PrintStatus(status types.AdvisoryStatus) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Status:     %s\n", status.Status))
	sb.WriteString(fmt.Sprintf("Enabled:    %t\n", status.Enabled))
	sb.WriteString(fmt.Sprintf("Configured: %t\n", status.Configured))
	sb.WriteString(fmt.Sprintf("Provider:   %s\n", status.Provider))
	sb.WriteString(fmt.Sprintf("Model:      %s", status.Model))

	p.printBox("ADVISORY STATUS", sb.String())
}

func writeList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("\n%s:\n", title))
	count := min(len(items), maxItemsToShow)
	for _, item := range items[:count] {
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// scoreBar renders a score as "NN/100 ██████░░░░" with ten cells.
func scoreBar(score int) string {
	filled := max(0, min(score, 100)) / 10
	return fmt.Sprintf("%3d/100 %s%s", score, strings.Repeat("█", filled), strings.Repeat("░", 10-filled))
}

func titleWithSource(title string, advisory bool) string {
	if advisory {
		return title + " (advisory)"
	}
	return title + " (rule-based)"
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
