// Package analysis orchestrates extraction, rule-based scoring, job matching,
// and the optional advisory layer. Every operation returns a complete result;
// advisory output only ever replaces or augments a rule-based baseline.
package analysis

import (
	"context"

	"github.com/jonathan/resume-insights/internal/advisory"
	"github.com/jonathan/resume-insights/internal/extraction"
	"github.com/jonathan/resume-insights/internal/insights"
	"github.com/jonathan/resume-insights/internal/llm"
	"github.com/jonathan/resume-insights/internal/matching"
	"github.com/jonathan/resume-insights/internal/scoring"
	"github.com/jonathan/resume-insights/internal/types"
	"github.com/jonathan/resume-insights/internal/vocabulary"
)

// Defaults applied when a request leaves role or level empty
const (
	DefaultRole            = "software-engineer"
	DefaultExperienceLevel = "mid"
)

// Service is the entry point for resume analysis and job matching.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	extractor *extraction.Extractor
	scorer    *scoring.Scorer
	insights  *insights.Generator
	matcher   *matching.Matcher
	advisor   *advisory.Advisor
}

// NewService wires the components over one set of vocabulary tables.
// A nil vocab uses the embedded tables; a nil client disables advisory calls.
func NewService(vocab *vocabulary.Tables, client llm.Client) *Service {
	if vocab == nil {
		vocab = vocabulary.Default()
	}
	return &Service{
		extractor: extraction.New(vocab),
		scorer:    scoring.New(vocab),
		insights:  insights.New(vocab),
		matcher:   matching.New(vocab),
		advisor:   advisory.New(client),
	}
}

// Extract builds a structured profile from resume text
func (s *Service) Extract(text string) types.Profile {
	return s.extractor.Extract(text)
}

// Analyze extracts a profile from the request text and analyzes it
func (s *Service) Analyze(ctx context.Context, req types.AnalysisRequest) (types.Profile, types.AnalysisResult) {
	profile := s.extractor.Extract(req.Text)
	return profile, s.AnalyzeProfile(ctx, req.Text, &profile, req.TargetRole)
}

// AnalyzeProfile scores an extracted profile for a role. When the advisory
// service answers, its scores override the rule-based ATS and resume scores
// (if positive) and its four lists replace the rule-based ones. Skill match
// and keywords are always rule-based.
func (s *Service) AnalyzeProfile(ctx context.Context, text string, profile *types.Profile, role string) types.AnalysisResult {
	role = roleOrDefault(role)
	scores := s.scorer.Score(text, profile, role)

	if advice := s.advisor.AnalyzeResume(ctx, text, profile, role); advice != nil {
		return mergeAdvice(scores, advice, s.insights.Keywords(text))
	}

	return s.insights.Analyze(text, profile, role, scores)
}

// Match scores a profile against a job description. The rule-based result is
// always computed; advisory insights, when available, are attached to it.
func (s *Service) Match(ctx context.Context, profile *types.Profile, resumeText, jobDescription string) types.MatchResult {
	result := s.matcher.Match(profile, resumeText, jobDescription)

	if extra := s.advisor.MatchInsights(ctx, resumeText, jobDescription, &result); extra != nil {
		result.AdvisoryInsights = extra
		result.AdvisoryPowered = true
	}

	return result
}

// MatchText extracts a profile from resume text and matches it
func (s *Service) MatchText(ctx context.Context, resumeText, jobDescription string) (types.Profile, types.MatchResult) {
	profile := s.extractor.Extract(resumeText)
	return profile, s.Match(ctx, &profile, resumeText, jobDescription)
}

// CareerPath returns an advisory roadmap toward role. ok is false when the
// advisory service is disabled or gave no usable answer.
func (s *Service) CareerPath(ctx context.Context, profile *types.Profile, role, level string) (*types.CareerPath, bool) {
	if level == "" {
		level = DefaultExperienceLevel
	}
	path := s.advisor.CareerPath(ctx, profile, roleOrDefault(role), level)
	return path, path != nil
}

// Suggestions returns advisory rewrite suggestions for a resume section
func (s *Service) Suggestions(ctx context.Context, content, section string) (*types.SectionSuggestions, bool) {
	suggestions := s.advisor.SectionSuggestions(ctx, content, section)
	return suggestions, suggestions != nil
}

// AdvisoryEnabled reports whether advisory calls will be attempted
func (s *Service) AdvisoryEnabled() bool {
	return s.advisor.Enabled()
}

// Status reports the advisory service state
func (s *Service) Status() types.AdvisoryStatus {
	return s.advisor.Status()
}

func mergeAdvice(scores types.ScoreSet, advice *types.AdvisoryAnalysis, keywords []string) types.AnalysisResult {
	if v := advice.ResumeScore.Value(); v > 0 {
		scores.ResumeScore = scoring.Clamp(v)
	}
	if v := advice.ATSScore.Value(); v > 0 {
		scores.ATSScore = scoring.Clamp(v)
	}

	return types.AnalysisResult{
		Scores:          scores,
		Strengths:       orEmpty(advice.Strengths),
		Weaknesses:      orEmpty(advice.Weaknesses),
		MissingSkills:   orEmpty(advice.MissingSkills),
		Recommendations: orEmpty(advice.Recommendations),
		Keywords:        keywords,
		AdvisoryPowered: true,
	}
}

func roleOrDefault(role string) string {
	if role == "" {
		return DefaultRole
	}
	return role
}

func orEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
