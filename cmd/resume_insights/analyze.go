package main

import (
	"fmt"

	"github.com/jonathan/resume-insights/internal/observability"
	"github.com/jonathan/resume-insights/internal/schemas"
	"github.com/jonathan/resume-insights/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Extract a profile from a resume and score it for a target role",
	Long: `Reads a resume (txt, pdf, docx or html; "-" for stdin), extracts name, contact details,
skills, experience, education and certifications, and scores it for the target role.

When the advisory model is configured its feedback replaces the rule-based insight lists.
--career-path additionally requests a development roadmap toward the role.`,
	RunE: runAnalyze,
}

var (
	analyzeResume     string
	analyzeRole       string
	analyzeLevel      string
	analyzeCareerPath bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume file, or - for stdin (required)")
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "Target role key, e.g. backend-developer (defaults to config)")
	analyzeCmd.Flags().StringVar(&analyzeLevel, "level", "", "Experience level for --career-path, e.g. mid")
	analyzeCmd.Flags().BoolVar(&analyzeCareerPath, "career-path", false, "Also generate an advisory career path")

	if err := analyzeCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

// analyzeOutput is the JSON shape of the analyze command
type analyzeOutput struct {
	File       string               `json:"file"`
	TargetRole string               `json:"targetRole"`
	Profile    types.Profile        `json:"profile"`
	Analysis   types.AnalysisResult `json:"analysis"`
	CareerPath *types.CareerPath    `json:"careerPath,omitempty"`
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	doc, err := readDocument(analyzeResume, cmd.InOrStdin())
	if err != nil {
		return err
	}

	out := analyzeOutput{
		File:       doc.Name,
		TargetRole: a.role(cmd, analyzeRole),
		Profile:    a.service.Extract(doc.Text),
	}

	wantPath := analyzeCareerPath
	if wantPath && !a.service.AdvisoryEnabled() {
		warnf(cmd, "--career-path needs the advisory model; set ADVISORY_ENABLED and an API key")
		wantPath = false
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		out.Analysis = a.service.AnalyzeProfile(ctx, doc.Text, &out.Profile, out.TargetRole)
		return nil
	})
	if wantPath {
		g.Go(func() error {
			out.CareerPath, _ = a.service.CareerPath(ctx, &out.Profile, out.TargetRole, a.level(cmd, analyzeLevel))
			return nil
		})
	}
	_ = g.Wait()

	if a.service.AdvisoryEnabled() && !out.Analysis.AdvisoryPowered {
		warnf(cmd, "advisory model gave no usable answer; showing rule-based analysis")
	}
	if wantPath && out.CareerPath == nil {
		warnf(cmd, "advisory model gave no usable career path")
	}

	checks := []schemaCheck{
		{schema: schemas.Profile, value: out.Profile},
		{schema: schemas.Analysis, value: out.Analysis},
	}
	return emit(cmd, out, checks, func(p *observability.Printer) {
		p.PrintProfile(&out.Profile)
		p.PrintAnalysis(&out.Analysis)
		p.PrintCareerPath(out.CareerPath)
	})
}
