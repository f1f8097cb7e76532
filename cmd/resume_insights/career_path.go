package main

import (
	"errors"
	"fmt"

	"github.com/jonathan/resume-insights/internal/observability"
	"github.com/jonathan/resume-insights/internal/types"
	"github.com/spf13/cobra"
)

var careerPathCmd = &cobra.Command{
	Use:   "career-path",
	Short: "Generate an advisory career roadmap toward a target role",
	Long: `Extracts a profile from the resume and asks the advisory model for a phased
roadmap toward the target role. Requires ADVISORY_ENABLED and an API key.`,
	RunE: runCareerPath,
}

var (
	careerResume string
	careerRole   string
	careerLevel  string
)

func init() {
	careerPathCmd.Flags().StringVarP(&careerResume, "resume", "r", "", "Path to resume file, or - for stdin (required)")
	careerPathCmd.Flags().StringVar(&careerRole, "role", "", "Target role key (defaults to config)")
	careerPathCmd.Flags().StringVar(&careerLevel, "level", "", "Current experience level, e.g. junior, mid, senior")

	if err := careerPathCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(careerPathCmd)
}

type careerPathOutput struct {
	TargetRole      string            `json:"targetRole"`
	ExperienceLevel string            `json:"experienceLevel"`
	CareerPath      *types.CareerPath `json:"careerPath"`
}

var errAdvisoryDisabled = errors.New("advisory model is not enabled: set ADVISORY_ENABLED=true and OPENAI_API_KEY or GEMINI_API_KEY")

func runCareerPath(cmd *cobra.Command, _ []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if !a.service.AdvisoryEnabled() {
		return errAdvisoryDisabled
	}

	doc, err := readDocument(careerResume, cmd.InOrStdin())
	if err != nil {
		return err
	}

	profile := a.service.Extract(doc.Text)
	out := careerPathOutput{
		TargetRole:      a.role(cmd, careerRole),
		ExperienceLevel: a.level(cmd, careerLevel),
	}

	path, ok := a.service.CareerPath(cmd.Context(), &profile, out.TargetRole, out.ExperienceLevel)
	if !ok {
		return errors.New("failed to generate career path: the advisory model gave no usable answer")
	}
	out.CareerPath = path

	return emit(cmd, out, nil, func(p *observability.Printer) {
		p.PrintCareerPath(out.CareerPath)
	})
}
