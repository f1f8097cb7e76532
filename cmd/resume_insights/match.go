package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/resume-insights/internal/fetch"
	"github.com/jonathan/resume-insights/internal/ingestion"
	"github.com/jonathan/resume-insights/internal/observability"
	"github.com/jonathan/resume-insights/internal/schemas"
	"github.com/jonathan/resume-insights/internal/types"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a resume against a job description",
	Long: `Compares a resume with a job description given as a file (--job), a URL (--job-url)
or inline text (--job-text) and reports skill, experience and keyword match scores
with the matched and missing skills and keywords.`,
	RunE: runMatch,
}

var (
	matchResume  string
	matchJob     string
	matchJobURL  string
	matchJobText string
	matchTitle   string
	matchCompany string
)

func init() {
	matchCmd.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to resume file, or - for stdin (required)")
	matchCmd.Flags().StringVarP(&matchJob, "job", "j", "", "Path to job description file (txt, pdf, docx or html)")
	matchCmd.Flags().StringVar(&matchJobURL, "job-url", "", "URL of the job posting to fetch")
	matchCmd.Flags().StringVar(&matchJobText, "job-text", "", "Job description text")
	matchCmd.Flags().StringVar(&matchTitle, "title", "", "Job title label for the report")
	matchCmd.Flags().StringVar(&matchCompany, "company", "", "Company label for the report")

	if err := matchCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	matchCmd.MarkFlagsMutuallyExclusive("job", "job-url", "job-text")
	matchCmd.MarkFlagsOneRequired("job", "job-url", "job-text")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	resume, err := readDocument(matchResume, cmd.InOrStdin())
	if err != nil {
		return err
	}

	jobDescription, err := loadJobDescription(cmd, a.cfg.FetchTimeoutDuration())
	if err != nil {
		return err
	}
	if strings.TrimSpace(jobDescription) == "" {
		return fmt.Errorf("job description is empty")
	}

	_, result := a.service.MatchText(cmd.Context(), resume.Text, jobDescription)

	title := matchTitle
	if title == "" {
		title = types.DefaultJobTitle
	}
	out := types.JobMatch{
		JobTitle:    title,
		Company:     matchCompany,
		JobURL:      matchJobURL,
		MatchResult: result,
	}

	return emit(cmd, out, []schemaCheck{{schema: schemas.Match, value: result}}, func(p *observability.Printer) {
		if matchCompany != "" {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s at %s\n", title, matchCompany)
		}
		p.PrintMatch(&out.MatchResult)
	})
}

func loadJobDescription(cmd *cobra.Command, timeout time.Duration) (string, error) {
	switch {
	case matchJobText != "":
		return matchJobText, nil
	case matchJobURL != "":
		opts := fetch.DefaultOptions()
		opts.Timeout = timeout
		doc, err := ingestion.IngestFromURL(cmd.Context(), fetch.NewCachedFetcher(opts, 0), matchJobURL)
		if err != nil {
			return "", err
		}
		return doc.Text, nil
	default:
		doc, err := readDocument(matchJob, cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return doc.Text, nil
	}
}
