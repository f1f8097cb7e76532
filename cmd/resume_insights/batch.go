package main

import (
	"fmt"
	"path/filepath"

	"github.com/jonathan/resume-insights/internal/observability"
	"github.com/jonathan/resume-insights/internal/schemas"
	"github.com/jonathan/resume-insights/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const defaultBatchConcurrency = 4

var batchCmd = &cobra.Command{
	Use:   "batch FILE...",
	Short: "Analyze several resumes concurrently",
	Long: `Analyzes each resume file for the same target role and reports the results in
input order. A file that cannot be read is reported with its error and does not
stop the rest of the batch.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

var (
	batchRole        string
	batchConcurrency int
)

func init() {
	batchCmd.Flags().StringVar(&batchRole, "role", "", "Target role key (defaults to config)")
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "c", defaultBatchConcurrency, "Maximum files analyzed at once")

	rootCmd.AddCommand(batchCmd)
}

// batchItem is one file's outcome; Error is set instead of the results when the file failed
type batchItem struct {
	File     string                `json:"file"`
	Profile  *types.Profile        `json:"profile,omitempty"`
	Analysis *types.AnalysisResult `json:"analysis,omitempty"`
	Error    string                `json:"error,omitempty"`
}

type batchOutput struct {
	TargetRole string      `json:"targetRole"`
	Succeeded  int         `json:"succeeded"`
	Failed     int         `json:"failed"`
	Results    []batchItem `json:"results"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	if batchConcurrency < 1 {
		return fmt.Errorf("--concurrency must be at least 1, got %d", batchConcurrency)
	}

	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	out := batchOutput{
		TargetRole: a.role(cmd, batchRole),
		Results:    make([]batchItem, len(args)),
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(batchConcurrency)
	for i, path := range args {
		g.Go(func() error {
			item := batchItem{File: path}
			doc, err := readDocument(path, cmd.InOrStdin())
			if err != nil {
				item.Error = err.Error()
			} else {
				profile := a.service.Extract(doc.Text)
				analysis := a.service.AnalyzeProfile(ctx, doc.Text, &profile, out.TargetRole)
				item.Profile = &profile
				item.Analysis = &analysis
			}
			out.Results[i] = item
			return nil
		})
	}
	_ = g.Wait()

	var checks []schemaCheck
	for _, item := range out.Results {
		if item.Error != "" {
			out.Failed++
			continue
		}
		out.Succeeded++
		checks = append(checks,
			schemaCheck{schema: schemas.Profile, value: item.Profile},
			schemaCheck{schema: schemas.Analysis, value: item.Analysis},
		)
	}

	if err := emit(cmd, out, checks, func(_ *observability.Printer) {
		printBatchSummary(cmd, out)
	}); err != nil {
		return err
	}
	if out.Succeeded == 0 {
		return fmt.Errorf("all %d file(s) failed", out.Failed)
	}
	return nil
}

func printBatchSummary(cmd *cobra.Command, out batchOutput) {
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "Batch analysis for %s: %d succeeded, %d failed\n\n", out.TargetRole, out.Succeeded, out.Failed)
	_, _ = fmt.Fprintf(w, "%-32s %8s %6s %6s  %s\n", "FILE", "OVERALL", "ATS", "SKILL", "NAME")
	for _, item := range out.Results {
		name := filepath.Base(item.File)
		if item.Error != "" {
			_, _ = fmt.Fprintf(w, "%-32s  error: %s\n", name, item.Error)
			continue
		}
		s := item.Analysis.Scores
		_, _ = fmt.Fprintf(w, "%-32s %8d %6d %6d  %s\n", name, s.ResumeScore, s.ATSScore, s.SkillMatch, item.Profile.Name)
	}
}
