package main

import (
	"errors"
	"strings"

	"github.com/jonathan/resume-insights/internal/observability"
	"github.com/jonathan/resume-insights/internal/types"
	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Get advisory rewrite suggestions for a resume section",
	Long: `Sends one resume section to the advisory model and prints improvement suggestions
with before/after examples. Requires ADVISORY_ENABLED and an API key.`,
	RunE: runSuggest,
}

var (
	suggestFile    string
	suggestContent string
	suggestSection string
)

func init() {
	suggestCmd.Flags().StringVar(&suggestFile, "file", "", "Path to a text file holding the section, or - for stdin")
	suggestCmd.Flags().StringVar(&suggestContent, "content", "", "Section text")
	suggestCmd.Flags().StringVarP(&suggestSection, "section", "s", types.SectionOverall, "Section: summary, experience, skills or overall")

	suggestCmd.MarkFlagsMutuallyExclusive("file", "content")
	suggestCmd.MarkFlagsOneRequired("file", "content")

	rootCmd.AddCommand(suggestCmd)
}

type suggestOutput struct {
	Section     string                    `json:"section"`
	Suggestions *types.SectionSuggestions `json:"suggestions"`
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	content := suggestContent
	if suggestFile != "" {
		data, err := readFile(suggestFile, cmd.InOrStdin())
		if err != nil {
			return err
		}
		content = string(data)
	}

	req := types.SuggestionsRequest{Content: strings.TrimSpace(content), Section: suggestSection}
	if err := req.Validate(); err != nil {
		return err
	}

	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if !a.service.AdvisoryEnabled() {
		return errAdvisoryDisabled
	}

	out := suggestOutput{Section: req.SectionOrDefault()}
	suggestions, ok := a.service.Suggestions(cmd.Context(), req.Content, out.Section)
	if !ok {
		return errors.New("failed to generate suggestions: the advisory model gave no usable answer")
	}
	out.Suggestions = suggestions

	return emit(cmd, out, nil, func(p *observability.Printer) {
		p.PrintSuggestions(out.Section, out.Suggestions)
	})
}
