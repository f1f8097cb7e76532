package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jonathan/resume-insights/internal/analysis"
	"github.com/jonathan/resume-insights/internal/config"
	"github.com/jonathan/resume-insights/internal/ingestion"
	"github.com/jonathan/resume-insights/internal/llm"
	"github.com/jonathan/resume-insights/internal/observability"
	"github.com/jonathan/resume-insights/internal/schemas"
	"github.com/jonathan/resume-insights/internal/vocabulary"
	"github.com/spf13/cobra"
)

// stdinName is the document name used when a path of "-" reads from stdin
const stdinName = "stdin.txt"

// app bundles the effective configuration and the analysis service for one command run
type app struct {
	cfg     *config.Config
	service *analysis.Service
	client  llm.Client
}

// setup loads configuration and wires the analysis service. Callers must Close the app.
func setup(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}
	if cfg.Verbose {
		log.SetOutput(cmd.ErrOrStderr())
	} else {
		log.SetOutput(io.Discard)
	}

	var vocab *vocabulary.Tables
	if cfg.VocabularyFile != "" {
		vocab, err = vocabulary.LoadFile(cfg.VocabularyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load vocabulary: %w", err)
		}
	}

	client, err := llm.NewClient(cmd.Context(), cfg.LLMConfig(), cfg.APIKey())
	if err != nil {
		return nil, fmt.Errorf("failed to create advisory client: %w", err)
	}

	return &app{cfg: cfg, service: analysis.NewService(vocab, client), client: client}, nil
}

// Close releases the advisory client
func (a *app) Close() {
	_ = a.client.Close()
}

// role returns the --role flag when set, else the configured default
func (a *app) role(cmd *cobra.Command, flagValue string) string {
	if cmd.Flags().Changed("role") && flagValue != "" {
		return flagValue
	}
	return a.cfg.Role
}

// level returns the --level flag when set, else the configured default
func (a *app) level(cmd *cobra.Command, flagValue string) string {
	if cmd.Flags().Changed("level") && flagValue != "" {
		return flagValue
	}
	return a.cfg.ExperienceLevel
}

// readDocument decodes a txt, pdf, docx or html file, or plain text from in when path is "-"
func readDocument(path string, in io.Reader) (*ingestion.Document, error) {
	if path != "-" {
		return ingestion.IngestFromFile(path)
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return ingestion.Decode(stdinName, "text/plain", data)
}

// schemaCheck pairs a value with the embedded schema it must satisfy
type schemaCheck struct {
	schema string
	value  any
}

// emit validates the checks when --validate is set, then writes value as JSON
// or hands a report printer to text
func emit(cmd *cobra.Command, value any, checks []schemaCheck, text func(p *observability.Printer)) error {
	if validateOutput {
		for _, check := range checks {
			if err := schemas.Validate(check.schema, check.value); err != nil {
				return fmt.Errorf("output failed %s schema validation: %w", check.schema, err)
			}
		}
	}

	if outputFormat == formatJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	}

	text(observability.NewPrinter(cmd.OutOrStdout()))
	return nil
}

// warnf prints a user-facing warning to stderr
func warnf(cmd *cobra.Command, format string, args ...any) {
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: "+format+"\n", args...)
}

// readFile reads a whole file, or stdin for "-"
func readFile(path string, in io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(in)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
