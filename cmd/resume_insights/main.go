// Package main provides the resume_insights command line tool and HTTP API server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var rootCmd = &cobra.Command{
	Use:   "resume_insights",
	Short: "Resume analysis and job matching",
	Long: `Resume Insights extracts a structured profile from a resume, scores it for a target role,
matches it against job descriptions, and optionally asks an advisory model for deeper feedback.

Configuration is read from an optional JSON file (--config), then environment variables
(.env is loaded automatically), then command-line flags.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: checkGlobalFlags,
}

var (
	configPath     string
	outputFormat   string
	validateOutput bool
	verbose        bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json file (values can be overridden by env and flags)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", formatText, "Output format: text or json")
	rootCmd.PersistentFlags().BoolVar(&validateOutput, "validate", false, "Validate results against the embedded JSON schemas before printing")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print diagnostic logs to stderr")
}

func checkGlobalFlags(_ *cobra.Command, _ []string) error {
	if outputFormat != formatText && outputFormat != formatJSON {
		return fmt.Errorf("unknown --format %q: use text or json", outputFormat)
	}
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
