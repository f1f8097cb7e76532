package main

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/jonathan/resume-insights/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON document against a schema",
	Long: `Validates a JSON file against one of the embedded schemas (profile, analysis, match)
or against a JSON Schema file on disk. Exits non-zero when validation fails.`,
	RunE: runValidate,
}

var (
	validateSchema string
	validateJSON   string
)

func init() {
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Embedded schema name or path to a JSON Schema file (required)")
	validateCmd.Flags().StringVarP(&validateJSON, "json", "j", "", "Path to JSON file (required); - reads stdin with an embedded schema")

	if err := validateCmd.MarkFlagRequired("schema"); err != nil {
		panic(fmt.Sprintf("failed to mark schema flag as required: %v", err))
	}
	if err := validateCmd.MarkFlagRequired("json"); err != nil {
		panic(fmt.Sprintf("failed to mark json flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	var err error
	if slices.Contains(schemas.Names(), validateSchema) {
		var data []byte
		data, err = readFile(validateJSON, cmd.InOrStdin())
		if err != nil {
			return err
		}
		err = schemas.ValidateBytes(validateSchema, data)
	} else {
		if _, statErr := os.Stat(validateSchema); statErr != nil {
			return fmt.Errorf("unknown schema %q: use one of %v or a schema file path", validateSchema, schemas.Names())
		}
		err = schemas.ValidateJSON(validateSchema, validateJSON)
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Validation failed:")
		for _, fieldErr := range validationErr.Errors {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", fieldErr.Field, fieldErr.Message)
		}
		return fmt.Errorf("validation failed with %d error(s)", len(validationErr.Errors))
	}
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Validation passed")
	return nil
}
