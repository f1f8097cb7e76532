package main

import (
	"github.com/jonathan/resume-insights/internal/observability"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the advisory model is enabled and configured",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := setup(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		status := a.service.Status()
		return emit(cmd, status, nil, func(p *observability.Printer) {
			p.PrintStatus(status)
		})
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
