package main

import (
	"fmt"

	"github.com/jpalmerr/platforms/config"
	"github.com/spf13/cobra"
)

// newValidateCmd validates a timetable without planning it.
func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a timetable file",
		Long: `Validate a platforms timetable without planning it.

This command parses the YAML, expands environment variables, validates all
fields and expands recurring services. It's useful for CI/CD pipelines or
pre-deployment checks.

Exit codes:
  0 - Timetable is valid
  1 - Timetable is invalid (error details printed to stderr)

Example:
  platforms validate -c timetable.yaml`,
		Args: cobra.NoArgs,
		RunE: runValidate,
	}

	cmd.Flags().StringP("config", "c", "", "path to timetable file (required)")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("invalid timetable: %w", err)
	}

	// building catches name collisions between events and expanded services
	if _, err := config.BuildSchedules(cfg); err != nil {
		return fmt.Errorf("invalid timetable: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Timetable is valid!\n")
	if cfg.Title != "" {
		fmt.Fprintf(out, "  Title:           %s\n", cfg.Title)
	}
	fmt.Fprintf(out, "  Stations:        %d\n", len(cfg.Stations))
	fmt.Fprintf(out, "  Events:          %d\n", cfg.EventCount())
	fmt.Fprintf(out, "  Max concurrency: %d\n", cfg.MaxConcurrency)

	return nil
}
