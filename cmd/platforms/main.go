// Package main is the entry point for the platforms CLI.
//
// platforms can be used either as a library (SDK) or as a standalone binary
// reading YAML timetables. This CLI provides the standalone binary approach.
//
// Usage:
//
//	platforms count --arrivals 900,940 --departures 910,1200
//	platforms plan -c timetable.yaml      # Plan every station
//	platforms validate -c timetable.yaml  # Validate a timetable
//	platforms version                     # Show version info
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const defaultEnvFile = ".env"

// newRootCmd builds the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "platforms",
		Short: "Work out how many platforms a timetable needs",
		Long: `platforms computes the minimum number of platforms a station needs so
that no two overlapping arrivals share one.

A platform is occupied up to and including the departure time, so an
arrival at the same minute as a departure needs another platform.

Quick start:
  platforms count --arrivals 900,940,950 --departures 910,1200,1120
  platforms plan -c timetable.yaml

Example timetable:
  stations:
    - name: Central
      events:
        - name: IC 101
          arrive: "09:00"
          depart: "09:10"`,
		SilenceUsage:      true,
		PersistentPreRunE: loadEnvFile,
		// No Run/RunE means this just shows help when called without subcommands
	}

	root.PersistentFlags().String("env-file", defaultEnvFile, "dotenv file loaded before reading timetables")
	root.PersistentFlags().BoolP("verbose", "v", false, "log per-station results")

	root.AddCommand(
		newCountCmd(),
		newPlanCmd(),
		newValidateCmd(),
		newVersionCmd(),
	)
	return root
}

// loadEnvFile loads the dotenv file named by --env-file.
// A missing default file is ignored; a missing explicit file is an error.
func loadEnvFile(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("env-file")
	if path == "" {
		return nil
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("env-file") {
		return nil
	}
	return fmt.Errorf("failed to load env file %s: %w", path, err)
}

// newLogger creates a JSON logger for CLI use.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))
}

// newVersionCmd prints version information.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, and build date of this platforms binary.`,
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd.OutOrStdout())
		},
	}
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "platforms %s\n", version)
	fmt.Fprintf(w, "  commit: %s\n", commit)
	fmt.Fprintf(w, "  built:  %s\n", date)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra already prints the error
		os.Exit(1)
	}
}
