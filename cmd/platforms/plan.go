package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jpalmerr/platforms"
	"github.com/jpalmerr/platforms/config"
)

// planReport is the machine-readable form of a plan.
type planReport struct {
	Title    string          `json:"title,omitempty" yaml:"title,omitempty"`
	Stations []stationReport `json:"stations" yaml:"stations"`
}

type stationReport struct {
	Station     string             `json:"station" yaml:"station"`
	Labels      map[string]string  `json:"labels,omitempty" yaml:"labels,omitempty"`
	Events      int                `json:"events" yaml:"events"`
	Platforms   int                `json:"platforms" yaml:"platforms"`
	PeakAt      string             `json:"peak_at,omitempty" yaml:"peak_at,omitempty"`
	Error       string             `json:"error,omitempty" yaml:"error,omitempty"`
	Assignments []assignmentReport `json:"assignments,omitempty" yaml:"assignments,omitempty"`
}

type assignmentReport struct {
	Event    string `json:"event" yaml:"event"`
	Arrive   string `json:"arrive" yaml:"arrive"`
	Depart   string `json:"depart" yaml:"depart"`
	Platform int    `json:"platform" yaml:"platform"`
}

// newPlanCmd plans every station in a timetable.
func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan platforms for every station in a timetable",
		Long: `Load a timetable and compute, for every station, the minimum number of
platforms and when the peak is first reached.

With --assign, every event is also given a platform number.

Example:
  platforms plan -c timetable.yaml
  platforms plan -c timetable.yaml --assign --output json`,
		Args: cobra.NoArgs,
		RunE: runPlan,
	}

	cmd.Flags().StringP("config", "c", "", "path to timetable file (required)")
	cmd.Flags().StringP("output", "o", "text", "output format: text, json or yaml")
	cmd.Flags().Bool("assign", false, "assign a platform to every event")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func runPlan(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	switch output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q (expected text, json or yaml)", output)
	}
	assign, _ := cmd.Flags().GetBool("assign")

	logger := newLogger(cmd)

	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load timetable: %w", err)
	}

	schedules, err := config.BuildSchedules(cfg)
	if err != nil {
		return fmt.Errorf("failed to build schedules: %w", err)
	}

	network, err := platforms.New(
		platforms.WithSchedules(schedules...),
		platforms.WithMaxConcurrency(cfg.MaxConcurrency),
		platforms.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to create network: %w", err)
	}

	// cancel on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	results, err := network.Plan(ctx)
	if err != nil {
		return fmt.Errorf("planning interrupted: %w", err)
	}

	report := buildReport(cfg.Title, schedules, results, assign)

	out := cmd.OutOrStdout()
	switch output {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(report)
	default:
		renderText(out, report)
		return nil
	}
}

// buildReport joins network results with per-event assignments.
func buildReport(title string, schedules []platforms.Schedule, results []platforms.StationResult, assign bool) planReport {
	byName := make(map[string]platforms.Schedule, len(schedules))
	for _, s := range schedules {
		byName[s.Name()] = s
	}

	report := planReport{Title: title}
	for _, r := range results {
		sr := stationReport{
			Station:   r.Station,
			Labels:    r.Labels,
			Events:    r.Events,
			Platforms: r.Platforms,
		}
		if r.Events > 0 {
			sr.PeakAt = platforms.FormatClock(r.PeakAt)
		}
		if r.Err != nil {
			sr.Error = r.Err.Error()
		}

		if assign {
			for _, a := range byName[r.Station].Assign() {
				sr.Assignments = append(sr.Assignments, assignmentReport{
					Event:    a.Event.Name(),
					Arrive:   platforms.FormatClock(a.Event.Arrival()),
					Depart:   platforms.FormatClock(a.Event.Departure()),
					Platform: a.Platform,
				})
			}
		}
		report.Stations = append(report.Stations, sr)
	}
	return report
}

// renderText writes the report as terminal tables.
func renderText(w io.Writer, report planReport) {
	if report.Title != "" {
		fmt.Fprintln(w, report.Title)
	}

	summary := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("STATION", "EVENTS", "PLATFORMS", "PEAK AT")
	for _, s := range report.Stations {
		peak := s.PeakAt
		if s.Error != "" {
			peak = "error: " + s.Error
		}
		summary.Row(s.Station, fmt.Sprint(s.Events), fmt.Sprint(s.Platforms), peak)
	}
	fmt.Fprintln(w, summary.Render())

	for _, s := range report.Stations {
		if len(s.Assignments) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s\n", s.Station)

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("EVENT", "ARRIVE", "DEPART", "PLATFORM")
		for _, a := range s.Assignments {
			t.Row(a.Event, a.Arrive, a.Depart, fmt.Sprint(a.Platform))
		}
		fmt.Fprintln(w, strings.TrimRight(t.Render(), "\n"))
	}
}
