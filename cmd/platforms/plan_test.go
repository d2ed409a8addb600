package main

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const planTimetable = `
title: Test network
max_concurrency: 2
stations:
  - name: Central
    labels:
      region: north
    events:
      - name: A
        arrive: "09:00"
        depart: "09:10"
      - name: B
        arrive: "09:40"
        depart: "12:00"
      - name: C
        arrive: "09:50"
        depart: "11:20"
      - name: D
        arrive: "11:00"
        depart: "11:30"
  - name: Harbour
    services:
      - name: Ferry
        first: "10:00"
        last: "10:30"
        every: 15m
        dwell: 15m
  - name: Ghost
`

func TestRunPlan_JSON(t *testing.T) {
	path := writeFile(t, "timetable.yaml", planTimetable)

	out, _, err := executeCmd(t, "plan", "-c", path, "--output", "json")
	require.NoError(t, err)

	var report planReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	assert.Equal(t, "Test network", report.Title)
	require.Len(t, report.Stations, 3)

	central := report.Stations[0]
	assert.Equal(t, "Central", central.Station)
	assert.Equal(t, 4, central.Events)
	assert.Equal(t, 3, central.Platforms)
	assert.Equal(t, "11:00", central.PeakAt)
	assert.Equal(t, "north", central.Labels["region"])
	assert.Empty(t, central.Assignments)

	// ferries touch at every quarter hour, so each arrival needs a second platform
	harbour := report.Stations[1]
	assert.Equal(t, 3, harbour.Events)
	assert.Equal(t, 2, harbour.Platforms)

	ghost := report.Stations[2]
	assert.Equal(t, 0, ghost.Platforms)
	assert.Empty(t, ghost.PeakAt)
}

func TestRunPlan_AssignYAML(t *testing.T) {
	path := writeFile(t, "timetable.yaml", planTimetable)

	out, _, err := executeCmd(t, "plan", "-c", path, "--assign", "-o", "yaml")
	require.NoError(t, err)

	var report planReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	require.Len(t, report.Stations, 3)

	got := make(map[string]int)
	for _, a := range report.Stations[0].Assignments {
		got[a.Event] = a.Platform
	}
	assert.Equal(t, map[string]int{"A": 1, "B": 1, "C": 2, "D": 3}, got)

	ferries := report.Stations[1].Assignments
	require.Len(t, ferries, 3)
	assert.Equal(t, "Ferry 10:00", ferries[0].Event)
	assert.Equal(t, "10:00", ferries[0].Arrive)
	assert.Equal(t, "10:15", ferries[0].Depart)
	assert.Equal(t, []int{1, 2, 1}, []int{ferries[0].Platform, ferries[1].Platform, ferries[2].Platform})
}

func TestRunPlan_Text(t *testing.T) {
	path := writeFile(t, "timetable.yaml", planTimetable)

	out, _, err := executeCmd(t, "plan", "-c", path, "--assign")
	require.NoError(t, err)

	for _, phrase := range []string{
		"Test network",
		"STATION", "PLATFORMS", "PEAK AT",
		"Central", "Harbour", "Ghost",
		"11:00",
		"Ferry 10:15",
	} {
		assert.Contains(t, out, phrase)
	}
}

func TestRunPlan_VerboseLogs(t *testing.T) {
	path := writeFile(t, "timetable.yaml", planTimetable)

	_, stderr, err := executeCmd(t, "plan", "-c", path, "-v", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"station planned"`)
	assert.Contains(t, stderr, `"station":"Central"`)
}

func TestRunPlan_Errors(t *testing.T) {
	valid := writeFile(t, "timetable.yaml", planTimetable)
	invalid := writeFile(t, "invalid.yaml", "stations: []\n")

	tests := []struct {
		name        string
		args        []string
		wantErrLike string
	}{
		{
			name:        "missing config flag",
			args:        []string{"plan"},
			wantErrLike: `required flag(s) "config" not set`,
		},
		{
			name:        "invalid timetable",
			args:        []string{"plan", "-c", invalid},
			wantErrLike: "at least one station",
		},
		{
			name:        "unknown output",
			args:        []string{"plan", "-c", valid, "-o", "xml"},
			wantErrLike: `unknown output format "xml"`,
		},
		{
			name:        "missing explicit env file",
			args:        []string{"plan", "-c", valid, "--env-file", "/nonexistent/.env"},
			wantErrLike: "failed to load env file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCmd(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErrLike)
		})
	}
}

func TestRunPlan_EnvFile(t *testing.T) {
	t.Cleanup(func() { _ = os.Unsetenv("PLATFORMS_TEST_STATION") })

	envPath := writeFile(t, "test.env", "PLATFORMS_TEST_STATION=Riverside\n")
	configPath := writeFile(t, "timetable.yaml", `
stations:
  - name: ${PLATFORMS_TEST_STATION}
    events:
      - name: A
        arrive: 1
        depart: 2
`)

	out, _, err := executeCmd(t, "plan", "-c", configPath, "--env-file", envPath, "-o", "json")
	require.NoError(t, err)

	var report planReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Stations, 1)
	assert.Equal(t, "Riverside", report.Stations[0].Station)
}
