package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunValidate_ValidConfig(t *testing.T) {
	path := writeFile(t, "timetable.yaml", planTimetable)

	out, _, err := executeCmd(t, "validate", "-c", path)
	require.NoError(t, err)

	for _, phrase := range []string{
		"Timetable is valid!",
		"Title:           Test network",
		"Stations:        3",
		"Events:          7",
		"Max concurrency: 2",
	} {
		assert.Contains(t, out, phrase)
	}
}

func TestRunValidate_InvalidConfig(t *testing.T) {
	path := writeFile(t, "invalid.yaml", `
stations:
  - name: Central
    events:
      - name: Late
        arrive: "10:00"
        depart: "09:00"
`)

	_, _, err := executeCmd(t, "validate", "-c", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid timetable")
	assert.Contains(t, err.Error(), "depart 09:00 is before arrive 10:00")
}

func TestRunValidate_ServiceSpanTooWide(t *testing.T) {
	path := writeFile(t, "wide.yaml", `
stations:
  - name: Central
    services:
      - name: Bus
        first: -9223372036854775808
        last: 9223372036854775806
        every: 1m
`)

	_, _, err := executeCmd(t, "validate", "-c", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds the limit")
}

func TestRunValidate_NameCollision(t *testing.T) {
	path := writeFile(t, "collision.yaml", `
stations:
  - name: Central
    events:
      - name: Bus 06:00
        arrive: "06:00"
        depart: "06:05"
    services:
      - name: Bus
        first: "06:00"
        every: 10m
`)

	_, _, err := executeCmd(t, "validate", "-c", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate event name")
}

func TestRunValidate_MissingFile(t *testing.T) {
	_, _, err := executeCmd(t, "validate", "-c", "/nonexistent/timetable.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestVersionCmd(t *testing.T) {
	out, _, err := executeCmd(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "platforms dev")
	assert.Contains(t, out, "commit: none")
}
