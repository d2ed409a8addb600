package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(m int) *Clock {
	c := Clock(m)
	return &c
}

func TestBuildSchedules_DirectEvents(t *testing.T) {
	cfg := &Config{
		Stations: []StationConfig{
			{
				Name:   "Central",
				Labels: map[string]string{"region": "north"},
				Events: []EventConfig{
					{Name: "A", Arrive: 900, Depart: 910},
					{Name: "B", Arrive: 940, Depart: 1200},
					{Name: "C", Arrive: 950, Depart: 1120},
					{Name: "D", Arrive: 1100, Depart: 1130},
					{Name: "E", Arrive: 1500, Depart: 1900},
					{Name: "F", Arrive: 1800, Depart: 2000, Labels: map[string]string{"late": "yes"}},
				},
			},
		},
	}

	schedules, err := BuildSchedules(cfg)
	require.NoError(t, err)
	require.Len(t, schedules, 1)

	s := schedules[0]
	assert.Equal(t, "Central", s.Name())
	assert.Equal(t, "north", s.Labels()["region"])
	assert.Equal(t, 6, s.Len())
	assert.Equal(t, 3, s.MinPlatforms())
	assert.Equal(t, "yes", s.Events()[5].Labels()["late"])
}

func TestBuildSchedules_Services(t *testing.T) {
	cfg := &Config{
		Stations: []StationConfig{
			{
				Name: "Harbour",
				Events: []EventConfig{
					{Name: "Cargo", Arrive: 360, Depart: 500},
				},
				Services: []ServiceConfig{
					{
						Name:   "Shuttle",
						First:  360,
						Last:   clock(480),
						Every:  Duration(30 * time.Minute),
						Dwell:  Duration(5 * time.Minute),
						Labels: map[string]string{"operator": "metro"},
					},
				},
			},
		},
	}

	schedules, err := BuildSchedules(cfg)
	require.NoError(t, err)

	events := schedules[0].Events()
	require.Len(t, events, 6)
	assert.Equal(t, "Cargo", events[0].Name())
	assert.Equal(t, "Shuttle 06:00", events[1].Name())
	assert.Equal(t, 365, events[1].Departure())
	assert.Equal(t, "metro", events[1].Labels()["operator"])
	assert.Equal(t, "Shuttle", events[1].Labels()["service"])

	// cargo overlaps every shuttle, shuttles never overlap each other
	assert.Equal(t, 2, schedules[0].MinPlatforms())
}

func TestBuildSchedules_NameCollision(t *testing.T) {
	cfg := &Config{
		Stations: []StationConfig{
			{
				Name: "Central",
				Events: []EventConfig{
					{Name: "Bus 06:00", Arrive: 360, Depart: 365},
				},
				Services: []ServiceConfig{
					{Name: "Bus", First: 360, Every: Duration(10 * time.Minute)},
				},
			},
		},
	}

	_, err := BuildSchedules(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "station (Central)")
	assert.Contains(t, err.Error(), `duplicate event name: "Bus 06:00"`)
}

func TestBuildSchedules_FromParsedYAML(t *testing.T) {
	yaml := `
stations:
  - name: A
    events:
      - name: one
        arrive: "01:40"
        depart: "03:20"
      - name: two
        arrive: "03:20"
        depart: "05:00"
  - name: B
`
	cfg, err := Parse([]byte(yaml))
	require.NoError(t, err)

	schedules, err := BuildSchedules(cfg)
	require.NoError(t, err)
	require.Len(t, schedules, 2)

	assert.Equal(t, 2, schedules[0].MinPlatforms())
	assert.Equal(t, 0, schedules[1].MinPlatforms())
}

func TestMapToKeyValuePairs(t *testing.T) {
	got := mapToKeyValuePairs(map[string]string{"b": "2", "a": "1"})
	assert.Equal(t, []string{"a", "1", "b", "2"}, got)
}
