package platforms

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecurringEvents_Expands(t *testing.T) {
	events, err := NewRecurringEvents("Shuttle",
		WithFirstArrival(360),
		WithLastArrival(480),
		WithHeadway(30),
		WithDwell(5),
	)
	require.NoError(t, err)
	require.Len(t, events, 5)

	wantNames := []string{"Shuttle 06:00", "Shuttle 06:30", "Shuttle 07:00", "Shuttle 07:30", "Shuttle 08:00"}
	for i, ev := range events {
		assert.Equal(t, wantNames[i], ev.Name())
		assert.Equal(t, 360+30*i, ev.Arrival())
		assert.Equal(t, ev.Arrival()+5, ev.Departure())
		assert.Equal(t, "Shuttle", ev.Labels()["service"])
	}
}

func TestNewRecurringEvents_LastNotOnHeadway(t *testing.T) {
	events, err := NewRecurringEvents("Bus",
		WithFirstArrival(0),
		WithLastArrival(25),
		WithHeadway(10),
	)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, 20, events[2].Arrival())
}

func TestNewRecurringEvents_DefaultsToSingleEvent(t *testing.T) {
	events, err := NewRecurringEvents("Once", WithFirstArrival(600), WithHeadway(15))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 600, events[0].Arrival())
	assert.Equal(t, 600, events[0].Departure())
}

func TestNewRecurringEvents_StaticLabelsOverride(t *testing.T) {
	events, err := NewRecurringEvents("Shuttle",
		WithHeadway(10),
		WithRecurringLabels("service", "airport", "operator", "metro"),
	)
	require.NoError(t, err)
	require.Len(t, events, 1)

	labels := events[0].Labels()
	assert.Equal(t, "airport", labels["service"])
	assert.Equal(t, "metro", labels["operator"])
}

func TestNewRecurringEvents_Errors(t *testing.T) {
	tests := []struct {
		name        string
		baseName    string
		opts        []RecurringOption
		wantErrLike string
	}{
		{
			name:        "empty base name",
			baseName:    " ",
			opts:        []RecurringOption{WithHeadway(10)},
			wantErrLike: "base name cannot be empty",
		},
		{
			name:        "missing headway",
			baseName:    "Bus",
			wantErrLike: "headway required",
		},
		{
			name:        "zero headway",
			baseName:    "Bus",
			opts:        []RecurringOption{WithHeadway(0)},
			wantErrLike: "headway must be positive",
		},
		{
			name:        "negative dwell",
			baseName:    "Bus",
			opts:        []RecurringOption{WithHeadway(10), WithDwell(-1)},
			wantErrLike: "dwell cannot be negative",
		},
		{
			name:        "last before first",
			baseName:    "Bus",
			opts:        []RecurringOption{WithHeadway(10), WithFirstArrival(600), WithLastArrival(500)},
			wantErrLike: "last arrival 08:20 is before first arrival 10:00",
		},
		{
			name:        "too many events",
			baseName:    "Bus",
			opts:        []RecurringOption{WithHeadway(1), WithLastArrival(maxRecurringEvents)},
			wantErrLike: "exceeds the limit of 10000 events",
		},
		{
			name:        "span wider than int",
			baseName:    "Bus",
			opts:        []RecurringOption{WithHeadway(1), WithFirstArrival(math.MinInt), WithLastArrival(math.MaxInt - 1)},
			wantErrLike: "exceeds the limit",
		},
		{
			name:        "span equal to full int range",
			baseName:    "Bus",
			opts:        []RecurringOption{WithHeadway(1), WithFirstArrival(math.MinInt), WithLastArrival(math.MaxInt)},
			wantErrLike: "exceeds the limit",
		},
		{
			name:        "odd labels",
			baseName:    "Bus",
			opts:        []RecurringOption{WithHeadway(10), WithRecurringLabels("a")},
			wantErrLike: "even number of arguments",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRecurringEvents(tt.baseName, tt.opts...)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Contains(t, err.Error(), tt.wantErrLike)
		})
	}
}

func TestCountRecurring(t *testing.T) {
	tests := []struct {
		name                 string
		first, last, headway int
		want                 int
	}{
		{name: "single", first: 600, last: 600, headway: 15, want: 1},
		{name: "on headway", first: 360, last: 480, headway: 30, want: 5},
		{name: "last off headway", first: 360, last: 470, headway: 30, want: 4},
		{name: "at limit", first: 0, last: maxRecurringEvents - 1, headway: 1, want: maxRecurringEvents},
		{name: "huge headway", first: math.MinInt, last: math.MaxInt, headway: math.MaxInt, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CountRecurring(tt.first, tt.last, tt.headway)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
