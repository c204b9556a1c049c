package validate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"librarygateway/internal/models"
)

func TestParseCalendarDate_Valid(t *testing.T) {
	tests := []struct {
		in   string
		want models.CalendarDate
	}{
		{"2025-01-15", models.CalendarDate{Year: 2025, Month: 1, Day: 15}},
		{"1965-12-31", models.CalendarDate{Year: 1965, Month: 12, Day: 31}},
		{"2025-1-5", models.CalendarDate{Year: 2025, Month: 1, Day: 5}},
		// Day-of-month length is deliberately not checked against the month.
		{"2025-02-30", models.CalendarDate{Year: 2025, Month: 2, Day: 30}},
		{"2024-04-31", models.CalendarDate{Year: 2024, Month: 4, Day: 31}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseCalendarDate(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCalendarDate_Invalid(t *testing.T) {
	tests := []string{
		"",
		"2025-13-01", // month out of range
		"2025-00-01",
		"2025-01-00",
		"2025-01-32", // day out of range
		"2025-01",    // too few segments
		"2025-01-02-03",
		"2025/01/02",
		"abcd-01-02",
		"2025-xx-02",
		"2025-01-yy",
		"not a date",
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, ok := ParseCalendarDate(in)
			assert.False(t, ok, "expected %q to be rejected", in)
		})
	}
}

func TestParseCalendarDate_CanonicalRoundTrip(t *testing.T) {
	d, ok := ParseCalendarDate("2025-07-04")
	require.True(t, ok)

	// Parsing the date's own canonical rendering yields the same value.
	again, ok := ParseCalendarDate(d.String())
	require.True(t, ok)
	assert.Equal(t, d, again)
}

func TestIsPositiveInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int64
		ok   bool
	}{
		{"json number", float64(7), 7, true},
		{"int", 42, 42, true},
		{"int64", int64(9), 9, true},
		{"numeric string", "13", 13, true},
		{"padded string", " 5 ", 5, true},
		{"json.Number", json.Number("21"), 21, true},
		{"zero", float64(0), 0, false},
		{"negative", float64(-3), 0, false},
		{"negative string", "-3", 0, false},
		{"fractional", 3.5, 0, false},
		{"garbage string", "abc", 0, false},
		{"empty string", "", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := IsPositiveInt(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNonNegativeInt(t *testing.T) {
	assert.Equal(t, 1965, NonNegativeInt(float64(1965)))
	assert.Equal(t, 3, NonNegativeInt("3"))
	assert.Equal(t, 0, NonNegativeInt(nil))
	assert.Equal(t, 0, NonNegativeInt("not a number"))
	assert.Equal(t, 0, NonNegativeInt(float64(-4)))
}

func TestRequiredString(t *testing.T) {
	assert.True(t, RequiredString("Dune"))
	assert.True(t, RequiredString("  x  "))
	assert.False(t, RequiredString(""))
	assert.False(t, RequiredString("   "))
	assert.False(t, RequiredString("\t\n"))
}
