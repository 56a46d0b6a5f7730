package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateID(t *testing.T) {
	id := GenerateID("CLM")

	assert.True(t, strings.HasPrefix(id, "CLM_"), "ID should start with prefix: %s", id)
	assert.NoError(t, ValidateID(id, "CLM"))

	other := GenerateID("CLM")
	assert.NotEqual(t, id, other, "Generated IDs should be unique")
}

func TestValidateID(t *testing.T) {
	assert.NoError(t, ValidateID("POL_123_abc", "POL"))
	assert.Error(t, ValidateID("POL", "POL"), "Bare prefix should fail")
	assert.Error(t, ValidateID("CLM_123_abc", "POL"), "Wrong prefix should fail")
}

func TestParseTimeRoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	formatted := FormatTime(now)

	parsed, err := ParseTime(formatted)
	assert.NoError(t, err)
	assert.True(t, now.Equal(parsed), "Formatted time should parse back to the same instant")

	_, err = ParseTime("not-a-time")
	assert.Error(t, err)
}

func TestIsValidTimeRange(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	assert.NoError(t, IsValidTimeRange(start, end))
	assert.Error(t, IsValidTimeRange(end, start), "Reversed range should fail")
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysBetween(start, start))
	assert.Equal(t, 30, DaysBetween(start, start.AddDate(0, 0, 30)))
	assert.Equal(t, 365, DaysBetween(start, start.AddDate(1, 0, 0)))
}

func TestIsFutureDate(t *testing.T) {
	assert.False(t, IsFutureDate(time.Now()), "Today is not a future date")
	assert.False(t, IsFutureDate(time.Now().AddDate(0, 0, -1)))
	assert.True(t, IsFutureDate(time.Now().AddDate(0, 0, 1)))
}
