package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBeginningOfDay(t *testing.T) {
	loc := time.UTC
	ts := time.Date(2025, 6, 15, 14, 30, 45, 123, loc)

	got := BeginningOfDay(ts)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, loc), got)
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)
	end := time.Date(2025, 6, 18, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, 3, DaysBetween(start, end))
	assert.Equal(t, 0, DaysBetween(start, start))
}
