package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeUntilRelease(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		release  time.Time
		expected int64
	}{
		{"one hour left", now.Add(time.Hour), 3600},
		{"exactly at release", now, 0},
		{"past release clamps to zero", now.Add(-time.Hour), 0},
		{"one day and one hour", now.Add(25 * time.Hour), 90000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TimeUntilRelease(tc.release, now))
		})
	}
}

func TestFormatTimeRemaining(t *testing.T) {
	cases := []struct {
		seconds  int64
		expected string
	}{
		{0, "Ready to claim"},
		{-60, "Ready to claim"},
		{30, "1m"},
		{900, "15m"},
		{9900, "2h 45m"},
		{3600, "1h"},
		{86400, "1d"},
		{90000, "1d 1h"},
		{172800, "2d"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, FormatTimeRemaining(tc.seconds), "seconds=%d", tc.seconds)
	}
}

func TestFormatUnbondingPeriod(t *testing.T) {
	cases := []struct {
		seconds  int64
		expected string
	}{
		{86400, "1 day"},
		{90000, "1 day 1 hour"},
		{259200, "3 days"},
		{3600, "1 hour"},
		{5400, "1 hour 30 minutes"},
		{1800, "30 minutes"},
		{60, "1 minute"},
		{30, "30 seconds"},
		{0, "0 minutes"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, FormatUnbondingPeriod(tc.seconds), "seconds=%d", tc.seconds)
	}
}
