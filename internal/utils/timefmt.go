package utils

import (
	"fmt"
	"strings"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// TimeUntilRelease returns the whole seconds left until releaseTime, clamped
// at zero. It is non-increasing in now and exactly zero for any now at or
// past the release time.
func TimeUntilRelease(releaseTime, now time.Time) int64 {
	remaining := releaseTime.Unix() - now.Unix()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// FormatTimeRemaining renders a countdown with the largest two non-zero units
// among days, hours and minutes, e.g. "1d 1h", "2h 45m", "15m". Anything at
// or below zero renders as "Ready to claim". Sub-minute remainders round up
// to "1m" so the countdown never reads ready while time is left.
func FormatTimeRemaining(seconds int64) string {
	if seconds <= 0 {
		return "Ready to claim"
	}

	days := seconds / secondsPerDay
	hours := (seconds % secondsPerDay) / secondsPerHour
	minutes := (seconds % secondsPerHour) / secondsPerMinute

	if days == 0 && hours == 0 && minutes == 0 {
		return "1m"
	}

	parts := make([]string, 0, 2)
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 && len(parts) < 2 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 && len(parts) < 2 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}

	return strings.Join(parts, " ")
}

// FormatUnbondingPeriod renders a static protocol duration with at most two
// units and correct pluralization: "1 day", "3 days", "1 day 1 hour",
// "30 minutes". Unit boundaries are exact, 86400 seconds is "1 day" with no
// zero-hour tail.
func FormatUnbondingPeriod(seconds int64) string {
	if seconds <= 0 {
		return "0 minutes"
	}

	days := seconds / secondsPerDay
	hours := (seconds % secondsPerDay) / secondsPerHour
	minutes := (seconds % secondsPerHour) / secondsPerMinute

	parts := make([]string, 0, 2)
	if days > 0 {
		parts = append(parts, pluralize(days, "day"))
		if hours > 0 {
			parts = append(parts, pluralize(hours, "hour"))
		}
		return strings.Join(parts, " ")
	}
	if hours > 0 {
		parts = append(parts, pluralize(hours, "hour"))
		if minutes > 0 {
			parts = append(parts, pluralize(minutes, "minute"))
		}
		return strings.Join(parts, " ")
	}
	if minutes > 0 {
		return pluralize(minutes, "minute")
	}
	return pluralize(seconds, "second")
}

func pluralize(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
