package metrics

import (
	"context"
	"time"
)

type pollerFunc = func(ctx context.Context) error

// RecordPollerDuration wraps a poller body so each run reports its duration
// and outcome under the given poller name.
func RecordPollerDuration(name string, f pollerFunc) pollerFunc {
	return func(ctx context.Context) error {
		start := time.Now()
		err := f(ctx)

		outcome := Success
		if err != nil {
			outcome = Error
		}
		pollerDurationHistogram.WithLabelValues(name, outcome.String()).Observe(time.Since(start).Seconds())

		return err
	}
}
