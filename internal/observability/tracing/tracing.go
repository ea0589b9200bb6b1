// Package tracing attaches request-scoped identifiers to the zerolog
// context so every log line emitted for one staking operation can be
// correlated.
package tracing

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// InjectTraceID returns a context whose logger tags every entry with a
// fresh trace id.
func InjectTraceID(ctx context.Context) context.Context {
	logger := log.With().Str("traceId", uuid.NewString()).Logger()
	return logger.WithContext(ctx)
}
