package poller

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Poller runs its body on a fixed interval until the context is cancelled
// or Stop is called. Errors from the body are logged, not propagated, so a
// single failed run never kills the loop.
type Poller struct {
	name     string
	interval time.Duration
	body     func(ctx context.Context) error
	quit     chan struct{}
}

func New(name string, interval time.Duration, body func(ctx context.Context) error) *Poller {
	return &Poller{
		name:     name,
		interval: interval,
		body:     body,
		quit:     make(chan struct{}),
	}
}

func (p *Poller) Start(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	log.Info().Str("poller", p.name).Msgf("Starting poller with interval %s", p.interval)

	for {
		select {
		case <-ticker.C:
			if err := p.body(ctx); err != nil {
				log.Error().Err(err).Str("poller", p.name).Msg("Poller run failed")
			}
		case <-ctx.Done():
			log.Info().Str("poller", p.name).Msg("Poller stopped, context cancelled")
			return
		case <-p.quit:
			log.Info().Str("poller", p.name).Msg("Poller stopped")
			return
		}
	}
}

func (p *Poller) Stop() {
	close(p.quit)
}
