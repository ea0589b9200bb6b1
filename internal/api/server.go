package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/evermarks/emark-staking-service/internal/config"
	"github.com/evermarks/emark-staking-service/internal/services"
)

const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 60 * time.Second
	idleTimeout     = 120 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Server exposes the staking operations over HTTP.
type Server struct {
	cfg     *config.APIConfig
	service *services.Service
	httpSrv *http.Server
}

func New(cfg *config.APIConfig, service *services.Service) *Server {
	s := &Server{
		cfg:     cfg,
		service: service,
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	router.Get("/healthcheck", s.handleHealthcheck)
	router.Route("/v1", func(r chi.Router) {
		r.Post("/stake", s.handleStake)
		r.Post("/unstake", s.handleRequestUnstake)
		r.Post("/withdraw", s.handleCompleteUnstake)
		r.Post("/cancel-unbonding", s.handleCancelUnbonding)
		r.Post("/validate", s.handleValidate)
		r.Get("/summary", s.handleSummary)
		r.Get("/snapshot", s.handleSnapshot)
		r.Get("/history", s.handleHistory)
	})

	s.httpSrv = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return s
}

// Start blocks serving HTTP until the context is cancelled, then shuts the
// server down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.httpSrv.Addr).Msg("starting API server")
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("API server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.httpSrv.Shutdown(shutdownCtx)
}
