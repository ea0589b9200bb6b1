package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                       sync.Once
	metricsRouter              *chi.Mux
	chainClientLatency         *prometheus.HistogramVec
	stakingOpDuration          *prometheus.HistogramVec
	queuePublishErrorCounter   prometheus.Counter
	pollerDurationHistogram    *prometheus.HistogramVec
	maturedUnbondingGauge      prometheus.Gauge
	votingPowerFallbackCounter prometheus.Counter
	dbLatency                  *prometheus.HistogramVec
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	// Start the server in a separate goroutine
	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	chainClientLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chain_client_latency_seconds",
			Help:    "Histogram of chain client call durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	stakingOpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "staking_op_duration_seconds",
			Help:    "Staking operation duration in seconds, including confirmation wait.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"op", "status"},
	)

	queuePublishErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "queue_publish_error_count",
			Help: "The total number of errors when publishing staking events to the queue",
		},
	)

	pollerDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poller_duration_seconds",
			Help:    "Histogram of poller durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"type", "status"},
	)

	maturedUnbondingGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "matured_unbonding_requests_count",
			Help: "Number of unbonding requests past their release time",
		},
	)

	votingPowerFallbackCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "voting_power_fallback_count",
			Help: "Number of times the reserved voting power query fell back or degraded",
		},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "db_latency_seconds",
			Help: "DB latency in seconds splitted by method and execution status",
		},
		[]string{"method", "status"},
	)

	prometheus.MustRegister(
		chainClientLatency,
		stakingOpDuration,
		queuePublishErrorCounter,
		pollerDurationHistogram,
		maturedUnbondingGauge,
		votingPowerFallbackCounter,
		dbLatency,
	)
}

func RecordChainClientLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	chainClientLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordStakingOpDuration(d time.Duration, op string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	stakingOpDuration.WithLabelValues(op, status.String()).Observe(d.Seconds())
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	dbLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordMaturedUnbondingCount(count int) {
	maturedUnbondingGauge.Set(float64(count))
}

func IncVotingPowerFallback() {
	votingPowerFallbackCounter.Inc()
}

func RecordQueuePublishError() {
	queuePublishErrorCounter.Inc()
}
