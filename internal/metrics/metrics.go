package metrics

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	initOnce    sync.Once
	serverMutex sync.Mutex
	currentSrv  *http.Server

	// FilesRemovedTotal tracks total files removed across all sweeps
	FilesRemovedTotal prometheus.Counter

	// BytesFreedTotal tracks total bytes freed across all sweeps
	BytesFreedTotal prometheus.Counter

	// SkipsTotal tracks files skipped due to validation or deletion failures
	SkipsTotal prometheus.Counter

	// SweepDuration tracks how long sweep passes take
	SweepDuration prometheus.Histogram

	// LastRunTimestamp records Unix timestamp of the last sweep
	LastRunTimestamp prometheus.Gauge
)

// Init initializes and registers all metrics with Prometheus
// This function is safe to call multiple times (uses sync.Once)
func Init() {
	initOnce.Do(func() {
		FilesRemovedTotal = NewCounter(
			"logsweep_files_removed_total",
			"Total number of files removed by logsweep.",
		)
		BytesFreedTotal = NewCounter(
			"logsweep_bytes_freed_total",
			"Total bytes freed by logsweep.",
		)
		SkipsTotal = NewCounter(
			"logsweep_skips_total",
			"Total files skipped due to validation or deletion failures.",
		)
		SweepDuration = NewDurationHistogram(
			"logsweep_sweep_duration_seconds",
			"Duration of sweep passes in seconds.",
		)
		LastRunTimestamp = NewGauge(
			"logsweep_last_run_timestamp",
			"Timestamp of the last sweep (Unix epoch seconds).",
		)

		prometheus.MustRegister(
			FilesRemovedTotal,
			BytesFreedTotal,
			SkipsTotal,
			SweepDuration,
			LastRunTimestamp,
		)

		// Zero values so the series appear in /metrics before the first sweep
		LastRunTimestamp.Set(0)
	})
}

// RecordSweep marks the start of a sweep pass.
func RecordSweep() {
	LastRunTimestamp.Set(float64(time.Now().Unix()))
}

// StartServer starts the metrics HTTP server on the specified address
// Exposes /metrics (Prometheus) and /health. Used in watch mode only.
func StartServer(addr string, logger *log.Logger) {
	serverMutex.Lock()
	defer serverMutex.Unlock()

	if currentSrv != nil {
		logger.Printf("metrics server already running on %s", currentSrv.Addr)
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})

	currentSrv = &http.Server{Addr: addr, Handler: mux}

	go func() {
		if err := currentSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Printf("metrics server error: %v", err)
		}
	}()
}
