package sweep

import (
	"fmt"
	"io"
	"log"
	"os"

	"logsweep/internal/fsops"
	"logsweep/internal/history"
	"logsweep/internal/metrics"
	"logsweep/internal/safety"
	"logsweep/internal/scan"

	"github.com/prometheus/client_golang/prometheus"
)

// Logger interface for structured logging in sweep
type Logger interface {
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// stdLogger wraps standard log.Logger to implement Logger interface
type stdLogger struct {
	*log.Logger
}

func (l *stdLogger) Info(msg string, args ...interface{}) {
	l.logWithLevel("INFO", msg, args...)
}

func (l *stdLogger) Warn(msg string, args ...interface{}) {
	l.logWithLevel("WARN", msg, args...)
}

func (l *stdLogger) Error(msg string, args ...interface{}) {
	l.logWithLevel("ERROR", msg, args...)
}

func (l *stdLogger) logWithLevel(level, msg string, args ...interface{}) {
	var parts []interface{}
	parts = append(parts, fmt.Sprintf("[%s]", level), msg)
	parts = append(parts, args...)
	l.Logger.Println(parts...)
}

// Metrics interface for sweep metrics
type Metrics interface {
	FilesRemovedTotal() prometheus.Counter
	BytesFreedTotal() prometheus.Counter
	SkipsTotal() prometheus.Counter
}

// sweepMetrics wraps global metrics to implement Metrics interface
type sweepMetrics struct{}

func (m *sweepMetrics) FilesRemovedTotal() prometheus.Counter {
	return metrics.FilesRemovedTotal
}

func (m *sweepMetrics) BytesFreedTotal() prometheus.Counter {
	return metrics.BytesFreedTotal
}

func (m *sweepMetrics) SkipsTotal() prometheus.Counter {
	return metrics.SkipsTotal
}

// Sweeper removes candidate files and produces the user-facing report.
type Sweeper struct {
	logger    Logger
	metrics   Metrics
	deleter   fsops.Deleter
	validator *safety.Validator
	db        *history.DB // optional removal history
	out       io.Writer   // user-facing report (banner, removals, summary)
}

// NewSweeper creates a new Sweeper. out receives the user-facing report;
// nil means stdout. db may be nil to disable history recording.
func NewSweeper(logger *log.Logger, out io.Writer, db *history.DB) *Sweeper {
	if logger == nil {
		logger = log.Default()
	}
	if out == nil {
		out = os.Stdout
	}
	return &Sweeper{
		logger:  &stdLogger{Logger: logger},
		metrics: &sweepMetrics{},
		deleter: fsops.OSDeleter{},
		out:     out,
		db:      db,
	}
}

// SetDeleter replaces the filesystem deleter, used by tests
func (s *Sweeper) SetDeleter(d fsops.Deleter) {
	s.deleter = d
}

// SetValidator installs the delete-target validator
func (s *Sweeper) SetValidator(v *safety.Validator) {
	s.validator = v
}

// Run removes the candidates one at a time and reports progress.
//
// The report contract: one banner line first, one line per removed file
// at the moment of removal, then a single closing line carrying either
// the total count or a "no files found" notice. Per-file failures are
// skips, never aborts; a file already gone is a benign race and is not
// counted as an error.
func (s *Sweeper) Run(candidates []scan.Candidate) (int, int64) {
	fmt.Fprintln(s.out, "Cleaning up generated log and test files...")

	removed := 0
	skipped := 0
	var bytesFreed int64

	for _, cand := range candidates {
		if s.validator != nil {
			if err := s.validator.ValidateDeleteTarget(cand.Path); err != nil {
				s.logger.Warn("Skipping unsafe target", "path", cand.Path, "error", err)
				s.record("SKIP", cand, err.Error())
				s.metrics.SkipsTotal().Inc()
				skipped++
				continue
			}
		}

		if err := s.deleter.Remove(cand.Path); err != nil {
			if os.IsNotExist(err) {
				// Already gone, deleted out from under us between scan
				// and removal. Not an error.
				s.logger.Info("File already removed", "path", cand.Path)
				continue
			}
			s.logger.Warn("Failed to remove file", "path", cand.Path, "error", err)
			s.record("ERROR", cand, err.Error())
			s.metrics.SkipsTotal().Inc()
			skipped++
			continue
		}

		fmt.Fprintf(s.out, "Removing: %s\n", cand.Name)
		s.record("REMOVE", cand, "")

		removed++
		bytesFreed += cand.Size
		s.metrics.FilesRemovedTotal().Inc()
		s.metrics.BytesFreedTotal().Add(float64(cand.Size))
	}

	if removed == 0 {
		fmt.Fprintln(s.out, "No files found to clean up.")
	} else {
		fmt.Fprintf(s.out, "Removed %d file(s).\n", removed)
	}

	s.logger.Info("Sweep complete",
		"removed", removed,
		"skipped", skipped,
		"bytes_freed", bytesFreed,
	)

	return removed, bytesFreed
}

func (s *Sweeper) record(action string, cand scan.Candidate, errMsg string) {
	if s.db == nil {
		return
	}
	if err := s.db.RecordRemoval(action, cand, errMsg); err != nil {
		// History is best effort, a write failure never stops the sweep
		s.logger.Error("Failed to record history", "error", err)
	}
}
