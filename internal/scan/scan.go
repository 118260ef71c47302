package scan

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"logsweep/internal/patterns"
)

// Logger interface for structured logging
type Logger interface {
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
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

func (l *stdLogger) logWithLevel(level, msg string, args ...interface{}) {
	var parts []interface{}
	parts = append(parts, fmt.Sprintf("[%s]", level), msg)
	parts = append(parts, args...)
	l.Logger.Println(parts...)
}

// Candidate is one file selected for removal.
type Candidate struct {
	Path    string // absolute path
	Name    string // base name, used for reporting
	Size    int64
	Pattern string // the pattern that claimed this file
}

// Scanner enumerates removal candidates in a single directory.
type Scanner struct {
	logger Logger
}

// NewScanner creates a new Scanner with the given logger
func NewScanner(logger *log.Logger) *Scanner {
	if logger == nil {
		logger = log.Default()
	}
	return &Scanner{
		logger: &stdLogger{Logger: logger},
	}
}

// Scan enumerates regular files directly inside root whose base name
// matches any of the patterns, in pattern-list order. The directory is
// read once; subdirectories are never descended into. Within a pattern
// matches are sorted by name so output is deterministic. A file claimed
// by an earlier pattern is never claimed again, so the same file cannot
// be counted twice even if patterns overlap.
func Scan(root string, pats []string) ([]Candidate, error) {
	return NewScanner(nil).Scan(root, pats)
}

func (s *Scanner) Scan(root string, pats []string) ([]Candidate, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("list root %s: %w", root, err)
	}

	// Regular files only. Symlinks and directories are out of scope.
	files := make(map[string]os.DirEntry, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			files[entry.Name()] = entry
		}
	}

	candidates := make([]Candidate, 0)
	claimed := make(map[string]bool, len(files))

	for _, pattern := range pats {
		var names []string
		for name := range files {
			if claimed[name] {
				continue
			}
			matched, err := patterns.MatchBase(pattern, name)
			if err != nil {
				s.logger.Warn("Invalid pattern", "pattern", pattern, "error", err)
				break
			}
			if matched {
				names = append(names, name)
			}
		}
		sort.Strings(names)

		for _, name := range names {
			claimed[name] = true
			info, err := files[name].Info()
			if err != nil {
				// File vanished between ReadDir and Info. Not ours anymore.
				s.logger.Warn("File vanished during scan", "name", name)
				continue
			}
			candidates = append(candidates, Candidate{
				Path:    filepath.Join(root, name),
				Name:    name,
				Size:    info.Size(),
				Pattern: pattern,
			})
		}
	}

	s.logger.Info("Scan complete",
		"root", root,
		"patterns", len(pats),
		"candidates_found", len(candidates),
	)

	return candidates, nil
}
