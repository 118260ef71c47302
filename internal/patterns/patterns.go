package patterns

import (
	"fmt"
	"path/filepath"
)

// Default is the built-in, ordered list of artifact patterns.
// These are matched against base names only, never full paths.
var Default = []string{
	"*_error*.txt",
	"*_errors.txt",
	"clippy_*.txt",
	"test_*.txt",
	"*_test_*.txt",
	"workspace_*.txt",
	"check_*.txt",
	"*.log",
}

// Validate checks every pattern for filepath.Match syntax errors.
// filepath.Match only reports ErrBadPattern lazily, so each pattern is
// probed against a dummy name up front.
func Validate(pats []string) error {
	for _, p := range pats {
		if p == "" {
			return fmt.Errorf("empty pattern")
		}
		if _, err := filepath.Match(p, "probe"); err != nil {
			return fmt.Errorf("pattern %q: %w", p, err)
		}
	}
	return nil
}

// MatchBase reports whether the file base name matches the pattern.
func MatchBase(pattern, name string) (bool, error) {
	return filepath.Match(pattern, name)
}
