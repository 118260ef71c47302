package safety

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrInvalidPath = errors.New("invalid path")
	ErrOutsideRoot = errors.New("outside workspace root")
	ErrTraversal   = errors.New("path traversal detected")
	ErrNotRegular  = errors.New("not a regular file")
)

// Validator enforces the safety contract for all delete operations:
// only regular files directly inside the workspace root may be removed.
type Validator struct {
	Root string
}

// NewValidator creates a validator for the given workspace root.
func NewValidator(root string) *Validator {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	return &Validator{Root: filepath.Clean(abs)}
}

// ValidateDeleteTarget is the single source of truth for delete
// authorization. Returns a typed error on any violation.
func (v *Validator) ValidateDeleteTarget(path string) error {
	if strings.TrimSpace(path) == "" {
		return ErrInvalidPath
	}

	// Block any ".." segment in the raw input before normalization.
	if detectTraversal(path) {
		return ErrTraversal
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}
	p := filepath.Clean(abs)

	// Direct children only. This enforces both containment and the
	// non-recursion guarantee in one check.
	if filepath.Dir(p) != v.Root {
		return fmt.Errorf("%w: %s", ErrOutsideRoot, p)
	}

	// Lstat so a symlink pointing at a regular file elsewhere does not
	// pass as one. Removing the link itself would be harmless, but the
	// sweeper only claims to delete plain files, so anything else is
	// skipped.
	info, err := os.Lstat(p)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotRegular, p)
	}

	return nil
}

func detectTraversal(raw string) bool {
	parts := strings.Split(filepath.ToSlash(raw), "/")
	for _, p := range parts {
		if p == ".." {
			return true
		}
	}
	return false
}
