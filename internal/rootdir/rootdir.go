package rootdir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	ErrNoExecutable = errors.New("cannot determine executable location")
	ErrNotDirectory = errors.New("root is not a directory")
)

// Resolve determines the directory the sweeper operates on.
//
// With an empty override the root is the parent of the directory that
// contains the running executable, mirroring the old scripts that cleaned
// the directory above their own location. A non-empty override wins and
// is normalized to an absolute path.
func Resolve(override string) (string, error) {
	if override != "" {
		abs, err := filepath.Abs(override)
		if err != nil {
			return "", fmt.Errorf("resolve root %s: %w", override, err)
		}
		return checkDir(filepath.Clean(abs))
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoExecutable, err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoExecutable, err)
	}
	return checkDir(filepath.Dir(filepath.Dir(exe)))
}

func checkDir(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat root %s: %w", path, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}
	return path, nil
}
