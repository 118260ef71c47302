package rootdir

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveOverride(t *testing.T) {
	tmpDir := t.TempDir()

	got, err := Resolve(tmpDir)
	if err != nil {
		t.Fatalf("Resolve(%q) failed: %v", tmpDir, err)
	}
	want, _ := filepath.EvalSymlinks(tmpDir)
	gotResolved, _ := filepath.EvalSymlinks(got)
	if gotResolved != want {
		t.Errorf("Resolve = %q, want %q", gotResolved, want)
	}
}

func TestResolveRelativeOverrideBecomesAbsolute(t *testing.T) {
	got, err := Resolve(".")
	if err != nil {
		t.Fatalf("Resolve(\".\") failed: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("Resolve(\".\") returned non-absolute path %q", got)
	}
}

func TestResolveOverrideMissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")
	if _, err := Resolve(missing); err == nil {
		t.Error("expected error for missing directory, got nil")
	}
}

func TestResolveOverrideNotADirectory(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	if _, err := Resolve(file); err == nil {
		t.Error("expected ErrNotDirectory for regular file, got nil")
	}
}

func TestResolveDefaultUsesExecutableParent(t *testing.T) {
	// The test binary lives in a temp build directory, so the default
	// resolution should land on that directory's parent.
	got, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve(\"\") failed: %v", err)
	}

	exe, err := os.Executable()
	if err != nil {
		t.Skipf("os.Executable unavailable: %v", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		t.Skipf("cannot resolve executable symlinks: %v", err)
	}
	want := filepath.Dir(filepath.Dir(exe))
	if got != want {
		t.Errorf("Resolve(\"\") = %q, want %q", got, want)
	}
}
