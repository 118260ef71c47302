package safety

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestValidateDeleteTargetAllowsRootChild(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "build.log")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	v := NewValidator(tmpDir)
	if err := v.ValidateDeleteTarget(file); err != nil {
		t.Errorf("expected valid target, got %v", err)
	}
}

func TestValidateDeleteTargetRejectsOutsideRoot(t *testing.T) {
	tmpDir := t.TempDir()
	other := t.TempDir()
	file := filepath.Join(other, "build.log")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	v := NewValidator(tmpDir)
	err := v.ValidateDeleteTarget(file)
	if !errors.Is(err, ErrOutsideRoot) {
		t.Errorf("expected ErrOutsideRoot, got %v", err)
	}
}

func TestValidateDeleteTargetRejectsSubdirectoryFile(t *testing.T) {
	tmpDir := t.TempDir()
	sub := filepath.Join(tmpDir, "logs")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatalf("failed to create subdirectory: %v", err)
	}
	file := filepath.Join(sub, "nested.log")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	v := NewValidator(tmpDir)
	err := v.ValidateDeleteTarget(file)
	if !errors.Is(err, ErrOutsideRoot) {
		t.Errorf("expected ErrOutsideRoot for nested file, got %v", err)
	}
}

func TestValidateDeleteTargetRejectsTraversal(t *testing.T) {
	tmpDir := t.TempDir()

	v := NewValidator(tmpDir)
	// filepath.Join would collapse the "..", so build the raw path by hand
	raw := tmpDir + string(os.PathSeparator) + ".." + string(os.PathSeparator) + "escape.log"
	err := v.ValidateDeleteTarget(raw)
	if !errors.Is(err, ErrTraversal) {
		t.Errorf("expected ErrTraversal, got %v", err)
	}
}

func TestValidateDeleteTargetRejectsDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	sub := filepath.Join(tmpDir, "dir.log")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}

	v := NewValidator(tmpDir)
	err := v.ValidateDeleteTarget(sub)
	if !errors.Is(err, ErrNotRegular) {
		t.Errorf("expected ErrNotRegular for directory, got %v", err)
	}
}

func TestValidateDeleteTargetRejectsSymlink(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "real.txt")
	if err := os.WriteFile(target, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	link := filepath.Join(tmpDir, "link.log")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	v := NewValidator(tmpDir)
	err := v.ValidateDeleteTarget(link)
	if !errors.Is(err, ErrNotRegular) {
		t.Errorf("expected ErrNotRegular for symlink, got %v", err)
	}
}

func TestValidateDeleteTargetRejectsEmptyPath(t *testing.T) {
	v := NewValidator(t.TempDir())
	if err := v.ValidateDeleteTarget("  "); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("expected ErrInvalidPath, got %v", err)
	}
}
