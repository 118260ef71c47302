package patterns

import "testing"

func TestDefaultPatternsAreValid(t *testing.T) {
	if err := Validate(Default); err != nil {
		t.Fatalf("built-in patterns failed validation: %v", err)
	}
}

func TestValidateRejectsBadPattern(t *testing.T) {
	if err := Validate([]string{"[unclosed"}); err == nil {
		t.Error("expected error for malformed pattern, got nil")
	}
	if err := Validate([]string{""}); err == nil {
		t.Error("expected error for empty pattern, got nil")
	}
}

func TestMatchBase(t *testing.T) {
	cases := []struct {
		pattern string
		name    string
		want    bool
	}{
		{"*.log", "build.log", true},
		{"*.log", "build.log.bak", false},
		{"clippy_*.txt", "clippy_warnings.txt", true},
		{"clippy_*.txt", "clippy.txt", false},
		{"test_*.txt", "test_output.txt", true},
		{"*_test_*.txt", "unit_test_results.txt", true},
		{"workspace_*.txt", "workspace_check.txt", true},
		{"check_*.txt", "check_all.txt", true},
		{"*_error*.txt", "build_errors.txt", true},
		{"*_errors.txt", "build_errors.txt", true},
		{"*.log", "notes.md", false},
		{"*.log", "README.md", false},
	}

	for _, tc := range cases {
		got, err := MatchBase(tc.pattern, tc.name)
		if err != nil {
			t.Fatalf("MatchBase(%q, %q) returned error: %v", tc.pattern, tc.name, err)
		}
		if got != tc.want {
			t.Errorf("MatchBase(%q, %q) = %v, want %v", tc.pattern, tc.name, got, tc.want)
		}
	}
}
