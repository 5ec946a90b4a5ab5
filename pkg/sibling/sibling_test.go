package sibling

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		exePath    string
		scriptName string
		want       string
	}{
		{
			name:       "backslash separators",
			exePath:    `C:\pkg\mover.exe`,
			scriptName: "mover.py",
			want:       `C:\pkg\mover.py`,
		},
		{
			name:       "forward slash separators",
			exePath:    `C:/pkg/mover.exe`,
			scriptName: "mover.py",
			want:       `C:/pkg\mover.py`,
		},
		{
			name:       "mixed separators uses last one",
			exePath:    `C:/pkg\tools/mover.exe`,
			scriptName: "mover.py",
			want:       `C:/pkg\tools\mover.py`,
		},
		{
			name:       "directory with spaces",
			exePath:    `C:\Program Files\pkg\mover.exe`,
			scriptName: "mover.py",
			want:       `C:\Program Files\pkg\mover.py`,
		},
		{
			name:       "separator as first character",
			exePath:    `\mover.exe`,
			scriptName: "mover.py",
			want:       `\mover.py`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.exePath, tt.scriptName)
			if err != nil {
				t.Fatalf("Resolve(%q, %q) error = %v", tt.exePath, tt.scriptName, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tt.exePath, tt.scriptName, got, tt.want)
			}
		})
	}
}

func TestResolve_NoSeparator(t *testing.T) {
	_, err := Resolve("mover.exe", "mover.py")
	if !errors.Is(err, ErrNoSeparator) {
		t.Errorf("Resolve without separator: error = %v, want ErrNoSeparator", err)
	}
}

func TestResolve_EmptyPath(t *testing.T) {
	_, err := Resolve("", "mover.py")
	if !errors.Is(err, ErrNoSeparator) {
		t.Errorf("Resolve with empty path: error = %v, want ErrNoSeparator", err)
	}
}
