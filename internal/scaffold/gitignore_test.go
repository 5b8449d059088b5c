package scaffold

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMergeLines(t *testing.T) {
	generated := []byte("# Logs\n*.log\n\nnode_modules/\ndist/\n")

	tests := []struct {
		name     string
		existing *string
		want     string
	}{
		{"no existing file", nil, string(generated)},
		{"adds missing rules", strPtr("node_modules/\n.env\n"), "node_modules/\n.env\n*.log\ndist/\n"},
		{"no trailing newline", strPtr(".env"), ".env\n*.log\nnode_modules/\ndist/\n"},
		{"nothing missing", strPtr("*.log\nnode_modules/\ndist/\n"), "*.log\nnode_modules/\ndist/\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ".gitignore")
			if tt.existing != nil {
				if err := os.WriteFile(path, []byte(*tt.existing), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			got, err := mergeLines(path, generated)
			if err != nil {
				t.Fatalf("mergeLines() error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("mergeLines() = %q, want %q", got, tt.want)
			}
		})
	}
}

func strPtr(s string) *string { return &s }
