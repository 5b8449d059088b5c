package project

import "testing"

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected int
		wantErr  bool
	}{
		{"older patch", "1.0.0", "1.0.1", -1, false},
		{"older major", "1.0.0", "2.0.0", -1, false},
		{"equal", "1.2.3", "1.2.3", 0, false},
		{"newer", "1.1.0", "1.0.0", 1, false},
		{"v prefix", "v1.0.0", "1.0.1", -1, false},
		{"prerelease less than release", "1.0.0-beta", "1.0.0", -1, false},
		{"invalid first", "notaversion", "1.0.0", 0, true},
		{"dev version", "1.0.0", "dev", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CompareVersions(tt.a, tt.b)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestGeneratedByNewer(t *testing.T) {
	tests := []struct {
		recorded string
		running  string
		want     bool
	}{
		{"2.0.0", "1.9.0", true},
		{"1.9.0", "2.0.0", false},
		{"2.0.0", "2.0.0", false},
		{"", "1.0.0", false},
		{"2.0.0", "dev", false},
	}
	for _, tt := range tests {
		if got := GeneratedByNewer(tt.recorded, tt.running); got != tt.want {
			t.Errorf("GeneratedByNewer(%q, %q) = %v, want %v", tt.recorded, tt.running, got, tt.want)
		}
	}
}
