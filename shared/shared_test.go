package shared_test

import (
	"frontdesk/shared"
	"testing"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{
			name:     "prefix only",
			prefix:   "schedule:day",
			parts:    nil,
			expected: "schedule:day",
		},
		{
			name:     "single part",
			prefix:   "directory:hotels",
			parts:    []string{"h1"},
			expected: "directory:hotels:h1",
		},
		{
			name:     "multiple parts",
			prefix:   "schedule:day",
			parts:    []string{"2025-03-05", "checkin"},
			expected: "schedule:day:2025-03-05:checkin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.BuildCacheKey(tt.prefix, tt.parts...); got != tt.expected {
				t.Errorf("BuildCacheKey() = %s, want %s", got, tt.expected)
			}
		})
	}
}
