package discovery

import (
	"testing"
)

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		images   []string
		pattern  string
		expected int // Expected number of matches
	}{
		{
			name:     "empty pattern returns all",
			images:   []string{"rv64ui-p-add.bin", "rv64ui-p-sub.bin", "rv64um-p-mul.bin"},
			pattern:  "",
			expected: 3,
		},
		{
			name:     "wildcard pattern matches prefix",
			images:   []string{"rv64ui-p-add.bin", "rv64ui-p-sub.bin", "rv64um-p-mul.bin"},
			pattern:  "rv64ui-*",
			expected: 2,
		},
		{
			name:     "wildcard pattern matches substring",
			images:   []string{"rv64ui-p-add.bin", "rv64ui-p-addi.bin", "rv64um-p-mul.bin"},
			pattern:  "*add*",
			expected: 2,
		},
		{
			name:     "simple contains match",
			images:   []string{"rv64ui-p-add.bin", "rv64ui-p-sub.bin", "rv64um-p-mul.bin"},
			pattern:  "mul",
			expected: 1,
		},
		{
			name:     "no matches",
			images:   []string{"rv64ui-p-add.bin", "rv64ui-p-sub.bin"},
			pattern:  "*fence*",
			expected: 0,
		},
		{
			name:     "full path with wildcard",
			images:   []string{"/corpus/rv64ui-p-add.bin", "/corpus/rv64ui-p-sub.bin"},
			pattern:  "*sub.bin",
			expected: 1,
		},
		{
			name:     "question mark without match",
			images:   []string{"rv64ui-p-add.bin"},
			pattern:  "ad?",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(tt.images, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, len(result))
			}
		})
	}
}

func TestFilter_FilterByName_EdgeCases(t *testing.T) {
	filter := NewFilter()

	t.Run("empty image list", func(t *testing.T) {
		result := filter.FilterByName([]string{}, "*.bin")
		if len(result) != 0 {
			t.Errorf("expected empty result, got %d items", len(result))
		}
	})

	t.Run("double wildcard matches every name", func(t *testing.T) {
		result := filter.FilterByName([]string{"rv64ui-p-add.bin"}, "**")
		if len(result) != 1 {
			t.Errorf("expected 1 match, got %d", len(result))
		}
	})

	t.Run("keeps input order", func(t *testing.T) {
		images := []string{"c.bin", "a.bin", "b.bin"}
		result := filter.FilterByName(images, "*.bin")
		for i := range images {
			if result[i] != images[i] {
				t.Errorf("position %d: expected %s, got %s", i, images[i], result[i])
			}
		}
	})
}
