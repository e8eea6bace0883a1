package discovery

import (
	"path/filepath"
	"strings"
)

// Filter narrows discovered images by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps the images whose base name matches pattern. Patterns
// with * or ? are tried with filepath.Match first, then as a sequence of
// required substrings ("*add*" matches "rv64ui-p-add.bin"). Patterns without
// wildcards match by substring. An empty pattern keeps everything.
func (f *Filter) FilterByName(images []string, pattern string) []string {
	if pattern == "" {
		return images
	}

	var filtered []string
	for _, image := range images {
		if matchName(filepath.Base(image), pattern) {
			filtered = append(filtered, image)
		}
	}
	return filtered
}

func matchName(name, pattern string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}
	if !strings.Contains(pattern, "*") {
		return false
	}

	hasPart := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		if !strings.Contains(name, part) {
			return false
		}
		hasPart = true
	}
	return hasPart
}
