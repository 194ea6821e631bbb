package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters test names by pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// Match reports whether the base name of name matches pattern.
// Supports shell wildcards ("*auth.test.ts"), loose wildcards where every
// non-empty segment must appear ("*dorm*"), and plain substrings ("auth").
func (f *Filter) Match(name, pattern string) bool {
	if pattern == "" {
		return true
	}

	base := filepath.Base(name)
	if matched, err := filepath.Match(pattern, base); err == nil && matched {
		return true
	}

	if strings.Contains(pattern, "*") {
		found := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			if !strings.Contains(base, part) {
				return false
			}
			found = true
		}
		return found
	}

	if strings.Contains(pattern, "?") {
		return false
	}
	return strings.Contains(base, pattern)
}
