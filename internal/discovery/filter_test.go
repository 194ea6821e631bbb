package discovery

import (
	"testing"
)

func TestFilter_Match(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		testName string
		pattern  string
		expected bool
	}{
		{
			name:     "empty pattern matches everything",
			testName: "auth.test.ts",
			pattern:  "",
			expected: true,
		},
		{
			name:     "wildcard pattern matches suffix",
			testName: "auth.test.ts",
			pattern:  "*auth.test.ts",
			expected: true,
		},
		{
			name:     "wildcard pattern rejects other suffix",
			testName: "dorm.test.ts",
			pattern:  "*auth.test.ts",
			expected: false,
		},
		{
			name:     "wildcard pattern matches substring",
			testName: "dorm-record.test.ts",
			pattern:  "*dorm*",
			expected: true,
		},
		{
			name:     "simple contains match",
			testName: "bills.test.ts",
			pattern:  "bills",
			expected: true,
		},
		{
			name:     "simple contains mismatch",
			testName: "auth.test.ts",
			pattern:  "bills",
			expected: false,
		},
		{
			name:     "no matches",
			testName: "auth.test.ts",
			pattern:  "*NonExistent*",
			expected: false,
		},
		{
			name:     "full path matches on base name",
			testName: "/app/src/lib/auth.test.ts",
			pattern:  "*auth.test.ts",
			expected: true,
		},
		{
			name:     "directory segment is not matched",
			testName: "/app/src/auth/dorm.test.ts",
			pattern:  "*auth.test.ts",
			expected: false,
		},
		{
			name:     "only wildcards",
			testName: "dorm.test.ts",
			pattern:  "*",
			expected: true,
		},
		{
			name:     "multiple wildcards",
			testName: "dorm-service.test.ts",
			pattern:  "*dorm*test.ts",
			expected: true,
		},
		{
			name:     "question mark matches one character",
			testName: "a.test.ts",
			pattern:  "?.test.ts",
			expected: true,
		},
		{
			name:     "question mark is not a substring",
			testName: "auth.test.ts",
			pattern:  "?.test.ts",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.Match(tt.testName, tt.pattern)
			if result != tt.expected {
				t.Errorf("Match(%q, %q) = %v, expected %v", tt.testName, tt.pattern, result, tt.expected)
			}
		})
	}
}
