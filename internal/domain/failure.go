package domain

import "time"

// TestFailure represents a failed test file
type TestFailure struct {
	Name     string            // Test file name as reported
	Message  string            // Suite-level failure message
	Duration time.Duration     // Time taken by the file, zero if unknown
	Cases    []TestCaseFailure // Failed test cases inside the file
}

// TestCaseFailure represents a failed test case
type TestCaseFailure struct {
	FullName        string
	Title           string
	AncestorTitles  []string
	FailureMessages []string
}

// DisplayName returns the most descriptive name available for the case
func (c TestCaseFailure) DisplayName() string {
	if c.FullName != "" {
		return c.FullName
	}
	return c.Title
}
