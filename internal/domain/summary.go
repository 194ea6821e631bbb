package domain

import "time"

// Summary aggregates counters over one or more results files
type Summary struct {
	ResultFiles      int           `json:"result_files"`
	TotalTestFiles   int           `json:"total_test_files"`
	PassedTestFiles  int           `json:"passed_test_files"`
	FailedTestFiles  int           `json:"failed_test_files"`
	TotalTestCases   int           `json:"total_test_cases"`
	PassedTestCases  int           `json:"passed_test_cases"`
	FailedTestCases  int           `json:"failed_test_cases"`
	PendingTestCases int           `json:"pending_test_cases"`
	Duration         time.Duration `json:"-"`
	FailedNames      []string      `json:"failed_names"`
}

// Add merges other into s
func (s *Summary) Add(other Summary) {
	s.ResultFiles += other.ResultFiles
	s.TotalTestFiles += other.TotalTestFiles
	s.PassedTestFiles += other.PassedTestFiles
	s.FailedTestFiles += other.FailedTestFiles
	s.TotalTestCases += other.TotalTestCases
	s.PassedTestCases += other.PassedTestCases
	s.FailedTestCases += other.FailedTestCases
	s.PendingTestCases += other.PendingTestCases
	s.Duration += other.Duration
	s.FailedNames = append(s.FailedNames, other.FailedNames...)
}
