package parser

import (
	"encoding/json"
	"fmt"
	"time"

	"ftr/internal/domain"
)

// JestParser reads documents produced by `jest --json` and the Vitest JSON reporter
type JestParser struct{}

// NewJestParser creates a new JestParser
func NewJestParser() *JestParser {
	return &JestParser{}
}

// FailedNames returns the names of failed test records in document order.
// A failed record without a name is an error; records with any other status
// are never inspected beyond their status.
func (p *JestParser) FailedNames(doc *domain.TestResultsDocument) ([]string, error) {
	var names []string
	for i, record := range doc.TestResults {
		if !record.Failed() {
			continue
		}
		if !record.Name.IsSet() {
			return nil, fmt.Errorf("test record %d has status %q: %w", i+1, domain.StatusFailed, domain.ErrMissingName)
		}
		names = append(names, record.Name.String())
	}
	return names, nil
}

// ParseFailures returns every failed test record with its failed test cases
func (p *JestParser) ParseFailures(doc *domain.TestResultsDocument) ([]domain.TestFailure, error) {
	names, err := p.FailedNames(doc)
	if err != nil {
		return nil, err
	}

	failures := make([]domain.TestFailure, 0, len(names))
	for i, record := range doc.TestResults {
		if !record.Failed() {
			continue
		}
		detail, err := p.parseDetail(record)
		if err != nil {
			return nil, fmt.Errorf("test record %d: %w", i+1, err)
		}

		failure := domain.TestFailure{
			Name:     names[len(failures)],
			Message:  detail.Message,
			Duration: recordDuration(detail),
		}
		for _, assertion := range detail.AssertionResults {
			if assertion.Status != domain.StatusFailed {
				continue
			}
			failure.Cases = append(failure.Cases, domain.TestCaseFailure{
				FullName:        assertion.FullName,
				Title:           assertion.Title,
				AncestorTitles:  assertion.AncestorTitles,
				FailureMessages: assertion.FailureMessages,
			})
		}
		failures = append(failures, failure)
	}
	return failures, nil
}

// ParseCounts counts test files and test cases by status
func (p *JestParser) ParseCounts(doc *domain.TestResultsDocument) (domain.Summary, error) {
	names, err := p.FailedNames(doc)
	if err != nil {
		return domain.Summary{}, err
	}

	summary := domain.Summary{
		ResultFiles:    1,
		TotalTestFiles: len(doc.TestResults),
		FailedNames:    names,
	}
	for i, record := range doc.TestResults {
		switch {
		case record.Failed():
			summary.FailedTestFiles++
		case record.Status.Equals(domain.StatusPassed):
			summary.PassedTestFiles++
		}

		detail, err := p.parseDetail(record)
		if err != nil {
			return domain.Summary{}, fmt.Errorf("test record %d: %w", i+1, err)
		}
		summary.Duration += recordDuration(detail)

		for _, assertion := range detail.AssertionResults {
			summary.TotalTestCases++
			switch assertion.Status {
			case domain.StatusPassed:
				summary.PassedTestCases++
			case domain.StatusFailed:
				summary.FailedTestCases++
			case domain.StatusPending, domain.StatusSkipped, domain.StatusTodo:
				summary.PendingTestCases++
			}
		}
	}
	return summary, nil
}

func (p *JestParser) parseDetail(record domain.TestRecord) (domain.RecordDetail, error) {
	var detail domain.RecordDetail
	if len(record.Raw) == 0 {
		return detail, nil
	}
	if err := json.Unmarshal(record.Raw, &detail); err != nil {
		return detail, fmt.Errorf("parse record details: %w", err)
	}
	return detail, nil
}

// recordDuration converts the reporter's millisecond timestamps
func recordDuration(detail domain.RecordDetail) time.Duration {
	if detail.StartTime <= 0 || detail.EndTime < detail.StartTime {
		return 0
	}
	return time.Duration((detail.EndTime - detail.StartTime) * float64(time.Millisecond))
}
