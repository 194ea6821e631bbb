package parser

import "ftr/internal/domain"

// Parser extracts failures from a test results document
type Parser interface {
	FailedNames(doc *domain.TestResultsDocument) ([]string, error)
	ParseFailures(doc *domain.TestResultsDocument) ([]domain.TestFailure, error)
}
