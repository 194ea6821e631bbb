package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"ftr/internal/domain"
)

// Load reads and parses the results file at path.
// The whole file is read before parsing, so the handle is closed on every path.
func (s *JSONStorage) Load(path string) (*domain.TestResultsDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}

	var doc *domain.TestResultsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("parse results: %w", domain.ErrNullDocument)
	}
	return doc, nil
}

// LoadAll loads every path in order. loaded, when set, is called after each file.
func (s *JSONStorage) LoadAll(paths []string, loaded func(done int)) ([]*domain.TestResultsDocument, error) {
	docs := make([]*domain.TestResultsDocument, 0, len(paths))
	for i, path := range paths {
		doc, err := s.Load(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		docs = append(docs, doc)
		if loaded != nil {
			loaded(i + 1)
		}
	}
	return docs, nil
}
