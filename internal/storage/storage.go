package storage

import "ftr/internal/domain"

// Storage loads test results documents.
type Storage interface {
	Load(path string) (*domain.TestResultsDocument, error)
}

// JSONStorage reads results documents from JSON files on disk.
type JSONStorage struct{}

// NewJSONStorage returns a Storage backed by JSON files.
func NewJSONStorage() *JSONStorage {
	return &JSONStorage{}
}
