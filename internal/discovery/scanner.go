package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scanner finds results files on disk
type Scanner struct {
	skipDirs map[string]bool
	pattern  string
}

// NewScanner creates a Scanner that collects files whose base name matches
// the glob pattern and never descends into the given directory names
func NewScanner(skipDirs []string, pattern string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap, pattern: pattern}
}

// Scan finds all results files under root, sorted by path
func (s *Scanner) Scan(root string) ([]string, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("results path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("results path is not a directory: %s", root)
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || s.skipDirs[name]) {
				return filepath.SkipDir
			}
			return nil
		}

		matched, err := filepath.Match(s.pattern, d.Name())
		if err != nil {
			return fmt.Errorf("results glob %q: %w", s.pattern, err)
		}
		if matched {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// Expand replaces every directory in paths with the results files inside it.
// Plain files are kept as given, in order.
func (s *Scanner) Expand(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			files = append(files, path)
			continue
		}

		found, err := s.Scan(path)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}
