package document

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
)

// LoadFile reads and extracts a single document from disk. The document ID is
// the file base name.
func LoadFile(path string) (*Document, error) {
	name := filepath.Base(path)

	kind, ok := KindForFilename(name)
	if !ok {
		return nil, fmt.Errorf("unsupported file type: %s", name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	text, err := Extract(kind, data)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", name, err)
	}

	return &Document{ID: name, Kind: kind, Text: text}, nil
}

// LoadDir loads every supported document from a directory in stable name
// order. Unsupported or unreadable files are skipped with a warning so one
// bad file does not abort the batch.
func LoadDir(dir string, logger *zap.Logger) ([]*Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading resumes directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	docs := make([]*Document, 0, len(names))
	for _, name := range names {
		doc, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			if logger != nil {
				logger.Warn("skipping file", zap.String("file", name), zap.Error(err))
			}
			continue
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
