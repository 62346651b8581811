// Package fs provides file system adapters for scanning, hashing and verifying classpath locations.
package fs

import (
	"os"

	"go.trai.ch/thriftpath/internal/core/domain"
	"go.trai.ch/thriftpath/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SchemaScanner = (*Scanner)(nil)

// Scanner looks for schema files directly inside a directory.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// HasSchemaFiles reports whether dir has a direct child that is a schema file.
// Subdirectories are not descended into, and a directory named like a schema file does not count.
func (s *Scanner) HasSchemaFiles(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to list directory"), "path", dir)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if domain.IsSchemaFile(entry.Name()) {
			return true, nil
		}
	}
	return false, nil
}
