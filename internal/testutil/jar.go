// Package testutil provides fixtures shared by tests across packages.
package testutil

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/klauspost/compress/zip"
)

// CreateJar writes a zip-format archive at path containing the given entries.
// Entry names ending in "/" are written as directory entries. Entries are written in name order.
func CreateJar(path string, entries map[string]string) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}

	f, err := os.Create(path) //nolint:gosec // Test fixture path
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	zw := zip.NewWriter(f)
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			return err
		}
		if _, err := w.Write([]byte(entries[name])); err != nil {
			return err
		}
	}
	return zw.Close()
}

// WriteJar is CreateJar for tests: it fails the test on error and returns path.
func WriteJar(t *testing.T, path string, entries map[string]string) string {
	t.Helper()
	if err := CreateJar(path, entries); err != nil {
		t.Fatalf("failed to create jar %s: %v", path, err)
	}
	return path
}

// WriteFile creates a file with content, creating parent directories as needed.
func WriteFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
