package extractor

import (
	"os"

	"go.trai.ch/thriftpath/internal/core/domain"
)

// Classify inspects path on disk and tags it with the way the extractor treats it.
// Metadata files are rejected by name before they are ever opened.
func Classify(path string) domain.Classification {
	c := domain.Classification{Path: path, Kind: domain.EntryIgnored}

	info, err := os.Stat(path)
	if err != nil {
		return c
	}

	switch {
	case info.IsDir():
		c.Kind = domain.EntryDirectory
	case info.Mode().IsRegular():
		if domain.IsMetadataFile(path) || !readable(path) {
			return c
		}
		if domain.IsArchiveFile(path) {
			c.Kind = domain.EntryArchive
		} else {
			c.Kind = domain.EntryUnsupported
		}
	}
	return c
}

func readable(path string) bool {
	f, err := os.Open(path) //nolint:gosec // classpath entries are supplied by the build
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
