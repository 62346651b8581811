package extractor

import (
	"path/filepath"
	"slices"

	"go.trai.ch/thriftpath/internal/core/domain"
	"go.trai.ch/thriftpath/internal/core/ports"
)

// archiveJob is one archive scheduled for extraction.
type archiveJob struct {
	slot   int
	path   string
	kind   domain.EntryKind
	subdir string
}

// stagingNames maps every archive path to its staging subdirectory name. Archives are named
// after their file name; when several share one, the lexically smallest path keeps the bare name
// and the others get a suffix derived from their path, so the mapping ignores input order.
func stagingNames(hasher ports.Hasher, paths []string) map[string]string {
	byName := make(map[string][]string, len(paths))
	for _, p := range paths {
		base := filepath.Base(p)
		byName[base] = append(byName[base], p)
	}

	names := make(map[string]string, len(paths))
	for base, owners := range byName {
		slices.Sort(owners)
		names[owners[0]] = base
		for _, p := range owners[1:] {
			names[p] = base + "-" + hasher.PathDigest(p)
		}
	}
	return names
}
