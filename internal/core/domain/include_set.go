package domain

import (
	"path/filepath"
	"slices"
)

// IncludeSet is a deduplicated set of include directories.
// The zero value is not usable; create one with NewIncludeSet.
type IncludeSet struct {
	dirs map[string]struct{}
}

// NewIncludeSet creates an IncludeSet holding the given directories.
func NewIncludeSet(dirs ...string) *IncludeSet {
	s := &IncludeSet{dirs: make(map[string]struct{}, len(dirs))}
	for _, d := range dirs {
		s.Add(d)
	}
	return s
}

// Add inserts a directory. Paths are cleaned so that "a/b/" and "a/b" collapse.
func (s *IncludeSet) Add(dir string) {
	s.dirs[filepath.Clean(dir)] = struct{}{}
}

// Len returns the number of directories in the set.
func (s *IncludeSet) Len() int {
	return len(s.dirs)
}

// Sorted returns the directories in lexical order.
func (s *IncludeSet) Sorted() []string {
	out := make([]string, 0, len(s.dirs))
	for d := range s.dirs {
		out = append(out, d)
	}
	slices.Sort(out)
	return out
}
