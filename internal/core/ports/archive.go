package ports

import "io"

// Archive is an open, randomly addressable container of named byte streams.
//
//go:generate go run go.uber.org/mock/mockgen -source=archive.go -destination=mocks/mock_archive.go -package=mocks
type Archive interface {
	// Path returns the filesystem path the archive was opened from.
	Path() string
	// Entries returns the slash-separated names of all file entries, in archive order.
	Entries() []string
	// OpenEntry opens the byte stream of the named entry.
	OpenEntry(name string) (io.ReadCloser, error)
	// Close releases the archive handle.
	Close() error
}

// ArchiveOpener opens archive files.
type ArchiveOpener interface {
	// Open opens the file at path as an archive.
	Open(path string) (Archive, error)
}
