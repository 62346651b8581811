// Package jar implements the archive adapter for zip-format dependency artifacts.
package jar

import (
	"io"

	"github.com/klauspost/compress/zip"
	"go.trai.ch/thriftpath/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.ArchiveOpener = (*Opener)(nil)
	_ ports.Archive       = (*Archive)(nil)
)

// Opener opens jar files (and any other zip-format file) as archives.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open reads the central directory of the file at path.
func (o *Opener) Open(path string) (ports.Archive, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open zip archive"), "path", path)
	}

	a := &Archive{
		path:   path,
		reader: rc,
		files:  make(map[string]*zip.File, len(rc.File)),
	}
	for _, f := range rc.File {
		if f.FileInfo().IsDir() {
			continue
		}
		// Duplicate names are legal in zip; the first occurrence wins, as with java.util.jar.
		if _, seen := a.files[f.Name]; seen {
			continue
		}
		a.files[f.Name] = f
		a.names = append(a.names, f.Name)
	}
	return a, nil
}

// Archive is an open zip file.
type Archive struct {
	path   string
	reader *zip.ReadCloser
	files  map[string]*zip.File
	names  []string
}

// Path returns the path the archive was opened from.
func (a *Archive) Path() string {
	return a.path
}

// Entries returns the names of all file entries in archive order.
func (a *Archive) Entries() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)
	return out
}

// OpenEntry opens the named entry for reading its uncompressed bytes.
func (a *Archive) OpenEntry(name string) (io.ReadCloser, error) {
	f, ok := a.files[name]
	if !ok {
		return nil, zerr.With(zerr.With(zerr.New("archive entry not found"), "entry", name), "path", a.path)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(err, "failed to open archive entry"), "entry", name), "path", a.path)
	}
	return rc, nil
}

// Close releases the underlying file handle.
func (a *Archive) Close() error {
	if err := a.reader.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close archive"), "path", a.path)
	}
	return nil
}
