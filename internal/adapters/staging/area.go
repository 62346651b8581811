// Package staging manages the directory archive schema files are extracted into.
package staging

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/thriftpath/internal/core/domain"
	"go.trai.ch/thriftpath/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.StagingProvider = (*Provider)(nil)
	_ ports.StagingArea     = (*Area)(nil)
)

// Provider hands out staging areas rooted at absolute paths.
type Provider struct{}

// NewProvider creates a new Provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Area returns a handle for the staging root at path, made absolute.
func (p *Provider) Area(path string) (ports.StagingArea, error) {
	if path == "" {
		return nil, zerr.Wrap(domain.ErrNoStagingRoot, "staging root path is empty")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve staging root"), "path", path)
	}
	return NewArea(abs), nil
}

// Area is a single staging root. The root is created lazily by whoever writes into it.
type Area struct {
	root string
}

// NewArea creates a handle for root. root should be absolute.
func NewArea(root string) *Area {
	return &Area{root: filepath.Clean(root)}
}

// Root returns the staging root path.
func (a *Area) Root() string {
	return a.root
}

// Prepare removes everything inside the staging root so no stale schema file survives into
// the next run. A missing root is left missing.
func (a *Area) Prepare() error {
	info, err := os.Stat(a.root)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil
		}
		return a.ioFailure(err, "failed to stat staging root")
	}
	if !info.IsDir() {
		return a.ioFailure(zerr.New("staging root is not a directory"), "failed to prepare staging root")
	}

	entries, err := os.ReadDir(a.root)
	if err != nil {
		return a.ioFailure(err, "failed to list staging root")
	}
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(a.root, entry.Name())); err != nil {
			return zerr.With(a.ioFailure(err, "failed to purge staging root"), "entry", entry.Name())
		}
	}
	return nil
}

// Remove deletes the staging root entirely.
func (a *Area) Remove() error {
	if err := os.RemoveAll(a.root); err != nil {
		return a.ioFailure(err, "failed to remove staging root")
	}
	return nil
}

func (a *Area) ioFailure(cause error, msg string) error {
	return zerr.With(domain.WrapKind(domain.ErrIOFailure, cause, msg), "path", a.root)
}
