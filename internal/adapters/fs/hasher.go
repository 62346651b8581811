package fs

import (
	"encoding/binary"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/thriftpath/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher provides hashing functionality for classpath entries and files.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// PathDigest returns the xxhash of a path string as 16 hex characters.
func (h *Hasher) PathDigest(path string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(path))
}

// Fingerprint computes a single hash over the staging root and the on-disk state of every
// classpath entry. Entry order and duplicates do not affect the result.
func (h *Hasher) Fingerprint(stagingRoot string, entries []string) (string, error) {
	hasher := xxhash.New()

	_, _ = hasher.WriteString(stagingRoot)
	_, _ = hasher.Write([]byte{0})

	sorted := slices.Clone(entries)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	for _, entry := range sorted {
		if err := h.hashEntry(entry, hasher); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// hashEntry hashes an entry's path with its size, modification time and type.
// Missing entries hash to their path alone so that their later appearance changes the result.
func (h *Hasher) hashEntry(path string, hasher *xxhash.Digest) error {
	_, _ = hasher.WriteString(path)
	_, _ = hasher.Write([]byte{0})

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) || errors.Is(err, iofs.ErrPermission) {
			_, _ = hasher.Write([]byte{0})
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to stat classpath entry"), "path", path)
	}

	var meta [17]byte
	binary.LittleEndian.PutUint64(meta[0:8], uint64(info.Size()))             //nolint:gosec // Size is non-negative
	binary.LittleEndian.PutUint64(meta[8:16], uint64(info.ModTime().UnixNano())) //nolint:gosec // Bit pattern only
	if info.IsDir() {
		meta[16] = 1
	}
	_, _ = hasher.Write(meta[:])
	_, _ = hasher.Write([]byte{0})
	return nil
}
