package fs

import (
	"os"

	"go.trai.ch/thriftpath/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Verifier = (*Verifier)(nil)

// Verifier provides functionality to verify the existence of directories and files.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// VerifyDirs checks if all given paths exist and are directories.
// It returns true if they all do, false otherwise.
func (v *Verifier) VerifyDirs(dirs []string) (bool, error) {
	return verify(dirs, os.FileInfo.IsDir, "failed to stat directory")
}

// VerifyFiles checks if all given paths exist and are regular files.
func (v *Verifier) VerifyFiles(files []string) (bool, error) {
	return verify(files, func(info os.FileInfo) bool { return info.Mode().IsRegular() }, "failed to stat file")
}

func verify(paths []string, want func(os.FileInfo) bool, msg string) (bool, error) {
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return false, nil
			}
			return false, zerr.With(zerr.Wrap(err, msg), "path", path)
		}
		if !want(info) {
			return false, nil
		}
	}
	return true, nil
}
