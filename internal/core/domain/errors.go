package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrInvalidArgument is returned when a caller omits a required input.
	ErrInvalidArgument = zerr.New("invalid argument")

	// ErrUnreadableArtifact is returned when a classpath file cannot be opened as an archive.
	ErrUnreadableArtifact = zerr.New("not a readable artifact")

	// ErrUnsupportedArtifactKind marks an archive whose file name does not carry the archive suffix.
	// It is never returned to callers; skipped entries record it as their reason.
	ErrUnsupportedArtifactKind = zerr.New("unsupported artifact kind")

	// ErrIOFailure is returned when the staging area cannot be purged or populated.
	ErrIOFailure = zerr.New("i/o failure")

	// ErrNoStagingRoot is returned when neither the config nor the flags name a staging directory.
	ErrNoStagingRoot = zerr.New("no staging directory configured")

	// ErrConfigInvalid is returned when the configuration file cannot be interpreted.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = zerr.New("configuration file not found")
)

// WrapKind wraps cause under one of the sentinel kinds above, so that errors.Is matches both
// the kind and the underlying cause, and describes the failed step with msg.
func WrapKind(kind, cause error, msg string) error {
	return zerr.Wrap(fmt.Errorf("%w: %w", kind, cause), msg)
}
