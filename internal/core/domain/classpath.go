package domain

import "strings"

const (
	// SchemaSuffix identifies Thrift schema files.
	SchemaSuffix = ".thrift"
	// ArchiveSuffix identifies archives whose schema files are staged.
	ArchiveSuffix = ".jar"
	// MetadataSuffix identifies dependency metadata files that are never opened.
	MetadataSuffix = ".xml"
)

// EntryKind is the classification of a classpath entry.
type EntryKind int

const (
	// EntryIgnored is a missing, unreadable or metadata entry. It contributes nothing.
	EntryIgnored EntryKind = iota
	// EntryArchive is a readable file carrying the archive suffix.
	EntryArchive
	// EntryUnsupported is a readable file that is neither metadata nor a suffixed archive.
	// It is still opened as an archive so corrupt files surface, but never staged.
	EntryUnsupported
	// EntryDirectory is a directory referenced in place.
	EntryDirectory
)

// String returns the string representation of the EntryKind.
func (k EntryKind) String() string {
	switch k {
	case EntryArchive:
		return "archive"
	case EntryUnsupported:
		return "unsupported"
	case EntryDirectory:
		return "directory"
	default:
		return "ignored"
	}
}

// IsArchiveCandidate reports whether entries of this kind are opened as archives.
func (k EntryKind) IsArchiveCandidate() bool {
	return k == EntryArchive || k == EntryUnsupported
}

// Classification is the outcome of inspecting one classpath entry on disk.
type Classification struct {
	Path string
	Kind EntryKind
}

// IsSchemaFile reports whether name refers to a Thrift schema file.
func IsSchemaFile(name string) bool {
	return strings.HasSuffix(name, SchemaSuffix)
}

// IsMetadataFile reports whether name refers to a dependency metadata file.
func IsMetadataFile(name string) bool {
	return strings.HasSuffix(name, MetadataSuffix)
}

// IsArchiveFile reports whether name carries the archive suffix.
func IsArchiveFile(name string) bool {
	return strings.HasSuffix(name, ArchiveSuffix)
}
