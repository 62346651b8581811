package domain

import "time"

// ExtractedFile records one schema file copied out of an archive.
type ExtractedFile struct {
	Archive string `json:"archive"`
	Entry   string `json:"entry"`
	Path    string `json:"path"`
}

// SkippedEntry records a classpath entry that was left out of the result without failing the run.
type SkippedEntry struct {
	Path   string
	Kind   EntryKind
	Reason error
}

// Resolution is the outcome of resolving include directories for one classpath.
type Resolution struct {
	StagingRoot string
	IncludeDirs *IncludeSet
	Extracted   []ExtractedFile
	Skipped     []SkippedEntry
	// Reused is set when the result was served from a previous run's record.
	Reused bool
}

// NewResolution creates an empty Resolution for the given staging root.
func NewResolution(stagingRoot string) *Resolution {
	return &Resolution{
		StagingRoot: stagingRoot,
		IncludeDirs: NewIncludeSet(),
	}
}

// ResolutionRecord is the persisted summary of a resolution.
type ResolutionRecord struct {
	StagingRoot string    `json:"staging_root,omitzero"`
	Fingerprint string    `json:"fingerprint,omitzero"`
	IncludeDirs []string  `json:"include_dirs,omitempty"`
	StagedFiles []string  `json:"staged_files,omitempty"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
}
