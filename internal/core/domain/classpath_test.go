package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/thriftpath/internal/core/domain"
)

func TestSuffixPredicates(t *testing.T) {
	tests := []struct {
		name     string
		check    func(string) bool
		input    string
		expected bool
	}{
		{"schema file", domain.IsSchemaFile, "models/User.thrift", true},
		{"schema dir entry", domain.IsSchemaFile, "models/thrift/", false},
		{"metadata pom", domain.IsMetadataFile, "libfoo-1.0.xml", true},
		{"metadata jar", domain.IsMetadataFile, "libfoo-1.0.jar", false},
		{"archive jar", domain.IsArchiveFile, "/cache/libfoo.jar", true},
		{"archive zip", domain.IsArchiveFile, "/cache/libfoo.zip", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.check(tt.input))
		})
	}
}

func TestEntryKind_String(t *testing.T) {
	assert.Equal(t, "archive", domain.EntryArchive.String())
	assert.Equal(t, "unsupported", domain.EntryUnsupported.String())
	assert.Equal(t, "directory", domain.EntryDirectory.String())
	assert.Equal(t, "ignored", domain.EntryIgnored.String())
}

func TestEntryKind_IsArchiveCandidate(t *testing.T) {
	assert.True(t, domain.EntryArchive.IsArchiveCandidate())
	assert.True(t, domain.EntryUnsupported.IsArchiveCandidate())
	assert.False(t, domain.EntryDirectory.IsArchiveCandidate())
	assert.False(t, domain.EntryIgnored.IsArchiveCandidate())
}
