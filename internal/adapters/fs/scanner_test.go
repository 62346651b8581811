package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/thriftpath/internal/adapters/fs"
)

func TestScanner_HasSchemaFiles(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, dir string)
		expected bool
	}{
		{
			name: "direct schema file",
			setup: func(t *testing.T, dir string) {
				t.Helper()
				require.NoError(t, os.WriteFile(filepath.Join(dir, "Order.thrift"), []byte("struct Order {}"), 0o600))
			},
			expected: true,
		},
		{
			name: "only nested schema file",
			setup: func(t *testing.T, dir string) {
				t.Helper()
				require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o750))
				require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "Order.thrift"), nil, 0o600))
			},
			expected: false,
		},
		{
			name: "directory named like a schema file",
			setup: func(t *testing.T, dir string) {
				t.Helper()
				require.NoError(t, os.MkdirAll(filepath.Join(dir, "models.thrift"), 0o750))
			},
			expected: false,
		},
		{
			name: "other files only",
			setup: func(t *testing.T, dir string) {
				t.Helper()
				require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), nil, 0o600))
				require.NoError(t, os.WriteFile(filepath.Join(dir, "Order.thrift.bak"), nil, 0o600))
			},
			expected: false,
		},
		{
			name:     "empty directory",
			setup:    func(*testing.T, string) {},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setup(t, dir)

			found, err := fs.NewScanner().HasSchemaFiles(dir)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, found)
		})
	}
}

func TestScanner_HasSchemaFiles_MissingDir(t *testing.T) {
	_, err := fs.NewScanner().HasSchemaFiles(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list directory")
}
