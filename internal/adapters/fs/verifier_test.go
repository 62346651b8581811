package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/thriftpath/internal/adapters/fs"
)

func TestVerifier_VerifyDirs(t *testing.T) {
	tmpDir := t.TempDir()
	verifier := fs.NewVerifier()

	one := filepath.Join(tmpDir, "one")
	two := filepath.Join(tmpDir, "two")
	require.NoError(t, os.MkdirAll(one, 0o750))
	require.NoError(t, os.MkdirAll(two, 0o750))

	// Case 1: All directories exist
	ok, err := verifier.VerifyDirs([]string{one, two})
	require.NoError(t, err)
	assert.True(t, ok)

	// Case 2: One directory missing
	ok, err = verifier.VerifyDirs([]string{one, filepath.Join(tmpDir, "missing")})
	require.NoError(t, err)
	assert.False(t, ok)

	// Case 3: Path exists but is a file
	file := filepath.Join(tmpDir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	ok, err = verifier.VerifyDirs([]string{file})
	require.NoError(t, err)
	assert.False(t, ok)

	// Case 4: Nothing to verify
	ok, err = verifier.VerifyDirs(nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifier_VerifyFiles(t *testing.T) {
	tmpDir := t.TempDir()
	verifier := fs.NewVerifier()

	file := filepath.Join(tmpDir, "User.thrift")
	require.NoError(t, os.WriteFile(file, []byte("struct User {}"), 0o600))

	ok, err := verifier.VerifyFiles([]string{file})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = verifier.VerifyFiles([]string{file, filepath.Join(tmpDir, "Order.thrift")})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = verifier.VerifyFiles([]string{tmpDir})
	require.NoError(t, err)
	assert.False(t, ok, "a directory is not a staged file")
}
