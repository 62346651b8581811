package extractor_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/thriftpath/internal/adapters/fs"
	"go.trai.ch/thriftpath/internal/adapters/jar"
	"go.trai.ch/thriftpath/internal/adapters/staging"
	"go.trai.ch/thriftpath/internal/adapters/telemetry"
	"go.trai.ch/thriftpath/internal/core/domain"
	"go.trai.ch/thriftpath/internal/core/ports"
	"go.trai.ch/thriftpath/internal/core/ports/mocks"
	"go.trai.ch/thriftpath/internal/engine/extractor"
	"go.trai.ch/thriftpath/internal/testutil"
	"go.uber.org/mock/gomock"
)

func newExtractor() *extractor.Extractor {
	return extractor.New(jar.NewOpener(), fs.NewScanner(), fs.NewHasher(), telemetry.NewNoOpTracer())
}

func resolve(t *testing.T, root string, entries []string, jobs int) *domain.Resolution {
	t.Helper()
	res, err := newExtractor().ResolveIncludeDirectories(context.Background(), staging.NewArea(root), entries, jobs)
	require.NoError(t, err)
	return res
}

func TestResolveIncludeDirectories_Scenario(t *testing.T) {
	tmpDir := t.TempDir()
	root := filepath.Join(tmpDir, "staging")
	user := "struct User {\n  1: string name\n}\n"

	libfoo := testutil.WriteJar(t, filepath.Join(tmpDir, "cache", "libfoo.jar"), map[string]string{
		"META-INF/MANIFEST.MF": "Manifest-Version: 1.0\n",
		"models/User.thrift":   user,
		"models/User.class":    "\xca\xfe\xba\xbe",
	})
	schemas := filepath.Join(tmpDir, "build", "schemas")
	testutil.WriteFile(t, filepath.Join(schemas, "Order.thrift"), "struct Order {}")

	res := resolve(t, root, []string{libfoo, schemas + string(filepath.Separator)}, 1)

	want := []string{
		filepath.Join(root, "libfoo.jar", "models"),
		schemas,
	}
	if diff := cmp.Diff(domain.NewIncludeSet(want...).Sorted(), res.IncludeDirs.Sorted()); diff != "" {
		t.Errorf("include dirs mismatch (-want +got):\n%s", diff)
	}

	//nolint:gosec // Test file with controlled path
	got, err := os.ReadFile(filepath.Join(root, "libfoo.jar", "models", "User.thrift"))
	require.NoError(t, err)
	assert.Equal(t, user, string(got))

	_, err = os.Stat(filepath.Join(root, "libfoo.jar", "models", "User.class"))
	assert.True(t, os.IsNotExist(err), "non-schema entries are not staged")

	assert.Equal(t, []domain.ExtractedFile{{
		Archive: libfoo,
		Entry:   "models/User.thrift",
		Path:    filepath.Join(root, "libfoo.jar", "models", "User.thrift"),
	}}, res.Extracted)
	assert.Empty(t, res.Skipped)
	assert.Equal(t, root, res.StagingRoot)
}

func TestResolveIncludeDirectories_NilEntries(t *testing.T) {
	_, err := newExtractor().ResolveIncludeDirectories(
		context.Background(), staging.NewArea(t.TempDir()), nil, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestResolveIncludeDirectories_EmptyEntries(t *testing.T) {
	res := resolve(t, t.TempDir(), []string{}, 1)
	assert.Equal(t, 0, res.IncludeDirs.Len())
}

func TestResolveIncludeDirectories_NestedLayout(t *testing.T) {
	tmpDir := t.TempDir()
	root := filepath.Join(tmpDir, "staging")
	lib := testutil.WriteJar(t, filepath.Join(tmpDir, "lib.jar"), map[string]string{
		"a/b/c.thrift":     "include \"../d.thrift\"",
		"a/b/e.thrift":     "",
		"a/d.thrift":       "",
		"a/b/":             "",
		"readme.txt":       "",
		"top-level.thrift": "",
	})

	res := resolve(t, root, []string{lib}, 1)

	want := []string{
		filepath.Join(root, "lib.jar"),
		filepath.Join(root, "lib.jar", "a"),
		filepath.Join(root, "lib.jar", "a", "b"),
	}
	assert.Equal(t, want, res.IncludeDirs.Sorted())
	assert.Len(t, res.Extracted, 4)
}

func TestResolveIncludeDirectories_OrderIndependent(t *testing.T) {
	tmpDir := t.TempDir()
	a := testutil.WriteJar(t, filepath.Join(tmpDir, "a.jar"), map[string]string{"x/A.thrift": ""})
	b := testutil.WriteJar(t, filepath.Join(tmpDir, "b.jar"), map[string]string{"B.thrift": ""})
	dir := filepath.Join(tmpDir, "schemas")
	testutil.WriteFile(t, filepath.Join(dir, "C.thrift"), "")

	permutations := [][]string{
		{a, b, dir},
		{a, dir, b},
		{b, a, dir},
		{b, dir, a},
		{dir, a, b},
		{dir, b, a},
	}

	root := filepath.Join(tmpDir, "staging")
	want := resolve(t, root, permutations[0], 1).IncludeDirs.Sorted()
	for _, entries := range permutations[1:] {
		got := resolve(t, root, entries, 1).IncludeDirs.Sorted()
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("result depends on order %v (-want +got):\n%s", entries, diff)
		}
	}
}

func TestResolveIncludeDirectories_DirectoryNotScannedRecursively(t *testing.T) {
	tmpDir := t.TempDir()
	dir := filepath.Join(tmpDir, "schemas")
	testutil.WriteFile(t, filepath.Join(dir, "nested", "Deep.thrift"), "")
	testutil.WriteFile(t, filepath.Join(dir, "README.md"), "")

	res := resolve(t, filepath.Join(tmpDir, "staging"), []string{dir}, 1)
	assert.Equal(t, 0, res.IncludeDirs.Len())
}

func TestResolveIncludeDirectories_IgnoredEntries(t *testing.T) {
	tmpDir := t.TempDir()
	pom := testutil.WriteFile(t, filepath.Join(tmpDir, "lib.pom.xml"), "<project/>")
	missing := filepath.Join(tmpDir, "missing.jar")

	ctrl := gomock.NewController(t)
	opener := mocks.NewMockArchiveOpener(ctrl)
	// No expectations: opening any entry fails the test.

	e := extractor.New(opener, fs.NewScanner(), fs.NewHasher(), telemetry.NewNoOpTracer())
	res, err := e.ResolveIncludeDirectories(
		context.Background(), staging.NewArea(filepath.Join(tmpDir, "staging")), []string{pom, missing}, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, res.IncludeDirs.Len())
	assert.Empty(t, res.Skipped)
}

func TestResolveIncludeDirectories_UnsupportedArchiveIsSkipped(t *testing.T) {
	tmpDir := t.TempDir()
	root := filepath.Join(tmpDir, "staging")
	zipped := testutil.WriteJar(t, filepath.Join(tmpDir, "schemas.zip"), map[string]string{"S.thrift": ""})
	plain := testutil.WriteJar(t, filepath.Join(tmpDir, "classes.war"), map[string]string{"A.class": ""})
	lib := testutil.WriteJar(t, filepath.Join(tmpDir, "lib.jar"), map[string]string{"L.thrift": ""})

	res := resolve(t, root, []string{zipped, plain, lib}, 1)

	assert.Equal(t, []string{filepath.Join(root, "lib.jar")}, res.IncludeDirs.Sorted())
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, zipped, res.Skipped[0].Path)
	assert.Equal(t, domain.EntryUnsupported, res.Skipped[0].Kind)
	require.ErrorIs(t, res.Skipped[0].Reason, domain.ErrUnsupportedArtifactKind)

	_, err := os.Stat(filepath.Join(root, "schemas.zip"))
	assert.True(t, os.IsNotExist(err), "unsupported archives are never staged")
}

func TestResolveIncludeDirectories_UnreadableArtifact(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{name: "corrupt jar", file: "broken.jar"},
		{name: "corrupt file without archive suffix", file: "notes.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			bad := testutil.WriteFile(t, filepath.Join(tmpDir, tt.file), "definitely not a zip")
			lib := testutil.WriteJar(t, filepath.Join(tmpDir, "lib.jar"), map[string]string{"L.thrift": ""})

			res, err := newExtractor().ResolveIncludeDirectories(
				context.Background(), staging.NewArea(filepath.Join(tmpDir, "staging")), []string{lib, bad}, 1)
			require.Error(t, err)
			assert.Nil(t, res, "no partial result on fatal errors")
			require.ErrorIs(t, err, domain.ErrUnreadableArtifact)
			assert.Contains(t, err.Error(), bad)
		})
	}
}

func TestResolveIncludeDirectories_PurgesStaleFiles(t *testing.T) {
	tmpDir := t.TempDir()
	root := filepath.Join(tmpDir, "staging")
	first := testutil.WriteJar(t, filepath.Join(tmpDir, "first.jar"), map[string]string{"old/Old.thrift": ""})
	second := testutil.WriteJar(t, filepath.Join(tmpDir, "second.jar"), map[string]string{"New.thrift": ""})

	resolve(t, root, []string{first}, 1)
	require.FileExists(t, filepath.Join(root, "first.jar", "old", "Old.thrift"))

	res := resolve(t, root, []string{second}, 1)
	assert.Equal(t, []string{filepath.Join(root, "second.jar")}, res.IncludeDirs.Sorted())
	assert.NoDirExists(t, filepath.Join(root, "first.jar"))
}

func TestResolveIncludeDirectories_NameCollision(t *testing.T) {
	tmpDir := t.TempDir()
	root := filepath.Join(tmpDir, "staging")
	one := testutil.WriteJar(t, filepath.Join(tmpDir, "one", "lib.jar"), map[string]string{"x/One.thrift": "one"})
	two := testutil.WriteJar(t, filepath.Join(tmpDir, "two", "lib.jar"), map[string]string{"x/Two.thrift": "two"})

	res := resolve(t, root, []string{one, two, one}, 1)

	suffixed := "lib.jar-" + fs.NewHasher().PathDigest(two)
	want := []string{
		filepath.Join(root, "lib.jar", "x"),
		filepath.Join(root, suffixed, "x"),
	}
	assert.Equal(t, domain.NewIncludeSet(want...).Sorted(), res.IncludeDirs.Sorted())
	assert.FileExists(t, filepath.Join(root, "lib.jar", "x", "One.thrift"))
	assert.FileExists(t, filepath.Join(root, suffixed, "x", "Two.thrift"))
	assert.Len(t, res.Extracted, 2, "repeated entries are processed once")
}

func TestResolveIncludeDirectories_NameCollisionOrderIndependent(t *testing.T) {
	tmpDir := t.TempDir()
	root := filepath.Join(tmpDir, "staging")
	one := testutil.WriteJar(t, filepath.Join(tmpDir, "one", "lib.jar"), map[string]string{"x/One.thrift": "one"})
	two := testutil.WriteJar(t, filepath.Join(tmpDir, "two", "lib.jar"), map[string]string{"x/Two.thrift": "two"})

	forward := resolve(t, root, []string{one, two}, 1)
	backward := resolve(t, root, []string{two, one}, 1)

	assert.Equal(t, forward.IncludeDirs.Sorted(), backward.IncludeDirs.Sorted())
	if diff := cmp.Diff(forward.Extracted, backward.Extracted); diff != "" {
		t.Errorf("extracted files differ (-forward +backward):\n%s", diff)
	}
	assert.FileExists(t, filepath.Join(root, "lib.jar", "x", "One.thrift"))
}

func TestResolveIncludeDirectories_ParallelMatchesSequential(t *testing.T) {
	tmpDir := t.TempDir()
	var entries []string
	for i := range 12 {
		entries = append(entries, testutil.WriteJar(t, filepath.Join(tmpDir, fmt.Sprintf("lib%02d.jar", i)), map[string]string{
			fmt.Sprintf("pkg%d/A.thrift", i):     "a",
			fmt.Sprintf("pkg%d/sub/B.thrift", i): "b",
		}))
	}
	dir := filepath.Join(tmpDir, "schemas")
	testutil.WriteFile(t, filepath.Join(dir, "C.thrift"), "")
	entries = append(entries, dir)

	root := filepath.Join(tmpDir, "staging")
	sequential := resolve(t, root, entries, 1)
	parallel := resolve(t, root, entries, 4)

	if diff := cmp.Diff(sequential.IncludeDirs.Sorted(), parallel.IncludeDirs.Sorted()); diff != "" {
		t.Errorf("parallel result differs (-sequential +parallel):\n%s", diff)
	}
	if diff := cmp.Diff(sequential.Extracted, parallel.Extracted); diff != "" {
		t.Errorf("parallel extracted files differ (-sequential +parallel):\n%s", diff)
	}
	assert.Equal(t, 25, parallel.IncludeDirs.Len())
}

func TestResolveIncludeDirectories_ClosesArchiveOnFailure(t *testing.T) {
	tmpDir := t.TempDir()
	path := testutil.WriteFile(t, filepath.Join(tmpDir, "lib.jar"), "")

	ctrl := gomock.NewController(t)
	opener := mocks.NewMockArchiveOpener(ctrl)
	archive := mocks.NewMockArchive(ctrl)

	opener.EXPECT().Open(path).Return(archive, nil)
	archive.EXPECT().Entries().Return([]string{"a/A.thrift"})
	archive.EXPECT().OpenEntry("a/A.thrift").Return(nil, errors.New("unsupported compression"))
	archive.EXPECT().Close().Return(nil).Times(1)

	e := extractor.New(opener, fs.NewScanner(), fs.NewHasher(), telemetry.NewNoOpTracer())
	_, err := e.ResolveIncludeDirectories(
		context.Background(), staging.NewArea(filepath.Join(tmpDir, "staging")), []string{path}, 1)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrUnreadableArtifact)
	assert.Contains(t, err.Error(), "unsupported compression")
}

func TestResolveIncludeDirectories_CloseFailure(t *testing.T) {
	tmpDir := t.TempDir()
	path := testutil.WriteFile(t, filepath.Join(tmpDir, "lib.jar"), "")

	ctrl := gomock.NewController(t)
	opener := mocks.NewMockArchiveOpener(ctrl)
	archive := mocks.NewMockArchive(ctrl)

	opener.EXPECT().Open(path).Return(archive, nil)
	archive.EXPECT().Entries().Return(nil)
	archive.EXPECT().Close().Return(errors.New("bad descriptor"))

	e := extractor.New(opener, fs.NewScanner(), fs.NewHasher(), telemetry.NewNoOpTracer())
	_, err := e.ResolveIncludeDirectories(
		context.Background(), staging.NewArea(filepath.Join(tmpDir, "staging")), []string{path}, 1)
	require.ErrorIs(t, err, domain.ErrIOFailure)
}

func TestResolveIncludeDirectories_RejectsEscapingEntries(t *testing.T) {
	tmpDir := t.TempDir()
	root := filepath.Join(tmpDir, "staging")
	path := testutil.WriteFile(t, filepath.Join(tmpDir, "evil.jar"), "")

	ctrl := gomock.NewController(t)
	opener := mocks.NewMockArchiveOpener(ctrl)
	archive := mocks.NewMockArchive(ctrl)

	opener.EXPECT().Open(path).Return(archive, nil)
	archive.EXPECT().Entries().Return([]string{"../../escaped.thrift"})
	archive.EXPECT().Close().Return(nil)

	e := extractor.New(opener, fs.NewScanner(), fs.NewHasher(), telemetry.NewNoOpTracer())
	_, err := e.ResolveIncludeDirectories(context.Background(), staging.NewArea(root), []string{path}, 1)
	require.ErrorIs(t, err, domain.ErrUnreadableArtifact)
	assert.NoFileExists(t, filepath.Join(tmpDir, "escaped.thrift"))
}

func TestResolveIncludeDirectories_IOFailure(t *testing.T) {
	tmpDir := t.TempDir()
	blocker := testutil.WriteFile(t, filepath.Join(tmpDir, "blocker"), "")
	lib := testutil.WriteJar(t, filepath.Join(tmpDir, "lib.jar"), map[string]string{"A.thrift": ""})

	ctrl := gomock.NewController(t)
	area := mocks.NewMockStagingArea(ctrl)
	area.EXPECT().Prepare().Return(nil)
	area.EXPECT().Root().Return(filepath.Join(blocker, "staging")).AnyTimes()

	_, err := newExtractor().ResolveIncludeDirectories(context.Background(), area, []string{lib}, 1)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrIOFailure)
}

func TestResolveIncludeDirectories_PrepareFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	area := mocks.NewMockStagingArea(ctrl)
	prepareErr := domain.WrapKind(domain.ErrIOFailure, os.ErrPermission, "failed to purge staging root")
	area.EXPECT().Prepare().Return(prepareErr)

	_, err := newExtractor().ResolveIncludeDirectories(context.Background(), area, []string{}, 1)
	require.ErrorIs(t, err, domain.ErrIOFailure)
}

func TestResolveIncludeDirectories_Cancelled(t *testing.T) {
	tmpDir := t.TempDir()
	lib := testutil.WriteJar(t, filepath.Join(tmpDir, "lib.jar"), map[string]string{"A.thrift": ""})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newExtractor().ResolveIncludeDirectories(ctx, staging.NewArea(filepath.Join(tmpDir, "staging")), []string{lib}, 2)
	require.ErrorIs(t, err, context.Canceled)
}

func TestResolveIncludeDirectories_UnlistableDirectoryIsSkipped(t *testing.T) {
	tmpDir := t.TempDir()
	dir := filepath.Join(tmpDir, "schemas")
	require.NoError(t, os.MkdirAll(dir, 0o750))

	ctrl := gomock.NewController(t)
	scanner := mocks.NewMockSchemaScanner(ctrl)
	scanner.EXPECT().HasSchemaFiles(dir).Return(false, os.ErrPermission)

	e := extractor.New(jar.NewOpener(), scanner, fs.NewHasher(), telemetry.NewNoOpTracer())
	res, err := e.ResolveIncludeDirectories(
		context.Background(), staging.NewArea(filepath.Join(tmpDir, "staging")), []string{dir}, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, res.IncludeDirs.Len())
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, domain.EntryDirectory, res.Skipped[0].Kind)
	assert.ErrorIs(t, res.Skipped[0].Reason, os.ErrPermission)
}

func TestResolveIncludeDirectories_TracesArchives(t *testing.T) {
	tmpDir := t.TempDir()
	lib := testutil.WriteJar(t, filepath.Join(tmpDir, "lib.jar"), map[string]string{
		"a/A.thrift": "struct A {}",
	})

	ctrl := gomock.NewController(t)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)

	var output []byte
	tracer.EXPECT().Start(gomock.Any(), "extract "+lib).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, span
		})
	span.EXPECT().Write(gomock.Any()).DoAndReturn(func(p []byte) (int, error) {
		output = append(output, p...)
		return len(p), nil
	}).AnyTimes()
	span.EXPECT().End()

	e := extractor.New(jar.NewOpener(), fs.NewScanner(), fs.NewHasher(), tracer)
	_, err := e.ResolveIncludeDirectories(
		context.Background(), staging.NewArea(filepath.Join(tmpDir, "staging")), []string{lib}, 1)
	require.NoError(t, err)
	assert.Equal(t, "staged a/A.thrift\n", string(output))
}

func TestResolveIncludeDirectories_TracesFailures(t *testing.T) {
	tmpDir := t.TempDir()
	path := testutil.WriteFile(t, filepath.Join(tmpDir, "broken.jar"), "not a zip")

	ctrl := gomock.NewController(t)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)

	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, span
		})
	span.EXPECT().RecordError(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrUnreadableArtifact)
	})
	span.EXPECT().End()

	e := extractor.New(jar.NewOpener(), fs.NewScanner(), fs.NewHasher(), tracer)
	_, err := e.ResolveIncludeDirectories(
		context.Background(), staging.NewArea(filepath.Join(tmpDir, "staging")), []string{path}, 1)
	require.ErrorIs(t, err, domain.ErrUnreadableArtifact)
}

func TestResolveIncludeDirectories_DirectoryWithMetadataSuffix(t *testing.T) {
	tmpDir := t.TempDir()
	dir := filepath.Join(tmpDir, "schemas.xml")
	testutil.WriteFile(t, filepath.Join(dir, "A.thrift"), "struct A {}")

	res := resolve(t, filepath.Join(tmpDir, "staging"), []string{dir}, 1)

	assert.Equal(t, []string{dir}, res.IncludeDirs.Sorted())
}
