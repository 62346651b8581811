// Package extractor resolves Thrift include directories from a classpath.
package extractor

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/thriftpath/internal/core/domain"
	"go.trai.ch/thriftpath/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

var _ ports.IncludeResolver = (*Extractor)(nil)

// Extractor stages schema files found in classpath archives and collects include directories.
type Extractor struct {
	opener  ports.ArchiveOpener
	scanner ports.SchemaScanner
	hasher  ports.Hasher
	tracer  ports.Tracer
}

// New creates a new Extractor.
func New(
	opener ports.ArchiveOpener,
	scanner ports.SchemaScanner,
	hasher ports.Hasher,
	tracer ports.Tracer,
) *Extractor {
	return &Extractor{
		opener:  opener,
		scanner: scanner,
		hasher:  hasher,
		tracer:  tracer,
	}
}

// outcome is what one classpath entry contributed.
type outcome struct {
	dirs      []string
	extracted []domain.ExtractedFile
	skipped   *domain.SkippedEntry
}

// ResolveIncludeDirectories empties the staging area, then walks entries: archives have their
// schema files copied under the staging root, directories are kept in place when they directly
// hold a schema file. Any fatal error aborts the whole call and no partial result is returned.
func (e *Extractor) ResolveIncludeDirectories(
	ctx context.Context,
	area ports.StagingArea,
	entries []string,
	jobs int,
) (*domain.Resolution, error) {
	if entries == nil {
		return nil, zerr.Wrap(domain.ErrInvalidArgument, "classpath entries must not be nil")
	}
	if area == nil {
		return nil, zerr.Wrap(domain.ErrInvalidArgument, "staging area must not be nil")
	}
	if jobs < 1 {
		jobs = 1
	}

	if err := area.Prepare(); err != nil {
		return nil, err
	}

	slots, archives := e.plan(entries)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for _, job := range archives {
		g.Go(func() error {
			out, err := e.traceArchive(gctx, area.Root(), job)
			if err != nil {
				return err
			}
			slots[job.slot] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, zerr.Wrap(err, "include directory resolution cancelled")
	}

	res := domain.NewResolution(area.Root())
	for _, out := range slots {
		for _, dir := range out.dirs {
			res.IncludeDirs.Add(dir)
		}
		res.Extracted = append(res.Extracted, out.extracted...)
		if out.skipped != nil {
			res.Skipped = append(res.Skipped, *out.skipped)
		}
	}
	slices.SortFunc(res.Extracted, func(a, b domain.ExtractedFile) int {
		return cmp.Or(cmp.Compare(a.Archive, b.Archive), cmp.Compare(a.Entry, b.Entry))
	})
	return res, nil
}

// plan classifies every entry and handles directories inline. Staging names are assigned here,
// from the full set of archive paths, before any archive is touched.
func (e *Extractor) plan(entries []string) ([]outcome, []archiveJob) {
	slots := make([]outcome, len(entries))
	seen := make(map[string]bool, len(entries))

	var archives []archiveJob
	for i, entry := range entries {
		path, err := filepath.Abs(entry)
		if err != nil {
			path = filepath.Clean(entry)
		}
		if seen[path] {
			continue
		}
		seen[path] = true

		c := Classify(path)
		switch {
		case c.Kind == domain.EntryDirectory:
			slots[i] = e.scanDirectory(path)
		case c.Kind.IsArchiveCandidate():
			archives = append(archives, archiveJob{slot: i, path: path, kind: c.Kind})
		}
	}

	var paths []string
	for _, job := range archives {
		if job.kind == domain.EntryArchive {
			paths = append(paths, job.path)
		}
	}
	names := stagingNames(e.hasher, paths)
	for i := range archives {
		archives[i].subdir = names[archives[i].path]
	}
	return slots, archives
}

func (e *Extractor) scanDirectory(dir string) outcome {
	ok, err := e.scanner.HasSchemaFiles(dir)
	if err != nil {
		return outcome{skipped: &domain.SkippedEntry{Path: dir, Kind: domain.EntryDirectory, Reason: err}}
	}
	if !ok {
		return outcome{}
	}
	return outcome{dirs: []string{dir}}
}

// traceArchive runs extractArchive inside a span that lists what got staged.
func (e *Extractor) traceArchive(ctx context.Context, root string, job archiveJob) (outcome, error) {
	ctx, span := e.tracer.Start(ctx, "extract "+job.path)
	defer span.End()

	out, err := e.extractArchive(ctx, root, job)
	if err != nil {
		span.RecordError(err)
		return outcome{}, err
	}
	if out.skipped != nil {
		_, _ = fmt.Fprintf(span, "skipped: %v\n", out.skipped.Reason)
	}
	for _, f := range out.extracted {
		_, _ = fmt.Fprintf(span, "staged %s\n", f.Entry)
	}
	return out, nil
}

func (e *Extractor) extractArchive(ctx context.Context, root string, job archiveJob) (out outcome, err error) {
	archive, err := e.opener.Open(job.path)
	if err != nil {
		return outcome{}, zerr.With(domain.WrapKind(domain.ErrUnreadableArtifact, err,
			fmt.Sprintf("%s was not a readable artifact", job.path)), "path", job.path)
	}
	defer func() {
		if cerr := archive.Close(); cerr != nil && err == nil {
			err = zerr.With(domain.WrapKind(domain.ErrIOFailure, cerr, "failed to close archive"), "path", job.path)
		}
	}()

	for _, name := range archive.Entries() {
		if err := ctx.Err(); err != nil {
			return outcome{}, zerr.Wrap(err, "include directory resolution cancelled")
		}
		if !domain.IsSchemaFile(name) {
			continue
		}
		if job.kind != domain.EntryArchive {
			reason := zerr.With(zerr.Wrap(domain.ErrUnsupportedArtifactKind,
				"archive name does not end in "+domain.ArchiveSuffix), "path", job.path)
			return outcome{skipped: &domain.SkippedEntry{Path: job.path, Kind: job.kind, Reason: reason}}, nil
		}

		target, err := stagingTarget(root, job.subdir, name)
		if err != nil {
			return outcome{}, zerr.With(err, "path", job.path)
		}
		if err := copyEntry(archive, name, target); err != nil {
			return outcome{}, zerr.With(zerr.With(err, "path", job.path), "entry", name)
		}

		out.dirs = append(out.dirs, filepath.Dir(target))
		out.extracted = append(out.extracted, domain.ExtractedFile{Archive: job.path, Entry: name, Path: target})
	}
	return out, nil
}

// stagingTarget maps an archive entry name to its path under root/subdir, refusing names that
// would land outside of it.
func stagingTarget(root, subdir, name string) (string, error) {
	rel := filepath.FromSlash(name)
	if !filepath.IsLocal(rel) {
		return "", zerr.With(zerr.Wrap(domain.ErrUnreadableArtifact,
			"archive entry escapes the staging directory"), "entry", name)
	}
	return filepath.Join(root, subdir, rel), nil
}

func copyEntry(archive ports.Archive, name, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
		return zerr.With(domain.WrapKind(domain.ErrIOFailure, err, "failed to create staging directory"),
			"dir", filepath.Dir(target))
	}

	src, err := archive.OpenEntry(name)
	if err != nil {
		return domain.WrapKind(domain.ErrUnreadableArtifact, err, "failed to read archive entry")
	}
	defer func() { _ = src.Close() }()

	//nolint:gosec // target is confined to the staging root by stagingTarget
	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return zerr.With(domain.WrapKind(domain.ErrIOFailure, err, "failed to create staged file"), "target", target)
	}

	_, copyErr := io.Copy(dst, src)
	if err := errors.Join(copyErr, dst.Close()); err != nil {
		return zerr.With(domain.WrapKind(domain.ErrIOFailure, err, "failed to copy archive entry"), "target", target)
	}
	return nil
}
