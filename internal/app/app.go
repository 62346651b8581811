// Package app implements the application layer for thriftpath.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"go.trai.ch/thriftpath/internal/core/domain"
	"go.trai.ch/thriftpath/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	staging      ports.StagingProvider
	resolver     ports.IncludeResolver
	stores       ports.StoreOpener
	hasher       ports.Hasher
	verifier     ports.Verifier
	tracer       ports.Tracer
	logger       ports.Logger
	now          func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	staging ports.StagingProvider,
	resolver ports.IncludeResolver,
	stores ports.StoreOpener,
	hasher ports.Hasher,
	verifier ports.Verifier,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		staging:      staging,
		resolver:     resolver,
		stores:       stores,
		hasher:       hasher,
		verifier:     verifier,
		tracer:       tracer,
		logger:       log,
		now:          time.Now,
	}
}

// WithClock replaces the clock used to timestamp resolution records.
// This is primarily used for testing.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// ResolveOptions configures a call to Resolve. Flag values win over the config file.
type ResolveOptions struct {
	ConfigPath string
	// ConfigRequired makes a missing config file an error instead of falling back to flags.
	ConfigRequired bool
	StagingRoot    string
	StatePath      string
	Classpath      []string
	Force          bool
	Jobs           int
}

// Resolve computes the include directories for the configured classpath, reusing the previous
// run's result when neither the classpath nor the staging root changed.
func (a *App) Resolve(ctx context.Context, opts ResolveOptions) (*domain.Resolution, error) {
	// 1. Load and merge configuration
	cfg, err := a.loadConfig(opts.ConfigPath, opts.ConfigRequired)
	if err != nil {
		return nil, err
	}
	settings := merge(cfg, opts)

	entries, err := absPaths(settings.Classpath)
	if err != nil {
		return nil, err
	}

	// 2. Open the staging area and the store
	area, err := a.staging.Area(settings.StagingRoot)
	if err != nil {
		return nil, err
	}

	store, err := a.stores.OpenStore(settings.StatePath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open resolution store")
	}

	// 3. Reuse the previous result if nothing changed
	fingerprint, err := a.hasher.Fingerprint(area.Root(), entries)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to fingerprint classpath")
	}

	ctx, span := a.tracer.Start(ctx, "resolve "+area.Root())
	defer span.End()

	if !opts.Force {
		res, err := a.reuse(store, area.Root(), fingerprint)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		if res != nil {
			span.Cached()
			a.logger.Info(fmt.Sprintf("include directories for %s are up to date", area.Root()))
			return res, nil
		}
	}

	// 4. Resolve
	a.logger.Debug(fmt.Sprintf("resolving %d classpath entries into %s", len(entries), area.Root()))
	res, err := a.resolver.ResolveIncludeDirectories(ctx, area, entries, settings.Jobs)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "failed to resolve include directories")
	}

	for _, skipped := range res.Skipped {
		a.logger.Warn(fmt.Sprintf("skipped %s %s: %v", skipped.Kind, skipped.Path, skipped.Reason))
	}
	a.logger.Debug(fmt.Sprintf("staged %d schema files, %d include directories",
		len(res.Extracted), res.IncludeDirs.Len()))

	// 5. Record the result
	record := domain.ResolutionRecord{
		StagingRoot: area.Root(),
		Fingerprint: fingerprint,
		IncludeDirs: res.IncludeDirs.Sorted(),
		StagedFiles: stagedFiles(res.Extracted),
		Timestamp:   a.now(),
	}
	if err := store.Put(record); err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "failed to save resolution record")
	}

	return res, nil
}

func (a *App) reuse(store ports.ResolutionStore, root, fingerprint string) (*domain.Resolution, error) {
	record, err := store.Get(root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read resolution record")
	}
	if record == nil || record.Fingerprint != fingerprint {
		return nil, nil
	}

	ok, err := a.verifier.VerifyDirs(record.IncludeDirs)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to verify include directories")
	}
	if !ok {
		a.logger.Debug("recorded include directories are missing, resolving again")
		return nil, nil
	}

	ok, err = a.verifier.VerifyFiles(record.StagedFiles)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to verify staged schema files")
	}
	if !ok {
		a.logger.Debug("staged schema files are missing, resolving again")
		return nil, nil
	}

	res := domain.NewResolution(root)
	for _, dir := range record.IncludeDirs {
		res.IncludeDirs.Add(dir)
	}
	res.Reused = true
	return res, nil
}

func stagedFiles(extracted []domain.ExtractedFile) []string {
	if len(extracted) == 0 {
		return nil
	}
	files := make([]string, 0, len(extracted))
	for _, f := range extracted {
		files = append(files, f.Path)
	}
	slices.Sort(files)
	return files
}

// CleanOptions configures a call to Clean.
type CleanOptions struct {
	ConfigPath  string
	StagingRoot string
	StatePath   string
	// All removes every staging root recorded in the store.
	All bool
}

// Clean removes staging roots and forgets their records. It returns the removed roots.
func (a *App) Clean(ctx context.Context, opts CleanOptions) ([]string, error) {
	cfg, err := a.loadConfig(opts.ConfigPath, false)
	if err != nil {
		return nil, err
	}
	settings := merge(cfg, ResolveOptions{StagingRoot: opts.StagingRoot, StatePath: opts.StatePath})

	store, err := a.stores.OpenStore(settings.StatePath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open resolution store")
	}

	var roots []string
	if opts.All {
		records, err := store.List()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to list resolution records")
		}
		for _, record := range records {
			roots = append(roots, record.StagingRoot)
		}
	} else {
		roots = []string{settings.StagingRoot}
	}

	removed := make([]string, 0, len(roots))
	var errs error
	for _, root := range roots {
		if err := ctx.Err(); err != nil {
			return removed, zerr.Wrap(err, "clean cancelled")
		}

		area, err := a.staging.Area(root)
		if err != nil {
			return removed, err
		}

		a.logger.Info("removing " + area.Root())
		if err := area.Remove(); err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		if err := store.Delete(area.Root()); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, "failed to delete resolution record"))
			continue
		}
		removed = append(removed, area.Root())
	}

	return removed, errs
}

// loadConfig reads the config file. A missing file yields an empty config unless required.
func (a *App) loadConfig(path string, required bool) (*domain.Config, error) {
	if path == "" {
		return &domain.Config{}, nil
	}

	cfg, err := a.configLoader.Load(path)
	if err != nil {
		if !required && errors.Is(err, domain.ErrConfigNotFound) {
			a.logger.Debug("no config file at " + path)
			return &domain.Config{}, nil
		}
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

func merge(cfg *domain.Config, opts ResolveOptions) domain.Config {
	out := domain.Config{
		StagingRoot: cfg.StagingRoot,
		StatePath:   cfg.StatePath,
		Jobs:        cfg.Jobs,
		Classpath:   make([]string, 0, len(cfg.Classpath)+len(opts.Classpath)),
	}
	if opts.StagingRoot != "" {
		out.StagingRoot = opts.StagingRoot
	}
	if opts.StatePath != "" {
		out.StatePath = opts.StatePath
	}
	if out.StatePath == "" {
		out.StatePath = domain.DefaultStatePath
	}
	if opts.Jobs > 0 {
		out.Jobs = opts.Jobs
	}
	if out.Jobs < 1 {
		out.Jobs = 1
	}
	out.Classpath = append(out.Classpath, cfg.Classpath...)
	out.Classpath = append(out.Classpath, opts.Classpath...)
	return out
}

func absPaths(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to resolve classpath entry"), "path", p)
		}
		out = append(out, abs)
	}
	return out, nil
}
