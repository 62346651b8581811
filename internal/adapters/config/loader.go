// Package config provides the configuration loader for thriftpath.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/thriftpath/internal/core/domain"
	"go.trai.ch/thriftpath/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file looked up when none is given.
const DefaultFilename = "thriftpath.yaml"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration file at path and returns a domain.Config with absolute paths.
func (l *Loader) Load(path string) (*domain.Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve config path"), "path", path)
	}

	data, err := os.ReadFile(absPath) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.WrapKind(domain.ErrConfigNotFound, err, "failed to read config file"), "path", absPath)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", absPath)
	}

	file, err := decode(data)
	if err != nil {
		return nil, zerr.With(err, "path", absPath)
	}

	if file.Version != CurrentVersion {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "unsupported config version"),
			"version", file.Version), "path", absPath)
	}
	if file.Jobs < 0 {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "jobs must not be negative"),
			"jobs", file.Jobs), "path", absPath)
	}

	baseDir := filepath.Dir(absPath)
	cfg := &domain.Config{
		StagingRoot: resolvePath(baseDir, file.Staging),
		StatePath:   resolvePath(baseDir, file.State),
		Jobs:        file.Jobs,
		Classpath:   make([]string, 0, len(file.Classpath)),
	}
	if cfg.StatePath == "" {
		cfg.StatePath = filepath.Join(baseDir, domain.DefaultStatePath)
	}
	if cfg.Jobs == 0 {
		cfg.Jobs = 1
	}

	for _, entry := range file.Classpath {
		if strings.TrimSpace(entry) == "" {
			l.warn("ignoring empty classpath entry in " + absPath)
			continue
		}
		cfg.Classpath = append(cfg.Classpath, resolvePath(baseDir, entry))
	}

	return cfg, nil
}

func decode(data []byte) (*File, error) {
	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, zerr.Wrap(domain.ErrConfigInvalid, "config file is empty")
		}
		return nil, domain.WrapKind(domain.ErrConfigInvalid, err, "failed to parse config file")
	}
	return &file, nil
}

func (l *Loader) warn(msg string) {
	if l.Logger != nil {
		l.Logger.Warn(msg)
	}
}

// resolvePath expands a leading ~ and anchors relative paths at baseDir.
func resolvePath(baseDir, p string) string {
	if p == "" {
		return ""
	}
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(baseDir, p)
}
