package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"go.trai.ch/thriftpath/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	formatLines = "lines"
	formatFlags = "flags"
	formatJSON  = "json"
)

type renderFunc func(w io.Writer, res *domain.Resolution) error

func formatter(name string) (renderFunc, error) {
	switch name {
	case formatLines:
		return renderLines, nil
	case formatFlags:
		return renderFlags, nil
	case formatJSON:
		return renderJSON, nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidArgument, "unknown output format"), "format", name)
	}
}

func renderLines(w io.Writer, res *domain.Resolution) error {
	for _, dir := range res.IncludeDirs.Sorted() {
		if _, err := fmt.Fprintln(w, dir); err != nil {
			return zerr.Wrap(err, "failed to write output")
		}
	}
	return nil
}

func renderFlags(w io.Writer, res *domain.Resolution) error {
	for _, dir := range res.IncludeDirs.Sorted() {
		if _, err := fmt.Fprintf(w, "-I %s\n", dir); err != nil {
			return zerr.Wrap(err, "failed to write output")
		}
	}
	return nil
}

type skippedJSON struct {
	Path   string `json:"path"`
	Kind   string `json:"kind"`
	Reason string `json:"reason"`
}

type resolutionJSON struct {
	StagingRoot string                 `json:"staging_root"`
	IncludeDirs []string               `json:"include_dirs"`
	Reused      bool                   `json:"reused"`
	Extracted   []domain.ExtractedFile `json:"extracted,omitempty"`
	Skipped     []skippedJSON          `json:"skipped,omitempty"`
}

func renderJSON(w io.Writer, res *domain.Resolution) error {
	out := resolutionJSON{
		StagingRoot: res.StagingRoot,
		IncludeDirs: res.IncludeDirs.Sorted(),
		Reused:      res.Reused,
		Extracted:   res.Extracted,
	}
	for _, s := range res.Skipped {
		out.Skipped = append(out.Skipped, skippedJSON{Path: s.Path, Kind: s.Kind.String(), Reason: s.Reason.Error()})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return zerr.Wrap(err, "failed to write output")
	}
	return nil
}
