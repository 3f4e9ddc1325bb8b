package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/teleivo/fmtcore/dotprinter"
	"github.com/teleivo/fmtcore/internal/config"
	"github.com/teleivo/fmtcore/internal/fileset"
	"github.com/teleivo/fmtcore/internal/pluginhost"
	"github.com/teleivo/fmtcore/printer"
)

// fileResult is one file's outcome from a format or check run, collected so the caller can report
// every file rather than stopping at the first failure.
type fileResult struct {
	path      string
	formatted string
	changed   bool
	err       error
}

// runOverFileset expands cfg's include/exclude globs against fsys and formats each match
// concurrently, one goroutine per file, with no limit on how many run at once.
// Each file is formatted independently: per-file errors are collected rather than aborting the
// whole run, since one malformed DOT file shouldn't block formatting the rest of a tree.
func runOverFileset(ctx context.Context, fsys afero.Fs, cfg config.Config, logger *slog.Logger) ([]fileResult, error) {
	runID := uuid.New()
	logger = logger.With("run_id", runID.String())

	paths, err := fileset.Expand(fsys, cfg.Includes, cfg.Excludes)
	if err != nil {
		return nil, fmt.Errorf("expanding file set: %w", err)
	}
	logger.Info("expanded file set", "files", len(paths))

	results := make([]fileResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			src, err := afero.ReadFile(fsys, path)
			if err != nil {
				results[i] = fileResult{path: path, err: fmt.Errorf("reading %s: %w", path, err)}
				return nil
			}
			out, err := formatSource(cfg, string(src))
			if err != nil {
				results[i] = fileResult{path: path, err: fmt.Errorf("formatting %s: %w", path, err)}
				return nil
			}
			results[i] = fileResult{path: path, formatted: out, changed: out != string(src)}
			return nil
		})
	}
	_ = g.Wait() // per-file errors are carried in results, not returned
	return results, nil
}

// formatSource runs either the configured Wasm plugin or the built-in DOT printer over src,
// depending on whether cfg.Plugin is set.
func formatSource(cfg config.Config, src string) (string, error) {
	opts := cfg.PrinterOptions()
	if cfg.Plugin != "" {
		plugin, err := pluginhost.Load(cfg.Plugin)
		if err != nil {
			return "", fmt.Errorf("loading plugin: %w", err)
		}
		return plugin.Format(src, opts)
	}
	return formatDOT(src, opts)
}

func formatDOT(src string, opts printer.Options) (string, error) {
	var out bytes.Buffer
	p := dotprinter.New(bytes.NewBufferString(src), &out, opts)
	if err := p.Print(); err != nil {
		return "", err
	}
	return out.String(), nil
}
