// Package fileset expands include/exclude glob patterns into a concrete, sorted file list, the
// way the CLI decides which files a format run should touch before handing each one to a language
// printer.
package fileset

import (
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// Expand returns the sorted, deduplicated set of paths under fsys matching any of includes and
// none of excludes. Patterns use doublestar syntax: "**" matches across directory boundaries.
func Expand(fsys afero.Fs, includes, excludes []string) ([]string, error) {
	iofs := afero.NewIOFS(fsys)

	matched := make(map[string]struct{})
	for _, pattern := range includes {
		paths, err := doublestar.Glob(iofs, pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid include pattern %q: %w", pattern, err)
		}
		for _, p := range paths {
			matched[p] = struct{}{}
		}
	}

	excluded := make(map[string]struct{})
	for _, pattern := range excludes {
		paths, err := doublestar.Glob(iofs, pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		for _, p := range paths {
			excluded[p] = struct{}{}
		}
	}

	result := make([]string, 0, len(matched))
	for p := range matched {
		if _, skip := excluded[p]; skip {
			continue
		}
		result = append(result, p)
	}
	sort.Strings(result)
	return result, nil
}
