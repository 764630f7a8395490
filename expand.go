package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// validatePatterns checks every input pattern for glob syntax errors before
// any filesystem work happens. A single bad pattern fails the whole run.
func validatePatterns(patterns []string) error {
	for _, pat := range patterns {
		if !doublestar.ValidatePattern(strings.ReplaceAll(pat, `\`, "/")) {
			return fmt.Errorf("invalid pattern %q: %w", pat, doublestar.ErrBadPattern)
		}
	}
	return nil
}

// expandPatterns resolves the positional patterns into a concrete ordered
// list of filesystem paths. Enumeration order is doublestar's lexical order,
// deterministic for identical filesystem state. An unreadable entry during
// enumeration (permission failure, symlink loop) is logged as a warning and
// skipped, keeping the matches collected so far; it never fails the run.
func expandPatterns(patterns []string, log *logger) ([]string, error) {
	var paths []string
	for _, pat := range patterns {
		normalized := strings.ReplaceAll(pat, `\`, "/")
		base, rest := doublestar.SplitPattern(normalized)
		err := doublestar.GlobWalk(os.DirFS(base), rest,
			func(p string, d fs.DirEntry) error {
				paths = append(paths, filepath.Join(base, p))
				return nil
			},
			doublestar.WithFailOnIOErrors())
		if err != nil {
			if errors.Is(err, doublestar.ErrBadPattern) {
				return nil, fmt.Errorf("invalid pattern %q: %w", pat, err)
			}
			log.Warningf("Failed to read path: %v", err)
		}
	}
	return paths, nil
}
