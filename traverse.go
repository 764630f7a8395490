package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	gitignore "github.com/monochromegane/go-gitignore"
)

// catSession drives one run: it owns the options, the compiled excluder, the
// sink, and the running counters. Traversal is strictly sequential, so the
// session is never shared; it is passed by pointer through the recursive
// walk instead of living in global state.
type catSession struct {
	opts     Options
	excluder *Excluder
	log      *logger
	sink     *outputSink

	headerColor *color.Color
	tokens      *tokenCounter

	fileCount  int
	tokenTotal int
}

func newCatSession(opts Options, excluder *Excluder, log *logger, sink *outputSink) *catSession {
	s := &catSession{
		opts:        opts,
		excluder:    excluder,
		log:         log,
		sink:        sink,
		headerColor: color.New(color.FgBlue, color.Bold),
	}
	if opts.Color {
		// Forced on: the sink may be a file, and --color means color.
		s.headerColor.EnableColor()
	}
	if opts.Tokens {
		s.tokens = newTokenCounter(log)
	}
	return s
}

// ProcessPath handles one expanded top-level entry. Entry-level problems are
// logged and swallowed here; only sink write failures propagate, since a
// broken sink ends the run.
func (s *catSession) ProcessPath(path string) error {
	if s.excluder.Excludes(path) {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		s.log.Errorf("%s is not a valid file or directory", path)
		return nil
	}

	switch {
	case info.IsDir():
		if !s.opts.Recursive {
			return nil
		}
		return s.processDir(path, s.loadIgnoreMatcher(path), path)
	case info.Mode().IsRegular():
		return s.processFile(path)
	default:
		s.log.Errorf("%s is not a valid file or directory", path)
		return nil
	}
}

// loadIgnoreMatcher reads root/.gitignore when --gitignore is set. Matching
// is anchored at root for the whole subtree; nested ignore files are not
// consulted.
func (s *catSession) loadIgnoreMatcher(root string) gitignore.IgnoreMatcher {
	if !s.opts.Gitignore {
		return nil
	}
	matcher, err := gitignore.NewGitIgnore(filepath.Join(root, ".gitignore"))
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warningf("Could not parse .gitignore in %s: %v", root, err)
		}
		return nil
	}
	return matcher
}

// processDir lists dir's immediate children in directory order. Exclusion is
// checked before anything else so an excluded directory is pruned, never
// descended. Files are processed immediately; subdirectories recurse only
// when the recursion flag is set.
func (s *catSession) processDir(dir string, ignore gitignore.IgnoreMatcher, ignoreRoot string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		s.log.Warningf("Failed to read directory %s: %v", dir, err)
		return nil
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if s.excluder.Excludes(path) {
			continue
		}
		if ignore != nil {
			rel, relErr := filepath.Rel(ignoreRoot, path)
			if relErr == nil && ignore.Match(rel, entry.IsDir()) {
				continue
			}
		}

		if entry.IsDir() {
			if s.opts.Recursive {
				if err := s.processDir(path, ignore, ignoreRoot); err != nil {
					return err
				}
			}
			continue
		}
		if !entry.Type().IsRegular() {
			s.log.Errorf("%s is not a valid file or directory", path)
			continue
		}
		if err := s.processFile(path); err != nil {
			return err
		}
	}
	return nil
}

// processFile reads the whole file, writes its header, classifies and
// renders the content, and updates the run statistics. Read failures are
// per-entry: logged, and the walk moves on.
func (s *catSession) processFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		s.log.Errorf("Failed to read %s: %v", path, err)
		return nil
	}

	display := normalizePath(path)
	header := strings.ReplaceAll(s.opts.Header, headerPlaceholder, display)
	if s.opts.Color {
		header = s.headerColor.Sprint(header)
	}
	if _, err := fmt.Fprintln(s.sink, header); err != nil {
		return err
	}

	isText := isTextContent(content)
	switch {
	case !isText && s.opts.SkipNonText:
		_, err = fmt.Fprintln(s.sink, nonTextMarker)
	case !isText && s.opts.Hex:
		err = renderHex(s.sink, content)
	default:
		err = renderContent(s.sink, content, s.opts.Verbose)
	}
	if err != nil {
		return err
	}

	s.fileCount++
	if s.opts.Counter {
		s.log.Infof("Files processed so far: %d", s.fileCount)
	}
	if s.tokens != nil && isText {
		n := s.tokens.Count(string(content))
		s.tokenTotal += n
		s.log.Infof("Tokens in %s: %d", display, n)
	}
	return nil
}

// Finish logs the run totals.
func (s *catSession) Finish() {
	if s.opts.Counter {
		s.log.Infof("Total files processed: %d", s.fileCount)
	}
	if s.tokens != nil {
		s.log.Infof("Total tokens: %d", s.tokenTotal)
	}
}
