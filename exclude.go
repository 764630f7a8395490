package main

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// excludeRule is a single exclusion pattern, compiled once at construction.
type excludeRule struct {
	pattern string // normalized pattern text, for exact matching
	matcher glob.Glob
}

// Excluder answers whether a path is vetoed by the run's exclusion rules.
// The rule set is immutable once built and safe to consult at every node of
// a recursive walk without recompilation.
type Excluder struct {
	rules []excludeRule
}

// NewExcluder compiles the given patterns. Any malformed pattern aborts
// construction entirely; there are no partial rule sets.
func NewExcluder(patterns []string) (*Excluder, error) {
	rules := make([]excludeRule, 0, len(patterns))
	for _, pat := range patterns {
		normalized := normalizePath(pat)
		g, err := glob.Compile(normalized, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pat, err)
		}
		rules = append(rules, excludeRule{pattern: normalized, matcher: g})
	}
	return &Excluder{rules: rules}, nil
}

// Excludes reports whether path matches any rule, either exactly or by
// glob. Normalization makes the check insensitive to separator style and to
// a leading "./" on either side.
func (e *Excluder) Excludes(path string) bool {
	p := normalizePath(path)

	for _, rule := range e.rules {
		if p == rule.pattern {
			return true
		}
	}

	for _, rule := range e.rules {
		if rule.matcher.Match(p) {
			return true
		}
	}
	return false
}

// normalizePath converts path separators to '/' and strips leading "./"
// markers so that matching is insensitive to how the path was spelled.
func normalizePath(path string) string {
	p := strings.ReplaceAll(path, `\`, "/")
	for strings.HasPrefix(p, "./") {
		p = p[2:]
	}
	return p
}
