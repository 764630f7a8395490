package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExcluderInvalidPattern(t *testing.T) {
	_, err := NewExcluder([]string{"*.txt", "[invalid"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[invalid")
}

func TestNewExcluderEmpty(t *testing.T) {
	e, err := NewExcluder(nil)
	require.NoError(t, err)
	assert.False(t, e.Excludes("anything.txt"))
}

func TestExcluderExactMatch(t *testing.T) {
	e, err := NewExcluder([]string{"secret.txt", "build/out.log"})
	require.NoError(t, err)

	assert.True(t, e.Excludes("secret.txt"))
	assert.True(t, e.Excludes("./secret.txt"))
	assert.True(t, e.Excludes("build/out.log"))
	assert.False(t, e.Excludes("Secret.txt"), "exact match is case-sensitive")
	assert.False(t, e.Excludes("secret.txt.bak"))
}

func TestExcluderGlobMatch(t *testing.T) {
	e, err := NewExcluder([]string{"*.log", "vendor/**", "file?.txt", "[ab].md"})
	require.NoError(t, err)

	tests := []struct {
		path string
		want bool
	}{
		{"debug.log", true},
		{"dir/debug.log", false}, // single star stays within a segment
		{"vendor/pkg/mod.go", true},
		{"vendor2/pkg/mod.go", false},
		{"file1.txt", true},
		{"file12.txt", false},
		{"a.md", true},
		{"c.md", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, e.Excludes(tt.path), "path %q", tt.path)
	}
}

// Exclusion must be invariant under separator style and leading "./".
func TestExcluderNormalizationInvariance(t *testing.T) {
	e, err := NewExcluder([]string{"build/*.o"})
	require.NoError(t, err)

	variants := []string{
		"build/main.o",
		"./build/main.o",
		`build\main.o`,
		`.\build\main.o`,
	}
	for _, v := range variants {
		assert.True(t, e.Excludes(v), "variant %q", v)
	}
}

func TestExcluderPatternWithDotSlash(t *testing.T) {
	e, err := NewExcluder([]string{"./notes.md"})
	require.NoError(t, err)

	assert.True(t, e.Excludes("notes.md"))
	assert.True(t, e.Excludes("./notes.md"))
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a/b/c.txt", "a/b/c.txt"},
		{`a\b\c.txt`, "a/b/c.txt"},
		{"./a.txt", "a.txt"},
		{"././a.txt", "a.txt"},
		{"a./b.txt", "a./b.txt"}, // only a leading marker is stripped
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizePath(tt.in), "input %q", tt.in)
	}
}
