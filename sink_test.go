package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOutput(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "taken.txt")
	writeTestFile(t, existing, "old contents")

	assert.NoError(t, validateOutput(""))
	assert.NoError(t, validateOutput(filepath.Join(dir, "fresh.txt")))
	assert.ErrorIs(t, validateOutput(existing), errOutputExists)
	assert.ErrorIs(t, validateOutput(dir), errOutputIsDir)
}

func TestOpenSinkFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	sink, err := openSink(path, false)
	require.NoError(t, err)
	fmt.Fprintln(sink, "first")
	fmt.Fprintln(sink, "second")
	require.NoError(t, sink.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(content))
}

// The file sink creates exclusively, so a pre-existing file is never
// truncated even if validation were skipped.
func TestOpenSinkRefusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	writeTestFile(t, path, "precious")

	_, err := openSink(path, false)
	require.Error(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "precious", string(content))
}

func TestOpenSinkClipboardBuffers(t *testing.T) {
	sink, err := openSink("", true)
	require.NoError(t, err)
	fmt.Fprint(sink, "captured")
	assert.Equal(t, "captured", sink.clip.String())
	// Close is not called: it would touch the system clipboard.
}

func TestOpenSinkDefaultIsStdout(t *testing.T) {
	sink, err := openSink("", false)
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, sink.w)
	require.NoError(t, sink.Close())
}
