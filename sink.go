package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
)

var (
	errOutputIsDir  = errors.New("output path is a directory")
	errOutputExists = errors.New("output file already exists")
)

// validateOutput rejects an explicit output path that is a directory or an
// existing file. Called before any content is read or written, so a run
// either proceeds cleanly or fails with the destination untouched.
func validateOutput(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("cannot stat output path %s: %w", path, err)
	}
	if info.IsDir() {
		return errOutputIsDir
	}
	return errOutputExists
}

// outputSink is the single destination for rendered content during a run:
// stdout by default, a newly created file with -o, or an in-memory buffer
// copied to the system clipboard with --clipboard. It is opened at most once
// and must be closed on every exit path.
type outputSink struct {
	w    io.Writer
	file *os.File
	buf  *bufio.Writer
	clip *bytes.Buffer
}

// openSink creates the run's sink. The output path must already have passed
// validateOutput.
func openSink(outputFile string, toClipboard bool) (*outputSink, error) {
	if toClipboard {
		clip := &bytes.Buffer{}
		return &outputSink{w: clip, clip: clip}, nil
	}
	if outputFile != "" {
		f, err := os.OpenFile(outputFile, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot create output file %s: %w", outputFile, err)
		}
		buf := bufio.NewWriter(f)
		return &outputSink{w: buf, file: f, buf: buf}, nil
	}
	return &outputSink{w: os.Stdout}, nil
}

func (s *outputSink) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

// Close flushes and releases the sink. For the clipboard sink this is the
// point where the accumulated output is actually published.
func (s *outputSink) Close() error {
	if s.buf != nil {
		if err := s.buf.Flush(); err != nil {
			s.file.Close()
			return err
		}
		return s.file.Close()
	}
	if s.clip != nil {
		return clipboard.WriteAll(s.clip.String())
	}
	return nil
}
