package main

import (
	"fmt"
	"io"
	"strings"
)

const nonTextMarker = "Non-text file"

// renderContent writes content in the text rendering mode selected by
// verbose: raw lossy UTF-8 when set, filtered-printable otherwise.
func renderContent(w io.Writer, content []byte, verbose bool) error {
	if verbose {
		return renderRaw(w, content)
	}
	return renderFiltered(w, content)
}

// renderRaw decodes content as UTF-8, substituting the replacement
// character for invalid sequences, and writes it through unmodified.
func renderRaw(w io.Writer, content []byte) error {
	_, err := io.WriteString(w, strings.ToValidUTF8(string(content), "�"))
	return err
}

// renderFiltered passes printable ASCII, newline, tab, space, and carriage
// return through literally and renders every other byte as an escape of the
// form \u{7} followed by a space. A trailing newline closes the buffer.
func renderFiltered(w io.Writer, content []byte) error {
	var sb strings.Builder
	for _, b := range content {
		if isPrintableASCII(b) || b == '\n' || b == '\t' || b == ' ' || b == '\r' {
			sb.WriteByte(b)
		} else {
			fmt.Fprintf(&sb, "\\u{%x} ", b)
		}
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

// renderHex writes a classic hex dump: sixteen bytes per row, each row
// prefixed with an eight-digit zero-padded offset and two spaces, each byte
// as two lowercase hex digits and a space.
func renderHex(w io.Writer, content []byte) error {
	var sb strings.Builder
	for i, b := range content {
		if i%16 == 0 {
			if i != 0 {
				sb.WriteByte('\n')
			}
			fmt.Fprintf(&sb, "%08x  ", i)
		}
		fmt.Fprintf(&sb, "%02x ", b)
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}
