package main

// isTextContent reports whether every byte of content is printable ASCII,
// ASCII whitespace, or a carriage return. A single disqualifying byte
// (NUL, other control bytes, anything with the high bit set) makes the
// whole buffer binary. An empty buffer is text.
func isTextContent(content []byte) bool {
	for _, b := range content {
		if !isPrintableASCII(b) && !isASCIIWhitespace(b) && b != '\r' {
			return false
		}
	}
	return true
}

// isPrintableASCII reports whether b is an ASCII graphic character.
func isPrintableASCII(b byte) bool {
	return b >= '!' && b <= '~'
}

// isASCIIWhitespace reports whether b is an ASCII whitespace character
// (space, tab, newline, or form feed).
func isASCIIWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\f':
		return true
	}
	return false
}
