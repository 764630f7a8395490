package main

import (
	tiktoken "github.com/pkoukk/tiktoken-go"
)

const tokenEncoding = "o200k_base"

// tokenCounter wraps a tiktoken encoder for the --tokens statistics.
type tokenCounter struct {
	enc *tiktoken.Tiktoken
}

// newTokenCounter initializes the encoder. On failure (for example no cached
// encoding data and no network) it logs a warning and returns nil; token
// counting is then disabled for the rest of the run.
func newTokenCounter(log *logger) *tokenCounter {
	enc, err := tiktoken.GetEncoding(tokenEncoding)
	if err != nil {
		log.Warningf("Token counting disabled: %v", err)
		return nil
	}
	return &tokenCounter{enc: enc}
}

// Count returns the number of tokens in text.
func (c *tokenCounter) Count(text string) int {
	if c == nil || c.enc == nil {
		return 0
	}
	return len(c.enc.EncodeOrdinary(text))
}
