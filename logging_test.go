package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerPlainTags(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, false)

	log.Errorf("bad thing: %d", 1)
	log.Warningf("odd thing")
	log.Infof("neutral thing")

	assert.Equal(t, "[error] bad thing: 1\n[warning] odd thing\n[info] neutral thing\n", buf.String())
}

func TestLoggerColoredTags(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, true)

	log.Errorf("boom")
	out := buf.String()
	assert.Contains(t, out, "\x1b[31m", "error tag is red")
	assert.Contains(t, out, "error")
	assert.Contains(t, out, "boom")

	buf.Reset()
	log.Warningf("hmm")
	assert.Contains(t, buf.String(), "\x1b[33m", "warning tag is yellow")

	buf.Reset()
	log.Infof("fyi")
	assert.Contains(t, buf.String(), "\x1b[34m", "info tag is blue")
}
