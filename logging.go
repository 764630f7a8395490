package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// logger writes tagged diagnostic lines ([error], [warning], [info]) to the
// log stream, separate from the content sink. Tag coloring is independent of
// header coloring.
type logger struct {
	out      io.Writer
	useColor bool

	errTag  *color.Color
	warnTag *color.Color
	infoTag *color.Color
}

// newLogger returns a logger writing to out. When useColor is set the tags
// are colored red, yellow, and blue; color codes are forced on regardless of
// whether out is a terminal, since the caller has already decided.
func newLogger(out io.Writer, useColor bool) *logger {
	l := &logger{
		out:      out,
		useColor: useColor,
		errTag:   color.New(color.FgRed),
		warnTag:  color.New(color.FgYellow),
		infoTag:  color.New(color.FgBlue),
	}
	if useColor {
		l.errTag.EnableColor()
		l.warnTag.EnableColor()
		l.infoTag.EnableColor()
	}
	return l
}

// stderrIsTerminal reports whether stderr is attached to a terminal, which
// decides the default for log coloring.
func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (l *logger) Errorf(format string, args ...any) {
	l.logf(l.errTag, "error", format, args...)
}

func (l *logger) Warningf(format string, args ...any) {
	l.logf(l.warnTag, "warning", format, args...)
}

func (l *logger) Infof(format string, args ...any) {
	l.logf(l.infoTag, "info", format, args...)
}

func (l *logger) logf(tag *color.Color, name, format string, args ...any) {
	label := name
	if l.useColor {
		label = tag.Sprint(name)
	}
	fmt.Fprintf(l.out, "[%s] %s\n", label, fmt.Sprintf(format, args...))
}
