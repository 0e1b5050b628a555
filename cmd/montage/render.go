package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

// colorizeStatus wraps a pass/fail word in green or red when the writer is
// a terminal. Buffers and pipes get the bare word.
func colorizeStatus(word string, passed bool, colorize bool) string {
	if !colorize {
		return word
	}
	if passed {
		return ansiGreen + word + ansiReset
	}
	return ansiRed + word + ansiReset
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
