package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
)

// sectionHeading formats the banner printed above each muscle group's
// exercise table, e.g. "Chest · 3 exercises".
func sectionHeading(out io.Writer, label string, exercises int) string {
	heading := strings.TrimSpace(label)
	switch exercises {
	case 0:
	case 1:
		heading += " · 1 exercise"
	default:
		heading += fmt.Sprintf(" · %d exercises", exercises)
	}
	if colorEnabled(out) {
		heading = ansiBold + heading + ansiReset
	}
	return heading
}

// colorEnabled reports whether out is an interactive terminal.
func colorEnabled(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
