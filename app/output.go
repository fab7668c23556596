package main

import "os"

const (
	colorStart = "\x1b[01;31m"
	colorReset = "\x1b[m"
)

// colorize wraps s in the grep match-highlight escape sequence.
func colorize(s string) string {
	return colorStart + s + colorReset
}

// resolveUseColor turns --color=WHEN into a yes/no for this run.
// auto means "stdout is a terminal".
func resolveUseColor(when colorWhen) bool {
	switch when {
	case colorAlways:
		return true
	case colorAuto:
		info, err := os.Stdout.Stat()
		return err == nil && info.Mode()&os.ModeCharDevice != 0
	default:
		return false
	}
}
