// Package ui renders artscan's console output.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
)

var (
	isTerminal   = isatty.IsTerminal(os.Stdout.Fd())
	colorEnabled = true
)

// DisableColors disables all color output.
func DisableColors() {
	colorEnabled = false
	isTerminal = false
	initStyles()
}

// IsTerminal reports whether styled output should be emitted.
func IsTerminal() bool {
	return isTerminal && colorEnabled
}

// Section prints a section header.
func Section(title string) {
	fmt.Println()
	if IsTerminal() {
		fmt.Println("━━━ " + strings.ToUpper(title) + " ━━━")
	} else {
		fmt.Println(strings.ToUpper(title))
		fmt.Println(strings.Repeat("=", len(title)+6))
	}
}

// FormatBytes formats bytes to a human-readable size.
func FormatBytes(bytes int64) string {
	return humanize.Bytes(uint64(bytes))
}
