package util

import (
	"github.com/fatih/color"
	"github.com/mgutz/ansi"
)

var (
	bold = ansi.ColorFunc("default+b")
)

// Bold makes the input string bold. The string is returned as is if colored
// output is disabled.
func Bold(s string) string {
	if color.NoColor {
		return s
	}
	return bold(s)
}
