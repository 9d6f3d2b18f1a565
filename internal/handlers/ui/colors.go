package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// General Purpose Colors
var (
	InfoColor   = color.New(color.FgCyan).SprintFunc()
	ErrorColor  = color.New(color.FgRed).SprintFunc()
	DetailColor = color.New(color.FgHiBlack).SprintFunc() // For less prominent details like the config path
)

// Alias Specific Colors
var (
	AliasNameColor = color.New(color.FgYellow).SprintFunc()
	AliasCmdColor  = color.New(color.FgWhite).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// ForWriter returns colorize when w is a terminal and plain formatting
// otherwise. The color package only checks stdout, so stderr output needs
// its own check.
func ForWriter(w io.Writer, colorize func(a ...interface{}) string) func(a ...interface{}) string {
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return colorize
	}
	return fmt.Sprint
}
