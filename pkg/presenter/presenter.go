// Package presenter provides consistent CLI output for user-facing messages:
// success, warning, error and informational lines with color support and a
// quiet mode. Diagnostics go to stderr so piped command output stays clean.
package presenter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Presenter writes user-facing messages.
type Presenter struct {
	out    io.Writer
	errout io.Writer
	quiet  bool
}

// New creates a Presenter writing to stdout/stderr.
func New() *Presenter {
	return NewWithWriters(os.Stdout, os.Stderr)
}

// NewWithWriters creates a Presenter with custom writers, used by tests.
func NewWithWriters(out, errout io.Writer) *Presenter {
	return &Presenter{out: out, errout: errout}
}

// SetQuiet suppresses everything except errors.
func (p *Presenter) SetQuiet(quiet bool) { p.quiet = quiet }

// Success prints a green success line.
func (p *Presenter) Success(message string) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, color.GreenString("✓ %s", message))
}

// Warning prints a yellow warning line to stderr.
func (p *Presenter) Warning(message string) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.errout, color.YellowString("⚠ %s", message))
}

// Error prints a red error line to stderr, with optional context.
func (p *Presenter) Error(err error, context string) {
	if context != "" {
		fmt.Fprintln(p.errout, color.RedString("✗ %s: %v", context, err))
		return
	}
	fmt.Fprintln(p.errout, color.RedString("✗ %v", err))
}

// Info prints a plain informational line.
func (p *Presenter) Info(message string) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, message)
}

// Section prints an underlined section title.
func (p *Presenter) Section(title string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "\n%s\n%s\n", color.CyanString(title), strings.Repeat("-", len(title)))
}
