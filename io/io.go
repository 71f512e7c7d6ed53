// Package bossyio holds the terminal-facing pieces of go-bossy: stream
// bindings, colour detection, the ANSI palette used by usage text and a
// small levelled logger.
package bossyio

import (
	stdio "io"
	"os"

	"golang.org/x/term"
)

// isTerminal is swapped by tests to simulate attached terminals.
var isTerminal = term.IsTerminal

// ColorMode selects how colour support is decided.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// IOManager centralizes the output streams and terminal capabilities.
type IOManager struct {
	out stdio.Writer
	err stdio.Writer

	mode ColorMode

	stdout *os.File
	stderr *os.File
}

// New returns a manager bound to process stdio with automatic colour
// detection.
func New() *IOManager {
	return &IOManager{
		out:    os.Stdout,
		err:    os.Stderr,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithOut sets the standard output writer and returns the manager for chaining.
func (m *IOManager) WithOut(w stdio.Writer) *IOManager { m.out = w; return m }

// WithErr sets the standard error writer and returns the manager for chaining.
func (m *IOManager) WithErr(w stdio.Writer) *IOManager { m.err = w; return m }

// ForceColor forces color output on, regardless of environment.
func (m *IOManager) ForceColor() *IOManager { m.mode = ColorAlways; return m }

// NoColor disables color output, regardless of environment.
func (m *IOManager) NoColor() *IOManager { m.mode = ColorNever; return m }

// ColorAuto goes back to detecting colour support from the terminal.
func (m *IOManager) ColorAuto() *IOManager { m.mode = ColorAuto; return m }

// Mode reports the configured colour mode.
func (m *IOManager) Mode() ColorMode { return m.mode }

// Out returns the configured standard output writer.
func (m *IOManager) Out() stdio.Writer { return m.out }

// Err returns the configured standard error writer.
func (m *IOManager) Err() stdio.Writer { return m.err }

// IsTTY reports whether both stdout and stderr are attached to a terminal.
func (m *IOManager) IsTTY() bool {
	return fileIsTerminal(m.stdout) && fileIsTerminal(m.stderr)
}

// SupportsColor decides whether ANSI sequences should be emitted.
// Forced modes win, then NO_COLOR and FORCE_COLOR, then terminal detection.
func (m *IOManager) SupportsColor() bool {
	switch m.mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	case ColorAuto:
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	return m.IsTTY()
}

// Palette returns the colour palette matching SupportsColor.
func (m *IOManager) Palette() Palette {
	return NewPalette(m.SupportsColor())
}

func fileIsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isTerminal(int(f.Fd()))
}
