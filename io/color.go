package bossyio

import (
	"github.com/fatih/color"
)

// Palette paints text with basic ANSI colours. A disabled palette
// returns text unchanged, so callers never branch on colour support.
type Palette struct {
	enabled bool
}

// NewPalette returns a palette that emits escape sequences only when
// enabled is true.
func NewPalette(enabled bool) Palette {
	return Palette{enabled: enabled}
}

// Enabled reports whether the palette emits escape sequences.
func (p Palette) Enabled() bool { return p.enabled }

// Paint wraps text in the SGR sequence for attr followed by a reset.
func (p Palette) Paint(attr color.Attribute, text string) string {
	c := color.New(attr)
	if p.enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(text)
}

func (p Palette) Green(text string) string   { return p.Paint(color.FgGreen, text) }
func (p Palette) Yellow(text string) string  { return p.Paint(color.FgYellow, text) }
func (p Palette) Red(text string) string     { return p.Paint(color.FgRed, text) }
func (p Palette) Magenta(text string) string { return p.Paint(color.FgMagenta, text) }
func (p Palette) Cyan(text string) string    { return p.Paint(color.FgCyan, text) }

// Gray uses the bright black code (90).
func (p Palette) Gray(text string) string { return p.Paint(color.FgHiBlack, text) }
