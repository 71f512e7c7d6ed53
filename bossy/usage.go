package bossy

import (
	"strings"
	"unicode/utf8"

	"github.com/dzonerzy/go-bossy/internal/pool"
	bossyio "github.com/dzonerzy/go-bossy/io"
)

// columnGap is the minimum number of spaces between the two columns.
const columnGap = 5

// Usage renders the option table for def. A non-empty header adds a
// "Usage: <header>" line. Colours follow WithColors, or the terminal
// when it is not given.
func Usage(def Definition, header string, opts ...Setting) (string, error) {
	if err := Validate(def); err != nil {
		return "", err
	}
	return renderUsage(def, header, newSettings(opts).palette()), nil
}

func renderUsage(def Definition, header string, p bossyio.Palette) string {
	b := pool.GetBuffer()
	defer pool.PutBuffer(b)
	if header != "" {
		b.WriteString("Usage: " + header + "\n\n")
	} else {
		b.WriteString("\n")
	}

	plain := []string{"Options:"}
	painted := []string{"Options:"}
	descs := []string{"\n"}
	for i := range def {
		opt := &def[i]
		forms := formatForms(optionForms(opt))
		plain = append(plain, forms)
		painted = append(painted, p.Green(forms))
		descs = append(descs, describe(opt, p))
	}

	width := 0
	for _, cell := range plain {
		width = max(width, utf8.RuneCountInString(cell))
	}

	rows := make([]string, len(plain))
	for i := range plain {
		pad := width - utf8.RuneCountInString(plain[i]) + columnGap
		rows[i] = painted[i] + strings.Repeat(" ", pad) + descs[i]
	}
	b.WriteString(strings.Join(rows, "\n"))
	return b.String()
}

// optionForms picks the short spelling (the shortest alias shorter than
// the name) and lists every other spelling as a long form. A multi
// character name without any alias renders as a long form only; an
// empty alias keeps it as the short form.
func optionForms(opt *Option) (short string, longs []string) {
	short = opt.Name
	for _, a := range opt.aliases() {
		if len(a) < len(short) {
			short = a
		}
	}
	if len(opt.Alias) == 0 && len(short) > 1 {
		return "", []string{opt.Name}
	}
	for _, name := range opt.names() {
		if name != short {
			longs = append(longs, name)
		}
	}
	return short, longs
}

func formatForms(short string, longs []string) string {
	var b strings.Builder
	if short != "" {
		b.WriteString("  -" + short)
	}
	for i, long := range longs {
		if short != "" || i > 0 {
			b.WriteString(", ")
		} else {
			b.WriteString("  ")
		}
		b.WriteString("--" + long)
	}
	return b.String()
}

func describe(opt *Option, p bossyio.Palette) string {
	var parts []string
	if opt.Description != "" {
		parts = append(parts, p.Gray(opt.Description))
	}
	if opt.Default.Truthy() {
		parts = append(parts, p.Gray("("+opt.Default.String()+")"))
	}
	if opt.Required {
		parts = append(parts, p.Yellow("(required)"))
	}
	return strings.Join(parts, " ")
}
