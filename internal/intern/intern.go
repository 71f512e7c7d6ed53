// Package intern hands out canonical strings for single characters so
// splitting a short-flag cluster such as "-abc" does not allocate one
// string per letter.
package intern

// ascii holds one string per printable ASCII character.
var ascii [128]string

//nolint:gochecknoinits // table is filled once at start-up
func init() {
	for c := ' '; c < 127; c++ {
		ascii[c] = string(c)
	}
}

// Char returns the string for r, shared for printable ASCII.
func Char(r rune) string {
	if r >= ' ' && r < 127 {
		return ascii[r]
	}
	return string(r)
}

// Split breaks s into one string per rune.
func Split(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, Char(r))
	}
	return out
}
