package intern

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestChar(t *testing.T) {
	tests := []struct {
		input    rune
		expected string
	}{
		{'a', "a"},
		{'Z', "Z"},
		{'5', "5"},
		{'@', "@"},
		{'-', "-"},
		{'é', "é"},
		{'\t', "\t"},
	}

	for _, test := range tests {
		if got := Char(test.input); got != test.expected {
			t.Errorf("Char(%q) = %q, want %q", test.input, got, test.expected)
		}
	}
}

func TestCharDoesNotAllocate(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_ = Char('v')
		_ = Char('Q')
		_ = Char('9')
	})
	if allocs != 0 {
		t.Errorf("Expected no allocations for ASCII, got %v", allocs)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{}},
		{"abc", []string{"a", "b", "c"}},
		{"C42", []string{"C", "4", "2"}},
		{"xé", []string{"x", "é"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Split(tt.input)); diff != "" {
				t.Errorf("Split mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
