package bossyio

import (
	"bytes"
	"strings"
	"testing"
)

func fakeTerminal(t *testing.T, attached bool) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return attached }
	t.Cleanup(func() { isTerminal = orig })
}

func TestColorOverrides(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "")
	fakeTerminal(t, false)

	m := New()
	if m.SupportsColor() {
		t.Fatalf("no terminal attached, colour should be off")
	}
	if !m.ForceColor().SupportsColor() {
		t.Fatalf("ForceColor should enable")
	}
	if m.NoColor().SupportsColor() {
		t.Fatalf("NoColor should disable")
	}
	if m.ColorAuto().Mode() != ColorAuto {
		t.Fatalf("expected auto mode")
	}
}

func TestColorAutoDetectsTerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "")
	fakeTerminal(t, true)

	if !New().SupportsColor() {
		t.Fatalf("stdout and stderr attached, colour should be on")
	}
}

func TestColorEnvironment(t *testing.T) {
	fakeTerminal(t, true)

	t.Setenv("NO_COLOR", "1")
	if New().SupportsColor() {
		t.Fatalf("NO_COLOR should disable")
	}
	if !New().ForceColor().SupportsColor() {
		t.Fatalf("ForceColor should win over NO_COLOR")
	}

	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "1")
	fakeTerminal(t, false)
	if !New().SupportsColor() {
		t.Fatalf("FORCE_COLOR should enable without a terminal")
	}
}

func TestPalette(t *testing.T) {
	on := NewPalette(true)
	tests := []struct {
		name  string
		paint func(string) string
		want  string
	}{
		{"green", on.Green, "\x1b[32mx\x1b[0m"},
		{"yellow", on.Yellow, "\x1b[33mx\x1b[0m"},
		{"gray", on.Gray, "\x1b[90mx\x1b[0m"},
		{"red", on.Red, "\x1b[31mx\x1b[0m"},
		{"magenta", on.Magenta, "\x1b[35mx\x1b[0m"},
		{"cyan", on.Cyan, "\x1b[36mx\x1b[0m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.paint("x"); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	off := NewPalette(false)
	if got := off.Green("x"); got != "x" {
		t.Errorf("disabled palette should not paint, got %q", got)
	}
	if off.Enabled() || !on.Enabled() {
		t.Errorf("Enabled mismatch")
	}
}

func TestFluentRedirects(t *testing.T) {
	var out, errOut bytes.Buffer
	m := New().WithOut(&out).WithErr(&errOut)
	if m.Out() != &out || m.Err() != &errOut {
		t.Fatalf("writers not applied")
	}
	if !strings.Contains(m.NoColor().Palette().Green("ok"), "ok") {
		t.Fatalf("palette lost text")
	}
}
