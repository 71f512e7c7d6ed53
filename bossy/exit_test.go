package bossy

import (
	"errors"
	"fmt"
	"testing"
)

type customError struct{}

func (customError) Error() string { return "custom" }

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"parse error", errUnknown("x", nil), 2},
		{"required", errRequired("b", "usage"), 2},
		{"wrapped parse error", fmt.Errorf("cli: %w", errNonNumber("n")), 2},
		{"definition error", &DefinitionError{}, 3},
		{"wrapped definition error", fmt.Errorf("load: %w", &DefinitionError{}), 3},
		{"other", errors.New("boom"), 1},
		{"exit error", &ExitError{Code: 42}, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitCodeManagerOverrides(t *testing.T) {
	m := NewExitCodeManager().
		DefineCLI(ErrorTypeUnknownFlag, 64).
		DefineError(customError{}, 9)

	if got := m.Resolve(errUnknown("x", nil)); got != 64 {
		t.Errorf("Expected DefineCLI override 64, got %d", got)
	}
	if got := m.Resolve(errMultiple("a")); got != 2 {
		t.Errorf("Expected other categories unchanged, got %d", got)
	}
	if got := m.Resolve(fmt.Errorf("wrap: %w", customError{})); got != 9 {
		t.Errorf("Expected DefineError mapping 9, got %d", got)
	}
	if got := m.Resolve(&ExitError{Code: 5, Err: errUnknown("x", nil)}); got != 5 {
		t.Errorf("Expected ExitError to win, got %d", got)
	}

	m.Default(ExitCodeDefaults{Success: 0, GeneralError: 10, MisusageError: 20, ValidationError: 30})
	if got := m.Resolve(errors.New("x")); got != 10 {
		t.Errorf("Expected new general default 10, got %d", got)
	}
	if got := m.Resolve(&ParseError{Type: "custom"}); got != 20 {
		t.Errorf("Expected unmapped category to use misusage default, got %d", got)
	}
}

func TestExitErrorMessage(t *testing.T) {
	if got := (&ExitError{Code: 1}).Error(); got != "exit" {
		t.Errorf("Expected bare exit message, got %q", got)
	}
	inner := errors.New("inner")
	err := &ExitError{Code: 1, Err: inner}
	if err.Error() != "inner" || !errors.Is(err, inner) {
		t.Errorf("Expected ExitError to wrap its cause")
	}
}
