package bossy

import (
	"fmt"
	"strings"

	"github.com/dzonerzy/go-bossy/internal/fuzzy"
)

// ErrorType represents error categories for parse failures.
// These categories drive exit-code mapping (via ExitCodeManager).
type ErrorType string

const (
	ErrorTypeInvalidOption   ErrorType = "invalid_option"
	ErrorTypeUnknownFlag     ErrorType = "unknown_flag"
	ErrorTypeMissingValue    ErrorType = "missing_value"
	ErrorTypeInvalidValue    ErrorType = "invalid_value"
	ErrorTypeMultipleValues  ErrorType = "multiple_values"
	ErrorTypeMissingRequired ErrorType = "missing_required"
)

// ParseError is a problem with the command line itself. Error returns
// the bare diagnostic, or the full usage text for missing required
// options.
type ParseError struct {
	Type    ErrorType
	Message string
	// Flag is the option name or token the error is about.
	Flag string
	// Suggestions holds close option names for unknown options.
	Suggestions []string
}

func (e *ParseError) Error() string {
	return e.Message
}

// NewParseError creates a new ParseError with the given type and message
func NewParseError(errType ErrorType, message string) *ParseError {
	return &ParseError{
		Type:    errType,
		Message: message,
	}
}

func errEmptyDash() *ParseError {
	return NewParseError(ErrorTypeInvalidOption, "Invalid empty '-' option")
}

func errEmptyDoubleDash() *ParseError {
	return NewParseError(ErrorTypeInvalidOption, "Invalid empty '--' option")
}

func errMissingValue(name string) *ParseError {
	err := NewParseError(ErrorTypeMissingValue, fmt.Sprintf("Invalid option: %s missing value", name))
	err.Flag = name
	return err
}

func errUnknown(candidate string, known []string) *ParseError {
	err := NewParseError(ErrorTypeUnknownFlag, "Unknown option: "+candidate)
	err.Flag = candidate
	err.Suggestions = fuzzy.Suggest(candidate, known, 2, 3)
	return err
}

func errNonNumber(name string) *ParseError {
	err := NewParseError(ErrorTypeInvalidValue, "Invalid value (non-number) for option: "+name)
	err.Flag = name
	return err
}

func errNotValid(name string, valid []Value) *ParseError {
	quoted := make([]string, len(valid))
	for i, v := range valid {
		quoted[i] = "'" + v.joinText() + "'"
	}
	msg := fmt.Sprintf("Invalid value for option: %s (valid: %s)", name, strings.Join(quoted, ","))
	err := NewParseError(ErrorTypeInvalidValue, msg)
	err.Flag = name
	return err
}

func errJSON(name, reason string) *ParseError {
	err := NewParseError(ErrorTypeInvalidValue, fmt.Sprintf("Invalid value for option: %s (%s)", name, reason))
	err.Flag = name
	return err
}

func errMultiple(name string) *ParseError {
	err := NewParseError(ErrorTypeMultipleValues, "Multiple values are not allowed for option: "+name)
	err.Flag = name
	return err
}

func errRequired(name, usage string) *ParseError {
	err := NewParseError(ErrorTypeMissingRequired, usage)
	err.Flag = name
	return err
}

// Violation is one problem found in a definition.
type Violation struct {
	Option  string
	Message string
}

func (v Violation) String() string {
	if v.Option == "" {
		return v.Message
	}
	return fmt.Sprintf("%q %s", v.Option, v.Message)
}

// DefinitionError reports an unusable definition. It is a programming
// error in the caller, returned before any argument is looked at.
type DefinitionError struct {
	Violations []Violation
}

func (e *DefinitionError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return "Invalid definition: " + strings.Join(parts, "; ")
}
