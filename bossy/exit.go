package bossy

import (
	"errors"
	"reflect"
)

// ExitError requests a specific exit code from a caller's own code path.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCodeDefaults holds the codes used when no specific mapping matches.
type ExitCodeDefaults struct {
	Success         int // default: 0
	GeneralError    int // default: 1
	MisusageError   int // default: 2
	ValidationError int // default: 3
}

func defaultExitDefaults() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2, ValidationError: 3}
}

// ExitCodeManager maps errors and parse categories to process exit codes.
type ExitCodeManager struct {
	codesByType map[reflect.Type]int
	codesByCLI  map[ErrorType]int
	defaults    ExitCodeDefaults
}

// NewExitCodeManager returns a manager with every parse category mapped
// to the misusage code and definition errors to the validation code.
func NewExitCodeManager() *ExitCodeManager {
	m := &ExitCodeManager{
		codesByType: make(map[reflect.Type]int),
		codesByCLI:  make(map[ErrorType]int),
		defaults:    defaultExitDefaults(),
	}
	for _, typ := range []ErrorType{
		ErrorTypeInvalidOption,
		ErrorTypeUnknownFlag,
		ErrorTypeMissingValue,
		ErrorTypeInvalidValue,
		ErrorTypeMultipleValues,
		ErrorTypeMissingRequired,
	} {
		m.codesByCLI[typ] = m.defaults.MisusageError
	}
	m.codesByType[reflect.TypeOf(&DefinitionError{})] = m.defaults.ValidationError
	return m
}

// DefineError maps a concrete error type to an exit code. A matching
// type takes precedence over the defaults but not over an ExitError.
func (e *ExitCodeManager) DefineError(err error, code int) *ExitCodeManager {
	if err == nil {
		return e
	}
	e.codesByType[reflect.TypeOf(err)] = code
	return e
}

// DefineCLI overrides the exit code used for one parse error category.
func (e *ExitCodeManager) DefineCLI(typ ErrorType, code int) *ExitCodeManager {
	e.codesByCLI[typ] = code
	return e
}

// Default replaces the fallback codes. Category mappings already
// registered keep their values.
func (e *ExitCodeManager) Default(d ExitCodeDefaults) *ExitCodeManager {
	e.defaults = d
	return e
}

// Resolve converts err to an exit code. Precedence:
//  1. ExitError (requested code)
//  2. ParseError category (DefineCLI)
//  3. concrete error type (DefineError)
//  4. defaults
func (e *ExitCodeManager) Resolve(err error) int {
	if err == nil {
		return e.defaults.Success
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		if code, ok := e.codesByCLI[parseErr.Type]; ok {
			return code
		}
		return e.defaults.MisusageError
	}

	for t, code := range e.codesByType {
		if errors.As(err, reflect.New(t).Interface()) {
			return code
		}
	}
	return e.defaults.GeneralError
}

var defaultExitCodes = NewExitCodeManager()

// ExitCode resolves err with the default mapping.
func ExitCode(err error) int {
	return defaultExitCodes.Resolve(err)
}
