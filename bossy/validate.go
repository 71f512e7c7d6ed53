package bossy

import (
	"fmt"
	"regexp"
)

var validName = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9.-]*$`)

// Validate checks a definition before use and reports every violation
// at once as a *DefinitionError.
func Validate(def Definition) error {
	var violations []Violation
	add := func(opt, format string, args ...any) {
		violations = append(violations, Violation{Option: opt, Message: fmt.Sprintf(format, args...)})
	}

	if len(def) == 0 {
		return nil
	}

	owners := make(map[string]int, len(def)*2)
	for i := range def {
		opt := &def[i]
		if !validName.MatchString(opt.Name) {
			add(opt.Name, "is not a valid option name")
		}
		if !opt.Type.valid() {
			add(opt.Name, "has unknown type %d", int(opt.Type))
		}

		for _, name := range opt.names() {
			if owner, taken := owners[name]; taken {
				if owner == i {
					add(opt.Name, "repeats the name %q", name)
				} else {
					add(opt.Name, "claims %q which already belongs to %q", name, def[owner].Name)
				}
				continue
			}
			owners[name] = i
		}

		if opt.Type == TypeJSON {
			if opt.Multiple {
				add(opt.Name, "cannot be multiple with type json")
			}
			if len(opt.Valid) > 0 {
				add(opt.Name, "cannot restrict valid values with type json")
			}
			if !opt.Default.IsAbsent() && !opt.Default.IsCompound() {
				add(opt.Name, "default must be an object or array for type json")
			}
		} else if opt.ParsePrimitives != PrimitivesOff {
			add(opt.Name, "parsePrimitives is only allowed with type json")
		}
		if opt.ParsePrimitives < PrimitivesOff || opt.ParsePrimitives > PrimitivesStrict {
			add(opt.Name, "has unknown parsePrimitives mode %d", int(opt.ParsePrimitives))
		}
	}

	if len(violations) > 0 {
		return &DefinitionError{Violations: violations}
	}
	return nil
}
