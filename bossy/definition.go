package bossy

import "fmt"

// Type is the kind of an option.
type Type int

const (
	TypeString Type = iota
	TypeBoolean
	TypeNumber
	TypeRange
	TypeJSON
	TypeHelp
)

var typeNames = map[Type]string{
	TypeString:  "string",
	TypeBoolean: "boolean",
	TypeNumber:  "number",
	TypeRange:   "range",
	TypeJSON:    "json",
	TypeHelp:    "help",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

func (t Type) valid() bool {
	_, ok := typeNames[t]
	return ok
}

// ParseType maps a type name from a definition file to a Type.
func ParseType(name string) (Type, error) {
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown option type %q", name)
}

// Primitives controls how JSON options treat values that are not
// objects or arrays.
type Primitives int

const (
	// PrimitivesOff keeps the raw text when the value is not an object or
	// array.
	PrimitivesOff Primitives = iota
	// PrimitivesOn keeps decoded numbers, booleans, null and strings.
	PrimitivesOn
	// PrimitivesStrict rejects text that is not valid JSON and rejects
	// primitive results.
	PrimitivesStrict
)

func (p Primitives) String() string {
	switch p {
	case PrimitivesOff:
		return "false"
	case PrimitivesOn:
		return "true"
	case PrimitivesStrict:
		return "strict"
	default:
		return fmt.Sprintf("Primitives(%d)", int(p))
	}
}

// Option declares one recognized option.
type Option struct {
	Name string
	// Alias lists other spellings. An empty alias is a rendering hint
	// only and never matches a token.
	Alias           []string
	Type            Type
	Multiple        bool
	Description     string
	Required        bool
	Default         Value
	Valid           []Value
	ParsePrimitives Primitives
}

// names returns the primary name followed by every non-empty alias.
func (o *Option) names() []string {
	out := make([]string, 0, 1+len(o.Alias))
	out = append(out, o.Name)
	for _, a := range o.Alias {
		if a != "" {
			out = append(out, a)
		}
	}
	return out
}

func (o *Option) aliases() []string {
	return o.names()[1:]
}

// Definition is the ordered list of options a parser recognizes.
// Declaration order drives defaults, required checks and usage output.
type Definition []Option

// Lookup returns the option whose primary name is name.
func (d Definition) Lookup(name string) (*Option, bool) {
	for i := range d {
		if d[i].Name == name {
			return &d[i], true
		}
	}
	return nil, false
}

// table is the name index built for one parse call.
type table struct {
	byName map[string]*Option
	names  []string
}

func newTable(def Definition) *table {
	t := &table{byName: make(map[string]*Option, len(def)*2)}
	for i := range def {
		opt := &def[i]
		for _, name := range opt.names() {
			t.byName[name] = opt
			t.names = append(t.names, name)
		}
	}
	return t
}

func (t *table) lookup(name string) (*Option, bool) {
	opt, ok := t.byName[name]
	return opt, ok
}
