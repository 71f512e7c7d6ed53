package bossy

// Result is the outcome of a successful parse: every declared option
// and alias mapped to its final value, plus "_" for positional values.
type Result struct {
	values *Object
	help   bool
}

// Get returns the value stored under name, or Absent.
func (r *Result) Get(name string) Value {
	v, _ := r.values.Get(name)
	return v
}

// Has reports whether name holds a value other than Absent.
func (r *Result) Has(name string) bool {
	return !r.Get(name).IsAbsent()
}

// Bool returns a boolean option, false when unset or of another kind.
func (r *Result) Bool(name string) bool {
	b, _ := r.Get(name).AsBool()
	return b
}

// String returns a string option. ok is false when unset or not a string.
func (r *Result) String(name string) (string, bool) {
	return r.Get(name).AsString()
}

// Int returns a number option. ok is false when unset or not a number.
func (r *Result) Int(name string) (int64, bool) {
	return r.Get(name).AsInt()
}

// Ints returns the integers held by a range option or a multiple number
// option. A single number is returned as a one-element slice.
func (r *Result) Ints(name string) []int64 {
	v := r.Get(name)
	if n, ok := v.AsInt(); ok {
		return []int64{n}
	}
	items, _ := v.AsList()
	out := make([]int64, 0, len(items))
	for _, item := range items {
		if n, ok := item.AsInt(); ok {
			out = append(out, n)
		}
	}
	return out
}

// Strings returns the text of every element of a list value, or of the
// single scalar stored under name.
func (r *Result) Strings(name string) []string {
	v := r.Get(name)
	switch {
	case v.IsAbsent():
		return nil
	case v.IsList():
		out := make([]string, len(v.list))
		for i, item := range v.list {
			out[i] = item.scalarText()
		}
		return out
	default:
		return []string{v.scalarText()}
	}
}

// Positional returns the unflagged arguments in order.
func (r *Result) Positional() []string {
	return r.Strings(positionalKey)
}

// HelpRequested reports whether a help option appeared on the command
// line. When it did, earlier parse errors were suppressed.
func (r *Result) HelpRequested() bool {
	return r.help
}

// Object returns the underlying ordered mapping. Callers own it.
func (r *Result) Object() *Object {
	return r.values
}

// RollUp assembles name and every "name.<path>" key into one object.
func (r *Result) RollUp(name string) (*Object, error) {
	return RollUp(name, r.values)
}

func (r *Result) MarshalJSON() ([]byte, error) {
	return r.values.MarshalJSON()
}
