package bossy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dzonerzy/go-bossy/internal/pool"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindNull
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a parsed option value. The zero Value is Absent, which is
// distinct from an explicit Null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	list []Value
	obj  *Object
}

func AbsentValue() Value             { return Value{} }
func NullValue() Value               { return Value{kind: KindNull} }
func BoolValue(b bool) Value         { return Value{kind: KindBool, b: b} }
func IntValue(i int64) Value         { return Value{kind: KindInt, i: i} }
func FloatValue(f float64) Value     { return Value{kind: KindFloat, f: f} }
func StringValue(s string) Value     { return Value{kind: KindString, s: s} }
func ListValue(items ...Value) Value { return Value{kind: KindList, list: items} }

// ObjectValue wraps o; a nil o becomes an empty object.
func ObjectValue(o *Object) Value {
	if o == nil {
		o = NewObject()
	}
	return Value{kind: KindObject, obj: o}
}

// FromAny converts plain Go values into a Value. Maps are converted in
// sorted key order since Go maps carry none; use *Object to keep order.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return NullValue(), nil
	case Value:
		return x, nil
	case *Object:
		return ObjectValue(x), nil
	case bool:
		return BoolValue(x), nil
	case string:
		return StringValue(x), nil
	case int:
		return IntValue(int64(x)), nil
	case int8:
		return IntValue(int64(x)), nil
	case int16:
		return IntValue(int64(x)), nil
	case int32:
		return IntValue(int64(x)), nil
	case int64:
		return IntValue(x), nil
	case uint:
		return uintValue(uint64(x))
	case uint8:
		return IntValue(int64(x)), nil
	case uint16:
		return IntValue(int64(x)), nil
	case uint32:
		return IntValue(int64(x)), nil
	case uint64:
		return uintValue(x)
	case float32:
		return FloatValue(float64(x)), nil
	case float64:
		return FloatValue(x), nil
	case json.Number:
		return numberValue(string(x))
	case []string:
		items := make([]Value, len(x))
		for i, s := range x {
			items[i] = StringValue(s)
		}
		return ListValue(items...), nil
	case []int:
		items := make([]Value, len(x))
		for i, n := range x {
			items[i] = IntValue(int64(n))
		}
		return ListValue(items...), nil
	case []any:
		items := make([]Value, len(x))
		for i, item := range x {
			conv, err := FromAny(item)
			if err != nil {
				return Value{}, err
			}
			items[i] = conv
		}
		return ListValue(items...), nil
	case []map[string]any:
		items := make([]Value, len(x))
		for i, item := range x {
			conv, err := FromAny(item)
			if err != nil {
				return Value{}, err
			}
			items[i] = conv
		}
		return ListValue(items...), nil
	case map[string]any:
		obj := NewObject()
		for _, k := range sortedKeys(x) {
			conv, err := FromAny(x[k])
			if err != nil {
				return Value{}, err
			}
			obj.Set(k, conv)
		}
		return ObjectValue(obj), nil
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", v)
	}
}

// MustValue is FromAny for literals known to convert.
func MustValue(v any) Value {
	conv, err := FromAny(v)
	if err != nil {
		panic(err)
	}
	return conv
}

func uintValue(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return Value{}, fmt.Errorf("value %d overflows int64", u)
	}
	return IntValue(int64(u)), nil
}

func numberValue(text string) (Value, error) {
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return IntValue(i), nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Value{}, fmt.Errorf("invalid number %q", text)
	}
	return FloatValue(f), nil
}

func (v Value) Kind() Kind       { return v.kind }
func (v Value) IsAbsent() bool   { return v.kind == KindAbsent }
func (v Value) IsNull() bool     { return v.kind == KindNull }
func (v Value) IsList() bool     { return v.kind == KindList }
func (v Value) IsObject() bool   { return v.kind == KindObject }
func (v Value) IsCompound() bool { return v.kind == KindList || v.kind == KindObject }

// IsPrimitive reports whether v is a scalar JSON value (null, bool,
// number or string).
func (v Value) IsPrimitive() bool {
	switch v.kind {
	case KindNull, KindBool, KindInt, KindFloat, KindString:
		return true
	default:
		return false
	}
}

func (v Value) AsBool() (bool, bool)     { return v.b, v.kind == KindBool }
func (v Value) AsInt() (int64, bool)     { return v.i, v.kind == KindInt }
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }
func (v Value) AsList() ([]Value, bool)  { return v.list, v.kind == KindList }
func (v Value) AsObject() (*Object, bool) {
	return v.obj, v.kind == KindObject
}

// AsFloat returns numeric values as float64, integers included.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	default:
		return 0, false
	}
}

// Truthy follows the usual scripting notion: absent, null, false, zero
// and the empty string are false; everything else is true.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindAbsent, KindNull:
		return false
	case KindBool:
		return v.b
	case KindInt:
		return v.i != 0
	case KindFloat:
		return v.f != 0 && !math.IsNaN(v.f)
	case KindString:
		return v.s != ""
	default:
		return true
	}
}

// Equal compares values structurally. Integers and floats compare by
// numeric value.
func (v Value) Equal(o Value) bool {
	if vf, ok := v.AsFloat(); ok {
		of, ok := o.AsFloat()
		if !ok {
			return false
		}
		if v.kind == KindInt && o.kind == KindInt {
			return v.i == o.i
		}
		return vf == of
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == o.b
	case KindString:
		return v.s == o.s
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return v.obj.Equal(o.obj)
	default:
		return true
	}
}

// Clone returns a deep copy.
func (v Value) Clone() Value {
	switch v.kind {
	case KindList:
		items := make([]Value, len(v.list))
		for i, item := range v.list {
			items[i] = item.Clone()
		}
		return ListValue(items...)
	case KindObject:
		return ObjectValue(v.obj.Clone())
	default:
		return v
	}
}

// Interface converts v to plain Go values: nil, bool, int64, float64,
// string, []any and map[string]any. Absent converts to nil too.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindList:
		out := make([]any, len(v.list))
		for i, item := range v.list {
			out[i] = item.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, v.obj.Len())
		for _, k := range v.obj.Keys() {
			item, _ := v.obj.Get(k)
			if !item.IsAbsent() {
				out[k] = item.Interface()
			}
		}
		return out
	default:
		return nil
	}
}

// String renders the value for humans: strings unquoted, lists and
// objects as JSON.
func (v Value) String() string {
	switch v.kind {
	case KindAbsent:
		return "<absent>"
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("<%s>", v.kind)
		}
		return string(data)
	}
}

// MarshalJSON encodes v; Absent encodes as null.
func (v Value) MarshalJSON() ([]byte, error) {
	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)
	if err := v.encode(buf); err != nil {
		return nil, err
	}
	return bytes.Clone(buf.Bytes()), nil
}

func (v Value) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case KindAbsent, KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindInt:
		buf.WriteString(strconv.FormatInt(v.i, 10))
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return fmt.Errorf("cannot encode %v as JSON", v.f)
		}
		buf.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
	case KindString:
		data, err := json.Marshal(v.s)
		if err != nil {
			return err
		}
		buf.Write(data)
	case KindList:
		buf.WriteByte('[')
		for i, item := range v.list {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		return v.obj.encode(buf)
	}
	return nil
}

// joinText joins a scalar or a list of scalars with commas, the way a
// script engine stringifies an array.
func (v Value) joinText() string {
	if v.kind != KindList {
		return v.scalarText()
	}
	parts := make([]string, len(v.list))
	for i, item := range v.list {
		parts[i] = item.joinText()
	}
	return strings.Join(parts, ",")
}

func (v Value) scalarText() string {
	switch v.kind {
	case KindAbsent, KindNull:
		return ""
	default:
		return v.String()
	}
}
