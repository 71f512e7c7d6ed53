package bossy

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ParseJSON decodes one JSON document into a Value, keeping object key
// order. Keys that would shadow structural members in script runtimes
// ("__proto__", and "constructor" holding a "prototype") are dropped.
func ParseJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, err
	}
	if tok, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return Value{}, err
		}
		return Value{}, fmt.Errorf("unexpected %v after top-level value", tok)
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return Value{}, io.ErrUnexpectedEOF
	}
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeList(dec)
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %v", t)
		}
	case json.Number:
		return numberValue(t.String())
	case string:
		return StringValue(t), nil
	case bool:
		return BoolValue(t), nil
	case nil:
		return NullValue(), nil
	default:
		return Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeObject(dec *json.Decoder) (Value, error) {
	obj := NewObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("unexpected object key %v", tok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		if !unsafeMember(key, v) {
			obj.Set(key, v)
		}
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return ObjectValue(obj), nil
}

func decodeList(dec *json.Decoder) (Value, error) {
	items := []Value{}
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return ListValue(items...), nil
}

func unsafeMember(key string, v Value) bool {
	switch key {
	case "__proto__":
		return true
	case "constructor":
		obj, ok := v.AsObject()
		return ok && obj.Has("prototype")
	default:
		return false
	}
}

// stripUnsafe removes unsafe members at any depth. Paths built from
// dotted option names bypass the decoder, so they are scanned again.
func stripUnsafe(v Value) Value {
	switch v.kind {
	case KindObject:
		for _, k := range v.obj.Keys() {
			member, _ := v.obj.Get(k)
			if unsafeMember(k, member) {
				v.obj.Delete(k)
				continue
			}
			v.obj.Set(k, stripUnsafe(member))
		}
	case KindList:
		for i, item := range v.list {
			v.list[i] = stripUnsafe(item)
		}
	}
	return v
}
