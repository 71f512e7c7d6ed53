package deffile

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/dzonerzy/go-bossy/bossy"
)

func decodeJSON(data []byte) (*bossy.Object, error) {
	v, err := bossy.ParseJSON(jsonc.ToJSON(data))
	if err != nil {
		return nil, err
	}
	return rootObject(v)
}

func rootObject(v bossy.Value) (*bossy.Object, error) {
	if v.IsNull() || v.IsAbsent() {
		return bossy.NewObject(), nil
	}
	obj, ok := v.AsObject()
	if !ok {
		return nil, fmt.Errorf("top level must map option names to records, got %s", v.Kind())
	}
	return obj, nil
}

func decodeYAML(data []byte) (*bossy.Object, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		return bossy.NewObject(), nil
	}
	v, err := yamlValue(&doc)
	if err != nil {
		return nil, err
	}
	return rootObject(v)
}

// yamlValue walks a node tree so mapping keys keep document order.
func yamlValue(n *yaml.Node) (bossy.Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return bossy.NullValue(), nil
		}
		return yamlValue(n.Content[0])
	case yaml.AliasNode:
		return yamlValue(n.Alias)
	case yaml.MappingNode:
		obj := bossy.NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode {
				return bossy.Value{}, fmt.Errorf("line %d: mapping keys must be scalars", key.Line)
			}
			if key.Tag == "!!merge" {
				return bossy.Value{}, fmt.Errorf("line %d: merge keys are not supported", key.Line)
			}
			v, err := yamlValue(n.Content[i+1])
			if err != nil {
				return bossy.Value{}, err
			}
			obj.Set(key.Value, v)
		}
		return bossy.ObjectValue(obj), nil
	case yaml.SequenceNode:
		items := make([]bossy.Value, len(n.Content))
		for i, child := range n.Content {
			v, err := yamlValue(child)
			if err != nil {
				return bossy.Value{}, err
			}
			items[i] = v
		}
		return bossy.ListValue(items...), nil
	case yaml.ScalarNode:
		var raw any
		if err := n.Decode(&raw); err != nil {
			return bossy.Value{}, fmt.Errorf("line %d: %w", n.Line, err)
		}
		if _, ok := raw.(time.Time); ok {
			return bossy.StringValue(n.Value), nil
		}
		v, err := bossy.FromAny(raw)
		if err != nil {
			return bossy.Value{}, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return v, nil
	default:
		return bossy.Value{}, fmt.Errorf("line %d: unexpected YAML node", n.Line)
	}
}

func decodeTOML(data []byte) (*bossy.Object, error) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, err
	}

	// Keys lists every key path in document order; rebuilding from it
	// restores the order the map lost.
	root := bossy.NewObject()
	for _, key := range md.Keys() {
		if err := placeTOML(root, raw, key); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
	}
	if err := fillTOML(root, raw); err != nil {
		return nil, err
	}
	return root, nil
}

func placeTOML(root *bossy.Object, raw map[string]any, key toml.Key) error {
	parent := root
	cur := raw
	for i, segment := range key {
		val, ok := cur[segment]
		if !ok {
			return nil
		}
		last := i == len(key)-1
		table, isTable := val.(map[string]any)

		if !last {
			if !isTable {
				// inside an array of tables; already converted whole
				return nil
			}
			next, err := childObject(parent, segment)
			if err != nil {
				return err
			}
			parent, cur = next, table
			continue
		}

		if isTable {
			_, err := childObject(parent, segment)
			return err
		}
		v, err := tomlValue(val)
		if err != nil {
			return err
		}
		parent.Set(segment, v)
	}
	return nil
}

func childObject(parent *bossy.Object, segment string) (*bossy.Object, error) {
	if existing, ok := parent.Get(segment); ok {
		obj, ok := existing.AsObject()
		if !ok {
			return nil, errors.New("table redefines a value")
		}
		return obj, nil
	}
	obj := bossy.NewObject()
	parent.Set(segment, bossy.ObjectValue(obj))
	return obj, nil
}

func tomlValue(val any) (bossy.Value, error) {
	switch x := val.(type) {
	case time.Time:
		return bossy.StringValue(x.Format(time.RFC3339Nano)), nil
	case []any:
		items := make([]bossy.Value, len(x))
		for i, item := range x {
			v, err := tomlValue(item)
			if err != nil {
				return bossy.Value{}, err
			}
			items[i] = v
		}
		return bossy.ListValue(items...), nil
	case []map[string]any:
		items := make([]bossy.Value, len(x))
		for i, table := range x {
			obj := bossy.NewObject()
			if err := fillTOML(obj, table); err != nil {
				return bossy.Value{}, err
			}
			items[i] = bossy.ObjectValue(obj)
		}
		return bossy.ListValue(items...), nil
	case map[string]any:
		obj := bossy.NewObject()
		if err := fillTOML(obj, x); err != nil {
			return bossy.Value{}, err
		}
		return bossy.ObjectValue(obj), nil
	default:
		return bossy.FromAny(val)
	}
}

// fillTOML adds members of table that Keys did not report, in sorted
// order, and descends into tables that already exist.
func fillTOML(obj *bossy.Object, table map[string]any) error {
	for _, k := range slices.Sorted(maps.Keys(table)) {
		existing, ok := obj.Get(k)
		if !ok {
			v, err := tomlValue(table[k])
			if err != nil {
				return err
			}
			obj.Set(k, v)
			continue
		}
		sub, isTable := table[k].(map[string]any)
		child, isObj := existing.AsObject()
		if isTable && isObj {
			if err := fillTOML(child, sub); err != nil {
				return err
			}
		}
	}
	return nil
}
