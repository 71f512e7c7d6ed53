package bossy

import (
	"fmt"
	"slices"
	"strings"
)

// RollUp builds one object out of a parsed mapping: the value stored
// under name (when it is an object) is overlaid with every "name.a.b"
// key, shallow paths first. Lists replace and nulls do not override.
// name itself may not be a dotted path.
func RollUp(name string, parsed *Object) (*Object, error) {
	if strings.Contains(name, ".") {
		return nil, fmt.Errorf("Cannot build an object at a deep path: %s (contains a dot)", name)
	}

	out := NewObject()
	if v, ok := parsed.Get(name); ok && !v.IsAbsent() {
		obj, ok := v.AsObject()
		if !ok {
			return nil, fmt.Errorf("cannot roll up %s: value is a %s, not an object", name, v.Kind())
		}
		out = obj.Clone()
	}

	var paths []string
	for _, key := range parsed.Keys() {
		if strings.HasPrefix(key, name+".") {
			paths = append(paths, key)
		}
	}
	slices.SortStableFunc(paths, func(a, b string) int {
		return pathDepth(a) - pathDepth(b)
	})

	root := ObjectValue(out)
	for _, key := range paths {
		leaf, _ := parsed.Get(key)
		if leaf.IsAbsent() {
			continue
		}
		root = merge(root, ValueAtPath(key, leaf), applyDefaults)
	}
	obj, _ := root.AsObject()
	return obj, nil
}
