package bossy

import "strings"

// ValueAtPath roots leaf under the segments of a dotted path, skipping
// the first segment (the option name): "x.a.b" with 3 gives {a: {b: 3}}.
// A path without dots returns leaf unchanged.
func ValueAtPath(path string, leaf Value) Value {
	segments := strings.Split(path, ".")[1:]
	v := leaf
	for i := len(segments) - 1; i >= 0; i-- {
		obj := NewObject()
		obj.Set(segments[i], v)
		v = ObjectValue(obj)
	}
	return v
}

func pathDepth(path string) int {
	return strings.Count(path, ".") + 1
}
