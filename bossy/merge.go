package bossy

type mergeOptions struct {
	// nullOverride lets a null in the source replace the target member.
	nullOverride bool
	// appendLists concatenates lists instead of replacing them.
	appendLists bool
}

var (
	// accumulate layers repeated JSON option occurrences.
	accumulate = mergeOptions{nullOverride: true, appendLists: true}
	// applyDefaults layers roll-up paths over the initial object.
	applyDefaults = mergeOptions{nullOverride: false, appendLists: false}
)

// Merge deep-merges source into a copy of target: objects merge member
// by member, lists concatenate, null overrides. Mismatched kinds are
// replaced by source.
func Merge(target, source Value) Value {
	return merge(target.Clone(), source, accumulate)
}

// merge layers source onto target, which the caller must own. Source
// members are cloned so the result never aliases source.
func merge(target, source Value, opts mergeOptions) Value {
	switch {
	case target.kind == KindList && source.kind == KindList:
		items := make([]Value, 0, len(target.list)+len(source.list))
		if opts.appendLists {
			items = append(items, target.list...)
		}
		for _, item := range source.list {
			items = append(items, item.Clone())
		}
		return ListValue(items...)

	case target.kind == KindObject && source.kind == KindObject:
		for _, k := range source.obj.Keys() {
			sv, _ := source.obj.Get(k)
			switch {
			case sv.IsCompound():
				tv, ok := target.obj.Get(k)
				if ok && tv.kind == sv.kind {
					target.obj.Set(k, merge(tv, sv, opts))
				} else {
					target.obj.Set(k, sv.Clone())
				}
			case sv.IsNull():
				if opts.nullOverride {
					target.obj.Set(k, sv)
				}
			case sv.IsAbsent():
			default:
				target.obj.Set(k, sv)
			}
		}
		return target

	default:
		return source.Clone()
	}
}
