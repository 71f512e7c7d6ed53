package bossy

import (
	"regexp"
	"strconv"
	"strings"
)

var rangeFragment = regexp.MustCompile(`\d+-\d+|\d+`)

// maxRangeRun bounds the values one "from-to" fragment may produce.
const maxRangeRun = 1 << 20

// ExpandRange turns text such as "1-3,7,10-8" into [1 2 3 7 10 9 8].
// A list value is joined with commas first. Text that does not match
// the grammar contributes nothing, and so does a run of maxRangeRun
// values or more.
func ExpandRange(v Value) []int64 {
	values := []int64{}
	for _, fragment := range rangeFragment.FindAllString(v.joinText(), -1) {
		fromText, toText, isRun := strings.Cut(fragment, "-")
		from, err := strconv.ParseInt(fromText, 10, 64)
		if err != nil {
			continue
		}
		if !isRun {
			values = append(values, from)
			continue
		}
		to, err := strconv.ParseInt(toText, 10, 64)
		if err != nil {
			continue
		}
		step := int64(1)
		if from > to {
			step = -1
		}
		if span := (to - from) * step; span >= maxRangeRun {
			continue
		}
		for i := from; ; i += step {
			values = append(values, i)
			if i == to {
				break
			}
		}
	}
	return values
}

func expandRangeValue(v Value) Value {
	nums := ExpandRange(v)
	items := make([]Value, len(nums))
	for i, n := range nums {
		items[i] = IntValue(n)
	}
	return ListValue(items...)
}
