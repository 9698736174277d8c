// Package render formats interpreter results and memory snapshots as text.
package render

import (
	"math"
	"strconv"

	"github.com/reusee/memsim/interp"
)

const resultPrefix = "-> "

// Result formats a value result. UI action results render as the empty string.
func Result(res interp.Result) string {
	if res.Kind == interp.ResultUIAction {
		return ""
	}
	return resultPrefix + Value(res.Value)
}

// Value formats a variable value, "null" when there is none.
func Value(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return Double(v)
	case string:
		return v
	case rune:
		return string(v)
	case interp.Builtin:
		return "[function " + v.String() + "]"
	}
	return "null"
}

func Double(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if abs := math.Abs(f); abs == 0 || abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
