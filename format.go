package prettyarray

import (
	"math"
	"strconv"
)

// formatter converts one scalar element to its display string under a
// snapshot of the precision and notation settings.
type formatter struct {
	precision   int
	suppressExp bool
}

func (f formatter) format(v any) string {
	switch x := v.(type) {
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case uintptr:
		return strconv.FormatUint(uint64(x), 10)
	case float32:
		return f.formatFloat(float64(x))
	case float64:
		return f.formatFloat(x)
	case string:
		return x
	}
	// Unreachable: materialize rejects anything else.
	return ""
}

// formatFloat renders special values as their literal tokens; they are
// never expanded through the precision or notation settings.
func (f formatter) formatFloat(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}
	if f.suppressExp {
		return strconv.FormatFloat(x, 'f', f.precision, 64)
	}
	return strconv.FormatFloat(x, 'e', f.precision, 64)
}

func supportedScalar(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, string:
		return true
	}
	return false
}
