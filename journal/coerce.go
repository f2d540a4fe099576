package journal

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber reads a user-typed amount. Anything that is not a finite
// number becomes 0. Thousands separators and a leading "$" are ignored.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ParseInt reads a user-typed count, truncating any fractional part.
// Malformed input becomes 0.
func ParseInt(s string) int {
	f := ParseNumber(s)
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0
	}
	return int(f)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
