// SPDX-License-Identifier: MIT

// Package simulate: sample-count coercion.
// Counts arrive from config files and CLI flags in whatever shape the
// source produced (integer, float, numeric string); ParseCount funnels them
// all into an int with an explicit truncation signal.

package simulate

import (
	"math"
	"strconv"
)

// ParseCount coerces v into an integer sample count.
//
// Accepted shapes:
//   - signed and unsigned integers
//   - floats (fraction truncated toward zero; truncated reports it)
//   - strings parseable as a number (then treated as a float)
//
// Anything else, and any NaN/Inf, returns ErrBadCount. ParseCount does not
// enforce positivity; Generate rejects counts below 1 so that the rejection
// carries the sampler's context.
// Complexity: O(1) (O(len) for strings).
func ParseCount(v any) (n int, truncated bool, err error) {
	switch c := v.(type) {
	case int:
		return c, false, nil
	case int8:
		return int(c), false, nil
	case int16:
		return int(c), false, nil
	case int32:
		return int(c), false, nil
	case int64:
		return int(c), false, nil
	case uint:
		return int(c), false, nil
	case uint8:
		return int(c), false, nil
	case uint16:
		return int(c), false, nil
	case uint32:
		return int(c), false, nil
	case uint64:
		return int(c), false, nil
	case float32:
		return truncateFloat(float64(c))
	case float64:
		return truncateFloat(c)
	case string:
		f, perr := strconv.ParseFloat(c, 64)
		if perr != nil {
			return 0, false, ErrBadCount
		}

		return truncateFloat(f)
	default:
		return 0, false, ErrBadCount
	}
}

// truncateFloat drops the fractional part toward zero, reporting whether
// anything was dropped.
func truncateFloat(f float64) (int, bool, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false, ErrBadCount
	}
	whole := math.Trunc(f)

	return int(whole), whole != f, nil
}
