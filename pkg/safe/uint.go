// Package safe provides helpers for safe numeric conversions with overflow checks.
package safe

import (
	"fmt"
	"math"
)

// Integer is any built-in integer kind.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Uint8 converts v to uint8, failing outside [0, 255].
func Uint8[T Integer](v T) (uint8, error) {
	u, err := toUint(v, math.MaxUint8, "uint8")
	return uint8(u), err
}

// Uint16 converts v to uint16.
func Uint16[T Integer](v T) (uint16, error) {
	u, err := toUint(v, math.MaxUint16, "uint16")
	return uint16(u), err
}

// Uint32 converts v to uint32.
func Uint32[T Integer](v T) (uint32, error) {
	u, err := toUint(v, math.MaxUint32, "uint32")
	return uint32(u), err
}

// Uint64 converts v to uint64 while guarding against negatives.
func Uint64[T Integer](v T) (uint64, error) {
	return toUint(v, math.MaxUint64, "uint64")
}

// Int64 converts v to int64, failing above math.MaxInt64.
func Int64[T Integer](v T) (int64, error) {
	if v < 0 {
		return int64(v), nil
	}
	u := uint64(v)
	if u > math.MaxInt64 {
		return 0, fmt.Errorf("value %d out of int64 range", v)
	}
	return int64(u), nil
}

func toUint[T Integer](v T, limit uint64, name string) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of %s range", v, name)
	}
	u := uint64(v)
	if u > limit {
		return 0, fmt.Errorf("value %d out of %s range", v, name)
	}
	return u, nil
}
