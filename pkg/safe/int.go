// Package safe provides checked integer conversions for database and wire boundaries.
package safe

import (
	"fmt"
	"math"
)

// Integer is any built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

func inRange[T Integer](v T, lower int64, upper uint64) bool {
	if v < 0 {
		return int64(v) >= lower
	}
	return uint64(v) <= upper
}

func convert[R, T Integer](v T, lower int64, upper uint64, name string) (R, error) {
	if !inRange(v, lower, upper) {
		return 0, fmt.Errorf("value %d out of %s range", v, name)
	}
	return R(v), nil
}

// Int64 converts v for BIGINT columns.
func Int64[T Integer](v T) (int64, error) {
	return convert[int64](v, math.MinInt64, math.MaxInt64, "int64")
}

// Int32 converts v for INTEGER columns.
func Int32[T Integer](v T) (int32, error) {
	return convert[int32](v, math.MinInt32, math.MaxInt32, "int32")
}

// Uint64 rejects negative values.
func Uint64[T Integer](v T) (uint64, error) {
	return convert[uint64](v, 0, math.MaxUint64, "uint64")
}

// Uint32 converts v with range validation.
func Uint32[T Integer](v T) (uint32, error) {
	return convert[uint32](v, 0, math.MaxUint32, "uint32")
}

// Uint16 converts v with range validation, used for shard ids.
func Uint16[T Integer](v T) (uint16, error) {
	return convert[uint16](v, 0, math.MaxUint16, "uint16")
}
