package math

import "golang.org/x/exp/constraints"

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// CeilDiv returns ⌈n / d⌉. d must be non-zero.
func CeilDiv[T constraints.Unsigned](n, d T) T {
	return (n + d - 1) / d
}

// IsAligned reports whether n is a multiple of alignment. A zero alignment
// aligns everything.
func IsAligned[T constraints.Unsigned](n, alignment T) bool {
	if alignment == 0 {
		return true
	}
	return n%alignment == 0
}

// MipDimension returns the size of a mip level along one axis.
func MipDimension[T constraints.Unsigned](base T, mip uint32) T {
	return Max(base>>mip, 1)
}
