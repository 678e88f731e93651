package bitx

import "golang.org/x/exp/constraints"

// Bit returns a value with only bit n set.
func Bit[T constraints.Unsigned](n int) T {
	return T(1) << n
}

// Mask ORs together the given bit positions.
func Mask[T constraints.Unsigned](bits ...int) T {
	var m T
	for _, n := range bits {
		m |= T(1) << n
	}
	return m
}

// Has reports whether bit n is set in v.
func Has[T constraints.Unsigned](v T, n int) bool {
	return v&(T(1)<<n) != 0
}

// Low returns a mask of the n lowest bits.
func Low[T constraints.Unsigned](n int) T {
	if n <= 0 {
		return 0
	}
	return T(1)<<n - 1
}
