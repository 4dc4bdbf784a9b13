package incmap

import "math/bits"

// Returns the next power of 2 for the given value `v`.
func NextPowerOf2(v uint64) uint64 {
	if v <= 1 {
		return 1
	}

	return uint64(1) << bits.Len64(v-1)
}
