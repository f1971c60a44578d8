package prefixcode

import (
	"math"
	mathbits "math/bits"
)

func log2uint32(x uint32) uint32 {
	if x == 0 {
		x = 1
	}
	return uint32(32 - mathbits.LeadingZeros32(x))
}

// entropyTerm is the contribution of one symbol to the Shannon entropy, in
// bits.  Zero-weight symbols contribute nothing.
func entropyTerm(weight float64) float64 {
	if weight <= 0 {
		return 0
	}
	return -weight * math.Log2(weight)
}

// kraftTerm is 2^-size.
func kraftTerm(size int) float64 {
	return math.Ldexp(1, -size)
}
