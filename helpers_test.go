package prefixcode

import (
	"math/rand"
	"testing"
)

// randomAlphabet returns n integer symbols with random positive weights
// summing to 1.
func randomAlphabet(rand *rand.Rand, n int) ([]int, []float64) {
	symbols := make([]int, n)
	weights := make([]float64, n)
	var sum float64
	for i := 0; i < n; i++ {
		symbols[i] = i
		weights[i] = 1 + float64(rand.Intn(1000))
		sum += weights[i]
	}
	for i := range weights {
		weights[i] /= sum
	}
	return symbols, weights
}

// checkPrefixFree fails the test if any code in ct is a prefix of another.
func checkPrefixFree[S comparable](t *testing.T, ct *CodeTable[S]) {
	t.Helper()
	codes := ct.Codes()
	for a, ca := range codes {
		for b, cb := range codes {
			if a != b && cb.HasPrefix(ca) {
				t.Errorf("code %s of %v is a prefix of code %s of %v", ca, a, cb, b)
			}
		}
	}
	if err := ct.Verify(); err != nil {
		t.Errorf("Verify failed: %v", err)
	}
}
