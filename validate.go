package prefixcode

import (
	"fmt"
	"math"
)

// Tolerance is the largest permitted difference between 1.0 and the sum of an
// alphabet's weights.
const Tolerance = 1e-5

// Validate checks that symbols and weights describe a valid alphabet:
//
//   - len(symbols) == len(weights)
//   - no symbol appears twice
//   - every weight is finite and non-negative
//   - the weights sum to 1.0, within Tolerance
//
// The empty alphabet is valid; the sum check applies only when there is at
// least one symbol.  All failures wrap ErrInvalidInput.
//
func Validate[S comparable](symbols []S, weights []float64) error {
	if len(symbols) != len(weights) {
		return fmt.Errorf("%w: %d symbols but %d weights", ErrInvalidInput, len(symbols), len(weights))
	}

	seen := make(map[S]int, len(symbols))
	for i, symbol := range symbols {
		if j, found := seen[symbol]; found {
			return fmt.Errorf("%w: symbol %v appears at both index %d and index %d", ErrInvalidInput, symbol, j, i)
		}
		seen[symbol] = i
	}

	var sum float64
	for i, weight := range weights {
		if math.IsNaN(weight) || math.IsInf(weight, 0) {
			return fmt.Errorf("%w: weight %v for symbol %v is not finite", ErrInvalidInput, weight, symbols[i])
		}
		if weight < 0 {
			return fmt.Errorf("%w: weight %v for symbol %v is negative", ErrInvalidInput, weight, symbols[i])
		}
		sum += weight
	}

	if len(weights) != 0 && math.Abs(sum-1.0) > Tolerance {
		return fmt.Errorf("%w: weights sum to %v, not 1.0", ErrInvalidInput, sum)
	}

	return nil
}
