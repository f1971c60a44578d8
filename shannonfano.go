package prefixcode

import (
	"math"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// tieTolerance is the relative difference below which two candidate splits
// count as equally balanced.  Cumulative sums of decimal weights carry
// rounding error, so exact ties rarely compare equal.
const tieTolerance = 1e-12

// BuildShannonFano validates the alphabet and builds its Shannon-Fano code.
func BuildShannonFano[S comparable](symbols []S, weights []float64) (*CodeTable[S], error) {
	return Build(ShannonFano, symbols, weights)
}

// shannonFanoCodes assigns a Code to every entry of ft by recursive
// bisection.  codes[i] is the Code for ft.At(i).
func shannonFanoCodes[S comparable](ft FrequencyTable[S]) []Code {
	codes := make([]Code, ft.Len())
	if ft.Len() != 0 {
		partition(ft, codes, 0, ft.Len(), Code{})
	}
	return codes
}

// partition assigns codes to the range [left, right), all of which share the
// prefix path.
func partition[S comparable](ft FrequencyTable[S], codes []Code, left, right int, path Code) {
	if left+1 == right {
		codes[left] = path
		return
	}

	m := splitIndex(ft, left, right)
	assert.Assertf(left <= m && m < right-1, "split %d outside [%d, %d)", m, left, right-1)

	partition(ft, codes, left, m+1, path.Append(0))
	partition(ft, codes, m+1, right, path.Append(1))
}

// splitIndex chooses m so that [left, m] and [m+1, right) have weights as
// close to equal as possible.  If two splits are equally close, the one
// whose left half does not exceed half the total wins, and among splits
// with identical sums the first wins.
//
// Requires right-left >= 2.
//
func splitIndex[S comparable](ft FrequencyTable[S], left, right int) int {
	base := ft.before(left)
	target := base + ft.rangeSum(left, right)/2

	// p is the first candidate in [left, right-1) whose cumulative weight
	// overshoots the target.
	last := right - 1
	p := left + sort.Search(last-left, func(i int) bool {
		return ft.cumulative[left+i] > target
	})

	if p == left {
		return left
	}

	if p < last {
		// Distances within tieTolerance of each other are a tie, which
		// goes to the split that does not overshoot.
		under := math.Abs(target - ft.cumulative[p-1])
		over := math.Abs(ft.cumulative[p] - target)
		if over < under-tieTolerance*ft.cumulative[last] {
			return p
		}
	}

	// Zero-weight entries give runs of equal cumulative weight; take the
	// first split of the run.
	sum := ft.cumulative[p-1]
	return left + sort.Search(p-1-left, func(i int) bool {
		return ft.cumulative[left+i] >= sum
	})
}
