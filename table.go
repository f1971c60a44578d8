package prefixcode

import (
	"sort"

	"github.com/chronos-tachyon/assert"
)

// FrequencyTable is an immutable view of an alphabet, sorted by ascending
// weight, together with the running sum of those weights.
//
// Symbols with equal weights keep the relative order they had in the input.
type FrequencyTable[S comparable] struct {
	entries    []Entry[S]
	cumulative []float64
}

// NewFrequencyTable builds a FrequencyTable from parallel slices.  It does
// not validate its input; see Validate.  Both slices are copied.
func NewFrequencyTable[S comparable](symbols []S, weights []float64) FrequencyTable[S] {
	assert.Assertf(len(symbols) == len(weights), "len(symbols) %d != len(weights) %d", len(symbols), len(weights))

	n := len(symbols)
	entries := make(byWeight[S], n)
	for i := 0; i < n; i++ {
		entries[i] = Entry[S]{symbols[i], weights[i]}
	}
	entries.Sort()

	cumulative := make([]float64, n)
	var sum float64
	for i, entry := range entries {
		sum += entry.Weight
		cumulative[i] = sum
	}

	return FrequencyTable[S]{entries: entries, cumulative: cumulative}
}

// Len returns the number of symbols in the table.
func (ft FrequencyTable[S]) Len() int {
	return len(ft.entries)
}

// At returns the i'th entry in ascending weight order.
func (ft FrequencyTable[S]) At(i int) Entry[S] {
	return ft.entries[i]
}

// Entries returns a copy of the entries in ascending weight order.
func (ft FrequencyTable[S]) Entries() []Entry[S] {
	out := make([]Entry[S], len(ft.entries))
	copy(out, ft.entries)
	return out
}

// Cumulative returns the sum of the weights of entries [0, i].
func (ft FrequencyTable[S]) Cumulative(i int) float64 {
	return ft.cumulative[i]
}

// rangeSum returns the sum of the weights of entries [left, right).
func (ft FrequencyTable[S]) rangeSum(left, right int) float64 {
	if right <= left {
		return 0
	}
	return ft.cumulative[right-1] - ft.before(left)
}

// before returns the sum of the weights of entries [0, i).
func (ft FrequencyTable[S]) before(i int) float64 {
	if i == 0 {
		return 0
	}
	return ft.cumulative[i-1]
}

// type byWeight {{{

type byWeight[S comparable] []Entry[S]

func (list byWeight[S]) Sort() {
	sort.Stable(list)
}

func (list byWeight[S]) Len() int {
	return len(list)
}

func (list byWeight[S]) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byWeight[S]) Less(i, j int) bool {
	return list[i].Weight < list[j].Weight
}

// }}}
