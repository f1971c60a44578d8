package prefixcode

import (
	"sort"

	"github.com/chronos-tachyon/assert"
)

// Canonical returns a CodeTable with the same Code lengths as this one, but
// with the Codes reassigned canonically: Codes of equal length are
// consecutive binary numbers, and shorter Codes sort before longer ones.
// Among Codes of equal length, lighter symbols get the smaller numbers.
//
// A canonical code can be reconstructed from its lengths alone, as in
// RFC 1951 Section 3.2.2.
//
func (ct *CodeTable[S]) Canonical() *CodeTable[S] {
	numSymbols := len(ct.codes)
	codes := make([]Code, numSymbols)
	if numSymbols == 0 {
		return newCodeTable(ct.algorithm, ct.entries, codes)
	}

	// Step 1: sort the symbols by (size, position) ascending.

	sorted := make(bySize, numSymbols)
	for i, hc := range ct.codes {
		sorted[i] = symbolAndSize{symbolIndex(i), hc.Len()}
	}
	sorted.Sort()

	// Step 2: assign the codes sequentially, per the algorithm detailed at
	// <https://en.wikipedia.org/w/index.php?title=Canonical_Huffman_code&oldid=999983137>.
	// Codes may be longer than any machine word, so the counter is kept
	// as a bit string.

	next := make([]byte, sorted[0].size)
	for i := range next {
		next[i] = '0'
	}
	for n, item := range sorted {
		if n != 0 {
			assert.Assertf(increment(next), "canonical code overflow at symbol #%d; Kraft sum > 1", item.symbol)
		}
		for len(next) < item.size {
			next = append(next, '0')
		}
		codes[item.symbol] = Code{string(next)}
	}

	return newCodeTable(ct.algorithm, ct.entries, codes)
}

// increment adds one to a big-endian bit string in place.  It returns false
// if the string was all ones.
func increment(bits []byte) bool {
	for i := len(bits) - 1; i >= 0; i-- {
		if bits[i] == '0' {
			bits[i] = '1'
			return true
		}
		bits[i] = '0'
	}
	return false
}

// type symbolAndSize + type bySize {{{

type symbolAndSize struct {
	symbol symbolIndex
	size   int
}

type bySize []symbolAndSize

func (list bySize) Len() int {
	return len(list)
}

func (list bySize) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySize) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.size != b.size {
		return a.size < b.size
	}
	return a.symbol < b.symbol
}

func (list bySize) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySize(nil)

// }}}
