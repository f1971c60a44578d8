package prefixcode

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each symbol of an alphabet to its Code.
//
// A CodeTable is immutable once built and safe for concurrent use.
type CodeTable[S comparable] struct {
	algorithm Algorithm
	entries   []Entry[S]
	codes     []Code
	index     map[S]int

	prefixOnce sync.Once
	prefixes   prefixIndex
	prefixErr  error
}

// Build validates symbols and weights (see Validate) and builds the code
// table for that alphabet using alg.  On error, no table is returned.
func Build[S comparable](alg Algorithm, symbols []S, weights []float64) (*CodeTable[S], error) {
	if !alg.IsValid() {
		return nil, fmt.Errorf("%w: unknown algorithm %v", ErrInvalidArgument, alg)
	}
	if err := Validate(symbols, weights); err != nil {
		return nil, err
	}
	return FromTable(alg, NewFrequencyTable(symbols, weights)), nil
}

// FromTable builds the code table for an already-validated FrequencyTable.
// An empty FrequencyTable yields an empty CodeTable.
func FromTable[S comparable](alg Algorithm, ft FrequencyTable[S]) *CodeTable[S] {
	assert.Assertf(alg.IsValid(), "unknown algorithm %v", alg)

	var codes []Code
	switch alg {
	case ShannonFano:
		codes = shannonFanoCodes(ft)
	case Huffman:
		codes = huffmanCodes(ft)
	}
	return newCodeTable(alg, ft.Entries(), codes)
}

func newCodeTable[S comparable](alg Algorithm, entries []Entry[S], codes []Code) *CodeTable[S] {
	index := make(map[S]int, len(entries))
	for i, entry := range entries {
		index[entry.Symbol] = i
	}
	return &CodeTable[S]{
		algorithm: alg,
		entries:   entries,
		codes:     codes,
		index:     index,
	}
}

// Algorithm returns the Algorithm that built this table.
func (ct *CodeTable[S]) Algorithm() Algorithm {
	return ct.algorithm
}

// Len returns the number of symbols in the table.
func (ct *CodeTable[S]) Len() int {
	return len(ct.entries)
}

// Lookup returns the Code for symbol.  If symbol was not part of the
// alphabet, it returns an error wrapping ErrUnknownSymbol.
func (ct *CodeTable[S]) Lookup(symbol S) (Code, error) {
	i, found := ct.index[symbol]
	if !found {
		return Code{}, fmt.Errorf("%w: %v", ErrUnknownSymbol, symbol)
	}
	return ct.codes[i], nil
}

// Symbols returns the alphabet in ascending weight order.
func (ct *CodeTable[S]) Symbols() []S {
	out := make([]S, len(ct.entries))
	for i, entry := range ct.entries {
		out[i] = entry.Symbol
	}
	return out
}

// Codes returns a copy of the symbol to Code mapping.
func (ct *CodeTable[S]) Codes() map[S]Code {
	out := make(map[S]Code, len(ct.entries))
	for i, entry := range ct.entries {
		out[entry.Symbol] = ct.codes[i]
	}
	return out
}

// Lengths returns the length of each symbol's Code.
func (ct *CodeTable[S]) Lengths() map[S]int {
	out := make(map[S]int, len(ct.entries))
	for i, entry := range ct.entries {
		out[entry.Symbol] = ct.codes[i].Len()
	}
	return out
}

// MinLength is the length of the shortest Code, or 0 for an empty table.
func (ct *CodeTable[S]) MinLength() int {
	var min int
	for i, hc := range ct.codes {
		if i == 0 || hc.Len() < min {
			min = hc.Len()
		}
	}
	return min
}

// MaxLength is the length of the longest Code, or 0 for an empty table.
func (ct *CodeTable[S]) MaxLength() int {
	var max int
	for _, hc := range ct.codes {
		if hc.Len() > max {
			max = hc.Len()
		}
	}
	return max
}

// AverageLength returns the weighted average Code length, in bits.
func (ct *CodeTable[S]) AverageLength() float64 {
	var sum float64
	for i, entry := range ct.entries {
		sum += entry.Weight * float64(ct.codes[i].Len())
	}
	return sum
}

// Entropy returns the Shannon entropy of the alphabet's weights, in bits.
func (ct *CodeTable[S]) Entropy() float64 {
	var sum float64
	for _, entry := range ct.entries {
		sum += entropyTerm(entry.Weight)
	}
	return sum
}

// KraftSum returns the sum of 2^-len(code) over all codes.  It is at most 1
// for any prefix code, and exactly 1 when the code is complete.
func (ct *CodeTable[S]) KraftSum() float64 {
	var sum float64
	for _, hc := range ct.codes {
		sum += kraftTerm(hc.Len())
	}
	return sum
}

// Verify checks that no Code in the table is a prefix of another.
func (ct *CodeTable[S]) Verify() error {
	_, err := ct.loadPrefixIndex()
	return err
}

func (ct *CodeTable[S]) loadPrefixIndex() (prefixIndex, error) {
	ct.prefixOnce.Do(func() {
		ct.prefixes, ct.prefixErr = buildPrefixIndex(ct.codes)
	})
	return ct.prefixes, ct.prefixErr
}

// Match looks up the symbol whose Code is exactly hc.
//
// If found, ok is true.  Otherwise, if hc is a proper prefix of one or more
// codes, minMore and maxMore bound the number of additional bits needed to
// complete a Code; if hc is neither a Code nor a prefix of one, all results
// are zero.
//
func (ct *CodeTable[S]) Match(hc Code) (symbol S, ok bool, minMore int, maxMore int) {
	idx, err := ct.loadPrefixIndex()
	if err != nil {
		return symbol, false, 0, 0
	}
	data, found := idx[hc]
	if !found {
		return symbol, false, 0, 0
	}
	if data.isLeaf() {
		return ct.entries[data.symbol].Symbol, true, 0, 0
	}
	return symbol, false, data.minSize - hc.Len(), data.maxSize - hc.Len()
}

// Format writes one "symbol : code" line per symbol, in ascending weight
// order.
func (ct *CodeTable[S]) Format(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for i, entry := range ct.entries {
		fmt.Fprintf(&buf, "%v : %s\n", entry.Symbol, ct.codes[i].Bits())
	}
	return buf.WriteTo(w)
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (ct *CodeTable[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tAlgorithm() = %v\n", ct.algorithm)
	fmt.Fprintf(&buf, "\tMinLength() = %d\n", ct.MinLength())
	fmt.Fprintf(&buf, "\tMaxLength() = %d\n", ct.MaxLength())
	for i, entry := range ct.entries {
		fmt.Fprintf(&buf, "\tLookup(%v) = %s\n", entry.Symbol, ct.codes[i])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
