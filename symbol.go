package prefixcode

// Entry pairs a symbol with its weight.
type Entry[S comparable] struct {
	Symbol S
	Weight float64
}

// symbolIndex is a position in a FrequencyTable.
type symbolIndex int32

// invalidIndex marks internal tree nodes, which carry no symbol.
const invalidIndex = symbolIndex(-1)
