package prefixcode

import (
	"errors"

	"github.com/chronos-tachyon/prefixcode/heap"
)

var (
	// ErrInvalidInput is returned by Validate, and by everything that calls
	// it, when the symbols and weights do not describe a valid alphabet.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownSymbol is returned by CodeTable.Lookup for a symbol that is
	// not part of the table's alphabet.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrInvalidArgument is heap.ErrInvalidArgument.
	ErrInvalidArgument = heap.ErrInvalidArgument

	// ErrEmptyStructure is heap.ErrEmptyStructure.
	ErrEmptyStructure = heap.ErrEmptyStructure
)

// ErrNotPrefixFree is returned by CodeTable.Verify when one code is a prefix
// of another.
var ErrNotPrefixFree = errors.New("not prefix-free")
