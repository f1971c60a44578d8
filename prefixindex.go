package prefixcode

import (
	"fmt"
)

// prefixIndex maps every Code in a table, and every proper prefix of those
// Codes, to a prefixData.
type prefixIndex map[Code]prefixData

// prefixData describes one node of the code tree.  For a Code, symbol is the
// symbol's position and minSize == maxSize == len(Code).  For a proper prefix,
// symbol is invalidIndex and [minSize, maxSize] is the range of lengths of the
// Codes below it.
type prefixData struct {
	symbol  symbolIndex
	minSize int
	maxSize int
}

func (pd prefixData) isLeaf() bool {
	return pd.symbol != invalidIndex
}

// buildPrefixIndex indexes codes, where codes[i] belongs to symbol i.  It
// fails with ErrNotPrefixFree if any Code is a prefix of another.
func buildPrefixIndex(codes []Code) (prefixIndex, error) {
	idx := make(prefixIndex, 2*len(codes))
	for i, hc := range codes {
		if err := idx.fill(symbolIndex(i), hc); err != nil {
			return nil, err
		}
	}
	return idx, nil
}

func (idx prefixIndex) fill(symbol symbolIndex, hc Code) error {
	if old, found := idx[hc]; found {
		if old.isLeaf() {
			return fmt.Errorf("%w: symbols #%d and #%d share code %s", ErrNotPrefixFree, old.symbol, symbol, hc)
		}
		return fmt.Errorf("%w: code %s of symbol #%d is a prefix of a longer code", ErrNotPrefixFree, hc, symbol)
	}

	pd := prefixData{symbol, hc.Len(), hc.Len()}
	idx[hc] = pd

	for hc.Len() != 0 {
		// Merge the data for "xxx...a" (pd) and "xxx...A" (sibling),
		// where A = NOT a, into the data for their parent "xxx...".

		pdNew := prefixData{invalidIndex, pd.minSize, pd.maxSize}
		if sibling, found := idx[hc.Sibling()]; found {
			if pdNew.minSize > sibling.minSize {
				pdNew.minSize = sibling.minSize
			}
			if pdNew.maxSize < sibling.maxSize {
				pdNew.maxSize = sibling.maxSize
			}
		}

		hc = hc.Parent()

		pdOld, found := idx[hc]
		if found && pdOld.isLeaf() {
			return fmt.Errorf("%w: code %s of symbol #%d is a prefix of the code of symbol #%d", ErrNotPrefixFree, hc, pdOld.symbol, symbol)
		}

		// If idx[hc] already equals pdNew, the ancestors are also
		// up to date.

		if found && pdOld == pdNew {
			break
		}

		idx[hc] = pdNew
		pd = pdNew
	}

	return nil
}
