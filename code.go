package prefixcode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Code represents a sequence of bits of any length.  The zero value is the
// empty Code.
//
// Codes are immutable and comparable, so they may be used as map keys.
type Code struct {
	bits string
}

// MakeCode is a convenience function that constructs a Code from the low
// size bits of bits.  The least significant bit of bits is the first bit.
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= 64, "size %d > 64", size)

	var sb strings.Builder
	sb.Grow(int(size))
	for i := byte(0); i < size; i++ {
		sb.WriteByte('0' + byte(bits>>i&1))
	}
	return Code{sb.String()}
}

// MakeReversedCode constructs a Code from a sequence of bits that's in the
// wrong order, i.e. the least significant bit is the *last* bit in the
// sequence, instead of the first.
func MakeReversedCode(size byte, bits uint64) Code {
	return MakeCode(size, bits).Reversed()
}

// ParseCode parses a string of '0' and '1' characters, first bit first.
func ParseCode(str string) (Code, error) {
	for i := 0; i < len(str); i++ {
		if ch := str[i]; ch != '0' && ch != '1' {
			return Code{}, fmt.Errorf("invalid bit %q at offset %d in code %q", ch, i, str)
		}
	}
	return Code{str}, nil
}

// MustParseCode is like ParseCode, but panics on error.
func MustParseCode(str string) Code {
	hc, err := ParseCode(str)
	if err != nil {
		panic(err)
	}
	return hc
}

// Len returns the number of bits in this Code.
func (hc Code) Len() int {
	return len(hc.bits)
}

// Bit returns the i'th bit, counting from 0.
func (hc Code) Bit(i int) byte {
	return hc.bits[i] - '0'
}

// Append returns a new Code with bit appended.
func (hc Code) Append(bit byte) Code {
	return Code{hc.bits + string('0'+(bit&1))}
}

// HasPrefix reports whether prefix is a prefix of this Code.  Every Code is
// a prefix of itself.
func (hc Code) HasPrefix(prefix Code) bool {
	return strings.HasPrefix(hc.bits, prefix.bits)
}

// Parent returns this Code with its last bit removed.  The parent of the
// empty Code is the empty Code.
func (hc Code) Parent() Code {
	if len(hc.bits) == 0 {
		return hc
	}
	return Code{hc.bits[:len(hc.bits)-1]}
}

// Sibling returns this Code with its last bit flipped.
func (hc Code) Sibling() Code {
	n := len(hc.bits)
	if n == 0 {
		return hc
	}
	return hc.Parent().Append(1 - hc.Bit(n-1))
}

// Reversed returns the corresponding Code with the bits in reverse order.
func (hc Code) Reversed() Code {
	n := len(hc.bits)
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		buf[n-1-i] = hc.bits[i]
	}
	return Code{string(buf)}
}

// Bits returns the bits as a string of '0' and '1' characters, first bit
// first.
func (hc Code) Bits() string {
	return hc.bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if len(hc.bits) == 0 {
		return "\"\""
	}
	return strconv.Quote(hc.bits)
}

var _ fmt.Stringer = Code{}
