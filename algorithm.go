package prefixcode

import (
	"fmt"
	"strings"
)

// Algorithm selects the construction used to build a CodeTable.
type Algorithm byte

const (
	// Huffman builds an optimal code by repeatedly merging the two
	// lightest subtrees.
	Huffman Algorithm = iota

	// ShannonFano builds a code by recursively splitting the alphabet
	// into two halves of nearly equal weight.
	ShannonFano
)

var algorithmNames = [...]string{
	Huffman:     "huffman",
	ShannonFano: "shannon-fano",
}

// ParseAlgorithm parses the name of an Algorithm.  Matching ignores case,
// and "shannonfano" and "sf" are accepted for ShannonFano.
func ParseAlgorithm(str string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "huffman":
		return Huffman, nil
	case "shannon-fano", "shannonfano", "sf":
		return ShannonFano, nil
	}
	return 0, fmt.Errorf("unknown algorithm %q", str)
}

// IsValid reports whether alg is a known Algorithm.
func (alg Algorithm) IsValid() bool {
	return int(alg) < len(algorithmNames)
}

// String returns the name of this Algorithm.
func (alg Algorithm) String() string {
	if !alg.IsValid() {
		return fmt.Sprintf("Algorithm(%d)", byte(alg))
	}
	return algorithmNames[alg]
}

// Set parses str into alg.  Together with String and Type, it makes
// *Algorithm usable as a command-line flag value.
func (alg *Algorithm) Set(str string) error {
	parsed, err := ParseAlgorithm(str)
	if err != nil {
		return err
	}
	*alg = parsed
	return nil
}

// Type returns the flag type name.
func (alg *Algorithm) Type() string {
	return "algorithm"
}

var _ fmt.Stringer = Algorithm(0)
